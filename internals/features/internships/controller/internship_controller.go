package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siggip_backend/internals/constants"
	"siggip_backend/internals/features/internships/dto"
	"siggip_backend/internals/features/internships/model"
	helper "siggip_backend/internals/helpers"
)

var validateInternship = validator.New()

// transiciones válidas del ciclo de vida; completada es terminal
var allowedTransitions = map[string][]string{
	constants.PracticaAsignada: {constants.PracticaEnCurso},
	constants.PracticaEnCurso:  {constants.PracticaCompletada},
}

type InternshipController struct {
	DB *gorm.DB
}

func NewInternshipController(db *gorm.DB) *InternshipController {
	return &InternshipController{DB: db}
}

// =============================
// ➕ Asignar práctica manualmente (coordinador)
// =============================
func (ctrl *InternshipController) CreateInternship(c *fiber.Ctx) error {
	var body dto.CreateInternshipRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}
	if err := validateInternship.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	inicio, err := time.Parse("2006-01-02", body.PracticaFechaInicio)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Fecha de inicio inválida (formato YYYY-MM-DD)")
	}

	// un estudiante no puede tener otra práctica sin completar
	var count int64
	if err := ctrl.DB.Model(&model.InternshipModel{}).
		Where("practica_estudiante_id = ? AND practica_estado <> ?", body.PracticaEstudianteID, constants.PracticaCompletada).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al verificar prácticas del estudiante")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "El estudiante ya tiene una práctica vigente")
	}

	internship := model.InternshipModel{
		PracticaEstudianteID:   body.PracticaEstudianteID,
		PracticaEmpresaID:      body.PracticaEmpresaID,
		PracticaEspecialidadID: body.PracticaEspecialidadID,
		PracticaEstado:         constants.PracticaAsignada,
		PracticaFechaInicio:    inicio,
	}
	if err := ctrl.DB.Create(&internship).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al asignar la práctica")
	}

	return helper.JsonCreated(c, "Práctica asignada", dto.ToInternshipDTO(internship))
}

// =============================
// 📄 Listar prácticas (paginado, filtros)
// =============================
func (ctrl *InternshipController) GetAllInternships(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.InternshipModel{})
	if estado := c.Query("estado"); estado != "" {
		q = q.Where("practica_estado = ?", estado)
	}
	if esp := c.Query("especialidad"); esp != "" {
		q = q.Where("practica_especialidad_id = ?", esp)
	}
	if emp := c.Query("empresa"); emp != "" {
		q = q.Where("practica_empresa_id = ?", emp)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al contar prácticas")
	}

	var internships []model.InternshipModel
	if err := q.Order("practica_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&internships).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar prácticas")
	}

	return helper.JsonList(c, "Prácticas", dto.ToInternshipDTOs(internships), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =============================
// 🔍 Detalle de práctica
// =============================
func (ctrl *InternshipController) GetInternshipByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var internship model.InternshipModel
	if err := ctrl.DB.First(&internship, "practica_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Práctica no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar la práctica")
	}

	return helper.JsonOK(c, "Práctica", dto.ToInternshipDTO(internship))
}

// =============================
// 🔄 Cambiar estado de práctica
// =============================
func (ctrl *InternshipController) UpdateInternshipState(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateInternshipStateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}
	if err := validateInternship.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var internship model.InternshipModel
	if err := ctrl.DB.First(&internship, "practica_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Práctica no encontrada")
	}

	if !isTransitionAllowed(internship.PracticaEstado, body.PracticaEstado) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Transición de estado no permitida: "+internship.PracticaEstado+" → "+body.PracticaEstado)
	}

	internship.PracticaEstado = body.PracticaEstado
	if body.PracticaEstado == constants.PracticaCompletada {
		now := time.Now()
		internship.PracticaFechaTermino = &now
	}

	if err := ctrl.DB.Save(&internship).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar la práctica")
	}

	return helper.JsonUpdated(c, "Práctica actualizada", dto.ToInternshipDTO(internship))
}

func isTransitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
