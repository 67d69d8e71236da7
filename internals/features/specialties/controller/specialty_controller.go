package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siggip_backend/internals/features/specialties/dto"
	"siggip_backend/internals/features/specialties/model"
	helper "siggip_backend/internals/helpers"
)

var validateSpecialty = validator.New()

type SpecialtyController struct {
	DB *gorm.DB
}

func NewSpecialtyController(db *gorm.DB) *SpecialtyController {
	return &SpecialtyController{DB: db}
}

// =============================
// ➕ Crear especialidad
// =============================
func (ctrl *SpecialtyController) CreateSpecialty(c *fiber.Ctx) error {
	var body dto.CreateSpecialtyRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}
	if err := validateSpecialty.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&model.SpecialtyModel{}).
		Where("especialidad_nombre = ?", body.EspecialidadNombre).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al verificar la especialidad")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ya existe una especialidad con ese nombre")
	}

	specialty := model.SpecialtyModel{
		EspecialidadNombre:      body.EspecialidadNombre,
		EspecialidadDescripcion: body.EspecialidadDescripcion,
	}
	if err := ctrl.DB.Create(&specialty).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al crear la especialidad")
	}

	return helper.JsonCreated(c, "Especialidad creada", dto.ToSpecialtyDTO(specialty))
}

// =============================
// 📄 Listar especialidades
// =============================
func (ctrl *SpecialtyController) GetAllSpecialties(c *fiber.Ctx) error {
	var specialties []model.SpecialtyModel
	if err := ctrl.DB.Order("especialidad_nombre ASC").Find(&specialties).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar especialidades")
	}

	result := make([]dto.SpecialtyDTO, 0, len(specialties))
	for _, s := range specialties {
		result = append(result, dto.ToSpecialtyDTO(s))
	}
	return helper.JsonOK(c, "Especialidades", result)
}

// =============================
// 🔍 Detalle con áreas y tareas
// =============================
func (ctrl *SpecialtyController) GetSpecialtyByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var specialty model.SpecialtyModel
	if err := ctrl.DB.First(&specialty, "especialidad_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Especialidad no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar la especialidad")
	}

	var areas []model.CompetencyAreaModel
	if err := ctrl.DB.Preload("Tareas").
		Where("area_especialidad_id = ?", id).
		Order("area_numero ASC").
		Find(&areas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al cargar las áreas")
	}

	areaDTOs := make([]dto.CompetencyAreaDTO, 0, len(areas))
	for _, a := range areas {
		areaDTOs = append(areaDTOs, dto.ToCompetencyAreaDTO(a))
	}

	return helper.JsonOK(c, "Especialidad", fiber.Map{
		"especialidad": dto.ToSpecialtyDTO(specialty),
		"areas":        areaDTOs,
	})
}

// =============================
// 🔄 Actualizar especialidad
// =============================
func (ctrl *SpecialtyController) UpdateSpecialty(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateSpecialtyRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}
	if err := validateSpecialty.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var specialty model.SpecialtyModel
	if err := ctrl.DB.First(&specialty, "especialidad_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Especialidad no encontrada")
	}

	specialty.EspecialidadNombre = body.EspecialidadNombre
	specialty.EspecialidadDescripcion = body.EspecialidadDescripcion

	if err := ctrl.DB.Save(&specialty).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar la especialidad")
	}

	return helper.JsonUpdated(c, "Especialidad actualizada", dto.ToSpecialtyDTO(specialty))
}

// =============================
// ➕ Agregar área de competencia
// =============================
func (ctrl *SpecialtyController) AddCompetencyArea(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.CreateCompetencyAreaRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}
	if err := validateSpecialty.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&model.SpecialtyModel{}).Where("especialidad_id = ?", id).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al verificar la especialidad")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Especialidad no encontrada")
	}

	area := model.CompetencyAreaModel{
		AreaEspecialidadID: id,
		AreaNumero:         body.AreaNumero,
		AreaNombre:         body.AreaNombre,
		AreaDescripcion:    body.AreaDescripcion,
	}
	if err := ctrl.DB.Create(&area).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al crear el área")
	}

	return helper.JsonCreated(c, "Área creada", dto.ToCompetencyAreaDTO(area))
}

// =============================
// ➕ Agregar tarea a un área
// =============================
func (ctrl *SpecialtyController) AddTask(c *fiber.Ctx) error {
	areaID := c.Params("areaId")

	var body dto.CreateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}
	if err := validateSpecialty.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&model.CompetencyAreaModel{}).Where("area_id = ?", areaID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al verificar el área")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Área no encontrada")
	}

	task := model.TaskModel{
		TareaAreaID:      areaID,
		TareaDescripcion: body.TareaDescripcion,
		TareaActiva:      true,
	}
	if body.TareaActiva != nil {
		task.TareaActiva = *body.TareaActiva
	}
	if err := ctrl.DB.Create(&task).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al crear la tarea")
	}

	return helper.JsonCreated(c, "Tarea creada", dto.ToTaskDTO(task))
}

// =============================
// 📄 Competencias de empleabilidad (catálogo global)
// =============================
func (ctrl *SpecialtyController) GetEmployabilityCompetencies(c *fiber.Ctx) error {
	var competencies []model.EmployabilityCompetencyModel
	if err := ctrl.DB.Order("competencia_nombre ASC").Find(&competencies).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar competencias")
	}

	result := make([]dto.EmployabilityCompetencyDTO, 0, len(competencies))
	for _, comp := range competencies {
		result = append(result, dto.ToEmployabilityCompetencyDTO(comp))
	}
	return helper.JsonOK(c, "Competencias de empleabilidad", result)
}
