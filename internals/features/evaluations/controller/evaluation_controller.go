package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siggip_backend/internals/constants"
	"siggip_backend/internals/features/evaluations/dto"
	"siggip_backend/internals/features/evaluations/scoring"
	"siggip_backend/internals/features/evaluations/service"
	internshipModel "siggip_backend/internals/features/internships/model"
	specialtyModel "siggip_backend/internals/features/specialties/model"
	helper "siggip_backend/internals/helpers"
)

type EvaluationController struct {
	DB      *gorm.DB
	Service *service.EvaluationService
}

func NewEvaluationController(db *gorm.DB) *EvaluationController {
	return &EvaluationController{DB: db, Service: service.NewEvaluationService(db)}
}

var validate = validator.New()

// GET /api/a/evaluaciones/estructura/:idPractica
// Entrega la pauta completa que el asistente necesita para renderizarse:
// áreas con sus tareas activas, catálogo de empleabilidad y las escalas.
func (ctrl *EvaluationController) GetStructure(c *fiber.Ctx) error {
	practicaID := c.Params("idPractica")

	var practica internshipModel.InternshipModel
	if err := ctrl.DB.First(&practica, "practica_id = ?", practicaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Práctica no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar la práctica")
	}

	var areas []specialtyModel.CompetencyAreaModel
	if err := ctrl.DB.
		Preload("Tareas", "tarea_activa = ?", true).
		Where("area_especialidad_id = ?", practica.PracticaEspecialidadID).
		Order("area_numero ASC").
		Find(&areas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al cargar las áreas de competencia")
	}

	var competencias []specialtyModel.EmployabilityCompetencyModel
	if err := ctrl.DB.Order("competencia_nombre ASC").Find(&competencias).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al cargar las competencias de empleabilidad")
	}

	return helper.JsonOK(c, "Estructura de evaluación obtenida", fiber.Map{
		"practica_id":                practica.PracticaID,
		"especialidad_id":            practica.PracticaEspecialidadID,
		"areas":                      areas,
		"competencias_empleabilidad": competencias,
		"escala_notas": fiber.Map{
			"minima": constants.NotaMinima,
			"maxima": constants.NotaMaxima,
		},
		"niveles_logro": constants.NivelesLogro,
	})
}

// GET /api/a/evaluaciones/verificar/:idPractica
func (ctrl *EvaluationController) VerifyEvaluation(c *fiber.Ctx) error {
	practicaID := c.Params("idPractica")

	existe, err := ctrl.Service.Exists(practicaID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al verificar la evaluación")
	}

	out := dto.VerifyEvaluationDTO{Existe: existe}
	if existe {
		eval, err := ctrl.Service.Load(practicaID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error al cargar la evaluación")
		}
		evalDTO := dto.ToEvaluationDTO(*eval)
		out.Evaluacion = &evalDTO
	}

	return helper.JsonOK(c, "Verificación realizada", out)
}

// GET /api/a/evaluaciones/:idPractica
func (ctrl *EvaluationController) GetEvaluation(c *fiber.Ctx) error {
	eval, err := ctrl.Service.Load(c.Params("idPractica"))
	if err != nil {
		if errors.Is(err, service.ErrEvaluacionNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "La práctica no tiene evaluación")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al cargar la evaluación")
	}
	return helper.JsonOK(c, "Evaluación obtenida", dto.ToEvaluationDTO(*eval))
}

// POST /api/a/evaluaciones/:idPractica
// PUT  /api/a/evaluaciones/:idPractica
// Ambos verbos guardan el borrador completo; el servicio decide si crea
// o actualiza apoyado en la unicidad por práctica.
func (ctrl *EvaluationController) SaveEvaluation(c *fiber.Ctx) error {
	practicaID := c.Params("idPractica")

	var req dto.SaveEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	eval, err := ctrl.Service.SaveDraft(practicaID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPracticaNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Práctica no encontrada")
		case errors.Is(err, service.ErrEvaluacionCompletada):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error al guardar la evaluación")
		}
	}

	if c.Method() == fiber.MethodPost {
		return helper.JsonCreated(c, "Evaluación guardada", dto.ToEvaluationDTO(*eval))
	}
	return helper.JsonUpdated(c, "Evaluación actualizada", dto.ToEvaluationDTO(*eval))
}

// POST /api/a/evaluaciones/:idPractica/finalizar
// El cierre re-valida todos los requisitos en el servidor; si algo falta
// la respuesta identifica el paso del asistente donde corregir.
func (ctrl *EvaluationController) FinalizeEvaluation(c *fiber.Ctx) error {
	eval, err := ctrl.Service.Finalize(c.Params("idPractica"))
	if err != nil {
		var gate *scoring.GateError
		switch {
		case errors.As(err, &gate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success":    false,
				"message":    gate.Mensaje,
				"error_code": "REQUISITOS_INCOMPLETOS",
				"paso":       gate.Paso,
			})
		case errors.Is(err, service.ErrEvaluacionNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "La práctica no tiene evaluación")
		case errors.Is(err, service.ErrEvaluacionCompletada):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error al finalizar la evaluación")
		}
	}

	return helper.JsonOK(c, "Evaluación finalizada", dto.ToEvaluationDTO(*eval))
}
