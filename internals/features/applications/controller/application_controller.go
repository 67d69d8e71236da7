package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siggip_backend/internals/constants"
	"siggip_backend/internals/features/applications/dto"
	"siggip_backend/internals/features/applications/model"
	internshipModel "siggip_backend/internals/features/internships/model"
	offerModel "siggip_backend/internals/features/offers/model"
	helper "siggip_backend/internals/helpers"
)

var validateApplication = validator.New()

type ApplicationController struct {
	DB *gorm.DB
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{DB: db}
}

// =============================
// ➕ Postular a una oferta (estudiante)
// =============================
func (ctrl *ApplicationController) CreateApplication(c *fiber.Ctx) error {
	studentID, _ := c.Locals("user_id").(string)
	if studentID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateApplicationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}
	if err := validateApplication.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// la oferta debe existir, estar abierta y con plazo vigente
	var offer offerModel.OfferModel
	if err := ctrl.DB.First(&offer, "oferta_id = ?", body.PostulacionOfertaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Oferta no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar la oferta")
	}
	if offer.OfertaEstado != constants.OfertaAbierta {
		return helper.JsonError(c, fiber.StatusBadRequest, "La oferta ya está cerrada")
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if offer.OfertaFechaLimitePostulacion.Before(today) {
		return helper.JsonError(c, fiber.StatusBadRequest, "El plazo de postulación ya venció")
	}

	// pre-chequeo de postulación duplicada
	var count int64
	if err := ctrl.DB.Model(&model.ApplicationModel{}).
		Where("postulacion_oferta_id = ? AND postulacion_estudiante_id = ?", body.PostulacionOfertaID, studentID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al verificar postulaciones")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ya existe una postulación a esta oferta")
	}

	application := model.ApplicationModel{
		PostulacionOfertaID:     body.PostulacionOfertaID,
		PostulacionEstudianteID: studentID,
		PostulacionEstado:       constants.PostulacionPendiente,
		PostulacionComentario:   body.PostulacionComentario,
	}
	if err := ctrl.DB.Create(&application).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al registrar la postulación")
	}

	return helper.JsonCreated(c, "Postulación registrada", dto.ToApplicationDTO(application))
}

// =============================
// 📄 Mis postulaciones (estudiante)
// =============================
func (ctrl *ApplicationController) GetMyApplications(c *fiber.Ctx) error {
	studentID, _ := c.Locals("user_id").(string)
	if studentID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var applications []model.ApplicationModel
	if err := ctrl.DB.Where("postulacion_estudiante_id = ?", studentID).
		Order("postulacion_created_at DESC").
		Find(&applications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar postulaciones")
	}

	return helper.JsonOK(c, "Postulaciones", dto.ToApplicationDTOs(applications))
}

// =============================
// 📄 Postulaciones por oferta (coordinador)
// =============================
func (ctrl *ApplicationController) GetApplicationsByOffer(c *fiber.Ctx) error {
	offerID := c.Params("ofertaId")

	var applications []model.ApplicationModel
	if err := ctrl.DB.Where("postulacion_oferta_id = ?", offerID).
		Order("postulacion_created_at ASC").
		Find(&applications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar postulaciones")
	}

	return helper.JsonOK(c, "Postulaciones de la oferta", dto.ToApplicationDTOs(applications))
}

// =============================
// 🔄 Resolver postulación (coordinador)
// Aceptar crea la práctica asociada en la misma transacción.
// =============================
func (ctrl *ApplicationController) ResolveApplication(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.ResolveApplicationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}
	if err := validateApplication.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var application model.ApplicationModel
	if err := ctrl.DB.First(&application, "postulacion_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Postulación no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar la postulación")
	}
	if application.PostulacionEstado != constants.PostulacionPendiente {
		return helper.JsonError(c, fiber.StatusBadRequest, "La postulación ya fue resuelta")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		application.PostulacionEstado = body.PostulacionEstado
		application.PostulacionComentario = body.PostulacionComentario
		if err := tx.Save(&application).Error; err != nil {
			return err
		}

		if body.PostulacionEstado != constants.PostulacionAceptada {
			return nil
		}

		// aceptada → nace la práctica en estado asignada
		var offer offerModel.OfferModel
		if err := tx.First(&offer, "oferta_id = ?", application.PostulacionOfertaID).Error; err != nil {
			return err
		}
		internship := internshipModel.InternshipModel{
			PracticaEstudianteID:   application.PostulacionEstudianteID,
			PracticaEmpresaID:      offer.OfertaEmpresaID,
			PracticaEspecialidadID: offer.OfertaEspecialidadID,
			PracticaOfertaID:       &offer.OfertaID,
			PracticaEstado:         constants.PracticaAsignada,
			PracticaFechaInicio:    offer.OfertaFechaInicio,
		}
		return tx.Create(&internship).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al resolver la postulación")
	}

	return helper.JsonUpdated(c, "Postulación resuelta", dto.ToApplicationDTO(application))
}
