package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	companyModel "siggip_backend/internals/features/companies/model"
	"siggip_backend/internals/features/offers/dto"
	"siggip_backend/internals/features/offers/model"
	specialtyModel "siggip_backend/internals/features/specialties/model"
	helper "siggip_backend/internals/helpers"
)

var validateOffer = validator.New()

type OfferController struct {
	DB *gorm.DB
}

func NewOfferController(db *gorm.DB) *OfferController {
	return &OfferController{DB: db}
}

// =============================
// ➕ Publicar oferta
// =============================
func (ctrl *OfferController) CreateOffer(c *fiber.Ctx) error {
	var body dto.CreateOfferRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}
	if err := validateOffer.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	limite, inicio, err := dto.ParseOfferDates(body.OfertaFechaLimitePostulacion, body.OfertaFechaInicio, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// referencias deben existir
	var count int64
	if err := ctrl.DB.Model(&companyModel.CompanyModel{}).Where("empresa_id = ?", body.OfertaEmpresaID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al verificar la empresa")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
	}
	if err := ctrl.DB.Model(&specialtyModel.SpecialtyModel{}).Where("especialidad_id = ?", body.OfertaEspecialidadID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al verificar la especialidad")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Especialidad no encontrada")
	}

	offer := model.OfferModel{
		OfertaEmpresaID:              body.OfertaEmpresaID,
		OfertaEspecialidadID:         body.OfertaEspecialidadID,
		OfertaTitulo:                 body.OfertaTitulo,
		OfertaDescripcion:            body.OfertaDescripcion,
		OfertaCupos:                  body.OfertaCupos,
		OfertaRequisitos:             body.OfertaRequisitos,
		OfertaFechaLimitePostulacion: limite,
		OfertaFechaInicio:            inicio,
		OfertaEstado:                 "abierta",
	}
	if err := ctrl.DB.Create(&offer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al publicar la oferta")
	}

	return helper.JsonCreated(c, "Oferta publicada", dto.ToOfferDTO(offer))
}

// =============================
// 📄 Listar ofertas (paginado, filtros)
// =============================
func (ctrl *OfferController) GetAllOffers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.OfferModel{})
	if estado := c.Query("estado"); estado != "" {
		q = q.Where("oferta_estado = ?", estado)
	}
	if esp := c.Query("especialidad"); esp != "" {
		q = q.Where("oferta_especialidad_id = ?", esp)
	}
	if emp := c.Query("empresa"); emp != "" {
		q = q.Where("oferta_empresa_id = ?", emp)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al contar ofertas")
	}

	var offers []model.OfferModel
	if err := q.Order("oferta_fecha_limite_postulacion ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&offers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar ofertas")
	}

	return helper.JsonList(c, "Ofertas", dto.ToOfferDTOs(offers), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =============================
// 🔍 Detalle de oferta
// =============================
func (ctrl *OfferController) GetOfferByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var offer model.OfferModel
	if err := ctrl.DB.First(&offer, "oferta_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Oferta no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar la oferta")
	}

	return helper.JsonOK(c, "Oferta", dto.ToOfferDTO(offer))
}

// =============================
// 🔄 Actualizar oferta
// =============================
func (ctrl *OfferController) UpdateOffer(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateOfferRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}
	if err := validateOffer.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	limite, inicio, err := dto.ParseOfferDates(body.OfertaFechaLimitePostulacion, body.OfertaFechaInicio, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var offer model.OfferModel
	if err := ctrl.DB.First(&offer, "oferta_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Oferta no encontrada")
	}

	offer.OfertaTitulo = body.OfertaTitulo
	offer.OfertaDescripcion = body.OfertaDescripcion
	offer.OfertaCupos = body.OfertaCupos
	offer.OfertaRequisitos = body.OfertaRequisitos
	offer.OfertaFechaLimitePostulacion = limite
	offer.OfertaFechaInicio = inicio
	offer.OfertaEstado = body.OfertaEstado

	if err := ctrl.DB.Save(&offer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar la oferta")
	}

	return helper.JsonUpdated(c, "Oferta actualizada", dto.ToOfferDTO(offer))
}

// =============================
// 🗑️ Eliminar oferta (soft delete)
// =============================
func (ctrl *OfferController) DeleteOffer(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.OfferModel{}, "oferta_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al eliminar la oferta")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Oferta no encontrada")
	}

	return helper.JsonDeleted(c, "Oferta eliminada", nil)
}
