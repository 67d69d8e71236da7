package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siggip_backend/internals/features/companies/dto"
	"siggip_backend/internals/features/companies/model"
	helper "siggip_backend/internals/helpers"
)

var validateCompany = validator.New()

type CompanyController struct {
	DB *gorm.DB
}

func NewCompanyController(db *gorm.DB) *CompanyController {
	return &CompanyController{DB: db}
}

// =============================
// ➕ Registrar empresa
// =============================
func (ctrl *CompanyController) CreateCompany(c *fiber.Ctx) error {
	var body dto.CreateCompanyRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}
	if err := validateCompany.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !helper.ValidateRUT(body.EmpresaRut) {
		return helper.JsonError(c, fiber.StatusBadRequest, "RUT de empresa inválido")
	}
	rut := helper.FormatRUT(body.EmpresaRut)

	// pre-chequeo de RUT duplicado
	var count int64
	if err := ctrl.DB.Model(&model.CompanyModel{}).Where("empresa_rut = ?", rut).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al verificar RUT")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ya existe una empresa con ese RUT")
	}

	company := model.CompanyModel{
		EmpresaRut:            rut,
		EmpresaRazonSocial:    body.EmpresaRazonSocial,
		EmpresaGiro:           body.EmpresaGiro,
		EmpresaDireccion:      body.EmpresaDireccion,
		EmpresaEmail:          body.EmpresaEmail,
		EmpresaTelefono:       body.EmpresaTelefono,
		EmpresaContactoNombre: body.EmpresaContactoNombre,
	}
	if err := ctrl.DB.Create(&company).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al registrar la empresa")
	}

	return helper.JsonCreated(c, "Empresa registrada", dto.ToCompanyDTO(company))
}

// =============================
// 📄 Listar empresas (paginado, con búsqueda)
// =============================
func (ctrl *CompanyController) GetAllCompanies(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CompanyModel{})
	if search := c.Query("q"); search != "" {
		q = q.Where("empresa_razon_social ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al contar empresas")
	}

	var companies []model.CompanyModel
	if err := q.Order("empresa_razon_social ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&companies).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar empresas")
	}

	return helper.JsonList(c, "Empresas", dto.ToCompanyDTOs(companies), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =============================
// 🔍 Detalle de empresa
// =============================
func (ctrl *CompanyController) GetCompanyByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var company model.CompanyModel
	if err := ctrl.DB.First(&company, "empresa_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar la empresa")
	}

	return helper.JsonOK(c, "Empresa", dto.ToCompanyDTO(company))
}

// =============================
// 🔄 Actualizar empresa
// =============================
func (ctrl *CompanyController) UpdateCompany(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateCompanyRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}
	if err := validateCompany.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var company model.CompanyModel
	if err := ctrl.DB.First(&company, "empresa_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
	}

	company.EmpresaRazonSocial = body.EmpresaRazonSocial
	company.EmpresaGiro = body.EmpresaGiro
	company.EmpresaDireccion = body.EmpresaDireccion
	company.EmpresaEmail = body.EmpresaEmail
	company.EmpresaTelefono = body.EmpresaTelefono
	company.EmpresaContactoNombre = body.EmpresaContactoNombre

	if err := ctrl.DB.Save(&company).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar la empresa")
	}

	return helper.JsonUpdated(c, "Empresa actualizada", dto.ToCompanyDTO(company))
}

// =============================
// 🗑️ Eliminar empresa (soft delete)
// =============================
func (ctrl *CompanyController) DeleteCompany(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.CompanyModel{}, "empresa_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al eliminar la empresa")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
	}

	return helper.JsonDeleted(c, "Empresa eliminada", nil)
}
