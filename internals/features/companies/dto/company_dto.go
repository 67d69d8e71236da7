package dto

import (
	"time"

	"siggip_backend/internals/features/companies/model"
)

// ============================
// Response DTO
// ============================

type CompanyDTO struct {
	EmpresaID             string    `json:"empresa_id"`
	EmpresaRut            string    `json:"empresa_rut"`
	EmpresaRazonSocial    string    `json:"empresa_razon_social"`
	EmpresaGiro           string    `json:"empresa_giro"`
	EmpresaDireccion      string    `json:"empresa_direccion"`
	EmpresaEmail          string    `json:"empresa_email"`
	EmpresaTelefono       string    `json:"empresa_telefono"`
	EmpresaContactoNombre string    `json:"empresa_contacto_nombre"`
	EmpresaCreatedAt      time.Time `json:"empresa_created_at"`
	EmpresaUpdatedAt      time.Time `json:"empresa_updated_at"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateCompanyRequest struct {
	EmpresaRut            string `json:"empresa_rut" validate:"required"`
	EmpresaRazonSocial    string `json:"empresa_razon_social" validate:"required,min=3"`
	EmpresaGiro           string `json:"empresa_giro"`
	EmpresaDireccion      string `json:"empresa_direccion"`
	EmpresaEmail          string `json:"empresa_email" validate:"omitempty,email"`
	EmpresaTelefono       string `json:"empresa_telefono"`
	EmpresaContactoNombre string `json:"empresa_contacto_nombre"`
}

type UpdateCompanyRequest struct {
	EmpresaRazonSocial    string `json:"empresa_razon_social" validate:"required,min=3"`
	EmpresaGiro           string `json:"empresa_giro"`
	EmpresaDireccion      string `json:"empresa_direccion"`
	EmpresaEmail          string `json:"empresa_email" validate:"omitempty,email"`
	EmpresaTelefono       string `json:"empresa_telefono"`
	EmpresaContactoNombre string `json:"empresa_contacto_nombre"`
}

// ============================
// Converter
// ============================

func ToCompanyDTO(m model.CompanyModel) CompanyDTO {
	return CompanyDTO{
		EmpresaID:             m.EmpresaID,
		EmpresaRut:            m.EmpresaRut,
		EmpresaRazonSocial:    m.EmpresaRazonSocial,
		EmpresaGiro:           m.EmpresaGiro,
		EmpresaDireccion:      m.EmpresaDireccion,
		EmpresaEmail:          m.EmpresaEmail,
		EmpresaTelefono:       m.EmpresaTelefono,
		EmpresaContactoNombre: m.EmpresaContactoNombre,
		EmpresaCreatedAt:      m.EmpresaCreatedAt,
		EmpresaUpdatedAt:      m.EmpresaUpdatedAt,
	}
}

func ToCompanyDTOs(models []model.CompanyModel) []CompanyDTO {
	result := make([]CompanyDTO, 0, len(models))
	for _, m := range models {
		result = append(result, ToCompanyDTO(m))
	}
	return result
}
