package dto

import (
	"time"

	"siggip_backend/internals/features/internships/model"
)

// ============================
// Response DTO
// ============================

type InternshipDTO struct {
	PracticaID             string     `json:"practica_id"`
	PracticaEstudianteID   string     `json:"practica_estudiante_id"`
	PracticaEmpresaID      string     `json:"practica_empresa_id"`
	PracticaEspecialidadID string     `json:"practica_especialidad_id"`
	PracticaOfertaID       *string    `json:"practica_oferta_id,omitempty"`
	PracticaEstado         string     `json:"practica_estado"`
	PracticaFechaInicio    time.Time  `json:"practica_fecha_inicio"`
	PracticaFechaTermino   *time.Time `json:"practica_fecha_termino,omitempty"`
}

// ============================
// Request DTOs
// ============================

type CreateInternshipRequest struct {
	PracticaEstudianteID   string `json:"practica_estudiante_id" validate:"required,uuid"`
	PracticaEmpresaID      string `json:"practica_empresa_id" validate:"required,uuid"`
	PracticaEspecialidadID string `json:"practica_especialidad_id" validate:"required,uuid"`
	PracticaFechaInicio    string `json:"practica_fecha_inicio" validate:"required"`
}

type UpdateInternshipStateRequest struct {
	PracticaEstado string `json:"practica_estado" validate:"required,oneof=asignada en_curso completada"`
}

// ============================
// Converter
// ============================

func ToInternshipDTO(m model.InternshipModel) InternshipDTO {
	return InternshipDTO{
		PracticaID:             m.PracticaID,
		PracticaEstudianteID:   m.PracticaEstudianteID,
		PracticaEmpresaID:      m.PracticaEmpresaID,
		PracticaEspecialidadID: m.PracticaEspecialidadID,
		PracticaOfertaID:       m.PracticaOfertaID,
		PracticaEstado:         m.PracticaEstado,
		PracticaFechaInicio:    m.PracticaFechaInicio,
		PracticaFechaTermino:   m.PracticaFechaTermino,
	}
}

func ToInternshipDTOs(models []model.InternshipModel) []InternshipDTO {
	result := make([]InternshipDTO, 0, len(models))
	for _, m := range models {
		result = append(result, ToInternshipDTO(m))
	}
	return result
}
