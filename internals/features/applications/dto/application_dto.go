package dto

import (
	"time"

	"siggip_backend/internals/features/applications/model"
)

// ============================
// Response DTO
// ============================

type ApplicationDTO struct {
	PostulacionID           string    `json:"postulacion_id"`
	PostulacionOfertaID     string    `json:"postulacion_oferta_id"`
	PostulacionEstudianteID string    `json:"postulacion_estudiante_id"`
	PostulacionEstado       string    `json:"postulacion_estado"`
	PostulacionComentario   string    `json:"postulacion_comentario"`
	PostulacionCreatedAt    time.Time `json:"postulacion_created_at"`
}

// ============================
// Request DTOs
// ============================

type CreateApplicationRequest struct {
	PostulacionOfertaID   string `json:"postulacion_oferta_id" validate:"required,uuid"`
	PostulacionComentario string `json:"postulacion_comentario"`
}

type ResolveApplicationRequest struct {
	PostulacionEstado     string `json:"postulacion_estado" validate:"required,oneof=aceptada rechazada"`
	PostulacionComentario string `json:"postulacion_comentario"`
}

// ============================
// Converter
// ============================

func ToApplicationDTO(m model.ApplicationModel) ApplicationDTO {
	return ApplicationDTO{
		PostulacionID:           m.PostulacionID,
		PostulacionOfertaID:     m.PostulacionOfertaID,
		PostulacionEstudianteID: m.PostulacionEstudianteID,
		PostulacionEstado:       m.PostulacionEstado,
		PostulacionComentario:   m.PostulacionComentario,
		PostulacionCreatedAt:    m.PostulacionCreatedAt,
	}
}

func ToApplicationDTOs(models []model.ApplicationModel) []ApplicationDTO {
	result := make([]ApplicationDTO, 0, len(models))
	for _, m := range models {
		result = append(result, ToApplicationDTO(m))
	}
	return result
}
