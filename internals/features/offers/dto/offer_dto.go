package dto

import (
	"errors"
	"time"

	"siggip_backend/internals/features/offers/model"
)

const dateLayout = "2006-01-02"

// ============================
// Response DTO
// ============================

type OfferDTO struct {
	OfertaID                     string   `json:"oferta_id"`
	OfertaEmpresaID              string   `json:"oferta_empresa_id"`
	OfertaEspecialidadID         string   `json:"oferta_especialidad_id"`
	OfertaTitulo                 string   `json:"oferta_titulo"`
	OfertaDescripcion            string   `json:"oferta_descripcion"`
	OfertaCupos                  int      `json:"oferta_cupos"`
	OfertaRequisitos             []string `json:"oferta_requisitos"`
	OfertaFechaLimitePostulacion string   `json:"oferta_fecha_limite_postulacion"`
	OfertaFechaInicio            string   `json:"oferta_fecha_inicio"`
	OfertaEstado                 string   `json:"oferta_estado"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateOfferRequest struct {
	OfertaEmpresaID              string   `json:"oferta_empresa_id" validate:"required,uuid"`
	OfertaEspecialidadID         string   `json:"oferta_especialidad_id" validate:"required,uuid"`
	OfertaTitulo                 string   `json:"oferta_titulo" validate:"required,min=5"`
	OfertaDescripcion            string   `json:"oferta_descripcion"`
	OfertaCupos                  int      `json:"oferta_cupos" validate:"required,min=1"`
	OfertaRequisitos             []string `json:"oferta_requisitos"`
	OfertaFechaLimitePostulacion string   `json:"oferta_fecha_limite_postulacion" validate:"required"`
	OfertaFechaInicio            string   `json:"oferta_fecha_inicio" validate:"required"`
}

type UpdateOfferRequest struct {
	OfertaTitulo                 string   `json:"oferta_titulo" validate:"required,min=5"`
	OfertaDescripcion            string   `json:"oferta_descripcion"`
	OfertaCupos                  int      `json:"oferta_cupos" validate:"required,min=1"`
	OfertaRequisitos             []string `json:"oferta_requisitos"`
	OfertaFechaLimitePostulacion string   `json:"oferta_fecha_limite_postulacion" validate:"required"`
	OfertaFechaInicio            string   `json:"oferta_fecha_inicio" validate:"required"`
	OfertaEstado                 string   `json:"oferta_estado" validate:"required,oneof=abierta cerrada"`
}

// ParseOfferDates valida el orden de fechas de una oferta: la fecha límite de
// postulación debe ser estrictamente anterior al inicio, y ninguna puede estar
// en el pasado (comparación por día, no por hora).
func ParseOfferDates(limiteStr, inicioStr string, now time.Time) (limite, inicio time.Time, err error) {
	limite, err = time.Parse(dateLayout, limiteStr)
	if err != nil {
		return limite, inicio, errors.New("fecha límite de postulación inválida (formato YYYY-MM-DD)")
	}
	inicio, err = time.Parse(dateLayout, inicioStr)
	if err != nil {
		return limite, inicio, errors.New("fecha de inicio inválida (formato YYYY-MM-DD)")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if limite.Before(today) {
		return limite, inicio, errors.New("la fecha límite de postulación no puede estar en el pasado")
	}
	if inicio.Before(today) {
		return limite, inicio, errors.New("la fecha de inicio no puede estar en el pasado")
	}
	if !limite.Before(inicio) {
		return limite, inicio, errors.New("la fecha límite de postulación debe ser anterior a la fecha de inicio")
	}
	return limite, inicio, nil
}

// ============================
// Converter
// ============================

func ToOfferDTO(m model.OfferModel) OfferDTO {
	return OfferDTO{
		OfertaID:                     m.OfertaID,
		OfertaEmpresaID:              m.OfertaEmpresaID,
		OfertaEspecialidadID:         m.OfertaEspecialidadID,
		OfertaTitulo:                 m.OfertaTitulo,
		OfertaDescripcion:            m.OfertaDescripcion,
		OfertaCupos:                  m.OfertaCupos,
		OfertaRequisitos:             m.OfertaRequisitos,
		OfertaFechaLimitePostulacion: m.OfertaFechaLimitePostulacion.Format(dateLayout),
		OfertaFechaInicio:            m.OfertaFechaInicio.Format(dateLayout),
		OfertaEstado:                 m.OfertaEstado,
	}
}

func ToOfferDTOs(models []model.OfferModel) []OfferDTO {
	result := make([]OfferDTO, 0, len(models))
	for _, m := range models {
		result = append(result, ToOfferDTO(m))
	}
	return result
}
