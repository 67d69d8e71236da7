package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type OfferModel struct {
	OfertaID                     string         `gorm:"column:oferta_id;primaryKey;type:uuid" json:"oferta_id"`
	OfertaEmpresaID              string         `gorm:"column:oferta_empresa_id;type:uuid;not null;index" json:"oferta_empresa_id"`
	OfertaEspecialidadID         string         `gorm:"column:oferta_especialidad_id;type:uuid;not null;index" json:"oferta_especialidad_id"`
	OfertaTitulo                 string         `gorm:"column:oferta_titulo;type:varchar(200);not null" json:"oferta_titulo"`
	OfertaDescripcion            string         `gorm:"column:oferta_descripcion;type:text" json:"oferta_descripcion"`
	OfertaCupos                  int            `gorm:"column:oferta_cupos;not null;default:1" json:"oferta_cupos"`
	OfertaRequisitos             pq.StringArray `gorm:"column:oferta_requisitos;type:text[]" json:"oferta_requisitos"`
	OfertaFechaLimitePostulacion time.Time      `gorm:"column:oferta_fecha_limite_postulacion;type:date;not null" json:"oferta_fecha_limite_postulacion"`
	OfertaFechaInicio            time.Time      `gorm:"column:oferta_fecha_inicio;type:date;not null" json:"oferta_fecha_inicio"`
	OfertaEstado                 string         `gorm:"column:oferta_estado;type:varchar(20);not null;default:'abierta'" json:"oferta_estado"`
	OfertaCreatedAt              time.Time      `gorm:"column:oferta_created_at;autoCreateTime" json:"oferta_created_at"`
	OfertaUpdatedAt              time.Time      `gorm:"column:oferta_updated_at;autoUpdateTime" json:"oferta_updated_at"`
	OfertaDeletedAt              gorm.DeletedAt `gorm:"column:oferta_deleted_at;index" json:"-"`
}

// TableName sets the table name for OfferModel
func (OfferModel) TableName() string {
	return "ofertas"
}

func (m *OfferModel) BeforeCreate(tx *gorm.DB) error {
	if m.OfertaID == "" {
		m.OfertaID = uuid.NewString()
	}
	return nil
}
