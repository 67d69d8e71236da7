package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationModel struct {
	PostulacionID           string    `gorm:"column:postulacion_id;primaryKey;type:uuid" json:"postulacion_id"`
	PostulacionOfertaID     string    `gorm:"column:postulacion_oferta_id;type:uuid;not null;index:idx_postulacion_oferta_estudiante,unique" json:"postulacion_oferta_id"`
	PostulacionEstudianteID string    `gorm:"column:postulacion_estudiante_id;type:uuid;not null;index:idx_postulacion_oferta_estudiante,unique" json:"postulacion_estudiante_id"`
	PostulacionEstado       string    `gorm:"column:postulacion_estado;type:varchar(20);not null;default:'pendiente'" json:"postulacion_estado"`
	PostulacionComentario   string    `gorm:"column:postulacion_comentario;type:text" json:"postulacion_comentario"`
	PostulacionCreatedAt    time.Time `gorm:"column:postulacion_created_at;autoCreateTime" json:"postulacion_created_at"`
	PostulacionUpdatedAt    time.Time `gorm:"column:postulacion_updated_at;autoUpdateTime" json:"postulacion_updated_at"`
}

// TableName sets the table name for ApplicationModel
func (ApplicationModel) TableName() string {
	return "postulaciones"
}

func (m *ApplicationModel) BeforeCreate(tx *gorm.DB) error {
	if m.PostulacionID == "" {
		m.PostulacionID = uuid.NewString()
	}
	return nil
}
