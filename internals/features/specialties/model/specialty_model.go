package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpecialtyModel struct {
	EspecialidadID          string    `gorm:"column:especialidad_id;primaryKey;type:uuid" json:"especialidad_id"`
	EspecialidadNombre      string    `gorm:"column:especialidad_nombre;type:varchar(150);uniqueIndex;not null" json:"especialidad_nombre"`
	EspecialidadDescripcion string    `gorm:"column:especialidad_descripcion;type:text" json:"especialidad_descripcion"`
	EspecialidadCreatedAt   time.Time `gorm:"column:especialidad_created_at;autoCreateTime" json:"especialidad_created_at"`
	EspecialidadUpdatedAt   time.Time `gorm:"column:especialidad_updated_at;autoUpdateTime" json:"especialidad_updated_at"`
}

// TableName sets the table name for SpecialtyModel
func (SpecialtyModel) TableName() string {
	return "especialidades"
}

func (m *SpecialtyModel) BeforeCreate(tx *gorm.DB) error {
	if m.EspecialidadID == "" {
		m.EspecialidadID = uuid.NewString()
	}
	return nil
}
