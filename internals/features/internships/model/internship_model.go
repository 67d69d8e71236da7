package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InternshipModel struct {
	PracticaID             string         `gorm:"column:practica_id;primaryKey;type:uuid" json:"practica_id"`
	PracticaEstudianteID   string         `gorm:"column:practica_estudiante_id;type:uuid;not null;index" json:"practica_estudiante_id"`
	PracticaEmpresaID      string         `gorm:"column:practica_empresa_id;type:uuid;not null;index" json:"practica_empresa_id"`
	PracticaEspecialidadID string         `gorm:"column:practica_especialidad_id;type:uuid;not null;index" json:"practica_especialidad_id"`
	PracticaOfertaID       *string        `gorm:"column:practica_oferta_id;type:uuid" json:"practica_oferta_id,omitempty"`
	PracticaEstado         string         `gorm:"column:practica_estado;type:varchar(20);not null;default:'asignada'" json:"practica_estado"`
	PracticaFechaInicio    time.Time      `gorm:"column:practica_fecha_inicio;type:date" json:"practica_fecha_inicio"`
	PracticaFechaTermino   *time.Time     `gorm:"column:practica_fecha_termino;type:date" json:"practica_fecha_termino,omitempty"`
	PracticaCreatedAt      time.Time      `gorm:"column:practica_created_at;autoCreateTime" json:"practica_created_at"`
	PracticaUpdatedAt      time.Time      `gorm:"column:practica_updated_at;autoUpdateTime" json:"practica_updated_at"`
	PracticaDeletedAt      gorm.DeletedAt `gorm:"column:practica_deleted_at;index" json:"-"`
}

// TableName sets the table name for InternshipModel
func (InternshipModel) TableName() string {
	return "practicas"
}

func (m *InternshipModel) BeforeCreate(tx *gorm.DB) error {
	if m.PracticaID == "" {
		m.PracticaID = uuid.NewString()
	}
	return nil
}
