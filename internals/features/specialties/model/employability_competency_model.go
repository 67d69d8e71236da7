package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Competencia de empleabilidad (transversal, global a todas las especialidades).
type EmployabilityCompetencyModel struct {
	CompetenciaID          string    `gorm:"column:competencia_id;primaryKey;type:uuid" json:"competencia_id"`
	CompetenciaNombre      string    `gorm:"column:competencia_nombre;type:varchar(200);uniqueIndex;not null" json:"competencia_nombre"`
	CompetenciaDescripcion string    `gorm:"column:competencia_descripcion;type:text" json:"competencia_descripcion"`
	CompetenciaCreatedAt   time.Time `gorm:"column:competencia_created_at;autoCreateTime" json:"competencia_created_at"`
}

// TableName sets the table name for EmployabilityCompetencyModel
func (EmployabilityCompetencyModel) TableName() string {
	return "competencias_empleabilidad"
}

func (m *EmployabilityCompetencyModel) BeforeCreate(tx *gorm.DB) error {
	if m.CompetenciaID == "" {
		m.CompetenciaID = uuid.NewString()
	}
	return nil
}
