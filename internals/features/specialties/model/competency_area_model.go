package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Área de competencia técnica de una especialidad. Datos de referencia:
// se siembran con el catálogo y no cambian durante una evaluación.
type CompetencyAreaModel struct {
	AreaID             string    `gorm:"column:area_id;primaryKey;type:uuid" json:"area_id"`
	AreaEspecialidadID string    `gorm:"column:area_especialidad_id;type:uuid;not null;index" json:"area_especialidad_id"`
	AreaNumero         int       `gorm:"column:area_numero;not null" json:"area_numero"`
	AreaNombre         string    `gorm:"column:area_nombre;type:varchar(200);not null" json:"area_nombre"`
	AreaDescripcion    string    `gorm:"column:area_descripcion;type:text" json:"area_descripcion"`
	AreaCreatedAt      time.Time `gorm:"column:area_created_at;autoCreateTime" json:"area_created_at"`

	Tareas []TaskModel `gorm:"foreignKey:TareaAreaID;references:AreaID" json:"tareas,omitempty"`
}

// TableName sets the table name for CompetencyAreaModel
func (CompetencyAreaModel) TableName() string {
	return "areas_competencia"
}

func (m *CompetencyAreaModel) BeforeCreate(tx *gorm.DB) error {
	if m.AreaID == "" {
		m.AreaID = uuid.NewString()
	}
	return nil
}
