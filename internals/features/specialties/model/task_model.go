package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tarea del plan de práctica, colgada de un área de competencia.
// Solo las tareas activas entran en la evaluación final.
type TaskModel struct {
	TareaID          string    `gorm:"column:tarea_id;primaryKey;type:uuid" json:"tarea_id"`
	TareaAreaID      string    `gorm:"column:tarea_area_id;type:uuid;not null;index" json:"tarea_area_id"`
	TareaDescripcion string    `gorm:"column:tarea_descripcion;type:text;not null" json:"tarea_descripcion"`
	TareaActiva      bool      `gorm:"column:tarea_activa;not null;default:true" json:"tarea_activa"`
	TareaCreatedAt   time.Time `gorm:"column:tarea_created_at;autoCreateTime" json:"tarea_created_at"`
}

// TableName sets the table name for TaskModel
func (TaskModel) TableName() string {
	return "tareas"
}

func (m *TaskModel) BeforeCreate(tx *gorm.DB) error {
	if m.TareaID == "" {
		m.TareaID = uuid.NewString()
	}
	return nil
}
