package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FinalEvaluationModel es el registro agregado de la evaluación final de una
// práctica. El índice único sobre evaluacion_practica_id garantiza a nivel de
// storage que exista a lo más una evaluación por práctica; el upsert del
// service se apoya en esa restricción en vez de un check-then-insert.
type FinalEvaluationModel struct {
	EvaluacionID                string         `gorm:"column:evaluacion_id;primaryKey;type:uuid" json:"evaluacion_id"`
	EvaluacionPracticaID        string         `gorm:"column:evaluacion_practica_id;type:uuid;not null;uniqueIndex" json:"evaluacion_practica_id"`
	EvaluacionEstado            string         `gorm:"column:evaluacion_estado;type:varchar(20);not null;default:'en_progreso'" json:"evaluacion_estado"`
	EvaluacionAvance            int            `gorm:"column:evaluacion_avance;not null;default:0" json:"evaluacion_avance"`
	EvaluacionResumen           datatypes.JSON `gorm:"column:evaluacion_resumen" json:"evaluacion_resumen,omitempty"`
	EvaluacionFechaFinalizacion *time.Time     `gorm:"column:evaluacion_fecha_finalizacion" json:"evaluacion_fecha_finalizacion,omitempty"`
	EvaluacionCreatedAt         time.Time      `gorm:"column:evaluacion_created_at;autoCreateTime" json:"evaluacion_created_at"`
	EvaluacionUpdatedAt         time.Time      `gorm:"column:evaluacion_updated_at;autoUpdateTime" json:"evaluacion_updated_at"`

	Areas         []AreaGradeModel          `gorm:"foreignKey:EvalAreaEvaluacionID;references:EvaluacionID" json:"areas,omitempty"`
	Tareas        []TaskGradeModel          `gorm:"foreignKey:EvalTareaEvaluacionID;references:EvaluacionID" json:"tareas,omitempty"`
	Empleabilidad []EmployabilityGradeModel `gorm:"foreignKey:EvalEmpleabilidadEvaluacionID;references:EvaluacionID" json:"empleabilidad,omitempty"`
	MaestroGuia   *GuidingSupervisorModel   `gorm:"foreignKey:MaestroGuiaEvaluacionID;references:EvaluacionID" json:"maestro_guia,omitempty"`
}

// TableName sets the table name for FinalEvaluationModel
func (FinalEvaluationModel) TableName() string {
	return "evaluaciones_finales"
}

// Los UUID de la evaluación se generan en la aplicación: los hijos se
// insertan en lote dentro de la misma transacción y necesitan el ID del
// padre antes del INSERT.
func (m *FinalEvaluationModel) BeforeCreate(tx *gorm.DB) error {
	if m.EvaluacionID == "" {
		m.EvaluacionID = uuid.NewString()
	}
	return nil
}
