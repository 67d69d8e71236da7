package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Nota numérica [1.0, 7.0] por área de competencia.
type AreaGradeModel struct {
	EvalAreaID           string   `gorm:"column:eval_area_id;primaryKey;type:uuid" json:"eval_area_id"`
	EvalAreaEvaluacionID string   `gorm:"column:eval_area_evaluacion_id;type:uuid;not null;index:idx_eval_area,unique" json:"eval_area_evaluacion_id"`
	EvalAreaAreaID       string   `gorm:"column:eval_area_area_id;type:uuid;not null;index:idx_eval_area,unique" json:"eval_area_area_id"`
	EvalAreaNota         *float64 `gorm:"column:eval_area_nota" json:"eval_area_nota,omitempty"`
	EvalAreaComentarios  string   `gorm:"column:eval_area_comentarios;type:text" json:"eval_area_comentarios"`
}

func (AreaGradeModel) TableName() string {
	return "evaluaciones_areas"
}

func (m *AreaGradeModel) BeforeCreate(tx *gorm.DB) error {
	if m.EvalAreaID == "" {
		m.EvalAreaID = uuid.NewString()
	}
	return nil
}

// Nivel de logro por tarea del plan; solo se registran tareas realizadas.
type TaskGradeModel struct {
	EvalTareaID           string `gorm:"column:eval_tarea_id;primaryKey;type:uuid" json:"eval_tarea_id"`
	EvalTareaEvaluacionID string `gorm:"column:eval_tarea_evaluacion_id;type:uuid;not null;index:idx_eval_tarea,unique" json:"eval_tarea_evaluacion_id"`
	EvalTareaTareaID      string `gorm:"column:eval_tarea_tarea_id;type:uuid;not null;index:idx_eval_tarea,unique" json:"eval_tarea_tarea_id"`
	EvalTareaNivelLogro   string `gorm:"column:eval_tarea_nivel_logro;type:varchar(20)" json:"eval_tarea_nivel_logro"`
	EvalTareaRealizada    bool   `gorm:"column:eval_tarea_realizada;not null;default:false" json:"eval_tarea_realizada"`
	EvalTareaComentarios  string `gorm:"column:eval_tarea_comentarios;type:text" json:"eval_tarea_comentarios"`
}

func (TaskGradeModel) TableName() string {
	return "evaluaciones_tareas"
}

func (m *TaskGradeModel) BeforeCreate(tx *gorm.DB) error {
	if m.EvalTareaID == "" {
		m.EvalTareaID = uuid.NewString()
	}
	return nil
}

// Nivel de logro por competencia de empleabilidad.
type EmployabilityGradeModel struct {
	EvalEmpleabilidadID            string `gorm:"column:eval_empleabilidad_id;primaryKey;type:uuid" json:"eval_empleabilidad_id"`
	EvalEmpleabilidadEvaluacionID  string `gorm:"column:eval_empleabilidad_evaluacion_id;type:uuid;not null;index:idx_eval_empleabilidad,unique" json:"eval_empleabilidad_evaluacion_id"`
	EvalEmpleabilidadCompetenciaID string `gorm:"column:eval_empleabilidad_competencia_id;type:uuid;not null;index:idx_eval_empleabilidad,unique" json:"eval_empleabilidad_competencia_id"`
	EvalEmpleabilidadNivelLogro    string `gorm:"column:eval_empleabilidad_nivel_logro;type:varchar(20)" json:"eval_empleabilidad_nivel_logro"`
	EvalEmpleabilidadObservaciones string `gorm:"column:eval_empleabilidad_observaciones;type:text" json:"eval_empleabilidad_observaciones"`
}

func (EmployabilityGradeModel) TableName() string {
	return "evaluaciones_empleabilidad"
}

func (m *EmployabilityGradeModel) BeforeCreate(tx *gorm.DB) error {
	if m.EvalEmpleabilidadID == "" {
		m.EvalEmpleabilidadID = uuid.NewString()
	}
	return nil
}

// Datos de contacto del maestro guía; nombre y cargo son obligatorios para
// finalizar, el resto es texto libre.
type GuidingSupervisorModel struct {
	MaestroGuiaID             string `gorm:"column:maestro_guia_id;primaryKey;type:uuid" json:"maestro_guia_id"`
	MaestroGuiaEvaluacionID   string `gorm:"column:maestro_guia_evaluacion_id;type:uuid;not null;uniqueIndex" json:"maestro_guia_evaluacion_id"`
	MaestroGuiaNombreCompleto string `gorm:"column:maestro_guia_nombre_completo;type:varchar(200)" json:"maestro_guia_nombre_completo"`
	MaestroGuiaRut            string `gorm:"column:maestro_guia_rut;type:varchar(12)" json:"maestro_guia_rut"`
	MaestroGuiaCargo          string `gorm:"column:maestro_guia_cargo;type:varchar(150)" json:"maestro_guia_cargo"`
	MaestroGuiaEmail          string `gorm:"column:maestro_guia_email;type:varchar(255)" json:"maestro_guia_email"`
	MaestroGuiaTelefono       string `gorm:"column:maestro_guia_telefono;type:varchar(30)" json:"maestro_guia_telefono"`
}

func (GuidingSupervisorModel) TableName() string {
	return "maestros_guia"
}

func (m *GuidingSupervisorModel) BeforeCreate(tx *gorm.DB) error {
	if m.MaestroGuiaID == "" {
		m.MaestroGuiaID = uuid.NewString()
	}
	return nil
}
