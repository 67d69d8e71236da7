package dto

import (
	"time"

	"gorm.io/datatypes"

	"siggip_backend/internals/features/evaluations/model"
	"siggip_backend/internals/features/evaluations/scoring"
)

// ============================
// Request DTOs (borrador completo en cada save, create-or-update)
// ============================

type AreaGradeInput struct {
	AreaID      string   `json:"area_id" validate:"required,uuid"`
	Nota        *float64 `json:"nota"`
	Comentarios string   `json:"comentarios"`
}

type TaskGradeInput struct {
	TareaID     string `json:"tarea_id" validate:"required,uuid"`
	NivelLogro  string `json:"nivel_logro" validate:"omitempty,oneof=excelente bueno suficiente insuficiente"`
	Realizada   bool   `json:"realizada"`
	Comentarios string `json:"comentarios"`
}

type EmployabilityGradeInput struct {
	CompetenciaID string `json:"competencia_id" validate:"required,uuid"`
	NivelLogro    string `json:"nivel_logro" validate:"omitempty,oneof=excelente bueno suficiente insuficiente"`
	Observaciones string `json:"observaciones"`
}

type GuidingSupervisorInput struct {
	NombreCompleto string `json:"nombre_completo"`
	Rut            string `json:"rut"`
	Cargo          string `json:"cargo"`
	Email          string `json:"email" validate:"omitempty,email"`
	Telefono       string `json:"telefono"`
}

type SaveEvaluationRequest struct {
	EvaluacionesAreas         []AreaGradeInput          `json:"evaluaciones_areas" validate:"dive"`
	EvaluacionesTareas        []TaskGradeInput          `json:"evaluaciones_tareas" validate:"dive"`
	EvaluacionesEmpleabilidad []EmployabilityGradeInput `json:"evaluaciones_empleabilidad" validate:"dive"`
	MaestroGuia               GuidingSupervisorInput    `json:"maestro_guia"`
}

// ToDraft convierte el payload al borrador que entiende el motor de scoring.
func (r SaveEvaluationRequest) ToDraft() scoring.Draft {
	d := scoring.Draft{
		MaestroGuia: scoring.Supervisor{
			NombreCompleto: r.MaestroGuia.NombreCompleto,
			Rut:            r.MaestroGuia.Rut,
			Cargo:          r.MaestroGuia.Cargo,
			Email:          r.MaestroGuia.Email,
			Telefono:       r.MaestroGuia.Telefono,
		},
	}
	for _, a := range r.EvaluacionesAreas {
		d.Areas = append(d.Areas, scoring.AreaGrade{AreaID: a.AreaID, Nota: a.Nota, Comentarios: a.Comentarios})
	}
	for _, t := range r.EvaluacionesTareas {
		d.Tareas = append(d.Tareas, scoring.TaskGrade{TareaID: t.TareaID, NivelLogro: t.NivelLogro, Realizada: t.Realizada, Comentarios: t.Comentarios})
	}
	for _, e := range r.EvaluacionesEmpleabilidad {
		d.Empleabilidad = append(d.Empleabilidad, scoring.EmployabilityGrade{CompetenciaID: e.CompetenciaID, NivelLogro: e.NivelLogro, Observaciones: e.Observaciones})
	}
	return d
}

// ============================
// Response DTOs
// ============================

type AreaGradeDTO struct {
	AreaID      string   `json:"area_id"`
	Nota        *float64 `json:"nota,omitempty"`
	Comentarios string   `json:"comentarios"`
}

type TaskGradeDTO struct {
	TareaID     string `json:"tarea_id"`
	NivelLogro  string `json:"nivel_logro"`
	Realizada   bool   `json:"realizada"`
	Comentarios string `json:"comentarios"`
}

type EmployabilityGradeDTO struct {
	CompetenciaID string `json:"competencia_id"`
	NivelLogro    string `json:"nivel_logro"`
	Observaciones string `json:"observaciones"`
}

type GuidingSupervisorDTO struct {
	NombreCompleto string `json:"nombre_completo"`
	Rut            string `json:"rut"`
	Cargo          string `json:"cargo"`
	Email          string `json:"email"`
	Telefono       string `json:"telefono"`
}

type EvaluationDTO struct {
	EvaluacionID              string                  `json:"evaluacion_id"`
	PracticaID                string                  `json:"practica_id"`
	Estado                    string                  `json:"estado"`
	Avance                    int                     `json:"avance"`
	Resumen                   datatypes.JSON          `json:"resumen,omitempty"`
	FechaFinalizacion         *time.Time              `json:"fecha_finalizacion,omitempty"`
	EvaluacionesAreas         []AreaGradeDTO          `json:"evaluaciones_areas"`
	EvaluacionesTareas        []TaskGradeDTO          `json:"evaluaciones_tareas"`
	EvaluacionesEmpleabilidad []EmployabilityGradeDTO `json:"evaluaciones_empleabilidad"`
	MaestroGuia               *GuidingSupervisorDTO   `json:"maestro_guia,omitempty"`
}

type VerifyEvaluationDTO struct {
	Existe     bool           `json:"existe"`
	Evaluacion *EvaluationDTO `json:"evaluacion,omitempty"`
}

// ============================
// Converter
// ============================

func ToEvaluationDTO(m model.FinalEvaluationModel) EvaluationDTO {
	out := EvaluationDTO{
		EvaluacionID:              m.EvaluacionID,
		PracticaID:                m.EvaluacionPracticaID,
		Estado:                    m.EvaluacionEstado,
		Avance:                    m.EvaluacionAvance,
		Resumen:                   m.EvaluacionResumen,
		FechaFinalizacion:         m.EvaluacionFechaFinalizacion,
		EvaluacionesAreas:         make([]AreaGradeDTO, 0, len(m.Areas)),
		EvaluacionesTareas:        make([]TaskGradeDTO, 0, len(m.Tareas)),
		EvaluacionesEmpleabilidad: make([]EmployabilityGradeDTO, 0, len(m.Empleabilidad)),
	}
	for _, a := range m.Areas {
		out.EvaluacionesAreas = append(out.EvaluacionesAreas, AreaGradeDTO{
			AreaID:      a.EvalAreaAreaID,
			Nota:        a.EvalAreaNota,
			Comentarios: a.EvalAreaComentarios,
		})
	}
	for _, t := range m.Tareas {
		out.EvaluacionesTareas = append(out.EvaluacionesTareas, TaskGradeDTO{
			TareaID:     t.EvalTareaTareaID,
			NivelLogro:  t.EvalTareaNivelLogro,
			Realizada:   t.EvalTareaRealizada,
			Comentarios: t.EvalTareaComentarios,
		})
	}
	for _, e := range m.Empleabilidad {
		out.EvaluacionesEmpleabilidad = append(out.EvaluacionesEmpleabilidad, EmployabilityGradeDTO{
			CompetenciaID: e.EvalEmpleabilidadCompetenciaID,
			NivelLogro:    e.EvalEmpleabilidadNivelLogro,
			Observaciones: e.EvalEmpleabilidadObservaciones,
		})
	}
	if m.MaestroGuia != nil {
		out.MaestroGuia = &GuidingSupervisorDTO{
			NombreCompleto: m.MaestroGuia.MaestroGuiaNombreCompleto,
			Rut:            m.MaestroGuia.MaestroGuiaRut,
			Cargo:          m.MaestroGuia.MaestroGuiaCargo,
			Email:          m.MaestroGuia.MaestroGuiaEmail,
			Telefono:       m.MaestroGuia.MaestroGuiaTelefono,
		}
	}
	return out
}
