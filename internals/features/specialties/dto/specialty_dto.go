package dto

import (
	"siggip_backend/internals/features/specialties/model"
)

// ============================
// Response DTOs
// ============================

type SpecialtyDTO struct {
	EspecialidadID          string `json:"especialidad_id"`
	EspecialidadNombre      string `json:"especialidad_nombre"`
	EspecialidadDescripcion string `json:"especialidad_descripcion"`
}

type CompetencyAreaDTO struct {
	AreaID          string    `json:"area_id"`
	AreaNumero      int       `json:"area_numero"`
	AreaNombre      string    `json:"area_nombre"`
	AreaDescripcion string    `json:"area_descripcion"`
	Tareas          []TaskDTO `json:"tareas,omitempty"`
}

type TaskDTO struct {
	TareaID          string `json:"tarea_id"`
	TareaDescripcion string `json:"tarea_descripcion"`
	TareaActiva      bool   `json:"tarea_activa"`
}

type EmployabilityCompetencyDTO struct {
	CompetenciaID          string `json:"competencia_id"`
	CompetenciaNombre      string `json:"competencia_nombre"`
	CompetenciaDescripcion string `json:"competencia_descripcion"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateSpecialtyRequest struct {
	EspecialidadNombre      string `json:"especialidad_nombre" validate:"required,min=3"`
	EspecialidadDescripcion string `json:"especialidad_descripcion"`
}

type UpdateSpecialtyRequest struct {
	EspecialidadNombre      string `json:"especialidad_nombre" validate:"required,min=3"`
	EspecialidadDescripcion string `json:"especialidad_descripcion"`
}

type CreateCompetencyAreaRequest struct {
	AreaNumero      int    `json:"area_numero" validate:"required,min=1"`
	AreaNombre      string `json:"area_nombre" validate:"required,min=3"`
	AreaDescripcion string `json:"area_descripcion"`
}

type CreateTaskRequest struct {
	TareaDescripcion string `json:"tarea_descripcion" validate:"required,min=3"`
	TareaActiva      *bool  `json:"tarea_activa"`
}

// ============================
// Converters
// ============================

func ToSpecialtyDTO(m model.SpecialtyModel) SpecialtyDTO {
	return SpecialtyDTO{
		EspecialidadID:          m.EspecialidadID,
		EspecialidadNombre:      m.EspecialidadNombre,
		EspecialidadDescripcion: m.EspecialidadDescripcion,
	}
}

func ToTaskDTO(m model.TaskModel) TaskDTO {
	return TaskDTO{
		TareaID:          m.TareaID,
		TareaDescripcion: m.TareaDescripcion,
		TareaActiva:      m.TareaActiva,
	}
}

func ToCompetencyAreaDTO(m model.CompetencyAreaModel) CompetencyAreaDTO {
	tareas := make([]TaskDTO, 0, len(m.Tareas))
	for _, t := range m.Tareas {
		tareas = append(tareas, ToTaskDTO(t))
	}
	return CompetencyAreaDTO{
		AreaID:          m.AreaID,
		AreaNumero:      m.AreaNumero,
		AreaNombre:      m.AreaNombre,
		AreaDescripcion: m.AreaDescripcion,
		Tareas:          tareas,
	}
}

func ToEmployabilityCompetencyDTO(m model.EmployabilityCompetencyModel) EmployabilityCompetencyDTO {
	return EmployabilityCompetencyDTO{
		CompetenciaID:          m.CompetenciaID,
		CompetenciaNombre:      m.CompetenciaNombre,
		CompetenciaDescripcion: m.CompetenciaDescripcion,
	}
}
