// Package scoring calcula el avance de la evaluación final y las reglas de
// cierre. Es lógica pura en memoria: la persistencia vive en el service y el
// cálculo del frontend es solo referencial — aquí se decide de verdad.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"siggip_backend/internals/constants"
	helper "siggip_backend/internals/helpers"
)

// Pesos de cada categoría del avance.
const (
	PesoAreas         = 40.0
	PesoEmpleabilidad = 40.0
	PesoTareas        = 10.0
	PesoMaestroGuia   = 10.0
)

// Pasos del asistente de evaluación.
const (
	PasoAreas         = 1
	PasoTareas        = 2
	PasoEmpleabilidad = 3
	PasoRevision      = 4
)

type AreaGrade struct {
	AreaID      string
	Nota        *float64
	Comentarios string
}

type TaskGrade struct {
	TareaID     string
	NivelLogro  string
	Realizada   bool
	Comentarios string
}

type EmployabilityGrade struct {
	CompetenciaID string
	NivelLogro    string
	Observaciones string
}

type Supervisor struct {
	NombreCompleto string
	Rut            string
	Cargo          string
	Email          string
	Telefono       string
}

// Draft es el borrador completo de una evaluación final en memoria.
type Draft struct {
	Areas         []AreaGrade
	Tareas        []TaskGrade
	Empleabilidad []EmployabilityGrade
	MaestroGuia   Supervisor
}

// Breakdown desglosa la contribución de cada categoría al avance.
type Breakdown struct {
	Areas         float64 `json:"areas"`
	Tareas        float64 `json:"tareas"`
	Empleabilidad float64 `json:"empleabilidad"`
	MaestroGuia   float64 `json:"maestro_guia"`
	Total         int     `json:"total"`
}

func notaValida(n *float64) bool {
	return n != nil && *n >= constants.NotaMinima && *n <= constants.NotaMaxima
}

// ComputeBreakdown calcula el avance por categoría. Es un porcentaje de
// completitud, no una nota de calidad.
func ComputeBreakdown(d Draft) Breakdown {
	var b Breakdown

	// Áreas técnicas: proporcional a las áreas con nota válida.
	if total := len(d.Areas); total > 0 {
		completas := 0
		for _, a := range d.Areas {
			if notaValida(a.Nota) {
				completas++
			}
		}
		b.Areas = float64(completas) / float64(total) * PesoAreas
	}

	// Empleabilidad: proporcional a las competencias con nivel válido.
	if total := len(d.Empleabilidad); total > 0 {
		completas := 0
		for _, e := range d.Empleabilidad {
			if constants.IsValidNivelLogro(e.NivelLogro) {
				completas++
			}
		}
		b.Empleabilidad = float64(completas) / float64(total) * PesoEmpleabilidad
	}

	// Tareas: bono binario. Las tareas son opcionales, basta una realizada
	// y evaluada para el crédito completo de la categoría.
	for _, t := range d.Tareas {
		if t.Realizada && constants.IsValidNivelLogro(t.NivelLogro) {
			b.Tareas = PesoTareas
			break
		}
	}

	// Maestro guía: binario, nombre y cargo presentes.
	if strings.TrimSpace(d.MaestroGuia.NombreCompleto) != "" &&
		strings.TrimSpace(d.MaestroGuia.Cargo) != "" {
		b.MaestroGuia = PesoMaestroGuia
	}

	total := int(math.Round(b.Areas + b.Tareas + b.Empleabilidad + b.MaestroGuia))
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}
	b.Total = total
	return b
}

// ComputeProgress entrega el avance 0–100 que se muestra al evaluador.
func ComputeProgress(d Draft) int {
	return ComputeBreakdown(d).Total
}

// GateError indica el primer paso del asistente que impide finalizar.
type GateError struct {
	Paso    int
	Mensaje string
}

func (e *GateError) Error() string {
	return fmt.Sprintf("paso %d: %s", e.Paso, e.Mensaje)
}

// ValidateGates revisa las reglas de cierre, independientes del porcentaje.
// Devuelve el primer paso que falla, o nil si se puede finalizar.
func ValidateGates(d Draft) *GateError {
	// Paso 1: todas las áreas con nota en rango.
	for _, a := range d.Areas {
		if !notaValida(a.Nota) {
			return &GateError{
				Paso:    PasoAreas,
				Mensaje: fmt.Sprintf("todas las áreas deben tener nota entre %.1f y %.1f", constants.NotaMinima, constants.NotaMaxima),
			}
		}
	}

	// Paso 2 (tareas) no tiene regla de cierre: son opcionales.

	// Paso 3: toda competencia de empleabilidad con nivel de logro.
	for _, e := range d.Empleabilidad {
		if !constants.IsValidNivelLogro(e.NivelLogro) {
			return &GateError{
				Paso:    PasoEmpleabilidad,
				Mensaje: "todas las competencias de empleabilidad deben tener nivel de logro",
			}
		}
	}

	// Paso 4: maestro guía con nombre y cargo; RUT solo si fue ingresado.
	if strings.TrimSpace(d.MaestroGuia.NombreCompleto) == "" {
		return &GateError{Paso: PasoRevision, Mensaje: "el nombre del maestro guía es obligatorio"}
	}
	if strings.TrimSpace(d.MaestroGuia.Cargo) == "" {
		return &GateError{Paso: PasoRevision, Mensaje: "el cargo del maestro guía es obligatorio"}
	}
	if rut := strings.TrimSpace(d.MaestroGuia.Rut); rut != "" && !helper.ValidateRUT(rut) {
		return &GateError{Paso: PasoRevision, Mensaje: "el RUT del maestro guía es inválido"}
	}

	return nil
}
