package constants

// Estados de práctica
const (
	PracticaAsignada   = "asignada"
	PracticaEnCurso    = "en_curso"
	PracticaCompletada = "completada"
)

// Estados de evaluación final
const (
	EvaluacionEnProgreso = "en_progreso"
	EvaluacionCompletada = "completada"
)

// Estados de oferta
const (
	OfertaAbierta = "abierta"
	OfertaCerrada = "cerrada"
)

// Estados de postulación
const (
	PostulacionPendiente = "pendiente"
	PostulacionAceptada  = "aceptada"
	PostulacionRechazada = "rechazada"
)

// Niveles de logro (escala ordinal de 4 puntos para tareas y empleabilidad)
const (
	NivelExcelente    = "excelente"
	NivelBueno        = "bueno"
	NivelSuficiente   = "suficiente"
	NivelInsuficiente = "insuficiente"
)

var NivelesLogro = []string{
	NivelExcelente,
	NivelBueno,
	NivelSuficiente,
	NivelInsuficiente,
}

func IsValidNivelLogro(n string) bool {
	for _, nivel := range NivelesLogro {
		if n == nivel {
			return true
		}
	}
	return false
}

// Rango de nota numérica chilena para áreas de competencia
const (
	NotaMinima = 1.0
	NotaMaxima = 7.0
)
