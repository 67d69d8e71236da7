package dto

// Fila del reporte de prácticas agrupadas por especialidad y estado.
type InternshipsBySpecialtyRow struct {
	EspecialidadID     string `json:"especialidad_id"`
	EspecialidadNombre string `json:"especialidad_nombre"`
	PracticaEstado     string `json:"practica_estado"`
	Total              int64  `json:"total"`
}

// Fila del reporte de postulaciones por oferta.
type ApplicationsByOfferRow struct {
	OfertaID     string `json:"oferta_id"`
	OfertaTitulo string `json:"oferta_titulo"`
	Pendientes   int64  `json:"pendientes"`
	Aceptadas    int64  `json:"aceptadas"`
	Rechazadas   int64  `json:"rechazadas"`
	Total        int64  `json:"total"`
}

// Fila del ranking de empresas por prácticas recibidas.
type CompanyRankingRow struct {
	EmpresaID          string `json:"empresa_id"`
	EmpresaRazonSocial string `json:"empresa_razon_social"`
	Practicas          int64  `json:"practicas"`
	Completadas        int64  `json:"completadas"`
}

// Resumen del estado de las evaluaciones finales.
type EvaluationSummary struct {
	TotalPracticas          int64   `json:"total_practicas"`
	ConEvaluacion           int64   `json:"con_evaluacion"`
	EvaluacionesCompletadas int64   `json:"evaluaciones_completadas"`
	EvaluacionesEnProgreso  int64   `json:"evaluaciones_en_progreso"`
	AvancePromedio          float64 `json:"avance_promedio"`
}
