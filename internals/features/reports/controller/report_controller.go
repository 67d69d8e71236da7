package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siggip_backend/internals/features/reports/dto"
	helper "siggip_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// GET /api/a/reportes/practicas
// Prácticas agrupadas por especialidad y estado.
func (ctrl *ReportController) GetInternshipsBySpecialty(c *fiber.Ctx) error {
	var rows []dto.InternshipsBySpecialtyRow
	err := ctrl.DB.Raw(`
		SELECT e.especialidad_id,
		       e.especialidad_nombre,
		       p.practica_estado,
		       COUNT(*) AS total
		FROM practicas p
		JOIN especialidades e ON e.especialidad_id = p.practica_especialidad_id
		WHERE p.practica_deleted_at IS NULL
		GROUP BY e.especialidad_id, e.especialidad_nombre, p.practica_estado
		ORDER BY e.especialidad_nombre, p.practica_estado
	`).Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al generar el reporte de prácticas")
	}
	return helper.JsonOK(c, "Reporte de prácticas por especialidad", rows)
}

// GET /api/a/reportes/postulaciones
// Postulaciones por oferta con desglose por estado.
func (ctrl *ReportController) GetApplicationsByOffer(c *fiber.Ctx) error {
	var rows []dto.ApplicationsByOfferRow
	err := ctrl.DB.Raw(`
		SELECT o.oferta_id,
		       o.oferta_titulo,
		       COUNT(*) FILTER (WHERE po.postulacion_estado = 'pendiente') AS pendientes,
		       COUNT(*) FILTER (WHERE po.postulacion_estado = 'aceptada')  AS aceptadas,
		       COUNT(*) FILTER (WHERE po.postulacion_estado = 'rechazada') AS rechazadas,
		       COUNT(*) AS total
		FROM postulaciones po
		JOIN ofertas o ON o.oferta_id = po.postulacion_oferta_id
		WHERE o.oferta_deleted_at IS NULL
		GROUP BY o.oferta_id, o.oferta_titulo
		ORDER BY total DESC
	`).Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al generar el reporte de postulaciones")
	}
	return helper.JsonOK(c, "Reporte de postulaciones por oferta", rows)
}

// GET /api/a/reportes/empresas
// Ranking de empresas por cantidad de prácticas recibidas.
func (ctrl *ReportController) GetCompanyRanking(c *fiber.Ctx) error {
	var rows []dto.CompanyRankingRow
	err := ctrl.DB.Raw(`
		SELECT em.empresa_id,
		       em.empresa_razon_social,
		       COUNT(p.practica_id) AS practicas,
		       COUNT(p.practica_id) FILTER (WHERE p.practica_estado = 'completada') AS completadas
		FROM empresas em
		LEFT JOIN practicas p
		       ON p.practica_empresa_id = em.empresa_id
		      AND p.practica_deleted_at IS NULL
		WHERE em.empresa_deleted_at IS NULL
		GROUP BY em.empresa_id, em.empresa_razon_social
		ORDER BY practicas DESC, em.empresa_razon_social
	`).Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al generar el ranking de empresas")
	}
	return helper.JsonOK(c, "Ranking de empresas", rows)
}

// GET /api/a/reportes/evaluaciones
// Resumen del avance de las evaluaciones finales.
func (ctrl *ReportController) GetEvaluationSummary(c *fiber.Ctx) error {
	var summary dto.EvaluationSummary
	err := ctrl.DB.Raw(`
		SELECT (SELECT COUNT(*) FROM practicas WHERE practica_deleted_at IS NULL) AS total_practicas,
		       COUNT(*) AS con_evaluacion,
		       COUNT(*) FILTER (WHERE evaluacion_estado = 'completada')  AS evaluaciones_completadas,
		       COUNT(*) FILTER (WHERE evaluacion_estado = 'en_progreso') AS evaluaciones_en_progreso,
		       COALESCE(AVG(evaluacion_avance), 0) AS avance_promedio
		FROM evaluaciones_finales
	`).Scan(&summary).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al generar el resumen de evaluaciones")
	}
	return helper.JsonOK(c, "Resumen de evaluaciones", summary)
}
