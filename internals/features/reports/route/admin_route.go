package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siggip_backend/internals/features/reports/controller"
)

func ReportAdminRoutes(api fiber.Router, db *gorm.DB) {
	reportCtrl := controller.NewReportController(db)

	// === COORDINADOR ROUTES ===
	report := api.Group("/reportes")
	report.Get("/practicas", reportCtrl.GetInternshipsBySpecialty)
	report.Get("/postulaciones", reportCtrl.GetApplicationsByOffer)
	report.Get("/empresas", reportCtrl.GetCompanyRanking)
	report.Get("/evaluaciones", reportCtrl.GetEvaluationSummary)
}
