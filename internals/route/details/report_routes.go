package details

import (
	ReportRoutes "siggip_backend/internals/features/reports/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ReportAdminRoutes(api fiber.Router, db *gorm.DB) {
	ReportRoutes.ReportAdminRoutes(api, db)
}
