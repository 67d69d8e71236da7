package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siggip_backend/internals/features/internships/controller"
)

func InternshipAdminRoutes(api fiber.Router, db *gorm.DB) {
	internshipCtrl := controller.NewInternshipController(db)

	// === COORDINADOR ROUTES ===
	internship := api.Group("/practicas")
	internship.Post("/", internshipCtrl.CreateInternship)
	internship.Get("/", internshipCtrl.GetAllInternships)
	internship.Get("/:id", internshipCtrl.GetInternshipByID)
	internship.Put("/:id/estado", internshipCtrl.UpdateInternshipState)
}
