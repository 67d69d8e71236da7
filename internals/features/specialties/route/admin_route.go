package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siggip_backend/internals/features/specialties/controller"
)

func SpecialtyAdminRoutes(api fiber.Router, db *gorm.DB) {
	specialtyCtrl := controller.NewSpecialtyController(db)

	// === ADMIN ROUTES ===
	specialty := api.Group("/especialidades")
	specialty.Post("/", specialtyCtrl.CreateSpecialty)
	specialty.Put("/:id", specialtyCtrl.UpdateSpecialty)
	specialty.Post("/:id/areas", specialtyCtrl.AddCompetencyArea)
	specialty.Post("/areas/:areaId/tareas", specialtyCtrl.AddTask)
}

func SpecialtyUserRoutes(api fiber.Router, db *gorm.DB) {
	specialtyCtrl := controller.NewSpecialtyController(db)

	specialty := api.Group("/especialidades")
	specialty.Get("/", specialtyCtrl.GetAllSpecialties)
	specialty.Get("/competencias-empleabilidad", specialtyCtrl.GetEmployabilityCompetencies)
	specialty.Get("/:id", specialtyCtrl.GetSpecialtyByID)
}
