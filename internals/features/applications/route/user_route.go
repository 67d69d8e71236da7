package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siggip_backend/internals/features/applications/controller"
)

func ApplicationUserRoutes(api fiber.Router, db *gorm.DB) {
	applicationCtrl := controller.NewApplicationController(db)

	application := api.Group("/postulaciones")
	application.Post("/", applicationCtrl.CreateApplication)
	application.Get("/mias", applicationCtrl.GetMyApplications)
}

func ApplicationAdminRoutes(api fiber.Router, db *gorm.DB) {
	applicationCtrl := controller.NewApplicationController(db)

	// === COORDINADOR ROUTES ===
	application := api.Group("/postulaciones")
	application.Get("/oferta/:ofertaId", applicationCtrl.GetApplicationsByOffer)
	application.Put("/:id/resolver", applicationCtrl.ResolveApplication)
}
