package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siggip_backend/internals/features/offers/controller"
)

func OfferAdminRoutes(api fiber.Router, db *gorm.DB) {
	offerCtrl := controller.NewOfferController(db)

	// === ADMIN ROUTES ===
	offer := api.Group("/ofertas")
	offer.Post("/", offerCtrl.CreateOffer)
	offer.Put("/:id", offerCtrl.UpdateOffer)
	offer.Delete("/:id", offerCtrl.DeleteOffer)
}

func OfferUserRoutes(api fiber.Router, db *gorm.DB) {
	offerCtrl := controller.NewOfferController(db)

	offer := api.Group("/ofertas")
	offer.Get("/", offerCtrl.GetAllOffers)
	offer.Get("/:id", offerCtrl.GetOfferByID)
}
