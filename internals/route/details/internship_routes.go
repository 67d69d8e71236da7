package details

import (
	ApplicationRoutes "siggip_backend/internals/features/applications/route"
	EvaluationRoutes "siggip_backend/internals/features/evaluations/route"
	InternshipRoutes "siggip_backend/internals/features/internships/route"
	OfferRoutes "siggip_backend/internals/features/offers/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Ciclo de práctica: ofertas → postulaciones → prácticas → evaluación final.

func InternshipUserRoutes(api fiber.Router, db *gorm.DB) {
	OfferRoutes.OfferUserRoutes(api, db)
	ApplicationRoutes.ApplicationUserRoutes(api, db)
}

func InternshipAdminRoutes(api fiber.Router, db *gorm.DB) {
	OfferRoutes.OfferAdminRoutes(api, db)
	ApplicationRoutes.ApplicationAdminRoutes(api, db)
	InternshipRoutes.InternshipAdminRoutes(api, db)
	EvaluationRoutes.EvaluationAdminRoutes(api, db)
}
