package details

import (
	CompanyRoutes "siggip_backend/internals/features/companies/route"
	SpecialtyRoutes "siggip_backend/internals/features/specialties/route"
	UserRoutes "siggip_backend/internals/features/users/user/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Catálogos base: usuarios, empresas y especialidades con sus pautas.

func CatalogUserRoutes(api fiber.Router, db *gorm.DB) {
	CompanyRoutes.CompanyUserRoutes(api, db)
	SpecialtyRoutes.SpecialtyUserRoutes(api, db)
}

func CatalogAdminRoutes(api fiber.Router, db *gorm.DB) {
	UserRoutes.UserAdminRoutes(api, db)
	CompanyRoutes.CompanyAdminRoutes(api, db)
	SpecialtyRoutes.SpecialtyAdminRoutes(api, db)
}
