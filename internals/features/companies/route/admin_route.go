package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siggip_backend/internals/features/companies/controller"
)

func CompanyAdminRoutes(api fiber.Router, db *gorm.DB) {
	companyCtrl := controller.NewCompanyController(db)

	// === ADMIN ROUTES ===
	company := api.Group("/empresas")
	company.Post("/", companyCtrl.CreateCompany)
	company.Put("/:id", companyCtrl.UpdateCompany)
	company.Delete("/:id", companyCtrl.DeleteCompany)
}

func CompanyUserRoutes(api fiber.Router, db *gorm.DB) {
	companyCtrl := controller.NewCompanyController(db)

	company := api.Group("/empresas")
	company.Get("/", companyCtrl.GetAllCompanies)
	company.Get("/:id", companyCtrl.GetCompanyByID)
}
