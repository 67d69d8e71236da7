package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siggip_backend/internals/constants"
	authMiddleware "siggip_backend/internals/middlewares/auth"
	routeDetails "siggip_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PRIVADO (usuario autenticado) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthJWT())

	// ===================== COORDINACIÓN (coordinador / administrador) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(),
		authMiddleware.RequireRoles("coordinación de prácticas", constants.StaffRoles...),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Catalog routes...")
	routeDetails.CatalogUserRoutes(private, db)
	routeDetails.CatalogAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Internship routes...")
	routeDetails.InternshipUserRoutes(private, db)
	routeDetails.InternshipAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Report routes...")
	routeDetails.ReportAdminRoutes(admin, db)
}
