package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siggip_backend/internals/features/users/user/controller"
)

func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)

	// === ADMIN ROUTES ===
	user := api.Group("/usuarios")
	user.Post("/", userCtrl.CreateUser)       // ➕ Crear usuario
	user.Get("/", userCtrl.GetAllUsers)       // 📄 Listar usuarios
	user.Get("/:id", userCtrl.GetUserByID)    // 🔍 Detalle
	user.Put("/:id", userCtrl.UpdateUser)     // 🔄 Actualizar
	user.Delete("/:id", userCtrl.DeleteUser)  // 🗑️ Eliminar (soft)
}
