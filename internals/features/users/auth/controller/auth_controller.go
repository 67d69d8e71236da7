package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"siggip_backend/internals/features/users/auth/service"
	userDTO "siggip_backend/internals/features/users/user/dto"
	userModel "siggip_backend/internals/features/users/user/model"
	helper "siggip_backend/internals/helpers"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "usuario_email = ?", body.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar el usuario")
	}
	if !user.UsuarioActivo {
		return helper.JsonError(c, fiber.StatusForbidden, "La cuenta está desactivada")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UsuarioPassword), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	token, err := service.GenerateAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al generar el token")
	}

	return helper.JsonOK(c, "Login correcto", fiber.Map{
		"access_token": token,
		"usuario":      userDTO.ToUserDTO(user),
	})
}

// ========================== ME ==========================
// GET /api/auth/me (requiere AuthJWT)
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "usuario_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	return helper.JsonOK(c, "Perfil", userDTO.ToUserDTO(user))
}
