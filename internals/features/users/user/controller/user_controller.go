package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"siggip_backend/internals/features/users/user/dto"
	"siggip_backend/internals/features/users/user/model"
	helper "siggip_backend/internals/helpers"
)

var validateUser = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// =============================
// ➕ Crear usuario
// =============================
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !helper.ValidateRUT(body.UsuarioRut) {
		return helper.JsonError(c, fiber.StatusBadRequest, "RUT inválido: dígito verificador no coincide")
	}
	rut := helper.FormatRUT(body.UsuarioRut)

	// pre-chequeo de duplicados (email y RUT) con mensaje específico
	var count int64
	if err := ctrl.DB.Model(&model.UserModel{}).Where("usuario_email = ?", body.UsuarioEmail).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al verificar email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ya existe un usuario con ese email")
	}
	if err := ctrl.DB.Model(&model.UserModel{}).Where("usuario_rut = ?", rut).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al verificar RUT")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ya existe un usuario con ese RUT")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.UsuarioPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al procesar la contraseña")
	}

	user := model.UserModel{
		UsuarioNombre:   body.UsuarioNombre,
		UsuarioApellido: body.UsuarioApellido,
		UsuarioEmail:    body.UsuarioEmail,
		UsuarioRut:      rut,
		UsuarioPassword: string(hashed),
		UsuarioRol:      body.UsuarioRol,
		UsuarioActivo:   true,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al crear el usuario")
	}

	return helper.JsonCreated(c, "Usuario creado", dto.ToUserDTO(user))
}

// =============================
// 📄 Listar usuarios (paginado)
// =============================
func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{})
	if rol := c.Query("rol"); rol != "" {
		q = q.Where("usuario_rol = ?", rol)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al contar usuarios")
	}

	var users []model.UserModel
	if err := q.Order("usuario_apellido ASC, usuario_nombre ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar usuarios")
	}

	return helper.JsonList(c, "Usuarios", dto.ToUserDTOs(users), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =============================
// 🔍 Obtener usuario por ID
// =============================
func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var user model.UserModel
	if err := ctrl.DB.First(&user, "usuario_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar el usuario")
	}

	return helper.JsonOK(c, "Usuario", dto.ToUserDTO(user))
}

// =============================
// 🔄 Actualizar usuario
// =============================
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "usuario_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	// email puede cambiar, pero no chocar con otro usuario
	if body.UsuarioEmail != user.UsuarioEmail {
		var count int64
		if err := ctrl.DB.Model(&model.UserModel{}).
			Where("usuario_email = ? AND usuario_id <> ?", body.UsuarioEmail, id).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error al verificar email")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Ya existe un usuario con ese email")
		}
	}

	user.UsuarioNombre = body.UsuarioNombre
	user.UsuarioApellido = body.UsuarioApellido
	user.UsuarioEmail = body.UsuarioEmail
	user.UsuarioRol = body.UsuarioRol
	if body.UsuarioActivo != nil {
		user.UsuarioActivo = *body.UsuarioActivo
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar el usuario")
	}

	return helper.JsonUpdated(c, "Usuario actualizado", dto.ToUserDTO(user))
}

// =============================
// 🗑️ Eliminar usuario (soft delete)
// =============================
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.UserModel{}, "usuario_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al eliminar el usuario")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	return helper.JsonDeleted(c, "Usuario eliminado", nil)
}
