package dto

import (
	"time"

	"siggip_backend/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================

type UserDTO struct {
	UsuarioID        string    `json:"usuario_id"`
	UsuarioNombre    string    `json:"usuario_nombre"`
	UsuarioApellido  string    `json:"usuario_apellido"`
	UsuarioEmail     string    `json:"usuario_email"`
	UsuarioRut       string    `json:"usuario_rut"`
	UsuarioRol       string    `json:"usuario_rol"`
	UsuarioActivo    bool      `json:"usuario_activo"`
	UsuarioCreatedAt time.Time `json:"usuario_created_at"`
	UsuarioUpdatedAt time.Time `json:"usuario_updated_at"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateUserRequest struct {
	UsuarioNombre   string `json:"usuario_nombre" validate:"required,min=2"`
	UsuarioApellido string `json:"usuario_apellido" validate:"required,min=2"`
	UsuarioEmail    string `json:"usuario_email" validate:"required,email"`
	UsuarioRut      string `json:"usuario_rut" validate:"required"`
	UsuarioPassword string `json:"usuario_password" validate:"required,min=8"`
	UsuarioRol      string `json:"usuario_rol" validate:"required,oneof=administrador coordinador estudiante"`
}

type UpdateUserRequest struct {
	UsuarioNombre   string `json:"usuario_nombre" validate:"required,min=2"`
	UsuarioApellido string `json:"usuario_apellido" validate:"required,min=2"`
	UsuarioEmail    string `json:"usuario_email" validate:"required,email"`
	UsuarioRol      string `json:"usuario_rol" validate:"required,oneof=administrador coordinador estudiante"`
	UsuarioActivo   *bool  `json:"usuario_activo"`
}

// ============================
// Converter
// ============================

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		UsuarioID:        m.UsuarioID,
		UsuarioNombre:    m.UsuarioNombre,
		UsuarioApellido:  m.UsuarioApellido,
		UsuarioEmail:     m.UsuarioEmail,
		UsuarioRut:       m.UsuarioRut,
		UsuarioRol:       m.UsuarioRol,
		UsuarioActivo:    m.UsuarioActivo,
		UsuarioCreatedAt: m.UsuarioCreatedAt,
		UsuarioUpdatedAt: m.UsuarioUpdatedAt,
	}
}

func ToUserDTOs(models []model.UserModel) []UserDTO {
	result := make([]UserDTO, 0, len(models))
	for _, m := range models {
		result = append(result, ToUserDTO(m))
	}
	return result
}
