package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UsuarioID        string         `gorm:"column:usuario_id;primaryKey;type:uuid" json:"usuario_id"`
	UsuarioNombre    string         `gorm:"column:usuario_nombre;type:varchar(100);not null" json:"usuario_nombre"`
	UsuarioApellido  string         `gorm:"column:usuario_apellido;type:varchar(100);not null" json:"usuario_apellido"`
	UsuarioEmail     string         `gorm:"column:usuario_email;type:varchar(255);uniqueIndex;not null" json:"usuario_email"`
	UsuarioRut       string         `gorm:"column:usuario_rut;type:varchar(12);uniqueIndex;not null" json:"usuario_rut"`
	UsuarioPassword  string         `gorm:"column:usuario_password;type:varchar(255);not null" json:"-"`
	UsuarioRol       string         `gorm:"column:usuario_rol;type:varchar(20);not null;default:'estudiante'" json:"usuario_rol"`
	UsuarioActivo    bool           `gorm:"column:usuario_activo;not null;default:true" json:"usuario_activo"`
	UsuarioCreatedAt time.Time      `gorm:"column:usuario_created_at;autoCreateTime" json:"usuario_created_at"`
	UsuarioUpdatedAt time.Time      `gorm:"column:usuario_updated_at;autoUpdateTime" json:"usuario_updated_at"`
	UsuarioDeletedAt gorm.DeletedAt `gorm:"column:usuario_deleted_at;index" json:"-"`
}

// TableName sets the table name for UserModel
func (UserModel) TableName() string {
	return "usuarios"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UsuarioID == "" {
		m.UsuarioID = uuid.NewString()
	}
	return nil
}
