package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyModel struct {
	EmpresaID             string         `gorm:"column:empresa_id;primaryKey;type:uuid" json:"empresa_id"`
	EmpresaRut            string         `gorm:"column:empresa_rut;type:varchar(12);uniqueIndex;not null" json:"empresa_rut"`
	EmpresaRazonSocial    string         `gorm:"column:empresa_razon_social;type:varchar(255);not null" json:"empresa_razon_social"`
	EmpresaGiro           string         `gorm:"column:empresa_giro;type:varchar(255)" json:"empresa_giro"`
	EmpresaDireccion      string         `gorm:"column:empresa_direccion;type:varchar(255)" json:"empresa_direccion"`
	EmpresaEmail          string         `gorm:"column:empresa_email;type:varchar(255)" json:"empresa_email"`
	EmpresaTelefono       string         `gorm:"column:empresa_telefono;type:varchar(30)" json:"empresa_telefono"`
	EmpresaContactoNombre string         `gorm:"column:empresa_contacto_nombre;type:varchar(150)" json:"empresa_contacto_nombre"`
	EmpresaCreatedAt      time.Time      `gorm:"column:empresa_created_at;autoCreateTime" json:"empresa_created_at"`
	EmpresaUpdatedAt      time.Time      `gorm:"column:empresa_updated_at;autoUpdateTime" json:"empresa_updated_at"`
	EmpresaDeletedAt      gorm.DeletedAt `gorm:"column:empresa_deleted_at;index" json:"-"`
}

// TableName sets the table name for CompanyModel
func (CompanyModel) TableName() string {
	return "empresas"
}

func (m *CompanyModel) BeforeCreate(tx *gorm.DB) error {
	if m.EmpresaID == "" {
		m.EmpresaID = uuid.NewString()
	}
	return nil
}
