package users

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"siggip_backend/internals/features/users/user/model"
	helper "siggip_backend/internals/helpers"
)

type UserSeed struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Rut      string `json:"rut"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Leyendo archivo de usuarios:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ No se pudo leer el JSON de usuarios: %v", err)
		return
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ No se pudo decodificar el JSON de usuarios: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("usuario_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Usuario con email '%s' ya existe, se omite.", data.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Error al hashear la contraseña de '%s': %v", data.Email, err)
			continue
		}

		newUser := model.UserModel{
			UsuarioNombre:   data.Nombre,
			UsuarioApellido: data.Apellido,
			UsuarioEmail:    data.Email,
			UsuarioRut:      helper.NormalizeRUT(data.Rut),
			UsuarioPassword: string(hashed),
			UsuarioRol:      data.Rol,
			UsuarioActivo:   true,
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Error al insertar usuario '%s': %v", data.Email, err)
		} else {
			log.Printf("✅ Usuario '%s' insertado", data.Email)
		}
	}
}
