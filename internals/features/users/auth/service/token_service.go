// internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"siggip_backend/internals/configs"
	userModel "siggip_backend/internals/features/users/user/model"
)

const accessTokenTTL = 8 * time.Hour

// GenerateAccessToken firma un JWT con los claims que consumen los middlewares.
func GenerateAccessToken(user userModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    user.UsuarioID,
		"rol":    user.UsuarioRol,
		"nombre": user.UsuarioNombre + " " + user.UsuarioApellido,
		"iat":    now.Unix(),
		"exp":    now.Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
