package constants

import "fmt"

const (
	RoleAdministrador = "administrador"
	RoleCoordinador   = "coordinador"
	RoleEstudiante    = "estudiante"
)

// Plantillas de error por rol
const (
	ErrOnlyCoordinatorsCanAccess = "❌ Solo coordinador o administrador pueden acceder a %s."
	ErrOnlyAdminsCanAccess       = "❌ Solo administrador puede acceder a %s."
)

func RoleErrorCoordinator(feature string) string {
	return fmt.Sprintf(ErrOnlyCoordinatorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdministrador,
		RoleCoordinador,
		RoleEstudiante,
	}

	StaffRoles = []string{
		RoleAdministrador,
		RoleCoordinador,
	}

	AdminOnly = []string{
		RoleAdministrador,
	}
)

func IsValidRole(r string) bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
