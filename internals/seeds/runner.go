package seeds

import (
	catalog "siggip_backend/internals/seeds/catalog"
	users "siggip_backend/internals/seeds/users"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {

	//* Catálogo de especialidades (áreas, tareas, empleabilidad)
	catalog.SeedCatalogFromJSON(db, "internals/seeds/catalog/data_catalogo.json")

	//* Usuarios iniciales
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
}
