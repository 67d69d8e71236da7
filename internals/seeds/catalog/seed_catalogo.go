package catalog

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"siggip_backend/internals/features/specialties/model"
)

type AreaSeed struct {
	Numero      int      `json:"numero"`
	Nombre      string   `json:"nombre"`
	Descripcion string   `json:"descripcion"`
	Tareas      []string `json:"tareas"`
}

type SpecialtySeed struct {
	Nombre      string     `json:"nombre"`
	Descripcion string     `json:"descripcion"`
	Areas       []AreaSeed `json:"areas"`
}

type CompetencySeed struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type CatalogSeed struct {
	Especialidades            []SpecialtySeed  `json:"especialidades"`
	CompetenciasEmpleabilidad []CompetencySeed `json:"competencias_empleabilidad"`
}

// SeedCatalogFromJSON carga el catálogo de especialidades con sus pautas
// (áreas, tareas) y las competencias de empleabilidad transversales.
func SeedCatalogFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Leyendo catálogo de especialidades:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ No se pudo leer el JSON del catálogo: %v", err)
		return
	}

	var seed CatalogSeed
	if err := json.Unmarshal(file, &seed); err != nil {
		log.Printf("❌ No se pudo decodificar el JSON del catálogo: %v", err)
		return
	}

	for _, esp := range seed.Especialidades {
		var existing model.SpecialtyModel
		if err := db.Where("especialidad_nombre = ?", esp.Nombre).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Especialidad '%s' ya existe, se omite.", esp.Nombre)
			continue
		}

		specialty := model.SpecialtyModel{
			EspecialidadNombre:      esp.Nombre,
			EspecialidadDescripcion: esp.Descripcion,
		}
		if err := db.Create(&specialty).Error; err != nil {
			log.Printf("❌ Error al insertar especialidad '%s': %v", esp.Nombre, err)
			continue
		}

		for _, a := range esp.Areas {
			area := model.CompetencyAreaModel{
				AreaEspecialidadID: specialty.EspecialidadID,
				AreaNumero:         a.Numero,
				AreaNombre:         a.Nombre,
				AreaDescripcion:    a.Descripcion,
			}
			if err := db.Create(&area).Error; err != nil {
				log.Printf("❌ Error al insertar área '%s': %v", a.Nombre, err)
				continue
			}

			for _, t := range a.Tareas {
				task := model.TaskModel{
					TareaAreaID:      area.AreaID,
					TareaDescripcion: t,
					TareaActiva:      true,
				}
				if err := db.Create(&task).Error; err != nil {
					log.Printf("❌ Error al insertar tarea del área '%s': %v", a.Nombre, err)
				}
			}
		}

		log.Printf("✅ Especialidad '%s' insertada con %d áreas", esp.Nombre, len(esp.Areas))
	}

	for _, comp := range seed.CompetenciasEmpleabilidad {
		var existing model.EmployabilityCompetencyModel
		if err := db.Where("competencia_nombre = ?", comp.Nombre).First(&existing).Error; err == nil {
			continue
		}

		row := model.EmployabilityCompetencyModel{
			CompetenciaNombre:      comp.Nombre,
			CompetenciaDescripcion: comp.Descripcion,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Error al insertar competencia '%s': %v", comp.Nombre, err)
		} else {
			log.Printf("✅ Competencia de empleabilidad '%s' insertada", comp.Nombre)
		}
	}
}
