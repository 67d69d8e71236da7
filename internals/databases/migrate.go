package database

import (
	"log"

	appModel "siggip_backend/internals/features/applications/model"
	companyModel "siggip_backend/internals/features/companies/model"
	evalModel "siggip_backend/internals/features/evaluations/model"
	internshipModel "siggip_backend/internals/features/internships/model"
	offerModel "siggip_backend/internals/features/offers/model"
	specialtyModel "siggip_backend/internals/features/specialties/model"
	userModel "siggip_backend/internals/features/users/user/model"
)

// AutoMigrate crea/actualiza todas las tablas del sistema.
// El índice único de evaluaciones_finales(evaluacion_practica_id) viene del
// tag del modelo: una práctica tiene a lo más una evaluación final.
func AutoMigrate() {
	log.Println("[INFO] Ejecutando AutoMigrate...")
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&companyModel.CompanyModel{},
		&specialtyModel.SpecialtyModel{},
		&specialtyModel.CompetencyAreaModel{},
		&specialtyModel.TaskModel{},
		&specialtyModel.EmployabilityCompetencyModel{},
		&offerModel.OfferModel{},
		&appModel.ApplicationModel{},
		&internshipModel.InternshipModel{},
		&evalModel.FinalEvaluationModel{},
		&evalModel.AreaGradeModel{},
		&evalModel.TaskGradeModel{},
		&evalModel.EmployabilityGradeModel{},
		&evalModel.GuidingSupervisorModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate falló: %v", err)
	}
	log.Println("✅ AutoMigrate listo.")
}
