package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"siggip_backend/internals/constants"
	appModel "siggip_backend/internals/features/applications/model"
	companyModel "siggip_backend/internals/features/companies/model"
	evalModel "siggip_backend/internals/features/evaluations/model"
	internshipModel "siggip_backend/internals/features/internships/model"
	offerModel "siggip_backend/internals/features/offers/model"
	"siggip_backend/internals/features/reports/dto"
	specialtyModel "siggip_backend/internals/features/specialties/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&companyModel.CompanyModel{},
		&specialtyModel.SpecialtyModel{},
		&offerModel.OfferModel{},
		&appModel.ApplicationModel{},
		&internshipModel.InternshipModel{},
		&evalModel.FinalEvaluationModel{},
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func setupTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	reportCtrl := NewReportController(db)
	app.Get("/reportes/practicas", reportCtrl.GetInternshipsBySpecialty)
	app.Get("/reportes/postulaciones", reportCtrl.GetApplicationsByOffer)
	app.Get("/reportes/empresas", reportCtrl.GetCompanyRanking)
	app.Get("/reportes/evaluaciones", reportCtrl.GetEvaluationSummary)
	return app
}

type reportEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func getReport(t *testing.T, app *fiber.App, path string, out any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env reportEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	require.True(t, env.Success)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func seedReportData(t *testing.T, db *gorm.DB) (companyModel.CompanyModel, offerModel.OfferModel) {
	t.Helper()

	specialty := specialtyModel.SpecialtyModel{EspecialidadNombre: "Conectividad y Redes"}
	require.NoError(t, db.Create(&specialty).Error)

	company := companyModel.CompanyModel{
		EmpresaRut:         "76123456-0",
		EmpresaRazonSocial: "Redes del Sur SpA",
	}
	require.NoError(t, db.Create(&company).Error)

	offer := offerModel.OfferModel{
		OfertaEmpresaID:              company.EmpresaID,
		OfertaEspecialidadID:         specialty.EspecialidadID,
		OfertaTitulo:                 "Técnico de soporte de redes",
		OfertaCupos:                  2,
		OfertaFechaLimitePostulacion: time.Now().AddDate(0, 1, 0),
		OfertaFechaInicio:            time.Now().AddDate(0, 2, 0),
		OfertaEstado:                 constants.OfertaAbierta,
	}
	require.NoError(t, db.Create(&offer).Error)

	for _, estado := range []string{constants.PostulacionPendiente, constants.PostulacionAceptada, constants.PostulacionRechazada} {
		application := appModel.ApplicationModel{
			PostulacionOfertaID:     offer.OfertaID,
			PostulacionEstudianteID: uuid.NewString(),
			PostulacionEstado:       estado,
		}
		require.NoError(t, db.Create(&application).Error)
	}

	practicaCompletada := internshipModel.InternshipModel{
		PracticaEstudianteID:   uuid.NewString(),
		PracticaEmpresaID:      company.EmpresaID,
		PracticaEspecialidadID: specialty.EspecialidadID,
		PracticaEstado:         constants.PracticaCompletada,
	}
	require.NoError(t, db.Create(&practicaCompletada).Error)

	practicaEnCurso := internshipModel.InternshipModel{
		PracticaEstudianteID:   uuid.NewString(),
		PracticaEmpresaID:      company.EmpresaID,
		PracticaEspecialidadID: specialty.EspecialidadID,
		PracticaEstado:         constants.PracticaEnCurso,
	}
	require.NoError(t, db.Create(&practicaEnCurso).Error)

	completada := evalModel.FinalEvaluationModel{
		EvaluacionPracticaID: practicaCompletada.PracticaID,
		EvaluacionEstado:     constants.EvaluacionCompletada,
		EvaluacionAvance:     100,
	}
	require.NoError(t, db.Create(&completada).Error)

	enProgreso := evalModel.FinalEvaluationModel{
		EvaluacionPracticaID: practicaEnCurso.PracticaID,
		EvaluacionEstado:     constants.EvaluacionEnProgreso,
		EvaluacionAvance:     40,
	}
	require.NoError(t, db.Create(&enProgreso).Error)

	return company, offer
}

func TestReporteQueriesSinDatos(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp(db)

	// las cuatro consultas deben responder 200 con el esquema vacío
	var practicas []dto.InternshipsBySpecialtyRow
	getReport(t, app, "/reportes/practicas", &practicas)
	assert.Empty(t, practicas)

	var postulaciones []dto.ApplicationsByOfferRow
	getReport(t, app, "/reportes/postulaciones", &postulaciones)
	assert.Empty(t, postulaciones)

	var empresas []dto.CompanyRankingRow
	getReport(t, app, "/reportes/empresas", &empresas)
	assert.Empty(t, empresas)

	var resumen dto.EvaluationSummary
	getReport(t, app, "/reportes/evaluaciones", &resumen)
	assert.EqualValues(t, 0, resumen.ConEvaluacion)
}

func TestReportePracticasPorEspecialidad(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp(db)
	seedReportData(t, db)

	var rows []dto.InternshipsBySpecialtyRow
	getReport(t, app, "/reportes/practicas", &rows)

	require.Len(t, rows, 2)
	porEstado := map[string]int64{}
	for _, r := range rows {
		assert.Equal(t, "Conectividad y Redes", r.EspecialidadNombre)
		porEstado[r.PracticaEstado] = r.Total
	}
	assert.EqualValues(t, 1, porEstado[constants.PracticaCompletada])
	assert.EqualValues(t, 1, porEstado[constants.PracticaEnCurso])
}

func TestReportePostulacionesPorOferta(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp(db)
	_, offer := seedReportData(t, db)

	var rows []dto.ApplicationsByOfferRow
	getReport(t, app, "/reportes/postulaciones", &rows)

	require.Len(t, rows, 1)
	assert.Equal(t, offer.OfertaID, rows[0].OfertaID)
	assert.Equal(t, "Técnico de soporte de redes", rows[0].OfertaTitulo)
	assert.EqualValues(t, 1, rows[0].Pendientes)
	assert.EqualValues(t, 1, rows[0].Aceptadas)
	assert.EqualValues(t, 1, rows[0].Rechazadas)
	assert.EqualValues(t, 3, rows[0].Total)
}

func TestReporteRankingEmpresas(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp(db)
	company, _ := seedReportData(t, db)

	// empresa sin prácticas: debe aparecer al final con cero
	sinPracticas := companyModel.CompanyModel{
		EmpresaRut:         "77987654-1",
		EmpresaRazonSocial: "Sin Prácticas Ltda",
	}
	require.NoError(t, db.Create(&sinPracticas).Error)

	var rows []dto.CompanyRankingRow
	getReport(t, app, "/reportes/empresas", &rows)

	require.Len(t, rows, 2)
	assert.Equal(t, company.EmpresaID, rows[0].EmpresaID)
	assert.Equal(t, "Redes del Sur SpA", rows[0].EmpresaRazonSocial)
	assert.EqualValues(t, 2, rows[0].Practicas)
	assert.EqualValues(t, 1, rows[0].Completadas)
	assert.EqualValues(t, 0, rows[1].Practicas)
}

func TestReporteResumenEvaluaciones(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp(db)
	seedReportData(t, db)

	var resumen dto.EvaluationSummary
	getReport(t, app, "/reportes/evaluaciones", &resumen)

	assert.EqualValues(t, 2, resumen.TotalPracticas)
	assert.EqualValues(t, 2, resumen.ConEvaluacion)
	assert.EqualValues(t, 1, resumen.EvaluacionesCompletadas)
	assert.EqualValues(t, 1, resumen.EvaluacionesEnProgreso)
	assert.InDelta(t, 70.0, resumen.AvancePromedio, 0.01)
}
