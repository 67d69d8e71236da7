package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"siggip_backend/internals/constants"
	"siggip_backend/internals/features/evaluations/dto"
	"siggip_backend/internals/features/evaluations/model"
	"siggip_backend/internals/features/evaluations/scoring"
	internshipModel "siggip_backend/internals/features/internships/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&internshipModel.InternshipModel{},
		&model.FinalEvaluationModel{},
		&model.AreaGradeModel{},
		&model.TaskGradeModel{},
		&model.EmployabilityGradeModel{},
		&model.GuidingSupervisorModel{},
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func createTestPractica(t *testing.T, db *gorm.DB) internshipModel.InternshipModel {
	t.Helper()
	practica := internshipModel.InternshipModel{
		PracticaEstudianteID:   uuid.NewString(),
		PracticaEmpresaID:      uuid.NewString(),
		PracticaEspecialidadID: uuid.NewString(),
		PracticaEstado:         constants.PracticaAsignada,
	}
	require.NoError(t, db.Create(&practica).Error)
	return practica
}

func nota(v float64) *float64 { return &v }

func fullRequest() dto.SaveEvaluationRequest {
	return dto.SaveEvaluationRequest{
		EvaluacionesAreas: []dto.AreaGradeInput{
			{AreaID: uuid.NewString(), Nota: nota(6.5), Comentarios: "buen dominio de redes"},
			{AreaID: uuid.NewString(), Nota: nota(5.8)},
		},
		EvaluacionesTareas: []dto.TaskGradeInput{
			{TareaID: uuid.NewString(), NivelLogro: constants.NivelBueno, Realizada: true},
		},
		EvaluacionesEmpleabilidad: []dto.EmployabilityGradeInput{
			{CompetenciaID: uuid.NewString(), NivelLogro: constants.NivelExcelente},
		},
		MaestroGuia: dto.GuidingSupervisorInput{
			NombreCompleto: "Marcela Soto Rivas",
			Rut:            "12.345.678-5",
			Cargo:          "Jefa de Taller",
			Email:          "msoto@empresa.cl",
		},
	}
}

func TestSaveDraftCreatesEvaluation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEvaluationService(db)
	practica := createTestPractica(t, db)

	eval, err := svc.SaveDraft(practica.PracticaID, fullRequest())
	require.NoError(t, err)

	assert.Equal(t, practica.PracticaID, eval.EvaluacionPracticaID)
	assert.Equal(t, constants.EvaluacionEnProgreso, eval.EvaluacionEstado)
	assert.Equal(t, 100, eval.EvaluacionAvance)
	assert.Len(t, eval.Areas, 2)
	assert.Len(t, eval.Tareas, 1)
	assert.Len(t, eval.Empleabilidad, 1)
	require.NotNil(t, eval.MaestroGuia)
	assert.Equal(t, "Marcela Soto Rivas", eval.MaestroGuia.MaestroGuiaNombreCompleto)

	// el primer borrador mueve la práctica a en_curso
	var refreshed internshipModel.InternshipModel
	require.NoError(t, db.First(&refreshed, "practica_id = ?", practica.PracticaID).Error)
	assert.Equal(t, constants.PracticaEnCurso, refreshed.PracticaEstado)
}

func TestSaveDraftPracticaInexistente(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEvaluationService(db)

	_, err := svc.SaveDraft(uuid.NewString(), fullRequest())
	assert.ErrorIs(t, err, ErrPracticaNotFound)
}

func TestSaveDraftUpdateReemplazaColecciones(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEvaluationService(db)
	practica := createTestPractica(t, db)

	first, err := svc.SaveDraft(practica.PracticaID, fullRequest())
	require.NoError(t, err)

	// segundo save con menos contenido: las colecciones se reemplazan enteras
	second, err := svc.SaveDraft(practica.PracticaID, dto.SaveEvaluationRequest{
		EvaluacionesAreas: []dto.AreaGradeInput{
			{AreaID: uuid.NewString(), Nota: nota(4.0)},
			{AreaID: uuid.NewString()},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, first.EvaluacionID, second.EvaluacionID)
	assert.Len(t, second.Areas, 2)
	assert.Len(t, second.Tareas, 0)
	assert.Len(t, second.Empleabilidad, 0)
	assert.Equal(t, 20, second.EvaluacionAvance)

	// sigue existiendo un único registro padre por práctica
	var count int64
	require.NoError(t, db.Model(&model.FinalEvaluationModel{}).
		Where("evaluacion_practica_id = ?", practica.PracticaID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestExists(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEvaluationService(db)
	practica := createTestPractica(t, db)

	existe, err := svc.Exists(practica.PracticaID)
	require.NoError(t, err)
	assert.False(t, existe)

	_, err = svc.SaveDraft(practica.PracticaID, fullRequest())
	require.NoError(t, err)

	existe, err = svc.Exists(practica.PracticaID)
	require.NoError(t, err)
	assert.True(t, existe)
}

func TestLoadSinEvaluacion(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEvaluationService(db)

	_, err := svc.Load(uuid.NewString())
	assert.ErrorIs(t, err, ErrEvaluacionNotFound)
}

func TestFinalizeCierraEvaluacionYPractica(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEvaluationService(db)
	practica := createTestPractica(t, db)

	_, err := svc.SaveDraft(practica.PracticaID, fullRequest())
	require.NoError(t, err)

	eval, err := svc.Finalize(practica.PracticaID)
	require.NoError(t, err)

	assert.Equal(t, constants.EvaluacionCompletada, eval.EvaluacionEstado)
	assert.Equal(t, 100, eval.EvaluacionAvance)
	assert.NotNil(t, eval.EvaluacionFechaFinalizacion)
	assert.NotEmpty(t, eval.EvaluacionResumen)

	var refreshed internshipModel.InternshipModel
	require.NoError(t, db.First(&refreshed, "practica_id = ?", practica.PracticaID).Error)
	assert.Equal(t, constants.PracticaCompletada, refreshed.PracticaEstado)
	assert.NotNil(t, refreshed.PracticaFechaTermino)
}

func TestFinalizeSinEvaluacion(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEvaluationService(db)
	practica := createTestPractica(t, db)

	_, err := svc.Finalize(practica.PracticaID)
	assert.ErrorIs(t, err, ErrEvaluacionNotFound)
}

func TestFinalizeRechazaRequisitosIncompletos(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEvaluationService(db)

	casos := []struct {
		nombre       string
		req          dto.SaveEvaluationRequest
		pasoEsperado int
	}{
		{
			nombre: "area sin nota",
			req: func() dto.SaveEvaluationRequest {
				r := fullRequest()
				r.EvaluacionesAreas[1].Nota = nil
				return r
			}(),
			pasoEsperado: scoring.PasoAreas,
		},
		{
			nombre: "empleabilidad sin nivel",
			req: func() dto.SaveEvaluationRequest {
				r := fullRequest()
				r.EvaluacionesEmpleabilidad[0].NivelLogro = ""
				return r
			}(),
			pasoEsperado: scoring.PasoEmpleabilidad,
		},
		{
			nombre: "maestro guia sin cargo",
			req: func() dto.SaveEvaluationRequest {
				r := fullRequest()
				r.MaestroGuia.Cargo = ""
				return r
			}(),
			pasoEsperado: scoring.PasoRevision,
		},
		{
			nombre: "rut del maestro guia invalido",
			req: func() dto.SaveEvaluationRequest {
				r := fullRequest()
				r.MaestroGuia.Rut = "12345678-4"
				return r
			}(),
			pasoEsperado: scoring.PasoRevision,
		},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			practica := createTestPractica(t, db)
			_, err := svc.SaveDraft(practica.PracticaID, c.req)
			require.NoError(t, err)

			_, err = svc.Finalize(practica.PracticaID)
			var gate *scoring.GateError
			require.ErrorAs(t, err, &gate)
			assert.Equal(t, c.pasoEsperado, gate.Paso)

			// la evaluación sigue editable después del rechazo
			eval, err := svc.Load(practica.PracticaID)
			require.NoError(t, err)
			assert.Equal(t, constants.EvaluacionEnProgreso, eval.EvaluacionEstado)
		})
	}
}

func TestEvaluacionCompletadaEsInmutable(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEvaluationService(db)
	practica := createTestPractica(t, db)

	_, err := svc.SaveDraft(practica.PracticaID, fullRequest())
	require.NoError(t, err)
	_, err = svc.Finalize(practica.PracticaID)
	require.NoError(t, err)

	_, err = svc.SaveDraft(practica.PracticaID, fullRequest())
	assert.ErrorIs(t, err, ErrEvaluacionCompletada)

	_, err = svc.Finalize(practica.PracticaID)
	assert.ErrorIs(t, err, ErrEvaluacionCompletada)
}

func TestBuildDraftRefleja(t *testing.T) {
	m := &model.FinalEvaluationModel{
		Areas: []model.AreaGradeModel{
			{EvalAreaAreaID: "a1", EvalAreaNota: nota(6.0)},
		},
		Tareas: []model.TaskGradeModel{
			{EvalTareaTareaID: "t1", EvalTareaNivelLogro: constants.NivelBueno, EvalTareaRealizada: true},
		},
		Empleabilidad: []model.EmployabilityGradeModel{
			{EvalEmpleabilidadCompetenciaID: "c1", EvalEmpleabilidadNivelLogro: constants.NivelExcelente},
		},
		MaestroGuia: &model.GuidingSupervisorModel{
			MaestroGuiaNombreCompleto: "Marcela Soto",
			MaestroGuiaCargo:          "Jefa de Taller",
		},
	}

	d := BuildDraft(m)
	assert.Len(t, d.Areas, 1)
	assert.Len(t, d.Tareas, 1)
	assert.Len(t, d.Empleabilidad, 1)
	assert.Equal(t, "Marcela Soto", d.MaestroGuia.NombreCompleto)
	assert.Equal(t, 100, scoring.ComputeProgress(d))
}
