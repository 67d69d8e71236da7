package service

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"siggip_backend/internals/constants"
	"siggip_backend/internals/features/evaluations/dto"
	"siggip_backend/internals/features/evaluations/model"
	"siggip_backend/internals/features/evaluations/scoring"
	internshipModel "siggip_backend/internals/features/internships/model"
)

var (
	ErrPracticaNotFound     = errors.New("práctica no encontrada")
	ErrEvaluacionNotFound   = errors.New("la práctica no tiene evaluación")
	ErrEvaluacionCompletada = errors.New("la evaluación ya fue finalizada y no admite cambios")
)

type EvaluationService struct {
	DB *gorm.DB
}

func NewEvaluationService(db *gorm.DB) *EvaluationService {
	return &EvaluationService{DB: db}
}

// Load trae la evaluación de una práctica con todas sus colecciones.
func (s *EvaluationService) Load(practicaID string) (*model.FinalEvaluationModel, error) {
	var eval model.FinalEvaluationModel
	err := s.DB.
		Preload("Areas").
		Preload("Tareas").
		Preload("Empleabilidad").
		Preload("MaestroGuia").
		First(&eval, "evaluacion_practica_id = ?", practicaID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEvaluacionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &eval, nil
}

// Exists responde el "verificar" del asistente sin cargar los hijos.
func (s *EvaluationService) Exists(practicaID string) (bool, error) {
	var count int64
	err := s.DB.Model(&model.FinalEvaluationModel{}).
		Where("evaluacion_practica_id = ?", practicaID).
		Count(&count).Error
	return count > 0, err
}

// SaveDraft persiste el borrador completo con semántica create-or-update.
// El registro padre se inserta con ON CONFLICT sobre el índice único de
// evaluacion_practica_id, de modo que dos saves concurrentes de la misma
// práctica terminan ambos actualizando el mismo registro.
func (s *EvaluationService) SaveDraft(practicaID string, req dto.SaveEvaluationRequest) (*model.FinalEvaluationModel, error) {
	var practica internshipModel.InternshipModel
	if err := s.DB.First(&practica, "practica_id = ?", practicaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPracticaNotFound
		}
		return nil, err
	}

	draft := req.ToDraft()
	avance := scoring.ComputeProgress(draft)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		eval := model.FinalEvaluationModel{
			EvaluacionPracticaID: practicaID,
			EvaluacionEstado:     constants.EvaluacionEnProgreso,
			EvaluacionAvance:     avance,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "evaluacion_practica_id"}},
			DoNothing: true,
		}).Create(&eval).Error; err != nil {
			return err
		}

		// releer cubre tanto el insert recién hecho como el registro previo
		if err := tx.First(&eval, "evaluacion_practica_id = ?", practicaID).Error; err != nil {
			return err
		}
		if eval.EvaluacionEstado == constants.EvaluacionCompletada {
			return ErrEvaluacionCompletada
		}

		if err := tx.Model(&model.FinalEvaluationModel{}).
			Where("evaluacion_id = ?", eval.EvaluacionID).
			Update("evaluacion_avance", avance).Error; err != nil {
			return err
		}

		// reemplazo completo de las colecciones hijas
		if err := deleteChildren(tx, eval.EvaluacionID); err != nil {
			return err
		}
		if err := insertChildren(tx, eval.EvaluacionID, req); err != nil {
			return err
		}

		// el primer borrador pone la práctica en curso
		if practica.PracticaEstado == constants.PracticaAsignada {
			if err := tx.Model(&internshipModel.InternshipModel{}).
				Where("practica_id = ?", practicaID).
				Update("practica_estado", constants.PracticaEnCurso).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Load(practicaID)
}

// Finalize re-valida las reglas de cierre en el servidor (el cálculo del
// cliente es solo referencial) y hace la transición terminal.
func (s *EvaluationService) Finalize(practicaID string) (*model.FinalEvaluationModel, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var eval model.FinalEvaluationModel
		err := tx.
			Preload("Areas").
			Preload("Tareas").
			Preload("Empleabilidad").
			Preload("MaestroGuia").
			First(&eval, "evaluacion_practica_id = ?", practicaID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEvaluacionNotFound
		}
		if err != nil {
			return err
		}
		if eval.EvaluacionEstado == constants.EvaluacionCompletada {
			return ErrEvaluacionCompletada
		}

		draft := BuildDraft(&eval)
		if gate := scoring.ValidateGates(draft); gate != nil {
			return gate
		}

		breakdown := scoring.ComputeBreakdown(draft)
		resumen, err := json.Marshal(breakdown)
		if err != nil {
			return err
		}
		now := time.Now()

		if err := tx.Model(&model.FinalEvaluationModel{}).
			Where("evaluacion_id = ?", eval.EvaluacionID).
			Updates(map[string]any{
				"evaluacion_estado":             constants.EvaluacionCompletada,
				"evaluacion_avance":             breakdown.Total,
				"evaluacion_resumen":            resumen,
				"evaluacion_fecha_finalizacion": now,
			}).Error; err != nil {
			return err
		}

		// la práctica queda completada junto con su evaluación
		return tx.Model(&internshipModel.InternshipModel{}).
			Where("practica_id = ?", practicaID).
			Updates(map[string]any{
				"practica_estado":        constants.PracticaCompletada,
				"practica_fecha_termino": now,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Load(practicaID)
}

// BuildDraft arma el borrador de scoring desde el registro persistido.
func BuildDraft(m *model.FinalEvaluationModel) scoring.Draft {
	d := scoring.Draft{}
	for _, a := range m.Areas {
		d.Areas = append(d.Areas, scoring.AreaGrade{AreaID: a.EvalAreaAreaID, Nota: a.EvalAreaNota, Comentarios: a.EvalAreaComentarios})
	}
	for _, t := range m.Tareas {
		d.Tareas = append(d.Tareas, scoring.TaskGrade{TareaID: t.EvalTareaTareaID, NivelLogro: t.EvalTareaNivelLogro, Realizada: t.EvalTareaRealizada, Comentarios: t.EvalTareaComentarios})
	}
	for _, e := range m.Empleabilidad {
		d.Empleabilidad = append(d.Empleabilidad, scoring.EmployabilityGrade{CompetenciaID: e.EvalEmpleabilidadCompetenciaID, NivelLogro: e.EvalEmpleabilidadNivelLogro, Observaciones: e.EvalEmpleabilidadObservaciones})
	}
	if m.MaestroGuia != nil {
		d.MaestroGuia = scoring.Supervisor{
			NombreCompleto: m.MaestroGuia.MaestroGuiaNombreCompleto,
			Rut:            m.MaestroGuia.MaestroGuiaRut,
			Cargo:          m.MaestroGuia.MaestroGuiaCargo,
			Email:          m.MaestroGuia.MaestroGuiaEmail,
			Telefono:       m.MaestroGuia.MaestroGuiaTelefono,
		}
	}
	return d
}

func deleteChildren(tx *gorm.DB, evaluacionID string) error {
	if err := tx.Where("eval_area_evaluacion_id = ?", evaluacionID).Delete(&model.AreaGradeModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("eval_tarea_evaluacion_id = ?", evaluacionID).Delete(&model.TaskGradeModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("eval_empleabilidad_evaluacion_id = ?", evaluacionID).Delete(&model.EmployabilityGradeModel{}).Error; err != nil {
		return err
	}
	return tx.Where("maestro_guia_evaluacion_id = ?", evaluacionID).Delete(&model.GuidingSupervisorModel{}).Error
}

func insertChildren(tx *gorm.DB, evaluacionID string, req dto.SaveEvaluationRequest) error {
	for _, a := range req.EvaluacionesAreas {
		row := model.AreaGradeModel{
			EvalAreaEvaluacionID: evaluacionID,
			EvalAreaAreaID:       a.AreaID,
			EvalAreaNota:         a.Nota,
			EvalAreaComentarios:  a.Comentarios,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	for _, t := range req.EvaluacionesTareas {
		row := model.TaskGradeModel{
			EvalTareaEvaluacionID: evaluacionID,
			EvalTareaTareaID:      t.TareaID,
			EvalTareaNivelLogro:   t.NivelLogro,
			EvalTareaRealizada:    t.Realizada,
			EvalTareaComentarios:  t.Comentarios,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	for _, e := range req.EvaluacionesEmpleabilidad {
		row := model.EmployabilityGradeModel{
			EvalEmpleabilidadEvaluacionID:  evaluacionID,
			EvalEmpleabilidadCompetenciaID: e.CompetenciaID,
			EvalEmpleabilidadNivelLogro:    e.NivelLogro,
			EvalEmpleabilidadObservaciones: e.Observaciones,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	supervisor := model.GuidingSupervisorModel{
		MaestroGuiaEvaluacionID:   evaluacionID,
		MaestroGuiaNombreCompleto: req.MaestroGuia.NombreCompleto,
		MaestroGuiaRut:            req.MaestroGuia.Rut,
		MaestroGuiaCargo:          req.MaestroGuia.Cargo,
		MaestroGuiaEmail:          req.MaestroGuia.Email,
		MaestroGuiaTelefono:       req.MaestroGuia.Telefono,
	}
	return tx.Create(&supervisor).Error
}
