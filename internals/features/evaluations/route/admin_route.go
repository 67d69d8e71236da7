package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siggip_backend/internals/features/evaluations/controller"
)

func EvaluationAdminRoutes(api fiber.Router, db *gorm.DB) {
	evaluationCtrl := controller.NewEvaluationController(db)

	// === COORDINADOR ROUTES ===
	evaluation := api.Group("/evaluaciones")
	evaluation.Get("/estructura/:idPractica", evaluationCtrl.GetStructure)
	evaluation.Get("/verificar/:idPractica", evaluationCtrl.VerifyEvaluation)
	evaluation.Get("/:idPractica", evaluationCtrl.GetEvaluation)
	evaluation.Post("/:idPractica", evaluationCtrl.SaveEvaluation)
	evaluation.Put("/:idPractica", evaluationCtrl.SaveEvaluation)
	evaluation.Post("/:idPractica/finalizar", evaluationCtrl.FinalizeEvaluation)
}
