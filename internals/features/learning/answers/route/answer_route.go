// file: internals/features/learning/answers/route/answer_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	answercontroller "belajarku_backend/internals/features/learning/answers/controller"
	authMiddleware "belajarku_backend/internals/middlewares/auth"
)

// Jawaban siswa per modul & kategori
func AnswerUserRoutes(api fiber.Router, db *gorm.DB) {
	user := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStudent("pengisian jawaban"),
			constants.StudentOnly,
		),
	)

	answerCtrl := answercontroller.NewAnswerController(db)
	answers := user.Group("/modules/:module_id/answers")
	answers.Get("/", answerCtrl.GetSubmissionStates)
	answers.Get("/:category", answerCtrl.GetAnswers)
	answers.Post("/:category", answerCtrl.SaveAnswer)
}
