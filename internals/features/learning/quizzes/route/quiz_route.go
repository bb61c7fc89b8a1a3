// file: internals/features/learning/quizzes/route/quiz_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	quizcontroller "belajarku_backend/internals/features/learning/quizzes/controller"
	authMiddleware "belajarku_backend/internals/middlewares/auth"
)

// Quiz modul (submit & riwayat pilihan) untuk siswa
func QuizUserRoutes(api fiber.Router, db *gorm.DB) {
	user := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStudent("pengerjaan quiz"),
			constants.StudentOnly,
		),
	)

	quizCtrl := quizcontroller.NewQuizController(db)
	quiz := user.Group("/modules/:module_id/quiz")
	quiz.Post("/submit", quizCtrl.SubmitQuiz)
	quiz.Get("/answers", quizCtrl.GetMyQuizAnswers)
}
