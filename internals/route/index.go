// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feedbackRoute "belajarku_backend/internals/features/feedback/route"
	answerRoute "belajarku_backend/internals/features/learning/answers/route"
	moduleRoute "belajarku_backend/internals/features/learning/modules/route"
	progressRoute "belajarku_backend/internals/features/learning/progress/route"
	quizRoute "belajarku_backend/internals/features/learning/quizzes/route"
	recapRoute "belajarku_backend/internals/features/teacher/route"
	authRoute "belajarku_backend/internals/features/users/auth/route"
	userRoute "belajarku_backend/internals/features/users/user/route"
	authMiddleware "belajarku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH (public + protected) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== BASE =====================
	BaseRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up /api/u group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	userRoute.UserRoutes(private, db)
	moduleRoute.ModuleUserRoutes(private, db)
	answerRoute.AnswerUserRoutes(private, db)
	quizRoute.QuizUserRoutes(private, db)
	progressRoute.ProgressUserRoutes(private, db)
	feedbackRoute.FeedbackUserRoutes(private, db)

	// ===================== ADMIN / TEACHER =====================
	log.Println("[INFO] Setting up /api/a group...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	moduleRoute.ModuleAdminRoutes(admin, db)
	feedbackRoute.FeedbackTeacherRoutes(admin, db)
	recapRoute.RecapRoutes(admin, db)

	log.Println("[INFO] ✅ Semua route berhasil didaftarkan")
}
