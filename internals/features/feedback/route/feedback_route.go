// file: internals/features/feedback/route/feedback_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	feedbackcontroller "belajarku_backend/internals/features/feedback/controller"
	authMiddleware "belajarku_backend/internals/middlewares/auth"
)

// Feedback sisi siswa: lihat feedback sendiri & balas
func FeedbackUserRoutes(api fiber.Router, db *gorm.DB) {
	user := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStudent("feedback"),
			constants.StudentOnly,
		),
	)

	feedbackCtrl := feedbackcontroller.NewFeedbackController(db)
	feedback := user.Group("/feedback")
	feedback.Get("/", feedbackCtrl.ListMyFeedback)
	feedback.Get("/answers/:answer_id", feedbackCtrl.GetMyFeedbackForAnswer)
	feedback.Post("/:id/reply", feedbackCtrl.ReplyToFeedback)
}

// Feedback sisi guru: beri nilai & lihat feedback per jawaban
func FeedbackTeacherRoutes(api fiber.Router, db *gorm.DB) {
	teacher := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTeacher("pemberian feedback"),
			constants.TeacherAndAbove,
		),
	)

	feedbackCtrl := feedbackcontroller.NewFeedbackController(db)
	feedback := teacher.Group("/feedback")
	feedback.Post("/", feedbackCtrl.SubmitFeedback)
	feedback.Get("/answers/:answer_id", feedbackCtrl.GetFeedbackForAnswer)
}
