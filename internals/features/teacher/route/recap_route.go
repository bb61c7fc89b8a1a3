// file: internals/features/teacher/route/recap_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	recapcontroller "belajarku_backend/internals/features/teacher/controller"
	authMiddleware "belajarku_backend/internals/middlewares/auth"
)

// Recap & reset jawaban siswa (teacher/admin)
func RecapRoutes(api fiber.Router, db *gorm.DB) {
	teacher := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTeacher("recap siswa"),
			constants.TeacherAndAbove,
		),
	)

	recapCtrl := recapcontroller.NewRecapController(db)
	recap := teacher.Group("/recap")
	recap.Get("/modules/:module_id", recapCtrl.ListStudents)
	recap.Get("/modules/:module_id/students/:student_id", recapCtrl.GetStudentDetail)
	recap.Delete("/modules/:module_id/students/:student_id/answers", recapCtrl.ResetStudentAnswers)
}
