// file: internals/features/learning/progress/route/progress_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	progresscontroller "belajarku_backend/internals/features/learning/progress/controller"
	authMiddleware "belajarku_backend/internals/middlewares/auth"
)

// Progres belajar & preferensi tampilan siswa
func ProgressUserRoutes(api fiber.Router, db *gorm.DB) {
	user := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStudent("progres belajar"),
			constants.StudentOnly,
		),
	)

	progressCtrl := progresscontroller.NewProgressController(db)
	progress := user.Group("/progress")
	progress.Get("/", progressCtrl.GetMyProgress)
	progress.Put("/dark-mode", progressCtrl.SetDarkMode)
	progress.Post("/modules/:module_id/sections/:code", progressCtrl.MarkSectionComplete)
	progress.Post("/modules/:module_id/videos/:index", progressCtrl.MarkVideoWatched)
	progress.Post("/modules/:module_id/complete", progressCtrl.MarkModuleComplete)
}
