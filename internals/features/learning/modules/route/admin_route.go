package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	modulecontroller "belajarku_backend/internals/features/learning/modules/controller"
	authMiddleware "belajarku_backend/internals/middlewares/auth"
)

// Pengelolaan konten modul (teacher/admin)
func ModuleAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTeacher("pengelolaan modul"),
			constants.TeacherAndAbove,
		),
	)

	moduleCtrl := modulecontroller.NewModuleController(db)
	modules := admin.Group("/modules")
	modules.Post("/", moduleCtrl.CreateModule)
	modules.Put("/:id", moduleCtrl.UpdateModule)
	modules.Delete("/:id", moduleCtrl.DeleteModule)
	modules.Post("/:id/sections", moduleCtrl.CreateSection)
	modules.Post("/:id/prompts", moduleCtrl.CreatePrompt)
	modules.Post("/:id/videos", moduleCtrl.CreateVideo)
	modules.Post("/:id/worksheet-items", moduleCtrl.CreateWorksheetItem)
	modules.Post("/:id/quiz-questions", moduleCtrl.CreateQuizQuestion)
}
