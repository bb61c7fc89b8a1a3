package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	modulecontroller "belajarku_backend/internals/features/learning/modules/controller"
	authMiddleware "belajarku_backend/internals/middlewares/auth"
)

// Konten modul untuk user login (read-only)
func ModuleUserRoutes(api fiber.Router, db *gorm.DB) {
	user := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			"❌ Hanya pengguna terautentikasi yang boleh mengakses modul.",
			constants.AllRoles,
		),
	)

	moduleCtrl := modulecontroller.NewModuleController(db)
	modules := user.Group("/modules")
	modules.Get("/", moduleCtrl.GetAllModules)
	modules.Get("/:slug", moduleCtrl.GetModuleBySlug)
}
