package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	usercontroller "belajarku_backend/internals/features/users/user/controller"
	authMiddleware "belajarku_backend/internals/middlewares/auth"
)

// Profil milik user login
func UserRoutes(api fiber.Router, db *gorm.DB) {
	user := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			"❌ Hanya pengguna terautentikasi yang boleh mengakses fitur profil.",
			constants.AllRoles,
		),
	)

	userCtrl := usercontroller.NewUserController(db)
	users := user.Group("/users")
	users.Get("/me", userCtrl.GetMe)
	users.Put("/me/profile", userCtrl.UpdateMyProfile)
}
