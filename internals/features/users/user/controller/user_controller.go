package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/users/user/dto"
	"belajarku_backend/internals/features/users/user/model"
	"belajarku_backend/internals/features/users/user/service"
	helper "belajarku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/u/users/me
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	profile, err := service.FindProfileByUserID(c.Context(), ctrl.DB, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	return helper.JsonOK(c, "OK", dto.ToMeDTO(user, profile))
}

// PUT /api/u/users/me/profile
func (ctrl *UserController) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	if err := service.UpdateProfile(c.Context(), ctrl.DB, userID, req.FullName, req.ClassLabel, req.NIS); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update profil")
	}

	profile, _ := service.FindProfileByUserID(c.Context(), ctrl.DB, userID)
	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Profil berhasil diperbarui", dto.ToMeDTO(user, profile))
}
