// file: internals/features/learning/answers/controller/answer_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/learning/answers/dto"
	"belajarku_backend/internals/features/learning/answers/model"
	"belajarku_backend/internals/features/learning/answers/service"
	helper "belajarku_backend/internals/helpers"
)

type AnswerController struct {
	DB *gorm.DB
}

func NewAnswerController(db *gorm.DB) *AnswerController {
	return &AnswerController{DB: db}
}

func parseAnswerParams(c *fiber.Ctx) (uuid.UUID, model.AnswerCategory, error) {
	moduleID, err := uuid.Parse(c.Params("module_id"))
	if err != nil {
		return uuid.Nil, "", fiber.NewError(fiber.StatusBadRequest, "Module ID tidak valid")
	}
	category := model.AnswerCategory(c.Params("category"))
	if !category.Valid() {
		return uuid.Nil, "", fiber.NewError(fiber.StatusBadRequest, "Kategori jawaban tidak dikenal")
	}
	return moduleID, category, nil
}

// POST /api/u/modules/:module_id/answers/:category
// Jawaban selalu milik user dari token; body tidak bisa menulis atas nama
// siswa lain.
func (ctrl *AnswerController) SaveAnswer(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	moduleID, category, err := parseAnswerParams(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter tidak valid")
	}

	var req dto.SaveAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	saved, err := service.SaveAnswer(ctrl.DB.WithContext(c.Context()), service.SaveAnswerInput{
		UserID:   userID,
		ModuleID: moduleID,
		Category: category,
		ItemID:   req.ModuleAnswerItemID,
		Text:     req.ModuleAnswerText,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyAnswer):
			return helper.JsonError(c, fiber.StatusBadRequest, "Jawaban tidak boleh kosong")
		case errors.Is(err, service.ErrCategoryLocked):
			return helper.JsonError(c, fiber.StatusConflict, "Jawaban kategori ini sudah terkunci. Hubungi guru untuk reset.")
		case errors.Is(err, service.ErrUnknownItem):
			return helper.JsonError(c, fiber.StatusNotFound, "Item tidak ditemukan pada modul ini")
		case errors.Is(err, service.ErrInvalidCategory):
			return helper.JsonError(c, fiber.StatusBadRequest, "Kategori jawaban tidak dikenal")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jawaban")
	}

	return helper.JsonOK(c, "Jawaban berhasil disimpan", dto.ToModuleAnswerDTO(*saved))
}

// GET /api/u/modules/:module_id/answers/:category
func (ctrl *AnswerController) GetAnswers(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	moduleID, category, err := parseAnswerParams(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter tidak valid")
	}

	db := ctrl.DB.WithContext(c.Context())
	answers, err := service.LoadAnswers(db, userID, moduleID, category)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban")
	}
	submitted, err := service.IsCategorySubmitted(db, userID, moduleID, category)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil status submit")
	}

	return helper.JsonOK(c, "Jawaban berhasil diambil", fiber.Map{
		"answers":   dto.ToModuleAnswerDTOs(answers),
		"submitted": submitted,
	})
}

// GET /api/u/modules/:module_id/answers
// Ringkasan status semua kategori untuk modul ini.
func (ctrl *AnswerController) GetSubmissionStates(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	moduleID, err := uuid.Parse(c.Params("module_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module ID tidak valid")
	}

	states, err := service.CategoryStates(ctrl.DB.WithContext(c.Context()), userID, moduleID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil status submit")
	}
	return helper.JsonOK(c, "Status submit berhasil diambil", states)
}
