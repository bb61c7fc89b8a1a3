package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"belajarku_backend/internals/features/learning/modules/dto"
	"belajarku_backend/internals/features/learning/modules/model"
	helper "belajarku_backend/internals/helpers"
)

// Controller untuk pengelolaan konten modul (teacher/admin).

// POST /api/a/modules
func (ctrl *ModuleController) CreateModule(c *fiber.Ctx) error {
	var req dto.CreateLearningModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	mod := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&mod).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Slug modul sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat modul")
	}
	return helper.JsonCreated(c, "Modul berhasil dibuat", dto.ToLearningModuleDTO(mod))
}

// PUT /api/a/modules/:id
func (ctrl *ModuleController) UpdateModule(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module ID tidak valid")
	}

	var req dto.UpdateLearningModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	updates := map[string]any{}
	if req.LearningModuleTitle != nil {
		updates["learning_module_title"] = *req.LearningModuleTitle
	}
	if req.LearningModuleDescription != nil {
		updates["learning_module_description"] = *req.LearningModuleDescription
	}
	if req.LearningModuleOrder != nil {
		updates["learning_module_order"] = *req.LearningModuleOrder
	}
	if req.LearningModuleGlossary != nil {
		updates["learning_module_glossary"] = *req.LearningModuleGlossary
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.LearningModuleModel{}).
		Where("learning_module_id = ?", moduleID).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update modul")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Modul tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Modul berhasil diperbarui", nil)
}

// DELETE /api/a/modules/:id (soft delete)
func (ctrl *ModuleController) DeleteModule(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("learning_module_id = ?", moduleID).
		Delete(&model.LearningModuleModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus modul")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Modul tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Modul berhasil dihapus", nil)
}

// POST /api/a/modules/:id/sections
func (ctrl *ModuleController) CreateSection(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module ID tidak valid")
	}

	var section model.ModuleSectionModel
	if err := c.BodyParser(&section); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	section.ModuleSectionID = uuid.Nil
	section.ModuleSectionModuleID = moduleID
	if strings.TrimSpace(section.ModuleSectionCode) == "" || strings.TrimSpace(section.ModuleSectionTitle) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Code dan title section wajib diisi")
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&section).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat section")
	}
	return helper.JsonCreated(c, "Section berhasil dibuat", section)
}

// POST /api/a/modules/:id/prompts
func (ctrl *ModuleController) CreatePrompt(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module ID tidak valid")
	}

	var prompt model.ModulePromptModel
	if err := c.BodyParser(&prompt); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	prompt.ModulePromptID = uuid.Nil
	prompt.ModulePromptModuleID = moduleID
	if prompt.ModulePromptCategory != model.PromptCategoryTrigger &&
		prompt.ModulePromptCategory != model.PromptCategoryReflection {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kategori prompt harus trigger atau reflection")
	}
	if strings.TrimSpace(prompt.ModulePromptText) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Teks prompt wajib diisi")
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&prompt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat prompt")
	}
	return helper.JsonCreated(c, "Prompt berhasil dibuat", prompt)
}

// POST /api/a/modules/:id/videos
func (ctrl *ModuleController) CreateVideo(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module ID tidak valid")
	}

	var video model.ModuleVideoModel
	if err := c.BodyParser(&video); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	video.ModuleVideoID = uuid.Nil
	video.ModuleVideoModuleID = moduleID
	if strings.TrimSpace(video.ModuleVideoURL) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "URL video wajib diisi")
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&video).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat video")
	}
	return helper.JsonCreated(c, "Video berhasil dibuat", video)
}

// POST /api/a/modules/:id/worksheet-items
func (ctrl *ModuleController) CreateWorksheetItem(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module ID tidak valid")
	}

	var item model.ModuleWorksheetItemModel
	if err := c.BodyParser(&item); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	item.ModuleWorksheetItemID = uuid.Nil
	item.ModuleWorksheetItemModuleID = moduleID
	if strings.TrimSpace(item.ModuleWorksheetItemPrompt) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Soal LKPD wajib diisi")
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat soal LKPD")
	}
	return helper.JsonCreated(c, "Soal LKPD berhasil dibuat", item)
}

// POST /api/a/modules/:id/quiz-questions
func (ctrl *ModuleController) CreateQuizQuestion(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module ID tidak valid")
	}

	var question model.ModuleQuizQuestionModel
	if err := c.BodyParser(&question); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	question.ModuleQuizQuestionID = uuid.Nil
	question.ModuleQuizQuestionModuleID = moduleID
	if strings.TrimSpace(question.ModuleQuizQuestionText) == "" || len(question.ModuleQuizQuestionOptions) < 2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Soal quiz butuh teks dan minimal 2 opsi")
	}
	if question.ModuleQuizQuestionCorrectIndex < 0 ||
		question.ModuleQuizQuestionCorrectIndex >= len(question.ModuleQuizQuestionOptions) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Index jawaban benar di luar jangkauan opsi")
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat soal quiz")
	}
	return helper.JsonCreated(c, "Soal quiz berhasil dibuat", question)
}
