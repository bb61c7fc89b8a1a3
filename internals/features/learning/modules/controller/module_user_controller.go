package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	"belajarku_backend/internals/features/learning/modules/dto"
	"belajarku_backend/internals/features/learning/modules/model"
	helper "belajarku_backend/internals/helpers"
)

type ModuleController struct {
	DB *gorm.DB
}

func NewModuleController(db *gorm.DB) *ModuleController {
	return &ModuleController{DB: db}
}

// =============================
// 📚 GET /api/u/modules — daftar modul (opsional ?track=)
// =============================
func (ctrl *ModuleController) GetAllModules(c *fiber.Ctx) error {
	track := c.Query("track")
	if track != "" && !constants.IsValidTrack(track) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Track tidak dikenal")
	}

	q := ctrl.DB.WithContext(c.Context()).Model(&model.LearningModuleModel{})
	if track != "" {
		q = q.Where("learning_module_track = ?", track)
	}

	var modules []model.LearningModuleModel
	if err := q.Order("learning_module_order ASC, learning_module_created_at ASC").
		Find(&modules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar modul")
	}

	result := make([]dto.LearningModuleDTO, 0, len(modules))
	for _, m := range modules {
		result = append(result, dto.ToLearningModuleDTO(m))
	}
	return helper.JsonOK(c, "OK", result)
}

// =============================
// 📖 GET /api/u/modules/:slug — detail modul + semua konten anak
// =============================
func (ctrl *ModuleController) GetModuleBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug modul diperlukan")
	}

	var mod model.LearningModuleModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("learning_module_slug = ?", slug).
		First(&mod).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Modul tidak ditemukan")
	}

	detail := dto.ModuleDetailDTO{Module: dto.ToLearningModuleDTO(mod)}

	if err := ctrl.DB.WithContext(c.Context()).
		Where("module_section_module_id = ?", mod.LearningModuleID).
		Order("module_section_order ASC").
		Find(&detail.Sections).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil materi modul")
	}

	var prompts []model.ModulePromptModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("module_prompt_module_id = ?", mod.LearningModuleID).
		Order("module_prompt_index ASC").
		Find(&prompts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pertanyaan modul")
	}
	for _, p := range prompts {
		switch p.ModulePromptCategory {
		case model.PromptCategoryTrigger:
			detail.TriggerPrompts = append(detail.TriggerPrompts, p)
		case model.PromptCategoryReflection:
			detail.Reflections = append(detail.Reflections, p)
		}
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Where("module_video_module_id = ?", mod.LearningModuleID).
		Order("module_video_index ASC").
		Find(&detail.Videos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil video modul")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Where("module_worksheet_item_module_id = ?", mod.LearningModuleID).
		Order("module_worksheet_item_index ASC").
		Find(&detail.WorksheetItems).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil LKPD modul")
	}

	var questions []model.ModuleQuizQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("module_quiz_question_module_id = ?", mod.LearningModuleID).
		Order("module_quiz_question_index ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal quiz")
	}
	detail.QuizQuestions = make([]dto.QuizQuestionStudentDTO, 0, len(questions))
	for _, q := range questions {
		detail.QuizQuestions = append(detail.QuizQuestions, dto.ToQuizQuestionStudentDTO(q))
	}

	return helper.JsonOK(c, "Modul berhasil ditemukan", detail)
}
