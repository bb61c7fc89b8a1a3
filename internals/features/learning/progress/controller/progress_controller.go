// file: internals/features/learning/progress/controller/progress_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	modulemodel "belajarku_backend/internals/features/learning/modules/model"
	"belajarku_backend/internals/features/learning/progress/service"
	helper "belajarku_backend/internals/helpers"
)

type ProgressController struct {
	DB      *gorm.DB
	Service *service.ProgressService
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{
		DB:      db,
		Service: service.NewProgressService(service.NewGormStore(db)),
	}
}

// GET /api/u/progress
// Blob progres lengkap plus persentase per modul yang sudah disentuh.
func (ctrl *ProgressController) GetMyProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	blob, err := ctrl.Service.GetProgress(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil progres")
	}

	percents := map[string]int{}
	db := ctrl.DB.WithContext(c.Context())
	for key, mp := range blob.Modules {
		moduleID, err := uuid.Parse(key)
		if err != nil {
			continue
		}
		var sections, videos, questions int64
		db.Model(&modulemodel.ModuleSectionModel{}).
			Where("module_section_module_id = ?", moduleID).Count(&sections)
		db.Model(&modulemodel.ModuleVideoModel{}).
			Where("module_video_module_id = ?", moduleID).Count(&videos)
		db.Model(&modulemodel.ModuleQuizQuestionModel{}).
			Where("module_quiz_question_module_id = ?", moduleID).Count(&questions)
		percents[key] = service.ModulePercent(mp, int(sections), int(videos), int(questions))
	}

	return helper.JsonOK(c, "Progres berhasil diambil", fiber.Map{
		"progress": blob,
		"percents": percents,
	})
}

// POST /api/u/progress/modules/:module_id/sections/:code
func (ctrl *ProgressController) MarkSectionComplete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	moduleID, err := uuid.Parse(c.Params("module_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module ID tidak valid")
	}
	code := strings.TrimSpace(c.Params("code"))
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kode section wajib diisi")
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&modulemodel.ModuleSectionModel{}).
		Where("module_section_module_id = ? AND module_section_code = ?", moduleID, code).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa section")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan pada modul ini")
	}

	mp, err := ctrl.Service.MarkSectionComplete(userID, moduleID, code)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan progres")
	}
	return helper.JsonUpdated(c, "Section ditandai selesai", mp)
}

// POST /api/u/progress/modules/:module_id/videos/:index
func (ctrl *ProgressController) MarkVideoWatched(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	moduleID, err := uuid.Parse(c.Params("module_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module ID tidak valid")
	}
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil || index < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Index video tidak valid")
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&modulemodel.ModuleVideoModel{}).
		Where("module_video_module_id = ? AND module_video_index = ?", moduleID, index).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa video")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Video tidak ditemukan pada modul ini")
	}

	mp, err := ctrl.Service.MarkVideoWatched(userID, moduleID, index)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan progres")
	}
	return helper.JsonUpdated(c, "Video ditandai sudah ditonton", mp)
}

// POST /api/u/progress/modules/:module_id/complete
func (ctrl *ProgressController) MarkModuleComplete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	moduleID, err := uuid.Parse(c.Params("module_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module ID tidak valid")
	}

	var sectionCodes []string
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&modulemodel.ModuleSectionModel{}).
		Where("module_section_module_id = ?", moduleID).
		Pluck("module_section_code", &sectionCodes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa materi modul")
	}

	mp, err := ctrl.Service.MarkModuleComplete(userID, moduleID, sectionCodes)
	if err != nil {
		if errors.Is(err, service.ErrSectionsIncomplete) {
			return helper.JsonError(c, fiber.StatusConflict, "Masih ada materi yang belum diselesaikan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan progres")
	}
	return helper.JsonUpdated(c, "Modul ditandai selesai", mp)
}

// PUT /api/u/progress/dark-mode
func (ctrl *ProgressController) SetDarkMode(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req struct {
		DarkMode *bool `json:"dark_mode"`
	}
	if err := c.BodyParser(&req); err != nil || req.DarkMode == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Field dark_mode wajib diisi")
	}

	if err := ctrl.Service.SetDarkMode(userID, *req.DarkMode); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan preferensi")
	}
	return helper.JsonUpdated(c, "Preferensi tampilan disimpan", fiber.Map{"dark_mode": *req.DarkMode})
}
