// file: internals/features/learning/quizzes/controller/quiz_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	progressservice "belajarku_backend/internals/features/learning/progress/service"
	"belajarku_backend/internals/features/learning/quizzes/dto"
	"belajarku_backend/internals/features/learning/quizzes/service"
	helper "belajarku_backend/internals/helpers"
)

type QuizController struct {
	DB    *gorm.DB
	Store progressservice.Store
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db, Store: progressservice.NewGormStore(db)}
}

// POST /api/u/modules/:module_id/quiz/submit
func (ctrl *QuizController) SubmitQuiz(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	moduleID, err := uuid.Parse(c.Params("module_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module ID tidak valid")
	}

	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(req.Selections) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Pilihan jawaban tidak boleh kosong")
	}

	result, err := service.SubmitQuiz(ctrl.DB.WithContext(c.Context()), ctrl.Store, userID, moduleID, req.Selections)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoQuestions):
			return helper.JsonError(c, fiber.StatusNotFound, "Modul ini belum punya soal quiz")
		case errors.Is(err, service.ErrIncompleteSelections):
			return helper.JsonError(c, fiber.StatusBadRequest, "Semua soal harus dijawab sebelum submit")
		case errors.Is(err, service.ErrSelectionOutOfRange):
			return helper.JsonError(c, fiber.StatusBadRequest, "Pilihan jawaban di luar jangkauan opsi")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menilai quiz")
	}

	return helper.JsonOK(c, "Quiz berhasil dinilai", result)
}

// GET /api/u/modules/:module_id/quiz/answers
func (ctrl *QuizController) GetMyQuizAnswers(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	moduleID, err := uuid.Parse(c.Params("module_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module ID tidak valid")
	}

	answers, err := service.LoadQuizAnswers(ctrl.DB.WithContext(c.Context()), userID, moduleID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban quiz")
	}
	return helper.JsonOK(c, "Jawaban quiz berhasil diambil", dto.ToQuizAnswerDTOs(answers))
}
