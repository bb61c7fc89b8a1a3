// file: internals/features/feedback/controller/feedback_teacher_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/feedback/dto"
	"belajarku_backend/internals/features/feedback/service"
	helper "belajarku_backend/internals/helpers"
)

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

// POST /api/a/feedback
// Upsert: guru menilai ulang jawaban yang sama → baris lama tertimpa.
func (ctrl *FeedbackController) SubmitFeedback(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	saved, err := service.SubmitFeedback(ctrl.DB.WithContext(c.Context()), service.SubmitFeedbackInput{
		TeacherID: teacherID,
		StudentID: req.FeedbackStudentID,
		AnswerID:  req.FeedbackAnswerID,
		Type:      req.FeedbackType,
		Stars:     req.FeedbackStars,
		Text:      req.FeedbackText,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAnswerNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Jawaban tidak ditemukan untuk siswa tersebut")
		case errors.Is(err, service.ErrInvalidStars):
			return helper.JsonError(c, fiber.StatusBadRequest, "Rating bintang harus antara 1 dan 5")
		case errors.Is(err, service.ErrEmptyReply):
			return helper.JsonError(c, fiber.StatusBadRequest, "Teks feedback wajib diisi")
		case errors.Is(err, service.ErrInvalidFeedbackType):
			return helper.JsonError(c, fiber.StatusBadRequest, "Tipe feedback tidak dikenal")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan feedback")
	}

	return helper.JsonOK(c, "Feedback berhasil disimpan", dto.ToFeedbackDTO(*saved))
}

// GET /api/a/feedback/answers/:answer_id
func (ctrl *FeedbackController) GetFeedbackForAnswer(c *fiber.Ctx) error {
	answerID, err := uuid.Parse(c.Params("answer_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Answer ID tidak valid")
	}

	rows, err := service.GetFeedbackFor(ctrl.DB.WithContext(c.Context()), answerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil feedback")
	}
	return helper.JsonOK(c, "Feedback berhasil diambil", dto.ToFeedbackDTOs(rows))
}
