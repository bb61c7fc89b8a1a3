// file: internals/features/feedback/controller/feedback_student_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"belajarku_backend/internals/features/feedback/dto"
	"belajarku_backend/internals/features/feedback/service"
	helper "belajarku_backend/internals/helpers"
)

// GET /api/u/feedback
// Semua feedback milik siswa yang login.
func (ctrl *FeedbackController) ListMyFeedback(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	rows, err := service.ListForStudent(ctrl.DB.WithContext(c.Context()), studentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil feedback")
	}
	return helper.JsonOK(c, "Feedback berhasil diambil", dto.ToFeedbackDTOs(rows))
}

// GET /api/u/feedback/answers/:answer_id
// Feedback atas satu jawaban milik siswa yang login, untuk tampilan inline
// di samping jawabannya. Jawaban siswa lain → 404.
func (ctrl *FeedbackController) GetMyFeedbackForAnswer(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	answerID, err := uuid.Parse(c.Params("answer_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Answer ID tidak valid")
	}

	rows, err := service.GetFeedbackForOwnedAnswer(ctrl.DB.WithContext(c.Context()), studentID, answerID)
	if err != nil {
		if errors.Is(err, service.ErrAnswerNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jawaban tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil feedback")
	}
	return helper.JsonOK(c, "Feedback berhasil diambil", dto.ToFeedbackDTOs(rows))
}

// POST /api/u/feedback/:id/reply
// Hanya pemilik feedback yang bisa membalas; feedback siswa lain → 404.
func (ctrl *FeedbackController) ReplyToFeedback(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	feedbackID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Feedback ID tidak valid")
	}

	var req dto.StudentReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	saved, err := service.AttachStudentReply(ctrl.DB.WithContext(c.Context()), studentID, feedbackID, req.Reply)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFeedbackNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Feedback tidak ditemukan")
		case errors.Is(err, service.ErrEmptyReply):
			return helper.JsonError(c, fiber.StatusBadRequest, "Balasan tidak boleh kosong")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan balasan")
	}

	return helper.JsonUpdated(c, "Balasan berhasil disimpan", dto.ToFeedbackDTO(*saved))
}
