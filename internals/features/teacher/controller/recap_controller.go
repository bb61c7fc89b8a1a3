// file: internals/features/teacher/controller/recap_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feedbackdto "belajarku_backend/internals/features/feedback/dto"
	feedbackservice "belajarku_backend/internals/features/feedback/service"
	answermodel "belajarku_backend/internals/features/learning/answers/model"
	answerservice "belajarku_backend/internals/features/learning/answers/service"
	"belajarku_backend/internals/features/teacher/service"
	helper "belajarku_backend/internals/helpers"
)

type RecapController struct {
	DB *gorm.DB
}

func NewRecapController(db *gorm.DB) *RecapController {
	return &RecapController{DB: db}
}

// GET /api/a/recap/modules/:module_id?track=ekonomi&class_label=X%20IPS%201
// Daftar siswa (difilter track/kelas) + status submit per kategori.
func (ctrl *RecapController) ListStudents(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("module_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module ID tidak valid")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	rows, total, err := service.ListStudents(
		ctrl.DB.WithContext(c.Context()),
		moduleID,
		c.Query("track"),
		c.Query("class_label"),
		paging.Limit,
		paging.Offset,
	)
	if err != nil {
		if errors.Is(err, service.ErrUnknownTrack) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Track tidak dikenal")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil recap siswa")
	}

	return helper.JsonList(c, "Recap siswa berhasil diambil", rows, helper.BuildPagination(paging, total))
}

// GET /api/a/recap/modules/:module_id/students/:student_id
// Jawaban lengkap satu siswa per kategori, berikut feedback per jawaban.
func (ctrl *RecapController) GetStudentDetail(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("module_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module ID tidak valid")
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID tidak valid")
	}

	db := ctrl.DB.WithContext(c.Context())
	answers, err := service.LoadStudentAnswers(db, studentID, moduleID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban siswa")
	}

	feedback := map[string][]feedbackdto.FeedbackDTO{}
	for _, list := range answers {
		for _, ans := range list {
			rows, err := feedbackservice.GetFeedbackFor(db, ans.ModuleAnswerID)
			if err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil feedback")
			}
			if len(rows) > 0 {
				feedback[ans.ModuleAnswerID.String()] = feedbackdto.ToFeedbackDTOs(rows)
			}
		}
	}

	return helper.JsonOK(c, "Detail siswa berhasil diambil", fiber.Map{
		"answers":  answers,
		"feedback": feedback,
	})
}

// DELETE /api/a/recap/modules/:module_id/students/:student_id/answers?category=lkpd
// Reset jawaban siswa; tanpa query category berarti seluruh modul. Feedback
// yang menunjuk jawaban terhapus ikut hilang dalam transaksi yang sama.
func (ctrl *RecapController) ResetStudentAnswers(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("module_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module ID tidak valid")
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID tidak valid")
	}
	category := answermodel.AnswerCategory(c.Query("category"))

	deleted, err := service.ResetStudentAnswers(ctrl.DB.WithContext(c.Context()), studentID, moduleID, category)
	if err != nil {
		if errors.Is(err, answerservice.ErrInvalidCategory) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kategori jawaban tidak dikenal")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mereset jawaban siswa")
	}

	return helper.JsonDeleted(c, "Jawaban siswa berhasil direset", fiber.Map{
		"deleted_answers": deleted,
	})
}
