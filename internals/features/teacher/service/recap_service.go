// file: internals/features/teacher/service/recap_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	feedbackservice "belajarku_backend/internals/features/feedback/service"
	answermodel "belajarku_backend/internals/features/learning/answers/model"
	answerservice "belajarku_backend/internals/features/learning/answers/service"
	quizmodel "belajarku_backend/internals/features/learning/quizzes/model"
	usermodel "belajarku_backend/internals/features/users/user/model"
)

var (
	// ErrUnknownTrack track di luar ekonomi/geografi.
	ErrUnknownTrack = errors.New("track tidak dikenal")

	// ErrStudentNotFound siswa tidak ada atau bukan role student.
	ErrStudentNotFound = errors.New("siswa tidak ditemukan")
)

// StudentRow satu baris recap: identitas + status submit per kategori.
type StudentRow struct {
	UserID     uuid.UUID                       `json:"user_id"`
	UserName   string                          `json:"user_name"`
	FullName   string                          `json:"full_name"`
	ClassLabel string                          `json:"class_label"`
	States     []answerservice.SubmissionState `json:"states"`
}

// ListStudents daftar siswa per track (atau satu kelas saja) plus status
// submit mereka untuk satu modul. Guru track ekonomi hanya melihat kelas IPS,
// geografi hanya kelas IIS. limit <= 0 berarti tanpa paging.
func ListStudents(db *gorm.DB, moduleID uuid.UUID, track, classLabel string, limit, offset int) ([]StudentRow, int64, error) {
	var classes []string
	switch {
	case classLabel != "":
		classes = []string{classLabel}
	case track != "":
		if !constants.IsValidTrack(track) {
			return nil, 0, ErrUnknownTrack
		}
		classes = constants.ClassLabelsForTrack(track)
	}

	type studentIdent struct {
		UserID     uuid.UUID `gorm:"column:user_id"`
		UserName   string    `gorm:"column:user_name"`
		FullName   string    `gorm:"column:full_name"`
		ClassLabel string    `gorm:"column:class_label"`
	}

	base := db.Table("users").
		Joins("JOIN user_profiles ON user_profiles.user_id = users.id").
		Where("users.role = ?", constants.RoleStudent).
		Where("users.deleted_at IS NULL")
	if len(classes) > 0 {
		base = base.Where("user_profiles.class_label IN ?", classes)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := base.
		Select("users.id AS user_id, users.user_name, user_profiles.full_name, user_profiles.class_label").
		Order("user_profiles.class_label ASC, user_profiles.full_name ASC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var idents []studentIdent
	if err := q.Scan(&idents).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]StudentRow, 0, len(idents))
	for _, ident := range idents {
		states, err := answerservice.CategoryStates(db, ident.UserID, moduleID)
		if err != nil {
			return nil, 0, err
		}
		rows = append(rows, StudentRow{
			UserID:     ident.UserID,
			UserName:   ident.UserName,
			FullName:   ident.FullName,
			ClassLabel: ident.ClassLabel,
			States:     states,
		})
	}
	return rows, total, nil
}

// LoadStudentAnswers jawaban lengkap satu siswa untuk satu modul, per kategori.
func LoadStudentAnswers(db *gorm.DB, studentID, moduleID uuid.UUID) (map[answermodel.AnswerCategory][]answermodel.ModuleAnswerModel, error) {
	var exists int64
	if err := db.Model(&usermodel.UserModel{}).
		Where("id = ? AND role = ?", studentID, constants.RoleStudent).
		Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrStudentNotFound
	}

	categories := []answermodel.AnswerCategory{
		answermodel.CategoryTrigger,
		answermodel.CategoryVideo,
		answermodel.CategoryLKPD,
		answermodel.CategoryReflection,
	}
	out := make(map[answermodel.AnswerCategory][]answermodel.ModuleAnswerModel, len(categories))
	for _, cat := range categories {
		answers, err := answerservice.LoadAnswers(db, studentID, moduleID, cat)
		if err != nil {
			return nil, err
		}
		out[cat] = answers
	}
	return out, nil
}

// ResetStudentAnswers membuka kembali satu kategori untuk siswa: jawaban
// kategori itu dihapus berikut feedback yang menunjuknya, dalam satu
// transaksi. Kategori kosong ("") berarti reset seluruh modul, termasuk
// jawaban quiz.
func ResetStudentAnswers(db *gorm.DB, studentID, moduleID uuid.UUID, category answermodel.AnswerCategory) (int64, error) {
	if category != "" && !category.Valid() {
		return 0, answerservice.ErrInvalidCategory
	}

	var deleted int64
	err := db.Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&answermodel.ModuleAnswerModel{}).
			Where("module_answer_user_id = ? AND module_answer_module_id = ?", studentID, moduleID)
		if category != "" {
			q = q.Where("module_answer_category = ?", category)
		}

		var answerIDs []uuid.UUID
		if err := q.Pluck("module_answer_id", &answerIDs).Error; err != nil {
			return err
		}

		if err := feedbackservice.DeleteForAnswers(tx, answerIDs); err != nil {
			return err
		}

		del := tx.Where("module_answer_id IN ?", answerIDs).
			Delete(&answermodel.ModuleAnswerModel{})
		if del.Error != nil {
			return del.Error
		}
		deleted = del.RowsAffected

		if category == "" {
			if err := tx.
				Where("module_quiz_answer_user_id = ? AND module_quiz_answer_module_id = ?", studentID, moduleID).
				Delete(&quizmodel.ModuleQuizAnswerModel{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return deleted, err
}
