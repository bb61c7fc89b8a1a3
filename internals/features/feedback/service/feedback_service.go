// file: internals/features/feedback/service/feedback_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	answermodel "belajarku_backend/internals/features/learning/answers/model"
	"belajarku_backend/internals/features/feedback/model"
)

var (
	// ErrAnswerNotFound jawaban target tidak ada (atau bukan milik siswa itu).
	ErrAnswerNotFound = errors.New("jawaban tidak ditemukan")

	// ErrInvalidStars bintang harus 1-5.
	ErrInvalidStars = errors.New("rating bintang harus antara 1 dan 5")

	// ErrInvalidFeedbackType tipe di luar rating/comment.
	ErrInvalidFeedbackType = errors.New("tipe feedback tidak dikenal")

	// ErrFeedbackNotFound balasan ke feedback yang tidak ada / bukan miliknya.
	ErrFeedbackNotFound = errors.New("feedback tidak ditemukan")

	// ErrEmptyReply balasan siswa tidak boleh kosong.
	ErrEmptyReply = errors.New("balasan tidak boleh kosong")
)

// starPhrases frasa bawaan yang menemani tiap tingkat bintang.
var starPhrases = map[int]string{
	1: "Perlu banyak perbaikan, ayo coba lagi!",
	2: "Masih kurang tepat, baca kembali materinya ya.",
	3: "Cukup baik, masih bisa lebih dalam lagi.",
	4: "Bagus! Jawabanmu sudah hampir sempurna.",
	5: "Luar biasa! Jawabanmu sangat tepat.",
}

// StarRatingPhrase frasa bawaan untuk rating 1-5; kosong kalau di luar range.
func StarRatingPhrase(stars int) string {
	return starPhrases[stars]
}

// SubmitFeedbackInput satu aksi feedback guru.
type SubmitFeedbackInput struct {
	TeacherID uuid.UUID
	StudentID uuid.UUID
	AnswerID  uuid.UUID
	Type      model.FeedbackType
	Stars     *int
	Text      string
}

// SubmitFeedback menyimpan (atau menimpa) feedback guru untuk satu jawaban.
// Upsert lewat ON CONFLICT supaya klik ganda atau dua guru paralel tidak
// menghasilkan baris duplikat. Rating tanpa teks diisi frasa bawaan.
func SubmitFeedback(db *gorm.DB, in SubmitFeedbackInput) (*model.FeedbackModel, error) {
	if !in.Type.Valid() {
		return nil, ErrInvalidFeedbackType
	}

	text := strings.TrimSpace(in.Text)
	if in.Type == model.FeedbackTypeRating {
		if in.Stars == nil || *in.Stars < 1 || *in.Stars > 5 {
			return nil, ErrInvalidStars
		}
		if text == "" {
			text = StarRatingPhrase(*in.Stars)
		}
	} else {
		in.Stars = nil
		if text == "" {
			return nil, ErrEmptyReply
		}
	}

	// Pastikan jawaban memang ada dan milik siswa yang dituju.
	var count int64
	if err := db.Model(&answermodel.ModuleAnswerModel{}).
		Where("module_answer_id = ? AND module_answer_user_id = ?", in.AnswerID, in.StudentID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrAnswerNotFound
	}

	fb := model.FeedbackModel{
		FeedbackStudentID: in.StudentID,
		FeedbackAnswerID:  in.AnswerID,
		FeedbackType:      in.Type,
		FeedbackTeacherID: in.TeacherID,
		FeedbackStars:     in.Stars,
		FeedbackText:      text,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "feedback_student_id"},
			{Name: "feedback_answer_id"},
			{Name: "feedback_type"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"feedback_teacher_id",
			"feedback_stars",
			"feedback_text",
			"feedback_updated_at",
		}),
	}).Create(&fb).Error; err != nil {
		return nil, err
	}

	var saved model.FeedbackModel
	if err := db.
		Where("feedback_student_id = ? AND feedback_answer_id = ? AND feedback_type = ?",
			in.StudentID, in.AnswerID, in.Type).
		First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// AttachStudentReply balasan siswa atas feedback. Hanya pemilik feedback
// (siswa yang dinilai) yang boleh membalas.
func AttachStudentReply(db *gorm.DB, studentID, feedbackID uuid.UUID, reply string) (*model.FeedbackModel, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil, ErrEmptyReply
	}

	var fb model.FeedbackModel
	err := db.
		Where("feedback_id = ? AND feedback_student_id = ?", feedbackID, studentID).
		First(&fb).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFeedbackNotFound
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	fb.FeedbackStudentReply = &reply
	fb.FeedbackStudentRepliedAt = &now
	if err := db.Model(&model.FeedbackModel{}).
		Where("feedback_id = ?", feedbackID).
		Updates(map[string]any{
			"feedback_student_reply":      reply,
			"feedback_student_replied_at": now,
		}).Error; err != nil {
		return nil, err
	}
	return &fb, nil
}

// GetFeedbackFor semua feedback atas satu jawaban.
func GetFeedbackFor(db *gorm.DB, answerID uuid.UUID) ([]model.FeedbackModel, error) {
	var rows []model.FeedbackModel
	err := db.
		Where("feedback_answer_id = ?", answerID).
		Order("feedback_created_at ASC").
		Find(&rows).Error
	return rows, err
}

// GetFeedbackForOwnedAnswer feedback atas satu jawaban, dibatasi pemiliknya.
// Dipakai siswa untuk menampilkan komentar guru inline di samping jawabannya;
// jawaban siswa lain diperlakukan seolah tidak ada.
func GetFeedbackForOwnedAnswer(db *gorm.DB, studentID, answerID uuid.UUID) ([]model.FeedbackModel, error) {
	var count int64
	if err := db.Model(&answermodel.ModuleAnswerModel{}).
		Where("module_answer_id = ? AND module_answer_user_id = ?", answerID, studentID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrAnswerNotFound
	}
	return GetFeedbackFor(db, answerID)
}

// ListForStudent semua feedback milik satu siswa, terbaru dulu.
func ListForStudent(db *gorm.DB, studentID uuid.UUID) ([]model.FeedbackModel, error) {
	var rows []model.FeedbackModel
	err := db.
		Where("feedback_student_id = ?", studentID).
		Order("feedback_updated_at DESC").
		Find(&rows).Error
	return rows, err
}

// DeleteForAnswers hapus feedback yang menunjuk jawaban-jawaban tertentu.
// Dipanggil dalam transaksi reset guru supaya tidak ada feedback yatim.
func DeleteForAnswers(tx *gorm.DB, answerIDs []uuid.UUID) error {
	if len(answerIDs) == 0 {
		return nil
	}
	return tx.
		Where("feedback_answer_id IN ?", answerIDs).
		Delete(&model.FeedbackModel{}).Error
}
