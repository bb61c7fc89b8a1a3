// file: internals/features/feedback/service/feedback_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"belajarku_backend/internals/features/feedback/model"
	answermodel "belajarku_backend/internals/features/learning/answers/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	ddl := []string{
		`CREATE TABLE module_answers (
			module_answer_id TEXT PRIMARY KEY,
			module_answer_user_id TEXT NOT NULL,
			module_answer_module_id TEXT NOT NULL,
			module_answer_category TEXT NOT NULL,
			module_answer_item_id INTEGER NOT NULL,
			module_answer_text TEXT NOT NULL,
			module_answer_created_at DATETIME,
			module_answer_updated_at DATETIME,
			UNIQUE (module_answer_user_id, module_answer_module_id, module_answer_category, module_answer_item_id)
		)`,
		`CREATE TABLE feedbacks (
			feedback_id TEXT PRIMARY KEY,
			feedback_student_id TEXT NOT NULL,
			feedback_answer_id TEXT NOT NULL,
			feedback_type TEXT NOT NULL,
			feedback_teacher_id TEXT NOT NULL,
			feedback_stars INTEGER,
			feedback_text TEXT NOT NULL DEFAULT '',
			feedback_student_reply TEXT,
			feedback_student_replied_at DATETIME,
			feedback_created_at DATETIME,
			feedback_updated_at DATETIME,
			UNIQUE (feedback_student_id, feedback_answer_id, feedback_type)
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedAnswer(t *testing.T, db *gorm.DB, studentID uuid.UUID) answermodel.ModuleAnswerModel {
	t.Helper()
	answer := answermodel.ModuleAnswerModel{
		ModuleAnswerUserID:   studentID,
		ModuleAnswerModuleID: uuid.New(),
		ModuleAnswerCategory: answermodel.CategoryLKPD,
		ModuleAnswerItemID:   0,
		ModuleAnswerText:     "jawaban siswa",
	}
	require.NoError(t, db.Create(&answer).Error)
	return answer
}

func intPtr(v int) *int { return &v }

func TestSubmitFeedbackRatingMemakaiFrasaBawaan(t *testing.T) {
	db := setupDB(t)
	studentID := uuid.New()
	answer := seedAnswer(t, db, studentID)

	fb, err := SubmitFeedback(db, SubmitFeedbackInput{
		TeacherID: uuid.New(),
		StudentID: studentID,
		AnswerID:  answer.ModuleAnswerID,
		Type:      model.FeedbackTypeRating,
		Stars:     intPtr(5),
	})
	require.NoError(t, err)
	require.NotNil(t, fb.FeedbackStars)
	assert.Equal(t, 5, *fb.FeedbackStars)
	assert.Equal(t, StarRatingPhrase(5), fb.FeedbackText)
}

func TestSubmitFeedbackRatingDiLuarRange(t *testing.T) {
	db := setupDB(t)
	studentID := uuid.New()
	answer := seedAnswer(t, db, studentID)

	for _, stars := range []int{0, 6, -1} {
		_, err := SubmitFeedback(db, SubmitFeedbackInput{
			TeacherID: uuid.New(),
			StudentID: studentID,
			AnswerID:  answer.ModuleAnswerID,
			Type:      model.FeedbackTypeRating,
			Stars:     intPtr(stars),
		})
		assert.ErrorIs(t, err, ErrInvalidStars, "stars=%d", stars)
	}
}

func TestSubmitFeedbackDobelTidakMenduplikasi(t *testing.T) {
	db := setupDB(t)
	studentID := uuid.New()
	answer := seedAnswer(t, db, studentID)
	teacherID := uuid.New()

	first, err := SubmitFeedback(db, SubmitFeedbackInput{
		TeacherID: teacherID,
		StudentID: studentID,
		AnswerID:  answer.ModuleAnswerID,
		Type:      model.FeedbackTypeComment,
		Text:      "perbaiki bagian kesimpulan",
	})
	require.NoError(t, err)

	// Klik ganda / penilaian ulang pada kunci yang sama.
	second, err := SubmitFeedback(db, SubmitFeedbackInput{
		TeacherID: teacherID,
		StudentID: studentID,
		AnswerID:  answer.ModuleAnswerID,
		Type:      model.FeedbackTypeComment,
		Text:      "sudah lebih baik",
	})
	require.NoError(t, err)

	assert.Equal(t, first.FeedbackID, second.FeedbackID)
	assert.Equal(t, "sudah lebih baik", second.FeedbackText)

	var count int64
	db.Model(&model.FeedbackModel{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSubmitFeedbackJawabanTidakAda(t *testing.T) {
	db := setupDB(t)

	_, err := SubmitFeedback(db, SubmitFeedbackInput{
		TeacherID: uuid.New(),
		StudentID: uuid.New(),
		AnswerID:  uuid.New(),
		Type:      model.FeedbackTypeComment,
		Text:      "komentar",
	})
	assert.ErrorIs(t, err, ErrAnswerNotFound)
}

func TestAttachStudentReplyHanyaPemilik(t *testing.T) {
	db := setupDB(t)
	studentID := uuid.New()
	answer := seedAnswer(t, db, studentID)

	fb, err := SubmitFeedback(db, SubmitFeedbackInput{
		TeacherID: uuid.New(),
		StudentID: studentID,
		AnswerID:  answer.ModuleAnswerID,
		Type:      model.FeedbackTypeComment,
		Text:      "komentar guru",
	})
	require.NoError(t, err)

	// Siswa lain tidak boleh membalas feedback orang.
	_, err = AttachStudentReply(db, uuid.New(), fb.FeedbackID, "terima kasih")
	assert.ErrorIs(t, err, ErrFeedbackNotFound)

	_, err = AttachStudentReply(db, studentID, fb.FeedbackID, "   ")
	assert.ErrorIs(t, err, ErrEmptyReply)

	replied, err := AttachStudentReply(db, studentID, fb.FeedbackID, "terima kasih, Bu")
	require.NoError(t, err)
	require.NotNil(t, replied.FeedbackStudentReply)
	assert.Equal(t, "terima kasih, Bu", *replied.FeedbackStudentReply)
}

func TestGetFeedbackForOwnedAnswerHanyaPemilik(t *testing.T) {
	db := setupDB(t)
	studentID := uuid.New()
	answer := seedAnswer(t, db, studentID)

	_, err := SubmitFeedback(db, SubmitFeedbackInput{
		TeacherID: uuid.New(),
		StudentID: studentID,
		AnswerID:  answer.ModuleAnswerID,
		Type:      model.FeedbackTypeComment,
		Text:      "komentar guru",
	})
	require.NoError(t, err)

	rows, err := GetFeedbackForOwnedAnswer(db, studentID, answer.ModuleAnswerID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, answer.ModuleAnswerID, rows[0].FeedbackAnswerID)

	// Siswa lain tidak bisa mengintip feedback atas jawaban orang.
	_, err = GetFeedbackForOwnedAnswer(db, uuid.New(), answer.ModuleAnswerID)
	assert.ErrorIs(t, err, ErrAnswerNotFound)

	// Jawaban yang tidak ada juga 404, bukan list kosong.
	_, err = GetFeedbackForOwnedAnswer(db, studentID, uuid.New())
	assert.ErrorIs(t, err, ErrAnswerNotFound)
}

func TestDeleteForAnswers(t *testing.T) {
	db := setupDB(t)
	studentID := uuid.New()
	answerA := seedAnswer(t, db, studentID)

	answerB := answermodel.ModuleAnswerModel{
		ModuleAnswerUserID:   studentID,
		ModuleAnswerModuleID: answerA.ModuleAnswerModuleID,
		ModuleAnswerCategory: answermodel.CategoryTrigger,
		ModuleAnswerItemID:   0,
		ModuleAnswerText:     "jawaban lain",
	}
	require.NoError(t, db.Create(&answerB).Error)

	for _, ans := range []uuid.UUID{answerA.ModuleAnswerID, answerB.ModuleAnswerID} {
		_, err := SubmitFeedback(db, SubmitFeedbackInput{
			TeacherID: uuid.New(),
			StudentID: studentID,
			AnswerID:  ans,
			Type:      model.FeedbackTypeComment,
			Text:      "komentar",
		})
		require.NoError(t, err)
	}

	require.NoError(t, DeleteForAnswers(db, []uuid.UUID{answerA.ModuleAnswerID}))

	rows, err := ListForStudent(db, studentID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, answerB.ModuleAnswerID, rows[0].FeedbackAnswerID)

	// Slice kosong aman, tidak menghapus apa pun.
	require.NoError(t, DeleteForAnswers(db, nil))
	rows, err = ListForStudent(db, studentID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
