// file: internals/features/learning/quizzes/service/quiz_submit_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	modulemodel "belajarku_backend/internals/features/learning/modules/model"
	progressmodel "belajarku_backend/internals/features/learning/progress/model"
	"belajarku_backend/internals/features/learning/quizzes/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Satu koneksi supaya :memory: tidak terpecah antar pool.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	ddl := []string{
		`CREATE TABLE module_quiz_questions (
			module_quiz_question_id TEXT PRIMARY KEY,
			module_quiz_question_module_id TEXT NOT NULL,
			module_quiz_question_index INTEGER NOT NULL,
			module_quiz_question_text TEXT NOT NULL,
			module_quiz_question_options TEXT NOT NULL,
			module_quiz_question_correct_index INTEGER NOT NULL,
			module_quiz_question_created_at DATETIME,
			module_quiz_question_updated_at DATETIME,
			UNIQUE (module_quiz_question_module_id, module_quiz_question_index)
		)`,
		`CREATE TABLE module_quiz_answers (
			module_quiz_answer_id TEXT PRIMARY KEY,
			module_quiz_answer_user_id TEXT NOT NULL,
			module_quiz_answer_module_id TEXT NOT NULL,
			module_quiz_answer_question_index INTEGER NOT NULL,
			module_quiz_answer_selected_index INTEGER NOT NULL,
			module_quiz_answer_is_correct BOOLEAN NOT NULL,
			module_quiz_answer_created_at DATETIME,
			module_quiz_answer_updated_at DATETIME,
			UNIQUE (module_quiz_answer_user_id, module_quiz_answer_module_id, module_quiz_answer_question_index)
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

// memStore stub Store in-memory, cukup untuk memverifikasi skor masuk blob.
type memStore struct {
	blobs map[uuid.UUID]*progressmodel.ProgressBlob
}

func newMemStore() *memStore {
	return &memStore{blobs: map[uuid.UUID]*progressmodel.ProgressBlob{}}
}

func (s *memStore) Load(userID uuid.UUID) (*progressmodel.ProgressBlob, error) {
	if blob, ok := s.blobs[userID]; ok {
		return blob, nil
	}
	return progressmodel.NewProgressBlob(), nil
}

func (s *memStore) Save(userID uuid.UUID, blob *progressmodel.ProgressBlob) error {
	s.blobs[userID] = blob
	return nil
}

func seedQuestions(t *testing.T, db *gorm.DB, moduleID uuid.UUID, correctIndexes []int) {
	t.Helper()
	for i, correct := range correctIndexes {
		q := modulemodel.ModuleQuizQuestionModel{
			ModuleQuizQuestionModuleID:     moduleID,
			ModuleQuizQuestionIndex:        i,
			ModuleQuizQuestionText:         "soal quiz",
			ModuleQuizQuestionOptions:      pq.StringArray{"opsi A", "opsi B", "opsi C"},
			ModuleQuizQuestionCorrectIndex: correct,
		}
		require.NoError(t, db.Create(&q).Error)
	}
}

func countAnswers(t *testing.T, db *gorm.DB, userID, moduleID uuid.UUID) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.ModuleQuizAnswerModel{}).
		Where("module_quiz_answer_user_id = ? AND module_quiz_answer_module_id = ?", userID, moduleID).
		Count(&count).Error)
	return count
}

func TestSubmitQuizMenyimpanPilihanDanSkorKeBlob(t *testing.T) {
	db := setupDB(t)
	store := newMemStore()
	userID := uuid.New()
	moduleID := uuid.New()
	seedQuestions(t, db, moduleID, []int{0, 1, 2})

	result, err := SubmitQuiz(db, store, userID, moduleID, map[int]int{0: 0, 1: 1, 2: 0})
	require.NoError(t, err)
	assert.Equal(t, 2, result.CorrectCount)
	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, 67, result.ScorePercent)
	assert.True(t, result.PerQuestion[0])
	assert.True(t, result.PerQuestion[1])
	assert.False(t, result.PerQuestion[2])

	// Satu baris per soal, tidak lebih.
	assert.EqualValues(t, 3, countAnswers(t, db, userID, moduleID))

	// Skor ikut tertulis di blob progres.
	blob, err := store.Load(userID)
	require.NoError(t, err)
	mp := blob.Module(moduleID)
	require.NotNil(t, mp.QuizScore)
	assert.Equal(t, 67, *mp.QuizScore)
}

func TestSubmitQuizUlangMenimpaTanpaDuplikasi(t *testing.T) {
	db := setupDB(t)
	store := newMemStore()
	userID := uuid.New()
	moduleID := uuid.New()
	seedQuestions(t, db, moduleID, []int{0, 1, 2})

	_, err := SubmitQuiz(db, store, userID, moduleID, map[int]int{0: 0, 1: 1, 2: 2})
	require.NoError(t, err)

	// Percobaan kedua lebih jelek; tetap yang terakhir yang berlaku.
	result, err := SubmitQuiz(db, store, userID, moduleID, map[int]int{0: 1, 1: 1, 2: 0})
	require.NoError(t, err)
	assert.Equal(t, 33, result.ScorePercent)

	// Upsert per (user, modul, index soal): tetap tiga baris.
	assert.EqualValues(t, 3, countAnswers(t, db, userID, moduleID))

	saved, err := LoadQuizAnswers(db, userID, moduleID)
	require.NoError(t, err)
	require.Len(t, saved, 3)
	assert.Equal(t, 1, saved[0].ModuleQuizAnswerSelectedIndex)
	assert.False(t, saved[0].ModuleQuizAnswerIsCorrect)
	assert.Equal(t, 1, saved[1].ModuleQuizAnswerSelectedIndex)
	assert.True(t, saved[1].ModuleQuizAnswerIsCorrect)
	assert.Equal(t, 0, saved[2].ModuleQuizAnswerSelectedIndex)

	blob, err := store.Load(userID)
	require.NoError(t, err)
	mp := blob.Module(moduleID)
	require.NotNil(t, mp.QuizScore)
	assert.Equal(t, 33, *mp.QuizScore)
}

func TestSubmitQuizSelectionTidakLengkap(t *testing.T) {
	db := setupDB(t)
	store := newMemStore()
	userID := uuid.New()
	moduleID := uuid.New()
	seedQuestions(t, db, moduleID, []int{0, 1})

	_, err := SubmitQuiz(db, store, userID, moduleID, map[int]int{0: 0})
	assert.ErrorIs(t, err, ErrIncompleteSelections)

	// Submit gagal tidak meninggalkan baris setengah jadi.
	assert.EqualValues(t, 0, countAnswers(t, db, userID, moduleID))
}

func TestSubmitQuizPilihanDiLuarJangkauan(t *testing.T) {
	db := setupDB(t)
	store := newMemStore()
	userID := uuid.New()
	moduleID := uuid.New()
	seedQuestions(t, db, moduleID, []int{0})

	// Tiga opsi per soal: index valid hanya 0-2.
	for _, selected := range []int{3, -1} {
		_, err := SubmitQuiz(db, store, userID, moduleID, map[int]int{0: selected})
		assert.ErrorIs(t, err, ErrSelectionOutOfRange, "selected=%d", selected)
	}
	assert.EqualValues(t, 0, countAnswers(t, db, userID, moduleID))
}

func TestSubmitQuizModulTanpaSoal(t *testing.T) {
	db := setupDB(t)

	_, err := SubmitQuiz(db, newMemStore(), uuid.New(), uuid.New(), map[int]int{0: 0})
	assert.ErrorIs(t, err, ErrNoQuestions)
}
