// file: internals/features/learning/answers/service/submission_tracker_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"belajarku_backend/internals/features/learning/answers/model"
	modulemodel "belajarku_backend/internals/features/learning/modules/model"
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
		`CREATE TABLE module_prompts (
			module_prompt_id TEXT PRIMARY KEY,
			module_prompt_module_id TEXT NOT NULL,
			module_prompt_category TEXT NOT NULL,
			module_prompt_index INTEGER NOT NULL,
			module_prompt_text TEXT NOT NULL,
			module_prompt_created_at DATETIME,
			module_prompt_updated_at DATETIME,
			UNIQUE (module_prompt_module_id, module_prompt_category, module_prompt_index)
		)`,
		`CREATE TABLE module_worksheet_items (
			module_worksheet_item_id TEXT PRIMARY KEY,
			module_worksheet_item_module_id TEXT NOT NULL,
			module_worksheet_item_index INTEGER NOT NULL,
			module_worksheet_item_prompt TEXT NOT NULL,
			module_worksheet_item_created_at DATETIME,
			module_worksheet_item_updated_at DATETIME,
			UNIQUE (module_worksheet_item_module_id, module_worksheet_item_index)
		)`,
		`CREATE TABLE module_videos (
			module_video_id TEXT PRIMARY KEY,
			module_video_module_id TEXT NOT NULL,
			module_video_index INTEGER NOT NULL,
			module_video_title TEXT NOT NULL,
			module_video_url TEXT NOT NULL,
			module_video_task_prompt TEXT,
			module_video_created_at DATETIME,
			module_video_updated_at DATETIME,
			UNIQUE (module_video_module_id, module_video_index)
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedPrompts(t *testing.T, db *gorm.DB, moduleID uuid.UUID, category string, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		prompt := modulemodel.ModulePromptModel{
			ModulePromptModuleID: moduleID,
			ModulePromptCategory: modulemodel.PromptCategory(category),
			ModulePromptIndex:    i,
			ModulePromptText:     "pertanyaan",
		}
		require.NoError(t, db.Create(&prompt).Error)
	}
}

func TestSaveAnswerRejectsEmptyText(t *testing.T) {
	db := setupDB(t)
	moduleID := uuid.New()
	seedPrompts(t, db, moduleID, "trigger", 2)

	_, err := SaveAnswer(db, SaveAnswerInput{
		UserID:   uuid.New(),
		ModuleID: moduleID,
		Category: model.CategoryTrigger,
		ItemID:   0,
		Text:     "   \n\t ",
	})
	assert.ErrorIs(t, err, ErrEmptyAnswer)

	var count int64
	db.Model(&model.ModuleAnswerModel{}).Count(&count)
	assert.Zero(t, count)
}

func TestSaveAnswerUnknownItem(t *testing.T) {
	db := setupDB(t)
	moduleID := uuid.New()
	seedPrompts(t, db, moduleID, "trigger", 2)

	_, err := SaveAnswer(db, SaveAnswerInput{
		UserID:   uuid.New(),
		ModuleID: moduleID,
		Category: model.CategoryTrigger,
		ItemID:   9,
		Text:     "jawaban",
	})
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestSaveAnswerUpsertTidakMenduplikasi(t *testing.T) {
	db := setupDB(t)
	userID := uuid.New()
	moduleID := uuid.New()
	seedPrompts(t, db, moduleID, "trigger", 2)

	first, err := SaveAnswer(db, SaveAnswerInput{
		UserID: userID, ModuleID: moduleID,
		Category: model.CategoryTrigger, ItemID: 0,
		Text: "jawaban pertama",
	})
	require.NoError(t, err)

	// Tulis ulang ke kunci yang sama (double-click submit).
	second, err := SaveAnswer(db, SaveAnswerInput{
		UserID: userID, ModuleID: moduleID,
		Category: model.CategoryTrigger, ItemID: 0,
		Text: "jawaban revisi",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ModuleAnswerID, second.ModuleAnswerID)
	assert.Equal(t, "jawaban revisi", second.ModuleAnswerText)

	var count int64
	db.Model(&model.ModuleAnswerModel{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestIsCategorySubmittedDiturunkanDariJawaban(t *testing.T) {
	db := setupDB(t)
	userID := uuid.New()
	moduleID := uuid.New()
	seedPrompts(t, db, moduleID, "reflection", 2)

	submitted, err := IsCategorySubmitted(db, userID, moduleID, model.CategoryReflection)
	require.NoError(t, err)
	assert.False(t, submitted)

	_, err = SaveAnswer(db, SaveAnswerInput{
		UserID: userID, ModuleID: moduleID,
		Category: model.CategoryReflection, ItemID: 0, Text: "refleksi satu",
	})
	require.NoError(t, err)

	submitted, err = IsCategorySubmitted(db, userID, moduleID, model.CategoryReflection)
	require.NoError(t, err)
	assert.False(t, submitted, "separuh item belum dijawab")

	_, err = SaveAnswer(db, SaveAnswerInput{
		UserID: userID, ModuleID: moduleID,
		Category: model.CategoryReflection, ItemID: 1, Text: "refleksi dua",
	})
	require.NoError(t, err)

	submitted, err = IsCategorySubmitted(db, userID, moduleID, model.CategoryReflection)
	require.NoError(t, err)
	assert.True(t, submitted)
}

func TestKategoriTerkunciMenolakWrite(t *testing.T) {
	db := setupDB(t)
	userID := uuid.New()
	moduleID := uuid.New()
	seedPrompts(t, db, moduleID, "trigger", 1)

	_, err := SaveAnswer(db, SaveAnswerInput{
		UserID: userID, ModuleID: moduleID,
		Category: model.CategoryTrigger, ItemID: 0, Text: "jawaban final",
	})
	require.NoError(t, err)

	// Semua item terjawab → kategori terkunci.
	_, err = SaveAnswer(db, SaveAnswerInput{
		UserID: userID, ModuleID: moduleID,
		Category: model.CategoryTrigger, ItemID: 0, Text: "coba edit",
	})
	assert.ErrorIs(t, err, ErrCategoryLocked)

	var saved model.ModuleAnswerModel
	require.NoError(t, db.First(&saved).Error)
	assert.Equal(t, "jawaban final", saved.ModuleAnswerText)
}

func TestRequiredItemIDsVideoHanyaYangBerTask(t *testing.T) {
	db := setupDB(t)
	moduleID := uuid.New()
	task := "ceritakan isi video"

	videos := []modulemodel.ModuleVideoModel{
		{ModuleVideoModuleID: moduleID, ModuleVideoIndex: 0, ModuleVideoTitle: "intro", ModuleVideoURL: "https://example.com/a"},
		{ModuleVideoModuleID: moduleID, ModuleVideoIndex: 1, ModuleVideoTitle: "materi", ModuleVideoURL: "https://example.com/b", ModuleVideoTaskPrompt: &task},
	}
	for i := range videos {
		require.NoError(t, db.Create(&videos[i]).Error)
	}

	ids, err := RequiredItemIDs(db, moduleID, model.CategoryVideo)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids)
}

func TestLoadAnswersUrutItemID(t *testing.T) {
	db := setupDB(t)
	userID := uuid.New()
	moduleID := uuid.New()
	seedPrompts(t, db, moduleID, "trigger", 3)

	for _, itemID := range []int{2, 0, 1} {
		_, err := SaveAnswer(db, SaveAnswerInput{
			UserID: userID, ModuleID: moduleID,
			Category: model.CategoryTrigger, ItemID: itemID, Text: "jawaban",
		})
		require.NoError(t, err)
	}

	answers, err := LoadAnswers(db, userID, moduleID, model.CategoryTrigger)
	require.NoError(t, err)
	require.Len(t, answers, 3)
	for i, ans := range answers {
		assert.Equal(t, i, ans.ModuleAnswerItemID)
	}
}

func TestCategoryStates(t *testing.T) {
	db := setupDB(t)
	userID := uuid.New()
	moduleID := uuid.New()
	seedPrompts(t, db, moduleID, "trigger", 2)
	seedPrompts(t, db, moduleID, "reflection", 1)

	_, err := SaveAnswer(db, SaveAnswerInput{
		UserID: userID, ModuleID: moduleID,
		Category: model.CategoryTrigger, ItemID: 0, Text: "jawaban",
	})
	require.NoError(t, err)

	states, err := CategoryStates(db, userID, moduleID)
	require.NoError(t, err)

	byCategory := map[model.AnswerCategory]SubmissionState{}
	for _, st := range states {
		byCategory[st.Category] = st
	}

	assert.Equal(t, 2, byCategory[model.CategoryTrigger].Required)
	assert.Equal(t, 1, byCategory[model.CategoryTrigger].Answered)
	assert.False(t, byCategory[model.CategoryTrigger].Submitted)
	assert.False(t, byCategory[model.CategoryReflection].Submitted)
	assert.Zero(t, byCategory[model.CategoryLKPD].Required)
}
