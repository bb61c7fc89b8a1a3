// file: internals/features/learning/progress/service/progress_store_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"belajarku_backend/internals/features/learning/progress/model"
)

func setupStoreDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec(`CREATE TABLE user_progress (
		user_progress_id TEXT PRIMARY KEY,
		user_progress_user_id TEXT NOT NULL UNIQUE,
		user_progress_data TEXT NOT NULL DEFAULT '{}',
		user_progress_created_at DATETIME,
		user_progress_updated_at DATETIME
	)`).Error)
	return db
}

func TestGormStoreLoadUserBaru(t *testing.T) {
	store := NewGormStore(setupStoreDB(t))

	blob, err := store.Load(uuid.New())
	require.NoError(t, err)
	require.NotNil(t, blob)
	assert.Empty(t, blob.Modules)
	assert.False(t, blob.DarkMode)
}

func TestGormStoreSaveSatuBarisPerUser(t *testing.T) {
	db := setupStoreDB(t)
	store := NewGormStore(db)
	userID := uuid.New()
	moduleID := uuid.New()

	blob := model.NewProgressBlob()
	blob.Module(moduleID).SectionsCompleted = []string{"pendahuluan"}
	require.NoError(t, store.Save(userID, blob))

	// Save kedua menimpa baris yang sama, bukan menambah baris baru.
	blob.DarkMode = true
	blob.Module(moduleID).VideosWatched = []int{0, 1}
	require.NoError(t, store.Save(userID, blob))

	var count int64
	db.Model(&model.UserProgressModel{}).Count(&count)
	assert.EqualValues(t, 1, count)

	loaded, err := store.Load(userID)
	require.NoError(t, err)
	assert.True(t, loaded.DarkMode)
	mp := loaded.Module(moduleID)
	assert.Equal(t, []string{"pendahuluan"}, mp.SectionsCompleted)
	assert.Equal(t, []int{0, 1}, mp.VideosWatched)
}
