// file: internals/features/learning/progress/service/progress_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"belajarku_backend/internals/features/learning/progress/model"
)

// memStore stub Store in-memory untuk test tanpa DB.
type memStore struct {
	blobs map[uuid.UUID]*model.ProgressBlob
	saves int
}

func newMemStore() *memStore {
	return &memStore{blobs: map[uuid.UUID]*model.ProgressBlob{}}
}

func (s *memStore) Load(userID uuid.UUID) (*model.ProgressBlob, error) {
	if blob, ok := s.blobs[userID]; ok {
		return blob, nil
	}
	return model.NewProgressBlob(), nil
}

func (s *memStore) Save(userID uuid.UUID, blob *model.ProgressBlob) error {
	s.blobs[userID] = blob
	s.saves++
	return nil
}

func TestMarkSectionCompleteIdempotent(t *testing.T) {
	store := newMemStore()
	svc := NewProgressService(store)
	userID := uuid.New()
	moduleID := uuid.New()

	mp, err := svc.MarkSectionComplete(userID, moduleID, "pendahuluan")
	require.NoError(t, err)
	assert.Equal(t, []string{"pendahuluan"}, mp.SectionsCompleted)

	// Ulangi section yang sama: tidak ada entri ganda.
	mp, err = svc.MarkSectionComplete(userID, moduleID, "pendahuluan")
	require.NoError(t, err)
	assert.Equal(t, []string{"pendahuluan"}, mp.SectionsCompleted)

	mp, err = svc.MarkSectionComplete(userID, moduleID, "materi-inti")
	require.NoError(t, err)
	assert.Len(t, mp.SectionsCompleted, 2)
}

func TestMarkUlangHanyaRefreshKunjunganTerakhir(t *testing.T) {
	store := newMemStore()
	svc := NewProgressService(store)
	userID := uuid.New()
	moduleID := uuid.New()

	mp, err := svc.MarkSectionComplete(userID, moduleID, "pendahuluan")
	require.NoError(t, err)
	require.NotNil(t, mp.LastVisited)

	// Mundurkan timestamp lalu ulangi aksi yang sama: entri tetap satu,
	// tapi last_visited maju lagi dan blob tetap tersimpan ulang.
	kemarin := time.Now().Add(-24 * time.Hour)
	mp.LastVisited = &kemarin
	savesBefore := store.saves

	mp, err = svc.MarkSectionComplete(userID, moduleID, "pendahuluan")
	require.NoError(t, err)
	assert.Equal(t, []string{"pendahuluan"}, mp.SectionsCompleted)
	require.NotNil(t, mp.LastVisited)
	assert.True(t, mp.LastVisited.After(kemarin))
	assert.Greater(t, store.saves, savesBefore)

	mp, err = svc.MarkVideoWatched(userID, moduleID, 0)
	require.NoError(t, err)
	mp.LastVisited = &kemarin

	mp, err = svc.MarkVideoWatched(userID, moduleID, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, mp.VideosWatched)
	assert.True(t, mp.LastVisited.After(kemarin))
}

func TestMarkVideoWatchedIdempotent(t *testing.T) {
	svc := NewProgressService(newMemStore())
	userID := uuid.New()
	moduleID := uuid.New()

	for i := 0; i < 3; i++ {
		mp, err := svc.MarkVideoWatched(userID, moduleID, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, mp.VideosWatched)
	}
}

func TestSaveQuizScoreOverwrites(t *testing.T) {
	svc := NewProgressService(newMemStore())
	userID := uuid.New()
	moduleID := uuid.New()

	mp, err := svc.SaveQuizScore(userID, moduleID, 60)
	require.NoError(t, err)
	require.NotNil(t, mp.QuizScore)
	assert.Equal(t, 60, *mp.QuizScore)

	// Percobaan kedua menimpa, termasuk skor yang lebih rendah.
	mp, err = svc.SaveQuizScore(userID, moduleID, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, *mp.QuizScore)
}

func TestMarkModuleCompleteMonotonic(t *testing.T) {
	store := newMemStore()
	svc := NewProgressService(store)
	userID := uuid.New()
	moduleID := uuid.New()
	required := []string{"pendahuluan", "materi-inti"}

	// Belum semua section selesai → ditolak.
	_, err := svc.MarkModuleComplete(userID, moduleID, required)
	assert.ErrorIs(t, err, ErrSectionsIncomplete)

	for _, code := range required {
		_, err := svc.MarkSectionComplete(userID, moduleID, code)
		require.NoError(t, err)
	}

	mp, err := svc.MarkModuleComplete(userID, moduleID, required)
	require.NoError(t, err)
	assert.True(t, mp.Completed)

	savesBefore := store.saves
	mp, err = svc.MarkModuleComplete(userID, moduleID, required)
	require.NoError(t, err)
	assert.True(t, mp.Completed)
	assert.Equal(t, savesBefore, store.saves)
}

func TestMarkSectionCompleteMencatatKunjunganTerakhir(t *testing.T) {
	svc := NewProgressService(newMemStore())
	userID := uuid.New()
	moduleID := uuid.New()

	mp, err := svc.MarkSectionComplete(userID, moduleID, "pendahuluan")
	require.NoError(t, err)
	assert.NotNil(t, mp.LastVisited)
}

func TestSetDarkMode(t *testing.T) {
	store := newMemStore()
	svc := NewProgressService(store)
	userID := uuid.New()

	require.NoError(t, svc.SetDarkMode(userID, true))
	blob, err := svc.GetProgress(userID)
	require.NoError(t, err)
	assert.True(t, blob.DarkMode)

	require.NoError(t, svc.SetDarkMode(userID, false))
	blob, err = svc.GetProgress(userID)
	require.NoError(t, err)
	assert.False(t, blob.DarkMode)
}

func TestComputeProgressPercent(t *testing.T) {
	tests := []struct {
		name  string
		done  int
		total int
		want  int
	}{
		{"nol dari nol", 0, 0, 0},
		{"total negatif", 3, -1, 0},
		{"belum mulai", 0, 8, 0},
		{"setengah jalan", 4, 8, 50},
		{"pembulatan ke atas", 2, 3, 67},
		{"pembulatan ke bawah", 1, 3, 33},
		{"selesai", 8, 8, 100},
		{"done melebihi total", 9, 8, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeProgressPercent(tt.done, tt.total))
		})
	}
}

func TestModulePercent(t *testing.T) {
	score := 80
	mp := &model.ModuleProgress{
		SectionsCompleted: []string{"a", "b"},
		VideosWatched:     []int{0},
		QuizScore:         &score,
	}

	// 2 section + 1 video + quiz tersubmit = 4 dari (3+2+1) unit.
	assert.Equal(t, 67, ModulePercent(mp, 3, 2, 5))

	// Tanpa soal quiz, quiz tidak ikut pembagi.
	assert.Equal(t, 60, ModulePercent(mp, 3, 2, 0))

	assert.Equal(t, 0, ModulePercent(nil, 3, 2, 5))
}
