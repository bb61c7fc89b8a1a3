// file: internals/features/learning/progress/service/progress_service.go
package service

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"belajarku_backend/internals/features/learning/progress/model"
)

// ErrSectionsIncomplete modul belum boleh ditandai selesai selama masih ada
// section yang belum dibaca.
var ErrSectionsIncomplete = errors.New("masih ada materi yang belum diselesaikan")

// ProgressService operasi progres belajar di atas Store. Semua mark-operation
// idempotent: mengulang aksi yang sama tidak menambah entri, hanya me-refresh
// last_visited.
type ProgressService struct {
	Store Store
}

func NewProgressService(store Store) *ProgressService {
	return &ProgressService{Store: store}
}

func (s *ProgressService) GetProgress(userID uuid.UUID) (*model.ProgressBlob, error) {
	return s.Store.Load(userID)
}

// MarkSectionComplete menandai satu section selesai. Mengulang section yang
// sama tidak menambah entri ganda; hanya last_visited yang di-refresh.
func (s *ProgressService) MarkSectionComplete(userID, moduleID uuid.UUID, sectionCode string) (*model.ModuleProgress, error) {
	blob, err := s.Store.Load(userID)
	if err != nil {
		return nil, err
	}
	mp := blob.Module(moduleID)
	seen := false
	for _, code := range mp.SectionsCompleted {
		if code == sectionCode {
			seen = true
			break
		}
	}
	if !seen {
		mp.SectionsCompleted = append(mp.SectionsCompleted, sectionCode)
	}
	now := time.Now()
	mp.LastVisited = &now
	if err := s.Store.Save(userID, blob); err != nil {
		return nil, err
	}
	return mp, nil
}

// MarkVideoWatched idem, untuk video per index.
func (s *ProgressService) MarkVideoWatched(userID, moduleID uuid.UUID, videoIndex int) (*model.ModuleProgress, error) {
	blob, err := s.Store.Load(userID)
	if err != nil {
		return nil, err
	}
	mp := blob.Module(moduleID)
	seen := false
	for _, idx := range mp.VideosWatched {
		if idx == videoIndex {
			seen = true
			break
		}
	}
	if !seen {
		mp.VideosWatched = append(mp.VideosWatched, videoIndex)
	}
	now := time.Now()
	mp.LastVisited = &now
	if err := s.Store.Save(userID, blob); err != nil {
		return nil, err
	}
	return mp, nil
}

// SaveQuizScore menimpa skor lama; percobaan terakhir yang dihitung.
func (s *ProgressService) SaveQuizScore(userID, moduleID uuid.UUID, score int) (*model.ModuleProgress, error) {
	blob, err := s.Store.Load(userID)
	if err != nil {
		return nil, err
	}
	mp := blob.Module(moduleID)
	mp.QuizScore = &score
	if err := s.Store.Save(userID, blob); err != nil {
		return nil, err
	}
	return mp, nil
}

// MarkModuleComplete monotonic: sekali true tidak bisa balik false lewat
// endpoint siswa. Syaratnya semua section modul sudah ditandai selesai.
func (s *ProgressService) MarkModuleComplete(userID, moduleID uuid.UUID, requiredSectionCodes []string) (*model.ModuleProgress, error) {
	blob, err := s.Store.Load(userID)
	if err != nil {
		return nil, err
	}
	mp := blob.Module(moduleID)
	if mp.Completed {
		return mp, nil
	}

	done := make(map[string]bool, len(mp.SectionsCompleted))
	for _, code := range mp.SectionsCompleted {
		done[code] = true
	}
	for _, code := range requiredSectionCodes {
		if !done[code] {
			return nil, ErrSectionsIncomplete
		}
	}

	mp.Completed = true
	now := time.Now()
	mp.LastVisited = &now
	if err := s.Store.Save(userID, blob); err != nil {
		return nil, err
	}
	return mp, nil
}

func (s *ProgressService) SetDarkMode(userID uuid.UUID, enabled bool) error {
	blob, err := s.Store.Load(userID)
	if err != nil {
		return err
	}
	blob.DarkMode = enabled
	return s.Store.Save(userID, blob)
}

// ComputeProgressPercent persentase bulat dari done/total. Total nol berarti
// belum ada yang bisa dihitung → 0, bukan panic pembagian nol.
func ComputeProgressPercent(done, total int) int {
	if total <= 0 {
		return 0
	}
	if done >= total {
		return 100
	}
	if done < 0 {
		done = 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// ModulePercent progres satu modul: tiap section, tiap video, dan quiz
// masing-masing dihitung satu unit.
func ModulePercent(mp *model.ModuleProgress, totalSections, totalVideos, totalQuizQuestions int) int {
	if mp == nil {
		return 0
	}
	total := totalSections + totalVideos
	done := len(mp.SectionsCompleted) + len(mp.VideosWatched)
	if totalQuizQuestions > 0 {
		total++
		if mp.QuizScore != nil {
			done++
		}
	}
	return ComputeProgressPercent(done, total)
}
