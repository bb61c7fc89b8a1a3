// file: internals/features/learning/progress/model/user_progress_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserProgressModel satu baris per user: seluruh state progres belajar
// disimpan sebagai blob JSONB. Baris dibuat lazily saat write pertama.
type UserProgressModel struct {
	UserProgressID     uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_progress_id" json:"user_progress_id"`
	UserProgressUserID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_user_progress_user_id;column:user_progress_user_id" json:"user_progress_user_id"`
	UserProgressData   datatypes.JSON `gorm:"type:jsonb;not null;default:'{}';column:user_progress_data" json:"user_progress_data"`

	UserProgressCreatedAt time.Time `gorm:"autoCreateTime;column:user_progress_created_at" json:"user_progress_created_at"`
	UserProgressUpdatedAt time.Time `gorm:"autoUpdateTime;column:user_progress_updated_at" json:"user_progress_updated_at"`
}

func (UserProgressModel) TableName() string { return "user_progress" }

func (m *UserProgressModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserProgressID == uuid.Nil {
		m.UserProgressID = uuid.New()
	}
	return nil
}

// ModuleProgress progres satu modul di dalam blob. Field quiz_score nil
// berarti quiz belum pernah disubmit (beda dengan skor 0).
type ModuleProgress struct {
	SectionsCompleted []string   `json:"sections_completed"`
	VideosWatched     []int      `json:"videos_watched"`
	QuizScore         *int       `json:"quiz_score,omitempty"`
	Completed         bool       `json:"completed"`
	LastVisited       *time.Time `json:"last_visited,omitempty"`
}

// ProgressBlob isi kolom JSONB: progres per modul (key = module ID string)
// plus preferensi tampilan.
type ProgressBlob struct {
	Modules  map[string]*ModuleProgress `json:"modules"`
	DarkMode bool                       `json:"dark_mode"`
}

func NewProgressBlob() *ProgressBlob {
	return &ProgressBlob{Modules: map[string]*ModuleProgress{}}
}

// Module ambil (atau buat) entri progres modul di dalam blob.
func (b *ProgressBlob) Module(moduleID uuid.UUID) *ModuleProgress {
	if b.Modules == nil {
		b.Modules = map[string]*ModuleProgress{}
	}
	key := moduleID.String()
	if b.Modules[key] == nil {
		b.Modules[key] = &ModuleProgress{
			SectionsCompleted: []string{},
			VideosWatched:     []int{},
		}
	}
	return b.Modules[key]
}
