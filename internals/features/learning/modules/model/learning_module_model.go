// file: internals/features/learning/modules/model/learning_module_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LearningModuleModel satu unit pembelajaran utuh (mis. "Permintaan",
// "Penawaran") dengan tahapan berurutan: info → pertanyaan pemantik → materi →
// video → LKPD → quiz → glosarium → refleksi → rangkuman.
type LearningModuleModel struct {
	LearningModuleID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:learning_module_id" json:"learning_module_id"`
	LearningModuleSlug        string    `gorm:"size:100;not null;uniqueIndex:uq_learning_modules_slug;column:learning_module_slug" json:"learning_module_slug"`
	LearningModuleTitle       string    `gorm:"size:150;not null;column:learning_module_title" json:"learning_module_title"`
	LearningModuleDescription *string   `gorm:"type:text;column:learning_module_description" json:"learning_module_description,omitempty"`

	// Jalur mapel pemilik modul (lihat internals/constants/tracks.go)
	LearningModuleTrack string `gorm:"size:30;not null;index:idx_learning_modules_track;column:learning_module_track" json:"learning_module_track"`

	// Urutan tampil di daftar modul
	LearningModuleOrder int `gorm:"not null;default:0;column:learning_module_order" json:"learning_module_order"`

	// Glosarium istilah → definisi dalam JSONB
	LearningModuleGlossary datatypes.JSONMap `gorm:"type:jsonb;column:learning_module_glossary" json:"learning_module_glossary,omitempty"`

	LearningModuleCreatedAt time.Time      `gorm:"autoCreateTime;column:learning_module_created_at" json:"learning_module_created_at"`
	LearningModuleUpdatedAt time.Time      `gorm:"autoUpdateTime;column:learning_module_updated_at" json:"learning_module_updated_at"`
	LearningModuleDeletedAt gorm.DeletedAt `gorm:"column:learning_module_deleted_at;index" json:"learning_module_deleted_at,omitempty"`
}

func (LearningModuleModel) TableName() string { return "learning_modules" }

func (m *LearningModuleModel) BeforeCreate(tx *gorm.DB) error {
	if m.LearningModuleID == uuid.Nil {
		m.LearningModuleID = uuid.New()
	}
	return nil
}
