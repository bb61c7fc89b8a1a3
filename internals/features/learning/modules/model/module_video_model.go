package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModuleVideoModel video pembelajaran + tugas menonton (task prompt dijawab
// siswa sebagai answer kategori "video").
type ModuleVideoModel struct {
	ModuleVideoID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:module_video_id" json:"module_video_id"`
	ModuleVideoModuleID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_module_videos_key,priority:1;column:module_video_module_id" json:"module_video_module_id"`
	ModuleVideoIndex      int       `gorm:"not null;uniqueIndex:uq_module_videos_key,priority:2;column:module_video_index" json:"module_video_index"`
	ModuleVideoTitle      string    `gorm:"size:150;not null;column:module_video_title" json:"module_video_title"`
	ModuleVideoURL        string    `gorm:"size:255;not null;column:module_video_url" json:"module_video_url"`
	ModuleVideoTaskPrompt *string   `gorm:"type:text;column:module_video_task_prompt" json:"module_video_task_prompt,omitempty"`

	ModuleVideoCreatedAt time.Time `gorm:"autoCreateTime;column:module_video_created_at" json:"module_video_created_at"`
	ModuleVideoUpdatedAt time.Time `gorm:"autoUpdateTime;column:module_video_updated_at" json:"module_video_updated_at"`
}

func (ModuleVideoModel) TableName() string { return "module_videos" }

func (m *ModuleVideoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ModuleVideoID == uuid.Nil {
		m.ModuleVideoID = uuid.New()
	}
	return nil
}
