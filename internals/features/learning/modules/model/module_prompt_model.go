package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kategori prompt terbuka dalam modul. Pertanyaan pemantik dijawab sebelum
// materi, refleksi setelahnya; keduanya share satu tabel dengan tag kategori.
type PromptCategory string

const (
	PromptCategoryTrigger    PromptCategory = "trigger"
	PromptCategoryReflection PromptCategory = "reflection"
)

type ModulePromptModel struct {
	ModulePromptID       uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:module_prompt_id" json:"module_prompt_id"`
	ModulePromptModuleID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_module_prompts_key,priority:1;column:module_prompt_module_id" json:"module_prompt_module_id"`
	ModulePromptCategory PromptCategory `gorm:"type:varchar(20);not null;uniqueIndex:uq_module_prompts_key,priority:2;column:module_prompt_category" json:"module_prompt_category"`
	ModulePromptIndex    int            `gorm:"not null;uniqueIndex:uq_module_prompts_key,priority:3;column:module_prompt_index" json:"module_prompt_index"`
	ModulePromptText     string         `gorm:"type:text;not null;column:module_prompt_text" json:"module_prompt_text"`

	ModulePromptCreatedAt time.Time `gorm:"autoCreateTime;column:module_prompt_created_at" json:"module_prompt_created_at"`
	ModulePromptUpdatedAt time.Time `gorm:"autoUpdateTime;column:module_prompt_updated_at" json:"module_prompt_updated_at"`
}

func (ModulePromptModel) TableName() string { return "module_prompts" }

func (m *ModulePromptModel) BeforeCreate(tx *gorm.DB) error {
	if m.ModulePromptID == uuid.Nil {
		m.ModulePromptID = uuid.New()
	}
	return nil
}
