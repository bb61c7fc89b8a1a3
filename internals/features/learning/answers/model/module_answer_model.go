// file: internals/features/learning/answers/model/module_answer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerCategory membedakan empat konteks jawaban teks siswa. Keempatnya
// share satu tabel karena bentuk CRUD-nya identik; yang beda cuma kunci item
// dan aturan turunannya (quiz punya tabel sendiri karena bawa correctness).
type AnswerCategory string

const (
	CategoryTrigger    AnswerCategory = "trigger"
	CategoryReflection AnswerCategory = "reflection"
	CategoryLKPD       AnswerCategory = "lkpd"
	CategoryVideo      AnswerCategory = "video"
)

func (c AnswerCategory) Valid() bool {
	switch c {
	case CategoryTrigger, CategoryReflection, CategoryLKPD, CategoryVideo:
		return true
	}
	return false
}

// ModuleAnswerModel jawaban teks siswa per (user, modul, kategori, item).
// Unique index komposit menjamin write ulang ke kunci yang sama jadi upsert,
// bukan baris duplikat.
type ModuleAnswerModel struct {
	ModuleAnswerID       uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:module_answer_id" json:"module_answer_id"`
	ModuleAnswerUserID   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_module_answers_key,priority:1;column:module_answer_user_id" json:"module_answer_user_id"`
	ModuleAnswerModuleID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_module_answers_key,priority:2;column:module_answer_module_id" json:"module_answer_module_id"`
	ModuleAnswerCategory AnswerCategory `gorm:"type:varchar(20);not null;uniqueIndex:uq_module_answers_key,priority:3;column:module_answer_category" json:"module_answer_category"`
	ModuleAnswerItemID   int            `gorm:"not null;uniqueIndex:uq_module_answers_key,priority:4;column:module_answer_item_id" json:"module_answer_item_id"`

	ModuleAnswerText string `gorm:"type:text;not null;column:module_answer_text" json:"module_answer_text"`

	ModuleAnswerCreatedAt time.Time `gorm:"autoCreateTime;column:module_answer_created_at" json:"module_answer_created_at"`
	ModuleAnswerUpdatedAt time.Time `gorm:"autoUpdateTime;column:module_answer_updated_at" json:"module_answer_updated_at"`
}

func (ModuleAnswerModel) TableName() string { return "module_answers" }

func (m *ModuleAnswerModel) BeforeCreate(tx *gorm.DB) error {
	if m.ModuleAnswerID == uuid.Nil {
		m.ModuleAnswerID = uuid.New()
	}
	return nil
}
