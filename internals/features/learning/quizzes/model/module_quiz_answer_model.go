// file: internals/features/learning/quizzes/model/module_quiz_answer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModuleQuizAnswerModel pilihan siswa per soal quiz. is_correct dihitung
// di server saat submit; klien tidak pernah mengirim field ini.
type ModuleQuizAnswerModel struct {
	ModuleQuizAnswerID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:module_quiz_answer_id" json:"module_quiz_answer_id"`
	ModuleQuizAnswerUserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_module_quiz_answers_key,priority:1;column:module_quiz_answer_user_id" json:"module_quiz_answer_user_id"`
	ModuleQuizAnswerModuleID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_module_quiz_answers_key,priority:2;column:module_quiz_answer_module_id" json:"module_quiz_answer_module_id"`
	ModuleQuizAnswerQuestionIndex int       `gorm:"not null;uniqueIndex:uq_module_quiz_answers_key,priority:3;column:module_quiz_answer_question_index" json:"module_quiz_answer_question_index"`

	ModuleQuizAnswerSelectedIndex int  `gorm:"not null;column:module_quiz_answer_selected_index" json:"module_quiz_answer_selected_index"`
	ModuleQuizAnswerIsCorrect     bool `gorm:"not null;column:module_quiz_answer_is_correct" json:"module_quiz_answer_is_correct"`

	ModuleQuizAnswerCreatedAt time.Time `gorm:"autoCreateTime;column:module_quiz_answer_created_at" json:"module_quiz_answer_created_at"`
	ModuleQuizAnswerUpdatedAt time.Time `gorm:"autoUpdateTime;column:module_quiz_answer_updated_at" json:"module_quiz_answer_updated_at"`
}

func (ModuleQuizAnswerModel) TableName() string { return "module_quiz_answers" }

func (m *ModuleQuizAnswerModel) BeforeCreate(tx *gorm.DB) error {
	if m.ModuleQuizAnswerID == uuid.Nil {
		m.ModuleQuizAnswerID = uuid.New()
	}
	return nil
}
