package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ModuleQuizQuestionModel soal pilihan ganda quiz modul. Payload siswa harus
// lewat QuizQuestionStudentDTO supaya kunci jawaban tidak ikut terkirim.
type ModuleQuizQuestionModel struct {
	ModuleQuizQuestionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:module_quiz_question_id" json:"module_quiz_question_id"`
	ModuleQuizQuestionModuleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_module_quiz_questions_key,priority:1;column:module_quiz_question_module_id" json:"module_quiz_question_module_id"`
	ModuleQuizQuestionIndex    int       `gorm:"not null;uniqueIndex:uq_module_quiz_questions_key,priority:2;column:module_quiz_question_index" json:"module_quiz_question_index"`
	ModuleQuizQuestionText     string    `gorm:"type:text;not null;column:module_quiz_question_text" json:"module_quiz_question_text"`

	ModuleQuizQuestionOptions pq.StringArray `gorm:"type:text[];not null;column:module_quiz_question_options" json:"module_quiz_question_options"`

	ModuleQuizQuestionCorrectIndex int `gorm:"not null;column:module_quiz_question_correct_index" json:"module_quiz_question_correct_index"`

	ModuleQuizQuestionCreatedAt time.Time `gorm:"autoCreateTime;column:module_quiz_question_created_at" json:"module_quiz_question_created_at"`
	ModuleQuizQuestionUpdatedAt time.Time `gorm:"autoUpdateTime;column:module_quiz_question_updated_at" json:"module_quiz_question_updated_at"`
}

func (ModuleQuizQuestionModel) TableName() string { return "module_quiz_questions" }

func (m *ModuleQuizQuestionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ModuleQuizQuestionID == uuid.Nil {
		m.ModuleQuizQuestionID = uuid.New()
	}
	return nil
}
