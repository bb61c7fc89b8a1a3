// file: internals/features/feedback/model/feedback_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackType bentuk umpan balik guru atas satu jawaban.
type FeedbackType string

const (
	// FeedbackTypeRating bintang 1-5 plus frasa bawaan.
	FeedbackTypeRating FeedbackType = "rating"
	// FeedbackTypeComment catatan bebas guru.
	FeedbackTypeComment FeedbackType = "comment"
)

func (t FeedbackType) Valid() bool {
	return t == FeedbackTypeRating || t == FeedbackTypeComment
}

// FeedbackModel umpan balik guru per (siswa, jawaban, tipe). Unique index
// komposit menutup race double-submit: dua guru (atau satu guru klik dua
// kali) pada kunci yang sama berakhir sebagai satu baris lewat upsert.
type FeedbackModel struct {
	FeedbackID        uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:feedback_id" json:"feedback_id"`
	FeedbackStudentID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uq_feedback_key,priority:1;column:feedback_student_id" json:"feedback_student_id"`
	FeedbackAnswerID  uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uq_feedback_key,priority:2;column:feedback_answer_id" json:"feedback_answer_id"`
	FeedbackType      FeedbackType `gorm:"type:varchar(20);not null;uniqueIndex:uq_feedback_key,priority:3;column:feedback_type" json:"feedback_type"`

	FeedbackTeacherID uuid.UUID `gorm:"type:uuid;not null;column:feedback_teacher_id" json:"feedback_teacher_id"`

	FeedbackStars *int   `gorm:"column:feedback_stars" json:"feedback_stars,omitempty"`
	FeedbackText  string `gorm:"type:text;not null;default:'';column:feedback_text" json:"feedback_text"`

	FeedbackStudentReply     *string    `gorm:"type:text;column:feedback_student_reply" json:"feedback_student_reply,omitempty"`
	FeedbackStudentRepliedAt *time.Time `gorm:"column:feedback_student_replied_at" json:"feedback_student_replied_at,omitempty"`

	FeedbackCreatedAt time.Time `gorm:"autoCreateTime;column:feedback_created_at" json:"feedback_created_at"`
	FeedbackUpdatedAt time.Time `gorm:"autoUpdateTime;column:feedback_updated_at" json:"feedback_updated_at"`
}

func (FeedbackModel) TableName() string { return "feedbacks" }

func (m *FeedbackModel) BeforeCreate(tx *gorm.DB) error {
	if m.FeedbackID == uuid.Nil {
		m.FeedbackID = uuid.New()
	}
	return nil
}
