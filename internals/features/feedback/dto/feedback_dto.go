// file: internals/features/feedback/dto/feedback_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"belajarku_backend/internals/features/feedback/model"
)

type SubmitFeedbackRequest struct {
	FeedbackStudentID uuid.UUID          `json:"feedback_student_id" validate:"required"`
	FeedbackAnswerID  uuid.UUID          `json:"feedback_answer_id" validate:"required"`
	FeedbackType      model.FeedbackType `json:"feedback_type" validate:"required,oneof=rating comment"`
	FeedbackStars     *int               `json:"feedback_stars" validate:"omitempty,min=1,max=5"`
	FeedbackText      string             `json:"feedback_text"`
}

type StudentReplyRequest struct {
	Reply string `json:"reply" validate:"required"`
}

type FeedbackDTO struct {
	FeedbackID           uuid.UUID          `json:"feedback_id"`
	FeedbackAnswerID     uuid.UUID          `json:"feedback_answer_id"`
	FeedbackType         model.FeedbackType `json:"feedback_type"`
	FeedbackStars        *int               `json:"feedback_stars,omitempty"`
	FeedbackText         string             `json:"feedback_text"`
	FeedbackStudentReply     *string    `json:"feedback_student_reply,omitempty"`
	FeedbackStudentRepliedAt *time.Time `json:"feedback_student_replied_at,omitempty"`
	FeedbackUpdatedAt        time.Time  `json:"feedback_updated_at"`
}

func ToFeedbackDTO(m model.FeedbackModel) FeedbackDTO {
	return FeedbackDTO{
		FeedbackID:           m.FeedbackID,
		FeedbackAnswerID:     m.FeedbackAnswerID,
		FeedbackType:         m.FeedbackType,
		FeedbackStars:        m.FeedbackStars,
		FeedbackText:         m.FeedbackText,
		FeedbackStudentReply:     m.FeedbackStudentReply,
		FeedbackStudentRepliedAt: m.FeedbackStudentRepliedAt,
		FeedbackUpdatedAt:        m.FeedbackUpdatedAt,
	}
}

func ToFeedbackDTOs(rows []model.FeedbackModel) []FeedbackDTO {
	out := make([]FeedbackDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToFeedbackDTO(row))
	}
	return out
}
