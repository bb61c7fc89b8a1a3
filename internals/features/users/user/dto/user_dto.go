package dto

import (
	"time"

	"belajarku_backend/internals/constants"
	"belajarku_backend/internals/features/users/user/model"
)

//
// ============================
// Response DTO
// ============================
//

type MeDTO struct {
	ID         string    `json:"id"`
	UserName   string    `json:"user_name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	FullName   string    `json:"full_name"`
	ClassLabel string    `json:"class_label"`
	Track      string    `json:"track,omitempty"`
	NIS        *string   `json:"nis,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

//
// ============================
// Request DTO
// ============================
//

type UpdateProfileRequest struct {
	FullName   string  `json:"full_name" validate:"omitempty,max=100"`
	ClassLabel string  `json:"class_label" validate:"omitempty,max=30"`
	NIS        *string `json:"nis" validate:"omitempty,max=30"`
}

//
// ============================
// Converter Functions
// ============================
//

func ToMeDTO(u model.UserModel, p *model.UserProfileModel) MeDTO {
	out := MeDTO{
		ID:        u.ID.String(),
		UserName:  u.UserName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
	if p != nil {
		out.FullName = p.FullName
		out.ClassLabel = p.ClassLabel
		out.Track = constants.ResolveSubjectTrack(p.ClassLabel)
		out.NIS = p.NIS
	}
	return out
}
