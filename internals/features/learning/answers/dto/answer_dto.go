// file: internals/features/learning/answers/dto/answer_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"belajarku_backend/internals/features/learning/answers/model"
)

type SaveAnswerRequest struct {
	ModuleAnswerItemID int    `json:"module_answer_item_id" validate:"min=0"`
	ModuleAnswerText   string `json:"module_answer_text" validate:"required"`
}

type ModuleAnswerDTO struct {
	ModuleAnswerID        uuid.UUID            `json:"module_answer_id"`
	ModuleAnswerModuleID  uuid.UUID            `json:"module_answer_module_id"`
	ModuleAnswerCategory  model.AnswerCategory `json:"module_answer_category"`
	ModuleAnswerItemID    int                  `json:"module_answer_item_id"`
	ModuleAnswerText      string               `json:"module_answer_text"`
	ModuleAnswerUpdatedAt time.Time            `json:"module_answer_updated_at"`
}

func ToModuleAnswerDTO(m model.ModuleAnswerModel) ModuleAnswerDTO {
	return ModuleAnswerDTO{
		ModuleAnswerID:        m.ModuleAnswerID,
		ModuleAnswerModuleID:  m.ModuleAnswerModuleID,
		ModuleAnswerCategory:  m.ModuleAnswerCategory,
		ModuleAnswerItemID:    m.ModuleAnswerItemID,
		ModuleAnswerText:      m.ModuleAnswerText,
		ModuleAnswerUpdatedAt: m.ModuleAnswerUpdatedAt,
	}
}

func ToModuleAnswerDTOs(rows []model.ModuleAnswerModel) []ModuleAnswerDTO {
	out := make([]ModuleAnswerDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToModuleAnswerDTO(row))
	}
	return out
}
