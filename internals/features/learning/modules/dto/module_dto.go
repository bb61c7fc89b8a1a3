package dto

import (
	"time"

	"gorm.io/datatypes"

	"belajarku_backend/internals/features/learning/modules/model"
)

//
// ============================
// Response DTO
// ============================
//

type LearningModuleDTO struct {
	LearningModuleID          string            `json:"learning_module_id"`
	LearningModuleSlug        string            `json:"learning_module_slug"`
	LearningModuleTitle       string            `json:"learning_module_title"`
	LearningModuleDescription *string           `json:"learning_module_description,omitempty"`
	LearningModuleTrack       string            `json:"learning_module_track"`
	LearningModuleOrder       int               `json:"learning_module_order"`
	LearningModuleGlossary    datatypes.JSONMap `json:"learning_module_glossary,omitempty"`
	LearningModuleCreatedAt   time.Time         `json:"learning_module_created_at"`
}

// QuizQuestionStudentDTO versi soal quiz tanpa kunci jawaban.
type QuizQuestionStudentDTO struct {
	ModuleQuizQuestionID    string   `json:"module_quiz_question_id"`
	ModuleQuizQuestionIndex int      `json:"module_quiz_question_index"`
	ModuleQuizQuestionText  string   `json:"module_quiz_question_text"`
	Options                 []string `json:"options"`
}

type ModuleDetailDTO struct {
	Module         LearningModuleDTO                `json:"module"`
	Sections       []model.ModuleSectionModel       `json:"sections"`
	TriggerPrompts []model.ModulePromptModel        `json:"trigger_prompts"`
	Reflections    []model.ModulePromptModel        `json:"reflection_prompts"`
	Videos         []model.ModuleVideoModel         `json:"videos"`
	WorksheetItems []model.ModuleWorksheetItemModel `json:"worksheet_items"`
	QuizQuestions  []QuizQuestionStudentDTO         `json:"quiz_questions"`
}

//
// ============================
// Create/Update Request DTO (admin/teacher)
// ============================
//

type CreateLearningModuleRequest struct {
	LearningModuleSlug        string            `json:"learning_module_slug" validate:"required,max=100"`
	LearningModuleTitle       string            `json:"learning_module_title" validate:"required,max=150"`
	LearningModuleDescription *string           `json:"learning_module_description"`
	LearningModuleTrack       string            `json:"learning_module_track" validate:"required,oneof=ekonomi geografi"`
	LearningModuleOrder       int               `json:"learning_module_order" validate:"gte=0"`
	LearningModuleGlossary    datatypes.JSONMap `json:"learning_module_glossary"`
}

type UpdateLearningModuleRequest struct {
	LearningModuleTitle       *string            `json:"learning_module_title" validate:"omitempty,max=150"`
	LearningModuleDescription *string            `json:"learning_module_description"`
	LearningModuleOrder       *int               `json:"learning_module_order" validate:"omitempty,gte=0"`
	LearningModuleGlossary    *datatypes.JSONMap `json:"learning_module_glossary"`
}

//
// ============================
// Converter Functions
// ============================
//

func ToLearningModuleDTO(m model.LearningModuleModel) LearningModuleDTO {
	return LearningModuleDTO{
		LearningModuleID:          m.LearningModuleID.String(),
		LearningModuleSlug:        m.LearningModuleSlug,
		LearningModuleTitle:       m.LearningModuleTitle,
		LearningModuleDescription: m.LearningModuleDescription,
		LearningModuleTrack:       m.LearningModuleTrack,
		LearningModuleOrder:       m.LearningModuleOrder,
		LearningModuleGlossary:    m.LearningModuleGlossary,
		LearningModuleCreatedAt:   m.LearningModuleCreatedAt,
	}
}

func ToQuizQuestionStudentDTO(q model.ModuleQuizQuestionModel) QuizQuestionStudentDTO {
	return QuizQuestionStudentDTO{
		ModuleQuizQuestionID:    q.ModuleQuizQuestionID.String(),
		ModuleQuizQuestionIndex: q.ModuleQuizQuestionIndex,
		ModuleQuizQuestionText:  q.ModuleQuizQuestionText,
		Options:                 q.ModuleQuizQuestionOptions,
	}
}

func (r CreateLearningModuleRequest) ToModel() model.LearningModuleModel {
	return model.LearningModuleModel{
		LearningModuleSlug:        r.LearningModuleSlug,
		LearningModuleTitle:       r.LearningModuleTitle,
		LearningModuleDescription: r.LearningModuleDescription,
		LearningModuleTrack:       r.LearningModuleTrack,
		LearningModuleOrder:       r.LearningModuleOrder,
		LearningModuleGlossary:    r.LearningModuleGlossary,
	}
}
