// file: internals/features/learning/quizzes/dto/quiz_dto.go
package dto

import "belajarku_backend/internals/features/learning/quizzes/model"

// SubmitQuizRequest key map = index soal, value = index opsi yang dipilih.
type SubmitQuizRequest struct {
	Selections map[int]int `json:"selections" validate:"required,min=1"`
}

type QuizAnswerDTO struct {
	QuestionIndex int  `json:"question_index"`
	SelectedIndex int  `json:"selected_index"`
	IsCorrect     bool `json:"is_correct"`
}

func ToQuizAnswerDTOs(rows []model.ModuleQuizAnswerModel) []QuizAnswerDTO {
	out := make([]QuizAnswerDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, QuizAnswerDTO{
			QuestionIndex: row.ModuleQuizAnswerQuestionIndex,
			SelectedIndex: row.ModuleQuizAnswerSelectedIndex,
			IsCorrect:     row.ModuleQuizAnswerIsCorrect,
		})
	}
	return out
}
