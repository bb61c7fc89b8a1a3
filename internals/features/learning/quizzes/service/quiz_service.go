// file: internals/features/learning/quizzes/service/quiz_service.go
package service

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	modulemodel "belajarku_backend/internals/features/learning/modules/model"
	progressservice "belajarku_backend/internals/features/learning/progress/service"
	"belajarku_backend/internals/features/learning/quizzes/model"
)

var (
	// ErrNoQuestions modul belum punya soal quiz.
	ErrNoQuestions = errors.New("modul ini belum punya soal quiz")

	// ErrIncompleteSelections submit wajib menjawab semua soal sekaligus.
	ErrIncompleteSelections = errors.New("semua soal harus dijawab")

	// ErrSelectionOutOfRange index opsi di luar jangkauan soal.
	ErrSelectionOutOfRange = errors.New("pilihan jawaban di luar jangkauan opsi")
)

// GradeSelection benar/salah satu pilihan terhadap kunci soal.
func GradeSelection(correctIndex, selectedIndex int) bool {
	return selectedIndex == correctIndex
}

// ComputeScorePercent skor 0-100 dibulatkan ke integer terdekat.
// Total nol dijaga supaya tidak division-by-zero.
func ComputeScorePercent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	if correct >= total {
		return 100
	}
	if correct < 0 {
		correct = 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// QuizResult hasil penilaian satu submit.
type QuizResult struct {
	ScorePercent int                           `json:"score_percent"`
	CorrectCount int                           `json:"correct_count"`
	TotalCount   int                           `json:"total_count"`
	PerQuestion  map[int]bool                  `json:"per_question"`
	Answers      []model.ModuleQuizAnswerModel `json:"-"`
}

// SubmitQuiz menilai seluruh pilihan siswa terhadap kunci, menyimpan tiap
// pilihan sebagai upsert (submit ulang menimpa percobaan sebelumnya), lalu
// menulis skor terakhir ke blob progres.
func SubmitQuiz(db *gorm.DB, store progressservice.Store, userID, moduleID uuid.UUID, selections map[int]int) (*QuizResult, error) {
	var questions []modulemodel.ModuleQuizQuestionModel
	if err := db.
		Where("module_quiz_question_module_id = ?", moduleID).
		Order("module_quiz_question_index ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &QuizResult{
		TotalCount:  len(questions),
		PerQuestion: make(map[int]bool, len(questions)),
	}
	for _, q := range questions {
		selected, ok := selections[q.ModuleQuizQuestionIndex]
		if !ok {
			return nil, ErrIncompleteSelections
		}
		if selected < 0 || selected >= len(q.ModuleQuizQuestionOptions) {
			return nil, ErrSelectionOutOfRange
		}

		correct := GradeSelection(q.ModuleQuizQuestionCorrectIndex, selected)
		if correct {
			result.CorrectCount++
		}
		result.PerQuestion[q.ModuleQuizQuestionIndex] = correct
		result.Answers = append(result.Answers, model.ModuleQuizAnswerModel{
			ModuleQuizAnswerUserID:        userID,
			ModuleQuizAnswerModuleID:      moduleID,
			ModuleQuizAnswerQuestionIndex: q.ModuleQuizQuestionIndex,
			ModuleQuizAnswerSelectedIndex: selected,
			ModuleQuizAnswerIsCorrect:     correct,
		})
	}
	result.ScorePercent = ComputeScorePercent(result.CorrectCount, result.TotalCount)

	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range result.Answers {
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "module_quiz_answer_user_id"},
					{Name: "module_quiz_answer_module_id"},
					{Name: "module_quiz_answer_question_index"},
				},
				DoUpdates: clause.AssignmentColumns([]string{
					"module_quiz_answer_selected_index",
					"module_quiz_answer_is_correct",
					"module_quiz_answer_updated_at",
				}),
			}).Create(&result.Answers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	progress := progressservice.NewProgressService(store)
	if _, err := progress.SaveQuizScore(userID, moduleID, result.ScorePercent); err != nil {
		return nil, err
	}
	return result, nil
}

// LoadQuizAnswers pilihan tersimpan siswa untuk satu modul, urut index soal.
func LoadQuizAnswers(db *gorm.DB, userID, moduleID uuid.UUID) ([]model.ModuleQuizAnswerModel, error) {
	var answers []model.ModuleQuizAnswerModel
	err := db.
		Where("module_quiz_answer_user_id = ? AND module_quiz_answer_module_id = ?", userID, moduleID).
		Order("module_quiz_answer_question_index ASC").
		Find(&answers).Error
	return answers, err
}
