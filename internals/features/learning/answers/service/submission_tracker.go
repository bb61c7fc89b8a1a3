// file: internals/features/learning/answers/service/submission_tracker.go
package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"belajarku_backend/internals/features/learning/answers/model"
	modulemodel "belajarku_backend/internals/features/learning/modules/model"
)

var (
	// ErrEmptyAnswer ditolak sebelum menyentuh DB.
	ErrEmptyAnswer = errors.New("jawaban tidak boleh kosong")

	// ErrInvalidCategory kategori di luar trigger/reflection/lkpd/video.
	ErrInvalidCategory = errors.New("kategori jawaban tidak dikenal")

	// ErrCategoryLocked kategori sudah tersubmit penuh; edit harus lewat reset guru.
	ErrCategoryLocked = errors.New("jawaban kategori ini sudah terkunci")

	// ErrUnknownItem item_id tidak ada di katalog modul.
	ErrUnknownItem = errors.New("item tidak ditemukan pada modul ini")
)

// SaveAnswerInput parameter simpan jawaban; user ID selalu diambil dari token,
// bukan dari body.
type SaveAnswerInput struct {
	UserID   uuid.UUID
	ModuleID uuid.UUID
	Category model.AnswerCategory
	ItemID   int
	Text     string
}

// SaveAnswer menyimpan atau menimpa jawaban siswa untuk satu item.
// Aturannya:
//  1. teks kosong (setelah trim) ditolak;
//  2. kategori yang sudah tersubmit penuh terkunci — write ditolak;
//  3. write ulang ke kunci yang sama jadi upsert (ON CONFLICT), sehingga
//     double-click submit tidak menghasilkan baris ganda.
func SaveAnswer(db *gorm.DB, in SaveAnswerInput) (*model.ModuleAnswerModel, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrEmptyAnswer
	}
	if !in.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	required, err := RequiredItemIDs(db, in.ModuleID, in.Category)
	if err != nil {
		return nil, err
	}
	found := false
	for _, id := range required {
		if id == in.ItemID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrUnknownItem
	}

	locked, err := IsCategorySubmitted(db, in.UserID, in.ModuleID, in.Category)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, ErrCategoryLocked
	}

	answer := model.ModuleAnswerModel{
		ModuleAnswerUserID:   in.UserID,
		ModuleAnswerModuleID: in.ModuleID,
		ModuleAnswerCategory: in.Category,
		ModuleAnswerItemID:   in.ItemID,
		ModuleAnswerText:     text,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "module_answer_user_id"},
			{Name: "module_answer_module_id"},
			{Name: "module_answer_category"},
			{Name: "module_answer_item_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"module_answer_text",
			"module_answer_updated_at",
		}),
	}).Create(&answer).Error; err != nil {
		return nil, err
	}

	// Hasil upsert bisa berupa baris lama; ambil ulang biar ID & timestamp valid.
	var saved model.ModuleAnswerModel
	if err := db.
		Where("module_answer_user_id = ? AND module_answer_module_id = ? AND module_answer_category = ? AND module_answer_item_id = ?",
			in.UserID, in.ModuleID, in.Category, in.ItemID).
		First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// LoadAnswers mengambil semua jawaban siswa untuk satu kategori, urut item_id.
func LoadAnswers(db *gorm.DB, userID, moduleID uuid.UUID, category model.AnswerCategory) ([]model.ModuleAnswerModel, error) {
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	var answers []model.ModuleAnswerModel
	err := db.
		Where("module_answer_user_id = ? AND module_answer_module_id = ? AND module_answer_category = ?",
			userID, moduleID, category).
		Order("module_answer_item_id ASC").
		Find(&answers).Error
	return answers, err
}

// IsCategorySubmitted: kategori dianggap tersubmit kalau SETIAP item wajib
// punya jawaban. Status ini diturunkan dari data, bukan kolom tersendiri,
// jadi tidak bisa desinkron dengan jawaban aslinya.
func IsCategorySubmitted(db *gorm.DB, userID, moduleID uuid.UUID, category model.AnswerCategory) (bool, error) {
	required, err := RequiredItemIDs(db, moduleID, category)
	if err != nil {
		return false, err
	}
	if len(required) == 0 {
		return false, nil
	}

	var answered []int
	if err := db.Model(&model.ModuleAnswerModel{}).
		Where("module_answer_user_id = ? AND module_answer_module_id = ? AND module_answer_category = ?",
			userID, moduleID, category).
		Pluck("module_answer_item_id", &answered).Error; err != nil {
		return false, err
	}

	have := make(map[int]bool, len(answered))
	for _, id := range answered {
		have[id] = true
	}
	for _, id := range required {
		if !have[id] {
			return false, nil
		}
	}
	return true, nil
}

// RequiredItemIDs item apa saja yang wajib dijawab untuk kategori tertentu,
// diturunkan dari katalog konten modul:
//   - trigger/reflection → module_prompts per kategori;
//   - lkpd → module_worksheet_items;
//   - video → module_videos yang punya task prompt saja.
func RequiredItemIDs(db *gorm.DB, moduleID uuid.UUID, category model.AnswerCategory) ([]int, error) {
	var ids []int
	switch category {
	case model.CategoryTrigger, model.CategoryReflection:
		err := db.Model(&modulemodel.ModulePromptModel{}).
			Where("module_prompt_module_id = ? AND module_prompt_category = ?", moduleID, string(category)).
			Order("module_prompt_index ASC").
			Pluck("module_prompt_index", &ids).Error
		return ids, err
	case model.CategoryLKPD:
		err := db.Model(&modulemodel.ModuleWorksheetItemModel{}).
			Where("module_worksheet_item_module_id = ?", moduleID).
			Order("module_worksheet_item_index ASC").
			Pluck("module_worksheet_item_index", &ids).Error
		return ids, err
	case model.CategoryVideo:
		err := db.Model(&modulemodel.ModuleVideoModel{}).
			Where("module_video_module_id = ? AND module_video_task_prompt IS NOT NULL", moduleID).
			Order("module_video_index ASC").
			Pluck("module_video_index", &ids).Error
		return ids, err
	}
	return nil, ErrInvalidCategory
}

// SubmissionState ringkasan status satu kategori (dipakai recap guru & UI siswa).
type SubmissionState struct {
	Category  model.AnswerCategory `json:"category"`
	Required  int                  `json:"required"`
	Answered  int                  `json:"answered"`
	Submitted bool                 `json:"submitted"`
}

// CategoryStates status keempat kategori sekaligus untuk satu (user, modul).
func CategoryStates(db *gorm.DB, userID, moduleID uuid.UUID) ([]SubmissionState, error) {
	categories := []model.AnswerCategory{
		model.CategoryTrigger,
		model.CategoryVideo,
		model.CategoryLKPD,
		model.CategoryReflection,
	}

	states := make([]SubmissionState, 0, len(categories))
	for _, cat := range categories {
		required, err := RequiredItemIDs(db, moduleID, cat)
		if err != nil {
			return nil, err
		}

		var count int64
		if err := db.Model(&model.ModuleAnswerModel{}).
			Where("module_answer_user_id = ? AND module_answer_module_id = ? AND module_answer_category = ?",
				userID, moduleID, cat).
			Count(&count).Error; err != nil {
			return nil, err
		}

		submitted := len(required) > 0 && int(count) >= len(required)
		if submitted {
			// count bisa saja menghitung item yatim sisa perubahan katalog;
			// pastikan tiap item wajib benar-benar terjawab.
			submitted, err = IsCategorySubmitted(db, userID, moduleID, cat)
			if err != nil {
				return nil, err
			}
		}

		states = append(states, SubmissionState{
			Category:  cat,
			Required:  len(required),
			Answered:  int(count),
			Submitted: submitted,
		})
	}
	return states, nil
}
