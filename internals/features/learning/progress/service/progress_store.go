// file: internals/features/learning/progress/service/progress_store.go
package service

import (
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"belajarku_backend/internals/features/learning/progress/model"
)

// Store abstraksi penyimpanan blob progres. Controller & service lain pegang
// interface ini, bukan *gorm.DB langsung, supaya gampang di-stub saat test.
type Store interface {
	Load(userID uuid.UUID) (*model.ProgressBlob, error)
	Save(userID uuid.UUID, blob *model.ProgressBlob) error
}

// GormStore implementasi Store di atas tabel user_progress.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

// Load: user tanpa baris progres dapat blob kosong, bukan error.
func (s *GormStore) Load(userID uuid.UUID) (*model.ProgressBlob, error) {
	var row model.UserProgressModel
	err := s.DB.Where("user_progress_user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.NewProgressBlob(), nil
	}
	if err != nil {
		return nil, err
	}

	blob := model.NewProgressBlob()
	if len(row.UserProgressData) > 0 {
		if err := sonic.Unmarshal(row.UserProgressData, blob); err != nil {
			return nil, err
		}
	}
	if blob.Modules == nil {
		blob.Modules = map[string]*model.ModuleProgress{}
	}
	return blob, nil
}

// Save: upsert satu baris per user lewat ON CONFLICT di user_id.
func (s *GormStore) Save(userID uuid.UUID, blob *model.ProgressBlob) error {
	raw, err := sonic.Marshal(blob)
	if err != nil {
		return err
	}
	row := model.UserProgressModel{
		UserProgressUserID: userID,
		UserProgressData:   datatypes.JSON(raw),
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_progress_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"user_progress_data",
			"user_progress_updated_at",
		}),
	}).Create(&row).Error
}
