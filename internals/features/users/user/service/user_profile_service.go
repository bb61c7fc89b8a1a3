package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	profilemodel "belajarku_backend/internals/features/users/user/model"
)

// EnsureProfileRow memastikan baris profil ada untuk user (idempotent).
func EnsureProfileRow(ctx context.Context, db *gorm.DB, userID uuid.UUID, fullName, classLabel string, nis *string) error {
	p := profilemodel.UserProfileModel{
		UserID:     userID,
		FullName:   strings.TrimSpace(fullName),
		ClassLabel: strings.TrimSpace(classLabel),
		NIS:        nis,
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&p).Error
	if err != nil {
		log.Printf("[EnsureProfileRow] ERROR: %v", err)
	}
	return err
}

// FindProfileByUserID ambil profil satu user.
func FindProfileByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*profilemodel.UserProfileModel, error) {
	var p profilemodel.UserProfileModel
	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile overwrite field profil yang boleh diubah user.
func UpdateProfile(ctx context.Context, db *gorm.DB, userID uuid.UUID, fullName, classLabel string, nis *string) error {
	updates := map[string]any{}
	if strings.TrimSpace(fullName) != "" {
		updates["full_name"] = strings.TrimSpace(fullName)
	}
	if strings.TrimSpace(classLabel) != "" {
		updates["class_label"] = strings.TrimSpace(classLabel)
	}
	if nis != nil {
		updates["nis"] = nis
	}
	if len(updates) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Model(&profilemodel.UserProfileModel{}).
		Where("user_id = ?", userID).
		Updates(updates).Error
}
