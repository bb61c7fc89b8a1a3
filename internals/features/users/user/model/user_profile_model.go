package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfileModel menyimpan data profil yang diisi otomatis saat registrasi.
// class_label dipakai resolver jalur mapel (lihat internals/constants/tracks.go).
type UserProfileModel struct {
	// PK
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	// FK & Unique
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_profiles_user_id" json:"user_id"`

	// Columns
	FullName   string  `gorm:"size:100;column:full_name" json:"full_name"`
	ClassLabel string  `gorm:"size:30;column:class_label;index:idx_user_profiles_class_label" json:"class_label"`
	NIS        *string `gorm:"size:30;column:nis" json:"nis,omitempty"`

	// Timestamps
	CreatedAt time.Time      `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt *time.Time     `gorm:"column:updated_at" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index;column:deleted_at" json:"deleted_at,omitempty"`
}

func (UserProfileModel) TableName() string { return "user_profiles" }

func (p *UserProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
