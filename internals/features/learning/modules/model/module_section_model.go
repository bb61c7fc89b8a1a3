package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModuleSectionModel satu bagian materi dalam modul. section_code adalah id
// string yang dipakai penanda progress (completed_section_ids).
type ModuleSectionModel struct {
	ModuleSectionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:module_section_id" json:"module_section_id"`
	ModuleSectionModuleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_module_sections_key,priority:1;column:module_section_module_id" json:"module_section_module_id"`
	ModuleSectionCode     string    `gorm:"size:50;not null;uniqueIndex:uq_module_sections_key,priority:2;column:module_section_code" json:"module_section_code"`
	ModuleSectionOrder    int       `gorm:"not null;default:0;column:module_section_order" json:"module_section_order"`
	ModuleSectionTitle    string    `gorm:"size:150;not null;column:module_section_title" json:"module_section_title"`
	ModuleSectionBody     string    `gorm:"type:text;not null;column:module_section_body" json:"module_section_body"`

	ModuleSectionCreatedAt time.Time `gorm:"autoCreateTime;column:module_section_created_at" json:"module_section_created_at"`
	ModuleSectionUpdatedAt time.Time `gorm:"autoUpdateTime;column:module_section_updated_at" json:"module_section_updated_at"`
}

func (ModuleSectionModel) TableName() string { return "module_sections" }

func (m *ModuleSectionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ModuleSectionID == uuid.Nil {
		m.ModuleSectionID = uuid.New()
	}
	return nil
}
