package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModuleWorksheetItemModel satu soal terstruktur LKPD (Lembar Kerja Peserta
// Didik). Jawaban siswa masuk answer kategori "lkpd" dan terkunci setelah
// semua item terjawab.
type ModuleWorksheetItemModel struct {
	ModuleWorksheetItemID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:module_worksheet_item_id" json:"module_worksheet_item_id"`
	ModuleWorksheetItemModuleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_module_worksheet_items_key,priority:1;column:module_worksheet_item_module_id" json:"module_worksheet_item_module_id"`
	ModuleWorksheetItemIndex    int       `gorm:"not null;uniqueIndex:uq_module_worksheet_items_key,priority:2;column:module_worksheet_item_index" json:"module_worksheet_item_index"`
	ModuleWorksheetItemPrompt   string    `gorm:"type:text;not null;column:module_worksheet_item_prompt" json:"module_worksheet_item_prompt"`

	ModuleWorksheetItemCreatedAt time.Time `gorm:"autoCreateTime;column:module_worksheet_item_created_at" json:"module_worksheet_item_created_at"`
	ModuleWorksheetItemUpdatedAt time.Time `gorm:"autoUpdateTime;column:module_worksheet_item_updated_at" json:"module_worksheet_item_updated_at"`
}

func (ModuleWorksheetItemModel) TableName() string { return "module_worksheet_items" }

func (m *ModuleWorksheetItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.ModuleWorksheetItemID == uuid.Nil {
		m.ModuleWorksheetItemID = uuid.New()
	}
	return nil
}
