package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Setting types. One row per type; updates find-or-create, never append.
const SettingQRCode = "qr_code"

type Setting struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Type     string `gorm:"uniqueIndex;not null" json:"type"`
	ImageURL string `json:"imageUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Setting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
