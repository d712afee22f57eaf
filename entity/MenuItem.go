package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Menu categories double as kitchen partitions: every order inherits the
// category of its menu item and only the matching kitchen may act on it.
const (
	CategorySouthIndian = "south-indian"
	CategoryKolhapuri   = "kolhapuri"
)

func ValidCategory(c string) bool {
	return c == CategorySouthIndian || c == CategoryKolhapuri
}

type MenuItem struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Localized text, keyed by language code (en, hi, mr).
	Name        datatypes.JSONMap `json:"name"`
	Description datatypes.JSONMap `json:"description"`

	Price    float64 `json:"price"`
	Category string  `gorm:"index" json:"category"`

	ImageURL string `json:"imageUrl"`

	// Uploaded images are stored on the row and served from /menu/:id/image.
	Image     []byte `gorm:"type:blob" json:"-"`
	ImageType string `json:"-"`

	IsAvailable bool `json:"isAvailable"`

	// Soft delete. Deleted items stay in the table so historical orders can
	// still resolve their snapshot, but they never appear in any listing.
	IsDeleted bool `gorm:"default:false" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
