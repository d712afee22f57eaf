package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff roles. Customers never log in; they order anonymously by table.
const (
	RoleAdmin            = "admin"
	RoleSouthKitchen     = "south-kitchen"
	RoleKolhapuriKitchen = "kolhapuri-kitchen"
)

// KitchenCategory maps a kitchen role to the menu category it is bound to.
// Returns "" for non-kitchen roles.
func KitchenCategory(role string) string {
	switch role {
	case RoleSouthKitchen:
		return CategorySouthIndian
	case RoleKolhapuriKitchen:
		return CategoryKolhapuri
	}
	return ""
}

type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
