package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order statuses, in forward order. Rejected is the side branch reachable
// from new or accepted; customer cancellation reuses it with a note.
const (
	OrderNew       = "new"
	OrderAccepted  = "accepted"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderDelivered = "delivered"
	OrderRejected  = "rejected"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderNew, OrderAccepted, OrderPreparing, OrderReady, OrderDelivered, OrderRejected:
		return true
	}
	return false
}

type Order struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	MenuItemID string `gorm:"index" json:"menuItemId"`

	// Snapshot of the menu item at creation time. The item may be edited or
	// soft-deleted later; the order keeps rendering from these fields.
	MenuItemName datatypes.JSONMap `json:"menuItemName"`
	Price        float64           `json:"price"`
	Category     string            `gorm:"index" json:"category"`

	Quantity    int     `json:"quantity"`
	TableNumber int     `gorm:"index" json:"tableNumber"`
	TotalAmount float64 `json:"totalAmount"` // Price * Quantity, fixed at creation

	Status string `gorm:"index;default:new" json:"status"`

	CustomerNotes string `json:"customerNotes,omitempty"`
	KitchenNotes  string `json:"kitchenNotes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Each is written at most once, by its status transition.
	AcceptedAt  *time.Time `json:"acceptedAt,omitempty"`
	PreparedAt  *time.Time `json:"preparedAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// Active means the order still sits somewhere in the kitchen pipeline.
func (o *Order) Active() bool {
	switch o.Status {
	case OrderDelivered, OrderRejected:
		return false
	}
	return true
}
