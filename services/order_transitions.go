// services/order_transitions.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ashitosh2004/hotellucky/entity"
	"gorm.io/gorm"
)

var (
	ErrForbidden          = errors.New("forbidden")
	ErrTransitionConflict = errors.New("invalid_or_conflict")
	ErrCancelNotPermitted = errors.New("order can no longer be cancelled")
)

// Allowed prior statuses per transition target. Each update is a
// compare-and-swap against these, so a replayed or racing call that finds
// the order already moved on matches zero rows and fails with a conflict.
var transitionFrom = map[string][]string{
	entity.OrderAccepted:  {entity.OrderNew},
	entity.OrderPreparing: {entity.OrderAccepted},
	entity.OrderReady:     {entity.OrderPreparing},
	entity.OrderDelivered: {entity.OrderReady},
	entity.OrderRejected:  {entity.OrderNew, entity.OrderAccepted},
}

// ----- Kitchen actions -----

// KitchenUpdateStatus moves an order along the lifecycle on behalf of a
// kitchen role. The order must belong to the category the role is bound to.
func (s *OrderService) KitchenUpdateStatus(role, orderID, newStatus, kitchenNotes string) (*entity.Order, error) {
	category := entity.KitchenCategory(role)
	if category == "" {
		return nil, ErrForbidden
	}

	from, ok := transitionFrom[newStatus]
	if !ok {
		return nil, fmt.Errorf("invalid status: %s", newStatus)
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if o.Category != category {
		return nil, ErrForbidden
	}

	now := time.Now()
	fields := map[string]any{
		"status":     newStatus,
		"updated_at": now,
	}
	if kitchenNotes != "" {
		fields["kitchen_notes"] = kitchenNotes
	}

	// Lifecycle timestamps are set-once: COALESCE keeps an already stamped
	// value even if the same patch is ever replayed.
	switch newStatus {
	case entity.OrderAccepted:
		fields["accepted_at"] = gorm.Expr("COALESCE(accepted_at, ?)", now)
	case entity.OrderReady:
		fields["prepared_at"] = gorm.Expr("COALESCE(prepared_at, ?)", now)
	case entity.OrderDelivered:
		fields["delivered_at"] = gorm.Expr("COALESCE(delivered_at, ?)", now)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, from, fields)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrTransitionConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(s.Feed, TopicOrders)
	return s.Repo.GetOrder(o.ID)
}

// ----- Customer actions -----

// CustomerCancel rejects an order on the customer's behalf. Only permitted
// while the kitchen has not started preparing, i.e. status new or accepted.
func (s *OrderService) CustomerCancel(orderID string) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	notes := "cancelled by customer"
	if o.CustomerNotes != "" {
		notes = o.CustomerNotes + "; " + notes
	}

	fields := map[string]any{
		"status":         entity.OrderRejected,
		"customer_notes": notes,
		"updated_at":     time.Now(),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID,
			[]string{entity.OrderNew, entity.OrderAccepted}, fields)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCancelNotPermitted
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(s.Feed, TopicOrders)
	return s.Repo.GetOrder(o.ID)
}
