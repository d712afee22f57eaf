// repository/order_repository.go
package repository

import (
	"github.com/Ashitosh2004/hotellucky/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders → full feed, newest first (admin and stats use this).
func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Order("created_at DESC").Find(&out).Error
	return out, err
}

// GET /tables/:n/orders → a table's own orders.
func (r *OrderRepository) ListForTable(tableNumber int) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Where("table_number = ?", tableNumber).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// GET /kitchen/orders → one kitchen's queue, optional status filter.
func (r *OrderRepository) ListForCategory(category string, status string) ([]entity.Order, error) {
	var out []entity.Order
	q := r.DB.Where("category = ?", category).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&out).Error
	return out, err
}

// UpdateStatusGuard applies a status transition as a compare-and-swap: the
// row is only touched while its status is still one of fromStatuses. A
// concurrent transition that lands first makes this one match zero rows.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID string, fromStatuses []string, fields map[string]any) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status IN ?", orderID, fromStatuses).
		Updates(fields)
	return res.RowsAffected, res.Error
}
