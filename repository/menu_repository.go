// repository/menu_repository.go
package repository

import (
	"github.com/Ashitosh2004/hotellucky/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// Customer catalog: available, not deleted, optional category filter.
func (r *MenuRepository) FindAvailable(category string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	q := r.DB.
		Where("is_available = ? AND is_deleted = ?", true, false).
		Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&items).Error
	return items, err
}

// Admin listing: everything not soft-deleted, unavailable included.
func (r *MenuRepository) FindAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) SetAvailability(id string, available bool) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_available", available)
	return res.RowsAffected, res.Error
}

// SoftDelete hides the item without removing the row, so orders holding a
// snapshot of it keep their history.
func (r *MenuRepository) SoftDelete(id string) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) SetImageURL(id, url string) error {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Update("image_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MenuRepository) CountVisible() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).
		Where("is_deleted = ?", false).
		Count(&count).Error
	return count, err
}
