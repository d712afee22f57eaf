// repository/setting_repository.go
package repository

import (
	"errors"

	"github.com/Ashitosh2004/hotellucky/entity"
	"gorm.io/gorm"
)

type SettingRepository struct {
	DB *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

func (r *SettingRepository) FindByType(settingType string) (*entity.Setting, error) {
	var s entity.Setting
	err := r.DB.Where("type = ?", settingType).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert finds the single row for the type and updates it, creating it only
// when it does not exist yet. There is never a second row per type.
func (r *SettingRepository) Upsert(settingType, imageURL string) (*entity.Setting, error) {
	var s entity.Setting
	err := r.DB.Where(entity.Setting{Type: settingType}).FirstOrCreate(&s).Error
	if err != nil {
		return nil, err
	}
	if err := r.DB.Model(&s).Update("image_url", imageURL).Error; err != nil {
		return nil, err
	}
	s.ImageURL = imageURL
	return &s, nil
}
