package services

import (
	"github.com/Ashitosh2004/hotellucky/entity"
	"github.com/Ashitosh2004/hotellucky/repository"
)

type SettingService struct {
	Repo *repository.SettingRepository
	Feed FeedPublisher
}

func NewSettingService(repo *repository.SettingRepository, feed FeedPublisher) *SettingService {
	return &SettingService{Repo: repo, Feed: feed}
}

// QRCodeURL returns the payment QR image URL, or "" when none is set.
func (s *SettingService) QRCodeURL() (string, error) {
	setting, err := s.Repo.FindByType(entity.SettingQRCode)
	if err != nil {
		return "", err
	}
	if setting == nil {
		return "", nil
	}
	return setting.ImageURL, nil
}

// UpdateQRCode replaces the QR image URL. Find-or-create on the single
// qr_code row, never a second one.
func (s *SettingService) UpdateQRCode(imageURL string) (*entity.Setting, error) {
	setting, err := s.Repo.Upsert(entity.SettingQRCode, imageURL)
	if err != nil {
		return nil, err
	}
	publish(s.Feed, TopicSettings)
	return setting, nil
}
