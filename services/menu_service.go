// services/menu_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/Ashitosh2004/hotellucky/entity"
	"github.com/Ashitosh2004/hotellucky/repository"
	"github.com/Ashitosh2004/hotellucky/utils"

	"gorm.io/datatypes"
)

// Languages every localized field must carry at write time.
var requiredLanguages = []string{"en", "hi", "mr"}

type MenuService struct {
	Repo *repository.MenuRepository
	Feed FeedPublisher
}

func NewMenuService(repo *repository.MenuRepository, feed FeedPublisher) *MenuService {
	return &MenuService{Repo: repo, Feed: feed}
}

type CreateMenuItemReq struct {
	Name        map[string]string `json:"name" binding:"required"`
	Description map[string]string `json:"description" binding:"required"`
	Price       float64           `json:"price" binding:"required,gt=0"`
	Category    string            `json:"category" binding:"required"`
	ImageURL    string            `json:"imageUrl"`
	ImageData   string            `json:"imageData"` // optional base64 data URL
	IsAvailable bool              `json:"isAvailable"`
}

func (s *MenuService) Create(req *CreateMenuItemReq) (*entity.MenuItem, error) {
	if !entity.ValidCategory(req.Category) {
		return nil, fmt.Errorf("invalid category: %s", req.Category)
	}
	if req.Price <= 0 {
		return nil, errors.New("price must be positive")
	}
	if err := validateLocalized("name", req.Name); err != nil {
		return nil, err
	}
	if err := validateLocalized("description", req.Description); err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		Name:        toJSONMap(req.Name),
		Description: toJSONMap(req.Description),
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	}

	if req.ImageData != "" {
		data, mimeType, err := utils.DecodeDataURL(req.ImageData)
		if err != nil {
			return nil, err
		}
		item.Image = data
		item.ImageType = mimeType
	}

	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	if len(item.Image) > 0 && item.ImageURL == "" {
		// uploaded images are served from our own endpoint
		item.ImageURL = "/menu/" + item.ID + "/image"
		if err := s.Repo.SetImageURL(item.ID, item.ImageURL); err != nil {
			return nil, err
		}
	}

	publish(s.Feed, TopicMenu)
	return item, nil
}

// ListCatalog is the customer-facing view: available items only, newest
// first, optionally narrowed to one category ("all" and "" mean no filter).
func (s *MenuService) ListCatalog(category string) ([]entity.MenuItem, error) {
	if category == "" || category == "all" {
		return s.Repo.FindAvailable("")
	}
	if !entity.ValidCategory(category) {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	return s.Repo.FindAvailable(category)
}

func (s *MenuService) ListAll() ([]entity.MenuItem, error) {
	return s.Repo.FindAll()
}

func (s *MenuService) Get(id string) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuService) SetAvailability(id string, available bool) error {
	affected, err := s.Repo.SetAvailability(id, available)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("menu item not found")
	}
	publish(s.Feed, TopicMenu)
	return nil
}

func (s *MenuService) SoftDelete(id string) error {
	affected, err := s.Repo.SoftDelete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("menu item not found")
	}
	publish(s.Feed, TopicMenu)
	return nil
}

func validateLocalized(field string, m map[string]string) error {
	for _, lang := range requiredLanguages {
		if m[lang] == "" {
			return fmt.Errorf("%s.%s is required", field, lang)
		}
	}
	return nil
}

func toJSONMap(m map[string]string) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	for k, v := range m {
		out[k] = v
	}
	return out
}
