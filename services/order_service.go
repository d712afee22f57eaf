package services

import (
	"errors"
	"fmt"

	"github.com/Ashitosh2004/hotellucky/entity"
	"github.com/Ashitosh2004/hotellucky/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	Feed     FeedPublisher
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, menuRepo *repository.MenuRepository, feed FeedPublisher) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, Feed: feed}
}

// ----- DTOs from Controller -----

type PlaceOrderReq struct {
	MenuItemID    string `json:"menuItemId" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,gt=0"`
	TableNumber   int    `json:"tableNumber" binding:"required,gt=0"`
	CustomerNotes string `json:"customerNotes"`
}

// Place creates a new order with a snapshot of the menu item. Name, price
// and category are copied onto the order so later menu edits or deletes
// never change what was ordered or what it cost.
func (s *OrderService) Place(req *PlaceOrderReq) (*entity.Order, error) {
	item, err := s.MenuRepo.FindByID(req.MenuItemID)
	if err != nil {
		return nil, errors.New("menu item not found")
	}
	if item.IsDeleted || !item.IsAvailable {
		return nil, errors.New("menu item is not available")
	}

	order := &entity.Order{
		MenuItemID:    item.ID,
		MenuItemName:  item.Name,
		Price:         item.Price,
		Category:      item.Category,
		Quantity:      req.Quantity,
		TableNumber:   req.TableNumber,
		TotalAmount:   item.Price * float64(req.Quantity),
		Status:        entity.OrderNew,
		CustomerNotes: req.CustomerNotes,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateOrder(tx, order)
	})
	if err != nil {
		return nil, err
	}

	publish(s.Feed, TopicOrders)
	return order, nil
}

func (s *OrderService) Get(orderID string) (*entity.Order, error) {
	return s.Repo.GetOrder(orderID)
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.ListAll()
}

func (s *OrderService) ListForTable(tableNumber int) ([]entity.Order, error) {
	if tableNumber <= 0 {
		return nil, fmt.Errorf("invalid table number: %d", tableNumber)
	}
	return s.Repo.ListForTable(tableNumber)
}

// ListForKitchen returns the queue of the kitchen bound to the given role,
// optionally narrowed by status ("all" and "" mean no filter). The category
// comes from the role, so one kitchen can never read the other's queue.
func (s *OrderService) ListForKitchen(role string, status string) ([]entity.Order, error) {
	category := entity.KitchenCategory(role)
	if category == "" {
		return nil, ErrForbidden
	}
	if status == "" || status == "all" {
		return s.Repo.ListForCategory(category, "")
	}
	if !entity.ValidOrderStatus(status) {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	return s.Repo.ListForCategory(category, status)
}
