package services

import (
	"path/filepath"
	"testing"

	"github.com/Ashitosh2004/hotellucky/entity"
	"github.com/Ashitosh2004/hotellucky/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.Setting{},
	))
	return db
}

func newMenuService(t *testing.T, db *gorm.DB) *MenuService {
	t.Helper()
	return NewMenuService(repository.NewMenuRepository(db), nil)
}

func newOrderService(t *testing.T, db *gorm.DB) *OrderService {
	t.Helper()
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewMenuRepository(db), nil)
}

// mustCreateItem seeds an available menu item and returns it.
func mustCreateItem(t *testing.T, menus *MenuService, name string, price float64, category string) *entity.MenuItem {
	t.Helper()

	item, err := menus.Create(&CreateMenuItemReq{
		Name:        map[string]string{"en": name, "hi": name + "-hi", "mr": name + "-mr"},
		Description: map[string]string{"en": "d", "hi": "d", "mr": "d"},
		Price:       price,
		Category:    category,
		IsAvailable: true,
	})
	require.NoError(t, err)
	return item
}

// mustPlaceOrder seeds an order for the item.
func mustPlaceOrder(t *testing.T, orders *OrderService, itemID string, qty, table int) *entity.Order {
	t.Helper()

	o, err := orders.Place(&PlaceOrderReq{MenuItemID: itemID, Quantity: qty, TableNumber: table})
	require.NoError(t, err)
	return o
}
