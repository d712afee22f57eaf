package controllers

import (
	"github.com/Ashitosh2004/hotellucky/pkg/resp"
	"github.com/Ashitosh2004/hotellucky/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Menu   *services.MenuService
	Orders *services.OrderService
	Stats  *services.StatsService
}

func NewAdminController(menu *services.MenuService, orders *services.OrderService, stats *services.StatsService) *AdminController {
	return &AdminController{Menu: menu, Orders: orders, Stats: stats}
}

// GET /admin/menu → everything not soft-deleted, unavailable included
func (ctl *AdminController) ListMenu(c *gin.Context) {
	items, err := ctl.Menu.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /admin/menu
func (ctl *AdminController) CreateMenuItem(c *gin.Context) {
	var req services.CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Menu.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, item)
}

type AvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

// PATCH /admin/menu/:id/availability
func (ctl *AdminController) SetAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Menu.SetAvailability(c.Param("id"), *req.IsAvailable); err != nil {
		resp.NotFound(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /admin/menu/:id → soft delete; order history keeps its snapshot
func (ctl *AdminController) DeleteMenuItem(c *gin.Context) {
	if err := ctl.Menu.SoftDelete(c.Param("id")); err != nil {
		resp.NotFound(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// GET /admin/orders
func (ctl *AdminController) ListOrders(c *gin.Context) {
	orders, err := ctl.Orders.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /admin/stats
func (ctl *AdminController) AdminStats(c *gin.Context) {
	stats, err := ctl.Stats.AdminStats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /admin/stats/earnings
func (ctl *AdminController) Earnings(c *gin.Context) {
	series, err := ctl.Stats.Earnings()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, series)
}
