package controllers

import (
	"errors"

	"github.com/Ashitosh2004/hotellucky/pkg/resp"
	"github.com/Ashitosh2004/hotellucky/services"
	"github.com/Ashitosh2004/hotellucky/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type KitchenController struct {
	Orders *services.OrderService
	Stats  *services.StatsService
}

func NewKitchenController(orders *services.OrderService, stats *services.StatsService) *KitchenController {
	return &KitchenController{Orders: orders, Stats: stats}
}

// GET /kitchen/orders?status=all|new|accepted|preparing|ready
// The queue is scoped to the category bound to the caller's kitchen role;
// there is no way to request the other kitchen's orders.
func (ctl *KitchenController) Queue(c *gin.Context) {
	orders, err := ctl.Orders.ListForKitchen(utils.CurrentRole(c), c.Query("status"))
	switch {
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
		return
	case err != nil:
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

type UpdateStatusRequest struct {
	Status       string `json:"status" binding:"required"`
	KitchenNotes string `json:"kitchenNotes"`
}

// PATCH /kitchen/orders/:id/status
func (ctl *KitchenController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Orders.KitchenUpdateStatus(utils.CurrentRole(c), c.Param("id"), req.Status, req.KitchenNotes)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
		return
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
		return
	case errors.Is(err, services.ErrTransitionConflict):
		resp.Conflict(c, "order status changed, refresh and retry")
		return
	case err != nil:
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, order)
}

// GET /kitchen/stats
func (ctl *KitchenController) KitchenStats(c *gin.Context) {
	stats, err := ctl.Stats.KitchenStats(utils.CurrentRole(c))
	switch {
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
		return
	case err != nil:
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}
