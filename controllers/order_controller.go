package controllers

import (
	"errors"
	"strconv"

	"github.com/Ashitosh2004/hotellucky/pkg/resp"
	"github.com/Ashitosh2004/hotellucky/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders
func (ctl *OrderController) Place(c *gin.Context) {
	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Orders.Place(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	order, err := ctl.Orders.Get(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, order)
}

// GET /tables/:n/orders
func (ctl *OrderController) ListForTable(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		resp.BadRequest(c, "invalid table number")
		return
	}

	orders, err := ctl.Orders.ListForTable(n)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// POST /orders/:id/cancel
// Allowed only while the order is new or accepted; once the kitchen starts
// preparing, cancellation is refused.
func (ctl *OrderController) Cancel(c *gin.Context) {
	order, err := ctl.Orders.CustomerCancel(c.Param("id"))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
		return
	case errors.Is(err, services.ErrCancelNotPermitted):
		resp.Conflict(c, err.Error())
		return
	case err != nil:
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}
