package controllers

import (
	"time"

	"github.com/ottchakarov/FrontDash/pkg/resp"
	"github.com/ottchakarov/FrontDash/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := oc.Orders.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, o)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	o, err := oc.Orders.Get(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	items, err := oc.Orders.Repo.GetOrderItems(o.OrderID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"order": o, "items": items})
}

// GET /staff/orders/pending
func (oc *OrderController) Pending(c *gin.Context) {
	orders, err := oc.Orders.PendingOrders()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id/summary
func (oc *OrderController) Summary(c *gin.Context) {
	text, err := oc.Orders.BuildSummary(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"summary": text})
}

type assignReq struct {
	DriverID string `json:"driverId" binding:"required"`
}

// PATCH /staff/orders/:id/assign
func (oc *OrderController) Assign(c *gin.Context) {
	var req assignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := oc.Orders.AssignDriver(c.Param("id"), req.DriverID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, o)
}

type deliverReq struct {
	DeliveredAt string `json:"deliveredAt"`
}

// PATCH /staff/orders/:id/deliver
func (oc *OrderController) Deliver(c *gin.Context) {
	var req deliverReq
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		resp.BadRequest(c, err.Error())
		return
	}

	var at *time.Time
	if req.DeliveredAt != "" {
		t, err := time.Parse(time.RFC3339, req.DeliveredAt)
		if err != nil {
			resp.BadRequest(c, "deliveredAt must be RFC 3339")
			return
		}
		at = &t
	}

	o, err := oc.Orders.MarkDelivered(c.Param("id"), at)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, o)
}
