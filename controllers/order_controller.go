package controllers

import (
	"errors"

	"github.com/VictorBevilacqua/ana-carla-gestor-railway/entity"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/pkg/resp"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/services"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/ws"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	service *services.OrderService
	hub     *ws.BoardHub
}

func NewOrderController(service *services.OrderService, hub *ws.BoardHub) *OrderController {
	return &OrderController{service: service, hub: hub}
}

func (oc *OrderController) notify(event string, o *entity.Order) {
	if oc.hub != nil {
		oc.hub.Broadcast(ws.OrderEvent{Type: event, OrderID: o.ID, Status: o.Status})
	}
}

// List handles GET /orders?status=S.
func (oc *OrderController) List(c *gin.Context) {
	var status *entity.Status
	if v := c.Query("status"); v != "" {
		s, err := entity.ParseStatus(v)
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		status = &s
	}

	orders, err := oc.service.List(status)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := oc.service.Get(id)
	if errors.Is(err, services.ErrNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.service.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	oc.notify("order_created", order)
	resp.Created(c, order)
}

func (oc *OrderController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.service.Update(id, &req)
	if errors.Is(err, services.ErrNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	oc.notify("order_updated", order)
	resp.OK(c, order)
}

// UpdateStatus handles PATCH /orders/:id/status {"status": S} - the board
// move. Any allowed status value is accepted; there is no transition rule
// beyond the enum itself.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.service.UpdateStatus(id, req.Status)
	if errors.Is(err, services.ErrNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	oc.notify("status_changed", order)
	resp.OK(c, order)
}

func (oc *OrderController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := oc.service.Delete(id)
	if errors.Is(err, services.ErrNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
