package controllers

import (
	"time"

	"github.com/VictorBevilacqua/ana-carla-gestor-railway/pkg/dashboard"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/pkg/resp"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/repository"
	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	orders    *repository.OrderRepository
	customers *repository.CustomerRepository
}

func NewDashboardController(orders *repository.OrderRepository, customers *repository.CustomerRepository) *DashboardController {
	return &DashboardController{orders: orders, customers: customers}
}

// Summary handles GET /dashboard: KPIs and alerts over the full order and
// customer collections, computed at request time.
func (dc *DashboardController) Summary(c *gin.Context) {
	orders, err := dc.orders.List(nil)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	customers, err := dc.customers.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, dashboard.Summarize(customers, orders, time.Now()))
}
