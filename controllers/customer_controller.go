package controllers

import (
	"errors"
	"strconv"

	"github.com/VictorBevilacqua/ana-carla-gestor-railway/pkg/resp"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CustomerController struct {
	service *services.CustomerService
}

func NewCustomerController(service *services.CustomerService) *CustomerController {
	return &CustomerController{service: service}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func (cc *CustomerController) List(c *gin.Context) {
	customers, err := cc.service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, customers)
}

func (cc *CustomerController) Create(c *gin.Context) {
	var in services.CustomerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	customer, err := cc.service.Create(&in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, customer)
}

func (cc *CustomerController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in services.CustomerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	customer, err := cc.service.Update(id, &in)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "customer not found")
		return
	}
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, customer)
}

func (cc *CustomerController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := cc.service.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "customer not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
