package controllers

import (
	"errors"
	"strconv"

	"github.com/VictorBevilacqua/ana-carla-gestor-railway/pkg/resp"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	service  *services.MenuService
	whatsapp *services.WhatsAppService
}

func NewMenuController(service *services.MenuService, whatsapp *services.WhatsAppService) *MenuController {
	return &MenuController{service: service, whatsapp: whatsapp}
}

// List handles GET /menu?active=true|false. Without the filter it returns
// the whole menu, inactive items included.
func (mc *MenuController) List(c *gin.Context) {
	var active *bool
	if v := c.Query("active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			resp.BadRequest(c, "invalid active filter")
			return
		}
		active = &b
	}

	items, err := mc.service.List(active)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

func (mc *MenuController) Create(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.service.Create(&in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, item)
}

func (mc *MenuController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.service.Update(id, &in)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "menu item not found")
		return
	}
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, item)
}

// SetActive handles PATCH /menu/:id/active {"ativo": bool}.
func (mc *MenuController) SetActive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Active *bool `json:"ativo" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.service.SetActive(id, *req.Active)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "menu item not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

func (mc *MenuController) WhatsAppText(c *gin.Context) {
	text, err := mc.whatsapp.MenuText()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"texto": text})
}
