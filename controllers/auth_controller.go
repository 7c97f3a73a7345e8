package controllers

import (
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/pkg/resp"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/services"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}

type LoginRes struct {
	Token string `json:"token"`
	Type  string `json:"tipo"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ac.service.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	resp.OK(c, LoginRes{
		Token: token,
		Type:  "Bearer",
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}

func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.service.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "user not found")
		return
	}
	resp.OK(c, user)
}
