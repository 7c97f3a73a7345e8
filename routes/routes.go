package routes

import (
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/configs"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/controllers"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/middlewares"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/repository"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/services"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/ws"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, hub *ws.BoardHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	customerSvc := services.NewCustomerService(customerRepo)
	menuSvc := services.NewMenuService(menuRepo)
	whatsappSvc := services.NewWhatsAppService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, customerRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	customerCtrl := controllers.NewCustomerController(customerSvc)
	menuCtrl := controllers.NewMenuController(menuSvc, whatsappSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, hub)
	dashCtrl := controllers.NewDashboardController(orderRepo, customerRepo)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Everything below requires a valid bearer token.
	api := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		api.GET("/customers", customerCtrl.List)
		api.POST("/customers", customerCtrl.Create)
		api.PUT("/customers/:id", customerCtrl.Update)
		api.DELETE("/customers/:id", customerCtrl.Delete)

		api.GET("/menu", menuCtrl.List)
		api.POST("/menu", menuCtrl.Create)
		api.PUT("/menu/:id", menuCtrl.Update)
		api.PATCH("/menu/:id/active", menuCtrl.SetActive)
		api.GET("/menu/whatsapp-text", menuCtrl.WhatsAppText)

		api.GET("/orders", orderCtrl.List)
		api.POST("/orders", orderCtrl.Create)
		api.GET("/orders/:id", orderCtrl.Detail)
		api.PUT("/orders/:id", orderCtrl.Update)
		api.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		api.DELETE("/orders/:id", orderCtrl.Delete)

		api.GET("/dashboard", dashCtrl.Summary)
	}

	// Live board updates; token comes via query on browser upgrades.
	if hub != nil {
		r.GET("/ws/board", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.Handle)
	}
}
