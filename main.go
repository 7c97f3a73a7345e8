package main

import (
	"log"

	"github.com/VictorBevilacqua/ana-carla-gestor-railway/configs"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/routes"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/ws"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	if err := configs.ConnectDB(cfg.DBSource); err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	if err := configs.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu: %v", err)
	}
	if cfg.SeedDemo {
		if err := configs.SeedDemo(); err != nil {
			log.Fatalf("seed demo data: %v", err)
		}
	}

	hub := ws.NewBoardHub()

	r := gin.Default()
	routes.RegisterRoutes(r, cfg, hub)

	log.Println("listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
