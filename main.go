package main

import (
	"log"

	"github.com/Ashitosh2004/hotellucky/configs"
	"github.com/Ashitosh2004/hotellucky/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedStaff(cfg); err != nil {
		log.Fatalf("seed staff failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
