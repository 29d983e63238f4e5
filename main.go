package main

import (
	"github.com/ottchakarov/FrontDash/configs"
	"github.com/ottchakarov/FrontDash/middlewares"
	"github.com/ottchakarov/FrontDash/pkg/logger"
	"github.com/ottchakarov/FrontDash/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	if err := configs.SeedAdmin(); err != nil {
		log.Fatalw("seed admin", "error", err)
	}
	if err := configs.SeedSampleData(); err != nil {
		log.Fatalw("seed sample data", "error", err)
	}

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	hub := routes.RegisterRoutes(r, configs.DB(), cfg, log)
	go hub.Run()

	log.Infow("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}
