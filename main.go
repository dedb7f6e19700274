package main

import (
	"fmt"
	"log"

	"github.com/Sunatl/mushkiloti-gomea/configs"
	"github.com/Sunatl/mushkiloti-gomea/controllers"
	"github.com/Sunatl/mushkiloti-gomea/middlewares"
	"github.com/Sunatl/mushkiloti-gomea/routes"
	"github.com/Sunatl/mushkiloti-gomea/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// blob storage (MinIO when configured, local disk otherwise)
	blobs, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	// HTTP
	controllers.RegisterValidators()

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// serve locally stored uploads (no-op when MinIO is the backend)
	r.Static("/uploads", "./"+cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, blobs)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
