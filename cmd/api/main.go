package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/config"
	dbpkg "github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/db"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/lock"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/middleware"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/routes"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	locker, err := lock.NewRedisLock(cfg.RedisAddr)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, locker)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
