package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/benjsant/coach-scheduler/internal/config"
	dbpkg "github.com/benjsant/coach-scheduler/internal/db"
	"github.com/benjsant/coach-scheduler/internal/lock"
	"github.com/benjsant/coach-scheduler/internal/middleware"
	"github.com/benjsant/coach-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	locker, err := lock.NewRedisLock(cfg.RedisAddr)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	defer locker.Close()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, locker, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
