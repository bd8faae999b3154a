package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Omralejandro22/luxury-nails-backend/internal/config"
	dbpkg "github.com/Omralejandro22/luxury-nails-backend/internal/db"
	"github.com/Omralejandro22/luxury-nails-backend/internal/middleware"
	"github.com/Omralejandro22/luxury-nails-backend/internal/monitoring"
	"github.com/Omralejandro22/luxury-nails-backend/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	monitoring.Init()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.PrometheusMetrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
