package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/gestion-bailleurs/bailleur-api/config"
	"github.com/gestion-bailleurs/bailleur-api/handlers"
	"github.com/gestion-bailleurs/bailleur-api/middleware"
	"github.com/gestion-bailleurs/bailleur-api/routes"
	"github.com/gestion-bailleurs/bailleur-api/services"
	"github.com/gestion-bailleurs/bailleur-api/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	log.Println("✅ Database connected successfully")

	if err := config.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	go scheduleSweepEnRetard(db)

	wsHandler := handlers.NewWSHandler()

	router := gin.Default()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	allowedOrigins := []string{
		frontendURL,
		"https://gestion-bailleurs.fr",
		"https://www.gestion-bailleurs.fr",
	}

	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("📨 %s %s - %d (%v)", c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start))
	})

	router.Use(middleware.RateLimiter())

	v1 := router.Group("/api/v1")
	{
		routes.SetupAuthRoutes(v1, db)
		v1.GET("/ws/updates", wsHandler.HandleWS)

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			routes.SetupBienRoutes(protected, db, wsHandler)
			routes.SetupLocataireRoutes(protected, db, wsHandler)
			routes.SetupEcheanceRoutes(protected, db, wsHandler)
			routes.SetupPaiementRoutes(protected, db, wsHandler)
			routes.SetupDashboardRoutes(protected, db)
			routes.SetupNotificationRoutes(protected, db)
			routes.SetupUserRoutes(protected, db)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	utils.LogStartup("bailleur-api", "1.0.0", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// scheduleSweepEnRetard passe chaque jour les échéances en attente dont la
// date est dépassée au statut en_retard.
func scheduleSweepEnRetard(db *sql.DB) {
	echeances := services.NewEcheanceService(db)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	sweep := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		count, err := echeances.SweepEnRetard(ctx)
		if err != nil {
			log.Printf("❌ Sweep en_retard failed: %v", err)
			return
		}
		if count > 0 {
			log.Printf("⏰ %d échéances passées en retard", count)
		}
	}

	sweep()
	for range ticker.C {
		sweep()
	}
}
