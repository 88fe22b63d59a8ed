package main

import (
	"context"
	"log"
	"time"

	"hunt-service/internal/config"
	"hunt-service/internal/db"
	"hunt-service/internal/event"
	"hunt-service/internal/handlers"
	"hunt-service/internal/repository"
	"hunt-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	database := client.Database(cfg.DatabaseName)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		publisher, err = event.NewEventPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, hunt events will not be published")
	}

	// Submissions
	submissionRepo := repository.NewSubmissionRepository(database)
	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := submissionRepo.EnsureIndexes(indexCtx); err != nil {
		cancel()
		log.Fatalf("Failed to create submission indexes: %v", err)
	}
	cancel()

	submissionService := service.NewSubmissionService(submissionRepo, cfg)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	healthHandler := handlers.NewHealthHandler()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Admin-Secret"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", healthHandler.Health)

	r.POST("/submit", func(c *gin.Context) {
		submissionHandler.Submit(c)
		if publisher != nil {
			publisher.Publish("hunt.submission.processed", gin.H{
				"outcome":   c.GetString("outcome"),
				"status":    c.Writer.Status(),
				"timestamp": time.Now(),
			})
		}
	})

	admin := r.Group("/admin", handlers.AdminAuth(cfg.AdminSecret))
	{
		admin.GET("/submissions", submissionHandler.ListSubmissions)
		admin.POST("/reset", func(c *gin.Context) {
			submissionHandler.ResetSubmissions(c)
			if publisher != nil {
				publisher.Publish("hunt.admin.reset", gin.H{
					"status":    c.Writer.Status(),
					"timestamp": time.Now(),
				})
			}
		})
	}

	log.Printf("Server running on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}
