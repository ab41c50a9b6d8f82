package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"tade-autism-centre/backend/auth"
	"tade-autism-centre/backend/consumer"
	"tade-autism-centre/backend/handlers"
	"tade-autism-centre/backend/middleware"
	"tade-autism-centre/backend/models"
	"tade-autism-centre/backend/monitoring"
	"tade-autism-centre/backend/utils"
)

func main() {
	logger := log.New(os.Stdout, "TADE: ", log.LstdFlags|log.Lshortfile)

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := utils.InitSentry(dsn); err != nil {
			logger.Printf("Sentry disabled: %v", err)
		}
	}

	monitoring.Init()

	// Postgres with retries; the rest of the process is useless without it
	var repo models.Repository
	var err error
	maxRetries := 5
	retryDelay := 3 * time.Second

	for i := 0; i < maxRetries; i++ {
		repo, err = models.NewPostgresRepository()
		if err == nil {
			break
		}
		logger.Printf("Attempt %d: Failed to connect to Postgres: %v", i+1, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if err != nil {
		logger.Fatalf("Failed to initialize Postgres after %d attempts: %v", maxRetries, err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Printf("Error closing Postgres connection: %v", err)
		}
	}()

	redisClient, err := utils.NewRedisClient()
	if err != nil {
		logger.Printf("Redis unavailable, serving without cache: %v", err)
		redisClient = nil
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Printf("Error closing Redis connection: %v", err)
			}
		}()
	}

	kafkaProducer, err := utils.NewKafkaProducer()
	if err != nil {
		logger.Printf("Kafka unavailable, domain events disabled: %v", err)
		kafkaProducer = nil
	} else {
		defer kafkaProducer.Close()
	}

	mailer, err := utils.NewMailer()
	if err != nil {
		logger.Fatalf("Failed to configure mailer: %v", err)
	}

	checkoutClient, err := utils.NewStripeClient()
	if err != nil {
		logger.Fatalf("Failed to configure Stripe: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	verifier, err := auth.NewFirebaseVerifier(ctx)
	if err != nil {
		logger.Fatalf("Failed to initialize Firebase verifier: %v", err)
	}
	admins := auth.NewAllowlist()

	if kafkaProducer != nil {
		if esClient, err := utils.NewElasticsearchClient(); err != nil {
			logger.Printf("Elasticsearch unavailable, back-office indexing disabled: %v", err)
		} else {
			events := consumer.NewDirectoryConsumer(esClient)
			events.Start(ctx)
			defer events.Stop()
		}
	}

	specialistHandler := handlers.NewSpecialistHandler(repo, redisClient, kafkaProducer)
	assessmentHandler := handlers.NewAssessmentHandler(repo, mailer, kafkaProducer)
	leadHandler := handlers.NewLeadHandler(mailer)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutClient)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.PrometheusMetrics(), middleware.SentryMiddleware(), middleware.ErrorHandler())

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	api := router.Group("/api")
	{
		requireAdmin := middleware.RequireAdmin(verifier, admins)

		api.POST("/specialists/add", requireAdmin, specialistHandler.Add)
		api.GET("/specialists/list", specialistHandler.List)

		api.POST("/assessments/submit", assessmentHandler.Submit)
		api.GET("/assessments/submit", requireAdmin, assessmentHandler.List)

		api.POST("/contact", leadHandler.Contact)
		api.POST("/adults/contact", leadHandler.AdultsContact)
		api.POST("/register", leadHandler.Register)

		api.POST("/stripe/checkout-session", checkoutHandler.CreateSession)

		api.GET("/health", func(c *gin.Context) {
			details := gin.H{"postgres": "available", "redis": "available"}

			if err := repo.Ping(); err != nil {
				details["postgres"] = "unavailable"
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "details": details, "error": err.Error()})
				return
			}

			if redisClient != nil {
				hctx, hcancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
				defer hcancel()
				if err := redisClient.SetToCache(hctx, "healthcheck", "ping", 10*time.Second); err != nil {
					details["redis"] = "unavailable"
					c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "details": details, "error": err.Error()})
					return
				}
			} else {
				details["redis"] = "disabled"
			}

			c.JSON(http.StatusOK, gin.H{"status": "ok", "details": details})
		})
	}

	router.GET("/metrics", gin.WrapH(monitoring.Handler()))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Printf("Server is running on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Fatalf("Server error: %v", err)
	}
}
