package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/bec-courses/course-api/internal/cache"
	"github.com/bec-courses/course-api/internal/config"
	"github.com/bec-courses/course-api/internal/db"
	"github.com/bec-courses/course-api/internal/discovery"
	"github.com/bec-courses/course-api/internal/handlers"
	"github.com/bec-courses/course-api/internal/messaging"
	"github.com/bec-courses/course-api/internal/publisher"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// Connect to PostgreSQL
	database, err := db.NewPostgresDB(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	// Connect to Redis
	redisCache, err := cache.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisCache.Close()

	// Connect to RabbitMQ (optional)
	var orderPublisher handlers.OrderEventPublisher
	if cfg.RabbitURL != "" {
		rabbitMQ, err := messaging.NewRabbitMQ(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer rabbitMQ.Close()

		orderPublisher, err = publisher.NewOrderPublisher(rabbitMQ)
		if err != nil {
			log.Fatalf("Failed to create publisher: %v", err)
		}
	}

	// Register with Consul (optional)
	if cfg.ConsulAddr != "" {
		consul, err := discovery.NewConsulClient(cfg.ConsulAddr)
		if err != nil {
			log.Fatalf("Failed to connect to Consul: %v", err)
		}

		err = consul.Register(discovery.ServiceConfig{
			Name: cfg.ServiceName,
			ID:   cfg.ServiceID,
			Port: cfg.HTTPPort,
			Tags: []string{"api", "courses", "orders"},
		})
		if err != nil {
			log.Fatalf("Failed to register service: %v", err)
		}

		// Deregister on shutdown
		go func() {
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			<-sigChan
			log.Println("Shutting down...")
			consul.Deregister(cfg.ServiceID)
			os.Exit(0)
		}()
	}

	// Create repositories
	courseRepo := db.NewCourseRepository(database)
	cachedCourses := db.NewCachedCourseRepository(courseRepo, redisCache)
	orderRepo := db.NewOrderRepository(database)

	// Create handlers
	courseHandler := handlers.NewCourseHandler(cachedCourses)
	orderHandler := handlers.NewOrderHandler(orderRepo, cachedCourses, orderPublisher)
	adminHandler := handlers.NewAdminHandler(cachedCourses)

	// Setup router
	router := gin.Default()

	router.GET("/health", courseHandler.HealthCheck)

	router.GET("/courses", courseHandler.ListCourses)
	router.GET("/courses/:id", courseHandler.GetCourse)
	router.POST("/courses", courseHandler.CreateCourse)
	router.PUT("/courses/:id", courseHandler.UpdateCourse)
	router.DELETE("/courses/:id", courseHandler.DeleteCourse)

	router.GET("/orders", orderHandler.ListOrders)
	router.GET("/orders/:id", orderHandler.GetOrder)
	router.POST("/orders", orderHandler.CreateOrder)
	router.PUT("/orders/:id", orderHandler.UpdateOrder)

	router.POST("/admin/courses/import", adminHandler.ImportCourses)
	router.DELETE("/admin/courses", adminHandler.ClearCourses)

	// Start server
	log.Printf("🚀 %s starting on http://localhost:%d", cfg.ServiceName, cfg.HTTPPort)
	router.Run(fmt.Sprintf(":%d", cfg.HTTPPort))
}
