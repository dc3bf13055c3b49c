package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"checkout_system/internal/api"        // Custom package for API handlers
	"checkout_system/internal/config"     // Custom package for configuration
	"checkout_system/internal/middleware" // Custom package for middleware
	"checkout_system/internal/payment"    // Payment provider client

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// A missing signing secret would make every issued token forgeable
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is not set")
	}

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Payment provider client; create-order reports the gap at call
	// time when the keys are absent
	var orders payment.OrderCreator
	if cfg.RazorpayKeyID != "" && cfg.RazorpaySecret != "" {
		orders = payment.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpaySecret)
	} else {
		logrus.Warn("Razorpay keys not configured; order creation will fail")
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.New() // Gin router instance
	r.Use(middleware.RequestID(), middleware.RequestLogger(), gin.Recovery())

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Health endpoint
	r.GET("/api/health", api.HealthHandler(db))

	// Auth routes
	authGroup := r.Group("/api/auth")
	authGroup.POST("/signup", api.SignupHandler(db, cfg.JWTSecret)) // Registration endpoint
	authGroup.POST("/login", api.LoginHandler(db, cfg.JWTSecret))   // Login endpoint
	// Profile endpoint sits behind the auth gate
	authGroup.GET("/me", middleware.AuthRequired(db, cfg.JWTSecret), api.MeHandler())

	// Payment routes (protected by the auth gate)
	paymentGroup := r.Group("/api/payments")
	paymentGroup.Use(middleware.AuthRequired(db, cfg.JWTSecret))
	paymentGroup.POST("/create-order", api.CreateOrderHandler(db, redisClient, orders)) // Order creation endpoint
	paymentGroup.POST("/verify", api.VerifyPaymentHandler(db, redisClient, cfg))        // Verification endpoint
	paymentGroup.GET("/history", api.HistoryHandler(db, redisClient))                   // History endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
