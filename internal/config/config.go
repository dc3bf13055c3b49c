package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort        string // Application port
	DBUser         string // Database user
	DBPassword     string // Database password
	DBHost         string // Database host
	DBPort         string // Database port
	DBName         string // Database name
	JWTSecret      string // JWT secret key
	RazorpayKeyID  string // Razorpay API key id
	RazorpaySecret string // Razorpay API key secret
	CouponCode     string // Coupon code returned after a verified payment
	RedirectURL    string // Redirect URL returned after a verified payment
	RedisAddr      string // Redis server address
	RedisPass      string // Redis password
	RedisDB        int    // Redis database number
	IsProd         bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),                     // Application port
		DBUser:         os.Getenv("DB_USER"),                           // Database user
		DBPassword:     os.Getenv("DB_PASSWORD"),                       // Database password
		DBHost:         os.Getenv("DB_HOST"),                           // Database host
		DBPort:         os.Getenv("DB_PORT"),                           // Database port
		DBName:         os.Getenv("DB_NAME"),                           // Database name
		JWTSecret:      os.Getenv("JWT_SECRET"),                        // JWT secret key
		RazorpayKeyID:  os.Getenv("RAZORPAY_KEY_ID"),                   // Razorpay API key id
		RazorpaySecret: os.Getenv("RAZORPAY_KEY_SECRET"),               // Razorpay API key secret
		CouponCode:     getEnv("REWARD_COUPON_CODE", "PREMIUM50"),      // Static coupon granted on verified payment
		RedirectURL:    getEnv("REWARD_REDIRECT_URL", "/premium"),      // Static redirect after verified payment
		RedisAddr:      os.Getenv("REDIS_ADDR"),                       // Redis server address
		RedisPass:      os.Getenv("REDIS_PASS"),                       // Redis password
		RedisDB:        redisDB,                                       // Redis database number
		IsProd:         os.Getenv("IS_PROD") == "true",                // Is production environment
	}
}

// getEnv returns the value of the environment variable or a fallback
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
