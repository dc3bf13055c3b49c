package api

import (
	"net/http" // HTTP status codes
	"time"     // Response timestamps

	"checkout_system/internal/domain"     // Domain models
	"checkout_system/internal/middleware" // Auth gate context access
	"checkout_system/internal/utils"      // Hashing and JWT utilities

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// minPasswordLength is the minimum accepted password length
const minPasswordLength = 8

// SignupRequest is the body of POST /api/auth/signup
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`     // Display name must be provided
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// UserResponse is the sanitized user view returned by auth endpoints
type UserResponse struct {
	ID        uint      `json:"id"`         // User ID
	Name      string    `json:"name"`       // Display name
	Email     string    `json:"email"`      // Email address
	CreatedAt time.Time `json:"created_at"` // Timestamp of creation
}

// userView maps a User to its sanitized response form
func userView(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

// SignupHandler registers a new user and issues a session token
func SignupHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			respondError(c, http.StatusBadRequest, "Name, email and password are required")
			return
		}
		// Validate password length before hashing
		if len(req.Password) < minPasswordLength {
			respondError(c, http.StatusBadRequest, "Password must be at least 8 characters")
			return
		}
		// Check email uniqueness with an exact, case-sensitive match
		var existing domain.User
		if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			respondError(c, http.StatusBadRequest, "User already exists")
			return
		}
		// Hash the password and create the user
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			respondServerError(c, "Failed to hash password", err)
			return
		}
		user := domain.User{Name: req.Name, Email: req.Email, Password: hash}
		// Attempt to create the user in the database
		if err := db.Create(&user).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"email": req.Email,   // Requested email
				"error": err.Error(), // Error message
			}).Error("Signup failed") // Log signup failure
			respondServerError(c, "Failed to create user", err)
			return
		}
		// Issue the session token for the fresh account
		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			respondServerError(c, "Failed to generate token", err)
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,    // New user ID
			"email":   user.Email, // Registered email
		}).Info("User registered")
		// Return the sanitized user and the token
		respondSuccess(c, http.StatusCreated, "User registered successfully", gin.H{
			"user":  userView(&user), // Sanitized user view
			"token": token,           // Session token
		})
	}
}

// LoginHandler authenticates a user and issues a session token
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Email and password are required")
			return
		}
		var user domain.User // Fetch user from database
		// Unknown email and wrong password must be indistinguishable
		// to the caller, so both paths share one message
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			respondError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		// Compare provided password with stored hash
		if !utils.CheckPassword(req.Password, user.Password) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			respondServerError(c, "Failed to generate token", err)
			return
		}
		// Return the sanitized user and the token
		respondSuccess(c, http.StatusOK, "Login successful", gin.H{
			"user":  userView(&user), // Sanitized user view
			"token": token,           // Session token
		})
	}
}

// MeHandler returns the profile of the authenticated user
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c) // Resolved by the auth gate
		if !ok {
			// Route was registered without the gate
			respondError(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		respondSuccess(c, http.StatusOK, "", gin.H{"user": user})
	}
}
