package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"checkout_system/internal/domain" // Domain models
	"checkout_system/internal/utils"  // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// contextUserKey is the gin context key holding the authenticated user
const contextUserKey = "authUser"

// AuthUser is the sanitized view of the authenticated user attached to
// the request context. It never carries the password hash.
type AuthUser struct {
	ID    uint   `json:"id"`    // User ID
	Name  string `json:"name"`  // Display name
	Email string `json:"email"` // Email address
}

// AuthError describes why authentication was refused
type AuthError struct {
	Status  int    // HTTP status class: 401 or 403
	Message string // Client-facing message
}

// Authenticate checks the Authorization header, validates the bearer
// token and resolves its subject against the database. It is the whole
// of the auth gate; AuthRequired is only the gin adapter around it.
func Authenticate(db *gorm.DB, secret, authHeader string) (*AuthUser, *AuthError) {
	// Check if the Authorization header is present and properly formatted
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, &AuthError{Status: http.StatusUnauthorized, Message: "Authentication required"}
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
	claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
	if err != nil {
		// Malformed, forged and expired tokens are all rejected alike
		return nil, &AuthError{Status: http.StatusForbidden, Message: "Invalid or expired token"}
	}
	// The token may outlive its subject; a valid signature for a
	// deleted user must not authenticate
	var user domain.User
	if err := db.First(&user, claims.UserID).Error; err != nil {
		return nil, &AuthError{Status: http.StatusUnauthorized, Message: "User not found"}
	}
	return &AuthUser{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// AuthRequired protects a route group with the auth gate
func AuthRequired(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, authErr := Authenticate(db, secret, c.GetHeader("Authorization"))
		if authErr != nil {
			// Abort with the envelope the handlers use
			c.AbortWithStatusJSON(authErr.Status, gin.H{"success": false, "error": authErr.Message})
			return
		}
		c.Set(contextUserKey, user) // Store sanitized user in context
		c.Next()                    // Proceed to the next handler
	}
}

// CurrentUser returns the authenticated user attached by AuthRequired
func CurrentUser(c *gin.Context) (*AuthUser, bool) {
	v, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*AuthUser)
	return user, ok
}
