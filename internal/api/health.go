package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// HealthHandler reports whether the database answers a trivial query
func HealthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dbTime string // Database-side timestamp
		if err := db.Raw("SELECT CURRENT_TIMESTAMP").Scan(&dbTime).Error; err != nil {
			respondServerError(c, "Database unreachable", err)
			return
		}
		respondSuccess(c, http.StatusOK, "", gin.H{
			"status":  "ok",   // Service is up
			"db_time": dbTime, // Timestamp reported by the database
		})
	}
}
