package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// respondSuccess writes the shared response envelope for a successful call
func respondSuccess(c *gin.Context, status int, message string, data gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// respondError writes the shared response envelope for a client error
func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// respondServerError writes a 500 envelope. The underlying error is
// only exposed outside release mode.
func respondServerError(c *gin.Context, msg string, err error) {
	body := gin.H{"success": false, "error": msg}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		body["detail"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
