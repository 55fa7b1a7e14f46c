package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse writes a plain-text error body and stops the handler chain.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	if message == "" {
		message = http.StatusText(http.StatusInternalServerError)
	}
	c.Abort()
	c.Data(statusCode, "text/plain; charset=utf-8", []byte(message))
}

// SuccessResponse writes the payload as JSON without an envelope.
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
