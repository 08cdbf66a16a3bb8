package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"message": message,
	})
}

// NotFound answers requests that match no route.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		RespondWithError(c, http.StatusNotFound, "Not Found")
	}
}

// MethodNotAllowed answers requests whose path is routed under other methods.
// The engine must have HandleMethodNotAllowed set.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		RespondWithError(c, http.StatusMethodNotAllowed, "Method not allowed")
	}
}
