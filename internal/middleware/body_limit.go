package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodySize borne la taille du corps de requête (uploads multipart).
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
