package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LimitBody — ограничивает размер тела запроса.
// Заявленный Content-Length больше лимита → сразу 413; иначе тело оборачивается в MaxBytesReader.
// maxBytes <= 0 — без ограничения.
func LimitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// IsBodyTooLarge — ошибка чтения тела вызвана превышением лимита LimitBody.
func IsBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
