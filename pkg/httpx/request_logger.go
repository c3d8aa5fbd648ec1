package httpx

import (
	"time"

	"github.com/Gunvolt24/csvgate/internal/ports"
	"github.com/gin-gonic/gin"
)

// OutcomeKey — ключ gin.Context, под которым хендлер оставляет результат проверки для лога.
const OutcomeKey = "preflight_outcome"

// RequestLogger — middleware для логирования HTTP-запросов.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// не логируем /metrics, /ping
		switch c.FullPath() {
		case "/metrics", "/ping":
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		outcome := c.GetString(OutcomeKey)
		if outcome == "" {
			outcome = "-"
		}

		log.Infof(
			c.Request.Context(),
			"request method=%s path=%s status=%d outcome=%s ip=%s duration=%s size=%d",
			c.Request.Method,
			path,
			c.Writer.Status(),
			outcome,
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
