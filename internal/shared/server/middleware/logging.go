package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"skillmatrix-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		reqID := RequestIDFromContext(c)

		resumeCount, _ := c.Get("resumeCount")
		jobDescriptionCount, _ := c.Get("jobDescriptionCount")
		matchCount, _ := c.Get("matchCount")

		telemetry.Info("request.complete", map[string]any{
			"request_id":            reqID,
			"method":                c.Request.Method,
			"path":                  c.Request.URL.Path,
			"status":                status,
			"duration_ms":           float64(latency.Microseconds()) / 1000.0,
			"resume_count":          resumeCount,
			"job_description_count": jobDescriptionCount,
			"match_count":           matchCount,
			"client_ip":             c.ClientIP(),
			"user_agent":            c.Request.UserAgent(),
		})
	}
}
