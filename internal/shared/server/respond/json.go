// Package respond centralizes the JSON response shapes the API emits,
// so handlers never build ad-hoc envelopes.
package respond

import "github.com/gin-gonic/gin"

// JSON writes the payload as JSON with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}
