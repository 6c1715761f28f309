package events

import (
	"io"

	"github.com/gin-gonic/gin"
)

// Handler serves the live update stream over server-sent events.
type Handler struct {
	Broker *Broker
}

// NewHandler constructs a Handler.
func NewHandler(broker *Broker) *Handler {
	return &Handler{Broker: broker}
}

// RegisterRoutes attaches the event stream route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/events", h.stream)
}

// stream holds the connection open and forwards broker events as SSE
// messages until the client disconnects.
func (h *Handler) stream(c *gin.Context) {
	ch := h.Broker.Subscribe()
	defer h.Broker.Unsubscribe(ch)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, ev.Data)
			return true
		}
	})
}
