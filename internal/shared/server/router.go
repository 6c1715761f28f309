package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillmatrix-backend/internal/shared/config"
	"skillmatrix-backend/internal/shared/server/middleware"
	"skillmatrix-backend/internal/shared/server/respond"
)

// RouteRegistrar attaches a handler's routes to a router group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config            config.Config
	SubmissionHandler RouteRegistrar
	DocumentsHandler  RouteRegistrar
	MatchesHandler    RouteRegistrar
	EventsHandler     RouteRegistrar
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	for _, h := range []RouteRegistrar{
		deps.SubmissionHandler,
		deps.DocumentsHandler,
		deps.MatchesHandler,
		deps.EventsHandler,
	} {
		if h != nil {
			h.RegisterRoutes(api)
		}
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
