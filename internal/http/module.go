package http

import (
	"terrain_alert/platform/config"
	"terrain_alert/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Module represents a front-end surface that can register its HTTP routes.
type Module interface {
	// Name returns the module's identifier for logging purposes.
	Name() string
	// RegisterRoutes mounts the module's routes using the shared RouterContext.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext provides shared dependencies for module route registration.
type RouterContext struct {
	// Engine is the root Gin engine, used for page routes.
	Engine *gin.Engine
	// V1 is the /api/v1 route group.
	V1 *gin.RouterGroup
	// Config is the HTTP configuration (scoped access).
	Config config.HTTPConfig
	// RateLimiter throttles routes that reach the prediction endpoint.
	RateLimiter *httpkit.IPRateLimiter
}
