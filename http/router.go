package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Projection *ProjectionHandler
	Strategy   *StrategyHandler
	Limiter    *RateLimiter
	Log        *zap.Logger
}

// NewRouter wires the calculator endpoints. Every call recomputes from the
// request body; nothing is kept between requests apart from the result cache.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(RequestLogger(deps.Log), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	if deps.Limiter != nil {
		v1.Use(RateLimitMiddleware(deps.Limiter))
	}

	v1.POST("/projection", deps.Projection.Project)

	strategies := v1.Group("/strategies")
	strategies.POST("/prioritize", deps.Strategy.Prioritize)
	strategies.POST("/interest", deps.Strategy.Interest)
	strategies.POST("/trajectory", deps.Strategy.Trajectory)
	strategies.POST("/compare", deps.Strategy.Compare)

	return r
}
