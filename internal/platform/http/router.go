package http

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hubzz/preview-api/internal/app/controllers"
	"github.com/hubzz/preview-api/internal/platform/middleware"
)

// RouterConfig carries everything the HTTP surface needs.
type RouterConfig struct {
	EventCtrl *controllers.EventController
	GroupCtrl *controllers.GroupController
	UserCtrl  *controllers.UserController
	StubCtrl  *controllers.StubController

	Logger       *zap.Logger
	Env          string
	AllowOrigins []string
	RateLimitRPS int
}

// NewRouter builds the gin engine: middleware chain, health probe, and one
// route per domain client operation.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(cfg.Logger))

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowOrigins) == 0 || (len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	r.Use(cors.New(corsCfg))

	if cfg.RateLimitRPS > 0 {
		store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
			Rate:  time.Second,
			Limit: uint(cfg.RateLimitRPS),
		})
		r.Use(ratelimit.RateLimiter(store, &ratelimit.Options{
			ErrorHandler: func(c *gin.Context, info ratelimit.Info) {
				c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			},
			KeyFunc: func(c *gin.Context) string { return c.ClientIP() },
		}))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/events/:eventId", cfg.EventCtrl.Get)
		api.GET("/events/:eventId/stages", cfg.EventCtrl.Stages)
		api.GET("/events/:eventId/stream-queue", cfg.EventCtrl.StreamQueue)
		api.GET("/events/:eventId/drop-in", cfg.EventCtrl.DropIn)
		api.GET("/groups/:groupId", cfg.GroupCtrl.Profile)
		api.GET("/groups/:groupId/members", cfg.GroupCtrl.Members)
		api.GET("/users/:userId/tickets", cfg.UserCtrl.Tickets)
		api.GET("/users/:userId/notifications", cfg.UserCtrl.Notifications)
		api.GET("/stubs/:stubId", cfg.StubCtrl.Get)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
	})

	return r
}
