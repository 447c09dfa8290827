package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"timetable-merge/internal/pipeline"
	"timetable-merge/internal/response"
)

// Options configures the resolution API.
type Options struct {
	GinMode string
	// AllowedOrigins restricts CORS. Empty means all origins.
	AllowedOrigins []string
	// DecisionsPath is rewritten after every manual decision.
	DecisionsPath string
	// OutputPath receives the merged NS document.
	OutputPath string
}

// NewRouter configures the Gin engine serving session.
func NewRouter(session *pipeline.Session, opts Options, log zerolog.Logger) *gin.Engine {
	if opts.GinMode != "" {
		gin.SetMode(opts.GinMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	corsConfig := cors.DefaultConfig()
	if len(opts.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = opts.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(RequestLogger(log))

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	h := NewCorrelationHandler(session, opts.DecisionsPath, opts.OutputPath, log)

	api := router.Group("/api")
	{
		api.GET("/classes", h.ListClasses)
		api.GET("/classes/:class/lessons", h.ListLessons)
		api.PUT("/classes/:class/lessons/:lesson", h.Decide)
		api.GET("/check", h.Check)
		api.POST("/merge", h.Merge)
	}

	return router
}
