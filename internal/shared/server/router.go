package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resumeai-backend/internal/ats"
	"resumeai-backend/internal/exports"
	"resumeai-backend/internal/imports"
	"resumeai-backend/internal/payments"
	"resumeai-backend/internal/resumes"
	"resumeai-backend/internal/shared/config"
	"resumeai-backend/internal/shared/metrics"
	"resumeai-backend/internal/shared/server/middleware"
	"resumeai-backend/internal/shared/server/respond"
	"resumeai-backend/internal/suggestions"
	"resumeai-backend/internal/templates"
	"resumeai-backend/internal/users"
)

// RouterDeps carries the feature handlers into the router. Nil handlers
// are skipped, which keeps partial wiring usable in tests.
type RouterDeps struct {
	Config             config.Config
	UsersHandler       *users.Handler
	ResumesHandler     *resumes.Handler
	TemplatesHandler   *templates.Handler
	PaymentsHandler    *payments.Handler
	SuggestionsHandler *suggestions.Handler
	ATSHandler         *ats.Handler
	ExportsHandler     *exports.Handler
	ImportsHandler     *imports.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":     {Rate: 20, Burst: 40},
			"SUGGESTIONS": {Rate: 2, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if strings.HasPrefix(c.FullPath(), "/api/suggestions/") {
				return "SUGGESTIONS"
			}
			return "DEFAULT"
		},
	}))

	api.GET("/ping", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"message": "pong"})
	})

	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}
	if deps.TemplatesHandler != nil {
		deps.TemplatesHandler.RegisterRoutes(api)
	}
	if deps.PaymentsHandler != nil {
		deps.PaymentsHandler.RegisterRoutes(api)
	}
	if deps.SuggestionsHandler != nil {
		deps.SuggestionsHandler.RegisterRoutes(api)
	}
	if deps.ATSHandler != nil {
		deps.ATSHandler.RegisterRoutes(api)
	}
	if deps.ExportsHandler != nil {
		deps.ExportsHandler.RegisterRoutes(api)
	}
	if deps.ImportsHandler != nil {
		deps.ImportsHandler.RegisterRoutes(api)
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
