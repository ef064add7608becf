package main

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"lg/vitality-twin-api/vitality"
)

// Handler holds shared dependencies for all route handlers.
type Handler struct {
	sessions *sessionStore
	log      *zap.Logger

	// picker chooses the fallback prescription; nil uses the global source.
	picker          vitality.Picker
	processingDelay time.Duration
	now             func() time.Time
}

func newHandler(sessions *sessionStore, log *zap.Logger, processingDelay time.Duration) *Handler {
	return &Handler{
		sessions:        sessions,
		log:             log,
		processingDelay: processingDelay,
		now:             time.Now,
	}
}

/* ─── Response helpers ───────────────────────────────────────────────── */

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// bindingMessage turns a bind/validation error into a client-facing message
// naming the first offending field.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must have at least %s entry", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

var registerJSONNames sync.Once

// useJSONFieldNames makes validation errors report the JSON name of a field
// ("vitaminD") instead of the Go name ("VitaminD").
func useJSONFieldNames() {
	registerJSONNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

/* ─── Middleware ─────────────────────────────────────────────────────── */

// requestLogger logs every request once it has been served.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// FullPath is empty when no route matched.
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		log.Info("request completed", fields...)
	}
}

// sessionMiddleware resolves :id to a stored assessment and sets it on the
// context under "assessment". Unknown IDs stop the chain with 404.
func (h *Handler) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		a, err := h.sessions.get(c.Param("id"))
		if err != nil {
			apiError(c, http.StatusNotFound, err.Error())
			c.Abort()
			return
		}
		c.Set("assessment", a)
		c.Next()
	}
}

// currentAssessment returns the assessment loaded by sessionMiddleware.
func currentAssessment(c *gin.Context) assessment {
	return c.MustGet("assessment").(assessment)
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// newRouter builds the engine with recovery, request logging and all routes.
func newRouter(h *Handler) *gin.Engine {
	useJSONFieldNames()

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(h.log))
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)
	return router
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.GET("/quests", h.getQuests)
	api.POST("/assessments", h.createAssessment)
	api.POST("/lab-reports/recommendations", h.labRecommendations)

	// Routes scoped to one stored assessment
	sess := api.Group("/assessments/:id", h.sessionMiddleware())
	sess.GET("", h.getAssessment)
	sess.DELETE("", h.deleteAssessment)
	sess.GET("/dashboard", h.getDashboard)
	sess.GET("/projection", h.getProjection)
	sess.GET("/trend", h.getTrend)
	sess.GET("/marketplace", h.getMarketplace)
	sess.POST("/quests/:index/start", h.startQuest)
	sess.POST("/quests/:index/complete", h.completeQuest)
}
