package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-notes-analyzer/pkg/config"
)

// Version is reported by /health
const Version = "1.0.0"

// Router holds all handlers
type Router struct {
	cfg          *config.Config
	notesHandler *Notes
	authMW       echo.MiddlewareFunc
	metrics      http.Handler
}

// NewRouter creates a new router. authMW may be nil, which leaves /v1 open.
func NewRouter(cfg *config.Config, notesHandler *Notes, authMW echo.MiddlewareFunc) *Router {
	return &Router{
		cfg:          cfg,
		notesHandler: notesHandler,
		authMW:       authMW,
		metrics:      promhttp.Handler(),
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/metrics", echo.WrapHandler(rt.metrics))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")
	if rt.authMW != nil {
		v1.Use(rt.authMW)
	}

	rt.setupNotesRoutes(v1)
}

// setupNotesRoutes configures the analysis routes
func (rt *Router) setupNotesRoutes(g *echo.Group) {
	notesGroup := g.Group("/notes")

	notesGroup.POST("/:id/analysis", rt.notesHandler.Analyze)
	notesGroup.POST("/:id/analysis/object", rt.notesHandler.AnalyzeObject)
	notesGroup.GET("/:id/analysis", rt.notesHandler.Get)
	notesGroup.DELETE("/:id/analysis", rt.notesHandler.Delete)
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
		Version:     Version,
	})
}
