package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minhtrandev/meeting-notes/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	meetingHandler   *Meeting
	summarizeHandler *Summarize
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, summarizeHandler *Summarize) *Router {
	return &Router{
		cfg:              cfg,
		meetingHandler:   meetingHandler,
		summarizeHandler: summarizeHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Meeting CRUD
	api := e.Group("/api")
	rt.setupMeetingRoutes(api)

	// Summarization
	e.POST("/summarize", rt.summarizeHandler.Summarize)
}

// setupMeetingRoutes configures meeting CRUD routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	meetings.GET("", rt.meetingHandler.ListMeetings)
	meetings.POST("", rt.meetingHandler.CreateMeeting)
	meetings.GET("/:id", rt.meetingHandler.GetMeeting)
	meetings.DELETE("/:id", rt.meetingHandler.DeleteMeeting)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
