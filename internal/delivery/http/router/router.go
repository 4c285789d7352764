// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"receiver/config"
	"receiver/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config        *config.Config
	ScanHandler   *handler.ScanHandler
	StatusHandler *handler.StatusHandler
	TestHandler   *handler.TestHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg           *config.Config
	scanHandler   *handler.ScanHandler
	statusHandler *handler.StatusHandler
	testHandler   *handler.TestHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:           params.Config,
		scanHandler:   params.ScanHandler,
		statusHandler: params.StatusHandler,
		testHandler:   params.TestHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiGroup := e.Group("/api")
	{
		apiGroup.POST("/scans", r.scanHandler.PushScan)
		apiGroup.GET("/scans/recent", r.statusHandler.GetRecentScans)

		apiGroup.GET("/status", r.statusHandler.GetStatus)

		apiGroup.GET("/uploads/recent", r.statusHandler.GetRecentUploads)
		apiGroup.POST("/uploads/trigger", r.statusHandler.TriggerUpload)

		apiGroup.GET("/whitelist", r.statusHandler.GetWhitelist)
		apiGroup.POST("/whitelist/sync", r.statusHandler.SyncWhitelist)

		apiGroup.DELETE("/data", r.statusHandler.ClearData)
	}

	// Synthetic traffic routes, only for local pipeline validation
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.POST("/scan", r.testHandler.GenerateScan)
		}
	}
}
