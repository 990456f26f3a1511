// Package api serves the ops HTTP endpoints: liveness, readiness,
// Prometheus metrics, and manual triggers for connector runs, replay,
// SLA sync and drift checks. The research-platform data API lives
// elsewhere; this surface exists for operators and orchestrators only.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quantmuse/eventcore/pkg/config"
	"github.com/quantmuse/eventcore/pkg/connector"
	"github.com/quantmuse/eventcore/pkg/database"
	"github.com/quantmuse/eventcore/pkg/governance"
	"github.com/quantmuse/eventcore/pkg/services"
	"github.com/quantmuse/eventcore/pkg/sla"
	"github.com/quantmuse/eventcore/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// Deps carries the services exposed on the trigger routes. Nil members
// leave their routes unregistered.
type Deps struct {
	Connectors *services.ConnectorService
	Runtime    *connector.Runtime
	Replay     *connector.ReplayEngine
	SLAMonitor *sla.Monitor
	SLAConfig  *config.SLASyncConfig
	Governance *governance.Service
}

// Server is the ops HTTP server.
type Server struct {
	db         *database.Client
	deps       Deps
	engine     *gin.Engine
	httpServer *http.Server
}

// NewServer creates a new ops server and registers its routes.
func NewServer(db *database.Client, deps Deps) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	s := &Server{
		db:     db,
		deps:   deps,
		engine: engine,
	}

	engine.GET("/healthz", s.healthHandler)
	engine.GET("/readyz", s.readyHandler)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ops := engine.Group("/ops")
	if deps.Runtime != nil {
		ops.POST("/connectors/:name/run", s.runConnectorHandler)
	}
	if deps.Replay != nil {
		ops.POST("/connectors/:name/replay", s.replayHandler)
		ops.POST("/connectors/:name/repair-replay", s.repairReplayHandler)
	}
	if deps.Connectors != nil {
		ops.GET("/connectors/:name/status", s.connectorStatusHandler)
	}
	if deps.SLAMonitor != nil {
		ops.GET("/sla/evaluate", s.slaEvaluateHandler)
		ops.POST("/sla/sync", s.slaSyncHandler)
	}
	if deps.Governance != nil {
		ops.POST("/nlp/drift-check", s.driftCheckHandler)
		ops.GET("/nlp/drift-monitor", s.driftMonitorHandler)
	}

	return s
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// healthHandler handles GET /healthz. Liveness only: the process is up.
// Database state is deliberately excluded so a database outage does not
// make the orchestrator restart the pod.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  healthStatusHealthy,
		"version": version.GitCommit,
	})
}

// readyHandler handles GET /readyz. Readiness requires a database ping.
func (s *Server) readyHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := s.db.Health(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   healthStatusUnhealthy,
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   healthStatusHealthy,
		"database": dbHealth,
	})
}
