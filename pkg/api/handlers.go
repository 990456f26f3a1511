package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/sla"
)

type runConnectorBody struct {
	TriggeredBy   string `json:"triggered_by"`
	DryRun        bool   `json:"dry_run"`
	ForceFullSync bool   `json:"force_full_sync"`
	Limit         int    `json:"limit"`
}

// runConnectorHandler handles POST /ops/connectors/:name/run.
func (s *Server) runConnectorHandler(c *gin.Context) {
	var body runConnectorBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := s.deps.Runtime.Run(c.Request.Context(), models.RunConnectorRequest{
		ConnectorName: c.Param("name"),
		TriggeredBy:   body.TriggeredBy,
		DryRun:        body.DryRun,
		ForceFullSync: body.ForceFullSync,
		Limit:         body.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type replayBody struct {
	Limit      int   `json:"limit"`
	FailureIDs []int `json:"failure_ids"`
}

// replayHandler handles POST /ops/connectors/:name/replay. With
// failure_ids it replays exactly those rows; otherwise it claims due
// pending failures up to limit.
func (s *Server) replayHandler(c *gin.Context) {
	var body replayBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	name := c.Param("name")
	var (
		result *models.ReplayResult
		err    error
	)
	if len(body.FailureIDs) > 0 {
		result, err = s.deps.Replay.ReplaySelectedFailures(c.Request.Context(), name, body.FailureIDs)
	} else {
		result, err = s.deps.Replay.ReplayFailures(c.Request.Context(), name, body.Limit)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type repairReplayBody struct {
	Items []models.RepairFailureRequest `json:"items"`
}

// repairReplayHandler handles POST /ops/connectors/:name/repair-replay.
func (s *Server) repairReplayHandler(c *gin.Context) {
	var body repairReplayBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(body.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items is required"})
		return
	}

	result, err := s.deps.Replay.RepairAndReplayFailures(c.Request.Context(), c.Param("name"), body.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// connectorStatusHandler handles GET /ops/connectors/:name/status.
func (s *Server) connectorStatusHandler(c *gin.Context) {
	status, err := s.deps.Connectors.ConnectorStatus(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// slaEvaluateHandler handles GET /ops/sla/evaluate: a read-only pass
// that reports breaches without mutating alert state.
func (s *Server) slaEvaluateHandler(c *gin.Context) {
	evaluations, err := s.deps.SLAMonitor.EvaluateSLA(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"evaluations": evaluations})
}

type slaSyncBody struct {
	TriggeredBy string `json:"triggered_by"`
}

// slaSyncHandler handles POST /ops/sla/sync.
func (s *Server) slaSyncHandler(c *gin.Context) {
	var body slaSyncBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	req := sla.SyncRequest{TriggeredBy: body.TriggeredBy}
	if s.deps.SLAConfig != nil {
		req.CooldownSeconds = s.deps.SLAConfig.CooldownSeconds
		req.WarningRepeatEscalate = s.deps.SLAConfig.WarningRepeatEscalate
		req.CriticalRepeatEscalate = s.deps.SLAConfig.CriticalRepeatEscalate
	}
	result, err := s.deps.SLAMonitor.SyncSLAAlerts(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// driftCheckHandler handles POST /ops/nlp/drift-check.
func (s *Server) driftCheckHandler(c *gin.Context) {
	var req models.DriftCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.deps.Governance.DriftCheck(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// driftMonitorHandler handles GET /ops/nlp/drift-monitor.
func (s *Server) driftMonitorHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	lookback, _ := strconv.Atoi(c.DefaultQuery("lookback_days", "-1"))

	result, err := s.deps.Governance.DriftMonitor(c.Request.Context(), c.Query("source"), limit, lookback)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
