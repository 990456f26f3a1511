package services

import (
	"context"
	"fmt"
	"time"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/connector"
	"github.com/quantmuse/eventcore/ent/connectorcheckpoint"
	"github.com/quantmuse/eventcore/ent/connectorfailure"
	"github.com/quantmuse/eventcore/pkg/adapters"
	"github.com/quantmuse/eventcore/pkg/audit"
	"github.com/quantmuse/eventcore/pkg/models"
)

// ConnectorService manages the connector registry and its monitor views.
type ConnectorService struct {
	client  *ent.Client
	sources *SourceService
	audit   *audit.Service
}

// NewConnectorService creates a new ConnectorService. auditSvc may be nil.
func NewConnectorService(client *ent.Client, sources *SourceService, auditSvc *audit.Service) *ConnectorService {
	return &ConnectorService{client: client, sources: sources, audit: auditSvc}
}

// RegisterConnector upserts a connector by name. The referenced source
// must already be registered; the connector type must have an adapter.
func (s *ConnectorService) RegisterConnector(httpCtx context.Context, req models.RegisterConnectorRequest) (int, error) {
	if req.ConnectorName == "" {
		return 0, NewValidationError("connector_name", "required")
	}
	if req.SourceName == "" {
		return 0, NewValidationError("source_name", "required")
	}
	switch req.ConnectorType {
	case adapters.TypeFile, adapters.TypeHTTPJSON, adapters.TypeTushare, adapters.TypeAkshare:
	default:
		return 0, NewValidationError("connector_type", fmt.Sprintf("unknown value %q", req.ConnectorType))
	}
	if req.FetchLimit < 0 {
		return 0, NewValidationError("fetch_limit", "must be > 0")
	}
	if req.PollIntervalMinutes < 0 {
		return 0, NewValidationError("poll_interval_minutes", "must be > 0")
	}
	if req.ReplayBackoffSeconds < 0 {
		return 0, NewValidationError("replay_backoff_seconds", "must be > 0")
	}
	if req.MaxRetry < 0 {
		return 0, NewValidationError("max_retry", "must be > 0")
	}

	if _, err := s.sources.GetSource(httpCtx, req.SourceName); err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.Connector.Query().
		Where(connector.ConnectorNameEQ(req.ConnectorName)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return 0, fmt.Errorf("failed to query connector: %w", err)
	}

	var id int
	if existing != nil {
		update := existing.Update().
			SetSourceName(req.SourceName).
			SetConnectorType(req.ConnectorType)
		if req.Enabled != nil {
			update = update.SetEnabled(*req.Enabled)
		}
		if req.FetchLimit > 0 {
			update = update.SetFetchLimit(req.FetchLimit)
		}
		if req.PollIntervalMinutes > 0 {
			update = update.SetPollIntervalMinutes(req.PollIntervalMinutes)
		}
		if req.ReplayBackoffSeconds > 0 {
			update = update.SetReplayBackoffSeconds(req.ReplayBackoffSeconds)
		}
		if req.MaxRetry > 0 {
			update = update.SetMaxRetry(req.MaxRetry)
		}
		if req.Config != nil {
			update = update.SetConfig(req.Config)
		}
		if req.Note != "" {
			update = update.SetNote(req.Note)
		}
		updated, err := update.Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to update connector: %w", err)
		}
		id = updated.ID
	} else {
		builder := s.client.Connector.Create().
			SetConnectorName(req.ConnectorName).
			SetSourceName(req.SourceName).
			SetConnectorType(req.ConnectorType)
		if req.Enabled != nil {
			builder = builder.SetEnabled(*req.Enabled)
		}
		if req.FetchLimit > 0 {
			builder = builder.SetFetchLimit(req.FetchLimit)
		}
		if req.PollIntervalMinutes > 0 {
			builder = builder.SetPollIntervalMinutes(req.PollIntervalMinutes)
		}
		if req.ReplayBackoffSeconds > 0 {
			builder = builder.SetReplayBackoffSeconds(req.ReplayBackoffSeconds)
		}
		if req.MaxRetry > 0 {
			builder = builder.SetMaxRetry(req.MaxRetry)
		}
		if req.Config != nil {
			builder = builder.SetConfig(req.Config)
		}
		if req.CreatedBy != "" {
			builder = builder.SetCreatedBy(req.CreatedBy)
		}
		if req.Note != "" {
			builder = builder.SetNote(req.Note)
		}
		created, err := builder.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return 0, ErrAlreadyExists
			}
			return 0, fmt.Errorf("failed to create connector: %w", err)
		}
		id = created.ID
	}

	if s.audit != nil {
		s.audit.Emit(httpCtx, audit.TypeConnector, req.CreatedBy, map[string]interface{}{
			"action":         "register",
			"connector_name": req.ConnectorName,
			"source_name":    req.SourceName,
			"connector_type": req.ConnectorType,
			"updated":        existing != nil,
		})
	}
	return id, nil
}

// GetConnector returns a connector by name, ErrNotFound when missing.
func (s *ConnectorService) GetConnector(ctx context.Context, connectorName string) (*ent.Connector, error) {
	c, err := s.client.Connector.Query().
		Where(connector.ConnectorNameEQ(connectorName)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("connector %q: %w", connectorName, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get connector: %w", err)
	}
	return c, nil
}

// ListConnectors returns connectors, optionally only enabled ones.
func (s *ConnectorService) ListConnectors(ctx context.Context, enabledOnly bool) ([]*ent.Connector, error) {
	query := s.client.Connector.Query()
	if enabledOnly {
		query = query.Where(connector.EnabledEQ(true))
	}
	connectors, err := query.
		Order(ent.Asc(connector.FieldConnectorName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list connectors: %w", err)
	}
	return connectors, nil
}

// SetEnabled flips the enabled flag of one connector.
func (s *ConnectorService) SetEnabled(ctx context.Context, connectorName string, enabled bool) error {
	n, err := s.client.Connector.Update().
		Where(connector.ConnectorNameEQ(connectorName)).
		SetEnabled(enabled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update connector: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("connector %q: %w", connectorName, ErrNotFound)
	}
	return nil
}

// ConnectorStatus assembles the monitor snapshot for one connector:
// checkpoint position plus pending and dead failure backlogs.
func (s *ConnectorService) ConnectorStatus(ctx context.Context, connectorName string) (*models.ConnectorStatus, error) {
	c, err := s.GetConnector(ctx, connectorName)
	if err != nil {
		return nil, err
	}

	status := &models.ConnectorStatus{
		ConnectorName: c.ConnectorName,
		SourceName:    c.SourceName,
		Enabled:       c.Enabled,
	}

	cp, err := s.client.ConnectorCheckpoint.Query().
		Where(connectorcheckpoint.ConnectorNameEQ(connectorName)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load checkpoint: %w", err)
	}
	if cp != nil {
		status.LastRunAt = cp.LastRunAt
		status.LastSuccessAt = cp.LastSuccessAt
		if cp.CheckpointCursor != nil {
			status.CheckpointCursor = *cp.CheckpointCursor
		}
	}

	pending, err := s.client.ConnectorFailure.Query().
		Where(
			connectorfailure.ConnectorNameEQ(connectorName),
			connectorfailure.StatusEQ(connectorfailure.StatusPending),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending failures: %w", err)
	}
	dead, err := s.client.ConnectorFailure.Query().
		Where(
			connectorfailure.ConnectorNameEQ(connectorName),
			connectorfailure.StatusEQ(connectorfailure.StatusDead),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count dead failures: %w", err)
	}
	status.PendingFailures = pending
	status.DeadFailures = dead
	return status, nil
}
