package services

import (
	"context"
	"fmt"
	"time"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/eventsource"
	"github.com/quantmuse/eventcore/pkg/audit"
	"github.com/quantmuse/eventcore/pkg/models"
)

// SourceService manages the event source registry.
type SourceService struct {
	client *ent.Client
	audit  *audit.Service
}

// NewSourceService creates a new SourceService. auditSvc may be nil.
func NewSourceService(client *ent.Client, auditSvc *audit.Service) *SourceService {
	return &SourceService{client: client, audit: auditSvc}
}

// RegisterSource upserts a source by name and returns its id.
func (s *SourceService) RegisterSource(httpCtx context.Context, req models.RegisterSourceRequest) (int, error) {
	if req.SourceName == "" {
		return 0, NewValidationError("source_name", "required")
	}
	sourceType := eventsource.SourceType(req.SourceType)
	if req.SourceType == "" {
		sourceType = eventsource.SourceTypeAnnouncement
	} else if err := eventsource.SourceTypeValidator(sourceType); err != nil {
		return 0, NewValidationError("source_type", fmt.Sprintf("unknown value %q", req.SourceType))
	}
	if req.ReliabilityScore < 0 || req.ReliabilityScore > 1 {
		return 0, NewValidationError("reliability_score", "must be within [0,1]")
	}
	if req.IngestionLagMinutes < 0 {
		return 0, NewValidationError("ingestion_lag_minutes", "must be >= 0")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.EventSource.Query().
		Where(eventsource.SourceNameEQ(req.SourceName)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return 0, fmt.Errorf("failed to query source: %w", err)
	}

	var id int
	if existing != nil {
		update := existing.Update().SetSourceType(sourceType)
		if req.Provider != "" {
			update = update.SetProvider(req.Provider)
		}
		if req.Timezone != "" {
			update = update.SetTimezone(req.Timezone)
		}
		if req.ReliabilityScore > 0 {
			update = update.SetReliabilityScore(req.ReliabilityScore)
		}
		if req.IngestionLagMinutes > 0 {
			update = update.SetIngestionLagMinutes(req.IngestionLagMinutes)
		}
		if req.Note != "" {
			update = update.SetNote(req.Note)
		}
		updated, err := update.Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to update source: %w", err)
		}
		id = updated.ID
	} else {
		builder := s.client.EventSource.Create().
			SetSourceName(req.SourceName).
			SetSourceType(sourceType)
		if req.Provider != "" {
			builder = builder.SetProvider(req.Provider)
		}
		if req.Timezone != "" {
			builder = builder.SetTimezone(req.Timezone)
		}
		if req.ReliabilityScore > 0 {
			builder = builder.SetReliabilityScore(req.ReliabilityScore)
		}
		if req.IngestionLagMinutes > 0 {
			builder = builder.SetIngestionLagMinutes(req.IngestionLagMinutes)
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
			return 0, fmt.Errorf("failed to create source: %w", err)
		}
		id = created.ID
	}

	s.emitAudit(httpCtx, req, existing != nil)
	return id, nil
}

// GetSource returns a source by name, ErrNotFound when missing.
func (s *SourceService) GetSource(ctx context.Context, sourceName string) (*ent.EventSource, error) {
	source, err := s.client.EventSource.Query().
		Where(eventsource.SourceNameEQ(sourceName)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("source %q: %w", sourceName, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get source: %w", err)
	}
	return source, nil
}

// ListSources returns all registered sources, name ascending.
func (s *SourceService) ListSources(ctx context.Context) ([]*ent.EventSource, error) {
	sources, err := s.client.EventSource.Query().
		Order(ent.Asc(eventsource.FieldSourceName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	return sources, nil
}

func (s *SourceService) emitAudit(ctx context.Context, req models.RegisterSourceRequest, updated bool) {
	if s.audit == nil {
		return
	}
	s.audit.Emit(ctx, audit.TypeSource, req.CreatedBy, map[string]interface{}{
		"source_name": req.SourceName,
		"source_type": req.SourceType,
		"provider":    req.Provider,
		"updated":     updated,
	})
}
