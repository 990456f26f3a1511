// Package governance manages versioned NLP rulesets, drift checks and
// snapshots, the drift trend monitor, and consensus adjudication of
// multi-labeler feedback.
package governance

import (
	"context"
	"fmt"
	"time"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/nlpruleset"
	"github.com/quantmuse/eventcore/pkg/audit"
	"github.com/quantmuse/eventcore/pkg/backtest"
	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/nlp"
	"github.com/quantmuse/eventcore/pkg/services"
)

// Service is the governance facade.
type Service struct {
	client     *ent.Client
	events     *services.EventService
	comparator backtest.Comparator
	audit      *audit.Service
}

// NewService creates a new governance Service. comparator and auditSvc
// may be nil; a nil comparator disables contribution checks.
func NewService(client *ent.Client, events *services.EventService, comparator backtest.Comparator, auditSvc *audit.Service) *Service {
	return &Service{client: client, events: events, comparator: comparator, audit: auditSvc}
}

// UpsertRuleset creates or replaces a ruleset version. The rules payload
// must compile; activation is optional and atomic with the upsert.
func (s *Service) UpsertRuleset(httpCtx context.Context, req models.UpsertRulesetRequest) (int, error) {
	if _, err := nlp.Compile(req.Version, req.Rules); err != nil {
		return 0, services.NewValidationError("rules", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start ruleset transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := tx.NLPRuleset.Query().
		Where(nlpruleset.VersionEQ(req.Version)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return 0, fmt.Errorf("failed to query ruleset: %w", err)
	}

	var id int
	if existing != nil {
		update := existing.Update().SetRules(req.Rules)
		if req.Note != "" {
			update = update.SetNote(req.Note)
		}
		updated, err := update.Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to update ruleset: %w", err)
		}
		id = updated.ID
	} else {
		builder := tx.NLPRuleset.Create().
			SetVersion(req.Version).
			SetRules(req.Rules)
		if req.CreatedBy != "" {
			builder = builder.SetCreatedBy(req.CreatedBy)
		}
		if req.Note != "" {
			builder = builder.SetNote(req.Note)
		}
		created, err := builder.Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to create ruleset: %w", err)
		}
		id = created.ID
	}

	if req.Activate {
		if err := activateTx(ctx, tx, req.Version); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit ruleset: %w", err)
	}

	if s.audit != nil {
		s.audit.Emit(httpCtx, audit.TypeNLP, req.CreatedBy, map[string]interface{}{
			"action":     "upsert_ruleset",
			"version":    req.Version,
			"rule_count": len(req.Rules),
			"activated":  req.Activate,
		})
	}
	return id, nil
}

// ActivateRuleset clears every active flag and sets exactly one.
func (s *Service) ActivateRuleset(httpCtx context.Context, version string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start activation transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := activateTx(ctx, tx, version); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit activation: %w", err)
	}

	if s.audit != nil {
		s.audit.Emit(httpCtx, audit.TypeNLP, "", map[string]interface{}{
			"action":  "activate_ruleset",
			"version": version,
		})
	}
	return nil
}

func activateTx(ctx context.Context, tx *ent.Tx, version string) error {
	exists, err := tx.NLPRuleset.Query().
		Where(nlpruleset.VersionEQ(version)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check ruleset: %w", err)
	}
	if !exists {
		return fmt.Errorf("ruleset %q: %w", version, services.ErrNotFound)
	}
	if _, err := tx.NLPRuleset.Update().
		Where(nlpruleset.IsActiveEQ(true)).
		SetIsActive(false).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to clear active flags: %w", err)
	}
	if _, err := tx.NLPRuleset.Update().
		Where(nlpruleset.VersionEQ(version)).
		SetIsActive(true).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to set active flag: %w", err)
	}
	return nil
}

// ListRulesets returns all versions, newest first.
func (s *Service) ListRulesets(ctx context.Context) ([]*ent.NLPRuleset, error) {
	rulesets, err := s.client.NLPRuleset.Query().
		Order(ent.Desc(nlpruleset.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rulesets: %w", err)
	}
	return rulesets, nil
}

// GetActiveRuleset returns the single active row, or nil when none is.
func (s *Service) GetActiveRuleset(ctx context.Context) (*ent.NLPRuleset, error) {
	active, err := s.client.NLPRuleset.Query().
		Where(nlpruleset.IsActiveEQ(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load active ruleset: %w", err)
	}
	return active, nil
}

// GetRuleset returns one version, ErrNotFound when missing.
func (s *Service) GetRuleset(ctx context.Context, version string) (*ent.NLPRuleset, error) {
	ruleset, err := s.client.NLPRuleset.Query().
		Where(nlpruleset.VersionEQ(version)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("ruleset %q: %w", version, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load ruleset: %w", err)
	}
	return ruleset, nil
}
