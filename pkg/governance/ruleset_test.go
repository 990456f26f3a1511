package governance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/auditlog"
	"github.com/quantmuse/eventcore/ent/nlpruleset"
	"github.com/quantmuse/eventcore/pkg/audit"
	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/services"
	testdb "github.com/quantmuse/eventcore/test/database"
)

func setupGovernance(t *testing.T) (*ent.Client, *Service, *services.EventService) {
	t.Helper()
	db := testdb.NewTestClient(t)
	sources := services.NewSourceService(db.Client, nil)
	events := services.NewEventService(db.Client)

	_, err := sources.RegisterSource(context.Background(), models.RegisterSourceRequest{
		SourceName: "cninfo",
	})
	require.NoError(t, err)

	return db.Client, NewService(db.Client, events, nil, audit.NewService(db.Client)), events
}

func buybackRules() []models.NLPRule {
	return []models.NLPRule{{
		RuleID:    "buyback",
		EventType: "share_buyback",
		Polarity:  "positive",
		Weight:    0.7,
		Patterns:  []string{"回购"},
	}}
}

func TestUpsertRuleset_RejectsBadRules(t *testing.T) {
	_, svc, _ := setupGovernance(t)
	ctx := context.Background()

	overweight := buybackRules()
	overweight[0].Weight = 1.5
	_, err := svc.UpsertRuleset(ctx, models.UpsertRulesetRequest{Version: "v1", Rules: overweight})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	patternless := buybackRules()
	patternless[0].Patterns = nil
	_, err = svc.UpsertRuleset(ctx, models.UpsertRulesetRequest{Version: "v1", Rules: patternless})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	// A rejected payload never reaches the table.
	exists, err := svc.client.NLPRuleset.Query().Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpsertRuleset_CreateUpdateActivate(t *testing.T) {
	client, svc, _ := setupGovernance(t)
	ctx := context.Background()

	id, err := svc.UpsertRuleset(ctx, models.UpsertRulesetRequest{
		Version:   "v1",
		Rules:     buybackRules(),
		CreatedBy: "analyst",
	})
	require.NoError(t, err)

	// Nothing is active until asked for.
	active, err := svc.GetActiveRuleset(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	// Upserting the same version replaces the rules in place.
	widened := append(buybackRules(), models.NLPRule{
		RuleID:    "dividend",
		EventType: "dividend",
		Polarity:  "positive",
		Weight:    0.5,
		Patterns:  []string{"分红", "派息"},
	})
	again, err := svc.UpsertRuleset(ctx, models.UpsertRulesetRequest{
		Version: "v1",
		Rules:   widened,
		Note:    "add dividend coverage",
	})
	require.NoError(t, err)
	assert.Equal(t, id, again)

	row, err := svc.GetRuleset(ctx, "v1")
	require.NoError(t, err)
	assert.Len(t, row.Rules, 2)
	assert.Equal(t, "add dividend coverage", row.Note)
	assert.Equal(t, "analyst", row.CreatedBy)

	// Atomic upsert-and-activate of a second version.
	_, err = svc.UpsertRuleset(ctx, models.UpsertRulesetRequest{
		Version:  "v2",
		Rules:    buybackRules(),
		Activate: true,
	})
	require.NoError(t, err)

	active, err = svc.GetActiveRuleset(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "v2", active.Version)

	// Switching back clears v2's flag; exactly one row stays active.
	require.NoError(t, svc.ActivateRuleset(ctx, "v1"))

	active, err = svc.GetActiveRuleset(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "v1", active.Version)

	activeCount, err := client.NLPRuleset.Query().
		Where(nlpruleset.IsActiveEQ(true)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, activeCount)

	emissions, err := client.AuditLog.Query().
		Where(auditlog.EventTypeEQ(audit.TypeNLP)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, emissions)
}

func TestActivateRuleset_MissingVersion(t *testing.T) {
	_, svc, _ := setupGovernance(t)

	err := svc.ActivateRuleset(context.Background(), "ghost")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetRuleset_Missing(t *testing.T) {
	_, svc, _ := setupGovernance(t)

	_, err := svc.GetRuleset(context.Background(), "ghost")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestListRulesets_NewestFirst(t *testing.T) {
	client, svc, _ := setupGovernance(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, client.NLPRuleset.Create().
		SetVersion("v1").
		SetRules(buybackRules()).
		SetCreatedAt(now.Add(-2*time.Hour)).
		Exec(ctx))
	require.NoError(t, client.NLPRuleset.Create().
		SetVersion("v2").
		SetRules(buybackRules()).
		SetCreatedAt(now.Add(-time.Hour)).
		Exec(ctx))

	rulesets, err := svc.ListRulesets(ctx)
	require.NoError(t, err)
	require.Len(t, rulesets, 2)
	assert.Equal(t, "v2", rulesets[0].Version)
	assert.Equal(t, "v1", rulesets[1].Version)
}
