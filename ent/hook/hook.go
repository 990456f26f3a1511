// Code generated by ent, DO NOT EDIT.

package hook

import (
	"context"
	"fmt"

	"github.com/quantmuse/eventcore/ent"
)

// The AuditLogFunc type is an adapter to allow the use of ordinary
// function as AuditLog mutator.
type AuditLogFunc func(context.Context, *ent.AuditLogMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f AuditLogFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.AuditLogMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.AuditLogMutation", m)
}

// The ConnectorFunc type is an adapter to allow the use of ordinary
// function as Connector mutator.
type ConnectorFunc func(context.Context, *ent.ConnectorMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ConnectorFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ConnectorMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ConnectorMutation", m)
}

// The ConnectorCheckpointFunc type is an adapter to allow the use of ordinary
// function as ConnectorCheckpoint mutator.
type ConnectorCheckpointFunc func(context.Context, *ent.ConnectorCheckpointMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ConnectorCheckpointFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ConnectorCheckpointMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ConnectorCheckpointMutation", m)
}

// The ConnectorFailureFunc type is an adapter to allow the use of ordinary
// function as ConnectorFailure mutator.
type ConnectorFailureFunc func(context.Context, *ent.ConnectorFailureMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ConnectorFailureFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ConnectorFailureMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ConnectorFailureMutation", m)
}

// The ConnectorRunFunc type is an adapter to allow the use of ordinary
// function as ConnectorRun mutator.
type ConnectorRunFunc func(context.Context, *ent.ConnectorRunMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ConnectorRunFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ConnectorRunMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ConnectorRunMutation", m)
}

// The EventRecordFunc type is an adapter to allow the use of ordinary
// function as EventRecord mutator.
type EventRecordFunc func(context.Context, *ent.EventRecordMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f EventRecordFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.EventRecordMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.EventRecordMutation", m)
}

// The EventSourceFunc type is an adapter to allow the use of ordinary
// function as EventSource mutator.
type EventSourceFunc func(context.Context, *ent.EventSourceMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f EventSourceFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.EventSourceMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.EventSourceMutation", m)
}

// The NLPConsensusFunc type is an adapter to allow the use of ordinary
// function as NLPConsensus mutator.
type NLPConsensusFunc func(context.Context, *ent.NLPConsensusMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f NLPConsensusFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.NLPConsensusMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.NLPConsensusMutation", m)
}

// The NLPDriftSnapshotFunc type is an adapter to allow the use of ordinary
// function as NLPDriftSnapshot mutator.
type NLPDriftSnapshotFunc func(context.Context, *ent.NLPDriftSnapshotMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f NLPDriftSnapshotFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.NLPDriftSnapshotMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.NLPDriftSnapshotMutation", m)
}

// The NLPFeedbackFunc type is an adapter to allow the use of ordinary
// function as NLPFeedback mutator.
type NLPFeedbackFunc func(context.Context, *ent.NLPFeedbackMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f NLPFeedbackFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.NLPFeedbackMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.NLPFeedbackMutation", m)
}

// The NLPRulesetFunc type is an adapter to allow the use of ordinary
// function as NLPRuleset mutator.
type NLPRulesetFunc func(context.Context, *ent.NLPRulesetMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f NLPRulesetFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.NLPRulesetMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.NLPRulesetMutation", m)
}

// The SLAAlertStateFunc type is an adapter to allow the use of ordinary
// function as SLAAlertState mutator.
type SLAAlertStateFunc func(context.Context, *ent.SLAAlertStateMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SLAAlertStateFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SLAAlertStateMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SLAAlertStateMutation", m)
}

// The SLAHistoryFunc type is an adapter to allow the use of ordinary
// function as SLAHistory mutator.
type SLAHistoryFunc func(context.Context, *ent.SLAHistoryMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SLAHistoryFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SLAHistoryMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SLAHistoryMutation", m)
}

// The SourceBudgetFunc type is an adapter to allow the use of ordinary
// function as SourceBudget mutator.
type SourceBudgetFunc func(context.Context, *ent.SourceBudgetMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SourceBudgetFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SourceBudgetMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SourceBudgetMutation", m)
}

// The SourceCredentialCursorFunc type is an adapter to allow the use of ordinary
// function as SourceCredentialCursor mutator.
type SourceCredentialCursorFunc func(context.Context, *ent.SourceCredentialCursorMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SourceCredentialCursorFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SourceCredentialCursorMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SourceCredentialCursorMutation", m)
}

// The SourceStateFunc type is an adapter to allow the use of ordinary
// function as SourceState mutator.
type SourceStateFunc func(context.Context, *ent.SourceStateMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SourceStateFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SourceStateMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SourceStateMutation", m)
}

// Condition is a hook condition function.
type Condition func(context.Context, ent.Mutation) bool

// And groups conditions with the AND operator.
func And(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if !first(ctx, m) || !second(ctx, m) {
			return false
		}
		for _, cond := range rest {
			if !cond(ctx, m) {
				return false
			}
		}
		return true
	}
}

// Or groups conditions with the OR operator.
func Or(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if first(ctx, m) || second(ctx, m) {
			return true
		}
		for _, cond := range rest {
			if cond(ctx, m) {
				return true
			}
		}
		return false
	}
}

// Not negates a given condition.
func Not(cond Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		return !cond(ctx, m)
	}
}

// HasOp is a condition testing mutation operation.
func HasOp(op ent.Op) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		return m.Op().Is(op)
	}
}

// HasAddedFields is a condition validating `.AddedField` on fields.
func HasAddedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.AddedField(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.AddedField(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasClearedFields is a condition validating `.FieldCleared` on fields.
func HasClearedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if exists := m.FieldCleared(field); !exists {
			return false
		}
		for _, field := range fields {
			if exists := m.FieldCleared(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasFields is a condition validating `.Field` on fields.
func HasFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.Field(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.Field(field); !exists {
				return false
			}
		}
		return true
	}
}

// If executes the given hook under condition.
//
//	hook.If(ComputeAverage, And(HasFields(...), HasAddedFields(...)))
func If(hk ent.Hook, cond Condition) ent.Hook {
	return func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if cond(ctx, m) {
				return hk(next).Mutate(ctx, m)
			}
			return next.Mutate(ctx, m)
		})
	}
}

// On executes the given hook only for the given operation.
//
//	hook.On(Log, ent.Delete|ent.Create)
func On(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, HasOp(op))
}

// Unless skips the given hook only for the given operation.
//
//	hook.Unless(Log, ent.Update|ent.UpdateOne)
func Unless(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, Not(HasOp(op)))
}

// FixedError is a hook returning a fixed error.
func FixedError(err error) ent.Hook {
	return func(ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(context.Context, ent.Mutation) (ent.Value, error) {
			return nil, err
		})
	}
}

// Reject returns a hook that rejects all operations that match op.
//
//	func (T) Hooks() []ent.Hook {
//		return []ent.Hook{
//			Reject(ent.Delete|ent.Update),
//		}
//	}
func Reject(op ent.Op) ent.Hook {
	hk := FixedError(fmt.Errorf("%s operation is not allowed", op))
	return On(hk, op)
}

// Chain acts as a list of hooks and is effectively immutable.
// Once created, it will always hold the same set of hooks in the same order.
type Chain struct {
	hooks []ent.Hook
}

// NewChain creates a new chain of hooks.
func NewChain(hooks ...ent.Hook) Chain {
	return Chain{append([]ent.Hook(nil), hooks...)}
}

// Hook chains the list of hooks and returns the final hook.
func (c Chain) Hook() ent.Hook {
	return func(mutator ent.Mutator) ent.Mutator {
		for i := len(c.hooks) - 1; i >= 0; i-- {
			mutator = c.hooks[i](mutator)
		}
		return mutator
	}
}

// Append extends a chain, adding the specified hook
// as the last ones in the mutation flow.
func (c Chain) Append(hooks ...ent.Hook) Chain {
	newHooks := make([]ent.Hook, 0, len(c.hooks)+len(hooks))
	newHooks = append(newHooks, c.hooks...)
	newHooks = append(newHooks, hooks...)
	return Chain{newHooks}
}

// Extend extends a chain, adding the specified chain
// as the last ones in the mutation flow.
func (c Chain) Extend(chain Chain) Chain {
	return c.Append(chain.hooks...)
}
