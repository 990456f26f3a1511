// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quantmuse/eventcore/ent/auditlog"
	"github.com/quantmuse/eventcore/ent/connector"
	"github.com/quantmuse/eventcore/ent/connectorcheckpoint"
	"github.com/quantmuse/eventcore/ent/connectorfailure"
	"github.com/quantmuse/eventcore/ent/connectorrun"
	"github.com/quantmuse/eventcore/ent/eventrecord"
	"github.com/quantmuse/eventcore/ent/eventsource"
	"github.com/quantmuse/eventcore/ent/nlpconsensus"
	"github.com/quantmuse/eventcore/ent/nlpdriftsnapshot"
	"github.com/quantmuse/eventcore/ent/nlpfeedback"
	"github.com/quantmuse/eventcore/ent/nlpruleset"
	"github.com/quantmuse/eventcore/ent/predicate"
	"github.com/quantmuse/eventcore/ent/slaalertstate"
	"github.com/quantmuse/eventcore/ent/slahistory"
	"github.com/quantmuse/eventcore/ent/sourcebudget"
	"github.com/quantmuse/eventcore/ent/sourcecredentialcursor"
	"github.com/quantmuse/eventcore/ent/sourcestate"
	"github.com/quantmuse/eventcore/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditLog               = "AuditLog"
	TypeConnector              = "Connector"
	TypeConnectorCheckpoint    = "ConnectorCheckpoint"
	TypeConnectorFailure       = "ConnectorFailure"
	TypeConnectorRun           = "ConnectorRun"
	TypeEventRecord            = "EventRecord"
	TypeEventSource            = "EventSource"
	TypeNLPConsensus           = "NLPConsensus"
	TypeNLPDriftSnapshot       = "NLPDriftSnapshot"
	TypeNLPFeedback            = "NLPFeedback"
	TypeNLPRuleset             = "NLPRuleset"
	TypeSLAAlertState          = "SLAAlertState"
	TypeSLAHistory             = "SLAHistory"
	TypeSourceBudget           = "SourceBudget"
	TypeSourceCredentialCursor = "SourceCredentialCursor"
	TypeSourceState            = "SourceState"
)

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	event_type    *string
	actor         *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id int) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *AuditLogMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *AuditLogMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *AuditLogMutation) ResetEventType() {
	m.event_type = nil
}

// SetActor sets the "actor" field.
func (m *AuditLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ClearActor clears the value of the "actor" field.
func (m *AuditLogMutation) ClearActor() {
	m.actor = nil
	m.clearedFields[auditlog.FieldActor] = struct{}{}
}

// ActorCleared returns if the "actor" field was cleared in this mutation.
func (m *AuditLogMutation) ActorCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldActor]
	return ok
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogMutation) ResetActor() {
	m.actor = nil
	delete(m.clearedFields, auditlog.FieldActor)
}

// SetPayload sets the "payload" field.
func (m *AuditLogMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *AuditLogMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *AuditLogMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.event_type != nil {
		fields = append(fields, auditlog.FieldEventType)
	}
	if m.actor != nil {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.payload != nil {
		fields = append(fields, auditlog.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldEventType:
		return m.EventType()
	case auditlog.FieldActor:
		return m.Actor()
	case auditlog.FieldPayload:
		return m.Payload()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldEventType:
		return m.OldEventType(ctx)
	case auditlog.FieldActor:
		return m.OldActor(ctx)
	case auditlog.FieldPayload:
		return m.OldPayload(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case auditlog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlog.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldActor) {
		fields = append(fields, auditlog.FieldActor)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldActor:
		m.ClearActor()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldEventType:
		m.ResetEventType()
		return nil
	case auditlog.FieldActor:
		m.ResetActor()
		return nil
	case auditlog.FieldPayload:
		m.ResetPayload()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// ConnectorMutation represents an operation that mutates the Connector nodes in the graph.
type ConnectorMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	connector_name            *string
	source_name               *string
	connector_type            *string
	enabled                   *bool
	fetch_limit               *int
	addfetch_limit            *int
	poll_interval_minutes     *int
	addpoll_interval_minutes  *int
	replay_backoff_seconds    *int
	addreplay_backoff_seconds *int
	max_retry                 *int
	addmax_retry              *int
	_config                   *map[string]interface{}
	created_by                *string
	note                      *string
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*Connector, error)
	predicates                []predicate.Connector
}

var _ ent.Mutation = (*ConnectorMutation)(nil)

// connectorOption allows management of the mutation configuration using functional options.
type connectorOption func(*ConnectorMutation)

// newConnectorMutation creates new mutation for the Connector entity.
func newConnectorMutation(c config, op Op, opts ...connectorOption) *ConnectorMutation {
	m := &ConnectorMutation{
		config:        c,
		op:            op,
		typ:           TypeConnector,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConnectorID sets the ID field of the mutation.
func withConnectorID(id int) connectorOption {
	return func(m *ConnectorMutation) {
		var (
			err   error
			once  sync.Once
			value *Connector
		)
		m.oldValue = func(ctx context.Context) (*Connector, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Connector.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConnector sets the old Connector of the mutation.
func withConnector(node *Connector) connectorOption {
	return func(m *ConnectorMutation) {
		m.oldValue = func(context.Context) (*Connector, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConnectorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConnectorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConnectorMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConnectorMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Connector.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConnectorName sets the "connector_name" field.
func (m *ConnectorMutation) SetConnectorName(s string) {
	m.connector_name = &s
}

// ConnectorName returns the value of the "connector_name" field in the mutation.
func (m *ConnectorMutation) ConnectorName() (r string, exists bool) {
	v := m.connector_name
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectorName returns the old "connector_name" field's value of the Connector entity.
// If the Connector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorMutation) OldConnectorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectorName: %w", err)
	}
	return oldValue.ConnectorName, nil
}

// ResetConnectorName resets all changes to the "connector_name" field.
func (m *ConnectorMutation) ResetConnectorName() {
	m.connector_name = nil
}

// SetSourceName sets the "source_name" field.
func (m *ConnectorMutation) SetSourceName(s string) {
	m.source_name = &s
}

// SourceName returns the value of the "source_name" field in the mutation.
func (m *ConnectorMutation) SourceName() (r string, exists bool) {
	v := m.source_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceName returns the old "source_name" field's value of the Connector entity.
// If the Connector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorMutation) OldSourceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceName: %w", err)
	}
	return oldValue.SourceName, nil
}

// ResetSourceName resets all changes to the "source_name" field.
func (m *ConnectorMutation) ResetSourceName() {
	m.source_name = nil
}

// SetConnectorType sets the "connector_type" field.
func (m *ConnectorMutation) SetConnectorType(s string) {
	m.connector_type = &s
}

// ConnectorType returns the value of the "connector_type" field in the mutation.
func (m *ConnectorMutation) ConnectorType() (r string, exists bool) {
	v := m.connector_type
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectorType returns the old "connector_type" field's value of the Connector entity.
// If the Connector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorMutation) OldConnectorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectorType: %w", err)
	}
	return oldValue.ConnectorType, nil
}

// ResetConnectorType resets all changes to the "connector_type" field.
func (m *ConnectorMutation) ResetConnectorType() {
	m.connector_type = nil
}

// SetEnabled sets the "enabled" field.
func (m *ConnectorMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ConnectorMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Connector entity.
// If the Connector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ConnectorMutation) ResetEnabled() {
	m.enabled = nil
}

// SetFetchLimit sets the "fetch_limit" field.
func (m *ConnectorMutation) SetFetchLimit(i int) {
	m.fetch_limit = &i
	m.addfetch_limit = nil
}

// FetchLimit returns the value of the "fetch_limit" field in the mutation.
func (m *ConnectorMutation) FetchLimit() (r int, exists bool) {
	v := m.fetch_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldFetchLimit returns the old "fetch_limit" field's value of the Connector entity.
// If the Connector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorMutation) OldFetchLimit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFetchLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFetchLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFetchLimit: %w", err)
	}
	return oldValue.FetchLimit, nil
}

// AddFetchLimit adds i to the "fetch_limit" field.
func (m *ConnectorMutation) AddFetchLimit(i int) {
	if m.addfetch_limit != nil {
		*m.addfetch_limit += i
	} else {
		m.addfetch_limit = &i
	}
}

// AddedFetchLimit returns the value that was added to the "fetch_limit" field in this mutation.
func (m *ConnectorMutation) AddedFetchLimit() (r int, exists bool) {
	v := m.addfetch_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetFetchLimit resets all changes to the "fetch_limit" field.
func (m *ConnectorMutation) ResetFetchLimit() {
	m.fetch_limit = nil
	m.addfetch_limit = nil
}

// SetPollIntervalMinutes sets the "poll_interval_minutes" field.
func (m *ConnectorMutation) SetPollIntervalMinutes(i int) {
	m.poll_interval_minutes = &i
	m.addpoll_interval_minutes = nil
}

// PollIntervalMinutes returns the value of the "poll_interval_minutes" field in the mutation.
func (m *ConnectorMutation) PollIntervalMinutes() (r int, exists bool) {
	v := m.poll_interval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldPollIntervalMinutes returns the old "poll_interval_minutes" field's value of the Connector entity.
// If the Connector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorMutation) OldPollIntervalMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPollIntervalMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPollIntervalMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPollIntervalMinutes: %w", err)
	}
	return oldValue.PollIntervalMinutes, nil
}

// AddPollIntervalMinutes adds i to the "poll_interval_minutes" field.
func (m *ConnectorMutation) AddPollIntervalMinutes(i int) {
	if m.addpoll_interval_minutes != nil {
		*m.addpoll_interval_minutes += i
	} else {
		m.addpoll_interval_minutes = &i
	}
}

// AddedPollIntervalMinutes returns the value that was added to the "poll_interval_minutes" field in this mutation.
func (m *ConnectorMutation) AddedPollIntervalMinutes() (r int, exists bool) {
	v := m.addpoll_interval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetPollIntervalMinutes resets all changes to the "poll_interval_minutes" field.
func (m *ConnectorMutation) ResetPollIntervalMinutes() {
	m.poll_interval_minutes = nil
	m.addpoll_interval_minutes = nil
}

// SetReplayBackoffSeconds sets the "replay_backoff_seconds" field.
func (m *ConnectorMutation) SetReplayBackoffSeconds(i int) {
	m.replay_backoff_seconds = &i
	m.addreplay_backoff_seconds = nil
}

// ReplayBackoffSeconds returns the value of the "replay_backoff_seconds" field in the mutation.
func (m *ConnectorMutation) ReplayBackoffSeconds() (r int, exists bool) {
	v := m.replay_backoff_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldReplayBackoffSeconds returns the old "replay_backoff_seconds" field's value of the Connector entity.
// If the Connector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorMutation) OldReplayBackoffSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplayBackoffSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplayBackoffSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplayBackoffSeconds: %w", err)
	}
	return oldValue.ReplayBackoffSeconds, nil
}

// AddReplayBackoffSeconds adds i to the "replay_backoff_seconds" field.
func (m *ConnectorMutation) AddReplayBackoffSeconds(i int) {
	if m.addreplay_backoff_seconds != nil {
		*m.addreplay_backoff_seconds += i
	} else {
		m.addreplay_backoff_seconds = &i
	}
}

// AddedReplayBackoffSeconds returns the value that was added to the "replay_backoff_seconds" field in this mutation.
func (m *ConnectorMutation) AddedReplayBackoffSeconds() (r int, exists bool) {
	v := m.addreplay_backoff_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetReplayBackoffSeconds resets all changes to the "replay_backoff_seconds" field.
func (m *ConnectorMutation) ResetReplayBackoffSeconds() {
	m.replay_backoff_seconds = nil
	m.addreplay_backoff_seconds = nil
}

// SetMaxRetry sets the "max_retry" field.
func (m *ConnectorMutation) SetMaxRetry(i int) {
	m.max_retry = &i
	m.addmax_retry = nil
}

// MaxRetry returns the value of the "max_retry" field in the mutation.
func (m *ConnectorMutation) MaxRetry() (r int, exists bool) {
	v := m.max_retry
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetry returns the old "max_retry" field's value of the Connector entity.
// If the Connector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorMutation) OldMaxRetry(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetry: %w", err)
	}
	return oldValue.MaxRetry, nil
}

// AddMaxRetry adds i to the "max_retry" field.
func (m *ConnectorMutation) AddMaxRetry(i int) {
	if m.addmax_retry != nil {
		*m.addmax_retry += i
	} else {
		m.addmax_retry = &i
	}
}

// AddedMaxRetry returns the value that was added to the "max_retry" field in this mutation.
func (m *ConnectorMutation) AddedMaxRetry() (r int, exists bool) {
	v := m.addmax_retry
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetry resets all changes to the "max_retry" field.
func (m *ConnectorMutation) ResetMaxRetry() {
	m.max_retry = nil
	m.addmax_retry = nil
}

// SetConfig sets the "config" field.
func (m *ConnectorMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *ConnectorMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Connector entity.
// If the Connector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *ConnectorMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[connector.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *ConnectorMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[connector.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *ConnectorMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, connector.FieldConfig)
}

// SetCreatedBy sets the "created_by" field.
func (m *ConnectorMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ConnectorMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Connector entity.
// If the Connector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *ConnectorMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[connector.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *ConnectorMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[connector.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ConnectorMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, connector.FieldCreatedBy)
}

// SetNote sets the "note" field.
func (m *ConnectorMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *ConnectorMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the Connector entity.
// If the Connector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *ConnectorMutation) ClearNote() {
	m.note = nil
	m.clearedFields[connector.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *ConnectorMutation) NoteCleared() bool {
	_, ok := m.clearedFields[connector.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *ConnectorMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, connector.FieldNote)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConnectorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConnectorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Connector entity.
// If the Connector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConnectorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConnectorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConnectorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Connector entity.
// If the Connector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConnectorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ConnectorMutation builder.
func (m *ConnectorMutation) Where(ps ...predicate.Connector) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConnectorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConnectorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Connector, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConnectorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConnectorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Connector).
func (m *ConnectorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConnectorMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.connector_name != nil {
		fields = append(fields, connector.FieldConnectorName)
	}
	if m.source_name != nil {
		fields = append(fields, connector.FieldSourceName)
	}
	if m.connector_type != nil {
		fields = append(fields, connector.FieldConnectorType)
	}
	if m.enabled != nil {
		fields = append(fields, connector.FieldEnabled)
	}
	if m.fetch_limit != nil {
		fields = append(fields, connector.FieldFetchLimit)
	}
	if m.poll_interval_minutes != nil {
		fields = append(fields, connector.FieldPollIntervalMinutes)
	}
	if m.replay_backoff_seconds != nil {
		fields = append(fields, connector.FieldReplayBackoffSeconds)
	}
	if m.max_retry != nil {
		fields = append(fields, connector.FieldMaxRetry)
	}
	if m._config != nil {
		fields = append(fields, connector.FieldConfig)
	}
	if m.created_by != nil {
		fields = append(fields, connector.FieldCreatedBy)
	}
	if m.note != nil {
		fields = append(fields, connector.FieldNote)
	}
	if m.created_at != nil {
		fields = append(fields, connector.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, connector.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConnectorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case connector.FieldConnectorName:
		return m.ConnectorName()
	case connector.FieldSourceName:
		return m.SourceName()
	case connector.FieldConnectorType:
		return m.ConnectorType()
	case connector.FieldEnabled:
		return m.Enabled()
	case connector.FieldFetchLimit:
		return m.FetchLimit()
	case connector.FieldPollIntervalMinutes:
		return m.PollIntervalMinutes()
	case connector.FieldReplayBackoffSeconds:
		return m.ReplayBackoffSeconds()
	case connector.FieldMaxRetry:
		return m.MaxRetry()
	case connector.FieldConfig:
		return m.Config()
	case connector.FieldCreatedBy:
		return m.CreatedBy()
	case connector.FieldNote:
		return m.Note()
	case connector.FieldCreatedAt:
		return m.CreatedAt()
	case connector.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConnectorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case connector.FieldConnectorName:
		return m.OldConnectorName(ctx)
	case connector.FieldSourceName:
		return m.OldSourceName(ctx)
	case connector.FieldConnectorType:
		return m.OldConnectorType(ctx)
	case connector.FieldEnabled:
		return m.OldEnabled(ctx)
	case connector.FieldFetchLimit:
		return m.OldFetchLimit(ctx)
	case connector.FieldPollIntervalMinutes:
		return m.OldPollIntervalMinutes(ctx)
	case connector.FieldReplayBackoffSeconds:
		return m.OldReplayBackoffSeconds(ctx)
	case connector.FieldMaxRetry:
		return m.OldMaxRetry(ctx)
	case connector.FieldConfig:
		return m.OldConfig(ctx)
	case connector.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case connector.FieldNote:
		return m.OldNote(ctx)
	case connector.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case connector.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Connector field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case connector.FieldConnectorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectorName(v)
		return nil
	case connector.FieldSourceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceName(v)
		return nil
	case connector.FieldConnectorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectorType(v)
		return nil
	case connector.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case connector.FieldFetchLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFetchLimit(v)
		return nil
	case connector.FieldPollIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPollIntervalMinutes(v)
		return nil
	case connector.FieldReplayBackoffSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplayBackoffSeconds(v)
		return nil
	case connector.FieldMaxRetry:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetry(v)
		return nil
	case connector.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case connector.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case connector.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case connector.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case connector.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Connector field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConnectorMutation) AddedFields() []string {
	var fields []string
	if m.addfetch_limit != nil {
		fields = append(fields, connector.FieldFetchLimit)
	}
	if m.addpoll_interval_minutes != nil {
		fields = append(fields, connector.FieldPollIntervalMinutes)
	}
	if m.addreplay_backoff_seconds != nil {
		fields = append(fields, connector.FieldReplayBackoffSeconds)
	}
	if m.addmax_retry != nil {
		fields = append(fields, connector.FieldMaxRetry)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConnectorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case connector.FieldFetchLimit:
		return m.AddedFetchLimit()
	case connector.FieldPollIntervalMinutes:
		return m.AddedPollIntervalMinutes()
	case connector.FieldReplayBackoffSeconds:
		return m.AddedReplayBackoffSeconds()
	case connector.FieldMaxRetry:
		return m.AddedMaxRetry()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case connector.FieldFetchLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFetchLimit(v)
		return nil
	case connector.FieldPollIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPollIntervalMinutes(v)
		return nil
	case connector.FieldReplayBackoffSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReplayBackoffSeconds(v)
		return nil
	case connector.FieldMaxRetry:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetry(v)
		return nil
	}
	return fmt.Errorf("unknown Connector numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConnectorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(connector.FieldConfig) {
		fields = append(fields, connector.FieldConfig)
	}
	if m.FieldCleared(connector.FieldCreatedBy) {
		fields = append(fields, connector.FieldCreatedBy)
	}
	if m.FieldCleared(connector.FieldNote) {
		fields = append(fields, connector.FieldNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConnectorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConnectorMutation) ClearField(name string) error {
	switch name {
	case connector.FieldConfig:
		m.ClearConfig()
		return nil
	case connector.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case connector.FieldNote:
		m.ClearNote()
		return nil
	}
	return fmt.Errorf("unknown Connector nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConnectorMutation) ResetField(name string) error {
	switch name {
	case connector.FieldConnectorName:
		m.ResetConnectorName()
		return nil
	case connector.FieldSourceName:
		m.ResetSourceName()
		return nil
	case connector.FieldConnectorType:
		m.ResetConnectorType()
		return nil
	case connector.FieldEnabled:
		m.ResetEnabled()
		return nil
	case connector.FieldFetchLimit:
		m.ResetFetchLimit()
		return nil
	case connector.FieldPollIntervalMinutes:
		m.ResetPollIntervalMinutes()
		return nil
	case connector.FieldReplayBackoffSeconds:
		m.ResetReplayBackoffSeconds()
		return nil
	case connector.FieldMaxRetry:
		m.ResetMaxRetry()
		return nil
	case connector.FieldConfig:
		m.ResetConfig()
		return nil
	case connector.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case connector.FieldNote:
		m.ResetNote()
		return nil
	case connector.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case connector.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Connector field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConnectorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConnectorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConnectorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConnectorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConnectorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConnectorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConnectorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Connector unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConnectorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Connector edge %s", name)
}

// ConnectorCheckpointMutation represents an operation that mutates the ConnectorCheckpoint nodes in the graph.
type ConnectorCheckpointMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	connector_name          *string
	checkpoint_cursor       *string
	checkpoint_publish_time *time.Time
	last_run_at             *time.Time
	last_success_at         *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*ConnectorCheckpoint, error)
	predicates              []predicate.ConnectorCheckpoint
}

var _ ent.Mutation = (*ConnectorCheckpointMutation)(nil)

// connectorcheckpointOption allows management of the mutation configuration using functional options.
type connectorcheckpointOption func(*ConnectorCheckpointMutation)

// newConnectorCheckpointMutation creates new mutation for the ConnectorCheckpoint entity.
func newConnectorCheckpointMutation(c config, op Op, opts ...connectorcheckpointOption) *ConnectorCheckpointMutation {
	m := &ConnectorCheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeConnectorCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConnectorCheckpointID sets the ID field of the mutation.
func withConnectorCheckpointID(id int) connectorcheckpointOption {
	return func(m *ConnectorCheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *ConnectorCheckpoint
		)
		m.oldValue = func(ctx context.Context) (*ConnectorCheckpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConnectorCheckpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConnectorCheckpoint sets the old ConnectorCheckpoint of the mutation.
func withConnectorCheckpoint(node *ConnectorCheckpoint) connectorcheckpointOption {
	return func(m *ConnectorCheckpointMutation) {
		m.oldValue = func(context.Context) (*ConnectorCheckpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConnectorCheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConnectorCheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConnectorCheckpointMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConnectorCheckpointMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConnectorCheckpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConnectorName sets the "connector_name" field.
func (m *ConnectorCheckpointMutation) SetConnectorName(s string) {
	m.connector_name = &s
}

// ConnectorName returns the value of the "connector_name" field in the mutation.
func (m *ConnectorCheckpointMutation) ConnectorName() (r string, exists bool) {
	v := m.connector_name
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectorName returns the old "connector_name" field's value of the ConnectorCheckpoint entity.
// If the ConnectorCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorCheckpointMutation) OldConnectorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectorName: %w", err)
	}
	return oldValue.ConnectorName, nil
}

// ResetConnectorName resets all changes to the "connector_name" field.
func (m *ConnectorCheckpointMutation) ResetConnectorName() {
	m.connector_name = nil
}

// SetCheckpointCursor sets the "checkpoint_cursor" field.
func (m *ConnectorCheckpointMutation) SetCheckpointCursor(s string) {
	m.checkpoint_cursor = &s
}

// CheckpointCursor returns the value of the "checkpoint_cursor" field in the mutation.
func (m *ConnectorCheckpointMutation) CheckpointCursor() (r string, exists bool) {
	v := m.checkpoint_cursor
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointCursor returns the old "checkpoint_cursor" field's value of the ConnectorCheckpoint entity.
// If the ConnectorCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorCheckpointMutation) OldCheckpointCursor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointCursor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointCursor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointCursor: %w", err)
	}
	return oldValue.CheckpointCursor, nil
}

// ClearCheckpointCursor clears the value of the "checkpoint_cursor" field.
func (m *ConnectorCheckpointMutation) ClearCheckpointCursor() {
	m.checkpoint_cursor = nil
	m.clearedFields[connectorcheckpoint.FieldCheckpointCursor] = struct{}{}
}

// CheckpointCursorCleared returns if the "checkpoint_cursor" field was cleared in this mutation.
func (m *ConnectorCheckpointMutation) CheckpointCursorCleared() bool {
	_, ok := m.clearedFields[connectorcheckpoint.FieldCheckpointCursor]
	return ok
}

// ResetCheckpointCursor resets all changes to the "checkpoint_cursor" field.
func (m *ConnectorCheckpointMutation) ResetCheckpointCursor() {
	m.checkpoint_cursor = nil
	delete(m.clearedFields, connectorcheckpoint.FieldCheckpointCursor)
}

// SetCheckpointPublishTime sets the "checkpoint_publish_time" field.
func (m *ConnectorCheckpointMutation) SetCheckpointPublishTime(t time.Time) {
	m.checkpoint_publish_time = &t
}

// CheckpointPublishTime returns the value of the "checkpoint_publish_time" field in the mutation.
func (m *ConnectorCheckpointMutation) CheckpointPublishTime() (r time.Time, exists bool) {
	v := m.checkpoint_publish_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointPublishTime returns the old "checkpoint_publish_time" field's value of the ConnectorCheckpoint entity.
// If the ConnectorCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorCheckpointMutation) OldCheckpointPublishTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointPublishTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointPublishTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointPublishTime: %w", err)
	}
	return oldValue.CheckpointPublishTime, nil
}

// ClearCheckpointPublishTime clears the value of the "checkpoint_publish_time" field.
func (m *ConnectorCheckpointMutation) ClearCheckpointPublishTime() {
	m.checkpoint_publish_time = nil
	m.clearedFields[connectorcheckpoint.FieldCheckpointPublishTime] = struct{}{}
}

// CheckpointPublishTimeCleared returns if the "checkpoint_publish_time" field was cleared in this mutation.
func (m *ConnectorCheckpointMutation) CheckpointPublishTimeCleared() bool {
	_, ok := m.clearedFields[connectorcheckpoint.FieldCheckpointPublishTime]
	return ok
}

// ResetCheckpointPublishTime resets all changes to the "checkpoint_publish_time" field.
func (m *ConnectorCheckpointMutation) ResetCheckpointPublishTime() {
	m.checkpoint_publish_time = nil
	delete(m.clearedFields, connectorcheckpoint.FieldCheckpointPublishTime)
}

// SetLastRunAt sets the "last_run_at" field.
func (m *ConnectorCheckpointMutation) SetLastRunAt(t time.Time) {
	m.last_run_at = &t
}

// LastRunAt returns the value of the "last_run_at" field in the mutation.
func (m *ConnectorCheckpointMutation) LastRunAt() (r time.Time, exists bool) {
	v := m.last_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunAt returns the old "last_run_at" field's value of the ConnectorCheckpoint entity.
// If the ConnectorCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorCheckpointMutation) OldLastRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunAt: %w", err)
	}
	return oldValue.LastRunAt, nil
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (m *ConnectorCheckpointMutation) ClearLastRunAt() {
	m.last_run_at = nil
	m.clearedFields[connectorcheckpoint.FieldLastRunAt] = struct{}{}
}

// LastRunAtCleared returns if the "last_run_at" field was cleared in this mutation.
func (m *ConnectorCheckpointMutation) LastRunAtCleared() bool {
	_, ok := m.clearedFields[connectorcheckpoint.FieldLastRunAt]
	return ok
}

// ResetLastRunAt resets all changes to the "last_run_at" field.
func (m *ConnectorCheckpointMutation) ResetLastRunAt() {
	m.last_run_at = nil
	delete(m.clearedFields, connectorcheckpoint.FieldLastRunAt)
}

// SetLastSuccessAt sets the "last_success_at" field.
func (m *ConnectorCheckpointMutation) SetLastSuccessAt(t time.Time) {
	m.last_success_at = &t
}

// LastSuccessAt returns the value of the "last_success_at" field in the mutation.
func (m *ConnectorCheckpointMutation) LastSuccessAt() (r time.Time, exists bool) {
	v := m.last_success_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSuccessAt returns the old "last_success_at" field's value of the ConnectorCheckpoint entity.
// If the ConnectorCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorCheckpointMutation) OldLastSuccessAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSuccessAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSuccessAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSuccessAt: %w", err)
	}
	return oldValue.LastSuccessAt, nil
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (m *ConnectorCheckpointMutation) ClearLastSuccessAt() {
	m.last_success_at = nil
	m.clearedFields[connectorcheckpoint.FieldLastSuccessAt] = struct{}{}
}

// LastSuccessAtCleared returns if the "last_success_at" field was cleared in this mutation.
func (m *ConnectorCheckpointMutation) LastSuccessAtCleared() bool {
	_, ok := m.clearedFields[connectorcheckpoint.FieldLastSuccessAt]
	return ok
}

// ResetLastSuccessAt resets all changes to the "last_success_at" field.
func (m *ConnectorCheckpointMutation) ResetLastSuccessAt() {
	m.last_success_at = nil
	delete(m.clearedFields, connectorcheckpoint.FieldLastSuccessAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConnectorCheckpointMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConnectorCheckpointMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConnectorCheckpoint entity.
// If the ConnectorCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorCheckpointMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConnectorCheckpointMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ConnectorCheckpointMutation builder.
func (m *ConnectorCheckpointMutation) Where(ps ...predicate.ConnectorCheckpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConnectorCheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConnectorCheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConnectorCheckpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConnectorCheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConnectorCheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConnectorCheckpoint).
func (m *ConnectorCheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConnectorCheckpointMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.connector_name != nil {
		fields = append(fields, connectorcheckpoint.FieldConnectorName)
	}
	if m.checkpoint_cursor != nil {
		fields = append(fields, connectorcheckpoint.FieldCheckpointCursor)
	}
	if m.checkpoint_publish_time != nil {
		fields = append(fields, connectorcheckpoint.FieldCheckpointPublishTime)
	}
	if m.last_run_at != nil {
		fields = append(fields, connectorcheckpoint.FieldLastRunAt)
	}
	if m.last_success_at != nil {
		fields = append(fields, connectorcheckpoint.FieldLastSuccessAt)
	}
	if m.updated_at != nil {
		fields = append(fields, connectorcheckpoint.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConnectorCheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case connectorcheckpoint.FieldConnectorName:
		return m.ConnectorName()
	case connectorcheckpoint.FieldCheckpointCursor:
		return m.CheckpointCursor()
	case connectorcheckpoint.FieldCheckpointPublishTime:
		return m.CheckpointPublishTime()
	case connectorcheckpoint.FieldLastRunAt:
		return m.LastRunAt()
	case connectorcheckpoint.FieldLastSuccessAt:
		return m.LastSuccessAt()
	case connectorcheckpoint.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConnectorCheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case connectorcheckpoint.FieldConnectorName:
		return m.OldConnectorName(ctx)
	case connectorcheckpoint.FieldCheckpointCursor:
		return m.OldCheckpointCursor(ctx)
	case connectorcheckpoint.FieldCheckpointPublishTime:
		return m.OldCheckpointPublishTime(ctx)
	case connectorcheckpoint.FieldLastRunAt:
		return m.OldLastRunAt(ctx)
	case connectorcheckpoint.FieldLastSuccessAt:
		return m.OldLastSuccessAt(ctx)
	case connectorcheckpoint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConnectorCheckpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectorCheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case connectorcheckpoint.FieldConnectorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectorName(v)
		return nil
	case connectorcheckpoint.FieldCheckpointCursor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointCursor(v)
		return nil
	case connectorcheckpoint.FieldCheckpointPublishTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointPublishTime(v)
		return nil
	case connectorcheckpoint.FieldLastRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunAt(v)
		return nil
	case connectorcheckpoint.FieldLastSuccessAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSuccessAt(v)
		return nil
	case connectorcheckpoint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConnectorCheckpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConnectorCheckpointMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConnectorCheckpointMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectorCheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ConnectorCheckpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConnectorCheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(connectorcheckpoint.FieldCheckpointCursor) {
		fields = append(fields, connectorcheckpoint.FieldCheckpointCursor)
	}
	if m.FieldCleared(connectorcheckpoint.FieldCheckpointPublishTime) {
		fields = append(fields, connectorcheckpoint.FieldCheckpointPublishTime)
	}
	if m.FieldCleared(connectorcheckpoint.FieldLastRunAt) {
		fields = append(fields, connectorcheckpoint.FieldLastRunAt)
	}
	if m.FieldCleared(connectorcheckpoint.FieldLastSuccessAt) {
		fields = append(fields, connectorcheckpoint.FieldLastSuccessAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConnectorCheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConnectorCheckpointMutation) ClearField(name string) error {
	switch name {
	case connectorcheckpoint.FieldCheckpointCursor:
		m.ClearCheckpointCursor()
		return nil
	case connectorcheckpoint.FieldCheckpointPublishTime:
		m.ClearCheckpointPublishTime()
		return nil
	case connectorcheckpoint.FieldLastRunAt:
		m.ClearLastRunAt()
		return nil
	case connectorcheckpoint.FieldLastSuccessAt:
		m.ClearLastSuccessAt()
		return nil
	}
	return fmt.Errorf("unknown ConnectorCheckpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConnectorCheckpointMutation) ResetField(name string) error {
	switch name {
	case connectorcheckpoint.FieldConnectorName:
		m.ResetConnectorName()
		return nil
	case connectorcheckpoint.FieldCheckpointCursor:
		m.ResetCheckpointCursor()
		return nil
	case connectorcheckpoint.FieldCheckpointPublishTime:
		m.ResetCheckpointPublishTime()
		return nil
	case connectorcheckpoint.FieldLastRunAt:
		m.ResetLastRunAt()
		return nil
	case connectorcheckpoint.FieldLastSuccessAt:
		m.ResetLastSuccessAt()
		return nil
	case connectorcheckpoint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConnectorCheckpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConnectorCheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConnectorCheckpointMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConnectorCheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConnectorCheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConnectorCheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConnectorCheckpointMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConnectorCheckpointMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConnectorCheckpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConnectorCheckpointMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConnectorCheckpoint edge %s", name)
}

// ConnectorFailureMutation represents an operation that mutates the ConnectorFailure nodes in the graph.
type ConnectorFailureMutation struct {
	config
	op             Op
	typ            string
	id             *int
	connector_name *string
	source_name    *string
	run_id         *string
	status         *connectorfailure.Status
	retry_count    *int
	addretry_count *int
	next_retry_at  *time.Time
	last_error     *string
	payload        *map[string]interface{}
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ConnectorFailure, error)
	predicates     []predicate.ConnectorFailure
}

var _ ent.Mutation = (*ConnectorFailureMutation)(nil)

// connectorfailureOption allows management of the mutation configuration using functional options.
type connectorfailureOption func(*ConnectorFailureMutation)

// newConnectorFailureMutation creates new mutation for the ConnectorFailure entity.
func newConnectorFailureMutation(c config, op Op, opts ...connectorfailureOption) *ConnectorFailureMutation {
	m := &ConnectorFailureMutation{
		config:        c,
		op:            op,
		typ:           TypeConnectorFailure,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConnectorFailureID sets the ID field of the mutation.
func withConnectorFailureID(id int) connectorfailureOption {
	return func(m *ConnectorFailureMutation) {
		var (
			err   error
			once  sync.Once
			value *ConnectorFailure
		)
		m.oldValue = func(ctx context.Context) (*ConnectorFailure, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConnectorFailure.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConnectorFailure sets the old ConnectorFailure of the mutation.
func withConnectorFailure(node *ConnectorFailure) connectorfailureOption {
	return func(m *ConnectorFailureMutation) {
		m.oldValue = func(context.Context) (*ConnectorFailure, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConnectorFailureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConnectorFailureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConnectorFailureMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConnectorFailureMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConnectorFailure.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConnectorName sets the "connector_name" field.
func (m *ConnectorFailureMutation) SetConnectorName(s string) {
	m.connector_name = &s
}

// ConnectorName returns the value of the "connector_name" field in the mutation.
func (m *ConnectorFailureMutation) ConnectorName() (r string, exists bool) {
	v := m.connector_name
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectorName returns the old "connector_name" field's value of the ConnectorFailure entity.
// If the ConnectorFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorFailureMutation) OldConnectorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectorName: %w", err)
	}
	return oldValue.ConnectorName, nil
}

// ResetConnectorName resets all changes to the "connector_name" field.
func (m *ConnectorFailureMutation) ResetConnectorName() {
	m.connector_name = nil
}

// SetSourceName sets the "source_name" field.
func (m *ConnectorFailureMutation) SetSourceName(s string) {
	m.source_name = &s
}

// SourceName returns the value of the "source_name" field in the mutation.
func (m *ConnectorFailureMutation) SourceName() (r string, exists bool) {
	v := m.source_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceName returns the old "source_name" field's value of the ConnectorFailure entity.
// If the ConnectorFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorFailureMutation) OldSourceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceName: %w", err)
	}
	return oldValue.SourceName, nil
}

// ClearSourceName clears the value of the "source_name" field.
func (m *ConnectorFailureMutation) ClearSourceName() {
	m.source_name = nil
	m.clearedFields[connectorfailure.FieldSourceName] = struct{}{}
}

// SourceNameCleared returns if the "source_name" field was cleared in this mutation.
func (m *ConnectorFailureMutation) SourceNameCleared() bool {
	_, ok := m.clearedFields[connectorfailure.FieldSourceName]
	return ok
}

// ResetSourceName resets all changes to the "source_name" field.
func (m *ConnectorFailureMutation) ResetSourceName() {
	m.source_name = nil
	delete(m.clearedFields, connectorfailure.FieldSourceName)
}

// SetRunID sets the "run_id" field.
func (m *ConnectorFailureMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ConnectorFailureMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ConnectorFailure entity.
// If the ConnectorFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorFailureMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *ConnectorFailureMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[connectorfailure.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *ConnectorFailureMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[connectorfailure.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ConnectorFailureMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, connectorfailure.FieldRunID)
}

// SetStatus sets the "status" field.
func (m *ConnectorFailureMutation) SetStatus(c connectorfailure.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConnectorFailureMutation) Status() (r connectorfailure.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ConnectorFailure entity.
// If the ConnectorFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorFailureMutation) OldStatus(ctx context.Context) (v connectorfailure.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConnectorFailureMutation) ResetStatus() {
	m.status = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *ConnectorFailureMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *ConnectorFailureMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the ConnectorFailure entity.
// If the ConnectorFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorFailureMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *ConnectorFailureMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *ConnectorFailureMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *ConnectorFailureMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetNextRetryAt sets the "next_retry_at" field.
func (m *ConnectorFailureMutation) SetNextRetryAt(t time.Time) {
	m.next_retry_at = &t
}

// NextRetryAt returns the value of the "next_retry_at" field in the mutation.
func (m *ConnectorFailureMutation) NextRetryAt() (r time.Time, exists bool) {
	v := m.next_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRetryAt returns the old "next_retry_at" field's value of the ConnectorFailure entity.
// If the ConnectorFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorFailureMutation) OldNextRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRetryAt: %w", err)
	}
	return oldValue.NextRetryAt, nil
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (m *ConnectorFailureMutation) ClearNextRetryAt() {
	m.next_retry_at = nil
	m.clearedFields[connectorfailure.FieldNextRetryAt] = struct{}{}
}

// NextRetryAtCleared returns if the "next_retry_at" field was cleared in this mutation.
func (m *ConnectorFailureMutation) NextRetryAtCleared() bool {
	_, ok := m.clearedFields[connectorfailure.FieldNextRetryAt]
	return ok
}

// ResetNextRetryAt resets all changes to the "next_retry_at" field.
func (m *ConnectorFailureMutation) ResetNextRetryAt() {
	m.next_retry_at = nil
	delete(m.clearedFields, connectorfailure.FieldNextRetryAt)
}

// SetLastError sets the "last_error" field.
func (m *ConnectorFailureMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *ConnectorFailureMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the ConnectorFailure entity.
// If the ConnectorFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorFailureMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *ConnectorFailureMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[connectorfailure.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *ConnectorFailureMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[connectorfailure.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *ConnectorFailureMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, connectorfailure.FieldLastError)
}

// SetPayload sets the "payload" field.
func (m *ConnectorFailureMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ConnectorFailureMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ConnectorFailure entity.
// If the ConnectorFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorFailureMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *ConnectorFailureMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConnectorFailureMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConnectorFailureMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConnectorFailure entity.
// If the ConnectorFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorFailureMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConnectorFailureMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConnectorFailureMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConnectorFailureMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConnectorFailure entity.
// If the ConnectorFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorFailureMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConnectorFailureMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ConnectorFailureMutation builder.
func (m *ConnectorFailureMutation) Where(ps ...predicate.ConnectorFailure) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConnectorFailureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConnectorFailureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConnectorFailure, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConnectorFailureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConnectorFailureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConnectorFailure).
func (m *ConnectorFailureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConnectorFailureMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.connector_name != nil {
		fields = append(fields, connectorfailure.FieldConnectorName)
	}
	if m.source_name != nil {
		fields = append(fields, connectorfailure.FieldSourceName)
	}
	if m.run_id != nil {
		fields = append(fields, connectorfailure.FieldRunID)
	}
	if m.status != nil {
		fields = append(fields, connectorfailure.FieldStatus)
	}
	if m.retry_count != nil {
		fields = append(fields, connectorfailure.FieldRetryCount)
	}
	if m.next_retry_at != nil {
		fields = append(fields, connectorfailure.FieldNextRetryAt)
	}
	if m.last_error != nil {
		fields = append(fields, connectorfailure.FieldLastError)
	}
	if m.payload != nil {
		fields = append(fields, connectorfailure.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, connectorfailure.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, connectorfailure.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConnectorFailureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case connectorfailure.FieldConnectorName:
		return m.ConnectorName()
	case connectorfailure.FieldSourceName:
		return m.SourceName()
	case connectorfailure.FieldRunID:
		return m.RunID()
	case connectorfailure.FieldStatus:
		return m.Status()
	case connectorfailure.FieldRetryCount:
		return m.RetryCount()
	case connectorfailure.FieldNextRetryAt:
		return m.NextRetryAt()
	case connectorfailure.FieldLastError:
		return m.LastError()
	case connectorfailure.FieldPayload:
		return m.Payload()
	case connectorfailure.FieldCreatedAt:
		return m.CreatedAt()
	case connectorfailure.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConnectorFailureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case connectorfailure.FieldConnectorName:
		return m.OldConnectorName(ctx)
	case connectorfailure.FieldSourceName:
		return m.OldSourceName(ctx)
	case connectorfailure.FieldRunID:
		return m.OldRunID(ctx)
	case connectorfailure.FieldStatus:
		return m.OldStatus(ctx)
	case connectorfailure.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case connectorfailure.FieldNextRetryAt:
		return m.OldNextRetryAt(ctx)
	case connectorfailure.FieldLastError:
		return m.OldLastError(ctx)
	case connectorfailure.FieldPayload:
		return m.OldPayload(ctx)
	case connectorfailure.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case connectorfailure.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConnectorFailure field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectorFailureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case connectorfailure.FieldConnectorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectorName(v)
		return nil
	case connectorfailure.FieldSourceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceName(v)
		return nil
	case connectorfailure.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case connectorfailure.FieldStatus:
		v, ok := value.(connectorfailure.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case connectorfailure.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case connectorfailure.FieldNextRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRetryAt(v)
		return nil
	case connectorfailure.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case connectorfailure.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case connectorfailure.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case connectorfailure.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConnectorFailure field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConnectorFailureMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, connectorfailure.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConnectorFailureMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case connectorfailure.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectorFailureMutation) AddField(name string, value ent.Value) error {
	switch name {
	case connectorfailure.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown ConnectorFailure numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConnectorFailureMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(connectorfailure.FieldSourceName) {
		fields = append(fields, connectorfailure.FieldSourceName)
	}
	if m.FieldCleared(connectorfailure.FieldRunID) {
		fields = append(fields, connectorfailure.FieldRunID)
	}
	if m.FieldCleared(connectorfailure.FieldNextRetryAt) {
		fields = append(fields, connectorfailure.FieldNextRetryAt)
	}
	if m.FieldCleared(connectorfailure.FieldLastError) {
		fields = append(fields, connectorfailure.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConnectorFailureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConnectorFailureMutation) ClearField(name string) error {
	switch name {
	case connectorfailure.FieldSourceName:
		m.ClearSourceName()
		return nil
	case connectorfailure.FieldRunID:
		m.ClearRunID()
		return nil
	case connectorfailure.FieldNextRetryAt:
		m.ClearNextRetryAt()
		return nil
	case connectorfailure.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown ConnectorFailure nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConnectorFailureMutation) ResetField(name string) error {
	switch name {
	case connectorfailure.FieldConnectorName:
		m.ResetConnectorName()
		return nil
	case connectorfailure.FieldSourceName:
		m.ResetSourceName()
		return nil
	case connectorfailure.FieldRunID:
		m.ResetRunID()
		return nil
	case connectorfailure.FieldStatus:
		m.ResetStatus()
		return nil
	case connectorfailure.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case connectorfailure.FieldNextRetryAt:
		m.ResetNextRetryAt()
		return nil
	case connectorfailure.FieldLastError:
		m.ResetLastError()
		return nil
	case connectorfailure.FieldPayload:
		m.ResetPayload()
		return nil
	case connectorfailure.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case connectorfailure.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConnectorFailure field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConnectorFailureMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConnectorFailureMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConnectorFailureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConnectorFailureMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConnectorFailureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConnectorFailureMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConnectorFailureMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConnectorFailure unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConnectorFailureMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConnectorFailure edge %s", name)
}

// ConnectorRunMutation represents an operation that mutates the ConnectorRun nodes in the graph.
type ConnectorRunMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	connector_name      *string
	source_name         *string
	started_at          *time.Time
	finished_at         *time.Time
	status              *connectorrun.Status
	triggered_by        *string
	pulled_count        *int
	addpulled_count     *int
	normalized_count    *int
	addnormalized_count *int
	inserted_count      *int
	addinserted_count   *int
	updated_count       *int
	addupdated_count    *int
	failed_count        *int
	addfailed_count     *int
	replayed_count      *int
	addreplayed_count   *int
	checkpoint_before   *string
	checkpoint_after    *string
	error_message       *string
	details             *map[string]interface{}
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ConnectorRun, error)
	predicates          []predicate.ConnectorRun
}

var _ ent.Mutation = (*ConnectorRunMutation)(nil)

// connectorrunOption allows management of the mutation configuration using functional options.
type connectorrunOption func(*ConnectorRunMutation)

// newConnectorRunMutation creates new mutation for the ConnectorRun entity.
func newConnectorRunMutation(c config, op Op, opts ...connectorrunOption) *ConnectorRunMutation {
	m := &ConnectorRunMutation{
		config:        c,
		op:            op,
		typ:           TypeConnectorRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConnectorRunID sets the ID field of the mutation.
func withConnectorRunID(id string) connectorrunOption {
	return func(m *ConnectorRunMutation) {
		var (
			err   error
			once  sync.Once
			value *ConnectorRun
		)
		m.oldValue = func(ctx context.Context) (*ConnectorRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConnectorRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConnectorRun sets the old ConnectorRun of the mutation.
func withConnectorRun(node *ConnectorRun) connectorrunOption {
	return func(m *ConnectorRunMutation) {
		m.oldValue = func(context.Context) (*ConnectorRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConnectorRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConnectorRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConnectorRun entities.
func (m *ConnectorRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConnectorRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConnectorRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConnectorRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConnectorName sets the "connector_name" field.
func (m *ConnectorRunMutation) SetConnectorName(s string) {
	m.connector_name = &s
}

// ConnectorName returns the value of the "connector_name" field in the mutation.
func (m *ConnectorRunMutation) ConnectorName() (r string, exists bool) {
	v := m.connector_name
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectorName returns the old "connector_name" field's value of the ConnectorRun entity.
// If the ConnectorRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRunMutation) OldConnectorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectorName: %w", err)
	}
	return oldValue.ConnectorName, nil
}

// ResetConnectorName resets all changes to the "connector_name" field.
func (m *ConnectorRunMutation) ResetConnectorName() {
	m.connector_name = nil
}

// SetSourceName sets the "source_name" field.
func (m *ConnectorRunMutation) SetSourceName(s string) {
	m.source_name = &s
}

// SourceName returns the value of the "source_name" field in the mutation.
func (m *ConnectorRunMutation) SourceName() (r string, exists bool) {
	v := m.source_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceName returns the old "source_name" field's value of the ConnectorRun entity.
// If the ConnectorRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRunMutation) OldSourceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceName: %w", err)
	}
	return oldValue.SourceName, nil
}

// ResetSourceName resets all changes to the "source_name" field.
func (m *ConnectorRunMutation) ResetSourceName() {
	m.source_name = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ConnectorRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ConnectorRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ConnectorRun entity.
// If the ConnectorRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ConnectorRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ConnectorRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ConnectorRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ConnectorRun entity.
// If the ConnectorRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ConnectorRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[connectorrun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ConnectorRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[connectorrun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ConnectorRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, connectorrun.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ConnectorRunMutation) SetStatus(c connectorrun.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConnectorRunMutation) Status() (r connectorrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ConnectorRun entity.
// If the ConnectorRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRunMutation) OldStatus(ctx context.Context) (v connectorrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConnectorRunMutation) ResetStatus() {
	m.status = nil
}

// SetTriggeredBy sets the "triggered_by" field.
func (m *ConnectorRunMutation) SetTriggeredBy(s string) {
	m.triggered_by = &s
}

// TriggeredBy returns the value of the "triggered_by" field in the mutation.
func (m *ConnectorRunMutation) TriggeredBy() (r string, exists bool) {
	v := m.triggered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredBy returns the old "triggered_by" field's value of the ConnectorRun entity.
// If the ConnectorRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRunMutation) OldTriggeredBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredBy: %w", err)
	}
	return oldValue.TriggeredBy, nil
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (m *ConnectorRunMutation) ClearTriggeredBy() {
	m.triggered_by = nil
	m.clearedFields[connectorrun.FieldTriggeredBy] = struct{}{}
}

// TriggeredByCleared returns if the "triggered_by" field was cleared in this mutation.
func (m *ConnectorRunMutation) TriggeredByCleared() bool {
	_, ok := m.clearedFields[connectorrun.FieldTriggeredBy]
	return ok
}

// ResetTriggeredBy resets all changes to the "triggered_by" field.
func (m *ConnectorRunMutation) ResetTriggeredBy() {
	m.triggered_by = nil
	delete(m.clearedFields, connectorrun.FieldTriggeredBy)
}

// SetPulledCount sets the "pulled_count" field.
func (m *ConnectorRunMutation) SetPulledCount(i int) {
	m.pulled_count = &i
	m.addpulled_count = nil
}

// PulledCount returns the value of the "pulled_count" field in the mutation.
func (m *ConnectorRunMutation) PulledCount() (r int, exists bool) {
	v := m.pulled_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPulledCount returns the old "pulled_count" field's value of the ConnectorRun entity.
// If the ConnectorRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRunMutation) OldPulledCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPulledCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPulledCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPulledCount: %w", err)
	}
	return oldValue.PulledCount, nil
}

// AddPulledCount adds i to the "pulled_count" field.
func (m *ConnectorRunMutation) AddPulledCount(i int) {
	if m.addpulled_count != nil {
		*m.addpulled_count += i
	} else {
		m.addpulled_count = &i
	}
}

// AddedPulledCount returns the value that was added to the "pulled_count" field in this mutation.
func (m *ConnectorRunMutation) AddedPulledCount() (r int, exists bool) {
	v := m.addpulled_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPulledCount resets all changes to the "pulled_count" field.
func (m *ConnectorRunMutation) ResetPulledCount() {
	m.pulled_count = nil
	m.addpulled_count = nil
}

// SetNormalizedCount sets the "normalized_count" field.
func (m *ConnectorRunMutation) SetNormalizedCount(i int) {
	m.normalized_count = &i
	m.addnormalized_count = nil
}

// NormalizedCount returns the value of the "normalized_count" field in the mutation.
func (m *ConnectorRunMutation) NormalizedCount() (r int, exists bool) {
	v := m.normalized_count
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedCount returns the old "normalized_count" field's value of the ConnectorRun entity.
// If the ConnectorRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRunMutation) OldNormalizedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedCount: %w", err)
	}
	return oldValue.NormalizedCount, nil
}

// AddNormalizedCount adds i to the "normalized_count" field.
func (m *ConnectorRunMutation) AddNormalizedCount(i int) {
	if m.addnormalized_count != nil {
		*m.addnormalized_count += i
	} else {
		m.addnormalized_count = &i
	}
}

// AddedNormalizedCount returns the value that was added to the "normalized_count" field in this mutation.
func (m *ConnectorRunMutation) AddedNormalizedCount() (r int, exists bool) {
	v := m.addnormalized_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetNormalizedCount resets all changes to the "normalized_count" field.
func (m *ConnectorRunMutation) ResetNormalizedCount() {
	m.normalized_count = nil
	m.addnormalized_count = nil
}

// SetInsertedCount sets the "inserted_count" field.
func (m *ConnectorRunMutation) SetInsertedCount(i int) {
	m.inserted_count = &i
	m.addinserted_count = nil
}

// InsertedCount returns the value of the "inserted_count" field in the mutation.
func (m *ConnectorRunMutation) InsertedCount() (r int, exists bool) {
	v := m.inserted_count
	if v == nil {
		return
	}
	return *v, true
}

// OldInsertedCount returns the old "inserted_count" field's value of the ConnectorRun entity.
// If the ConnectorRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRunMutation) OldInsertedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsertedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsertedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsertedCount: %w", err)
	}
	return oldValue.InsertedCount, nil
}

// AddInsertedCount adds i to the "inserted_count" field.
func (m *ConnectorRunMutation) AddInsertedCount(i int) {
	if m.addinserted_count != nil {
		*m.addinserted_count += i
	} else {
		m.addinserted_count = &i
	}
}

// AddedInsertedCount returns the value that was added to the "inserted_count" field in this mutation.
func (m *ConnectorRunMutation) AddedInsertedCount() (r int, exists bool) {
	v := m.addinserted_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetInsertedCount resets all changes to the "inserted_count" field.
func (m *ConnectorRunMutation) ResetInsertedCount() {
	m.inserted_count = nil
	m.addinserted_count = nil
}

// SetUpdatedCount sets the "updated_count" field.
func (m *ConnectorRunMutation) SetUpdatedCount(i int) {
	m.updated_count = &i
	m.addupdated_count = nil
}

// UpdatedCount returns the value of the "updated_count" field in the mutation.
func (m *ConnectorRunMutation) UpdatedCount() (r int, exists bool) {
	v := m.updated_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedCount returns the old "updated_count" field's value of the ConnectorRun entity.
// If the ConnectorRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRunMutation) OldUpdatedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedCount: %w", err)
	}
	return oldValue.UpdatedCount, nil
}

// AddUpdatedCount adds i to the "updated_count" field.
func (m *ConnectorRunMutation) AddUpdatedCount(i int) {
	if m.addupdated_count != nil {
		*m.addupdated_count += i
	} else {
		m.addupdated_count = &i
	}
}

// AddedUpdatedCount returns the value that was added to the "updated_count" field in this mutation.
func (m *ConnectorRunMutation) AddedUpdatedCount() (r int, exists bool) {
	v := m.addupdated_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdatedCount resets all changes to the "updated_count" field.
func (m *ConnectorRunMutation) ResetUpdatedCount() {
	m.updated_count = nil
	m.addupdated_count = nil
}

// SetFailedCount sets the "failed_count" field.
func (m *ConnectorRunMutation) SetFailedCount(i int) {
	m.failed_count = &i
	m.addfailed_count = nil
}

// FailedCount returns the value of the "failed_count" field in the mutation.
func (m *ConnectorRunMutation) FailedCount() (r int, exists bool) {
	v := m.failed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedCount returns the old "failed_count" field's value of the ConnectorRun entity.
// If the ConnectorRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRunMutation) OldFailedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedCount: %w", err)
	}
	return oldValue.FailedCount, nil
}

// AddFailedCount adds i to the "failed_count" field.
func (m *ConnectorRunMutation) AddFailedCount(i int) {
	if m.addfailed_count != nil {
		*m.addfailed_count += i
	} else {
		m.addfailed_count = &i
	}
}

// AddedFailedCount returns the value that was added to the "failed_count" field in this mutation.
func (m *ConnectorRunMutation) AddedFailedCount() (r int, exists bool) {
	v := m.addfailed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedCount resets all changes to the "failed_count" field.
func (m *ConnectorRunMutation) ResetFailedCount() {
	m.failed_count = nil
	m.addfailed_count = nil
}

// SetReplayedCount sets the "replayed_count" field.
func (m *ConnectorRunMutation) SetReplayedCount(i int) {
	m.replayed_count = &i
	m.addreplayed_count = nil
}

// ReplayedCount returns the value of the "replayed_count" field in the mutation.
func (m *ConnectorRunMutation) ReplayedCount() (r int, exists bool) {
	v := m.replayed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReplayedCount returns the old "replayed_count" field's value of the ConnectorRun entity.
// If the ConnectorRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRunMutation) OldReplayedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplayedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplayedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplayedCount: %w", err)
	}
	return oldValue.ReplayedCount, nil
}

// AddReplayedCount adds i to the "replayed_count" field.
func (m *ConnectorRunMutation) AddReplayedCount(i int) {
	if m.addreplayed_count != nil {
		*m.addreplayed_count += i
	} else {
		m.addreplayed_count = &i
	}
}

// AddedReplayedCount returns the value that was added to the "replayed_count" field in this mutation.
func (m *ConnectorRunMutation) AddedReplayedCount() (r int, exists bool) {
	v := m.addreplayed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReplayedCount resets all changes to the "replayed_count" field.
func (m *ConnectorRunMutation) ResetReplayedCount() {
	m.replayed_count = nil
	m.addreplayed_count = nil
}

// SetCheckpointBefore sets the "checkpoint_before" field.
func (m *ConnectorRunMutation) SetCheckpointBefore(s string) {
	m.checkpoint_before = &s
}

// CheckpointBefore returns the value of the "checkpoint_before" field in the mutation.
func (m *ConnectorRunMutation) CheckpointBefore() (r string, exists bool) {
	v := m.checkpoint_before
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointBefore returns the old "checkpoint_before" field's value of the ConnectorRun entity.
// If the ConnectorRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRunMutation) OldCheckpointBefore(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointBefore: %w", err)
	}
	return oldValue.CheckpointBefore, nil
}

// ClearCheckpointBefore clears the value of the "checkpoint_before" field.
func (m *ConnectorRunMutation) ClearCheckpointBefore() {
	m.checkpoint_before = nil
	m.clearedFields[connectorrun.FieldCheckpointBefore] = struct{}{}
}

// CheckpointBeforeCleared returns if the "checkpoint_before" field was cleared in this mutation.
func (m *ConnectorRunMutation) CheckpointBeforeCleared() bool {
	_, ok := m.clearedFields[connectorrun.FieldCheckpointBefore]
	return ok
}

// ResetCheckpointBefore resets all changes to the "checkpoint_before" field.
func (m *ConnectorRunMutation) ResetCheckpointBefore() {
	m.checkpoint_before = nil
	delete(m.clearedFields, connectorrun.FieldCheckpointBefore)
}

// SetCheckpointAfter sets the "checkpoint_after" field.
func (m *ConnectorRunMutation) SetCheckpointAfter(s string) {
	m.checkpoint_after = &s
}

// CheckpointAfter returns the value of the "checkpoint_after" field in the mutation.
func (m *ConnectorRunMutation) CheckpointAfter() (r string, exists bool) {
	v := m.checkpoint_after
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointAfter returns the old "checkpoint_after" field's value of the ConnectorRun entity.
// If the ConnectorRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRunMutation) OldCheckpointAfter(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointAfter: %w", err)
	}
	return oldValue.CheckpointAfter, nil
}

// ClearCheckpointAfter clears the value of the "checkpoint_after" field.
func (m *ConnectorRunMutation) ClearCheckpointAfter() {
	m.checkpoint_after = nil
	m.clearedFields[connectorrun.FieldCheckpointAfter] = struct{}{}
}

// CheckpointAfterCleared returns if the "checkpoint_after" field was cleared in this mutation.
func (m *ConnectorRunMutation) CheckpointAfterCleared() bool {
	_, ok := m.clearedFields[connectorrun.FieldCheckpointAfter]
	return ok
}

// ResetCheckpointAfter resets all changes to the "checkpoint_after" field.
func (m *ConnectorRunMutation) ResetCheckpointAfter() {
	m.checkpoint_after = nil
	delete(m.clearedFields, connectorrun.FieldCheckpointAfter)
}

// SetErrorMessage sets the "error_message" field.
func (m *ConnectorRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ConnectorRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ConnectorRun entity.
// If the ConnectorRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ConnectorRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[connectorrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ConnectorRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[connectorrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ConnectorRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, connectorrun.FieldErrorMessage)
}

// SetDetails sets the "details" field.
func (m *ConnectorRunMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *ConnectorRunMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the ConnectorRun entity.
// If the ConnectorRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorRunMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *ConnectorRunMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[connectorrun.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *ConnectorRunMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[connectorrun.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *ConnectorRunMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, connectorrun.FieldDetails)
}

// Where appends a list predicates to the ConnectorRunMutation builder.
func (m *ConnectorRunMutation) Where(ps ...predicate.ConnectorRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConnectorRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConnectorRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConnectorRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConnectorRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConnectorRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConnectorRun).
func (m *ConnectorRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConnectorRunMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.connector_name != nil {
		fields = append(fields, connectorrun.FieldConnectorName)
	}
	if m.source_name != nil {
		fields = append(fields, connectorrun.FieldSourceName)
	}
	if m.started_at != nil {
		fields = append(fields, connectorrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, connectorrun.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, connectorrun.FieldStatus)
	}
	if m.triggered_by != nil {
		fields = append(fields, connectorrun.FieldTriggeredBy)
	}
	if m.pulled_count != nil {
		fields = append(fields, connectorrun.FieldPulledCount)
	}
	if m.normalized_count != nil {
		fields = append(fields, connectorrun.FieldNormalizedCount)
	}
	if m.inserted_count != nil {
		fields = append(fields, connectorrun.FieldInsertedCount)
	}
	if m.updated_count != nil {
		fields = append(fields, connectorrun.FieldUpdatedCount)
	}
	if m.failed_count != nil {
		fields = append(fields, connectorrun.FieldFailedCount)
	}
	if m.replayed_count != nil {
		fields = append(fields, connectorrun.FieldReplayedCount)
	}
	if m.checkpoint_before != nil {
		fields = append(fields, connectorrun.FieldCheckpointBefore)
	}
	if m.checkpoint_after != nil {
		fields = append(fields, connectorrun.FieldCheckpointAfter)
	}
	if m.error_message != nil {
		fields = append(fields, connectorrun.FieldErrorMessage)
	}
	if m.details != nil {
		fields = append(fields, connectorrun.FieldDetails)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConnectorRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case connectorrun.FieldConnectorName:
		return m.ConnectorName()
	case connectorrun.FieldSourceName:
		return m.SourceName()
	case connectorrun.FieldStartedAt:
		return m.StartedAt()
	case connectorrun.FieldFinishedAt:
		return m.FinishedAt()
	case connectorrun.FieldStatus:
		return m.Status()
	case connectorrun.FieldTriggeredBy:
		return m.TriggeredBy()
	case connectorrun.FieldPulledCount:
		return m.PulledCount()
	case connectorrun.FieldNormalizedCount:
		return m.NormalizedCount()
	case connectorrun.FieldInsertedCount:
		return m.InsertedCount()
	case connectorrun.FieldUpdatedCount:
		return m.UpdatedCount()
	case connectorrun.FieldFailedCount:
		return m.FailedCount()
	case connectorrun.FieldReplayedCount:
		return m.ReplayedCount()
	case connectorrun.FieldCheckpointBefore:
		return m.CheckpointBefore()
	case connectorrun.FieldCheckpointAfter:
		return m.CheckpointAfter()
	case connectorrun.FieldErrorMessage:
		return m.ErrorMessage()
	case connectorrun.FieldDetails:
		return m.Details()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConnectorRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case connectorrun.FieldConnectorName:
		return m.OldConnectorName(ctx)
	case connectorrun.FieldSourceName:
		return m.OldSourceName(ctx)
	case connectorrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case connectorrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case connectorrun.FieldStatus:
		return m.OldStatus(ctx)
	case connectorrun.FieldTriggeredBy:
		return m.OldTriggeredBy(ctx)
	case connectorrun.FieldPulledCount:
		return m.OldPulledCount(ctx)
	case connectorrun.FieldNormalizedCount:
		return m.OldNormalizedCount(ctx)
	case connectorrun.FieldInsertedCount:
		return m.OldInsertedCount(ctx)
	case connectorrun.FieldUpdatedCount:
		return m.OldUpdatedCount(ctx)
	case connectorrun.FieldFailedCount:
		return m.OldFailedCount(ctx)
	case connectorrun.FieldReplayedCount:
		return m.OldReplayedCount(ctx)
	case connectorrun.FieldCheckpointBefore:
		return m.OldCheckpointBefore(ctx)
	case connectorrun.FieldCheckpointAfter:
		return m.OldCheckpointAfter(ctx)
	case connectorrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case connectorrun.FieldDetails:
		return m.OldDetails(ctx)
	}
	return nil, fmt.Errorf("unknown ConnectorRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectorRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case connectorrun.FieldConnectorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectorName(v)
		return nil
	case connectorrun.FieldSourceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceName(v)
		return nil
	case connectorrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case connectorrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case connectorrun.FieldStatus:
		v, ok := value.(connectorrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case connectorrun.FieldTriggeredBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredBy(v)
		return nil
	case connectorrun.FieldPulledCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPulledCount(v)
		return nil
	case connectorrun.FieldNormalizedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedCount(v)
		return nil
	case connectorrun.FieldInsertedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsertedCount(v)
		return nil
	case connectorrun.FieldUpdatedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedCount(v)
		return nil
	case connectorrun.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedCount(v)
		return nil
	case connectorrun.FieldReplayedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplayedCount(v)
		return nil
	case connectorrun.FieldCheckpointBefore:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointBefore(v)
		return nil
	case connectorrun.FieldCheckpointAfter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointAfter(v)
		return nil
	case connectorrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case connectorrun.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	}
	return fmt.Errorf("unknown ConnectorRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConnectorRunMutation) AddedFields() []string {
	var fields []string
	if m.addpulled_count != nil {
		fields = append(fields, connectorrun.FieldPulledCount)
	}
	if m.addnormalized_count != nil {
		fields = append(fields, connectorrun.FieldNormalizedCount)
	}
	if m.addinserted_count != nil {
		fields = append(fields, connectorrun.FieldInsertedCount)
	}
	if m.addupdated_count != nil {
		fields = append(fields, connectorrun.FieldUpdatedCount)
	}
	if m.addfailed_count != nil {
		fields = append(fields, connectorrun.FieldFailedCount)
	}
	if m.addreplayed_count != nil {
		fields = append(fields, connectorrun.FieldReplayedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConnectorRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case connectorrun.FieldPulledCount:
		return m.AddedPulledCount()
	case connectorrun.FieldNormalizedCount:
		return m.AddedNormalizedCount()
	case connectorrun.FieldInsertedCount:
		return m.AddedInsertedCount()
	case connectorrun.FieldUpdatedCount:
		return m.AddedUpdatedCount()
	case connectorrun.FieldFailedCount:
		return m.AddedFailedCount()
	case connectorrun.FieldReplayedCount:
		return m.AddedReplayedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectorRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case connectorrun.FieldPulledCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPulledCount(v)
		return nil
	case connectorrun.FieldNormalizedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNormalizedCount(v)
		return nil
	case connectorrun.FieldInsertedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInsertedCount(v)
		return nil
	case connectorrun.FieldUpdatedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdatedCount(v)
		return nil
	case connectorrun.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedCount(v)
		return nil
	case connectorrun.FieldReplayedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReplayedCount(v)
		return nil
	}
	return fmt.Errorf("unknown ConnectorRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConnectorRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(connectorrun.FieldFinishedAt) {
		fields = append(fields, connectorrun.FieldFinishedAt)
	}
	if m.FieldCleared(connectorrun.FieldTriggeredBy) {
		fields = append(fields, connectorrun.FieldTriggeredBy)
	}
	if m.FieldCleared(connectorrun.FieldCheckpointBefore) {
		fields = append(fields, connectorrun.FieldCheckpointBefore)
	}
	if m.FieldCleared(connectorrun.FieldCheckpointAfter) {
		fields = append(fields, connectorrun.FieldCheckpointAfter)
	}
	if m.FieldCleared(connectorrun.FieldErrorMessage) {
		fields = append(fields, connectorrun.FieldErrorMessage)
	}
	if m.FieldCleared(connectorrun.FieldDetails) {
		fields = append(fields, connectorrun.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConnectorRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConnectorRunMutation) ClearField(name string) error {
	switch name {
	case connectorrun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case connectorrun.FieldTriggeredBy:
		m.ClearTriggeredBy()
		return nil
	case connectorrun.FieldCheckpointBefore:
		m.ClearCheckpointBefore()
		return nil
	case connectorrun.FieldCheckpointAfter:
		m.ClearCheckpointAfter()
		return nil
	case connectorrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case connectorrun.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown ConnectorRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConnectorRunMutation) ResetField(name string) error {
	switch name {
	case connectorrun.FieldConnectorName:
		m.ResetConnectorName()
		return nil
	case connectorrun.FieldSourceName:
		m.ResetSourceName()
		return nil
	case connectorrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case connectorrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case connectorrun.FieldStatus:
		m.ResetStatus()
		return nil
	case connectorrun.FieldTriggeredBy:
		m.ResetTriggeredBy()
		return nil
	case connectorrun.FieldPulledCount:
		m.ResetPulledCount()
		return nil
	case connectorrun.FieldNormalizedCount:
		m.ResetNormalizedCount()
		return nil
	case connectorrun.FieldInsertedCount:
		m.ResetInsertedCount()
		return nil
	case connectorrun.FieldUpdatedCount:
		m.ResetUpdatedCount()
		return nil
	case connectorrun.FieldFailedCount:
		m.ResetFailedCount()
		return nil
	case connectorrun.FieldReplayedCount:
		m.ResetReplayedCount()
		return nil
	case connectorrun.FieldCheckpointBefore:
		m.ResetCheckpointBefore()
		return nil
	case connectorrun.FieldCheckpointAfter:
		m.ResetCheckpointAfter()
		return nil
	case connectorrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case connectorrun.FieldDetails:
		m.ResetDetails()
		return nil
	}
	return fmt.Errorf("unknown ConnectorRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConnectorRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConnectorRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConnectorRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConnectorRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConnectorRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConnectorRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConnectorRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConnectorRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConnectorRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConnectorRun edge %s", name)
}

// EventRecordMutation represents an operation that mutates the EventRecord nodes in the graph.
type EventRecordMutation struct {
	config
	op             Op
	typ            string
	id             *int
	source_name    *string
	event_id       *string
	symbol         *string
	event_type     *string
	publish_time   *time.Time
	effective_time *time.Time
	polarity       *eventrecord.Polarity
	score          *float64
	addscore       *float64
	confidence     *float64
	addconfidence  *float64
	title          *string
	summary        *string
	raw_ref        *string
	tags           *[]string
	appendtags     []string
	metadata       *map[string]interface{}
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*EventRecord, error)
	predicates     []predicate.EventRecord
}

var _ ent.Mutation = (*EventRecordMutation)(nil)

// eventrecordOption allows management of the mutation configuration using functional options.
type eventrecordOption func(*EventRecordMutation)

// newEventRecordMutation creates new mutation for the EventRecord entity.
func newEventRecordMutation(c config, op Op, opts ...eventrecordOption) *EventRecordMutation {
	m := &EventRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeEventRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventRecordID sets the ID field of the mutation.
func withEventRecordID(id int) eventrecordOption {
	return func(m *EventRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *EventRecord
		)
		m.oldValue = func(ctx context.Context) (*EventRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EventRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEventRecord sets the old EventRecord of the mutation.
func withEventRecord(node *EventRecord) eventrecordOption {
	return func(m *EventRecordMutation) {
		m.oldValue = func(context.Context) (*EventRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EventRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceName sets the "source_name" field.
func (m *EventRecordMutation) SetSourceName(s string) {
	m.source_name = &s
}

// SourceName returns the value of the "source_name" field in the mutation.
func (m *EventRecordMutation) SourceName() (r string, exists bool) {
	v := m.source_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceName returns the old "source_name" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldSourceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceName: %w", err)
	}
	return oldValue.SourceName, nil
}

// ResetSourceName resets all changes to the "source_name" field.
func (m *EventRecordMutation) ResetSourceName() {
	m.source_name = nil
}

// SetEventID sets the "event_id" field.
func (m *EventRecordMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EventRecordMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EventRecordMutation) ResetEventID() {
	m.event_id = nil
}

// SetSymbol sets the "symbol" field.
func (m *EventRecordMutation) SetSymbol(s string) {
	m.symbol = &s
}

// Symbol returns the value of the "symbol" field in the mutation.
func (m *EventRecordMutation) Symbol() (r string, exists bool) {
	v := m.symbol
	if v == nil {
		return
	}
	return *v, true
}

// OldSymbol returns the old "symbol" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldSymbol(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymbol is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymbol requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymbol: %w", err)
	}
	return oldValue.Symbol, nil
}

// ResetSymbol resets all changes to the "symbol" field.
func (m *EventRecordMutation) ResetSymbol() {
	m.symbol = nil
}

// SetEventType sets the "event_type" field.
func (m *EventRecordMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventRecordMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventRecordMutation) ResetEventType() {
	m.event_type = nil
}

// SetPublishTime sets the "publish_time" field.
func (m *EventRecordMutation) SetPublishTime(t time.Time) {
	m.publish_time = &t
}

// PublishTime returns the value of the "publish_time" field in the mutation.
func (m *EventRecordMutation) PublishTime() (r time.Time, exists bool) {
	v := m.publish_time
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishTime returns the old "publish_time" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldPublishTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishTime: %w", err)
	}
	return oldValue.PublishTime, nil
}

// ResetPublishTime resets all changes to the "publish_time" field.
func (m *EventRecordMutation) ResetPublishTime() {
	m.publish_time = nil
}

// SetEffectiveTime sets the "effective_time" field.
func (m *EventRecordMutation) SetEffectiveTime(t time.Time) {
	m.effective_time = &t
}

// EffectiveTime returns the value of the "effective_time" field in the mutation.
func (m *EventRecordMutation) EffectiveTime() (r time.Time, exists bool) {
	v := m.effective_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveTime returns the old "effective_time" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldEffectiveTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveTime: %w", err)
	}
	return oldValue.EffectiveTime, nil
}

// ClearEffectiveTime clears the value of the "effective_time" field.
func (m *EventRecordMutation) ClearEffectiveTime() {
	m.effective_time = nil
	m.clearedFields[eventrecord.FieldEffectiveTime] = struct{}{}
}

// EffectiveTimeCleared returns if the "effective_time" field was cleared in this mutation.
func (m *EventRecordMutation) EffectiveTimeCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldEffectiveTime]
	return ok
}

// ResetEffectiveTime resets all changes to the "effective_time" field.
func (m *EventRecordMutation) ResetEffectiveTime() {
	m.effective_time = nil
	delete(m.clearedFields, eventrecord.FieldEffectiveTime)
}

// SetPolarity sets the "polarity" field.
func (m *EventRecordMutation) SetPolarity(e eventrecord.Polarity) {
	m.polarity = &e
}

// Polarity returns the value of the "polarity" field in the mutation.
func (m *EventRecordMutation) Polarity() (r eventrecord.Polarity, exists bool) {
	v := m.polarity
	if v == nil {
		return
	}
	return *v, true
}

// OldPolarity returns the old "polarity" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldPolarity(ctx context.Context) (v eventrecord.Polarity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolarity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolarity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolarity: %w", err)
	}
	return oldValue.Polarity, nil
}

// ResetPolarity resets all changes to the "polarity" field.
func (m *EventRecordMutation) ResetPolarity() {
	m.polarity = nil
}

// SetScore sets the "score" field.
func (m *EventRecordMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *EventRecordMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *EventRecordMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *EventRecordMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *EventRecordMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetConfidence sets the "confidence" field.
func (m *EventRecordMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *EventRecordMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *EventRecordMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *EventRecordMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *EventRecordMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetTitle sets the "title" field.
func (m *EventRecordMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *EventRecordMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *EventRecordMutation) ResetTitle() {
	m.title = nil
}

// SetSummary sets the "summary" field.
func (m *EventRecordMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *EventRecordMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *EventRecordMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[eventrecord.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *EventRecordMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *EventRecordMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, eventrecord.FieldSummary)
}

// SetRawRef sets the "raw_ref" field.
func (m *EventRecordMutation) SetRawRef(s string) {
	m.raw_ref = &s
}

// RawRef returns the value of the "raw_ref" field in the mutation.
func (m *EventRecordMutation) RawRef() (r string, exists bool) {
	v := m.raw_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldRawRef returns the old "raw_ref" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldRawRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawRef: %w", err)
	}
	return oldValue.RawRef, nil
}

// ClearRawRef clears the value of the "raw_ref" field.
func (m *EventRecordMutation) ClearRawRef() {
	m.raw_ref = nil
	m.clearedFields[eventrecord.FieldRawRef] = struct{}{}
}

// RawRefCleared returns if the "raw_ref" field was cleared in this mutation.
func (m *EventRecordMutation) RawRefCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldRawRef]
	return ok
}

// ResetRawRef resets all changes to the "raw_ref" field.
func (m *EventRecordMutation) ResetRawRef() {
	m.raw_ref = nil
	delete(m.clearedFields, eventrecord.FieldRawRef)
}

// SetTags sets the "tags" field.
func (m *EventRecordMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *EventRecordMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *EventRecordMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *EventRecordMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *EventRecordMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[eventrecord.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *EventRecordMutation) TagsCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *EventRecordMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, eventrecord.FieldTags)
}

// SetMetadata sets the "metadata" field.
func (m *EventRecordMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *EventRecordMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *EventRecordMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[eventrecord.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *EventRecordMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[eventrecord.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *EventRecordMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, eventrecord.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EventRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EventRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EventRecord entity.
// If the EventRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EventRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the EventRecordMutation builder.
func (m *EventRecordMutation) Where(ps ...predicate.EventRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EventRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EventRecord).
func (m *EventRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventRecordMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.source_name != nil {
		fields = append(fields, eventrecord.FieldSourceName)
	}
	if m.event_id != nil {
		fields = append(fields, eventrecord.FieldEventID)
	}
	if m.symbol != nil {
		fields = append(fields, eventrecord.FieldSymbol)
	}
	if m.event_type != nil {
		fields = append(fields, eventrecord.FieldEventType)
	}
	if m.publish_time != nil {
		fields = append(fields, eventrecord.FieldPublishTime)
	}
	if m.effective_time != nil {
		fields = append(fields, eventrecord.FieldEffectiveTime)
	}
	if m.polarity != nil {
		fields = append(fields, eventrecord.FieldPolarity)
	}
	if m.score != nil {
		fields = append(fields, eventrecord.FieldScore)
	}
	if m.confidence != nil {
		fields = append(fields, eventrecord.FieldConfidence)
	}
	if m.title != nil {
		fields = append(fields, eventrecord.FieldTitle)
	}
	if m.summary != nil {
		fields = append(fields, eventrecord.FieldSummary)
	}
	if m.raw_ref != nil {
		fields = append(fields, eventrecord.FieldRawRef)
	}
	if m.tags != nil {
		fields = append(fields, eventrecord.FieldTags)
	}
	if m.metadata != nil {
		fields = append(fields, eventrecord.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, eventrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, eventrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eventrecord.FieldSourceName:
		return m.SourceName()
	case eventrecord.FieldEventID:
		return m.EventID()
	case eventrecord.FieldSymbol:
		return m.Symbol()
	case eventrecord.FieldEventType:
		return m.EventType()
	case eventrecord.FieldPublishTime:
		return m.PublishTime()
	case eventrecord.FieldEffectiveTime:
		return m.EffectiveTime()
	case eventrecord.FieldPolarity:
		return m.Polarity()
	case eventrecord.FieldScore:
		return m.Score()
	case eventrecord.FieldConfidence:
		return m.Confidence()
	case eventrecord.FieldTitle:
		return m.Title()
	case eventrecord.FieldSummary:
		return m.Summary()
	case eventrecord.FieldRawRef:
		return m.RawRef()
	case eventrecord.FieldTags:
		return m.Tags()
	case eventrecord.FieldMetadata:
		return m.Metadata()
	case eventrecord.FieldCreatedAt:
		return m.CreatedAt()
	case eventrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eventrecord.FieldSourceName:
		return m.OldSourceName(ctx)
	case eventrecord.FieldEventID:
		return m.OldEventID(ctx)
	case eventrecord.FieldSymbol:
		return m.OldSymbol(ctx)
	case eventrecord.FieldEventType:
		return m.OldEventType(ctx)
	case eventrecord.FieldPublishTime:
		return m.OldPublishTime(ctx)
	case eventrecord.FieldEffectiveTime:
		return m.OldEffectiveTime(ctx)
	case eventrecord.FieldPolarity:
		return m.OldPolarity(ctx)
	case eventrecord.FieldScore:
		return m.OldScore(ctx)
	case eventrecord.FieldConfidence:
		return m.OldConfidence(ctx)
	case eventrecord.FieldTitle:
		return m.OldTitle(ctx)
	case eventrecord.FieldSummary:
		return m.OldSummary(ctx)
	case eventrecord.FieldRawRef:
		return m.OldRawRef(ctx)
	case eventrecord.FieldTags:
		return m.OldTags(ctx)
	case eventrecord.FieldMetadata:
		return m.OldMetadata(ctx)
	case eventrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case eventrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EventRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eventrecord.FieldSourceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceName(v)
		return nil
	case eventrecord.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case eventrecord.FieldSymbol:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymbol(v)
		return nil
	case eventrecord.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case eventrecord.FieldPublishTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishTime(v)
		return nil
	case eventrecord.FieldEffectiveTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveTime(v)
		return nil
	case eventrecord.FieldPolarity:
		v, ok := value.(eventrecord.Polarity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolarity(v)
		return nil
	case eventrecord.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case eventrecord.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case eventrecord.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case eventrecord.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case eventrecord.FieldRawRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawRef(v)
		return nil
	case eventrecord.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case eventrecord.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case eventrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case eventrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EventRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventRecordMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, eventrecord.FieldScore)
	}
	if m.addconfidence != nil {
		fields = append(fields, eventrecord.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case eventrecord.FieldScore:
		return m.AddedScore()
	case eventrecord.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case eventrecord.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case eventrecord.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown EventRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(eventrecord.FieldEffectiveTime) {
		fields = append(fields, eventrecord.FieldEffectiveTime)
	}
	if m.FieldCleared(eventrecord.FieldSummary) {
		fields = append(fields, eventrecord.FieldSummary)
	}
	if m.FieldCleared(eventrecord.FieldRawRef) {
		fields = append(fields, eventrecord.FieldRawRef)
	}
	if m.FieldCleared(eventrecord.FieldTags) {
		fields = append(fields, eventrecord.FieldTags)
	}
	if m.FieldCleared(eventrecord.FieldMetadata) {
		fields = append(fields, eventrecord.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventRecordMutation) ClearField(name string) error {
	switch name {
	case eventrecord.FieldEffectiveTime:
		m.ClearEffectiveTime()
		return nil
	case eventrecord.FieldSummary:
		m.ClearSummary()
		return nil
	case eventrecord.FieldRawRef:
		m.ClearRawRef()
		return nil
	case eventrecord.FieldTags:
		m.ClearTags()
		return nil
	case eventrecord.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown EventRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventRecordMutation) ResetField(name string) error {
	switch name {
	case eventrecord.FieldSourceName:
		m.ResetSourceName()
		return nil
	case eventrecord.FieldEventID:
		m.ResetEventID()
		return nil
	case eventrecord.FieldSymbol:
		m.ResetSymbol()
		return nil
	case eventrecord.FieldEventType:
		m.ResetEventType()
		return nil
	case eventrecord.FieldPublishTime:
		m.ResetPublishTime()
		return nil
	case eventrecord.FieldEffectiveTime:
		m.ResetEffectiveTime()
		return nil
	case eventrecord.FieldPolarity:
		m.ResetPolarity()
		return nil
	case eventrecord.FieldScore:
		m.ResetScore()
		return nil
	case eventrecord.FieldConfidence:
		m.ResetConfidence()
		return nil
	case eventrecord.FieldTitle:
		m.ResetTitle()
		return nil
	case eventrecord.FieldSummary:
		m.ResetSummary()
		return nil
	case eventrecord.FieldRawRef:
		m.ResetRawRef()
		return nil
	case eventrecord.FieldTags:
		m.ResetTags()
		return nil
	case eventrecord.FieldMetadata:
		m.ResetMetadata()
		return nil
	case eventrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case eventrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EventRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EventRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EventRecord edge %s", name)
}

// EventSourceMutation represents an operation that mutates the EventSource nodes in the graph.
type EventSourceMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	source_name              *string
	source_type              *eventsource.SourceType
	provider                 *string
	timezone                 *string
	ingestion_lag_minutes    *int
	addingestion_lag_minutes *int
	reliability_score        *float64
	addreliability_score     *float64
	created_by               *string
	note                     *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*EventSource, error)
	predicates               []predicate.EventSource
}

var _ ent.Mutation = (*EventSourceMutation)(nil)

// eventsourceOption allows management of the mutation configuration using functional options.
type eventsourceOption func(*EventSourceMutation)

// newEventSourceMutation creates new mutation for the EventSource entity.
func newEventSourceMutation(c config, op Op, opts ...eventsourceOption) *EventSourceMutation {
	m := &EventSourceMutation{
		config:        c,
		op:            op,
		typ:           TypeEventSource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventSourceID sets the ID field of the mutation.
func withEventSourceID(id int) eventsourceOption {
	return func(m *EventSourceMutation) {
		var (
			err   error
			once  sync.Once
			value *EventSource
		)
		m.oldValue = func(ctx context.Context) (*EventSource, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EventSource.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEventSource sets the old EventSource of the mutation.
func withEventSource(node *EventSource) eventsourceOption {
	return func(m *EventSourceMutation) {
		m.oldValue = func(context.Context) (*EventSource, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventSourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventSourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventSourceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventSourceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EventSource.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceName sets the "source_name" field.
func (m *EventSourceMutation) SetSourceName(s string) {
	m.source_name = &s
}

// SourceName returns the value of the "source_name" field in the mutation.
func (m *EventSourceMutation) SourceName() (r string, exists bool) {
	v := m.source_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceName returns the old "source_name" field's value of the EventSource entity.
// If the EventSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventSourceMutation) OldSourceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceName: %w", err)
	}
	return oldValue.SourceName, nil
}

// ResetSourceName resets all changes to the "source_name" field.
func (m *EventSourceMutation) ResetSourceName() {
	m.source_name = nil
}

// SetSourceType sets the "source_type" field.
func (m *EventSourceMutation) SetSourceType(et eventsource.SourceType) {
	m.source_type = &et
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *EventSourceMutation) SourceType() (r eventsource.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the EventSource entity.
// If the EventSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventSourceMutation) OldSourceType(ctx context.Context) (v eventsource.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *EventSourceMutation) ResetSourceType() {
	m.source_type = nil
}

// SetProvider sets the "provider" field.
func (m *EventSourceMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *EventSourceMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the EventSource entity.
// If the EventSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventSourceMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ClearProvider clears the value of the "provider" field.
func (m *EventSourceMutation) ClearProvider() {
	m.provider = nil
	m.clearedFields[eventsource.FieldProvider] = struct{}{}
}

// ProviderCleared returns if the "provider" field was cleared in this mutation.
func (m *EventSourceMutation) ProviderCleared() bool {
	_, ok := m.clearedFields[eventsource.FieldProvider]
	return ok
}

// ResetProvider resets all changes to the "provider" field.
func (m *EventSourceMutation) ResetProvider() {
	m.provider = nil
	delete(m.clearedFields, eventsource.FieldProvider)
}

// SetTimezone sets the "timezone" field.
func (m *EventSourceMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *EventSourceMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the EventSource entity.
// If the EventSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventSourceMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *EventSourceMutation) ResetTimezone() {
	m.timezone = nil
}

// SetIngestionLagMinutes sets the "ingestion_lag_minutes" field.
func (m *EventSourceMutation) SetIngestionLagMinutes(i int) {
	m.ingestion_lag_minutes = &i
	m.addingestion_lag_minutes = nil
}

// IngestionLagMinutes returns the value of the "ingestion_lag_minutes" field in the mutation.
func (m *EventSourceMutation) IngestionLagMinutes() (r int, exists bool) {
	v := m.ingestion_lag_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestionLagMinutes returns the old "ingestion_lag_minutes" field's value of the EventSource entity.
// If the EventSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventSourceMutation) OldIngestionLagMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestionLagMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestionLagMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestionLagMinutes: %w", err)
	}
	return oldValue.IngestionLagMinutes, nil
}

// AddIngestionLagMinutes adds i to the "ingestion_lag_minutes" field.
func (m *EventSourceMutation) AddIngestionLagMinutes(i int) {
	if m.addingestion_lag_minutes != nil {
		*m.addingestion_lag_minutes += i
	} else {
		m.addingestion_lag_minutes = &i
	}
}

// AddedIngestionLagMinutes returns the value that was added to the "ingestion_lag_minutes" field in this mutation.
func (m *EventSourceMutation) AddedIngestionLagMinutes() (r int, exists bool) {
	v := m.addingestion_lag_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetIngestionLagMinutes resets all changes to the "ingestion_lag_minutes" field.
func (m *EventSourceMutation) ResetIngestionLagMinutes() {
	m.ingestion_lag_minutes = nil
	m.addingestion_lag_minutes = nil
}

// SetReliabilityScore sets the "reliability_score" field.
func (m *EventSourceMutation) SetReliabilityScore(f float64) {
	m.reliability_score = &f
	m.addreliability_score = nil
}

// ReliabilityScore returns the value of the "reliability_score" field in the mutation.
func (m *EventSourceMutation) ReliabilityScore() (r float64, exists bool) {
	v := m.reliability_score
	if v == nil {
		return
	}
	return *v, true
}

// OldReliabilityScore returns the old "reliability_score" field's value of the EventSource entity.
// If the EventSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventSourceMutation) OldReliabilityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReliabilityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReliabilityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReliabilityScore: %w", err)
	}
	return oldValue.ReliabilityScore, nil
}

// AddReliabilityScore adds f to the "reliability_score" field.
func (m *EventSourceMutation) AddReliabilityScore(f float64) {
	if m.addreliability_score != nil {
		*m.addreliability_score += f
	} else {
		m.addreliability_score = &f
	}
}

// AddedReliabilityScore returns the value that was added to the "reliability_score" field in this mutation.
func (m *EventSourceMutation) AddedReliabilityScore() (r float64, exists bool) {
	v := m.addreliability_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetReliabilityScore resets all changes to the "reliability_score" field.
func (m *EventSourceMutation) ResetReliabilityScore() {
	m.reliability_score = nil
	m.addreliability_score = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *EventSourceMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *EventSourceMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the EventSource entity.
// If the EventSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventSourceMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *EventSourceMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[eventsource.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *EventSourceMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[eventsource.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *EventSourceMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, eventsource.FieldCreatedBy)
}

// SetNote sets the "note" field.
func (m *EventSourceMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *EventSourceMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the EventSource entity.
// If the EventSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventSourceMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *EventSourceMutation) ClearNote() {
	m.note = nil
	m.clearedFields[eventsource.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *EventSourceMutation) NoteCleared() bool {
	_, ok := m.clearedFields[eventsource.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *EventSourceMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, eventsource.FieldNote)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventSourceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventSourceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EventSource entity.
// If the EventSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventSourceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventSourceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EventSourceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EventSourceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EventSource entity.
// If the EventSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventSourceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EventSourceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the EventSourceMutation builder.
func (m *EventSourceMutation) Where(ps ...predicate.EventSource) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventSourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventSourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EventSource, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventSourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventSourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EventSource).
func (m *EventSourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventSourceMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.source_name != nil {
		fields = append(fields, eventsource.FieldSourceName)
	}
	if m.source_type != nil {
		fields = append(fields, eventsource.FieldSourceType)
	}
	if m.provider != nil {
		fields = append(fields, eventsource.FieldProvider)
	}
	if m.timezone != nil {
		fields = append(fields, eventsource.FieldTimezone)
	}
	if m.ingestion_lag_minutes != nil {
		fields = append(fields, eventsource.FieldIngestionLagMinutes)
	}
	if m.reliability_score != nil {
		fields = append(fields, eventsource.FieldReliabilityScore)
	}
	if m.created_by != nil {
		fields = append(fields, eventsource.FieldCreatedBy)
	}
	if m.note != nil {
		fields = append(fields, eventsource.FieldNote)
	}
	if m.created_at != nil {
		fields = append(fields, eventsource.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, eventsource.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventSourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eventsource.FieldSourceName:
		return m.SourceName()
	case eventsource.FieldSourceType:
		return m.SourceType()
	case eventsource.FieldProvider:
		return m.Provider()
	case eventsource.FieldTimezone:
		return m.Timezone()
	case eventsource.FieldIngestionLagMinutes:
		return m.IngestionLagMinutes()
	case eventsource.FieldReliabilityScore:
		return m.ReliabilityScore()
	case eventsource.FieldCreatedBy:
		return m.CreatedBy()
	case eventsource.FieldNote:
		return m.Note()
	case eventsource.FieldCreatedAt:
		return m.CreatedAt()
	case eventsource.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventSourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eventsource.FieldSourceName:
		return m.OldSourceName(ctx)
	case eventsource.FieldSourceType:
		return m.OldSourceType(ctx)
	case eventsource.FieldProvider:
		return m.OldProvider(ctx)
	case eventsource.FieldTimezone:
		return m.OldTimezone(ctx)
	case eventsource.FieldIngestionLagMinutes:
		return m.OldIngestionLagMinutes(ctx)
	case eventsource.FieldReliabilityScore:
		return m.OldReliabilityScore(ctx)
	case eventsource.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case eventsource.FieldNote:
		return m.OldNote(ctx)
	case eventsource.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case eventsource.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EventSource field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventSourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eventsource.FieldSourceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceName(v)
		return nil
	case eventsource.FieldSourceType:
		v, ok := value.(eventsource.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case eventsource.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case eventsource.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case eventsource.FieldIngestionLagMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestionLagMinutes(v)
		return nil
	case eventsource.FieldReliabilityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReliabilityScore(v)
		return nil
	case eventsource.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case eventsource.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case eventsource.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case eventsource.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EventSource field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventSourceMutation) AddedFields() []string {
	var fields []string
	if m.addingestion_lag_minutes != nil {
		fields = append(fields, eventsource.FieldIngestionLagMinutes)
	}
	if m.addreliability_score != nil {
		fields = append(fields, eventsource.FieldReliabilityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventSourceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case eventsource.FieldIngestionLagMinutes:
		return m.AddedIngestionLagMinutes()
	case eventsource.FieldReliabilityScore:
		return m.AddedReliabilityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventSourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case eventsource.FieldIngestionLagMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIngestionLagMinutes(v)
		return nil
	case eventsource.FieldReliabilityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReliabilityScore(v)
		return nil
	}
	return fmt.Errorf("unknown EventSource numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventSourceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(eventsource.FieldProvider) {
		fields = append(fields, eventsource.FieldProvider)
	}
	if m.FieldCleared(eventsource.FieldCreatedBy) {
		fields = append(fields, eventsource.FieldCreatedBy)
	}
	if m.FieldCleared(eventsource.FieldNote) {
		fields = append(fields, eventsource.FieldNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventSourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventSourceMutation) ClearField(name string) error {
	switch name {
	case eventsource.FieldProvider:
		m.ClearProvider()
		return nil
	case eventsource.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case eventsource.FieldNote:
		m.ClearNote()
		return nil
	}
	return fmt.Errorf("unknown EventSource nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventSourceMutation) ResetField(name string) error {
	switch name {
	case eventsource.FieldSourceName:
		m.ResetSourceName()
		return nil
	case eventsource.FieldSourceType:
		m.ResetSourceType()
		return nil
	case eventsource.FieldProvider:
		m.ResetProvider()
		return nil
	case eventsource.FieldTimezone:
		m.ResetTimezone()
		return nil
	case eventsource.FieldIngestionLagMinutes:
		m.ResetIngestionLagMinutes()
		return nil
	case eventsource.FieldReliabilityScore:
		m.ResetReliabilityScore()
		return nil
	case eventsource.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case eventsource.FieldNote:
		m.ResetNote()
		return nil
	case eventsource.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case eventsource.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EventSource field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventSourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventSourceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventSourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventSourceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventSourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventSourceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventSourceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EventSource unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventSourceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EventSource edge %s", name)
}

// NLPConsensusMutation represents an operation that mutates the NLPConsensus nodes in the graph.
type NLPConsensusMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	source_name            *string
	event_id               *string
	consensus_event_type   *string
	consensus_polarity     *string
	consensus_score        *float64
	addconsensus_score     *float64
	confidence             *float64
	addconfidence          *float64
	label_count            *int
	addlabel_count         *int
	conflict               *bool
	conflict_reasons       *[]string
	appendconflict_reasons []string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*NLPConsensus, error)
	predicates             []predicate.NLPConsensus
}

var _ ent.Mutation = (*NLPConsensusMutation)(nil)

// nlpconsensusOption allows management of the mutation configuration using functional options.
type nlpconsensusOption func(*NLPConsensusMutation)

// newNLPConsensusMutation creates new mutation for the NLPConsensus entity.
func newNLPConsensusMutation(c config, op Op, opts ...nlpconsensusOption) *NLPConsensusMutation {
	m := &NLPConsensusMutation{
		config:        c,
		op:            op,
		typ:           TypeNLPConsensus,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNLPConsensusID sets the ID field of the mutation.
func withNLPConsensusID(id int) nlpconsensusOption {
	return func(m *NLPConsensusMutation) {
		var (
			err   error
			once  sync.Once
			value *NLPConsensus
		)
		m.oldValue = func(ctx context.Context) (*NLPConsensus, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NLPConsensus.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNLPConsensus sets the old NLPConsensus of the mutation.
func withNLPConsensus(node *NLPConsensus) nlpconsensusOption {
	return func(m *NLPConsensusMutation) {
		m.oldValue = func(context.Context) (*NLPConsensus, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NLPConsensusMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NLPConsensusMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NLPConsensusMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NLPConsensusMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NLPConsensus.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceName sets the "source_name" field.
func (m *NLPConsensusMutation) SetSourceName(s string) {
	m.source_name = &s
}

// SourceName returns the value of the "source_name" field in the mutation.
func (m *NLPConsensusMutation) SourceName() (r string, exists bool) {
	v := m.source_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceName returns the old "source_name" field's value of the NLPConsensus entity.
// If the NLPConsensus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPConsensusMutation) OldSourceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceName: %w", err)
	}
	return oldValue.SourceName, nil
}

// ResetSourceName resets all changes to the "source_name" field.
func (m *NLPConsensusMutation) ResetSourceName() {
	m.source_name = nil
}

// SetEventID sets the "event_id" field.
func (m *NLPConsensusMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *NLPConsensusMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the NLPConsensus entity.
// If the NLPConsensus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPConsensusMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *NLPConsensusMutation) ResetEventID() {
	m.event_id = nil
}

// SetConsensusEventType sets the "consensus_event_type" field.
func (m *NLPConsensusMutation) SetConsensusEventType(s string) {
	m.consensus_event_type = &s
}

// ConsensusEventType returns the value of the "consensus_event_type" field in the mutation.
func (m *NLPConsensusMutation) ConsensusEventType() (r string, exists bool) {
	v := m.consensus_event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldConsensusEventType returns the old "consensus_event_type" field's value of the NLPConsensus entity.
// If the NLPConsensus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPConsensusMutation) OldConsensusEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsensusEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsensusEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsensusEventType: %w", err)
	}
	return oldValue.ConsensusEventType, nil
}

// ResetConsensusEventType resets all changes to the "consensus_event_type" field.
func (m *NLPConsensusMutation) ResetConsensusEventType() {
	m.consensus_event_type = nil
}

// SetConsensusPolarity sets the "consensus_polarity" field.
func (m *NLPConsensusMutation) SetConsensusPolarity(s string) {
	m.consensus_polarity = &s
}

// ConsensusPolarity returns the value of the "consensus_polarity" field in the mutation.
func (m *NLPConsensusMutation) ConsensusPolarity() (r string, exists bool) {
	v := m.consensus_polarity
	if v == nil {
		return
	}
	return *v, true
}

// OldConsensusPolarity returns the old "consensus_polarity" field's value of the NLPConsensus entity.
// If the NLPConsensus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPConsensusMutation) OldConsensusPolarity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsensusPolarity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsensusPolarity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsensusPolarity: %w", err)
	}
	return oldValue.ConsensusPolarity, nil
}

// ResetConsensusPolarity resets all changes to the "consensus_polarity" field.
func (m *NLPConsensusMutation) ResetConsensusPolarity() {
	m.consensus_polarity = nil
}

// SetConsensusScore sets the "consensus_score" field.
func (m *NLPConsensusMutation) SetConsensusScore(f float64) {
	m.consensus_score = &f
	m.addconsensus_score = nil
}

// ConsensusScore returns the value of the "consensus_score" field in the mutation.
func (m *NLPConsensusMutation) ConsensusScore() (r float64, exists bool) {
	v := m.consensus_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConsensusScore returns the old "consensus_score" field's value of the NLPConsensus entity.
// If the NLPConsensus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPConsensusMutation) OldConsensusScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsensusScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsensusScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsensusScore: %w", err)
	}
	return oldValue.ConsensusScore, nil
}

// AddConsensusScore adds f to the "consensus_score" field.
func (m *NLPConsensusMutation) AddConsensusScore(f float64) {
	if m.addconsensus_score != nil {
		*m.addconsensus_score += f
	} else {
		m.addconsensus_score = &f
	}
}

// AddedConsensusScore returns the value that was added to the "consensus_score" field in this mutation.
func (m *NLPConsensusMutation) AddedConsensusScore() (r float64, exists bool) {
	v := m.addconsensus_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsensusScore resets all changes to the "consensus_score" field.
func (m *NLPConsensusMutation) ResetConsensusScore() {
	m.consensus_score = nil
	m.addconsensus_score = nil
}

// SetConfidence sets the "confidence" field.
func (m *NLPConsensusMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *NLPConsensusMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the NLPConsensus entity.
// If the NLPConsensus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPConsensusMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *NLPConsensusMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *NLPConsensusMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *NLPConsensusMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetLabelCount sets the "label_count" field.
func (m *NLPConsensusMutation) SetLabelCount(i int) {
	m.label_count = &i
	m.addlabel_count = nil
}

// LabelCount returns the value of the "label_count" field in the mutation.
func (m *NLPConsensusMutation) LabelCount() (r int, exists bool) {
	v := m.label_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLabelCount returns the old "label_count" field's value of the NLPConsensus entity.
// If the NLPConsensus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPConsensusMutation) OldLabelCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabelCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabelCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabelCount: %w", err)
	}
	return oldValue.LabelCount, nil
}

// AddLabelCount adds i to the "label_count" field.
func (m *NLPConsensusMutation) AddLabelCount(i int) {
	if m.addlabel_count != nil {
		*m.addlabel_count += i
	} else {
		m.addlabel_count = &i
	}
}

// AddedLabelCount returns the value that was added to the "label_count" field in this mutation.
func (m *NLPConsensusMutation) AddedLabelCount() (r int, exists bool) {
	v := m.addlabel_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLabelCount resets all changes to the "label_count" field.
func (m *NLPConsensusMutation) ResetLabelCount() {
	m.label_count = nil
	m.addlabel_count = nil
}

// SetConflict sets the "conflict" field.
func (m *NLPConsensusMutation) SetConflict(b bool) {
	m.conflict = &b
}

// Conflict returns the value of the "conflict" field in the mutation.
func (m *NLPConsensusMutation) Conflict() (r bool, exists bool) {
	v := m.conflict
	if v == nil {
		return
	}
	return *v, true
}

// OldConflict returns the old "conflict" field's value of the NLPConsensus entity.
// If the NLPConsensus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPConsensusMutation) OldConflict(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflict: %w", err)
	}
	return oldValue.Conflict, nil
}

// ResetConflict resets all changes to the "conflict" field.
func (m *NLPConsensusMutation) ResetConflict() {
	m.conflict = nil
}

// SetConflictReasons sets the "conflict_reasons" field.
func (m *NLPConsensusMutation) SetConflictReasons(s []string) {
	m.conflict_reasons = &s
	m.appendconflict_reasons = nil
}

// ConflictReasons returns the value of the "conflict_reasons" field in the mutation.
func (m *NLPConsensusMutation) ConflictReasons() (r []string, exists bool) {
	v := m.conflict_reasons
	if v == nil {
		return
	}
	return *v, true
}

// OldConflictReasons returns the old "conflict_reasons" field's value of the NLPConsensus entity.
// If the NLPConsensus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPConsensusMutation) OldConflictReasons(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflictReasons is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflictReasons requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflictReasons: %w", err)
	}
	return oldValue.ConflictReasons, nil
}

// AppendConflictReasons adds s to the "conflict_reasons" field.
func (m *NLPConsensusMutation) AppendConflictReasons(s []string) {
	m.appendconflict_reasons = append(m.appendconflict_reasons, s...)
}

// AppendedConflictReasons returns the list of values that were appended to the "conflict_reasons" field in this mutation.
func (m *NLPConsensusMutation) AppendedConflictReasons() ([]string, bool) {
	if len(m.appendconflict_reasons) == 0 {
		return nil, false
	}
	return m.appendconflict_reasons, true
}

// ClearConflictReasons clears the value of the "conflict_reasons" field.
func (m *NLPConsensusMutation) ClearConflictReasons() {
	m.conflict_reasons = nil
	m.appendconflict_reasons = nil
	m.clearedFields[nlpconsensus.FieldConflictReasons] = struct{}{}
}

// ConflictReasonsCleared returns if the "conflict_reasons" field was cleared in this mutation.
func (m *NLPConsensusMutation) ConflictReasonsCleared() bool {
	_, ok := m.clearedFields[nlpconsensus.FieldConflictReasons]
	return ok
}

// ResetConflictReasons resets all changes to the "conflict_reasons" field.
func (m *NLPConsensusMutation) ResetConflictReasons() {
	m.conflict_reasons = nil
	m.appendconflict_reasons = nil
	delete(m.clearedFields, nlpconsensus.FieldConflictReasons)
}

// SetCreatedAt sets the "created_at" field.
func (m *NLPConsensusMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NLPConsensusMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NLPConsensus entity.
// If the NLPConsensus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPConsensusMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NLPConsensusMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NLPConsensusMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NLPConsensusMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the NLPConsensus entity.
// If the NLPConsensus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPConsensusMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NLPConsensusMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the NLPConsensusMutation builder.
func (m *NLPConsensusMutation) Where(ps ...predicate.NLPConsensus) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NLPConsensusMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NLPConsensusMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NLPConsensus, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NLPConsensusMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NLPConsensusMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NLPConsensus).
func (m *NLPConsensusMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NLPConsensusMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.source_name != nil {
		fields = append(fields, nlpconsensus.FieldSourceName)
	}
	if m.event_id != nil {
		fields = append(fields, nlpconsensus.FieldEventID)
	}
	if m.consensus_event_type != nil {
		fields = append(fields, nlpconsensus.FieldConsensusEventType)
	}
	if m.consensus_polarity != nil {
		fields = append(fields, nlpconsensus.FieldConsensusPolarity)
	}
	if m.consensus_score != nil {
		fields = append(fields, nlpconsensus.FieldConsensusScore)
	}
	if m.confidence != nil {
		fields = append(fields, nlpconsensus.FieldConfidence)
	}
	if m.label_count != nil {
		fields = append(fields, nlpconsensus.FieldLabelCount)
	}
	if m.conflict != nil {
		fields = append(fields, nlpconsensus.FieldConflict)
	}
	if m.conflict_reasons != nil {
		fields = append(fields, nlpconsensus.FieldConflictReasons)
	}
	if m.created_at != nil {
		fields = append(fields, nlpconsensus.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, nlpconsensus.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NLPConsensusMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case nlpconsensus.FieldSourceName:
		return m.SourceName()
	case nlpconsensus.FieldEventID:
		return m.EventID()
	case nlpconsensus.FieldConsensusEventType:
		return m.ConsensusEventType()
	case nlpconsensus.FieldConsensusPolarity:
		return m.ConsensusPolarity()
	case nlpconsensus.FieldConsensusScore:
		return m.ConsensusScore()
	case nlpconsensus.FieldConfidence:
		return m.Confidence()
	case nlpconsensus.FieldLabelCount:
		return m.LabelCount()
	case nlpconsensus.FieldConflict:
		return m.Conflict()
	case nlpconsensus.FieldConflictReasons:
		return m.ConflictReasons()
	case nlpconsensus.FieldCreatedAt:
		return m.CreatedAt()
	case nlpconsensus.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NLPConsensusMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case nlpconsensus.FieldSourceName:
		return m.OldSourceName(ctx)
	case nlpconsensus.FieldEventID:
		return m.OldEventID(ctx)
	case nlpconsensus.FieldConsensusEventType:
		return m.OldConsensusEventType(ctx)
	case nlpconsensus.FieldConsensusPolarity:
		return m.OldConsensusPolarity(ctx)
	case nlpconsensus.FieldConsensusScore:
		return m.OldConsensusScore(ctx)
	case nlpconsensus.FieldConfidence:
		return m.OldConfidence(ctx)
	case nlpconsensus.FieldLabelCount:
		return m.OldLabelCount(ctx)
	case nlpconsensus.FieldConflict:
		return m.OldConflict(ctx)
	case nlpconsensus.FieldConflictReasons:
		return m.OldConflictReasons(ctx)
	case nlpconsensus.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case nlpconsensus.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NLPConsensus field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NLPConsensusMutation) SetField(name string, value ent.Value) error {
	switch name {
	case nlpconsensus.FieldSourceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceName(v)
		return nil
	case nlpconsensus.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case nlpconsensus.FieldConsensusEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsensusEventType(v)
		return nil
	case nlpconsensus.FieldConsensusPolarity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsensusPolarity(v)
		return nil
	case nlpconsensus.FieldConsensusScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsensusScore(v)
		return nil
	case nlpconsensus.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case nlpconsensus.FieldLabelCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabelCount(v)
		return nil
	case nlpconsensus.FieldConflict:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflict(v)
		return nil
	case nlpconsensus.FieldConflictReasons:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflictReasons(v)
		return nil
	case nlpconsensus.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case nlpconsensus.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NLPConsensus field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NLPConsensusMutation) AddedFields() []string {
	var fields []string
	if m.addconsensus_score != nil {
		fields = append(fields, nlpconsensus.FieldConsensusScore)
	}
	if m.addconfidence != nil {
		fields = append(fields, nlpconsensus.FieldConfidence)
	}
	if m.addlabel_count != nil {
		fields = append(fields, nlpconsensus.FieldLabelCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NLPConsensusMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case nlpconsensus.FieldConsensusScore:
		return m.AddedConsensusScore()
	case nlpconsensus.FieldConfidence:
		return m.AddedConfidence()
	case nlpconsensus.FieldLabelCount:
		return m.AddedLabelCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NLPConsensusMutation) AddField(name string, value ent.Value) error {
	switch name {
	case nlpconsensus.FieldConsensusScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsensusScore(v)
		return nil
	case nlpconsensus.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case nlpconsensus.FieldLabelCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLabelCount(v)
		return nil
	}
	return fmt.Errorf("unknown NLPConsensus numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NLPConsensusMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(nlpconsensus.FieldConflictReasons) {
		fields = append(fields, nlpconsensus.FieldConflictReasons)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NLPConsensusMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NLPConsensusMutation) ClearField(name string) error {
	switch name {
	case nlpconsensus.FieldConflictReasons:
		m.ClearConflictReasons()
		return nil
	}
	return fmt.Errorf("unknown NLPConsensus nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NLPConsensusMutation) ResetField(name string) error {
	switch name {
	case nlpconsensus.FieldSourceName:
		m.ResetSourceName()
		return nil
	case nlpconsensus.FieldEventID:
		m.ResetEventID()
		return nil
	case nlpconsensus.FieldConsensusEventType:
		m.ResetConsensusEventType()
		return nil
	case nlpconsensus.FieldConsensusPolarity:
		m.ResetConsensusPolarity()
		return nil
	case nlpconsensus.FieldConsensusScore:
		m.ResetConsensusScore()
		return nil
	case nlpconsensus.FieldConfidence:
		m.ResetConfidence()
		return nil
	case nlpconsensus.FieldLabelCount:
		m.ResetLabelCount()
		return nil
	case nlpconsensus.FieldConflict:
		m.ResetConflict()
		return nil
	case nlpconsensus.FieldConflictReasons:
		m.ResetConflictReasons()
		return nil
	case nlpconsensus.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case nlpconsensus.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown NLPConsensus field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NLPConsensusMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NLPConsensusMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NLPConsensusMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NLPConsensusMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NLPConsensusMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NLPConsensusMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NLPConsensusMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NLPConsensus unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NLPConsensusMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NLPConsensus edge %s", name)
}

// NLPDriftSnapshotMutation represents an operation that mutates the NLPDriftSnapshot nodes in the graph.
type NLPDriftSnapshotMutation struct {
	config
	op                                    Op
	typ                                   string
	id                                    *int
	source_name                           *string
	ruleset_version                       *string
	current_window                        *string
	baseline_window                       *string
	sample_size                           *int
	addsample_size                        *int
	baseline_sample_size                  *int
	addbaseline_sample_size               *int
	current_metrics                       *map[string]interface{}
	baseline_metrics                      *map[string]interface{}
	hit_rate_delta                        *float64
	addhit_rate_delta                     *float64
	score_p50_delta                       *float64
	addscore_p50_delta                    *float64
	contribution_delta                    *float64
	addcontribution_delta                 *float64
	feedback_polarity_accuracy_delta      *float64
	addfeedback_polarity_accuracy_delta   *float64
	feedback_event_type_accuracy_delta    *float64
	addfeedback_event_type_accuracy_delta *float64
	alerts                                *[]models.DriftAlert
	appendalerts                          []models.DriftAlert
	payload                               *map[string]interface{}
	created_at                            *time.Time
	clearedFields                         map[string]struct{}
	done                                  bool
	oldValue                              func(context.Context) (*NLPDriftSnapshot, error)
	predicates                            []predicate.NLPDriftSnapshot
}

var _ ent.Mutation = (*NLPDriftSnapshotMutation)(nil)

// nlpdriftsnapshotOption allows management of the mutation configuration using functional options.
type nlpdriftsnapshotOption func(*NLPDriftSnapshotMutation)

// newNLPDriftSnapshotMutation creates new mutation for the NLPDriftSnapshot entity.
func newNLPDriftSnapshotMutation(c config, op Op, opts ...nlpdriftsnapshotOption) *NLPDriftSnapshotMutation {
	m := &NLPDriftSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeNLPDriftSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNLPDriftSnapshotID sets the ID field of the mutation.
func withNLPDriftSnapshotID(id int) nlpdriftsnapshotOption {
	return func(m *NLPDriftSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *NLPDriftSnapshot
		)
		m.oldValue = func(ctx context.Context) (*NLPDriftSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NLPDriftSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNLPDriftSnapshot sets the old NLPDriftSnapshot of the mutation.
func withNLPDriftSnapshot(node *NLPDriftSnapshot) nlpdriftsnapshotOption {
	return func(m *NLPDriftSnapshotMutation) {
		m.oldValue = func(context.Context) (*NLPDriftSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NLPDriftSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NLPDriftSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NLPDriftSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NLPDriftSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NLPDriftSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceName sets the "source_name" field.
func (m *NLPDriftSnapshotMutation) SetSourceName(s string) {
	m.source_name = &s
}

// SourceName returns the value of the "source_name" field in the mutation.
func (m *NLPDriftSnapshotMutation) SourceName() (r string, exists bool) {
	v := m.source_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceName returns the old "source_name" field's value of the NLPDriftSnapshot entity.
// If the NLPDriftSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPDriftSnapshotMutation) OldSourceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceName: %w", err)
	}
	return oldValue.SourceName, nil
}

// ClearSourceName clears the value of the "source_name" field.
func (m *NLPDriftSnapshotMutation) ClearSourceName() {
	m.source_name = nil
	m.clearedFields[nlpdriftsnapshot.FieldSourceName] = struct{}{}
}

// SourceNameCleared returns if the "source_name" field was cleared in this mutation.
func (m *NLPDriftSnapshotMutation) SourceNameCleared() bool {
	_, ok := m.clearedFields[nlpdriftsnapshot.FieldSourceName]
	return ok
}

// ResetSourceName resets all changes to the "source_name" field.
func (m *NLPDriftSnapshotMutation) ResetSourceName() {
	m.source_name = nil
	delete(m.clearedFields, nlpdriftsnapshot.FieldSourceName)
}

// SetRulesetVersion sets the "ruleset_version" field.
func (m *NLPDriftSnapshotMutation) SetRulesetVersion(s string) {
	m.ruleset_version = &s
}

// RulesetVersion returns the value of the "ruleset_version" field in the mutation.
func (m *NLPDriftSnapshotMutation) RulesetVersion() (r string, exists bool) {
	v := m.ruleset_version
	if v == nil {
		return
	}
	return *v, true
}

// OldRulesetVersion returns the old "ruleset_version" field's value of the NLPDriftSnapshot entity.
// If the NLPDriftSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPDriftSnapshotMutation) OldRulesetVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRulesetVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRulesetVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRulesetVersion: %w", err)
	}
	return oldValue.RulesetVersion, nil
}

// ResetRulesetVersion resets all changes to the "ruleset_version" field.
func (m *NLPDriftSnapshotMutation) ResetRulesetVersion() {
	m.ruleset_version = nil
}

// SetCurrentWindow sets the "current_window" field.
func (m *NLPDriftSnapshotMutation) SetCurrentWindow(s string) {
	m.current_window = &s
}

// CurrentWindow returns the value of the "current_window" field in the mutation.
func (m *NLPDriftSnapshotMutation) CurrentWindow() (r string, exists bool) {
	v := m.current_window
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentWindow returns the old "current_window" field's value of the NLPDriftSnapshot entity.
// If the NLPDriftSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPDriftSnapshotMutation) OldCurrentWindow(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentWindow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentWindow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentWindow: %w", err)
	}
	return oldValue.CurrentWindow, nil
}

// ResetCurrentWindow resets all changes to the "current_window" field.
func (m *NLPDriftSnapshotMutation) ResetCurrentWindow() {
	m.current_window = nil
}

// SetBaselineWindow sets the "baseline_window" field.
func (m *NLPDriftSnapshotMutation) SetBaselineWindow(s string) {
	m.baseline_window = &s
}

// BaselineWindow returns the value of the "baseline_window" field in the mutation.
func (m *NLPDriftSnapshotMutation) BaselineWindow() (r string, exists bool) {
	v := m.baseline_window
	if v == nil {
		return
	}
	return *v, true
}

// OldBaselineWindow returns the old "baseline_window" field's value of the NLPDriftSnapshot entity.
// If the NLPDriftSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPDriftSnapshotMutation) OldBaselineWindow(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaselineWindow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaselineWindow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaselineWindow: %w", err)
	}
	return oldValue.BaselineWindow, nil
}

// ResetBaselineWindow resets all changes to the "baseline_window" field.
func (m *NLPDriftSnapshotMutation) ResetBaselineWindow() {
	m.baseline_window = nil
}

// SetSampleSize sets the "sample_size" field.
func (m *NLPDriftSnapshotMutation) SetSampleSize(i int) {
	m.sample_size = &i
	m.addsample_size = nil
}

// SampleSize returns the value of the "sample_size" field in the mutation.
func (m *NLPDriftSnapshotMutation) SampleSize() (r int, exists bool) {
	v := m.sample_size
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleSize returns the old "sample_size" field's value of the NLPDriftSnapshot entity.
// If the NLPDriftSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPDriftSnapshotMutation) OldSampleSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleSize: %w", err)
	}
	return oldValue.SampleSize, nil
}

// AddSampleSize adds i to the "sample_size" field.
func (m *NLPDriftSnapshotMutation) AddSampleSize(i int) {
	if m.addsample_size != nil {
		*m.addsample_size += i
	} else {
		m.addsample_size = &i
	}
}

// AddedSampleSize returns the value that was added to the "sample_size" field in this mutation.
func (m *NLPDriftSnapshotMutation) AddedSampleSize() (r int, exists bool) {
	v := m.addsample_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetSampleSize resets all changes to the "sample_size" field.
func (m *NLPDriftSnapshotMutation) ResetSampleSize() {
	m.sample_size = nil
	m.addsample_size = nil
}

// SetBaselineSampleSize sets the "baseline_sample_size" field.
func (m *NLPDriftSnapshotMutation) SetBaselineSampleSize(i int) {
	m.baseline_sample_size = &i
	m.addbaseline_sample_size = nil
}

// BaselineSampleSize returns the value of the "baseline_sample_size" field in the mutation.
func (m *NLPDriftSnapshotMutation) BaselineSampleSize() (r int, exists bool) {
	v := m.baseline_sample_size
	if v == nil {
		return
	}
	return *v, true
}

// OldBaselineSampleSize returns the old "baseline_sample_size" field's value of the NLPDriftSnapshot entity.
// If the NLPDriftSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPDriftSnapshotMutation) OldBaselineSampleSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaselineSampleSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaselineSampleSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaselineSampleSize: %w", err)
	}
	return oldValue.BaselineSampleSize, nil
}

// AddBaselineSampleSize adds i to the "baseline_sample_size" field.
func (m *NLPDriftSnapshotMutation) AddBaselineSampleSize(i int) {
	if m.addbaseline_sample_size != nil {
		*m.addbaseline_sample_size += i
	} else {
		m.addbaseline_sample_size = &i
	}
}

// AddedBaselineSampleSize returns the value that was added to the "baseline_sample_size" field in this mutation.
func (m *NLPDriftSnapshotMutation) AddedBaselineSampleSize() (r int, exists bool) {
	v := m.addbaseline_sample_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetBaselineSampleSize resets all changes to the "baseline_sample_size" field.
func (m *NLPDriftSnapshotMutation) ResetBaselineSampleSize() {
	m.baseline_sample_size = nil
	m.addbaseline_sample_size = nil
}

// SetCurrentMetrics sets the "current_metrics" field.
func (m *NLPDriftSnapshotMutation) SetCurrentMetrics(value map[string]interface{}) {
	m.current_metrics = &value
}

// CurrentMetrics returns the value of the "current_metrics" field in the mutation.
func (m *NLPDriftSnapshotMutation) CurrentMetrics() (r map[string]interface{}, exists bool) {
	v := m.current_metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentMetrics returns the old "current_metrics" field's value of the NLPDriftSnapshot entity.
// If the NLPDriftSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPDriftSnapshotMutation) OldCurrentMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentMetrics: %w", err)
	}
	return oldValue.CurrentMetrics, nil
}

// ResetCurrentMetrics resets all changes to the "current_metrics" field.
func (m *NLPDriftSnapshotMutation) ResetCurrentMetrics() {
	m.current_metrics = nil
}

// SetBaselineMetrics sets the "baseline_metrics" field.
func (m *NLPDriftSnapshotMutation) SetBaselineMetrics(value map[string]interface{}) {
	m.baseline_metrics = &value
}

// BaselineMetrics returns the value of the "baseline_metrics" field in the mutation.
func (m *NLPDriftSnapshotMutation) BaselineMetrics() (r map[string]interface{}, exists bool) {
	v := m.baseline_metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldBaselineMetrics returns the old "baseline_metrics" field's value of the NLPDriftSnapshot entity.
// If the NLPDriftSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPDriftSnapshotMutation) OldBaselineMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaselineMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaselineMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaselineMetrics: %w", err)
	}
	return oldValue.BaselineMetrics, nil
}

// ResetBaselineMetrics resets all changes to the "baseline_metrics" field.
func (m *NLPDriftSnapshotMutation) ResetBaselineMetrics() {
	m.baseline_metrics = nil
}

// SetHitRateDelta sets the "hit_rate_delta" field.
func (m *NLPDriftSnapshotMutation) SetHitRateDelta(f float64) {
	m.hit_rate_delta = &f
	m.addhit_rate_delta = nil
}

// HitRateDelta returns the value of the "hit_rate_delta" field in the mutation.
func (m *NLPDriftSnapshotMutation) HitRateDelta() (r float64, exists bool) {
	v := m.hit_rate_delta
	if v == nil {
		return
	}
	return *v, true
}

// OldHitRateDelta returns the old "hit_rate_delta" field's value of the NLPDriftSnapshot entity.
// If the NLPDriftSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPDriftSnapshotMutation) OldHitRateDelta(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHitRateDelta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHitRateDelta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHitRateDelta: %w", err)
	}
	return oldValue.HitRateDelta, nil
}

// AddHitRateDelta adds f to the "hit_rate_delta" field.
func (m *NLPDriftSnapshotMutation) AddHitRateDelta(f float64) {
	if m.addhit_rate_delta != nil {
		*m.addhit_rate_delta += f
	} else {
		m.addhit_rate_delta = &f
	}
}

// AddedHitRateDelta returns the value that was added to the "hit_rate_delta" field in this mutation.
func (m *NLPDriftSnapshotMutation) AddedHitRateDelta() (r float64, exists bool) {
	v := m.addhit_rate_delta
	if v == nil {
		return
	}
	return *v, true
}

// ResetHitRateDelta resets all changes to the "hit_rate_delta" field.
func (m *NLPDriftSnapshotMutation) ResetHitRateDelta() {
	m.hit_rate_delta = nil
	m.addhit_rate_delta = nil
}

// SetScoreP50Delta sets the "score_p50_delta" field.
func (m *NLPDriftSnapshotMutation) SetScoreP50Delta(f float64) {
	m.score_p50_delta = &f
	m.addscore_p50_delta = nil
}

// ScoreP50Delta returns the value of the "score_p50_delta" field in the mutation.
func (m *NLPDriftSnapshotMutation) ScoreP50Delta() (r float64, exists bool) {
	v := m.score_p50_delta
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreP50Delta returns the old "score_p50_delta" field's value of the NLPDriftSnapshot entity.
// If the NLPDriftSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPDriftSnapshotMutation) OldScoreP50Delta(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreP50Delta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreP50Delta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreP50Delta: %w", err)
	}
	return oldValue.ScoreP50Delta, nil
}

// AddScoreP50Delta adds f to the "score_p50_delta" field.
func (m *NLPDriftSnapshotMutation) AddScoreP50Delta(f float64) {
	if m.addscore_p50_delta != nil {
		*m.addscore_p50_delta += f
	} else {
		m.addscore_p50_delta = &f
	}
}

// AddedScoreP50Delta returns the value that was added to the "score_p50_delta" field in this mutation.
func (m *NLPDriftSnapshotMutation) AddedScoreP50Delta() (r float64, exists bool) {
	v := m.addscore_p50_delta
	if v == nil {
		return
	}
	return *v, true
}

// ResetScoreP50Delta resets all changes to the "score_p50_delta" field.
func (m *NLPDriftSnapshotMutation) ResetScoreP50Delta() {
	m.score_p50_delta = nil
	m.addscore_p50_delta = nil
}

// SetContributionDelta sets the "contribution_delta" field.
func (m *NLPDriftSnapshotMutation) SetContributionDelta(f float64) {
	m.contribution_delta = &f
	m.addcontribution_delta = nil
}

// ContributionDelta returns the value of the "contribution_delta" field in the mutation.
func (m *NLPDriftSnapshotMutation) ContributionDelta() (r float64, exists bool) {
	v := m.contribution_delta
	if v == nil {
		return
	}
	return *v, true
}

// OldContributionDelta returns the old "contribution_delta" field's value of the NLPDriftSnapshot entity.
// If the NLPDriftSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPDriftSnapshotMutation) OldContributionDelta(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContributionDelta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContributionDelta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContributionDelta: %w", err)
	}
	return oldValue.ContributionDelta, nil
}

// AddContributionDelta adds f to the "contribution_delta" field.
func (m *NLPDriftSnapshotMutation) AddContributionDelta(f float64) {
	if m.addcontribution_delta != nil {
		*m.addcontribution_delta += f
	} else {
		m.addcontribution_delta = &f
	}
}

// AddedContributionDelta returns the value that was added to the "contribution_delta" field in this mutation.
func (m *NLPDriftSnapshotMutation) AddedContributionDelta() (r float64, exists bool) {
	v := m.addcontribution_delta
	if v == nil {
		return
	}
	return *v, true
}

// ClearContributionDelta clears the value of the "contribution_delta" field.
func (m *NLPDriftSnapshotMutation) ClearContributionDelta() {
	m.contribution_delta = nil
	m.addcontribution_delta = nil
	m.clearedFields[nlpdriftsnapshot.FieldContributionDelta] = struct{}{}
}

// ContributionDeltaCleared returns if the "contribution_delta" field was cleared in this mutation.
func (m *NLPDriftSnapshotMutation) ContributionDeltaCleared() bool {
	_, ok := m.clearedFields[nlpdriftsnapshot.FieldContributionDelta]
	return ok
}

// ResetContributionDelta resets all changes to the "contribution_delta" field.
func (m *NLPDriftSnapshotMutation) ResetContributionDelta() {
	m.contribution_delta = nil
	m.addcontribution_delta = nil
	delete(m.clearedFields, nlpdriftsnapshot.FieldContributionDelta)
}

// SetFeedbackPolarityAccuracyDelta sets the "feedback_polarity_accuracy_delta" field.
func (m *NLPDriftSnapshotMutation) SetFeedbackPolarityAccuracyDelta(f float64) {
	m.feedback_polarity_accuracy_delta = &f
	m.addfeedback_polarity_accuracy_delta = nil
}

// FeedbackPolarityAccuracyDelta returns the value of the "feedback_polarity_accuracy_delta" field in the mutation.
func (m *NLPDriftSnapshotMutation) FeedbackPolarityAccuracyDelta() (r float64, exists bool) {
	v := m.feedback_polarity_accuracy_delta
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedbackPolarityAccuracyDelta returns the old "feedback_polarity_accuracy_delta" field's value of the NLPDriftSnapshot entity.
// If the NLPDriftSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPDriftSnapshotMutation) OldFeedbackPolarityAccuracyDelta(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedbackPolarityAccuracyDelta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedbackPolarityAccuracyDelta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedbackPolarityAccuracyDelta: %w", err)
	}
	return oldValue.FeedbackPolarityAccuracyDelta, nil
}

// AddFeedbackPolarityAccuracyDelta adds f to the "feedback_polarity_accuracy_delta" field.
func (m *NLPDriftSnapshotMutation) AddFeedbackPolarityAccuracyDelta(f float64) {
	if m.addfeedback_polarity_accuracy_delta != nil {
		*m.addfeedback_polarity_accuracy_delta += f
	} else {
		m.addfeedback_polarity_accuracy_delta = &f
	}
}

// AddedFeedbackPolarityAccuracyDelta returns the value that was added to the "feedback_polarity_accuracy_delta" field in this mutation.
func (m *NLPDriftSnapshotMutation) AddedFeedbackPolarityAccuracyDelta() (r float64, exists bool) {
	v := m.addfeedback_polarity_accuracy_delta
	if v == nil {
		return
	}
	return *v, true
}

// ClearFeedbackPolarityAccuracyDelta clears the value of the "feedback_polarity_accuracy_delta" field.
func (m *NLPDriftSnapshotMutation) ClearFeedbackPolarityAccuracyDelta() {
	m.feedback_polarity_accuracy_delta = nil
	m.addfeedback_polarity_accuracy_delta = nil
	m.clearedFields[nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta] = struct{}{}
}

// FeedbackPolarityAccuracyDeltaCleared returns if the "feedback_polarity_accuracy_delta" field was cleared in this mutation.
func (m *NLPDriftSnapshotMutation) FeedbackPolarityAccuracyDeltaCleared() bool {
	_, ok := m.clearedFields[nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta]
	return ok
}

// ResetFeedbackPolarityAccuracyDelta resets all changes to the "feedback_polarity_accuracy_delta" field.
func (m *NLPDriftSnapshotMutation) ResetFeedbackPolarityAccuracyDelta() {
	m.feedback_polarity_accuracy_delta = nil
	m.addfeedback_polarity_accuracy_delta = nil
	delete(m.clearedFields, nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta)
}

// SetFeedbackEventTypeAccuracyDelta sets the "feedback_event_type_accuracy_delta" field.
func (m *NLPDriftSnapshotMutation) SetFeedbackEventTypeAccuracyDelta(f float64) {
	m.feedback_event_type_accuracy_delta = &f
	m.addfeedback_event_type_accuracy_delta = nil
}

// FeedbackEventTypeAccuracyDelta returns the value of the "feedback_event_type_accuracy_delta" field in the mutation.
func (m *NLPDriftSnapshotMutation) FeedbackEventTypeAccuracyDelta() (r float64, exists bool) {
	v := m.feedback_event_type_accuracy_delta
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedbackEventTypeAccuracyDelta returns the old "feedback_event_type_accuracy_delta" field's value of the NLPDriftSnapshot entity.
// If the NLPDriftSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPDriftSnapshotMutation) OldFeedbackEventTypeAccuracyDelta(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedbackEventTypeAccuracyDelta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedbackEventTypeAccuracyDelta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedbackEventTypeAccuracyDelta: %w", err)
	}
	return oldValue.FeedbackEventTypeAccuracyDelta, nil
}

// AddFeedbackEventTypeAccuracyDelta adds f to the "feedback_event_type_accuracy_delta" field.
func (m *NLPDriftSnapshotMutation) AddFeedbackEventTypeAccuracyDelta(f float64) {
	if m.addfeedback_event_type_accuracy_delta != nil {
		*m.addfeedback_event_type_accuracy_delta += f
	} else {
		m.addfeedback_event_type_accuracy_delta = &f
	}
}

// AddedFeedbackEventTypeAccuracyDelta returns the value that was added to the "feedback_event_type_accuracy_delta" field in this mutation.
func (m *NLPDriftSnapshotMutation) AddedFeedbackEventTypeAccuracyDelta() (r float64, exists bool) {
	v := m.addfeedback_event_type_accuracy_delta
	if v == nil {
		return
	}
	return *v, true
}

// ClearFeedbackEventTypeAccuracyDelta clears the value of the "feedback_event_type_accuracy_delta" field.
func (m *NLPDriftSnapshotMutation) ClearFeedbackEventTypeAccuracyDelta() {
	m.feedback_event_type_accuracy_delta = nil
	m.addfeedback_event_type_accuracy_delta = nil
	m.clearedFields[nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta] = struct{}{}
}

// FeedbackEventTypeAccuracyDeltaCleared returns if the "feedback_event_type_accuracy_delta" field was cleared in this mutation.
func (m *NLPDriftSnapshotMutation) FeedbackEventTypeAccuracyDeltaCleared() bool {
	_, ok := m.clearedFields[nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta]
	return ok
}

// ResetFeedbackEventTypeAccuracyDelta resets all changes to the "feedback_event_type_accuracy_delta" field.
func (m *NLPDriftSnapshotMutation) ResetFeedbackEventTypeAccuracyDelta() {
	m.feedback_event_type_accuracy_delta = nil
	m.addfeedback_event_type_accuracy_delta = nil
	delete(m.clearedFields, nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta)
}

// SetAlerts sets the "alerts" field.
func (m *NLPDriftSnapshotMutation) SetAlerts(ma []models.DriftAlert) {
	m.alerts = &ma
	m.appendalerts = nil
}

// Alerts returns the value of the "alerts" field in the mutation.
func (m *NLPDriftSnapshotMutation) Alerts() (r []models.DriftAlert, exists bool) {
	v := m.alerts
	if v == nil {
		return
	}
	return *v, true
}

// OldAlerts returns the old "alerts" field's value of the NLPDriftSnapshot entity.
// If the NLPDriftSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPDriftSnapshotMutation) OldAlerts(ctx context.Context) (v []models.DriftAlert, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlerts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlerts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlerts: %w", err)
	}
	return oldValue.Alerts, nil
}

// AppendAlerts adds ma to the "alerts" field.
func (m *NLPDriftSnapshotMutation) AppendAlerts(ma []models.DriftAlert) {
	m.appendalerts = append(m.appendalerts, ma...)
}

// AppendedAlerts returns the list of values that were appended to the "alerts" field in this mutation.
func (m *NLPDriftSnapshotMutation) AppendedAlerts() ([]models.DriftAlert, bool) {
	if len(m.appendalerts) == 0 {
		return nil, false
	}
	return m.appendalerts, true
}

// ClearAlerts clears the value of the "alerts" field.
func (m *NLPDriftSnapshotMutation) ClearAlerts() {
	m.alerts = nil
	m.appendalerts = nil
	m.clearedFields[nlpdriftsnapshot.FieldAlerts] = struct{}{}
}

// AlertsCleared returns if the "alerts" field was cleared in this mutation.
func (m *NLPDriftSnapshotMutation) AlertsCleared() bool {
	_, ok := m.clearedFields[nlpdriftsnapshot.FieldAlerts]
	return ok
}

// ResetAlerts resets all changes to the "alerts" field.
func (m *NLPDriftSnapshotMutation) ResetAlerts() {
	m.alerts = nil
	m.appendalerts = nil
	delete(m.clearedFields, nlpdriftsnapshot.FieldAlerts)
}

// SetPayload sets the "payload" field.
func (m *NLPDriftSnapshotMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *NLPDriftSnapshotMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the NLPDriftSnapshot entity.
// If the NLPDriftSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPDriftSnapshotMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *NLPDriftSnapshotMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[nlpdriftsnapshot.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *NLPDriftSnapshotMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[nlpdriftsnapshot.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *NLPDriftSnapshotMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, nlpdriftsnapshot.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *NLPDriftSnapshotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NLPDriftSnapshotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NLPDriftSnapshot entity.
// If the NLPDriftSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPDriftSnapshotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NLPDriftSnapshotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the NLPDriftSnapshotMutation builder.
func (m *NLPDriftSnapshotMutation) Where(ps ...predicate.NLPDriftSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NLPDriftSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NLPDriftSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NLPDriftSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NLPDriftSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NLPDriftSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NLPDriftSnapshot).
func (m *NLPDriftSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NLPDriftSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.source_name != nil {
		fields = append(fields, nlpdriftsnapshot.FieldSourceName)
	}
	if m.ruleset_version != nil {
		fields = append(fields, nlpdriftsnapshot.FieldRulesetVersion)
	}
	if m.current_window != nil {
		fields = append(fields, nlpdriftsnapshot.FieldCurrentWindow)
	}
	if m.baseline_window != nil {
		fields = append(fields, nlpdriftsnapshot.FieldBaselineWindow)
	}
	if m.sample_size != nil {
		fields = append(fields, nlpdriftsnapshot.FieldSampleSize)
	}
	if m.baseline_sample_size != nil {
		fields = append(fields, nlpdriftsnapshot.FieldBaselineSampleSize)
	}
	if m.current_metrics != nil {
		fields = append(fields, nlpdriftsnapshot.FieldCurrentMetrics)
	}
	if m.baseline_metrics != nil {
		fields = append(fields, nlpdriftsnapshot.FieldBaselineMetrics)
	}
	if m.hit_rate_delta != nil {
		fields = append(fields, nlpdriftsnapshot.FieldHitRateDelta)
	}
	if m.score_p50_delta != nil {
		fields = append(fields, nlpdriftsnapshot.FieldScoreP50Delta)
	}
	if m.contribution_delta != nil {
		fields = append(fields, nlpdriftsnapshot.FieldContributionDelta)
	}
	if m.feedback_polarity_accuracy_delta != nil {
		fields = append(fields, nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta)
	}
	if m.feedback_event_type_accuracy_delta != nil {
		fields = append(fields, nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta)
	}
	if m.alerts != nil {
		fields = append(fields, nlpdriftsnapshot.FieldAlerts)
	}
	if m.payload != nil {
		fields = append(fields, nlpdriftsnapshot.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, nlpdriftsnapshot.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NLPDriftSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case nlpdriftsnapshot.FieldSourceName:
		return m.SourceName()
	case nlpdriftsnapshot.FieldRulesetVersion:
		return m.RulesetVersion()
	case nlpdriftsnapshot.FieldCurrentWindow:
		return m.CurrentWindow()
	case nlpdriftsnapshot.FieldBaselineWindow:
		return m.BaselineWindow()
	case nlpdriftsnapshot.FieldSampleSize:
		return m.SampleSize()
	case nlpdriftsnapshot.FieldBaselineSampleSize:
		return m.BaselineSampleSize()
	case nlpdriftsnapshot.FieldCurrentMetrics:
		return m.CurrentMetrics()
	case nlpdriftsnapshot.FieldBaselineMetrics:
		return m.BaselineMetrics()
	case nlpdriftsnapshot.FieldHitRateDelta:
		return m.HitRateDelta()
	case nlpdriftsnapshot.FieldScoreP50Delta:
		return m.ScoreP50Delta()
	case nlpdriftsnapshot.FieldContributionDelta:
		return m.ContributionDelta()
	case nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta:
		return m.FeedbackPolarityAccuracyDelta()
	case nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta:
		return m.FeedbackEventTypeAccuracyDelta()
	case nlpdriftsnapshot.FieldAlerts:
		return m.Alerts()
	case nlpdriftsnapshot.FieldPayload:
		return m.Payload()
	case nlpdriftsnapshot.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NLPDriftSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case nlpdriftsnapshot.FieldSourceName:
		return m.OldSourceName(ctx)
	case nlpdriftsnapshot.FieldRulesetVersion:
		return m.OldRulesetVersion(ctx)
	case nlpdriftsnapshot.FieldCurrentWindow:
		return m.OldCurrentWindow(ctx)
	case nlpdriftsnapshot.FieldBaselineWindow:
		return m.OldBaselineWindow(ctx)
	case nlpdriftsnapshot.FieldSampleSize:
		return m.OldSampleSize(ctx)
	case nlpdriftsnapshot.FieldBaselineSampleSize:
		return m.OldBaselineSampleSize(ctx)
	case nlpdriftsnapshot.FieldCurrentMetrics:
		return m.OldCurrentMetrics(ctx)
	case nlpdriftsnapshot.FieldBaselineMetrics:
		return m.OldBaselineMetrics(ctx)
	case nlpdriftsnapshot.FieldHitRateDelta:
		return m.OldHitRateDelta(ctx)
	case nlpdriftsnapshot.FieldScoreP50Delta:
		return m.OldScoreP50Delta(ctx)
	case nlpdriftsnapshot.FieldContributionDelta:
		return m.OldContributionDelta(ctx)
	case nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta:
		return m.OldFeedbackPolarityAccuracyDelta(ctx)
	case nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta:
		return m.OldFeedbackEventTypeAccuracyDelta(ctx)
	case nlpdriftsnapshot.FieldAlerts:
		return m.OldAlerts(ctx)
	case nlpdriftsnapshot.FieldPayload:
		return m.OldPayload(ctx)
	case nlpdriftsnapshot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NLPDriftSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NLPDriftSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case nlpdriftsnapshot.FieldSourceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceName(v)
		return nil
	case nlpdriftsnapshot.FieldRulesetVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRulesetVersion(v)
		return nil
	case nlpdriftsnapshot.FieldCurrentWindow:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentWindow(v)
		return nil
	case nlpdriftsnapshot.FieldBaselineWindow:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaselineWindow(v)
		return nil
	case nlpdriftsnapshot.FieldSampleSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleSize(v)
		return nil
	case nlpdriftsnapshot.FieldBaselineSampleSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaselineSampleSize(v)
		return nil
	case nlpdriftsnapshot.FieldCurrentMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentMetrics(v)
		return nil
	case nlpdriftsnapshot.FieldBaselineMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaselineMetrics(v)
		return nil
	case nlpdriftsnapshot.FieldHitRateDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHitRateDelta(v)
		return nil
	case nlpdriftsnapshot.FieldScoreP50Delta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreP50Delta(v)
		return nil
	case nlpdriftsnapshot.FieldContributionDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContributionDelta(v)
		return nil
	case nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedbackPolarityAccuracyDelta(v)
		return nil
	case nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedbackEventTypeAccuracyDelta(v)
		return nil
	case nlpdriftsnapshot.FieldAlerts:
		v, ok := value.([]models.DriftAlert)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlerts(v)
		return nil
	case nlpdriftsnapshot.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case nlpdriftsnapshot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NLPDriftSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NLPDriftSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsample_size != nil {
		fields = append(fields, nlpdriftsnapshot.FieldSampleSize)
	}
	if m.addbaseline_sample_size != nil {
		fields = append(fields, nlpdriftsnapshot.FieldBaselineSampleSize)
	}
	if m.addhit_rate_delta != nil {
		fields = append(fields, nlpdriftsnapshot.FieldHitRateDelta)
	}
	if m.addscore_p50_delta != nil {
		fields = append(fields, nlpdriftsnapshot.FieldScoreP50Delta)
	}
	if m.addcontribution_delta != nil {
		fields = append(fields, nlpdriftsnapshot.FieldContributionDelta)
	}
	if m.addfeedback_polarity_accuracy_delta != nil {
		fields = append(fields, nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta)
	}
	if m.addfeedback_event_type_accuracy_delta != nil {
		fields = append(fields, nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NLPDriftSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case nlpdriftsnapshot.FieldSampleSize:
		return m.AddedSampleSize()
	case nlpdriftsnapshot.FieldBaselineSampleSize:
		return m.AddedBaselineSampleSize()
	case nlpdriftsnapshot.FieldHitRateDelta:
		return m.AddedHitRateDelta()
	case nlpdriftsnapshot.FieldScoreP50Delta:
		return m.AddedScoreP50Delta()
	case nlpdriftsnapshot.FieldContributionDelta:
		return m.AddedContributionDelta()
	case nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta:
		return m.AddedFeedbackPolarityAccuracyDelta()
	case nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta:
		return m.AddedFeedbackEventTypeAccuracyDelta()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NLPDriftSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case nlpdriftsnapshot.FieldSampleSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSampleSize(v)
		return nil
	case nlpdriftsnapshot.FieldBaselineSampleSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaselineSampleSize(v)
		return nil
	case nlpdriftsnapshot.FieldHitRateDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHitRateDelta(v)
		return nil
	case nlpdriftsnapshot.FieldScoreP50Delta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScoreP50Delta(v)
		return nil
	case nlpdriftsnapshot.FieldContributionDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContributionDelta(v)
		return nil
	case nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFeedbackPolarityAccuracyDelta(v)
		return nil
	case nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFeedbackEventTypeAccuracyDelta(v)
		return nil
	}
	return fmt.Errorf("unknown NLPDriftSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NLPDriftSnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(nlpdriftsnapshot.FieldSourceName) {
		fields = append(fields, nlpdriftsnapshot.FieldSourceName)
	}
	if m.FieldCleared(nlpdriftsnapshot.FieldContributionDelta) {
		fields = append(fields, nlpdriftsnapshot.FieldContributionDelta)
	}
	if m.FieldCleared(nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta) {
		fields = append(fields, nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta)
	}
	if m.FieldCleared(nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta) {
		fields = append(fields, nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta)
	}
	if m.FieldCleared(nlpdriftsnapshot.FieldAlerts) {
		fields = append(fields, nlpdriftsnapshot.FieldAlerts)
	}
	if m.FieldCleared(nlpdriftsnapshot.FieldPayload) {
		fields = append(fields, nlpdriftsnapshot.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NLPDriftSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NLPDriftSnapshotMutation) ClearField(name string) error {
	switch name {
	case nlpdriftsnapshot.FieldSourceName:
		m.ClearSourceName()
		return nil
	case nlpdriftsnapshot.FieldContributionDelta:
		m.ClearContributionDelta()
		return nil
	case nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta:
		m.ClearFeedbackPolarityAccuracyDelta()
		return nil
	case nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta:
		m.ClearFeedbackEventTypeAccuracyDelta()
		return nil
	case nlpdriftsnapshot.FieldAlerts:
		m.ClearAlerts()
		return nil
	case nlpdriftsnapshot.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown NLPDriftSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NLPDriftSnapshotMutation) ResetField(name string) error {
	switch name {
	case nlpdriftsnapshot.FieldSourceName:
		m.ResetSourceName()
		return nil
	case nlpdriftsnapshot.FieldRulesetVersion:
		m.ResetRulesetVersion()
		return nil
	case nlpdriftsnapshot.FieldCurrentWindow:
		m.ResetCurrentWindow()
		return nil
	case nlpdriftsnapshot.FieldBaselineWindow:
		m.ResetBaselineWindow()
		return nil
	case nlpdriftsnapshot.FieldSampleSize:
		m.ResetSampleSize()
		return nil
	case nlpdriftsnapshot.FieldBaselineSampleSize:
		m.ResetBaselineSampleSize()
		return nil
	case nlpdriftsnapshot.FieldCurrentMetrics:
		m.ResetCurrentMetrics()
		return nil
	case nlpdriftsnapshot.FieldBaselineMetrics:
		m.ResetBaselineMetrics()
		return nil
	case nlpdriftsnapshot.FieldHitRateDelta:
		m.ResetHitRateDelta()
		return nil
	case nlpdriftsnapshot.FieldScoreP50Delta:
		m.ResetScoreP50Delta()
		return nil
	case nlpdriftsnapshot.FieldContributionDelta:
		m.ResetContributionDelta()
		return nil
	case nlpdriftsnapshot.FieldFeedbackPolarityAccuracyDelta:
		m.ResetFeedbackPolarityAccuracyDelta()
		return nil
	case nlpdriftsnapshot.FieldFeedbackEventTypeAccuracyDelta:
		m.ResetFeedbackEventTypeAccuracyDelta()
		return nil
	case nlpdriftsnapshot.FieldAlerts:
		m.ResetAlerts()
		return nil
	case nlpdriftsnapshot.FieldPayload:
		m.ResetPayload()
		return nil
	case nlpdriftsnapshot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown NLPDriftSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NLPDriftSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NLPDriftSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NLPDriftSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NLPDriftSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NLPDriftSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NLPDriftSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NLPDriftSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NLPDriftSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NLPDriftSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NLPDriftSnapshot edge %s", name)
}

// NLPFeedbackMutation represents an operation that mutates the NLPFeedback nodes in the graph.
type NLPFeedbackMutation struct {
	config
	op               Op
	typ              string
	id               *int
	source_name      *string
	event_id         *string
	labeler          *string
	label_event_type *string
	label_polarity   *string
	label_score      *float64
	addlabel_score   *float64
	comment          *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*NLPFeedback, error)
	predicates       []predicate.NLPFeedback
}

var _ ent.Mutation = (*NLPFeedbackMutation)(nil)

// nlpfeedbackOption allows management of the mutation configuration using functional options.
type nlpfeedbackOption func(*NLPFeedbackMutation)

// newNLPFeedbackMutation creates new mutation for the NLPFeedback entity.
func newNLPFeedbackMutation(c config, op Op, opts ...nlpfeedbackOption) *NLPFeedbackMutation {
	m := &NLPFeedbackMutation{
		config:        c,
		op:            op,
		typ:           TypeNLPFeedback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNLPFeedbackID sets the ID field of the mutation.
func withNLPFeedbackID(id int) nlpfeedbackOption {
	return func(m *NLPFeedbackMutation) {
		var (
			err   error
			once  sync.Once
			value *NLPFeedback
		)
		m.oldValue = func(ctx context.Context) (*NLPFeedback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NLPFeedback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNLPFeedback sets the old NLPFeedback of the mutation.
func withNLPFeedback(node *NLPFeedback) nlpfeedbackOption {
	return func(m *NLPFeedbackMutation) {
		m.oldValue = func(context.Context) (*NLPFeedback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NLPFeedbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NLPFeedbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NLPFeedbackMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NLPFeedbackMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NLPFeedback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceName sets the "source_name" field.
func (m *NLPFeedbackMutation) SetSourceName(s string) {
	m.source_name = &s
}

// SourceName returns the value of the "source_name" field in the mutation.
func (m *NLPFeedbackMutation) SourceName() (r string, exists bool) {
	v := m.source_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceName returns the old "source_name" field's value of the NLPFeedback entity.
// If the NLPFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPFeedbackMutation) OldSourceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceName: %w", err)
	}
	return oldValue.SourceName, nil
}

// ResetSourceName resets all changes to the "source_name" field.
func (m *NLPFeedbackMutation) ResetSourceName() {
	m.source_name = nil
}

// SetEventID sets the "event_id" field.
func (m *NLPFeedbackMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *NLPFeedbackMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the NLPFeedback entity.
// If the NLPFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPFeedbackMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *NLPFeedbackMutation) ResetEventID() {
	m.event_id = nil
}

// SetLabeler sets the "labeler" field.
func (m *NLPFeedbackMutation) SetLabeler(s string) {
	m.labeler = &s
}

// Labeler returns the value of the "labeler" field in the mutation.
func (m *NLPFeedbackMutation) Labeler() (r string, exists bool) {
	v := m.labeler
	if v == nil {
		return
	}
	return *v, true
}

// OldLabeler returns the old "labeler" field's value of the NLPFeedback entity.
// If the NLPFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPFeedbackMutation) OldLabeler(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabeler is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabeler requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabeler: %w", err)
	}
	return oldValue.Labeler, nil
}

// ClearLabeler clears the value of the "labeler" field.
func (m *NLPFeedbackMutation) ClearLabeler() {
	m.labeler = nil
	m.clearedFields[nlpfeedback.FieldLabeler] = struct{}{}
}

// LabelerCleared returns if the "labeler" field was cleared in this mutation.
func (m *NLPFeedbackMutation) LabelerCleared() bool {
	_, ok := m.clearedFields[nlpfeedback.FieldLabeler]
	return ok
}

// ResetLabeler resets all changes to the "labeler" field.
func (m *NLPFeedbackMutation) ResetLabeler() {
	m.labeler = nil
	delete(m.clearedFields, nlpfeedback.FieldLabeler)
}

// SetLabelEventType sets the "label_event_type" field.
func (m *NLPFeedbackMutation) SetLabelEventType(s string) {
	m.label_event_type = &s
}

// LabelEventType returns the value of the "label_event_type" field in the mutation.
func (m *NLPFeedbackMutation) LabelEventType() (r string, exists bool) {
	v := m.label_event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLabelEventType returns the old "label_event_type" field's value of the NLPFeedback entity.
// If the NLPFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPFeedbackMutation) OldLabelEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabelEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabelEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabelEventType: %w", err)
	}
	return oldValue.LabelEventType, nil
}

// ClearLabelEventType clears the value of the "label_event_type" field.
func (m *NLPFeedbackMutation) ClearLabelEventType() {
	m.label_event_type = nil
	m.clearedFields[nlpfeedback.FieldLabelEventType] = struct{}{}
}

// LabelEventTypeCleared returns if the "label_event_type" field was cleared in this mutation.
func (m *NLPFeedbackMutation) LabelEventTypeCleared() bool {
	_, ok := m.clearedFields[nlpfeedback.FieldLabelEventType]
	return ok
}

// ResetLabelEventType resets all changes to the "label_event_type" field.
func (m *NLPFeedbackMutation) ResetLabelEventType() {
	m.label_event_type = nil
	delete(m.clearedFields, nlpfeedback.FieldLabelEventType)
}

// SetLabelPolarity sets the "label_polarity" field.
func (m *NLPFeedbackMutation) SetLabelPolarity(s string) {
	m.label_polarity = &s
}

// LabelPolarity returns the value of the "label_polarity" field in the mutation.
func (m *NLPFeedbackMutation) LabelPolarity() (r string, exists bool) {
	v := m.label_polarity
	if v == nil {
		return
	}
	return *v, true
}

// OldLabelPolarity returns the old "label_polarity" field's value of the NLPFeedback entity.
// If the NLPFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPFeedbackMutation) OldLabelPolarity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabelPolarity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabelPolarity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabelPolarity: %w", err)
	}
	return oldValue.LabelPolarity, nil
}

// ClearLabelPolarity clears the value of the "label_polarity" field.
func (m *NLPFeedbackMutation) ClearLabelPolarity() {
	m.label_polarity = nil
	m.clearedFields[nlpfeedback.FieldLabelPolarity] = struct{}{}
}

// LabelPolarityCleared returns if the "label_polarity" field was cleared in this mutation.
func (m *NLPFeedbackMutation) LabelPolarityCleared() bool {
	_, ok := m.clearedFields[nlpfeedback.FieldLabelPolarity]
	return ok
}

// ResetLabelPolarity resets all changes to the "label_polarity" field.
func (m *NLPFeedbackMutation) ResetLabelPolarity() {
	m.label_polarity = nil
	delete(m.clearedFields, nlpfeedback.FieldLabelPolarity)
}

// SetLabelScore sets the "label_score" field.
func (m *NLPFeedbackMutation) SetLabelScore(f float64) {
	m.label_score = &f
	m.addlabel_score = nil
}

// LabelScore returns the value of the "label_score" field in the mutation.
func (m *NLPFeedbackMutation) LabelScore() (r float64, exists bool) {
	v := m.label_score
	if v == nil {
		return
	}
	return *v, true
}

// OldLabelScore returns the old "label_score" field's value of the NLPFeedback entity.
// If the NLPFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPFeedbackMutation) OldLabelScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabelScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabelScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabelScore: %w", err)
	}
	return oldValue.LabelScore, nil
}

// AddLabelScore adds f to the "label_score" field.
func (m *NLPFeedbackMutation) AddLabelScore(f float64) {
	if m.addlabel_score != nil {
		*m.addlabel_score += f
	} else {
		m.addlabel_score = &f
	}
}

// AddedLabelScore returns the value that was added to the "label_score" field in this mutation.
func (m *NLPFeedbackMutation) AddedLabelScore() (r float64, exists bool) {
	v := m.addlabel_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearLabelScore clears the value of the "label_score" field.
func (m *NLPFeedbackMutation) ClearLabelScore() {
	m.label_score = nil
	m.addlabel_score = nil
	m.clearedFields[nlpfeedback.FieldLabelScore] = struct{}{}
}

// LabelScoreCleared returns if the "label_score" field was cleared in this mutation.
func (m *NLPFeedbackMutation) LabelScoreCleared() bool {
	_, ok := m.clearedFields[nlpfeedback.FieldLabelScore]
	return ok
}

// ResetLabelScore resets all changes to the "label_score" field.
func (m *NLPFeedbackMutation) ResetLabelScore() {
	m.label_score = nil
	m.addlabel_score = nil
	delete(m.clearedFields, nlpfeedback.FieldLabelScore)
}

// SetComment sets the "comment" field.
func (m *NLPFeedbackMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *NLPFeedbackMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the NLPFeedback entity.
// If the NLPFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPFeedbackMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *NLPFeedbackMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[nlpfeedback.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *NLPFeedbackMutation) CommentCleared() bool {
	_, ok := m.clearedFields[nlpfeedback.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *NLPFeedbackMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, nlpfeedback.FieldComment)
}

// SetCreatedAt sets the "created_at" field.
func (m *NLPFeedbackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NLPFeedbackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NLPFeedback entity.
// If the NLPFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPFeedbackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NLPFeedbackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the NLPFeedbackMutation builder.
func (m *NLPFeedbackMutation) Where(ps ...predicate.NLPFeedback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NLPFeedbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NLPFeedbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NLPFeedback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NLPFeedbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NLPFeedbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NLPFeedback).
func (m *NLPFeedbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NLPFeedbackMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.source_name != nil {
		fields = append(fields, nlpfeedback.FieldSourceName)
	}
	if m.event_id != nil {
		fields = append(fields, nlpfeedback.FieldEventID)
	}
	if m.labeler != nil {
		fields = append(fields, nlpfeedback.FieldLabeler)
	}
	if m.label_event_type != nil {
		fields = append(fields, nlpfeedback.FieldLabelEventType)
	}
	if m.label_polarity != nil {
		fields = append(fields, nlpfeedback.FieldLabelPolarity)
	}
	if m.label_score != nil {
		fields = append(fields, nlpfeedback.FieldLabelScore)
	}
	if m.comment != nil {
		fields = append(fields, nlpfeedback.FieldComment)
	}
	if m.created_at != nil {
		fields = append(fields, nlpfeedback.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NLPFeedbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case nlpfeedback.FieldSourceName:
		return m.SourceName()
	case nlpfeedback.FieldEventID:
		return m.EventID()
	case nlpfeedback.FieldLabeler:
		return m.Labeler()
	case nlpfeedback.FieldLabelEventType:
		return m.LabelEventType()
	case nlpfeedback.FieldLabelPolarity:
		return m.LabelPolarity()
	case nlpfeedback.FieldLabelScore:
		return m.LabelScore()
	case nlpfeedback.FieldComment:
		return m.Comment()
	case nlpfeedback.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NLPFeedbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case nlpfeedback.FieldSourceName:
		return m.OldSourceName(ctx)
	case nlpfeedback.FieldEventID:
		return m.OldEventID(ctx)
	case nlpfeedback.FieldLabeler:
		return m.OldLabeler(ctx)
	case nlpfeedback.FieldLabelEventType:
		return m.OldLabelEventType(ctx)
	case nlpfeedback.FieldLabelPolarity:
		return m.OldLabelPolarity(ctx)
	case nlpfeedback.FieldLabelScore:
		return m.OldLabelScore(ctx)
	case nlpfeedback.FieldComment:
		return m.OldComment(ctx)
	case nlpfeedback.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NLPFeedback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NLPFeedbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case nlpfeedback.FieldSourceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceName(v)
		return nil
	case nlpfeedback.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case nlpfeedback.FieldLabeler:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabeler(v)
		return nil
	case nlpfeedback.FieldLabelEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabelEventType(v)
		return nil
	case nlpfeedback.FieldLabelPolarity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabelPolarity(v)
		return nil
	case nlpfeedback.FieldLabelScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabelScore(v)
		return nil
	case nlpfeedback.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case nlpfeedback.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NLPFeedback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NLPFeedbackMutation) AddedFields() []string {
	var fields []string
	if m.addlabel_score != nil {
		fields = append(fields, nlpfeedback.FieldLabelScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NLPFeedbackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case nlpfeedback.FieldLabelScore:
		return m.AddedLabelScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NLPFeedbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case nlpfeedback.FieldLabelScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLabelScore(v)
		return nil
	}
	return fmt.Errorf("unknown NLPFeedback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NLPFeedbackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(nlpfeedback.FieldLabeler) {
		fields = append(fields, nlpfeedback.FieldLabeler)
	}
	if m.FieldCleared(nlpfeedback.FieldLabelEventType) {
		fields = append(fields, nlpfeedback.FieldLabelEventType)
	}
	if m.FieldCleared(nlpfeedback.FieldLabelPolarity) {
		fields = append(fields, nlpfeedback.FieldLabelPolarity)
	}
	if m.FieldCleared(nlpfeedback.FieldLabelScore) {
		fields = append(fields, nlpfeedback.FieldLabelScore)
	}
	if m.FieldCleared(nlpfeedback.FieldComment) {
		fields = append(fields, nlpfeedback.FieldComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NLPFeedbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NLPFeedbackMutation) ClearField(name string) error {
	switch name {
	case nlpfeedback.FieldLabeler:
		m.ClearLabeler()
		return nil
	case nlpfeedback.FieldLabelEventType:
		m.ClearLabelEventType()
		return nil
	case nlpfeedback.FieldLabelPolarity:
		m.ClearLabelPolarity()
		return nil
	case nlpfeedback.FieldLabelScore:
		m.ClearLabelScore()
		return nil
	case nlpfeedback.FieldComment:
		m.ClearComment()
		return nil
	}
	return fmt.Errorf("unknown NLPFeedback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NLPFeedbackMutation) ResetField(name string) error {
	switch name {
	case nlpfeedback.FieldSourceName:
		m.ResetSourceName()
		return nil
	case nlpfeedback.FieldEventID:
		m.ResetEventID()
		return nil
	case nlpfeedback.FieldLabeler:
		m.ResetLabeler()
		return nil
	case nlpfeedback.FieldLabelEventType:
		m.ResetLabelEventType()
		return nil
	case nlpfeedback.FieldLabelPolarity:
		m.ResetLabelPolarity()
		return nil
	case nlpfeedback.FieldLabelScore:
		m.ResetLabelScore()
		return nil
	case nlpfeedback.FieldComment:
		m.ResetComment()
		return nil
	case nlpfeedback.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown NLPFeedback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NLPFeedbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NLPFeedbackMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NLPFeedbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NLPFeedbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NLPFeedbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NLPFeedbackMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NLPFeedbackMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NLPFeedback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NLPFeedbackMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NLPFeedback edge %s", name)
}

// NLPRulesetMutation represents an operation that mutates the NLPRuleset nodes in the graph.
type NLPRulesetMutation struct {
	config
	op            Op
	typ           string
	id            *int
	version       *string
	created_by    *string
	note          *string
	is_active     *bool
	rules         *[]models.NLPRule
	appendrules   []models.NLPRule
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*NLPRuleset, error)
	predicates    []predicate.NLPRuleset
}

var _ ent.Mutation = (*NLPRulesetMutation)(nil)

// nlprulesetOption allows management of the mutation configuration using functional options.
type nlprulesetOption func(*NLPRulesetMutation)

// newNLPRulesetMutation creates new mutation for the NLPRuleset entity.
func newNLPRulesetMutation(c config, op Op, opts ...nlprulesetOption) *NLPRulesetMutation {
	m := &NLPRulesetMutation{
		config:        c,
		op:            op,
		typ:           TypeNLPRuleset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNLPRulesetID sets the ID field of the mutation.
func withNLPRulesetID(id int) nlprulesetOption {
	return func(m *NLPRulesetMutation) {
		var (
			err   error
			once  sync.Once
			value *NLPRuleset
		)
		m.oldValue = func(ctx context.Context) (*NLPRuleset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NLPRuleset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNLPRuleset sets the old NLPRuleset of the mutation.
func withNLPRuleset(node *NLPRuleset) nlprulesetOption {
	return func(m *NLPRulesetMutation) {
		m.oldValue = func(context.Context) (*NLPRuleset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NLPRulesetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NLPRulesetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NLPRulesetMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NLPRulesetMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NLPRuleset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVersion sets the "version" field.
func (m *NLPRulesetMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *NLPRulesetMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the NLPRuleset entity.
// If the NLPRuleset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPRulesetMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ResetVersion resets all changes to the "version" field.
func (m *NLPRulesetMutation) ResetVersion() {
	m.version = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *NLPRulesetMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *NLPRulesetMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the NLPRuleset entity.
// If the NLPRuleset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPRulesetMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *NLPRulesetMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[nlpruleset.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *NLPRulesetMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[nlpruleset.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *NLPRulesetMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, nlpruleset.FieldCreatedBy)
}

// SetNote sets the "note" field.
func (m *NLPRulesetMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *NLPRulesetMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the NLPRuleset entity.
// If the NLPRuleset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPRulesetMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *NLPRulesetMutation) ClearNote() {
	m.note = nil
	m.clearedFields[nlpruleset.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *NLPRulesetMutation) NoteCleared() bool {
	_, ok := m.clearedFields[nlpruleset.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *NLPRulesetMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, nlpruleset.FieldNote)
}

// SetIsActive sets the "is_active" field.
func (m *NLPRulesetMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *NLPRulesetMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the NLPRuleset entity.
// If the NLPRuleset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPRulesetMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *NLPRulesetMutation) ResetIsActive() {
	m.is_active = nil
}

// SetRules sets the "rules" field.
func (m *NLPRulesetMutation) SetRules(mr []models.NLPRule) {
	m.rules = &mr
	m.appendrules = nil
}

// Rules returns the value of the "rules" field in the mutation.
func (m *NLPRulesetMutation) Rules() (r []models.NLPRule, exists bool) {
	v := m.rules
	if v == nil {
		return
	}
	return *v, true
}

// OldRules returns the old "rules" field's value of the NLPRuleset entity.
// If the NLPRuleset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPRulesetMutation) OldRules(ctx context.Context) (v []models.NLPRule, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRules is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRules requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRules: %w", err)
	}
	return oldValue.Rules, nil
}

// AppendRules adds mr to the "rules" field.
func (m *NLPRulesetMutation) AppendRules(mr []models.NLPRule) {
	m.appendrules = append(m.appendrules, mr...)
}

// AppendedRules returns the list of values that were appended to the "rules" field in this mutation.
func (m *NLPRulesetMutation) AppendedRules() ([]models.NLPRule, bool) {
	if len(m.appendrules) == 0 {
		return nil, false
	}
	return m.appendrules, true
}

// ResetRules resets all changes to the "rules" field.
func (m *NLPRulesetMutation) ResetRules() {
	m.rules = nil
	m.appendrules = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NLPRulesetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NLPRulesetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NLPRuleset entity.
// If the NLPRuleset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPRulesetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NLPRulesetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NLPRulesetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NLPRulesetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the NLPRuleset entity.
// If the NLPRuleset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NLPRulesetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NLPRulesetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the NLPRulesetMutation builder.
func (m *NLPRulesetMutation) Where(ps ...predicate.NLPRuleset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NLPRulesetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NLPRulesetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NLPRuleset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NLPRulesetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NLPRulesetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NLPRuleset).
func (m *NLPRulesetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NLPRulesetMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.version != nil {
		fields = append(fields, nlpruleset.FieldVersion)
	}
	if m.created_by != nil {
		fields = append(fields, nlpruleset.FieldCreatedBy)
	}
	if m.note != nil {
		fields = append(fields, nlpruleset.FieldNote)
	}
	if m.is_active != nil {
		fields = append(fields, nlpruleset.FieldIsActive)
	}
	if m.rules != nil {
		fields = append(fields, nlpruleset.FieldRules)
	}
	if m.created_at != nil {
		fields = append(fields, nlpruleset.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, nlpruleset.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NLPRulesetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case nlpruleset.FieldVersion:
		return m.Version()
	case nlpruleset.FieldCreatedBy:
		return m.CreatedBy()
	case nlpruleset.FieldNote:
		return m.Note()
	case nlpruleset.FieldIsActive:
		return m.IsActive()
	case nlpruleset.FieldRules:
		return m.Rules()
	case nlpruleset.FieldCreatedAt:
		return m.CreatedAt()
	case nlpruleset.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NLPRulesetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case nlpruleset.FieldVersion:
		return m.OldVersion(ctx)
	case nlpruleset.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case nlpruleset.FieldNote:
		return m.OldNote(ctx)
	case nlpruleset.FieldIsActive:
		return m.OldIsActive(ctx)
	case nlpruleset.FieldRules:
		return m.OldRules(ctx)
	case nlpruleset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case nlpruleset.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NLPRuleset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NLPRulesetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case nlpruleset.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case nlpruleset.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case nlpruleset.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case nlpruleset.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case nlpruleset.FieldRules:
		v, ok := value.([]models.NLPRule)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRules(v)
		return nil
	case nlpruleset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case nlpruleset.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NLPRuleset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NLPRulesetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NLPRulesetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NLPRulesetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown NLPRuleset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NLPRulesetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(nlpruleset.FieldCreatedBy) {
		fields = append(fields, nlpruleset.FieldCreatedBy)
	}
	if m.FieldCleared(nlpruleset.FieldNote) {
		fields = append(fields, nlpruleset.FieldNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NLPRulesetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NLPRulesetMutation) ClearField(name string) error {
	switch name {
	case nlpruleset.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case nlpruleset.FieldNote:
		m.ClearNote()
		return nil
	}
	return fmt.Errorf("unknown NLPRuleset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NLPRulesetMutation) ResetField(name string) error {
	switch name {
	case nlpruleset.FieldVersion:
		m.ResetVersion()
		return nil
	case nlpruleset.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case nlpruleset.FieldNote:
		m.ResetNote()
		return nil
	case nlpruleset.FieldIsActive:
		m.ResetIsActive()
		return nil
	case nlpruleset.FieldRules:
		m.ResetRules()
		return nil
	case nlpruleset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case nlpruleset.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown NLPRuleset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NLPRulesetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NLPRulesetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NLPRulesetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NLPRulesetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NLPRulesetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NLPRulesetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NLPRulesetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NLPRuleset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NLPRulesetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NLPRuleset edge %s", name)
}

// SLAAlertStateMutation represents an operation that mutates the SLAAlertState nodes in the graph.
type SLAAlertStateMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	dedupe_key          *string
	connector_name      *string
	source_name         *string
	breach_type         *string
	severity            *slaalertstate.Severity
	stage               *slaalertstate.Stage
	message             *string
	first_seen_at       *time.Time
	last_seen_at        *time.Time
	last_emitted_at     *time.Time
	last_recovered_at   *time.Time
	last_escalated_at   *time.Time
	repeat_count        *int
	addrepeat_count     *int
	escalation_level    *int
	addescalation_level *int
	escalation_reason   *string
	is_open             *bool
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*SLAAlertState, error)
	predicates          []predicate.SLAAlertState
}

var _ ent.Mutation = (*SLAAlertStateMutation)(nil)

// slaalertstateOption allows management of the mutation configuration using functional options.
type slaalertstateOption func(*SLAAlertStateMutation)

// newSLAAlertStateMutation creates new mutation for the SLAAlertState entity.
func newSLAAlertStateMutation(c config, op Op, opts ...slaalertstateOption) *SLAAlertStateMutation {
	m := &SLAAlertStateMutation{
		config:        c,
		op:            op,
		typ:           TypeSLAAlertState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSLAAlertStateID sets the ID field of the mutation.
func withSLAAlertStateID(id int) slaalertstateOption {
	return func(m *SLAAlertStateMutation) {
		var (
			err   error
			once  sync.Once
			value *SLAAlertState
		)
		m.oldValue = func(ctx context.Context) (*SLAAlertState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SLAAlertState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSLAAlertState sets the old SLAAlertState of the mutation.
func withSLAAlertState(node *SLAAlertState) slaalertstateOption {
	return func(m *SLAAlertStateMutation) {
		m.oldValue = func(context.Context) (*SLAAlertState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SLAAlertStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SLAAlertStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SLAAlertStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SLAAlertStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SLAAlertState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDedupeKey sets the "dedupe_key" field.
func (m *SLAAlertStateMutation) SetDedupeKey(s string) {
	m.dedupe_key = &s
}

// DedupeKey returns the value of the "dedupe_key" field in the mutation.
func (m *SLAAlertStateMutation) DedupeKey() (r string, exists bool) {
	v := m.dedupe_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupeKey returns the old "dedupe_key" field's value of the SLAAlertState entity.
// If the SLAAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertStateMutation) OldDedupeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupeKey: %w", err)
	}
	return oldValue.DedupeKey, nil
}

// ResetDedupeKey resets all changes to the "dedupe_key" field.
func (m *SLAAlertStateMutation) ResetDedupeKey() {
	m.dedupe_key = nil
}

// SetConnectorName sets the "connector_name" field.
func (m *SLAAlertStateMutation) SetConnectorName(s string) {
	m.connector_name = &s
}

// ConnectorName returns the value of the "connector_name" field in the mutation.
func (m *SLAAlertStateMutation) ConnectorName() (r string, exists bool) {
	v := m.connector_name
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectorName returns the old "connector_name" field's value of the SLAAlertState entity.
// If the SLAAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertStateMutation) OldConnectorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectorName: %w", err)
	}
	return oldValue.ConnectorName, nil
}

// ResetConnectorName resets all changes to the "connector_name" field.
func (m *SLAAlertStateMutation) ResetConnectorName() {
	m.connector_name = nil
}

// SetSourceName sets the "source_name" field.
func (m *SLAAlertStateMutation) SetSourceName(s string) {
	m.source_name = &s
}

// SourceName returns the value of the "source_name" field in the mutation.
func (m *SLAAlertStateMutation) SourceName() (r string, exists bool) {
	v := m.source_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceName returns the old "source_name" field's value of the SLAAlertState entity.
// If the SLAAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertStateMutation) OldSourceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceName: %w", err)
	}
	return oldValue.SourceName, nil
}

// ClearSourceName clears the value of the "source_name" field.
func (m *SLAAlertStateMutation) ClearSourceName() {
	m.source_name = nil
	m.clearedFields[slaalertstate.FieldSourceName] = struct{}{}
}

// SourceNameCleared returns if the "source_name" field was cleared in this mutation.
func (m *SLAAlertStateMutation) SourceNameCleared() bool {
	_, ok := m.clearedFields[slaalertstate.FieldSourceName]
	return ok
}

// ResetSourceName resets all changes to the "source_name" field.
func (m *SLAAlertStateMutation) ResetSourceName() {
	m.source_name = nil
	delete(m.clearedFields, slaalertstate.FieldSourceName)
}

// SetBreachType sets the "breach_type" field.
func (m *SLAAlertStateMutation) SetBreachType(s string) {
	m.breach_type = &s
}

// BreachType returns the value of the "breach_type" field in the mutation.
func (m *SLAAlertStateMutation) BreachType() (r string, exists bool) {
	v := m.breach_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBreachType returns the old "breach_type" field's value of the SLAAlertState entity.
// If the SLAAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertStateMutation) OldBreachType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreachType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreachType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreachType: %w", err)
	}
	return oldValue.BreachType, nil
}

// ResetBreachType resets all changes to the "breach_type" field.
func (m *SLAAlertStateMutation) ResetBreachType() {
	m.breach_type = nil
}

// SetSeverity sets the "severity" field.
func (m *SLAAlertStateMutation) SetSeverity(s slaalertstate.Severity) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *SLAAlertStateMutation) Severity() (r slaalertstate.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the SLAAlertState entity.
// If the SLAAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertStateMutation) OldSeverity(ctx context.Context) (v slaalertstate.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *SLAAlertStateMutation) ResetSeverity() {
	m.severity = nil
}

// SetStage sets the "stage" field.
func (m *SLAAlertStateMutation) SetStage(s slaalertstate.Stage) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *SLAAlertStateMutation) Stage() (r slaalertstate.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the SLAAlertState entity.
// If the SLAAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertStateMutation) OldStage(ctx context.Context) (v slaalertstate.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *SLAAlertStateMutation) ResetStage() {
	m.stage = nil
}

// SetMessage sets the "message" field.
func (m *SLAAlertStateMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *SLAAlertStateMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the SLAAlertState entity.
// If the SLAAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertStateMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *SLAAlertStateMutation) ResetMessage() {
	m.message = nil
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *SLAAlertStateMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *SLAAlertStateMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the SLAAlertState entity.
// If the SLAAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertStateMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *SLAAlertStateMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *SLAAlertStateMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *SLAAlertStateMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the SLAAlertState entity.
// If the SLAAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertStateMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *SLAAlertStateMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// SetLastEmittedAt sets the "last_emitted_at" field.
func (m *SLAAlertStateMutation) SetLastEmittedAt(t time.Time) {
	m.last_emitted_at = &t
}

// LastEmittedAt returns the value of the "last_emitted_at" field in the mutation.
func (m *SLAAlertStateMutation) LastEmittedAt() (r time.Time, exists bool) {
	v := m.last_emitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEmittedAt returns the old "last_emitted_at" field's value of the SLAAlertState entity.
// If the SLAAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertStateMutation) OldLastEmittedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEmittedAt: %w", err)
	}
	return oldValue.LastEmittedAt, nil
}

// ClearLastEmittedAt clears the value of the "last_emitted_at" field.
func (m *SLAAlertStateMutation) ClearLastEmittedAt() {
	m.last_emitted_at = nil
	m.clearedFields[slaalertstate.FieldLastEmittedAt] = struct{}{}
}

// LastEmittedAtCleared returns if the "last_emitted_at" field was cleared in this mutation.
func (m *SLAAlertStateMutation) LastEmittedAtCleared() bool {
	_, ok := m.clearedFields[slaalertstate.FieldLastEmittedAt]
	return ok
}

// ResetLastEmittedAt resets all changes to the "last_emitted_at" field.
func (m *SLAAlertStateMutation) ResetLastEmittedAt() {
	m.last_emitted_at = nil
	delete(m.clearedFields, slaalertstate.FieldLastEmittedAt)
}

// SetLastRecoveredAt sets the "last_recovered_at" field.
func (m *SLAAlertStateMutation) SetLastRecoveredAt(t time.Time) {
	m.last_recovered_at = &t
}

// LastRecoveredAt returns the value of the "last_recovered_at" field in the mutation.
func (m *SLAAlertStateMutation) LastRecoveredAt() (r time.Time, exists bool) {
	v := m.last_recovered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRecoveredAt returns the old "last_recovered_at" field's value of the SLAAlertState entity.
// If the SLAAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertStateMutation) OldLastRecoveredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRecoveredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRecoveredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRecoveredAt: %w", err)
	}
	return oldValue.LastRecoveredAt, nil
}

// ClearLastRecoveredAt clears the value of the "last_recovered_at" field.
func (m *SLAAlertStateMutation) ClearLastRecoveredAt() {
	m.last_recovered_at = nil
	m.clearedFields[slaalertstate.FieldLastRecoveredAt] = struct{}{}
}

// LastRecoveredAtCleared returns if the "last_recovered_at" field was cleared in this mutation.
func (m *SLAAlertStateMutation) LastRecoveredAtCleared() bool {
	_, ok := m.clearedFields[slaalertstate.FieldLastRecoveredAt]
	return ok
}

// ResetLastRecoveredAt resets all changes to the "last_recovered_at" field.
func (m *SLAAlertStateMutation) ResetLastRecoveredAt() {
	m.last_recovered_at = nil
	delete(m.clearedFields, slaalertstate.FieldLastRecoveredAt)
}

// SetLastEscalatedAt sets the "last_escalated_at" field.
func (m *SLAAlertStateMutation) SetLastEscalatedAt(t time.Time) {
	m.last_escalated_at = &t
}

// LastEscalatedAt returns the value of the "last_escalated_at" field in the mutation.
func (m *SLAAlertStateMutation) LastEscalatedAt() (r time.Time, exists bool) {
	v := m.last_escalated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEscalatedAt returns the old "last_escalated_at" field's value of the SLAAlertState entity.
// If the SLAAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertStateMutation) OldLastEscalatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEscalatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEscalatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEscalatedAt: %w", err)
	}
	return oldValue.LastEscalatedAt, nil
}

// ClearLastEscalatedAt clears the value of the "last_escalated_at" field.
func (m *SLAAlertStateMutation) ClearLastEscalatedAt() {
	m.last_escalated_at = nil
	m.clearedFields[slaalertstate.FieldLastEscalatedAt] = struct{}{}
}

// LastEscalatedAtCleared returns if the "last_escalated_at" field was cleared in this mutation.
func (m *SLAAlertStateMutation) LastEscalatedAtCleared() bool {
	_, ok := m.clearedFields[slaalertstate.FieldLastEscalatedAt]
	return ok
}

// ResetLastEscalatedAt resets all changes to the "last_escalated_at" field.
func (m *SLAAlertStateMutation) ResetLastEscalatedAt() {
	m.last_escalated_at = nil
	delete(m.clearedFields, slaalertstate.FieldLastEscalatedAt)
}

// SetRepeatCount sets the "repeat_count" field.
func (m *SLAAlertStateMutation) SetRepeatCount(i int) {
	m.repeat_count = &i
	m.addrepeat_count = nil
}

// RepeatCount returns the value of the "repeat_count" field in the mutation.
func (m *SLAAlertStateMutation) RepeatCount() (r int, exists bool) {
	v := m.repeat_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRepeatCount returns the old "repeat_count" field's value of the SLAAlertState entity.
// If the SLAAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertStateMutation) OldRepeatCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepeatCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepeatCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepeatCount: %w", err)
	}
	return oldValue.RepeatCount, nil
}

// AddRepeatCount adds i to the "repeat_count" field.
func (m *SLAAlertStateMutation) AddRepeatCount(i int) {
	if m.addrepeat_count != nil {
		*m.addrepeat_count += i
	} else {
		m.addrepeat_count = &i
	}
}

// AddedRepeatCount returns the value that was added to the "repeat_count" field in this mutation.
func (m *SLAAlertStateMutation) AddedRepeatCount() (r int, exists bool) {
	v := m.addrepeat_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepeatCount resets all changes to the "repeat_count" field.
func (m *SLAAlertStateMutation) ResetRepeatCount() {
	m.repeat_count = nil
	m.addrepeat_count = nil
}

// SetEscalationLevel sets the "escalation_level" field.
func (m *SLAAlertStateMutation) SetEscalationLevel(i int) {
	m.escalation_level = &i
	m.addescalation_level = nil
}

// EscalationLevel returns the value of the "escalation_level" field in the mutation.
func (m *SLAAlertStateMutation) EscalationLevel() (r int, exists bool) {
	v := m.escalation_level
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationLevel returns the old "escalation_level" field's value of the SLAAlertState entity.
// If the SLAAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertStateMutation) OldEscalationLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationLevel: %w", err)
	}
	return oldValue.EscalationLevel, nil
}

// AddEscalationLevel adds i to the "escalation_level" field.
func (m *SLAAlertStateMutation) AddEscalationLevel(i int) {
	if m.addescalation_level != nil {
		*m.addescalation_level += i
	} else {
		m.addescalation_level = &i
	}
}

// AddedEscalationLevel returns the value that was added to the "escalation_level" field in this mutation.
func (m *SLAAlertStateMutation) AddedEscalationLevel() (r int, exists bool) {
	v := m.addescalation_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetEscalationLevel resets all changes to the "escalation_level" field.
func (m *SLAAlertStateMutation) ResetEscalationLevel() {
	m.escalation_level = nil
	m.addescalation_level = nil
}

// SetEscalationReason sets the "escalation_reason" field.
func (m *SLAAlertStateMutation) SetEscalationReason(s string) {
	m.escalation_reason = &s
}

// EscalationReason returns the value of the "escalation_reason" field in the mutation.
func (m *SLAAlertStateMutation) EscalationReason() (r string, exists bool) {
	v := m.escalation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationReason returns the old "escalation_reason" field's value of the SLAAlertState entity.
// If the SLAAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertStateMutation) OldEscalationReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationReason: %w", err)
	}
	return oldValue.EscalationReason, nil
}

// ClearEscalationReason clears the value of the "escalation_reason" field.
func (m *SLAAlertStateMutation) ClearEscalationReason() {
	m.escalation_reason = nil
	m.clearedFields[slaalertstate.FieldEscalationReason] = struct{}{}
}

// EscalationReasonCleared returns if the "escalation_reason" field was cleared in this mutation.
func (m *SLAAlertStateMutation) EscalationReasonCleared() bool {
	_, ok := m.clearedFields[slaalertstate.FieldEscalationReason]
	return ok
}

// ResetEscalationReason resets all changes to the "escalation_reason" field.
func (m *SLAAlertStateMutation) ResetEscalationReason() {
	m.escalation_reason = nil
	delete(m.clearedFields, slaalertstate.FieldEscalationReason)
}

// SetIsOpen sets the "is_open" field.
func (m *SLAAlertStateMutation) SetIsOpen(b bool) {
	m.is_open = &b
}

// IsOpen returns the value of the "is_open" field in the mutation.
func (m *SLAAlertStateMutation) IsOpen() (r bool, exists bool) {
	v := m.is_open
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOpen returns the old "is_open" field's value of the SLAAlertState entity.
// If the SLAAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertStateMutation) OldIsOpen(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOpen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOpen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOpen: %w", err)
	}
	return oldValue.IsOpen, nil
}

// ResetIsOpen resets all changes to the "is_open" field.
func (m *SLAAlertStateMutation) ResetIsOpen() {
	m.is_open = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SLAAlertStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SLAAlertStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SLAAlertState entity.
// If the SLAAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAAlertStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SLAAlertStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SLAAlertStateMutation builder.
func (m *SLAAlertStateMutation) Where(ps ...predicate.SLAAlertState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SLAAlertStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SLAAlertStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SLAAlertState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SLAAlertStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SLAAlertStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SLAAlertState).
func (m *SLAAlertStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SLAAlertStateMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.dedupe_key != nil {
		fields = append(fields, slaalertstate.FieldDedupeKey)
	}
	if m.connector_name != nil {
		fields = append(fields, slaalertstate.FieldConnectorName)
	}
	if m.source_name != nil {
		fields = append(fields, slaalertstate.FieldSourceName)
	}
	if m.breach_type != nil {
		fields = append(fields, slaalertstate.FieldBreachType)
	}
	if m.severity != nil {
		fields = append(fields, slaalertstate.FieldSeverity)
	}
	if m.stage != nil {
		fields = append(fields, slaalertstate.FieldStage)
	}
	if m.message != nil {
		fields = append(fields, slaalertstate.FieldMessage)
	}
	if m.first_seen_at != nil {
		fields = append(fields, slaalertstate.FieldFirstSeenAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, slaalertstate.FieldLastSeenAt)
	}
	if m.last_emitted_at != nil {
		fields = append(fields, slaalertstate.FieldLastEmittedAt)
	}
	if m.last_recovered_at != nil {
		fields = append(fields, slaalertstate.FieldLastRecoveredAt)
	}
	if m.last_escalated_at != nil {
		fields = append(fields, slaalertstate.FieldLastEscalatedAt)
	}
	if m.repeat_count != nil {
		fields = append(fields, slaalertstate.FieldRepeatCount)
	}
	if m.escalation_level != nil {
		fields = append(fields, slaalertstate.FieldEscalationLevel)
	}
	if m.escalation_reason != nil {
		fields = append(fields, slaalertstate.FieldEscalationReason)
	}
	if m.is_open != nil {
		fields = append(fields, slaalertstate.FieldIsOpen)
	}
	if m.updated_at != nil {
		fields = append(fields, slaalertstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SLAAlertStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case slaalertstate.FieldDedupeKey:
		return m.DedupeKey()
	case slaalertstate.FieldConnectorName:
		return m.ConnectorName()
	case slaalertstate.FieldSourceName:
		return m.SourceName()
	case slaalertstate.FieldBreachType:
		return m.BreachType()
	case slaalertstate.FieldSeverity:
		return m.Severity()
	case slaalertstate.FieldStage:
		return m.Stage()
	case slaalertstate.FieldMessage:
		return m.Message()
	case slaalertstate.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case slaalertstate.FieldLastSeenAt:
		return m.LastSeenAt()
	case slaalertstate.FieldLastEmittedAt:
		return m.LastEmittedAt()
	case slaalertstate.FieldLastRecoveredAt:
		return m.LastRecoveredAt()
	case slaalertstate.FieldLastEscalatedAt:
		return m.LastEscalatedAt()
	case slaalertstate.FieldRepeatCount:
		return m.RepeatCount()
	case slaalertstate.FieldEscalationLevel:
		return m.EscalationLevel()
	case slaalertstate.FieldEscalationReason:
		return m.EscalationReason()
	case slaalertstate.FieldIsOpen:
		return m.IsOpen()
	case slaalertstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SLAAlertStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case slaalertstate.FieldDedupeKey:
		return m.OldDedupeKey(ctx)
	case slaalertstate.FieldConnectorName:
		return m.OldConnectorName(ctx)
	case slaalertstate.FieldSourceName:
		return m.OldSourceName(ctx)
	case slaalertstate.FieldBreachType:
		return m.OldBreachType(ctx)
	case slaalertstate.FieldSeverity:
		return m.OldSeverity(ctx)
	case slaalertstate.FieldStage:
		return m.OldStage(ctx)
	case slaalertstate.FieldMessage:
		return m.OldMessage(ctx)
	case slaalertstate.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case slaalertstate.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case slaalertstate.FieldLastEmittedAt:
		return m.OldLastEmittedAt(ctx)
	case slaalertstate.FieldLastRecoveredAt:
		return m.OldLastRecoveredAt(ctx)
	case slaalertstate.FieldLastEscalatedAt:
		return m.OldLastEscalatedAt(ctx)
	case slaalertstate.FieldRepeatCount:
		return m.OldRepeatCount(ctx)
	case slaalertstate.FieldEscalationLevel:
		return m.OldEscalationLevel(ctx)
	case slaalertstate.FieldEscalationReason:
		return m.OldEscalationReason(ctx)
	case slaalertstate.FieldIsOpen:
		return m.OldIsOpen(ctx)
	case slaalertstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SLAAlertState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SLAAlertStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case slaalertstate.FieldDedupeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupeKey(v)
		return nil
	case slaalertstate.FieldConnectorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectorName(v)
		return nil
	case slaalertstate.FieldSourceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceName(v)
		return nil
	case slaalertstate.FieldBreachType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreachType(v)
		return nil
	case slaalertstate.FieldSeverity:
		v, ok := value.(slaalertstate.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case slaalertstate.FieldStage:
		v, ok := value.(slaalertstate.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case slaalertstate.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case slaalertstate.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case slaalertstate.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case slaalertstate.FieldLastEmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEmittedAt(v)
		return nil
	case slaalertstate.FieldLastRecoveredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRecoveredAt(v)
		return nil
	case slaalertstate.FieldLastEscalatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEscalatedAt(v)
		return nil
	case slaalertstate.FieldRepeatCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepeatCount(v)
		return nil
	case slaalertstate.FieldEscalationLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationLevel(v)
		return nil
	case slaalertstate.FieldEscalationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationReason(v)
		return nil
	case slaalertstate.FieldIsOpen:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOpen(v)
		return nil
	case slaalertstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SLAAlertState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SLAAlertStateMutation) AddedFields() []string {
	var fields []string
	if m.addrepeat_count != nil {
		fields = append(fields, slaalertstate.FieldRepeatCount)
	}
	if m.addescalation_level != nil {
		fields = append(fields, slaalertstate.FieldEscalationLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SLAAlertStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case slaalertstate.FieldRepeatCount:
		return m.AddedRepeatCount()
	case slaalertstate.FieldEscalationLevel:
		return m.AddedEscalationLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SLAAlertStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case slaalertstate.FieldRepeatCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepeatCount(v)
		return nil
	case slaalertstate.FieldEscalationLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEscalationLevel(v)
		return nil
	}
	return fmt.Errorf("unknown SLAAlertState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SLAAlertStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(slaalertstate.FieldSourceName) {
		fields = append(fields, slaalertstate.FieldSourceName)
	}
	if m.FieldCleared(slaalertstate.FieldLastEmittedAt) {
		fields = append(fields, slaalertstate.FieldLastEmittedAt)
	}
	if m.FieldCleared(slaalertstate.FieldLastRecoveredAt) {
		fields = append(fields, slaalertstate.FieldLastRecoveredAt)
	}
	if m.FieldCleared(slaalertstate.FieldLastEscalatedAt) {
		fields = append(fields, slaalertstate.FieldLastEscalatedAt)
	}
	if m.FieldCleared(slaalertstate.FieldEscalationReason) {
		fields = append(fields, slaalertstate.FieldEscalationReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SLAAlertStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SLAAlertStateMutation) ClearField(name string) error {
	switch name {
	case slaalertstate.FieldSourceName:
		m.ClearSourceName()
		return nil
	case slaalertstate.FieldLastEmittedAt:
		m.ClearLastEmittedAt()
		return nil
	case slaalertstate.FieldLastRecoveredAt:
		m.ClearLastRecoveredAt()
		return nil
	case slaalertstate.FieldLastEscalatedAt:
		m.ClearLastEscalatedAt()
		return nil
	case slaalertstate.FieldEscalationReason:
		m.ClearEscalationReason()
		return nil
	}
	return fmt.Errorf("unknown SLAAlertState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SLAAlertStateMutation) ResetField(name string) error {
	switch name {
	case slaalertstate.FieldDedupeKey:
		m.ResetDedupeKey()
		return nil
	case slaalertstate.FieldConnectorName:
		m.ResetConnectorName()
		return nil
	case slaalertstate.FieldSourceName:
		m.ResetSourceName()
		return nil
	case slaalertstate.FieldBreachType:
		m.ResetBreachType()
		return nil
	case slaalertstate.FieldSeverity:
		m.ResetSeverity()
		return nil
	case slaalertstate.FieldStage:
		m.ResetStage()
		return nil
	case slaalertstate.FieldMessage:
		m.ResetMessage()
		return nil
	case slaalertstate.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case slaalertstate.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case slaalertstate.FieldLastEmittedAt:
		m.ResetLastEmittedAt()
		return nil
	case slaalertstate.FieldLastRecoveredAt:
		m.ResetLastRecoveredAt()
		return nil
	case slaalertstate.FieldLastEscalatedAt:
		m.ResetLastEscalatedAt()
		return nil
	case slaalertstate.FieldRepeatCount:
		m.ResetRepeatCount()
		return nil
	case slaalertstate.FieldEscalationLevel:
		m.ResetEscalationLevel()
		return nil
	case slaalertstate.FieldEscalationReason:
		m.ResetEscalationReason()
		return nil
	case slaalertstate.FieldIsOpen:
		m.ResetIsOpen()
		return nil
	case slaalertstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SLAAlertState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SLAAlertStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SLAAlertStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SLAAlertStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SLAAlertStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SLAAlertStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SLAAlertStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SLAAlertStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SLAAlertState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SLAAlertStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SLAAlertState edge %s", name)
}

// SLAHistoryMutation represents an operation that mutates the SLAHistory nodes in the graph.
type SLAHistoryMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	observed_at          *time.Time
	connector_name       *string
	source_name          *string
	breach_type          *string
	severity             *string
	stage                *string
	freshness_minutes    *int
	addfreshness_minutes *int
	pending_failures     *int
	addpending_failures  *int
	dead_failures        *int
	adddead_failures     *int
	message              *string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*SLAHistory, error)
	predicates           []predicate.SLAHistory
}

var _ ent.Mutation = (*SLAHistoryMutation)(nil)

// slahistoryOption allows management of the mutation configuration using functional options.
type slahistoryOption func(*SLAHistoryMutation)

// newSLAHistoryMutation creates new mutation for the SLAHistory entity.
func newSLAHistoryMutation(c config, op Op, opts ...slahistoryOption) *SLAHistoryMutation {
	m := &SLAHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeSLAHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSLAHistoryID sets the ID field of the mutation.
func withSLAHistoryID(id int) slahistoryOption {
	return func(m *SLAHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *SLAHistory
		)
		m.oldValue = func(ctx context.Context) (*SLAHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SLAHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSLAHistory sets the old SLAHistory of the mutation.
func withSLAHistory(node *SLAHistory) slahistoryOption {
	return func(m *SLAHistoryMutation) {
		m.oldValue = func(context.Context) (*SLAHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SLAHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SLAHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SLAHistoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SLAHistoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SLAHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetObservedAt sets the "observed_at" field.
func (m *SLAHistoryMutation) SetObservedAt(t time.Time) {
	m.observed_at = &t
}

// ObservedAt returns the value of the "observed_at" field in the mutation.
func (m *SLAHistoryMutation) ObservedAt() (r time.Time, exists bool) {
	v := m.observed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldObservedAt returns the old "observed_at" field's value of the SLAHistory entity.
// If the SLAHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAHistoryMutation) OldObservedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservedAt: %w", err)
	}
	return oldValue.ObservedAt, nil
}

// ResetObservedAt resets all changes to the "observed_at" field.
func (m *SLAHistoryMutation) ResetObservedAt() {
	m.observed_at = nil
}

// SetConnectorName sets the "connector_name" field.
func (m *SLAHistoryMutation) SetConnectorName(s string) {
	m.connector_name = &s
}

// ConnectorName returns the value of the "connector_name" field in the mutation.
func (m *SLAHistoryMutation) ConnectorName() (r string, exists bool) {
	v := m.connector_name
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectorName returns the old "connector_name" field's value of the SLAHistory entity.
// If the SLAHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAHistoryMutation) OldConnectorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectorName: %w", err)
	}
	return oldValue.ConnectorName, nil
}

// ResetConnectorName resets all changes to the "connector_name" field.
func (m *SLAHistoryMutation) ResetConnectorName() {
	m.connector_name = nil
}

// SetSourceName sets the "source_name" field.
func (m *SLAHistoryMutation) SetSourceName(s string) {
	m.source_name = &s
}

// SourceName returns the value of the "source_name" field in the mutation.
func (m *SLAHistoryMutation) SourceName() (r string, exists bool) {
	v := m.source_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceName returns the old "source_name" field's value of the SLAHistory entity.
// If the SLAHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAHistoryMutation) OldSourceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceName: %w", err)
	}
	return oldValue.SourceName, nil
}

// ClearSourceName clears the value of the "source_name" field.
func (m *SLAHistoryMutation) ClearSourceName() {
	m.source_name = nil
	m.clearedFields[slahistory.FieldSourceName] = struct{}{}
}

// SourceNameCleared returns if the "source_name" field was cleared in this mutation.
func (m *SLAHistoryMutation) SourceNameCleared() bool {
	_, ok := m.clearedFields[slahistory.FieldSourceName]
	return ok
}

// ResetSourceName resets all changes to the "source_name" field.
func (m *SLAHistoryMutation) ResetSourceName() {
	m.source_name = nil
	delete(m.clearedFields, slahistory.FieldSourceName)
}

// SetBreachType sets the "breach_type" field.
func (m *SLAHistoryMutation) SetBreachType(s string) {
	m.breach_type = &s
}

// BreachType returns the value of the "breach_type" field in the mutation.
func (m *SLAHistoryMutation) BreachType() (r string, exists bool) {
	v := m.breach_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBreachType returns the old "breach_type" field's value of the SLAHistory entity.
// If the SLAHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAHistoryMutation) OldBreachType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreachType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreachType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreachType: %w", err)
	}
	return oldValue.BreachType, nil
}

// ResetBreachType resets all changes to the "breach_type" field.
func (m *SLAHistoryMutation) ResetBreachType() {
	m.breach_type = nil
}

// SetSeverity sets the "severity" field.
func (m *SLAHistoryMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *SLAHistoryMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the SLAHistory entity.
// If the SLAHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAHistoryMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *SLAHistoryMutation) ResetSeverity() {
	m.severity = nil
}

// SetStage sets the "stage" field.
func (m *SLAHistoryMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *SLAHistoryMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the SLAHistory entity.
// If the SLAHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAHistoryMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *SLAHistoryMutation) ResetStage() {
	m.stage = nil
}

// SetFreshnessMinutes sets the "freshness_minutes" field.
func (m *SLAHistoryMutation) SetFreshnessMinutes(i int) {
	m.freshness_minutes = &i
	m.addfreshness_minutes = nil
}

// FreshnessMinutes returns the value of the "freshness_minutes" field in the mutation.
func (m *SLAHistoryMutation) FreshnessMinutes() (r int, exists bool) {
	v := m.freshness_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldFreshnessMinutes returns the old "freshness_minutes" field's value of the SLAHistory entity.
// If the SLAHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAHistoryMutation) OldFreshnessMinutes(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFreshnessMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFreshnessMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFreshnessMinutes: %w", err)
	}
	return oldValue.FreshnessMinutes, nil
}

// AddFreshnessMinutes adds i to the "freshness_minutes" field.
func (m *SLAHistoryMutation) AddFreshnessMinutes(i int) {
	if m.addfreshness_minutes != nil {
		*m.addfreshness_minutes += i
	} else {
		m.addfreshness_minutes = &i
	}
}

// AddedFreshnessMinutes returns the value that was added to the "freshness_minutes" field in this mutation.
func (m *SLAHistoryMutation) AddedFreshnessMinutes() (r int, exists bool) {
	v := m.addfreshness_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ClearFreshnessMinutes clears the value of the "freshness_minutes" field.
func (m *SLAHistoryMutation) ClearFreshnessMinutes() {
	m.freshness_minutes = nil
	m.addfreshness_minutes = nil
	m.clearedFields[slahistory.FieldFreshnessMinutes] = struct{}{}
}

// FreshnessMinutesCleared returns if the "freshness_minutes" field was cleared in this mutation.
func (m *SLAHistoryMutation) FreshnessMinutesCleared() bool {
	_, ok := m.clearedFields[slahistory.FieldFreshnessMinutes]
	return ok
}

// ResetFreshnessMinutes resets all changes to the "freshness_minutes" field.
func (m *SLAHistoryMutation) ResetFreshnessMinutes() {
	m.freshness_minutes = nil
	m.addfreshness_minutes = nil
	delete(m.clearedFields, slahistory.FieldFreshnessMinutes)
}

// SetPendingFailures sets the "pending_failures" field.
func (m *SLAHistoryMutation) SetPendingFailures(i int) {
	m.pending_failures = &i
	m.addpending_failures = nil
}

// PendingFailures returns the value of the "pending_failures" field in the mutation.
func (m *SLAHistoryMutation) PendingFailures() (r int, exists bool) {
	v := m.pending_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingFailures returns the old "pending_failures" field's value of the SLAHistory entity.
// If the SLAHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAHistoryMutation) OldPendingFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingFailures: %w", err)
	}
	return oldValue.PendingFailures, nil
}

// AddPendingFailures adds i to the "pending_failures" field.
func (m *SLAHistoryMutation) AddPendingFailures(i int) {
	if m.addpending_failures != nil {
		*m.addpending_failures += i
	} else {
		m.addpending_failures = &i
	}
}

// AddedPendingFailures returns the value that was added to the "pending_failures" field in this mutation.
func (m *SLAHistoryMutation) AddedPendingFailures() (r int, exists bool) {
	v := m.addpending_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetPendingFailures resets all changes to the "pending_failures" field.
func (m *SLAHistoryMutation) ResetPendingFailures() {
	m.pending_failures = nil
	m.addpending_failures = nil
}

// SetDeadFailures sets the "dead_failures" field.
func (m *SLAHistoryMutation) SetDeadFailures(i int) {
	m.dead_failures = &i
	m.adddead_failures = nil
}

// DeadFailures returns the value of the "dead_failures" field in the mutation.
func (m *SLAHistoryMutation) DeadFailures() (r int, exists bool) {
	v := m.dead_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadFailures returns the old "dead_failures" field's value of the SLAHistory entity.
// If the SLAHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAHistoryMutation) OldDeadFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadFailures: %w", err)
	}
	return oldValue.DeadFailures, nil
}

// AddDeadFailures adds i to the "dead_failures" field.
func (m *SLAHistoryMutation) AddDeadFailures(i int) {
	if m.adddead_failures != nil {
		*m.adddead_failures += i
	} else {
		m.adddead_failures = &i
	}
}

// AddedDeadFailures returns the value that was added to the "dead_failures" field in this mutation.
func (m *SLAHistoryMutation) AddedDeadFailures() (r int, exists bool) {
	v := m.adddead_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeadFailures resets all changes to the "dead_failures" field.
func (m *SLAHistoryMutation) ResetDeadFailures() {
	m.dead_failures = nil
	m.adddead_failures = nil
}

// SetMessage sets the "message" field.
func (m *SLAHistoryMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *SLAHistoryMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the SLAHistory entity.
// If the SLAHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SLAHistoryMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *SLAHistoryMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[slahistory.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *SLAHistoryMutation) MessageCleared() bool {
	_, ok := m.clearedFields[slahistory.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *SLAHistoryMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, slahistory.FieldMessage)
}

// Where appends a list predicates to the SLAHistoryMutation builder.
func (m *SLAHistoryMutation) Where(ps ...predicate.SLAHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SLAHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SLAHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SLAHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SLAHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SLAHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SLAHistory).
func (m *SLAHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SLAHistoryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.observed_at != nil {
		fields = append(fields, slahistory.FieldObservedAt)
	}
	if m.connector_name != nil {
		fields = append(fields, slahistory.FieldConnectorName)
	}
	if m.source_name != nil {
		fields = append(fields, slahistory.FieldSourceName)
	}
	if m.breach_type != nil {
		fields = append(fields, slahistory.FieldBreachType)
	}
	if m.severity != nil {
		fields = append(fields, slahistory.FieldSeverity)
	}
	if m.stage != nil {
		fields = append(fields, slahistory.FieldStage)
	}
	if m.freshness_minutes != nil {
		fields = append(fields, slahistory.FieldFreshnessMinutes)
	}
	if m.pending_failures != nil {
		fields = append(fields, slahistory.FieldPendingFailures)
	}
	if m.dead_failures != nil {
		fields = append(fields, slahistory.FieldDeadFailures)
	}
	if m.message != nil {
		fields = append(fields, slahistory.FieldMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SLAHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case slahistory.FieldObservedAt:
		return m.ObservedAt()
	case slahistory.FieldConnectorName:
		return m.ConnectorName()
	case slahistory.FieldSourceName:
		return m.SourceName()
	case slahistory.FieldBreachType:
		return m.BreachType()
	case slahistory.FieldSeverity:
		return m.Severity()
	case slahistory.FieldStage:
		return m.Stage()
	case slahistory.FieldFreshnessMinutes:
		return m.FreshnessMinutes()
	case slahistory.FieldPendingFailures:
		return m.PendingFailures()
	case slahistory.FieldDeadFailures:
		return m.DeadFailures()
	case slahistory.FieldMessage:
		return m.Message()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SLAHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case slahistory.FieldObservedAt:
		return m.OldObservedAt(ctx)
	case slahistory.FieldConnectorName:
		return m.OldConnectorName(ctx)
	case slahistory.FieldSourceName:
		return m.OldSourceName(ctx)
	case slahistory.FieldBreachType:
		return m.OldBreachType(ctx)
	case slahistory.FieldSeverity:
		return m.OldSeverity(ctx)
	case slahistory.FieldStage:
		return m.OldStage(ctx)
	case slahistory.FieldFreshnessMinutes:
		return m.OldFreshnessMinutes(ctx)
	case slahistory.FieldPendingFailures:
		return m.OldPendingFailures(ctx)
	case slahistory.FieldDeadFailures:
		return m.OldDeadFailures(ctx)
	case slahistory.FieldMessage:
		return m.OldMessage(ctx)
	}
	return nil, fmt.Errorf("unknown SLAHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SLAHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case slahistory.FieldObservedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservedAt(v)
		return nil
	case slahistory.FieldConnectorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectorName(v)
		return nil
	case slahistory.FieldSourceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceName(v)
		return nil
	case slahistory.FieldBreachType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreachType(v)
		return nil
	case slahistory.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case slahistory.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case slahistory.FieldFreshnessMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFreshnessMinutes(v)
		return nil
	case slahistory.FieldPendingFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingFailures(v)
		return nil
	case slahistory.FieldDeadFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadFailures(v)
		return nil
	case slahistory.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	}
	return fmt.Errorf("unknown SLAHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SLAHistoryMutation) AddedFields() []string {
	var fields []string
	if m.addfreshness_minutes != nil {
		fields = append(fields, slahistory.FieldFreshnessMinutes)
	}
	if m.addpending_failures != nil {
		fields = append(fields, slahistory.FieldPendingFailures)
	}
	if m.adddead_failures != nil {
		fields = append(fields, slahistory.FieldDeadFailures)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SLAHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case slahistory.FieldFreshnessMinutes:
		return m.AddedFreshnessMinutes()
	case slahistory.FieldPendingFailures:
		return m.AddedPendingFailures()
	case slahistory.FieldDeadFailures:
		return m.AddedDeadFailures()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SLAHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case slahistory.FieldFreshnessMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFreshnessMinutes(v)
		return nil
	case slahistory.FieldPendingFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPendingFailures(v)
		return nil
	case slahistory.FieldDeadFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeadFailures(v)
		return nil
	}
	return fmt.Errorf("unknown SLAHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SLAHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(slahistory.FieldSourceName) {
		fields = append(fields, slahistory.FieldSourceName)
	}
	if m.FieldCleared(slahistory.FieldFreshnessMinutes) {
		fields = append(fields, slahistory.FieldFreshnessMinutes)
	}
	if m.FieldCleared(slahistory.FieldMessage) {
		fields = append(fields, slahistory.FieldMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SLAHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SLAHistoryMutation) ClearField(name string) error {
	switch name {
	case slahistory.FieldSourceName:
		m.ClearSourceName()
		return nil
	case slahistory.FieldFreshnessMinutes:
		m.ClearFreshnessMinutes()
		return nil
	case slahistory.FieldMessage:
		m.ClearMessage()
		return nil
	}
	return fmt.Errorf("unknown SLAHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SLAHistoryMutation) ResetField(name string) error {
	switch name {
	case slahistory.FieldObservedAt:
		m.ResetObservedAt()
		return nil
	case slahistory.FieldConnectorName:
		m.ResetConnectorName()
		return nil
	case slahistory.FieldSourceName:
		m.ResetSourceName()
		return nil
	case slahistory.FieldBreachType:
		m.ResetBreachType()
		return nil
	case slahistory.FieldSeverity:
		m.ResetSeverity()
		return nil
	case slahistory.FieldStage:
		m.ResetStage()
		return nil
	case slahistory.FieldFreshnessMinutes:
		m.ResetFreshnessMinutes()
		return nil
	case slahistory.FieldPendingFailures:
		m.ResetPendingFailures()
		return nil
	case slahistory.FieldDeadFailures:
		m.ResetDeadFailures()
		return nil
	case slahistory.FieldMessage:
		m.ResetMessage()
		return nil
	}
	return fmt.Errorf("unknown SLAHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SLAHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SLAHistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SLAHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SLAHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SLAHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SLAHistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SLAHistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SLAHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SLAHistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SLAHistory edge %s", name)
}

// SourceBudgetMutation represents an operation that mutates the SourceBudget nodes in the graph.
type SourceBudgetMutation struct {
	config
	op               Op
	typ              string
	id               *int
	connector_name   *string
	source_key       *string
	window_hour      *string
	request_count    *int
	addrequest_count *int
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*SourceBudget, error)
	predicates       []predicate.SourceBudget
}

var _ ent.Mutation = (*SourceBudgetMutation)(nil)

// sourcebudgetOption allows management of the mutation configuration using functional options.
type sourcebudgetOption func(*SourceBudgetMutation)

// newSourceBudgetMutation creates new mutation for the SourceBudget entity.
func newSourceBudgetMutation(c config, op Op, opts ...sourcebudgetOption) *SourceBudgetMutation {
	m := &SourceBudgetMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceBudget,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceBudgetID sets the ID field of the mutation.
func withSourceBudgetID(id int) sourcebudgetOption {
	return func(m *SourceBudgetMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceBudget
		)
		m.oldValue = func(ctx context.Context) (*SourceBudget, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceBudget.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceBudget sets the old SourceBudget of the mutation.
func withSourceBudget(node *SourceBudget) sourcebudgetOption {
	return func(m *SourceBudgetMutation) {
		m.oldValue = func(context.Context) (*SourceBudget, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceBudgetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceBudgetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceBudgetMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceBudgetMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceBudget.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConnectorName sets the "connector_name" field.
func (m *SourceBudgetMutation) SetConnectorName(s string) {
	m.connector_name = &s
}

// ConnectorName returns the value of the "connector_name" field in the mutation.
func (m *SourceBudgetMutation) ConnectorName() (r string, exists bool) {
	v := m.connector_name
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectorName returns the old "connector_name" field's value of the SourceBudget entity.
// If the SourceBudget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceBudgetMutation) OldConnectorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectorName: %w", err)
	}
	return oldValue.ConnectorName, nil
}

// ResetConnectorName resets all changes to the "connector_name" field.
func (m *SourceBudgetMutation) ResetConnectorName() {
	m.connector_name = nil
}

// SetSourceKey sets the "source_key" field.
func (m *SourceBudgetMutation) SetSourceKey(s string) {
	m.source_key = &s
}

// SourceKey returns the value of the "source_key" field in the mutation.
func (m *SourceBudgetMutation) SourceKey() (r string, exists bool) {
	v := m.source_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceKey returns the old "source_key" field's value of the SourceBudget entity.
// If the SourceBudget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceBudgetMutation) OldSourceKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceKey: %w", err)
	}
	return oldValue.SourceKey, nil
}

// ResetSourceKey resets all changes to the "source_key" field.
func (m *SourceBudgetMutation) ResetSourceKey() {
	m.source_key = nil
}

// SetWindowHour sets the "window_hour" field.
func (m *SourceBudgetMutation) SetWindowHour(s string) {
	m.window_hour = &s
}

// WindowHour returns the value of the "window_hour" field in the mutation.
func (m *SourceBudgetMutation) WindowHour() (r string, exists bool) {
	v := m.window_hour
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowHour returns the old "window_hour" field's value of the SourceBudget entity.
// If the SourceBudget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceBudgetMutation) OldWindowHour(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowHour is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowHour requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowHour: %w", err)
	}
	return oldValue.WindowHour, nil
}

// ResetWindowHour resets all changes to the "window_hour" field.
func (m *SourceBudgetMutation) ResetWindowHour() {
	m.window_hour = nil
}

// SetRequestCount sets the "request_count" field.
func (m *SourceBudgetMutation) SetRequestCount(i int) {
	m.request_count = &i
	m.addrequest_count = nil
}

// RequestCount returns the value of the "request_count" field in the mutation.
func (m *SourceBudgetMutation) RequestCount() (r int, exists bool) {
	v := m.request_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestCount returns the old "request_count" field's value of the SourceBudget entity.
// If the SourceBudget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceBudgetMutation) OldRequestCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestCount: %w", err)
	}
	return oldValue.RequestCount, nil
}

// AddRequestCount adds i to the "request_count" field.
func (m *SourceBudgetMutation) AddRequestCount(i int) {
	if m.addrequest_count != nil {
		*m.addrequest_count += i
	} else {
		m.addrequest_count = &i
	}
}

// AddedRequestCount returns the value that was added to the "request_count" field in this mutation.
func (m *SourceBudgetMutation) AddedRequestCount() (r int, exists bool) {
	v := m.addrequest_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestCount resets all changes to the "request_count" field.
func (m *SourceBudgetMutation) ResetRequestCount() {
	m.request_count = nil
	m.addrequest_count = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SourceBudgetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SourceBudgetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SourceBudget entity.
// If the SourceBudget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceBudgetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SourceBudgetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SourceBudgetMutation builder.
func (m *SourceBudgetMutation) Where(ps ...predicate.SourceBudget) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceBudgetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceBudgetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceBudget, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceBudgetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceBudgetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceBudget).
func (m *SourceBudgetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceBudgetMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.connector_name != nil {
		fields = append(fields, sourcebudget.FieldConnectorName)
	}
	if m.source_key != nil {
		fields = append(fields, sourcebudget.FieldSourceKey)
	}
	if m.window_hour != nil {
		fields = append(fields, sourcebudget.FieldWindowHour)
	}
	if m.request_count != nil {
		fields = append(fields, sourcebudget.FieldRequestCount)
	}
	if m.updated_at != nil {
		fields = append(fields, sourcebudget.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceBudgetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourcebudget.FieldConnectorName:
		return m.ConnectorName()
	case sourcebudget.FieldSourceKey:
		return m.SourceKey()
	case sourcebudget.FieldWindowHour:
		return m.WindowHour()
	case sourcebudget.FieldRequestCount:
		return m.RequestCount()
	case sourcebudget.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceBudgetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourcebudget.FieldConnectorName:
		return m.OldConnectorName(ctx)
	case sourcebudget.FieldSourceKey:
		return m.OldSourceKey(ctx)
	case sourcebudget.FieldWindowHour:
		return m.OldWindowHour(ctx)
	case sourcebudget.FieldRequestCount:
		return m.OldRequestCount(ctx)
	case sourcebudget.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SourceBudget field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceBudgetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourcebudget.FieldConnectorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectorName(v)
		return nil
	case sourcebudget.FieldSourceKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceKey(v)
		return nil
	case sourcebudget.FieldWindowHour:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowHour(v)
		return nil
	case sourcebudget.FieldRequestCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestCount(v)
		return nil
	case sourcebudget.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SourceBudget field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceBudgetMutation) AddedFields() []string {
	var fields []string
	if m.addrequest_count != nil {
		fields = append(fields, sourcebudget.FieldRequestCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceBudgetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sourcebudget.FieldRequestCount:
		return m.AddedRequestCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceBudgetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sourcebudget.FieldRequestCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestCount(v)
		return nil
	}
	return fmt.Errorf("unknown SourceBudget numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceBudgetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceBudgetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceBudgetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SourceBudget nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceBudgetMutation) ResetField(name string) error {
	switch name {
	case sourcebudget.FieldConnectorName:
		m.ResetConnectorName()
		return nil
	case sourcebudget.FieldSourceKey:
		m.ResetSourceKey()
		return nil
	case sourcebudget.FieldWindowHour:
		m.ResetWindowHour()
		return nil
	case sourcebudget.FieldRequestCount:
		m.ResetRequestCount()
		return nil
	case sourcebudget.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SourceBudget field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceBudgetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceBudgetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceBudgetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceBudgetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceBudgetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceBudgetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceBudgetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SourceBudget unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceBudgetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SourceBudget edge %s", name)
}

// SourceCredentialCursorMutation represents an operation that mutates the SourceCredentialCursor nodes in the graph.
type SourceCredentialCursorMutation struct {
	config
	op             Op
	typ            string
	id             *int
	connector_name *string
	source_key     *string
	next_index     *int
	addnext_index  *int
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*SourceCredentialCursor, error)
	predicates     []predicate.SourceCredentialCursor
}

var _ ent.Mutation = (*SourceCredentialCursorMutation)(nil)

// sourcecredentialcursorOption allows management of the mutation configuration using functional options.
type sourcecredentialcursorOption func(*SourceCredentialCursorMutation)

// newSourceCredentialCursorMutation creates new mutation for the SourceCredentialCursor entity.
func newSourceCredentialCursorMutation(c config, op Op, opts ...sourcecredentialcursorOption) *SourceCredentialCursorMutation {
	m := &SourceCredentialCursorMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceCredentialCursor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceCredentialCursorID sets the ID field of the mutation.
func withSourceCredentialCursorID(id int) sourcecredentialcursorOption {
	return func(m *SourceCredentialCursorMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceCredentialCursor
		)
		m.oldValue = func(ctx context.Context) (*SourceCredentialCursor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceCredentialCursor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceCredentialCursor sets the old SourceCredentialCursor of the mutation.
func withSourceCredentialCursor(node *SourceCredentialCursor) sourcecredentialcursorOption {
	return func(m *SourceCredentialCursorMutation) {
		m.oldValue = func(context.Context) (*SourceCredentialCursor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceCredentialCursorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceCredentialCursorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceCredentialCursorMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceCredentialCursorMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceCredentialCursor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConnectorName sets the "connector_name" field.
func (m *SourceCredentialCursorMutation) SetConnectorName(s string) {
	m.connector_name = &s
}

// ConnectorName returns the value of the "connector_name" field in the mutation.
func (m *SourceCredentialCursorMutation) ConnectorName() (r string, exists bool) {
	v := m.connector_name
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectorName returns the old "connector_name" field's value of the SourceCredentialCursor entity.
// If the SourceCredentialCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceCredentialCursorMutation) OldConnectorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectorName: %w", err)
	}
	return oldValue.ConnectorName, nil
}

// ResetConnectorName resets all changes to the "connector_name" field.
func (m *SourceCredentialCursorMutation) ResetConnectorName() {
	m.connector_name = nil
}

// SetSourceKey sets the "source_key" field.
func (m *SourceCredentialCursorMutation) SetSourceKey(s string) {
	m.source_key = &s
}

// SourceKey returns the value of the "source_key" field in the mutation.
func (m *SourceCredentialCursorMutation) SourceKey() (r string, exists bool) {
	v := m.source_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceKey returns the old "source_key" field's value of the SourceCredentialCursor entity.
// If the SourceCredentialCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceCredentialCursorMutation) OldSourceKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceKey: %w", err)
	}
	return oldValue.SourceKey, nil
}

// ResetSourceKey resets all changes to the "source_key" field.
func (m *SourceCredentialCursorMutation) ResetSourceKey() {
	m.source_key = nil
}

// SetNextIndex sets the "next_index" field.
func (m *SourceCredentialCursorMutation) SetNextIndex(i int) {
	m.next_index = &i
	m.addnext_index = nil
}

// NextIndex returns the value of the "next_index" field in the mutation.
func (m *SourceCredentialCursorMutation) NextIndex() (r int, exists bool) {
	v := m.next_index
	if v == nil {
		return
	}
	return *v, true
}

// OldNextIndex returns the old "next_index" field's value of the SourceCredentialCursor entity.
// If the SourceCredentialCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceCredentialCursorMutation) OldNextIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextIndex: %w", err)
	}
	return oldValue.NextIndex, nil
}

// AddNextIndex adds i to the "next_index" field.
func (m *SourceCredentialCursorMutation) AddNextIndex(i int) {
	if m.addnext_index != nil {
		*m.addnext_index += i
	} else {
		m.addnext_index = &i
	}
}

// AddedNextIndex returns the value that was added to the "next_index" field in this mutation.
func (m *SourceCredentialCursorMutation) AddedNextIndex() (r int, exists bool) {
	v := m.addnext_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetNextIndex resets all changes to the "next_index" field.
func (m *SourceCredentialCursorMutation) ResetNextIndex() {
	m.next_index = nil
	m.addnext_index = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SourceCredentialCursorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SourceCredentialCursorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SourceCredentialCursor entity.
// If the SourceCredentialCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceCredentialCursorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SourceCredentialCursorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SourceCredentialCursorMutation builder.
func (m *SourceCredentialCursorMutation) Where(ps ...predicate.SourceCredentialCursor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceCredentialCursorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceCredentialCursorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceCredentialCursor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceCredentialCursorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceCredentialCursorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceCredentialCursor).
func (m *SourceCredentialCursorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceCredentialCursorMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.connector_name != nil {
		fields = append(fields, sourcecredentialcursor.FieldConnectorName)
	}
	if m.source_key != nil {
		fields = append(fields, sourcecredentialcursor.FieldSourceKey)
	}
	if m.next_index != nil {
		fields = append(fields, sourcecredentialcursor.FieldNextIndex)
	}
	if m.updated_at != nil {
		fields = append(fields, sourcecredentialcursor.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceCredentialCursorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourcecredentialcursor.FieldConnectorName:
		return m.ConnectorName()
	case sourcecredentialcursor.FieldSourceKey:
		return m.SourceKey()
	case sourcecredentialcursor.FieldNextIndex:
		return m.NextIndex()
	case sourcecredentialcursor.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceCredentialCursorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourcecredentialcursor.FieldConnectorName:
		return m.OldConnectorName(ctx)
	case sourcecredentialcursor.FieldSourceKey:
		return m.OldSourceKey(ctx)
	case sourcecredentialcursor.FieldNextIndex:
		return m.OldNextIndex(ctx)
	case sourcecredentialcursor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SourceCredentialCursor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceCredentialCursorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourcecredentialcursor.FieldConnectorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectorName(v)
		return nil
	case sourcecredentialcursor.FieldSourceKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceKey(v)
		return nil
	case sourcecredentialcursor.FieldNextIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextIndex(v)
		return nil
	case sourcecredentialcursor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SourceCredentialCursor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceCredentialCursorMutation) AddedFields() []string {
	var fields []string
	if m.addnext_index != nil {
		fields = append(fields, sourcecredentialcursor.FieldNextIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceCredentialCursorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sourcecredentialcursor.FieldNextIndex:
		return m.AddedNextIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceCredentialCursorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sourcecredentialcursor.FieldNextIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNextIndex(v)
		return nil
	}
	return fmt.Errorf("unknown SourceCredentialCursor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceCredentialCursorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceCredentialCursorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceCredentialCursorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SourceCredentialCursor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceCredentialCursorMutation) ResetField(name string) error {
	switch name {
	case sourcecredentialcursor.FieldConnectorName:
		m.ResetConnectorName()
		return nil
	case sourcecredentialcursor.FieldSourceKey:
		m.ResetSourceKey()
		return nil
	case sourcecredentialcursor.FieldNextIndex:
		m.ResetNextIndex()
		return nil
	case sourcecredentialcursor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SourceCredentialCursor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceCredentialCursorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceCredentialCursorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceCredentialCursorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceCredentialCursorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceCredentialCursorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceCredentialCursorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceCredentialCursorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SourceCredentialCursor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceCredentialCursorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SourceCredentialCursor edge %s", name)
}

// SourceStateMutation represents an operation that mutates the SourceState nodes in the graph.
type SourceStateMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	connector_name          *string
	source_key              *string
	connector_type          *string
	priority                *int
	addpriority             *int
	enabled                 *bool
	health_score            *float64
	addhealth_score         *float64
	consecutive_failures    *int
	addconsecutive_failures *int
	total_success           *int
	addtotal_success        *int
	total_failures          *int
	addtotal_failures       *int
	last_latency_ms         *int
	addlast_latency_ms      *int
	last_error              *string
	last_attempt_at         *time.Time
	last_success_at         *time.Time
	last_failure_at         *time.Time
	checkpoint_cursor       *string
	checkpoint_publish_time *time.Time
	is_active               *bool
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*SourceState, error)
	predicates              []predicate.SourceState
}

var _ ent.Mutation = (*SourceStateMutation)(nil)

// sourcestateOption allows management of the mutation configuration using functional options.
type sourcestateOption func(*SourceStateMutation)

// newSourceStateMutation creates new mutation for the SourceState entity.
func newSourceStateMutation(c config, op Op, opts ...sourcestateOption) *SourceStateMutation {
	m := &SourceStateMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceStateID sets the ID field of the mutation.
func withSourceStateID(id int) sourcestateOption {
	return func(m *SourceStateMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceState
		)
		m.oldValue = func(ctx context.Context) (*SourceState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceState sets the old SourceState of the mutation.
func withSourceState(node *SourceState) sourcestateOption {
	return func(m *SourceStateMutation) {
		m.oldValue = func(context.Context) (*SourceState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConnectorName sets the "connector_name" field.
func (m *SourceStateMutation) SetConnectorName(s string) {
	m.connector_name = &s
}

// ConnectorName returns the value of the "connector_name" field in the mutation.
func (m *SourceStateMutation) ConnectorName() (r string, exists bool) {
	v := m.connector_name
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectorName returns the old "connector_name" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldConnectorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectorName: %w", err)
	}
	return oldValue.ConnectorName, nil
}

// ResetConnectorName resets all changes to the "connector_name" field.
func (m *SourceStateMutation) ResetConnectorName() {
	m.connector_name = nil
}

// SetSourceKey sets the "source_key" field.
func (m *SourceStateMutation) SetSourceKey(s string) {
	m.source_key = &s
}

// SourceKey returns the value of the "source_key" field in the mutation.
func (m *SourceStateMutation) SourceKey() (r string, exists bool) {
	v := m.source_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceKey returns the old "source_key" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldSourceKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceKey: %w", err)
	}
	return oldValue.SourceKey, nil
}

// ResetSourceKey resets all changes to the "source_key" field.
func (m *SourceStateMutation) ResetSourceKey() {
	m.source_key = nil
}

// SetConnectorType sets the "connector_type" field.
func (m *SourceStateMutation) SetConnectorType(s string) {
	m.connector_type = &s
}

// ConnectorType returns the value of the "connector_type" field in the mutation.
func (m *SourceStateMutation) ConnectorType() (r string, exists bool) {
	v := m.connector_type
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectorType returns the old "connector_type" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldConnectorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectorType: %w", err)
	}
	return oldValue.ConnectorType, nil
}

// ResetConnectorType resets all changes to the "connector_type" field.
func (m *SourceStateMutation) ResetConnectorType() {
	m.connector_type = nil
}

// SetPriority sets the "priority" field.
func (m *SourceStateMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *SourceStateMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *SourceStateMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *SourceStateMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *SourceStateMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetEnabled sets the "enabled" field.
func (m *SourceStateMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *SourceStateMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *SourceStateMutation) ResetEnabled() {
	m.enabled = nil
}

// SetHealthScore sets the "health_score" field.
func (m *SourceStateMutation) SetHealthScore(f float64) {
	m.health_score = &f
	m.addhealth_score = nil
}

// HealthScore returns the value of the "health_score" field in the mutation.
func (m *SourceStateMutation) HealthScore() (r float64, exists bool) {
	v := m.health_score
	if v == nil {
		return
	}
	return *v, true
}

// OldHealthScore returns the old "health_score" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldHealthScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealthScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealthScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealthScore: %w", err)
	}
	return oldValue.HealthScore, nil
}

// AddHealthScore adds f to the "health_score" field.
func (m *SourceStateMutation) AddHealthScore(f float64) {
	if m.addhealth_score != nil {
		*m.addhealth_score += f
	} else {
		m.addhealth_score = &f
	}
}

// AddedHealthScore returns the value that was added to the "health_score" field in this mutation.
func (m *SourceStateMutation) AddedHealthScore() (r float64, exists bool) {
	v := m.addhealth_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetHealthScore resets all changes to the "health_score" field.
func (m *SourceStateMutation) ResetHealthScore() {
	m.health_score = nil
	m.addhealth_score = nil
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (m *SourceStateMutation) SetConsecutiveFailures(i int) {
	m.consecutive_failures = &i
	m.addconsecutive_failures = nil
}

// ConsecutiveFailures returns the value of the "consecutive_failures" field in the mutation.
func (m *SourceStateMutation) ConsecutiveFailures() (r int, exists bool) {
	v := m.consecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveFailures returns the old "consecutive_failures" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldConsecutiveFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveFailures: %w", err)
	}
	return oldValue.ConsecutiveFailures, nil
}

// AddConsecutiveFailures adds i to the "consecutive_failures" field.
func (m *SourceStateMutation) AddConsecutiveFailures(i int) {
	if m.addconsecutive_failures != nil {
		*m.addconsecutive_failures += i
	} else {
		m.addconsecutive_failures = &i
	}
}

// AddedConsecutiveFailures returns the value that was added to the "consecutive_failures" field in this mutation.
func (m *SourceStateMutation) AddedConsecutiveFailures() (r int, exists bool) {
	v := m.addconsecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveFailures resets all changes to the "consecutive_failures" field.
func (m *SourceStateMutation) ResetConsecutiveFailures() {
	m.consecutive_failures = nil
	m.addconsecutive_failures = nil
}

// SetTotalSuccess sets the "total_success" field.
func (m *SourceStateMutation) SetTotalSuccess(i int) {
	m.total_success = &i
	m.addtotal_success = nil
}

// TotalSuccess returns the value of the "total_success" field in the mutation.
func (m *SourceStateMutation) TotalSuccess() (r int, exists bool) {
	v := m.total_success
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSuccess returns the old "total_success" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldTotalSuccess(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSuccess: %w", err)
	}
	return oldValue.TotalSuccess, nil
}

// AddTotalSuccess adds i to the "total_success" field.
func (m *SourceStateMutation) AddTotalSuccess(i int) {
	if m.addtotal_success != nil {
		*m.addtotal_success += i
	} else {
		m.addtotal_success = &i
	}
}

// AddedTotalSuccess returns the value that was added to the "total_success" field in this mutation.
func (m *SourceStateMutation) AddedTotalSuccess() (r int, exists bool) {
	v := m.addtotal_success
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalSuccess resets all changes to the "total_success" field.
func (m *SourceStateMutation) ResetTotalSuccess() {
	m.total_success = nil
	m.addtotal_success = nil
}

// SetTotalFailures sets the "total_failures" field.
func (m *SourceStateMutation) SetTotalFailures(i int) {
	m.total_failures = &i
	m.addtotal_failures = nil
}

// TotalFailures returns the value of the "total_failures" field in the mutation.
func (m *SourceStateMutation) TotalFailures() (r int, exists bool) {
	v := m.total_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalFailures returns the old "total_failures" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldTotalFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalFailures: %w", err)
	}
	return oldValue.TotalFailures, nil
}

// AddTotalFailures adds i to the "total_failures" field.
func (m *SourceStateMutation) AddTotalFailures(i int) {
	if m.addtotal_failures != nil {
		*m.addtotal_failures += i
	} else {
		m.addtotal_failures = &i
	}
}

// AddedTotalFailures returns the value that was added to the "total_failures" field in this mutation.
func (m *SourceStateMutation) AddedTotalFailures() (r int, exists bool) {
	v := m.addtotal_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalFailures resets all changes to the "total_failures" field.
func (m *SourceStateMutation) ResetTotalFailures() {
	m.total_failures = nil
	m.addtotal_failures = nil
}

// SetLastLatencyMs sets the "last_latency_ms" field.
func (m *SourceStateMutation) SetLastLatencyMs(i int) {
	m.last_latency_ms = &i
	m.addlast_latency_ms = nil
}

// LastLatencyMs returns the value of the "last_latency_ms" field in the mutation.
func (m *SourceStateMutation) LastLatencyMs() (r int, exists bool) {
	v := m.last_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLatencyMs returns the old "last_latency_ms" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldLastLatencyMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLatencyMs: %w", err)
	}
	return oldValue.LastLatencyMs, nil
}

// AddLastLatencyMs adds i to the "last_latency_ms" field.
func (m *SourceStateMutation) AddLastLatencyMs(i int) {
	if m.addlast_latency_ms != nil {
		*m.addlast_latency_ms += i
	} else {
		m.addlast_latency_ms = &i
	}
}

// AddedLastLatencyMs returns the value that was added to the "last_latency_ms" field in this mutation.
func (m *SourceStateMutation) AddedLastLatencyMs() (r int, exists bool) {
	v := m.addlast_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastLatencyMs clears the value of the "last_latency_ms" field.
func (m *SourceStateMutation) ClearLastLatencyMs() {
	m.last_latency_ms = nil
	m.addlast_latency_ms = nil
	m.clearedFields[sourcestate.FieldLastLatencyMs] = struct{}{}
}

// LastLatencyMsCleared returns if the "last_latency_ms" field was cleared in this mutation.
func (m *SourceStateMutation) LastLatencyMsCleared() bool {
	_, ok := m.clearedFields[sourcestate.FieldLastLatencyMs]
	return ok
}

// ResetLastLatencyMs resets all changes to the "last_latency_ms" field.
func (m *SourceStateMutation) ResetLastLatencyMs() {
	m.last_latency_ms = nil
	m.addlast_latency_ms = nil
	delete(m.clearedFields, sourcestate.FieldLastLatencyMs)
}

// SetLastError sets the "last_error" field.
func (m *SourceStateMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *SourceStateMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *SourceStateMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[sourcestate.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *SourceStateMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[sourcestate.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *SourceStateMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, sourcestate.FieldLastError)
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (m *SourceStateMutation) SetLastAttemptAt(t time.Time) {
	m.last_attempt_at = &t
}

// LastAttemptAt returns the value of the "last_attempt_at" field in the mutation.
func (m *SourceStateMutation) LastAttemptAt() (r time.Time, exists bool) {
	v := m.last_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttemptAt returns the old "last_attempt_at" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldLastAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttemptAt: %w", err)
	}
	return oldValue.LastAttemptAt, nil
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (m *SourceStateMutation) ClearLastAttemptAt() {
	m.last_attempt_at = nil
	m.clearedFields[sourcestate.FieldLastAttemptAt] = struct{}{}
}

// LastAttemptAtCleared returns if the "last_attempt_at" field was cleared in this mutation.
func (m *SourceStateMutation) LastAttemptAtCleared() bool {
	_, ok := m.clearedFields[sourcestate.FieldLastAttemptAt]
	return ok
}

// ResetLastAttemptAt resets all changes to the "last_attempt_at" field.
func (m *SourceStateMutation) ResetLastAttemptAt() {
	m.last_attempt_at = nil
	delete(m.clearedFields, sourcestate.FieldLastAttemptAt)
}

// SetLastSuccessAt sets the "last_success_at" field.
func (m *SourceStateMutation) SetLastSuccessAt(t time.Time) {
	m.last_success_at = &t
}

// LastSuccessAt returns the value of the "last_success_at" field in the mutation.
func (m *SourceStateMutation) LastSuccessAt() (r time.Time, exists bool) {
	v := m.last_success_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSuccessAt returns the old "last_success_at" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldLastSuccessAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSuccessAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSuccessAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSuccessAt: %w", err)
	}
	return oldValue.LastSuccessAt, nil
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (m *SourceStateMutation) ClearLastSuccessAt() {
	m.last_success_at = nil
	m.clearedFields[sourcestate.FieldLastSuccessAt] = struct{}{}
}

// LastSuccessAtCleared returns if the "last_success_at" field was cleared in this mutation.
func (m *SourceStateMutation) LastSuccessAtCleared() bool {
	_, ok := m.clearedFields[sourcestate.FieldLastSuccessAt]
	return ok
}

// ResetLastSuccessAt resets all changes to the "last_success_at" field.
func (m *SourceStateMutation) ResetLastSuccessAt() {
	m.last_success_at = nil
	delete(m.clearedFields, sourcestate.FieldLastSuccessAt)
}

// SetLastFailureAt sets the "last_failure_at" field.
func (m *SourceStateMutation) SetLastFailureAt(t time.Time) {
	m.last_failure_at = &t
}

// LastFailureAt returns the value of the "last_failure_at" field in the mutation.
func (m *SourceStateMutation) LastFailureAt() (r time.Time, exists bool) {
	v := m.last_failure_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastFailureAt returns the old "last_failure_at" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldLastFailureAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastFailureAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastFailureAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastFailureAt: %w", err)
	}
	return oldValue.LastFailureAt, nil
}

// ClearLastFailureAt clears the value of the "last_failure_at" field.
func (m *SourceStateMutation) ClearLastFailureAt() {
	m.last_failure_at = nil
	m.clearedFields[sourcestate.FieldLastFailureAt] = struct{}{}
}

// LastFailureAtCleared returns if the "last_failure_at" field was cleared in this mutation.
func (m *SourceStateMutation) LastFailureAtCleared() bool {
	_, ok := m.clearedFields[sourcestate.FieldLastFailureAt]
	return ok
}

// ResetLastFailureAt resets all changes to the "last_failure_at" field.
func (m *SourceStateMutation) ResetLastFailureAt() {
	m.last_failure_at = nil
	delete(m.clearedFields, sourcestate.FieldLastFailureAt)
}

// SetCheckpointCursor sets the "checkpoint_cursor" field.
func (m *SourceStateMutation) SetCheckpointCursor(s string) {
	m.checkpoint_cursor = &s
}

// CheckpointCursor returns the value of the "checkpoint_cursor" field in the mutation.
func (m *SourceStateMutation) CheckpointCursor() (r string, exists bool) {
	v := m.checkpoint_cursor
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointCursor returns the old "checkpoint_cursor" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldCheckpointCursor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointCursor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointCursor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointCursor: %w", err)
	}
	return oldValue.CheckpointCursor, nil
}

// ClearCheckpointCursor clears the value of the "checkpoint_cursor" field.
func (m *SourceStateMutation) ClearCheckpointCursor() {
	m.checkpoint_cursor = nil
	m.clearedFields[sourcestate.FieldCheckpointCursor] = struct{}{}
}

// CheckpointCursorCleared returns if the "checkpoint_cursor" field was cleared in this mutation.
func (m *SourceStateMutation) CheckpointCursorCleared() bool {
	_, ok := m.clearedFields[sourcestate.FieldCheckpointCursor]
	return ok
}

// ResetCheckpointCursor resets all changes to the "checkpoint_cursor" field.
func (m *SourceStateMutation) ResetCheckpointCursor() {
	m.checkpoint_cursor = nil
	delete(m.clearedFields, sourcestate.FieldCheckpointCursor)
}

// SetCheckpointPublishTime sets the "checkpoint_publish_time" field.
func (m *SourceStateMutation) SetCheckpointPublishTime(t time.Time) {
	m.checkpoint_publish_time = &t
}

// CheckpointPublishTime returns the value of the "checkpoint_publish_time" field in the mutation.
func (m *SourceStateMutation) CheckpointPublishTime() (r time.Time, exists bool) {
	v := m.checkpoint_publish_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointPublishTime returns the old "checkpoint_publish_time" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldCheckpointPublishTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointPublishTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointPublishTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointPublishTime: %w", err)
	}
	return oldValue.CheckpointPublishTime, nil
}

// ClearCheckpointPublishTime clears the value of the "checkpoint_publish_time" field.
func (m *SourceStateMutation) ClearCheckpointPublishTime() {
	m.checkpoint_publish_time = nil
	m.clearedFields[sourcestate.FieldCheckpointPublishTime] = struct{}{}
}

// CheckpointPublishTimeCleared returns if the "checkpoint_publish_time" field was cleared in this mutation.
func (m *SourceStateMutation) CheckpointPublishTimeCleared() bool {
	_, ok := m.clearedFields[sourcestate.FieldCheckpointPublishTime]
	return ok
}

// ResetCheckpointPublishTime resets all changes to the "checkpoint_publish_time" field.
func (m *SourceStateMutation) ResetCheckpointPublishTime() {
	m.checkpoint_publish_time = nil
	delete(m.clearedFields, sourcestate.FieldCheckpointPublishTime)
}

// SetIsActive sets the "is_active" field.
func (m *SourceStateMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *SourceStateMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *SourceStateMutation) ResetIsActive() {
	m.is_active = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SourceStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SourceStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SourceState entity.
// If the SourceState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SourceStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SourceStateMutation builder.
func (m *SourceStateMutation) Where(ps ...predicate.SourceState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceState).
func (m *SourceStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceStateMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.connector_name != nil {
		fields = append(fields, sourcestate.FieldConnectorName)
	}
	if m.source_key != nil {
		fields = append(fields, sourcestate.FieldSourceKey)
	}
	if m.connector_type != nil {
		fields = append(fields, sourcestate.FieldConnectorType)
	}
	if m.priority != nil {
		fields = append(fields, sourcestate.FieldPriority)
	}
	if m.enabled != nil {
		fields = append(fields, sourcestate.FieldEnabled)
	}
	if m.health_score != nil {
		fields = append(fields, sourcestate.FieldHealthScore)
	}
	if m.consecutive_failures != nil {
		fields = append(fields, sourcestate.FieldConsecutiveFailures)
	}
	if m.total_success != nil {
		fields = append(fields, sourcestate.FieldTotalSuccess)
	}
	if m.total_failures != nil {
		fields = append(fields, sourcestate.FieldTotalFailures)
	}
	if m.last_latency_ms != nil {
		fields = append(fields, sourcestate.FieldLastLatencyMs)
	}
	if m.last_error != nil {
		fields = append(fields, sourcestate.FieldLastError)
	}
	if m.last_attempt_at != nil {
		fields = append(fields, sourcestate.FieldLastAttemptAt)
	}
	if m.last_success_at != nil {
		fields = append(fields, sourcestate.FieldLastSuccessAt)
	}
	if m.last_failure_at != nil {
		fields = append(fields, sourcestate.FieldLastFailureAt)
	}
	if m.checkpoint_cursor != nil {
		fields = append(fields, sourcestate.FieldCheckpointCursor)
	}
	if m.checkpoint_publish_time != nil {
		fields = append(fields, sourcestate.FieldCheckpointPublishTime)
	}
	if m.is_active != nil {
		fields = append(fields, sourcestate.FieldIsActive)
	}
	if m.updated_at != nil {
		fields = append(fields, sourcestate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourcestate.FieldConnectorName:
		return m.ConnectorName()
	case sourcestate.FieldSourceKey:
		return m.SourceKey()
	case sourcestate.FieldConnectorType:
		return m.ConnectorType()
	case sourcestate.FieldPriority:
		return m.Priority()
	case sourcestate.FieldEnabled:
		return m.Enabled()
	case sourcestate.FieldHealthScore:
		return m.HealthScore()
	case sourcestate.FieldConsecutiveFailures:
		return m.ConsecutiveFailures()
	case sourcestate.FieldTotalSuccess:
		return m.TotalSuccess()
	case sourcestate.FieldTotalFailures:
		return m.TotalFailures()
	case sourcestate.FieldLastLatencyMs:
		return m.LastLatencyMs()
	case sourcestate.FieldLastError:
		return m.LastError()
	case sourcestate.FieldLastAttemptAt:
		return m.LastAttemptAt()
	case sourcestate.FieldLastSuccessAt:
		return m.LastSuccessAt()
	case sourcestate.FieldLastFailureAt:
		return m.LastFailureAt()
	case sourcestate.FieldCheckpointCursor:
		return m.CheckpointCursor()
	case sourcestate.FieldCheckpointPublishTime:
		return m.CheckpointPublishTime()
	case sourcestate.FieldIsActive:
		return m.IsActive()
	case sourcestate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourcestate.FieldConnectorName:
		return m.OldConnectorName(ctx)
	case sourcestate.FieldSourceKey:
		return m.OldSourceKey(ctx)
	case sourcestate.FieldConnectorType:
		return m.OldConnectorType(ctx)
	case sourcestate.FieldPriority:
		return m.OldPriority(ctx)
	case sourcestate.FieldEnabled:
		return m.OldEnabled(ctx)
	case sourcestate.FieldHealthScore:
		return m.OldHealthScore(ctx)
	case sourcestate.FieldConsecutiveFailures:
		return m.OldConsecutiveFailures(ctx)
	case sourcestate.FieldTotalSuccess:
		return m.OldTotalSuccess(ctx)
	case sourcestate.FieldTotalFailures:
		return m.OldTotalFailures(ctx)
	case sourcestate.FieldLastLatencyMs:
		return m.OldLastLatencyMs(ctx)
	case sourcestate.FieldLastError:
		return m.OldLastError(ctx)
	case sourcestate.FieldLastAttemptAt:
		return m.OldLastAttemptAt(ctx)
	case sourcestate.FieldLastSuccessAt:
		return m.OldLastSuccessAt(ctx)
	case sourcestate.FieldLastFailureAt:
		return m.OldLastFailureAt(ctx)
	case sourcestate.FieldCheckpointCursor:
		return m.OldCheckpointCursor(ctx)
	case sourcestate.FieldCheckpointPublishTime:
		return m.OldCheckpointPublishTime(ctx)
	case sourcestate.FieldIsActive:
		return m.OldIsActive(ctx)
	case sourcestate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SourceState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourcestate.FieldConnectorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectorName(v)
		return nil
	case sourcestate.FieldSourceKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceKey(v)
		return nil
	case sourcestate.FieldConnectorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectorType(v)
		return nil
	case sourcestate.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case sourcestate.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case sourcestate.FieldHealthScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealthScore(v)
		return nil
	case sourcestate.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveFailures(v)
		return nil
	case sourcestate.FieldTotalSuccess:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSuccess(v)
		return nil
	case sourcestate.FieldTotalFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalFailures(v)
		return nil
	case sourcestate.FieldLastLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLatencyMs(v)
		return nil
	case sourcestate.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case sourcestate.FieldLastAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttemptAt(v)
		return nil
	case sourcestate.FieldLastSuccessAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSuccessAt(v)
		return nil
	case sourcestate.FieldLastFailureAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastFailureAt(v)
		return nil
	case sourcestate.FieldCheckpointCursor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointCursor(v)
		return nil
	case sourcestate.FieldCheckpointPublishTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointPublishTime(v)
		return nil
	case sourcestate.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case sourcestate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SourceState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceStateMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, sourcestate.FieldPriority)
	}
	if m.addhealth_score != nil {
		fields = append(fields, sourcestate.FieldHealthScore)
	}
	if m.addconsecutive_failures != nil {
		fields = append(fields, sourcestate.FieldConsecutiveFailures)
	}
	if m.addtotal_success != nil {
		fields = append(fields, sourcestate.FieldTotalSuccess)
	}
	if m.addtotal_failures != nil {
		fields = append(fields, sourcestate.FieldTotalFailures)
	}
	if m.addlast_latency_ms != nil {
		fields = append(fields, sourcestate.FieldLastLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sourcestate.FieldPriority:
		return m.AddedPriority()
	case sourcestate.FieldHealthScore:
		return m.AddedHealthScore()
	case sourcestate.FieldConsecutiveFailures:
		return m.AddedConsecutiveFailures()
	case sourcestate.FieldTotalSuccess:
		return m.AddedTotalSuccess()
	case sourcestate.FieldTotalFailures:
		return m.AddedTotalFailures()
	case sourcestate.FieldLastLatencyMs:
		return m.AddedLastLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sourcestate.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case sourcestate.FieldHealthScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHealthScore(v)
		return nil
	case sourcestate.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveFailures(v)
		return nil
	case sourcestate.FieldTotalSuccess:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSuccess(v)
		return nil
	case sourcestate.FieldTotalFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalFailures(v)
		return nil
	case sourcestate.FieldLastLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown SourceState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sourcestate.FieldLastLatencyMs) {
		fields = append(fields, sourcestate.FieldLastLatencyMs)
	}
	if m.FieldCleared(sourcestate.FieldLastError) {
		fields = append(fields, sourcestate.FieldLastError)
	}
	if m.FieldCleared(sourcestate.FieldLastAttemptAt) {
		fields = append(fields, sourcestate.FieldLastAttemptAt)
	}
	if m.FieldCleared(sourcestate.FieldLastSuccessAt) {
		fields = append(fields, sourcestate.FieldLastSuccessAt)
	}
	if m.FieldCleared(sourcestate.FieldLastFailureAt) {
		fields = append(fields, sourcestate.FieldLastFailureAt)
	}
	if m.FieldCleared(sourcestate.FieldCheckpointCursor) {
		fields = append(fields, sourcestate.FieldCheckpointCursor)
	}
	if m.FieldCleared(sourcestate.FieldCheckpointPublishTime) {
		fields = append(fields, sourcestate.FieldCheckpointPublishTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceStateMutation) ClearField(name string) error {
	switch name {
	case sourcestate.FieldLastLatencyMs:
		m.ClearLastLatencyMs()
		return nil
	case sourcestate.FieldLastError:
		m.ClearLastError()
		return nil
	case sourcestate.FieldLastAttemptAt:
		m.ClearLastAttemptAt()
		return nil
	case sourcestate.FieldLastSuccessAt:
		m.ClearLastSuccessAt()
		return nil
	case sourcestate.FieldLastFailureAt:
		m.ClearLastFailureAt()
		return nil
	case sourcestate.FieldCheckpointCursor:
		m.ClearCheckpointCursor()
		return nil
	case sourcestate.FieldCheckpointPublishTime:
		m.ClearCheckpointPublishTime()
		return nil
	}
	return fmt.Errorf("unknown SourceState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceStateMutation) ResetField(name string) error {
	switch name {
	case sourcestate.FieldConnectorName:
		m.ResetConnectorName()
		return nil
	case sourcestate.FieldSourceKey:
		m.ResetSourceKey()
		return nil
	case sourcestate.FieldConnectorType:
		m.ResetConnectorType()
		return nil
	case sourcestate.FieldPriority:
		m.ResetPriority()
		return nil
	case sourcestate.FieldEnabled:
		m.ResetEnabled()
		return nil
	case sourcestate.FieldHealthScore:
		m.ResetHealthScore()
		return nil
	case sourcestate.FieldConsecutiveFailures:
		m.ResetConsecutiveFailures()
		return nil
	case sourcestate.FieldTotalSuccess:
		m.ResetTotalSuccess()
		return nil
	case sourcestate.FieldTotalFailures:
		m.ResetTotalFailures()
		return nil
	case sourcestate.FieldLastLatencyMs:
		m.ResetLastLatencyMs()
		return nil
	case sourcestate.FieldLastError:
		m.ResetLastError()
		return nil
	case sourcestate.FieldLastAttemptAt:
		m.ResetLastAttemptAt()
		return nil
	case sourcestate.FieldLastSuccessAt:
		m.ResetLastSuccessAt()
		return nil
	case sourcestate.FieldLastFailureAt:
		m.ResetLastFailureAt()
		return nil
	case sourcestate.FieldCheckpointCursor:
		m.ResetCheckpointCursor()
		return nil
	case sourcestate.FieldCheckpointPublishTime:
		m.ResetCheckpointPublishTime()
		return nil
	case sourcestate.FieldIsActive:
		m.ResetIsActive()
		return nil
	case sourcestate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SourceState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SourceState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SourceState edge %s", name)
}
