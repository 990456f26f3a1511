// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/quantmuse/eventcore/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
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
	"github.com/quantmuse/eventcore/ent/slaalertstate"
	"github.com/quantmuse/eventcore/ent/slahistory"
	"github.com/quantmuse/eventcore/ent/sourcebudget"
	"github.com/quantmuse/eventcore/ent/sourcecredentialcursor"
	"github.com/quantmuse/eventcore/ent/sourcestate"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// Connector is the client for interacting with the Connector builders.
	Connector *ConnectorClient
	// ConnectorCheckpoint is the client for interacting with the ConnectorCheckpoint builders.
	ConnectorCheckpoint *ConnectorCheckpointClient
	// ConnectorFailure is the client for interacting with the ConnectorFailure builders.
	ConnectorFailure *ConnectorFailureClient
	// ConnectorRun is the client for interacting with the ConnectorRun builders.
	ConnectorRun *ConnectorRunClient
	// EventRecord is the client for interacting with the EventRecord builders.
	EventRecord *EventRecordClient
	// EventSource is the client for interacting with the EventSource builders.
	EventSource *EventSourceClient
	// NLPConsensus is the client for interacting with the NLPConsensus builders.
	NLPConsensus *NLPConsensusClient
	// NLPDriftSnapshot is the client for interacting with the NLPDriftSnapshot builders.
	NLPDriftSnapshot *NLPDriftSnapshotClient
	// NLPFeedback is the client for interacting with the NLPFeedback builders.
	NLPFeedback *NLPFeedbackClient
	// NLPRuleset is the client for interacting with the NLPRuleset builders.
	NLPRuleset *NLPRulesetClient
	// SLAAlertState is the client for interacting with the SLAAlertState builders.
	SLAAlertState *SLAAlertStateClient
	// SLAHistory is the client for interacting with the SLAHistory builders.
	SLAHistory *SLAHistoryClient
	// SourceBudget is the client for interacting with the SourceBudget builders.
	SourceBudget *SourceBudgetClient
	// SourceCredentialCursor is the client for interacting with the SourceCredentialCursor builders.
	SourceCredentialCursor *SourceCredentialCursorClient
	// SourceState is the client for interacting with the SourceState builders.
	SourceState *SourceStateClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditLog = NewAuditLogClient(c.config)
	c.Connector = NewConnectorClient(c.config)
	c.ConnectorCheckpoint = NewConnectorCheckpointClient(c.config)
	c.ConnectorFailure = NewConnectorFailureClient(c.config)
	c.ConnectorRun = NewConnectorRunClient(c.config)
	c.EventRecord = NewEventRecordClient(c.config)
	c.EventSource = NewEventSourceClient(c.config)
	c.NLPConsensus = NewNLPConsensusClient(c.config)
	c.NLPDriftSnapshot = NewNLPDriftSnapshotClient(c.config)
	c.NLPFeedback = NewNLPFeedbackClient(c.config)
	c.NLPRuleset = NewNLPRulesetClient(c.config)
	c.SLAAlertState = NewSLAAlertStateClient(c.config)
	c.SLAHistory = NewSLAHistoryClient(c.config)
	c.SourceBudget = NewSourceBudgetClient(c.config)
	c.SourceCredentialCursor = NewSourceCredentialCursorClient(c.config)
	c.SourceState = NewSourceStateClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		AuditLog:               NewAuditLogClient(cfg),
		Connector:              NewConnectorClient(cfg),
		ConnectorCheckpoint:    NewConnectorCheckpointClient(cfg),
		ConnectorFailure:       NewConnectorFailureClient(cfg),
		ConnectorRun:           NewConnectorRunClient(cfg),
		EventRecord:            NewEventRecordClient(cfg),
		EventSource:            NewEventSourceClient(cfg),
		NLPConsensus:           NewNLPConsensusClient(cfg),
		NLPDriftSnapshot:       NewNLPDriftSnapshotClient(cfg),
		NLPFeedback:            NewNLPFeedbackClient(cfg),
		NLPRuleset:             NewNLPRulesetClient(cfg),
		SLAAlertState:          NewSLAAlertStateClient(cfg),
		SLAHistory:             NewSLAHistoryClient(cfg),
		SourceBudget:           NewSourceBudgetClient(cfg),
		SourceCredentialCursor: NewSourceCredentialCursorClient(cfg),
		SourceState:            NewSourceStateClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		AuditLog:               NewAuditLogClient(cfg),
		Connector:              NewConnectorClient(cfg),
		ConnectorCheckpoint:    NewConnectorCheckpointClient(cfg),
		ConnectorFailure:       NewConnectorFailureClient(cfg),
		ConnectorRun:           NewConnectorRunClient(cfg),
		EventRecord:            NewEventRecordClient(cfg),
		EventSource:            NewEventSourceClient(cfg),
		NLPConsensus:           NewNLPConsensusClient(cfg),
		NLPDriftSnapshot:       NewNLPDriftSnapshotClient(cfg),
		NLPFeedback:            NewNLPFeedbackClient(cfg),
		NLPRuleset:             NewNLPRulesetClient(cfg),
		SLAAlertState:          NewSLAAlertStateClient(cfg),
		SLAHistory:             NewSLAHistoryClient(cfg),
		SourceBudget:           NewSourceBudgetClient(cfg),
		SourceCredentialCursor: NewSourceCredentialCursorClient(cfg),
		SourceState:            NewSourceStateClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditLog.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AuditLog, c.Connector, c.ConnectorCheckpoint, c.ConnectorFailure,
		c.ConnectorRun, c.EventRecord, c.EventSource, c.NLPConsensus,
		c.NLPDriftSnapshot, c.NLPFeedback, c.NLPRuleset, c.SLAAlertState, c.SLAHistory,
		c.SourceBudget, c.SourceCredentialCursor, c.SourceState,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditLog, c.Connector, c.ConnectorCheckpoint, c.ConnectorFailure,
		c.ConnectorRun, c.EventRecord, c.EventSource, c.NLPConsensus,
		c.NLPDriftSnapshot, c.NLPFeedback, c.NLPRuleset, c.SLAAlertState, c.SLAHistory,
		c.SourceBudget, c.SourceCredentialCursor, c.SourceState,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *ConnectorMutation:
		return c.Connector.mutate(ctx, m)
	case *ConnectorCheckpointMutation:
		return c.ConnectorCheckpoint.mutate(ctx, m)
	case *ConnectorFailureMutation:
		return c.ConnectorFailure.mutate(ctx, m)
	case *ConnectorRunMutation:
		return c.ConnectorRun.mutate(ctx, m)
	case *EventRecordMutation:
		return c.EventRecord.mutate(ctx, m)
	case *EventSourceMutation:
		return c.EventSource.mutate(ctx, m)
	case *NLPConsensusMutation:
		return c.NLPConsensus.mutate(ctx, m)
	case *NLPDriftSnapshotMutation:
		return c.NLPDriftSnapshot.mutate(ctx, m)
	case *NLPFeedbackMutation:
		return c.NLPFeedback.mutate(ctx, m)
	case *NLPRulesetMutation:
		return c.NLPRuleset.mutate(ctx, m)
	case *SLAAlertStateMutation:
		return c.SLAAlertState.mutate(ctx, m)
	case *SLAHistoryMutation:
		return c.SLAHistory.mutate(ctx, m)
	case *SourceBudgetMutation:
		return c.SourceBudget.mutate(ctx, m)
	case *SourceCredentialCursorMutation:
		return c.SourceCredentialCursor.mutate(ctx, m)
	case *SourceStateMutation:
		return c.SourceState.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id int) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id int) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id int) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id int) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// ConnectorClient is a client for the Connector schema.
type ConnectorClient struct {
	config
}

// NewConnectorClient returns a client for the Connector from the given config.
func NewConnectorClient(c config) *ConnectorClient {
	return &ConnectorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `connector.Hooks(f(g(h())))`.
func (c *ConnectorClient) Use(hooks ...Hook) {
	c.hooks.Connector = append(c.hooks.Connector, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `connector.Intercept(f(g(h())))`.
func (c *ConnectorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Connector = append(c.inters.Connector, interceptors...)
}

// Create returns a builder for creating a Connector entity.
func (c *ConnectorClient) Create() *ConnectorCreate {
	mutation := newConnectorMutation(c.config, OpCreate)
	return &ConnectorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Connector entities.
func (c *ConnectorClient) CreateBulk(builders ...*ConnectorCreate) *ConnectorCreateBulk {
	return &ConnectorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConnectorClient) MapCreateBulk(slice any, setFunc func(*ConnectorCreate, int)) *ConnectorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConnectorCreateBulk{err: fmt.Errorf("calling to ConnectorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConnectorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConnectorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Connector.
func (c *ConnectorClient) Update() *ConnectorUpdate {
	mutation := newConnectorMutation(c.config, OpUpdate)
	return &ConnectorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConnectorClient) UpdateOne(_m *Connector) *ConnectorUpdateOne {
	mutation := newConnectorMutation(c.config, OpUpdateOne, withConnector(_m))
	return &ConnectorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConnectorClient) UpdateOneID(id int) *ConnectorUpdateOne {
	mutation := newConnectorMutation(c.config, OpUpdateOne, withConnectorID(id))
	return &ConnectorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Connector.
func (c *ConnectorClient) Delete() *ConnectorDelete {
	mutation := newConnectorMutation(c.config, OpDelete)
	return &ConnectorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConnectorClient) DeleteOne(_m *Connector) *ConnectorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConnectorClient) DeleteOneID(id int) *ConnectorDeleteOne {
	builder := c.Delete().Where(connector.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConnectorDeleteOne{builder}
}

// Query returns a query builder for Connector.
func (c *ConnectorClient) Query() *ConnectorQuery {
	return &ConnectorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConnector},
		inters: c.Interceptors(),
	}
}

// Get returns a Connector entity by its id.
func (c *ConnectorClient) Get(ctx context.Context, id int) (*Connector, error) {
	return c.Query().Where(connector.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConnectorClient) GetX(ctx context.Context, id int) *Connector {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConnectorClient) Hooks() []Hook {
	return c.hooks.Connector
}

// Interceptors returns the client interceptors.
func (c *ConnectorClient) Interceptors() []Interceptor {
	return c.inters.Connector
}

func (c *ConnectorClient) mutate(ctx context.Context, m *ConnectorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConnectorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConnectorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConnectorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConnectorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Connector mutation op: %q", m.Op())
	}
}

// ConnectorCheckpointClient is a client for the ConnectorCheckpoint schema.
type ConnectorCheckpointClient struct {
	config
}

// NewConnectorCheckpointClient returns a client for the ConnectorCheckpoint from the given config.
func NewConnectorCheckpointClient(c config) *ConnectorCheckpointClient {
	return &ConnectorCheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `connectorcheckpoint.Hooks(f(g(h())))`.
func (c *ConnectorCheckpointClient) Use(hooks ...Hook) {
	c.hooks.ConnectorCheckpoint = append(c.hooks.ConnectorCheckpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `connectorcheckpoint.Intercept(f(g(h())))`.
func (c *ConnectorCheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConnectorCheckpoint = append(c.inters.ConnectorCheckpoint, interceptors...)
}

// Create returns a builder for creating a ConnectorCheckpoint entity.
func (c *ConnectorCheckpointClient) Create() *ConnectorCheckpointCreate {
	mutation := newConnectorCheckpointMutation(c.config, OpCreate)
	return &ConnectorCheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConnectorCheckpoint entities.
func (c *ConnectorCheckpointClient) CreateBulk(builders ...*ConnectorCheckpointCreate) *ConnectorCheckpointCreateBulk {
	return &ConnectorCheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConnectorCheckpointClient) MapCreateBulk(slice any, setFunc func(*ConnectorCheckpointCreate, int)) *ConnectorCheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConnectorCheckpointCreateBulk{err: fmt.Errorf("calling to ConnectorCheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConnectorCheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConnectorCheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConnectorCheckpoint.
func (c *ConnectorCheckpointClient) Update() *ConnectorCheckpointUpdate {
	mutation := newConnectorCheckpointMutation(c.config, OpUpdate)
	return &ConnectorCheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConnectorCheckpointClient) UpdateOne(_m *ConnectorCheckpoint) *ConnectorCheckpointUpdateOne {
	mutation := newConnectorCheckpointMutation(c.config, OpUpdateOne, withConnectorCheckpoint(_m))
	return &ConnectorCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConnectorCheckpointClient) UpdateOneID(id int) *ConnectorCheckpointUpdateOne {
	mutation := newConnectorCheckpointMutation(c.config, OpUpdateOne, withConnectorCheckpointID(id))
	return &ConnectorCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConnectorCheckpoint.
func (c *ConnectorCheckpointClient) Delete() *ConnectorCheckpointDelete {
	mutation := newConnectorCheckpointMutation(c.config, OpDelete)
	return &ConnectorCheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConnectorCheckpointClient) DeleteOne(_m *ConnectorCheckpoint) *ConnectorCheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConnectorCheckpointClient) DeleteOneID(id int) *ConnectorCheckpointDeleteOne {
	builder := c.Delete().Where(connectorcheckpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConnectorCheckpointDeleteOne{builder}
}

// Query returns a query builder for ConnectorCheckpoint.
func (c *ConnectorCheckpointClient) Query() *ConnectorCheckpointQuery {
	return &ConnectorCheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConnectorCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a ConnectorCheckpoint entity by its id.
func (c *ConnectorCheckpointClient) Get(ctx context.Context, id int) (*ConnectorCheckpoint, error) {
	return c.Query().Where(connectorcheckpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConnectorCheckpointClient) GetX(ctx context.Context, id int) *ConnectorCheckpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConnectorCheckpointClient) Hooks() []Hook {
	return c.hooks.ConnectorCheckpoint
}

// Interceptors returns the client interceptors.
func (c *ConnectorCheckpointClient) Interceptors() []Interceptor {
	return c.inters.ConnectorCheckpoint
}

func (c *ConnectorCheckpointClient) mutate(ctx context.Context, m *ConnectorCheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConnectorCheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConnectorCheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConnectorCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConnectorCheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConnectorCheckpoint mutation op: %q", m.Op())
	}
}

// ConnectorFailureClient is a client for the ConnectorFailure schema.
type ConnectorFailureClient struct {
	config
}

// NewConnectorFailureClient returns a client for the ConnectorFailure from the given config.
func NewConnectorFailureClient(c config) *ConnectorFailureClient {
	return &ConnectorFailureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `connectorfailure.Hooks(f(g(h())))`.
func (c *ConnectorFailureClient) Use(hooks ...Hook) {
	c.hooks.ConnectorFailure = append(c.hooks.ConnectorFailure, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `connectorfailure.Intercept(f(g(h())))`.
func (c *ConnectorFailureClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConnectorFailure = append(c.inters.ConnectorFailure, interceptors...)
}

// Create returns a builder for creating a ConnectorFailure entity.
func (c *ConnectorFailureClient) Create() *ConnectorFailureCreate {
	mutation := newConnectorFailureMutation(c.config, OpCreate)
	return &ConnectorFailureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConnectorFailure entities.
func (c *ConnectorFailureClient) CreateBulk(builders ...*ConnectorFailureCreate) *ConnectorFailureCreateBulk {
	return &ConnectorFailureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConnectorFailureClient) MapCreateBulk(slice any, setFunc func(*ConnectorFailureCreate, int)) *ConnectorFailureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConnectorFailureCreateBulk{err: fmt.Errorf("calling to ConnectorFailureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConnectorFailureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConnectorFailureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConnectorFailure.
func (c *ConnectorFailureClient) Update() *ConnectorFailureUpdate {
	mutation := newConnectorFailureMutation(c.config, OpUpdate)
	return &ConnectorFailureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConnectorFailureClient) UpdateOne(_m *ConnectorFailure) *ConnectorFailureUpdateOne {
	mutation := newConnectorFailureMutation(c.config, OpUpdateOne, withConnectorFailure(_m))
	return &ConnectorFailureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConnectorFailureClient) UpdateOneID(id int) *ConnectorFailureUpdateOne {
	mutation := newConnectorFailureMutation(c.config, OpUpdateOne, withConnectorFailureID(id))
	return &ConnectorFailureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConnectorFailure.
func (c *ConnectorFailureClient) Delete() *ConnectorFailureDelete {
	mutation := newConnectorFailureMutation(c.config, OpDelete)
	return &ConnectorFailureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConnectorFailureClient) DeleteOne(_m *ConnectorFailure) *ConnectorFailureDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConnectorFailureClient) DeleteOneID(id int) *ConnectorFailureDeleteOne {
	builder := c.Delete().Where(connectorfailure.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConnectorFailureDeleteOne{builder}
}

// Query returns a query builder for ConnectorFailure.
func (c *ConnectorFailureClient) Query() *ConnectorFailureQuery {
	return &ConnectorFailureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConnectorFailure},
		inters: c.Interceptors(),
	}
}

// Get returns a ConnectorFailure entity by its id.
func (c *ConnectorFailureClient) Get(ctx context.Context, id int) (*ConnectorFailure, error) {
	return c.Query().Where(connectorfailure.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConnectorFailureClient) GetX(ctx context.Context, id int) *ConnectorFailure {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConnectorFailureClient) Hooks() []Hook {
	return c.hooks.ConnectorFailure
}

// Interceptors returns the client interceptors.
func (c *ConnectorFailureClient) Interceptors() []Interceptor {
	return c.inters.ConnectorFailure
}

func (c *ConnectorFailureClient) mutate(ctx context.Context, m *ConnectorFailureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConnectorFailureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConnectorFailureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConnectorFailureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConnectorFailureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConnectorFailure mutation op: %q", m.Op())
	}
}

// ConnectorRunClient is a client for the ConnectorRun schema.
type ConnectorRunClient struct {
	config
}

// NewConnectorRunClient returns a client for the ConnectorRun from the given config.
func NewConnectorRunClient(c config) *ConnectorRunClient {
	return &ConnectorRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `connectorrun.Hooks(f(g(h())))`.
func (c *ConnectorRunClient) Use(hooks ...Hook) {
	c.hooks.ConnectorRun = append(c.hooks.ConnectorRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `connectorrun.Intercept(f(g(h())))`.
func (c *ConnectorRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConnectorRun = append(c.inters.ConnectorRun, interceptors...)
}

// Create returns a builder for creating a ConnectorRun entity.
func (c *ConnectorRunClient) Create() *ConnectorRunCreate {
	mutation := newConnectorRunMutation(c.config, OpCreate)
	return &ConnectorRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConnectorRun entities.
func (c *ConnectorRunClient) CreateBulk(builders ...*ConnectorRunCreate) *ConnectorRunCreateBulk {
	return &ConnectorRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConnectorRunClient) MapCreateBulk(slice any, setFunc func(*ConnectorRunCreate, int)) *ConnectorRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConnectorRunCreateBulk{err: fmt.Errorf("calling to ConnectorRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConnectorRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConnectorRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConnectorRun.
func (c *ConnectorRunClient) Update() *ConnectorRunUpdate {
	mutation := newConnectorRunMutation(c.config, OpUpdate)
	return &ConnectorRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConnectorRunClient) UpdateOne(_m *ConnectorRun) *ConnectorRunUpdateOne {
	mutation := newConnectorRunMutation(c.config, OpUpdateOne, withConnectorRun(_m))
	return &ConnectorRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConnectorRunClient) UpdateOneID(id string) *ConnectorRunUpdateOne {
	mutation := newConnectorRunMutation(c.config, OpUpdateOne, withConnectorRunID(id))
	return &ConnectorRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConnectorRun.
func (c *ConnectorRunClient) Delete() *ConnectorRunDelete {
	mutation := newConnectorRunMutation(c.config, OpDelete)
	return &ConnectorRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConnectorRunClient) DeleteOne(_m *ConnectorRun) *ConnectorRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConnectorRunClient) DeleteOneID(id string) *ConnectorRunDeleteOne {
	builder := c.Delete().Where(connectorrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConnectorRunDeleteOne{builder}
}

// Query returns a query builder for ConnectorRun.
func (c *ConnectorRunClient) Query() *ConnectorRunQuery {
	return &ConnectorRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConnectorRun},
		inters: c.Interceptors(),
	}
}

// Get returns a ConnectorRun entity by its id.
func (c *ConnectorRunClient) Get(ctx context.Context, id string) (*ConnectorRun, error) {
	return c.Query().Where(connectorrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConnectorRunClient) GetX(ctx context.Context, id string) *ConnectorRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConnectorRunClient) Hooks() []Hook {
	return c.hooks.ConnectorRun
}

// Interceptors returns the client interceptors.
func (c *ConnectorRunClient) Interceptors() []Interceptor {
	return c.inters.ConnectorRun
}

func (c *ConnectorRunClient) mutate(ctx context.Context, m *ConnectorRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConnectorRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConnectorRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConnectorRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConnectorRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConnectorRun mutation op: %q", m.Op())
	}
}

// EventRecordClient is a client for the EventRecord schema.
type EventRecordClient struct {
	config
}

// NewEventRecordClient returns a client for the EventRecord from the given config.
func NewEventRecordClient(c config) *EventRecordClient {
	return &EventRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eventrecord.Hooks(f(g(h())))`.
func (c *EventRecordClient) Use(hooks ...Hook) {
	c.hooks.EventRecord = append(c.hooks.EventRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eventrecord.Intercept(f(g(h())))`.
func (c *EventRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.EventRecord = append(c.inters.EventRecord, interceptors...)
}

// Create returns a builder for creating a EventRecord entity.
func (c *EventRecordClient) Create() *EventRecordCreate {
	mutation := newEventRecordMutation(c.config, OpCreate)
	return &EventRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EventRecord entities.
func (c *EventRecordClient) CreateBulk(builders ...*EventRecordCreate) *EventRecordCreateBulk {
	return &EventRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventRecordClient) MapCreateBulk(slice any, setFunc func(*EventRecordCreate, int)) *EventRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventRecordCreateBulk{err: fmt.Errorf("calling to EventRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EventRecord.
func (c *EventRecordClient) Update() *EventRecordUpdate {
	mutation := newEventRecordMutation(c.config, OpUpdate)
	return &EventRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventRecordClient) UpdateOne(_m *EventRecord) *EventRecordUpdateOne {
	mutation := newEventRecordMutation(c.config, OpUpdateOne, withEventRecord(_m))
	return &EventRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventRecordClient) UpdateOneID(id int) *EventRecordUpdateOne {
	mutation := newEventRecordMutation(c.config, OpUpdateOne, withEventRecordID(id))
	return &EventRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EventRecord.
func (c *EventRecordClient) Delete() *EventRecordDelete {
	mutation := newEventRecordMutation(c.config, OpDelete)
	return &EventRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventRecordClient) DeleteOne(_m *EventRecord) *EventRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventRecordClient) DeleteOneID(id int) *EventRecordDeleteOne {
	builder := c.Delete().Where(eventrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventRecordDeleteOne{builder}
}

// Query returns a query builder for EventRecord.
func (c *EventRecordClient) Query() *EventRecordQuery {
	return &EventRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEventRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a EventRecord entity by its id.
func (c *EventRecordClient) Get(ctx context.Context, id int) (*EventRecord, error) {
	return c.Query().Where(eventrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventRecordClient) GetX(ctx context.Context, id int) *EventRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventRecordClient) Hooks() []Hook {
	return c.hooks.EventRecord
}

// Interceptors returns the client interceptors.
func (c *EventRecordClient) Interceptors() []Interceptor {
	return c.inters.EventRecord
}

func (c *EventRecordClient) mutate(ctx context.Context, m *EventRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EventRecord mutation op: %q", m.Op())
	}
}

// EventSourceClient is a client for the EventSource schema.
type EventSourceClient struct {
	config
}

// NewEventSourceClient returns a client for the EventSource from the given config.
func NewEventSourceClient(c config) *EventSourceClient {
	return &EventSourceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eventsource.Hooks(f(g(h())))`.
func (c *EventSourceClient) Use(hooks ...Hook) {
	c.hooks.EventSource = append(c.hooks.EventSource, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eventsource.Intercept(f(g(h())))`.
func (c *EventSourceClient) Intercept(interceptors ...Interceptor) {
	c.inters.EventSource = append(c.inters.EventSource, interceptors...)
}

// Create returns a builder for creating a EventSource entity.
func (c *EventSourceClient) Create() *EventSourceCreate {
	mutation := newEventSourceMutation(c.config, OpCreate)
	return &EventSourceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EventSource entities.
func (c *EventSourceClient) CreateBulk(builders ...*EventSourceCreate) *EventSourceCreateBulk {
	return &EventSourceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventSourceClient) MapCreateBulk(slice any, setFunc func(*EventSourceCreate, int)) *EventSourceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventSourceCreateBulk{err: fmt.Errorf("calling to EventSourceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventSourceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventSourceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EventSource.
func (c *EventSourceClient) Update() *EventSourceUpdate {
	mutation := newEventSourceMutation(c.config, OpUpdate)
	return &EventSourceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventSourceClient) UpdateOne(_m *EventSource) *EventSourceUpdateOne {
	mutation := newEventSourceMutation(c.config, OpUpdateOne, withEventSource(_m))
	return &EventSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventSourceClient) UpdateOneID(id int) *EventSourceUpdateOne {
	mutation := newEventSourceMutation(c.config, OpUpdateOne, withEventSourceID(id))
	return &EventSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EventSource.
func (c *EventSourceClient) Delete() *EventSourceDelete {
	mutation := newEventSourceMutation(c.config, OpDelete)
	return &EventSourceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventSourceClient) DeleteOne(_m *EventSource) *EventSourceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventSourceClient) DeleteOneID(id int) *EventSourceDeleteOne {
	builder := c.Delete().Where(eventsource.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventSourceDeleteOne{builder}
}

// Query returns a query builder for EventSource.
func (c *EventSourceClient) Query() *EventSourceQuery {
	return &EventSourceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEventSource},
		inters: c.Interceptors(),
	}
}

// Get returns a EventSource entity by its id.
func (c *EventSourceClient) Get(ctx context.Context, id int) (*EventSource, error) {
	return c.Query().Where(eventsource.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventSourceClient) GetX(ctx context.Context, id int) *EventSource {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventSourceClient) Hooks() []Hook {
	return c.hooks.EventSource
}

// Interceptors returns the client interceptors.
func (c *EventSourceClient) Interceptors() []Interceptor {
	return c.inters.EventSource
}

func (c *EventSourceClient) mutate(ctx context.Context, m *EventSourceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventSourceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventSourceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventSourceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EventSource mutation op: %q", m.Op())
	}
}

// NLPConsensusClient is a client for the NLPConsensus schema.
type NLPConsensusClient struct {
	config
}

// NewNLPConsensusClient returns a client for the NLPConsensus from the given config.
func NewNLPConsensusClient(c config) *NLPConsensusClient {
	return &NLPConsensusClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `nlpconsensus.Hooks(f(g(h())))`.
func (c *NLPConsensusClient) Use(hooks ...Hook) {
	c.hooks.NLPConsensus = append(c.hooks.NLPConsensus, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `nlpconsensus.Intercept(f(g(h())))`.
func (c *NLPConsensusClient) Intercept(interceptors ...Interceptor) {
	c.inters.NLPConsensus = append(c.inters.NLPConsensus, interceptors...)
}

// Create returns a builder for creating a NLPConsensus entity.
func (c *NLPConsensusClient) Create() *NLPConsensusCreate {
	mutation := newNLPConsensusMutation(c.config, OpCreate)
	return &NLPConsensusCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NLPConsensus entities.
func (c *NLPConsensusClient) CreateBulk(builders ...*NLPConsensusCreate) *NLPConsensusCreateBulk {
	return &NLPConsensusCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NLPConsensusClient) MapCreateBulk(slice any, setFunc func(*NLPConsensusCreate, int)) *NLPConsensusCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NLPConsensusCreateBulk{err: fmt.Errorf("calling to NLPConsensusClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NLPConsensusCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NLPConsensusCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NLPConsensus.
func (c *NLPConsensusClient) Update() *NLPConsensusUpdate {
	mutation := newNLPConsensusMutation(c.config, OpUpdate)
	return &NLPConsensusUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NLPConsensusClient) UpdateOne(_m *NLPConsensus) *NLPConsensusUpdateOne {
	mutation := newNLPConsensusMutation(c.config, OpUpdateOne, withNLPConsensus(_m))
	return &NLPConsensusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NLPConsensusClient) UpdateOneID(id int) *NLPConsensusUpdateOne {
	mutation := newNLPConsensusMutation(c.config, OpUpdateOne, withNLPConsensusID(id))
	return &NLPConsensusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NLPConsensus.
func (c *NLPConsensusClient) Delete() *NLPConsensusDelete {
	mutation := newNLPConsensusMutation(c.config, OpDelete)
	return &NLPConsensusDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NLPConsensusClient) DeleteOne(_m *NLPConsensus) *NLPConsensusDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NLPConsensusClient) DeleteOneID(id int) *NLPConsensusDeleteOne {
	builder := c.Delete().Where(nlpconsensus.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NLPConsensusDeleteOne{builder}
}

// Query returns a query builder for NLPConsensus.
func (c *NLPConsensusClient) Query() *NLPConsensusQuery {
	return &NLPConsensusQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNLPConsensus},
		inters: c.Interceptors(),
	}
}

// Get returns a NLPConsensus entity by its id.
func (c *NLPConsensusClient) Get(ctx context.Context, id int) (*NLPConsensus, error) {
	return c.Query().Where(nlpconsensus.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NLPConsensusClient) GetX(ctx context.Context, id int) *NLPConsensus {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NLPConsensusClient) Hooks() []Hook {
	return c.hooks.NLPConsensus
}

// Interceptors returns the client interceptors.
func (c *NLPConsensusClient) Interceptors() []Interceptor {
	return c.inters.NLPConsensus
}

func (c *NLPConsensusClient) mutate(ctx context.Context, m *NLPConsensusMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NLPConsensusCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NLPConsensusUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NLPConsensusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NLPConsensusDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NLPConsensus mutation op: %q", m.Op())
	}
}

// NLPDriftSnapshotClient is a client for the NLPDriftSnapshot schema.
type NLPDriftSnapshotClient struct {
	config
}

// NewNLPDriftSnapshotClient returns a client for the NLPDriftSnapshot from the given config.
func NewNLPDriftSnapshotClient(c config) *NLPDriftSnapshotClient {
	return &NLPDriftSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `nlpdriftsnapshot.Hooks(f(g(h())))`.
func (c *NLPDriftSnapshotClient) Use(hooks ...Hook) {
	c.hooks.NLPDriftSnapshot = append(c.hooks.NLPDriftSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `nlpdriftsnapshot.Intercept(f(g(h())))`.
func (c *NLPDriftSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.NLPDriftSnapshot = append(c.inters.NLPDriftSnapshot, interceptors...)
}

// Create returns a builder for creating a NLPDriftSnapshot entity.
func (c *NLPDriftSnapshotClient) Create() *NLPDriftSnapshotCreate {
	mutation := newNLPDriftSnapshotMutation(c.config, OpCreate)
	return &NLPDriftSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NLPDriftSnapshot entities.
func (c *NLPDriftSnapshotClient) CreateBulk(builders ...*NLPDriftSnapshotCreate) *NLPDriftSnapshotCreateBulk {
	return &NLPDriftSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NLPDriftSnapshotClient) MapCreateBulk(slice any, setFunc func(*NLPDriftSnapshotCreate, int)) *NLPDriftSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NLPDriftSnapshotCreateBulk{err: fmt.Errorf("calling to NLPDriftSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NLPDriftSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NLPDriftSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NLPDriftSnapshot.
func (c *NLPDriftSnapshotClient) Update() *NLPDriftSnapshotUpdate {
	mutation := newNLPDriftSnapshotMutation(c.config, OpUpdate)
	return &NLPDriftSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NLPDriftSnapshotClient) UpdateOne(_m *NLPDriftSnapshot) *NLPDriftSnapshotUpdateOne {
	mutation := newNLPDriftSnapshotMutation(c.config, OpUpdateOne, withNLPDriftSnapshot(_m))
	return &NLPDriftSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NLPDriftSnapshotClient) UpdateOneID(id int) *NLPDriftSnapshotUpdateOne {
	mutation := newNLPDriftSnapshotMutation(c.config, OpUpdateOne, withNLPDriftSnapshotID(id))
	return &NLPDriftSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NLPDriftSnapshot.
func (c *NLPDriftSnapshotClient) Delete() *NLPDriftSnapshotDelete {
	mutation := newNLPDriftSnapshotMutation(c.config, OpDelete)
	return &NLPDriftSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NLPDriftSnapshotClient) DeleteOne(_m *NLPDriftSnapshot) *NLPDriftSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NLPDriftSnapshotClient) DeleteOneID(id int) *NLPDriftSnapshotDeleteOne {
	builder := c.Delete().Where(nlpdriftsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NLPDriftSnapshotDeleteOne{builder}
}

// Query returns a query builder for NLPDriftSnapshot.
func (c *NLPDriftSnapshotClient) Query() *NLPDriftSnapshotQuery {
	return &NLPDriftSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNLPDriftSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a NLPDriftSnapshot entity by its id.
func (c *NLPDriftSnapshotClient) Get(ctx context.Context, id int) (*NLPDriftSnapshot, error) {
	return c.Query().Where(nlpdriftsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NLPDriftSnapshotClient) GetX(ctx context.Context, id int) *NLPDriftSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NLPDriftSnapshotClient) Hooks() []Hook {
	return c.hooks.NLPDriftSnapshot
}

// Interceptors returns the client interceptors.
func (c *NLPDriftSnapshotClient) Interceptors() []Interceptor {
	return c.inters.NLPDriftSnapshot
}

func (c *NLPDriftSnapshotClient) mutate(ctx context.Context, m *NLPDriftSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NLPDriftSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NLPDriftSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NLPDriftSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NLPDriftSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NLPDriftSnapshot mutation op: %q", m.Op())
	}
}

// NLPFeedbackClient is a client for the NLPFeedback schema.
type NLPFeedbackClient struct {
	config
}

// NewNLPFeedbackClient returns a client for the NLPFeedback from the given config.
func NewNLPFeedbackClient(c config) *NLPFeedbackClient {
	return &NLPFeedbackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `nlpfeedback.Hooks(f(g(h())))`.
func (c *NLPFeedbackClient) Use(hooks ...Hook) {
	c.hooks.NLPFeedback = append(c.hooks.NLPFeedback, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `nlpfeedback.Intercept(f(g(h())))`.
func (c *NLPFeedbackClient) Intercept(interceptors ...Interceptor) {
	c.inters.NLPFeedback = append(c.inters.NLPFeedback, interceptors...)
}

// Create returns a builder for creating a NLPFeedback entity.
func (c *NLPFeedbackClient) Create() *NLPFeedbackCreate {
	mutation := newNLPFeedbackMutation(c.config, OpCreate)
	return &NLPFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NLPFeedback entities.
func (c *NLPFeedbackClient) CreateBulk(builders ...*NLPFeedbackCreate) *NLPFeedbackCreateBulk {
	return &NLPFeedbackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NLPFeedbackClient) MapCreateBulk(slice any, setFunc func(*NLPFeedbackCreate, int)) *NLPFeedbackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NLPFeedbackCreateBulk{err: fmt.Errorf("calling to NLPFeedbackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NLPFeedbackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NLPFeedbackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NLPFeedback.
func (c *NLPFeedbackClient) Update() *NLPFeedbackUpdate {
	mutation := newNLPFeedbackMutation(c.config, OpUpdate)
	return &NLPFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NLPFeedbackClient) UpdateOne(_m *NLPFeedback) *NLPFeedbackUpdateOne {
	mutation := newNLPFeedbackMutation(c.config, OpUpdateOne, withNLPFeedback(_m))
	return &NLPFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NLPFeedbackClient) UpdateOneID(id int) *NLPFeedbackUpdateOne {
	mutation := newNLPFeedbackMutation(c.config, OpUpdateOne, withNLPFeedbackID(id))
	return &NLPFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NLPFeedback.
func (c *NLPFeedbackClient) Delete() *NLPFeedbackDelete {
	mutation := newNLPFeedbackMutation(c.config, OpDelete)
	return &NLPFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NLPFeedbackClient) DeleteOne(_m *NLPFeedback) *NLPFeedbackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NLPFeedbackClient) DeleteOneID(id int) *NLPFeedbackDeleteOne {
	builder := c.Delete().Where(nlpfeedback.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NLPFeedbackDeleteOne{builder}
}

// Query returns a query builder for NLPFeedback.
func (c *NLPFeedbackClient) Query() *NLPFeedbackQuery {
	return &NLPFeedbackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNLPFeedback},
		inters: c.Interceptors(),
	}
}

// Get returns a NLPFeedback entity by its id.
func (c *NLPFeedbackClient) Get(ctx context.Context, id int) (*NLPFeedback, error) {
	return c.Query().Where(nlpfeedback.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NLPFeedbackClient) GetX(ctx context.Context, id int) *NLPFeedback {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NLPFeedbackClient) Hooks() []Hook {
	return c.hooks.NLPFeedback
}

// Interceptors returns the client interceptors.
func (c *NLPFeedbackClient) Interceptors() []Interceptor {
	return c.inters.NLPFeedback
}

func (c *NLPFeedbackClient) mutate(ctx context.Context, m *NLPFeedbackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NLPFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NLPFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NLPFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NLPFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NLPFeedback mutation op: %q", m.Op())
	}
}

// NLPRulesetClient is a client for the NLPRuleset schema.
type NLPRulesetClient struct {
	config
}

// NewNLPRulesetClient returns a client for the NLPRuleset from the given config.
func NewNLPRulesetClient(c config) *NLPRulesetClient {
	return &NLPRulesetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `nlpruleset.Hooks(f(g(h())))`.
func (c *NLPRulesetClient) Use(hooks ...Hook) {
	c.hooks.NLPRuleset = append(c.hooks.NLPRuleset, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `nlpruleset.Intercept(f(g(h())))`.
func (c *NLPRulesetClient) Intercept(interceptors ...Interceptor) {
	c.inters.NLPRuleset = append(c.inters.NLPRuleset, interceptors...)
}

// Create returns a builder for creating a NLPRuleset entity.
func (c *NLPRulesetClient) Create() *NLPRulesetCreate {
	mutation := newNLPRulesetMutation(c.config, OpCreate)
	return &NLPRulesetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NLPRuleset entities.
func (c *NLPRulesetClient) CreateBulk(builders ...*NLPRulesetCreate) *NLPRulesetCreateBulk {
	return &NLPRulesetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NLPRulesetClient) MapCreateBulk(slice any, setFunc func(*NLPRulesetCreate, int)) *NLPRulesetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NLPRulesetCreateBulk{err: fmt.Errorf("calling to NLPRulesetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NLPRulesetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NLPRulesetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NLPRuleset.
func (c *NLPRulesetClient) Update() *NLPRulesetUpdate {
	mutation := newNLPRulesetMutation(c.config, OpUpdate)
	return &NLPRulesetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NLPRulesetClient) UpdateOne(_m *NLPRuleset) *NLPRulesetUpdateOne {
	mutation := newNLPRulesetMutation(c.config, OpUpdateOne, withNLPRuleset(_m))
	return &NLPRulesetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NLPRulesetClient) UpdateOneID(id int) *NLPRulesetUpdateOne {
	mutation := newNLPRulesetMutation(c.config, OpUpdateOne, withNLPRulesetID(id))
	return &NLPRulesetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NLPRuleset.
func (c *NLPRulesetClient) Delete() *NLPRulesetDelete {
	mutation := newNLPRulesetMutation(c.config, OpDelete)
	return &NLPRulesetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NLPRulesetClient) DeleteOne(_m *NLPRuleset) *NLPRulesetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NLPRulesetClient) DeleteOneID(id int) *NLPRulesetDeleteOne {
	builder := c.Delete().Where(nlpruleset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NLPRulesetDeleteOne{builder}
}

// Query returns a query builder for NLPRuleset.
func (c *NLPRulesetClient) Query() *NLPRulesetQuery {
	return &NLPRulesetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNLPRuleset},
		inters: c.Interceptors(),
	}
}

// Get returns a NLPRuleset entity by its id.
func (c *NLPRulesetClient) Get(ctx context.Context, id int) (*NLPRuleset, error) {
	return c.Query().Where(nlpruleset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NLPRulesetClient) GetX(ctx context.Context, id int) *NLPRuleset {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NLPRulesetClient) Hooks() []Hook {
	return c.hooks.NLPRuleset
}

// Interceptors returns the client interceptors.
func (c *NLPRulesetClient) Interceptors() []Interceptor {
	return c.inters.NLPRuleset
}

func (c *NLPRulesetClient) mutate(ctx context.Context, m *NLPRulesetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NLPRulesetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NLPRulesetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NLPRulesetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NLPRulesetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NLPRuleset mutation op: %q", m.Op())
	}
}

// SLAAlertStateClient is a client for the SLAAlertState schema.
type SLAAlertStateClient struct {
	config
}

// NewSLAAlertStateClient returns a client for the SLAAlertState from the given config.
func NewSLAAlertStateClient(c config) *SLAAlertStateClient {
	return &SLAAlertStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `slaalertstate.Hooks(f(g(h())))`.
func (c *SLAAlertStateClient) Use(hooks ...Hook) {
	c.hooks.SLAAlertState = append(c.hooks.SLAAlertState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `slaalertstate.Intercept(f(g(h())))`.
func (c *SLAAlertStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.SLAAlertState = append(c.inters.SLAAlertState, interceptors...)
}

// Create returns a builder for creating a SLAAlertState entity.
func (c *SLAAlertStateClient) Create() *SLAAlertStateCreate {
	mutation := newSLAAlertStateMutation(c.config, OpCreate)
	return &SLAAlertStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SLAAlertState entities.
func (c *SLAAlertStateClient) CreateBulk(builders ...*SLAAlertStateCreate) *SLAAlertStateCreateBulk {
	return &SLAAlertStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SLAAlertStateClient) MapCreateBulk(slice any, setFunc func(*SLAAlertStateCreate, int)) *SLAAlertStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SLAAlertStateCreateBulk{err: fmt.Errorf("calling to SLAAlertStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SLAAlertStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SLAAlertStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SLAAlertState.
func (c *SLAAlertStateClient) Update() *SLAAlertStateUpdate {
	mutation := newSLAAlertStateMutation(c.config, OpUpdate)
	return &SLAAlertStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SLAAlertStateClient) UpdateOne(_m *SLAAlertState) *SLAAlertStateUpdateOne {
	mutation := newSLAAlertStateMutation(c.config, OpUpdateOne, withSLAAlertState(_m))
	return &SLAAlertStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SLAAlertStateClient) UpdateOneID(id int) *SLAAlertStateUpdateOne {
	mutation := newSLAAlertStateMutation(c.config, OpUpdateOne, withSLAAlertStateID(id))
	return &SLAAlertStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SLAAlertState.
func (c *SLAAlertStateClient) Delete() *SLAAlertStateDelete {
	mutation := newSLAAlertStateMutation(c.config, OpDelete)
	return &SLAAlertStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SLAAlertStateClient) DeleteOne(_m *SLAAlertState) *SLAAlertStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SLAAlertStateClient) DeleteOneID(id int) *SLAAlertStateDeleteOne {
	builder := c.Delete().Where(slaalertstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SLAAlertStateDeleteOne{builder}
}

// Query returns a query builder for SLAAlertState.
func (c *SLAAlertStateClient) Query() *SLAAlertStateQuery {
	return &SLAAlertStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSLAAlertState},
		inters: c.Interceptors(),
	}
}

// Get returns a SLAAlertState entity by its id.
func (c *SLAAlertStateClient) Get(ctx context.Context, id int) (*SLAAlertState, error) {
	return c.Query().Where(slaalertstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SLAAlertStateClient) GetX(ctx context.Context, id int) *SLAAlertState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SLAAlertStateClient) Hooks() []Hook {
	return c.hooks.SLAAlertState
}

// Interceptors returns the client interceptors.
func (c *SLAAlertStateClient) Interceptors() []Interceptor {
	return c.inters.SLAAlertState
}

func (c *SLAAlertStateClient) mutate(ctx context.Context, m *SLAAlertStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SLAAlertStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SLAAlertStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SLAAlertStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SLAAlertStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SLAAlertState mutation op: %q", m.Op())
	}
}

// SLAHistoryClient is a client for the SLAHistory schema.
type SLAHistoryClient struct {
	config
}

// NewSLAHistoryClient returns a client for the SLAHistory from the given config.
func NewSLAHistoryClient(c config) *SLAHistoryClient {
	return &SLAHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `slahistory.Hooks(f(g(h())))`.
func (c *SLAHistoryClient) Use(hooks ...Hook) {
	c.hooks.SLAHistory = append(c.hooks.SLAHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `slahistory.Intercept(f(g(h())))`.
func (c *SLAHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SLAHistory = append(c.inters.SLAHistory, interceptors...)
}

// Create returns a builder for creating a SLAHistory entity.
func (c *SLAHistoryClient) Create() *SLAHistoryCreate {
	mutation := newSLAHistoryMutation(c.config, OpCreate)
	return &SLAHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SLAHistory entities.
func (c *SLAHistoryClient) CreateBulk(builders ...*SLAHistoryCreate) *SLAHistoryCreateBulk {
	return &SLAHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SLAHistoryClient) MapCreateBulk(slice any, setFunc func(*SLAHistoryCreate, int)) *SLAHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SLAHistoryCreateBulk{err: fmt.Errorf("calling to SLAHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SLAHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SLAHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SLAHistory.
func (c *SLAHistoryClient) Update() *SLAHistoryUpdate {
	mutation := newSLAHistoryMutation(c.config, OpUpdate)
	return &SLAHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SLAHistoryClient) UpdateOne(_m *SLAHistory) *SLAHistoryUpdateOne {
	mutation := newSLAHistoryMutation(c.config, OpUpdateOne, withSLAHistory(_m))
	return &SLAHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SLAHistoryClient) UpdateOneID(id int) *SLAHistoryUpdateOne {
	mutation := newSLAHistoryMutation(c.config, OpUpdateOne, withSLAHistoryID(id))
	return &SLAHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SLAHistory.
func (c *SLAHistoryClient) Delete() *SLAHistoryDelete {
	mutation := newSLAHistoryMutation(c.config, OpDelete)
	return &SLAHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SLAHistoryClient) DeleteOne(_m *SLAHistory) *SLAHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SLAHistoryClient) DeleteOneID(id int) *SLAHistoryDeleteOne {
	builder := c.Delete().Where(slahistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SLAHistoryDeleteOne{builder}
}

// Query returns a query builder for SLAHistory.
func (c *SLAHistoryClient) Query() *SLAHistoryQuery {
	return &SLAHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSLAHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a SLAHistory entity by its id.
func (c *SLAHistoryClient) Get(ctx context.Context, id int) (*SLAHistory, error) {
	return c.Query().Where(slahistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SLAHistoryClient) GetX(ctx context.Context, id int) *SLAHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SLAHistoryClient) Hooks() []Hook {
	return c.hooks.SLAHistory
}

// Interceptors returns the client interceptors.
func (c *SLAHistoryClient) Interceptors() []Interceptor {
	return c.inters.SLAHistory
}

func (c *SLAHistoryClient) mutate(ctx context.Context, m *SLAHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SLAHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SLAHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SLAHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SLAHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SLAHistory mutation op: %q", m.Op())
	}
}

// SourceBudgetClient is a client for the SourceBudget schema.
type SourceBudgetClient struct {
	config
}

// NewSourceBudgetClient returns a client for the SourceBudget from the given config.
func NewSourceBudgetClient(c config) *SourceBudgetClient {
	return &SourceBudgetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sourcebudget.Hooks(f(g(h())))`.
func (c *SourceBudgetClient) Use(hooks ...Hook) {
	c.hooks.SourceBudget = append(c.hooks.SourceBudget, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sourcebudget.Intercept(f(g(h())))`.
func (c *SourceBudgetClient) Intercept(interceptors ...Interceptor) {
	c.inters.SourceBudget = append(c.inters.SourceBudget, interceptors...)
}

// Create returns a builder for creating a SourceBudget entity.
func (c *SourceBudgetClient) Create() *SourceBudgetCreate {
	mutation := newSourceBudgetMutation(c.config, OpCreate)
	return &SourceBudgetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SourceBudget entities.
func (c *SourceBudgetClient) CreateBulk(builders ...*SourceBudgetCreate) *SourceBudgetCreateBulk {
	return &SourceBudgetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceBudgetClient) MapCreateBulk(slice any, setFunc func(*SourceBudgetCreate, int)) *SourceBudgetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceBudgetCreateBulk{err: fmt.Errorf("calling to SourceBudgetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceBudgetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceBudgetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SourceBudget.
func (c *SourceBudgetClient) Update() *SourceBudgetUpdate {
	mutation := newSourceBudgetMutation(c.config, OpUpdate)
	return &SourceBudgetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceBudgetClient) UpdateOne(_m *SourceBudget) *SourceBudgetUpdateOne {
	mutation := newSourceBudgetMutation(c.config, OpUpdateOne, withSourceBudget(_m))
	return &SourceBudgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceBudgetClient) UpdateOneID(id int) *SourceBudgetUpdateOne {
	mutation := newSourceBudgetMutation(c.config, OpUpdateOne, withSourceBudgetID(id))
	return &SourceBudgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SourceBudget.
func (c *SourceBudgetClient) Delete() *SourceBudgetDelete {
	mutation := newSourceBudgetMutation(c.config, OpDelete)
	return &SourceBudgetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceBudgetClient) DeleteOne(_m *SourceBudget) *SourceBudgetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceBudgetClient) DeleteOneID(id int) *SourceBudgetDeleteOne {
	builder := c.Delete().Where(sourcebudget.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceBudgetDeleteOne{builder}
}

// Query returns a query builder for SourceBudget.
func (c *SourceBudgetClient) Query() *SourceBudgetQuery {
	return &SourceBudgetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSourceBudget},
		inters: c.Interceptors(),
	}
}

// Get returns a SourceBudget entity by its id.
func (c *SourceBudgetClient) Get(ctx context.Context, id int) (*SourceBudget, error) {
	return c.Query().Where(sourcebudget.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceBudgetClient) GetX(ctx context.Context, id int) *SourceBudget {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SourceBudgetClient) Hooks() []Hook {
	return c.hooks.SourceBudget
}

// Interceptors returns the client interceptors.
func (c *SourceBudgetClient) Interceptors() []Interceptor {
	return c.inters.SourceBudget
}

func (c *SourceBudgetClient) mutate(ctx context.Context, m *SourceBudgetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceBudgetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceBudgetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceBudgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceBudgetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SourceBudget mutation op: %q", m.Op())
	}
}

// SourceCredentialCursorClient is a client for the SourceCredentialCursor schema.
type SourceCredentialCursorClient struct {
	config
}

// NewSourceCredentialCursorClient returns a client for the SourceCredentialCursor from the given config.
func NewSourceCredentialCursorClient(c config) *SourceCredentialCursorClient {
	return &SourceCredentialCursorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sourcecredentialcursor.Hooks(f(g(h())))`.
func (c *SourceCredentialCursorClient) Use(hooks ...Hook) {
	c.hooks.SourceCredentialCursor = append(c.hooks.SourceCredentialCursor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sourcecredentialcursor.Intercept(f(g(h())))`.
func (c *SourceCredentialCursorClient) Intercept(interceptors ...Interceptor) {
	c.inters.SourceCredentialCursor = append(c.inters.SourceCredentialCursor, interceptors...)
}

// Create returns a builder for creating a SourceCredentialCursor entity.
func (c *SourceCredentialCursorClient) Create() *SourceCredentialCursorCreate {
	mutation := newSourceCredentialCursorMutation(c.config, OpCreate)
	return &SourceCredentialCursorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SourceCredentialCursor entities.
func (c *SourceCredentialCursorClient) CreateBulk(builders ...*SourceCredentialCursorCreate) *SourceCredentialCursorCreateBulk {
	return &SourceCredentialCursorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceCredentialCursorClient) MapCreateBulk(slice any, setFunc func(*SourceCredentialCursorCreate, int)) *SourceCredentialCursorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceCredentialCursorCreateBulk{err: fmt.Errorf("calling to SourceCredentialCursorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceCredentialCursorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceCredentialCursorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SourceCredentialCursor.
func (c *SourceCredentialCursorClient) Update() *SourceCredentialCursorUpdate {
	mutation := newSourceCredentialCursorMutation(c.config, OpUpdate)
	return &SourceCredentialCursorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceCredentialCursorClient) UpdateOne(_m *SourceCredentialCursor) *SourceCredentialCursorUpdateOne {
	mutation := newSourceCredentialCursorMutation(c.config, OpUpdateOne, withSourceCredentialCursor(_m))
	return &SourceCredentialCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceCredentialCursorClient) UpdateOneID(id int) *SourceCredentialCursorUpdateOne {
	mutation := newSourceCredentialCursorMutation(c.config, OpUpdateOne, withSourceCredentialCursorID(id))
	return &SourceCredentialCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SourceCredentialCursor.
func (c *SourceCredentialCursorClient) Delete() *SourceCredentialCursorDelete {
	mutation := newSourceCredentialCursorMutation(c.config, OpDelete)
	return &SourceCredentialCursorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceCredentialCursorClient) DeleteOne(_m *SourceCredentialCursor) *SourceCredentialCursorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceCredentialCursorClient) DeleteOneID(id int) *SourceCredentialCursorDeleteOne {
	builder := c.Delete().Where(sourcecredentialcursor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceCredentialCursorDeleteOne{builder}
}

// Query returns a query builder for SourceCredentialCursor.
func (c *SourceCredentialCursorClient) Query() *SourceCredentialCursorQuery {
	return &SourceCredentialCursorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSourceCredentialCursor},
		inters: c.Interceptors(),
	}
}

// Get returns a SourceCredentialCursor entity by its id.
func (c *SourceCredentialCursorClient) Get(ctx context.Context, id int) (*SourceCredentialCursor, error) {
	return c.Query().Where(sourcecredentialcursor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceCredentialCursorClient) GetX(ctx context.Context, id int) *SourceCredentialCursor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SourceCredentialCursorClient) Hooks() []Hook {
	return c.hooks.SourceCredentialCursor
}

// Interceptors returns the client interceptors.
func (c *SourceCredentialCursorClient) Interceptors() []Interceptor {
	return c.inters.SourceCredentialCursor
}

func (c *SourceCredentialCursorClient) mutate(ctx context.Context, m *SourceCredentialCursorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceCredentialCursorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceCredentialCursorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceCredentialCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceCredentialCursorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SourceCredentialCursor mutation op: %q", m.Op())
	}
}

// SourceStateClient is a client for the SourceState schema.
type SourceStateClient struct {
	config
}

// NewSourceStateClient returns a client for the SourceState from the given config.
func NewSourceStateClient(c config) *SourceStateClient {
	return &SourceStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sourcestate.Hooks(f(g(h())))`.
func (c *SourceStateClient) Use(hooks ...Hook) {
	c.hooks.SourceState = append(c.hooks.SourceState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sourcestate.Intercept(f(g(h())))`.
func (c *SourceStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.SourceState = append(c.inters.SourceState, interceptors...)
}

// Create returns a builder for creating a SourceState entity.
func (c *SourceStateClient) Create() *SourceStateCreate {
	mutation := newSourceStateMutation(c.config, OpCreate)
	return &SourceStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SourceState entities.
func (c *SourceStateClient) CreateBulk(builders ...*SourceStateCreate) *SourceStateCreateBulk {
	return &SourceStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceStateClient) MapCreateBulk(slice any, setFunc func(*SourceStateCreate, int)) *SourceStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceStateCreateBulk{err: fmt.Errorf("calling to SourceStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SourceState.
func (c *SourceStateClient) Update() *SourceStateUpdate {
	mutation := newSourceStateMutation(c.config, OpUpdate)
	return &SourceStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceStateClient) UpdateOne(_m *SourceState) *SourceStateUpdateOne {
	mutation := newSourceStateMutation(c.config, OpUpdateOne, withSourceState(_m))
	return &SourceStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceStateClient) UpdateOneID(id int) *SourceStateUpdateOne {
	mutation := newSourceStateMutation(c.config, OpUpdateOne, withSourceStateID(id))
	return &SourceStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SourceState.
func (c *SourceStateClient) Delete() *SourceStateDelete {
	mutation := newSourceStateMutation(c.config, OpDelete)
	return &SourceStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceStateClient) DeleteOne(_m *SourceState) *SourceStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceStateClient) DeleteOneID(id int) *SourceStateDeleteOne {
	builder := c.Delete().Where(sourcestate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceStateDeleteOne{builder}
}

// Query returns a query builder for SourceState.
func (c *SourceStateClient) Query() *SourceStateQuery {
	return &SourceStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSourceState},
		inters: c.Interceptors(),
	}
}

// Get returns a SourceState entity by its id.
func (c *SourceStateClient) Get(ctx context.Context, id int) (*SourceState, error) {
	return c.Query().Where(sourcestate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceStateClient) GetX(ctx context.Context, id int) *SourceState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SourceStateClient) Hooks() []Hook {
	return c.hooks.SourceState
}

// Interceptors returns the client interceptors.
func (c *SourceStateClient) Interceptors() []Interceptor {
	return c.inters.SourceState
}

func (c *SourceStateClient) mutate(ctx context.Context, m *SourceStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SourceState mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditLog, Connector, ConnectorCheckpoint, ConnectorFailure, ConnectorRun,
		EventRecord, EventSource, NLPConsensus, NLPDriftSnapshot, NLPFeedback,
		NLPRuleset, SLAAlertState, SLAHistory, SourceBudget, SourceCredentialCursor,
		SourceState []ent.Hook
	}
	inters struct {
		AuditLog, Connector, ConnectorCheckpoint, ConnectorFailure, ConnectorRun,
		EventRecord, EventSource, NLPConsensus, NLPDriftSnapshot, NLPFeedback,
		NLPRuleset, SLAAlertState, SLAHistory, SourceBudget, SourceCredentialCursor,
		SourceState []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
