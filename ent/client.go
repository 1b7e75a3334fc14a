// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/coursepilot/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursepilot/ent/llmrequestevent"
	"github.com/abhisek/coursepilot/ent/sessionsnapshot"
	"github.com/abhisek/coursepilot/ent/turnevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// SessionSnapshot is the client for interacting with the SessionSnapshot builders.
	SessionSnapshot *SessionSnapshotClient
	// TurnEvent is the client for interacting with the TurnEvent builders.
	TurnEvent *TurnEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.SessionSnapshot = NewSessionSnapshotClient(c.config)
	c.TurnEvent = NewTurnEventClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		SessionSnapshot: NewSessionSnapshotClient(cfg),
		TurnEvent:       NewTurnEventClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		SessionSnapshot: NewSessionSnapshotClient(cfg),
		TurnEvent:       NewTurnEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LLMRequestEvent.
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
	c.LLMRequestEvent.Use(hooks...)
	c.SessionSnapshot.Use(hooks...)
	c.TurnEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.LLMRequestEvent.Intercept(interceptors...)
	c.SessionSnapshot.Intercept(interceptors...)
	c.TurnEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *SessionSnapshotMutation:
		return c.SessionSnapshot.mutate(ctx, m)
	case *TurnEventMutation:
		return c.TurnEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// SessionSnapshotClient is a client for the SessionSnapshot schema.
type SessionSnapshotClient struct {
	config
}

// NewSessionSnapshotClient returns a client for the SessionSnapshot from the given config.
func NewSessionSnapshotClient(c config) *SessionSnapshotClient {
	return &SessionSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionsnapshot.Hooks(f(g(h())))`.
func (c *SessionSnapshotClient) Use(hooks ...Hook) {
	c.hooks.SessionSnapshot = append(c.hooks.SessionSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionsnapshot.Intercept(f(g(h())))`.
func (c *SessionSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionSnapshot = append(c.inters.SessionSnapshot, interceptors...)
}

// Create returns a builder for creating a SessionSnapshot entity.
func (c *SessionSnapshotClient) Create() *SessionSnapshotCreate {
	mutation := newSessionSnapshotMutation(c.config, OpCreate)
	return &SessionSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionSnapshot entities.
func (c *SessionSnapshotClient) CreateBulk(builders ...*SessionSnapshotCreate) *SessionSnapshotCreateBulk {
	return &SessionSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionSnapshotClient) MapCreateBulk(slice any, setFunc func(*SessionSnapshotCreate, int)) *SessionSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionSnapshotCreateBulk{err: fmt.Errorf("calling to SessionSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionSnapshot.
func (c *SessionSnapshotClient) Update() *SessionSnapshotUpdate {
	mutation := newSessionSnapshotMutation(c.config, OpUpdate)
	return &SessionSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionSnapshotClient) UpdateOne(_m *SessionSnapshot) *SessionSnapshotUpdateOne {
	mutation := newSessionSnapshotMutation(c.config, OpUpdateOne, withSessionSnapshot(_m))
	return &SessionSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionSnapshotClient) UpdateOneID(id int) *SessionSnapshotUpdateOne {
	mutation := newSessionSnapshotMutation(c.config, OpUpdateOne, withSessionSnapshotID(id))
	return &SessionSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionSnapshot.
func (c *SessionSnapshotClient) Delete() *SessionSnapshotDelete {
	mutation := newSessionSnapshotMutation(c.config, OpDelete)
	return &SessionSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionSnapshotClient) DeleteOne(_m *SessionSnapshot) *SessionSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionSnapshotClient) DeleteOneID(id int) *SessionSnapshotDeleteOne {
	builder := c.Delete().Where(sessionsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionSnapshotDeleteOne{builder}
}

// Query returns a query builder for SessionSnapshot.
func (c *SessionSnapshotClient) Query() *SessionSnapshotQuery {
	return &SessionSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionSnapshot entity by its id.
func (c *SessionSnapshotClient) Get(ctx context.Context, id int) (*SessionSnapshot, error) {
	return c.Query().Where(sessionsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionSnapshotClient) GetX(ctx context.Context, id int) *SessionSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionSnapshotClient) Hooks() []Hook {
	return c.hooks.SessionSnapshot
}

// Interceptors returns the client interceptors.
func (c *SessionSnapshotClient) Interceptors() []Interceptor {
	return c.inters.SessionSnapshot
}

func (c *SessionSnapshotClient) mutate(ctx context.Context, m *SessionSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionSnapshot mutation op: %q", m.Op())
	}
}

// TurnEventClient is a client for the TurnEvent schema.
type TurnEventClient struct {
	config
}

// NewTurnEventClient returns a client for the TurnEvent from the given config.
func NewTurnEventClient(c config) *TurnEventClient {
	return &TurnEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `turnevent.Hooks(f(g(h())))`.
func (c *TurnEventClient) Use(hooks ...Hook) {
	c.hooks.TurnEvent = append(c.hooks.TurnEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `turnevent.Intercept(f(g(h())))`.
func (c *TurnEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TurnEvent = append(c.inters.TurnEvent, interceptors...)
}

// Create returns a builder for creating a TurnEvent entity.
func (c *TurnEventClient) Create() *TurnEventCreate {
	mutation := newTurnEventMutation(c.config, OpCreate)
	return &TurnEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TurnEvent entities.
func (c *TurnEventClient) CreateBulk(builders ...*TurnEventCreate) *TurnEventCreateBulk {
	return &TurnEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TurnEventClient) MapCreateBulk(slice any, setFunc func(*TurnEventCreate, int)) *TurnEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TurnEventCreateBulk{err: fmt.Errorf("calling to TurnEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TurnEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TurnEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TurnEvent.
func (c *TurnEventClient) Update() *TurnEventUpdate {
	mutation := newTurnEventMutation(c.config, OpUpdate)
	return &TurnEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TurnEventClient) UpdateOne(_m *TurnEvent) *TurnEventUpdateOne {
	mutation := newTurnEventMutation(c.config, OpUpdateOne, withTurnEvent(_m))
	return &TurnEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TurnEventClient) UpdateOneID(id int) *TurnEventUpdateOne {
	mutation := newTurnEventMutation(c.config, OpUpdateOne, withTurnEventID(id))
	return &TurnEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TurnEvent.
func (c *TurnEventClient) Delete() *TurnEventDelete {
	mutation := newTurnEventMutation(c.config, OpDelete)
	return &TurnEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TurnEventClient) DeleteOne(_m *TurnEvent) *TurnEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TurnEventClient) DeleteOneID(id int) *TurnEventDeleteOne {
	builder := c.Delete().Where(turnevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TurnEventDeleteOne{builder}
}

// Query returns a query builder for TurnEvent.
func (c *TurnEventClient) Query() *TurnEventQuery {
	return &TurnEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTurnEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TurnEvent entity by its id.
func (c *TurnEventClient) Get(ctx context.Context, id int) (*TurnEvent, error) {
	return c.Query().Where(turnevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TurnEventClient) GetX(ctx context.Context, id int) *TurnEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TurnEventClient) Hooks() []Hook {
	return c.hooks.TurnEvent
}

// Interceptors returns the client interceptors.
func (c *TurnEventClient) Interceptors() []Interceptor {
	return c.inters.TurnEvent
}

func (c *TurnEventClient) mutate(ctx context.Context, m *TurnEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TurnEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TurnEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TurnEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TurnEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TurnEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LLMRequestEvent, SessionSnapshot, TurnEvent []ent.Hook
	}
	inters struct {
		LLMRequestEvent, SessionSnapshot, TurnEvent []ent.Interceptor
	}
)
