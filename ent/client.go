// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ringledger/ringledger/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ringledger/ringledger/ent/agent"
	"github.com/ringledger/ringledger/ent/billingaccount"
	"github.com/ringledger/ringledger/ent/callrecord"
	"github.com/ringledger/ringledger/ent/crmconnection"
	"github.com/ringledger/ringledger/ent/deletedcall"
	"github.com/ringledger/ringledger/ent/phonenumber"
	"github.com/ringledger/ringledger/ent/syncrun"
	"github.com/ringledger/ringledger/ent/tenant"
	"github.com/ringledger/ringledger/ent/usageledgerentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// BillingAccount is the client for interacting with the BillingAccount builders.
	BillingAccount *BillingAccountClient
	// CRMConnection is the client for interacting with the CRMConnection builders.
	CRMConnection *CRMConnectionClient
	// CallRecord is the client for interacting with the CallRecord builders.
	CallRecord *CallRecordClient
	// DeletedCall is the client for interacting with the DeletedCall builders.
	DeletedCall *DeletedCallClient
	// PhoneNumber is the client for interacting with the PhoneNumber builders.
	PhoneNumber *PhoneNumberClient
	// SyncRun is the client for interacting with the SyncRun builders.
	SyncRun *SyncRunClient
	// Tenant is the client for interacting with the Tenant builders.
	Tenant *TenantClient
	// UsageLedgerEntry is the client for interacting with the UsageLedgerEntry builders.
	UsageLedgerEntry *UsageLedgerEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.BillingAccount = NewBillingAccountClient(c.config)
	c.CRMConnection = NewCRMConnectionClient(c.config)
	c.CallRecord = NewCallRecordClient(c.config)
	c.DeletedCall = NewDeletedCallClient(c.config)
	c.PhoneNumber = NewPhoneNumberClient(c.config)
	c.SyncRun = NewSyncRunClient(c.config)
	c.Tenant = NewTenantClient(c.config)
	c.UsageLedgerEntry = NewUsageLedgerEntryClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Agent:            NewAgentClient(cfg),
		BillingAccount:   NewBillingAccountClient(cfg),
		CRMConnection:    NewCRMConnectionClient(cfg),
		CallRecord:       NewCallRecordClient(cfg),
		DeletedCall:      NewDeletedCallClient(cfg),
		PhoneNumber:      NewPhoneNumberClient(cfg),
		SyncRun:          NewSyncRunClient(cfg),
		Tenant:           NewTenantClient(cfg),
		UsageLedgerEntry: NewUsageLedgerEntryClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Agent:            NewAgentClient(cfg),
		BillingAccount:   NewBillingAccountClient(cfg),
		CRMConnection:    NewCRMConnectionClient(cfg),
		CallRecord:       NewCallRecordClient(cfg),
		DeletedCall:      NewDeletedCallClient(cfg),
		PhoneNumber:      NewPhoneNumberClient(cfg),
		SyncRun:          NewSyncRunClient(cfg),
		Tenant:           NewTenantClient(cfg),
		UsageLedgerEntry: NewUsageLedgerEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
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
		c.Agent, c.BillingAccount, c.CRMConnection, c.CallRecord, c.DeletedCall,
		c.PhoneNumber, c.SyncRun, c.Tenant, c.UsageLedgerEntry,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.BillingAccount, c.CRMConnection, c.CallRecord, c.DeletedCall,
		c.PhoneNumber, c.SyncRun, c.Tenant, c.UsageLedgerEntry,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *BillingAccountMutation:
		return c.BillingAccount.mutate(ctx, m)
	case *CRMConnectionMutation:
		return c.CRMConnection.mutate(ctx, m)
	case *CallRecordMutation:
		return c.CallRecord.mutate(ctx, m)
	case *DeletedCallMutation:
		return c.DeletedCall.mutate(ctx, m)
	case *PhoneNumberMutation:
		return c.PhoneNumber.mutate(ctx, m)
	case *SyncRunMutation:
		return c.SyncRun.mutate(ctx, m)
	case *TenantMutation:
		return c.Tenant.mutate(ctx, m)
	case *UsageLedgerEntryMutation:
		return c.UsageLedgerEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(a *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(a))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id int) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(a *Agent) *AgentDeleteOne {
	return c.DeleteOneID(a.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id int) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id int) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id int) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a Agent.
func (c *AgentClient) QueryTenant(a *Agent) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := a.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agent.TenantTable, agent.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(a.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPhoneNumbers queries the phone_numbers edge of a Agent.
func (c *AgentClient) QueryPhoneNumbers(a *Agent) *PhoneNumberQuery {
	query := (&PhoneNumberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := a.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(phonenumber.Table, phonenumber.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.PhoneNumbersTable, agent.PhoneNumbersColumn),
		)
		fromV = sqlgraph.Neighbors(a.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCallRecords queries the call_records edge of a Agent.
func (c *AgentClient) QueryCallRecords(a *Agent) *CallRecordQuery {
	query := (&CallRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := a.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(callrecord.Table, callrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.CallRecordsTable, agent.CallRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(a.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// BillingAccountClient is a client for the BillingAccount schema.
type BillingAccountClient struct {
	config
}

// NewBillingAccountClient returns a client for the BillingAccount from the given config.
func NewBillingAccountClient(c config) *BillingAccountClient {
	return &BillingAccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `billingaccount.Hooks(f(g(h())))`.
func (c *BillingAccountClient) Use(hooks ...Hook) {
	c.hooks.BillingAccount = append(c.hooks.BillingAccount, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `billingaccount.Intercept(f(g(h())))`.
func (c *BillingAccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.BillingAccount = append(c.inters.BillingAccount, interceptors...)
}

// Create returns a builder for creating a BillingAccount entity.
func (c *BillingAccountClient) Create() *BillingAccountCreate {
	mutation := newBillingAccountMutation(c.config, OpCreate)
	return &BillingAccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BillingAccount entities.
func (c *BillingAccountClient) CreateBulk(builders ...*BillingAccountCreate) *BillingAccountCreateBulk {
	return &BillingAccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BillingAccountClient) MapCreateBulk(slice any, setFunc func(*BillingAccountCreate, int)) *BillingAccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BillingAccountCreateBulk{err: fmt.Errorf("calling to BillingAccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BillingAccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BillingAccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BillingAccount.
func (c *BillingAccountClient) Update() *BillingAccountUpdate {
	mutation := newBillingAccountMutation(c.config, OpUpdate)
	return &BillingAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BillingAccountClient) UpdateOne(ba *BillingAccount) *BillingAccountUpdateOne {
	mutation := newBillingAccountMutation(c.config, OpUpdateOne, withBillingAccount(ba))
	return &BillingAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BillingAccountClient) UpdateOneID(id int) *BillingAccountUpdateOne {
	mutation := newBillingAccountMutation(c.config, OpUpdateOne, withBillingAccountID(id))
	return &BillingAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BillingAccount.
func (c *BillingAccountClient) Delete() *BillingAccountDelete {
	mutation := newBillingAccountMutation(c.config, OpDelete)
	return &BillingAccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BillingAccountClient) DeleteOne(ba *BillingAccount) *BillingAccountDeleteOne {
	return c.DeleteOneID(ba.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BillingAccountClient) DeleteOneID(id int) *BillingAccountDeleteOne {
	builder := c.Delete().Where(billingaccount.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BillingAccountDeleteOne{builder}
}

// Query returns a query builder for BillingAccount.
func (c *BillingAccountClient) Query() *BillingAccountQuery {
	return &BillingAccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBillingAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a BillingAccount entity by its id.
func (c *BillingAccountClient) Get(ctx context.Context, id int) (*BillingAccount, error) {
	return c.Query().Where(billingaccount.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BillingAccountClient) GetX(ctx context.Context, id int) *BillingAccount {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a BillingAccount.
func (c *BillingAccountClient) QueryTenant(ba *BillingAccount) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ba.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(billingaccount.Table, billingaccount.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, billingaccount.TenantTable, billingaccount.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(ba.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BillingAccountClient) Hooks() []Hook {
	return c.hooks.BillingAccount
}

// Interceptors returns the client interceptors.
func (c *BillingAccountClient) Interceptors() []Interceptor {
	return c.inters.BillingAccount
}

func (c *BillingAccountClient) mutate(ctx context.Context, m *BillingAccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BillingAccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BillingAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BillingAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BillingAccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BillingAccount mutation op: %q", m.Op())
	}
}

// CRMConnectionClient is a client for the CRMConnection schema.
type CRMConnectionClient struct {
	config
}

// NewCRMConnectionClient returns a client for the CRMConnection from the given config.
func NewCRMConnectionClient(c config) *CRMConnectionClient {
	return &CRMConnectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `crmconnection.Hooks(f(g(h())))`.
func (c *CRMConnectionClient) Use(hooks ...Hook) {
	c.hooks.CRMConnection = append(c.hooks.CRMConnection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `crmconnection.Intercept(f(g(h())))`.
func (c *CRMConnectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CRMConnection = append(c.inters.CRMConnection, interceptors...)
}

// Create returns a builder for creating a CRMConnection entity.
func (c *CRMConnectionClient) Create() *CRMConnectionCreate {
	mutation := newCRMConnectionMutation(c.config, OpCreate)
	return &CRMConnectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CRMConnection entities.
func (c *CRMConnectionClient) CreateBulk(builders ...*CRMConnectionCreate) *CRMConnectionCreateBulk {
	return &CRMConnectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CRMConnectionClient) MapCreateBulk(slice any, setFunc func(*CRMConnectionCreate, int)) *CRMConnectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CRMConnectionCreateBulk{err: fmt.Errorf("calling to CRMConnectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CRMConnectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CRMConnectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CRMConnection.
func (c *CRMConnectionClient) Update() *CRMConnectionUpdate {
	mutation := newCRMConnectionMutation(c.config, OpUpdate)
	return &CRMConnectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CRMConnectionClient) UpdateOne(cc *CRMConnection) *CRMConnectionUpdateOne {
	mutation := newCRMConnectionMutation(c.config, OpUpdateOne, withCRMConnection(cc))
	return &CRMConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CRMConnectionClient) UpdateOneID(id int) *CRMConnectionUpdateOne {
	mutation := newCRMConnectionMutation(c.config, OpUpdateOne, withCRMConnectionID(id))
	return &CRMConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CRMConnection.
func (c *CRMConnectionClient) Delete() *CRMConnectionDelete {
	mutation := newCRMConnectionMutation(c.config, OpDelete)
	return &CRMConnectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CRMConnectionClient) DeleteOne(cc *CRMConnection) *CRMConnectionDeleteOne {
	return c.DeleteOneID(cc.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CRMConnectionClient) DeleteOneID(id int) *CRMConnectionDeleteOne {
	builder := c.Delete().Where(crmconnection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CRMConnectionDeleteOne{builder}
}

// Query returns a query builder for CRMConnection.
func (c *CRMConnectionClient) Query() *CRMConnectionQuery {
	return &CRMConnectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCRMConnection},
		inters: c.Interceptors(),
	}
}

// Get returns a CRMConnection entity by its id.
func (c *CRMConnectionClient) Get(ctx context.Context, id int) (*CRMConnection, error) {
	return c.Query().Where(crmconnection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CRMConnectionClient) GetX(ctx context.Context, id int) *CRMConnection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a CRMConnection.
func (c *CRMConnectionClient) QueryTenant(cc *CRMConnection) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cc.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(crmconnection.Table, crmconnection.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, crmconnection.TenantTable, crmconnection.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(cc.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CRMConnectionClient) Hooks() []Hook {
	return c.hooks.CRMConnection
}

// Interceptors returns the client interceptors.
func (c *CRMConnectionClient) Interceptors() []Interceptor {
	return c.inters.CRMConnection
}

func (c *CRMConnectionClient) mutate(ctx context.Context, m *CRMConnectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CRMConnectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CRMConnectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CRMConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CRMConnectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CRMConnection mutation op: %q", m.Op())
	}
}

// CallRecordClient is a client for the CallRecord schema.
type CallRecordClient struct {
	config
}

// NewCallRecordClient returns a client for the CallRecord from the given config.
func NewCallRecordClient(c config) *CallRecordClient {
	return &CallRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `callrecord.Hooks(f(g(h())))`.
func (c *CallRecordClient) Use(hooks ...Hook) {
	c.hooks.CallRecord = append(c.hooks.CallRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `callrecord.Intercept(f(g(h())))`.
func (c *CallRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.CallRecord = append(c.inters.CallRecord, interceptors...)
}

// Create returns a builder for creating a CallRecord entity.
func (c *CallRecordClient) Create() *CallRecordCreate {
	mutation := newCallRecordMutation(c.config, OpCreate)
	return &CallRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CallRecord entities.
func (c *CallRecordClient) CreateBulk(builders ...*CallRecordCreate) *CallRecordCreateBulk {
	return &CallRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CallRecordClient) MapCreateBulk(slice any, setFunc func(*CallRecordCreate, int)) *CallRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CallRecordCreateBulk{err: fmt.Errorf("calling to CallRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CallRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CallRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CallRecord.
func (c *CallRecordClient) Update() *CallRecordUpdate {
	mutation := newCallRecordMutation(c.config, OpUpdate)
	return &CallRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CallRecordClient) UpdateOne(cr *CallRecord) *CallRecordUpdateOne {
	mutation := newCallRecordMutation(c.config, OpUpdateOne, withCallRecord(cr))
	return &CallRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CallRecordClient) UpdateOneID(id int) *CallRecordUpdateOne {
	mutation := newCallRecordMutation(c.config, OpUpdateOne, withCallRecordID(id))
	return &CallRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CallRecord.
func (c *CallRecordClient) Delete() *CallRecordDelete {
	mutation := newCallRecordMutation(c.config, OpDelete)
	return &CallRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CallRecordClient) DeleteOne(cr *CallRecord) *CallRecordDeleteOne {
	return c.DeleteOneID(cr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CallRecordClient) DeleteOneID(id int) *CallRecordDeleteOne {
	builder := c.Delete().Where(callrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CallRecordDeleteOne{builder}
}

// Query returns a query builder for CallRecord.
func (c *CallRecordClient) Query() *CallRecordQuery {
	return &CallRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCallRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a CallRecord entity by its id.
func (c *CallRecordClient) Get(ctx context.Context, id int) (*CallRecord, error) {
	return c.Query().Where(callrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CallRecordClient) GetX(ctx context.Context, id int) *CallRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a CallRecord.
func (c *CallRecordClient) QueryTenant(cr *CallRecord) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(callrecord.Table, callrecord.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, callrecord.TenantTable, callrecord.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(cr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgent queries the agent edge of a CallRecord.
func (c *CallRecordClient) QueryAgent(cr *CallRecord) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(callrecord.Table, callrecord.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, callrecord.AgentTable, callrecord.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(cr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPhoneNumber queries the phone_number edge of a CallRecord.
func (c *CallRecordClient) QueryPhoneNumber(cr *CallRecord) *PhoneNumberQuery {
	query := (&PhoneNumberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(callrecord.Table, callrecord.FieldID, id),
			sqlgraph.To(phonenumber.Table, phonenumber.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, callrecord.PhoneNumberTable, callrecord.PhoneNumberColumn),
		)
		fromV = sqlgraph.Neighbors(cr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUsageEntry queries the usage_entry edge of a CallRecord.
func (c *CallRecordClient) QueryUsageEntry(cr *CallRecord) *UsageLedgerEntryQuery {
	query := (&UsageLedgerEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(callrecord.Table, callrecord.FieldID, id),
			sqlgraph.To(usageledgerentry.Table, usageledgerentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, callrecord.UsageEntryTable, callrecord.UsageEntryColumn),
		)
		fromV = sqlgraph.Neighbors(cr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CallRecordClient) Hooks() []Hook {
	return c.hooks.CallRecord
}

// Interceptors returns the client interceptors.
func (c *CallRecordClient) Interceptors() []Interceptor {
	return c.inters.CallRecord
}

func (c *CallRecordClient) mutate(ctx context.Context, m *CallRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CallRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CallRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CallRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CallRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CallRecord mutation op: %q", m.Op())
	}
}

// DeletedCallClient is a client for the DeletedCall schema.
type DeletedCallClient struct {
	config
}

// NewDeletedCallClient returns a client for the DeletedCall from the given config.
func NewDeletedCallClient(c config) *DeletedCallClient {
	return &DeletedCallClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deletedcall.Hooks(f(g(h())))`.
func (c *DeletedCallClient) Use(hooks ...Hook) {
	c.hooks.DeletedCall = append(c.hooks.DeletedCall, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deletedcall.Intercept(f(g(h())))`.
func (c *DeletedCallClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeletedCall = append(c.inters.DeletedCall, interceptors...)
}

// Create returns a builder for creating a DeletedCall entity.
func (c *DeletedCallClient) Create() *DeletedCallCreate {
	mutation := newDeletedCallMutation(c.config, OpCreate)
	return &DeletedCallCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeletedCall entities.
func (c *DeletedCallClient) CreateBulk(builders ...*DeletedCallCreate) *DeletedCallCreateBulk {
	return &DeletedCallCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeletedCallClient) MapCreateBulk(slice any, setFunc func(*DeletedCallCreate, int)) *DeletedCallCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeletedCallCreateBulk{err: fmt.Errorf("calling to DeletedCallClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeletedCallCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeletedCallCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeletedCall.
func (c *DeletedCallClient) Update() *DeletedCallUpdate {
	mutation := newDeletedCallMutation(c.config, OpUpdate)
	return &DeletedCallUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeletedCallClient) UpdateOne(dc *DeletedCall) *DeletedCallUpdateOne {
	mutation := newDeletedCallMutation(c.config, OpUpdateOne, withDeletedCall(dc))
	return &DeletedCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeletedCallClient) UpdateOneID(id int) *DeletedCallUpdateOne {
	mutation := newDeletedCallMutation(c.config, OpUpdateOne, withDeletedCallID(id))
	return &DeletedCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeletedCall.
func (c *DeletedCallClient) Delete() *DeletedCallDelete {
	mutation := newDeletedCallMutation(c.config, OpDelete)
	return &DeletedCallDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeletedCallClient) DeleteOne(dc *DeletedCall) *DeletedCallDeleteOne {
	return c.DeleteOneID(dc.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeletedCallClient) DeleteOneID(id int) *DeletedCallDeleteOne {
	builder := c.Delete().Where(deletedcall.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeletedCallDeleteOne{builder}
}

// Query returns a query builder for DeletedCall.
func (c *DeletedCallClient) Query() *DeletedCallQuery {
	return &DeletedCallQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeletedCall},
		inters: c.Interceptors(),
	}
}

// Get returns a DeletedCall entity by its id.
func (c *DeletedCallClient) Get(ctx context.Context, id int) (*DeletedCall, error) {
	return c.Query().Where(deletedcall.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeletedCallClient) GetX(ctx context.Context, id int) *DeletedCall {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeletedCallClient) Hooks() []Hook {
	return c.hooks.DeletedCall
}

// Interceptors returns the client interceptors.
func (c *DeletedCallClient) Interceptors() []Interceptor {
	return c.inters.DeletedCall
}

func (c *DeletedCallClient) mutate(ctx context.Context, m *DeletedCallMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeletedCallCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeletedCallUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeletedCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeletedCallDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeletedCall mutation op: %q", m.Op())
	}
}

// PhoneNumberClient is a client for the PhoneNumber schema.
type PhoneNumberClient struct {
	config
}

// NewPhoneNumberClient returns a client for the PhoneNumber from the given config.
func NewPhoneNumberClient(c config) *PhoneNumberClient {
	return &PhoneNumberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `phonenumber.Hooks(f(g(h())))`.
func (c *PhoneNumberClient) Use(hooks ...Hook) {
	c.hooks.PhoneNumber = append(c.hooks.PhoneNumber, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `phonenumber.Intercept(f(g(h())))`.
func (c *PhoneNumberClient) Intercept(interceptors ...Interceptor) {
	c.inters.PhoneNumber = append(c.inters.PhoneNumber, interceptors...)
}

// Create returns a builder for creating a PhoneNumber entity.
func (c *PhoneNumberClient) Create() *PhoneNumberCreate {
	mutation := newPhoneNumberMutation(c.config, OpCreate)
	return &PhoneNumberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PhoneNumber entities.
func (c *PhoneNumberClient) CreateBulk(builders ...*PhoneNumberCreate) *PhoneNumberCreateBulk {
	return &PhoneNumberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PhoneNumberClient) MapCreateBulk(slice any, setFunc func(*PhoneNumberCreate, int)) *PhoneNumberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PhoneNumberCreateBulk{err: fmt.Errorf("calling to PhoneNumberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PhoneNumberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PhoneNumberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PhoneNumber.
func (c *PhoneNumberClient) Update() *PhoneNumberUpdate {
	mutation := newPhoneNumberMutation(c.config, OpUpdate)
	return &PhoneNumberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PhoneNumberClient) UpdateOne(pn *PhoneNumber) *PhoneNumberUpdateOne {
	mutation := newPhoneNumberMutation(c.config, OpUpdateOne, withPhoneNumber(pn))
	return &PhoneNumberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PhoneNumberClient) UpdateOneID(id int) *PhoneNumberUpdateOne {
	mutation := newPhoneNumberMutation(c.config, OpUpdateOne, withPhoneNumberID(id))
	return &PhoneNumberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PhoneNumber.
func (c *PhoneNumberClient) Delete() *PhoneNumberDelete {
	mutation := newPhoneNumberMutation(c.config, OpDelete)
	return &PhoneNumberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PhoneNumberClient) DeleteOne(pn *PhoneNumber) *PhoneNumberDeleteOne {
	return c.DeleteOneID(pn.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PhoneNumberClient) DeleteOneID(id int) *PhoneNumberDeleteOne {
	builder := c.Delete().Where(phonenumber.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PhoneNumberDeleteOne{builder}
}

// Query returns a query builder for PhoneNumber.
func (c *PhoneNumberClient) Query() *PhoneNumberQuery {
	return &PhoneNumberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePhoneNumber},
		inters: c.Interceptors(),
	}
}

// Get returns a PhoneNumber entity by its id.
func (c *PhoneNumberClient) Get(ctx context.Context, id int) (*PhoneNumber, error) {
	return c.Query().Where(phonenumber.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PhoneNumberClient) GetX(ctx context.Context, id int) *PhoneNumber {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a PhoneNumber.
func (c *PhoneNumberClient) QueryTenant(pn *PhoneNumber) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := pn.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(phonenumber.Table, phonenumber.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, phonenumber.TenantTable, phonenumber.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(pn.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgent queries the agent edge of a PhoneNumber.
func (c *PhoneNumberClient) QueryAgent(pn *PhoneNumber) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := pn.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(phonenumber.Table, phonenumber.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, phonenumber.AgentTable, phonenumber.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(pn.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCallRecords queries the call_records edge of a PhoneNumber.
func (c *PhoneNumberClient) QueryCallRecords(pn *PhoneNumber) *CallRecordQuery {
	query := (&CallRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := pn.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(phonenumber.Table, phonenumber.FieldID, id),
			sqlgraph.To(callrecord.Table, callrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, phonenumber.CallRecordsTable, phonenumber.CallRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(pn.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PhoneNumberClient) Hooks() []Hook {
	return c.hooks.PhoneNumber
}

// Interceptors returns the client interceptors.
func (c *PhoneNumberClient) Interceptors() []Interceptor {
	return c.inters.PhoneNumber
}

func (c *PhoneNumberClient) mutate(ctx context.Context, m *PhoneNumberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PhoneNumberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PhoneNumberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PhoneNumberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PhoneNumberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PhoneNumber mutation op: %q", m.Op())
	}
}

// SyncRunClient is a client for the SyncRun schema.
type SyncRunClient struct {
	config
}

// NewSyncRunClient returns a client for the SyncRun from the given config.
func NewSyncRunClient(c config) *SyncRunClient {
	return &SyncRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `syncrun.Hooks(f(g(h())))`.
func (c *SyncRunClient) Use(hooks ...Hook) {
	c.hooks.SyncRun = append(c.hooks.SyncRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `syncrun.Intercept(f(g(h())))`.
func (c *SyncRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.SyncRun = append(c.inters.SyncRun, interceptors...)
}

// Create returns a builder for creating a SyncRun entity.
func (c *SyncRunClient) Create() *SyncRunCreate {
	mutation := newSyncRunMutation(c.config, OpCreate)
	return &SyncRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SyncRun entities.
func (c *SyncRunClient) CreateBulk(builders ...*SyncRunCreate) *SyncRunCreateBulk {
	return &SyncRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SyncRunClient) MapCreateBulk(slice any, setFunc func(*SyncRunCreate, int)) *SyncRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SyncRunCreateBulk{err: fmt.Errorf("calling to SyncRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SyncRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SyncRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SyncRun.
func (c *SyncRunClient) Update() *SyncRunUpdate {
	mutation := newSyncRunMutation(c.config, OpUpdate)
	return &SyncRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SyncRunClient) UpdateOne(sr *SyncRun) *SyncRunUpdateOne {
	mutation := newSyncRunMutation(c.config, OpUpdateOne, withSyncRun(sr))
	return &SyncRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SyncRunClient) UpdateOneID(id int) *SyncRunUpdateOne {
	mutation := newSyncRunMutation(c.config, OpUpdateOne, withSyncRunID(id))
	return &SyncRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SyncRun.
func (c *SyncRunClient) Delete() *SyncRunDelete {
	mutation := newSyncRunMutation(c.config, OpDelete)
	return &SyncRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SyncRunClient) DeleteOne(sr *SyncRun) *SyncRunDeleteOne {
	return c.DeleteOneID(sr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SyncRunClient) DeleteOneID(id int) *SyncRunDeleteOne {
	builder := c.Delete().Where(syncrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SyncRunDeleteOne{builder}
}

// Query returns a query builder for SyncRun.
func (c *SyncRunClient) Query() *SyncRunQuery {
	return &SyncRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSyncRun},
		inters: c.Interceptors(),
	}
}

// Get returns a SyncRun entity by its id.
func (c *SyncRunClient) Get(ctx context.Context, id int) (*SyncRun, error) {
	return c.Query().Where(syncrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SyncRunClient) GetX(ctx context.Context, id int) *SyncRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a SyncRun.
func (c *SyncRunClient) QueryTenant(sr *SyncRun) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := sr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(syncrun.Table, syncrun.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, syncrun.TenantTable, syncrun.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(sr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SyncRunClient) Hooks() []Hook {
	return c.hooks.SyncRun
}

// Interceptors returns the client interceptors.
func (c *SyncRunClient) Interceptors() []Interceptor {
	return c.inters.SyncRun
}

func (c *SyncRunClient) mutate(ctx context.Context, m *SyncRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SyncRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SyncRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SyncRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SyncRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SyncRun mutation op: %q", m.Op())
	}
}

// TenantClient is a client for the Tenant schema.
type TenantClient struct {
	config
}

// NewTenantClient returns a client for the Tenant from the given config.
func NewTenantClient(c config) *TenantClient {
	return &TenantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tenant.Hooks(f(g(h())))`.
func (c *TenantClient) Use(hooks ...Hook) {
	c.hooks.Tenant = append(c.hooks.Tenant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tenant.Intercept(f(g(h())))`.
func (c *TenantClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tenant = append(c.inters.Tenant, interceptors...)
}

// Create returns a builder for creating a Tenant entity.
func (c *TenantClient) Create() *TenantCreate {
	mutation := newTenantMutation(c.config, OpCreate)
	return &TenantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tenant entities.
func (c *TenantClient) CreateBulk(builders ...*TenantCreate) *TenantCreateBulk {
	return &TenantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TenantClient) MapCreateBulk(slice any, setFunc func(*TenantCreate, int)) *TenantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TenantCreateBulk{err: fmt.Errorf("calling to TenantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TenantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TenantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tenant.
func (c *TenantClient) Update() *TenantUpdate {
	mutation := newTenantMutation(c.config, OpUpdate)
	return &TenantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TenantClient) UpdateOne(t *Tenant) *TenantUpdateOne {
	mutation := newTenantMutation(c.config, OpUpdateOne, withTenant(t))
	return &TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TenantClient) UpdateOneID(id int) *TenantUpdateOne {
	mutation := newTenantMutation(c.config, OpUpdateOne, withTenantID(id))
	return &TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tenant.
func (c *TenantClient) Delete() *TenantDelete {
	mutation := newTenantMutation(c.config, OpDelete)
	return &TenantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TenantClient) DeleteOne(t *Tenant) *TenantDeleteOne {
	return c.DeleteOneID(t.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TenantClient) DeleteOneID(id int) *TenantDeleteOne {
	builder := c.Delete().Where(tenant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TenantDeleteOne{builder}
}

// Query returns a query builder for Tenant.
func (c *TenantClient) Query() *TenantQuery {
	return &TenantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTenant},
		inters: c.Interceptors(),
	}
}

// Get returns a Tenant entity by its id.
func (c *TenantClient) Get(ctx context.Context, id int) (*Tenant, error) {
	return c.Query().Where(tenant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TenantClient) GetX(ctx context.Context, id int) *Tenant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCrmConnection queries the crm_connection edge of a Tenant.
func (c *TenantClient) QueryCrmConnection(t *Tenant) *CRMConnectionQuery {
	query := (&CRMConnectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := t.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(crmconnection.Table, crmconnection.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, tenant.CrmConnectionTable, tenant.CrmConnectionColumn),
		)
		fromV = sqlgraph.Neighbors(t.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBillingAccount queries the billing_account edge of a Tenant.
func (c *TenantClient) QueryBillingAccount(t *Tenant) *BillingAccountQuery {
	query := (&BillingAccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := t.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(billingaccount.Table, billingaccount.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, tenant.BillingAccountTable, tenant.BillingAccountColumn),
		)
		fromV = sqlgraph.Neighbors(t.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgents queries the agents edge of a Tenant.
func (c *TenantClient) QueryAgents(t *Tenant) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := t.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.AgentsTable, tenant.AgentsColumn),
		)
		fromV = sqlgraph.Neighbors(t.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPhoneNumbers queries the phone_numbers edge of a Tenant.
func (c *TenantClient) QueryPhoneNumbers(t *Tenant) *PhoneNumberQuery {
	query := (&PhoneNumberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := t.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(phonenumber.Table, phonenumber.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.PhoneNumbersTable, tenant.PhoneNumbersColumn),
		)
		fromV = sqlgraph.Neighbors(t.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCallRecords queries the call_records edge of a Tenant.
func (c *TenantClient) QueryCallRecords(t *Tenant) *CallRecordQuery {
	query := (&CallRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := t.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(callrecord.Table, callrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.CallRecordsTable, tenant.CallRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(t.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySyncRuns queries the sync_runs edge of a Tenant.
func (c *TenantClient) QuerySyncRuns(t *Tenant) *SyncRunQuery {
	query := (&SyncRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := t.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(syncrun.Table, syncrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.SyncRunsTable, tenant.SyncRunsColumn),
		)
		fromV = sqlgraph.Neighbors(t.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TenantClient) Hooks() []Hook {
	return c.hooks.Tenant
}

// Interceptors returns the client interceptors.
func (c *TenantClient) Interceptors() []Interceptor {
	return c.inters.Tenant
}

func (c *TenantClient) mutate(ctx context.Context, m *TenantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TenantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TenantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TenantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Tenant mutation op: %q", m.Op())
	}
}

// UsageLedgerEntryClient is a client for the UsageLedgerEntry schema.
type UsageLedgerEntryClient struct {
	config
}

// NewUsageLedgerEntryClient returns a client for the UsageLedgerEntry from the given config.
func NewUsageLedgerEntryClient(c config) *UsageLedgerEntryClient {
	return &UsageLedgerEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usageledgerentry.Hooks(f(g(h())))`.
func (c *UsageLedgerEntryClient) Use(hooks ...Hook) {
	c.hooks.UsageLedgerEntry = append(c.hooks.UsageLedgerEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usageledgerentry.Intercept(f(g(h())))`.
func (c *UsageLedgerEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.UsageLedgerEntry = append(c.inters.UsageLedgerEntry, interceptors...)
}

// Create returns a builder for creating a UsageLedgerEntry entity.
func (c *UsageLedgerEntryClient) Create() *UsageLedgerEntryCreate {
	mutation := newUsageLedgerEntryMutation(c.config, OpCreate)
	return &UsageLedgerEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UsageLedgerEntry entities.
func (c *UsageLedgerEntryClient) CreateBulk(builders ...*UsageLedgerEntryCreate) *UsageLedgerEntryCreateBulk {
	return &UsageLedgerEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsageLedgerEntryClient) MapCreateBulk(slice any, setFunc func(*UsageLedgerEntryCreate, int)) *UsageLedgerEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsageLedgerEntryCreateBulk{err: fmt.Errorf("calling to UsageLedgerEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsageLedgerEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsageLedgerEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UsageLedgerEntry.
func (c *UsageLedgerEntryClient) Update() *UsageLedgerEntryUpdate {
	mutation := newUsageLedgerEntryMutation(c.config, OpUpdate)
	return &UsageLedgerEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsageLedgerEntryClient) UpdateOne(ule *UsageLedgerEntry) *UsageLedgerEntryUpdateOne {
	mutation := newUsageLedgerEntryMutation(c.config, OpUpdateOne, withUsageLedgerEntry(ule))
	return &UsageLedgerEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsageLedgerEntryClient) UpdateOneID(id int) *UsageLedgerEntryUpdateOne {
	mutation := newUsageLedgerEntryMutation(c.config, OpUpdateOne, withUsageLedgerEntryID(id))
	return &UsageLedgerEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UsageLedgerEntry.
func (c *UsageLedgerEntryClient) Delete() *UsageLedgerEntryDelete {
	mutation := newUsageLedgerEntryMutation(c.config, OpDelete)
	return &UsageLedgerEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsageLedgerEntryClient) DeleteOne(ule *UsageLedgerEntry) *UsageLedgerEntryDeleteOne {
	return c.DeleteOneID(ule.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsageLedgerEntryClient) DeleteOneID(id int) *UsageLedgerEntryDeleteOne {
	builder := c.Delete().Where(usageledgerentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsageLedgerEntryDeleteOne{builder}
}

// Query returns a query builder for UsageLedgerEntry.
func (c *UsageLedgerEntryClient) Query() *UsageLedgerEntryQuery {
	return &UsageLedgerEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsageLedgerEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a UsageLedgerEntry entity by its id.
func (c *UsageLedgerEntryClient) Get(ctx context.Context, id int) (*UsageLedgerEntry, error) {
	return c.Query().Where(usageledgerentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsageLedgerEntryClient) GetX(ctx context.Context, id int) *UsageLedgerEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCallRecord queries the call_record edge of a UsageLedgerEntry.
func (c *UsageLedgerEntryClient) QueryCallRecord(ule *UsageLedgerEntry) *CallRecordQuery {
	query := (&CallRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ule.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usageledgerentry.Table, usageledgerentry.FieldID, id),
			sqlgraph.To(callrecord.Table, callrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, usageledgerentry.CallRecordTable, usageledgerentry.CallRecordColumn),
		)
		fromV = sqlgraph.Neighbors(ule.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UsageLedgerEntryClient) Hooks() []Hook {
	return c.hooks.UsageLedgerEntry
}

// Interceptors returns the client interceptors.
func (c *UsageLedgerEntryClient) Interceptors() []Interceptor {
	return c.inters.UsageLedgerEntry
}

func (c *UsageLedgerEntryClient) mutate(ctx context.Context, m *UsageLedgerEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsageLedgerEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsageLedgerEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsageLedgerEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsageLedgerEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UsageLedgerEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, BillingAccount, CRMConnection, CallRecord, DeletedCall, PhoneNumber,
		SyncRun, Tenant, UsageLedgerEntry []ent.Hook
	}
	inters struct {
		Agent, BillingAccount, CRMConnection, CallRecord, DeletedCall, PhoneNumber,
		SyncRun, Tenant, UsageLedgerEntry []ent.Interceptor
	}
)
