// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringledger/ringledger/ent/agent"
	"github.com/ringledger/ringledger/ent/callrecord"
	"github.com/ringledger/ringledger/ent/phonenumber"
	"github.com/ringledger/ringledger/ent/predicate"
	"github.com/ringledger/ringledger/ent/tenant"
	"github.com/ringledger/ringledger/ent/usageledgerentry"
)

// CallRecordQuery is the builder for querying CallRecord entities.
type CallRecordQuery struct {
	config
	ctx             *QueryContext
	order           []callrecord.OrderOption
	inters          []Interceptor
	predicates      []predicate.CallRecord
	withTenant      *TenantQuery
	withAgent       *AgentQuery
	withPhoneNumber *PhoneNumberQuery
	withUsageEntry  *UsageLedgerEntryQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CallRecordQuery builder.
func (crq *CallRecordQuery) Where(ps ...predicate.CallRecord) *CallRecordQuery {
	crq.predicates = append(crq.predicates, ps...)
	return crq
}

// Limit the number of records to be returned by this query.
func (crq *CallRecordQuery) Limit(limit int) *CallRecordQuery {
	crq.ctx.Limit = &limit
	return crq
}

// Offset to start from.
func (crq *CallRecordQuery) Offset(offset int) *CallRecordQuery {
	crq.ctx.Offset = &offset
	return crq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (crq *CallRecordQuery) Unique(unique bool) *CallRecordQuery {
	crq.ctx.Unique = &unique
	return crq
}

// Order specifies how the records should be ordered.
func (crq *CallRecordQuery) Order(o ...callrecord.OrderOption) *CallRecordQuery {
	crq.order = append(crq.order, o...)
	return crq
}

// QueryTenant chains the current query on the "tenant" edge.
func (crq *CallRecordQuery) QueryTenant() *TenantQuery {
	query := (&TenantClient{config: crq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := crq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := crq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(callrecord.Table, callrecord.FieldID, selector),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, callrecord.TenantTable, callrecord.TenantColumn),
		)
		fromU = sqlgraph.SetNeighbors(crq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAgent chains the current query on the "agent" edge.
func (crq *CallRecordQuery) QueryAgent() *AgentQuery {
	query := (&AgentClient{config: crq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := crq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := crq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(callrecord.Table, callrecord.FieldID, selector),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, callrecord.AgentTable, callrecord.AgentColumn),
		)
		fromU = sqlgraph.SetNeighbors(crq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPhoneNumber chains the current query on the "phone_number" edge.
func (crq *CallRecordQuery) QueryPhoneNumber() *PhoneNumberQuery {
	query := (&PhoneNumberClient{config: crq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := crq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := crq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(callrecord.Table, callrecord.FieldID, selector),
			sqlgraph.To(phonenumber.Table, phonenumber.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, callrecord.PhoneNumberTable, callrecord.PhoneNumberColumn),
		)
		fromU = sqlgraph.SetNeighbors(crq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUsageEntry chains the current query on the "usage_entry" edge.
func (crq *CallRecordQuery) QueryUsageEntry() *UsageLedgerEntryQuery {
	query := (&UsageLedgerEntryClient{config: crq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := crq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := crq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(callrecord.Table, callrecord.FieldID, selector),
			sqlgraph.To(usageledgerentry.Table, usageledgerentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, callrecord.UsageEntryTable, callrecord.UsageEntryColumn),
		)
		fromU = sqlgraph.SetNeighbors(crq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CallRecord entity from the query.
// Returns a *NotFoundError when no CallRecord was found.
func (crq *CallRecordQuery) First(ctx context.Context) (*CallRecord, error) {
	nodes, err := crq.Limit(1).All(setContextOp(ctx, crq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{callrecord.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (crq *CallRecordQuery) FirstX(ctx context.Context) *CallRecord {
	node, err := crq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CallRecord ID from the query.
// Returns a *NotFoundError when no CallRecord ID was found.
func (crq *CallRecordQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = crq.Limit(1).IDs(setContextOp(ctx, crq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{callrecord.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (crq *CallRecordQuery) FirstIDX(ctx context.Context) int {
	id, err := crq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CallRecord entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CallRecord entity is found.
// Returns a *NotFoundError when no CallRecord entities are found.
func (crq *CallRecordQuery) Only(ctx context.Context) (*CallRecord, error) {
	nodes, err := crq.Limit(2).All(setContextOp(ctx, crq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{callrecord.Label}
	default:
		return nil, &NotSingularError{callrecord.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (crq *CallRecordQuery) OnlyX(ctx context.Context) *CallRecord {
	node, err := crq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CallRecord ID in the query.
// Returns a *NotSingularError when more than one CallRecord ID is found.
// Returns a *NotFoundError when no entities are found.
func (crq *CallRecordQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = crq.Limit(2).IDs(setContextOp(ctx, crq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{callrecord.Label}
	default:
		err = &NotSingularError{callrecord.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (crq *CallRecordQuery) OnlyIDX(ctx context.Context) int {
	id, err := crq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CallRecords.
func (crq *CallRecordQuery) All(ctx context.Context) ([]*CallRecord, error) {
	ctx = setContextOp(ctx, crq.ctx, ent.OpQueryAll)
	if err := crq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CallRecord, *CallRecordQuery]()
	return withInterceptors[[]*CallRecord](ctx, crq, qr, crq.inters)
}

// AllX is like All, but panics if an error occurs.
func (crq *CallRecordQuery) AllX(ctx context.Context) []*CallRecord {
	nodes, err := crq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CallRecord IDs.
func (crq *CallRecordQuery) IDs(ctx context.Context) (ids []int, err error) {
	if crq.ctx.Unique == nil && crq.path != nil {
		crq.Unique(true)
	}
	ctx = setContextOp(ctx, crq.ctx, ent.OpQueryIDs)
	if err = crq.Select(callrecord.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (crq *CallRecordQuery) IDsX(ctx context.Context) []int {
	ids, err := crq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (crq *CallRecordQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, crq.ctx, ent.OpQueryCount)
	if err := crq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, crq, querierCount[*CallRecordQuery](), crq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (crq *CallRecordQuery) CountX(ctx context.Context) int {
	count, err := crq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (crq *CallRecordQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, crq.ctx, ent.OpQueryExist)
	switch _, err := crq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (crq *CallRecordQuery) ExistX(ctx context.Context) bool {
	exist, err := crq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CallRecordQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (crq *CallRecordQuery) Clone() *CallRecordQuery {
	if crq == nil {
		return nil
	}
	return &CallRecordQuery{
		config:          crq.config,
		ctx:             crq.ctx.Clone(),
		order:           append([]callrecord.OrderOption{}, crq.order...),
		inters:          append([]Interceptor{}, crq.inters...),
		predicates:      append([]predicate.CallRecord{}, crq.predicates...),
		withTenant:      crq.withTenant.Clone(),
		withAgent:       crq.withAgent.Clone(),
		withPhoneNumber: crq.withPhoneNumber.Clone(),
		withUsageEntry:  crq.withUsageEntry.Clone(),
		// clone intermediate query.
		sql:  crq.sql.Clone(),
		path: crq.path,
	}
}

// WithTenant tells the query-builder to eager-load the nodes that are connected to
// the "tenant" edge. The optional arguments are used to configure the query builder of the edge.
func (crq *CallRecordQuery) WithTenant(opts ...func(*TenantQuery)) *CallRecordQuery {
	query := (&TenantClient{config: crq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	crq.withTenant = query
	return crq
}

// WithAgent tells the query-builder to eager-load the nodes that are connected to
// the "agent" edge. The optional arguments are used to configure the query builder of the edge.
func (crq *CallRecordQuery) WithAgent(opts ...func(*AgentQuery)) *CallRecordQuery {
	query := (&AgentClient{config: crq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	crq.withAgent = query
	return crq
}

// WithPhoneNumber tells the query-builder to eager-load the nodes that are connected to
// the "phone_number" edge. The optional arguments are used to configure the query builder of the edge.
func (crq *CallRecordQuery) WithPhoneNumber(opts ...func(*PhoneNumberQuery)) *CallRecordQuery {
	query := (&PhoneNumberClient{config: crq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	crq.withPhoneNumber = query
	return crq
}

// WithUsageEntry tells the query-builder to eager-load the nodes that are connected to
// the "usage_entry" edge. The optional arguments are used to configure the query builder of the edge.
func (crq *CallRecordQuery) WithUsageEntry(opts ...func(*UsageLedgerEntryQuery)) *CallRecordQuery {
	query := (&UsageLedgerEntryClient{config: crq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	crq.withUsageEntry = query
	return crq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TenantID int `json:"tenant_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CallRecord.Query().
//		GroupBy(callrecord.FieldTenantID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (crq *CallRecordQuery) GroupBy(field string, fields ...string) *CallRecordGroupBy {
	crq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CallRecordGroupBy{build: crq}
	grbuild.flds = &crq.ctx.Fields
	grbuild.label = callrecord.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TenantID int `json:"tenant_id,omitempty"`
//	}
//
//	client.CallRecord.Query().
//		Select(callrecord.FieldTenantID).
//		Scan(ctx, &v)
func (crq *CallRecordQuery) Select(fields ...string) *CallRecordSelect {
	crq.ctx.Fields = append(crq.ctx.Fields, fields...)
	sbuild := &CallRecordSelect{CallRecordQuery: crq}
	sbuild.label = callrecord.Label
	sbuild.flds, sbuild.scan = &crq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CallRecordSelect configured with the given aggregations.
func (crq *CallRecordQuery) Aggregate(fns ...AggregateFunc) *CallRecordSelect {
	return crq.Select().Aggregate(fns...)
}

func (crq *CallRecordQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range crq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, crq); err != nil {
				return err
			}
		}
	}
	for _, f := range crq.ctx.Fields {
		if !callrecord.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if crq.path != nil {
		prev, err := crq.path(ctx)
		if err != nil {
			return err
		}
		crq.sql = prev
	}
	return nil
}

func (crq *CallRecordQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CallRecord, error) {
	var (
		nodes       = []*CallRecord{}
		_spec       = crq.querySpec()
		loadedTypes = [4]bool{
			crq.withTenant != nil,
			crq.withAgent != nil,
			crq.withPhoneNumber != nil,
			crq.withUsageEntry != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CallRecord).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CallRecord{config: crq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, crq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := crq.withTenant; query != nil {
		if err := crq.loadTenant(ctx, query, nodes, nil,
			func(n *CallRecord, e *Tenant) { n.Edges.Tenant = e }); err != nil {
			return nil, err
		}
	}
	if query := crq.withAgent; query != nil {
		if err := crq.loadAgent(ctx, query, nodes, nil,
			func(n *CallRecord, e *Agent) { n.Edges.Agent = e }); err != nil {
			return nil, err
		}
	}
	if query := crq.withPhoneNumber; query != nil {
		if err := crq.loadPhoneNumber(ctx, query, nodes, nil,
			func(n *CallRecord, e *PhoneNumber) { n.Edges.PhoneNumber = e }); err != nil {
			return nil, err
		}
	}
	if query := crq.withUsageEntry; query != nil {
		if err := crq.loadUsageEntry(ctx, query, nodes, nil,
			func(n *CallRecord, e *UsageLedgerEntry) { n.Edges.UsageEntry = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (crq *CallRecordQuery) loadTenant(ctx context.Context, query *TenantQuery, nodes []*CallRecord, init func(*CallRecord), assign func(*CallRecord, *Tenant)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*CallRecord)
	for i := range nodes {
		fk := nodes[i].TenantID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(tenant.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "tenant_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (crq *CallRecordQuery) loadAgent(ctx context.Context, query *AgentQuery, nodes []*CallRecord, init func(*CallRecord), assign func(*CallRecord, *Agent)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*CallRecord)
	for i := range nodes {
		if nodes[i].AgentID == nil {
			continue
		}
		fk := *nodes[i].AgentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(agent.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "agent_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (crq *CallRecordQuery) loadPhoneNumber(ctx context.Context, query *PhoneNumberQuery, nodes []*CallRecord, init func(*CallRecord), assign func(*CallRecord, *PhoneNumber)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*CallRecord)
	for i := range nodes {
		if nodes[i].PhoneNumberID == nil {
			continue
		}
		fk := *nodes[i].PhoneNumberID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(phonenumber.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "phone_number_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (crq *CallRecordQuery) loadUsageEntry(ctx context.Context, query *UsageLedgerEntryQuery, nodes []*CallRecord, init func(*CallRecord), assign func(*CallRecord, *UsageLedgerEntry)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*CallRecord)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(usageledgerentry.FieldCallRecordID)
	}
	query.Where(predicate.UsageLedgerEntry(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(callrecord.UsageEntryColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CallRecordID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "call_record_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (crq *CallRecordQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := crq.querySpec()
	_spec.Node.Columns = crq.ctx.Fields
	if len(crq.ctx.Fields) > 0 {
		_spec.Unique = crq.ctx.Unique != nil && *crq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, crq.driver, _spec)
}

func (crq *CallRecordQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(callrecord.Table, callrecord.Columns, sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeInt))
	_spec.From = crq.sql
	if unique := crq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if crq.path != nil {
		_spec.Unique = true
	}
	if fields := crq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, callrecord.FieldID)
		for i := range fields {
			if fields[i] != callrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if crq.withTenant != nil {
			_spec.Node.AddColumnOnce(callrecord.FieldTenantID)
		}
		if crq.withAgent != nil {
			_spec.Node.AddColumnOnce(callrecord.FieldAgentID)
		}
		if crq.withPhoneNumber != nil {
			_spec.Node.AddColumnOnce(callrecord.FieldPhoneNumberID)
		}
	}
	if ps := crq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := crq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := crq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := crq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (crq *CallRecordQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(crq.driver.Dialect())
	t1 := builder.Table(callrecord.Table)
	columns := crq.ctx.Fields
	if len(columns) == 0 {
		columns = callrecord.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if crq.sql != nil {
		selector = crq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if crq.ctx.Unique != nil && *crq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range crq.predicates {
		p(selector)
	}
	for _, p := range crq.order {
		p(selector)
	}
	if offset := crq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := crq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// CallRecordGroupBy is the group-by builder for CallRecord entities.
type CallRecordGroupBy struct {
	selector
	build *CallRecordQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (crgb *CallRecordGroupBy) Aggregate(fns ...AggregateFunc) *CallRecordGroupBy {
	crgb.fns = append(crgb.fns, fns...)
	return crgb
}

// Scan applies the selector query and scans the result into the given value.
func (crgb *CallRecordGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, crgb.build.ctx, ent.OpQueryGroupBy)
	if err := crgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CallRecordQuery, *CallRecordGroupBy](ctx, crgb.build, crgb, crgb.build.inters, v)
}

func (crgb *CallRecordGroupBy) sqlScan(ctx context.Context, root *CallRecordQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(crgb.fns))
	for _, fn := range crgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*crgb.flds)+len(crgb.fns))
		for _, f := range *crgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*crgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := crgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CallRecordSelect is the builder for selecting fields of CallRecord entities.
type CallRecordSelect struct {
	*CallRecordQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (crs *CallRecordSelect) Aggregate(fns ...AggregateFunc) *CallRecordSelect {
	crs.fns = append(crs.fns, fns...)
	return crs
}

// Scan applies the selector query and scans the result into the given value.
func (crs *CallRecordSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, crs.ctx, ent.OpQuerySelect)
	if err := crs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CallRecordQuery, *CallRecordSelect](ctx, crs.CallRecordQuery, crs, crs.inters, v)
}

func (crs *CallRecordSelect) sqlScan(ctx context.Context, root *CallRecordQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(crs.fns))
	for _, fn := range crs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*crs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := crs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
