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
)

// PhoneNumberQuery is the builder for querying PhoneNumber entities.
type PhoneNumberQuery struct {
	config
	ctx             *QueryContext
	order           []phonenumber.OrderOption
	inters          []Interceptor
	predicates      []predicate.PhoneNumber
	withTenant      *TenantQuery
	withAgent       *AgentQuery
	withCallRecords *CallRecordQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PhoneNumberQuery builder.
func (pnq *PhoneNumberQuery) Where(ps ...predicate.PhoneNumber) *PhoneNumberQuery {
	pnq.predicates = append(pnq.predicates, ps...)
	return pnq
}

// Limit the number of records to be returned by this query.
func (pnq *PhoneNumberQuery) Limit(limit int) *PhoneNumberQuery {
	pnq.ctx.Limit = &limit
	return pnq
}

// Offset to start from.
func (pnq *PhoneNumberQuery) Offset(offset int) *PhoneNumberQuery {
	pnq.ctx.Offset = &offset
	return pnq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (pnq *PhoneNumberQuery) Unique(unique bool) *PhoneNumberQuery {
	pnq.ctx.Unique = &unique
	return pnq
}

// Order specifies how the records should be ordered.
func (pnq *PhoneNumberQuery) Order(o ...phonenumber.OrderOption) *PhoneNumberQuery {
	pnq.order = append(pnq.order, o...)
	return pnq
}

// QueryTenant chains the current query on the "tenant" edge.
func (pnq *PhoneNumberQuery) QueryTenant() *TenantQuery {
	query := (&TenantClient{config: pnq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := pnq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := pnq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(phonenumber.Table, phonenumber.FieldID, selector),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, phonenumber.TenantTable, phonenumber.TenantColumn),
		)
		fromU = sqlgraph.SetNeighbors(pnq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAgent chains the current query on the "agent" edge.
func (pnq *PhoneNumberQuery) QueryAgent() *AgentQuery {
	query := (&AgentClient{config: pnq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := pnq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := pnq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(phonenumber.Table, phonenumber.FieldID, selector),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, phonenumber.AgentTable, phonenumber.AgentColumn),
		)
		fromU = sqlgraph.SetNeighbors(pnq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCallRecords chains the current query on the "call_records" edge.
func (pnq *PhoneNumberQuery) QueryCallRecords() *CallRecordQuery {
	query := (&CallRecordClient{config: pnq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := pnq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := pnq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(phonenumber.Table, phonenumber.FieldID, selector),
			sqlgraph.To(callrecord.Table, callrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, phonenumber.CallRecordsTable, phonenumber.CallRecordsColumn),
		)
		fromU = sqlgraph.SetNeighbors(pnq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PhoneNumber entity from the query.
// Returns a *NotFoundError when no PhoneNumber was found.
func (pnq *PhoneNumberQuery) First(ctx context.Context) (*PhoneNumber, error) {
	nodes, err := pnq.Limit(1).All(setContextOp(ctx, pnq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{phonenumber.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (pnq *PhoneNumberQuery) FirstX(ctx context.Context) *PhoneNumber {
	node, err := pnq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PhoneNumber ID from the query.
// Returns a *NotFoundError when no PhoneNumber ID was found.
func (pnq *PhoneNumberQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = pnq.Limit(1).IDs(setContextOp(ctx, pnq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{phonenumber.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (pnq *PhoneNumberQuery) FirstIDX(ctx context.Context) int {
	id, err := pnq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PhoneNumber entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PhoneNumber entity is found.
// Returns a *NotFoundError when no PhoneNumber entities are found.
func (pnq *PhoneNumberQuery) Only(ctx context.Context) (*PhoneNumber, error) {
	nodes, err := pnq.Limit(2).All(setContextOp(ctx, pnq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{phonenumber.Label}
	default:
		return nil, &NotSingularError{phonenumber.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (pnq *PhoneNumberQuery) OnlyX(ctx context.Context) *PhoneNumber {
	node, err := pnq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PhoneNumber ID in the query.
// Returns a *NotSingularError when more than one PhoneNumber ID is found.
// Returns a *NotFoundError when no entities are found.
func (pnq *PhoneNumberQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = pnq.Limit(2).IDs(setContextOp(ctx, pnq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{phonenumber.Label}
	default:
		err = &NotSingularError{phonenumber.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (pnq *PhoneNumberQuery) OnlyIDX(ctx context.Context) int {
	id, err := pnq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PhoneNumbers.
func (pnq *PhoneNumberQuery) All(ctx context.Context) ([]*PhoneNumber, error) {
	ctx = setContextOp(ctx, pnq.ctx, ent.OpQueryAll)
	if err := pnq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PhoneNumber, *PhoneNumberQuery]()
	return withInterceptors[[]*PhoneNumber](ctx, pnq, qr, pnq.inters)
}

// AllX is like All, but panics if an error occurs.
func (pnq *PhoneNumberQuery) AllX(ctx context.Context) []*PhoneNumber {
	nodes, err := pnq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PhoneNumber IDs.
func (pnq *PhoneNumberQuery) IDs(ctx context.Context) (ids []int, err error) {
	if pnq.ctx.Unique == nil && pnq.path != nil {
		pnq.Unique(true)
	}
	ctx = setContextOp(ctx, pnq.ctx, ent.OpQueryIDs)
	if err = pnq.Select(phonenumber.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (pnq *PhoneNumberQuery) IDsX(ctx context.Context) []int {
	ids, err := pnq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (pnq *PhoneNumberQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, pnq.ctx, ent.OpQueryCount)
	if err := pnq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, pnq, querierCount[*PhoneNumberQuery](), pnq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (pnq *PhoneNumberQuery) CountX(ctx context.Context) int {
	count, err := pnq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (pnq *PhoneNumberQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, pnq.ctx, ent.OpQueryExist)
	switch _, err := pnq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (pnq *PhoneNumberQuery) ExistX(ctx context.Context) bool {
	exist, err := pnq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PhoneNumberQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (pnq *PhoneNumberQuery) Clone() *PhoneNumberQuery {
	if pnq == nil {
		return nil
	}
	return &PhoneNumberQuery{
		config:          pnq.config,
		ctx:             pnq.ctx.Clone(),
		order:           append([]phonenumber.OrderOption{}, pnq.order...),
		inters:          append([]Interceptor{}, pnq.inters...),
		predicates:      append([]predicate.PhoneNumber{}, pnq.predicates...),
		withTenant:      pnq.withTenant.Clone(),
		withAgent:       pnq.withAgent.Clone(),
		withCallRecords: pnq.withCallRecords.Clone(),
		// clone intermediate query.
		sql:  pnq.sql.Clone(),
		path: pnq.path,
	}
}

// WithTenant tells the query-builder to eager-load the nodes that are connected to
// the "tenant" edge. The optional arguments are used to configure the query builder of the edge.
func (pnq *PhoneNumberQuery) WithTenant(opts ...func(*TenantQuery)) *PhoneNumberQuery {
	query := (&TenantClient{config: pnq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	pnq.withTenant = query
	return pnq
}

// WithAgent tells the query-builder to eager-load the nodes that are connected to
// the "agent" edge. The optional arguments are used to configure the query builder of the edge.
func (pnq *PhoneNumberQuery) WithAgent(opts ...func(*AgentQuery)) *PhoneNumberQuery {
	query := (&AgentClient{config: pnq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	pnq.withAgent = query
	return pnq
}

// WithCallRecords tells the query-builder to eager-load the nodes that are connected to
// the "call_records" edge. The optional arguments are used to configure the query builder of the edge.
func (pnq *PhoneNumberQuery) WithCallRecords(opts ...func(*CallRecordQuery)) *PhoneNumberQuery {
	query := (&CallRecordClient{config: pnq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	pnq.withCallRecords = query
	return pnq
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
//	client.PhoneNumber.Query().
//		GroupBy(phonenumber.FieldTenantID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (pnq *PhoneNumberQuery) GroupBy(field string, fields ...string) *PhoneNumberGroupBy {
	pnq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PhoneNumberGroupBy{build: pnq}
	grbuild.flds = &pnq.ctx.Fields
	grbuild.label = phonenumber.Label
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
//	client.PhoneNumber.Query().
//		Select(phonenumber.FieldTenantID).
//		Scan(ctx, &v)
func (pnq *PhoneNumberQuery) Select(fields ...string) *PhoneNumberSelect {
	pnq.ctx.Fields = append(pnq.ctx.Fields, fields...)
	sbuild := &PhoneNumberSelect{PhoneNumberQuery: pnq}
	sbuild.label = phonenumber.Label
	sbuild.flds, sbuild.scan = &pnq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PhoneNumberSelect configured with the given aggregations.
func (pnq *PhoneNumberQuery) Aggregate(fns ...AggregateFunc) *PhoneNumberSelect {
	return pnq.Select().Aggregate(fns...)
}

func (pnq *PhoneNumberQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range pnq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, pnq); err != nil {
				return err
			}
		}
	}
	for _, f := range pnq.ctx.Fields {
		if !phonenumber.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if pnq.path != nil {
		prev, err := pnq.path(ctx)
		if err != nil {
			return err
		}
		pnq.sql = prev
	}
	return nil
}

func (pnq *PhoneNumberQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PhoneNumber, error) {
	var (
		nodes       = []*PhoneNumber{}
		_spec       = pnq.querySpec()
		loadedTypes = [3]bool{
			pnq.withTenant != nil,
			pnq.withAgent != nil,
			pnq.withCallRecords != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PhoneNumber).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PhoneNumber{config: pnq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, pnq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := pnq.withTenant; query != nil {
		if err := pnq.loadTenant(ctx, query, nodes, nil,
			func(n *PhoneNumber, e *Tenant) { n.Edges.Tenant = e }); err != nil {
			return nil, err
		}
	}
	if query := pnq.withAgent; query != nil {
		if err := pnq.loadAgent(ctx, query, nodes, nil,
			func(n *PhoneNumber, e *Agent) { n.Edges.Agent = e }); err != nil {
			return nil, err
		}
	}
	if query := pnq.withCallRecords; query != nil {
		if err := pnq.loadCallRecords(ctx, query, nodes,
			func(n *PhoneNumber) { n.Edges.CallRecords = []*CallRecord{} },
			func(n *PhoneNumber, e *CallRecord) { n.Edges.CallRecords = append(n.Edges.CallRecords, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (pnq *PhoneNumberQuery) loadTenant(ctx context.Context, query *TenantQuery, nodes []*PhoneNumber, init func(*PhoneNumber), assign func(*PhoneNumber, *Tenant)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*PhoneNumber)
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
func (pnq *PhoneNumberQuery) loadAgent(ctx context.Context, query *AgentQuery, nodes []*PhoneNumber, init func(*PhoneNumber), assign func(*PhoneNumber, *Agent)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*PhoneNumber)
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
func (pnq *PhoneNumberQuery) loadCallRecords(ctx context.Context, query *CallRecordQuery, nodes []*PhoneNumber, init func(*PhoneNumber), assign func(*PhoneNumber, *CallRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*PhoneNumber)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(callrecord.FieldPhoneNumberID)
	}
	query.Where(predicate.CallRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(phonenumber.CallRecordsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PhoneNumberID
		if fk == nil {
			return fmt.Errorf(`foreign-key "phone_number_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "phone_number_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (pnq *PhoneNumberQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := pnq.querySpec()
	_spec.Node.Columns = pnq.ctx.Fields
	if len(pnq.ctx.Fields) > 0 {
		_spec.Unique = pnq.ctx.Unique != nil && *pnq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, pnq.driver, _spec)
}

func (pnq *PhoneNumberQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(phonenumber.Table, phonenumber.Columns, sqlgraph.NewFieldSpec(phonenumber.FieldID, field.TypeInt))
	_spec.From = pnq.sql
	if unique := pnq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if pnq.path != nil {
		_spec.Unique = true
	}
	if fields := pnq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, phonenumber.FieldID)
		for i := range fields {
			if fields[i] != phonenumber.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if pnq.withTenant != nil {
			_spec.Node.AddColumnOnce(phonenumber.FieldTenantID)
		}
		if pnq.withAgent != nil {
			_spec.Node.AddColumnOnce(phonenumber.FieldAgentID)
		}
	}
	if ps := pnq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := pnq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := pnq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := pnq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (pnq *PhoneNumberQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(pnq.driver.Dialect())
	t1 := builder.Table(phonenumber.Table)
	columns := pnq.ctx.Fields
	if len(columns) == 0 {
		columns = phonenumber.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if pnq.sql != nil {
		selector = pnq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if pnq.ctx.Unique != nil && *pnq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range pnq.predicates {
		p(selector)
	}
	for _, p := range pnq.order {
		p(selector)
	}
	if offset := pnq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := pnq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PhoneNumberGroupBy is the group-by builder for PhoneNumber entities.
type PhoneNumberGroupBy struct {
	selector
	build *PhoneNumberQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (pngb *PhoneNumberGroupBy) Aggregate(fns ...AggregateFunc) *PhoneNumberGroupBy {
	pngb.fns = append(pngb.fns, fns...)
	return pngb
}

// Scan applies the selector query and scans the result into the given value.
func (pngb *PhoneNumberGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pngb.build.ctx, ent.OpQueryGroupBy)
	if err := pngb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PhoneNumberQuery, *PhoneNumberGroupBy](ctx, pngb.build, pngb, pngb.build.inters, v)
}

func (pngb *PhoneNumberGroupBy) sqlScan(ctx context.Context, root *PhoneNumberQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(pngb.fns))
	for _, fn := range pngb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*pngb.flds)+len(pngb.fns))
		for _, f := range *pngb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*pngb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pngb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PhoneNumberSelect is the builder for selecting fields of PhoneNumber entities.
type PhoneNumberSelect struct {
	*PhoneNumberQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (pns *PhoneNumberSelect) Aggregate(fns ...AggregateFunc) *PhoneNumberSelect {
	pns.fns = append(pns.fns, fns...)
	return pns
}

// Scan applies the selector query and scans the result into the given value.
func (pns *PhoneNumberSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pns.ctx, ent.OpQuerySelect)
	if err := pns.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PhoneNumberQuery, *PhoneNumberSelect](ctx, pns.PhoneNumberQuery, pns, pns.inters, v)
}

func (pns *PhoneNumberSelect) sqlScan(ctx context.Context, root *PhoneNumberQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(pns.fns))
	for _, fn := range pns.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*pns.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pns.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
