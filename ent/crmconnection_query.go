// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringledger/ringledger/ent/crmconnection"
	"github.com/ringledger/ringledger/ent/predicate"
	"github.com/ringledger/ringledger/ent/tenant"
)

// CRMConnectionQuery is the builder for querying CRMConnection entities.
type CRMConnectionQuery struct {
	config
	ctx        *QueryContext
	order      []crmconnection.OrderOption
	inters     []Interceptor
	predicates []predicate.CRMConnection
	withTenant *TenantQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CRMConnectionQuery builder.
func (ccq *CRMConnectionQuery) Where(ps ...predicate.CRMConnection) *CRMConnectionQuery {
	ccq.predicates = append(ccq.predicates, ps...)
	return ccq
}

// Limit the number of records to be returned by this query.
func (ccq *CRMConnectionQuery) Limit(limit int) *CRMConnectionQuery {
	ccq.ctx.Limit = &limit
	return ccq
}

// Offset to start from.
func (ccq *CRMConnectionQuery) Offset(offset int) *CRMConnectionQuery {
	ccq.ctx.Offset = &offset
	return ccq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ccq *CRMConnectionQuery) Unique(unique bool) *CRMConnectionQuery {
	ccq.ctx.Unique = &unique
	return ccq
}

// Order specifies how the records should be ordered.
func (ccq *CRMConnectionQuery) Order(o ...crmconnection.OrderOption) *CRMConnectionQuery {
	ccq.order = append(ccq.order, o...)
	return ccq
}

// QueryTenant chains the current query on the "tenant" edge.
func (ccq *CRMConnectionQuery) QueryTenant() *TenantQuery {
	query := (&TenantClient{config: ccq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ccq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ccq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(crmconnection.Table, crmconnection.FieldID, selector),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, crmconnection.TenantTable, crmconnection.TenantColumn),
		)
		fromU = sqlgraph.SetNeighbors(ccq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CRMConnection entity from the query.
// Returns a *NotFoundError when no CRMConnection was found.
func (ccq *CRMConnectionQuery) First(ctx context.Context) (*CRMConnection, error) {
	nodes, err := ccq.Limit(1).All(setContextOp(ctx, ccq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{crmconnection.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ccq *CRMConnectionQuery) FirstX(ctx context.Context) *CRMConnection {
	node, err := ccq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CRMConnection ID from the query.
// Returns a *NotFoundError when no CRMConnection ID was found.
func (ccq *CRMConnectionQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ccq.Limit(1).IDs(setContextOp(ctx, ccq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{crmconnection.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ccq *CRMConnectionQuery) FirstIDX(ctx context.Context) int {
	id, err := ccq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CRMConnection entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CRMConnection entity is found.
// Returns a *NotFoundError when no CRMConnection entities are found.
func (ccq *CRMConnectionQuery) Only(ctx context.Context) (*CRMConnection, error) {
	nodes, err := ccq.Limit(2).All(setContextOp(ctx, ccq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{crmconnection.Label}
	default:
		return nil, &NotSingularError{crmconnection.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ccq *CRMConnectionQuery) OnlyX(ctx context.Context) *CRMConnection {
	node, err := ccq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CRMConnection ID in the query.
// Returns a *NotSingularError when more than one CRMConnection ID is found.
// Returns a *NotFoundError when no entities are found.
func (ccq *CRMConnectionQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ccq.Limit(2).IDs(setContextOp(ctx, ccq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{crmconnection.Label}
	default:
		err = &NotSingularError{crmconnection.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ccq *CRMConnectionQuery) OnlyIDX(ctx context.Context) int {
	id, err := ccq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CRMConnections.
func (ccq *CRMConnectionQuery) All(ctx context.Context) ([]*CRMConnection, error) {
	ctx = setContextOp(ctx, ccq.ctx, ent.OpQueryAll)
	if err := ccq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CRMConnection, *CRMConnectionQuery]()
	return withInterceptors[[]*CRMConnection](ctx, ccq, qr, ccq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ccq *CRMConnectionQuery) AllX(ctx context.Context) []*CRMConnection {
	nodes, err := ccq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CRMConnection IDs.
func (ccq *CRMConnectionQuery) IDs(ctx context.Context) (ids []int, err error) {
	if ccq.ctx.Unique == nil && ccq.path != nil {
		ccq.Unique(true)
	}
	ctx = setContextOp(ctx, ccq.ctx, ent.OpQueryIDs)
	if err = ccq.Select(crmconnection.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ccq *CRMConnectionQuery) IDsX(ctx context.Context) []int {
	ids, err := ccq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ccq *CRMConnectionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ccq.ctx, ent.OpQueryCount)
	if err := ccq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ccq, querierCount[*CRMConnectionQuery](), ccq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ccq *CRMConnectionQuery) CountX(ctx context.Context) int {
	count, err := ccq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ccq *CRMConnectionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ccq.ctx, ent.OpQueryExist)
	switch _, err := ccq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ccq *CRMConnectionQuery) ExistX(ctx context.Context) bool {
	exist, err := ccq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CRMConnectionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ccq *CRMConnectionQuery) Clone() *CRMConnectionQuery {
	if ccq == nil {
		return nil
	}
	return &CRMConnectionQuery{
		config:     ccq.config,
		ctx:        ccq.ctx.Clone(),
		order:      append([]crmconnection.OrderOption{}, ccq.order...),
		inters:     append([]Interceptor{}, ccq.inters...),
		predicates: append([]predicate.CRMConnection{}, ccq.predicates...),
		withTenant: ccq.withTenant.Clone(),
		// clone intermediate query.
		sql:  ccq.sql.Clone(),
		path: ccq.path,
	}
}

// WithTenant tells the query-builder to eager-load the nodes that are connected to
// the "tenant" edge. The optional arguments are used to configure the query builder of the edge.
func (ccq *CRMConnectionQuery) WithTenant(opts ...func(*TenantQuery)) *CRMConnectionQuery {
	query := (&TenantClient{config: ccq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ccq.withTenant = query
	return ccq
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
//	client.CRMConnection.Query().
//		GroupBy(crmconnection.FieldTenantID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ccq *CRMConnectionQuery) GroupBy(field string, fields ...string) *CRMConnectionGroupBy {
	ccq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CRMConnectionGroupBy{build: ccq}
	grbuild.flds = &ccq.ctx.Fields
	grbuild.label = crmconnection.Label
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
//	client.CRMConnection.Query().
//		Select(crmconnection.FieldTenantID).
//		Scan(ctx, &v)
func (ccq *CRMConnectionQuery) Select(fields ...string) *CRMConnectionSelect {
	ccq.ctx.Fields = append(ccq.ctx.Fields, fields...)
	sbuild := &CRMConnectionSelect{CRMConnectionQuery: ccq}
	sbuild.label = crmconnection.Label
	sbuild.flds, sbuild.scan = &ccq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CRMConnectionSelect configured with the given aggregations.
func (ccq *CRMConnectionQuery) Aggregate(fns ...AggregateFunc) *CRMConnectionSelect {
	return ccq.Select().Aggregate(fns...)
}

func (ccq *CRMConnectionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ccq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ccq); err != nil {
				return err
			}
		}
	}
	for _, f := range ccq.ctx.Fields {
		if !crmconnection.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ccq.path != nil {
		prev, err := ccq.path(ctx)
		if err != nil {
			return err
		}
		ccq.sql = prev
	}
	return nil
}

func (ccq *CRMConnectionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CRMConnection, error) {
	var (
		nodes       = []*CRMConnection{}
		_spec       = ccq.querySpec()
		loadedTypes = [1]bool{
			ccq.withTenant != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CRMConnection).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CRMConnection{config: ccq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ccq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := ccq.withTenant; query != nil {
		if err := ccq.loadTenant(ctx, query, nodes, nil,
			func(n *CRMConnection, e *Tenant) { n.Edges.Tenant = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (ccq *CRMConnectionQuery) loadTenant(ctx context.Context, query *TenantQuery, nodes []*CRMConnection, init func(*CRMConnection), assign func(*CRMConnection, *Tenant)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*CRMConnection)
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

func (ccq *CRMConnectionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ccq.querySpec()
	_spec.Node.Columns = ccq.ctx.Fields
	if len(ccq.ctx.Fields) > 0 {
		_spec.Unique = ccq.ctx.Unique != nil && *ccq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ccq.driver, _spec)
}

func (ccq *CRMConnectionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(crmconnection.Table, crmconnection.Columns, sqlgraph.NewFieldSpec(crmconnection.FieldID, field.TypeInt))
	_spec.From = ccq.sql
	if unique := ccq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ccq.path != nil {
		_spec.Unique = true
	}
	if fields := ccq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, crmconnection.FieldID)
		for i := range fields {
			if fields[i] != crmconnection.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if ccq.withTenant != nil {
			_spec.Node.AddColumnOnce(crmconnection.FieldTenantID)
		}
	}
	if ps := ccq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ccq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ccq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ccq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ccq *CRMConnectionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ccq.driver.Dialect())
	t1 := builder.Table(crmconnection.Table)
	columns := ccq.ctx.Fields
	if len(columns) == 0 {
		columns = crmconnection.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ccq.sql != nil {
		selector = ccq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ccq.ctx.Unique != nil && *ccq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ccq.predicates {
		p(selector)
	}
	for _, p := range ccq.order {
		p(selector)
	}
	if offset := ccq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ccq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// CRMConnectionGroupBy is the group-by builder for CRMConnection entities.
type CRMConnectionGroupBy struct {
	selector
	build *CRMConnectionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ccgb *CRMConnectionGroupBy) Aggregate(fns ...AggregateFunc) *CRMConnectionGroupBy {
	ccgb.fns = append(ccgb.fns, fns...)
	return ccgb
}

// Scan applies the selector query and scans the result into the given value.
func (ccgb *CRMConnectionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ccgb.build.ctx, ent.OpQueryGroupBy)
	if err := ccgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CRMConnectionQuery, *CRMConnectionGroupBy](ctx, ccgb.build, ccgb, ccgb.build.inters, v)
}

func (ccgb *CRMConnectionGroupBy) sqlScan(ctx context.Context, root *CRMConnectionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ccgb.fns))
	for _, fn := range ccgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ccgb.flds)+len(ccgb.fns))
		for _, f := range *ccgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ccgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ccgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CRMConnectionSelect is the builder for selecting fields of CRMConnection entities.
type CRMConnectionSelect struct {
	*CRMConnectionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ccs *CRMConnectionSelect) Aggregate(fns ...AggregateFunc) *CRMConnectionSelect {
	ccs.fns = append(ccs.fns, fns...)
	return ccs
}

// Scan applies the selector query and scans the result into the given value.
func (ccs *CRMConnectionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ccs.ctx, ent.OpQuerySelect)
	if err := ccs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CRMConnectionQuery, *CRMConnectionSelect](ctx, ccs.CRMConnectionQuery, ccs, ccs.inters, v)
}

func (ccs *CRMConnectionSelect) sqlScan(ctx context.Context, root *CRMConnectionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ccs.fns))
	for _, fn := range ccs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ccs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ccs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
