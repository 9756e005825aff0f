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
	"github.com/ringledger/ringledger/ent/billingaccount"
	"github.com/ringledger/ringledger/ent/predicate"
	"github.com/ringledger/ringledger/ent/tenant"
)

// BillingAccountQuery is the builder for querying BillingAccount entities.
type BillingAccountQuery struct {
	config
	ctx        *QueryContext
	order      []billingaccount.OrderOption
	inters     []Interceptor
	predicates []predicate.BillingAccount
	withTenant *TenantQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BillingAccountQuery builder.
func (baq *BillingAccountQuery) Where(ps ...predicate.BillingAccount) *BillingAccountQuery {
	baq.predicates = append(baq.predicates, ps...)
	return baq
}

// Limit the number of records to be returned by this query.
func (baq *BillingAccountQuery) Limit(limit int) *BillingAccountQuery {
	baq.ctx.Limit = &limit
	return baq
}

// Offset to start from.
func (baq *BillingAccountQuery) Offset(offset int) *BillingAccountQuery {
	baq.ctx.Offset = &offset
	return baq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (baq *BillingAccountQuery) Unique(unique bool) *BillingAccountQuery {
	baq.ctx.Unique = &unique
	return baq
}

// Order specifies how the records should be ordered.
func (baq *BillingAccountQuery) Order(o ...billingaccount.OrderOption) *BillingAccountQuery {
	baq.order = append(baq.order, o...)
	return baq
}

// QueryTenant chains the current query on the "tenant" edge.
func (baq *BillingAccountQuery) QueryTenant() *TenantQuery {
	query := (&TenantClient{config: baq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := baq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := baq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(billingaccount.Table, billingaccount.FieldID, selector),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, billingaccount.TenantTable, billingaccount.TenantColumn),
		)
		fromU = sqlgraph.SetNeighbors(baq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first BillingAccount entity from the query.
// Returns a *NotFoundError when no BillingAccount was found.
func (baq *BillingAccountQuery) First(ctx context.Context) (*BillingAccount, error) {
	nodes, err := baq.Limit(1).All(setContextOp(ctx, baq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{billingaccount.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (baq *BillingAccountQuery) FirstX(ctx context.Context) *BillingAccount {
	node, err := baq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BillingAccount ID from the query.
// Returns a *NotFoundError when no BillingAccount ID was found.
func (baq *BillingAccountQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = baq.Limit(1).IDs(setContextOp(ctx, baq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{billingaccount.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (baq *BillingAccountQuery) FirstIDX(ctx context.Context) int {
	id, err := baq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BillingAccount entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BillingAccount entity is found.
// Returns a *NotFoundError when no BillingAccount entities are found.
func (baq *BillingAccountQuery) Only(ctx context.Context) (*BillingAccount, error) {
	nodes, err := baq.Limit(2).All(setContextOp(ctx, baq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{billingaccount.Label}
	default:
		return nil, &NotSingularError{billingaccount.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (baq *BillingAccountQuery) OnlyX(ctx context.Context) *BillingAccount {
	node, err := baq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BillingAccount ID in the query.
// Returns a *NotSingularError when more than one BillingAccount ID is found.
// Returns a *NotFoundError when no entities are found.
func (baq *BillingAccountQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = baq.Limit(2).IDs(setContextOp(ctx, baq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{billingaccount.Label}
	default:
		err = &NotSingularError{billingaccount.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (baq *BillingAccountQuery) OnlyIDX(ctx context.Context) int {
	id, err := baq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BillingAccounts.
func (baq *BillingAccountQuery) All(ctx context.Context) ([]*BillingAccount, error) {
	ctx = setContextOp(ctx, baq.ctx, ent.OpQueryAll)
	if err := baq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BillingAccount, *BillingAccountQuery]()
	return withInterceptors[[]*BillingAccount](ctx, baq, qr, baq.inters)
}

// AllX is like All, but panics if an error occurs.
func (baq *BillingAccountQuery) AllX(ctx context.Context) []*BillingAccount {
	nodes, err := baq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BillingAccount IDs.
func (baq *BillingAccountQuery) IDs(ctx context.Context) (ids []int, err error) {
	if baq.ctx.Unique == nil && baq.path != nil {
		baq.Unique(true)
	}
	ctx = setContextOp(ctx, baq.ctx, ent.OpQueryIDs)
	if err = baq.Select(billingaccount.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (baq *BillingAccountQuery) IDsX(ctx context.Context) []int {
	ids, err := baq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (baq *BillingAccountQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, baq.ctx, ent.OpQueryCount)
	if err := baq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, baq, querierCount[*BillingAccountQuery](), baq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (baq *BillingAccountQuery) CountX(ctx context.Context) int {
	count, err := baq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (baq *BillingAccountQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, baq.ctx, ent.OpQueryExist)
	switch _, err := baq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (baq *BillingAccountQuery) ExistX(ctx context.Context) bool {
	exist, err := baq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BillingAccountQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (baq *BillingAccountQuery) Clone() *BillingAccountQuery {
	if baq == nil {
		return nil
	}
	return &BillingAccountQuery{
		config:     baq.config,
		ctx:        baq.ctx.Clone(),
		order:      append([]billingaccount.OrderOption{}, baq.order...),
		inters:     append([]Interceptor{}, baq.inters...),
		predicates: append([]predicate.BillingAccount{}, baq.predicates...),
		withTenant: baq.withTenant.Clone(),
		// clone intermediate query.
		sql:  baq.sql.Clone(),
		path: baq.path,
	}
}

// WithTenant tells the query-builder to eager-load the nodes that are connected to
// the "tenant" edge. The optional arguments are used to configure the query builder of the edge.
func (baq *BillingAccountQuery) WithTenant(opts ...func(*TenantQuery)) *BillingAccountQuery {
	query := (&TenantClient{config: baq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	baq.withTenant = query
	return baq
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
//	client.BillingAccount.Query().
//		GroupBy(billingaccount.FieldTenantID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (baq *BillingAccountQuery) GroupBy(field string, fields ...string) *BillingAccountGroupBy {
	baq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BillingAccountGroupBy{build: baq}
	grbuild.flds = &baq.ctx.Fields
	grbuild.label = billingaccount.Label
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
//	client.BillingAccount.Query().
//		Select(billingaccount.FieldTenantID).
//		Scan(ctx, &v)
func (baq *BillingAccountQuery) Select(fields ...string) *BillingAccountSelect {
	baq.ctx.Fields = append(baq.ctx.Fields, fields...)
	sbuild := &BillingAccountSelect{BillingAccountQuery: baq}
	sbuild.label = billingaccount.Label
	sbuild.flds, sbuild.scan = &baq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BillingAccountSelect configured with the given aggregations.
func (baq *BillingAccountQuery) Aggregate(fns ...AggregateFunc) *BillingAccountSelect {
	return baq.Select().Aggregate(fns...)
}

func (baq *BillingAccountQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range baq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, baq); err != nil {
				return err
			}
		}
	}
	for _, f := range baq.ctx.Fields {
		if !billingaccount.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if baq.path != nil {
		prev, err := baq.path(ctx)
		if err != nil {
			return err
		}
		baq.sql = prev
	}
	return nil
}

func (baq *BillingAccountQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BillingAccount, error) {
	var (
		nodes       = []*BillingAccount{}
		_spec       = baq.querySpec()
		loadedTypes = [1]bool{
			baq.withTenant != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BillingAccount).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BillingAccount{config: baq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, baq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := baq.withTenant; query != nil {
		if err := baq.loadTenant(ctx, query, nodes, nil,
			func(n *BillingAccount, e *Tenant) { n.Edges.Tenant = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (baq *BillingAccountQuery) loadTenant(ctx context.Context, query *TenantQuery, nodes []*BillingAccount, init func(*BillingAccount), assign func(*BillingAccount, *Tenant)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*BillingAccount)
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

func (baq *BillingAccountQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := baq.querySpec()
	_spec.Node.Columns = baq.ctx.Fields
	if len(baq.ctx.Fields) > 0 {
		_spec.Unique = baq.ctx.Unique != nil && *baq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, baq.driver, _spec)
}

func (baq *BillingAccountQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(billingaccount.Table, billingaccount.Columns, sqlgraph.NewFieldSpec(billingaccount.FieldID, field.TypeInt))
	_spec.From = baq.sql
	if unique := baq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if baq.path != nil {
		_spec.Unique = true
	}
	if fields := baq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, billingaccount.FieldID)
		for i := range fields {
			if fields[i] != billingaccount.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if baq.withTenant != nil {
			_spec.Node.AddColumnOnce(billingaccount.FieldTenantID)
		}
	}
	if ps := baq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := baq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := baq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := baq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (baq *BillingAccountQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(baq.driver.Dialect())
	t1 := builder.Table(billingaccount.Table)
	columns := baq.ctx.Fields
	if len(columns) == 0 {
		columns = billingaccount.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if baq.sql != nil {
		selector = baq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if baq.ctx.Unique != nil && *baq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range baq.predicates {
		p(selector)
	}
	for _, p := range baq.order {
		p(selector)
	}
	if offset := baq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := baq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// BillingAccountGroupBy is the group-by builder for BillingAccount entities.
type BillingAccountGroupBy struct {
	selector
	build *BillingAccountQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (bagb *BillingAccountGroupBy) Aggregate(fns ...AggregateFunc) *BillingAccountGroupBy {
	bagb.fns = append(bagb.fns, fns...)
	return bagb
}

// Scan applies the selector query and scans the result into the given value.
func (bagb *BillingAccountGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, bagb.build.ctx, ent.OpQueryGroupBy)
	if err := bagb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BillingAccountQuery, *BillingAccountGroupBy](ctx, bagb.build, bagb, bagb.build.inters, v)
}

func (bagb *BillingAccountGroupBy) sqlScan(ctx context.Context, root *BillingAccountQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(bagb.fns))
	for _, fn := range bagb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*bagb.flds)+len(bagb.fns))
		for _, f := range *bagb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*bagb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := bagb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// BillingAccountSelect is the builder for selecting fields of BillingAccount entities.
type BillingAccountSelect struct {
	*BillingAccountQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (bas *BillingAccountSelect) Aggregate(fns ...AggregateFunc) *BillingAccountSelect {
	bas.fns = append(bas.fns, fns...)
	return bas
}

// Scan applies the selector query and scans the result into the given value.
func (bas *BillingAccountSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, bas.ctx, ent.OpQuerySelect)
	if err := bas.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BillingAccountQuery, *BillingAccountSelect](ctx, bas.BillingAccountQuery, bas, bas.inters, v)
}

func (bas *BillingAccountSelect) sqlScan(ctx context.Context, root *BillingAccountQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(bas.fns))
	for _, fn := range bas.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*bas.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := bas.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
