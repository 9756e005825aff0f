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
	"github.com/ringledger/ringledger/ent/deletedcall"
	"github.com/ringledger/ringledger/ent/predicate"
)

// DeletedCallQuery is the builder for querying DeletedCall entities.
type DeletedCallQuery struct {
	config
	ctx        *QueryContext
	order      []deletedcall.OrderOption
	inters     []Interceptor
	predicates []predicate.DeletedCall
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DeletedCallQuery builder.
func (dcq *DeletedCallQuery) Where(ps ...predicate.DeletedCall) *DeletedCallQuery {
	dcq.predicates = append(dcq.predicates, ps...)
	return dcq
}

// Limit the number of records to be returned by this query.
func (dcq *DeletedCallQuery) Limit(limit int) *DeletedCallQuery {
	dcq.ctx.Limit = &limit
	return dcq
}

// Offset to start from.
func (dcq *DeletedCallQuery) Offset(offset int) *DeletedCallQuery {
	dcq.ctx.Offset = &offset
	return dcq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (dcq *DeletedCallQuery) Unique(unique bool) *DeletedCallQuery {
	dcq.ctx.Unique = &unique
	return dcq
}

// Order specifies how the records should be ordered.
func (dcq *DeletedCallQuery) Order(o ...deletedcall.OrderOption) *DeletedCallQuery {
	dcq.order = append(dcq.order, o...)
	return dcq
}

// First returns the first DeletedCall entity from the query.
// Returns a *NotFoundError when no DeletedCall was found.
func (dcq *DeletedCallQuery) First(ctx context.Context) (*DeletedCall, error) {
	nodes, err := dcq.Limit(1).All(setContextOp(ctx, dcq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{deletedcall.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (dcq *DeletedCallQuery) FirstX(ctx context.Context) *DeletedCall {
	node, err := dcq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DeletedCall ID from the query.
// Returns a *NotFoundError when no DeletedCall ID was found.
func (dcq *DeletedCallQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = dcq.Limit(1).IDs(setContextOp(ctx, dcq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{deletedcall.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (dcq *DeletedCallQuery) FirstIDX(ctx context.Context) int {
	id, err := dcq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DeletedCall entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DeletedCall entity is found.
// Returns a *NotFoundError when no DeletedCall entities are found.
func (dcq *DeletedCallQuery) Only(ctx context.Context) (*DeletedCall, error) {
	nodes, err := dcq.Limit(2).All(setContextOp(ctx, dcq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{deletedcall.Label}
	default:
		return nil, &NotSingularError{deletedcall.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (dcq *DeletedCallQuery) OnlyX(ctx context.Context) *DeletedCall {
	node, err := dcq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DeletedCall ID in the query.
// Returns a *NotSingularError when more than one DeletedCall ID is found.
// Returns a *NotFoundError when no entities are found.
func (dcq *DeletedCallQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = dcq.Limit(2).IDs(setContextOp(ctx, dcq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{deletedcall.Label}
	default:
		err = &NotSingularError{deletedcall.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (dcq *DeletedCallQuery) OnlyIDX(ctx context.Context) int {
	id, err := dcq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DeletedCalls.
func (dcq *DeletedCallQuery) All(ctx context.Context) ([]*DeletedCall, error) {
	ctx = setContextOp(ctx, dcq.ctx, ent.OpQueryAll)
	if err := dcq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DeletedCall, *DeletedCallQuery]()
	return withInterceptors[[]*DeletedCall](ctx, dcq, qr, dcq.inters)
}

// AllX is like All, but panics if an error occurs.
func (dcq *DeletedCallQuery) AllX(ctx context.Context) []*DeletedCall {
	nodes, err := dcq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DeletedCall IDs.
func (dcq *DeletedCallQuery) IDs(ctx context.Context) (ids []int, err error) {
	if dcq.ctx.Unique == nil && dcq.path != nil {
		dcq.Unique(true)
	}
	ctx = setContextOp(ctx, dcq.ctx, ent.OpQueryIDs)
	if err = dcq.Select(deletedcall.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (dcq *DeletedCallQuery) IDsX(ctx context.Context) []int {
	ids, err := dcq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (dcq *DeletedCallQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, dcq.ctx, ent.OpQueryCount)
	if err := dcq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, dcq, querierCount[*DeletedCallQuery](), dcq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (dcq *DeletedCallQuery) CountX(ctx context.Context) int {
	count, err := dcq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (dcq *DeletedCallQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, dcq.ctx, ent.OpQueryExist)
	switch _, err := dcq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (dcq *DeletedCallQuery) ExistX(ctx context.Context) bool {
	exist, err := dcq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DeletedCallQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (dcq *DeletedCallQuery) Clone() *DeletedCallQuery {
	if dcq == nil {
		return nil
	}
	return &DeletedCallQuery{
		config:     dcq.config,
		ctx:        dcq.ctx.Clone(),
		order:      append([]deletedcall.OrderOption{}, dcq.order...),
		inters:     append([]Interceptor{}, dcq.inters...),
		predicates: append([]predicate.DeletedCall{}, dcq.predicates...),
		// clone intermediate query.
		sql:  dcq.sql.Clone(),
		path: dcq.path,
	}
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
//	client.DeletedCall.Query().
//		GroupBy(deletedcall.FieldTenantID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (dcq *DeletedCallQuery) GroupBy(field string, fields ...string) *DeletedCallGroupBy {
	dcq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DeletedCallGroupBy{build: dcq}
	grbuild.flds = &dcq.ctx.Fields
	grbuild.label = deletedcall.Label
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
//	client.DeletedCall.Query().
//		Select(deletedcall.FieldTenantID).
//		Scan(ctx, &v)
func (dcq *DeletedCallQuery) Select(fields ...string) *DeletedCallSelect {
	dcq.ctx.Fields = append(dcq.ctx.Fields, fields...)
	sbuild := &DeletedCallSelect{DeletedCallQuery: dcq}
	sbuild.label = deletedcall.Label
	sbuild.flds, sbuild.scan = &dcq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DeletedCallSelect configured with the given aggregations.
func (dcq *DeletedCallQuery) Aggregate(fns ...AggregateFunc) *DeletedCallSelect {
	return dcq.Select().Aggregate(fns...)
}

func (dcq *DeletedCallQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range dcq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, dcq); err != nil {
				return err
			}
		}
	}
	for _, f := range dcq.ctx.Fields {
		if !deletedcall.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if dcq.path != nil {
		prev, err := dcq.path(ctx)
		if err != nil {
			return err
		}
		dcq.sql = prev
	}
	return nil
}

func (dcq *DeletedCallQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DeletedCall, error) {
	var (
		nodes = []*DeletedCall{}
		_spec = dcq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DeletedCall).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DeletedCall{config: dcq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, dcq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (dcq *DeletedCallQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := dcq.querySpec()
	_spec.Node.Columns = dcq.ctx.Fields
	if len(dcq.ctx.Fields) > 0 {
		_spec.Unique = dcq.ctx.Unique != nil && *dcq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, dcq.driver, _spec)
}

func (dcq *DeletedCallQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(deletedcall.Table, deletedcall.Columns, sqlgraph.NewFieldSpec(deletedcall.FieldID, field.TypeInt))
	_spec.From = dcq.sql
	if unique := dcq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if dcq.path != nil {
		_spec.Unique = true
	}
	if fields := dcq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deletedcall.FieldID)
		for i := range fields {
			if fields[i] != deletedcall.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := dcq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := dcq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := dcq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := dcq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (dcq *DeletedCallQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(dcq.driver.Dialect())
	t1 := builder.Table(deletedcall.Table)
	columns := dcq.ctx.Fields
	if len(columns) == 0 {
		columns = deletedcall.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if dcq.sql != nil {
		selector = dcq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if dcq.ctx.Unique != nil && *dcq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range dcq.predicates {
		p(selector)
	}
	for _, p := range dcq.order {
		p(selector)
	}
	if offset := dcq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := dcq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DeletedCallGroupBy is the group-by builder for DeletedCall entities.
type DeletedCallGroupBy struct {
	selector
	build *DeletedCallQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (dcgb *DeletedCallGroupBy) Aggregate(fns ...AggregateFunc) *DeletedCallGroupBy {
	dcgb.fns = append(dcgb.fns, fns...)
	return dcgb
}

// Scan applies the selector query and scans the result into the given value.
func (dcgb *DeletedCallGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dcgb.build.ctx, ent.OpQueryGroupBy)
	if err := dcgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DeletedCallQuery, *DeletedCallGroupBy](ctx, dcgb.build, dcgb, dcgb.build.inters, v)
}

func (dcgb *DeletedCallGroupBy) sqlScan(ctx context.Context, root *DeletedCallQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(dcgb.fns))
	for _, fn := range dcgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*dcgb.flds)+len(dcgb.fns))
		for _, f := range *dcgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*dcgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dcgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DeletedCallSelect is the builder for selecting fields of DeletedCall entities.
type DeletedCallSelect struct {
	*DeletedCallQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (dcs *DeletedCallSelect) Aggregate(fns ...AggregateFunc) *DeletedCallSelect {
	dcs.fns = append(dcs.fns, fns...)
	return dcs
}

// Scan applies the selector query and scans the result into the given value.
func (dcs *DeletedCallSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dcs.ctx, ent.OpQuerySelect)
	if err := dcs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DeletedCallQuery, *DeletedCallSelect](ctx, dcs.DeletedCallQuery, dcs, dcs.inters, v)
}

func (dcs *DeletedCallSelect) sqlScan(ctx context.Context, root *DeletedCallQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(dcs.fns))
	for _, fn := range dcs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*dcs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dcs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
