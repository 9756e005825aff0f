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
	"github.com/ringledger/ringledger/ent/callrecord"
	"github.com/ringledger/ringledger/ent/predicate"
	"github.com/ringledger/ringledger/ent/usageledgerentry"
)

// UsageLedgerEntryQuery is the builder for querying UsageLedgerEntry entities.
type UsageLedgerEntryQuery struct {
	config
	ctx            *QueryContext
	order          []usageledgerentry.OrderOption
	inters         []Interceptor
	predicates     []predicate.UsageLedgerEntry
	withCallRecord *CallRecordQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UsageLedgerEntryQuery builder.
func (uleq *UsageLedgerEntryQuery) Where(ps ...predicate.UsageLedgerEntry) *UsageLedgerEntryQuery {
	uleq.predicates = append(uleq.predicates, ps...)
	return uleq
}

// Limit the number of records to be returned by this query.
func (uleq *UsageLedgerEntryQuery) Limit(limit int) *UsageLedgerEntryQuery {
	uleq.ctx.Limit = &limit
	return uleq
}

// Offset to start from.
func (uleq *UsageLedgerEntryQuery) Offset(offset int) *UsageLedgerEntryQuery {
	uleq.ctx.Offset = &offset
	return uleq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (uleq *UsageLedgerEntryQuery) Unique(unique bool) *UsageLedgerEntryQuery {
	uleq.ctx.Unique = &unique
	return uleq
}

// Order specifies how the records should be ordered.
func (uleq *UsageLedgerEntryQuery) Order(o ...usageledgerentry.OrderOption) *UsageLedgerEntryQuery {
	uleq.order = append(uleq.order, o...)
	return uleq
}

// QueryCallRecord chains the current query on the "call_record" edge.
func (uleq *UsageLedgerEntryQuery) QueryCallRecord() *CallRecordQuery {
	query := (&CallRecordClient{config: uleq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := uleq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := uleq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(usageledgerentry.Table, usageledgerentry.FieldID, selector),
			sqlgraph.To(callrecord.Table, callrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, usageledgerentry.CallRecordTable, usageledgerentry.CallRecordColumn),
		)
		fromU = sqlgraph.SetNeighbors(uleq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first UsageLedgerEntry entity from the query.
// Returns a *NotFoundError when no UsageLedgerEntry was found.
func (uleq *UsageLedgerEntryQuery) First(ctx context.Context) (*UsageLedgerEntry, error) {
	nodes, err := uleq.Limit(1).All(setContextOp(ctx, uleq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{usageledgerentry.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (uleq *UsageLedgerEntryQuery) FirstX(ctx context.Context) *UsageLedgerEntry {
	node, err := uleq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first UsageLedgerEntry ID from the query.
// Returns a *NotFoundError when no UsageLedgerEntry ID was found.
func (uleq *UsageLedgerEntryQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = uleq.Limit(1).IDs(setContextOp(ctx, uleq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{usageledgerentry.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (uleq *UsageLedgerEntryQuery) FirstIDX(ctx context.Context) int {
	id, err := uleq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single UsageLedgerEntry entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one UsageLedgerEntry entity is found.
// Returns a *NotFoundError when no UsageLedgerEntry entities are found.
func (uleq *UsageLedgerEntryQuery) Only(ctx context.Context) (*UsageLedgerEntry, error) {
	nodes, err := uleq.Limit(2).All(setContextOp(ctx, uleq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{usageledgerentry.Label}
	default:
		return nil, &NotSingularError{usageledgerentry.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (uleq *UsageLedgerEntryQuery) OnlyX(ctx context.Context) *UsageLedgerEntry {
	node, err := uleq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only UsageLedgerEntry ID in the query.
// Returns a *NotSingularError when more than one UsageLedgerEntry ID is found.
// Returns a *NotFoundError when no entities are found.
func (uleq *UsageLedgerEntryQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = uleq.Limit(2).IDs(setContextOp(ctx, uleq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{usageledgerentry.Label}
	default:
		err = &NotSingularError{usageledgerentry.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (uleq *UsageLedgerEntryQuery) OnlyIDX(ctx context.Context) int {
	id, err := uleq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of UsageLedgerEntries.
func (uleq *UsageLedgerEntryQuery) All(ctx context.Context) ([]*UsageLedgerEntry, error) {
	ctx = setContextOp(ctx, uleq.ctx, ent.OpQueryAll)
	if err := uleq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*UsageLedgerEntry, *UsageLedgerEntryQuery]()
	return withInterceptors[[]*UsageLedgerEntry](ctx, uleq, qr, uleq.inters)
}

// AllX is like All, but panics if an error occurs.
func (uleq *UsageLedgerEntryQuery) AllX(ctx context.Context) []*UsageLedgerEntry {
	nodes, err := uleq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of UsageLedgerEntry IDs.
func (uleq *UsageLedgerEntryQuery) IDs(ctx context.Context) (ids []int, err error) {
	if uleq.ctx.Unique == nil && uleq.path != nil {
		uleq.Unique(true)
	}
	ctx = setContextOp(ctx, uleq.ctx, ent.OpQueryIDs)
	if err = uleq.Select(usageledgerentry.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (uleq *UsageLedgerEntryQuery) IDsX(ctx context.Context) []int {
	ids, err := uleq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (uleq *UsageLedgerEntryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, uleq.ctx, ent.OpQueryCount)
	if err := uleq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, uleq, querierCount[*UsageLedgerEntryQuery](), uleq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (uleq *UsageLedgerEntryQuery) CountX(ctx context.Context) int {
	count, err := uleq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (uleq *UsageLedgerEntryQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, uleq.ctx, ent.OpQueryExist)
	switch _, err := uleq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (uleq *UsageLedgerEntryQuery) ExistX(ctx context.Context) bool {
	exist, err := uleq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UsageLedgerEntryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (uleq *UsageLedgerEntryQuery) Clone() *UsageLedgerEntryQuery {
	if uleq == nil {
		return nil
	}
	return &UsageLedgerEntryQuery{
		config:         uleq.config,
		ctx:            uleq.ctx.Clone(),
		order:          append([]usageledgerentry.OrderOption{}, uleq.order...),
		inters:         append([]Interceptor{}, uleq.inters...),
		predicates:     append([]predicate.UsageLedgerEntry{}, uleq.predicates...),
		withCallRecord: uleq.withCallRecord.Clone(),
		// clone intermediate query.
		sql:  uleq.sql.Clone(),
		path: uleq.path,
	}
}

// WithCallRecord tells the query-builder to eager-load the nodes that are connected to
// the "call_record" edge. The optional arguments are used to configure the query builder of the edge.
func (uleq *UsageLedgerEntryQuery) WithCallRecord(opts ...func(*CallRecordQuery)) *UsageLedgerEntryQuery {
	query := (&CallRecordClient{config: uleq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	uleq.withCallRecord = query
	return uleq
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
//	client.UsageLedgerEntry.Query().
//		GroupBy(usageledgerentry.FieldTenantID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (uleq *UsageLedgerEntryQuery) GroupBy(field string, fields ...string) *UsageLedgerEntryGroupBy {
	uleq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UsageLedgerEntryGroupBy{build: uleq}
	grbuild.flds = &uleq.ctx.Fields
	grbuild.label = usageledgerentry.Label
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
//	client.UsageLedgerEntry.Query().
//		Select(usageledgerentry.FieldTenantID).
//		Scan(ctx, &v)
func (uleq *UsageLedgerEntryQuery) Select(fields ...string) *UsageLedgerEntrySelect {
	uleq.ctx.Fields = append(uleq.ctx.Fields, fields...)
	sbuild := &UsageLedgerEntrySelect{UsageLedgerEntryQuery: uleq}
	sbuild.label = usageledgerentry.Label
	sbuild.flds, sbuild.scan = &uleq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UsageLedgerEntrySelect configured with the given aggregations.
func (uleq *UsageLedgerEntryQuery) Aggregate(fns ...AggregateFunc) *UsageLedgerEntrySelect {
	return uleq.Select().Aggregate(fns...)
}

func (uleq *UsageLedgerEntryQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range uleq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, uleq); err != nil {
				return err
			}
		}
	}
	for _, f := range uleq.ctx.Fields {
		if !usageledgerentry.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if uleq.path != nil {
		prev, err := uleq.path(ctx)
		if err != nil {
			return err
		}
		uleq.sql = prev
	}
	return nil
}

func (uleq *UsageLedgerEntryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*UsageLedgerEntry, error) {
	var (
		nodes       = []*UsageLedgerEntry{}
		_spec       = uleq.querySpec()
		loadedTypes = [1]bool{
			uleq.withCallRecord != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*UsageLedgerEntry).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &UsageLedgerEntry{config: uleq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, uleq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := uleq.withCallRecord; query != nil {
		if err := uleq.loadCallRecord(ctx, query, nodes, nil,
			func(n *UsageLedgerEntry, e *CallRecord) { n.Edges.CallRecord = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (uleq *UsageLedgerEntryQuery) loadCallRecord(ctx context.Context, query *CallRecordQuery, nodes []*UsageLedgerEntry, init func(*UsageLedgerEntry), assign func(*UsageLedgerEntry, *CallRecord)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*UsageLedgerEntry)
	for i := range nodes {
		fk := nodes[i].CallRecordID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(callrecord.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "call_record_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (uleq *UsageLedgerEntryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := uleq.querySpec()
	_spec.Node.Columns = uleq.ctx.Fields
	if len(uleq.ctx.Fields) > 0 {
		_spec.Unique = uleq.ctx.Unique != nil && *uleq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, uleq.driver, _spec)
}

func (uleq *UsageLedgerEntryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(usageledgerentry.Table, usageledgerentry.Columns, sqlgraph.NewFieldSpec(usageledgerentry.FieldID, field.TypeInt))
	_spec.From = uleq.sql
	if unique := uleq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if uleq.path != nil {
		_spec.Unique = true
	}
	if fields := uleq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usageledgerentry.FieldID)
		for i := range fields {
			if fields[i] != usageledgerentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if uleq.withCallRecord != nil {
			_spec.Node.AddColumnOnce(usageledgerentry.FieldCallRecordID)
		}
	}
	if ps := uleq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := uleq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := uleq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := uleq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (uleq *UsageLedgerEntryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(uleq.driver.Dialect())
	t1 := builder.Table(usageledgerentry.Table)
	columns := uleq.ctx.Fields
	if len(columns) == 0 {
		columns = usageledgerentry.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if uleq.sql != nil {
		selector = uleq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if uleq.ctx.Unique != nil && *uleq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range uleq.predicates {
		p(selector)
	}
	for _, p := range uleq.order {
		p(selector)
	}
	if offset := uleq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := uleq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// UsageLedgerEntryGroupBy is the group-by builder for UsageLedgerEntry entities.
type UsageLedgerEntryGroupBy struct {
	selector
	build *UsageLedgerEntryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ulegb *UsageLedgerEntryGroupBy) Aggregate(fns ...AggregateFunc) *UsageLedgerEntryGroupBy {
	ulegb.fns = append(ulegb.fns, fns...)
	return ulegb
}

// Scan applies the selector query and scans the result into the given value.
func (ulegb *UsageLedgerEntryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ulegb.build.ctx, ent.OpQueryGroupBy)
	if err := ulegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UsageLedgerEntryQuery, *UsageLedgerEntryGroupBy](ctx, ulegb.build, ulegb, ulegb.build.inters, v)
}

func (ulegb *UsageLedgerEntryGroupBy) sqlScan(ctx context.Context, root *UsageLedgerEntryQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ulegb.fns))
	for _, fn := range ulegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ulegb.flds)+len(ulegb.fns))
		for _, f := range *ulegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ulegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ulegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// UsageLedgerEntrySelect is the builder for selecting fields of UsageLedgerEntry entities.
type UsageLedgerEntrySelect struct {
	*UsageLedgerEntryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ules *UsageLedgerEntrySelect) Aggregate(fns ...AggregateFunc) *UsageLedgerEntrySelect {
	ules.fns = append(ules.fns, fns...)
	return ules
}

// Scan applies the selector query and scans the result into the given value.
func (ules *UsageLedgerEntrySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ules.ctx, ent.OpQuerySelect)
	if err := ules.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UsageLedgerEntryQuery, *UsageLedgerEntrySelect](ctx, ules.UsageLedgerEntryQuery, ules, ules.inters, v)
}

func (ules *UsageLedgerEntrySelect) sqlScan(ctx context.Context, root *UsageLedgerEntryQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ules.fns))
	for _, fn := range ules.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ules.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ules.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
