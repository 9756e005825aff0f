// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringledger/ringledger/ent/callrecord"
	"github.com/ringledger/ringledger/ent/predicate"
	"github.com/ringledger/ringledger/ent/usageledgerentry"
)

// UsageLedgerEntryUpdate is the builder for updating UsageLedgerEntry entities.
type UsageLedgerEntryUpdate struct {
	config
	hooks    []Hook
	mutation *UsageLedgerEntryMutation
}

// Where appends a list predicates to the UsageLedgerEntryUpdate builder.
func (uleu *UsageLedgerEntryUpdate) Where(ps ...predicate.UsageLedgerEntry) *UsageLedgerEntryUpdate {
	uleu.mutation.Where(ps...)
	return uleu
}

// SetTenantID sets the "tenant_id" field.
func (uleu *UsageLedgerEntryUpdate) SetTenantID(i int) *UsageLedgerEntryUpdate {
	uleu.mutation.ResetTenantID()
	uleu.mutation.SetTenantID(i)
	return uleu
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (uleu *UsageLedgerEntryUpdate) SetNillableTenantID(i *int) *UsageLedgerEntryUpdate {
	if i != nil {
		uleu.SetTenantID(*i)
	}
	return uleu
}

// AddTenantID adds i to the "tenant_id" field.
func (uleu *UsageLedgerEntryUpdate) AddTenantID(i int) *UsageLedgerEntryUpdate {
	uleu.mutation.AddTenantID(i)
	return uleu
}

// SetCallRecordID sets the "call_record_id" field.
func (uleu *UsageLedgerEntryUpdate) SetCallRecordID(i int) *UsageLedgerEntryUpdate {
	uleu.mutation.SetCallRecordID(i)
	return uleu
}

// SetNillableCallRecordID sets the "call_record_id" field if the given value is not nil.
func (uleu *UsageLedgerEntryUpdate) SetNillableCallRecordID(i *int) *UsageLedgerEntryUpdate {
	if i != nil {
		uleu.SetCallRecordID(*i)
	}
	return uleu
}

// SetAmountCents sets the "amount_cents" field.
func (uleu *UsageLedgerEntryUpdate) SetAmountCents(i int64) *UsageLedgerEntryUpdate {
	uleu.mutation.ResetAmountCents()
	uleu.mutation.SetAmountCents(i)
	return uleu
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (uleu *UsageLedgerEntryUpdate) SetNillableAmountCents(i *int64) *UsageLedgerEntryUpdate {
	if i != nil {
		uleu.SetAmountCents(*i)
	}
	return uleu
}

// AddAmountCents adds i to the "amount_cents" field.
func (uleu *UsageLedgerEntryUpdate) AddAmountCents(i int64) *UsageLedgerEntryUpdate {
	uleu.mutation.AddAmountCents(i)
	return uleu
}

// SetEntryType sets the "entry_type" field.
func (uleu *UsageLedgerEntryUpdate) SetEntryType(ut usageledgerentry.EntryType) *UsageLedgerEntryUpdate {
	uleu.mutation.SetEntryType(ut)
	return uleu
}

// SetNillableEntryType sets the "entry_type" field if the given value is not nil.
func (uleu *UsageLedgerEntryUpdate) SetNillableEntryType(ut *usageledgerentry.EntryType) *UsageLedgerEntryUpdate {
	if ut != nil {
		uleu.SetEntryType(*ut)
	}
	return uleu
}

// SetOccurredAt sets the "occurred_at" field.
func (uleu *UsageLedgerEntryUpdate) SetOccurredAt(t time.Time) *UsageLedgerEntryUpdate {
	uleu.mutation.SetOccurredAt(t)
	return uleu
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (uleu *UsageLedgerEntryUpdate) SetNillableOccurredAt(t *time.Time) *UsageLedgerEntryUpdate {
	if t != nil {
		uleu.SetOccurredAt(*t)
	}
	return uleu
}

// SetReportedAt sets the "reported_at" field.
func (uleu *UsageLedgerEntryUpdate) SetReportedAt(t time.Time) *UsageLedgerEntryUpdate {
	uleu.mutation.SetReportedAt(t)
	return uleu
}

// SetNillableReportedAt sets the "reported_at" field if the given value is not nil.
func (uleu *UsageLedgerEntryUpdate) SetNillableReportedAt(t *time.Time) *UsageLedgerEntryUpdate {
	if t != nil {
		uleu.SetReportedAt(*t)
	}
	return uleu
}

// ClearReportedAt clears the value of the "reported_at" field.
func (uleu *UsageLedgerEntryUpdate) ClearReportedAt() *UsageLedgerEntryUpdate {
	uleu.mutation.ClearReportedAt()
	return uleu
}

// SetUpdatedAt sets the "updated_at" field.
func (uleu *UsageLedgerEntryUpdate) SetUpdatedAt(t time.Time) *UsageLedgerEntryUpdate {
	uleu.mutation.SetUpdatedAt(t)
	return uleu
}

// SetCallRecord sets the "call_record" edge to the CallRecord entity.
func (uleu *UsageLedgerEntryUpdate) SetCallRecord(c *CallRecord) *UsageLedgerEntryUpdate {
	return uleu.SetCallRecordID(c.ID)
}

// Mutation returns the UsageLedgerEntryMutation object of the builder.
func (uleu *UsageLedgerEntryUpdate) Mutation() *UsageLedgerEntryMutation {
	return uleu.mutation
}

// ClearCallRecord clears the "call_record" edge to the CallRecord entity.
func (uleu *UsageLedgerEntryUpdate) ClearCallRecord() *UsageLedgerEntryUpdate {
	uleu.mutation.ClearCallRecord()
	return uleu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (uleu *UsageLedgerEntryUpdate) Save(ctx context.Context) (int, error) {
	uleu.defaults()
	return withHooks(ctx, uleu.sqlSave, uleu.mutation, uleu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uleu *UsageLedgerEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := uleu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (uleu *UsageLedgerEntryUpdate) Exec(ctx context.Context) error {
	_, err := uleu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uleu *UsageLedgerEntryUpdate) ExecX(ctx context.Context) {
	if err := uleu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (uleu *UsageLedgerEntryUpdate) defaults() {
	if _, ok := uleu.mutation.UpdatedAt(); !ok {
		v := usageledgerentry.UpdateDefaultUpdatedAt()
		uleu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uleu *UsageLedgerEntryUpdate) check() error {
	if v, ok := uleu.mutation.AmountCents(); ok {
		if err := usageledgerentry.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`ent: validator failed for field "UsageLedgerEntry.amount_cents": %w`, err)}
		}
	}
	if v, ok := uleu.mutation.EntryType(); ok {
		if err := usageledgerentry.EntryTypeValidator(v); err != nil {
			return &ValidationError{Name: "entry_type", err: fmt.Errorf(`ent: validator failed for field "UsageLedgerEntry.entry_type": %w`, err)}
		}
	}
	if uleu.mutation.CallRecordCleared() && len(uleu.mutation.CallRecordIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UsageLedgerEntry.call_record"`)
	}
	return nil
}

func (uleu *UsageLedgerEntryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := uleu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(usageledgerentry.Table, usageledgerentry.Columns, sqlgraph.NewFieldSpec(usageledgerentry.FieldID, field.TypeInt))
	if ps := uleu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uleu.mutation.TenantID(); ok {
		_spec.SetField(usageledgerentry.FieldTenantID, field.TypeInt, value)
	}
	if value, ok := uleu.mutation.AddedTenantID(); ok {
		_spec.AddField(usageledgerentry.FieldTenantID, field.TypeInt, value)
	}
	if value, ok := uleu.mutation.AmountCents(); ok {
		_spec.SetField(usageledgerentry.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := uleu.mutation.AddedAmountCents(); ok {
		_spec.AddField(usageledgerentry.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := uleu.mutation.EntryType(); ok {
		_spec.SetField(usageledgerentry.FieldEntryType, field.TypeEnum, value)
	}
	if value, ok := uleu.mutation.OccurredAt(); ok {
		_spec.SetField(usageledgerentry.FieldOccurredAt, field.TypeTime, value)
	}
	if value, ok := uleu.mutation.ReportedAt(); ok {
		_spec.SetField(usageledgerentry.FieldReportedAt, field.TypeTime, value)
	}
	if uleu.mutation.ReportedAtCleared() {
		_spec.ClearField(usageledgerentry.FieldReportedAt, field.TypeTime)
	}
	if value, ok := uleu.mutation.UpdatedAt(); ok {
		_spec.SetField(usageledgerentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if uleu.mutation.CallRecordCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   usageledgerentry.CallRecordTable,
			Columns: []string{usageledgerentry.CallRecordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := uleu.mutation.CallRecordIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   usageledgerentry.CallRecordTable,
			Columns: []string{usageledgerentry.CallRecordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, uleu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usageledgerentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	uleu.mutation.done = true
	return n, nil
}

// UsageLedgerEntryUpdateOne is the builder for updating a single UsageLedgerEntry entity.
type UsageLedgerEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageLedgerEntryMutation
}

// SetTenantID sets the "tenant_id" field.
func (uleuo *UsageLedgerEntryUpdateOne) SetTenantID(i int) *UsageLedgerEntryUpdateOne {
	uleuo.mutation.ResetTenantID()
	uleuo.mutation.SetTenantID(i)
	return uleuo
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (uleuo *UsageLedgerEntryUpdateOne) SetNillableTenantID(i *int) *UsageLedgerEntryUpdateOne {
	if i != nil {
		uleuo.SetTenantID(*i)
	}
	return uleuo
}

// AddTenantID adds i to the "tenant_id" field.
func (uleuo *UsageLedgerEntryUpdateOne) AddTenantID(i int) *UsageLedgerEntryUpdateOne {
	uleuo.mutation.AddTenantID(i)
	return uleuo
}

// SetCallRecordID sets the "call_record_id" field.
func (uleuo *UsageLedgerEntryUpdateOne) SetCallRecordID(i int) *UsageLedgerEntryUpdateOne {
	uleuo.mutation.SetCallRecordID(i)
	return uleuo
}

// SetNillableCallRecordID sets the "call_record_id" field if the given value is not nil.
func (uleuo *UsageLedgerEntryUpdateOne) SetNillableCallRecordID(i *int) *UsageLedgerEntryUpdateOne {
	if i != nil {
		uleuo.SetCallRecordID(*i)
	}
	return uleuo
}

// SetAmountCents sets the "amount_cents" field.
func (uleuo *UsageLedgerEntryUpdateOne) SetAmountCents(i int64) *UsageLedgerEntryUpdateOne {
	uleuo.mutation.ResetAmountCents()
	uleuo.mutation.SetAmountCents(i)
	return uleuo
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (uleuo *UsageLedgerEntryUpdateOne) SetNillableAmountCents(i *int64) *UsageLedgerEntryUpdateOne {
	if i != nil {
		uleuo.SetAmountCents(*i)
	}
	return uleuo
}

// AddAmountCents adds i to the "amount_cents" field.
func (uleuo *UsageLedgerEntryUpdateOne) AddAmountCents(i int64) *UsageLedgerEntryUpdateOne {
	uleuo.mutation.AddAmountCents(i)
	return uleuo
}

// SetEntryType sets the "entry_type" field.
func (uleuo *UsageLedgerEntryUpdateOne) SetEntryType(ut usageledgerentry.EntryType) *UsageLedgerEntryUpdateOne {
	uleuo.mutation.SetEntryType(ut)
	return uleuo
}

// SetNillableEntryType sets the "entry_type" field if the given value is not nil.
func (uleuo *UsageLedgerEntryUpdateOne) SetNillableEntryType(ut *usageledgerentry.EntryType) *UsageLedgerEntryUpdateOne {
	if ut != nil {
		uleuo.SetEntryType(*ut)
	}
	return uleuo
}

// SetOccurredAt sets the "occurred_at" field.
func (uleuo *UsageLedgerEntryUpdateOne) SetOccurredAt(t time.Time) *UsageLedgerEntryUpdateOne {
	uleuo.mutation.SetOccurredAt(t)
	return uleuo
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (uleuo *UsageLedgerEntryUpdateOne) SetNillableOccurredAt(t *time.Time) *UsageLedgerEntryUpdateOne {
	if t != nil {
		uleuo.SetOccurredAt(*t)
	}
	return uleuo
}

// SetReportedAt sets the "reported_at" field.
func (uleuo *UsageLedgerEntryUpdateOne) SetReportedAt(t time.Time) *UsageLedgerEntryUpdateOne {
	uleuo.mutation.SetReportedAt(t)
	return uleuo
}

// SetNillableReportedAt sets the "reported_at" field if the given value is not nil.
func (uleuo *UsageLedgerEntryUpdateOne) SetNillableReportedAt(t *time.Time) *UsageLedgerEntryUpdateOne {
	if t != nil {
		uleuo.SetReportedAt(*t)
	}
	return uleuo
}

// ClearReportedAt clears the value of the "reported_at" field.
func (uleuo *UsageLedgerEntryUpdateOne) ClearReportedAt() *UsageLedgerEntryUpdateOne {
	uleuo.mutation.ClearReportedAt()
	return uleuo
}

// SetUpdatedAt sets the "updated_at" field.
func (uleuo *UsageLedgerEntryUpdateOne) SetUpdatedAt(t time.Time) *UsageLedgerEntryUpdateOne {
	uleuo.mutation.SetUpdatedAt(t)
	return uleuo
}

// SetCallRecord sets the "call_record" edge to the CallRecord entity.
func (uleuo *UsageLedgerEntryUpdateOne) SetCallRecord(c *CallRecord) *UsageLedgerEntryUpdateOne {
	return uleuo.SetCallRecordID(c.ID)
}

// Mutation returns the UsageLedgerEntryMutation object of the builder.
func (uleuo *UsageLedgerEntryUpdateOne) Mutation() *UsageLedgerEntryMutation {
	return uleuo.mutation
}

// ClearCallRecord clears the "call_record" edge to the CallRecord entity.
func (uleuo *UsageLedgerEntryUpdateOne) ClearCallRecord() *UsageLedgerEntryUpdateOne {
	uleuo.mutation.ClearCallRecord()
	return uleuo
}

// Where appends a list predicates to the UsageLedgerEntryUpdate builder.
func (uleuo *UsageLedgerEntryUpdateOne) Where(ps ...predicate.UsageLedgerEntry) *UsageLedgerEntryUpdateOne {
	uleuo.mutation.Where(ps...)
	return uleuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (uleuo *UsageLedgerEntryUpdateOne) Select(field string, fields ...string) *UsageLedgerEntryUpdateOne {
	uleuo.fields = append([]string{field}, fields...)
	return uleuo
}

// Save executes the query and returns the updated UsageLedgerEntry entity.
func (uleuo *UsageLedgerEntryUpdateOne) Save(ctx context.Context) (*UsageLedgerEntry, error) {
	uleuo.defaults()
	return withHooks(ctx, uleuo.sqlSave, uleuo.mutation, uleuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uleuo *UsageLedgerEntryUpdateOne) SaveX(ctx context.Context) *UsageLedgerEntry {
	node, err := uleuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (uleuo *UsageLedgerEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := uleuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uleuo *UsageLedgerEntryUpdateOne) ExecX(ctx context.Context) {
	if err := uleuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (uleuo *UsageLedgerEntryUpdateOne) defaults() {
	if _, ok := uleuo.mutation.UpdatedAt(); !ok {
		v := usageledgerentry.UpdateDefaultUpdatedAt()
		uleuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uleuo *UsageLedgerEntryUpdateOne) check() error {
	if v, ok := uleuo.mutation.AmountCents(); ok {
		if err := usageledgerentry.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`ent: validator failed for field "UsageLedgerEntry.amount_cents": %w`, err)}
		}
	}
	if v, ok := uleuo.mutation.EntryType(); ok {
		if err := usageledgerentry.EntryTypeValidator(v); err != nil {
			return &ValidationError{Name: "entry_type", err: fmt.Errorf(`ent: validator failed for field "UsageLedgerEntry.entry_type": %w`, err)}
		}
	}
	if uleuo.mutation.CallRecordCleared() && len(uleuo.mutation.CallRecordIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UsageLedgerEntry.call_record"`)
	}
	return nil
}

func (uleuo *UsageLedgerEntryUpdateOne) sqlSave(ctx context.Context) (_node *UsageLedgerEntry, err error) {
	if err := uleuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usageledgerentry.Table, usageledgerentry.Columns, sqlgraph.NewFieldSpec(usageledgerentry.FieldID, field.TypeInt))
	id, ok := uleuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageLedgerEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := uleuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usageledgerentry.FieldID)
		for _, f := range fields {
			if !usageledgerentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usageledgerentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := uleuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uleuo.mutation.TenantID(); ok {
		_spec.SetField(usageledgerentry.FieldTenantID, field.TypeInt, value)
	}
	if value, ok := uleuo.mutation.AddedTenantID(); ok {
		_spec.AddField(usageledgerentry.FieldTenantID, field.TypeInt, value)
	}
	if value, ok := uleuo.mutation.AmountCents(); ok {
		_spec.SetField(usageledgerentry.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := uleuo.mutation.AddedAmountCents(); ok {
		_spec.AddField(usageledgerentry.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := uleuo.mutation.EntryType(); ok {
		_spec.SetField(usageledgerentry.FieldEntryType, field.TypeEnum, value)
	}
	if value, ok := uleuo.mutation.OccurredAt(); ok {
		_spec.SetField(usageledgerentry.FieldOccurredAt, field.TypeTime, value)
	}
	if value, ok := uleuo.mutation.ReportedAt(); ok {
		_spec.SetField(usageledgerentry.FieldReportedAt, field.TypeTime, value)
	}
	if uleuo.mutation.ReportedAtCleared() {
		_spec.ClearField(usageledgerentry.FieldReportedAt, field.TypeTime)
	}
	if value, ok := uleuo.mutation.UpdatedAt(); ok {
		_spec.SetField(usageledgerentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if uleuo.mutation.CallRecordCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   usageledgerentry.CallRecordTable,
			Columns: []string{usageledgerentry.CallRecordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := uleuo.mutation.CallRecordIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   usageledgerentry.CallRecordTable,
			Columns: []string{usageledgerentry.CallRecordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UsageLedgerEntry{config: uleuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, uleuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usageledgerentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	uleuo.mutation.done = true
	return _node, nil
}
