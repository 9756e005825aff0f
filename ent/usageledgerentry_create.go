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
	"github.com/ringledger/ringledger/ent/usageledgerentry"
)

// UsageLedgerEntryCreate is the builder for creating a UsageLedgerEntry entity.
type UsageLedgerEntryCreate struct {
	config
	mutation *UsageLedgerEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (ulec *UsageLedgerEntryCreate) SetTenantID(i int) *UsageLedgerEntryCreate {
	ulec.mutation.SetTenantID(i)
	return ulec
}

// SetCallRecordID sets the "call_record_id" field.
func (ulec *UsageLedgerEntryCreate) SetCallRecordID(i int) *UsageLedgerEntryCreate {
	ulec.mutation.SetCallRecordID(i)
	return ulec
}

// SetAmountCents sets the "amount_cents" field.
func (ulec *UsageLedgerEntryCreate) SetAmountCents(i int64) *UsageLedgerEntryCreate {
	ulec.mutation.SetAmountCents(i)
	return ulec
}

// SetEntryType sets the "entry_type" field.
func (ulec *UsageLedgerEntryCreate) SetEntryType(ut usageledgerentry.EntryType) *UsageLedgerEntryCreate {
	ulec.mutation.SetEntryType(ut)
	return ulec
}

// SetOccurredAt sets the "occurred_at" field.
func (ulec *UsageLedgerEntryCreate) SetOccurredAt(t time.Time) *UsageLedgerEntryCreate {
	ulec.mutation.SetOccurredAt(t)
	return ulec
}

// SetReportedAt sets the "reported_at" field.
func (ulec *UsageLedgerEntryCreate) SetReportedAt(t time.Time) *UsageLedgerEntryCreate {
	ulec.mutation.SetReportedAt(t)
	return ulec
}

// SetNillableReportedAt sets the "reported_at" field if the given value is not nil.
func (ulec *UsageLedgerEntryCreate) SetNillableReportedAt(t *time.Time) *UsageLedgerEntryCreate {
	if t != nil {
		ulec.SetReportedAt(*t)
	}
	return ulec
}

// SetCreatedAt sets the "created_at" field.
func (ulec *UsageLedgerEntryCreate) SetCreatedAt(t time.Time) *UsageLedgerEntryCreate {
	ulec.mutation.SetCreatedAt(t)
	return ulec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ulec *UsageLedgerEntryCreate) SetNillableCreatedAt(t *time.Time) *UsageLedgerEntryCreate {
	if t != nil {
		ulec.SetCreatedAt(*t)
	}
	return ulec
}

// SetUpdatedAt sets the "updated_at" field.
func (ulec *UsageLedgerEntryCreate) SetUpdatedAt(t time.Time) *UsageLedgerEntryCreate {
	ulec.mutation.SetUpdatedAt(t)
	return ulec
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ulec *UsageLedgerEntryCreate) SetNillableUpdatedAt(t *time.Time) *UsageLedgerEntryCreate {
	if t != nil {
		ulec.SetUpdatedAt(*t)
	}
	return ulec
}

// SetCallRecord sets the "call_record" edge to the CallRecord entity.
func (ulec *UsageLedgerEntryCreate) SetCallRecord(c *CallRecord) *UsageLedgerEntryCreate {
	return ulec.SetCallRecordID(c.ID)
}

// Mutation returns the UsageLedgerEntryMutation object of the builder.
func (ulec *UsageLedgerEntryCreate) Mutation() *UsageLedgerEntryMutation {
	return ulec.mutation
}

// Save creates the UsageLedgerEntry in the database.
func (ulec *UsageLedgerEntryCreate) Save(ctx context.Context) (*UsageLedgerEntry, error) {
	ulec.defaults()
	return withHooks(ctx, ulec.sqlSave, ulec.mutation, ulec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ulec *UsageLedgerEntryCreate) SaveX(ctx context.Context) *UsageLedgerEntry {
	v, err := ulec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ulec *UsageLedgerEntryCreate) Exec(ctx context.Context) error {
	_, err := ulec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ulec *UsageLedgerEntryCreate) ExecX(ctx context.Context) {
	if err := ulec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ulec *UsageLedgerEntryCreate) defaults() {
	if _, ok := ulec.mutation.CreatedAt(); !ok {
		v := usageledgerentry.DefaultCreatedAt()
		ulec.mutation.SetCreatedAt(v)
	}
	if _, ok := ulec.mutation.UpdatedAt(); !ok {
		v := usageledgerentry.DefaultUpdatedAt()
		ulec.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ulec *UsageLedgerEntryCreate) check() error {
	if _, ok := ulec.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "UsageLedgerEntry.tenant_id"`)}
	}
	if _, ok := ulec.mutation.CallRecordID(); !ok {
		return &ValidationError{Name: "call_record_id", err: errors.New(`ent: missing required field "UsageLedgerEntry.call_record_id"`)}
	}
	if _, ok := ulec.mutation.AmountCents(); !ok {
		return &ValidationError{Name: "amount_cents", err: errors.New(`ent: missing required field "UsageLedgerEntry.amount_cents"`)}
	}
	if v, ok := ulec.mutation.AmountCents(); ok {
		if err := usageledgerentry.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`ent: validator failed for field "UsageLedgerEntry.amount_cents": %w`, err)}
		}
	}
	if _, ok := ulec.mutation.EntryType(); !ok {
		return &ValidationError{Name: "entry_type", err: errors.New(`ent: missing required field "UsageLedgerEntry.entry_type"`)}
	}
	if v, ok := ulec.mutation.EntryType(); ok {
		if err := usageledgerentry.EntryTypeValidator(v); err != nil {
			return &ValidationError{Name: "entry_type", err: fmt.Errorf(`ent: validator failed for field "UsageLedgerEntry.entry_type": %w`, err)}
		}
	}
	if _, ok := ulec.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "UsageLedgerEntry.occurred_at"`)}
	}
	if _, ok := ulec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UsageLedgerEntry.created_at"`)}
	}
	if _, ok := ulec.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UsageLedgerEntry.updated_at"`)}
	}
	if len(ulec.mutation.CallRecordIDs()) == 0 {
		return &ValidationError{Name: "call_record", err: errors.New(`ent: missing required edge "UsageLedgerEntry.call_record"`)}
	}
	return nil
}

func (ulec *UsageLedgerEntryCreate) sqlSave(ctx context.Context) (*UsageLedgerEntry, error) {
	if err := ulec.check(); err != nil {
		return nil, err
	}
	_node, _spec := ulec.createSpec()
	if err := sqlgraph.CreateNode(ctx, ulec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ulec.mutation.id = &_node.ID
	ulec.mutation.done = true
	return _node, nil
}

func (ulec *UsageLedgerEntryCreate) createSpec() (*UsageLedgerEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageLedgerEntry{config: ulec.config}
		_spec = sqlgraph.NewCreateSpec(usageledgerentry.Table, sqlgraph.NewFieldSpec(usageledgerentry.FieldID, field.TypeInt))
	)
	_spec.OnConflict = ulec.conflict
	if value, ok := ulec.mutation.TenantID(); ok {
		_spec.SetField(usageledgerentry.FieldTenantID, field.TypeInt, value)
		_node.TenantID = value
	}
	if value, ok := ulec.mutation.AmountCents(); ok {
		_spec.SetField(usageledgerentry.FieldAmountCents, field.TypeInt64, value)
		_node.AmountCents = value
	}
	if value, ok := ulec.mutation.EntryType(); ok {
		_spec.SetField(usageledgerentry.FieldEntryType, field.TypeEnum, value)
		_node.EntryType = value
	}
	if value, ok := ulec.mutation.OccurredAt(); ok {
		_spec.SetField(usageledgerentry.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if value, ok := ulec.mutation.ReportedAt(); ok {
		_spec.SetField(usageledgerentry.FieldReportedAt, field.TypeTime, value)
		_node.ReportedAt = &value
	}
	if value, ok := ulec.mutation.CreatedAt(); ok {
		_spec.SetField(usageledgerentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ulec.mutation.UpdatedAt(); ok {
		_spec.SetField(usageledgerentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := ulec.mutation.CallRecordIDs(); len(nodes) > 0 {
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
		_node.CallRecordID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UsageLedgerEntry.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UsageLedgerEntryUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (ulec *UsageLedgerEntryCreate) OnConflict(opts ...sql.ConflictOption) *UsageLedgerEntryUpsertOne {
	ulec.conflict = opts
	return &UsageLedgerEntryUpsertOne{
		create: ulec,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UsageLedgerEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ulec *UsageLedgerEntryCreate) OnConflictColumns(columns ...string) *UsageLedgerEntryUpsertOne {
	ulec.conflict = append(ulec.conflict, sql.ConflictColumns(columns...))
	return &UsageLedgerEntryUpsertOne{
		create: ulec,
	}
}

type (
	// UsageLedgerEntryUpsertOne is the builder for "upsert"-ing
	//  one UsageLedgerEntry node.
	UsageLedgerEntryUpsertOne struct {
		create *UsageLedgerEntryCreate
	}

	// UsageLedgerEntryUpsert is the "OnConflict" setter.
	UsageLedgerEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetTenantID sets the "tenant_id" field.
func (u *UsageLedgerEntryUpsert) SetTenantID(v int) *UsageLedgerEntryUpsert {
	u.Set(usageledgerentry.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsert) UpdateTenantID() *UsageLedgerEntryUpsert {
	u.SetExcluded(usageledgerentry.FieldTenantID)
	return u
}

// AddTenantID adds v to the "tenant_id" field.
func (u *UsageLedgerEntryUpsert) AddTenantID(v int) *UsageLedgerEntryUpsert {
	u.Add(usageledgerentry.FieldTenantID, v)
	return u
}

// SetCallRecordID sets the "call_record_id" field.
func (u *UsageLedgerEntryUpsert) SetCallRecordID(v int) *UsageLedgerEntryUpsert {
	u.Set(usageledgerentry.FieldCallRecordID, v)
	return u
}

// UpdateCallRecordID sets the "call_record_id" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsert) UpdateCallRecordID() *UsageLedgerEntryUpsert {
	u.SetExcluded(usageledgerentry.FieldCallRecordID)
	return u
}

// SetAmountCents sets the "amount_cents" field.
func (u *UsageLedgerEntryUpsert) SetAmountCents(v int64) *UsageLedgerEntryUpsert {
	u.Set(usageledgerentry.FieldAmountCents, v)
	return u
}

// UpdateAmountCents sets the "amount_cents" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsert) UpdateAmountCents() *UsageLedgerEntryUpsert {
	u.SetExcluded(usageledgerentry.FieldAmountCents)
	return u
}

// AddAmountCents adds v to the "amount_cents" field.
func (u *UsageLedgerEntryUpsert) AddAmountCents(v int64) *UsageLedgerEntryUpsert {
	u.Add(usageledgerentry.FieldAmountCents, v)
	return u
}

// SetEntryType sets the "entry_type" field.
func (u *UsageLedgerEntryUpsert) SetEntryType(v usageledgerentry.EntryType) *UsageLedgerEntryUpsert {
	u.Set(usageledgerentry.FieldEntryType, v)
	return u
}

// UpdateEntryType sets the "entry_type" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsert) UpdateEntryType() *UsageLedgerEntryUpsert {
	u.SetExcluded(usageledgerentry.FieldEntryType)
	return u
}

// SetOccurredAt sets the "occurred_at" field.
func (u *UsageLedgerEntryUpsert) SetOccurredAt(v time.Time) *UsageLedgerEntryUpsert {
	u.Set(usageledgerentry.FieldOccurredAt, v)
	return u
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsert) UpdateOccurredAt() *UsageLedgerEntryUpsert {
	u.SetExcluded(usageledgerentry.FieldOccurredAt)
	return u
}

// SetReportedAt sets the "reported_at" field.
func (u *UsageLedgerEntryUpsert) SetReportedAt(v time.Time) *UsageLedgerEntryUpsert {
	u.Set(usageledgerentry.FieldReportedAt, v)
	return u
}

// UpdateReportedAt sets the "reported_at" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsert) UpdateReportedAt() *UsageLedgerEntryUpsert {
	u.SetExcluded(usageledgerentry.FieldReportedAt)
	return u
}

// ClearReportedAt clears the value of the "reported_at" field.
func (u *UsageLedgerEntryUpsert) ClearReportedAt() *UsageLedgerEntryUpsert {
	u.SetNull(usageledgerentry.FieldReportedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UsageLedgerEntryUpsert) SetUpdatedAt(v time.Time) *UsageLedgerEntryUpsert {
	u.Set(usageledgerentry.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsert) UpdateUpdatedAt() *UsageLedgerEntryUpsert {
	u.SetExcluded(usageledgerentry.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.UsageLedgerEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UsageLedgerEntryUpsertOne) UpdateNewValues() *UsageLedgerEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(usageledgerentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UsageLedgerEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UsageLedgerEntryUpsertOne) Ignore() *UsageLedgerEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UsageLedgerEntryUpsertOne) DoNothing() *UsageLedgerEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UsageLedgerEntryCreate.OnConflict
// documentation for more info.
func (u *UsageLedgerEntryUpsertOne) Update(set func(*UsageLedgerEntryUpsert)) *UsageLedgerEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UsageLedgerEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *UsageLedgerEntryUpsertOne) SetTenantID(v int) *UsageLedgerEntryUpsertOne {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.SetTenantID(v)
	})
}

// AddTenantID adds v to the "tenant_id" field.
func (u *UsageLedgerEntryUpsertOne) AddTenantID(v int) *UsageLedgerEntryUpsertOne {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.AddTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsertOne) UpdateTenantID() *UsageLedgerEntryUpsertOne {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.UpdateTenantID()
	})
}

// SetCallRecordID sets the "call_record_id" field.
func (u *UsageLedgerEntryUpsertOne) SetCallRecordID(v int) *UsageLedgerEntryUpsertOne {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.SetCallRecordID(v)
	})
}

// UpdateCallRecordID sets the "call_record_id" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsertOne) UpdateCallRecordID() *UsageLedgerEntryUpsertOne {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.UpdateCallRecordID()
	})
}

// SetAmountCents sets the "amount_cents" field.
func (u *UsageLedgerEntryUpsertOne) SetAmountCents(v int64) *UsageLedgerEntryUpsertOne {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.SetAmountCents(v)
	})
}

// AddAmountCents adds v to the "amount_cents" field.
func (u *UsageLedgerEntryUpsertOne) AddAmountCents(v int64) *UsageLedgerEntryUpsertOne {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.AddAmountCents(v)
	})
}

// UpdateAmountCents sets the "amount_cents" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsertOne) UpdateAmountCents() *UsageLedgerEntryUpsertOne {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.UpdateAmountCents()
	})
}

// SetEntryType sets the "entry_type" field.
func (u *UsageLedgerEntryUpsertOne) SetEntryType(v usageledgerentry.EntryType) *UsageLedgerEntryUpsertOne {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.SetEntryType(v)
	})
}

// UpdateEntryType sets the "entry_type" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsertOne) UpdateEntryType() *UsageLedgerEntryUpsertOne {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.UpdateEntryType()
	})
}

// SetOccurredAt sets the "occurred_at" field.
func (u *UsageLedgerEntryUpsertOne) SetOccurredAt(v time.Time) *UsageLedgerEntryUpsertOne {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.SetOccurredAt(v)
	})
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsertOne) UpdateOccurredAt() *UsageLedgerEntryUpsertOne {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.UpdateOccurredAt()
	})
}

// SetReportedAt sets the "reported_at" field.
func (u *UsageLedgerEntryUpsertOne) SetReportedAt(v time.Time) *UsageLedgerEntryUpsertOne {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.SetReportedAt(v)
	})
}

// UpdateReportedAt sets the "reported_at" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsertOne) UpdateReportedAt() *UsageLedgerEntryUpsertOne {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.UpdateReportedAt()
	})
}

// ClearReportedAt clears the value of the "reported_at" field.
func (u *UsageLedgerEntryUpsertOne) ClearReportedAt() *UsageLedgerEntryUpsertOne {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.ClearReportedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UsageLedgerEntryUpsertOne) SetUpdatedAt(v time.Time) *UsageLedgerEntryUpsertOne {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsertOne) UpdateUpdatedAt() *UsageLedgerEntryUpsertOne {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UsageLedgerEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UsageLedgerEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UsageLedgerEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UsageLedgerEntryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UsageLedgerEntryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UsageLedgerEntryCreateBulk is the builder for creating many UsageLedgerEntry entities in bulk.
type UsageLedgerEntryCreateBulk struct {
	config
	err      error
	builders []*UsageLedgerEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the UsageLedgerEntry entities in the database.
func (ulecb *UsageLedgerEntryCreateBulk) Save(ctx context.Context) ([]*UsageLedgerEntry, error) {
	if ulecb.err != nil {
		return nil, ulecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ulecb.builders))
	nodes := make([]*UsageLedgerEntry, len(ulecb.builders))
	mutators := make([]Mutator, len(ulecb.builders))
	for i := range ulecb.builders {
		func(i int, root context.Context) {
			builder := ulecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageLedgerEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, ulecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = ulecb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ulecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, ulecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ulecb *UsageLedgerEntryCreateBulk) SaveX(ctx context.Context) []*UsageLedgerEntry {
	v, err := ulecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ulecb *UsageLedgerEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := ulecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ulecb *UsageLedgerEntryCreateBulk) ExecX(ctx context.Context) {
	if err := ulecb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UsageLedgerEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UsageLedgerEntryUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (ulecb *UsageLedgerEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *UsageLedgerEntryUpsertBulk {
	ulecb.conflict = opts
	return &UsageLedgerEntryUpsertBulk{
		create: ulecb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UsageLedgerEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ulecb *UsageLedgerEntryCreateBulk) OnConflictColumns(columns ...string) *UsageLedgerEntryUpsertBulk {
	ulecb.conflict = append(ulecb.conflict, sql.ConflictColumns(columns...))
	return &UsageLedgerEntryUpsertBulk{
		create: ulecb,
	}
}

// UsageLedgerEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of UsageLedgerEntry nodes.
type UsageLedgerEntryUpsertBulk struct {
	create *UsageLedgerEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UsageLedgerEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UsageLedgerEntryUpsertBulk) UpdateNewValues() *UsageLedgerEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(usageledgerentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UsageLedgerEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UsageLedgerEntryUpsertBulk) Ignore() *UsageLedgerEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UsageLedgerEntryUpsertBulk) DoNothing() *UsageLedgerEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UsageLedgerEntryCreateBulk.OnConflict
// documentation for more info.
func (u *UsageLedgerEntryUpsertBulk) Update(set func(*UsageLedgerEntryUpsert)) *UsageLedgerEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UsageLedgerEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *UsageLedgerEntryUpsertBulk) SetTenantID(v int) *UsageLedgerEntryUpsertBulk {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.SetTenantID(v)
	})
}

// AddTenantID adds v to the "tenant_id" field.
func (u *UsageLedgerEntryUpsertBulk) AddTenantID(v int) *UsageLedgerEntryUpsertBulk {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.AddTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsertBulk) UpdateTenantID() *UsageLedgerEntryUpsertBulk {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.UpdateTenantID()
	})
}

// SetCallRecordID sets the "call_record_id" field.
func (u *UsageLedgerEntryUpsertBulk) SetCallRecordID(v int) *UsageLedgerEntryUpsertBulk {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.SetCallRecordID(v)
	})
}

// UpdateCallRecordID sets the "call_record_id" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsertBulk) UpdateCallRecordID() *UsageLedgerEntryUpsertBulk {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.UpdateCallRecordID()
	})
}

// SetAmountCents sets the "amount_cents" field.
func (u *UsageLedgerEntryUpsertBulk) SetAmountCents(v int64) *UsageLedgerEntryUpsertBulk {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.SetAmountCents(v)
	})
}

// AddAmountCents adds v to the "amount_cents" field.
func (u *UsageLedgerEntryUpsertBulk) AddAmountCents(v int64) *UsageLedgerEntryUpsertBulk {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.AddAmountCents(v)
	})
}

// UpdateAmountCents sets the "amount_cents" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsertBulk) UpdateAmountCents() *UsageLedgerEntryUpsertBulk {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.UpdateAmountCents()
	})
}

// SetEntryType sets the "entry_type" field.
func (u *UsageLedgerEntryUpsertBulk) SetEntryType(v usageledgerentry.EntryType) *UsageLedgerEntryUpsertBulk {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.SetEntryType(v)
	})
}

// UpdateEntryType sets the "entry_type" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsertBulk) UpdateEntryType() *UsageLedgerEntryUpsertBulk {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.UpdateEntryType()
	})
}

// SetOccurredAt sets the "occurred_at" field.
func (u *UsageLedgerEntryUpsertBulk) SetOccurredAt(v time.Time) *UsageLedgerEntryUpsertBulk {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.SetOccurredAt(v)
	})
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsertBulk) UpdateOccurredAt() *UsageLedgerEntryUpsertBulk {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.UpdateOccurredAt()
	})
}

// SetReportedAt sets the "reported_at" field.
func (u *UsageLedgerEntryUpsertBulk) SetReportedAt(v time.Time) *UsageLedgerEntryUpsertBulk {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.SetReportedAt(v)
	})
}

// UpdateReportedAt sets the "reported_at" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsertBulk) UpdateReportedAt() *UsageLedgerEntryUpsertBulk {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.UpdateReportedAt()
	})
}

// ClearReportedAt clears the value of the "reported_at" field.
func (u *UsageLedgerEntryUpsertBulk) ClearReportedAt() *UsageLedgerEntryUpsertBulk {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.ClearReportedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UsageLedgerEntryUpsertBulk) SetUpdatedAt(v time.Time) *UsageLedgerEntryUpsertBulk {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UsageLedgerEntryUpsertBulk) UpdateUpdatedAt() *UsageLedgerEntryUpsertBulk {
	return u.Update(func(s *UsageLedgerEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UsageLedgerEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UsageLedgerEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UsageLedgerEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UsageLedgerEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
