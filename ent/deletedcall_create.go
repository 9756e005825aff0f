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
	"github.com/ringledger/ringledger/ent/deletedcall"
)

// DeletedCallCreate is the builder for creating a DeletedCall entity.
type DeletedCallCreate struct {
	config
	mutation *DeletedCallMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (dcc *DeletedCallCreate) SetTenantID(i int) *DeletedCallCreate {
	dcc.mutation.SetTenantID(i)
	return dcc
}

// SetProviderCallID sets the "provider_call_id" field.
func (dcc *DeletedCallCreate) SetProviderCallID(s string) *DeletedCallCreate {
	dcc.mutation.SetProviderCallID(s)
	return dcc
}

// SetDeletedBy sets the "deleted_by" field.
func (dcc *DeletedCallCreate) SetDeletedBy(i int) *DeletedCallCreate {
	dcc.mutation.SetDeletedBy(i)
	return dcc
}

// SetNillableDeletedBy sets the "deleted_by" field if the given value is not nil.
func (dcc *DeletedCallCreate) SetNillableDeletedBy(i *int) *DeletedCallCreate {
	if i != nil {
		dcc.SetDeletedBy(*i)
	}
	return dcc
}

// SetDeletedAt sets the "deleted_at" field.
func (dcc *DeletedCallCreate) SetDeletedAt(t time.Time) *DeletedCallCreate {
	dcc.mutation.SetDeletedAt(t)
	return dcc
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (dcc *DeletedCallCreate) SetNillableDeletedAt(t *time.Time) *DeletedCallCreate {
	if t != nil {
		dcc.SetDeletedAt(*t)
	}
	return dcc
}

// Mutation returns the DeletedCallMutation object of the builder.
func (dcc *DeletedCallCreate) Mutation() *DeletedCallMutation {
	return dcc.mutation
}

// Save creates the DeletedCall in the database.
func (dcc *DeletedCallCreate) Save(ctx context.Context) (*DeletedCall, error) {
	dcc.defaults()
	return withHooks(ctx, dcc.sqlSave, dcc.mutation, dcc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (dcc *DeletedCallCreate) SaveX(ctx context.Context) *DeletedCall {
	v, err := dcc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dcc *DeletedCallCreate) Exec(ctx context.Context) error {
	_, err := dcc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dcc *DeletedCallCreate) ExecX(ctx context.Context) {
	if err := dcc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (dcc *DeletedCallCreate) defaults() {
	if _, ok := dcc.mutation.DeletedAt(); !ok {
		v := deletedcall.DefaultDeletedAt()
		dcc.mutation.SetDeletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dcc *DeletedCallCreate) check() error {
	if _, ok := dcc.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "DeletedCall.tenant_id"`)}
	}
	if _, ok := dcc.mutation.ProviderCallID(); !ok {
		return &ValidationError{Name: "provider_call_id", err: errors.New(`ent: missing required field "DeletedCall.provider_call_id"`)}
	}
	if v, ok := dcc.mutation.ProviderCallID(); ok {
		if err := deletedcall.ProviderCallIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_call_id", err: fmt.Errorf(`ent: validator failed for field "DeletedCall.provider_call_id": %w`, err)}
		}
	}
	if _, ok := dcc.mutation.DeletedAt(); !ok {
		return &ValidationError{Name: "deleted_at", err: errors.New(`ent: missing required field "DeletedCall.deleted_at"`)}
	}
	return nil
}

func (dcc *DeletedCallCreate) sqlSave(ctx context.Context) (*DeletedCall, error) {
	if err := dcc.check(); err != nil {
		return nil, err
	}
	_node, _spec := dcc.createSpec()
	if err := sqlgraph.CreateNode(ctx, dcc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	dcc.mutation.id = &_node.ID
	dcc.mutation.done = true
	return _node, nil
}

func (dcc *DeletedCallCreate) createSpec() (*DeletedCall, *sqlgraph.CreateSpec) {
	var (
		_node = &DeletedCall{config: dcc.config}
		_spec = sqlgraph.NewCreateSpec(deletedcall.Table, sqlgraph.NewFieldSpec(deletedcall.FieldID, field.TypeInt))
	)
	_spec.OnConflict = dcc.conflict
	if value, ok := dcc.mutation.TenantID(); ok {
		_spec.SetField(deletedcall.FieldTenantID, field.TypeInt, value)
		_node.TenantID = value
	}
	if value, ok := dcc.mutation.ProviderCallID(); ok {
		_spec.SetField(deletedcall.FieldProviderCallID, field.TypeString, value)
		_node.ProviderCallID = value
	}
	if value, ok := dcc.mutation.DeletedBy(); ok {
		_spec.SetField(deletedcall.FieldDeletedBy, field.TypeInt, value)
		_node.DeletedBy = &value
	}
	if value, ok := dcc.mutation.DeletedAt(); ok {
		_spec.SetField(deletedcall.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeletedCall.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeletedCallUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (dcc *DeletedCallCreate) OnConflict(opts ...sql.ConflictOption) *DeletedCallUpsertOne {
	dcc.conflict = opts
	return &DeletedCallUpsertOne{
		create: dcc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeletedCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (dcc *DeletedCallCreate) OnConflictColumns(columns ...string) *DeletedCallUpsertOne {
	dcc.conflict = append(dcc.conflict, sql.ConflictColumns(columns...))
	return &DeletedCallUpsertOne{
		create: dcc,
	}
}

type (
	// DeletedCallUpsertOne is the builder for "upsert"-ing
	//  one DeletedCall node.
	DeletedCallUpsertOne struct {
		create *DeletedCallCreate
	}

	// DeletedCallUpsert is the "OnConflict" setter.
	DeletedCallUpsert struct {
		*sql.UpdateSet
	}
)

// SetTenantID sets the "tenant_id" field.
func (u *DeletedCallUpsert) SetTenantID(v int) *DeletedCallUpsert {
	u.Set(deletedcall.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *DeletedCallUpsert) UpdateTenantID() *DeletedCallUpsert {
	u.SetExcluded(deletedcall.FieldTenantID)
	return u
}

// AddTenantID adds v to the "tenant_id" field.
func (u *DeletedCallUpsert) AddTenantID(v int) *DeletedCallUpsert {
	u.Add(deletedcall.FieldTenantID, v)
	return u
}

// SetProviderCallID sets the "provider_call_id" field.
func (u *DeletedCallUpsert) SetProviderCallID(v string) *DeletedCallUpsert {
	u.Set(deletedcall.FieldProviderCallID, v)
	return u
}

// UpdateProviderCallID sets the "provider_call_id" field to the value that was provided on create.
func (u *DeletedCallUpsert) UpdateProviderCallID() *DeletedCallUpsert {
	u.SetExcluded(deletedcall.FieldProviderCallID)
	return u
}

// SetDeletedBy sets the "deleted_by" field.
func (u *DeletedCallUpsert) SetDeletedBy(v int) *DeletedCallUpsert {
	u.Set(deletedcall.FieldDeletedBy, v)
	return u
}

// UpdateDeletedBy sets the "deleted_by" field to the value that was provided on create.
func (u *DeletedCallUpsert) UpdateDeletedBy() *DeletedCallUpsert {
	u.SetExcluded(deletedcall.FieldDeletedBy)
	return u
}

// AddDeletedBy adds v to the "deleted_by" field.
func (u *DeletedCallUpsert) AddDeletedBy(v int) *DeletedCallUpsert {
	u.Add(deletedcall.FieldDeletedBy, v)
	return u
}

// ClearDeletedBy clears the value of the "deleted_by" field.
func (u *DeletedCallUpsert) ClearDeletedBy() *DeletedCallUpsert {
	u.SetNull(deletedcall.FieldDeletedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.DeletedCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DeletedCallUpsertOne) UpdateNewValues() *DeletedCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.DeletedAt(); exists {
			s.SetIgnore(deletedcall.FieldDeletedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeletedCall.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DeletedCallUpsertOne) Ignore() *DeletedCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeletedCallUpsertOne) DoNothing() *DeletedCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeletedCallCreate.OnConflict
// documentation for more info.
func (u *DeletedCallUpsertOne) Update(set func(*DeletedCallUpsert)) *DeletedCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeletedCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *DeletedCallUpsertOne) SetTenantID(v int) *DeletedCallUpsertOne {
	return u.Update(func(s *DeletedCallUpsert) {
		s.SetTenantID(v)
	})
}

// AddTenantID adds v to the "tenant_id" field.
func (u *DeletedCallUpsertOne) AddTenantID(v int) *DeletedCallUpsertOne {
	return u.Update(func(s *DeletedCallUpsert) {
		s.AddTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *DeletedCallUpsertOne) UpdateTenantID() *DeletedCallUpsertOne {
	return u.Update(func(s *DeletedCallUpsert) {
		s.UpdateTenantID()
	})
}

// SetProviderCallID sets the "provider_call_id" field.
func (u *DeletedCallUpsertOne) SetProviderCallID(v string) *DeletedCallUpsertOne {
	return u.Update(func(s *DeletedCallUpsert) {
		s.SetProviderCallID(v)
	})
}

// UpdateProviderCallID sets the "provider_call_id" field to the value that was provided on create.
func (u *DeletedCallUpsertOne) UpdateProviderCallID() *DeletedCallUpsertOne {
	return u.Update(func(s *DeletedCallUpsert) {
		s.UpdateProviderCallID()
	})
}

// SetDeletedBy sets the "deleted_by" field.
func (u *DeletedCallUpsertOne) SetDeletedBy(v int) *DeletedCallUpsertOne {
	return u.Update(func(s *DeletedCallUpsert) {
		s.SetDeletedBy(v)
	})
}

// AddDeletedBy adds v to the "deleted_by" field.
func (u *DeletedCallUpsertOne) AddDeletedBy(v int) *DeletedCallUpsertOne {
	return u.Update(func(s *DeletedCallUpsert) {
		s.AddDeletedBy(v)
	})
}

// UpdateDeletedBy sets the "deleted_by" field to the value that was provided on create.
func (u *DeletedCallUpsertOne) UpdateDeletedBy() *DeletedCallUpsertOne {
	return u.Update(func(s *DeletedCallUpsert) {
		s.UpdateDeletedBy()
	})
}

// ClearDeletedBy clears the value of the "deleted_by" field.
func (u *DeletedCallUpsertOne) ClearDeletedBy() *DeletedCallUpsertOne {
	return u.Update(func(s *DeletedCallUpsert) {
		s.ClearDeletedBy()
	})
}

// Exec executes the query.
func (u *DeletedCallUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeletedCallCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeletedCallUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DeletedCallUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DeletedCallUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DeletedCallCreateBulk is the builder for creating many DeletedCall entities in bulk.
type DeletedCallCreateBulk struct {
	config
	err      error
	builders []*DeletedCallCreate
	conflict []sql.ConflictOption
}

// Save creates the DeletedCall entities in the database.
func (dccb *DeletedCallCreateBulk) Save(ctx context.Context) ([]*DeletedCall, error) {
	if dccb.err != nil {
		return nil, dccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(dccb.builders))
	nodes := make([]*DeletedCall, len(dccb.builders))
	mutators := make([]Mutator, len(dccb.builders))
	for i := range dccb.builders {
		func(i int, root context.Context) {
			builder := dccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeletedCallMutation)
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
					_, err = mutators[i+1].Mutate(root, dccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = dccb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, dccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, dccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (dccb *DeletedCallCreateBulk) SaveX(ctx context.Context) []*DeletedCall {
	v, err := dccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dccb *DeletedCallCreateBulk) Exec(ctx context.Context) error {
	_, err := dccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dccb *DeletedCallCreateBulk) ExecX(ctx context.Context) {
	if err := dccb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeletedCall.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeletedCallUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (dccb *DeletedCallCreateBulk) OnConflict(opts ...sql.ConflictOption) *DeletedCallUpsertBulk {
	dccb.conflict = opts
	return &DeletedCallUpsertBulk{
		create: dccb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeletedCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (dccb *DeletedCallCreateBulk) OnConflictColumns(columns ...string) *DeletedCallUpsertBulk {
	dccb.conflict = append(dccb.conflict, sql.ConflictColumns(columns...))
	return &DeletedCallUpsertBulk{
		create: dccb,
	}
}

// DeletedCallUpsertBulk is the builder for "upsert"-ing
// a bulk of DeletedCall nodes.
type DeletedCallUpsertBulk struct {
	create *DeletedCallCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DeletedCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DeletedCallUpsertBulk) UpdateNewValues() *DeletedCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.DeletedAt(); exists {
				s.SetIgnore(deletedcall.FieldDeletedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeletedCall.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DeletedCallUpsertBulk) Ignore() *DeletedCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeletedCallUpsertBulk) DoNothing() *DeletedCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeletedCallCreateBulk.OnConflict
// documentation for more info.
func (u *DeletedCallUpsertBulk) Update(set func(*DeletedCallUpsert)) *DeletedCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeletedCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *DeletedCallUpsertBulk) SetTenantID(v int) *DeletedCallUpsertBulk {
	return u.Update(func(s *DeletedCallUpsert) {
		s.SetTenantID(v)
	})
}

// AddTenantID adds v to the "tenant_id" field.
func (u *DeletedCallUpsertBulk) AddTenantID(v int) *DeletedCallUpsertBulk {
	return u.Update(func(s *DeletedCallUpsert) {
		s.AddTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *DeletedCallUpsertBulk) UpdateTenantID() *DeletedCallUpsertBulk {
	return u.Update(func(s *DeletedCallUpsert) {
		s.UpdateTenantID()
	})
}

// SetProviderCallID sets the "provider_call_id" field.
func (u *DeletedCallUpsertBulk) SetProviderCallID(v string) *DeletedCallUpsertBulk {
	return u.Update(func(s *DeletedCallUpsert) {
		s.SetProviderCallID(v)
	})
}

// UpdateProviderCallID sets the "provider_call_id" field to the value that was provided on create.
func (u *DeletedCallUpsertBulk) UpdateProviderCallID() *DeletedCallUpsertBulk {
	return u.Update(func(s *DeletedCallUpsert) {
		s.UpdateProviderCallID()
	})
}

// SetDeletedBy sets the "deleted_by" field.
func (u *DeletedCallUpsertBulk) SetDeletedBy(v int) *DeletedCallUpsertBulk {
	return u.Update(func(s *DeletedCallUpsert) {
		s.SetDeletedBy(v)
	})
}

// AddDeletedBy adds v to the "deleted_by" field.
func (u *DeletedCallUpsertBulk) AddDeletedBy(v int) *DeletedCallUpsertBulk {
	return u.Update(func(s *DeletedCallUpsert) {
		s.AddDeletedBy(v)
	})
}

// UpdateDeletedBy sets the "deleted_by" field to the value that was provided on create.
func (u *DeletedCallUpsertBulk) UpdateDeletedBy() *DeletedCallUpsertBulk {
	return u.Update(func(s *DeletedCallUpsert) {
		s.UpdateDeletedBy()
	})
}

// ClearDeletedBy clears the value of the "deleted_by" field.
func (u *DeletedCallUpsertBulk) ClearDeletedBy() *DeletedCallUpsertBulk {
	return u.Update(func(s *DeletedCallUpsert) {
		s.ClearDeletedBy()
	})
}

// Exec executes the query.
func (u *DeletedCallUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DeletedCallCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeletedCallCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeletedCallUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
