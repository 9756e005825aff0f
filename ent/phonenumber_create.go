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
	"github.com/ringledger/ringledger/ent/agent"
	"github.com/ringledger/ringledger/ent/callrecord"
	"github.com/ringledger/ringledger/ent/phonenumber"
	"github.com/ringledger/ringledger/ent/tenant"
)

// PhoneNumberCreate is the builder for creating a PhoneNumber entity.
type PhoneNumberCreate struct {
	config
	mutation *PhoneNumberMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (pnc *PhoneNumberCreate) SetTenantID(i int) *PhoneNumberCreate {
	pnc.mutation.SetTenantID(i)
	return pnc
}

// SetAgentID sets the "agent_id" field.
func (pnc *PhoneNumberCreate) SetAgentID(i int) *PhoneNumberCreate {
	pnc.mutation.SetAgentID(i)
	return pnc
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (pnc *PhoneNumberCreate) SetNillableAgentID(i *int) *PhoneNumberCreate {
	if i != nil {
		pnc.SetAgentID(*i)
	}
	return pnc
}

// SetNumber sets the "number" field.
func (pnc *PhoneNumberCreate) SetNumber(s string) *PhoneNumberCreate {
	pnc.mutation.SetNumber(s)
	return pnc
}

// SetNormalized sets the "normalized" field.
func (pnc *PhoneNumberCreate) SetNormalized(s string) *PhoneNumberCreate {
	pnc.mutation.SetNormalized(s)
	return pnc
}

// SetLabel sets the "label" field.
func (pnc *PhoneNumberCreate) SetLabel(s string) *PhoneNumberCreate {
	pnc.mutation.SetLabel(s)
	return pnc
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (pnc *PhoneNumberCreate) SetNillableLabel(s *string) *PhoneNumberCreate {
	if s != nil {
		pnc.SetLabel(*s)
	}
	return pnc
}

// SetActive sets the "active" field.
func (pnc *PhoneNumberCreate) SetActive(b bool) *PhoneNumberCreate {
	pnc.mutation.SetActive(b)
	return pnc
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (pnc *PhoneNumberCreate) SetNillableActive(b *bool) *PhoneNumberCreate {
	if b != nil {
		pnc.SetActive(*b)
	}
	return pnc
}

// SetCreatedAt sets the "created_at" field.
func (pnc *PhoneNumberCreate) SetCreatedAt(t time.Time) *PhoneNumberCreate {
	pnc.mutation.SetCreatedAt(t)
	return pnc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (pnc *PhoneNumberCreate) SetNillableCreatedAt(t *time.Time) *PhoneNumberCreate {
	if t != nil {
		pnc.SetCreatedAt(*t)
	}
	return pnc
}

// SetUpdatedAt sets the "updated_at" field.
func (pnc *PhoneNumberCreate) SetUpdatedAt(t time.Time) *PhoneNumberCreate {
	pnc.mutation.SetUpdatedAt(t)
	return pnc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (pnc *PhoneNumberCreate) SetNillableUpdatedAt(t *time.Time) *PhoneNumberCreate {
	if t != nil {
		pnc.SetUpdatedAt(*t)
	}
	return pnc
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (pnc *PhoneNumberCreate) SetTenant(t *Tenant) *PhoneNumberCreate {
	return pnc.SetTenantID(t.ID)
}

// SetAgent sets the "agent" edge to the Agent entity.
func (pnc *PhoneNumberCreate) SetAgent(a *Agent) *PhoneNumberCreate {
	return pnc.SetAgentID(a.ID)
}

// AddCallRecordIDs adds the "call_records" edge to the CallRecord entity by IDs.
func (pnc *PhoneNumberCreate) AddCallRecordIDs(ids ...int) *PhoneNumberCreate {
	pnc.mutation.AddCallRecordIDs(ids...)
	return pnc
}

// AddCallRecords adds the "call_records" edges to the CallRecord entity.
func (pnc *PhoneNumberCreate) AddCallRecords(c ...*CallRecord) *PhoneNumberCreate {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return pnc.AddCallRecordIDs(ids...)
}

// Mutation returns the PhoneNumberMutation object of the builder.
func (pnc *PhoneNumberCreate) Mutation() *PhoneNumberMutation {
	return pnc.mutation
}

// Save creates the PhoneNumber in the database.
func (pnc *PhoneNumberCreate) Save(ctx context.Context) (*PhoneNumber, error) {
	pnc.defaults()
	return withHooks(ctx, pnc.sqlSave, pnc.mutation, pnc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pnc *PhoneNumberCreate) SaveX(ctx context.Context) *PhoneNumber {
	v, err := pnc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pnc *PhoneNumberCreate) Exec(ctx context.Context) error {
	_, err := pnc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pnc *PhoneNumberCreate) ExecX(ctx context.Context) {
	if err := pnc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pnc *PhoneNumberCreate) defaults() {
	if _, ok := pnc.mutation.Active(); !ok {
		v := phonenumber.DefaultActive
		pnc.mutation.SetActive(v)
	}
	if _, ok := pnc.mutation.CreatedAt(); !ok {
		v := phonenumber.DefaultCreatedAt()
		pnc.mutation.SetCreatedAt(v)
	}
	if _, ok := pnc.mutation.UpdatedAt(); !ok {
		v := phonenumber.DefaultUpdatedAt()
		pnc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pnc *PhoneNumberCreate) check() error {
	if _, ok := pnc.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "PhoneNumber.tenant_id"`)}
	}
	if _, ok := pnc.mutation.Number(); !ok {
		return &ValidationError{Name: "number", err: errors.New(`ent: missing required field "PhoneNumber.number"`)}
	}
	if v, ok := pnc.mutation.Number(); ok {
		if err := phonenumber.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "PhoneNumber.number": %w`, err)}
		}
	}
	if _, ok := pnc.mutation.Normalized(); !ok {
		return &ValidationError{Name: "normalized", err: errors.New(`ent: missing required field "PhoneNumber.normalized"`)}
	}
	if v, ok := pnc.mutation.Normalized(); ok {
		if err := phonenumber.NormalizedValidator(v); err != nil {
			return &ValidationError{Name: "normalized", err: fmt.Errorf(`ent: validator failed for field "PhoneNumber.normalized": %w`, err)}
		}
	}
	if v, ok := pnc.mutation.Label(); ok {
		if err := phonenumber.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "PhoneNumber.label": %w`, err)}
		}
	}
	if _, ok := pnc.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "PhoneNumber.active"`)}
	}
	if _, ok := pnc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PhoneNumber.created_at"`)}
	}
	if _, ok := pnc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PhoneNumber.updated_at"`)}
	}
	if len(pnc.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "PhoneNumber.tenant"`)}
	}
	return nil
}

func (pnc *PhoneNumberCreate) sqlSave(ctx context.Context) (*PhoneNumber, error) {
	if err := pnc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pnc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pnc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	pnc.mutation.id = &_node.ID
	pnc.mutation.done = true
	return _node, nil
}

func (pnc *PhoneNumberCreate) createSpec() (*PhoneNumber, *sqlgraph.CreateSpec) {
	var (
		_node = &PhoneNumber{config: pnc.config}
		_spec = sqlgraph.NewCreateSpec(phonenumber.Table, sqlgraph.NewFieldSpec(phonenumber.FieldID, field.TypeInt))
	)
	_spec.OnConflict = pnc.conflict
	if value, ok := pnc.mutation.Number(); ok {
		_spec.SetField(phonenumber.FieldNumber, field.TypeString, value)
		_node.Number = value
	}
	if value, ok := pnc.mutation.Normalized(); ok {
		_spec.SetField(phonenumber.FieldNormalized, field.TypeString, value)
		_node.Normalized = value
	}
	if value, ok := pnc.mutation.Label(); ok {
		_spec.SetField(phonenumber.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := pnc.mutation.Active(); ok {
		_spec.SetField(phonenumber.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := pnc.mutation.CreatedAt(); ok {
		_spec.SetField(phonenumber.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := pnc.mutation.UpdatedAt(); ok {
		_spec.SetField(phonenumber.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := pnc.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   phonenumber.TenantTable,
			Columns: []string{phonenumber.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TenantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := pnc.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   phonenumber.AgentTable,
			Columns: []string{phonenumber.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := pnc.mutation.CallRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   phonenumber.CallRecordsTable,
			Columns: []string{phonenumber.CallRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PhoneNumber.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PhoneNumberUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (pnc *PhoneNumberCreate) OnConflict(opts ...sql.ConflictOption) *PhoneNumberUpsertOne {
	pnc.conflict = opts
	return &PhoneNumberUpsertOne{
		create: pnc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PhoneNumber.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (pnc *PhoneNumberCreate) OnConflictColumns(columns ...string) *PhoneNumberUpsertOne {
	pnc.conflict = append(pnc.conflict, sql.ConflictColumns(columns...))
	return &PhoneNumberUpsertOne{
		create: pnc,
	}
}

type (
	// PhoneNumberUpsertOne is the builder for "upsert"-ing
	//  one PhoneNumber node.
	PhoneNumberUpsertOne struct {
		create *PhoneNumberCreate
	}

	// PhoneNumberUpsert is the "OnConflict" setter.
	PhoneNumberUpsert struct {
		*sql.UpdateSet
	}
)

// SetTenantID sets the "tenant_id" field.
func (u *PhoneNumberUpsert) SetTenantID(v int) *PhoneNumberUpsert {
	u.Set(phonenumber.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *PhoneNumberUpsert) UpdateTenantID() *PhoneNumberUpsert {
	u.SetExcluded(phonenumber.FieldTenantID)
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *PhoneNumberUpsert) SetAgentID(v int) *PhoneNumberUpsert {
	u.Set(phonenumber.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *PhoneNumberUpsert) UpdateAgentID() *PhoneNumberUpsert {
	u.SetExcluded(phonenumber.FieldAgentID)
	return u
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *PhoneNumberUpsert) ClearAgentID() *PhoneNumberUpsert {
	u.SetNull(phonenumber.FieldAgentID)
	return u
}

// SetNumber sets the "number" field.
func (u *PhoneNumberUpsert) SetNumber(v string) *PhoneNumberUpsert {
	u.Set(phonenumber.FieldNumber, v)
	return u
}

// UpdateNumber sets the "number" field to the value that was provided on create.
func (u *PhoneNumberUpsert) UpdateNumber() *PhoneNumberUpsert {
	u.SetExcluded(phonenumber.FieldNumber)
	return u
}

// SetNormalized sets the "normalized" field.
func (u *PhoneNumberUpsert) SetNormalized(v string) *PhoneNumberUpsert {
	u.Set(phonenumber.FieldNormalized, v)
	return u
}

// UpdateNormalized sets the "normalized" field to the value that was provided on create.
func (u *PhoneNumberUpsert) UpdateNormalized() *PhoneNumberUpsert {
	u.SetExcluded(phonenumber.FieldNormalized)
	return u
}

// SetLabel sets the "label" field.
func (u *PhoneNumberUpsert) SetLabel(v string) *PhoneNumberUpsert {
	u.Set(phonenumber.FieldLabel, v)
	return u
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *PhoneNumberUpsert) UpdateLabel() *PhoneNumberUpsert {
	u.SetExcluded(phonenumber.FieldLabel)
	return u
}

// ClearLabel clears the value of the "label" field.
func (u *PhoneNumberUpsert) ClearLabel() *PhoneNumberUpsert {
	u.SetNull(phonenumber.FieldLabel)
	return u
}

// SetActive sets the "active" field.
func (u *PhoneNumberUpsert) SetActive(v bool) *PhoneNumberUpsert {
	u.Set(phonenumber.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *PhoneNumberUpsert) UpdateActive() *PhoneNumberUpsert {
	u.SetExcluded(phonenumber.FieldActive)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PhoneNumberUpsert) SetUpdatedAt(v time.Time) *PhoneNumberUpsert {
	u.Set(phonenumber.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PhoneNumberUpsert) UpdateUpdatedAt() *PhoneNumberUpsert {
	u.SetExcluded(phonenumber.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PhoneNumber.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PhoneNumberUpsertOne) UpdateNewValues() *PhoneNumberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(phonenumber.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PhoneNumber.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PhoneNumberUpsertOne) Ignore() *PhoneNumberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PhoneNumberUpsertOne) DoNothing() *PhoneNumberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PhoneNumberCreate.OnConflict
// documentation for more info.
func (u *PhoneNumberUpsertOne) Update(set func(*PhoneNumberUpsert)) *PhoneNumberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PhoneNumberUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *PhoneNumberUpsertOne) SetTenantID(v int) *PhoneNumberUpsertOne {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *PhoneNumberUpsertOne) UpdateTenantID() *PhoneNumberUpsertOne {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.UpdateTenantID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *PhoneNumberUpsertOne) SetAgentID(v int) *PhoneNumberUpsertOne {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *PhoneNumberUpsertOne) UpdateAgentID() *PhoneNumberUpsertOne {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *PhoneNumberUpsertOne) ClearAgentID() *PhoneNumberUpsertOne {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.ClearAgentID()
	})
}

// SetNumber sets the "number" field.
func (u *PhoneNumberUpsertOne) SetNumber(v string) *PhoneNumberUpsertOne {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.SetNumber(v)
	})
}

// UpdateNumber sets the "number" field to the value that was provided on create.
func (u *PhoneNumberUpsertOne) UpdateNumber() *PhoneNumberUpsertOne {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.UpdateNumber()
	})
}

// SetNormalized sets the "normalized" field.
func (u *PhoneNumberUpsertOne) SetNormalized(v string) *PhoneNumberUpsertOne {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.SetNormalized(v)
	})
}

// UpdateNormalized sets the "normalized" field to the value that was provided on create.
func (u *PhoneNumberUpsertOne) UpdateNormalized() *PhoneNumberUpsertOne {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.UpdateNormalized()
	})
}

// SetLabel sets the "label" field.
func (u *PhoneNumberUpsertOne) SetLabel(v string) *PhoneNumberUpsertOne {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *PhoneNumberUpsertOne) UpdateLabel() *PhoneNumberUpsertOne {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.UpdateLabel()
	})
}

// ClearLabel clears the value of the "label" field.
func (u *PhoneNumberUpsertOne) ClearLabel() *PhoneNumberUpsertOne {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.ClearLabel()
	})
}

// SetActive sets the "active" field.
func (u *PhoneNumberUpsertOne) SetActive(v bool) *PhoneNumberUpsertOne {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *PhoneNumberUpsertOne) UpdateActive() *PhoneNumberUpsertOne {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.UpdateActive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PhoneNumberUpsertOne) SetUpdatedAt(v time.Time) *PhoneNumberUpsertOne {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PhoneNumberUpsertOne) UpdateUpdatedAt() *PhoneNumberUpsertOne {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PhoneNumberUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PhoneNumberCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PhoneNumberUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PhoneNumberUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PhoneNumberUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PhoneNumberCreateBulk is the builder for creating many PhoneNumber entities in bulk.
type PhoneNumberCreateBulk struct {
	config
	err      error
	builders []*PhoneNumberCreate
	conflict []sql.ConflictOption
}

// Save creates the PhoneNumber entities in the database.
func (pncb *PhoneNumberCreateBulk) Save(ctx context.Context) ([]*PhoneNumber, error) {
	if pncb.err != nil {
		return nil, pncb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pncb.builders))
	nodes := make([]*PhoneNumber, len(pncb.builders))
	mutators := make([]Mutator, len(pncb.builders))
	for i := range pncb.builders {
		func(i int, root context.Context) {
			builder := pncb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PhoneNumberMutation)
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
					_, err = mutators[i+1].Mutate(root, pncb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = pncb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pncb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pncb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pncb *PhoneNumberCreateBulk) SaveX(ctx context.Context) []*PhoneNumber {
	v, err := pncb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pncb *PhoneNumberCreateBulk) Exec(ctx context.Context) error {
	_, err := pncb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pncb *PhoneNumberCreateBulk) ExecX(ctx context.Context) {
	if err := pncb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PhoneNumber.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PhoneNumberUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (pncb *PhoneNumberCreateBulk) OnConflict(opts ...sql.ConflictOption) *PhoneNumberUpsertBulk {
	pncb.conflict = opts
	return &PhoneNumberUpsertBulk{
		create: pncb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PhoneNumber.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (pncb *PhoneNumberCreateBulk) OnConflictColumns(columns ...string) *PhoneNumberUpsertBulk {
	pncb.conflict = append(pncb.conflict, sql.ConflictColumns(columns...))
	return &PhoneNumberUpsertBulk{
		create: pncb,
	}
}

// PhoneNumberUpsertBulk is the builder for "upsert"-ing
// a bulk of PhoneNumber nodes.
type PhoneNumberUpsertBulk struct {
	create *PhoneNumberCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PhoneNumber.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PhoneNumberUpsertBulk) UpdateNewValues() *PhoneNumberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(phonenumber.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PhoneNumber.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PhoneNumberUpsertBulk) Ignore() *PhoneNumberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PhoneNumberUpsertBulk) DoNothing() *PhoneNumberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PhoneNumberCreateBulk.OnConflict
// documentation for more info.
func (u *PhoneNumberUpsertBulk) Update(set func(*PhoneNumberUpsert)) *PhoneNumberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PhoneNumberUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *PhoneNumberUpsertBulk) SetTenantID(v int) *PhoneNumberUpsertBulk {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *PhoneNumberUpsertBulk) UpdateTenantID() *PhoneNumberUpsertBulk {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.UpdateTenantID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *PhoneNumberUpsertBulk) SetAgentID(v int) *PhoneNumberUpsertBulk {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *PhoneNumberUpsertBulk) UpdateAgentID() *PhoneNumberUpsertBulk {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *PhoneNumberUpsertBulk) ClearAgentID() *PhoneNumberUpsertBulk {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.ClearAgentID()
	})
}

// SetNumber sets the "number" field.
func (u *PhoneNumberUpsertBulk) SetNumber(v string) *PhoneNumberUpsertBulk {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.SetNumber(v)
	})
}

// UpdateNumber sets the "number" field to the value that was provided on create.
func (u *PhoneNumberUpsertBulk) UpdateNumber() *PhoneNumberUpsertBulk {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.UpdateNumber()
	})
}

// SetNormalized sets the "normalized" field.
func (u *PhoneNumberUpsertBulk) SetNormalized(v string) *PhoneNumberUpsertBulk {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.SetNormalized(v)
	})
}

// UpdateNormalized sets the "normalized" field to the value that was provided on create.
func (u *PhoneNumberUpsertBulk) UpdateNormalized() *PhoneNumberUpsertBulk {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.UpdateNormalized()
	})
}

// SetLabel sets the "label" field.
func (u *PhoneNumberUpsertBulk) SetLabel(v string) *PhoneNumberUpsertBulk {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *PhoneNumberUpsertBulk) UpdateLabel() *PhoneNumberUpsertBulk {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.UpdateLabel()
	})
}

// ClearLabel clears the value of the "label" field.
func (u *PhoneNumberUpsertBulk) ClearLabel() *PhoneNumberUpsertBulk {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.ClearLabel()
	})
}

// SetActive sets the "active" field.
func (u *PhoneNumberUpsertBulk) SetActive(v bool) *PhoneNumberUpsertBulk {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *PhoneNumberUpsertBulk) UpdateActive() *PhoneNumberUpsertBulk {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.UpdateActive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PhoneNumberUpsertBulk) SetUpdatedAt(v time.Time) *PhoneNumberUpsertBulk {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PhoneNumberUpsertBulk) UpdateUpdatedAt() *PhoneNumberUpsertBulk {
	return u.Update(func(s *PhoneNumberUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PhoneNumberUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PhoneNumberCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PhoneNumberCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PhoneNumberUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
