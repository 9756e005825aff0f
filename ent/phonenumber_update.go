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
	"github.com/ringledger/ringledger/ent/predicate"
	"github.com/ringledger/ringledger/ent/tenant"
)

// PhoneNumberUpdate is the builder for updating PhoneNumber entities.
type PhoneNumberUpdate struct {
	config
	hooks    []Hook
	mutation *PhoneNumberMutation
}

// Where appends a list predicates to the PhoneNumberUpdate builder.
func (pnu *PhoneNumberUpdate) Where(ps ...predicate.PhoneNumber) *PhoneNumberUpdate {
	pnu.mutation.Where(ps...)
	return pnu
}

// SetTenantID sets the "tenant_id" field.
func (pnu *PhoneNumberUpdate) SetTenantID(i int) *PhoneNumberUpdate {
	pnu.mutation.SetTenantID(i)
	return pnu
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (pnu *PhoneNumberUpdate) SetNillableTenantID(i *int) *PhoneNumberUpdate {
	if i != nil {
		pnu.SetTenantID(*i)
	}
	return pnu
}

// SetAgentID sets the "agent_id" field.
func (pnu *PhoneNumberUpdate) SetAgentID(i int) *PhoneNumberUpdate {
	pnu.mutation.SetAgentID(i)
	return pnu
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (pnu *PhoneNumberUpdate) SetNillableAgentID(i *int) *PhoneNumberUpdate {
	if i != nil {
		pnu.SetAgentID(*i)
	}
	return pnu
}

// ClearAgentID clears the value of the "agent_id" field.
func (pnu *PhoneNumberUpdate) ClearAgentID() *PhoneNumberUpdate {
	pnu.mutation.ClearAgentID()
	return pnu
}

// SetNumber sets the "number" field.
func (pnu *PhoneNumberUpdate) SetNumber(s string) *PhoneNumberUpdate {
	pnu.mutation.SetNumber(s)
	return pnu
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (pnu *PhoneNumberUpdate) SetNillableNumber(s *string) *PhoneNumberUpdate {
	if s != nil {
		pnu.SetNumber(*s)
	}
	return pnu
}

// SetNormalized sets the "normalized" field.
func (pnu *PhoneNumberUpdate) SetNormalized(s string) *PhoneNumberUpdate {
	pnu.mutation.SetNormalized(s)
	return pnu
}

// SetNillableNormalized sets the "normalized" field if the given value is not nil.
func (pnu *PhoneNumberUpdate) SetNillableNormalized(s *string) *PhoneNumberUpdate {
	if s != nil {
		pnu.SetNormalized(*s)
	}
	return pnu
}

// SetLabel sets the "label" field.
func (pnu *PhoneNumberUpdate) SetLabel(s string) *PhoneNumberUpdate {
	pnu.mutation.SetLabel(s)
	return pnu
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (pnu *PhoneNumberUpdate) SetNillableLabel(s *string) *PhoneNumberUpdate {
	if s != nil {
		pnu.SetLabel(*s)
	}
	return pnu
}

// ClearLabel clears the value of the "label" field.
func (pnu *PhoneNumberUpdate) ClearLabel() *PhoneNumberUpdate {
	pnu.mutation.ClearLabel()
	return pnu
}

// SetActive sets the "active" field.
func (pnu *PhoneNumberUpdate) SetActive(b bool) *PhoneNumberUpdate {
	pnu.mutation.SetActive(b)
	return pnu
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (pnu *PhoneNumberUpdate) SetNillableActive(b *bool) *PhoneNumberUpdate {
	if b != nil {
		pnu.SetActive(*b)
	}
	return pnu
}

// SetUpdatedAt sets the "updated_at" field.
func (pnu *PhoneNumberUpdate) SetUpdatedAt(t time.Time) *PhoneNumberUpdate {
	pnu.mutation.SetUpdatedAt(t)
	return pnu
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (pnu *PhoneNumberUpdate) SetTenant(t *Tenant) *PhoneNumberUpdate {
	return pnu.SetTenantID(t.ID)
}

// SetAgent sets the "agent" edge to the Agent entity.
func (pnu *PhoneNumberUpdate) SetAgent(a *Agent) *PhoneNumberUpdate {
	return pnu.SetAgentID(a.ID)
}

// AddCallRecordIDs adds the "call_records" edge to the CallRecord entity by IDs.
func (pnu *PhoneNumberUpdate) AddCallRecordIDs(ids ...int) *PhoneNumberUpdate {
	pnu.mutation.AddCallRecordIDs(ids...)
	return pnu
}

// AddCallRecords adds the "call_records" edges to the CallRecord entity.
func (pnu *PhoneNumberUpdate) AddCallRecords(c ...*CallRecord) *PhoneNumberUpdate {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return pnu.AddCallRecordIDs(ids...)
}

// Mutation returns the PhoneNumberMutation object of the builder.
func (pnu *PhoneNumberUpdate) Mutation() *PhoneNumberMutation {
	return pnu.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (pnu *PhoneNumberUpdate) ClearTenant() *PhoneNumberUpdate {
	pnu.mutation.ClearTenant()
	return pnu
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (pnu *PhoneNumberUpdate) ClearAgent() *PhoneNumberUpdate {
	pnu.mutation.ClearAgent()
	return pnu
}

// ClearCallRecords clears all "call_records" edges to the CallRecord entity.
func (pnu *PhoneNumberUpdate) ClearCallRecords() *PhoneNumberUpdate {
	pnu.mutation.ClearCallRecords()
	return pnu
}

// RemoveCallRecordIDs removes the "call_records" edge to CallRecord entities by IDs.
func (pnu *PhoneNumberUpdate) RemoveCallRecordIDs(ids ...int) *PhoneNumberUpdate {
	pnu.mutation.RemoveCallRecordIDs(ids...)
	return pnu
}

// RemoveCallRecords removes "call_records" edges to CallRecord entities.
func (pnu *PhoneNumberUpdate) RemoveCallRecords(c ...*CallRecord) *PhoneNumberUpdate {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return pnu.RemoveCallRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pnu *PhoneNumberUpdate) Save(ctx context.Context) (int, error) {
	pnu.defaults()
	return withHooks(ctx, pnu.sqlSave, pnu.mutation, pnu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pnu *PhoneNumberUpdate) SaveX(ctx context.Context) int {
	affected, err := pnu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pnu *PhoneNumberUpdate) Exec(ctx context.Context) error {
	_, err := pnu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pnu *PhoneNumberUpdate) ExecX(ctx context.Context) {
	if err := pnu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pnu *PhoneNumberUpdate) defaults() {
	if _, ok := pnu.mutation.UpdatedAt(); !ok {
		v := phonenumber.UpdateDefaultUpdatedAt()
		pnu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pnu *PhoneNumberUpdate) check() error {
	if v, ok := pnu.mutation.Number(); ok {
		if err := phonenumber.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "PhoneNumber.number": %w`, err)}
		}
	}
	if v, ok := pnu.mutation.Normalized(); ok {
		if err := phonenumber.NormalizedValidator(v); err != nil {
			return &ValidationError{Name: "normalized", err: fmt.Errorf(`ent: validator failed for field "PhoneNumber.normalized": %w`, err)}
		}
	}
	if v, ok := pnu.mutation.Label(); ok {
		if err := phonenumber.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "PhoneNumber.label": %w`, err)}
		}
	}
	if pnu.mutation.TenantCleared() && len(pnu.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PhoneNumber.tenant"`)
	}
	return nil
}

func (pnu *PhoneNumberUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pnu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(phonenumber.Table, phonenumber.Columns, sqlgraph.NewFieldSpec(phonenumber.FieldID, field.TypeInt))
	if ps := pnu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pnu.mutation.Number(); ok {
		_spec.SetField(phonenumber.FieldNumber, field.TypeString, value)
	}
	if value, ok := pnu.mutation.Normalized(); ok {
		_spec.SetField(phonenumber.FieldNormalized, field.TypeString, value)
	}
	if value, ok := pnu.mutation.Label(); ok {
		_spec.SetField(phonenumber.FieldLabel, field.TypeString, value)
	}
	if pnu.mutation.LabelCleared() {
		_spec.ClearField(phonenumber.FieldLabel, field.TypeString)
	}
	if value, ok := pnu.mutation.Active(); ok {
		_spec.SetField(phonenumber.FieldActive, field.TypeBool, value)
	}
	if value, ok := pnu.mutation.UpdatedAt(); ok {
		_spec.SetField(phonenumber.FieldUpdatedAt, field.TypeTime, value)
	}
	if pnu.mutation.TenantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pnu.mutation.TenantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if pnu.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pnu.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if pnu.mutation.CallRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pnu.mutation.RemovedCallRecordsIDs(); len(nodes) > 0 && !pnu.mutation.CallRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pnu.mutation.CallRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pnu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{phonenumber.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pnu.mutation.done = true
	return n, nil
}

// PhoneNumberUpdateOne is the builder for updating a single PhoneNumber entity.
type PhoneNumberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PhoneNumberMutation
}

// SetTenantID sets the "tenant_id" field.
func (pnuo *PhoneNumberUpdateOne) SetTenantID(i int) *PhoneNumberUpdateOne {
	pnuo.mutation.SetTenantID(i)
	return pnuo
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (pnuo *PhoneNumberUpdateOne) SetNillableTenantID(i *int) *PhoneNumberUpdateOne {
	if i != nil {
		pnuo.SetTenantID(*i)
	}
	return pnuo
}

// SetAgentID sets the "agent_id" field.
func (pnuo *PhoneNumberUpdateOne) SetAgentID(i int) *PhoneNumberUpdateOne {
	pnuo.mutation.SetAgentID(i)
	return pnuo
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (pnuo *PhoneNumberUpdateOne) SetNillableAgentID(i *int) *PhoneNumberUpdateOne {
	if i != nil {
		pnuo.SetAgentID(*i)
	}
	return pnuo
}

// ClearAgentID clears the value of the "agent_id" field.
func (pnuo *PhoneNumberUpdateOne) ClearAgentID() *PhoneNumberUpdateOne {
	pnuo.mutation.ClearAgentID()
	return pnuo
}

// SetNumber sets the "number" field.
func (pnuo *PhoneNumberUpdateOne) SetNumber(s string) *PhoneNumberUpdateOne {
	pnuo.mutation.SetNumber(s)
	return pnuo
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (pnuo *PhoneNumberUpdateOne) SetNillableNumber(s *string) *PhoneNumberUpdateOne {
	if s != nil {
		pnuo.SetNumber(*s)
	}
	return pnuo
}

// SetNormalized sets the "normalized" field.
func (pnuo *PhoneNumberUpdateOne) SetNormalized(s string) *PhoneNumberUpdateOne {
	pnuo.mutation.SetNormalized(s)
	return pnuo
}

// SetNillableNormalized sets the "normalized" field if the given value is not nil.
func (pnuo *PhoneNumberUpdateOne) SetNillableNormalized(s *string) *PhoneNumberUpdateOne {
	if s != nil {
		pnuo.SetNormalized(*s)
	}
	return pnuo
}

// SetLabel sets the "label" field.
func (pnuo *PhoneNumberUpdateOne) SetLabel(s string) *PhoneNumberUpdateOne {
	pnuo.mutation.SetLabel(s)
	return pnuo
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (pnuo *PhoneNumberUpdateOne) SetNillableLabel(s *string) *PhoneNumberUpdateOne {
	if s != nil {
		pnuo.SetLabel(*s)
	}
	return pnuo
}

// ClearLabel clears the value of the "label" field.
func (pnuo *PhoneNumberUpdateOne) ClearLabel() *PhoneNumberUpdateOne {
	pnuo.mutation.ClearLabel()
	return pnuo
}

// SetActive sets the "active" field.
func (pnuo *PhoneNumberUpdateOne) SetActive(b bool) *PhoneNumberUpdateOne {
	pnuo.mutation.SetActive(b)
	return pnuo
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (pnuo *PhoneNumberUpdateOne) SetNillableActive(b *bool) *PhoneNumberUpdateOne {
	if b != nil {
		pnuo.SetActive(*b)
	}
	return pnuo
}

// SetUpdatedAt sets the "updated_at" field.
func (pnuo *PhoneNumberUpdateOne) SetUpdatedAt(t time.Time) *PhoneNumberUpdateOne {
	pnuo.mutation.SetUpdatedAt(t)
	return pnuo
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (pnuo *PhoneNumberUpdateOne) SetTenant(t *Tenant) *PhoneNumberUpdateOne {
	return pnuo.SetTenantID(t.ID)
}

// SetAgent sets the "agent" edge to the Agent entity.
func (pnuo *PhoneNumberUpdateOne) SetAgent(a *Agent) *PhoneNumberUpdateOne {
	return pnuo.SetAgentID(a.ID)
}

// AddCallRecordIDs adds the "call_records" edge to the CallRecord entity by IDs.
func (pnuo *PhoneNumberUpdateOne) AddCallRecordIDs(ids ...int) *PhoneNumberUpdateOne {
	pnuo.mutation.AddCallRecordIDs(ids...)
	return pnuo
}

// AddCallRecords adds the "call_records" edges to the CallRecord entity.
func (pnuo *PhoneNumberUpdateOne) AddCallRecords(c ...*CallRecord) *PhoneNumberUpdateOne {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return pnuo.AddCallRecordIDs(ids...)
}

// Mutation returns the PhoneNumberMutation object of the builder.
func (pnuo *PhoneNumberUpdateOne) Mutation() *PhoneNumberMutation {
	return pnuo.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (pnuo *PhoneNumberUpdateOne) ClearTenant() *PhoneNumberUpdateOne {
	pnuo.mutation.ClearTenant()
	return pnuo
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (pnuo *PhoneNumberUpdateOne) ClearAgent() *PhoneNumberUpdateOne {
	pnuo.mutation.ClearAgent()
	return pnuo
}

// ClearCallRecords clears all "call_records" edges to the CallRecord entity.
func (pnuo *PhoneNumberUpdateOne) ClearCallRecords() *PhoneNumberUpdateOne {
	pnuo.mutation.ClearCallRecords()
	return pnuo
}

// RemoveCallRecordIDs removes the "call_records" edge to CallRecord entities by IDs.
func (pnuo *PhoneNumberUpdateOne) RemoveCallRecordIDs(ids ...int) *PhoneNumberUpdateOne {
	pnuo.mutation.RemoveCallRecordIDs(ids...)
	return pnuo
}

// RemoveCallRecords removes "call_records" edges to CallRecord entities.
func (pnuo *PhoneNumberUpdateOne) RemoveCallRecords(c ...*CallRecord) *PhoneNumberUpdateOne {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return pnuo.RemoveCallRecordIDs(ids...)
}

// Where appends a list predicates to the PhoneNumberUpdate builder.
func (pnuo *PhoneNumberUpdateOne) Where(ps ...predicate.PhoneNumber) *PhoneNumberUpdateOne {
	pnuo.mutation.Where(ps...)
	return pnuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (pnuo *PhoneNumberUpdateOne) Select(field string, fields ...string) *PhoneNumberUpdateOne {
	pnuo.fields = append([]string{field}, fields...)
	return pnuo
}

// Save executes the query and returns the updated PhoneNumber entity.
func (pnuo *PhoneNumberUpdateOne) Save(ctx context.Context) (*PhoneNumber, error) {
	pnuo.defaults()
	return withHooks(ctx, pnuo.sqlSave, pnuo.mutation, pnuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pnuo *PhoneNumberUpdateOne) SaveX(ctx context.Context) *PhoneNumber {
	node, err := pnuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (pnuo *PhoneNumberUpdateOne) Exec(ctx context.Context) error {
	_, err := pnuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pnuo *PhoneNumberUpdateOne) ExecX(ctx context.Context) {
	if err := pnuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pnuo *PhoneNumberUpdateOne) defaults() {
	if _, ok := pnuo.mutation.UpdatedAt(); !ok {
		v := phonenumber.UpdateDefaultUpdatedAt()
		pnuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pnuo *PhoneNumberUpdateOne) check() error {
	if v, ok := pnuo.mutation.Number(); ok {
		if err := phonenumber.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "PhoneNumber.number": %w`, err)}
		}
	}
	if v, ok := pnuo.mutation.Normalized(); ok {
		if err := phonenumber.NormalizedValidator(v); err != nil {
			return &ValidationError{Name: "normalized", err: fmt.Errorf(`ent: validator failed for field "PhoneNumber.normalized": %w`, err)}
		}
	}
	if v, ok := pnuo.mutation.Label(); ok {
		if err := phonenumber.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "PhoneNumber.label": %w`, err)}
		}
	}
	if pnuo.mutation.TenantCleared() && len(pnuo.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PhoneNumber.tenant"`)
	}
	return nil
}

func (pnuo *PhoneNumberUpdateOne) sqlSave(ctx context.Context) (_node *PhoneNumber, err error) {
	if err := pnuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(phonenumber.Table, phonenumber.Columns, sqlgraph.NewFieldSpec(phonenumber.FieldID, field.TypeInt))
	id, ok := pnuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PhoneNumber.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := pnuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, phonenumber.FieldID)
		for _, f := range fields {
			if !phonenumber.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != phonenumber.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := pnuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pnuo.mutation.Number(); ok {
		_spec.SetField(phonenumber.FieldNumber, field.TypeString, value)
	}
	if value, ok := pnuo.mutation.Normalized(); ok {
		_spec.SetField(phonenumber.FieldNormalized, field.TypeString, value)
	}
	if value, ok := pnuo.mutation.Label(); ok {
		_spec.SetField(phonenumber.FieldLabel, field.TypeString, value)
	}
	if pnuo.mutation.LabelCleared() {
		_spec.ClearField(phonenumber.FieldLabel, field.TypeString)
	}
	if value, ok := pnuo.mutation.Active(); ok {
		_spec.SetField(phonenumber.FieldActive, field.TypeBool, value)
	}
	if value, ok := pnuo.mutation.UpdatedAt(); ok {
		_spec.SetField(phonenumber.FieldUpdatedAt, field.TypeTime, value)
	}
	if pnuo.mutation.TenantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pnuo.mutation.TenantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if pnuo.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pnuo.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if pnuo.mutation.CallRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pnuo.mutation.RemovedCallRecordsIDs(); len(nodes) > 0 && !pnuo.mutation.CallRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pnuo.mutation.CallRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PhoneNumber{config: pnuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, pnuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{phonenumber.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	pnuo.mutation.done = true
	return _node, nil
}
