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

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (au *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	au.mutation.Where(ps...)
	return au
}

// SetTenantID sets the "tenant_id" field.
func (au *AgentUpdate) SetTenantID(i int) *AgentUpdate {
	au.mutation.SetTenantID(i)
	return au
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (au *AgentUpdate) SetNillableTenantID(i *int) *AgentUpdate {
	if i != nil {
		au.SetTenantID(*i)
	}
	return au
}

// SetProviderUserID sets the "provider_user_id" field.
func (au *AgentUpdate) SetProviderUserID(s string) *AgentUpdate {
	au.mutation.SetProviderUserID(s)
	return au
}

// SetNillableProviderUserID sets the "provider_user_id" field if the given value is not nil.
func (au *AgentUpdate) SetNillableProviderUserID(s *string) *AgentUpdate {
	if s != nil {
		au.SetProviderUserID(*s)
	}
	return au
}

// SetName sets the "name" field.
func (au *AgentUpdate) SetName(s string) *AgentUpdate {
	au.mutation.SetName(s)
	return au
}

// SetNillableName sets the "name" field if the given value is not nil.
func (au *AgentUpdate) SetNillableName(s *string) *AgentUpdate {
	if s != nil {
		au.SetName(*s)
	}
	return au
}

// SetEmail sets the "email" field.
func (au *AgentUpdate) SetEmail(s string) *AgentUpdate {
	au.mutation.SetEmail(s)
	return au
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (au *AgentUpdate) SetNillableEmail(s *string) *AgentUpdate {
	if s != nil {
		au.SetEmail(*s)
	}
	return au
}

// ClearEmail clears the value of the "email" field.
func (au *AgentUpdate) ClearEmail() *AgentUpdate {
	au.mutation.ClearEmail()
	return au
}

// SetActive sets the "active" field.
func (au *AgentUpdate) SetActive(b bool) *AgentUpdate {
	au.mutation.SetActive(b)
	return au
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (au *AgentUpdate) SetNillableActive(b *bool) *AgentUpdate {
	if b != nil {
		au.SetActive(*b)
	}
	return au
}

// SetVerified sets the "verified" field.
func (au *AgentUpdate) SetVerified(b bool) *AgentUpdate {
	au.mutation.SetVerified(b)
	return au
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (au *AgentUpdate) SetNillableVerified(b *bool) *AgentUpdate {
	if b != nil {
		au.SetVerified(*b)
	}
	return au
}

// SetLastActivityAt sets the "last_activity_at" field.
func (au *AgentUpdate) SetLastActivityAt(t time.Time) *AgentUpdate {
	au.mutation.SetLastActivityAt(t)
	return au
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (au *AgentUpdate) SetNillableLastActivityAt(t *time.Time) *AgentUpdate {
	if t != nil {
		au.SetLastActivityAt(*t)
	}
	return au
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (au *AgentUpdate) ClearLastActivityAt() *AgentUpdate {
	au.mutation.ClearLastActivityAt()
	return au
}

// SetUpdatedAt sets the "updated_at" field.
func (au *AgentUpdate) SetUpdatedAt(t time.Time) *AgentUpdate {
	au.mutation.SetUpdatedAt(t)
	return au
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (au *AgentUpdate) SetTenant(t *Tenant) *AgentUpdate {
	return au.SetTenantID(t.ID)
}

// AddPhoneNumberIDs adds the "phone_numbers" edge to the PhoneNumber entity by IDs.
func (au *AgentUpdate) AddPhoneNumberIDs(ids ...int) *AgentUpdate {
	au.mutation.AddPhoneNumberIDs(ids...)
	return au
}

// AddPhoneNumbers adds the "phone_numbers" edges to the PhoneNumber entity.
func (au *AgentUpdate) AddPhoneNumbers(p ...*PhoneNumber) *AgentUpdate {
	ids := make([]int, len(p))
	for i := range p {
		ids[i] = p[i].ID
	}
	return au.AddPhoneNumberIDs(ids...)
}

// AddCallRecordIDs adds the "call_records" edge to the CallRecord entity by IDs.
func (au *AgentUpdate) AddCallRecordIDs(ids ...int) *AgentUpdate {
	au.mutation.AddCallRecordIDs(ids...)
	return au
}

// AddCallRecords adds the "call_records" edges to the CallRecord entity.
func (au *AgentUpdate) AddCallRecords(c ...*CallRecord) *AgentUpdate {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return au.AddCallRecordIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (au *AgentUpdate) Mutation() *AgentMutation {
	return au.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (au *AgentUpdate) ClearTenant() *AgentUpdate {
	au.mutation.ClearTenant()
	return au
}

// ClearPhoneNumbers clears all "phone_numbers" edges to the PhoneNumber entity.
func (au *AgentUpdate) ClearPhoneNumbers() *AgentUpdate {
	au.mutation.ClearPhoneNumbers()
	return au
}

// RemovePhoneNumberIDs removes the "phone_numbers" edge to PhoneNumber entities by IDs.
func (au *AgentUpdate) RemovePhoneNumberIDs(ids ...int) *AgentUpdate {
	au.mutation.RemovePhoneNumberIDs(ids...)
	return au
}

// RemovePhoneNumbers removes "phone_numbers" edges to PhoneNumber entities.
func (au *AgentUpdate) RemovePhoneNumbers(p ...*PhoneNumber) *AgentUpdate {
	ids := make([]int, len(p))
	for i := range p {
		ids[i] = p[i].ID
	}
	return au.RemovePhoneNumberIDs(ids...)
}

// ClearCallRecords clears all "call_records" edges to the CallRecord entity.
func (au *AgentUpdate) ClearCallRecords() *AgentUpdate {
	au.mutation.ClearCallRecords()
	return au
}

// RemoveCallRecordIDs removes the "call_records" edge to CallRecord entities by IDs.
func (au *AgentUpdate) RemoveCallRecordIDs(ids ...int) *AgentUpdate {
	au.mutation.RemoveCallRecordIDs(ids...)
	return au
}

// RemoveCallRecords removes "call_records" edges to CallRecord entities.
func (au *AgentUpdate) RemoveCallRecords(c ...*CallRecord) *AgentUpdate {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return au.RemoveCallRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (au *AgentUpdate) Save(ctx context.Context) (int, error) {
	au.defaults()
	return withHooks(ctx, au.sqlSave, au.mutation, au.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (au *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := au.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (au *AgentUpdate) Exec(ctx context.Context) error {
	_, err := au.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (au *AgentUpdate) ExecX(ctx context.Context) {
	if err := au.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (au *AgentUpdate) defaults() {
	if _, ok := au.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		au.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (au *AgentUpdate) check() error {
	if v, ok := au.mutation.ProviderUserID(); ok {
		if err := agent.ProviderUserIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_user_id", err: fmt.Errorf(`ent: validator failed for field "Agent.provider_user_id": %w`, err)}
		}
	}
	if v, ok := au.mutation.Name(); ok {
		if err := agent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agent.name": %w`, err)}
		}
	}
	if v, ok := au.mutation.Email(); ok {
		if err := agent.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Agent.email": %w`, err)}
		}
	}
	if au.mutation.TenantCleared() && len(au.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.tenant"`)
	}
	return nil
}

func (au *AgentUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := au.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt))
	if ps := au.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := au.mutation.ProviderUserID(); ok {
		_spec.SetField(agent.FieldProviderUserID, field.TypeString, value)
	}
	if value, ok := au.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := au.mutation.Email(); ok {
		_spec.SetField(agent.FieldEmail, field.TypeString, value)
	}
	if au.mutation.EmailCleared() {
		_spec.ClearField(agent.FieldEmail, field.TypeString)
	}
	if value, ok := au.mutation.Active(); ok {
		_spec.SetField(agent.FieldActive, field.TypeBool, value)
	}
	if value, ok := au.mutation.Verified(); ok {
		_spec.SetField(agent.FieldVerified, field.TypeBool, value)
	}
	if value, ok := au.mutation.LastActivityAt(); ok {
		_spec.SetField(agent.FieldLastActivityAt, field.TypeTime, value)
	}
	if au.mutation.LastActivityAtCleared() {
		_spec.ClearField(agent.FieldLastActivityAt, field.TypeTime)
	}
	if value, ok := au.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if au.mutation.TenantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.TenantTable,
			Columns: []string{agent.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.TenantTable,
			Columns: []string{agent.TenantColumn},
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
	if au.mutation.PhoneNumbersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.PhoneNumbersTable,
			Columns: []string{agent.PhoneNumbersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phonenumber.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.RemovedPhoneNumbersIDs(); len(nodes) > 0 && !au.mutation.PhoneNumbersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.PhoneNumbersTable,
			Columns: []string{agent.PhoneNumbersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phonenumber.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.PhoneNumbersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.PhoneNumbersTable,
			Columns: []string{agent.PhoneNumbersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phonenumber.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if au.mutation.CallRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.CallRecordsTable,
			Columns: []string{agent.CallRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.RemovedCallRecordsIDs(); len(nodes) > 0 && !au.mutation.CallRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.CallRecordsTable,
			Columns: []string{agent.CallRecordsColumn},
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
	if nodes := au.mutation.CallRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.CallRecordsTable,
			Columns: []string{agent.CallRecordsColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, au.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	au.mutation.done = true
	return n, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetTenantID sets the "tenant_id" field.
func (auo *AgentUpdateOne) SetTenantID(i int) *AgentUpdateOne {
	auo.mutation.SetTenantID(i)
	return auo
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (auo *AgentUpdateOne) SetNillableTenantID(i *int) *AgentUpdateOne {
	if i != nil {
		auo.SetTenantID(*i)
	}
	return auo
}

// SetProviderUserID sets the "provider_user_id" field.
func (auo *AgentUpdateOne) SetProviderUserID(s string) *AgentUpdateOne {
	auo.mutation.SetProviderUserID(s)
	return auo
}

// SetNillableProviderUserID sets the "provider_user_id" field if the given value is not nil.
func (auo *AgentUpdateOne) SetNillableProviderUserID(s *string) *AgentUpdateOne {
	if s != nil {
		auo.SetProviderUserID(*s)
	}
	return auo
}

// SetName sets the "name" field.
func (auo *AgentUpdateOne) SetName(s string) *AgentUpdateOne {
	auo.mutation.SetName(s)
	return auo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (auo *AgentUpdateOne) SetNillableName(s *string) *AgentUpdateOne {
	if s != nil {
		auo.SetName(*s)
	}
	return auo
}

// SetEmail sets the "email" field.
func (auo *AgentUpdateOne) SetEmail(s string) *AgentUpdateOne {
	auo.mutation.SetEmail(s)
	return auo
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (auo *AgentUpdateOne) SetNillableEmail(s *string) *AgentUpdateOne {
	if s != nil {
		auo.SetEmail(*s)
	}
	return auo
}

// ClearEmail clears the value of the "email" field.
func (auo *AgentUpdateOne) ClearEmail() *AgentUpdateOne {
	auo.mutation.ClearEmail()
	return auo
}

// SetActive sets the "active" field.
func (auo *AgentUpdateOne) SetActive(b bool) *AgentUpdateOne {
	auo.mutation.SetActive(b)
	return auo
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (auo *AgentUpdateOne) SetNillableActive(b *bool) *AgentUpdateOne {
	if b != nil {
		auo.SetActive(*b)
	}
	return auo
}

// SetVerified sets the "verified" field.
func (auo *AgentUpdateOne) SetVerified(b bool) *AgentUpdateOne {
	auo.mutation.SetVerified(b)
	return auo
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (auo *AgentUpdateOne) SetNillableVerified(b *bool) *AgentUpdateOne {
	if b != nil {
		auo.SetVerified(*b)
	}
	return auo
}

// SetLastActivityAt sets the "last_activity_at" field.
func (auo *AgentUpdateOne) SetLastActivityAt(t time.Time) *AgentUpdateOne {
	auo.mutation.SetLastActivityAt(t)
	return auo
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (auo *AgentUpdateOne) SetNillableLastActivityAt(t *time.Time) *AgentUpdateOne {
	if t != nil {
		auo.SetLastActivityAt(*t)
	}
	return auo
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (auo *AgentUpdateOne) ClearLastActivityAt() *AgentUpdateOne {
	auo.mutation.ClearLastActivityAt()
	return auo
}

// SetUpdatedAt sets the "updated_at" field.
func (auo *AgentUpdateOne) SetUpdatedAt(t time.Time) *AgentUpdateOne {
	auo.mutation.SetUpdatedAt(t)
	return auo
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (auo *AgentUpdateOne) SetTenant(t *Tenant) *AgentUpdateOne {
	return auo.SetTenantID(t.ID)
}

// AddPhoneNumberIDs adds the "phone_numbers" edge to the PhoneNumber entity by IDs.
func (auo *AgentUpdateOne) AddPhoneNumberIDs(ids ...int) *AgentUpdateOne {
	auo.mutation.AddPhoneNumberIDs(ids...)
	return auo
}

// AddPhoneNumbers adds the "phone_numbers" edges to the PhoneNumber entity.
func (auo *AgentUpdateOne) AddPhoneNumbers(p ...*PhoneNumber) *AgentUpdateOne {
	ids := make([]int, len(p))
	for i := range p {
		ids[i] = p[i].ID
	}
	return auo.AddPhoneNumberIDs(ids...)
}

// AddCallRecordIDs adds the "call_records" edge to the CallRecord entity by IDs.
func (auo *AgentUpdateOne) AddCallRecordIDs(ids ...int) *AgentUpdateOne {
	auo.mutation.AddCallRecordIDs(ids...)
	return auo
}

// AddCallRecords adds the "call_records" edges to the CallRecord entity.
func (auo *AgentUpdateOne) AddCallRecords(c ...*CallRecord) *AgentUpdateOne {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return auo.AddCallRecordIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (auo *AgentUpdateOne) Mutation() *AgentMutation {
	return auo.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (auo *AgentUpdateOne) ClearTenant() *AgentUpdateOne {
	auo.mutation.ClearTenant()
	return auo
}

// ClearPhoneNumbers clears all "phone_numbers" edges to the PhoneNumber entity.
func (auo *AgentUpdateOne) ClearPhoneNumbers() *AgentUpdateOne {
	auo.mutation.ClearPhoneNumbers()
	return auo
}

// RemovePhoneNumberIDs removes the "phone_numbers" edge to PhoneNumber entities by IDs.
func (auo *AgentUpdateOne) RemovePhoneNumberIDs(ids ...int) *AgentUpdateOne {
	auo.mutation.RemovePhoneNumberIDs(ids...)
	return auo
}

// RemovePhoneNumbers removes "phone_numbers" edges to PhoneNumber entities.
func (auo *AgentUpdateOne) RemovePhoneNumbers(p ...*PhoneNumber) *AgentUpdateOne {
	ids := make([]int, len(p))
	for i := range p {
		ids[i] = p[i].ID
	}
	return auo.RemovePhoneNumberIDs(ids...)
}

// ClearCallRecords clears all "call_records" edges to the CallRecord entity.
func (auo *AgentUpdateOne) ClearCallRecords() *AgentUpdateOne {
	auo.mutation.ClearCallRecords()
	return auo
}

// RemoveCallRecordIDs removes the "call_records" edge to CallRecord entities by IDs.
func (auo *AgentUpdateOne) RemoveCallRecordIDs(ids ...int) *AgentUpdateOne {
	auo.mutation.RemoveCallRecordIDs(ids...)
	return auo
}

// RemoveCallRecords removes "call_records" edges to CallRecord entities.
func (auo *AgentUpdateOne) RemoveCallRecords(c ...*CallRecord) *AgentUpdateOne {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return auo.RemoveCallRecordIDs(ids...)
}

// Where appends a list predicates to the AgentUpdate builder.
func (auo *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	auo.mutation.Where(ps...)
	return auo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (auo *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	auo.fields = append([]string{field}, fields...)
	return auo
}

// Save executes the query and returns the updated Agent entity.
func (auo *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	auo.defaults()
	return withHooks(ctx, auo.sqlSave, auo.mutation, auo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (auo *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := auo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (auo *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := auo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (auo *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := auo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (auo *AgentUpdateOne) defaults() {
	if _, ok := auo.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		auo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (auo *AgentUpdateOne) check() error {
	if v, ok := auo.mutation.ProviderUserID(); ok {
		if err := agent.ProviderUserIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_user_id", err: fmt.Errorf(`ent: validator failed for field "Agent.provider_user_id": %w`, err)}
		}
	}
	if v, ok := auo.mutation.Name(); ok {
		if err := agent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agent.name": %w`, err)}
		}
	}
	if v, ok := auo.mutation.Email(); ok {
		if err := agent.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Agent.email": %w`, err)}
		}
	}
	if auo.mutation.TenantCleared() && len(auo.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.tenant"`)
	}
	return nil
}

func (auo *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := auo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt))
	id, ok := auo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := auo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := auo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := auo.mutation.ProviderUserID(); ok {
		_spec.SetField(agent.FieldProviderUserID, field.TypeString, value)
	}
	if value, ok := auo.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := auo.mutation.Email(); ok {
		_spec.SetField(agent.FieldEmail, field.TypeString, value)
	}
	if auo.mutation.EmailCleared() {
		_spec.ClearField(agent.FieldEmail, field.TypeString)
	}
	if value, ok := auo.mutation.Active(); ok {
		_spec.SetField(agent.FieldActive, field.TypeBool, value)
	}
	if value, ok := auo.mutation.Verified(); ok {
		_spec.SetField(agent.FieldVerified, field.TypeBool, value)
	}
	if value, ok := auo.mutation.LastActivityAt(); ok {
		_spec.SetField(agent.FieldLastActivityAt, field.TypeTime, value)
	}
	if auo.mutation.LastActivityAtCleared() {
		_spec.ClearField(agent.FieldLastActivityAt, field.TypeTime)
	}
	if value, ok := auo.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if auo.mutation.TenantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.TenantTable,
			Columns: []string{agent.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.TenantTable,
			Columns: []string{agent.TenantColumn},
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
	if auo.mutation.PhoneNumbersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.PhoneNumbersTable,
			Columns: []string{agent.PhoneNumbersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phonenumber.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.RemovedPhoneNumbersIDs(); len(nodes) > 0 && !auo.mutation.PhoneNumbersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.PhoneNumbersTable,
			Columns: []string{agent.PhoneNumbersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phonenumber.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.PhoneNumbersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.PhoneNumbersTable,
			Columns: []string{agent.PhoneNumbersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phonenumber.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if auo.mutation.CallRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.CallRecordsTable,
			Columns: []string{agent.CallRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.RemovedCallRecordsIDs(); len(nodes) > 0 && !auo.mutation.CallRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.CallRecordsTable,
			Columns: []string{agent.CallRecordsColumn},
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
	if nodes := auo.mutation.CallRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.CallRecordsTable,
			Columns: []string{agent.CallRecordsColumn},
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
	_node = &Agent{config: auo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, auo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	auo.mutation.done = true
	return _node, nil
}
