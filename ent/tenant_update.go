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
	"github.com/ringledger/ringledger/ent/billingaccount"
	"github.com/ringledger/ringledger/ent/callrecord"
	"github.com/ringledger/ringledger/ent/crmconnection"
	"github.com/ringledger/ringledger/ent/phonenumber"
	"github.com/ringledger/ringledger/ent/predicate"
	"github.com/ringledger/ringledger/ent/syncrun"
	"github.com/ringledger/ringledger/ent/tenant"
)

// TenantUpdate is the builder for updating Tenant entities.
type TenantUpdate struct {
	config
	hooks    []Hook
	mutation *TenantMutation
}

// Where appends a list predicates to the TenantUpdate builder.
func (tu *TenantUpdate) Where(ps ...predicate.Tenant) *TenantUpdate {
	tu.mutation.Where(ps...)
	return tu
}

// SetName sets the "name" field.
func (tu *TenantUpdate) SetName(s string) *TenantUpdate {
	tu.mutation.SetName(s)
	return tu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (tu *TenantUpdate) SetNillableName(s *string) *TenantUpdate {
	if s != nil {
		tu.SetName(*s)
	}
	return tu
}

// SetTimezone sets the "timezone" field.
func (tu *TenantUpdate) SetTimezone(s string) *TenantUpdate {
	tu.mutation.SetTimezone(s)
	return tu
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (tu *TenantUpdate) SetNillableTimezone(s *string) *TenantUpdate {
	if s != nil {
		tu.SetTimezone(*s)
	}
	return tu
}

// SetActive sets the "active" field.
func (tu *TenantUpdate) SetActive(b bool) *TenantUpdate {
	tu.mutation.SetActive(b)
	return tu
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (tu *TenantUpdate) SetNillableActive(b *bool) *TenantUpdate {
	if b != nil {
		tu.SetActive(*b)
	}
	return tu
}

// SetUpdatedAt sets the "updated_at" field.
func (tu *TenantUpdate) SetUpdatedAt(t time.Time) *TenantUpdate {
	tu.mutation.SetUpdatedAt(t)
	return tu
}

// SetCrmConnectionID sets the "crm_connection" edge to the CRMConnection entity by ID.
func (tu *TenantUpdate) SetCrmConnectionID(id int) *TenantUpdate {
	tu.mutation.SetCrmConnectionID(id)
	return tu
}

// SetNillableCrmConnectionID sets the "crm_connection" edge to the CRMConnection entity by ID if the given value is not nil.
func (tu *TenantUpdate) SetNillableCrmConnectionID(id *int) *TenantUpdate {
	if id != nil {
		tu = tu.SetCrmConnectionID(*id)
	}
	return tu
}

// SetCrmConnection sets the "crm_connection" edge to the CRMConnection entity.
func (tu *TenantUpdate) SetCrmConnection(c *CRMConnection) *TenantUpdate {
	return tu.SetCrmConnectionID(c.ID)
}

// SetBillingAccountID sets the "billing_account" edge to the BillingAccount entity by ID.
func (tu *TenantUpdate) SetBillingAccountID(id int) *TenantUpdate {
	tu.mutation.SetBillingAccountID(id)
	return tu
}

// SetNillableBillingAccountID sets the "billing_account" edge to the BillingAccount entity by ID if the given value is not nil.
func (tu *TenantUpdate) SetNillableBillingAccountID(id *int) *TenantUpdate {
	if id != nil {
		tu = tu.SetBillingAccountID(*id)
	}
	return tu
}

// SetBillingAccount sets the "billing_account" edge to the BillingAccount entity.
func (tu *TenantUpdate) SetBillingAccount(b *BillingAccount) *TenantUpdate {
	return tu.SetBillingAccountID(b.ID)
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (tu *TenantUpdate) AddAgentIDs(ids ...int) *TenantUpdate {
	tu.mutation.AddAgentIDs(ids...)
	return tu
}

// AddAgents adds the "agents" edges to the Agent entity.
func (tu *TenantUpdate) AddAgents(a ...*Agent) *TenantUpdate {
	ids := make([]int, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return tu.AddAgentIDs(ids...)
}

// AddPhoneNumberIDs adds the "phone_numbers" edge to the PhoneNumber entity by IDs.
func (tu *TenantUpdate) AddPhoneNumberIDs(ids ...int) *TenantUpdate {
	tu.mutation.AddPhoneNumberIDs(ids...)
	return tu
}

// AddPhoneNumbers adds the "phone_numbers" edges to the PhoneNumber entity.
func (tu *TenantUpdate) AddPhoneNumbers(p ...*PhoneNumber) *TenantUpdate {
	ids := make([]int, len(p))
	for i := range p {
		ids[i] = p[i].ID
	}
	return tu.AddPhoneNumberIDs(ids...)
}

// AddCallRecordIDs adds the "call_records" edge to the CallRecord entity by IDs.
func (tu *TenantUpdate) AddCallRecordIDs(ids ...int) *TenantUpdate {
	tu.mutation.AddCallRecordIDs(ids...)
	return tu
}

// AddCallRecords adds the "call_records" edges to the CallRecord entity.
func (tu *TenantUpdate) AddCallRecords(c ...*CallRecord) *TenantUpdate {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return tu.AddCallRecordIDs(ids...)
}

// AddSyncRunIDs adds the "sync_runs" edge to the SyncRun entity by IDs.
func (tu *TenantUpdate) AddSyncRunIDs(ids ...int) *TenantUpdate {
	tu.mutation.AddSyncRunIDs(ids...)
	return tu
}

// AddSyncRuns adds the "sync_runs" edges to the SyncRun entity.
func (tu *TenantUpdate) AddSyncRuns(s ...*SyncRun) *TenantUpdate {
	ids := make([]int, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return tu.AddSyncRunIDs(ids...)
}

// Mutation returns the TenantMutation object of the builder.
func (tu *TenantUpdate) Mutation() *TenantMutation {
	return tu.mutation
}

// ClearCrmConnection clears the "crm_connection" edge to the CRMConnection entity.
func (tu *TenantUpdate) ClearCrmConnection() *TenantUpdate {
	tu.mutation.ClearCrmConnection()
	return tu
}

// ClearBillingAccount clears the "billing_account" edge to the BillingAccount entity.
func (tu *TenantUpdate) ClearBillingAccount() *TenantUpdate {
	tu.mutation.ClearBillingAccount()
	return tu
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (tu *TenantUpdate) ClearAgents() *TenantUpdate {
	tu.mutation.ClearAgents()
	return tu
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (tu *TenantUpdate) RemoveAgentIDs(ids ...int) *TenantUpdate {
	tu.mutation.RemoveAgentIDs(ids...)
	return tu
}

// RemoveAgents removes "agents" edges to Agent entities.
func (tu *TenantUpdate) RemoveAgents(a ...*Agent) *TenantUpdate {
	ids := make([]int, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return tu.RemoveAgentIDs(ids...)
}

// ClearPhoneNumbers clears all "phone_numbers" edges to the PhoneNumber entity.
func (tu *TenantUpdate) ClearPhoneNumbers() *TenantUpdate {
	tu.mutation.ClearPhoneNumbers()
	return tu
}

// RemovePhoneNumberIDs removes the "phone_numbers" edge to PhoneNumber entities by IDs.
func (tu *TenantUpdate) RemovePhoneNumberIDs(ids ...int) *TenantUpdate {
	tu.mutation.RemovePhoneNumberIDs(ids...)
	return tu
}

// RemovePhoneNumbers removes "phone_numbers" edges to PhoneNumber entities.
func (tu *TenantUpdate) RemovePhoneNumbers(p ...*PhoneNumber) *TenantUpdate {
	ids := make([]int, len(p))
	for i := range p {
		ids[i] = p[i].ID
	}
	return tu.RemovePhoneNumberIDs(ids...)
}

// ClearCallRecords clears all "call_records" edges to the CallRecord entity.
func (tu *TenantUpdate) ClearCallRecords() *TenantUpdate {
	tu.mutation.ClearCallRecords()
	return tu
}

// RemoveCallRecordIDs removes the "call_records" edge to CallRecord entities by IDs.
func (tu *TenantUpdate) RemoveCallRecordIDs(ids ...int) *TenantUpdate {
	tu.mutation.RemoveCallRecordIDs(ids...)
	return tu
}

// RemoveCallRecords removes "call_records" edges to CallRecord entities.
func (tu *TenantUpdate) RemoveCallRecords(c ...*CallRecord) *TenantUpdate {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return tu.RemoveCallRecordIDs(ids...)
}

// ClearSyncRuns clears all "sync_runs" edges to the SyncRun entity.
func (tu *TenantUpdate) ClearSyncRuns() *TenantUpdate {
	tu.mutation.ClearSyncRuns()
	return tu
}

// RemoveSyncRunIDs removes the "sync_runs" edge to SyncRun entities by IDs.
func (tu *TenantUpdate) RemoveSyncRunIDs(ids ...int) *TenantUpdate {
	tu.mutation.RemoveSyncRunIDs(ids...)
	return tu
}

// RemoveSyncRuns removes "sync_runs" edges to SyncRun entities.
func (tu *TenantUpdate) RemoveSyncRuns(s ...*SyncRun) *TenantUpdate {
	ids := make([]int, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return tu.RemoveSyncRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tu *TenantUpdate) Save(ctx context.Context) (int, error) {
	tu.defaults()
	return withHooks(ctx, tu.sqlSave, tu.mutation, tu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tu *TenantUpdate) SaveX(ctx context.Context) int {
	affected, err := tu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tu *TenantUpdate) Exec(ctx context.Context) error {
	_, err := tu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tu *TenantUpdate) ExecX(ctx context.Context) {
	if err := tu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tu *TenantUpdate) defaults() {
	if _, ok := tu.mutation.UpdatedAt(); !ok {
		v := tenant.UpdateDefaultUpdatedAt()
		tu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tu *TenantUpdate) check() error {
	if v, ok := tu.mutation.Name(); ok {
		if err := tenant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Tenant.name": %w`, err)}
		}
	}
	return nil
}

func (tu *TenantUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenant.Table, tenant.Columns, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeInt))
	if ps := tu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tu.mutation.Name(); ok {
		_spec.SetField(tenant.FieldName, field.TypeString, value)
	}
	if value, ok := tu.mutation.Timezone(); ok {
		_spec.SetField(tenant.FieldTimezone, field.TypeString, value)
	}
	if value, ok := tu.mutation.Active(); ok {
		_spec.SetField(tenant.FieldActive, field.TypeBool, value)
	}
	if value, ok := tu.mutation.UpdatedAt(); ok {
		_spec.SetField(tenant.FieldUpdatedAt, field.TypeTime, value)
	}
	if tu.mutation.CrmConnectionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   tenant.CrmConnectionTable,
			Columns: []string{tenant.CrmConnectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crmconnection.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.CrmConnectionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   tenant.CrmConnectionTable,
			Columns: []string{tenant.CrmConnectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crmconnection.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tu.mutation.BillingAccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   tenant.BillingAccountTable,
			Columns: []string{tenant.BillingAccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(billingaccount.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.BillingAccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   tenant.BillingAccountTable,
			Columns: []string{tenant.BillingAccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(billingaccount.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tu.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AgentsTable,
			Columns: []string{tenant.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !tu.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AgentsTable,
			Columns: []string{tenant.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.AgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AgentsTable,
			Columns: []string{tenant.AgentsColumn},
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
	if tu.mutation.PhoneNumbersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.PhoneNumbersTable,
			Columns: []string{tenant.PhoneNumbersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phonenumber.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.RemovedPhoneNumbersIDs(); len(nodes) > 0 && !tu.mutation.PhoneNumbersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.PhoneNumbersTable,
			Columns: []string{tenant.PhoneNumbersColumn},
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
	if nodes := tu.mutation.PhoneNumbersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.PhoneNumbersTable,
			Columns: []string{tenant.PhoneNumbersColumn},
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
	if tu.mutation.CallRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CallRecordsTable,
			Columns: []string{tenant.CallRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.RemovedCallRecordsIDs(); len(nodes) > 0 && !tu.mutation.CallRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CallRecordsTable,
			Columns: []string{tenant.CallRecordsColumn},
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
	if nodes := tu.mutation.CallRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CallRecordsTable,
			Columns: []string{tenant.CallRecordsColumn},
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
	if tu.mutation.SyncRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.SyncRunsTable,
			Columns: []string{tenant.SyncRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(syncrun.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.RemovedSyncRunsIDs(); len(nodes) > 0 && !tu.mutation.SyncRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.SyncRunsTable,
			Columns: []string{tenant.SyncRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(syncrun.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.SyncRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.SyncRunsTable,
			Columns: []string{tenant.SyncRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(syncrun.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tu.mutation.done = true
	return n, nil
}

// TenantUpdateOne is the builder for updating a single Tenant entity.
type TenantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TenantMutation
}

// SetName sets the "name" field.
func (tuo *TenantUpdateOne) SetName(s string) *TenantUpdateOne {
	tuo.mutation.SetName(s)
	return tuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (tuo *TenantUpdateOne) SetNillableName(s *string) *TenantUpdateOne {
	if s != nil {
		tuo.SetName(*s)
	}
	return tuo
}

// SetTimezone sets the "timezone" field.
func (tuo *TenantUpdateOne) SetTimezone(s string) *TenantUpdateOne {
	tuo.mutation.SetTimezone(s)
	return tuo
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (tuo *TenantUpdateOne) SetNillableTimezone(s *string) *TenantUpdateOne {
	if s != nil {
		tuo.SetTimezone(*s)
	}
	return tuo
}

// SetActive sets the "active" field.
func (tuo *TenantUpdateOne) SetActive(b bool) *TenantUpdateOne {
	tuo.mutation.SetActive(b)
	return tuo
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (tuo *TenantUpdateOne) SetNillableActive(b *bool) *TenantUpdateOne {
	if b != nil {
		tuo.SetActive(*b)
	}
	return tuo
}

// SetUpdatedAt sets the "updated_at" field.
func (tuo *TenantUpdateOne) SetUpdatedAt(t time.Time) *TenantUpdateOne {
	tuo.mutation.SetUpdatedAt(t)
	return tuo
}

// SetCrmConnectionID sets the "crm_connection" edge to the CRMConnection entity by ID.
func (tuo *TenantUpdateOne) SetCrmConnectionID(id int) *TenantUpdateOne {
	tuo.mutation.SetCrmConnectionID(id)
	return tuo
}

// SetNillableCrmConnectionID sets the "crm_connection" edge to the CRMConnection entity by ID if the given value is not nil.
func (tuo *TenantUpdateOne) SetNillableCrmConnectionID(id *int) *TenantUpdateOne {
	if id != nil {
		tuo = tuo.SetCrmConnectionID(*id)
	}
	return tuo
}

// SetCrmConnection sets the "crm_connection" edge to the CRMConnection entity.
func (tuo *TenantUpdateOne) SetCrmConnection(c *CRMConnection) *TenantUpdateOne {
	return tuo.SetCrmConnectionID(c.ID)
}

// SetBillingAccountID sets the "billing_account" edge to the BillingAccount entity by ID.
func (tuo *TenantUpdateOne) SetBillingAccountID(id int) *TenantUpdateOne {
	tuo.mutation.SetBillingAccountID(id)
	return tuo
}

// SetNillableBillingAccountID sets the "billing_account" edge to the BillingAccount entity by ID if the given value is not nil.
func (tuo *TenantUpdateOne) SetNillableBillingAccountID(id *int) *TenantUpdateOne {
	if id != nil {
		tuo = tuo.SetBillingAccountID(*id)
	}
	return tuo
}

// SetBillingAccount sets the "billing_account" edge to the BillingAccount entity.
func (tuo *TenantUpdateOne) SetBillingAccount(b *BillingAccount) *TenantUpdateOne {
	return tuo.SetBillingAccountID(b.ID)
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (tuo *TenantUpdateOne) AddAgentIDs(ids ...int) *TenantUpdateOne {
	tuo.mutation.AddAgentIDs(ids...)
	return tuo
}

// AddAgents adds the "agents" edges to the Agent entity.
func (tuo *TenantUpdateOne) AddAgents(a ...*Agent) *TenantUpdateOne {
	ids := make([]int, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return tuo.AddAgentIDs(ids...)
}

// AddPhoneNumberIDs adds the "phone_numbers" edge to the PhoneNumber entity by IDs.
func (tuo *TenantUpdateOne) AddPhoneNumberIDs(ids ...int) *TenantUpdateOne {
	tuo.mutation.AddPhoneNumberIDs(ids...)
	return tuo
}

// AddPhoneNumbers adds the "phone_numbers" edges to the PhoneNumber entity.
func (tuo *TenantUpdateOne) AddPhoneNumbers(p ...*PhoneNumber) *TenantUpdateOne {
	ids := make([]int, len(p))
	for i := range p {
		ids[i] = p[i].ID
	}
	return tuo.AddPhoneNumberIDs(ids...)
}

// AddCallRecordIDs adds the "call_records" edge to the CallRecord entity by IDs.
func (tuo *TenantUpdateOne) AddCallRecordIDs(ids ...int) *TenantUpdateOne {
	tuo.mutation.AddCallRecordIDs(ids...)
	return tuo
}

// AddCallRecords adds the "call_records" edges to the CallRecord entity.
func (tuo *TenantUpdateOne) AddCallRecords(c ...*CallRecord) *TenantUpdateOne {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return tuo.AddCallRecordIDs(ids...)
}

// AddSyncRunIDs adds the "sync_runs" edge to the SyncRun entity by IDs.
func (tuo *TenantUpdateOne) AddSyncRunIDs(ids ...int) *TenantUpdateOne {
	tuo.mutation.AddSyncRunIDs(ids...)
	return tuo
}

// AddSyncRuns adds the "sync_runs" edges to the SyncRun entity.
func (tuo *TenantUpdateOne) AddSyncRuns(s ...*SyncRun) *TenantUpdateOne {
	ids := make([]int, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return tuo.AddSyncRunIDs(ids...)
}

// Mutation returns the TenantMutation object of the builder.
func (tuo *TenantUpdateOne) Mutation() *TenantMutation {
	return tuo.mutation
}

// ClearCrmConnection clears the "crm_connection" edge to the CRMConnection entity.
func (tuo *TenantUpdateOne) ClearCrmConnection() *TenantUpdateOne {
	tuo.mutation.ClearCrmConnection()
	return tuo
}

// ClearBillingAccount clears the "billing_account" edge to the BillingAccount entity.
func (tuo *TenantUpdateOne) ClearBillingAccount() *TenantUpdateOne {
	tuo.mutation.ClearBillingAccount()
	return tuo
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (tuo *TenantUpdateOne) ClearAgents() *TenantUpdateOne {
	tuo.mutation.ClearAgents()
	return tuo
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (tuo *TenantUpdateOne) RemoveAgentIDs(ids ...int) *TenantUpdateOne {
	tuo.mutation.RemoveAgentIDs(ids...)
	return tuo
}

// RemoveAgents removes "agents" edges to Agent entities.
func (tuo *TenantUpdateOne) RemoveAgents(a ...*Agent) *TenantUpdateOne {
	ids := make([]int, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return tuo.RemoveAgentIDs(ids...)
}

// ClearPhoneNumbers clears all "phone_numbers" edges to the PhoneNumber entity.
func (tuo *TenantUpdateOne) ClearPhoneNumbers() *TenantUpdateOne {
	tuo.mutation.ClearPhoneNumbers()
	return tuo
}

// RemovePhoneNumberIDs removes the "phone_numbers" edge to PhoneNumber entities by IDs.
func (tuo *TenantUpdateOne) RemovePhoneNumberIDs(ids ...int) *TenantUpdateOne {
	tuo.mutation.RemovePhoneNumberIDs(ids...)
	return tuo
}

// RemovePhoneNumbers removes "phone_numbers" edges to PhoneNumber entities.
func (tuo *TenantUpdateOne) RemovePhoneNumbers(p ...*PhoneNumber) *TenantUpdateOne {
	ids := make([]int, len(p))
	for i := range p {
		ids[i] = p[i].ID
	}
	return tuo.RemovePhoneNumberIDs(ids...)
}

// ClearCallRecords clears all "call_records" edges to the CallRecord entity.
func (tuo *TenantUpdateOne) ClearCallRecords() *TenantUpdateOne {
	tuo.mutation.ClearCallRecords()
	return tuo
}

// RemoveCallRecordIDs removes the "call_records" edge to CallRecord entities by IDs.
func (tuo *TenantUpdateOne) RemoveCallRecordIDs(ids ...int) *TenantUpdateOne {
	tuo.mutation.RemoveCallRecordIDs(ids...)
	return tuo
}

// RemoveCallRecords removes "call_records" edges to CallRecord entities.
func (tuo *TenantUpdateOne) RemoveCallRecords(c ...*CallRecord) *TenantUpdateOne {
	ids := make([]int, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return tuo.RemoveCallRecordIDs(ids...)
}

// ClearSyncRuns clears all "sync_runs" edges to the SyncRun entity.
func (tuo *TenantUpdateOne) ClearSyncRuns() *TenantUpdateOne {
	tuo.mutation.ClearSyncRuns()
	return tuo
}

// RemoveSyncRunIDs removes the "sync_runs" edge to SyncRun entities by IDs.
func (tuo *TenantUpdateOne) RemoveSyncRunIDs(ids ...int) *TenantUpdateOne {
	tuo.mutation.RemoveSyncRunIDs(ids...)
	return tuo
}

// RemoveSyncRuns removes "sync_runs" edges to SyncRun entities.
func (tuo *TenantUpdateOne) RemoveSyncRuns(s ...*SyncRun) *TenantUpdateOne {
	ids := make([]int, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return tuo.RemoveSyncRunIDs(ids...)
}

// Where appends a list predicates to the TenantUpdate builder.
func (tuo *TenantUpdateOne) Where(ps ...predicate.Tenant) *TenantUpdateOne {
	tuo.mutation.Where(ps...)
	return tuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tuo *TenantUpdateOne) Select(field string, fields ...string) *TenantUpdateOne {
	tuo.fields = append([]string{field}, fields...)
	return tuo
}

// Save executes the query and returns the updated Tenant entity.
func (tuo *TenantUpdateOne) Save(ctx context.Context) (*Tenant, error) {
	tuo.defaults()
	return withHooks(ctx, tuo.sqlSave, tuo.mutation, tuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tuo *TenantUpdateOne) SaveX(ctx context.Context) *Tenant {
	node, err := tuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tuo *TenantUpdateOne) Exec(ctx context.Context) error {
	_, err := tuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tuo *TenantUpdateOne) ExecX(ctx context.Context) {
	if err := tuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tuo *TenantUpdateOne) defaults() {
	if _, ok := tuo.mutation.UpdatedAt(); !ok {
		v := tenant.UpdateDefaultUpdatedAt()
		tuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tuo *TenantUpdateOne) check() error {
	if v, ok := tuo.mutation.Name(); ok {
		if err := tenant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Tenant.name": %w`, err)}
		}
	}
	return nil
}

func (tuo *TenantUpdateOne) sqlSave(ctx context.Context) (_node *Tenant, err error) {
	if err := tuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenant.Table, tenant.Columns, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeInt))
	id, ok := tuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Tenant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tenant.FieldID)
		for _, f := range fields {
			if !tenant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tenant.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tuo.mutation.Name(); ok {
		_spec.SetField(tenant.FieldName, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Timezone(); ok {
		_spec.SetField(tenant.FieldTimezone, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Active(); ok {
		_spec.SetField(tenant.FieldActive, field.TypeBool, value)
	}
	if value, ok := tuo.mutation.UpdatedAt(); ok {
		_spec.SetField(tenant.FieldUpdatedAt, field.TypeTime, value)
	}
	if tuo.mutation.CrmConnectionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   tenant.CrmConnectionTable,
			Columns: []string{tenant.CrmConnectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crmconnection.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.CrmConnectionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   tenant.CrmConnectionTable,
			Columns: []string{tenant.CrmConnectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crmconnection.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tuo.mutation.BillingAccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   tenant.BillingAccountTable,
			Columns: []string{tenant.BillingAccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(billingaccount.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.BillingAccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   tenant.BillingAccountTable,
			Columns: []string{tenant.BillingAccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(billingaccount.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tuo.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AgentsTable,
			Columns: []string{tenant.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !tuo.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AgentsTable,
			Columns: []string{tenant.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.AgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.AgentsTable,
			Columns: []string{tenant.AgentsColumn},
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
	if tuo.mutation.PhoneNumbersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.PhoneNumbersTable,
			Columns: []string{tenant.PhoneNumbersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phonenumber.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.RemovedPhoneNumbersIDs(); len(nodes) > 0 && !tuo.mutation.PhoneNumbersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.PhoneNumbersTable,
			Columns: []string{tenant.PhoneNumbersColumn},
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
	if nodes := tuo.mutation.PhoneNumbersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.PhoneNumbersTable,
			Columns: []string{tenant.PhoneNumbersColumn},
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
	if tuo.mutation.CallRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CallRecordsTable,
			Columns: []string{tenant.CallRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.RemovedCallRecordsIDs(); len(nodes) > 0 && !tuo.mutation.CallRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CallRecordsTable,
			Columns: []string{tenant.CallRecordsColumn},
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
	if nodes := tuo.mutation.CallRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.CallRecordsTable,
			Columns: []string{tenant.CallRecordsColumn},
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
	if tuo.mutation.SyncRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.SyncRunsTable,
			Columns: []string{tenant.SyncRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(syncrun.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.RemovedSyncRunsIDs(); len(nodes) > 0 && !tuo.mutation.SyncRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.SyncRunsTable,
			Columns: []string{tenant.SyncRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(syncrun.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.SyncRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.SyncRunsTable,
			Columns: []string{tenant.SyncRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(syncrun.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Tenant{config: tuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tuo.mutation.done = true
	return _node, nil
}
