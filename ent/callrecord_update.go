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
	"github.com/ringledger/ringledger/ent/usageledgerentry"
)

// CallRecordUpdate is the builder for updating CallRecord entities.
type CallRecordUpdate struct {
	config
	hooks    []Hook
	mutation *CallRecordMutation
}

// Where appends a list predicates to the CallRecordUpdate builder.
func (cru *CallRecordUpdate) Where(ps ...predicate.CallRecord) *CallRecordUpdate {
	cru.mutation.Where(ps...)
	return cru
}

// SetTenantID sets the "tenant_id" field.
func (cru *CallRecordUpdate) SetTenantID(i int) *CallRecordUpdate {
	cru.mutation.SetTenantID(i)
	return cru
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableTenantID(i *int) *CallRecordUpdate {
	if i != nil {
		cru.SetTenantID(*i)
	}
	return cru
}

// SetProviderCallID sets the "provider_call_id" field.
func (cru *CallRecordUpdate) SetProviderCallID(s string) *CallRecordUpdate {
	cru.mutation.SetProviderCallID(s)
	return cru
}

// SetNillableProviderCallID sets the "provider_call_id" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableProviderCallID(s *string) *CallRecordUpdate {
	if s != nil {
		cru.SetProviderCallID(*s)
	}
	return cru
}

// SetDirection sets the "direction" field.
func (cru *CallRecordUpdate) SetDirection(c callrecord.Direction) *CallRecordUpdate {
	cru.mutation.SetDirection(c)
	return cru
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableDirection(c *callrecord.Direction) *CallRecordUpdate {
	if c != nil {
		cru.SetDirection(*c)
	}
	return cru
}

// SetFromNumber sets the "from_number" field.
func (cru *CallRecordUpdate) SetFromNumber(s string) *CallRecordUpdate {
	cru.mutation.SetFromNumber(s)
	return cru
}

// SetNillableFromNumber sets the "from_number" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableFromNumber(s *string) *CallRecordUpdate {
	if s != nil {
		cru.SetFromNumber(*s)
	}
	return cru
}

// SetToNumber sets the "to_number" field.
func (cru *CallRecordUpdate) SetToNumber(s string) *CallRecordUpdate {
	cru.mutation.SetToNumber(s)
	return cru
}

// SetNillableToNumber sets the "to_number" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableToNumber(s *string) *CallRecordUpdate {
	if s != nil {
		cru.SetToNumber(*s)
	}
	return cru
}

// ClearToNumber clears the value of the "to_number" field.
func (cru *CallRecordUpdate) ClearToNumber() *CallRecordUpdate {
	cru.mutation.ClearToNumber()
	return cru
}

// SetStatus sets the "status" field.
func (cru *CallRecordUpdate) SetStatus(s string) *CallRecordUpdate {
	cru.mutation.SetStatus(s)
	return cru
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableStatus(s *string) *CallRecordUpdate {
	if s != nil {
		cru.SetStatus(*s)
	}
	return cru
}

// ClearStatus clears the value of the "status" field.
func (cru *CallRecordUpdate) ClearStatus() *CallRecordUpdate {
	cru.mutation.ClearStatus()
	return cru
}

// SetDuration sets the "duration" field.
func (cru *CallRecordUpdate) SetDuration(i int) *CallRecordUpdate {
	cru.mutation.ResetDuration()
	cru.mutation.SetDuration(i)
	return cru
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableDuration(i *int) *CallRecordUpdate {
	if i != nil {
		cru.SetDuration(*i)
	}
	return cru
}

// AddDuration adds i to the "duration" field.
func (cru *CallRecordUpdate) AddDuration(i int) *CallRecordUpdate {
	cru.mutation.AddDuration(i)
	return cru
}

// SetCost sets the "cost" field.
func (cru *CallRecordUpdate) SetCost(f float64) *CallRecordUpdate {
	cru.mutation.ResetCost()
	cru.mutation.SetCost(f)
	return cru
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableCost(f *float64) *CallRecordUpdate {
	if f != nil {
		cru.SetCost(*f)
	}
	return cru
}

// AddCost adds f to the "cost" field.
func (cru *CallRecordUpdate) AddCost(f float64) *CallRecordUpdate {
	cru.mutation.AddCost(f)
	return cru
}

// SetDisplayCost sets the "display_cost" field.
func (cru *CallRecordUpdate) SetDisplayCost(s string) *CallRecordUpdate {
	cru.mutation.SetDisplayCost(s)
	return cru
}

// SetNillableDisplayCost sets the "display_cost" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableDisplayCost(s *string) *CallRecordUpdate {
	if s != nil {
		cru.SetDisplayCost(*s)
	}
	return cru
}

// ClearDisplayCost clears the value of the "display_cost" field.
func (cru *CallRecordUpdate) ClearDisplayCost() *CallRecordUpdate {
	cru.mutation.ClearDisplayCost()
	return cru
}

// SetAgentID sets the "agent_id" field.
func (cru *CallRecordUpdate) SetAgentID(i int) *CallRecordUpdate {
	cru.mutation.SetAgentID(i)
	return cru
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableAgentID(i *int) *CallRecordUpdate {
	if i != nil {
		cru.SetAgentID(*i)
	}
	return cru
}

// ClearAgentID clears the value of the "agent_id" field.
func (cru *CallRecordUpdate) ClearAgentID() *CallRecordUpdate {
	cru.mutation.ClearAgentID()
	return cru
}

// SetPhoneNumberID sets the "phone_number_id" field.
func (cru *CallRecordUpdate) SetPhoneNumberID(i int) *CallRecordUpdate {
	cru.mutation.SetPhoneNumberID(i)
	return cru
}

// SetNillablePhoneNumberID sets the "phone_number_id" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillablePhoneNumberID(i *int) *CallRecordUpdate {
	if i != nil {
		cru.SetPhoneNumberID(*i)
	}
	return cru
}

// ClearPhoneNumberID clears the value of the "phone_number_id" field.
func (cru *CallRecordUpdate) ClearPhoneNumberID() *CallRecordUpdate {
	cru.mutation.ClearPhoneNumberID()
	return cru
}

// SetContactName sets the "contact_name" field.
func (cru *CallRecordUpdate) SetContactName(s string) *CallRecordUpdate {
	cru.mutation.SetContactName(s)
	return cru
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableContactName(s *string) *CallRecordUpdate {
	if s != nil {
		cru.SetContactName(*s)
	}
	return cru
}

// SetRecordingURL sets the "recording_url" field.
func (cru *CallRecordUpdate) SetRecordingURL(s string) *CallRecordUpdate {
	cru.mutation.SetRecordingURL(s)
	return cru
}

// SetNillableRecordingURL sets the "recording_url" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableRecordingURL(s *string) *CallRecordUpdate {
	if s != nil {
		cru.SetRecordingURL(*s)
	}
	return cru
}

// ClearRecordingURL clears the value of the "recording_url" field.
func (cru *CallRecordUpdate) ClearRecordingURL() *CallRecordUpdate {
	cru.mutation.ClearRecordingURL()
	return cru
}

// SetTranscriptID sets the "transcript_id" field.
func (cru *CallRecordUpdate) SetTranscriptID(s string) *CallRecordUpdate {
	cru.mutation.SetTranscriptID(s)
	return cru
}

// SetNillableTranscriptID sets the "transcript_id" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableTranscriptID(s *string) *CallRecordUpdate {
	if s != nil {
		cru.SetTranscriptID(*s)
	}
	return cru
}

// ClearTranscriptID clears the value of the "transcript_id" field.
func (cru *CallRecordUpdate) ClearTranscriptID() *CallRecordUpdate {
	cru.mutation.ClearTranscriptID()
	return cru
}

// SetMessageID sets the "message_id" field.
func (cru *CallRecordUpdate) SetMessageID(s string) *CallRecordUpdate {
	cru.mutation.SetMessageID(s)
	return cru
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableMessageID(s *string) *CallRecordUpdate {
	if s != nil {
		cru.SetMessageID(*s)
	}
	return cru
}

// ClearMessageID clears the value of the "message_id" field.
func (cru *CallRecordUpdate) ClearMessageID() *CallRecordUpdate {
	cru.mutation.ClearMessageID()
	return cru
}

// SetIsTest sets the "is_test" field.
func (cru *CallRecordUpdate) SetIsTest(b bool) *CallRecordUpdate {
	cru.mutation.SetIsTest(b)
	return cru
}

// SetNillableIsTest sets the "is_test" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableIsTest(b *bool) *CallRecordUpdate {
	if b != nil {
		cru.SetIsTest(*b)
	}
	return cru
}

// SetStartedAt sets the "started_at" field.
func (cru *CallRecordUpdate) SetStartedAt(t time.Time) *CallRecordUpdate {
	cru.mutation.SetStartedAt(t)
	return cru
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableStartedAt(t *time.Time) *CallRecordUpdate {
	if t != nil {
		cru.SetStartedAt(*t)
	}
	return cru
}

// ClearStartedAt clears the value of the "started_at" field.
func (cru *CallRecordUpdate) ClearStartedAt() *CallRecordUpdate {
	cru.mutation.ClearStartedAt()
	return cru
}

// SetEndedAt sets the "ended_at" field.
func (cru *CallRecordUpdate) SetEndedAt(t time.Time) *CallRecordUpdate {
	cru.mutation.SetEndedAt(t)
	return cru
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableEndedAt(t *time.Time) *CallRecordUpdate {
	if t != nil {
		cru.SetEndedAt(*t)
	}
	return cru
}

// ClearEndedAt clears the value of the "ended_at" field.
func (cru *CallRecordUpdate) ClearEndedAt() *CallRecordUpdate {
	cru.mutation.ClearEndedAt()
	return cru
}

// SetUpdatedAt sets the "updated_at" field.
func (cru *CallRecordUpdate) SetUpdatedAt(t time.Time) *CallRecordUpdate {
	cru.mutation.SetUpdatedAt(t)
	return cru
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (cru *CallRecordUpdate) SetTenant(t *Tenant) *CallRecordUpdate {
	return cru.SetTenantID(t.ID)
}

// SetAgent sets the "agent" edge to the Agent entity.
func (cru *CallRecordUpdate) SetAgent(a *Agent) *CallRecordUpdate {
	return cru.SetAgentID(a.ID)
}

// SetPhoneNumber sets the "phone_number" edge to the PhoneNumber entity.
func (cru *CallRecordUpdate) SetPhoneNumber(p *PhoneNumber) *CallRecordUpdate {
	return cru.SetPhoneNumberID(p.ID)
}

// SetUsageEntryID sets the "usage_entry" edge to the UsageLedgerEntry entity by ID.
func (cru *CallRecordUpdate) SetUsageEntryID(id int) *CallRecordUpdate {
	cru.mutation.SetUsageEntryID(id)
	return cru
}

// SetNillableUsageEntryID sets the "usage_entry" edge to the UsageLedgerEntry entity by ID if the given value is not nil.
func (cru *CallRecordUpdate) SetNillableUsageEntryID(id *int) *CallRecordUpdate {
	if id != nil {
		cru = cru.SetUsageEntryID(*id)
	}
	return cru
}

// SetUsageEntry sets the "usage_entry" edge to the UsageLedgerEntry entity.
func (cru *CallRecordUpdate) SetUsageEntry(u *UsageLedgerEntry) *CallRecordUpdate {
	return cru.SetUsageEntryID(u.ID)
}

// Mutation returns the CallRecordMutation object of the builder.
func (cru *CallRecordUpdate) Mutation() *CallRecordMutation {
	return cru.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (cru *CallRecordUpdate) ClearTenant() *CallRecordUpdate {
	cru.mutation.ClearTenant()
	return cru
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (cru *CallRecordUpdate) ClearAgent() *CallRecordUpdate {
	cru.mutation.ClearAgent()
	return cru
}

// ClearPhoneNumber clears the "phone_number" edge to the PhoneNumber entity.
func (cru *CallRecordUpdate) ClearPhoneNumber() *CallRecordUpdate {
	cru.mutation.ClearPhoneNumber()
	return cru
}

// ClearUsageEntry clears the "usage_entry" edge to the UsageLedgerEntry entity.
func (cru *CallRecordUpdate) ClearUsageEntry() *CallRecordUpdate {
	cru.mutation.ClearUsageEntry()
	return cru
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cru *CallRecordUpdate) Save(ctx context.Context) (int, error) {
	cru.defaults()
	return withHooks(ctx, cru.sqlSave, cru.mutation, cru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cru *CallRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := cru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cru *CallRecordUpdate) Exec(ctx context.Context) error {
	_, err := cru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cru *CallRecordUpdate) ExecX(ctx context.Context) {
	if err := cru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cru *CallRecordUpdate) defaults() {
	if _, ok := cru.mutation.UpdatedAt(); !ok {
		v := callrecord.UpdateDefaultUpdatedAt()
		cru.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cru *CallRecordUpdate) check() error {
	if v, ok := cru.mutation.ProviderCallID(); ok {
		if err := callrecord.ProviderCallIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_call_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.provider_call_id": %w`, err)}
		}
	}
	if v, ok := cru.mutation.Direction(); ok {
		if err := callrecord.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "CallRecord.direction": %w`, err)}
		}
	}
	if v, ok := cru.mutation.FromNumber(); ok {
		if err := callrecord.FromNumberValidator(v); err != nil {
			return &ValidationError{Name: "from_number", err: fmt.Errorf(`ent: validator failed for field "CallRecord.from_number": %w`, err)}
		}
	}
	if v, ok := cru.mutation.ToNumber(); ok {
		if err := callrecord.ToNumberValidator(v); err != nil {
			return &ValidationError{Name: "to_number", err: fmt.Errorf(`ent: validator failed for field "CallRecord.to_number": %w`, err)}
		}
	}
	if v, ok := cru.mutation.Status(); ok {
		if err := callrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CallRecord.status": %w`, err)}
		}
	}
	if v, ok := cru.mutation.Duration(); ok {
		if err := callrecord.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "CallRecord.duration": %w`, err)}
		}
	}
	if v, ok := cru.mutation.Cost(); ok {
		if err := callrecord.CostValidator(v); err != nil {
			return &ValidationError{Name: "cost", err: fmt.Errorf(`ent: validator failed for field "CallRecord.cost": %w`, err)}
		}
	}
	if v, ok := cru.mutation.DisplayCost(); ok {
		if err := callrecord.DisplayCostValidator(v); err != nil {
			return &ValidationError{Name: "display_cost", err: fmt.Errorf(`ent: validator failed for field "CallRecord.display_cost": %w`, err)}
		}
	}
	if v, ok := cru.mutation.ContactName(); ok {
		if err := callrecord.ContactNameValidator(v); err != nil {
			return &ValidationError{Name: "contact_name", err: fmt.Errorf(`ent: validator failed for field "CallRecord.contact_name": %w`, err)}
		}
	}
	if v, ok := cru.mutation.TranscriptID(); ok {
		if err := callrecord.TranscriptIDValidator(v); err != nil {
			return &ValidationError{Name: "transcript_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.transcript_id": %w`, err)}
		}
	}
	if v, ok := cru.mutation.MessageID(); ok {
		if err := callrecord.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.message_id": %w`, err)}
		}
	}
	if cru.mutation.TenantCleared() && len(cru.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CallRecord.tenant"`)
	}
	return nil
}

func (cru *CallRecordUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(callrecord.Table, callrecord.Columns, sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeInt))
	if ps := cru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cru.mutation.ProviderCallID(); ok {
		_spec.SetField(callrecord.FieldProviderCallID, field.TypeString, value)
	}
	if value, ok := cru.mutation.Direction(); ok {
		_spec.SetField(callrecord.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := cru.mutation.FromNumber(); ok {
		_spec.SetField(callrecord.FieldFromNumber, field.TypeString, value)
	}
	if value, ok := cru.mutation.ToNumber(); ok {
		_spec.SetField(callrecord.FieldToNumber, field.TypeString, value)
	}
	if cru.mutation.ToNumberCleared() {
		_spec.ClearField(callrecord.FieldToNumber, field.TypeString)
	}
	if value, ok := cru.mutation.Status(); ok {
		_spec.SetField(callrecord.FieldStatus, field.TypeString, value)
	}
	if cru.mutation.StatusCleared() {
		_spec.ClearField(callrecord.FieldStatus, field.TypeString)
	}
	if value, ok := cru.mutation.Duration(); ok {
		_spec.SetField(callrecord.FieldDuration, field.TypeInt, value)
	}
	if value, ok := cru.mutation.AddedDuration(); ok {
		_spec.AddField(callrecord.FieldDuration, field.TypeInt, value)
	}
	if value, ok := cru.mutation.Cost(); ok {
		_spec.SetField(callrecord.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := cru.mutation.AddedCost(); ok {
		_spec.AddField(callrecord.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := cru.mutation.DisplayCost(); ok {
		_spec.SetField(callrecord.FieldDisplayCost, field.TypeString, value)
	}
	if cru.mutation.DisplayCostCleared() {
		_spec.ClearField(callrecord.FieldDisplayCost, field.TypeString)
	}
	if value, ok := cru.mutation.ContactName(); ok {
		_spec.SetField(callrecord.FieldContactName, field.TypeString, value)
	}
	if value, ok := cru.mutation.RecordingURL(); ok {
		_spec.SetField(callrecord.FieldRecordingURL, field.TypeString, value)
	}
	if cru.mutation.RecordingURLCleared() {
		_spec.ClearField(callrecord.FieldRecordingURL, field.TypeString)
	}
	if value, ok := cru.mutation.TranscriptID(); ok {
		_spec.SetField(callrecord.FieldTranscriptID, field.TypeString, value)
	}
	if cru.mutation.TranscriptIDCleared() {
		_spec.ClearField(callrecord.FieldTranscriptID, field.TypeString)
	}
	if value, ok := cru.mutation.MessageID(); ok {
		_spec.SetField(callrecord.FieldMessageID, field.TypeString, value)
	}
	if cru.mutation.MessageIDCleared() {
		_spec.ClearField(callrecord.FieldMessageID, field.TypeString)
	}
	if value, ok := cru.mutation.IsTest(); ok {
		_spec.SetField(callrecord.FieldIsTest, field.TypeBool, value)
	}
	if value, ok := cru.mutation.StartedAt(); ok {
		_spec.SetField(callrecord.FieldStartedAt, field.TypeTime, value)
	}
	if cru.mutation.StartedAtCleared() {
		_spec.ClearField(callrecord.FieldStartedAt, field.TypeTime)
	}
	if value, ok := cru.mutation.EndedAt(); ok {
		_spec.SetField(callrecord.FieldEndedAt, field.TypeTime, value)
	}
	if cru.mutation.EndedAtCleared() {
		_spec.ClearField(callrecord.FieldEndedAt, field.TypeTime)
	}
	if value, ok := cru.mutation.UpdatedAt(); ok {
		_spec.SetField(callrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if cru.mutation.TenantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   callrecord.TenantTable,
			Columns: []string{callrecord.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cru.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   callrecord.TenantTable,
			Columns: []string{callrecord.TenantColumn},
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
	if cru.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   callrecord.AgentTable,
			Columns: []string{callrecord.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cru.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   callrecord.AgentTable,
			Columns: []string{callrecord.AgentColumn},
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
	if cru.mutation.PhoneNumberCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   callrecord.PhoneNumberTable,
			Columns: []string{callrecord.PhoneNumberColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phonenumber.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cru.mutation.PhoneNumberIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   callrecord.PhoneNumberTable,
			Columns: []string{callrecord.PhoneNumberColumn},
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
	if cru.mutation.UsageEntryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   callrecord.UsageEntryTable,
			Columns: []string{callrecord.UsageEntryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageledgerentry.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cru.mutation.UsageEntryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   callrecord.UsageEntryTable,
			Columns: []string{callrecord.UsageEntryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageledgerentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{callrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cru.mutation.done = true
	return n, nil
}

// CallRecordUpdateOne is the builder for updating a single CallRecord entity.
type CallRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CallRecordMutation
}

// SetTenantID sets the "tenant_id" field.
func (cruo *CallRecordUpdateOne) SetTenantID(i int) *CallRecordUpdateOne {
	cruo.mutation.SetTenantID(i)
	return cruo
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableTenantID(i *int) *CallRecordUpdateOne {
	if i != nil {
		cruo.SetTenantID(*i)
	}
	return cruo
}

// SetProviderCallID sets the "provider_call_id" field.
func (cruo *CallRecordUpdateOne) SetProviderCallID(s string) *CallRecordUpdateOne {
	cruo.mutation.SetProviderCallID(s)
	return cruo
}

// SetNillableProviderCallID sets the "provider_call_id" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableProviderCallID(s *string) *CallRecordUpdateOne {
	if s != nil {
		cruo.SetProviderCallID(*s)
	}
	return cruo
}

// SetDirection sets the "direction" field.
func (cruo *CallRecordUpdateOne) SetDirection(c callrecord.Direction) *CallRecordUpdateOne {
	cruo.mutation.SetDirection(c)
	return cruo
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableDirection(c *callrecord.Direction) *CallRecordUpdateOne {
	if c != nil {
		cruo.SetDirection(*c)
	}
	return cruo
}

// SetFromNumber sets the "from_number" field.
func (cruo *CallRecordUpdateOne) SetFromNumber(s string) *CallRecordUpdateOne {
	cruo.mutation.SetFromNumber(s)
	return cruo
}

// SetNillableFromNumber sets the "from_number" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableFromNumber(s *string) *CallRecordUpdateOne {
	if s != nil {
		cruo.SetFromNumber(*s)
	}
	return cruo
}

// SetToNumber sets the "to_number" field.
func (cruo *CallRecordUpdateOne) SetToNumber(s string) *CallRecordUpdateOne {
	cruo.mutation.SetToNumber(s)
	return cruo
}

// SetNillableToNumber sets the "to_number" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableToNumber(s *string) *CallRecordUpdateOne {
	if s != nil {
		cruo.SetToNumber(*s)
	}
	return cruo
}

// ClearToNumber clears the value of the "to_number" field.
func (cruo *CallRecordUpdateOne) ClearToNumber() *CallRecordUpdateOne {
	cruo.mutation.ClearToNumber()
	return cruo
}

// SetStatus sets the "status" field.
func (cruo *CallRecordUpdateOne) SetStatus(s string) *CallRecordUpdateOne {
	cruo.mutation.SetStatus(s)
	return cruo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableStatus(s *string) *CallRecordUpdateOne {
	if s != nil {
		cruo.SetStatus(*s)
	}
	return cruo
}

// ClearStatus clears the value of the "status" field.
func (cruo *CallRecordUpdateOne) ClearStatus() *CallRecordUpdateOne {
	cruo.mutation.ClearStatus()
	return cruo
}

// SetDuration sets the "duration" field.
func (cruo *CallRecordUpdateOne) SetDuration(i int) *CallRecordUpdateOne {
	cruo.mutation.ResetDuration()
	cruo.mutation.SetDuration(i)
	return cruo
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableDuration(i *int) *CallRecordUpdateOne {
	if i != nil {
		cruo.SetDuration(*i)
	}
	return cruo
}

// AddDuration adds i to the "duration" field.
func (cruo *CallRecordUpdateOne) AddDuration(i int) *CallRecordUpdateOne {
	cruo.mutation.AddDuration(i)
	return cruo
}

// SetCost sets the "cost" field.
func (cruo *CallRecordUpdateOne) SetCost(f float64) *CallRecordUpdateOne {
	cruo.mutation.ResetCost()
	cruo.mutation.SetCost(f)
	return cruo
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableCost(f *float64) *CallRecordUpdateOne {
	if f != nil {
		cruo.SetCost(*f)
	}
	return cruo
}

// AddCost adds f to the "cost" field.
func (cruo *CallRecordUpdateOne) AddCost(f float64) *CallRecordUpdateOne {
	cruo.mutation.AddCost(f)
	return cruo
}

// SetDisplayCost sets the "display_cost" field.
func (cruo *CallRecordUpdateOne) SetDisplayCost(s string) *CallRecordUpdateOne {
	cruo.mutation.SetDisplayCost(s)
	return cruo
}

// SetNillableDisplayCost sets the "display_cost" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableDisplayCost(s *string) *CallRecordUpdateOne {
	if s != nil {
		cruo.SetDisplayCost(*s)
	}
	return cruo
}

// ClearDisplayCost clears the value of the "display_cost" field.
func (cruo *CallRecordUpdateOne) ClearDisplayCost() *CallRecordUpdateOne {
	cruo.mutation.ClearDisplayCost()
	return cruo
}

// SetAgentID sets the "agent_id" field.
func (cruo *CallRecordUpdateOne) SetAgentID(i int) *CallRecordUpdateOne {
	cruo.mutation.SetAgentID(i)
	return cruo
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableAgentID(i *int) *CallRecordUpdateOne {
	if i != nil {
		cruo.SetAgentID(*i)
	}
	return cruo
}

// ClearAgentID clears the value of the "agent_id" field.
func (cruo *CallRecordUpdateOne) ClearAgentID() *CallRecordUpdateOne {
	cruo.mutation.ClearAgentID()
	return cruo
}

// SetPhoneNumberID sets the "phone_number_id" field.
func (cruo *CallRecordUpdateOne) SetPhoneNumberID(i int) *CallRecordUpdateOne {
	cruo.mutation.SetPhoneNumberID(i)
	return cruo
}

// SetNillablePhoneNumberID sets the "phone_number_id" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillablePhoneNumberID(i *int) *CallRecordUpdateOne {
	if i != nil {
		cruo.SetPhoneNumberID(*i)
	}
	return cruo
}

// ClearPhoneNumberID clears the value of the "phone_number_id" field.
func (cruo *CallRecordUpdateOne) ClearPhoneNumberID() *CallRecordUpdateOne {
	cruo.mutation.ClearPhoneNumberID()
	return cruo
}

// SetContactName sets the "contact_name" field.
func (cruo *CallRecordUpdateOne) SetContactName(s string) *CallRecordUpdateOne {
	cruo.mutation.SetContactName(s)
	return cruo
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableContactName(s *string) *CallRecordUpdateOne {
	if s != nil {
		cruo.SetContactName(*s)
	}
	return cruo
}

// SetRecordingURL sets the "recording_url" field.
func (cruo *CallRecordUpdateOne) SetRecordingURL(s string) *CallRecordUpdateOne {
	cruo.mutation.SetRecordingURL(s)
	return cruo
}

// SetNillableRecordingURL sets the "recording_url" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableRecordingURL(s *string) *CallRecordUpdateOne {
	if s != nil {
		cruo.SetRecordingURL(*s)
	}
	return cruo
}

// ClearRecordingURL clears the value of the "recording_url" field.
func (cruo *CallRecordUpdateOne) ClearRecordingURL() *CallRecordUpdateOne {
	cruo.mutation.ClearRecordingURL()
	return cruo
}

// SetTranscriptID sets the "transcript_id" field.
func (cruo *CallRecordUpdateOne) SetTranscriptID(s string) *CallRecordUpdateOne {
	cruo.mutation.SetTranscriptID(s)
	return cruo
}

// SetNillableTranscriptID sets the "transcript_id" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableTranscriptID(s *string) *CallRecordUpdateOne {
	if s != nil {
		cruo.SetTranscriptID(*s)
	}
	return cruo
}

// ClearTranscriptID clears the value of the "transcript_id" field.
func (cruo *CallRecordUpdateOne) ClearTranscriptID() *CallRecordUpdateOne {
	cruo.mutation.ClearTranscriptID()
	return cruo
}

// SetMessageID sets the "message_id" field.
func (cruo *CallRecordUpdateOne) SetMessageID(s string) *CallRecordUpdateOne {
	cruo.mutation.SetMessageID(s)
	return cruo
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableMessageID(s *string) *CallRecordUpdateOne {
	if s != nil {
		cruo.SetMessageID(*s)
	}
	return cruo
}

// ClearMessageID clears the value of the "message_id" field.
func (cruo *CallRecordUpdateOne) ClearMessageID() *CallRecordUpdateOne {
	cruo.mutation.ClearMessageID()
	return cruo
}

// SetIsTest sets the "is_test" field.
func (cruo *CallRecordUpdateOne) SetIsTest(b bool) *CallRecordUpdateOne {
	cruo.mutation.SetIsTest(b)
	return cruo
}

// SetNillableIsTest sets the "is_test" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableIsTest(b *bool) *CallRecordUpdateOne {
	if b != nil {
		cruo.SetIsTest(*b)
	}
	return cruo
}

// SetStartedAt sets the "started_at" field.
func (cruo *CallRecordUpdateOne) SetStartedAt(t time.Time) *CallRecordUpdateOne {
	cruo.mutation.SetStartedAt(t)
	return cruo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableStartedAt(t *time.Time) *CallRecordUpdateOne {
	if t != nil {
		cruo.SetStartedAt(*t)
	}
	return cruo
}

// ClearStartedAt clears the value of the "started_at" field.
func (cruo *CallRecordUpdateOne) ClearStartedAt() *CallRecordUpdateOne {
	cruo.mutation.ClearStartedAt()
	return cruo
}

// SetEndedAt sets the "ended_at" field.
func (cruo *CallRecordUpdateOne) SetEndedAt(t time.Time) *CallRecordUpdateOne {
	cruo.mutation.SetEndedAt(t)
	return cruo
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableEndedAt(t *time.Time) *CallRecordUpdateOne {
	if t != nil {
		cruo.SetEndedAt(*t)
	}
	return cruo
}

// ClearEndedAt clears the value of the "ended_at" field.
func (cruo *CallRecordUpdateOne) ClearEndedAt() *CallRecordUpdateOne {
	cruo.mutation.ClearEndedAt()
	return cruo
}

// SetUpdatedAt sets the "updated_at" field.
func (cruo *CallRecordUpdateOne) SetUpdatedAt(t time.Time) *CallRecordUpdateOne {
	cruo.mutation.SetUpdatedAt(t)
	return cruo
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (cruo *CallRecordUpdateOne) SetTenant(t *Tenant) *CallRecordUpdateOne {
	return cruo.SetTenantID(t.ID)
}

// SetAgent sets the "agent" edge to the Agent entity.
func (cruo *CallRecordUpdateOne) SetAgent(a *Agent) *CallRecordUpdateOne {
	return cruo.SetAgentID(a.ID)
}

// SetPhoneNumber sets the "phone_number" edge to the PhoneNumber entity.
func (cruo *CallRecordUpdateOne) SetPhoneNumber(p *PhoneNumber) *CallRecordUpdateOne {
	return cruo.SetPhoneNumberID(p.ID)
}

// SetUsageEntryID sets the "usage_entry" edge to the UsageLedgerEntry entity by ID.
func (cruo *CallRecordUpdateOne) SetUsageEntryID(id int) *CallRecordUpdateOne {
	cruo.mutation.SetUsageEntryID(id)
	return cruo
}

// SetNillableUsageEntryID sets the "usage_entry" edge to the UsageLedgerEntry entity by ID if the given value is not nil.
func (cruo *CallRecordUpdateOne) SetNillableUsageEntryID(id *int) *CallRecordUpdateOne {
	if id != nil {
		cruo = cruo.SetUsageEntryID(*id)
	}
	return cruo
}

// SetUsageEntry sets the "usage_entry" edge to the UsageLedgerEntry entity.
func (cruo *CallRecordUpdateOne) SetUsageEntry(u *UsageLedgerEntry) *CallRecordUpdateOne {
	return cruo.SetUsageEntryID(u.ID)
}

// Mutation returns the CallRecordMutation object of the builder.
func (cruo *CallRecordUpdateOne) Mutation() *CallRecordMutation {
	return cruo.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (cruo *CallRecordUpdateOne) ClearTenant() *CallRecordUpdateOne {
	cruo.mutation.ClearTenant()
	return cruo
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (cruo *CallRecordUpdateOne) ClearAgent() *CallRecordUpdateOne {
	cruo.mutation.ClearAgent()
	return cruo
}

// ClearPhoneNumber clears the "phone_number" edge to the PhoneNumber entity.
func (cruo *CallRecordUpdateOne) ClearPhoneNumber() *CallRecordUpdateOne {
	cruo.mutation.ClearPhoneNumber()
	return cruo
}

// ClearUsageEntry clears the "usage_entry" edge to the UsageLedgerEntry entity.
func (cruo *CallRecordUpdateOne) ClearUsageEntry() *CallRecordUpdateOne {
	cruo.mutation.ClearUsageEntry()
	return cruo
}

// Where appends a list predicates to the CallRecordUpdate builder.
func (cruo *CallRecordUpdateOne) Where(ps ...predicate.CallRecord) *CallRecordUpdateOne {
	cruo.mutation.Where(ps...)
	return cruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cruo *CallRecordUpdateOne) Select(field string, fields ...string) *CallRecordUpdateOne {
	cruo.fields = append([]string{field}, fields...)
	return cruo
}

// Save executes the query and returns the updated CallRecord entity.
func (cruo *CallRecordUpdateOne) Save(ctx context.Context) (*CallRecord, error) {
	cruo.defaults()
	return withHooks(ctx, cruo.sqlSave, cruo.mutation, cruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cruo *CallRecordUpdateOne) SaveX(ctx context.Context) *CallRecord {
	node, err := cruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cruo *CallRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := cruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cruo *CallRecordUpdateOne) ExecX(ctx context.Context) {
	if err := cruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cruo *CallRecordUpdateOne) defaults() {
	if _, ok := cruo.mutation.UpdatedAt(); !ok {
		v := callrecord.UpdateDefaultUpdatedAt()
		cruo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cruo *CallRecordUpdateOne) check() error {
	if v, ok := cruo.mutation.ProviderCallID(); ok {
		if err := callrecord.ProviderCallIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_call_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.provider_call_id": %w`, err)}
		}
	}
	if v, ok := cruo.mutation.Direction(); ok {
		if err := callrecord.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "CallRecord.direction": %w`, err)}
		}
	}
	if v, ok := cruo.mutation.FromNumber(); ok {
		if err := callrecord.FromNumberValidator(v); err != nil {
			return &ValidationError{Name: "from_number", err: fmt.Errorf(`ent: validator failed for field "CallRecord.from_number": %w`, err)}
		}
	}
	if v, ok := cruo.mutation.ToNumber(); ok {
		if err := callrecord.ToNumberValidator(v); err != nil {
			return &ValidationError{Name: "to_number", err: fmt.Errorf(`ent: validator failed for field "CallRecord.to_number": %w`, err)}
		}
	}
	if v, ok := cruo.mutation.Status(); ok {
		if err := callrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CallRecord.status": %w`, err)}
		}
	}
	if v, ok := cruo.mutation.Duration(); ok {
		if err := callrecord.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "CallRecord.duration": %w`, err)}
		}
	}
	if v, ok := cruo.mutation.Cost(); ok {
		if err := callrecord.CostValidator(v); err != nil {
			return &ValidationError{Name: "cost", err: fmt.Errorf(`ent: validator failed for field "CallRecord.cost": %w`, err)}
		}
	}
	if v, ok := cruo.mutation.DisplayCost(); ok {
		if err := callrecord.DisplayCostValidator(v); err != nil {
			return &ValidationError{Name: "display_cost", err: fmt.Errorf(`ent: validator failed for field "CallRecord.display_cost": %w`, err)}
		}
	}
	if v, ok := cruo.mutation.ContactName(); ok {
		if err := callrecord.ContactNameValidator(v); err != nil {
			return &ValidationError{Name: "contact_name", err: fmt.Errorf(`ent: validator failed for field "CallRecord.contact_name": %w`, err)}
		}
	}
	if v, ok := cruo.mutation.TranscriptID(); ok {
		if err := callrecord.TranscriptIDValidator(v); err != nil {
			return &ValidationError{Name: "transcript_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.transcript_id": %w`, err)}
		}
	}
	if v, ok := cruo.mutation.MessageID(); ok {
		if err := callrecord.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.message_id": %w`, err)}
		}
	}
	if cruo.mutation.TenantCleared() && len(cruo.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CallRecord.tenant"`)
	}
	return nil
}

func (cruo *CallRecordUpdateOne) sqlSave(ctx context.Context) (_node *CallRecord, err error) {
	if err := cruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(callrecord.Table, callrecord.Columns, sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeInt))
	id, ok := cruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CallRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, callrecord.FieldID)
		for _, f := range fields {
			if !callrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != callrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cruo.mutation.ProviderCallID(); ok {
		_spec.SetField(callrecord.FieldProviderCallID, field.TypeString, value)
	}
	if value, ok := cruo.mutation.Direction(); ok {
		_spec.SetField(callrecord.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := cruo.mutation.FromNumber(); ok {
		_spec.SetField(callrecord.FieldFromNumber, field.TypeString, value)
	}
	if value, ok := cruo.mutation.ToNumber(); ok {
		_spec.SetField(callrecord.FieldToNumber, field.TypeString, value)
	}
	if cruo.mutation.ToNumberCleared() {
		_spec.ClearField(callrecord.FieldToNumber, field.TypeString)
	}
	if value, ok := cruo.mutation.Status(); ok {
		_spec.SetField(callrecord.FieldStatus, field.TypeString, value)
	}
	if cruo.mutation.StatusCleared() {
		_spec.ClearField(callrecord.FieldStatus, field.TypeString)
	}
	if value, ok := cruo.mutation.Duration(); ok {
		_spec.SetField(callrecord.FieldDuration, field.TypeInt, value)
	}
	if value, ok := cruo.mutation.AddedDuration(); ok {
		_spec.AddField(callrecord.FieldDuration, field.TypeInt, value)
	}
	if value, ok := cruo.mutation.Cost(); ok {
		_spec.SetField(callrecord.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := cruo.mutation.AddedCost(); ok {
		_spec.AddField(callrecord.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := cruo.mutation.DisplayCost(); ok {
		_spec.SetField(callrecord.FieldDisplayCost, field.TypeString, value)
	}
	if cruo.mutation.DisplayCostCleared() {
		_spec.ClearField(callrecord.FieldDisplayCost, field.TypeString)
	}
	if value, ok := cruo.mutation.ContactName(); ok {
		_spec.SetField(callrecord.FieldContactName, field.TypeString, value)
	}
	if value, ok := cruo.mutation.RecordingURL(); ok {
		_spec.SetField(callrecord.FieldRecordingURL, field.TypeString, value)
	}
	if cruo.mutation.RecordingURLCleared() {
		_spec.ClearField(callrecord.FieldRecordingURL, field.TypeString)
	}
	if value, ok := cruo.mutation.TranscriptID(); ok {
		_spec.SetField(callrecord.FieldTranscriptID, field.TypeString, value)
	}
	if cruo.mutation.TranscriptIDCleared() {
		_spec.ClearField(callrecord.FieldTranscriptID, field.TypeString)
	}
	if value, ok := cruo.mutation.MessageID(); ok {
		_spec.SetField(callrecord.FieldMessageID, field.TypeString, value)
	}
	if cruo.mutation.MessageIDCleared() {
		_spec.ClearField(callrecord.FieldMessageID, field.TypeString)
	}
	if value, ok := cruo.mutation.IsTest(); ok {
		_spec.SetField(callrecord.FieldIsTest, field.TypeBool, value)
	}
	if value, ok := cruo.mutation.StartedAt(); ok {
		_spec.SetField(callrecord.FieldStartedAt, field.TypeTime, value)
	}
	if cruo.mutation.StartedAtCleared() {
		_spec.ClearField(callrecord.FieldStartedAt, field.TypeTime)
	}
	if value, ok := cruo.mutation.EndedAt(); ok {
		_spec.SetField(callrecord.FieldEndedAt, field.TypeTime, value)
	}
	if cruo.mutation.EndedAtCleared() {
		_spec.ClearField(callrecord.FieldEndedAt, field.TypeTime)
	}
	if value, ok := cruo.mutation.UpdatedAt(); ok {
		_spec.SetField(callrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if cruo.mutation.TenantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   callrecord.TenantTable,
			Columns: []string{callrecord.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cruo.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   callrecord.TenantTable,
			Columns: []string{callrecord.TenantColumn},
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
	if cruo.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   callrecord.AgentTable,
			Columns: []string{callrecord.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cruo.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   callrecord.AgentTable,
			Columns: []string{callrecord.AgentColumn},
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
	if cruo.mutation.PhoneNumberCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   callrecord.PhoneNumberTable,
			Columns: []string{callrecord.PhoneNumberColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phonenumber.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cruo.mutation.PhoneNumberIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   callrecord.PhoneNumberTable,
			Columns: []string{callrecord.PhoneNumberColumn},
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
	if cruo.mutation.UsageEntryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   callrecord.UsageEntryTable,
			Columns: []string{callrecord.UsageEntryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageledgerentry.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cruo.mutation.UsageEntryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   callrecord.UsageEntryTable,
			Columns: []string{callrecord.UsageEntryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageledgerentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CallRecord{config: cruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{callrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cruo.mutation.done = true
	return _node, nil
}
