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
	"github.com/ringledger/ringledger/ent/usageledgerentry"
)

// CallRecordCreate is the builder for creating a CallRecord entity.
type CallRecordCreate struct {
	config
	mutation *CallRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (crc *CallRecordCreate) SetTenantID(i int) *CallRecordCreate {
	crc.mutation.SetTenantID(i)
	return crc
}

// SetProviderCallID sets the "provider_call_id" field.
func (crc *CallRecordCreate) SetProviderCallID(s string) *CallRecordCreate {
	crc.mutation.SetProviderCallID(s)
	return crc
}

// SetDirection sets the "direction" field.
func (crc *CallRecordCreate) SetDirection(c callrecord.Direction) *CallRecordCreate {
	crc.mutation.SetDirection(c)
	return crc
}

// SetFromNumber sets the "from_number" field.
func (crc *CallRecordCreate) SetFromNumber(s string) *CallRecordCreate {
	crc.mutation.SetFromNumber(s)
	return crc
}

// SetToNumber sets the "to_number" field.
func (crc *CallRecordCreate) SetToNumber(s string) *CallRecordCreate {
	crc.mutation.SetToNumber(s)
	return crc
}

// SetNillableToNumber sets the "to_number" field if the given value is not nil.
func (crc *CallRecordCreate) SetNillableToNumber(s *string) *CallRecordCreate {
	if s != nil {
		crc.SetToNumber(*s)
	}
	return crc
}

// SetStatus sets the "status" field.
func (crc *CallRecordCreate) SetStatus(s string) *CallRecordCreate {
	crc.mutation.SetStatus(s)
	return crc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (crc *CallRecordCreate) SetNillableStatus(s *string) *CallRecordCreate {
	if s != nil {
		crc.SetStatus(*s)
	}
	return crc
}

// SetDuration sets the "duration" field.
func (crc *CallRecordCreate) SetDuration(i int) *CallRecordCreate {
	crc.mutation.SetDuration(i)
	return crc
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (crc *CallRecordCreate) SetNillableDuration(i *int) *CallRecordCreate {
	if i != nil {
		crc.SetDuration(*i)
	}
	return crc
}

// SetCost sets the "cost" field.
func (crc *CallRecordCreate) SetCost(f float64) *CallRecordCreate {
	crc.mutation.SetCost(f)
	return crc
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (crc *CallRecordCreate) SetNillableCost(f *float64) *CallRecordCreate {
	if f != nil {
		crc.SetCost(*f)
	}
	return crc
}

// SetDisplayCost sets the "display_cost" field.
func (crc *CallRecordCreate) SetDisplayCost(s string) *CallRecordCreate {
	crc.mutation.SetDisplayCost(s)
	return crc
}

// SetNillableDisplayCost sets the "display_cost" field if the given value is not nil.
func (crc *CallRecordCreate) SetNillableDisplayCost(s *string) *CallRecordCreate {
	if s != nil {
		crc.SetDisplayCost(*s)
	}
	return crc
}

// SetAgentID sets the "agent_id" field.
func (crc *CallRecordCreate) SetAgentID(i int) *CallRecordCreate {
	crc.mutation.SetAgentID(i)
	return crc
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (crc *CallRecordCreate) SetNillableAgentID(i *int) *CallRecordCreate {
	if i != nil {
		crc.SetAgentID(*i)
	}
	return crc
}

// SetPhoneNumberID sets the "phone_number_id" field.
func (crc *CallRecordCreate) SetPhoneNumberID(i int) *CallRecordCreate {
	crc.mutation.SetPhoneNumberID(i)
	return crc
}

// SetNillablePhoneNumberID sets the "phone_number_id" field if the given value is not nil.
func (crc *CallRecordCreate) SetNillablePhoneNumberID(i *int) *CallRecordCreate {
	if i != nil {
		crc.SetPhoneNumberID(*i)
	}
	return crc
}

// SetContactName sets the "contact_name" field.
func (crc *CallRecordCreate) SetContactName(s string) *CallRecordCreate {
	crc.mutation.SetContactName(s)
	return crc
}

// SetNillableContactName sets the "contact_name" field if the given value is not nil.
func (crc *CallRecordCreate) SetNillableContactName(s *string) *CallRecordCreate {
	if s != nil {
		crc.SetContactName(*s)
	}
	return crc
}

// SetRecordingURL sets the "recording_url" field.
func (crc *CallRecordCreate) SetRecordingURL(s string) *CallRecordCreate {
	crc.mutation.SetRecordingURL(s)
	return crc
}

// SetNillableRecordingURL sets the "recording_url" field if the given value is not nil.
func (crc *CallRecordCreate) SetNillableRecordingURL(s *string) *CallRecordCreate {
	if s != nil {
		crc.SetRecordingURL(*s)
	}
	return crc
}

// SetTranscriptID sets the "transcript_id" field.
func (crc *CallRecordCreate) SetTranscriptID(s string) *CallRecordCreate {
	crc.mutation.SetTranscriptID(s)
	return crc
}

// SetNillableTranscriptID sets the "transcript_id" field if the given value is not nil.
func (crc *CallRecordCreate) SetNillableTranscriptID(s *string) *CallRecordCreate {
	if s != nil {
		crc.SetTranscriptID(*s)
	}
	return crc
}

// SetMessageID sets the "message_id" field.
func (crc *CallRecordCreate) SetMessageID(s string) *CallRecordCreate {
	crc.mutation.SetMessageID(s)
	return crc
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (crc *CallRecordCreate) SetNillableMessageID(s *string) *CallRecordCreate {
	if s != nil {
		crc.SetMessageID(*s)
	}
	return crc
}

// SetIsTest sets the "is_test" field.
func (crc *CallRecordCreate) SetIsTest(b bool) *CallRecordCreate {
	crc.mutation.SetIsTest(b)
	return crc
}

// SetNillableIsTest sets the "is_test" field if the given value is not nil.
func (crc *CallRecordCreate) SetNillableIsTest(b *bool) *CallRecordCreate {
	if b != nil {
		crc.SetIsTest(*b)
	}
	return crc
}

// SetStartedAt sets the "started_at" field.
func (crc *CallRecordCreate) SetStartedAt(t time.Time) *CallRecordCreate {
	crc.mutation.SetStartedAt(t)
	return crc
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (crc *CallRecordCreate) SetNillableStartedAt(t *time.Time) *CallRecordCreate {
	if t != nil {
		crc.SetStartedAt(*t)
	}
	return crc
}

// SetEndedAt sets the "ended_at" field.
func (crc *CallRecordCreate) SetEndedAt(t time.Time) *CallRecordCreate {
	crc.mutation.SetEndedAt(t)
	return crc
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (crc *CallRecordCreate) SetNillableEndedAt(t *time.Time) *CallRecordCreate {
	if t != nil {
		crc.SetEndedAt(*t)
	}
	return crc
}

// SetCreatedAt sets the "created_at" field.
func (crc *CallRecordCreate) SetCreatedAt(t time.Time) *CallRecordCreate {
	crc.mutation.SetCreatedAt(t)
	return crc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (crc *CallRecordCreate) SetNillableCreatedAt(t *time.Time) *CallRecordCreate {
	if t != nil {
		crc.SetCreatedAt(*t)
	}
	return crc
}

// SetUpdatedAt sets the "updated_at" field.
func (crc *CallRecordCreate) SetUpdatedAt(t time.Time) *CallRecordCreate {
	crc.mutation.SetUpdatedAt(t)
	return crc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (crc *CallRecordCreate) SetNillableUpdatedAt(t *time.Time) *CallRecordCreate {
	if t != nil {
		crc.SetUpdatedAt(*t)
	}
	return crc
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (crc *CallRecordCreate) SetTenant(t *Tenant) *CallRecordCreate {
	return crc.SetTenantID(t.ID)
}

// SetAgent sets the "agent" edge to the Agent entity.
func (crc *CallRecordCreate) SetAgent(a *Agent) *CallRecordCreate {
	return crc.SetAgentID(a.ID)
}

// SetPhoneNumber sets the "phone_number" edge to the PhoneNumber entity.
func (crc *CallRecordCreate) SetPhoneNumber(p *PhoneNumber) *CallRecordCreate {
	return crc.SetPhoneNumberID(p.ID)
}

// SetUsageEntryID sets the "usage_entry" edge to the UsageLedgerEntry entity by ID.
func (crc *CallRecordCreate) SetUsageEntryID(id int) *CallRecordCreate {
	crc.mutation.SetUsageEntryID(id)
	return crc
}

// SetNillableUsageEntryID sets the "usage_entry" edge to the UsageLedgerEntry entity by ID if the given value is not nil.
func (crc *CallRecordCreate) SetNillableUsageEntryID(id *int) *CallRecordCreate {
	if id != nil {
		crc = crc.SetUsageEntryID(*id)
	}
	return crc
}

// SetUsageEntry sets the "usage_entry" edge to the UsageLedgerEntry entity.
func (crc *CallRecordCreate) SetUsageEntry(u *UsageLedgerEntry) *CallRecordCreate {
	return crc.SetUsageEntryID(u.ID)
}

// Mutation returns the CallRecordMutation object of the builder.
func (crc *CallRecordCreate) Mutation() *CallRecordMutation {
	return crc.mutation
}

// Save creates the CallRecord in the database.
func (crc *CallRecordCreate) Save(ctx context.Context) (*CallRecord, error) {
	crc.defaults()
	return withHooks(ctx, crc.sqlSave, crc.mutation, crc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (crc *CallRecordCreate) SaveX(ctx context.Context) *CallRecord {
	v, err := crc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (crc *CallRecordCreate) Exec(ctx context.Context) error {
	_, err := crc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (crc *CallRecordCreate) ExecX(ctx context.Context) {
	if err := crc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (crc *CallRecordCreate) defaults() {
	if _, ok := crc.mutation.Duration(); !ok {
		v := callrecord.DefaultDuration
		crc.mutation.SetDuration(v)
	}
	if _, ok := crc.mutation.Cost(); !ok {
		v := callrecord.DefaultCost
		crc.mutation.SetCost(v)
	}
	if _, ok := crc.mutation.ContactName(); !ok {
		v := callrecord.DefaultContactName
		crc.mutation.SetContactName(v)
	}
	if _, ok := crc.mutation.IsTest(); !ok {
		v := callrecord.DefaultIsTest
		crc.mutation.SetIsTest(v)
	}
	if _, ok := crc.mutation.CreatedAt(); !ok {
		v := callrecord.DefaultCreatedAt()
		crc.mutation.SetCreatedAt(v)
	}
	if _, ok := crc.mutation.UpdatedAt(); !ok {
		v := callrecord.DefaultUpdatedAt()
		crc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (crc *CallRecordCreate) check() error {
	if _, ok := crc.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "CallRecord.tenant_id"`)}
	}
	if _, ok := crc.mutation.ProviderCallID(); !ok {
		return &ValidationError{Name: "provider_call_id", err: errors.New(`ent: missing required field "CallRecord.provider_call_id"`)}
	}
	if v, ok := crc.mutation.ProviderCallID(); ok {
		if err := callrecord.ProviderCallIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_call_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.provider_call_id": %w`, err)}
		}
	}
	if _, ok := crc.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "CallRecord.direction"`)}
	}
	if v, ok := crc.mutation.Direction(); ok {
		if err := callrecord.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "CallRecord.direction": %w`, err)}
		}
	}
	if _, ok := crc.mutation.FromNumber(); !ok {
		return &ValidationError{Name: "from_number", err: errors.New(`ent: missing required field "CallRecord.from_number"`)}
	}
	if v, ok := crc.mutation.FromNumber(); ok {
		if err := callrecord.FromNumberValidator(v); err != nil {
			return &ValidationError{Name: "from_number", err: fmt.Errorf(`ent: validator failed for field "CallRecord.from_number": %w`, err)}
		}
	}
	if v, ok := crc.mutation.ToNumber(); ok {
		if err := callrecord.ToNumberValidator(v); err != nil {
			return &ValidationError{Name: "to_number", err: fmt.Errorf(`ent: validator failed for field "CallRecord.to_number": %w`, err)}
		}
	}
	if v, ok := crc.mutation.Status(); ok {
		if err := callrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CallRecord.status": %w`, err)}
		}
	}
	if _, ok := crc.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`ent: missing required field "CallRecord.duration"`)}
	}
	if v, ok := crc.mutation.Duration(); ok {
		if err := callrecord.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "CallRecord.duration": %w`, err)}
		}
	}
	if _, ok := crc.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "CallRecord.cost"`)}
	}
	if v, ok := crc.mutation.Cost(); ok {
		if err := callrecord.CostValidator(v); err != nil {
			return &ValidationError{Name: "cost", err: fmt.Errorf(`ent: validator failed for field "CallRecord.cost": %w`, err)}
		}
	}
	if v, ok := crc.mutation.DisplayCost(); ok {
		if err := callrecord.DisplayCostValidator(v); err != nil {
			return &ValidationError{Name: "display_cost", err: fmt.Errorf(`ent: validator failed for field "CallRecord.display_cost": %w`, err)}
		}
	}
	if _, ok := crc.mutation.ContactName(); !ok {
		return &ValidationError{Name: "contact_name", err: errors.New(`ent: missing required field "CallRecord.contact_name"`)}
	}
	if v, ok := crc.mutation.ContactName(); ok {
		if err := callrecord.ContactNameValidator(v); err != nil {
			return &ValidationError{Name: "contact_name", err: fmt.Errorf(`ent: validator failed for field "CallRecord.contact_name": %w`, err)}
		}
	}
	if v, ok := crc.mutation.TranscriptID(); ok {
		if err := callrecord.TranscriptIDValidator(v); err != nil {
			return &ValidationError{Name: "transcript_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.transcript_id": %w`, err)}
		}
	}
	if v, ok := crc.mutation.MessageID(); ok {
		if err := callrecord.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "CallRecord.message_id": %w`, err)}
		}
	}
	if _, ok := crc.mutation.IsTest(); !ok {
		return &ValidationError{Name: "is_test", err: errors.New(`ent: missing required field "CallRecord.is_test"`)}
	}
	if _, ok := crc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CallRecord.created_at"`)}
	}
	if _, ok := crc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CallRecord.updated_at"`)}
	}
	if len(crc.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "CallRecord.tenant"`)}
	}
	return nil
}

func (crc *CallRecordCreate) sqlSave(ctx context.Context) (*CallRecord, error) {
	if err := crc.check(); err != nil {
		return nil, err
	}
	_node, _spec := crc.createSpec()
	if err := sqlgraph.CreateNode(ctx, crc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	crc.mutation.id = &_node.ID
	crc.mutation.done = true
	return _node, nil
}

func (crc *CallRecordCreate) createSpec() (*CallRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &CallRecord{config: crc.config}
		_spec = sqlgraph.NewCreateSpec(callrecord.Table, sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = crc.conflict
	if value, ok := crc.mutation.ProviderCallID(); ok {
		_spec.SetField(callrecord.FieldProviderCallID, field.TypeString, value)
		_node.ProviderCallID = value
	}
	if value, ok := crc.mutation.Direction(); ok {
		_spec.SetField(callrecord.FieldDirection, field.TypeEnum, value)
		_node.Direction = value
	}
	if value, ok := crc.mutation.FromNumber(); ok {
		_spec.SetField(callrecord.FieldFromNumber, field.TypeString, value)
		_node.FromNumber = value
	}
	if value, ok := crc.mutation.ToNumber(); ok {
		_spec.SetField(callrecord.FieldToNumber, field.TypeString, value)
		_node.ToNumber = value
	}
	if value, ok := crc.mutation.Status(); ok {
		_spec.SetField(callrecord.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := crc.mutation.Duration(); ok {
		_spec.SetField(callrecord.FieldDuration, field.TypeInt, value)
		_node.Duration = value
	}
	if value, ok := crc.mutation.Cost(); ok {
		_spec.SetField(callrecord.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := crc.mutation.DisplayCost(); ok {
		_spec.SetField(callrecord.FieldDisplayCost, field.TypeString, value)
		_node.DisplayCost = &value
	}
	if value, ok := crc.mutation.ContactName(); ok {
		_spec.SetField(callrecord.FieldContactName, field.TypeString, value)
		_node.ContactName = value
	}
	if value, ok := crc.mutation.RecordingURL(); ok {
		_spec.SetField(callrecord.FieldRecordingURL, field.TypeString, value)
		_node.RecordingURL = &value
	}
	if value, ok := crc.mutation.TranscriptID(); ok {
		_spec.SetField(callrecord.FieldTranscriptID, field.TypeString, value)
		_node.TranscriptID = &value
	}
	if value, ok := crc.mutation.MessageID(); ok {
		_spec.SetField(callrecord.FieldMessageID, field.TypeString, value)
		_node.MessageID = &value
	}
	if value, ok := crc.mutation.IsTest(); ok {
		_spec.SetField(callrecord.FieldIsTest, field.TypeBool, value)
		_node.IsTest = value
	}
	if value, ok := crc.mutation.StartedAt(); ok {
		_spec.SetField(callrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := crc.mutation.EndedAt(); ok {
		_spec.SetField(callrecord.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := crc.mutation.CreatedAt(); ok {
		_spec.SetField(callrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := crc.mutation.UpdatedAt(); ok {
		_spec.SetField(callrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := crc.mutation.TenantIDs(); len(nodes) > 0 {
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
		_node.TenantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := crc.mutation.AgentIDs(); len(nodes) > 0 {
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
		_node.AgentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := crc.mutation.PhoneNumberIDs(); len(nodes) > 0 {
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
		_node.PhoneNumberID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := crc.mutation.UsageEntryIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CallRecord.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CallRecordUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (crc *CallRecordCreate) OnConflict(opts ...sql.ConflictOption) *CallRecordUpsertOne {
	crc.conflict = opts
	return &CallRecordUpsertOne{
		create: crc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CallRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (crc *CallRecordCreate) OnConflictColumns(columns ...string) *CallRecordUpsertOne {
	crc.conflict = append(crc.conflict, sql.ConflictColumns(columns...))
	return &CallRecordUpsertOne{
		create: crc,
	}
}

type (
	// CallRecordUpsertOne is the builder for "upsert"-ing
	//  one CallRecord node.
	CallRecordUpsertOne struct {
		create *CallRecordCreate
	}

	// CallRecordUpsert is the "OnConflict" setter.
	CallRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetTenantID sets the "tenant_id" field.
func (u *CallRecordUpsert) SetTenantID(v int) *CallRecordUpsert {
	u.Set(callrecord.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateTenantID() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldTenantID)
	return u
}

// SetProviderCallID sets the "provider_call_id" field.
func (u *CallRecordUpsert) SetProviderCallID(v string) *CallRecordUpsert {
	u.Set(callrecord.FieldProviderCallID, v)
	return u
}

// UpdateProviderCallID sets the "provider_call_id" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateProviderCallID() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldProviderCallID)
	return u
}

// SetDirection sets the "direction" field.
func (u *CallRecordUpsert) SetDirection(v callrecord.Direction) *CallRecordUpsert {
	u.Set(callrecord.FieldDirection, v)
	return u
}

// UpdateDirection sets the "direction" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateDirection() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldDirection)
	return u
}

// SetFromNumber sets the "from_number" field.
func (u *CallRecordUpsert) SetFromNumber(v string) *CallRecordUpsert {
	u.Set(callrecord.FieldFromNumber, v)
	return u
}

// UpdateFromNumber sets the "from_number" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateFromNumber() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldFromNumber)
	return u
}

// SetToNumber sets the "to_number" field.
func (u *CallRecordUpsert) SetToNumber(v string) *CallRecordUpsert {
	u.Set(callrecord.FieldToNumber, v)
	return u
}

// UpdateToNumber sets the "to_number" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateToNumber() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldToNumber)
	return u
}

// ClearToNumber clears the value of the "to_number" field.
func (u *CallRecordUpsert) ClearToNumber() *CallRecordUpsert {
	u.SetNull(callrecord.FieldToNumber)
	return u
}

// SetStatus sets the "status" field.
func (u *CallRecordUpsert) SetStatus(v string) *CallRecordUpsert {
	u.Set(callrecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateStatus() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldStatus)
	return u
}

// ClearStatus clears the value of the "status" field.
func (u *CallRecordUpsert) ClearStatus() *CallRecordUpsert {
	u.SetNull(callrecord.FieldStatus)
	return u
}

// SetDuration sets the "duration" field.
func (u *CallRecordUpsert) SetDuration(v int) *CallRecordUpsert {
	u.Set(callrecord.FieldDuration, v)
	return u
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateDuration() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldDuration)
	return u
}

// AddDuration adds v to the "duration" field.
func (u *CallRecordUpsert) AddDuration(v int) *CallRecordUpsert {
	u.Add(callrecord.FieldDuration, v)
	return u
}

// SetCost sets the "cost" field.
func (u *CallRecordUpsert) SetCost(v float64) *CallRecordUpsert {
	u.Set(callrecord.FieldCost, v)
	return u
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateCost() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldCost)
	return u
}

// AddCost adds v to the "cost" field.
func (u *CallRecordUpsert) AddCost(v float64) *CallRecordUpsert {
	u.Add(callrecord.FieldCost, v)
	return u
}

// SetDisplayCost sets the "display_cost" field.
func (u *CallRecordUpsert) SetDisplayCost(v string) *CallRecordUpsert {
	u.Set(callrecord.FieldDisplayCost, v)
	return u
}

// UpdateDisplayCost sets the "display_cost" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateDisplayCost() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldDisplayCost)
	return u
}

// ClearDisplayCost clears the value of the "display_cost" field.
func (u *CallRecordUpsert) ClearDisplayCost() *CallRecordUpsert {
	u.SetNull(callrecord.FieldDisplayCost)
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *CallRecordUpsert) SetAgentID(v int) *CallRecordUpsert {
	u.Set(callrecord.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateAgentID() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldAgentID)
	return u
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *CallRecordUpsert) ClearAgentID() *CallRecordUpsert {
	u.SetNull(callrecord.FieldAgentID)
	return u
}

// SetPhoneNumberID sets the "phone_number_id" field.
func (u *CallRecordUpsert) SetPhoneNumberID(v int) *CallRecordUpsert {
	u.Set(callrecord.FieldPhoneNumberID, v)
	return u
}

// UpdatePhoneNumberID sets the "phone_number_id" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdatePhoneNumberID() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldPhoneNumberID)
	return u
}

// ClearPhoneNumberID clears the value of the "phone_number_id" field.
func (u *CallRecordUpsert) ClearPhoneNumberID() *CallRecordUpsert {
	u.SetNull(callrecord.FieldPhoneNumberID)
	return u
}

// SetContactName sets the "contact_name" field.
func (u *CallRecordUpsert) SetContactName(v string) *CallRecordUpsert {
	u.Set(callrecord.FieldContactName, v)
	return u
}

// UpdateContactName sets the "contact_name" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateContactName() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldContactName)
	return u
}

// SetRecordingURL sets the "recording_url" field.
func (u *CallRecordUpsert) SetRecordingURL(v string) *CallRecordUpsert {
	u.Set(callrecord.FieldRecordingURL, v)
	return u
}

// UpdateRecordingURL sets the "recording_url" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateRecordingURL() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldRecordingURL)
	return u
}

// ClearRecordingURL clears the value of the "recording_url" field.
func (u *CallRecordUpsert) ClearRecordingURL() *CallRecordUpsert {
	u.SetNull(callrecord.FieldRecordingURL)
	return u
}

// SetTranscriptID sets the "transcript_id" field.
func (u *CallRecordUpsert) SetTranscriptID(v string) *CallRecordUpsert {
	u.Set(callrecord.FieldTranscriptID, v)
	return u
}

// UpdateTranscriptID sets the "transcript_id" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateTranscriptID() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldTranscriptID)
	return u
}

// ClearTranscriptID clears the value of the "transcript_id" field.
func (u *CallRecordUpsert) ClearTranscriptID() *CallRecordUpsert {
	u.SetNull(callrecord.FieldTranscriptID)
	return u
}

// SetMessageID sets the "message_id" field.
func (u *CallRecordUpsert) SetMessageID(v string) *CallRecordUpsert {
	u.Set(callrecord.FieldMessageID, v)
	return u
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateMessageID() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldMessageID)
	return u
}

// ClearMessageID clears the value of the "message_id" field.
func (u *CallRecordUpsert) ClearMessageID() *CallRecordUpsert {
	u.SetNull(callrecord.FieldMessageID)
	return u
}

// SetIsTest sets the "is_test" field.
func (u *CallRecordUpsert) SetIsTest(v bool) *CallRecordUpsert {
	u.Set(callrecord.FieldIsTest, v)
	return u
}

// UpdateIsTest sets the "is_test" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateIsTest() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldIsTest)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *CallRecordUpsert) SetStartedAt(v time.Time) *CallRecordUpsert {
	u.Set(callrecord.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateStartedAt() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *CallRecordUpsert) ClearStartedAt() *CallRecordUpsert {
	u.SetNull(callrecord.FieldStartedAt)
	return u
}

// SetEndedAt sets the "ended_at" field.
func (u *CallRecordUpsert) SetEndedAt(v time.Time) *CallRecordUpsert {
	u.Set(callrecord.FieldEndedAt, v)
	return u
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateEndedAt() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldEndedAt)
	return u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *CallRecordUpsert) ClearEndedAt() *CallRecordUpsert {
	u.SetNull(callrecord.FieldEndedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CallRecordUpsert) SetUpdatedAt(v time.Time) *CallRecordUpsert {
	u.Set(callrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CallRecordUpsert) UpdateUpdatedAt() *CallRecordUpsert {
	u.SetExcluded(callrecord.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CallRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CallRecordUpsertOne) UpdateNewValues() *CallRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(callrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CallRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CallRecordUpsertOne) Ignore() *CallRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CallRecordUpsertOne) DoNothing() *CallRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CallRecordCreate.OnConflict
// documentation for more info.
func (u *CallRecordUpsertOne) Update(set func(*CallRecordUpsert)) *CallRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CallRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *CallRecordUpsertOne) SetTenantID(v int) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateTenantID() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateTenantID()
	})
}

// SetProviderCallID sets the "provider_call_id" field.
func (u *CallRecordUpsertOne) SetProviderCallID(v string) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetProviderCallID(v)
	})
}

// UpdateProviderCallID sets the "provider_call_id" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateProviderCallID() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateProviderCallID()
	})
}

// SetDirection sets the "direction" field.
func (u *CallRecordUpsertOne) SetDirection(v callrecord.Direction) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetDirection(v)
	})
}

// UpdateDirection sets the "direction" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateDirection() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateDirection()
	})
}

// SetFromNumber sets the "from_number" field.
func (u *CallRecordUpsertOne) SetFromNumber(v string) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetFromNumber(v)
	})
}

// UpdateFromNumber sets the "from_number" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateFromNumber() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateFromNumber()
	})
}

// SetToNumber sets the "to_number" field.
func (u *CallRecordUpsertOne) SetToNumber(v string) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetToNumber(v)
	})
}

// UpdateToNumber sets the "to_number" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateToNumber() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateToNumber()
	})
}

// ClearToNumber clears the value of the "to_number" field.
func (u *CallRecordUpsertOne) ClearToNumber() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearToNumber()
	})
}

// SetStatus sets the "status" field.
func (u *CallRecordUpsertOne) SetStatus(v string) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateStatus() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateStatus()
	})
}

// ClearStatus clears the value of the "status" field.
func (u *CallRecordUpsertOne) ClearStatus() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearStatus()
	})
}

// SetDuration sets the "duration" field.
func (u *CallRecordUpsertOne) SetDuration(v int) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *CallRecordUpsertOne) AddDuration(v int) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateDuration() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateDuration()
	})
}

// SetCost sets the "cost" field.
func (u *CallRecordUpsertOne) SetCost(v float64) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetCost(v)
	})
}

// AddCost adds v to the "cost" field.
func (u *CallRecordUpsertOne) AddCost(v float64) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.AddCost(v)
	})
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateCost() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateCost()
	})
}

// SetDisplayCost sets the "display_cost" field.
func (u *CallRecordUpsertOne) SetDisplayCost(v string) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetDisplayCost(v)
	})
}

// UpdateDisplayCost sets the "display_cost" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateDisplayCost() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateDisplayCost()
	})
}

// ClearDisplayCost clears the value of the "display_cost" field.
func (u *CallRecordUpsertOne) ClearDisplayCost() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearDisplayCost()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *CallRecordUpsertOne) SetAgentID(v int) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateAgentID() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *CallRecordUpsertOne) ClearAgentID() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearAgentID()
	})
}

// SetPhoneNumberID sets the "phone_number_id" field.
func (u *CallRecordUpsertOne) SetPhoneNumberID(v int) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetPhoneNumberID(v)
	})
}

// UpdatePhoneNumberID sets the "phone_number_id" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdatePhoneNumberID() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdatePhoneNumberID()
	})
}

// ClearPhoneNumberID clears the value of the "phone_number_id" field.
func (u *CallRecordUpsertOne) ClearPhoneNumberID() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearPhoneNumberID()
	})
}

// SetContactName sets the "contact_name" field.
func (u *CallRecordUpsertOne) SetContactName(v string) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetContactName(v)
	})
}

// UpdateContactName sets the "contact_name" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateContactName() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateContactName()
	})
}

// SetRecordingURL sets the "recording_url" field.
func (u *CallRecordUpsertOne) SetRecordingURL(v string) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetRecordingURL(v)
	})
}

// UpdateRecordingURL sets the "recording_url" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateRecordingURL() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateRecordingURL()
	})
}

// ClearRecordingURL clears the value of the "recording_url" field.
func (u *CallRecordUpsertOne) ClearRecordingURL() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearRecordingURL()
	})
}

// SetTranscriptID sets the "transcript_id" field.
func (u *CallRecordUpsertOne) SetTranscriptID(v string) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetTranscriptID(v)
	})
}

// UpdateTranscriptID sets the "transcript_id" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateTranscriptID() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateTranscriptID()
	})
}

// ClearTranscriptID clears the value of the "transcript_id" field.
func (u *CallRecordUpsertOne) ClearTranscriptID() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearTranscriptID()
	})
}

// SetMessageID sets the "message_id" field.
func (u *CallRecordUpsertOne) SetMessageID(v string) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateMessageID() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateMessageID()
	})
}

// ClearMessageID clears the value of the "message_id" field.
func (u *CallRecordUpsertOne) ClearMessageID() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearMessageID()
	})
}

// SetIsTest sets the "is_test" field.
func (u *CallRecordUpsertOne) SetIsTest(v bool) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetIsTest(v)
	})
}

// UpdateIsTest sets the "is_test" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateIsTest() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateIsTest()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *CallRecordUpsertOne) SetStartedAt(v time.Time) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateStartedAt() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *CallRecordUpsertOne) ClearStartedAt() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearStartedAt()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *CallRecordUpsertOne) SetEndedAt(v time.Time) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateEndedAt() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *CallRecordUpsertOne) ClearEndedAt() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearEndedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CallRecordUpsertOne) SetUpdatedAt(v time.Time) *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CallRecordUpsertOne) UpdateUpdatedAt() *CallRecordUpsertOne {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CallRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CallRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CallRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CallRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CallRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CallRecordCreateBulk is the builder for creating many CallRecord entities in bulk.
type CallRecordCreateBulk struct {
	config
	err      error
	builders []*CallRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the CallRecord entities in the database.
func (crcb *CallRecordCreateBulk) Save(ctx context.Context) ([]*CallRecord, error) {
	if crcb.err != nil {
		return nil, crcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(crcb.builders))
	nodes := make([]*CallRecord, len(crcb.builders))
	mutators := make([]Mutator, len(crcb.builders))
	for i := range crcb.builders {
		func(i int, root context.Context) {
			builder := crcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CallRecordMutation)
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
					_, err = mutators[i+1].Mutate(root, crcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = crcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, crcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, crcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (crcb *CallRecordCreateBulk) SaveX(ctx context.Context) []*CallRecord {
	v, err := crcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (crcb *CallRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := crcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (crcb *CallRecordCreateBulk) ExecX(ctx context.Context) {
	if err := crcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CallRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CallRecordUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (crcb *CallRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *CallRecordUpsertBulk {
	crcb.conflict = opts
	return &CallRecordUpsertBulk{
		create: crcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CallRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (crcb *CallRecordCreateBulk) OnConflictColumns(columns ...string) *CallRecordUpsertBulk {
	crcb.conflict = append(crcb.conflict, sql.ConflictColumns(columns...))
	return &CallRecordUpsertBulk{
		create: crcb,
	}
}

// CallRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of CallRecord nodes.
type CallRecordUpsertBulk struct {
	create *CallRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CallRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CallRecordUpsertBulk) UpdateNewValues() *CallRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(callrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CallRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CallRecordUpsertBulk) Ignore() *CallRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CallRecordUpsertBulk) DoNothing() *CallRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CallRecordCreateBulk.OnConflict
// documentation for more info.
func (u *CallRecordUpsertBulk) Update(set func(*CallRecordUpsert)) *CallRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CallRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *CallRecordUpsertBulk) SetTenantID(v int) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateTenantID() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateTenantID()
	})
}

// SetProviderCallID sets the "provider_call_id" field.
func (u *CallRecordUpsertBulk) SetProviderCallID(v string) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetProviderCallID(v)
	})
}

// UpdateProviderCallID sets the "provider_call_id" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateProviderCallID() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateProviderCallID()
	})
}

// SetDirection sets the "direction" field.
func (u *CallRecordUpsertBulk) SetDirection(v callrecord.Direction) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetDirection(v)
	})
}

// UpdateDirection sets the "direction" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateDirection() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateDirection()
	})
}

// SetFromNumber sets the "from_number" field.
func (u *CallRecordUpsertBulk) SetFromNumber(v string) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetFromNumber(v)
	})
}

// UpdateFromNumber sets the "from_number" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateFromNumber() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateFromNumber()
	})
}

// SetToNumber sets the "to_number" field.
func (u *CallRecordUpsertBulk) SetToNumber(v string) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetToNumber(v)
	})
}

// UpdateToNumber sets the "to_number" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateToNumber() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateToNumber()
	})
}

// ClearToNumber clears the value of the "to_number" field.
func (u *CallRecordUpsertBulk) ClearToNumber() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearToNumber()
	})
}

// SetStatus sets the "status" field.
func (u *CallRecordUpsertBulk) SetStatus(v string) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateStatus() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateStatus()
	})
}

// ClearStatus clears the value of the "status" field.
func (u *CallRecordUpsertBulk) ClearStatus() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearStatus()
	})
}

// SetDuration sets the "duration" field.
func (u *CallRecordUpsertBulk) SetDuration(v int) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *CallRecordUpsertBulk) AddDuration(v int) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateDuration() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateDuration()
	})
}

// SetCost sets the "cost" field.
func (u *CallRecordUpsertBulk) SetCost(v float64) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetCost(v)
	})
}

// AddCost adds v to the "cost" field.
func (u *CallRecordUpsertBulk) AddCost(v float64) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.AddCost(v)
	})
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateCost() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateCost()
	})
}

// SetDisplayCost sets the "display_cost" field.
func (u *CallRecordUpsertBulk) SetDisplayCost(v string) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetDisplayCost(v)
	})
}

// UpdateDisplayCost sets the "display_cost" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateDisplayCost() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateDisplayCost()
	})
}

// ClearDisplayCost clears the value of the "display_cost" field.
func (u *CallRecordUpsertBulk) ClearDisplayCost() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearDisplayCost()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *CallRecordUpsertBulk) SetAgentID(v int) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateAgentID() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *CallRecordUpsertBulk) ClearAgentID() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearAgentID()
	})
}

// SetPhoneNumberID sets the "phone_number_id" field.
func (u *CallRecordUpsertBulk) SetPhoneNumberID(v int) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetPhoneNumberID(v)
	})
}

// UpdatePhoneNumberID sets the "phone_number_id" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdatePhoneNumberID() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdatePhoneNumberID()
	})
}

// ClearPhoneNumberID clears the value of the "phone_number_id" field.
func (u *CallRecordUpsertBulk) ClearPhoneNumberID() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearPhoneNumberID()
	})
}

// SetContactName sets the "contact_name" field.
func (u *CallRecordUpsertBulk) SetContactName(v string) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetContactName(v)
	})
}

// UpdateContactName sets the "contact_name" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateContactName() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateContactName()
	})
}

// SetRecordingURL sets the "recording_url" field.
func (u *CallRecordUpsertBulk) SetRecordingURL(v string) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetRecordingURL(v)
	})
}

// UpdateRecordingURL sets the "recording_url" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateRecordingURL() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateRecordingURL()
	})
}

// ClearRecordingURL clears the value of the "recording_url" field.
func (u *CallRecordUpsertBulk) ClearRecordingURL() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearRecordingURL()
	})
}

// SetTranscriptID sets the "transcript_id" field.
func (u *CallRecordUpsertBulk) SetTranscriptID(v string) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetTranscriptID(v)
	})
}

// UpdateTranscriptID sets the "transcript_id" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateTranscriptID() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateTranscriptID()
	})
}

// ClearTranscriptID clears the value of the "transcript_id" field.
func (u *CallRecordUpsertBulk) ClearTranscriptID() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearTranscriptID()
	})
}

// SetMessageID sets the "message_id" field.
func (u *CallRecordUpsertBulk) SetMessageID(v string) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateMessageID() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateMessageID()
	})
}

// ClearMessageID clears the value of the "message_id" field.
func (u *CallRecordUpsertBulk) ClearMessageID() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearMessageID()
	})
}

// SetIsTest sets the "is_test" field.
func (u *CallRecordUpsertBulk) SetIsTest(v bool) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetIsTest(v)
	})
}

// UpdateIsTest sets the "is_test" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateIsTest() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateIsTest()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *CallRecordUpsertBulk) SetStartedAt(v time.Time) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateStartedAt() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *CallRecordUpsertBulk) ClearStartedAt() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearStartedAt()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *CallRecordUpsertBulk) SetEndedAt(v time.Time) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateEndedAt() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *CallRecordUpsertBulk) ClearEndedAt() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.ClearEndedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CallRecordUpsertBulk) SetUpdatedAt(v time.Time) *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CallRecordUpsertBulk) UpdateUpdatedAt() *CallRecordUpsertBulk {
	return u.Update(func(s *CallRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CallRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CallRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CallRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CallRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
