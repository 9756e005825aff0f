// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ringledger/ringledger/ent/agent"
	"github.com/ringledger/ringledger/ent/billingaccount"
	"github.com/ringledger/ringledger/ent/callrecord"
	"github.com/ringledger/ringledger/ent/crmconnection"
	"github.com/ringledger/ringledger/ent/deletedcall"
	"github.com/ringledger/ringledger/ent/phonenumber"
	"github.com/ringledger/ringledger/ent/predicate"
	"github.com/ringledger/ringledger/ent/syncrun"
	"github.com/ringledger/ringledger/ent/tenant"
	"github.com/ringledger/ringledger/ent/usageledgerentry"
	"github.com/ringledger/ringledger/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent            = "Agent"
	TypeBillingAccount   = "BillingAccount"
	TypeCRMConnection    = "CRMConnection"
	TypeCallRecord       = "CallRecord"
	TypeDeletedCall      = "DeletedCall"
	TypePhoneNumber      = "PhoneNumber"
	TypeSyncRun          = "SyncRun"
	TypeTenant           = "Tenant"
	TypeUsageLedgerEntry = "UsageLedgerEntry"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	provider_user_id     *string
	name                 *string
	email                *string
	active               *bool
	verified             *bool
	last_activity_at     *time.Time
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	tenant               *int
	clearedtenant        bool
	phone_numbers        map[int]struct{}
	removedphone_numbers map[int]struct{}
	clearedphone_numbers bool
	call_records         map[int]struct{}
	removedcall_records  map[int]struct{}
	clearedcall_records  bool
	done                 bool
	oldValue             func(context.Context) (*Agent, error)
	predicates           []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id int) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *AgentMutation) SetTenantID(i int) {
	m.tenant = &i
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AgentMutation) TenantID() (r int, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTenantID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AgentMutation) ResetTenantID() {
	m.tenant = nil
}

// SetProviderUserID sets the "provider_user_id" field.
func (m *AgentMutation) SetProviderUserID(s string) {
	m.provider_user_id = &s
}

// ProviderUserID returns the value of the "provider_user_id" field in the mutation.
func (m *AgentMutation) ProviderUserID() (r string, exists bool) {
	v := m.provider_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderUserID returns the old "provider_user_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldProviderUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderUserID: %w", err)
	}
	return oldValue.ProviderUserID, nil
}

// ResetProviderUserID resets all changes to the "provider_user_id" field.
func (m *AgentMutation) ResetProviderUserID() {
	m.provider_user_id = nil
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *AgentMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *AgentMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *AgentMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[agent.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *AgentMutation) EmailCleared() bool {
	_, ok := m.clearedFields[agent.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *AgentMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, agent.FieldEmail)
}

// SetActive sets the "active" field.
func (m *AgentMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *AgentMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *AgentMutation) ResetActive() {
	m.active = nil
}

// SetVerified sets the "verified" field.
func (m *AgentMutation) SetVerified(b bool) {
	m.verified = &b
}

// Verified returns the value of the "verified" field in the mutation.
func (m *AgentMutation) Verified() (r bool, exists bool) {
	v := m.verified
	if v == nil {
		return
	}
	return *v, true
}

// OldVerified returns the old "verified" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerified: %w", err)
	}
	return oldValue.Verified, nil
}

// ResetVerified resets all changes to the "verified" field.
func (m *AgentMutation) ResetVerified() {
	m.verified = nil
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *AgentMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *AgentMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastActivityAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (m *AgentMutation) ClearLastActivityAt() {
	m.last_activity_at = nil
	m.clearedFields[agent.FieldLastActivityAt] = struct{}{}
}

// LastActivityAtCleared returns if the "last_activity_at" field was cleared in this mutation.
func (m *AgentMutation) LastActivityAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldLastActivityAt]
	return ok
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *AgentMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
	delete(m.clearedFields, agent.FieldLastActivityAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *AgentMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[agent.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *AgentMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) TenantIDs() (ids []int) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *AgentMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// AddPhoneNumberIDs adds the "phone_numbers" edge to the PhoneNumber entity by ids.
func (m *AgentMutation) AddPhoneNumberIDs(ids ...int) {
	if m.phone_numbers == nil {
		m.phone_numbers = make(map[int]struct{})
	}
	for i := range ids {
		m.phone_numbers[ids[i]] = struct{}{}
	}
}

// ClearPhoneNumbers clears the "phone_numbers" edge to the PhoneNumber entity.
func (m *AgentMutation) ClearPhoneNumbers() {
	m.clearedphone_numbers = true
}

// PhoneNumbersCleared reports if the "phone_numbers" edge to the PhoneNumber entity was cleared.
func (m *AgentMutation) PhoneNumbersCleared() bool {
	return m.clearedphone_numbers
}

// RemovePhoneNumberIDs removes the "phone_numbers" edge to the PhoneNumber entity by IDs.
func (m *AgentMutation) RemovePhoneNumberIDs(ids ...int) {
	if m.removedphone_numbers == nil {
		m.removedphone_numbers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.phone_numbers, ids[i])
		m.removedphone_numbers[ids[i]] = struct{}{}
	}
}

// RemovedPhoneNumbers returns the removed IDs of the "phone_numbers" edge to the PhoneNumber entity.
func (m *AgentMutation) RemovedPhoneNumbersIDs() (ids []int) {
	for id := range m.removedphone_numbers {
		ids = append(ids, id)
	}
	return
}

// PhoneNumbersIDs returns the "phone_numbers" edge IDs in the mutation.
func (m *AgentMutation) PhoneNumbersIDs() (ids []int) {
	for id := range m.phone_numbers {
		ids = append(ids, id)
	}
	return
}

// ResetPhoneNumbers resets all changes to the "phone_numbers" edge.
func (m *AgentMutation) ResetPhoneNumbers() {
	m.phone_numbers = nil
	m.clearedphone_numbers = false
	m.removedphone_numbers = nil
}

// AddCallRecordIDs adds the "call_records" edge to the CallRecord entity by ids.
func (m *AgentMutation) AddCallRecordIDs(ids ...int) {
	if m.call_records == nil {
		m.call_records = make(map[int]struct{})
	}
	for i := range ids {
		m.call_records[ids[i]] = struct{}{}
	}
}

// ClearCallRecords clears the "call_records" edge to the CallRecord entity.
func (m *AgentMutation) ClearCallRecords() {
	m.clearedcall_records = true
}

// CallRecordsCleared reports if the "call_records" edge to the CallRecord entity was cleared.
func (m *AgentMutation) CallRecordsCleared() bool {
	return m.clearedcall_records
}

// RemoveCallRecordIDs removes the "call_records" edge to the CallRecord entity by IDs.
func (m *AgentMutation) RemoveCallRecordIDs(ids ...int) {
	if m.removedcall_records == nil {
		m.removedcall_records = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.call_records, ids[i])
		m.removedcall_records[ids[i]] = struct{}{}
	}
}

// RemovedCallRecords returns the removed IDs of the "call_records" edge to the CallRecord entity.
func (m *AgentMutation) RemovedCallRecordsIDs() (ids []int) {
	for id := range m.removedcall_records {
		ids = append(ids, id)
	}
	return
}

// CallRecordsIDs returns the "call_records" edge IDs in the mutation.
func (m *AgentMutation) CallRecordsIDs() (ids []int) {
	for id := range m.call_records {
		ids = append(ids, id)
	}
	return
}

// ResetCallRecords resets all changes to the "call_records" edge.
func (m *AgentMutation) ResetCallRecords() {
	m.call_records = nil
	m.clearedcall_records = false
	m.removedcall_records = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant != nil {
		fields = append(fields, agent.FieldTenantID)
	}
	if m.provider_user_id != nil {
		fields = append(fields, agent.FieldProviderUserID)
	}
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.email != nil {
		fields = append(fields, agent.FieldEmail)
	}
	if m.active != nil {
		fields = append(fields, agent.FieldActive)
	}
	if m.verified != nil {
		fields = append(fields, agent.FieldVerified)
	}
	if m.last_activity_at != nil {
		fields = append(fields, agent.FieldLastActivityAt)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldTenantID:
		return m.TenantID()
	case agent.FieldProviderUserID:
		return m.ProviderUserID()
	case agent.FieldName:
		return m.Name()
	case agent.FieldEmail:
		return m.Email()
	case agent.FieldActive:
		return m.Active()
	case agent.FieldVerified:
		return m.Verified()
	case agent.FieldLastActivityAt:
		return m.LastActivityAt()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldTenantID:
		return m.OldTenantID(ctx)
	case agent.FieldProviderUserID:
		return m.OldProviderUserID(ctx)
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldEmail:
		return m.OldEmail(ctx)
	case agent.FieldActive:
		return m.OldActive(ctx)
	case agent.FieldVerified:
		return m.OldVerified(ctx)
	case agent.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldTenantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case agent.FieldProviderUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderUserID(v)
		return nil
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case agent.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case agent.FieldVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerified(v)
		return nil
	case agent.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldEmail) {
		fields = append(fields, agent.FieldEmail)
	}
	if m.FieldCleared(agent.FieldLastActivityAt) {
		fields = append(fields, agent.FieldLastActivityAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldEmail:
		m.ClearEmail()
		return nil
	case agent.FieldLastActivityAt:
		m.ClearLastActivityAt()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldTenantID:
		m.ResetTenantID()
		return nil
	case agent.FieldProviderUserID:
		m.ResetProviderUserID()
		return nil
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldEmail:
		m.ResetEmail()
		return nil
	case agent.FieldActive:
		m.ResetActive()
		return nil
	case agent.FieldVerified:
		m.ResetVerified()
		return nil
	case agent.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.tenant != nil {
		edges = append(edges, agent.EdgeTenant)
	}
	if m.phone_numbers != nil {
		edges = append(edges, agent.EdgePhoneNumbers)
	}
	if m.call_records != nil {
		edges = append(edges, agent.EdgeCallRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case agent.EdgePhoneNumbers:
		ids := make([]ent.Value, 0, len(m.phone_numbers))
		for id := range m.phone_numbers {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeCallRecords:
		ids := make([]ent.Value, 0, len(m.call_records))
		for id := range m.call_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedphone_numbers != nil {
		edges = append(edges, agent.EdgePhoneNumbers)
	}
	if m.removedcall_records != nil {
		edges = append(edges, agent.EdgeCallRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgePhoneNumbers:
		ids := make([]ent.Value, 0, len(m.removedphone_numbers))
		for id := range m.removedphone_numbers {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeCallRecords:
		ids := make([]ent.Value, 0, len(m.removedcall_records))
		for id := range m.removedcall_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtenant {
		edges = append(edges, agent.EdgeTenant)
	}
	if m.clearedphone_numbers {
		edges = append(edges, agent.EdgePhoneNumbers)
	}
	if m.clearedcall_records {
		edges = append(edges, agent.EdgeCallRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeTenant:
		return m.clearedtenant
	case agent.EdgePhoneNumbers:
		return m.clearedphone_numbers
	case agent.EdgeCallRecords:
		return m.clearedcall_records
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	case agent.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeTenant:
		m.ResetTenant()
		return nil
	case agent.EdgePhoneNumbers:
		m.ResetPhoneNumbers()
		return nil
	case agent.EdgeCallRecords:
		m.ResetCallRecords()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// BillingAccountMutation represents an operation that mutates the BillingAccount nodes in the graph.
type BillingAccountMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	inbound_rate_cents          *int
	addinbound_rate_cents       *int
	outbound_rate_cents         *int
	addoutbound_rate_cents      *int
	inbound_plan                *billingaccount.InboundPlan
	calls_reset_at              *time.Time
	monthly_spend_cents         *int64
	addmonthly_spend_cents      *int64
	stripe_customer_id          *string
	stripe_subscription_item_id *string
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	tenant                      *int
	clearedtenant               bool
	done                        bool
	oldValue                    func(context.Context) (*BillingAccount, error)
	predicates                  []predicate.BillingAccount
}

var _ ent.Mutation = (*BillingAccountMutation)(nil)

// billingaccountOption allows management of the mutation configuration using functional options.
type billingaccountOption func(*BillingAccountMutation)

// newBillingAccountMutation creates new mutation for the BillingAccount entity.
func newBillingAccountMutation(c config, op Op, opts ...billingaccountOption) *BillingAccountMutation {
	m := &BillingAccountMutation{
		config:        c,
		op:            op,
		typ:           TypeBillingAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBillingAccountID sets the ID field of the mutation.
func withBillingAccountID(id int) billingaccountOption {
	return func(m *BillingAccountMutation) {
		var (
			err   error
			once  sync.Once
			value *BillingAccount
		)
		m.oldValue = func(ctx context.Context) (*BillingAccount, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BillingAccount.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBillingAccount sets the old BillingAccount of the mutation.
func withBillingAccount(node *BillingAccount) billingaccountOption {
	return func(m *BillingAccountMutation) {
		m.oldValue = func(context.Context) (*BillingAccount, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BillingAccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BillingAccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BillingAccountMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BillingAccountMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BillingAccount.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *BillingAccountMutation) SetTenantID(i int) {
	m.tenant = &i
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *BillingAccountMutation) TenantID() (r int, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the BillingAccount entity.
// If the BillingAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingAccountMutation) OldTenantID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *BillingAccountMutation) ResetTenantID() {
	m.tenant = nil
}

// SetInboundRateCents sets the "inbound_rate_cents" field.
func (m *BillingAccountMutation) SetInboundRateCents(i int) {
	m.inbound_rate_cents = &i
	m.addinbound_rate_cents = nil
}

// InboundRateCents returns the value of the "inbound_rate_cents" field in the mutation.
func (m *BillingAccountMutation) InboundRateCents() (r int, exists bool) {
	v := m.inbound_rate_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldInboundRateCents returns the old "inbound_rate_cents" field's value of the BillingAccount entity.
// If the BillingAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingAccountMutation) OldInboundRateCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInboundRateCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInboundRateCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInboundRateCents: %w", err)
	}
	return oldValue.InboundRateCents, nil
}

// AddInboundRateCents adds i to the "inbound_rate_cents" field.
func (m *BillingAccountMutation) AddInboundRateCents(i int) {
	if m.addinbound_rate_cents != nil {
		*m.addinbound_rate_cents += i
	} else {
		m.addinbound_rate_cents = &i
	}
}

// AddedInboundRateCents returns the value that was added to the "inbound_rate_cents" field in this mutation.
func (m *BillingAccountMutation) AddedInboundRateCents() (r int, exists bool) {
	v := m.addinbound_rate_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetInboundRateCents resets all changes to the "inbound_rate_cents" field.
func (m *BillingAccountMutation) ResetInboundRateCents() {
	m.inbound_rate_cents = nil
	m.addinbound_rate_cents = nil
}

// SetOutboundRateCents sets the "outbound_rate_cents" field.
func (m *BillingAccountMutation) SetOutboundRateCents(i int) {
	m.outbound_rate_cents = &i
	m.addoutbound_rate_cents = nil
}

// OutboundRateCents returns the value of the "outbound_rate_cents" field in the mutation.
func (m *BillingAccountMutation) OutboundRateCents() (r int, exists bool) {
	v := m.outbound_rate_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldOutboundRateCents returns the old "outbound_rate_cents" field's value of the BillingAccount entity.
// If the BillingAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingAccountMutation) OldOutboundRateCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutboundRateCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutboundRateCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutboundRateCents: %w", err)
	}
	return oldValue.OutboundRateCents, nil
}

// AddOutboundRateCents adds i to the "outbound_rate_cents" field.
func (m *BillingAccountMutation) AddOutboundRateCents(i int) {
	if m.addoutbound_rate_cents != nil {
		*m.addoutbound_rate_cents += i
	} else {
		m.addoutbound_rate_cents = &i
	}
}

// AddedOutboundRateCents returns the value that was added to the "outbound_rate_cents" field in this mutation.
func (m *BillingAccountMutation) AddedOutboundRateCents() (r int, exists bool) {
	v := m.addoutbound_rate_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutboundRateCents resets all changes to the "outbound_rate_cents" field.
func (m *BillingAccountMutation) ResetOutboundRateCents() {
	m.outbound_rate_cents = nil
	m.addoutbound_rate_cents = nil
}

// SetInboundPlan sets the "inbound_plan" field.
func (m *BillingAccountMutation) SetInboundPlan(bp billingaccount.InboundPlan) {
	m.inbound_plan = &bp
}

// InboundPlan returns the value of the "inbound_plan" field in the mutation.
func (m *BillingAccountMutation) InboundPlan() (r billingaccount.InboundPlan, exists bool) {
	v := m.inbound_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldInboundPlan returns the old "inbound_plan" field's value of the BillingAccount entity.
// If the BillingAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingAccountMutation) OldInboundPlan(ctx context.Context) (v billingaccount.InboundPlan, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInboundPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInboundPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInboundPlan: %w", err)
	}
	return oldValue.InboundPlan, nil
}

// ResetInboundPlan resets all changes to the "inbound_plan" field.
func (m *BillingAccountMutation) ResetInboundPlan() {
	m.inbound_plan = nil
}

// SetCallsResetAt sets the "calls_reset_at" field.
func (m *BillingAccountMutation) SetCallsResetAt(t time.Time) {
	m.calls_reset_at = &t
}

// CallsResetAt returns the value of the "calls_reset_at" field in the mutation.
func (m *BillingAccountMutation) CallsResetAt() (r time.Time, exists bool) {
	v := m.calls_reset_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCallsResetAt returns the old "calls_reset_at" field's value of the BillingAccount entity.
// If the BillingAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingAccountMutation) OldCallsResetAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallsResetAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallsResetAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallsResetAt: %w", err)
	}
	return oldValue.CallsResetAt, nil
}

// ClearCallsResetAt clears the value of the "calls_reset_at" field.
func (m *BillingAccountMutation) ClearCallsResetAt() {
	m.calls_reset_at = nil
	m.clearedFields[billingaccount.FieldCallsResetAt] = struct{}{}
}

// CallsResetAtCleared returns if the "calls_reset_at" field was cleared in this mutation.
func (m *BillingAccountMutation) CallsResetAtCleared() bool {
	_, ok := m.clearedFields[billingaccount.FieldCallsResetAt]
	return ok
}

// ResetCallsResetAt resets all changes to the "calls_reset_at" field.
func (m *BillingAccountMutation) ResetCallsResetAt() {
	m.calls_reset_at = nil
	delete(m.clearedFields, billingaccount.FieldCallsResetAt)
}

// SetMonthlySpendCents sets the "monthly_spend_cents" field.
func (m *BillingAccountMutation) SetMonthlySpendCents(i int64) {
	m.monthly_spend_cents = &i
	m.addmonthly_spend_cents = nil
}

// MonthlySpendCents returns the value of the "monthly_spend_cents" field in the mutation.
func (m *BillingAccountMutation) MonthlySpendCents() (r int64, exists bool) {
	v := m.monthly_spend_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlySpendCents returns the old "monthly_spend_cents" field's value of the BillingAccount entity.
// If the BillingAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingAccountMutation) OldMonthlySpendCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlySpendCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlySpendCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlySpendCents: %w", err)
	}
	return oldValue.MonthlySpendCents, nil
}

// AddMonthlySpendCents adds i to the "monthly_spend_cents" field.
func (m *BillingAccountMutation) AddMonthlySpendCents(i int64) {
	if m.addmonthly_spend_cents != nil {
		*m.addmonthly_spend_cents += i
	} else {
		m.addmonthly_spend_cents = &i
	}
}

// AddedMonthlySpendCents returns the value that was added to the "monthly_spend_cents" field in this mutation.
func (m *BillingAccountMutation) AddedMonthlySpendCents() (r int64, exists bool) {
	v := m.addmonthly_spend_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetMonthlySpendCents resets all changes to the "monthly_spend_cents" field.
func (m *BillingAccountMutation) ResetMonthlySpendCents() {
	m.monthly_spend_cents = nil
	m.addmonthly_spend_cents = nil
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (m *BillingAccountMutation) SetStripeCustomerID(s string) {
	m.stripe_customer_id = &s
}

// StripeCustomerID returns the value of the "stripe_customer_id" field in the mutation.
func (m *BillingAccountMutation) StripeCustomerID() (r string, exists bool) {
	v := m.stripe_customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripeCustomerID returns the old "stripe_customer_id" field's value of the BillingAccount entity.
// If the BillingAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingAccountMutation) OldStripeCustomerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripeCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripeCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripeCustomerID: %w", err)
	}
	return oldValue.StripeCustomerID, nil
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (m *BillingAccountMutation) ClearStripeCustomerID() {
	m.stripe_customer_id = nil
	m.clearedFields[billingaccount.FieldStripeCustomerID] = struct{}{}
}

// StripeCustomerIDCleared returns if the "stripe_customer_id" field was cleared in this mutation.
func (m *BillingAccountMutation) StripeCustomerIDCleared() bool {
	_, ok := m.clearedFields[billingaccount.FieldStripeCustomerID]
	return ok
}

// ResetStripeCustomerID resets all changes to the "stripe_customer_id" field.
func (m *BillingAccountMutation) ResetStripeCustomerID() {
	m.stripe_customer_id = nil
	delete(m.clearedFields, billingaccount.FieldStripeCustomerID)
}

// SetStripeSubscriptionItemID sets the "stripe_subscription_item_id" field.
func (m *BillingAccountMutation) SetStripeSubscriptionItemID(s string) {
	m.stripe_subscription_item_id = &s
}

// StripeSubscriptionItemID returns the value of the "stripe_subscription_item_id" field in the mutation.
func (m *BillingAccountMutation) StripeSubscriptionItemID() (r string, exists bool) {
	v := m.stripe_subscription_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripeSubscriptionItemID returns the old "stripe_subscription_item_id" field's value of the BillingAccount entity.
// If the BillingAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingAccountMutation) OldStripeSubscriptionItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripeSubscriptionItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripeSubscriptionItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripeSubscriptionItemID: %w", err)
	}
	return oldValue.StripeSubscriptionItemID, nil
}

// ClearStripeSubscriptionItemID clears the value of the "stripe_subscription_item_id" field.
func (m *BillingAccountMutation) ClearStripeSubscriptionItemID() {
	m.stripe_subscription_item_id = nil
	m.clearedFields[billingaccount.FieldStripeSubscriptionItemID] = struct{}{}
}

// StripeSubscriptionItemIDCleared returns if the "stripe_subscription_item_id" field was cleared in this mutation.
func (m *BillingAccountMutation) StripeSubscriptionItemIDCleared() bool {
	_, ok := m.clearedFields[billingaccount.FieldStripeSubscriptionItemID]
	return ok
}

// ResetStripeSubscriptionItemID resets all changes to the "stripe_subscription_item_id" field.
func (m *BillingAccountMutation) ResetStripeSubscriptionItemID() {
	m.stripe_subscription_item_id = nil
	delete(m.clearedFields, billingaccount.FieldStripeSubscriptionItemID)
}

// SetCreatedAt sets the "created_at" field.
func (m *BillingAccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BillingAccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BillingAccount entity.
// If the BillingAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingAccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BillingAccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BillingAccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BillingAccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BillingAccount entity.
// If the BillingAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingAccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BillingAccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *BillingAccountMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[billingaccount.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *BillingAccountMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *BillingAccountMutation) TenantIDs() (ids []int) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *BillingAccountMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the BillingAccountMutation builder.
func (m *BillingAccountMutation) Where(ps ...predicate.BillingAccount) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BillingAccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BillingAccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BillingAccount, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BillingAccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BillingAccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BillingAccount).
func (m *BillingAccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BillingAccountMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tenant != nil {
		fields = append(fields, billingaccount.FieldTenantID)
	}
	if m.inbound_rate_cents != nil {
		fields = append(fields, billingaccount.FieldInboundRateCents)
	}
	if m.outbound_rate_cents != nil {
		fields = append(fields, billingaccount.FieldOutboundRateCents)
	}
	if m.inbound_plan != nil {
		fields = append(fields, billingaccount.FieldInboundPlan)
	}
	if m.calls_reset_at != nil {
		fields = append(fields, billingaccount.FieldCallsResetAt)
	}
	if m.monthly_spend_cents != nil {
		fields = append(fields, billingaccount.FieldMonthlySpendCents)
	}
	if m.stripe_customer_id != nil {
		fields = append(fields, billingaccount.FieldStripeCustomerID)
	}
	if m.stripe_subscription_item_id != nil {
		fields = append(fields, billingaccount.FieldStripeSubscriptionItemID)
	}
	if m.created_at != nil {
		fields = append(fields, billingaccount.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, billingaccount.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BillingAccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case billingaccount.FieldTenantID:
		return m.TenantID()
	case billingaccount.FieldInboundRateCents:
		return m.InboundRateCents()
	case billingaccount.FieldOutboundRateCents:
		return m.OutboundRateCents()
	case billingaccount.FieldInboundPlan:
		return m.InboundPlan()
	case billingaccount.FieldCallsResetAt:
		return m.CallsResetAt()
	case billingaccount.FieldMonthlySpendCents:
		return m.MonthlySpendCents()
	case billingaccount.FieldStripeCustomerID:
		return m.StripeCustomerID()
	case billingaccount.FieldStripeSubscriptionItemID:
		return m.StripeSubscriptionItemID()
	case billingaccount.FieldCreatedAt:
		return m.CreatedAt()
	case billingaccount.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BillingAccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case billingaccount.FieldTenantID:
		return m.OldTenantID(ctx)
	case billingaccount.FieldInboundRateCents:
		return m.OldInboundRateCents(ctx)
	case billingaccount.FieldOutboundRateCents:
		return m.OldOutboundRateCents(ctx)
	case billingaccount.FieldInboundPlan:
		return m.OldInboundPlan(ctx)
	case billingaccount.FieldCallsResetAt:
		return m.OldCallsResetAt(ctx)
	case billingaccount.FieldMonthlySpendCents:
		return m.OldMonthlySpendCents(ctx)
	case billingaccount.FieldStripeCustomerID:
		return m.OldStripeCustomerID(ctx)
	case billingaccount.FieldStripeSubscriptionItemID:
		return m.OldStripeSubscriptionItemID(ctx)
	case billingaccount.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case billingaccount.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BillingAccount field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillingAccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case billingaccount.FieldTenantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case billingaccount.FieldInboundRateCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInboundRateCents(v)
		return nil
	case billingaccount.FieldOutboundRateCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutboundRateCents(v)
		return nil
	case billingaccount.FieldInboundPlan:
		v, ok := value.(billingaccount.InboundPlan)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInboundPlan(v)
		return nil
	case billingaccount.FieldCallsResetAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallsResetAt(v)
		return nil
	case billingaccount.FieldMonthlySpendCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlySpendCents(v)
		return nil
	case billingaccount.FieldStripeCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripeCustomerID(v)
		return nil
	case billingaccount.FieldStripeSubscriptionItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripeSubscriptionItemID(v)
		return nil
	case billingaccount.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case billingaccount.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BillingAccount field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BillingAccountMutation) AddedFields() []string {
	var fields []string
	if m.addinbound_rate_cents != nil {
		fields = append(fields, billingaccount.FieldInboundRateCents)
	}
	if m.addoutbound_rate_cents != nil {
		fields = append(fields, billingaccount.FieldOutboundRateCents)
	}
	if m.addmonthly_spend_cents != nil {
		fields = append(fields, billingaccount.FieldMonthlySpendCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BillingAccountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case billingaccount.FieldInboundRateCents:
		return m.AddedInboundRateCents()
	case billingaccount.FieldOutboundRateCents:
		return m.AddedOutboundRateCents()
	case billingaccount.FieldMonthlySpendCents:
		return m.AddedMonthlySpendCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillingAccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	case billingaccount.FieldInboundRateCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInboundRateCents(v)
		return nil
	case billingaccount.FieldOutboundRateCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutboundRateCents(v)
		return nil
	case billingaccount.FieldMonthlySpendCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlySpendCents(v)
		return nil
	}
	return fmt.Errorf("unknown BillingAccount numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BillingAccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(billingaccount.FieldCallsResetAt) {
		fields = append(fields, billingaccount.FieldCallsResetAt)
	}
	if m.FieldCleared(billingaccount.FieldStripeCustomerID) {
		fields = append(fields, billingaccount.FieldStripeCustomerID)
	}
	if m.FieldCleared(billingaccount.FieldStripeSubscriptionItemID) {
		fields = append(fields, billingaccount.FieldStripeSubscriptionItemID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BillingAccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BillingAccountMutation) ClearField(name string) error {
	switch name {
	case billingaccount.FieldCallsResetAt:
		m.ClearCallsResetAt()
		return nil
	case billingaccount.FieldStripeCustomerID:
		m.ClearStripeCustomerID()
		return nil
	case billingaccount.FieldStripeSubscriptionItemID:
		m.ClearStripeSubscriptionItemID()
		return nil
	}
	return fmt.Errorf("unknown BillingAccount nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BillingAccountMutation) ResetField(name string) error {
	switch name {
	case billingaccount.FieldTenantID:
		m.ResetTenantID()
		return nil
	case billingaccount.FieldInboundRateCents:
		m.ResetInboundRateCents()
		return nil
	case billingaccount.FieldOutboundRateCents:
		m.ResetOutboundRateCents()
		return nil
	case billingaccount.FieldInboundPlan:
		m.ResetInboundPlan()
		return nil
	case billingaccount.FieldCallsResetAt:
		m.ResetCallsResetAt()
		return nil
	case billingaccount.FieldMonthlySpendCents:
		m.ResetMonthlySpendCents()
		return nil
	case billingaccount.FieldStripeCustomerID:
		m.ResetStripeCustomerID()
		return nil
	case billingaccount.FieldStripeSubscriptionItemID:
		m.ResetStripeSubscriptionItemID()
		return nil
	case billingaccount.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case billingaccount.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BillingAccount field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BillingAccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, billingaccount.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BillingAccountMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case billingaccount.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BillingAccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BillingAccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BillingAccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, billingaccount.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BillingAccountMutation) EdgeCleared(name string) bool {
	switch name {
	case billingaccount.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BillingAccountMutation) ClearEdge(name string) error {
	switch name {
	case billingaccount.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown BillingAccount unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BillingAccountMutation) ResetEdge(name string) error {
	switch name {
	case billingaccount.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown BillingAccount edge %s", name)
}

// CRMConnectionMutation represents an operation that mutates the CRMConnection nodes in the graph.
type CRMConnectionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	location_id              *string
	access_token             *string
	refresh_token            *string
	token_expires_at         *time.Time
	auto_sync                *bool
	sync_interval_minutes    *int
	addsync_interval_minutes *int
	last_sync_at             *time.Time
	last_sync_error          *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	tenant                   *int
	clearedtenant            bool
	done                     bool
	oldValue                 func(context.Context) (*CRMConnection, error)
	predicates               []predicate.CRMConnection
}

var _ ent.Mutation = (*CRMConnectionMutation)(nil)

// crmconnectionOption allows management of the mutation configuration using functional options.
type crmconnectionOption func(*CRMConnectionMutation)

// newCRMConnectionMutation creates new mutation for the CRMConnection entity.
func newCRMConnectionMutation(c config, op Op, opts ...crmconnectionOption) *CRMConnectionMutation {
	m := &CRMConnectionMutation{
		config:        c,
		op:            op,
		typ:           TypeCRMConnection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCRMConnectionID sets the ID field of the mutation.
func withCRMConnectionID(id int) crmconnectionOption {
	return func(m *CRMConnectionMutation) {
		var (
			err   error
			once  sync.Once
			value *CRMConnection
		)
		m.oldValue = func(ctx context.Context) (*CRMConnection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CRMConnection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCRMConnection sets the old CRMConnection of the mutation.
func withCRMConnection(node *CRMConnection) crmconnectionOption {
	return func(m *CRMConnectionMutation) {
		m.oldValue = func(context.Context) (*CRMConnection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CRMConnectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CRMConnectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CRMConnectionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CRMConnectionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CRMConnection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *CRMConnectionMutation) SetTenantID(i int) {
	m.tenant = &i
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *CRMConnectionMutation) TenantID() (r int, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the CRMConnection entity.
// If the CRMConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMConnectionMutation) OldTenantID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *CRMConnectionMutation) ResetTenantID() {
	m.tenant = nil
}

// SetLocationID sets the "location_id" field.
func (m *CRMConnectionMutation) SetLocationID(s string) {
	m.location_id = &s
}

// LocationID returns the value of the "location_id" field in the mutation.
func (m *CRMConnectionMutation) LocationID() (r string, exists bool) {
	v := m.location_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationID returns the old "location_id" field's value of the CRMConnection entity.
// If the CRMConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMConnectionMutation) OldLocationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationID: %w", err)
	}
	return oldValue.LocationID, nil
}

// ResetLocationID resets all changes to the "location_id" field.
func (m *CRMConnectionMutation) ResetLocationID() {
	m.location_id = nil
}

// SetAccessToken sets the "access_token" field.
func (m *CRMConnectionMutation) SetAccessToken(s string) {
	m.access_token = &s
}

// AccessToken returns the value of the "access_token" field in the mutation.
func (m *CRMConnectionMutation) AccessToken() (r string, exists bool) {
	v := m.access_token
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessToken returns the old "access_token" field's value of the CRMConnection entity.
// If the CRMConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMConnectionMutation) OldAccessToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessToken: %w", err)
	}
	return oldValue.AccessToken, nil
}

// ResetAccessToken resets all changes to the "access_token" field.
func (m *CRMConnectionMutation) ResetAccessToken() {
	m.access_token = nil
}

// SetRefreshToken sets the "refresh_token" field.
func (m *CRMConnectionMutation) SetRefreshToken(s string) {
	m.refresh_token = &s
}

// RefreshToken returns the value of the "refresh_token" field in the mutation.
func (m *CRMConnectionMutation) RefreshToken() (r string, exists bool) {
	v := m.refresh_token
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshToken returns the old "refresh_token" field's value of the CRMConnection entity.
// If the CRMConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMConnectionMutation) OldRefreshToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshToken: %w", err)
	}
	return oldValue.RefreshToken, nil
}

// ResetRefreshToken resets all changes to the "refresh_token" field.
func (m *CRMConnectionMutation) ResetRefreshToken() {
	m.refresh_token = nil
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (m *CRMConnectionMutation) SetTokenExpiresAt(t time.Time) {
	m.token_expires_at = &t
}

// TokenExpiresAt returns the value of the "token_expires_at" field in the mutation.
func (m *CRMConnectionMutation) TokenExpiresAt() (r time.Time, exists bool) {
	v := m.token_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenExpiresAt returns the old "token_expires_at" field's value of the CRMConnection entity.
// If the CRMConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMConnectionMutation) OldTokenExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenExpiresAt: %w", err)
	}
	return oldValue.TokenExpiresAt, nil
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (m *CRMConnectionMutation) ClearTokenExpiresAt() {
	m.token_expires_at = nil
	m.clearedFields[crmconnection.FieldTokenExpiresAt] = struct{}{}
}

// TokenExpiresAtCleared returns if the "token_expires_at" field was cleared in this mutation.
func (m *CRMConnectionMutation) TokenExpiresAtCleared() bool {
	_, ok := m.clearedFields[crmconnection.FieldTokenExpiresAt]
	return ok
}

// ResetTokenExpiresAt resets all changes to the "token_expires_at" field.
func (m *CRMConnectionMutation) ResetTokenExpiresAt() {
	m.token_expires_at = nil
	delete(m.clearedFields, crmconnection.FieldTokenExpiresAt)
}

// SetAutoSync sets the "auto_sync" field.
func (m *CRMConnectionMutation) SetAutoSync(b bool) {
	m.auto_sync = &b
}

// AutoSync returns the value of the "auto_sync" field in the mutation.
func (m *CRMConnectionMutation) AutoSync() (r bool, exists bool) {
	v := m.auto_sync
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoSync returns the old "auto_sync" field's value of the CRMConnection entity.
// If the CRMConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMConnectionMutation) OldAutoSync(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoSync is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoSync requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoSync: %w", err)
	}
	return oldValue.AutoSync, nil
}

// ResetAutoSync resets all changes to the "auto_sync" field.
func (m *CRMConnectionMutation) ResetAutoSync() {
	m.auto_sync = nil
}

// SetSyncIntervalMinutes sets the "sync_interval_minutes" field.
func (m *CRMConnectionMutation) SetSyncIntervalMinutes(i int) {
	m.sync_interval_minutes = &i
	m.addsync_interval_minutes = nil
}

// SyncIntervalMinutes returns the value of the "sync_interval_minutes" field in the mutation.
func (m *CRMConnectionMutation) SyncIntervalMinutes() (r int, exists bool) {
	v := m.sync_interval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldSyncIntervalMinutes returns the old "sync_interval_minutes" field's value of the CRMConnection entity.
// If the CRMConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMConnectionMutation) OldSyncIntervalMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyncIntervalMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyncIntervalMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyncIntervalMinutes: %w", err)
	}
	return oldValue.SyncIntervalMinutes, nil
}

// AddSyncIntervalMinutes adds i to the "sync_interval_minutes" field.
func (m *CRMConnectionMutation) AddSyncIntervalMinutes(i int) {
	if m.addsync_interval_minutes != nil {
		*m.addsync_interval_minutes += i
	} else {
		m.addsync_interval_minutes = &i
	}
}

// AddedSyncIntervalMinutes returns the value that was added to the "sync_interval_minutes" field in this mutation.
func (m *CRMConnectionMutation) AddedSyncIntervalMinutes() (r int, exists bool) {
	v := m.addsync_interval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSyncIntervalMinutes resets all changes to the "sync_interval_minutes" field.
func (m *CRMConnectionMutation) ResetSyncIntervalMinutes() {
	m.sync_interval_minutes = nil
	m.addsync_interval_minutes = nil
}

// SetLastSyncAt sets the "last_sync_at" field.
func (m *CRMConnectionMutation) SetLastSyncAt(t time.Time) {
	m.last_sync_at = &t
}

// LastSyncAt returns the value of the "last_sync_at" field in the mutation.
func (m *CRMConnectionMutation) LastSyncAt() (r time.Time, exists bool) {
	v := m.last_sync_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncAt returns the old "last_sync_at" field's value of the CRMConnection entity.
// If the CRMConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMConnectionMutation) OldLastSyncAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncAt: %w", err)
	}
	return oldValue.LastSyncAt, nil
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (m *CRMConnectionMutation) ClearLastSyncAt() {
	m.last_sync_at = nil
	m.clearedFields[crmconnection.FieldLastSyncAt] = struct{}{}
}

// LastSyncAtCleared returns if the "last_sync_at" field was cleared in this mutation.
func (m *CRMConnectionMutation) LastSyncAtCleared() bool {
	_, ok := m.clearedFields[crmconnection.FieldLastSyncAt]
	return ok
}

// ResetLastSyncAt resets all changes to the "last_sync_at" field.
func (m *CRMConnectionMutation) ResetLastSyncAt() {
	m.last_sync_at = nil
	delete(m.clearedFields, crmconnection.FieldLastSyncAt)
}

// SetLastSyncError sets the "last_sync_error" field.
func (m *CRMConnectionMutation) SetLastSyncError(s string) {
	m.last_sync_error = &s
}

// LastSyncError returns the value of the "last_sync_error" field in the mutation.
func (m *CRMConnectionMutation) LastSyncError() (r string, exists bool) {
	v := m.last_sync_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncError returns the old "last_sync_error" field's value of the CRMConnection entity.
// If the CRMConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMConnectionMutation) OldLastSyncError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncError: %w", err)
	}
	return oldValue.LastSyncError, nil
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (m *CRMConnectionMutation) ClearLastSyncError() {
	m.last_sync_error = nil
	m.clearedFields[crmconnection.FieldLastSyncError] = struct{}{}
}

// LastSyncErrorCleared returns if the "last_sync_error" field was cleared in this mutation.
func (m *CRMConnectionMutation) LastSyncErrorCleared() bool {
	_, ok := m.clearedFields[crmconnection.FieldLastSyncError]
	return ok
}

// ResetLastSyncError resets all changes to the "last_sync_error" field.
func (m *CRMConnectionMutation) ResetLastSyncError() {
	m.last_sync_error = nil
	delete(m.clearedFields, crmconnection.FieldLastSyncError)
}

// SetCreatedAt sets the "created_at" field.
func (m *CRMConnectionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CRMConnectionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CRMConnection entity.
// If the CRMConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMConnectionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CRMConnectionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CRMConnectionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CRMConnectionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CRMConnection entity.
// If the CRMConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMConnectionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CRMConnectionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *CRMConnectionMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[crmconnection.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *CRMConnectionMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *CRMConnectionMutation) TenantIDs() (ids []int) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *CRMConnectionMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the CRMConnectionMutation builder.
func (m *CRMConnectionMutation) Where(ps ...predicate.CRMConnection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CRMConnectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CRMConnectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CRMConnection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CRMConnectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CRMConnectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CRMConnection).
func (m *CRMConnectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CRMConnectionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.tenant != nil {
		fields = append(fields, crmconnection.FieldTenantID)
	}
	if m.location_id != nil {
		fields = append(fields, crmconnection.FieldLocationID)
	}
	if m.access_token != nil {
		fields = append(fields, crmconnection.FieldAccessToken)
	}
	if m.refresh_token != nil {
		fields = append(fields, crmconnection.FieldRefreshToken)
	}
	if m.token_expires_at != nil {
		fields = append(fields, crmconnection.FieldTokenExpiresAt)
	}
	if m.auto_sync != nil {
		fields = append(fields, crmconnection.FieldAutoSync)
	}
	if m.sync_interval_minutes != nil {
		fields = append(fields, crmconnection.FieldSyncIntervalMinutes)
	}
	if m.last_sync_at != nil {
		fields = append(fields, crmconnection.FieldLastSyncAt)
	}
	if m.last_sync_error != nil {
		fields = append(fields, crmconnection.FieldLastSyncError)
	}
	if m.created_at != nil {
		fields = append(fields, crmconnection.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, crmconnection.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CRMConnectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case crmconnection.FieldTenantID:
		return m.TenantID()
	case crmconnection.FieldLocationID:
		return m.LocationID()
	case crmconnection.FieldAccessToken:
		return m.AccessToken()
	case crmconnection.FieldRefreshToken:
		return m.RefreshToken()
	case crmconnection.FieldTokenExpiresAt:
		return m.TokenExpiresAt()
	case crmconnection.FieldAutoSync:
		return m.AutoSync()
	case crmconnection.FieldSyncIntervalMinutes:
		return m.SyncIntervalMinutes()
	case crmconnection.FieldLastSyncAt:
		return m.LastSyncAt()
	case crmconnection.FieldLastSyncError:
		return m.LastSyncError()
	case crmconnection.FieldCreatedAt:
		return m.CreatedAt()
	case crmconnection.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CRMConnectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case crmconnection.FieldTenantID:
		return m.OldTenantID(ctx)
	case crmconnection.FieldLocationID:
		return m.OldLocationID(ctx)
	case crmconnection.FieldAccessToken:
		return m.OldAccessToken(ctx)
	case crmconnection.FieldRefreshToken:
		return m.OldRefreshToken(ctx)
	case crmconnection.FieldTokenExpiresAt:
		return m.OldTokenExpiresAt(ctx)
	case crmconnection.FieldAutoSync:
		return m.OldAutoSync(ctx)
	case crmconnection.FieldSyncIntervalMinutes:
		return m.OldSyncIntervalMinutes(ctx)
	case crmconnection.FieldLastSyncAt:
		return m.OldLastSyncAt(ctx)
	case crmconnection.FieldLastSyncError:
		return m.OldLastSyncError(ctx)
	case crmconnection.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case crmconnection.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CRMConnection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CRMConnectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case crmconnection.FieldTenantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case crmconnection.FieldLocationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationID(v)
		return nil
	case crmconnection.FieldAccessToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessToken(v)
		return nil
	case crmconnection.FieldRefreshToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshToken(v)
		return nil
	case crmconnection.FieldTokenExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenExpiresAt(v)
		return nil
	case crmconnection.FieldAutoSync:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoSync(v)
		return nil
	case crmconnection.FieldSyncIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyncIntervalMinutes(v)
		return nil
	case crmconnection.FieldLastSyncAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncAt(v)
		return nil
	case crmconnection.FieldLastSyncError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncError(v)
		return nil
	case crmconnection.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case crmconnection.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CRMConnection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CRMConnectionMutation) AddedFields() []string {
	var fields []string
	if m.addsync_interval_minutes != nil {
		fields = append(fields, crmconnection.FieldSyncIntervalMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CRMConnectionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case crmconnection.FieldSyncIntervalMinutes:
		return m.AddedSyncIntervalMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CRMConnectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case crmconnection.FieldSyncIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSyncIntervalMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown CRMConnection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CRMConnectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(crmconnection.FieldTokenExpiresAt) {
		fields = append(fields, crmconnection.FieldTokenExpiresAt)
	}
	if m.FieldCleared(crmconnection.FieldLastSyncAt) {
		fields = append(fields, crmconnection.FieldLastSyncAt)
	}
	if m.FieldCleared(crmconnection.FieldLastSyncError) {
		fields = append(fields, crmconnection.FieldLastSyncError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CRMConnectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CRMConnectionMutation) ClearField(name string) error {
	switch name {
	case crmconnection.FieldTokenExpiresAt:
		m.ClearTokenExpiresAt()
		return nil
	case crmconnection.FieldLastSyncAt:
		m.ClearLastSyncAt()
		return nil
	case crmconnection.FieldLastSyncError:
		m.ClearLastSyncError()
		return nil
	}
	return fmt.Errorf("unknown CRMConnection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CRMConnectionMutation) ResetField(name string) error {
	switch name {
	case crmconnection.FieldTenantID:
		m.ResetTenantID()
		return nil
	case crmconnection.FieldLocationID:
		m.ResetLocationID()
		return nil
	case crmconnection.FieldAccessToken:
		m.ResetAccessToken()
		return nil
	case crmconnection.FieldRefreshToken:
		m.ResetRefreshToken()
		return nil
	case crmconnection.FieldTokenExpiresAt:
		m.ResetTokenExpiresAt()
		return nil
	case crmconnection.FieldAutoSync:
		m.ResetAutoSync()
		return nil
	case crmconnection.FieldSyncIntervalMinutes:
		m.ResetSyncIntervalMinutes()
		return nil
	case crmconnection.FieldLastSyncAt:
		m.ResetLastSyncAt()
		return nil
	case crmconnection.FieldLastSyncError:
		m.ResetLastSyncError()
		return nil
	case crmconnection.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case crmconnection.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CRMConnection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CRMConnectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, crmconnection.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CRMConnectionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case crmconnection.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CRMConnectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CRMConnectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CRMConnectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, crmconnection.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CRMConnectionMutation) EdgeCleared(name string) bool {
	switch name {
	case crmconnection.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CRMConnectionMutation) ClearEdge(name string) error {
	switch name {
	case crmconnection.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown CRMConnection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CRMConnectionMutation) ResetEdge(name string) error {
	switch name {
	case crmconnection.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown CRMConnection edge %s", name)
}

// CallRecordMutation represents an operation that mutates the CallRecord nodes in the graph.
type CallRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	provider_call_id    *string
	direction           *callrecord.Direction
	from_number         *string
	to_number           *string
	status              *string
	duration            *int
	addduration         *int
	cost                *float64
	addcost             *float64
	display_cost        *string
	contact_name        *string
	recording_url       *string
	transcript_id       *string
	message_id          *string
	is_test             *bool
	started_at          *time.Time
	ended_at            *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	tenant              *int
	clearedtenant       bool
	agent               *int
	clearedagent        bool
	phone_number        *int
	clearedphone_number bool
	usage_entry         *int
	clearedusage_entry  bool
	done                bool
	oldValue            func(context.Context) (*CallRecord, error)
	predicates          []predicate.CallRecord
}

var _ ent.Mutation = (*CallRecordMutation)(nil)

// callrecordOption allows management of the mutation configuration using functional options.
type callrecordOption func(*CallRecordMutation)

// newCallRecordMutation creates new mutation for the CallRecord entity.
func newCallRecordMutation(c config, op Op, opts ...callrecordOption) *CallRecordMutation {
	m := &CallRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeCallRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCallRecordID sets the ID field of the mutation.
func withCallRecordID(id int) callrecordOption {
	return func(m *CallRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *CallRecord
		)
		m.oldValue = func(ctx context.Context) (*CallRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CallRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCallRecord sets the old CallRecord of the mutation.
func withCallRecord(node *CallRecord) callrecordOption {
	return func(m *CallRecordMutation) {
		m.oldValue = func(context.Context) (*CallRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CallRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CallRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CallRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CallRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CallRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *CallRecordMutation) SetTenantID(i int) {
	m.tenant = &i
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *CallRecordMutation) TenantID() (r int, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldTenantID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *CallRecordMutation) ResetTenantID() {
	m.tenant = nil
}

// SetProviderCallID sets the "provider_call_id" field.
func (m *CallRecordMutation) SetProviderCallID(s string) {
	m.provider_call_id = &s
}

// ProviderCallID returns the value of the "provider_call_id" field in the mutation.
func (m *CallRecordMutation) ProviderCallID() (r string, exists bool) {
	v := m.provider_call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderCallID returns the old "provider_call_id" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldProviderCallID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderCallID: %w", err)
	}
	return oldValue.ProviderCallID, nil
}

// ResetProviderCallID resets all changes to the "provider_call_id" field.
func (m *CallRecordMutation) ResetProviderCallID() {
	m.provider_call_id = nil
}

// SetDirection sets the "direction" field.
func (m *CallRecordMutation) SetDirection(c callrecord.Direction) {
	m.direction = &c
}

// Direction returns the value of the "direction" field in the mutation.
func (m *CallRecordMutation) Direction() (r callrecord.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldDirection(ctx context.Context) (v callrecord.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *CallRecordMutation) ResetDirection() {
	m.direction = nil
}

// SetFromNumber sets the "from_number" field.
func (m *CallRecordMutation) SetFromNumber(s string) {
	m.from_number = &s
}

// FromNumber returns the value of the "from_number" field in the mutation.
func (m *CallRecordMutation) FromNumber() (r string, exists bool) {
	v := m.from_number
	if v == nil {
		return
	}
	return *v, true
}

// OldFromNumber returns the old "from_number" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldFromNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromNumber: %w", err)
	}
	return oldValue.FromNumber, nil
}

// ResetFromNumber resets all changes to the "from_number" field.
func (m *CallRecordMutation) ResetFromNumber() {
	m.from_number = nil
}

// SetToNumber sets the "to_number" field.
func (m *CallRecordMutation) SetToNumber(s string) {
	m.to_number = &s
}

// ToNumber returns the value of the "to_number" field in the mutation.
func (m *CallRecordMutation) ToNumber() (r string, exists bool) {
	v := m.to_number
	if v == nil {
		return
	}
	return *v, true
}

// OldToNumber returns the old "to_number" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldToNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToNumber: %w", err)
	}
	return oldValue.ToNumber, nil
}

// ClearToNumber clears the value of the "to_number" field.
func (m *CallRecordMutation) ClearToNumber() {
	m.to_number = nil
	m.clearedFields[callrecord.FieldToNumber] = struct{}{}
}

// ToNumberCleared returns if the "to_number" field was cleared in this mutation.
func (m *CallRecordMutation) ToNumberCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldToNumber]
	return ok
}

// ResetToNumber resets all changes to the "to_number" field.
func (m *CallRecordMutation) ResetToNumber() {
	m.to_number = nil
	delete(m.clearedFields, callrecord.FieldToNumber)
}

// SetStatus sets the "status" field.
func (m *CallRecordMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CallRecordMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *CallRecordMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[callrecord.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *CallRecordMutation) StatusCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *CallRecordMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, callrecord.FieldStatus)
}

// SetDuration sets the "duration" field.
func (m *CallRecordMutation) SetDuration(i int) {
	m.duration = &i
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *CallRecordMutation) Duration() (r int, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldDuration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds i to the "duration" field.
func (m *CallRecordMutation) AddDuration(i int) {
	if m.addduration != nil {
		*m.addduration += i
	} else {
		m.addduration = &i
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *CallRecordMutation) AddedDuration() (r int, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuration resets all changes to the "duration" field.
func (m *CallRecordMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
}

// SetCost sets the "cost" field.
func (m *CallRecordMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *CallRecordMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *CallRecordMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *CallRecordMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *CallRecordMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetDisplayCost sets the "display_cost" field.
func (m *CallRecordMutation) SetDisplayCost(s string) {
	m.display_cost = &s
}

// DisplayCost returns the value of the "display_cost" field in the mutation.
func (m *CallRecordMutation) DisplayCost() (r string, exists bool) {
	v := m.display_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayCost returns the old "display_cost" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldDisplayCost(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayCost: %w", err)
	}
	return oldValue.DisplayCost, nil
}

// ClearDisplayCost clears the value of the "display_cost" field.
func (m *CallRecordMutation) ClearDisplayCost() {
	m.display_cost = nil
	m.clearedFields[callrecord.FieldDisplayCost] = struct{}{}
}

// DisplayCostCleared returns if the "display_cost" field was cleared in this mutation.
func (m *CallRecordMutation) DisplayCostCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldDisplayCost]
	return ok
}

// ResetDisplayCost resets all changes to the "display_cost" field.
func (m *CallRecordMutation) ResetDisplayCost() {
	m.display_cost = nil
	delete(m.clearedFields, callrecord.FieldDisplayCost)
}

// SetAgentID sets the "agent_id" field.
func (m *CallRecordMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *CallRecordMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldAgentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *CallRecordMutation) ClearAgentID() {
	m.agent = nil
	m.clearedFields[callrecord.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *CallRecordMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *CallRecordMutation) ResetAgentID() {
	m.agent = nil
	delete(m.clearedFields, callrecord.FieldAgentID)
}

// SetPhoneNumberID sets the "phone_number_id" field.
func (m *CallRecordMutation) SetPhoneNumberID(i int) {
	m.phone_number = &i
}

// PhoneNumberID returns the value of the "phone_number_id" field in the mutation.
func (m *CallRecordMutation) PhoneNumberID() (r int, exists bool) {
	v := m.phone_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneNumberID returns the old "phone_number_id" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldPhoneNumberID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneNumberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneNumberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneNumberID: %w", err)
	}
	return oldValue.PhoneNumberID, nil
}

// ClearPhoneNumberID clears the value of the "phone_number_id" field.
func (m *CallRecordMutation) ClearPhoneNumberID() {
	m.phone_number = nil
	m.clearedFields[callrecord.FieldPhoneNumberID] = struct{}{}
}

// PhoneNumberIDCleared returns if the "phone_number_id" field was cleared in this mutation.
func (m *CallRecordMutation) PhoneNumberIDCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldPhoneNumberID]
	return ok
}

// ResetPhoneNumberID resets all changes to the "phone_number_id" field.
func (m *CallRecordMutation) ResetPhoneNumberID() {
	m.phone_number = nil
	delete(m.clearedFields, callrecord.FieldPhoneNumberID)
}

// SetContactName sets the "contact_name" field.
func (m *CallRecordMutation) SetContactName(s string) {
	m.contact_name = &s
}

// ContactName returns the value of the "contact_name" field in the mutation.
func (m *CallRecordMutation) ContactName() (r string, exists bool) {
	v := m.contact_name
	if v == nil {
		return
	}
	return *v, true
}

// OldContactName returns the old "contact_name" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldContactName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactName: %w", err)
	}
	return oldValue.ContactName, nil
}

// ResetContactName resets all changes to the "contact_name" field.
func (m *CallRecordMutation) ResetContactName() {
	m.contact_name = nil
}

// SetRecordingURL sets the "recording_url" field.
func (m *CallRecordMutation) SetRecordingURL(s string) {
	m.recording_url = &s
}

// RecordingURL returns the value of the "recording_url" field in the mutation.
func (m *CallRecordMutation) RecordingURL() (r string, exists bool) {
	v := m.recording_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordingURL returns the old "recording_url" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldRecordingURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordingURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordingURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordingURL: %w", err)
	}
	return oldValue.RecordingURL, nil
}

// ClearRecordingURL clears the value of the "recording_url" field.
func (m *CallRecordMutation) ClearRecordingURL() {
	m.recording_url = nil
	m.clearedFields[callrecord.FieldRecordingURL] = struct{}{}
}

// RecordingURLCleared returns if the "recording_url" field was cleared in this mutation.
func (m *CallRecordMutation) RecordingURLCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldRecordingURL]
	return ok
}

// ResetRecordingURL resets all changes to the "recording_url" field.
func (m *CallRecordMutation) ResetRecordingURL() {
	m.recording_url = nil
	delete(m.clearedFields, callrecord.FieldRecordingURL)
}

// SetTranscriptID sets the "transcript_id" field.
func (m *CallRecordMutation) SetTranscriptID(s string) {
	m.transcript_id = &s
}

// TranscriptID returns the value of the "transcript_id" field in the mutation.
func (m *CallRecordMutation) TranscriptID() (r string, exists bool) {
	v := m.transcript_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptID returns the old "transcript_id" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldTranscriptID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptID: %w", err)
	}
	return oldValue.TranscriptID, nil
}

// ClearTranscriptID clears the value of the "transcript_id" field.
func (m *CallRecordMutation) ClearTranscriptID() {
	m.transcript_id = nil
	m.clearedFields[callrecord.FieldTranscriptID] = struct{}{}
}

// TranscriptIDCleared returns if the "transcript_id" field was cleared in this mutation.
func (m *CallRecordMutation) TranscriptIDCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldTranscriptID]
	return ok
}

// ResetTranscriptID resets all changes to the "transcript_id" field.
func (m *CallRecordMutation) ResetTranscriptID() {
	m.transcript_id = nil
	delete(m.clearedFields, callrecord.FieldTranscriptID)
}

// SetMessageID sets the "message_id" field.
func (m *CallRecordMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *CallRecordMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ClearMessageID clears the value of the "message_id" field.
func (m *CallRecordMutation) ClearMessageID() {
	m.message_id = nil
	m.clearedFields[callrecord.FieldMessageID] = struct{}{}
}

// MessageIDCleared returns if the "message_id" field was cleared in this mutation.
func (m *CallRecordMutation) MessageIDCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldMessageID]
	return ok
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *CallRecordMutation) ResetMessageID() {
	m.message_id = nil
	delete(m.clearedFields, callrecord.FieldMessageID)
}

// SetIsTest sets the "is_test" field.
func (m *CallRecordMutation) SetIsTest(b bool) {
	m.is_test = &b
}

// IsTest returns the value of the "is_test" field in the mutation.
func (m *CallRecordMutation) IsTest() (r bool, exists bool) {
	v := m.is_test
	if v == nil {
		return
	}
	return *v, true
}

// OldIsTest returns the old "is_test" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldIsTest(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsTest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsTest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsTest: %w", err)
	}
	return oldValue.IsTest, nil
}

// ResetIsTest resets all changes to the "is_test" field.
func (m *CallRecordMutation) ResetIsTest() {
	m.is_test = nil
}

// SetStartedAt sets the "started_at" field.
func (m *CallRecordMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *CallRecordMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *CallRecordMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[callrecord.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *CallRecordMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *CallRecordMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, callrecord.FieldStartedAt)
}

// SetEndedAt sets the "ended_at" field.
func (m *CallRecordMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *CallRecordMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *CallRecordMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[callrecord.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *CallRecordMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *CallRecordMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, callrecord.FieldEndedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CallRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CallRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CallRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CallRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CallRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CallRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *CallRecordMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[callrecord.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *CallRecordMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *CallRecordMutation) TenantIDs() (ids []int) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *CallRecordMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *CallRecordMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[callrecord.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *CallRecordMutation) AgentCleared() bool {
	return m.AgentIDCleared() || m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *CallRecordMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *CallRecordMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// ClearPhoneNumber clears the "phone_number" edge to the PhoneNumber entity.
func (m *CallRecordMutation) ClearPhoneNumber() {
	m.clearedphone_number = true
	m.clearedFields[callrecord.FieldPhoneNumberID] = struct{}{}
}

// PhoneNumberCleared reports if the "phone_number" edge to the PhoneNumber entity was cleared.
func (m *CallRecordMutation) PhoneNumberCleared() bool {
	return m.PhoneNumberIDCleared() || m.clearedphone_number
}

// PhoneNumberIDs returns the "phone_number" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PhoneNumberID instead. It exists only for internal usage by the builders.
func (m *CallRecordMutation) PhoneNumberIDs() (ids []int) {
	if id := m.phone_number; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPhoneNumber resets all changes to the "phone_number" edge.
func (m *CallRecordMutation) ResetPhoneNumber() {
	m.phone_number = nil
	m.clearedphone_number = false
}

// SetUsageEntryID sets the "usage_entry" edge to the UsageLedgerEntry entity by id.
func (m *CallRecordMutation) SetUsageEntryID(id int) {
	m.usage_entry = &id
}

// ClearUsageEntry clears the "usage_entry" edge to the UsageLedgerEntry entity.
func (m *CallRecordMutation) ClearUsageEntry() {
	m.clearedusage_entry = true
}

// UsageEntryCleared reports if the "usage_entry" edge to the UsageLedgerEntry entity was cleared.
func (m *CallRecordMutation) UsageEntryCleared() bool {
	return m.clearedusage_entry
}

// UsageEntryID returns the "usage_entry" edge ID in the mutation.
func (m *CallRecordMutation) UsageEntryID() (id int, exists bool) {
	if m.usage_entry != nil {
		return *m.usage_entry, true
	}
	return
}

// UsageEntryIDs returns the "usage_entry" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UsageEntryID instead. It exists only for internal usage by the builders.
func (m *CallRecordMutation) UsageEntryIDs() (ids []int) {
	if id := m.usage_entry; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUsageEntry resets all changes to the "usage_entry" edge.
func (m *CallRecordMutation) ResetUsageEntry() {
	m.usage_entry = nil
	m.clearedusage_entry = false
}

// Where appends a list predicates to the CallRecordMutation builder.
func (m *CallRecordMutation) Where(ps ...predicate.CallRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CallRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CallRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CallRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CallRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CallRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CallRecord).
func (m *CallRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CallRecordMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.tenant != nil {
		fields = append(fields, callrecord.FieldTenantID)
	}
	if m.provider_call_id != nil {
		fields = append(fields, callrecord.FieldProviderCallID)
	}
	if m.direction != nil {
		fields = append(fields, callrecord.FieldDirection)
	}
	if m.from_number != nil {
		fields = append(fields, callrecord.FieldFromNumber)
	}
	if m.to_number != nil {
		fields = append(fields, callrecord.FieldToNumber)
	}
	if m.status != nil {
		fields = append(fields, callrecord.FieldStatus)
	}
	if m.duration != nil {
		fields = append(fields, callrecord.FieldDuration)
	}
	if m.cost != nil {
		fields = append(fields, callrecord.FieldCost)
	}
	if m.display_cost != nil {
		fields = append(fields, callrecord.FieldDisplayCost)
	}
	if m.agent != nil {
		fields = append(fields, callrecord.FieldAgentID)
	}
	if m.phone_number != nil {
		fields = append(fields, callrecord.FieldPhoneNumberID)
	}
	if m.contact_name != nil {
		fields = append(fields, callrecord.FieldContactName)
	}
	if m.recording_url != nil {
		fields = append(fields, callrecord.FieldRecordingURL)
	}
	if m.transcript_id != nil {
		fields = append(fields, callrecord.FieldTranscriptID)
	}
	if m.message_id != nil {
		fields = append(fields, callrecord.FieldMessageID)
	}
	if m.is_test != nil {
		fields = append(fields, callrecord.FieldIsTest)
	}
	if m.started_at != nil {
		fields = append(fields, callrecord.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, callrecord.FieldEndedAt)
	}
	if m.created_at != nil {
		fields = append(fields, callrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, callrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CallRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case callrecord.FieldTenantID:
		return m.TenantID()
	case callrecord.FieldProviderCallID:
		return m.ProviderCallID()
	case callrecord.FieldDirection:
		return m.Direction()
	case callrecord.FieldFromNumber:
		return m.FromNumber()
	case callrecord.FieldToNumber:
		return m.ToNumber()
	case callrecord.FieldStatus:
		return m.Status()
	case callrecord.FieldDuration:
		return m.Duration()
	case callrecord.FieldCost:
		return m.Cost()
	case callrecord.FieldDisplayCost:
		return m.DisplayCost()
	case callrecord.FieldAgentID:
		return m.AgentID()
	case callrecord.FieldPhoneNumberID:
		return m.PhoneNumberID()
	case callrecord.FieldContactName:
		return m.ContactName()
	case callrecord.FieldRecordingURL:
		return m.RecordingURL()
	case callrecord.FieldTranscriptID:
		return m.TranscriptID()
	case callrecord.FieldMessageID:
		return m.MessageID()
	case callrecord.FieldIsTest:
		return m.IsTest()
	case callrecord.FieldStartedAt:
		return m.StartedAt()
	case callrecord.FieldEndedAt:
		return m.EndedAt()
	case callrecord.FieldCreatedAt:
		return m.CreatedAt()
	case callrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CallRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case callrecord.FieldTenantID:
		return m.OldTenantID(ctx)
	case callrecord.FieldProviderCallID:
		return m.OldProviderCallID(ctx)
	case callrecord.FieldDirection:
		return m.OldDirection(ctx)
	case callrecord.FieldFromNumber:
		return m.OldFromNumber(ctx)
	case callrecord.FieldToNumber:
		return m.OldToNumber(ctx)
	case callrecord.FieldStatus:
		return m.OldStatus(ctx)
	case callrecord.FieldDuration:
		return m.OldDuration(ctx)
	case callrecord.FieldCost:
		return m.OldCost(ctx)
	case callrecord.FieldDisplayCost:
		return m.OldDisplayCost(ctx)
	case callrecord.FieldAgentID:
		return m.OldAgentID(ctx)
	case callrecord.FieldPhoneNumberID:
		return m.OldPhoneNumberID(ctx)
	case callrecord.FieldContactName:
		return m.OldContactName(ctx)
	case callrecord.FieldRecordingURL:
		return m.OldRecordingURL(ctx)
	case callrecord.FieldTranscriptID:
		return m.OldTranscriptID(ctx)
	case callrecord.FieldMessageID:
		return m.OldMessageID(ctx)
	case callrecord.FieldIsTest:
		return m.OldIsTest(ctx)
	case callrecord.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case callrecord.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case callrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case callrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CallRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case callrecord.FieldTenantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case callrecord.FieldProviderCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderCallID(v)
		return nil
	case callrecord.FieldDirection:
		v, ok := value.(callrecord.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case callrecord.FieldFromNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromNumber(v)
		return nil
	case callrecord.FieldToNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToNumber(v)
		return nil
	case callrecord.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case callrecord.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case callrecord.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case callrecord.FieldDisplayCost:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayCost(v)
		return nil
	case callrecord.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case callrecord.FieldPhoneNumberID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneNumberID(v)
		return nil
	case callrecord.FieldContactName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactName(v)
		return nil
	case callrecord.FieldRecordingURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordingURL(v)
		return nil
	case callrecord.FieldTranscriptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptID(v)
		return nil
	case callrecord.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case callrecord.FieldIsTest:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsTest(v)
		return nil
	case callrecord.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case callrecord.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case callrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case callrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CallRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CallRecordMutation) AddedFields() []string {
	var fields []string
	if m.addduration != nil {
		fields = append(fields, callrecord.FieldDuration)
	}
	if m.addcost != nil {
		fields = append(fields, callrecord.FieldCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CallRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case callrecord.FieldDuration:
		return m.AddedDuration()
	case callrecord.FieldCost:
		return m.AddedCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case callrecord.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	case callrecord.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	}
	return fmt.Errorf("unknown CallRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CallRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(callrecord.FieldToNumber) {
		fields = append(fields, callrecord.FieldToNumber)
	}
	if m.FieldCleared(callrecord.FieldStatus) {
		fields = append(fields, callrecord.FieldStatus)
	}
	if m.FieldCleared(callrecord.FieldDisplayCost) {
		fields = append(fields, callrecord.FieldDisplayCost)
	}
	if m.FieldCleared(callrecord.FieldAgentID) {
		fields = append(fields, callrecord.FieldAgentID)
	}
	if m.FieldCleared(callrecord.FieldPhoneNumberID) {
		fields = append(fields, callrecord.FieldPhoneNumberID)
	}
	if m.FieldCleared(callrecord.FieldRecordingURL) {
		fields = append(fields, callrecord.FieldRecordingURL)
	}
	if m.FieldCleared(callrecord.FieldTranscriptID) {
		fields = append(fields, callrecord.FieldTranscriptID)
	}
	if m.FieldCleared(callrecord.FieldMessageID) {
		fields = append(fields, callrecord.FieldMessageID)
	}
	if m.FieldCleared(callrecord.FieldStartedAt) {
		fields = append(fields, callrecord.FieldStartedAt)
	}
	if m.FieldCleared(callrecord.FieldEndedAt) {
		fields = append(fields, callrecord.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CallRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CallRecordMutation) ClearField(name string) error {
	switch name {
	case callrecord.FieldToNumber:
		m.ClearToNumber()
		return nil
	case callrecord.FieldStatus:
		m.ClearStatus()
		return nil
	case callrecord.FieldDisplayCost:
		m.ClearDisplayCost()
		return nil
	case callrecord.FieldAgentID:
		m.ClearAgentID()
		return nil
	case callrecord.FieldPhoneNumberID:
		m.ClearPhoneNumberID()
		return nil
	case callrecord.FieldRecordingURL:
		m.ClearRecordingURL()
		return nil
	case callrecord.FieldTranscriptID:
		m.ClearTranscriptID()
		return nil
	case callrecord.FieldMessageID:
		m.ClearMessageID()
		return nil
	case callrecord.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case callrecord.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown CallRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CallRecordMutation) ResetField(name string) error {
	switch name {
	case callrecord.FieldTenantID:
		m.ResetTenantID()
		return nil
	case callrecord.FieldProviderCallID:
		m.ResetProviderCallID()
		return nil
	case callrecord.FieldDirection:
		m.ResetDirection()
		return nil
	case callrecord.FieldFromNumber:
		m.ResetFromNumber()
		return nil
	case callrecord.FieldToNumber:
		m.ResetToNumber()
		return nil
	case callrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case callrecord.FieldDuration:
		m.ResetDuration()
		return nil
	case callrecord.FieldCost:
		m.ResetCost()
		return nil
	case callrecord.FieldDisplayCost:
		m.ResetDisplayCost()
		return nil
	case callrecord.FieldAgentID:
		m.ResetAgentID()
		return nil
	case callrecord.FieldPhoneNumberID:
		m.ResetPhoneNumberID()
		return nil
	case callrecord.FieldContactName:
		m.ResetContactName()
		return nil
	case callrecord.FieldRecordingURL:
		m.ResetRecordingURL()
		return nil
	case callrecord.FieldTranscriptID:
		m.ResetTranscriptID()
		return nil
	case callrecord.FieldMessageID:
		m.ResetMessageID()
		return nil
	case callrecord.FieldIsTest:
		m.ResetIsTest()
		return nil
	case callrecord.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case callrecord.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case callrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case callrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CallRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CallRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.tenant != nil {
		edges = append(edges, callrecord.EdgeTenant)
	}
	if m.agent != nil {
		edges = append(edges, callrecord.EdgeAgent)
	}
	if m.phone_number != nil {
		edges = append(edges, callrecord.EdgePhoneNumber)
	}
	if m.usage_entry != nil {
		edges = append(edges, callrecord.EdgeUsageEntry)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CallRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case callrecord.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case callrecord.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case callrecord.EdgePhoneNumber:
		if id := m.phone_number; id != nil {
			return []ent.Value{*id}
		}
	case callrecord.EdgeUsageEntry:
		if id := m.usage_entry; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CallRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CallRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CallRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedtenant {
		edges = append(edges, callrecord.EdgeTenant)
	}
	if m.clearedagent {
		edges = append(edges, callrecord.EdgeAgent)
	}
	if m.clearedphone_number {
		edges = append(edges, callrecord.EdgePhoneNumber)
	}
	if m.clearedusage_entry {
		edges = append(edges, callrecord.EdgeUsageEntry)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CallRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case callrecord.EdgeTenant:
		return m.clearedtenant
	case callrecord.EdgeAgent:
		return m.clearedagent
	case callrecord.EdgePhoneNumber:
		return m.clearedphone_number
	case callrecord.EdgeUsageEntry:
		return m.clearedusage_entry
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CallRecordMutation) ClearEdge(name string) error {
	switch name {
	case callrecord.EdgeTenant:
		m.ClearTenant()
		return nil
	case callrecord.EdgeAgent:
		m.ClearAgent()
		return nil
	case callrecord.EdgePhoneNumber:
		m.ClearPhoneNumber()
		return nil
	case callrecord.EdgeUsageEntry:
		m.ClearUsageEntry()
		return nil
	}
	return fmt.Errorf("unknown CallRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CallRecordMutation) ResetEdge(name string) error {
	switch name {
	case callrecord.EdgeTenant:
		m.ResetTenant()
		return nil
	case callrecord.EdgeAgent:
		m.ResetAgent()
		return nil
	case callrecord.EdgePhoneNumber:
		m.ResetPhoneNumber()
		return nil
	case callrecord.EdgeUsageEntry:
		m.ResetUsageEntry()
		return nil
	}
	return fmt.Errorf("unknown CallRecord edge %s", name)
}

// DeletedCallMutation represents an operation that mutates the DeletedCall nodes in the graph.
type DeletedCallMutation struct {
	config
	op               Op
	typ              string
	id               *int
	tenant_id        *int
	addtenant_id     *int
	provider_call_id *string
	deleted_by       *int
	adddeleted_by    *int
	deleted_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*DeletedCall, error)
	predicates       []predicate.DeletedCall
}

var _ ent.Mutation = (*DeletedCallMutation)(nil)

// deletedcallOption allows management of the mutation configuration using functional options.
type deletedcallOption func(*DeletedCallMutation)

// newDeletedCallMutation creates new mutation for the DeletedCall entity.
func newDeletedCallMutation(c config, op Op, opts ...deletedcallOption) *DeletedCallMutation {
	m := &DeletedCallMutation{
		config:        c,
		op:            op,
		typ:           TypeDeletedCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeletedCallID sets the ID field of the mutation.
func withDeletedCallID(id int) deletedcallOption {
	return func(m *DeletedCallMutation) {
		var (
			err   error
			once  sync.Once
			value *DeletedCall
		)
		m.oldValue = func(ctx context.Context) (*DeletedCall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeletedCall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeletedCall sets the old DeletedCall of the mutation.
func withDeletedCall(node *DeletedCall) deletedcallOption {
	return func(m *DeletedCallMutation) {
		m.oldValue = func(context.Context) (*DeletedCall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeletedCallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeletedCallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeletedCallMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeletedCallMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeletedCall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *DeletedCallMutation) SetTenantID(i int) {
	m.tenant_id = &i
	m.addtenant_id = nil
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *DeletedCallMutation) TenantID() (r int, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the DeletedCall entity.
// If the DeletedCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletedCallMutation) OldTenantID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// AddTenantID adds i to the "tenant_id" field.
func (m *DeletedCallMutation) AddTenantID(i int) {
	if m.addtenant_id != nil {
		*m.addtenant_id += i
	} else {
		m.addtenant_id = &i
	}
}

// AddedTenantID returns the value that was added to the "tenant_id" field in this mutation.
func (m *DeletedCallMutation) AddedTenantID() (r int, exists bool) {
	v := m.addtenant_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *DeletedCallMutation) ResetTenantID() {
	m.tenant_id = nil
	m.addtenant_id = nil
}

// SetProviderCallID sets the "provider_call_id" field.
func (m *DeletedCallMutation) SetProviderCallID(s string) {
	m.provider_call_id = &s
}

// ProviderCallID returns the value of the "provider_call_id" field in the mutation.
func (m *DeletedCallMutation) ProviderCallID() (r string, exists bool) {
	v := m.provider_call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderCallID returns the old "provider_call_id" field's value of the DeletedCall entity.
// If the DeletedCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletedCallMutation) OldProviderCallID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderCallID: %w", err)
	}
	return oldValue.ProviderCallID, nil
}

// ResetProviderCallID resets all changes to the "provider_call_id" field.
func (m *DeletedCallMutation) ResetProviderCallID() {
	m.provider_call_id = nil
}

// SetDeletedBy sets the "deleted_by" field.
func (m *DeletedCallMutation) SetDeletedBy(i int) {
	m.deleted_by = &i
	m.adddeleted_by = nil
}

// DeletedBy returns the value of the "deleted_by" field in the mutation.
func (m *DeletedCallMutation) DeletedBy() (r int, exists bool) {
	v := m.deleted_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedBy returns the old "deleted_by" field's value of the DeletedCall entity.
// If the DeletedCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletedCallMutation) OldDeletedBy(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedBy: %w", err)
	}
	return oldValue.DeletedBy, nil
}

// AddDeletedBy adds i to the "deleted_by" field.
func (m *DeletedCallMutation) AddDeletedBy(i int) {
	if m.adddeleted_by != nil {
		*m.adddeleted_by += i
	} else {
		m.adddeleted_by = &i
	}
}

// AddedDeletedBy returns the value that was added to the "deleted_by" field in this mutation.
func (m *DeletedCallMutation) AddedDeletedBy() (r int, exists bool) {
	v := m.adddeleted_by
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeletedBy clears the value of the "deleted_by" field.
func (m *DeletedCallMutation) ClearDeletedBy() {
	m.deleted_by = nil
	m.adddeleted_by = nil
	m.clearedFields[deletedcall.FieldDeletedBy] = struct{}{}
}

// DeletedByCleared returns if the "deleted_by" field was cleared in this mutation.
func (m *DeletedCallMutation) DeletedByCleared() bool {
	_, ok := m.clearedFields[deletedcall.FieldDeletedBy]
	return ok
}

// ResetDeletedBy resets all changes to the "deleted_by" field.
func (m *DeletedCallMutation) ResetDeletedBy() {
	m.deleted_by = nil
	m.adddeleted_by = nil
	delete(m.clearedFields, deletedcall.FieldDeletedBy)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *DeletedCallMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *DeletedCallMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the DeletedCall entity.
// If the DeletedCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletedCallMutation) OldDeletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *DeletedCallMutation) ResetDeletedAt() {
	m.deleted_at = nil
}

// Where appends a list predicates to the DeletedCallMutation builder.
func (m *DeletedCallMutation) Where(ps ...predicate.DeletedCall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeletedCallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeletedCallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeletedCall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeletedCallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeletedCallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeletedCall).
func (m *DeletedCallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeletedCallMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.tenant_id != nil {
		fields = append(fields, deletedcall.FieldTenantID)
	}
	if m.provider_call_id != nil {
		fields = append(fields, deletedcall.FieldProviderCallID)
	}
	if m.deleted_by != nil {
		fields = append(fields, deletedcall.FieldDeletedBy)
	}
	if m.deleted_at != nil {
		fields = append(fields, deletedcall.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeletedCallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deletedcall.FieldTenantID:
		return m.TenantID()
	case deletedcall.FieldProviderCallID:
		return m.ProviderCallID()
	case deletedcall.FieldDeletedBy:
		return m.DeletedBy()
	case deletedcall.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeletedCallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deletedcall.FieldTenantID:
		return m.OldTenantID(ctx)
	case deletedcall.FieldProviderCallID:
		return m.OldProviderCallID(ctx)
	case deletedcall.FieldDeletedBy:
		return m.OldDeletedBy(ctx)
	case deletedcall.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeletedCall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeletedCallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deletedcall.FieldTenantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case deletedcall.FieldProviderCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderCallID(v)
		return nil
	case deletedcall.FieldDeletedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedBy(v)
		return nil
	case deletedcall.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeletedCall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeletedCallMutation) AddedFields() []string {
	var fields []string
	if m.addtenant_id != nil {
		fields = append(fields, deletedcall.FieldTenantID)
	}
	if m.adddeleted_by != nil {
		fields = append(fields, deletedcall.FieldDeletedBy)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeletedCallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deletedcall.FieldTenantID:
		return m.AddedTenantID()
	case deletedcall.FieldDeletedBy:
		return m.AddedDeletedBy()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeletedCallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deletedcall.FieldTenantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTenantID(v)
		return nil
	case deletedcall.FieldDeletedBy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeletedBy(v)
		return nil
	}
	return fmt.Errorf("unknown DeletedCall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeletedCallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deletedcall.FieldDeletedBy) {
		fields = append(fields, deletedcall.FieldDeletedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeletedCallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeletedCallMutation) ClearField(name string) error {
	switch name {
	case deletedcall.FieldDeletedBy:
		m.ClearDeletedBy()
		return nil
	}
	return fmt.Errorf("unknown DeletedCall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeletedCallMutation) ResetField(name string) error {
	switch name {
	case deletedcall.FieldTenantID:
		m.ResetTenantID()
		return nil
	case deletedcall.FieldProviderCallID:
		m.ResetProviderCallID()
		return nil
	case deletedcall.FieldDeletedBy:
		m.ResetDeletedBy()
		return nil
	case deletedcall.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown DeletedCall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeletedCallMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeletedCallMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeletedCallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeletedCallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeletedCallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeletedCallMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeletedCallMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DeletedCall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeletedCallMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DeletedCall edge %s", name)
}

// PhoneNumberMutation represents an operation that mutates the PhoneNumber nodes in the graph.
type PhoneNumberMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	number              *string
	normalized          *string
	label               *string
	active              *bool
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	tenant              *int
	clearedtenant       bool
	agent               *int
	clearedagent        bool
	call_records        map[int]struct{}
	removedcall_records map[int]struct{}
	clearedcall_records bool
	done                bool
	oldValue            func(context.Context) (*PhoneNumber, error)
	predicates          []predicate.PhoneNumber
}

var _ ent.Mutation = (*PhoneNumberMutation)(nil)

// phonenumberOption allows management of the mutation configuration using functional options.
type phonenumberOption func(*PhoneNumberMutation)

// newPhoneNumberMutation creates new mutation for the PhoneNumber entity.
func newPhoneNumberMutation(c config, op Op, opts ...phonenumberOption) *PhoneNumberMutation {
	m := &PhoneNumberMutation{
		config:        c,
		op:            op,
		typ:           TypePhoneNumber,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPhoneNumberID sets the ID field of the mutation.
func withPhoneNumberID(id int) phonenumberOption {
	return func(m *PhoneNumberMutation) {
		var (
			err   error
			once  sync.Once
			value *PhoneNumber
		)
		m.oldValue = func(ctx context.Context) (*PhoneNumber, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PhoneNumber.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPhoneNumber sets the old PhoneNumber of the mutation.
func withPhoneNumber(node *PhoneNumber) phonenumberOption {
	return func(m *PhoneNumberMutation) {
		m.oldValue = func(context.Context) (*PhoneNumber, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PhoneNumberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PhoneNumberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PhoneNumberMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PhoneNumberMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PhoneNumber.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *PhoneNumberMutation) SetTenantID(i int) {
	m.tenant = &i
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *PhoneNumberMutation) TenantID() (r int, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the PhoneNumber entity.
// If the PhoneNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhoneNumberMutation) OldTenantID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *PhoneNumberMutation) ResetTenantID() {
	m.tenant = nil
}

// SetAgentID sets the "agent_id" field.
func (m *PhoneNumberMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *PhoneNumberMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the PhoneNumber entity.
// If the PhoneNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhoneNumberMutation) OldAgentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *PhoneNumberMutation) ClearAgentID() {
	m.agent = nil
	m.clearedFields[phonenumber.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *PhoneNumberMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[phonenumber.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *PhoneNumberMutation) ResetAgentID() {
	m.agent = nil
	delete(m.clearedFields, phonenumber.FieldAgentID)
}

// SetNumber sets the "number" field.
func (m *PhoneNumberMutation) SetNumber(s string) {
	m.number = &s
}

// Number returns the value of the "number" field in the mutation.
func (m *PhoneNumberMutation) Number() (r string, exists bool) {
	v := m.number
	if v == nil {
		return
	}
	return *v, true
}

// OldNumber returns the old "number" field's value of the PhoneNumber entity.
// If the PhoneNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhoneNumberMutation) OldNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumber: %w", err)
	}
	return oldValue.Number, nil
}

// ResetNumber resets all changes to the "number" field.
func (m *PhoneNumberMutation) ResetNumber() {
	m.number = nil
}

// SetNormalized sets the "normalized" field.
func (m *PhoneNumberMutation) SetNormalized(s string) {
	m.normalized = &s
}

// Normalized returns the value of the "normalized" field in the mutation.
func (m *PhoneNumberMutation) Normalized() (r string, exists bool) {
	v := m.normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalized returns the old "normalized" field's value of the PhoneNumber entity.
// If the PhoneNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhoneNumberMutation) OldNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalized: %w", err)
	}
	return oldValue.Normalized, nil
}

// ResetNormalized resets all changes to the "normalized" field.
func (m *PhoneNumberMutation) ResetNormalized() {
	m.normalized = nil
}

// SetLabel sets the "label" field.
func (m *PhoneNumberMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *PhoneNumberMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the PhoneNumber entity.
// If the PhoneNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhoneNumberMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ClearLabel clears the value of the "label" field.
func (m *PhoneNumberMutation) ClearLabel() {
	m.label = nil
	m.clearedFields[phonenumber.FieldLabel] = struct{}{}
}

// LabelCleared returns if the "label" field was cleared in this mutation.
func (m *PhoneNumberMutation) LabelCleared() bool {
	_, ok := m.clearedFields[phonenumber.FieldLabel]
	return ok
}

// ResetLabel resets all changes to the "label" field.
func (m *PhoneNumberMutation) ResetLabel() {
	m.label = nil
	delete(m.clearedFields, phonenumber.FieldLabel)
}

// SetActive sets the "active" field.
func (m *PhoneNumberMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *PhoneNumberMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the PhoneNumber entity.
// If the PhoneNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhoneNumberMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *PhoneNumberMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PhoneNumberMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PhoneNumberMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PhoneNumber entity.
// If the PhoneNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhoneNumberMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PhoneNumberMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PhoneNumberMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PhoneNumberMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PhoneNumber entity.
// If the PhoneNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhoneNumberMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PhoneNumberMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *PhoneNumberMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[phonenumber.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *PhoneNumberMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *PhoneNumberMutation) TenantIDs() (ids []int) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *PhoneNumberMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *PhoneNumberMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[phonenumber.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *PhoneNumberMutation) AgentCleared() bool {
	return m.AgentIDCleared() || m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *PhoneNumberMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *PhoneNumberMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// AddCallRecordIDs adds the "call_records" edge to the CallRecord entity by ids.
func (m *PhoneNumberMutation) AddCallRecordIDs(ids ...int) {
	if m.call_records == nil {
		m.call_records = make(map[int]struct{})
	}
	for i := range ids {
		m.call_records[ids[i]] = struct{}{}
	}
}

// ClearCallRecords clears the "call_records" edge to the CallRecord entity.
func (m *PhoneNumberMutation) ClearCallRecords() {
	m.clearedcall_records = true
}

// CallRecordsCleared reports if the "call_records" edge to the CallRecord entity was cleared.
func (m *PhoneNumberMutation) CallRecordsCleared() bool {
	return m.clearedcall_records
}

// RemoveCallRecordIDs removes the "call_records" edge to the CallRecord entity by IDs.
func (m *PhoneNumberMutation) RemoveCallRecordIDs(ids ...int) {
	if m.removedcall_records == nil {
		m.removedcall_records = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.call_records, ids[i])
		m.removedcall_records[ids[i]] = struct{}{}
	}
}

// RemovedCallRecords returns the removed IDs of the "call_records" edge to the CallRecord entity.
func (m *PhoneNumberMutation) RemovedCallRecordsIDs() (ids []int) {
	for id := range m.removedcall_records {
		ids = append(ids, id)
	}
	return
}

// CallRecordsIDs returns the "call_records" edge IDs in the mutation.
func (m *PhoneNumberMutation) CallRecordsIDs() (ids []int) {
	for id := range m.call_records {
		ids = append(ids, id)
	}
	return
}

// ResetCallRecords resets all changes to the "call_records" edge.
func (m *PhoneNumberMutation) ResetCallRecords() {
	m.call_records = nil
	m.clearedcall_records = false
	m.removedcall_records = nil
}

// Where appends a list predicates to the PhoneNumberMutation builder.
func (m *PhoneNumberMutation) Where(ps ...predicate.PhoneNumber) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PhoneNumberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PhoneNumberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PhoneNumber, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PhoneNumberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PhoneNumberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PhoneNumber).
func (m *PhoneNumberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PhoneNumberMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant != nil {
		fields = append(fields, phonenumber.FieldTenantID)
	}
	if m.agent != nil {
		fields = append(fields, phonenumber.FieldAgentID)
	}
	if m.number != nil {
		fields = append(fields, phonenumber.FieldNumber)
	}
	if m.normalized != nil {
		fields = append(fields, phonenumber.FieldNormalized)
	}
	if m.label != nil {
		fields = append(fields, phonenumber.FieldLabel)
	}
	if m.active != nil {
		fields = append(fields, phonenumber.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, phonenumber.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, phonenumber.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PhoneNumberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case phonenumber.FieldTenantID:
		return m.TenantID()
	case phonenumber.FieldAgentID:
		return m.AgentID()
	case phonenumber.FieldNumber:
		return m.Number()
	case phonenumber.FieldNormalized:
		return m.Normalized()
	case phonenumber.FieldLabel:
		return m.Label()
	case phonenumber.FieldActive:
		return m.Active()
	case phonenumber.FieldCreatedAt:
		return m.CreatedAt()
	case phonenumber.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PhoneNumberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case phonenumber.FieldTenantID:
		return m.OldTenantID(ctx)
	case phonenumber.FieldAgentID:
		return m.OldAgentID(ctx)
	case phonenumber.FieldNumber:
		return m.OldNumber(ctx)
	case phonenumber.FieldNormalized:
		return m.OldNormalized(ctx)
	case phonenumber.FieldLabel:
		return m.OldLabel(ctx)
	case phonenumber.FieldActive:
		return m.OldActive(ctx)
	case phonenumber.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case phonenumber.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PhoneNumber field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhoneNumberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case phonenumber.FieldTenantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case phonenumber.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case phonenumber.FieldNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumber(v)
		return nil
	case phonenumber.FieldNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalized(v)
		return nil
	case phonenumber.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case phonenumber.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case phonenumber.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case phonenumber.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PhoneNumber field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PhoneNumberMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PhoneNumberMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhoneNumberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PhoneNumber numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PhoneNumberMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(phonenumber.FieldAgentID) {
		fields = append(fields, phonenumber.FieldAgentID)
	}
	if m.FieldCleared(phonenumber.FieldLabel) {
		fields = append(fields, phonenumber.FieldLabel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PhoneNumberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PhoneNumberMutation) ClearField(name string) error {
	switch name {
	case phonenumber.FieldAgentID:
		m.ClearAgentID()
		return nil
	case phonenumber.FieldLabel:
		m.ClearLabel()
		return nil
	}
	return fmt.Errorf("unknown PhoneNumber nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PhoneNumberMutation) ResetField(name string) error {
	switch name {
	case phonenumber.FieldTenantID:
		m.ResetTenantID()
		return nil
	case phonenumber.FieldAgentID:
		m.ResetAgentID()
		return nil
	case phonenumber.FieldNumber:
		m.ResetNumber()
		return nil
	case phonenumber.FieldNormalized:
		m.ResetNormalized()
		return nil
	case phonenumber.FieldLabel:
		m.ResetLabel()
		return nil
	case phonenumber.FieldActive:
		m.ResetActive()
		return nil
	case phonenumber.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case phonenumber.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PhoneNumber field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PhoneNumberMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.tenant != nil {
		edges = append(edges, phonenumber.EdgeTenant)
	}
	if m.agent != nil {
		edges = append(edges, phonenumber.EdgeAgent)
	}
	if m.call_records != nil {
		edges = append(edges, phonenumber.EdgeCallRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PhoneNumberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case phonenumber.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case phonenumber.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case phonenumber.EdgeCallRecords:
		ids := make([]ent.Value, 0, len(m.call_records))
		for id := range m.call_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PhoneNumberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedcall_records != nil {
		edges = append(edges, phonenumber.EdgeCallRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PhoneNumberMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case phonenumber.EdgeCallRecords:
		ids := make([]ent.Value, 0, len(m.removedcall_records))
		for id := range m.removedcall_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PhoneNumberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtenant {
		edges = append(edges, phonenumber.EdgeTenant)
	}
	if m.clearedagent {
		edges = append(edges, phonenumber.EdgeAgent)
	}
	if m.clearedcall_records {
		edges = append(edges, phonenumber.EdgeCallRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PhoneNumberMutation) EdgeCleared(name string) bool {
	switch name {
	case phonenumber.EdgeTenant:
		return m.clearedtenant
	case phonenumber.EdgeAgent:
		return m.clearedagent
	case phonenumber.EdgeCallRecords:
		return m.clearedcall_records
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PhoneNumberMutation) ClearEdge(name string) error {
	switch name {
	case phonenumber.EdgeTenant:
		m.ClearTenant()
		return nil
	case phonenumber.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown PhoneNumber unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PhoneNumberMutation) ResetEdge(name string) error {
	switch name {
	case phonenumber.EdgeTenant:
		m.ResetTenant()
		return nil
	case phonenumber.EdgeAgent:
		m.ResetAgent()
		return nil
	case phonenumber.EdgeCallRecords:
		m.ResetCallRecords()
		return nil
	}
	return fmt.Errorf("unknown PhoneNumber edge %s", name)
}

// SyncRunMutation represents an operation that mutates the SyncRun nodes in the graph.
type SyncRunMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	kind                  *syncrun.Kind
	status                *syncrun.Status
	requested_start       *time.Time
	requested_end         *time.Time
	effective_start       *time.Time
	effective_end         *time.Time
	timezone              *string
	bypassed_cutoff_at    *time.Time
	page_trace            *[]models.PageTrace
	appendpage_trace      []models.PageTrace
	log_lines             *[]string
	appendlog_lines       []string
	skip_counts           *map[string]int
	skipped_samples       *[]map[string]interface{}
	appendskipped_samples []map[string]interface{}
	total                 *int
	addtotal              *int
	inserted              *int
	addinserted           *int
	updated               *int
	addupdated            *int
	skipped               *int
	addskipped            *int
	api_ms                *int64
	addapi_ms             *int64
	total_ms              *int64
	addtotal_ms           *int64
	error                 *string
	triggered_by          *string
	started_at            *time.Time
	finished_at           *time.Time
	clearedFields         map[string]struct{}
	tenant                *int
	clearedtenant         bool
	done                  bool
	oldValue              func(context.Context) (*SyncRun, error)
	predicates            []predicate.SyncRun
}

var _ ent.Mutation = (*SyncRunMutation)(nil)

// syncrunOption allows management of the mutation configuration using functional options.
type syncrunOption func(*SyncRunMutation)

// newSyncRunMutation creates new mutation for the SyncRun entity.
func newSyncRunMutation(c config, op Op, opts ...syncrunOption) *SyncRunMutation {
	m := &SyncRunMutation{
		config:        c,
		op:            op,
		typ:           TypeSyncRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSyncRunID sets the ID field of the mutation.
func withSyncRunID(id int) syncrunOption {
	return func(m *SyncRunMutation) {
		var (
			err   error
			once  sync.Once
			value *SyncRun
		)
		m.oldValue = func(ctx context.Context) (*SyncRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SyncRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSyncRun sets the old SyncRun of the mutation.
func withSyncRun(node *SyncRun) syncrunOption {
	return func(m *SyncRunMutation) {
		m.oldValue = func(context.Context) (*SyncRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SyncRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SyncRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SyncRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SyncRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SyncRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *SyncRunMutation) SetTenantID(i int) {
	m.tenant = &i
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *SyncRunMutation) TenantID() (r int, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldTenantID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *SyncRunMutation) ResetTenantID() {
	m.tenant = nil
}

// SetKind sets the "kind" field.
func (m *SyncRunMutation) SetKind(s syncrun.Kind) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *SyncRunMutation) Kind() (r syncrun.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldKind(ctx context.Context) (v syncrun.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *SyncRunMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *SyncRunMutation) SetStatus(s syncrun.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SyncRunMutation) Status() (r syncrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldStatus(ctx context.Context) (v syncrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SyncRunMutation) ResetStatus() {
	m.status = nil
}

// SetRequestedStart sets the "requested_start" field.
func (m *SyncRunMutation) SetRequestedStart(t time.Time) {
	m.requested_start = &t
}

// RequestedStart returns the value of the "requested_start" field in the mutation.
func (m *SyncRunMutation) RequestedStart() (r time.Time, exists bool) {
	v := m.requested_start
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedStart returns the old "requested_start" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldRequestedStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedStart: %w", err)
	}
	return oldValue.RequestedStart, nil
}

// ClearRequestedStart clears the value of the "requested_start" field.
func (m *SyncRunMutation) ClearRequestedStart() {
	m.requested_start = nil
	m.clearedFields[syncrun.FieldRequestedStart] = struct{}{}
}

// RequestedStartCleared returns if the "requested_start" field was cleared in this mutation.
func (m *SyncRunMutation) RequestedStartCleared() bool {
	_, ok := m.clearedFields[syncrun.FieldRequestedStart]
	return ok
}

// ResetRequestedStart resets all changes to the "requested_start" field.
func (m *SyncRunMutation) ResetRequestedStart() {
	m.requested_start = nil
	delete(m.clearedFields, syncrun.FieldRequestedStart)
}

// SetRequestedEnd sets the "requested_end" field.
func (m *SyncRunMutation) SetRequestedEnd(t time.Time) {
	m.requested_end = &t
}

// RequestedEnd returns the value of the "requested_end" field in the mutation.
func (m *SyncRunMutation) RequestedEnd() (r time.Time, exists bool) {
	v := m.requested_end
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedEnd returns the old "requested_end" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldRequestedEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedEnd: %w", err)
	}
	return oldValue.RequestedEnd, nil
}

// ClearRequestedEnd clears the value of the "requested_end" field.
func (m *SyncRunMutation) ClearRequestedEnd() {
	m.requested_end = nil
	m.clearedFields[syncrun.FieldRequestedEnd] = struct{}{}
}

// RequestedEndCleared returns if the "requested_end" field was cleared in this mutation.
func (m *SyncRunMutation) RequestedEndCleared() bool {
	_, ok := m.clearedFields[syncrun.FieldRequestedEnd]
	return ok
}

// ResetRequestedEnd resets all changes to the "requested_end" field.
func (m *SyncRunMutation) ResetRequestedEnd() {
	m.requested_end = nil
	delete(m.clearedFields, syncrun.FieldRequestedEnd)
}

// SetEffectiveStart sets the "effective_start" field.
func (m *SyncRunMutation) SetEffectiveStart(t time.Time) {
	m.effective_start = &t
}

// EffectiveStart returns the value of the "effective_start" field in the mutation.
func (m *SyncRunMutation) EffectiveStart() (r time.Time, exists bool) {
	v := m.effective_start
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveStart returns the old "effective_start" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldEffectiveStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveStart: %w", err)
	}
	return oldValue.EffectiveStart, nil
}

// ClearEffectiveStart clears the value of the "effective_start" field.
func (m *SyncRunMutation) ClearEffectiveStart() {
	m.effective_start = nil
	m.clearedFields[syncrun.FieldEffectiveStart] = struct{}{}
}

// EffectiveStartCleared returns if the "effective_start" field was cleared in this mutation.
func (m *SyncRunMutation) EffectiveStartCleared() bool {
	_, ok := m.clearedFields[syncrun.FieldEffectiveStart]
	return ok
}

// ResetEffectiveStart resets all changes to the "effective_start" field.
func (m *SyncRunMutation) ResetEffectiveStart() {
	m.effective_start = nil
	delete(m.clearedFields, syncrun.FieldEffectiveStart)
}

// SetEffectiveEnd sets the "effective_end" field.
func (m *SyncRunMutation) SetEffectiveEnd(t time.Time) {
	m.effective_end = &t
}

// EffectiveEnd returns the value of the "effective_end" field in the mutation.
func (m *SyncRunMutation) EffectiveEnd() (r time.Time, exists bool) {
	v := m.effective_end
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveEnd returns the old "effective_end" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldEffectiveEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveEnd: %w", err)
	}
	return oldValue.EffectiveEnd, nil
}

// ClearEffectiveEnd clears the value of the "effective_end" field.
func (m *SyncRunMutation) ClearEffectiveEnd() {
	m.effective_end = nil
	m.clearedFields[syncrun.FieldEffectiveEnd] = struct{}{}
}

// EffectiveEndCleared returns if the "effective_end" field was cleared in this mutation.
func (m *SyncRunMutation) EffectiveEndCleared() bool {
	_, ok := m.clearedFields[syncrun.FieldEffectiveEnd]
	return ok
}

// ResetEffectiveEnd resets all changes to the "effective_end" field.
func (m *SyncRunMutation) ResetEffectiveEnd() {
	m.effective_end = nil
	delete(m.clearedFields, syncrun.FieldEffectiveEnd)
}

// SetTimezone sets the "timezone" field.
func (m *SyncRunMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *SyncRunMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *SyncRunMutation) ResetTimezone() {
	m.timezone = nil
}

// SetBypassedCutoffAt sets the "bypassed_cutoff_at" field.
func (m *SyncRunMutation) SetBypassedCutoffAt(t time.Time) {
	m.bypassed_cutoff_at = &t
}

// BypassedCutoffAt returns the value of the "bypassed_cutoff_at" field in the mutation.
func (m *SyncRunMutation) BypassedCutoffAt() (r time.Time, exists bool) {
	v := m.bypassed_cutoff_at
	if v == nil {
		return
	}
	return *v, true
}

// OldBypassedCutoffAt returns the old "bypassed_cutoff_at" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldBypassedCutoffAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBypassedCutoffAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBypassedCutoffAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBypassedCutoffAt: %w", err)
	}
	return oldValue.BypassedCutoffAt, nil
}

// ClearBypassedCutoffAt clears the value of the "bypassed_cutoff_at" field.
func (m *SyncRunMutation) ClearBypassedCutoffAt() {
	m.bypassed_cutoff_at = nil
	m.clearedFields[syncrun.FieldBypassedCutoffAt] = struct{}{}
}

// BypassedCutoffAtCleared returns if the "bypassed_cutoff_at" field was cleared in this mutation.
func (m *SyncRunMutation) BypassedCutoffAtCleared() bool {
	_, ok := m.clearedFields[syncrun.FieldBypassedCutoffAt]
	return ok
}

// ResetBypassedCutoffAt resets all changes to the "bypassed_cutoff_at" field.
func (m *SyncRunMutation) ResetBypassedCutoffAt() {
	m.bypassed_cutoff_at = nil
	delete(m.clearedFields, syncrun.FieldBypassedCutoffAt)
}

// SetPageTrace sets the "page_trace" field.
func (m *SyncRunMutation) SetPageTrace(mt []models.PageTrace) {
	m.page_trace = &mt
	m.appendpage_trace = nil
}

// PageTrace returns the value of the "page_trace" field in the mutation.
func (m *SyncRunMutation) PageTrace() (r []models.PageTrace, exists bool) {
	v := m.page_trace
	if v == nil {
		return
	}
	return *v, true
}

// OldPageTrace returns the old "page_trace" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldPageTrace(ctx context.Context) (v []models.PageTrace, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageTrace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageTrace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageTrace: %w", err)
	}
	return oldValue.PageTrace, nil
}

// AppendPageTrace adds mt to the "page_trace" field.
func (m *SyncRunMutation) AppendPageTrace(mt []models.PageTrace) {
	m.appendpage_trace = append(m.appendpage_trace, mt...)
}

// AppendedPageTrace returns the list of values that were appended to the "page_trace" field in this mutation.
func (m *SyncRunMutation) AppendedPageTrace() ([]models.PageTrace, bool) {
	if len(m.appendpage_trace) == 0 {
		return nil, false
	}
	return m.appendpage_trace, true
}

// ClearPageTrace clears the value of the "page_trace" field.
func (m *SyncRunMutation) ClearPageTrace() {
	m.page_trace = nil
	m.appendpage_trace = nil
	m.clearedFields[syncrun.FieldPageTrace] = struct{}{}
}

// PageTraceCleared returns if the "page_trace" field was cleared in this mutation.
func (m *SyncRunMutation) PageTraceCleared() bool {
	_, ok := m.clearedFields[syncrun.FieldPageTrace]
	return ok
}

// ResetPageTrace resets all changes to the "page_trace" field.
func (m *SyncRunMutation) ResetPageTrace() {
	m.page_trace = nil
	m.appendpage_trace = nil
	delete(m.clearedFields, syncrun.FieldPageTrace)
}

// SetLogLines sets the "log_lines" field.
func (m *SyncRunMutation) SetLogLines(s []string) {
	m.log_lines = &s
	m.appendlog_lines = nil
}

// LogLines returns the value of the "log_lines" field in the mutation.
func (m *SyncRunMutation) LogLines() (r []string, exists bool) {
	v := m.log_lines
	if v == nil {
		return
	}
	return *v, true
}

// OldLogLines returns the old "log_lines" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldLogLines(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogLines is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogLines requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogLines: %w", err)
	}
	return oldValue.LogLines, nil
}

// AppendLogLines adds s to the "log_lines" field.
func (m *SyncRunMutation) AppendLogLines(s []string) {
	m.appendlog_lines = append(m.appendlog_lines, s...)
}

// AppendedLogLines returns the list of values that were appended to the "log_lines" field in this mutation.
func (m *SyncRunMutation) AppendedLogLines() ([]string, bool) {
	if len(m.appendlog_lines) == 0 {
		return nil, false
	}
	return m.appendlog_lines, true
}

// ClearLogLines clears the value of the "log_lines" field.
func (m *SyncRunMutation) ClearLogLines() {
	m.log_lines = nil
	m.appendlog_lines = nil
	m.clearedFields[syncrun.FieldLogLines] = struct{}{}
}

// LogLinesCleared returns if the "log_lines" field was cleared in this mutation.
func (m *SyncRunMutation) LogLinesCleared() bool {
	_, ok := m.clearedFields[syncrun.FieldLogLines]
	return ok
}

// ResetLogLines resets all changes to the "log_lines" field.
func (m *SyncRunMutation) ResetLogLines() {
	m.log_lines = nil
	m.appendlog_lines = nil
	delete(m.clearedFields, syncrun.FieldLogLines)
}

// SetSkipCounts sets the "skip_counts" field.
func (m *SyncRunMutation) SetSkipCounts(value map[string]int) {
	m.skip_counts = &value
}

// SkipCounts returns the value of the "skip_counts" field in the mutation.
func (m *SyncRunMutation) SkipCounts() (r map[string]int, exists bool) {
	v := m.skip_counts
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipCounts returns the old "skip_counts" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldSkipCounts(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipCounts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipCounts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipCounts: %w", err)
	}
	return oldValue.SkipCounts, nil
}

// ClearSkipCounts clears the value of the "skip_counts" field.
func (m *SyncRunMutation) ClearSkipCounts() {
	m.skip_counts = nil
	m.clearedFields[syncrun.FieldSkipCounts] = struct{}{}
}

// SkipCountsCleared returns if the "skip_counts" field was cleared in this mutation.
func (m *SyncRunMutation) SkipCountsCleared() bool {
	_, ok := m.clearedFields[syncrun.FieldSkipCounts]
	return ok
}

// ResetSkipCounts resets all changes to the "skip_counts" field.
func (m *SyncRunMutation) ResetSkipCounts() {
	m.skip_counts = nil
	delete(m.clearedFields, syncrun.FieldSkipCounts)
}

// SetSkippedSamples sets the "skipped_samples" field.
func (m *SyncRunMutation) SetSkippedSamples(value []map[string]interface{}) {
	m.skipped_samples = &value
	m.appendskipped_samples = nil
}

// SkippedSamples returns the value of the "skipped_samples" field in the mutation.
func (m *SyncRunMutation) SkippedSamples() (r []map[string]interface{}, exists bool) {
	v := m.skipped_samples
	if v == nil {
		return
	}
	return *v, true
}

// OldSkippedSamples returns the old "skipped_samples" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldSkippedSamples(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkippedSamples is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkippedSamples requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkippedSamples: %w", err)
	}
	return oldValue.SkippedSamples, nil
}

// AppendSkippedSamples adds value to the "skipped_samples" field.
func (m *SyncRunMutation) AppendSkippedSamples(value []map[string]interface{}) {
	m.appendskipped_samples = append(m.appendskipped_samples, value...)
}

// AppendedSkippedSamples returns the list of values that were appended to the "skipped_samples" field in this mutation.
func (m *SyncRunMutation) AppendedSkippedSamples() ([]map[string]interface{}, bool) {
	if len(m.appendskipped_samples) == 0 {
		return nil, false
	}
	return m.appendskipped_samples, true
}

// ClearSkippedSamples clears the value of the "skipped_samples" field.
func (m *SyncRunMutation) ClearSkippedSamples() {
	m.skipped_samples = nil
	m.appendskipped_samples = nil
	m.clearedFields[syncrun.FieldSkippedSamples] = struct{}{}
}

// SkippedSamplesCleared returns if the "skipped_samples" field was cleared in this mutation.
func (m *SyncRunMutation) SkippedSamplesCleared() bool {
	_, ok := m.clearedFields[syncrun.FieldSkippedSamples]
	return ok
}

// ResetSkippedSamples resets all changes to the "skipped_samples" field.
func (m *SyncRunMutation) ResetSkippedSamples() {
	m.skipped_samples = nil
	m.appendskipped_samples = nil
	delete(m.clearedFields, syncrun.FieldSkippedSamples)
}

// SetTotal sets the "total" field.
func (m *SyncRunMutation) SetTotal(i int) {
	m.total = &i
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *SyncRunMutation) Total() (r int, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds i to the "total" field.
func (m *SyncRunMutation) AddTotal(i int) {
	if m.addtotal != nil {
		*m.addtotal += i
	} else {
		m.addtotal = &i
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *SyncRunMutation) AddedTotal() (r int, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *SyncRunMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetInserted sets the "inserted" field.
func (m *SyncRunMutation) SetInserted(i int) {
	m.inserted = &i
	m.addinserted = nil
}

// Inserted returns the value of the "inserted" field in the mutation.
func (m *SyncRunMutation) Inserted() (r int, exists bool) {
	v := m.inserted
	if v == nil {
		return
	}
	return *v, true
}

// OldInserted returns the old "inserted" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldInserted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInserted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInserted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInserted: %w", err)
	}
	return oldValue.Inserted, nil
}

// AddInserted adds i to the "inserted" field.
func (m *SyncRunMutation) AddInserted(i int) {
	if m.addinserted != nil {
		*m.addinserted += i
	} else {
		m.addinserted = &i
	}
}

// AddedInserted returns the value that was added to the "inserted" field in this mutation.
func (m *SyncRunMutation) AddedInserted() (r int, exists bool) {
	v := m.addinserted
	if v == nil {
		return
	}
	return *v, true
}

// ResetInserted resets all changes to the "inserted" field.
func (m *SyncRunMutation) ResetInserted() {
	m.inserted = nil
	m.addinserted = nil
}

// SetUpdated sets the "updated" field.
func (m *SyncRunMutation) SetUpdated(i int) {
	m.updated = &i
	m.addupdated = nil
}

// Updated returns the value of the "updated" field in the mutation.
func (m *SyncRunMutation) Updated() (r int, exists bool) {
	v := m.updated
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdated returns the old "updated" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldUpdated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdated: %w", err)
	}
	return oldValue.Updated, nil
}

// AddUpdated adds i to the "updated" field.
func (m *SyncRunMutation) AddUpdated(i int) {
	if m.addupdated != nil {
		*m.addupdated += i
	} else {
		m.addupdated = &i
	}
}

// AddedUpdated returns the value that was added to the "updated" field in this mutation.
func (m *SyncRunMutation) AddedUpdated() (r int, exists bool) {
	v := m.addupdated
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdated resets all changes to the "updated" field.
func (m *SyncRunMutation) ResetUpdated() {
	m.updated = nil
	m.addupdated = nil
}

// SetSkipped sets the "skipped" field.
func (m *SyncRunMutation) SetSkipped(i int) {
	m.skipped = &i
	m.addskipped = nil
}

// Skipped returns the value of the "skipped" field in the mutation.
func (m *SyncRunMutation) Skipped() (r int, exists bool) {
	v := m.skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipped returns the old "skipped" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldSkipped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipped: %w", err)
	}
	return oldValue.Skipped, nil
}

// AddSkipped adds i to the "skipped" field.
func (m *SyncRunMutation) AddSkipped(i int) {
	if m.addskipped != nil {
		*m.addskipped += i
	} else {
		m.addskipped = &i
	}
}

// AddedSkipped returns the value that was added to the "skipped" field in this mutation.
func (m *SyncRunMutation) AddedSkipped() (r int, exists bool) {
	v := m.addskipped
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkipped resets all changes to the "skipped" field.
func (m *SyncRunMutation) ResetSkipped() {
	m.skipped = nil
	m.addskipped = nil
}

// SetAPIMs sets the "api_ms" field.
func (m *SyncRunMutation) SetAPIMs(i int64) {
	m.api_ms = &i
	m.addapi_ms = nil
}

// APIMs returns the value of the "api_ms" field in the mutation.
func (m *SyncRunMutation) APIMs() (r int64, exists bool) {
	v := m.api_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIMs returns the old "api_ms" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldAPIMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIMs: %w", err)
	}
	return oldValue.APIMs, nil
}

// AddAPIMs adds i to the "api_ms" field.
func (m *SyncRunMutation) AddAPIMs(i int64) {
	if m.addapi_ms != nil {
		*m.addapi_ms += i
	} else {
		m.addapi_ms = &i
	}
}

// AddedAPIMs returns the value that was added to the "api_ms" field in this mutation.
func (m *SyncRunMutation) AddedAPIMs() (r int64, exists bool) {
	v := m.addapi_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAPIMs resets all changes to the "api_ms" field.
func (m *SyncRunMutation) ResetAPIMs() {
	m.api_ms = nil
	m.addapi_ms = nil
}

// SetTotalMs sets the "total_ms" field.
func (m *SyncRunMutation) SetTotalMs(i int64) {
	m.total_ms = &i
	m.addtotal_ms = nil
}

// TotalMs returns the value of the "total_ms" field in the mutation.
func (m *SyncRunMutation) TotalMs() (r int64, exists bool) {
	v := m.total_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalMs returns the old "total_ms" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldTotalMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalMs: %w", err)
	}
	return oldValue.TotalMs, nil
}

// AddTotalMs adds i to the "total_ms" field.
func (m *SyncRunMutation) AddTotalMs(i int64) {
	if m.addtotal_ms != nil {
		*m.addtotal_ms += i
	} else {
		m.addtotal_ms = &i
	}
}

// AddedTotalMs returns the value that was added to the "total_ms" field in this mutation.
func (m *SyncRunMutation) AddedTotalMs() (r int64, exists bool) {
	v := m.addtotal_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalMs resets all changes to the "total_ms" field.
func (m *SyncRunMutation) ResetTotalMs() {
	m.total_ms = nil
	m.addtotal_ms = nil
}

// SetError sets the "error" field.
func (m *SyncRunMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *SyncRunMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *SyncRunMutation) ClearError() {
	m.error = nil
	m.clearedFields[syncrun.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *SyncRunMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[syncrun.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *SyncRunMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, syncrun.FieldError)
}

// SetTriggeredBy sets the "triggered_by" field.
func (m *SyncRunMutation) SetTriggeredBy(s string) {
	m.triggered_by = &s
}

// TriggeredBy returns the value of the "triggered_by" field in the mutation.
func (m *SyncRunMutation) TriggeredBy() (r string, exists bool) {
	v := m.triggered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredBy returns the old "triggered_by" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldTriggeredBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredBy: %w", err)
	}
	return oldValue.TriggeredBy, nil
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (m *SyncRunMutation) ClearTriggeredBy() {
	m.triggered_by = nil
	m.clearedFields[syncrun.FieldTriggeredBy] = struct{}{}
}

// TriggeredByCleared returns if the "triggered_by" field was cleared in this mutation.
func (m *SyncRunMutation) TriggeredByCleared() bool {
	_, ok := m.clearedFields[syncrun.FieldTriggeredBy]
	return ok
}

// ResetTriggeredBy resets all changes to the "triggered_by" field.
func (m *SyncRunMutation) ResetTriggeredBy() {
	m.triggered_by = nil
	delete(m.clearedFields, syncrun.FieldTriggeredBy)
}

// SetStartedAt sets the "started_at" field.
func (m *SyncRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SyncRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SyncRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *SyncRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *SyncRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *SyncRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[syncrun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *SyncRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[syncrun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *SyncRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, syncrun.FieldFinishedAt)
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *SyncRunMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[syncrun.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *SyncRunMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *SyncRunMutation) TenantIDs() (ids []int) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *SyncRunMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the SyncRunMutation builder.
func (m *SyncRunMutation) Where(ps ...predicate.SyncRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SyncRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SyncRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SyncRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SyncRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SyncRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SyncRun).
func (m *SyncRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SyncRunMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.tenant != nil {
		fields = append(fields, syncrun.FieldTenantID)
	}
	if m.kind != nil {
		fields = append(fields, syncrun.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, syncrun.FieldStatus)
	}
	if m.requested_start != nil {
		fields = append(fields, syncrun.FieldRequestedStart)
	}
	if m.requested_end != nil {
		fields = append(fields, syncrun.FieldRequestedEnd)
	}
	if m.effective_start != nil {
		fields = append(fields, syncrun.FieldEffectiveStart)
	}
	if m.effective_end != nil {
		fields = append(fields, syncrun.FieldEffectiveEnd)
	}
	if m.timezone != nil {
		fields = append(fields, syncrun.FieldTimezone)
	}
	if m.bypassed_cutoff_at != nil {
		fields = append(fields, syncrun.FieldBypassedCutoffAt)
	}
	if m.page_trace != nil {
		fields = append(fields, syncrun.FieldPageTrace)
	}
	if m.log_lines != nil {
		fields = append(fields, syncrun.FieldLogLines)
	}
	if m.skip_counts != nil {
		fields = append(fields, syncrun.FieldSkipCounts)
	}
	if m.skipped_samples != nil {
		fields = append(fields, syncrun.FieldSkippedSamples)
	}
	if m.total != nil {
		fields = append(fields, syncrun.FieldTotal)
	}
	if m.inserted != nil {
		fields = append(fields, syncrun.FieldInserted)
	}
	if m.updated != nil {
		fields = append(fields, syncrun.FieldUpdated)
	}
	if m.skipped != nil {
		fields = append(fields, syncrun.FieldSkipped)
	}
	if m.api_ms != nil {
		fields = append(fields, syncrun.FieldAPIMs)
	}
	if m.total_ms != nil {
		fields = append(fields, syncrun.FieldTotalMs)
	}
	if m.error != nil {
		fields = append(fields, syncrun.FieldError)
	}
	if m.triggered_by != nil {
		fields = append(fields, syncrun.FieldTriggeredBy)
	}
	if m.started_at != nil {
		fields = append(fields, syncrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, syncrun.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SyncRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case syncrun.FieldTenantID:
		return m.TenantID()
	case syncrun.FieldKind:
		return m.Kind()
	case syncrun.FieldStatus:
		return m.Status()
	case syncrun.FieldRequestedStart:
		return m.RequestedStart()
	case syncrun.FieldRequestedEnd:
		return m.RequestedEnd()
	case syncrun.FieldEffectiveStart:
		return m.EffectiveStart()
	case syncrun.FieldEffectiveEnd:
		return m.EffectiveEnd()
	case syncrun.FieldTimezone:
		return m.Timezone()
	case syncrun.FieldBypassedCutoffAt:
		return m.BypassedCutoffAt()
	case syncrun.FieldPageTrace:
		return m.PageTrace()
	case syncrun.FieldLogLines:
		return m.LogLines()
	case syncrun.FieldSkipCounts:
		return m.SkipCounts()
	case syncrun.FieldSkippedSamples:
		return m.SkippedSamples()
	case syncrun.FieldTotal:
		return m.Total()
	case syncrun.FieldInserted:
		return m.Inserted()
	case syncrun.FieldUpdated:
		return m.Updated()
	case syncrun.FieldSkipped:
		return m.Skipped()
	case syncrun.FieldAPIMs:
		return m.APIMs()
	case syncrun.FieldTotalMs:
		return m.TotalMs()
	case syncrun.FieldError:
		return m.Error()
	case syncrun.FieldTriggeredBy:
		return m.TriggeredBy()
	case syncrun.FieldStartedAt:
		return m.StartedAt()
	case syncrun.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SyncRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case syncrun.FieldTenantID:
		return m.OldTenantID(ctx)
	case syncrun.FieldKind:
		return m.OldKind(ctx)
	case syncrun.FieldStatus:
		return m.OldStatus(ctx)
	case syncrun.FieldRequestedStart:
		return m.OldRequestedStart(ctx)
	case syncrun.FieldRequestedEnd:
		return m.OldRequestedEnd(ctx)
	case syncrun.FieldEffectiveStart:
		return m.OldEffectiveStart(ctx)
	case syncrun.FieldEffectiveEnd:
		return m.OldEffectiveEnd(ctx)
	case syncrun.FieldTimezone:
		return m.OldTimezone(ctx)
	case syncrun.FieldBypassedCutoffAt:
		return m.OldBypassedCutoffAt(ctx)
	case syncrun.FieldPageTrace:
		return m.OldPageTrace(ctx)
	case syncrun.FieldLogLines:
		return m.OldLogLines(ctx)
	case syncrun.FieldSkipCounts:
		return m.OldSkipCounts(ctx)
	case syncrun.FieldSkippedSamples:
		return m.OldSkippedSamples(ctx)
	case syncrun.FieldTotal:
		return m.OldTotal(ctx)
	case syncrun.FieldInserted:
		return m.OldInserted(ctx)
	case syncrun.FieldUpdated:
		return m.OldUpdated(ctx)
	case syncrun.FieldSkipped:
		return m.OldSkipped(ctx)
	case syncrun.FieldAPIMs:
		return m.OldAPIMs(ctx)
	case syncrun.FieldTotalMs:
		return m.OldTotalMs(ctx)
	case syncrun.FieldError:
		return m.OldError(ctx)
	case syncrun.FieldTriggeredBy:
		return m.OldTriggeredBy(ctx)
	case syncrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case syncrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SyncRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case syncrun.FieldTenantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case syncrun.FieldKind:
		v, ok := value.(syncrun.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case syncrun.FieldStatus:
		v, ok := value.(syncrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case syncrun.FieldRequestedStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedStart(v)
		return nil
	case syncrun.FieldRequestedEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedEnd(v)
		return nil
	case syncrun.FieldEffectiveStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveStart(v)
		return nil
	case syncrun.FieldEffectiveEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveEnd(v)
		return nil
	case syncrun.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case syncrun.FieldBypassedCutoffAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBypassedCutoffAt(v)
		return nil
	case syncrun.FieldPageTrace:
		v, ok := value.([]models.PageTrace)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageTrace(v)
		return nil
	case syncrun.FieldLogLines:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogLines(v)
		return nil
	case syncrun.FieldSkipCounts:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipCounts(v)
		return nil
	case syncrun.FieldSkippedSamples:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkippedSamples(v)
		return nil
	case syncrun.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case syncrun.FieldInserted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInserted(v)
		return nil
	case syncrun.FieldUpdated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdated(v)
		return nil
	case syncrun.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipped(v)
		return nil
	case syncrun.FieldAPIMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIMs(v)
		return nil
	case syncrun.FieldTotalMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalMs(v)
		return nil
	case syncrun.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case syncrun.FieldTriggeredBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredBy(v)
		return nil
	case syncrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case syncrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SyncRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SyncRunMutation) AddedFields() []string {
	var fields []string
	if m.addtotal != nil {
		fields = append(fields, syncrun.FieldTotal)
	}
	if m.addinserted != nil {
		fields = append(fields, syncrun.FieldInserted)
	}
	if m.addupdated != nil {
		fields = append(fields, syncrun.FieldUpdated)
	}
	if m.addskipped != nil {
		fields = append(fields, syncrun.FieldSkipped)
	}
	if m.addapi_ms != nil {
		fields = append(fields, syncrun.FieldAPIMs)
	}
	if m.addtotal_ms != nil {
		fields = append(fields, syncrun.FieldTotalMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SyncRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case syncrun.FieldTotal:
		return m.AddedTotal()
	case syncrun.FieldInserted:
		return m.AddedInserted()
	case syncrun.FieldUpdated:
		return m.AddedUpdated()
	case syncrun.FieldSkipped:
		return m.AddedSkipped()
	case syncrun.FieldAPIMs:
		return m.AddedAPIMs()
	case syncrun.FieldTotalMs:
		return m.AddedTotalMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case syncrun.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case syncrun.FieldInserted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInserted(v)
		return nil
	case syncrun.FieldUpdated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdated(v)
		return nil
	case syncrun.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkipped(v)
		return nil
	case syncrun.FieldAPIMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAPIMs(v)
		return nil
	case syncrun.FieldTotalMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalMs(v)
		return nil
	}
	return fmt.Errorf("unknown SyncRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SyncRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(syncrun.FieldRequestedStart) {
		fields = append(fields, syncrun.FieldRequestedStart)
	}
	if m.FieldCleared(syncrun.FieldRequestedEnd) {
		fields = append(fields, syncrun.FieldRequestedEnd)
	}
	if m.FieldCleared(syncrun.FieldEffectiveStart) {
		fields = append(fields, syncrun.FieldEffectiveStart)
	}
	if m.FieldCleared(syncrun.FieldEffectiveEnd) {
		fields = append(fields, syncrun.FieldEffectiveEnd)
	}
	if m.FieldCleared(syncrun.FieldBypassedCutoffAt) {
		fields = append(fields, syncrun.FieldBypassedCutoffAt)
	}
	if m.FieldCleared(syncrun.FieldPageTrace) {
		fields = append(fields, syncrun.FieldPageTrace)
	}
	if m.FieldCleared(syncrun.FieldLogLines) {
		fields = append(fields, syncrun.FieldLogLines)
	}
	if m.FieldCleared(syncrun.FieldSkipCounts) {
		fields = append(fields, syncrun.FieldSkipCounts)
	}
	if m.FieldCleared(syncrun.FieldSkippedSamples) {
		fields = append(fields, syncrun.FieldSkippedSamples)
	}
	if m.FieldCleared(syncrun.FieldError) {
		fields = append(fields, syncrun.FieldError)
	}
	if m.FieldCleared(syncrun.FieldTriggeredBy) {
		fields = append(fields, syncrun.FieldTriggeredBy)
	}
	if m.FieldCleared(syncrun.FieldFinishedAt) {
		fields = append(fields, syncrun.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SyncRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SyncRunMutation) ClearField(name string) error {
	switch name {
	case syncrun.FieldRequestedStart:
		m.ClearRequestedStart()
		return nil
	case syncrun.FieldRequestedEnd:
		m.ClearRequestedEnd()
		return nil
	case syncrun.FieldEffectiveStart:
		m.ClearEffectiveStart()
		return nil
	case syncrun.FieldEffectiveEnd:
		m.ClearEffectiveEnd()
		return nil
	case syncrun.FieldBypassedCutoffAt:
		m.ClearBypassedCutoffAt()
		return nil
	case syncrun.FieldPageTrace:
		m.ClearPageTrace()
		return nil
	case syncrun.FieldLogLines:
		m.ClearLogLines()
		return nil
	case syncrun.FieldSkipCounts:
		m.ClearSkipCounts()
		return nil
	case syncrun.FieldSkippedSamples:
		m.ClearSkippedSamples()
		return nil
	case syncrun.FieldError:
		m.ClearError()
		return nil
	case syncrun.FieldTriggeredBy:
		m.ClearTriggeredBy()
		return nil
	case syncrun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown SyncRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SyncRunMutation) ResetField(name string) error {
	switch name {
	case syncrun.FieldTenantID:
		m.ResetTenantID()
		return nil
	case syncrun.FieldKind:
		m.ResetKind()
		return nil
	case syncrun.FieldStatus:
		m.ResetStatus()
		return nil
	case syncrun.FieldRequestedStart:
		m.ResetRequestedStart()
		return nil
	case syncrun.FieldRequestedEnd:
		m.ResetRequestedEnd()
		return nil
	case syncrun.FieldEffectiveStart:
		m.ResetEffectiveStart()
		return nil
	case syncrun.FieldEffectiveEnd:
		m.ResetEffectiveEnd()
		return nil
	case syncrun.FieldTimezone:
		m.ResetTimezone()
		return nil
	case syncrun.FieldBypassedCutoffAt:
		m.ResetBypassedCutoffAt()
		return nil
	case syncrun.FieldPageTrace:
		m.ResetPageTrace()
		return nil
	case syncrun.FieldLogLines:
		m.ResetLogLines()
		return nil
	case syncrun.FieldSkipCounts:
		m.ResetSkipCounts()
		return nil
	case syncrun.FieldSkippedSamples:
		m.ResetSkippedSamples()
		return nil
	case syncrun.FieldTotal:
		m.ResetTotal()
		return nil
	case syncrun.FieldInserted:
		m.ResetInserted()
		return nil
	case syncrun.FieldUpdated:
		m.ResetUpdated()
		return nil
	case syncrun.FieldSkipped:
		m.ResetSkipped()
		return nil
	case syncrun.FieldAPIMs:
		m.ResetAPIMs()
		return nil
	case syncrun.FieldTotalMs:
		m.ResetTotalMs()
		return nil
	case syncrun.FieldError:
		m.ResetError()
		return nil
	case syncrun.FieldTriggeredBy:
		m.ResetTriggeredBy()
		return nil
	case syncrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case syncrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown SyncRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SyncRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, syncrun.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SyncRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case syncrun.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SyncRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SyncRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SyncRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, syncrun.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SyncRunMutation) EdgeCleared(name string) bool {
	switch name {
	case syncrun.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SyncRunMutation) ClearEdge(name string) error {
	switch name {
	case syncrun.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown SyncRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SyncRunMutation) ResetEdge(name string) error {
	switch name {
	case syncrun.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown SyncRun edge %s", name)
}

// TenantMutation represents an operation that mutates the Tenant nodes in the graph.
type TenantMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	name                   *string
	timezone               *string
	active                 *bool
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	crm_connection         *int
	clearedcrm_connection  bool
	billing_account        *int
	clearedbilling_account bool
	agents                 map[int]struct{}
	removedagents          map[int]struct{}
	clearedagents          bool
	phone_numbers          map[int]struct{}
	removedphone_numbers   map[int]struct{}
	clearedphone_numbers   bool
	call_records           map[int]struct{}
	removedcall_records    map[int]struct{}
	clearedcall_records    bool
	sync_runs              map[int]struct{}
	removedsync_runs       map[int]struct{}
	clearedsync_runs       bool
	done                   bool
	oldValue               func(context.Context) (*Tenant, error)
	predicates             []predicate.Tenant
}

var _ ent.Mutation = (*TenantMutation)(nil)

// tenantOption allows management of the mutation configuration using functional options.
type tenantOption func(*TenantMutation)

// newTenantMutation creates new mutation for the Tenant entity.
func newTenantMutation(c config, op Op, opts ...tenantOption) *TenantMutation {
	m := &TenantMutation{
		config:        c,
		op:            op,
		typ:           TypeTenant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantID sets the ID field of the mutation.
func withTenantID(id int) tenantOption {
	return func(m *TenantMutation) {
		var (
			err   error
			once  sync.Once
			value *Tenant
		)
		m.oldValue = func(ctx context.Context) (*Tenant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tenant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenant sets the old Tenant of the mutation.
func withTenant(node *Tenant) tenantOption {
	return func(m *TenantMutation) {
		m.oldValue = func(context.Context) (*Tenant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tenant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TenantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TenantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TenantMutation) ResetName() {
	m.name = nil
}

// SetTimezone sets the "timezone" field.
func (m *TenantMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *TenantMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *TenantMutation) ResetTimezone() {
	m.timezone = nil
}

// SetActive sets the "active" field.
func (m *TenantMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *TenantMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *TenantMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TenantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TenantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TenantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TenantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCrmConnectionID sets the "crm_connection" edge to the CRMConnection entity by id.
func (m *TenantMutation) SetCrmConnectionID(id int) {
	m.crm_connection = &id
}

// ClearCrmConnection clears the "crm_connection" edge to the CRMConnection entity.
func (m *TenantMutation) ClearCrmConnection() {
	m.clearedcrm_connection = true
}

// CrmConnectionCleared reports if the "crm_connection" edge to the CRMConnection entity was cleared.
func (m *TenantMutation) CrmConnectionCleared() bool {
	return m.clearedcrm_connection
}

// CrmConnectionID returns the "crm_connection" edge ID in the mutation.
func (m *TenantMutation) CrmConnectionID() (id int, exists bool) {
	if m.crm_connection != nil {
		return *m.crm_connection, true
	}
	return
}

// CrmConnectionIDs returns the "crm_connection" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CrmConnectionID instead. It exists only for internal usage by the builders.
func (m *TenantMutation) CrmConnectionIDs() (ids []int) {
	if id := m.crm_connection; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCrmConnection resets all changes to the "crm_connection" edge.
func (m *TenantMutation) ResetCrmConnection() {
	m.crm_connection = nil
	m.clearedcrm_connection = false
}

// SetBillingAccountID sets the "billing_account" edge to the BillingAccount entity by id.
func (m *TenantMutation) SetBillingAccountID(id int) {
	m.billing_account = &id
}

// ClearBillingAccount clears the "billing_account" edge to the BillingAccount entity.
func (m *TenantMutation) ClearBillingAccount() {
	m.clearedbilling_account = true
}

// BillingAccountCleared reports if the "billing_account" edge to the BillingAccount entity was cleared.
func (m *TenantMutation) BillingAccountCleared() bool {
	return m.clearedbilling_account
}

// BillingAccountID returns the "billing_account" edge ID in the mutation.
func (m *TenantMutation) BillingAccountID() (id int, exists bool) {
	if m.billing_account != nil {
		return *m.billing_account, true
	}
	return
}

// BillingAccountIDs returns the "billing_account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BillingAccountID instead. It exists only for internal usage by the builders.
func (m *TenantMutation) BillingAccountIDs() (ids []int) {
	if id := m.billing_account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBillingAccount resets all changes to the "billing_account" edge.
func (m *TenantMutation) ResetBillingAccount() {
	m.billing_account = nil
	m.clearedbilling_account = false
}

// AddAgentIDs adds the "agents" edge to the Agent entity by ids.
func (m *TenantMutation) AddAgentIDs(ids ...int) {
	if m.agents == nil {
		m.agents = make(map[int]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the Agent entity.
func (m *TenantMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the Agent entity was cleared.
func (m *TenantMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the Agent entity by IDs.
func (m *TenantMutation) RemoveAgentIDs(ids ...int) {
	if m.removedagents == nil {
		m.removedagents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the Agent entity.
func (m *TenantMutation) RemovedAgentsIDs() (ids []int) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *TenantMutation) AgentsIDs() (ids []int) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *TenantMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// AddPhoneNumberIDs adds the "phone_numbers" edge to the PhoneNumber entity by ids.
func (m *TenantMutation) AddPhoneNumberIDs(ids ...int) {
	if m.phone_numbers == nil {
		m.phone_numbers = make(map[int]struct{})
	}
	for i := range ids {
		m.phone_numbers[ids[i]] = struct{}{}
	}
}

// ClearPhoneNumbers clears the "phone_numbers" edge to the PhoneNumber entity.
func (m *TenantMutation) ClearPhoneNumbers() {
	m.clearedphone_numbers = true
}

// PhoneNumbersCleared reports if the "phone_numbers" edge to the PhoneNumber entity was cleared.
func (m *TenantMutation) PhoneNumbersCleared() bool {
	return m.clearedphone_numbers
}

// RemovePhoneNumberIDs removes the "phone_numbers" edge to the PhoneNumber entity by IDs.
func (m *TenantMutation) RemovePhoneNumberIDs(ids ...int) {
	if m.removedphone_numbers == nil {
		m.removedphone_numbers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.phone_numbers, ids[i])
		m.removedphone_numbers[ids[i]] = struct{}{}
	}
}

// RemovedPhoneNumbers returns the removed IDs of the "phone_numbers" edge to the PhoneNumber entity.
func (m *TenantMutation) RemovedPhoneNumbersIDs() (ids []int) {
	for id := range m.removedphone_numbers {
		ids = append(ids, id)
	}
	return
}

// PhoneNumbersIDs returns the "phone_numbers" edge IDs in the mutation.
func (m *TenantMutation) PhoneNumbersIDs() (ids []int) {
	for id := range m.phone_numbers {
		ids = append(ids, id)
	}
	return
}

// ResetPhoneNumbers resets all changes to the "phone_numbers" edge.
func (m *TenantMutation) ResetPhoneNumbers() {
	m.phone_numbers = nil
	m.clearedphone_numbers = false
	m.removedphone_numbers = nil
}

// AddCallRecordIDs adds the "call_records" edge to the CallRecord entity by ids.
func (m *TenantMutation) AddCallRecordIDs(ids ...int) {
	if m.call_records == nil {
		m.call_records = make(map[int]struct{})
	}
	for i := range ids {
		m.call_records[ids[i]] = struct{}{}
	}
}

// ClearCallRecords clears the "call_records" edge to the CallRecord entity.
func (m *TenantMutation) ClearCallRecords() {
	m.clearedcall_records = true
}

// CallRecordsCleared reports if the "call_records" edge to the CallRecord entity was cleared.
func (m *TenantMutation) CallRecordsCleared() bool {
	return m.clearedcall_records
}

// RemoveCallRecordIDs removes the "call_records" edge to the CallRecord entity by IDs.
func (m *TenantMutation) RemoveCallRecordIDs(ids ...int) {
	if m.removedcall_records == nil {
		m.removedcall_records = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.call_records, ids[i])
		m.removedcall_records[ids[i]] = struct{}{}
	}
}

// RemovedCallRecords returns the removed IDs of the "call_records" edge to the CallRecord entity.
func (m *TenantMutation) RemovedCallRecordsIDs() (ids []int) {
	for id := range m.removedcall_records {
		ids = append(ids, id)
	}
	return
}

// CallRecordsIDs returns the "call_records" edge IDs in the mutation.
func (m *TenantMutation) CallRecordsIDs() (ids []int) {
	for id := range m.call_records {
		ids = append(ids, id)
	}
	return
}

// ResetCallRecords resets all changes to the "call_records" edge.
func (m *TenantMutation) ResetCallRecords() {
	m.call_records = nil
	m.clearedcall_records = false
	m.removedcall_records = nil
}

// AddSyncRunIDs adds the "sync_runs" edge to the SyncRun entity by ids.
func (m *TenantMutation) AddSyncRunIDs(ids ...int) {
	if m.sync_runs == nil {
		m.sync_runs = make(map[int]struct{})
	}
	for i := range ids {
		m.sync_runs[ids[i]] = struct{}{}
	}
}

// ClearSyncRuns clears the "sync_runs" edge to the SyncRun entity.
func (m *TenantMutation) ClearSyncRuns() {
	m.clearedsync_runs = true
}

// SyncRunsCleared reports if the "sync_runs" edge to the SyncRun entity was cleared.
func (m *TenantMutation) SyncRunsCleared() bool {
	return m.clearedsync_runs
}

// RemoveSyncRunIDs removes the "sync_runs" edge to the SyncRun entity by IDs.
func (m *TenantMutation) RemoveSyncRunIDs(ids ...int) {
	if m.removedsync_runs == nil {
		m.removedsync_runs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.sync_runs, ids[i])
		m.removedsync_runs[ids[i]] = struct{}{}
	}
}

// RemovedSyncRuns returns the removed IDs of the "sync_runs" edge to the SyncRun entity.
func (m *TenantMutation) RemovedSyncRunsIDs() (ids []int) {
	for id := range m.removedsync_runs {
		ids = append(ids, id)
	}
	return
}

// SyncRunsIDs returns the "sync_runs" edge IDs in the mutation.
func (m *TenantMutation) SyncRunsIDs() (ids []int) {
	for id := range m.sync_runs {
		ids = append(ids, id)
	}
	return
}

// ResetSyncRuns resets all changes to the "sync_runs" edge.
func (m *TenantMutation) ResetSyncRuns() {
	m.sync_runs = nil
	m.clearedsync_runs = false
	m.removedsync_runs = nil
}

// Where appends a list predicates to the TenantMutation builder.
func (m *TenantMutation) Where(ps ...predicate.Tenant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tenant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tenant).
func (m *TenantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, tenant.FieldName)
	}
	if m.timezone != nil {
		fields = append(fields, tenant.FieldTimezone)
	}
	if m.active != nil {
		fields = append(fields, tenant.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, tenant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tenant.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldName:
		return m.Name()
	case tenant.FieldTimezone:
		return m.Timezone()
	case tenant.FieldActive:
		return m.Active()
	case tenant.FieldCreatedAt:
		return m.CreatedAt()
	case tenant.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenant.FieldName:
		return m.OldName(ctx)
	case tenant.FieldTimezone:
		return m.OldTimezone(ctx)
	case tenant.FieldActive:
		return m.OldActive(ctx)
	case tenant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tenant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tenant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tenant.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case tenant.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case tenant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tenant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Tenant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Tenant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantMutation) ResetField(name string) error {
	switch name {
	case tenant.FieldName:
		m.ResetName()
		return nil
	case tenant.FieldTimezone:
		m.ResetTimezone()
		return nil
	case tenant.FieldActive:
		m.ResetActive()
		return nil
	case tenant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tenant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.crm_connection != nil {
		edges = append(edges, tenant.EdgeCrmConnection)
	}
	if m.billing_account != nil {
		edges = append(edges, tenant.EdgeBillingAccount)
	}
	if m.agents != nil {
		edges = append(edges, tenant.EdgeAgents)
	}
	if m.phone_numbers != nil {
		edges = append(edges, tenant.EdgePhoneNumbers)
	}
	if m.call_records != nil {
		edges = append(edges, tenant.EdgeCallRecords)
	}
	if m.sync_runs != nil {
		edges = append(edges, tenant.EdgeSyncRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgeCrmConnection:
		if id := m.crm_connection; id != nil {
			return []ent.Value{*id}
		}
	case tenant.EdgeBillingAccount:
		if id := m.billing_account; id != nil {
			return []ent.Value{*id}
		}
	case tenant.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgePhoneNumbers:
		ids := make([]ent.Value, 0, len(m.phone_numbers))
		for id := range m.phone_numbers {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeCallRecords:
		ids := make([]ent.Value, 0, len(m.call_records))
		for id := range m.call_records {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeSyncRuns:
		ids := make([]ent.Value, 0, len(m.sync_runs))
		for id := range m.sync_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedagents != nil {
		edges = append(edges, tenant.EdgeAgents)
	}
	if m.removedphone_numbers != nil {
		edges = append(edges, tenant.EdgePhoneNumbers)
	}
	if m.removedcall_records != nil {
		edges = append(edges, tenant.EdgeCallRecords)
	}
	if m.removedsync_runs != nil {
		edges = append(edges, tenant.EdgeSyncRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgePhoneNumbers:
		ids := make([]ent.Value, 0, len(m.removedphone_numbers))
		for id := range m.removedphone_numbers {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeCallRecords:
		ids := make([]ent.Value, 0, len(m.removedcall_records))
		for id := range m.removedcall_records {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeSyncRuns:
		ids := make([]ent.Value, 0, len(m.removedsync_runs))
		for id := range m.removedsync_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedcrm_connection {
		edges = append(edges, tenant.EdgeCrmConnection)
	}
	if m.clearedbilling_account {
		edges = append(edges, tenant.EdgeBillingAccount)
	}
	if m.clearedagents {
		edges = append(edges, tenant.EdgeAgents)
	}
	if m.clearedphone_numbers {
		edges = append(edges, tenant.EdgePhoneNumbers)
	}
	if m.clearedcall_records {
		edges = append(edges, tenant.EdgeCallRecords)
	}
	if m.clearedsync_runs {
		edges = append(edges, tenant.EdgeSyncRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantMutation) EdgeCleared(name string) bool {
	switch name {
	case tenant.EdgeCrmConnection:
		return m.clearedcrm_connection
	case tenant.EdgeBillingAccount:
		return m.clearedbilling_account
	case tenant.EdgeAgents:
		return m.clearedagents
	case tenant.EdgePhoneNumbers:
		return m.clearedphone_numbers
	case tenant.EdgeCallRecords:
		return m.clearedcall_records
	case tenant.EdgeSyncRuns:
		return m.clearedsync_runs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantMutation) ClearEdge(name string) error {
	switch name {
	case tenant.EdgeCrmConnection:
		m.ClearCrmConnection()
		return nil
	case tenant.EdgeBillingAccount:
		m.ClearBillingAccount()
		return nil
	}
	return fmt.Errorf("unknown Tenant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantMutation) ResetEdge(name string) error {
	switch name {
	case tenant.EdgeCrmConnection:
		m.ResetCrmConnection()
		return nil
	case tenant.EdgeBillingAccount:
		m.ResetBillingAccount()
		return nil
	case tenant.EdgeAgents:
		m.ResetAgents()
		return nil
	case tenant.EdgePhoneNumbers:
		m.ResetPhoneNumbers()
		return nil
	case tenant.EdgeCallRecords:
		m.ResetCallRecords()
		return nil
	case tenant.EdgeSyncRuns:
		m.ResetSyncRuns()
		return nil
	}
	return fmt.Errorf("unknown Tenant edge %s", name)
}

// UsageLedgerEntryMutation represents an operation that mutates the UsageLedgerEntry nodes in the graph.
type UsageLedgerEntryMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	tenant_id          *int
	addtenant_id       *int
	amount_cents       *int64
	addamount_cents    *int64
	entry_type         *usageledgerentry.EntryType
	occurred_at        *time.Time
	reported_at        *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	call_record        *int
	clearedcall_record bool
	done               bool
	oldValue           func(context.Context) (*UsageLedgerEntry, error)
	predicates         []predicate.UsageLedgerEntry
}

var _ ent.Mutation = (*UsageLedgerEntryMutation)(nil)

// usageledgerentryOption allows management of the mutation configuration using functional options.
type usageledgerentryOption func(*UsageLedgerEntryMutation)

// newUsageLedgerEntryMutation creates new mutation for the UsageLedgerEntry entity.
func newUsageLedgerEntryMutation(c config, op Op, opts ...usageledgerentryOption) *UsageLedgerEntryMutation {
	m := &UsageLedgerEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeUsageLedgerEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsageLedgerEntryID sets the ID field of the mutation.
func withUsageLedgerEntryID(id int) usageledgerentryOption {
	return func(m *UsageLedgerEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *UsageLedgerEntry
		)
		m.oldValue = func(ctx context.Context) (*UsageLedgerEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UsageLedgerEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsageLedgerEntry sets the old UsageLedgerEntry of the mutation.
func withUsageLedgerEntry(node *UsageLedgerEntry) usageledgerentryOption {
	return func(m *UsageLedgerEntryMutation) {
		m.oldValue = func(context.Context) (*UsageLedgerEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsageLedgerEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsageLedgerEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsageLedgerEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsageLedgerEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UsageLedgerEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *UsageLedgerEntryMutation) SetTenantID(i int) {
	m.tenant_id = &i
	m.addtenant_id = nil
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *UsageLedgerEntryMutation) TenantID() (r int, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the UsageLedgerEntry entity.
// If the UsageLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLedgerEntryMutation) OldTenantID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// AddTenantID adds i to the "tenant_id" field.
func (m *UsageLedgerEntryMutation) AddTenantID(i int) {
	if m.addtenant_id != nil {
		*m.addtenant_id += i
	} else {
		m.addtenant_id = &i
	}
}

// AddedTenantID returns the value that was added to the "tenant_id" field in this mutation.
func (m *UsageLedgerEntryMutation) AddedTenantID() (r int, exists bool) {
	v := m.addtenant_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *UsageLedgerEntryMutation) ResetTenantID() {
	m.tenant_id = nil
	m.addtenant_id = nil
}

// SetCallRecordID sets the "call_record_id" field.
func (m *UsageLedgerEntryMutation) SetCallRecordID(i int) {
	m.call_record = &i
}

// CallRecordID returns the value of the "call_record_id" field in the mutation.
func (m *UsageLedgerEntryMutation) CallRecordID() (r int, exists bool) {
	v := m.call_record
	if v == nil {
		return
	}
	return *v, true
}

// OldCallRecordID returns the old "call_record_id" field's value of the UsageLedgerEntry entity.
// If the UsageLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLedgerEntryMutation) OldCallRecordID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallRecordID: %w", err)
	}
	return oldValue.CallRecordID, nil
}

// ResetCallRecordID resets all changes to the "call_record_id" field.
func (m *UsageLedgerEntryMutation) ResetCallRecordID() {
	m.call_record = nil
}

// SetAmountCents sets the "amount_cents" field.
func (m *UsageLedgerEntryMutation) SetAmountCents(i int64) {
	m.amount_cents = &i
	m.addamount_cents = nil
}

// AmountCents returns the value of the "amount_cents" field in the mutation.
func (m *UsageLedgerEntryMutation) AmountCents() (r int64, exists bool) {
	v := m.amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountCents returns the old "amount_cents" field's value of the UsageLedgerEntry entity.
// If the UsageLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLedgerEntryMutation) OldAmountCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountCents: %w", err)
	}
	return oldValue.AmountCents, nil
}

// AddAmountCents adds i to the "amount_cents" field.
func (m *UsageLedgerEntryMutation) AddAmountCents(i int64) {
	if m.addamount_cents != nil {
		*m.addamount_cents += i
	} else {
		m.addamount_cents = &i
	}
}

// AddedAmountCents returns the value that was added to the "amount_cents" field in this mutation.
func (m *UsageLedgerEntryMutation) AddedAmountCents() (r int64, exists bool) {
	v := m.addamount_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountCents resets all changes to the "amount_cents" field.
func (m *UsageLedgerEntryMutation) ResetAmountCents() {
	m.amount_cents = nil
	m.addamount_cents = nil
}

// SetEntryType sets the "entry_type" field.
func (m *UsageLedgerEntryMutation) SetEntryType(ut usageledgerentry.EntryType) {
	m.entry_type = &ut
}

// EntryType returns the value of the "entry_type" field in the mutation.
func (m *UsageLedgerEntryMutation) EntryType() (r usageledgerentry.EntryType, exists bool) {
	v := m.entry_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntryType returns the old "entry_type" field's value of the UsageLedgerEntry entity.
// If the UsageLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLedgerEntryMutation) OldEntryType(ctx context.Context) (v usageledgerentry.EntryType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntryType: %w", err)
	}
	return oldValue.EntryType, nil
}

// ResetEntryType resets all changes to the "entry_type" field.
func (m *UsageLedgerEntryMutation) ResetEntryType() {
	m.entry_type = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *UsageLedgerEntryMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *UsageLedgerEntryMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the UsageLedgerEntry entity.
// If the UsageLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLedgerEntryMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *UsageLedgerEntryMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetReportedAt sets the "reported_at" field.
func (m *UsageLedgerEntryMutation) SetReportedAt(t time.Time) {
	m.reported_at = &t
}

// ReportedAt returns the value of the "reported_at" field in the mutation.
func (m *UsageLedgerEntryMutation) ReportedAt() (r time.Time, exists bool) {
	v := m.reported_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReportedAt returns the old "reported_at" field's value of the UsageLedgerEntry entity.
// If the UsageLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLedgerEntryMutation) OldReportedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportedAt: %w", err)
	}
	return oldValue.ReportedAt, nil
}

// ClearReportedAt clears the value of the "reported_at" field.
func (m *UsageLedgerEntryMutation) ClearReportedAt() {
	m.reported_at = nil
	m.clearedFields[usageledgerentry.FieldReportedAt] = struct{}{}
}

// ReportedAtCleared returns if the "reported_at" field was cleared in this mutation.
func (m *UsageLedgerEntryMutation) ReportedAtCleared() bool {
	_, ok := m.clearedFields[usageledgerentry.FieldReportedAt]
	return ok
}

// ResetReportedAt resets all changes to the "reported_at" field.
func (m *UsageLedgerEntryMutation) ResetReportedAt() {
	m.reported_at = nil
	delete(m.clearedFields, usageledgerentry.FieldReportedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UsageLedgerEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UsageLedgerEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UsageLedgerEntry entity.
// If the UsageLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLedgerEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UsageLedgerEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UsageLedgerEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UsageLedgerEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UsageLedgerEntry entity.
// If the UsageLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLedgerEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UsageLedgerEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCallRecord clears the "call_record" edge to the CallRecord entity.
func (m *UsageLedgerEntryMutation) ClearCallRecord() {
	m.clearedcall_record = true
	m.clearedFields[usageledgerentry.FieldCallRecordID] = struct{}{}
}

// CallRecordCleared reports if the "call_record" edge to the CallRecord entity was cleared.
func (m *UsageLedgerEntryMutation) CallRecordCleared() bool {
	return m.clearedcall_record
}

// CallRecordIDs returns the "call_record" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CallRecordID instead. It exists only for internal usage by the builders.
func (m *UsageLedgerEntryMutation) CallRecordIDs() (ids []int) {
	if id := m.call_record; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCallRecord resets all changes to the "call_record" edge.
func (m *UsageLedgerEntryMutation) ResetCallRecord() {
	m.call_record = nil
	m.clearedcall_record = false
}

// Where appends a list predicates to the UsageLedgerEntryMutation builder.
func (m *UsageLedgerEntryMutation) Where(ps ...predicate.UsageLedgerEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsageLedgerEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsageLedgerEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UsageLedgerEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsageLedgerEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsageLedgerEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UsageLedgerEntry).
func (m *UsageLedgerEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsageLedgerEntryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant_id != nil {
		fields = append(fields, usageledgerentry.FieldTenantID)
	}
	if m.call_record != nil {
		fields = append(fields, usageledgerentry.FieldCallRecordID)
	}
	if m.amount_cents != nil {
		fields = append(fields, usageledgerentry.FieldAmountCents)
	}
	if m.entry_type != nil {
		fields = append(fields, usageledgerentry.FieldEntryType)
	}
	if m.occurred_at != nil {
		fields = append(fields, usageledgerentry.FieldOccurredAt)
	}
	if m.reported_at != nil {
		fields = append(fields, usageledgerentry.FieldReportedAt)
	}
	if m.created_at != nil {
		fields = append(fields, usageledgerentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usageledgerentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsageLedgerEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usageledgerentry.FieldTenantID:
		return m.TenantID()
	case usageledgerentry.FieldCallRecordID:
		return m.CallRecordID()
	case usageledgerentry.FieldAmountCents:
		return m.AmountCents()
	case usageledgerentry.FieldEntryType:
		return m.EntryType()
	case usageledgerentry.FieldOccurredAt:
		return m.OccurredAt()
	case usageledgerentry.FieldReportedAt:
		return m.ReportedAt()
	case usageledgerentry.FieldCreatedAt:
		return m.CreatedAt()
	case usageledgerentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsageLedgerEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usageledgerentry.FieldTenantID:
		return m.OldTenantID(ctx)
	case usageledgerentry.FieldCallRecordID:
		return m.OldCallRecordID(ctx)
	case usageledgerentry.FieldAmountCents:
		return m.OldAmountCents(ctx)
	case usageledgerentry.FieldEntryType:
		return m.OldEntryType(ctx)
	case usageledgerentry.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case usageledgerentry.FieldReportedAt:
		return m.OldReportedAt(ctx)
	case usageledgerentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usageledgerentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UsageLedgerEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageLedgerEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usageledgerentry.FieldTenantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case usageledgerentry.FieldCallRecordID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallRecordID(v)
		return nil
	case usageledgerentry.FieldAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountCents(v)
		return nil
	case usageledgerentry.FieldEntryType:
		v, ok := value.(usageledgerentry.EntryType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntryType(v)
		return nil
	case usageledgerentry.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case usageledgerentry.FieldReportedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportedAt(v)
		return nil
	case usageledgerentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usageledgerentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UsageLedgerEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsageLedgerEntryMutation) AddedFields() []string {
	var fields []string
	if m.addtenant_id != nil {
		fields = append(fields, usageledgerentry.FieldTenantID)
	}
	if m.addamount_cents != nil {
		fields = append(fields, usageledgerentry.FieldAmountCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsageLedgerEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usageledgerentry.FieldTenantID:
		return m.AddedTenantID()
	case usageledgerentry.FieldAmountCents:
		return m.AddedAmountCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageLedgerEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usageledgerentry.FieldTenantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTenantID(v)
		return nil
	case usageledgerentry.FieldAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountCents(v)
		return nil
	}
	return fmt.Errorf("unknown UsageLedgerEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsageLedgerEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usageledgerentry.FieldReportedAt) {
		fields = append(fields, usageledgerentry.FieldReportedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsageLedgerEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsageLedgerEntryMutation) ClearField(name string) error {
	switch name {
	case usageledgerentry.FieldReportedAt:
		m.ClearReportedAt()
		return nil
	}
	return fmt.Errorf("unknown UsageLedgerEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsageLedgerEntryMutation) ResetField(name string) error {
	switch name {
	case usageledgerentry.FieldTenantID:
		m.ResetTenantID()
		return nil
	case usageledgerentry.FieldCallRecordID:
		m.ResetCallRecordID()
		return nil
	case usageledgerentry.FieldAmountCents:
		m.ResetAmountCents()
		return nil
	case usageledgerentry.FieldEntryType:
		m.ResetEntryType()
		return nil
	case usageledgerentry.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case usageledgerentry.FieldReportedAt:
		m.ResetReportedAt()
		return nil
	case usageledgerentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usageledgerentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UsageLedgerEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsageLedgerEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.call_record != nil {
		edges = append(edges, usageledgerentry.EdgeCallRecord)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsageLedgerEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usageledgerentry.EdgeCallRecord:
		if id := m.call_record; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsageLedgerEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsageLedgerEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsageLedgerEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcall_record {
		edges = append(edges, usageledgerentry.EdgeCallRecord)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsageLedgerEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case usageledgerentry.EdgeCallRecord:
		return m.clearedcall_record
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsageLedgerEntryMutation) ClearEdge(name string) error {
	switch name {
	case usageledgerentry.EdgeCallRecord:
		m.ClearCallRecord()
		return nil
	}
	return fmt.Errorf("unknown UsageLedgerEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsageLedgerEntryMutation) ResetEdge(name string) error {
	switch name {
	case usageledgerentry.EdgeCallRecord:
		m.ResetCallRecord()
		return nil
	}
	return fmt.Errorf("unknown UsageLedgerEntry edge %s", name)
}
