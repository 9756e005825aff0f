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
	"github.com/ringledger/ringledger/ent/crmconnection"
	"github.com/ringledger/ringledger/ent/predicate"
	"github.com/ringledger/ringledger/ent/tenant"
)

// CRMConnectionUpdate is the builder for updating CRMConnection entities.
type CRMConnectionUpdate struct {
	config
	hooks    []Hook
	mutation *CRMConnectionMutation
}

// Where appends a list predicates to the CRMConnectionUpdate builder.
func (ccu *CRMConnectionUpdate) Where(ps ...predicate.CRMConnection) *CRMConnectionUpdate {
	ccu.mutation.Where(ps...)
	return ccu
}

// SetTenantID sets the "tenant_id" field.
func (ccu *CRMConnectionUpdate) SetTenantID(i int) *CRMConnectionUpdate {
	ccu.mutation.SetTenantID(i)
	return ccu
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (ccu *CRMConnectionUpdate) SetNillableTenantID(i *int) *CRMConnectionUpdate {
	if i != nil {
		ccu.SetTenantID(*i)
	}
	return ccu
}

// SetLocationID sets the "location_id" field.
func (ccu *CRMConnectionUpdate) SetLocationID(s string) *CRMConnectionUpdate {
	ccu.mutation.SetLocationID(s)
	return ccu
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (ccu *CRMConnectionUpdate) SetNillableLocationID(s *string) *CRMConnectionUpdate {
	if s != nil {
		ccu.SetLocationID(*s)
	}
	return ccu
}

// SetAccessToken sets the "access_token" field.
func (ccu *CRMConnectionUpdate) SetAccessToken(s string) *CRMConnectionUpdate {
	ccu.mutation.SetAccessToken(s)
	return ccu
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (ccu *CRMConnectionUpdate) SetNillableAccessToken(s *string) *CRMConnectionUpdate {
	if s != nil {
		ccu.SetAccessToken(*s)
	}
	return ccu
}

// SetRefreshToken sets the "refresh_token" field.
func (ccu *CRMConnectionUpdate) SetRefreshToken(s string) *CRMConnectionUpdate {
	ccu.mutation.SetRefreshToken(s)
	return ccu
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (ccu *CRMConnectionUpdate) SetNillableRefreshToken(s *string) *CRMConnectionUpdate {
	if s != nil {
		ccu.SetRefreshToken(*s)
	}
	return ccu
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (ccu *CRMConnectionUpdate) SetTokenExpiresAt(t time.Time) *CRMConnectionUpdate {
	ccu.mutation.SetTokenExpiresAt(t)
	return ccu
}

// SetNillableTokenExpiresAt sets the "token_expires_at" field if the given value is not nil.
func (ccu *CRMConnectionUpdate) SetNillableTokenExpiresAt(t *time.Time) *CRMConnectionUpdate {
	if t != nil {
		ccu.SetTokenExpiresAt(*t)
	}
	return ccu
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (ccu *CRMConnectionUpdate) ClearTokenExpiresAt() *CRMConnectionUpdate {
	ccu.mutation.ClearTokenExpiresAt()
	return ccu
}

// SetAutoSync sets the "auto_sync" field.
func (ccu *CRMConnectionUpdate) SetAutoSync(b bool) *CRMConnectionUpdate {
	ccu.mutation.SetAutoSync(b)
	return ccu
}

// SetNillableAutoSync sets the "auto_sync" field if the given value is not nil.
func (ccu *CRMConnectionUpdate) SetNillableAutoSync(b *bool) *CRMConnectionUpdate {
	if b != nil {
		ccu.SetAutoSync(*b)
	}
	return ccu
}

// SetSyncIntervalMinutes sets the "sync_interval_minutes" field.
func (ccu *CRMConnectionUpdate) SetSyncIntervalMinutes(i int) *CRMConnectionUpdate {
	ccu.mutation.ResetSyncIntervalMinutes()
	ccu.mutation.SetSyncIntervalMinutes(i)
	return ccu
}

// SetNillableSyncIntervalMinutes sets the "sync_interval_minutes" field if the given value is not nil.
func (ccu *CRMConnectionUpdate) SetNillableSyncIntervalMinutes(i *int) *CRMConnectionUpdate {
	if i != nil {
		ccu.SetSyncIntervalMinutes(*i)
	}
	return ccu
}

// AddSyncIntervalMinutes adds i to the "sync_interval_minutes" field.
func (ccu *CRMConnectionUpdate) AddSyncIntervalMinutes(i int) *CRMConnectionUpdate {
	ccu.mutation.AddSyncIntervalMinutes(i)
	return ccu
}

// SetLastSyncAt sets the "last_sync_at" field.
func (ccu *CRMConnectionUpdate) SetLastSyncAt(t time.Time) *CRMConnectionUpdate {
	ccu.mutation.SetLastSyncAt(t)
	return ccu
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (ccu *CRMConnectionUpdate) SetNillableLastSyncAt(t *time.Time) *CRMConnectionUpdate {
	if t != nil {
		ccu.SetLastSyncAt(*t)
	}
	return ccu
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (ccu *CRMConnectionUpdate) ClearLastSyncAt() *CRMConnectionUpdate {
	ccu.mutation.ClearLastSyncAt()
	return ccu
}

// SetLastSyncError sets the "last_sync_error" field.
func (ccu *CRMConnectionUpdate) SetLastSyncError(s string) *CRMConnectionUpdate {
	ccu.mutation.SetLastSyncError(s)
	return ccu
}

// SetNillableLastSyncError sets the "last_sync_error" field if the given value is not nil.
func (ccu *CRMConnectionUpdate) SetNillableLastSyncError(s *string) *CRMConnectionUpdate {
	if s != nil {
		ccu.SetLastSyncError(*s)
	}
	return ccu
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (ccu *CRMConnectionUpdate) ClearLastSyncError() *CRMConnectionUpdate {
	ccu.mutation.ClearLastSyncError()
	return ccu
}

// SetUpdatedAt sets the "updated_at" field.
func (ccu *CRMConnectionUpdate) SetUpdatedAt(t time.Time) *CRMConnectionUpdate {
	ccu.mutation.SetUpdatedAt(t)
	return ccu
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (ccu *CRMConnectionUpdate) SetTenant(t *Tenant) *CRMConnectionUpdate {
	return ccu.SetTenantID(t.ID)
}

// Mutation returns the CRMConnectionMutation object of the builder.
func (ccu *CRMConnectionUpdate) Mutation() *CRMConnectionMutation {
	return ccu.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (ccu *CRMConnectionUpdate) ClearTenant() *CRMConnectionUpdate {
	ccu.mutation.ClearTenant()
	return ccu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ccu *CRMConnectionUpdate) Save(ctx context.Context) (int, error) {
	ccu.defaults()
	return withHooks(ctx, ccu.sqlSave, ccu.mutation, ccu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ccu *CRMConnectionUpdate) SaveX(ctx context.Context) int {
	affected, err := ccu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ccu *CRMConnectionUpdate) Exec(ctx context.Context) error {
	_, err := ccu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ccu *CRMConnectionUpdate) ExecX(ctx context.Context) {
	if err := ccu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ccu *CRMConnectionUpdate) defaults() {
	if _, ok := ccu.mutation.UpdatedAt(); !ok {
		v := crmconnection.UpdateDefaultUpdatedAt()
		ccu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ccu *CRMConnectionUpdate) check() error {
	if v, ok := ccu.mutation.LocationID(); ok {
		if err := crmconnection.LocationIDValidator(v); err != nil {
			return &ValidationError{Name: "location_id", err: fmt.Errorf(`ent: validator failed for field "CRMConnection.location_id": %w`, err)}
		}
	}
	if v, ok := ccu.mutation.SyncIntervalMinutes(); ok {
		if err := crmconnection.SyncIntervalMinutesValidator(v); err != nil {
			return &ValidationError{Name: "sync_interval_minutes", err: fmt.Errorf(`ent: validator failed for field "CRMConnection.sync_interval_minutes": %w`, err)}
		}
	}
	if ccu.mutation.TenantCleared() && len(ccu.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CRMConnection.tenant"`)
	}
	return nil
}

func (ccu *CRMConnectionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ccu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(crmconnection.Table, crmconnection.Columns, sqlgraph.NewFieldSpec(crmconnection.FieldID, field.TypeInt))
	if ps := ccu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ccu.mutation.LocationID(); ok {
		_spec.SetField(crmconnection.FieldLocationID, field.TypeString, value)
	}
	if value, ok := ccu.mutation.AccessToken(); ok {
		_spec.SetField(crmconnection.FieldAccessToken, field.TypeString, value)
	}
	if value, ok := ccu.mutation.RefreshToken(); ok {
		_spec.SetField(crmconnection.FieldRefreshToken, field.TypeString, value)
	}
	if value, ok := ccu.mutation.TokenExpiresAt(); ok {
		_spec.SetField(crmconnection.FieldTokenExpiresAt, field.TypeTime, value)
	}
	if ccu.mutation.TokenExpiresAtCleared() {
		_spec.ClearField(crmconnection.FieldTokenExpiresAt, field.TypeTime)
	}
	if value, ok := ccu.mutation.AutoSync(); ok {
		_spec.SetField(crmconnection.FieldAutoSync, field.TypeBool, value)
	}
	if value, ok := ccu.mutation.SyncIntervalMinutes(); ok {
		_spec.SetField(crmconnection.FieldSyncIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := ccu.mutation.AddedSyncIntervalMinutes(); ok {
		_spec.AddField(crmconnection.FieldSyncIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := ccu.mutation.LastSyncAt(); ok {
		_spec.SetField(crmconnection.FieldLastSyncAt, field.TypeTime, value)
	}
	if ccu.mutation.LastSyncAtCleared() {
		_spec.ClearField(crmconnection.FieldLastSyncAt, field.TypeTime)
	}
	if value, ok := ccu.mutation.LastSyncError(); ok {
		_spec.SetField(crmconnection.FieldLastSyncError, field.TypeString, value)
	}
	if ccu.mutation.LastSyncErrorCleared() {
		_spec.ClearField(crmconnection.FieldLastSyncError, field.TypeString)
	}
	if value, ok := ccu.mutation.UpdatedAt(); ok {
		_spec.SetField(crmconnection.FieldUpdatedAt, field.TypeTime, value)
	}
	if ccu.mutation.TenantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   crmconnection.TenantTable,
			Columns: []string{crmconnection.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccu.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   crmconnection.TenantTable,
			Columns: []string{crmconnection.TenantColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, ccu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crmconnection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ccu.mutation.done = true
	return n, nil
}

// CRMConnectionUpdateOne is the builder for updating a single CRMConnection entity.
type CRMConnectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CRMConnectionMutation
}

// SetTenantID sets the "tenant_id" field.
func (ccuo *CRMConnectionUpdateOne) SetTenantID(i int) *CRMConnectionUpdateOne {
	ccuo.mutation.SetTenantID(i)
	return ccuo
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (ccuo *CRMConnectionUpdateOne) SetNillableTenantID(i *int) *CRMConnectionUpdateOne {
	if i != nil {
		ccuo.SetTenantID(*i)
	}
	return ccuo
}

// SetLocationID sets the "location_id" field.
func (ccuo *CRMConnectionUpdateOne) SetLocationID(s string) *CRMConnectionUpdateOne {
	ccuo.mutation.SetLocationID(s)
	return ccuo
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (ccuo *CRMConnectionUpdateOne) SetNillableLocationID(s *string) *CRMConnectionUpdateOne {
	if s != nil {
		ccuo.SetLocationID(*s)
	}
	return ccuo
}

// SetAccessToken sets the "access_token" field.
func (ccuo *CRMConnectionUpdateOne) SetAccessToken(s string) *CRMConnectionUpdateOne {
	ccuo.mutation.SetAccessToken(s)
	return ccuo
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (ccuo *CRMConnectionUpdateOne) SetNillableAccessToken(s *string) *CRMConnectionUpdateOne {
	if s != nil {
		ccuo.SetAccessToken(*s)
	}
	return ccuo
}

// SetRefreshToken sets the "refresh_token" field.
func (ccuo *CRMConnectionUpdateOne) SetRefreshToken(s string) *CRMConnectionUpdateOne {
	ccuo.mutation.SetRefreshToken(s)
	return ccuo
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (ccuo *CRMConnectionUpdateOne) SetNillableRefreshToken(s *string) *CRMConnectionUpdateOne {
	if s != nil {
		ccuo.SetRefreshToken(*s)
	}
	return ccuo
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (ccuo *CRMConnectionUpdateOne) SetTokenExpiresAt(t time.Time) *CRMConnectionUpdateOne {
	ccuo.mutation.SetTokenExpiresAt(t)
	return ccuo
}

// SetNillableTokenExpiresAt sets the "token_expires_at" field if the given value is not nil.
func (ccuo *CRMConnectionUpdateOne) SetNillableTokenExpiresAt(t *time.Time) *CRMConnectionUpdateOne {
	if t != nil {
		ccuo.SetTokenExpiresAt(*t)
	}
	return ccuo
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (ccuo *CRMConnectionUpdateOne) ClearTokenExpiresAt() *CRMConnectionUpdateOne {
	ccuo.mutation.ClearTokenExpiresAt()
	return ccuo
}

// SetAutoSync sets the "auto_sync" field.
func (ccuo *CRMConnectionUpdateOne) SetAutoSync(b bool) *CRMConnectionUpdateOne {
	ccuo.mutation.SetAutoSync(b)
	return ccuo
}

// SetNillableAutoSync sets the "auto_sync" field if the given value is not nil.
func (ccuo *CRMConnectionUpdateOne) SetNillableAutoSync(b *bool) *CRMConnectionUpdateOne {
	if b != nil {
		ccuo.SetAutoSync(*b)
	}
	return ccuo
}

// SetSyncIntervalMinutes sets the "sync_interval_minutes" field.
func (ccuo *CRMConnectionUpdateOne) SetSyncIntervalMinutes(i int) *CRMConnectionUpdateOne {
	ccuo.mutation.ResetSyncIntervalMinutes()
	ccuo.mutation.SetSyncIntervalMinutes(i)
	return ccuo
}

// SetNillableSyncIntervalMinutes sets the "sync_interval_minutes" field if the given value is not nil.
func (ccuo *CRMConnectionUpdateOne) SetNillableSyncIntervalMinutes(i *int) *CRMConnectionUpdateOne {
	if i != nil {
		ccuo.SetSyncIntervalMinutes(*i)
	}
	return ccuo
}

// AddSyncIntervalMinutes adds i to the "sync_interval_minutes" field.
func (ccuo *CRMConnectionUpdateOne) AddSyncIntervalMinutes(i int) *CRMConnectionUpdateOne {
	ccuo.mutation.AddSyncIntervalMinutes(i)
	return ccuo
}

// SetLastSyncAt sets the "last_sync_at" field.
func (ccuo *CRMConnectionUpdateOne) SetLastSyncAt(t time.Time) *CRMConnectionUpdateOne {
	ccuo.mutation.SetLastSyncAt(t)
	return ccuo
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (ccuo *CRMConnectionUpdateOne) SetNillableLastSyncAt(t *time.Time) *CRMConnectionUpdateOne {
	if t != nil {
		ccuo.SetLastSyncAt(*t)
	}
	return ccuo
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (ccuo *CRMConnectionUpdateOne) ClearLastSyncAt() *CRMConnectionUpdateOne {
	ccuo.mutation.ClearLastSyncAt()
	return ccuo
}

// SetLastSyncError sets the "last_sync_error" field.
func (ccuo *CRMConnectionUpdateOne) SetLastSyncError(s string) *CRMConnectionUpdateOne {
	ccuo.mutation.SetLastSyncError(s)
	return ccuo
}

// SetNillableLastSyncError sets the "last_sync_error" field if the given value is not nil.
func (ccuo *CRMConnectionUpdateOne) SetNillableLastSyncError(s *string) *CRMConnectionUpdateOne {
	if s != nil {
		ccuo.SetLastSyncError(*s)
	}
	return ccuo
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (ccuo *CRMConnectionUpdateOne) ClearLastSyncError() *CRMConnectionUpdateOne {
	ccuo.mutation.ClearLastSyncError()
	return ccuo
}

// SetUpdatedAt sets the "updated_at" field.
func (ccuo *CRMConnectionUpdateOne) SetUpdatedAt(t time.Time) *CRMConnectionUpdateOne {
	ccuo.mutation.SetUpdatedAt(t)
	return ccuo
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (ccuo *CRMConnectionUpdateOne) SetTenant(t *Tenant) *CRMConnectionUpdateOne {
	return ccuo.SetTenantID(t.ID)
}

// Mutation returns the CRMConnectionMutation object of the builder.
func (ccuo *CRMConnectionUpdateOne) Mutation() *CRMConnectionMutation {
	return ccuo.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (ccuo *CRMConnectionUpdateOne) ClearTenant() *CRMConnectionUpdateOne {
	ccuo.mutation.ClearTenant()
	return ccuo
}

// Where appends a list predicates to the CRMConnectionUpdate builder.
func (ccuo *CRMConnectionUpdateOne) Where(ps ...predicate.CRMConnection) *CRMConnectionUpdateOne {
	ccuo.mutation.Where(ps...)
	return ccuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ccuo *CRMConnectionUpdateOne) Select(field string, fields ...string) *CRMConnectionUpdateOne {
	ccuo.fields = append([]string{field}, fields...)
	return ccuo
}

// Save executes the query and returns the updated CRMConnection entity.
func (ccuo *CRMConnectionUpdateOne) Save(ctx context.Context) (*CRMConnection, error) {
	ccuo.defaults()
	return withHooks(ctx, ccuo.sqlSave, ccuo.mutation, ccuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ccuo *CRMConnectionUpdateOne) SaveX(ctx context.Context) *CRMConnection {
	node, err := ccuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ccuo *CRMConnectionUpdateOne) Exec(ctx context.Context) error {
	_, err := ccuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ccuo *CRMConnectionUpdateOne) ExecX(ctx context.Context) {
	if err := ccuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ccuo *CRMConnectionUpdateOne) defaults() {
	if _, ok := ccuo.mutation.UpdatedAt(); !ok {
		v := crmconnection.UpdateDefaultUpdatedAt()
		ccuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ccuo *CRMConnectionUpdateOne) check() error {
	if v, ok := ccuo.mutation.LocationID(); ok {
		if err := crmconnection.LocationIDValidator(v); err != nil {
			return &ValidationError{Name: "location_id", err: fmt.Errorf(`ent: validator failed for field "CRMConnection.location_id": %w`, err)}
		}
	}
	if v, ok := ccuo.mutation.SyncIntervalMinutes(); ok {
		if err := crmconnection.SyncIntervalMinutesValidator(v); err != nil {
			return &ValidationError{Name: "sync_interval_minutes", err: fmt.Errorf(`ent: validator failed for field "CRMConnection.sync_interval_minutes": %w`, err)}
		}
	}
	if ccuo.mutation.TenantCleared() && len(ccuo.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CRMConnection.tenant"`)
	}
	return nil
}

func (ccuo *CRMConnectionUpdateOne) sqlSave(ctx context.Context) (_node *CRMConnection, err error) {
	if err := ccuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(crmconnection.Table, crmconnection.Columns, sqlgraph.NewFieldSpec(crmconnection.FieldID, field.TypeInt))
	id, ok := ccuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CRMConnection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ccuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, crmconnection.FieldID)
		for _, f := range fields {
			if !crmconnection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != crmconnection.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ccuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ccuo.mutation.LocationID(); ok {
		_spec.SetField(crmconnection.FieldLocationID, field.TypeString, value)
	}
	if value, ok := ccuo.mutation.AccessToken(); ok {
		_spec.SetField(crmconnection.FieldAccessToken, field.TypeString, value)
	}
	if value, ok := ccuo.mutation.RefreshToken(); ok {
		_spec.SetField(crmconnection.FieldRefreshToken, field.TypeString, value)
	}
	if value, ok := ccuo.mutation.TokenExpiresAt(); ok {
		_spec.SetField(crmconnection.FieldTokenExpiresAt, field.TypeTime, value)
	}
	if ccuo.mutation.TokenExpiresAtCleared() {
		_spec.ClearField(crmconnection.FieldTokenExpiresAt, field.TypeTime)
	}
	if value, ok := ccuo.mutation.AutoSync(); ok {
		_spec.SetField(crmconnection.FieldAutoSync, field.TypeBool, value)
	}
	if value, ok := ccuo.mutation.SyncIntervalMinutes(); ok {
		_spec.SetField(crmconnection.FieldSyncIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := ccuo.mutation.AddedSyncIntervalMinutes(); ok {
		_spec.AddField(crmconnection.FieldSyncIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := ccuo.mutation.LastSyncAt(); ok {
		_spec.SetField(crmconnection.FieldLastSyncAt, field.TypeTime, value)
	}
	if ccuo.mutation.LastSyncAtCleared() {
		_spec.ClearField(crmconnection.FieldLastSyncAt, field.TypeTime)
	}
	if value, ok := ccuo.mutation.LastSyncError(); ok {
		_spec.SetField(crmconnection.FieldLastSyncError, field.TypeString, value)
	}
	if ccuo.mutation.LastSyncErrorCleared() {
		_spec.ClearField(crmconnection.FieldLastSyncError, field.TypeString)
	}
	if value, ok := ccuo.mutation.UpdatedAt(); ok {
		_spec.SetField(crmconnection.FieldUpdatedAt, field.TypeTime, value)
	}
	if ccuo.mutation.TenantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   crmconnection.TenantTable,
			Columns: []string{crmconnection.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccuo.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   crmconnection.TenantTable,
			Columns: []string{crmconnection.TenantColumn},
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
	_node = &CRMConnection{config: ccuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ccuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crmconnection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ccuo.mutation.done = true
	return _node, nil
}
