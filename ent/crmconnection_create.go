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
	"github.com/ringledger/ringledger/ent/tenant"
)

// CRMConnectionCreate is the builder for creating a CRMConnection entity.
type CRMConnectionCreate struct {
	config
	mutation *CRMConnectionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (ccc *CRMConnectionCreate) SetTenantID(i int) *CRMConnectionCreate {
	ccc.mutation.SetTenantID(i)
	return ccc
}

// SetLocationID sets the "location_id" field.
func (ccc *CRMConnectionCreate) SetLocationID(s string) *CRMConnectionCreate {
	ccc.mutation.SetLocationID(s)
	return ccc
}

// SetAccessToken sets the "access_token" field.
func (ccc *CRMConnectionCreate) SetAccessToken(s string) *CRMConnectionCreate {
	ccc.mutation.SetAccessToken(s)
	return ccc
}

// SetRefreshToken sets the "refresh_token" field.
func (ccc *CRMConnectionCreate) SetRefreshToken(s string) *CRMConnectionCreate {
	ccc.mutation.SetRefreshToken(s)
	return ccc
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (ccc *CRMConnectionCreate) SetTokenExpiresAt(t time.Time) *CRMConnectionCreate {
	ccc.mutation.SetTokenExpiresAt(t)
	return ccc
}

// SetNillableTokenExpiresAt sets the "token_expires_at" field if the given value is not nil.
func (ccc *CRMConnectionCreate) SetNillableTokenExpiresAt(t *time.Time) *CRMConnectionCreate {
	if t != nil {
		ccc.SetTokenExpiresAt(*t)
	}
	return ccc
}

// SetAutoSync sets the "auto_sync" field.
func (ccc *CRMConnectionCreate) SetAutoSync(b bool) *CRMConnectionCreate {
	ccc.mutation.SetAutoSync(b)
	return ccc
}

// SetNillableAutoSync sets the "auto_sync" field if the given value is not nil.
func (ccc *CRMConnectionCreate) SetNillableAutoSync(b *bool) *CRMConnectionCreate {
	if b != nil {
		ccc.SetAutoSync(*b)
	}
	return ccc
}

// SetSyncIntervalMinutes sets the "sync_interval_minutes" field.
func (ccc *CRMConnectionCreate) SetSyncIntervalMinutes(i int) *CRMConnectionCreate {
	ccc.mutation.SetSyncIntervalMinutes(i)
	return ccc
}

// SetNillableSyncIntervalMinutes sets the "sync_interval_minutes" field if the given value is not nil.
func (ccc *CRMConnectionCreate) SetNillableSyncIntervalMinutes(i *int) *CRMConnectionCreate {
	if i != nil {
		ccc.SetSyncIntervalMinutes(*i)
	}
	return ccc
}

// SetLastSyncAt sets the "last_sync_at" field.
func (ccc *CRMConnectionCreate) SetLastSyncAt(t time.Time) *CRMConnectionCreate {
	ccc.mutation.SetLastSyncAt(t)
	return ccc
}

// SetNillableLastSyncAt sets the "last_sync_at" field if the given value is not nil.
func (ccc *CRMConnectionCreate) SetNillableLastSyncAt(t *time.Time) *CRMConnectionCreate {
	if t != nil {
		ccc.SetLastSyncAt(*t)
	}
	return ccc
}

// SetLastSyncError sets the "last_sync_error" field.
func (ccc *CRMConnectionCreate) SetLastSyncError(s string) *CRMConnectionCreate {
	ccc.mutation.SetLastSyncError(s)
	return ccc
}

// SetNillableLastSyncError sets the "last_sync_error" field if the given value is not nil.
func (ccc *CRMConnectionCreate) SetNillableLastSyncError(s *string) *CRMConnectionCreate {
	if s != nil {
		ccc.SetLastSyncError(*s)
	}
	return ccc
}

// SetCreatedAt sets the "created_at" field.
func (ccc *CRMConnectionCreate) SetCreatedAt(t time.Time) *CRMConnectionCreate {
	ccc.mutation.SetCreatedAt(t)
	return ccc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ccc *CRMConnectionCreate) SetNillableCreatedAt(t *time.Time) *CRMConnectionCreate {
	if t != nil {
		ccc.SetCreatedAt(*t)
	}
	return ccc
}

// SetUpdatedAt sets the "updated_at" field.
func (ccc *CRMConnectionCreate) SetUpdatedAt(t time.Time) *CRMConnectionCreate {
	ccc.mutation.SetUpdatedAt(t)
	return ccc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ccc *CRMConnectionCreate) SetNillableUpdatedAt(t *time.Time) *CRMConnectionCreate {
	if t != nil {
		ccc.SetUpdatedAt(*t)
	}
	return ccc
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (ccc *CRMConnectionCreate) SetTenant(t *Tenant) *CRMConnectionCreate {
	return ccc.SetTenantID(t.ID)
}

// Mutation returns the CRMConnectionMutation object of the builder.
func (ccc *CRMConnectionCreate) Mutation() *CRMConnectionMutation {
	return ccc.mutation
}

// Save creates the CRMConnection in the database.
func (ccc *CRMConnectionCreate) Save(ctx context.Context) (*CRMConnection, error) {
	ccc.defaults()
	return withHooks(ctx, ccc.sqlSave, ccc.mutation, ccc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ccc *CRMConnectionCreate) SaveX(ctx context.Context) *CRMConnection {
	v, err := ccc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ccc *CRMConnectionCreate) Exec(ctx context.Context) error {
	_, err := ccc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ccc *CRMConnectionCreate) ExecX(ctx context.Context) {
	if err := ccc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ccc *CRMConnectionCreate) defaults() {
	if _, ok := ccc.mutation.AutoSync(); !ok {
		v := crmconnection.DefaultAutoSync
		ccc.mutation.SetAutoSync(v)
	}
	if _, ok := ccc.mutation.SyncIntervalMinutes(); !ok {
		v := crmconnection.DefaultSyncIntervalMinutes
		ccc.mutation.SetSyncIntervalMinutes(v)
	}
	if _, ok := ccc.mutation.CreatedAt(); !ok {
		v := crmconnection.DefaultCreatedAt()
		ccc.mutation.SetCreatedAt(v)
	}
	if _, ok := ccc.mutation.UpdatedAt(); !ok {
		v := crmconnection.DefaultUpdatedAt()
		ccc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ccc *CRMConnectionCreate) check() error {
	if _, ok := ccc.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "CRMConnection.tenant_id"`)}
	}
	if _, ok := ccc.mutation.LocationID(); !ok {
		return &ValidationError{Name: "location_id", err: errors.New(`ent: missing required field "CRMConnection.location_id"`)}
	}
	if v, ok := ccc.mutation.LocationID(); ok {
		if err := crmconnection.LocationIDValidator(v); err != nil {
			return &ValidationError{Name: "location_id", err: fmt.Errorf(`ent: validator failed for field "CRMConnection.location_id": %w`, err)}
		}
	}
	if _, ok := ccc.mutation.AccessToken(); !ok {
		return &ValidationError{Name: "access_token", err: errors.New(`ent: missing required field "CRMConnection.access_token"`)}
	}
	if _, ok := ccc.mutation.RefreshToken(); !ok {
		return &ValidationError{Name: "refresh_token", err: errors.New(`ent: missing required field "CRMConnection.refresh_token"`)}
	}
	if _, ok := ccc.mutation.AutoSync(); !ok {
		return &ValidationError{Name: "auto_sync", err: errors.New(`ent: missing required field "CRMConnection.auto_sync"`)}
	}
	if _, ok := ccc.mutation.SyncIntervalMinutes(); !ok {
		return &ValidationError{Name: "sync_interval_minutes", err: errors.New(`ent: missing required field "CRMConnection.sync_interval_minutes"`)}
	}
	if v, ok := ccc.mutation.SyncIntervalMinutes(); ok {
		if err := crmconnection.SyncIntervalMinutesValidator(v); err != nil {
			return &ValidationError{Name: "sync_interval_minutes", err: fmt.Errorf(`ent: validator failed for field "CRMConnection.sync_interval_minutes": %w`, err)}
		}
	}
	if _, ok := ccc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CRMConnection.created_at"`)}
	}
	if _, ok := ccc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CRMConnection.updated_at"`)}
	}
	if len(ccc.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "CRMConnection.tenant"`)}
	}
	return nil
}

func (ccc *CRMConnectionCreate) sqlSave(ctx context.Context) (*CRMConnection, error) {
	if err := ccc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ccc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ccc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ccc.mutation.id = &_node.ID
	ccc.mutation.done = true
	return _node, nil
}

func (ccc *CRMConnectionCreate) createSpec() (*CRMConnection, *sqlgraph.CreateSpec) {
	var (
		_node = &CRMConnection{config: ccc.config}
		_spec = sqlgraph.NewCreateSpec(crmconnection.Table, sqlgraph.NewFieldSpec(crmconnection.FieldID, field.TypeInt))
	)
	_spec.OnConflict = ccc.conflict
	if value, ok := ccc.mutation.LocationID(); ok {
		_spec.SetField(crmconnection.FieldLocationID, field.TypeString, value)
		_node.LocationID = value
	}
	if value, ok := ccc.mutation.AccessToken(); ok {
		_spec.SetField(crmconnection.FieldAccessToken, field.TypeString, value)
		_node.AccessToken = value
	}
	if value, ok := ccc.mutation.RefreshToken(); ok {
		_spec.SetField(crmconnection.FieldRefreshToken, field.TypeString, value)
		_node.RefreshToken = value
	}
	if value, ok := ccc.mutation.TokenExpiresAt(); ok {
		_spec.SetField(crmconnection.FieldTokenExpiresAt, field.TypeTime, value)
		_node.TokenExpiresAt = &value
	}
	if value, ok := ccc.mutation.AutoSync(); ok {
		_spec.SetField(crmconnection.FieldAutoSync, field.TypeBool, value)
		_node.AutoSync = value
	}
	if value, ok := ccc.mutation.SyncIntervalMinutes(); ok {
		_spec.SetField(crmconnection.FieldSyncIntervalMinutes, field.TypeInt, value)
		_node.SyncIntervalMinutes = value
	}
	if value, ok := ccc.mutation.LastSyncAt(); ok {
		_spec.SetField(crmconnection.FieldLastSyncAt, field.TypeTime, value)
		_node.LastSyncAt = &value
	}
	if value, ok := ccc.mutation.LastSyncError(); ok {
		_spec.SetField(crmconnection.FieldLastSyncError, field.TypeString, value)
		_node.LastSyncError = value
	}
	if value, ok := ccc.mutation.CreatedAt(); ok {
		_spec.SetField(crmconnection.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ccc.mutation.UpdatedAt(); ok {
		_spec.SetField(crmconnection.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := ccc.mutation.TenantIDs(); len(nodes) > 0 {
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
		_node.TenantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CRMConnection.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CRMConnectionUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (ccc *CRMConnectionCreate) OnConflict(opts ...sql.ConflictOption) *CRMConnectionUpsertOne {
	ccc.conflict = opts
	return &CRMConnectionUpsertOne{
		create: ccc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CRMConnection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ccc *CRMConnectionCreate) OnConflictColumns(columns ...string) *CRMConnectionUpsertOne {
	ccc.conflict = append(ccc.conflict, sql.ConflictColumns(columns...))
	return &CRMConnectionUpsertOne{
		create: ccc,
	}
}

type (
	// CRMConnectionUpsertOne is the builder for "upsert"-ing
	//  one CRMConnection node.
	CRMConnectionUpsertOne struct {
		create *CRMConnectionCreate
	}

	// CRMConnectionUpsert is the "OnConflict" setter.
	CRMConnectionUpsert struct {
		*sql.UpdateSet
	}
)

// SetTenantID sets the "tenant_id" field.
func (u *CRMConnectionUpsert) SetTenantID(v int) *CRMConnectionUpsert {
	u.Set(crmconnection.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *CRMConnectionUpsert) UpdateTenantID() *CRMConnectionUpsert {
	u.SetExcluded(crmconnection.FieldTenantID)
	return u
}

// SetLocationID sets the "location_id" field.
func (u *CRMConnectionUpsert) SetLocationID(v string) *CRMConnectionUpsert {
	u.Set(crmconnection.FieldLocationID, v)
	return u
}

// UpdateLocationID sets the "location_id" field to the value that was provided on create.
func (u *CRMConnectionUpsert) UpdateLocationID() *CRMConnectionUpsert {
	u.SetExcluded(crmconnection.FieldLocationID)
	return u
}

// SetAccessToken sets the "access_token" field.
func (u *CRMConnectionUpsert) SetAccessToken(v string) *CRMConnectionUpsert {
	u.Set(crmconnection.FieldAccessToken, v)
	return u
}

// UpdateAccessToken sets the "access_token" field to the value that was provided on create.
func (u *CRMConnectionUpsert) UpdateAccessToken() *CRMConnectionUpsert {
	u.SetExcluded(crmconnection.FieldAccessToken)
	return u
}

// SetRefreshToken sets the "refresh_token" field.
func (u *CRMConnectionUpsert) SetRefreshToken(v string) *CRMConnectionUpsert {
	u.Set(crmconnection.FieldRefreshToken, v)
	return u
}

// UpdateRefreshToken sets the "refresh_token" field to the value that was provided on create.
func (u *CRMConnectionUpsert) UpdateRefreshToken() *CRMConnectionUpsert {
	u.SetExcluded(crmconnection.FieldRefreshToken)
	return u
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (u *CRMConnectionUpsert) SetTokenExpiresAt(v time.Time) *CRMConnectionUpsert {
	u.Set(crmconnection.FieldTokenExpiresAt, v)
	return u
}

// UpdateTokenExpiresAt sets the "token_expires_at" field to the value that was provided on create.
func (u *CRMConnectionUpsert) UpdateTokenExpiresAt() *CRMConnectionUpsert {
	u.SetExcluded(crmconnection.FieldTokenExpiresAt)
	return u
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (u *CRMConnectionUpsert) ClearTokenExpiresAt() *CRMConnectionUpsert {
	u.SetNull(crmconnection.FieldTokenExpiresAt)
	return u
}

// SetAutoSync sets the "auto_sync" field.
func (u *CRMConnectionUpsert) SetAutoSync(v bool) *CRMConnectionUpsert {
	u.Set(crmconnection.FieldAutoSync, v)
	return u
}

// UpdateAutoSync sets the "auto_sync" field to the value that was provided on create.
func (u *CRMConnectionUpsert) UpdateAutoSync() *CRMConnectionUpsert {
	u.SetExcluded(crmconnection.FieldAutoSync)
	return u
}

// SetSyncIntervalMinutes sets the "sync_interval_minutes" field.
func (u *CRMConnectionUpsert) SetSyncIntervalMinutes(v int) *CRMConnectionUpsert {
	u.Set(crmconnection.FieldSyncIntervalMinutes, v)
	return u
}

// UpdateSyncIntervalMinutes sets the "sync_interval_minutes" field to the value that was provided on create.
func (u *CRMConnectionUpsert) UpdateSyncIntervalMinutes() *CRMConnectionUpsert {
	u.SetExcluded(crmconnection.FieldSyncIntervalMinutes)
	return u
}

// AddSyncIntervalMinutes adds v to the "sync_interval_minutes" field.
func (u *CRMConnectionUpsert) AddSyncIntervalMinutes(v int) *CRMConnectionUpsert {
	u.Add(crmconnection.FieldSyncIntervalMinutes, v)
	return u
}

// SetLastSyncAt sets the "last_sync_at" field.
func (u *CRMConnectionUpsert) SetLastSyncAt(v time.Time) *CRMConnectionUpsert {
	u.Set(crmconnection.FieldLastSyncAt, v)
	return u
}

// UpdateLastSyncAt sets the "last_sync_at" field to the value that was provided on create.
func (u *CRMConnectionUpsert) UpdateLastSyncAt() *CRMConnectionUpsert {
	u.SetExcluded(crmconnection.FieldLastSyncAt)
	return u
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (u *CRMConnectionUpsert) ClearLastSyncAt() *CRMConnectionUpsert {
	u.SetNull(crmconnection.FieldLastSyncAt)
	return u
}

// SetLastSyncError sets the "last_sync_error" field.
func (u *CRMConnectionUpsert) SetLastSyncError(v string) *CRMConnectionUpsert {
	u.Set(crmconnection.FieldLastSyncError, v)
	return u
}

// UpdateLastSyncError sets the "last_sync_error" field to the value that was provided on create.
func (u *CRMConnectionUpsert) UpdateLastSyncError() *CRMConnectionUpsert {
	u.SetExcluded(crmconnection.FieldLastSyncError)
	return u
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (u *CRMConnectionUpsert) ClearLastSyncError() *CRMConnectionUpsert {
	u.SetNull(crmconnection.FieldLastSyncError)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CRMConnectionUpsert) SetUpdatedAt(v time.Time) *CRMConnectionUpsert {
	u.Set(crmconnection.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CRMConnectionUpsert) UpdateUpdatedAt() *CRMConnectionUpsert {
	u.SetExcluded(crmconnection.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CRMConnection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CRMConnectionUpsertOne) UpdateNewValues() *CRMConnectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(crmconnection.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CRMConnection.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CRMConnectionUpsertOne) Ignore() *CRMConnectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CRMConnectionUpsertOne) DoNothing() *CRMConnectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CRMConnectionCreate.OnConflict
// documentation for more info.
func (u *CRMConnectionUpsertOne) Update(set func(*CRMConnectionUpsert)) *CRMConnectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CRMConnectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *CRMConnectionUpsertOne) SetTenantID(v int) *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *CRMConnectionUpsertOne) UpdateTenantID() *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateTenantID()
	})
}

// SetLocationID sets the "location_id" field.
func (u *CRMConnectionUpsertOne) SetLocationID(v string) *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetLocationID(v)
	})
}

// UpdateLocationID sets the "location_id" field to the value that was provided on create.
func (u *CRMConnectionUpsertOne) UpdateLocationID() *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateLocationID()
	})
}

// SetAccessToken sets the "access_token" field.
func (u *CRMConnectionUpsertOne) SetAccessToken(v string) *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetAccessToken(v)
	})
}

// UpdateAccessToken sets the "access_token" field to the value that was provided on create.
func (u *CRMConnectionUpsertOne) UpdateAccessToken() *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateAccessToken()
	})
}

// SetRefreshToken sets the "refresh_token" field.
func (u *CRMConnectionUpsertOne) SetRefreshToken(v string) *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetRefreshToken(v)
	})
}

// UpdateRefreshToken sets the "refresh_token" field to the value that was provided on create.
func (u *CRMConnectionUpsertOne) UpdateRefreshToken() *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateRefreshToken()
	})
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (u *CRMConnectionUpsertOne) SetTokenExpiresAt(v time.Time) *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetTokenExpiresAt(v)
	})
}

// UpdateTokenExpiresAt sets the "token_expires_at" field to the value that was provided on create.
func (u *CRMConnectionUpsertOne) UpdateTokenExpiresAt() *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateTokenExpiresAt()
	})
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (u *CRMConnectionUpsertOne) ClearTokenExpiresAt() *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.ClearTokenExpiresAt()
	})
}

// SetAutoSync sets the "auto_sync" field.
func (u *CRMConnectionUpsertOne) SetAutoSync(v bool) *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetAutoSync(v)
	})
}

// UpdateAutoSync sets the "auto_sync" field to the value that was provided on create.
func (u *CRMConnectionUpsertOne) UpdateAutoSync() *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateAutoSync()
	})
}

// SetSyncIntervalMinutes sets the "sync_interval_minutes" field.
func (u *CRMConnectionUpsertOne) SetSyncIntervalMinutes(v int) *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetSyncIntervalMinutes(v)
	})
}

// AddSyncIntervalMinutes adds v to the "sync_interval_minutes" field.
func (u *CRMConnectionUpsertOne) AddSyncIntervalMinutes(v int) *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.AddSyncIntervalMinutes(v)
	})
}

// UpdateSyncIntervalMinutes sets the "sync_interval_minutes" field to the value that was provided on create.
func (u *CRMConnectionUpsertOne) UpdateSyncIntervalMinutes() *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateSyncIntervalMinutes()
	})
}

// SetLastSyncAt sets the "last_sync_at" field.
func (u *CRMConnectionUpsertOne) SetLastSyncAt(v time.Time) *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetLastSyncAt(v)
	})
}

// UpdateLastSyncAt sets the "last_sync_at" field to the value that was provided on create.
func (u *CRMConnectionUpsertOne) UpdateLastSyncAt() *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateLastSyncAt()
	})
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (u *CRMConnectionUpsertOne) ClearLastSyncAt() *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.ClearLastSyncAt()
	})
}

// SetLastSyncError sets the "last_sync_error" field.
func (u *CRMConnectionUpsertOne) SetLastSyncError(v string) *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetLastSyncError(v)
	})
}

// UpdateLastSyncError sets the "last_sync_error" field to the value that was provided on create.
func (u *CRMConnectionUpsertOne) UpdateLastSyncError() *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateLastSyncError()
	})
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (u *CRMConnectionUpsertOne) ClearLastSyncError() *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.ClearLastSyncError()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CRMConnectionUpsertOne) SetUpdatedAt(v time.Time) *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CRMConnectionUpsertOne) UpdateUpdatedAt() *CRMConnectionUpsertOne {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CRMConnectionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CRMConnectionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CRMConnectionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CRMConnectionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CRMConnectionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CRMConnectionCreateBulk is the builder for creating many CRMConnection entities in bulk.
type CRMConnectionCreateBulk struct {
	config
	err      error
	builders []*CRMConnectionCreate
	conflict []sql.ConflictOption
}

// Save creates the CRMConnection entities in the database.
func (cccb *CRMConnectionCreateBulk) Save(ctx context.Context) ([]*CRMConnection, error) {
	if cccb.err != nil {
		return nil, cccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cccb.builders))
	nodes := make([]*CRMConnection, len(cccb.builders))
	mutators := make([]Mutator, len(cccb.builders))
	for i := range cccb.builders {
		func(i int, root context.Context) {
			builder := cccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CRMConnectionMutation)
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
					_, err = mutators[i+1].Mutate(root, cccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = cccb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cccb *CRMConnectionCreateBulk) SaveX(ctx context.Context) []*CRMConnection {
	v, err := cccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cccb *CRMConnectionCreateBulk) Exec(ctx context.Context) error {
	_, err := cccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cccb *CRMConnectionCreateBulk) ExecX(ctx context.Context) {
	if err := cccb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CRMConnection.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CRMConnectionUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (cccb *CRMConnectionCreateBulk) OnConflict(opts ...sql.ConflictOption) *CRMConnectionUpsertBulk {
	cccb.conflict = opts
	return &CRMConnectionUpsertBulk{
		create: cccb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CRMConnection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (cccb *CRMConnectionCreateBulk) OnConflictColumns(columns ...string) *CRMConnectionUpsertBulk {
	cccb.conflict = append(cccb.conflict, sql.ConflictColumns(columns...))
	return &CRMConnectionUpsertBulk{
		create: cccb,
	}
}

// CRMConnectionUpsertBulk is the builder for "upsert"-ing
// a bulk of CRMConnection nodes.
type CRMConnectionUpsertBulk struct {
	create *CRMConnectionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CRMConnection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CRMConnectionUpsertBulk) UpdateNewValues() *CRMConnectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(crmconnection.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CRMConnection.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CRMConnectionUpsertBulk) Ignore() *CRMConnectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CRMConnectionUpsertBulk) DoNothing() *CRMConnectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CRMConnectionCreateBulk.OnConflict
// documentation for more info.
func (u *CRMConnectionUpsertBulk) Update(set func(*CRMConnectionUpsert)) *CRMConnectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CRMConnectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *CRMConnectionUpsertBulk) SetTenantID(v int) *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *CRMConnectionUpsertBulk) UpdateTenantID() *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateTenantID()
	})
}

// SetLocationID sets the "location_id" field.
func (u *CRMConnectionUpsertBulk) SetLocationID(v string) *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetLocationID(v)
	})
}

// UpdateLocationID sets the "location_id" field to the value that was provided on create.
func (u *CRMConnectionUpsertBulk) UpdateLocationID() *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateLocationID()
	})
}

// SetAccessToken sets the "access_token" field.
func (u *CRMConnectionUpsertBulk) SetAccessToken(v string) *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetAccessToken(v)
	})
}

// UpdateAccessToken sets the "access_token" field to the value that was provided on create.
func (u *CRMConnectionUpsertBulk) UpdateAccessToken() *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateAccessToken()
	})
}

// SetRefreshToken sets the "refresh_token" field.
func (u *CRMConnectionUpsertBulk) SetRefreshToken(v string) *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetRefreshToken(v)
	})
}

// UpdateRefreshToken sets the "refresh_token" field to the value that was provided on create.
func (u *CRMConnectionUpsertBulk) UpdateRefreshToken() *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateRefreshToken()
	})
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (u *CRMConnectionUpsertBulk) SetTokenExpiresAt(v time.Time) *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetTokenExpiresAt(v)
	})
}

// UpdateTokenExpiresAt sets the "token_expires_at" field to the value that was provided on create.
func (u *CRMConnectionUpsertBulk) UpdateTokenExpiresAt() *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateTokenExpiresAt()
	})
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (u *CRMConnectionUpsertBulk) ClearTokenExpiresAt() *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.ClearTokenExpiresAt()
	})
}

// SetAutoSync sets the "auto_sync" field.
func (u *CRMConnectionUpsertBulk) SetAutoSync(v bool) *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetAutoSync(v)
	})
}

// UpdateAutoSync sets the "auto_sync" field to the value that was provided on create.
func (u *CRMConnectionUpsertBulk) UpdateAutoSync() *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateAutoSync()
	})
}

// SetSyncIntervalMinutes sets the "sync_interval_minutes" field.
func (u *CRMConnectionUpsertBulk) SetSyncIntervalMinutes(v int) *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetSyncIntervalMinutes(v)
	})
}

// AddSyncIntervalMinutes adds v to the "sync_interval_minutes" field.
func (u *CRMConnectionUpsertBulk) AddSyncIntervalMinutes(v int) *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.AddSyncIntervalMinutes(v)
	})
}

// UpdateSyncIntervalMinutes sets the "sync_interval_minutes" field to the value that was provided on create.
func (u *CRMConnectionUpsertBulk) UpdateSyncIntervalMinutes() *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateSyncIntervalMinutes()
	})
}

// SetLastSyncAt sets the "last_sync_at" field.
func (u *CRMConnectionUpsertBulk) SetLastSyncAt(v time.Time) *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetLastSyncAt(v)
	})
}

// UpdateLastSyncAt sets the "last_sync_at" field to the value that was provided on create.
func (u *CRMConnectionUpsertBulk) UpdateLastSyncAt() *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateLastSyncAt()
	})
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (u *CRMConnectionUpsertBulk) ClearLastSyncAt() *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.ClearLastSyncAt()
	})
}

// SetLastSyncError sets the "last_sync_error" field.
func (u *CRMConnectionUpsertBulk) SetLastSyncError(v string) *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetLastSyncError(v)
	})
}

// UpdateLastSyncError sets the "last_sync_error" field to the value that was provided on create.
func (u *CRMConnectionUpsertBulk) UpdateLastSyncError() *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateLastSyncError()
	})
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (u *CRMConnectionUpsertBulk) ClearLastSyncError() *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.ClearLastSyncError()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CRMConnectionUpsertBulk) SetUpdatedAt(v time.Time) *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CRMConnectionUpsertBulk) UpdateUpdatedAt() *CRMConnectionUpsertBulk {
	return u.Update(func(s *CRMConnectionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CRMConnectionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CRMConnectionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CRMConnectionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CRMConnectionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
