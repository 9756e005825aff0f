// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringledger/ringledger/ent/deletedcall"
	"github.com/ringledger/ringledger/ent/predicate"
)

// DeletedCallUpdate is the builder for updating DeletedCall entities.
type DeletedCallUpdate struct {
	config
	hooks    []Hook
	mutation *DeletedCallMutation
}

// Where appends a list predicates to the DeletedCallUpdate builder.
func (dcu *DeletedCallUpdate) Where(ps ...predicate.DeletedCall) *DeletedCallUpdate {
	dcu.mutation.Where(ps...)
	return dcu
}

// SetTenantID sets the "tenant_id" field.
func (dcu *DeletedCallUpdate) SetTenantID(i int) *DeletedCallUpdate {
	dcu.mutation.ResetTenantID()
	dcu.mutation.SetTenantID(i)
	return dcu
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (dcu *DeletedCallUpdate) SetNillableTenantID(i *int) *DeletedCallUpdate {
	if i != nil {
		dcu.SetTenantID(*i)
	}
	return dcu
}

// AddTenantID adds i to the "tenant_id" field.
func (dcu *DeletedCallUpdate) AddTenantID(i int) *DeletedCallUpdate {
	dcu.mutation.AddTenantID(i)
	return dcu
}

// SetProviderCallID sets the "provider_call_id" field.
func (dcu *DeletedCallUpdate) SetProviderCallID(s string) *DeletedCallUpdate {
	dcu.mutation.SetProviderCallID(s)
	return dcu
}

// SetNillableProviderCallID sets the "provider_call_id" field if the given value is not nil.
func (dcu *DeletedCallUpdate) SetNillableProviderCallID(s *string) *DeletedCallUpdate {
	if s != nil {
		dcu.SetProviderCallID(*s)
	}
	return dcu
}

// SetDeletedBy sets the "deleted_by" field.
func (dcu *DeletedCallUpdate) SetDeletedBy(i int) *DeletedCallUpdate {
	dcu.mutation.ResetDeletedBy()
	dcu.mutation.SetDeletedBy(i)
	return dcu
}

// SetNillableDeletedBy sets the "deleted_by" field if the given value is not nil.
func (dcu *DeletedCallUpdate) SetNillableDeletedBy(i *int) *DeletedCallUpdate {
	if i != nil {
		dcu.SetDeletedBy(*i)
	}
	return dcu
}

// AddDeletedBy adds i to the "deleted_by" field.
func (dcu *DeletedCallUpdate) AddDeletedBy(i int) *DeletedCallUpdate {
	dcu.mutation.AddDeletedBy(i)
	return dcu
}

// ClearDeletedBy clears the value of the "deleted_by" field.
func (dcu *DeletedCallUpdate) ClearDeletedBy() *DeletedCallUpdate {
	dcu.mutation.ClearDeletedBy()
	return dcu
}

// Mutation returns the DeletedCallMutation object of the builder.
func (dcu *DeletedCallUpdate) Mutation() *DeletedCallMutation {
	return dcu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (dcu *DeletedCallUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, dcu.sqlSave, dcu.mutation, dcu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dcu *DeletedCallUpdate) SaveX(ctx context.Context) int {
	affected, err := dcu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (dcu *DeletedCallUpdate) Exec(ctx context.Context) error {
	_, err := dcu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dcu *DeletedCallUpdate) ExecX(ctx context.Context) {
	if err := dcu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dcu *DeletedCallUpdate) check() error {
	if v, ok := dcu.mutation.ProviderCallID(); ok {
		if err := deletedcall.ProviderCallIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_call_id", err: fmt.Errorf(`ent: validator failed for field "DeletedCall.provider_call_id": %w`, err)}
		}
	}
	return nil
}

func (dcu *DeletedCallUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := dcu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(deletedcall.Table, deletedcall.Columns, sqlgraph.NewFieldSpec(deletedcall.FieldID, field.TypeInt))
	if ps := dcu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := dcu.mutation.TenantID(); ok {
		_spec.SetField(deletedcall.FieldTenantID, field.TypeInt, value)
	}
	if value, ok := dcu.mutation.AddedTenantID(); ok {
		_spec.AddField(deletedcall.FieldTenantID, field.TypeInt, value)
	}
	if value, ok := dcu.mutation.ProviderCallID(); ok {
		_spec.SetField(deletedcall.FieldProviderCallID, field.TypeString, value)
	}
	if value, ok := dcu.mutation.DeletedBy(); ok {
		_spec.SetField(deletedcall.FieldDeletedBy, field.TypeInt, value)
	}
	if value, ok := dcu.mutation.AddedDeletedBy(); ok {
		_spec.AddField(deletedcall.FieldDeletedBy, field.TypeInt, value)
	}
	if dcu.mutation.DeletedByCleared() {
		_spec.ClearField(deletedcall.FieldDeletedBy, field.TypeInt)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, dcu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deletedcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	dcu.mutation.done = true
	return n, nil
}

// DeletedCallUpdateOne is the builder for updating a single DeletedCall entity.
type DeletedCallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeletedCallMutation
}

// SetTenantID sets the "tenant_id" field.
func (dcuo *DeletedCallUpdateOne) SetTenantID(i int) *DeletedCallUpdateOne {
	dcuo.mutation.ResetTenantID()
	dcuo.mutation.SetTenantID(i)
	return dcuo
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (dcuo *DeletedCallUpdateOne) SetNillableTenantID(i *int) *DeletedCallUpdateOne {
	if i != nil {
		dcuo.SetTenantID(*i)
	}
	return dcuo
}

// AddTenantID adds i to the "tenant_id" field.
func (dcuo *DeletedCallUpdateOne) AddTenantID(i int) *DeletedCallUpdateOne {
	dcuo.mutation.AddTenantID(i)
	return dcuo
}

// SetProviderCallID sets the "provider_call_id" field.
func (dcuo *DeletedCallUpdateOne) SetProviderCallID(s string) *DeletedCallUpdateOne {
	dcuo.mutation.SetProviderCallID(s)
	return dcuo
}

// SetNillableProviderCallID sets the "provider_call_id" field if the given value is not nil.
func (dcuo *DeletedCallUpdateOne) SetNillableProviderCallID(s *string) *DeletedCallUpdateOne {
	if s != nil {
		dcuo.SetProviderCallID(*s)
	}
	return dcuo
}

// SetDeletedBy sets the "deleted_by" field.
func (dcuo *DeletedCallUpdateOne) SetDeletedBy(i int) *DeletedCallUpdateOne {
	dcuo.mutation.ResetDeletedBy()
	dcuo.mutation.SetDeletedBy(i)
	return dcuo
}

// SetNillableDeletedBy sets the "deleted_by" field if the given value is not nil.
func (dcuo *DeletedCallUpdateOne) SetNillableDeletedBy(i *int) *DeletedCallUpdateOne {
	if i != nil {
		dcuo.SetDeletedBy(*i)
	}
	return dcuo
}

// AddDeletedBy adds i to the "deleted_by" field.
func (dcuo *DeletedCallUpdateOne) AddDeletedBy(i int) *DeletedCallUpdateOne {
	dcuo.mutation.AddDeletedBy(i)
	return dcuo
}

// ClearDeletedBy clears the value of the "deleted_by" field.
func (dcuo *DeletedCallUpdateOne) ClearDeletedBy() *DeletedCallUpdateOne {
	dcuo.mutation.ClearDeletedBy()
	return dcuo
}

// Mutation returns the DeletedCallMutation object of the builder.
func (dcuo *DeletedCallUpdateOne) Mutation() *DeletedCallMutation {
	return dcuo.mutation
}

// Where appends a list predicates to the DeletedCallUpdate builder.
func (dcuo *DeletedCallUpdateOne) Where(ps ...predicate.DeletedCall) *DeletedCallUpdateOne {
	dcuo.mutation.Where(ps...)
	return dcuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (dcuo *DeletedCallUpdateOne) Select(field string, fields ...string) *DeletedCallUpdateOne {
	dcuo.fields = append([]string{field}, fields...)
	return dcuo
}

// Save executes the query and returns the updated DeletedCall entity.
func (dcuo *DeletedCallUpdateOne) Save(ctx context.Context) (*DeletedCall, error) {
	return withHooks(ctx, dcuo.sqlSave, dcuo.mutation, dcuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dcuo *DeletedCallUpdateOne) SaveX(ctx context.Context) *DeletedCall {
	node, err := dcuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (dcuo *DeletedCallUpdateOne) Exec(ctx context.Context) error {
	_, err := dcuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dcuo *DeletedCallUpdateOne) ExecX(ctx context.Context) {
	if err := dcuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dcuo *DeletedCallUpdateOne) check() error {
	if v, ok := dcuo.mutation.ProviderCallID(); ok {
		if err := deletedcall.ProviderCallIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_call_id", err: fmt.Errorf(`ent: validator failed for field "DeletedCall.provider_call_id": %w`, err)}
		}
	}
	return nil
}

func (dcuo *DeletedCallUpdateOne) sqlSave(ctx context.Context) (_node *DeletedCall, err error) {
	if err := dcuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deletedcall.Table, deletedcall.Columns, sqlgraph.NewFieldSpec(deletedcall.FieldID, field.TypeInt))
	id, ok := dcuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeletedCall.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := dcuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deletedcall.FieldID)
		for _, f := range fields {
			if !deletedcall.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deletedcall.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := dcuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := dcuo.mutation.TenantID(); ok {
		_spec.SetField(deletedcall.FieldTenantID, field.TypeInt, value)
	}
	if value, ok := dcuo.mutation.AddedTenantID(); ok {
		_spec.AddField(deletedcall.FieldTenantID, field.TypeInt, value)
	}
	if value, ok := dcuo.mutation.ProviderCallID(); ok {
		_spec.SetField(deletedcall.FieldProviderCallID, field.TypeString, value)
	}
	if value, ok := dcuo.mutation.DeletedBy(); ok {
		_spec.SetField(deletedcall.FieldDeletedBy, field.TypeInt, value)
	}
	if value, ok := dcuo.mutation.AddedDeletedBy(); ok {
		_spec.AddField(deletedcall.FieldDeletedBy, field.TypeInt, value)
	}
	if dcuo.mutation.DeletedByCleared() {
		_spec.ClearField(deletedcall.FieldDeletedBy, field.TypeInt)
	}
	_node = &DeletedCall{config: dcuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, dcuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deletedcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	dcuo.mutation.done = true
	return _node, nil
}
