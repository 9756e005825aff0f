// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringledger/ringledger/ent/crmconnection"
	"github.com/ringledger/ringledger/ent/predicate"
)

// CRMConnectionDelete is the builder for deleting a CRMConnection entity.
type CRMConnectionDelete struct {
	config
	hooks    []Hook
	mutation *CRMConnectionMutation
}

// Where appends a list predicates to the CRMConnectionDelete builder.
func (ccd *CRMConnectionDelete) Where(ps ...predicate.CRMConnection) *CRMConnectionDelete {
	ccd.mutation.Where(ps...)
	return ccd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ccd *CRMConnectionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ccd.sqlExec, ccd.mutation, ccd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ccd *CRMConnectionDelete) ExecX(ctx context.Context) int {
	n, err := ccd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ccd *CRMConnectionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(crmconnection.Table, sqlgraph.NewFieldSpec(crmconnection.FieldID, field.TypeInt))
	if ps := ccd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ccd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ccd.mutation.done = true
	return affected, err
}

// CRMConnectionDeleteOne is the builder for deleting a single CRMConnection entity.
type CRMConnectionDeleteOne struct {
	ccd *CRMConnectionDelete
}

// Where appends a list predicates to the CRMConnectionDelete builder.
func (ccdo *CRMConnectionDeleteOne) Where(ps ...predicate.CRMConnection) *CRMConnectionDeleteOne {
	ccdo.ccd.mutation.Where(ps...)
	return ccdo
}

// Exec executes the deletion query.
func (ccdo *CRMConnectionDeleteOne) Exec(ctx context.Context) error {
	n, err := ccdo.ccd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{crmconnection.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ccdo *CRMConnectionDeleteOne) ExecX(ctx context.Context) {
	if err := ccdo.Exec(ctx); err != nil {
		panic(err)
	}
}
