// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringledger/ringledger/ent/predicate"
	"github.com/ringledger/ringledger/ent/usageledgerentry"
)

// UsageLedgerEntryDelete is the builder for deleting a UsageLedgerEntry entity.
type UsageLedgerEntryDelete struct {
	config
	hooks    []Hook
	mutation *UsageLedgerEntryMutation
}

// Where appends a list predicates to the UsageLedgerEntryDelete builder.
func (uled *UsageLedgerEntryDelete) Where(ps ...predicate.UsageLedgerEntry) *UsageLedgerEntryDelete {
	uled.mutation.Where(ps...)
	return uled
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (uled *UsageLedgerEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, uled.sqlExec, uled.mutation, uled.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (uled *UsageLedgerEntryDelete) ExecX(ctx context.Context) int {
	n, err := uled.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (uled *UsageLedgerEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(usageledgerentry.Table, sqlgraph.NewFieldSpec(usageledgerentry.FieldID, field.TypeInt))
	if ps := uled.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, uled.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	uled.mutation.done = true
	return affected, err
}

// UsageLedgerEntryDeleteOne is the builder for deleting a single UsageLedgerEntry entity.
type UsageLedgerEntryDeleteOne struct {
	uled *UsageLedgerEntryDelete
}

// Where appends a list predicates to the UsageLedgerEntryDelete builder.
func (uledo *UsageLedgerEntryDeleteOne) Where(ps ...predicate.UsageLedgerEntry) *UsageLedgerEntryDeleteOne {
	uledo.uled.mutation.Where(ps...)
	return uledo
}

// Exec executes the deletion query.
func (uledo *UsageLedgerEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := uledo.uled.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{usageledgerentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (uledo *UsageLedgerEntryDeleteOne) ExecX(ctx context.Context) {
	if err := uledo.Exec(ctx); err != nil {
		panic(err)
	}
}
