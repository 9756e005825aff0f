// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ringledger/ringledger/ent/predicate"
	"github.com/ringledger/ringledger/ent/syncrun"
	"github.com/ringledger/ringledger/ent/tenant"
	"github.com/ringledger/ringledger/pkg/models"
)

// SyncRunUpdate is the builder for updating SyncRun entities.
type SyncRunUpdate struct {
	config
	hooks    []Hook
	mutation *SyncRunMutation
}

// Where appends a list predicates to the SyncRunUpdate builder.
func (sru *SyncRunUpdate) Where(ps ...predicate.SyncRun) *SyncRunUpdate {
	sru.mutation.Where(ps...)
	return sru
}

// SetTenantID sets the "tenant_id" field.
func (sru *SyncRunUpdate) SetTenantID(i int) *SyncRunUpdate {
	sru.mutation.SetTenantID(i)
	return sru
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableTenantID(i *int) *SyncRunUpdate {
	if i != nil {
		sru.SetTenantID(*i)
	}
	return sru
}

// SetKind sets the "kind" field.
func (sru *SyncRunUpdate) SetKind(s syncrun.Kind) *SyncRunUpdate {
	sru.mutation.SetKind(s)
	return sru
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableKind(s *syncrun.Kind) *SyncRunUpdate {
	if s != nil {
		sru.SetKind(*s)
	}
	return sru
}

// SetStatus sets the "status" field.
func (sru *SyncRunUpdate) SetStatus(s syncrun.Status) *SyncRunUpdate {
	sru.mutation.SetStatus(s)
	return sru
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableStatus(s *syncrun.Status) *SyncRunUpdate {
	if s != nil {
		sru.SetStatus(*s)
	}
	return sru
}

// SetRequestedStart sets the "requested_start" field.
func (sru *SyncRunUpdate) SetRequestedStart(t time.Time) *SyncRunUpdate {
	sru.mutation.SetRequestedStart(t)
	return sru
}

// SetNillableRequestedStart sets the "requested_start" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableRequestedStart(t *time.Time) *SyncRunUpdate {
	if t != nil {
		sru.SetRequestedStart(*t)
	}
	return sru
}

// ClearRequestedStart clears the value of the "requested_start" field.
func (sru *SyncRunUpdate) ClearRequestedStart() *SyncRunUpdate {
	sru.mutation.ClearRequestedStart()
	return sru
}

// SetRequestedEnd sets the "requested_end" field.
func (sru *SyncRunUpdate) SetRequestedEnd(t time.Time) *SyncRunUpdate {
	sru.mutation.SetRequestedEnd(t)
	return sru
}

// SetNillableRequestedEnd sets the "requested_end" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableRequestedEnd(t *time.Time) *SyncRunUpdate {
	if t != nil {
		sru.SetRequestedEnd(*t)
	}
	return sru
}

// ClearRequestedEnd clears the value of the "requested_end" field.
func (sru *SyncRunUpdate) ClearRequestedEnd() *SyncRunUpdate {
	sru.mutation.ClearRequestedEnd()
	return sru
}

// SetEffectiveStart sets the "effective_start" field.
func (sru *SyncRunUpdate) SetEffectiveStart(t time.Time) *SyncRunUpdate {
	sru.mutation.SetEffectiveStart(t)
	return sru
}

// SetNillableEffectiveStart sets the "effective_start" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableEffectiveStart(t *time.Time) *SyncRunUpdate {
	if t != nil {
		sru.SetEffectiveStart(*t)
	}
	return sru
}

// ClearEffectiveStart clears the value of the "effective_start" field.
func (sru *SyncRunUpdate) ClearEffectiveStart() *SyncRunUpdate {
	sru.mutation.ClearEffectiveStart()
	return sru
}

// SetEffectiveEnd sets the "effective_end" field.
func (sru *SyncRunUpdate) SetEffectiveEnd(t time.Time) *SyncRunUpdate {
	sru.mutation.SetEffectiveEnd(t)
	return sru
}

// SetNillableEffectiveEnd sets the "effective_end" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableEffectiveEnd(t *time.Time) *SyncRunUpdate {
	if t != nil {
		sru.SetEffectiveEnd(*t)
	}
	return sru
}

// ClearEffectiveEnd clears the value of the "effective_end" field.
func (sru *SyncRunUpdate) ClearEffectiveEnd() *SyncRunUpdate {
	sru.mutation.ClearEffectiveEnd()
	return sru
}

// SetTimezone sets the "timezone" field.
func (sru *SyncRunUpdate) SetTimezone(s string) *SyncRunUpdate {
	sru.mutation.SetTimezone(s)
	return sru
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableTimezone(s *string) *SyncRunUpdate {
	if s != nil {
		sru.SetTimezone(*s)
	}
	return sru
}

// SetBypassedCutoffAt sets the "bypassed_cutoff_at" field.
func (sru *SyncRunUpdate) SetBypassedCutoffAt(t time.Time) *SyncRunUpdate {
	sru.mutation.SetBypassedCutoffAt(t)
	return sru
}

// SetNillableBypassedCutoffAt sets the "bypassed_cutoff_at" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableBypassedCutoffAt(t *time.Time) *SyncRunUpdate {
	if t != nil {
		sru.SetBypassedCutoffAt(*t)
	}
	return sru
}

// ClearBypassedCutoffAt clears the value of the "bypassed_cutoff_at" field.
func (sru *SyncRunUpdate) ClearBypassedCutoffAt() *SyncRunUpdate {
	sru.mutation.ClearBypassedCutoffAt()
	return sru
}

// SetPageTrace sets the "page_trace" field.
func (sru *SyncRunUpdate) SetPageTrace(mt []models.PageTrace) *SyncRunUpdate {
	sru.mutation.SetPageTrace(mt)
	return sru
}

// AppendPageTrace appends mt to the "page_trace" field.
func (sru *SyncRunUpdate) AppendPageTrace(mt []models.PageTrace) *SyncRunUpdate {
	sru.mutation.AppendPageTrace(mt)
	return sru
}

// ClearPageTrace clears the value of the "page_trace" field.
func (sru *SyncRunUpdate) ClearPageTrace() *SyncRunUpdate {
	sru.mutation.ClearPageTrace()
	return sru
}

// SetLogLines sets the "log_lines" field.
func (sru *SyncRunUpdate) SetLogLines(s []string) *SyncRunUpdate {
	sru.mutation.SetLogLines(s)
	return sru
}

// AppendLogLines appends s to the "log_lines" field.
func (sru *SyncRunUpdate) AppendLogLines(s []string) *SyncRunUpdate {
	sru.mutation.AppendLogLines(s)
	return sru
}

// ClearLogLines clears the value of the "log_lines" field.
func (sru *SyncRunUpdate) ClearLogLines() *SyncRunUpdate {
	sru.mutation.ClearLogLines()
	return sru
}

// SetSkipCounts sets the "skip_counts" field.
func (sru *SyncRunUpdate) SetSkipCounts(m map[string]int) *SyncRunUpdate {
	sru.mutation.SetSkipCounts(m)
	return sru
}

// ClearSkipCounts clears the value of the "skip_counts" field.
func (sru *SyncRunUpdate) ClearSkipCounts() *SyncRunUpdate {
	sru.mutation.ClearSkipCounts()
	return sru
}

// SetSkippedSamples sets the "skipped_samples" field.
func (sru *SyncRunUpdate) SetSkippedSamples(m []map[string]interface{}) *SyncRunUpdate {
	sru.mutation.SetSkippedSamples(m)
	return sru
}

// AppendSkippedSamples appends m to the "skipped_samples" field.
func (sru *SyncRunUpdate) AppendSkippedSamples(m []map[string]interface{}) *SyncRunUpdate {
	sru.mutation.AppendSkippedSamples(m)
	return sru
}

// ClearSkippedSamples clears the value of the "skipped_samples" field.
func (sru *SyncRunUpdate) ClearSkippedSamples() *SyncRunUpdate {
	sru.mutation.ClearSkippedSamples()
	return sru
}

// SetTotal sets the "total" field.
func (sru *SyncRunUpdate) SetTotal(i int) *SyncRunUpdate {
	sru.mutation.ResetTotal()
	sru.mutation.SetTotal(i)
	return sru
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableTotal(i *int) *SyncRunUpdate {
	if i != nil {
		sru.SetTotal(*i)
	}
	return sru
}

// AddTotal adds i to the "total" field.
func (sru *SyncRunUpdate) AddTotal(i int) *SyncRunUpdate {
	sru.mutation.AddTotal(i)
	return sru
}

// SetInserted sets the "inserted" field.
func (sru *SyncRunUpdate) SetInserted(i int) *SyncRunUpdate {
	sru.mutation.ResetInserted()
	sru.mutation.SetInserted(i)
	return sru
}

// SetNillableInserted sets the "inserted" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableInserted(i *int) *SyncRunUpdate {
	if i != nil {
		sru.SetInserted(*i)
	}
	return sru
}

// AddInserted adds i to the "inserted" field.
func (sru *SyncRunUpdate) AddInserted(i int) *SyncRunUpdate {
	sru.mutation.AddInserted(i)
	return sru
}

// SetUpdated sets the "updated" field.
func (sru *SyncRunUpdate) SetUpdated(i int) *SyncRunUpdate {
	sru.mutation.ResetUpdated()
	sru.mutation.SetUpdated(i)
	return sru
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableUpdated(i *int) *SyncRunUpdate {
	if i != nil {
		sru.SetUpdated(*i)
	}
	return sru
}

// AddUpdated adds i to the "updated" field.
func (sru *SyncRunUpdate) AddUpdated(i int) *SyncRunUpdate {
	sru.mutation.AddUpdated(i)
	return sru
}

// SetSkipped sets the "skipped" field.
func (sru *SyncRunUpdate) SetSkipped(i int) *SyncRunUpdate {
	sru.mutation.ResetSkipped()
	sru.mutation.SetSkipped(i)
	return sru
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableSkipped(i *int) *SyncRunUpdate {
	if i != nil {
		sru.SetSkipped(*i)
	}
	return sru
}

// AddSkipped adds i to the "skipped" field.
func (sru *SyncRunUpdate) AddSkipped(i int) *SyncRunUpdate {
	sru.mutation.AddSkipped(i)
	return sru
}

// SetAPIMs sets the "api_ms" field.
func (sru *SyncRunUpdate) SetAPIMs(i int64) *SyncRunUpdate {
	sru.mutation.ResetAPIMs()
	sru.mutation.SetAPIMs(i)
	return sru
}

// SetNillableAPIMs sets the "api_ms" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableAPIMs(i *int64) *SyncRunUpdate {
	if i != nil {
		sru.SetAPIMs(*i)
	}
	return sru
}

// AddAPIMs adds i to the "api_ms" field.
func (sru *SyncRunUpdate) AddAPIMs(i int64) *SyncRunUpdate {
	sru.mutation.AddAPIMs(i)
	return sru
}

// SetTotalMs sets the "total_ms" field.
func (sru *SyncRunUpdate) SetTotalMs(i int64) *SyncRunUpdate {
	sru.mutation.ResetTotalMs()
	sru.mutation.SetTotalMs(i)
	return sru
}

// SetNillableTotalMs sets the "total_ms" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableTotalMs(i *int64) *SyncRunUpdate {
	if i != nil {
		sru.SetTotalMs(*i)
	}
	return sru
}

// AddTotalMs adds i to the "total_ms" field.
func (sru *SyncRunUpdate) AddTotalMs(i int64) *SyncRunUpdate {
	sru.mutation.AddTotalMs(i)
	return sru
}

// SetError sets the "error" field.
func (sru *SyncRunUpdate) SetError(s string) *SyncRunUpdate {
	sru.mutation.SetError(s)
	return sru
}

// SetNillableError sets the "error" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableError(s *string) *SyncRunUpdate {
	if s != nil {
		sru.SetError(*s)
	}
	return sru
}

// ClearError clears the value of the "error" field.
func (sru *SyncRunUpdate) ClearError() *SyncRunUpdate {
	sru.mutation.ClearError()
	return sru
}

// SetTriggeredBy sets the "triggered_by" field.
func (sru *SyncRunUpdate) SetTriggeredBy(s string) *SyncRunUpdate {
	sru.mutation.SetTriggeredBy(s)
	return sru
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableTriggeredBy(s *string) *SyncRunUpdate {
	if s != nil {
		sru.SetTriggeredBy(*s)
	}
	return sru
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (sru *SyncRunUpdate) ClearTriggeredBy() *SyncRunUpdate {
	sru.mutation.ClearTriggeredBy()
	return sru
}

// SetFinishedAt sets the "finished_at" field.
func (sru *SyncRunUpdate) SetFinishedAt(t time.Time) *SyncRunUpdate {
	sru.mutation.SetFinishedAt(t)
	return sru
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (sru *SyncRunUpdate) SetNillableFinishedAt(t *time.Time) *SyncRunUpdate {
	if t != nil {
		sru.SetFinishedAt(*t)
	}
	return sru
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (sru *SyncRunUpdate) ClearFinishedAt() *SyncRunUpdate {
	sru.mutation.ClearFinishedAt()
	return sru
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (sru *SyncRunUpdate) SetTenant(t *Tenant) *SyncRunUpdate {
	return sru.SetTenantID(t.ID)
}

// Mutation returns the SyncRunMutation object of the builder.
func (sru *SyncRunUpdate) Mutation() *SyncRunMutation {
	return sru.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (sru *SyncRunUpdate) ClearTenant() *SyncRunUpdate {
	sru.mutation.ClearTenant()
	return sru
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (sru *SyncRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, sru.sqlSave, sru.mutation, sru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sru *SyncRunUpdate) SaveX(ctx context.Context) int {
	affected, err := sru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (sru *SyncRunUpdate) Exec(ctx context.Context) error {
	_, err := sru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sru *SyncRunUpdate) ExecX(ctx context.Context) {
	if err := sru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sru *SyncRunUpdate) check() error {
	if v, ok := sru.mutation.Kind(); ok {
		if err := syncrun.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SyncRun.kind": %w`, err)}
		}
	}
	if v, ok := sru.mutation.Status(); ok {
		if err := syncrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncRun.status": %w`, err)}
		}
	}
	if v, ok := sru.mutation.Total(); ok {
		if err := syncrun.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "SyncRun.total": %w`, err)}
		}
	}
	if v, ok := sru.mutation.Inserted(); ok {
		if err := syncrun.InsertedValidator(v); err != nil {
			return &ValidationError{Name: "inserted", err: fmt.Errorf(`ent: validator failed for field "SyncRun.inserted": %w`, err)}
		}
	}
	if v, ok := sru.mutation.Updated(); ok {
		if err := syncrun.UpdatedValidator(v); err != nil {
			return &ValidationError{Name: "updated", err: fmt.Errorf(`ent: validator failed for field "SyncRun.updated": %w`, err)}
		}
	}
	if v, ok := sru.mutation.Skipped(); ok {
		if err := syncrun.SkippedValidator(v); err != nil {
			return &ValidationError{Name: "skipped", err: fmt.Errorf(`ent: validator failed for field "SyncRun.skipped": %w`, err)}
		}
	}
	if v, ok := sru.mutation.TriggeredBy(); ok {
		if err := syncrun.TriggeredByValidator(v); err != nil {
			return &ValidationError{Name: "triggered_by", err: fmt.Errorf(`ent: validator failed for field "SyncRun.triggered_by": %w`, err)}
		}
	}
	if sru.mutation.TenantCleared() && len(sru.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SyncRun.tenant"`)
	}
	return nil
}

func (sru *SyncRunUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := sru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncrun.Table, syncrun.Columns, sqlgraph.NewFieldSpec(syncrun.FieldID, field.TypeInt))
	if ps := sru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sru.mutation.Kind(); ok {
		_spec.SetField(syncrun.FieldKind, field.TypeEnum, value)
	}
	if value, ok := sru.mutation.Status(); ok {
		_spec.SetField(syncrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := sru.mutation.RequestedStart(); ok {
		_spec.SetField(syncrun.FieldRequestedStart, field.TypeTime, value)
	}
	if sru.mutation.RequestedStartCleared() {
		_spec.ClearField(syncrun.FieldRequestedStart, field.TypeTime)
	}
	if value, ok := sru.mutation.RequestedEnd(); ok {
		_spec.SetField(syncrun.FieldRequestedEnd, field.TypeTime, value)
	}
	if sru.mutation.RequestedEndCleared() {
		_spec.ClearField(syncrun.FieldRequestedEnd, field.TypeTime)
	}
	if value, ok := sru.mutation.EffectiveStart(); ok {
		_spec.SetField(syncrun.FieldEffectiveStart, field.TypeTime, value)
	}
	if sru.mutation.EffectiveStartCleared() {
		_spec.ClearField(syncrun.FieldEffectiveStart, field.TypeTime)
	}
	if value, ok := sru.mutation.EffectiveEnd(); ok {
		_spec.SetField(syncrun.FieldEffectiveEnd, field.TypeTime, value)
	}
	if sru.mutation.EffectiveEndCleared() {
		_spec.ClearField(syncrun.FieldEffectiveEnd, field.TypeTime)
	}
	if value, ok := sru.mutation.Timezone(); ok {
		_spec.SetField(syncrun.FieldTimezone, field.TypeString, value)
	}
	if value, ok := sru.mutation.BypassedCutoffAt(); ok {
		_spec.SetField(syncrun.FieldBypassedCutoffAt, field.TypeTime, value)
	}
	if sru.mutation.BypassedCutoffAtCleared() {
		_spec.ClearField(syncrun.FieldBypassedCutoffAt, field.TypeTime)
	}
	if value, ok := sru.mutation.PageTrace(); ok {
		_spec.SetField(syncrun.FieldPageTrace, field.TypeJSON, value)
	}
	if value, ok := sru.mutation.AppendedPageTrace(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, syncrun.FieldPageTrace, value)
		})
	}
	if sru.mutation.PageTraceCleared() {
		_spec.ClearField(syncrun.FieldPageTrace, field.TypeJSON)
	}
	if value, ok := sru.mutation.LogLines(); ok {
		_spec.SetField(syncrun.FieldLogLines, field.TypeJSON, value)
	}
	if value, ok := sru.mutation.AppendedLogLines(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, syncrun.FieldLogLines, value)
		})
	}
	if sru.mutation.LogLinesCleared() {
		_spec.ClearField(syncrun.FieldLogLines, field.TypeJSON)
	}
	if value, ok := sru.mutation.SkipCounts(); ok {
		_spec.SetField(syncrun.FieldSkipCounts, field.TypeJSON, value)
	}
	if sru.mutation.SkipCountsCleared() {
		_spec.ClearField(syncrun.FieldSkipCounts, field.TypeJSON)
	}
	if value, ok := sru.mutation.SkippedSamples(); ok {
		_spec.SetField(syncrun.FieldSkippedSamples, field.TypeJSON, value)
	}
	if value, ok := sru.mutation.AppendedSkippedSamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, syncrun.FieldSkippedSamples, value)
		})
	}
	if sru.mutation.SkippedSamplesCleared() {
		_spec.ClearField(syncrun.FieldSkippedSamples, field.TypeJSON)
	}
	if value, ok := sru.mutation.Total(); ok {
		_spec.SetField(syncrun.FieldTotal, field.TypeInt, value)
	}
	if value, ok := sru.mutation.AddedTotal(); ok {
		_spec.AddField(syncrun.FieldTotal, field.TypeInt, value)
	}
	if value, ok := sru.mutation.Inserted(); ok {
		_spec.SetField(syncrun.FieldInserted, field.TypeInt, value)
	}
	if value, ok := sru.mutation.AddedInserted(); ok {
		_spec.AddField(syncrun.FieldInserted, field.TypeInt, value)
	}
	if value, ok := sru.mutation.Updated(); ok {
		_spec.SetField(syncrun.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := sru.mutation.AddedUpdated(); ok {
		_spec.AddField(syncrun.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := sru.mutation.Skipped(); ok {
		_spec.SetField(syncrun.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := sru.mutation.AddedSkipped(); ok {
		_spec.AddField(syncrun.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := sru.mutation.APIMs(); ok {
		_spec.SetField(syncrun.FieldAPIMs, field.TypeInt64, value)
	}
	if value, ok := sru.mutation.AddedAPIMs(); ok {
		_spec.AddField(syncrun.FieldAPIMs, field.TypeInt64, value)
	}
	if value, ok := sru.mutation.TotalMs(); ok {
		_spec.SetField(syncrun.FieldTotalMs, field.TypeInt64, value)
	}
	if value, ok := sru.mutation.AddedTotalMs(); ok {
		_spec.AddField(syncrun.FieldTotalMs, field.TypeInt64, value)
	}
	if value, ok := sru.mutation.Error(); ok {
		_spec.SetField(syncrun.FieldError, field.TypeString, value)
	}
	if sru.mutation.ErrorCleared() {
		_spec.ClearField(syncrun.FieldError, field.TypeString)
	}
	if value, ok := sru.mutation.TriggeredBy(); ok {
		_spec.SetField(syncrun.FieldTriggeredBy, field.TypeString, value)
	}
	if sru.mutation.TriggeredByCleared() {
		_spec.ClearField(syncrun.FieldTriggeredBy, field.TypeString)
	}
	if value, ok := sru.mutation.FinishedAt(); ok {
		_spec.SetField(syncrun.FieldFinishedAt, field.TypeTime, value)
	}
	if sru.mutation.FinishedAtCleared() {
		_spec.ClearField(syncrun.FieldFinishedAt, field.TypeTime)
	}
	if sru.mutation.TenantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   syncrun.TenantTable,
			Columns: []string{syncrun.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sru.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   syncrun.TenantTable,
			Columns: []string{syncrun.TenantColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, sru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	sru.mutation.done = true
	return n, nil
}

// SyncRunUpdateOne is the builder for updating a single SyncRun entity.
type SyncRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncRunMutation
}

// SetTenantID sets the "tenant_id" field.
func (sruo *SyncRunUpdateOne) SetTenantID(i int) *SyncRunUpdateOne {
	sruo.mutation.SetTenantID(i)
	return sruo
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableTenantID(i *int) *SyncRunUpdateOne {
	if i != nil {
		sruo.SetTenantID(*i)
	}
	return sruo
}

// SetKind sets the "kind" field.
func (sruo *SyncRunUpdateOne) SetKind(s syncrun.Kind) *SyncRunUpdateOne {
	sruo.mutation.SetKind(s)
	return sruo
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableKind(s *syncrun.Kind) *SyncRunUpdateOne {
	if s != nil {
		sruo.SetKind(*s)
	}
	return sruo
}

// SetStatus sets the "status" field.
func (sruo *SyncRunUpdateOne) SetStatus(s syncrun.Status) *SyncRunUpdateOne {
	sruo.mutation.SetStatus(s)
	return sruo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableStatus(s *syncrun.Status) *SyncRunUpdateOne {
	if s != nil {
		sruo.SetStatus(*s)
	}
	return sruo
}

// SetRequestedStart sets the "requested_start" field.
func (sruo *SyncRunUpdateOne) SetRequestedStart(t time.Time) *SyncRunUpdateOne {
	sruo.mutation.SetRequestedStart(t)
	return sruo
}

// SetNillableRequestedStart sets the "requested_start" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableRequestedStart(t *time.Time) *SyncRunUpdateOne {
	if t != nil {
		sruo.SetRequestedStart(*t)
	}
	return sruo
}

// ClearRequestedStart clears the value of the "requested_start" field.
func (sruo *SyncRunUpdateOne) ClearRequestedStart() *SyncRunUpdateOne {
	sruo.mutation.ClearRequestedStart()
	return sruo
}

// SetRequestedEnd sets the "requested_end" field.
func (sruo *SyncRunUpdateOne) SetRequestedEnd(t time.Time) *SyncRunUpdateOne {
	sruo.mutation.SetRequestedEnd(t)
	return sruo
}

// SetNillableRequestedEnd sets the "requested_end" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableRequestedEnd(t *time.Time) *SyncRunUpdateOne {
	if t != nil {
		sruo.SetRequestedEnd(*t)
	}
	return sruo
}

// ClearRequestedEnd clears the value of the "requested_end" field.
func (sruo *SyncRunUpdateOne) ClearRequestedEnd() *SyncRunUpdateOne {
	sruo.mutation.ClearRequestedEnd()
	return sruo
}

// SetEffectiveStart sets the "effective_start" field.
func (sruo *SyncRunUpdateOne) SetEffectiveStart(t time.Time) *SyncRunUpdateOne {
	sruo.mutation.SetEffectiveStart(t)
	return sruo
}

// SetNillableEffectiveStart sets the "effective_start" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableEffectiveStart(t *time.Time) *SyncRunUpdateOne {
	if t != nil {
		sruo.SetEffectiveStart(*t)
	}
	return sruo
}

// ClearEffectiveStart clears the value of the "effective_start" field.
func (sruo *SyncRunUpdateOne) ClearEffectiveStart() *SyncRunUpdateOne {
	sruo.mutation.ClearEffectiveStart()
	return sruo
}

// SetEffectiveEnd sets the "effective_end" field.
func (sruo *SyncRunUpdateOne) SetEffectiveEnd(t time.Time) *SyncRunUpdateOne {
	sruo.mutation.SetEffectiveEnd(t)
	return sruo
}

// SetNillableEffectiveEnd sets the "effective_end" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableEffectiveEnd(t *time.Time) *SyncRunUpdateOne {
	if t != nil {
		sruo.SetEffectiveEnd(*t)
	}
	return sruo
}

// ClearEffectiveEnd clears the value of the "effective_end" field.
func (sruo *SyncRunUpdateOne) ClearEffectiveEnd() *SyncRunUpdateOne {
	sruo.mutation.ClearEffectiveEnd()
	return sruo
}

// SetTimezone sets the "timezone" field.
func (sruo *SyncRunUpdateOne) SetTimezone(s string) *SyncRunUpdateOne {
	sruo.mutation.SetTimezone(s)
	return sruo
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableTimezone(s *string) *SyncRunUpdateOne {
	if s != nil {
		sruo.SetTimezone(*s)
	}
	return sruo
}

// SetBypassedCutoffAt sets the "bypassed_cutoff_at" field.
func (sruo *SyncRunUpdateOne) SetBypassedCutoffAt(t time.Time) *SyncRunUpdateOne {
	sruo.mutation.SetBypassedCutoffAt(t)
	return sruo
}

// SetNillableBypassedCutoffAt sets the "bypassed_cutoff_at" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableBypassedCutoffAt(t *time.Time) *SyncRunUpdateOne {
	if t != nil {
		sruo.SetBypassedCutoffAt(*t)
	}
	return sruo
}

// ClearBypassedCutoffAt clears the value of the "bypassed_cutoff_at" field.
func (sruo *SyncRunUpdateOne) ClearBypassedCutoffAt() *SyncRunUpdateOne {
	sruo.mutation.ClearBypassedCutoffAt()
	return sruo
}

// SetPageTrace sets the "page_trace" field.
func (sruo *SyncRunUpdateOne) SetPageTrace(mt []models.PageTrace) *SyncRunUpdateOne {
	sruo.mutation.SetPageTrace(mt)
	return sruo
}

// AppendPageTrace appends mt to the "page_trace" field.
func (sruo *SyncRunUpdateOne) AppendPageTrace(mt []models.PageTrace) *SyncRunUpdateOne {
	sruo.mutation.AppendPageTrace(mt)
	return sruo
}

// ClearPageTrace clears the value of the "page_trace" field.
func (sruo *SyncRunUpdateOne) ClearPageTrace() *SyncRunUpdateOne {
	sruo.mutation.ClearPageTrace()
	return sruo
}

// SetLogLines sets the "log_lines" field.
func (sruo *SyncRunUpdateOne) SetLogLines(s []string) *SyncRunUpdateOne {
	sruo.mutation.SetLogLines(s)
	return sruo
}

// AppendLogLines appends s to the "log_lines" field.
func (sruo *SyncRunUpdateOne) AppendLogLines(s []string) *SyncRunUpdateOne {
	sruo.mutation.AppendLogLines(s)
	return sruo
}

// ClearLogLines clears the value of the "log_lines" field.
func (sruo *SyncRunUpdateOne) ClearLogLines() *SyncRunUpdateOne {
	sruo.mutation.ClearLogLines()
	return sruo
}

// SetSkipCounts sets the "skip_counts" field.
func (sruo *SyncRunUpdateOne) SetSkipCounts(m map[string]int) *SyncRunUpdateOne {
	sruo.mutation.SetSkipCounts(m)
	return sruo
}

// ClearSkipCounts clears the value of the "skip_counts" field.
func (sruo *SyncRunUpdateOne) ClearSkipCounts() *SyncRunUpdateOne {
	sruo.mutation.ClearSkipCounts()
	return sruo
}

// SetSkippedSamples sets the "skipped_samples" field.
func (sruo *SyncRunUpdateOne) SetSkippedSamples(m []map[string]interface{}) *SyncRunUpdateOne {
	sruo.mutation.SetSkippedSamples(m)
	return sruo
}

// AppendSkippedSamples appends m to the "skipped_samples" field.
func (sruo *SyncRunUpdateOne) AppendSkippedSamples(m []map[string]interface{}) *SyncRunUpdateOne {
	sruo.mutation.AppendSkippedSamples(m)
	return sruo
}

// ClearSkippedSamples clears the value of the "skipped_samples" field.
func (sruo *SyncRunUpdateOne) ClearSkippedSamples() *SyncRunUpdateOne {
	sruo.mutation.ClearSkippedSamples()
	return sruo
}

// SetTotal sets the "total" field.
func (sruo *SyncRunUpdateOne) SetTotal(i int) *SyncRunUpdateOne {
	sruo.mutation.ResetTotal()
	sruo.mutation.SetTotal(i)
	return sruo
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableTotal(i *int) *SyncRunUpdateOne {
	if i != nil {
		sruo.SetTotal(*i)
	}
	return sruo
}

// AddTotal adds i to the "total" field.
func (sruo *SyncRunUpdateOne) AddTotal(i int) *SyncRunUpdateOne {
	sruo.mutation.AddTotal(i)
	return sruo
}

// SetInserted sets the "inserted" field.
func (sruo *SyncRunUpdateOne) SetInserted(i int) *SyncRunUpdateOne {
	sruo.mutation.ResetInserted()
	sruo.mutation.SetInserted(i)
	return sruo
}

// SetNillableInserted sets the "inserted" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableInserted(i *int) *SyncRunUpdateOne {
	if i != nil {
		sruo.SetInserted(*i)
	}
	return sruo
}

// AddInserted adds i to the "inserted" field.
func (sruo *SyncRunUpdateOne) AddInserted(i int) *SyncRunUpdateOne {
	sruo.mutation.AddInserted(i)
	return sruo
}

// SetUpdated sets the "updated" field.
func (sruo *SyncRunUpdateOne) SetUpdated(i int) *SyncRunUpdateOne {
	sruo.mutation.ResetUpdated()
	sruo.mutation.SetUpdated(i)
	return sruo
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableUpdated(i *int) *SyncRunUpdateOne {
	if i != nil {
		sruo.SetUpdated(*i)
	}
	return sruo
}

// AddUpdated adds i to the "updated" field.
func (sruo *SyncRunUpdateOne) AddUpdated(i int) *SyncRunUpdateOne {
	sruo.mutation.AddUpdated(i)
	return sruo
}

// SetSkipped sets the "skipped" field.
func (sruo *SyncRunUpdateOne) SetSkipped(i int) *SyncRunUpdateOne {
	sruo.mutation.ResetSkipped()
	sruo.mutation.SetSkipped(i)
	return sruo
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableSkipped(i *int) *SyncRunUpdateOne {
	if i != nil {
		sruo.SetSkipped(*i)
	}
	return sruo
}

// AddSkipped adds i to the "skipped" field.
func (sruo *SyncRunUpdateOne) AddSkipped(i int) *SyncRunUpdateOne {
	sruo.mutation.AddSkipped(i)
	return sruo
}

// SetAPIMs sets the "api_ms" field.
func (sruo *SyncRunUpdateOne) SetAPIMs(i int64) *SyncRunUpdateOne {
	sruo.mutation.ResetAPIMs()
	sruo.mutation.SetAPIMs(i)
	return sruo
}

// SetNillableAPIMs sets the "api_ms" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableAPIMs(i *int64) *SyncRunUpdateOne {
	if i != nil {
		sruo.SetAPIMs(*i)
	}
	return sruo
}

// AddAPIMs adds i to the "api_ms" field.
func (sruo *SyncRunUpdateOne) AddAPIMs(i int64) *SyncRunUpdateOne {
	sruo.mutation.AddAPIMs(i)
	return sruo
}

// SetTotalMs sets the "total_ms" field.
func (sruo *SyncRunUpdateOne) SetTotalMs(i int64) *SyncRunUpdateOne {
	sruo.mutation.ResetTotalMs()
	sruo.mutation.SetTotalMs(i)
	return sruo
}

// SetNillableTotalMs sets the "total_ms" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableTotalMs(i *int64) *SyncRunUpdateOne {
	if i != nil {
		sruo.SetTotalMs(*i)
	}
	return sruo
}

// AddTotalMs adds i to the "total_ms" field.
func (sruo *SyncRunUpdateOne) AddTotalMs(i int64) *SyncRunUpdateOne {
	sruo.mutation.AddTotalMs(i)
	return sruo
}

// SetError sets the "error" field.
func (sruo *SyncRunUpdateOne) SetError(s string) *SyncRunUpdateOne {
	sruo.mutation.SetError(s)
	return sruo
}

// SetNillableError sets the "error" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableError(s *string) *SyncRunUpdateOne {
	if s != nil {
		sruo.SetError(*s)
	}
	return sruo
}

// ClearError clears the value of the "error" field.
func (sruo *SyncRunUpdateOne) ClearError() *SyncRunUpdateOne {
	sruo.mutation.ClearError()
	return sruo
}

// SetTriggeredBy sets the "triggered_by" field.
func (sruo *SyncRunUpdateOne) SetTriggeredBy(s string) *SyncRunUpdateOne {
	sruo.mutation.SetTriggeredBy(s)
	return sruo
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableTriggeredBy(s *string) *SyncRunUpdateOne {
	if s != nil {
		sruo.SetTriggeredBy(*s)
	}
	return sruo
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (sruo *SyncRunUpdateOne) ClearTriggeredBy() *SyncRunUpdateOne {
	sruo.mutation.ClearTriggeredBy()
	return sruo
}

// SetFinishedAt sets the "finished_at" field.
func (sruo *SyncRunUpdateOne) SetFinishedAt(t time.Time) *SyncRunUpdateOne {
	sruo.mutation.SetFinishedAt(t)
	return sruo
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (sruo *SyncRunUpdateOne) SetNillableFinishedAt(t *time.Time) *SyncRunUpdateOne {
	if t != nil {
		sruo.SetFinishedAt(*t)
	}
	return sruo
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (sruo *SyncRunUpdateOne) ClearFinishedAt() *SyncRunUpdateOne {
	sruo.mutation.ClearFinishedAt()
	return sruo
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (sruo *SyncRunUpdateOne) SetTenant(t *Tenant) *SyncRunUpdateOne {
	return sruo.SetTenantID(t.ID)
}

// Mutation returns the SyncRunMutation object of the builder.
func (sruo *SyncRunUpdateOne) Mutation() *SyncRunMutation {
	return sruo.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (sruo *SyncRunUpdateOne) ClearTenant() *SyncRunUpdateOne {
	sruo.mutation.ClearTenant()
	return sruo
}

// Where appends a list predicates to the SyncRunUpdate builder.
func (sruo *SyncRunUpdateOne) Where(ps ...predicate.SyncRun) *SyncRunUpdateOne {
	sruo.mutation.Where(ps...)
	return sruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (sruo *SyncRunUpdateOne) Select(field string, fields ...string) *SyncRunUpdateOne {
	sruo.fields = append([]string{field}, fields...)
	return sruo
}

// Save executes the query and returns the updated SyncRun entity.
func (sruo *SyncRunUpdateOne) Save(ctx context.Context) (*SyncRun, error) {
	return withHooks(ctx, sruo.sqlSave, sruo.mutation, sruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sruo *SyncRunUpdateOne) SaveX(ctx context.Context) *SyncRun {
	node, err := sruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (sruo *SyncRunUpdateOne) Exec(ctx context.Context) error {
	_, err := sruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sruo *SyncRunUpdateOne) ExecX(ctx context.Context) {
	if err := sruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sruo *SyncRunUpdateOne) check() error {
	if v, ok := sruo.mutation.Kind(); ok {
		if err := syncrun.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SyncRun.kind": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.Status(); ok {
		if err := syncrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncRun.status": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.Total(); ok {
		if err := syncrun.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "SyncRun.total": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.Inserted(); ok {
		if err := syncrun.InsertedValidator(v); err != nil {
			return &ValidationError{Name: "inserted", err: fmt.Errorf(`ent: validator failed for field "SyncRun.inserted": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.Updated(); ok {
		if err := syncrun.UpdatedValidator(v); err != nil {
			return &ValidationError{Name: "updated", err: fmt.Errorf(`ent: validator failed for field "SyncRun.updated": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.Skipped(); ok {
		if err := syncrun.SkippedValidator(v); err != nil {
			return &ValidationError{Name: "skipped", err: fmt.Errorf(`ent: validator failed for field "SyncRun.skipped": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.TriggeredBy(); ok {
		if err := syncrun.TriggeredByValidator(v); err != nil {
			return &ValidationError{Name: "triggered_by", err: fmt.Errorf(`ent: validator failed for field "SyncRun.triggered_by": %w`, err)}
		}
	}
	if sruo.mutation.TenantCleared() && len(sruo.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SyncRun.tenant"`)
	}
	return nil
}

func (sruo *SyncRunUpdateOne) sqlSave(ctx context.Context) (_node *SyncRun, err error) {
	if err := sruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncrun.Table, syncrun.Columns, sqlgraph.NewFieldSpec(syncrun.FieldID, field.TypeInt))
	id, ok := sruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := sruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syncrun.FieldID)
		for _, f := range fields {
			if !syncrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != syncrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := sruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sruo.mutation.Kind(); ok {
		_spec.SetField(syncrun.FieldKind, field.TypeEnum, value)
	}
	if value, ok := sruo.mutation.Status(); ok {
		_spec.SetField(syncrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := sruo.mutation.RequestedStart(); ok {
		_spec.SetField(syncrun.FieldRequestedStart, field.TypeTime, value)
	}
	if sruo.mutation.RequestedStartCleared() {
		_spec.ClearField(syncrun.FieldRequestedStart, field.TypeTime)
	}
	if value, ok := sruo.mutation.RequestedEnd(); ok {
		_spec.SetField(syncrun.FieldRequestedEnd, field.TypeTime, value)
	}
	if sruo.mutation.RequestedEndCleared() {
		_spec.ClearField(syncrun.FieldRequestedEnd, field.TypeTime)
	}
	if value, ok := sruo.mutation.EffectiveStart(); ok {
		_spec.SetField(syncrun.FieldEffectiveStart, field.TypeTime, value)
	}
	if sruo.mutation.EffectiveStartCleared() {
		_spec.ClearField(syncrun.FieldEffectiveStart, field.TypeTime)
	}
	if value, ok := sruo.mutation.EffectiveEnd(); ok {
		_spec.SetField(syncrun.FieldEffectiveEnd, field.TypeTime, value)
	}
	if sruo.mutation.EffectiveEndCleared() {
		_spec.ClearField(syncrun.FieldEffectiveEnd, field.TypeTime)
	}
	if value, ok := sruo.mutation.Timezone(); ok {
		_spec.SetField(syncrun.FieldTimezone, field.TypeString, value)
	}
	if value, ok := sruo.mutation.BypassedCutoffAt(); ok {
		_spec.SetField(syncrun.FieldBypassedCutoffAt, field.TypeTime, value)
	}
	if sruo.mutation.BypassedCutoffAtCleared() {
		_spec.ClearField(syncrun.FieldBypassedCutoffAt, field.TypeTime)
	}
	if value, ok := sruo.mutation.PageTrace(); ok {
		_spec.SetField(syncrun.FieldPageTrace, field.TypeJSON, value)
	}
	if value, ok := sruo.mutation.AppendedPageTrace(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, syncrun.FieldPageTrace, value)
		})
	}
	if sruo.mutation.PageTraceCleared() {
		_spec.ClearField(syncrun.FieldPageTrace, field.TypeJSON)
	}
	if value, ok := sruo.mutation.LogLines(); ok {
		_spec.SetField(syncrun.FieldLogLines, field.TypeJSON, value)
	}
	if value, ok := sruo.mutation.AppendedLogLines(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, syncrun.FieldLogLines, value)
		})
	}
	if sruo.mutation.LogLinesCleared() {
		_spec.ClearField(syncrun.FieldLogLines, field.TypeJSON)
	}
	if value, ok := sruo.mutation.SkipCounts(); ok {
		_spec.SetField(syncrun.FieldSkipCounts, field.TypeJSON, value)
	}
	if sruo.mutation.SkipCountsCleared() {
		_spec.ClearField(syncrun.FieldSkipCounts, field.TypeJSON)
	}
	if value, ok := sruo.mutation.SkippedSamples(); ok {
		_spec.SetField(syncrun.FieldSkippedSamples, field.TypeJSON, value)
	}
	if value, ok := sruo.mutation.AppendedSkippedSamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, syncrun.FieldSkippedSamples, value)
		})
	}
	if sruo.mutation.SkippedSamplesCleared() {
		_spec.ClearField(syncrun.FieldSkippedSamples, field.TypeJSON)
	}
	if value, ok := sruo.mutation.Total(); ok {
		_spec.SetField(syncrun.FieldTotal, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.AddedTotal(); ok {
		_spec.AddField(syncrun.FieldTotal, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.Inserted(); ok {
		_spec.SetField(syncrun.FieldInserted, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.AddedInserted(); ok {
		_spec.AddField(syncrun.FieldInserted, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.Updated(); ok {
		_spec.SetField(syncrun.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.AddedUpdated(); ok {
		_spec.AddField(syncrun.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.Skipped(); ok {
		_spec.SetField(syncrun.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.AddedSkipped(); ok {
		_spec.AddField(syncrun.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.APIMs(); ok {
		_spec.SetField(syncrun.FieldAPIMs, field.TypeInt64, value)
	}
	if value, ok := sruo.mutation.AddedAPIMs(); ok {
		_spec.AddField(syncrun.FieldAPIMs, field.TypeInt64, value)
	}
	if value, ok := sruo.mutation.TotalMs(); ok {
		_spec.SetField(syncrun.FieldTotalMs, field.TypeInt64, value)
	}
	if value, ok := sruo.mutation.AddedTotalMs(); ok {
		_spec.AddField(syncrun.FieldTotalMs, field.TypeInt64, value)
	}
	if value, ok := sruo.mutation.Error(); ok {
		_spec.SetField(syncrun.FieldError, field.TypeString, value)
	}
	if sruo.mutation.ErrorCleared() {
		_spec.ClearField(syncrun.FieldError, field.TypeString)
	}
	if value, ok := sruo.mutation.TriggeredBy(); ok {
		_spec.SetField(syncrun.FieldTriggeredBy, field.TypeString, value)
	}
	if sruo.mutation.TriggeredByCleared() {
		_spec.ClearField(syncrun.FieldTriggeredBy, field.TypeString)
	}
	if value, ok := sruo.mutation.FinishedAt(); ok {
		_spec.SetField(syncrun.FieldFinishedAt, field.TypeTime, value)
	}
	if sruo.mutation.FinishedAtCleared() {
		_spec.ClearField(syncrun.FieldFinishedAt, field.TypeTime)
	}
	if sruo.mutation.TenantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   syncrun.TenantTable,
			Columns: []string{syncrun.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sruo.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   syncrun.TenantTable,
			Columns: []string{syncrun.TenantColumn},
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
	_node = &SyncRun{config: sruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, sruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	sruo.mutation.done = true
	return _node, nil
}
