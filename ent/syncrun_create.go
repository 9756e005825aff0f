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
	"github.com/ringledger/ringledger/ent/syncrun"
	"github.com/ringledger/ringledger/ent/tenant"
	"github.com/ringledger/ringledger/pkg/models"
)

// SyncRunCreate is the builder for creating a SyncRun entity.
type SyncRunCreate struct {
	config
	mutation *SyncRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (src *SyncRunCreate) SetTenantID(i int) *SyncRunCreate {
	src.mutation.SetTenantID(i)
	return src
}

// SetKind sets the "kind" field.
func (src *SyncRunCreate) SetKind(s syncrun.Kind) *SyncRunCreate {
	src.mutation.SetKind(s)
	return src
}

// SetStatus sets the "status" field.
func (src *SyncRunCreate) SetStatus(s syncrun.Status) *SyncRunCreate {
	src.mutation.SetStatus(s)
	return src
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (src *SyncRunCreate) SetNillableStatus(s *syncrun.Status) *SyncRunCreate {
	if s != nil {
		src.SetStatus(*s)
	}
	return src
}

// SetRequestedStart sets the "requested_start" field.
func (src *SyncRunCreate) SetRequestedStart(t time.Time) *SyncRunCreate {
	src.mutation.SetRequestedStart(t)
	return src
}

// SetNillableRequestedStart sets the "requested_start" field if the given value is not nil.
func (src *SyncRunCreate) SetNillableRequestedStart(t *time.Time) *SyncRunCreate {
	if t != nil {
		src.SetRequestedStart(*t)
	}
	return src
}

// SetRequestedEnd sets the "requested_end" field.
func (src *SyncRunCreate) SetRequestedEnd(t time.Time) *SyncRunCreate {
	src.mutation.SetRequestedEnd(t)
	return src
}

// SetNillableRequestedEnd sets the "requested_end" field if the given value is not nil.
func (src *SyncRunCreate) SetNillableRequestedEnd(t *time.Time) *SyncRunCreate {
	if t != nil {
		src.SetRequestedEnd(*t)
	}
	return src
}

// SetEffectiveStart sets the "effective_start" field.
func (src *SyncRunCreate) SetEffectiveStart(t time.Time) *SyncRunCreate {
	src.mutation.SetEffectiveStart(t)
	return src
}

// SetNillableEffectiveStart sets the "effective_start" field if the given value is not nil.
func (src *SyncRunCreate) SetNillableEffectiveStart(t *time.Time) *SyncRunCreate {
	if t != nil {
		src.SetEffectiveStart(*t)
	}
	return src
}

// SetEffectiveEnd sets the "effective_end" field.
func (src *SyncRunCreate) SetEffectiveEnd(t time.Time) *SyncRunCreate {
	src.mutation.SetEffectiveEnd(t)
	return src
}

// SetNillableEffectiveEnd sets the "effective_end" field if the given value is not nil.
func (src *SyncRunCreate) SetNillableEffectiveEnd(t *time.Time) *SyncRunCreate {
	if t != nil {
		src.SetEffectiveEnd(*t)
	}
	return src
}

// SetTimezone sets the "timezone" field.
func (src *SyncRunCreate) SetTimezone(s string) *SyncRunCreate {
	src.mutation.SetTimezone(s)
	return src
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (src *SyncRunCreate) SetNillableTimezone(s *string) *SyncRunCreate {
	if s != nil {
		src.SetTimezone(*s)
	}
	return src
}

// SetBypassedCutoffAt sets the "bypassed_cutoff_at" field.
func (src *SyncRunCreate) SetBypassedCutoffAt(t time.Time) *SyncRunCreate {
	src.mutation.SetBypassedCutoffAt(t)
	return src
}

// SetNillableBypassedCutoffAt sets the "bypassed_cutoff_at" field if the given value is not nil.
func (src *SyncRunCreate) SetNillableBypassedCutoffAt(t *time.Time) *SyncRunCreate {
	if t != nil {
		src.SetBypassedCutoffAt(*t)
	}
	return src
}

// SetPageTrace sets the "page_trace" field.
func (src *SyncRunCreate) SetPageTrace(mt []models.PageTrace) *SyncRunCreate {
	src.mutation.SetPageTrace(mt)
	return src
}

// SetLogLines sets the "log_lines" field.
func (src *SyncRunCreate) SetLogLines(s []string) *SyncRunCreate {
	src.mutation.SetLogLines(s)
	return src
}

// SetSkipCounts sets the "skip_counts" field.
func (src *SyncRunCreate) SetSkipCounts(m map[string]int) *SyncRunCreate {
	src.mutation.SetSkipCounts(m)
	return src
}

// SetSkippedSamples sets the "skipped_samples" field.
func (src *SyncRunCreate) SetSkippedSamples(m []map[string]interface{}) *SyncRunCreate {
	src.mutation.SetSkippedSamples(m)
	return src
}

// SetTotal sets the "total" field.
func (src *SyncRunCreate) SetTotal(i int) *SyncRunCreate {
	src.mutation.SetTotal(i)
	return src
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (src *SyncRunCreate) SetNillableTotal(i *int) *SyncRunCreate {
	if i != nil {
		src.SetTotal(*i)
	}
	return src
}

// SetInserted sets the "inserted" field.
func (src *SyncRunCreate) SetInserted(i int) *SyncRunCreate {
	src.mutation.SetInserted(i)
	return src
}

// SetNillableInserted sets the "inserted" field if the given value is not nil.
func (src *SyncRunCreate) SetNillableInserted(i *int) *SyncRunCreate {
	if i != nil {
		src.SetInserted(*i)
	}
	return src
}

// SetUpdated sets the "updated" field.
func (src *SyncRunCreate) SetUpdated(i int) *SyncRunCreate {
	src.mutation.SetUpdated(i)
	return src
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (src *SyncRunCreate) SetNillableUpdated(i *int) *SyncRunCreate {
	if i != nil {
		src.SetUpdated(*i)
	}
	return src
}

// SetSkipped sets the "skipped" field.
func (src *SyncRunCreate) SetSkipped(i int) *SyncRunCreate {
	src.mutation.SetSkipped(i)
	return src
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (src *SyncRunCreate) SetNillableSkipped(i *int) *SyncRunCreate {
	if i != nil {
		src.SetSkipped(*i)
	}
	return src
}

// SetAPIMs sets the "api_ms" field.
func (src *SyncRunCreate) SetAPIMs(i int64) *SyncRunCreate {
	src.mutation.SetAPIMs(i)
	return src
}

// SetNillableAPIMs sets the "api_ms" field if the given value is not nil.
func (src *SyncRunCreate) SetNillableAPIMs(i *int64) *SyncRunCreate {
	if i != nil {
		src.SetAPIMs(*i)
	}
	return src
}

// SetTotalMs sets the "total_ms" field.
func (src *SyncRunCreate) SetTotalMs(i int64) *SyncRunCreate {
	src.mutation.SetTotalMs(i)
	return src
}

// SetNillableTotalMs sets the "total_ms" field if the given value is not nil.
func (src *SyncRunCreate) SetNillableTotalMs(i *int64) *SyncRunCreate {
	if i != nil {
		src.SetTotalMs(*i)
	}
	return src
}

// SetError sets the "error" field.
func (src *SyncRunCreate) SetError(s string) *SyncRunCreate {
	src.mutation.SetError(s)
	return src
}

// SetNillableError sets the "error" field if the given value is not nil.
func (src *SyncRunCreate) SetNillableError(s *string) *SyncRunCreate {
	if s != nil {
		src.SetError(*s)
	}
	return src
}

// SetTriggeredBy sets the "triggered_by" field.
func (src *SyncRunCreate) SetTriggeredBy(s string) *SyncRunCreate {
	src.mutation.SetTriggeredBy(s)
	return src
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (src *SyncRunCreate) SetNillableTriggeredBy(s *string) *SyncRunCreate {
	if s != nil {
		src.SetTriggeredBy(*s)
	}
	return src
}

// SetStartedAt sets the "started_at" field.
func (src *SyncRunCreate) SetStartedAt(t time.Time) *SyncRunCreate {
	src.mutation.SetStartedAt(t)
	return src
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (src *SyncRunCreate) SetNillableStartedAt(t *time.Time) *SyncRunCreate {
	if t != nil {
		src.SetStartedAt(*t)
	}
	return src
}

// SetFinishedAt sets the "finished_at" field.
func (src *SyncRunCreate) SetFinishedAt(t time.Time) *SyncRunCreate {
	src.mutation.SetFinishedAt(t)
	return src
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (src *SyncRunCreate) SetNillableFinishedAt(t *time.Time) *SyncRunCreate {
	if t != nil {
		src.SetFinishedAt(*t)
	}
	return src
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (src *SyncRunCreate) SetTenant(t *Tenant) *SyncRunCreate {
	return src.SetTenantID(t.ID)
}

// Mutation returns the SyncRunMutation object of the builder.
func (src *SyncRunCreate) Mutation() *SyncRunMutation {
	return src.mutation
}

// Save creates the SyncRun in the database.
func (src *SyncRunCreate) Save(ctx context.Context) (*SyncRun, error) {
	src.defaults()
	return withHooks(ctx, src.sqlSave, src.mutation, src.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (src *SyncRunCreate) SaveX(ctx context.Context) *SyncRun {
	v, err := src.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (src *SyncRunCreate) Exec(ctx context.Context) error {
	_, err := src.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (src *SyncRunCreate) ExecX(ctx context.Context) {
	if err := src.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (src *SyncRunCreate) defaults() {
	if _, ok := src.mutation.Status(); !ok {
		v := syncrun.DefaultStatus
		src.mutation.SetStatus(v)
	}
	if _, ok := src.mutation.Timezone(); !ok {
		v := syncrun.DefaultTimezone
		src.mutation.SetTimezone(v)
	}
	if _, ok := src.mutation.Total(); !ok {
		v := syncrun.DefaultTotal
		src.mutation.SetTotal(v)
	}
	if _, ok := src.mutation.Inserted(); !ok {
		v := syncrun.DefaultInserted
		src.mutation.SetInserted(v)
	}
	if _, ok := src.mutation.Updated(); !ok {
		v := syncrun.DefaultUpdated
		src.mutation.SetUpdated(v)
	}
	if _, ok := src.mutation.Skipped(); !ok {
		v := syncrun.DefaultSkipped
		src.mutation.SetSkipped(v)
	}
	if _, ok := src.mutation.APIMs(); !ok {
		v := syncrun.DefaultAPIMs
		src.mutation.SetAPIMs(v)
	}
	if _, ok := src.mutation.TotalMs(); !ok {
		v := syncrun.DefaultTotalMs
		src.mutation.SetTotalMs(v)
	}
	if _, ok := src.mutation.StartedAt(); !ok {
		v := syncrun.DefaultStartedAt()
		src.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (src *SyncRunCreate) check() error {
	if _, ok := src.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "SyncRun.tenant_id"`)}
	}
	if _, ok := src.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "SyncRun.kind"`)}
	}
	if v, ok := src.mutation.Kind(); ok {
		if err := syncrun.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SyncRun.kind": %w`, err)}
		}
	}
	if _, ok := src.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SyncRun.status"`)}
	}
	if v, ok := src.mutation.Status(); ok {
		if err := syncrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncRun.status": %w`, err)}
		}
	}
	if _, ok := src.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "SyncRun.timezone"`)}
	}
	if _, ok := src.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "SyncRun.total"`)}
	}
	if v, ok := src.mutation.Total(); ok {
		if err := syncrun.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "SyncRun.total": %w`, err)}
		}
	}
	if _, ok := src.mutation.Inserted(); !ok {
		return &ValidationError{Name: "inserted", err: errors.New(`ent: missing required field "SyncRun.inserted"`)}
	}
	if v, ok := src.mutation.Inserted(); ok {
		if err := syncrun.InsertedValidator(v); err != nil {
			return &ValidationError{Name: "inserted", err: fmt.Errorf(`ent: validator failed for field "SyncRun.inserted": %w`, err)}
		}
	}
	if _, ok := src.mutation.Updated(); !ok {
		return &ValidationError{Name: "updated", err: errors.New(`ent: missing required field "SyncRun.updated"`)}
	}
	if v, ok := src.mutation.Updated(); ok {
		if err := syncrun.UpdatedValidator(v); err != nil {
			return &ValidationError{Name: "updated", err: fmt.Errorf(`ent: validator failed for field "SyncRun.updated": %w`, err)}
		}
	}
	if _, ok := src.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`ent: missing required field "SyncRun.skipped"`)}
	}
	if v, ok := src.mutation.Skipped(); ok {
		if err := syncrun.SkippedValidator(v); err != nil {
			return &ValidationError{Name: "skipped", err: fmt.Errorf(`ent: validator failed for field "SyncRun.skipped": %w`, err)}
		}
	}
	if _, ok := src.mutation.APIMs(); !ok {
		return &ValidationError{Name: "api_ms", err: errors.New(`ent: missing required field "SyncRun.api_ms"`)}
	}
	if _, ok := src.mutation.TotalMs(); !ok {
		return &ValidationError{Name: "total_ms", err: errors.New(`ent: missing required field "SyncRun.total_ms"`)}
	}
	if v, ok := src.mutation.TriggeredBy(); ok {
		if err := syncrun.TriggeredByValidator(v); err != nil {
			return &ValidationError{Name: "triggered_by", err: fmt.Errorf(`ent: validator failed for field "SyncRun.triggered_by": %w`, err)}
		}
	}
	if _, ok := src.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "SyncRun.started_at"`)}
	}
	if len(src.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "SyncRun.tenant"`)}
	}
	return nil
}

func (src *SyncRunCreate) sqlSave(ctx context.Context) (*SyncRun, error) {
	if err := src.check(); err != nil {
		return nil, err
	}
	_node, _spec := src.createSpec()
	if err := sqlgraph.CreateNode(ctx, src.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	src.mutation.id = &_node.ID
	src.mutation.done = true
	return _node, nil
}

func (src *SyncRunCreate) createSpec() (*SyncRun, *sqlgraph.CreateSpec) {
	var (
		_node = &SyncRun{config: src.config}
		_spec = sqlgraph.NewCreateSpec(syncrun.Table, sqlgraph.NewFieldSpec(syncrun.FieldID, field.TypeInt))
	)
	_spec.OnConflict = src.conflict
	if value, ok := src.mutation.Kind(); ok {
		_spec.SetField(syncrun.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := src.mutation.Status(); ok {
		_spec.SetField(syncrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := src.mutation.RequestedStart(); ok {
		_spec.SetField(syncrun.FieldRequestedStart, field.TypeTime, value)
		_node.RequestedStart = &value
	}
	if value, ok := src.mutation.RequestedEnd(); ok {
		_spec.SetField(syncrun.FieldRequestedEnd, field.TypeTime, value)
		_node.RequestedEnd = &value
	}
	if value, ok := src.mutation.EffectiveStart(); ok {
		_spec.SetField(syncrun.FieldEffectiveStart, field.TypeTime, value)
		_node.EffectiveStart = &value
	}
	if value, ok := src.mutation.EffectiveEnd(); ok {
		_spec.SetField(syncrun.FieldEffectiveEnd, field.TypeTime, value)
		_node.EffectiveEnd = &value
	}
	if value, ok := src.mutation.Timezone(); ok {
		_spec.SetField(syncrun.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := src.mutation.BypassedCutoffAt(); ok {
		_spec.SetField(syncrun.FieldBypassedCutoffAt, field.TypeTime, value)
		_node.BypassedCutoffAt = &value
	}
	if value, ok := src.mutation.PageTrace(); ok {
		_spec.SetField(syncrun.FieldPageTrace, field.TypeJSON, value)
		_node.PageTrace = value
	}
	if value, ok := src.mutation.LogLines(); ok {
		_spec.SetField(syncrun.FieldLogLines, field.TypeJSON, value)
		_node.LogLines = value
	}
	if value, ok := src.mutation.SkipCounts(); ok {
		_spec.SetField(syncrun.FieldSkipCounts, field.TypeJSON, value)
		_node.SkipCounts = value
	}
	if value, ok := src.mutation.SkippedSamples(); ok {
		_spec.SetField(syncrun.FieldSkippedSamples, field.TypeJSON, value)
		_node.SkippedSamples = value
	}
	if value, ok := src.mutation.Total(); ok {
		_spec.SetField(syncrun.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := src.mutation.Inserted(); ok {
		_spec.SetField(syncrun.FieldInserted, field.TypeInt, value)
		_node.Inserted = value
	}
	if value, ok := src.mutation.Updated(); ok {
		_spec.SetField(syncrun.FieldUpdated, field.TypeInt, value)
		_node.Updated = value
	}
	if value, ok := src.mutation.Skipped(); ok {
		_spec.SetField(syncrun.FieldSkipped, field.TypeInt, value)
		_node.Skipped = value
	}
	if value, ok := src.mutation.APIMs(); ok {
		_spec.SetField(syncrun.FieldAPIMs, field.TypeInt64, value)
		_node.APIMs = value
	}
	if value, ok := src.mutation.TotalMs(); ok {
		_spec.SetField(syncrun.FieldTotalMs, field.TypeInt64, value)
		_node.TotalMs = value
	}
	if value, ok := src.mutation.Error(); ok {
		_spec.SetField(syncrun.FieldError, field.TypeString, value)
		_node.Error = value
	}
	if value, ok := src.mutation.TriggeredBy(); ok {
		_spec.SetField(syncrun.FieldTriggeredBy, field.TypeString, value)
		_node.TriggeredBy = value
	}
	if value, ok := src.mutation.StartedAt(); ok {
		_spec.SetField(syncrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := src.mutation.FinishedAt(); ok {
		_spec.SetField(syncrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := src.mutation.TenantIDs(); len(nodes) > 0 {
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
		_node.TenantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SyncRun.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SyncRunUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (src *SyncRunCreate) OnConflict(opts ...sql.ConflictOption) *SyncRunUpsertOne {
	src.conflict = opts
	return &SyncRunUpsertOne{
		create: src,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SyncRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (src *SyncRunCreate) OnConflictColumns(columns ...string) *SyncRunUpsertOne {
	src.conflict = append(src.conflict, sql.ConflictColumns(columns...))
	return &SyncRunUpsertOne{
		create: src,
	}
}

type (
	// SyncRunUpsertOne is the builder for "upsert"-ing
	//  one SyncRun node.
	SyncRunUpsertOne struct {
		create *SyncRunCreate
	}

	// SyncRunUpsert is the "OnConflict" setter.
	SyncRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetTenantID sets the "tenant_id" field.
func (u *SyncRunUpsert) SetTenantID(v int) *SyncRunUpsert {
	u.Set(syncrun.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateTenantID() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldTenantID)
	return u
}

// SetKind sets the "kind" field.
func (u *SyncRunUpsert) SetKind(v syncrun.Kind) *SyncRunUpsert {
	u.Set(syncrun.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateKind() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldKind)
	return u
}

// SetStatus sets the "status" field.
func (u *SyncRunUpsert) SetStatus(v syncrun.Status) *SyncRunUpsert {
	u.Set(syncrun.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateStatus() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldStatus)
	return u
}

// SetRequestedStart sets the "requested_start" field.
func (u *SyncRunUpsert) SetRequestedStart(v time.Time) *SyncRunUpsert {
	u.Set(syncrun.FieldRequestedStart, v)
	return u
}

// UpdateRequestedStart sets the "requested_start" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateRequestedStart() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldRequestedStart)
	return u
}

// ClearRequestedStart clears the value of the "requested_start" field.
func (u *SyncRunUpsert) ClearRequestedStart() *SyncRunUpsert {
	u.SetNull(syncrun.FieldRequestedStart)
	return u
}

// SetRequestedEnd sets the "requested_end" field.
func (u *SyncRunUpsert) SetRequestedEnd(v time.Time) *SyncRunUpsert {
	u.Set(syncrun.FieldRequestedEnd, v)
	return u
}

// UpdateRequestedEnd sets the "requested_end" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateRequestedEnd() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldRequestedEnd)
	return u
}

// ClearRequestedEnd clears the value of the "requested_end" field.
func (u *SyncRunUpsert) ClearRequestedEnd() *SyncRunUpsert {
	u.SetNull(syncrun.FieldRequestedEnd)
	return u
}

// SetEffectiveStart sets the "effective_start" field.
func (u *SyncRunUpsert) SetEffectiveStart(v time.Time) *SyncRunUpsert {
	u.Set(syncrun.FieldEffectiveStart, v)
	return u
}

// UpdateEffectiveStart sets the "effective_start" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateEffectiveStart() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldEffectiveStart)
	return u
}

// ClearEffectiveStart clears the value of the "effective_start" field.
func (u *SyncRunUpsert) ClearEffectiveStart() *SyncRunUpsert {
	u.SetNull(syncrun.FieldEffectiveStart)
	return u
}

// SetEffectiveEnd sets the "effective_end" field.
func (u *SyncRunUpsert) SetEffectiveEnd(v time.Time) *SyncRunUpsert {
	u.Set(syncrun.FieldEffectiveEnd, v)
	return u
}

// UpdateEffectiveEnd sets the "effective_end" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateEffectiveEnd() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldEffectiveEnd)
	return u
}

// ClearEffectiveEnd clears the value of the "effective_end" field.
func (u *SyncRunUpsert) ClearEffectiveEnd() *SyncRunUpsert {
	u.SetNull(syncrun.FieldEffectiveEnd)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *SyncRunUpsert) SetTimezone(v string) *SyncRunUpsert {
	u.Set(syncrun.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateTimezone() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldTimezone)
	return u
}

// SetBypassedCutoffAt sets the "bypassed_cutoff_at" field.
func (u *SyncRunUpsert) SetBypassedCutoffAt(v time.Time) *SyncRunUpsert {
	u.Set(syncrun.FieldBypassedCutoffAt, v)
	return u
}

// UpdateBypassedCutoffAt sets the "bypassed_cutoff_at" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateBypassedCutoffAt() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldBypassedCutoffAt)
	return u
}

// ClearBypassedCutoffAt clears the value of the "bypassed_cutoff_at" field.
func (u *SyncRunUpsert) ClearBypassedCutoffAt() *SyncRunUpsert {
	u.SetNull(syncrun.FieldBypassedCutoffAt)
	return u
}

// SetPageTrace sets the "page_trace" field.
func (u *SyncRunUpsert) SetPageTrace(v []models.PageTrace) *SyncRunUpsert {
	u.Set(syncrun.FieldPageTrace, v)
	return u
}

// UpdatePageTrace sets the "page_trace" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdatePageTrace() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldPageTrace)
	return u
}

// ClearPageTrace clears the value of the "page_trace" field.
func (u *SyncRunUpsert) ClearPageTrace() *SyncRunUpsert {
	u.SetNull(syncrun.FieldPageTrace)
	return u
}

// SetLogLines sets the "log_lines" field.
func (u *SyncRunUpsert) SetLogLines(v []string) *SyncRunUpsert {
	u.Set(syncrun.FieldLogLines, v)
	return u
}

// UpdateLogLines sets the "log_lines" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateLogLines() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldLogLines)
	return u
}

// ClearLogLines clears the value of the "log_lines" field.
func (u *SyncRunUpsert) ClearLogLines() *SyncRunUpsert {
	u.SetNull(syncrun.FieldLogLines)
	return u
}

// SetSkipCounts sets the "skip_counts" field.
func (u *SyncRunUpsert) SetSkipCounts(v map[string]int) *SyncRunUpsert {
	u.Set(syncrun.FieldSkipCounts, v)
	return u
}

// UpdateSkipCounts sets the "skip_counts" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateSkipCounts() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldSkipCounts)
	return u
}

// ClearSkipCounts clears the value of the "skip_counts" field.
func (u *SyncRunUpsert) ClearSkipCounts() *SyncRunUpsert {
	u.SetNull(syncrun.FieldSkipCounts)
	return u
}

// SetSkippedSamples sets the "skipped_samples" field.
func (u *SyncRunUpsert) SetSkippedSamples(v []map[string]interface{}) *SyncRunUpsert {
	u.Set(syncrun.FieldSkippedSamples, v)
	return u
}

// UpdateSkippedSamples sets the "skipped_samples" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateSkippedSamples() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldSkippedSamples)
	return u
}

// ClearSkippedSamples clears the value of the "skipped_samples" field.
func (u *SyncRunUpsert) ClearSkippedSamples() *SyncRunUpsert {
	u.SetNull(syncrun.FieldSkippedSamples)
	return u
}

// SetTotal sets the "total" field.
func (u *SyncRunUpsert) SetTotal(v int) *SyncRunUpsert {
	u.Set(syncrun.FieldTotal, v)
	return u
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateTotal() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldTotal)
	return u
}

// AddTotal adds v to the "total" field.
func (u *SyncRunUpsert) AddTotal(v int) *SyncRunUpsert {
	u.Add(syncrun.FieldTotal, v)
	return u
}

// SetInserted sets the "inserted" field.
func (u *SyncRunUpsert) SetInserted(v int) *SyncRunUpsert {
	u.Set(syncrun.FieldInserted, v)
	return u
}

// UpdateInserted sets the "inserted" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateInserted() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldInserted)
	return u
}

// AddInserted adds v to the "inserted" field.
func (u *SyncRunUpsert) AddInserted(v int) *SyncRunUpsert {
	u.Add(syncrun.FieldInserted, v)
	return u
}

// SetUpdated sets the "updated" field.
func (u *SyncRunUpsert) SetUpdated(v int) *SyncRunUpsert {
	u.Set(syncrun.FieldUpdated, v)
	return u
}

// UpdateUpdated sets the "updated" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateUpdated() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldUpdated)
	return u
}

// AddUpdated adds v to the "updated" field.
func (u *SyncRunUpsert) AddUpdated(v int) *SyncRunUpsert {
	u.Add(syncrun.FieldUpdated, v)
	return u
}

// SetSkipped sets the "skipped" field.
func (u *SyncRunUpsert) SetSkipped(v int) *SyncRunUpsert {
	u.Set(syncrun.FieldSkipped, v)
	return u
}

// UpdateSkipped sets the "skipped" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateSkipped() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldSkipped)
	return u
}

// AddSkipped adds v to the "skipped" field.
func (u *SyncRunUpsert) AddSkipped(v int) *SyncRunUpsert {
	u.Add(syncrun.FieldSkipped, v)
	return u
}

// SetAPIMs sets the "api_ms" field.
func (u *SyncRunUpsert) SetAPIMs(v int64) *SyncRunUpsert {
	u.Set(syncrun.FieldAPIMs, v)
	return u
}

// UpdateAPIMs sets the "api_ms" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateAPIMs() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldAPIMs)
	return u
}

// AddAPIMs adds v to the "api_ms" field.
func (u *SyncRunUpsert) AddAPIMs(v int64) *SyncRunUpsert {
	u.Add(syncrun.FieldAPIMs, v)
	return u
}

// SetTotalMs sets the "total_ms" field.
func (u *SyncRunUpsert) SetTotalMs(v int64) *SyncRunUpsert {
	u.Set(syncrun.FieldTotalMs, v)
	return u
}

// UpdateTotalMs sets the "total_ms" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateTotalMs() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldTotalMs)
	return u
}

// AddTotalMs adds v to the "total_ms" field.
func (u *SyncRunUpsert) AddTotalMs(v int64) *SyncRunUpsert {
	u.Add(syncrun.FieldTotalMs, v)
	return u
}

// SetError sets the "error" field.
func (u *SyncRunUpsert) SetError(v string) *SyncRunUpsert {
	u.Set(syncrun.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateError() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *SyncRunUpsert) ClearError() *SyncRunUpsert {
	u.SetNull(syncrun.FieldError)
	return u
}

// SetTriggeredBy sets the "triggered_by" field.
func (u *SyncRunUpsert) SetTriggeredBy(v string) *SyncRunUpsert {
	u.Set(syncrun.FieldTriggeredBy, v)
	return u
}

// UpdateTriggeredBy sets the "triggered_by" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateTriggeredBy() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldTriggeredBy)
	return u
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (u *SyncRunUpsert) ClearTriggeredBy() *SyncRunUpsert {
	u.SetNull(syncrun.FieldTriggeredBy)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *SyncRunUpsert) SetFinishedAt(v time.Time) *SyncRunUpsert {
	u.Set(syncrun.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *SyncRunUpsert) UpdateFinishedAt() *SyncRunUpsert {
	u.SetExcluded(syncrun.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *SyncRunUpsert) ClearFinishedAt() *SyncRunUpsert {
	u.SetNull(syncrun.FieldFinishedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SyncRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SyncRunUpsertOne) UpdateNewValues() *SyncRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(syncrun.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SyncRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SyncRunUpsertOne) Ignore() *SyncRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SyncRunUpsertOne) DoNothing() *SyncRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SyncRunCreate.OnConflict
// documentation for more info.
func (u *SyncRunUpsertOne) Update(set func(*SyncRunUpsert)) *SyncRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SyncRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *SyncRunUpsertOne) SetTenantID(v int) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateTenantID() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateTenantID()
	})
}

// SetKind sets the "kind" field.
func (u *SyncRunUpsertOne) SetKind(v syncrun.Kind) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateKind() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateKind()
	})
}

// SetStatus sets the "status" field.
func (u *SyncRunUpsertOne) SetStatus(v syncrun.Status) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateStatus() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateStatus()
	})
}

// SetRequestedStart sets the "requested_start" field.
func (u *SyncRunUpsertOne) SetRequestedStart(v time.Time) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetRequestedStart(v)
	})
}

// UpdateRequestedStart sets the "requested_start" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateRequestedStart() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateRequestedStart()
	})
}

// ClearRequestedStart clears the value of the "requested_start" field.
func (u *SyncRunUpsertOne) ClearRequestedStart() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearRequestedStart()
	})
}

// SetRequestedEnd sets the "requested_end" field.
func (u *SyncRunUpsertOne) SetRequestedEnd(v time.Time) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetRequestedEnd(v)
	})
}

// UpdateRequestedEnd sets the "requested_end" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateRequestedEnd() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateRequestedEnd()
	})
}

// ClearRequestedEnd clears the value of the "requested_end" field.
func (u *SyncRunUpsertOne) ClearRequestedEnd() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearRequestedEnd()
	})
}

// SetEffectiveStart sets the "effective_start" field.
func (u *SyncRunUpsertOne) SetEffectiveStart(v time.Time) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetEffectiveStart(v)
	})
}

// UpdateEffectiveStart sets the "effective_start" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateEffectiveStart() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateEffectiveStart()
	})
}

// ClearEffectiveStart clears the value of the "effective_start" field.
func (u *SyncRunUpsertOne) ClearEffectiveStart() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearEffectiveStart()
	})
}

// SetEffectiveEnd sets the "effective_end" field.
func (u *SyncRunUpsertOne) SetEffectiveEnd(v time.Time) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetEffectiveEnd(v)
	})
}

// UpdateEffectiveEnd sets the "effective_end" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateEffectiveEnd() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateEffectiveEnd()
	})
}

// ClearEffectiveEnd clears the value of the "effective_end" field.
func (u *SyncRunUpsertOne) ClearEffectiveEnd() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearEffectiveEnd()
	})
}

// SetTimezone sets the "timezone" field.
func (u *SyncRunUpsertOne) SetTimezone(v string) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateTimezone() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateTimezone()
	})
}

// SetBypassedCutoffAt sets the "bypassed_cutoff_at" field.
func (u *SyncRunUpsertOne) SetBypassedCutoffAt(v time.Time) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetBypassedCutoffAt(v)
	})
}

// UpdateBypassedCutoffAt sets the "bypassed_cutoff_at" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateBypassedCutoffAt() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateBypassedCutoffAt()
	})
}

// ClearBypassedCutoffAt clears the value of the "bypassed_cutoff_at" field.
func (u *SyncRunUpsertOne) ClearBypassedCutoffAt() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearBypassedCutoffAt()
	})
}

// SetPageTrace sets the "page_trace" field.
func (u *SyncRunUpsertOne) SetPageTrace(v []models.PageTrace) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetPageTrace(v)
	})
}

// UpdatePageTrace sets the "page_trace" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdatePageTrace() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdatePageTrace()
	})
}

// ClearPageTrace clears the value of the "page_trace" field.
func (u *SyncRunUpsertOne) ClearPageTrace() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearPageTrace()
	})
}

// SetLogLines sets the "log_lines" field.
func (u *SyncRunUpsertOne) SetLogLines(v []string) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetLogLines(v)
	})
}

// UpdateLogLines sets the "log_lines" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateLogLines() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateLogLines()
	})
}

// ClearLogLines clears the value of the "log_lines" field.
func (u *SyncRunUpsertOne) ClearLogLines() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearLogLines()
	})
}

// SetSkipCounts sets the "skip_counts" field.
func (u *SyncRunUpsertOne) SetSkipCounts(v map[string]int) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetSkipCounts(v)
	})
}

// UpdateSkipCounts sets the "skip_counts" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateSkipCounts() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateSkipCounts()
	})
}

// ClearSkipCounts clears the value of the "skip_counts" field.
func (u *SyncRunUpsertOne) ClearSkipCounts() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearSkipCounts()
	})
}

// SetSkippedSamples sets the "skipped_samples" field.
func (u *SyncRunUpsertOne) SetSkippedSamples(v []map[string]interface{}) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetSkippedSamples(v)
	})
}

// UpdateSkippedSamples sets the "skipped_samples" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateSkippedSamples() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateSkippedSamples()
	})
}

// ClearSkippedSamples clears the value of the "skipped_samples" field.
func (u *SyncRunUpsertOne) ClearSkippedSamples() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearSkippedSamples()
	})
}

// SetTotal sets the "total" field.
func (u *SyncRunUpsertOne) SetTotal(v int) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *SyncRunUpsertOne) AddTotal(v int) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateTotal() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateTotal()
	})
}

// SetInserted sets the "inserted" field.
func (u *SyncRunUpsertOne) SetInserted(v int) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetInserted(v)
	})
}

// AddInserted adds v to the "inserted" field.
func (u *SyncRunUpsertOne) AddInserted(v int) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.AddInserted(v)
	})
}

// UpdateInserted sets the "inserted" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateInserted() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateInserted()
	})
}

// SetUpdated sets the "updated" field.
func (u *SyncRunUpsertOne) SetUpdated(v int) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetUpdated(v)
	})
}

// AddUpdated adds v to the "updated" field.
func (u *SyncRunUpsertOne) AddUpdated(v int) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.AddUpdated(v)
	})
}

// UpdateUpdated sets the "updated" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateUpdated() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateUpdated()
	})
}

// SetSkipped sets the "skipped" field.
func (u *SyncRunUpsertOne) SetSkipped(v int) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetSkipped(v)
	})
}

// AddSkipped adds v to the "skipped" field.
func (u *SyncRunUpsertOne) AddSkipped(v int) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.AddSkipped(v)
	})
}

// UpdateSkipped sets the "skipped" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateSkipped() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateSkipped()
	})
}

// SetAPIMs sets the "api_ms" field.
func (u *SyncRunUpsertOne) SetAPIMs(v int64) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetAPIMs(v)
	})
}

// AddAPIMs adds v to the "api_ms" field.
func (u *SyncRunUpsertOne) AddAPIMs(v int64) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.AddAPIMs(v)
	})
}

// UpdateAPIMs sets the "api_ms" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateAPIMs() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateAPIMs()
	})
}

// SetTotalMs sets the "total_ms" field.
func (u *SyncRunUpsertOne) SetTotalMs(v int64) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetTotalMs(v)
	})
}

// AddTotalMs adds v to the "total_ms" field.
func (u *SyncRunUpsertOne) AddTotalMs(v int64) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.AddTotalMs(v)
	})
}

// UpdateTotalMs sets the "total_ms" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateTotalMs() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateTotalMs()
	})
}

// SetError sets the "error" field.
func (u *SyncRunUpsertOne) SetError(v string) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateError() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *SyncRunUpsertOne) ClearError() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearError()
	})
}

// SetTriggeredBy sets the "triggered_by" field.
func (u *SyncRunUpsertOne) SetTriggeredBy(v string) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetTriggeredBy(v)
	})
}

// UpdateTriggeredBy sets the "triggered_by" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateTriggeredBy() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateTriggeredBy()
	})
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (u *SyncRunUpsertOne) ClearTriggeredBy() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearTriggeredBy()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *SyncRunUpsertOne) SetFinishedAt(v time.Time) *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *SyncRunUpsertOne) UpdateFinishedAt() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *SyncRunUpsertOne) ClearFinishedAt() *SyncRunUpsertOne {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *SyncRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SyncRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SyncRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SyncRunUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SyncRunUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SyncRunCreateBulk is the builder for creating many SyncRun entities in bulk.
type SyncRunCreateBulk struct {
	config
	err      error
	builders []*SyncRunCreate
	conflict []sql.ConflictOption
}

// Save creates the SyncRun entities in the database.
func (srcb *SyncRunCreateBulk) Save(ctx context.Context) ([]*SyncRun, error) {
	if srcb.err != nil {
		return nil, srcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(srcb.builders))
	nodes := make([]*SyncRun, len(srcb.builders))
	mutators := make([]Mutator, len(srcb.builders))
	for i := range srcb.builders {
		func(i int, root context.Context) {
			builder := srcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyncRunMutation)
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
					_, err = mutators[i+1].Mutate(root, srcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = srcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, srcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, srcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (srcb *SyncRunCreateBulk) SaveX(ctx context.Context) []*SyncRun {
	v, err := srcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (srcb *SyncRunCreateBulk) Exec(ctx context.Context) error {
	_, err := srcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (srcb *SyncRunCreateBulk) ExecX(ctx context.Context) {
	if err := srcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SyncRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SyncRunUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (srcb *SyncRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *SyncRunUpsertBulk {
	srcb.conflict = opts
	return &SyncRunUpsertBulk{
		create: srcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SyncRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (srcb *SyncRunCreateBulk) OnConflictColumns(columns ...string) *SyncRunUpsertBulk {
	srcb.conflict = append(srcb.conflict, sql.ConflictColumns(columns...))
	return &SyncRunUpsertBulk{
		create: srcb,
	}
}

// SyncRunUpsertBulk is the builder for "upsert"-ing
// a bulk of SyncRun nodes.
type SyncRunUpsertBulk struct {
	create *SyncRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SyncRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SyncRunUpsertBulk) UpdateNewValues() *SyncRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(syncrun.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SyncRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SyncRunUpsertBulk) Ignore() *SyncRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SyncRunUpsertBulk) DoNothing() *SyncRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SyncRunCreateBulk.OnConflict
// documentation for more info.
func (u *SyncRunUpsertBulk) Update(set func(*SyncRunUpsert)) *SyncRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SyncRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *SyncRunUpsertBulk) SetTenantID(v int) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateTenantID() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateTenantID()
	})
}

// SetKind sets the "kind" field.
func (u *SyncRunUpsertBulk) SetKind(v syncrun.Kind) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateKind() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateKind()
	})
}

// SetStatus sets the "status" field.
func (u *SyncRunUpsertBulk) SetStatus(v syncrun.Status) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateStatus() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateStatus()
	})
}

// SetRequestedStart sets the "requested_start" field.
func (u *SyncRunUpsertBulk) SetRequestedStart(v time.Time) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetRequestedStart(v)
	})
}

// UpdateRequestedStart sets the "requested_start" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateRequestedStart() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateRequestedStart()
	})
}

// ClearRequestedStart clears the value of the "requested_start" field.
func (u *SyncRunUpsertBulk) ClearRequestedStart() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearRequestedStart()
	})
}

// SetRequestedEnd sets the "requested_end" field.
func (u *SyncRunUpsertBulk) SetRequestedEnd(v time.Time) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetRequestedEnd(v)
	})
}

// UpdateRequestedEnd sets the "requested_end" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateRequestedEnd() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateRequestedEnd()
	})
}

// ClearRequestedEnd clears the value of the "requested_end" field.
func (u *SyncRunUpsertBulk) ClearRequestedEnd() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearRequestedEnd()
	})
}

// SetEffectiveStart sets the "effective_start" field.
func (u *SyncRunUpsertBulk) SetEffectiveStart(v time.Time) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetEffectiveStart(v)
	})
}

// UpdateEffectiveStart sets the "effective_start" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateEffectiveStart() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateEffectiveStart()
	})
}

// ClearEffectiveStart clears the value of the "effective_start" field.
func (u *SyncRunUpsertBulk) ClearEffectiveStart() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearEffectiveStart()
	})
}

// SetEffectiveEnd sets the "effective_end" field.
func (u *SyncRunUpsertBulk) SetEffectiveEnd(v time.Time) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetEffectiveEnd(v)
	})
}

// UpdateEffectiveEnd sets the "effective_end" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateEffectiveEnd() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateEffectiveEnd()
	})
}

// ClearEffectiveEnd clears the value of the "effective_end" field.
func (u *SyncRunUpsertBulk) ClearEffectiveEnd() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearEffectiveEnd()
	})
}

// SetTimezone sets the "timezone" field.
func (u *SyncRunUpsertBulk) SetTimezone(v string) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateTimezone() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateTimezone()
	})
}

// SetBypassedCutoffAt sets the "bypassed_cutoff_at" field.
func (u *SyncRunUpsertBulk) SetBypassedCutoffAt(v time.Time) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetBypassedCutoffAt(v)
	})
}

// UpdateBypassedCutoffAt sets the "bypassed_cutoff_at" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateBypassedCutoffAt() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateBypassedCutoffAt()
	})
}

// ClearBypassedCutoffAt clears the value of the "bypassed_cutoff_at" field.
func (u *SyncRunUpsertBulk) ClearBypassedCutoffAt() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearBypassedCutoffAt()
	})
}

// SetPageTrace sets the "page_trace" field.
func (u *SyncRunUpsertBulk) SetPageTrace(v []models.PageTrace) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetPageTrace(v)
	})
}

// UpdatePageTrace sets the "page_trace" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdatePageTrace() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdatePageTrace()
	})
}

// ClearPageTrace clears the value of the "page_trace" field.
func (u *SyncRunUpsertBulk) ClearPageTrace() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearPageTrace()
	})
}

// SetLogLines sets the "log_lines" field.
func (u *SyncRunUpsertBulk) SetLogLines(v []string) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetLogLines(v)
	})
}

// UpdateLogLines sets the "log_lines" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateLogLines() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateLogLines()
	})
}

// ClearLogLines clears the value of the "log_lines" field.
func (u *SyncRunUpsertBulk) ClearLogLines() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearLogLines()
	})
}

// SetSkipCounts sets the "skip_counts" field.
func (u *SyncRunUpsertBulk) SetSkipCounts(v map[string]int) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetSkipCounts(v)
	})
}

// UpdateSkipCounts sets the "skip_counts" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateSkipCounts() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateSkipCounts()
	})
}

// ClearSkipCounts clears the value of the "skip_counts" field.
func (u *SyncRunUpsertBulk) ClearSkipCounts() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearSkipCounts()
	})
}

// SetSkippedSamples sets the "skipped_samples" field.
func (u *SyncRunUpsertBulk) SetSkippedSamples(v []map[string]interface{}) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetSkippedSamples(v)
	})
}

// UpdateSkippedSamples sets the "skipped_samples" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateSkippedSamples() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateSkippedSamples()
	})
}

// ClearSkippedSamples clears the value of the "skipped_samples" field.
func (u *SyncRunUpsertBulk) ClearSkippedSamples() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearSkippedSamples()
	})
}

// SetTotal sets the "total" field.
func (u *SyncRunUpsertBulk) SetTotal(v int) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *SyncRunUpsertBulk) AddTotal(v int) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateTotal() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateTotal()
	})
}

// SetInserted sets the "inserted" field.
func (u *SyncRunUpsertBulk) SetInserted(v int) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetInserted(v)
	})
}

// AddInserted adds v to the "inserted" field.
func (u *SyncRunUpsertBulk) AddInserted(v int) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.AddInserted(v)
	})
}

// UpdateInserted sets the "inserted" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateInserted() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateInserted()
	})
}

// SetUpdated sets the "updated" field.
func (u *SyncRunUpsertBulk) SetUpdated(v int) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetUpdated(v)
	})
}

// AddUpdated adds v to the "updated" field.
func (u *SyncRunUpsertBulk) AddUpdated(v int) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.AddUpdated(v)
	})
}

// UpdateUpdated sets the "updated" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateUpdated() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateUpdated()
	})
}

// SetSkipped sets the "skipped" field.
func (u *SyncRunUpsertBulk) SetSkipped(v int) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetSkipped(v)
	})
}

// AddSkipped adds v to the "skipped" field.
func (u *SyncRunUpsertBulk) AddSkipped(v int) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.AddSkipped(v)
	})
}

// UpdateSkipped sets the "skipped" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateSkipped() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateSkipped()
	})
}

// SetAPIMs sets the "api_ms" field.
func (u *SyncRunUpsertBulk) SetAPIMs(v int64) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetAPIMs(v)
	})
}

// AddAPIMs adds v to the "api_ms" field.
func (u *SyncRunUpsertBulk) AddAPIMs(v int64) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.AddAPIMs(v)
	})
}

// UpdateAPIMs sets the "api_ms" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateAPIMs() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateAPIMs()
	})
}

// SetTotalMs sets the "total_ms" field.
func (u *SyncRunUpsertBulk) SetTotalMs(v int64) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetTotalMs(v)
	})
}

// AddTotalMs adds v to the "total_ms" field.
func (u *SyncRunUpsertBulk) AddTotalMs(v int64) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.AddTotalMs(v)
	})
}

// UpdateTotalMs sets the "total_ms" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateTotalMs() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateTotalMs()
	})
}

// SetError sets the "error" field.
func (u *SyncRunUpsertBulk) SetError(v string) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateError() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *SyncRunUpsertBulk) ClearError() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearError()
	})
}

// SetTriggeredBy sets the "triggered_by" field.
func (u *SyncRunUpsertBulk) SetTriggeredBy(v string) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetTriggeredBy(v)
	})
}

// UpdateTriggeredBy sets the "triggered_by" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateTriggeredBy() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateTriggeredBy()
	})
}

// ClearTriggeredBy clears the value of the "triggered_by" field.
func (u *SyncRunUpsertBulk) ClearTriggeredBy() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearTriggeredBy()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *SyncRunUpsertBulk) SetFinishedAt(v time.Time) *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *SyncRunUpsertBulk) UpdateFinishedAt() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *SyncRunUpsertBulk) ClearFinishedAt() *SyncRunUpsertBulk {
	return u.Update(func(s *SyncRunUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *SyncRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SyncRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SyncRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SyncRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
