// Code generated by ent, DO NOT EDIT.

package syncrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ringledger/ringledger/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldTenantID, v))
}

// RequestedStart applies equality check predicate on the "requested_start" field. It's identical to RequestedStartEQ.
func RequestedStart(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldRequestedStart, v))
}

// RequestedEnd applies equality check predicate on the "requested_end" field. It's identical to RequestedEndEQ.
func RequestedEnd(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldRequestedEnd, v))
}

// EffectiveStart applies equality check predicate on the "effective_start" field. It's identical to EffectiveStartEQ.
func EffectiveStart(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldEffectiveStart, v))
}

// EffectiveEnd applies equality check predicate on the "effective_end" field. It's identical to EffectiveEndEQ.
func EffectiveEnd(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldEffectiveEnd, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldTimezone, v))
}

// BypassedCutoffAt applies equality check predicate on the "bypassed_cutoff_at" field. It's identical to BypassedCutoffAtEQ.
func BypassedCutoffAt(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldBypassedCutoffAt, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldTotal, v))
}

// Inserted applies equality check predicate on the "inserted" field. It's identical to InsertedEQ.
func Inserted(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldInserted, v))
}

// Updated applies equality check predicate on the "updated" field. It's identical to UpdatedEQ.
func Updated(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldUpdated, v))
}

// Skipped applies equality check predicate on the "skipped" field. It's identical to SkippedEQ.
func Skipped(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldSkipped, v))
}

// APIMs applies equality check predicate on the "api_ms" field. It's identical to APIMsEQ.
func APIMs(v int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldAPIMs, v))
}

// TotalMs applies equality check predicate on the "total_ms" field. It's identical to TotalMsEQ.
func TotalMs(v int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldTotalMs, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldError, v))
}

// TriggeredBy applies equality check predicate on the "triggered_by" field. It's identical to TriggeredByEQ.
func TriggeredBy(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldTriggeredBy, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldFinishedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldTenantID, vs...))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldKind, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldStatus, vs...))
}

// RequestedStartEQ applies the EQ predicate on the "requested_start" field.
func RequestedStartEQ(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldRequestedStart, v))
}

// RequestedStartNEQ applies the NEQ predicate on the "requested_start" field.
func RequestedStartNEQ(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldRequestedStart, v))
}

// RequestedStartIn applies the In predicate on the "requested_start" field.
func RequestedStartIn(vs ...time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldRequestedStart, vs...))
}

// RequestedStartNotIn applies the NotIn predicate on the "requested_start" field.
func RequestedStartNotIn(vs ...time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldRequestedStart, vs...))
}

// RequestedStartGT applies the GT predicate on the "requested_start" field.
func RequestedStartGT(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGT(FieldRequestedStart, v))
}

// RequestedStartGTE applies the GTE predicate on the "requested_start" field.
func RequestedStartGTE(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGTE(FieldRequestedStart, v))
}

// RequestedStartLT applies the LT predicate on the "requested_start" field.
func RequestedStartLT(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLT(FieldRequestedStart, v))
}

// RequestedStartLTE applies the LTE predicate on the "requested_start" field.
func RequestedStartLTE(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLTE(FieldRequestedStart, v))
}

// RequestedStartIsNil applies the IsNil predicate on the "requested_start" field.
func RequestedStartIsNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIsNull(FieldRequestedStart))
}

// RequestedStartNotNil applies the NotNil predicate on the "requested_start" field.
func RequestedStartNotNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotNull(FieldRequestedStart))
}

// RequestedEndEQ applies the EQ predicate on the "requested_end" field.
func RequestedEndEQ(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldRequestedEnd, v))
}

// RequestedEndNEQ applies the NEQ predicate on the "requested_end" field.
func RequestedEndNEQ(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldRequestedEnd, v))
}

// RequestedEndIn applies the In predicate on the "requested_end" field.
func RequestedEndIn(vs ...time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldRequestedEnd, vs...))
}

// RequestedEndNotIn applies the NotIn predicate on the "requested_end" field.
func RequestedEndNotIn(vs ...time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldRequestedEnd, vs...))
}

// RequestedEndGT applies the GT predicate on the "requested_end" field.
func RequestedEndGT(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGT(FieldRequestedEnd, v))
}

// RequestedEndGTE applies the GTE predicate on the "requested_end" field.
func RequestedEndGTE(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGTE(FieldRequestedEnd, v))
}

// RequestedEndLT applies the LT predicate on the "requested_end" field.
func RequestedEndLT(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLT(FieldRequestedEnd, v))
}

// RequestedEndLTE applies the LTE predicate on the "requested_end" field.
func RequestedEndLTE(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLTE(FieldRequestedEnd, v))
}

// RequestedEndIsNil applies the IsNil predicate on the "requested_end" field.
func RequestedEndIsNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIsNull(FieldRequestedEnd))
}

// RequestedEndNotNil applies the NotNil predicate on the "requested_end" field.
func RequestedEndNotNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotNull(FieldRequestedEnd))
}

// EffectiveStartEQ applies the EQ predicate on the "effective_start" field.
func EffectiveStartEQ(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldEffectiveStart, v))
}

// EffectiveStartNEQ applies the NEQ predicate on the "effective_start" field.
func EffectiveStartNEQ(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldEffectiveStart, v))
}

// EffectiveStartIn applies the In predicate on the "effective_start" field.
func EffectiveStartIn(vs ...time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldEffectiveStart, vs...))
}

// EffectiveStartNotIn applies the NotIn predicate on the "effective_start" field.
func EffectiveStartNotIn(vs ...time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldEffectiveStart, vs...))
}

// EffectiveStartGT applies the GT predicate on the "effective_start" field.
func EffectiveStartGT(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGT(FieldEffectiveStart, v))
}

// EffectiveStartGTE applies the GTE predicate on the "effective_start" field.
func EffectiveStartGTE(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGTE(FieldEffectiveStart, v))
}

// EffectiveStartLT applies the LT predicate on the "effective_start" field.
func EffectiveStartLT(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLT(FieldEffectiveStart, v))
}

// EffectiveStartLTE applies the LTE predicate on the "effective_start" field.
func EffectiveStartLTE(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLTE(FieldEffectiveStart, v))
}

// EffectiveStartIsNil applies the IsNil predicate on the "effective_start" field.
func EffectiveStartIsNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIsNull(FieldEffectiveStart))
}

// EffectiveStartNotNil applies the NotNil predicate on the "effective_start" field.
func EffectiveStartNotNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotNull(FieldEffectiveStart))
}

// EffectiveEndEQ applies the EQ predicate on the "effective_end" field.
func EffectiveEndEQ(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldEffectiveEnd, v))
}

// EffectiveEndNEQ applies the NEQ predicate on the "effective_end" field.
func EffectiveEndNEQ(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldEffectiveEnd, v))
}

// EffectiveEndIn applies the In predicate on the "effective_end" field.
func EffectiveEndIn(vs ...time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldEffectiveEnd, vs...))
}

// EffectiveEndNotIn applies the NotIn predicate on the "effective_end" field.
func EffectiveEndNotIn(vs ...time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldEffectiveEnd, vs...))
}

// EffectiveEndGT applies the GT predicate on the "effective_end" field.
func EffectiveEndGT(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGT(FieldEffectiveEnd, v))
}

// EffectiveEndGTE applies the GTE predicate on the "effective_end" field.
func EffectiveEndGTE(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGTE(FieldEffectiveEnd, v))
}

// EffectiveEndLT applies the LT predicate on the "effective_end" field.
func EffectiveEndLT(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLT(FieldEffectiveEnd, v))
}

// EffectiveEndLTE applies the LTE predicate on the "effective_end" field.
func EffectiveEndLTE(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLTE(FieldEffectiveEnd, v))
}

// EffectiveEndIsNil applies the IsNil predicate on the "effective_end" field.
func EffectiveEndIsNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIsNull(FieldEffectiveEnd))
}

// EffectiveEndNotNil applies the NotNil predicate on the "effective_end" field.
func EffectiveEndNotNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotNull(FieldEffectiveEnd))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldContainsFold(FieldTimezone, v))
}

// BypassedCutoffAtEQ applies the EQ predicate on the "bypassed_cutoff_at" field.
func BypassedCutoffAtEQ(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldBypassedCutoffAt, v))
}

// BypassedCutoffAtNEQ applies the NEQ predicate on the "bypassed_cutoff_at" field.
func BypassedCutoffAtNEQ(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldBypassedCutoffAt, v))
}

// BypassedCutoffAtIn applies the In predicate on the "bypassed_cutoff_at" field.
func BypassedCutoffAtIn(vs ...time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldBypassedCutoffAt, vs...))
}

// BypassedCutoffAtNotIn applies the NotIn predicate on the "bypassed_cutoff_at" field.
func BypassedCutoffAtNotIn(vs ...time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldBypassedCutoffAt, vs...))
}

// BypassedCutoffAtGT applies the GT predicate on the "bypassed_cutoff_at" field.
func BypassedCutoffAtGT(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGT(FieldBypassedCutoffAt, v))
}

// BypassedCutoffAtGTE applies the GTE predicate on the "bypassed_cutoff_at" field.
func BypassedCutoffAtGTE(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGTE(FieldBypassedCutoffAt, v))
}

// BypassedCutoffAtLT applies the LT predicate on the "bypassed_cutoff_at" field.
func BypassedCutoffAtLT(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLT(FieldBypassedCutoffAt, v))
}

// BypassedCutoffAtLTE applies the LTE predicate on the "bypassed_cutoff_at" field.
func BypassedCutoffAtLTE(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLTE(FieldBypassedCutoffAt, v))
}

// BypassedCutoffAtIsNil applies the IsNil predicate on the "bypassed_cutoff_at" field.
func BypassedCutoffAtIsNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIsNull(FieldBypassedCutoffAt))
}

// BypassedCutoffAtNotNil applies the NotNil predicate on the "bypassed_cutoff_at" field.
func BypassedCutoffAtNotNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotNull(FieldBypassedCutoffAt))
}

// PageTraceIsNil applies the IsNil predicate on the "page_trace" field.
func PageTraceIsNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIsNull(FieldPageTrace))
}

// PageTraceNotNil applies the NotNil predicate on the "page_trace" field.
func PageTraceNotNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotNull(FieldPageTrace))
}

// LogLinesIsNil applies the IsNil predicate on the "log_lines" field.
func LogLinesIsNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIsNull(FieldLogLines))
}

// LogLinesNotNil applies the NotNil predicate on the "log_lines" field.
func LogLinesNotNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotNull(FieldLogLines))
}

// SkipCountsIsNil applies the IsNil predicate on the "skip_counts" field.
func SkipCountsIsNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIsNull(FieldSkipCounts))
}

// SkipCountsNotNil applies the NotNil predicate on the "skip_counts" field.
func SkipCountsNotNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotNull(FieldSkipCounts))
}

// SkippedSamplesIsNil applies the IsNil predicate on the "skipped_samples" field.
func SkippedSamplesIsNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIsNull(FieldSkippedSamples))
}

// SkippedSamplesNotNil applies the NotNil predicate on the "skipped_samples" field.
func SkippedSamplesNotNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotNull(FieldSkippedSamples))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLTE(FieldTotal, v))
}

// InsertedEQ applies the EQ predicate on the "inserted" field.
func InsertedEQ(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldInserted, v))
}

// InsertedNEQ applies the NEQ predicate on the "inserted" field.
func InsertedNEQ(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldInserted, v))
}

// InsertedIn applies the In predicate on the "inserted" field.
func InsertedIn(vs ...int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldInserted, vs...))
}

// InsertedNotIn applies the NotIn predicate on the "inserted" field.
func InsertedNotIn(vs ...int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldInserted, vs...))
}

// InsertedGT applies the GT predicate on the "inserted" field.
func InsertedGT(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGT(FieldInserted, v))
}

// InsertedGTE applies the GTE predicate on the "inserted" field.
func InsertedGTE(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGTE(FieldInserted, v))
}

// InsertedLT applies the LT predicate on the "inserted" field.
func InsertedLT(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLT(FieldInserted, v))
}

// InsertedLTE applies the LTE predicate on the "inserted" field.
func InsertedLTE(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLTE(FieldInserted, v))
}

// UpdatedEQ applies the EQ predicate on the "updated" field.
func UpdatedEQ(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldUpdated, v))
}

// UpdatedNEQ applies the NEQ predicate on the "updated" field.
func UpdatedNEQ(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldUpdated, v))
}

// UpdatedIn applies the In predicate on the "updated" field.
func UpdatedIn(vs ...int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldUpdated, vs...))
}

// UpdatedNotIn applies the NotIn predicate on the "updated" field.
func UpdatedNotIn(vs ...int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldUpdated, vs...))
}

// UpdatedGT applies the GT predicate on the "updated" field.
func UpdatedGT(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGT(FieldUpdated, v))
}

// UpdatedGTE applies the GTE predicate on the "updated" field.
func UpdatedGTE(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGTE(FieldUpdated, v))
}

// UpdatedLT applies the LT predicate on the "updated" field.
func UpdatedLT(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLT(FieldUpdated, v))
}

// UpdatedLTE applies the LTE predicate on the "updated" field.
func UpdatedLTE(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLTE(FieldUpdated, v))
}

// SkippedEQ applies the EQ predicate on the "skipped" field.
func SkippedEQ(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldSkipped, v))
}

// SkippedNEQ applies the NEQ predicate on the "skipped" field.
func SkippedNEQ(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldSkipped, v))
}

// SkippedIn applies the In predicate on the "skipped" field.
func SkippedIn(vs ...int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldSkipped, vs...))
}

// SkippedNotIn applies the NotIn predicate on the "skipped" field.
func SkippedNotIn(vs ...int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldSkipped, vs...))
}

// SkippedGT applies the GT predicate on the "skipped" field.
func SkippedGT(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGT(FieldSkipped, v))
}

// SkippedGTE applies the GTE predicate on the "skipped" field.
func SkippedGTE(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGTE(FieldSkipped, v))
}

// SkippedLT applies the LT predicate on the "skipped" field.
func SkippedLT(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLT(FieldSkipped, v))
}

// SkippedLTE applies the LTE predicate on the "skipped" field.
func SkippedLTE(v int) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLTE(FieldSkipped, v))
}

// APIMsEQ applies the EQ predicate on the "api_ms" field.
func APIMsEQ(v int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldAPIMs, v))
}

// APIMsNEQ applies the NEQ predicate on the "api_ms" field.
func APIMsNEQ(v int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldAPIMs, v))
}

// APIMsIn applies the In predicate on the "api_ms" field.
func APIMsIn(vs ...int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldAPIMs, vs...))
}

// APIMsNotIn applies the NotIn predicate on the "api_ms" field.
func APIMsNotIn(vs ...int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldAPIMs, vs...))
}

// APIMsGT applies the GT predicate on the "api_ms" field.
func APIMsGT(v int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGT(FieldAPIMs, v))
}

// APIMsGTE applies the GTE predicate on the "api_ms" field.
func APIMsGTE(v int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGTE(FieldAPIMs, v))
}

// APIMsLT applies the LT predicate on the "api_ms" field.
func APIMsLT(v int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLT(FieldAPIMs, v))
}

// APIMsLTE applies the LTE predicate on the "api_ms" field.
func APIMsLTE(v int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLTE(FieldAPIMs, v))
}

// TotalMsEQ applies the EQ predicate on the "total_ms" field.
func TotalMsEQ(v int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldTotalMs, v))
}

// TotalMsNEQ applies the NEQ predicate on the "total_ms" field.
func TotalMsNEQ(v int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldTotalMs, v))
}

// TotalMsIn applies the In predicate on the "total_ms" field.
func TotalMsIn(vs ...int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldTotalMs, vs...))
}

// TotalMsNotIn applies the NotIn predicate on the "total_ms" field.
func TotalMsNotIn(vs ...int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldTotalMs, vs...))
}

// TotalMsGT applies the GT predicate on the "total_ms" field.
func TotalMsGT(v int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGT(FieldTotalMs, v))
}

// TotalMsGTE applies the GTE predicate on the "total_ms" field.
func TotalMsGTE(v int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGTE(FieldTotalMs, v))
}

// TotalMsLT applies the LT predicate on the "total_ms" field.
func TotalMsLT(v int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLT(FieldTotalMs, v))
}

// TotalMsLTE applies the LTE predicate on the "total_ms" field.
func TotalMsLTE(v int64) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLTE(FieldTotalMs, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldContainsFold(FieldError, v))
}

// TriggeredByEQ applies the EQ predicate on the "triggered_by" field.
func TriggeredByEQ(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldTriggeredBy, v))
}

// TriggeredByNEQ applies the NEQ predicate on the "triggered_by" field.
func TriggeredByNEQ(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldTriggeredBy, v))
}

// TriggeredByIn applies the In predicate on the "triggered_by" field.
func TriggeredByIn(vs ...string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldTriggeredBy, vs...))
}

// TriggeredByNotIn applies the NotIn predicate on the "triggered_by" field.
func TriggeredByNotIn(vs ...string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldTriggeredBy, vs...))
}

// TriggeredByGT applies the GT predicate on the "triggered_by" field.
func TriggeredByGT(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGT(FieldTriggeredBy, v))
}

// TriggeredByGTE applies the GTE predicate on the "triggered_by" field.
func TriggeredByGTE(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGTE(FieldTriggeredBy, v))
}

// TriggeredByLT applies the LT predicate on the "triggered_by" field.
func TriggeredByLT(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLT(FieldTriggeredBy, v))
}

// TriggeredByLTE applies the LTE predicate on the "triggered_by" field.
func TriggeredByLTE(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLTE(FieldTriggeredBy, v))
}

// TriggeredByContains applies the Contains predicate on the "triggered_by" field.
func TriggeredByContains(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldContains(FieldTriggeredBy, v))
}

// TriggeredByHasPrefix applies the HasPrefix predicate on the "triggered_by" field.
func TriggeredByHasPrefix(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldHasPrefix(FieldTriggeredBy, v))
}

// TriggeredByHasSuffix applies the HasSuffix predicate on the "triggered_by" field.
func TriggeredByHasSuffix(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldHasSuffix(FieldTriggeredBy, v))
}

// TriggeredByIsNil applies the IsNil predicate on the "triggered_by" field.
func TriggeredByIsNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIsNull(FieldTriggeredBy))
}

// TriggeredByNotNil applies the NotNil predicate on the "triggered_by" field.
func TriggeredByNotNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotNull(FieldTriggeredBy))
}

// TriggeredByEqualFold applies the EqualFold predicate on the "triggered_by" field.
func TriggeredByEqualFold(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEqualFold(FieldTriggeredBy, v))
}

// TriggeredByContainsFold applies the ContainsFold predicate on the "triggered_by" field.
func TriggeredByContainsFold(v string) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldContainsFold(FieldTriggeredBy, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.SyncRun {
	return predicate.SyncRun(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.SyncRun {
	return predicate.SyncRun(sql.FieldNotNull(FieldFinishedAt))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.SyncRun {
	return predicate.SyncRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.SyncRun {
	return predicate.SyncRun(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SyncRun) predicate.SyncRun {
	return predicate.SyncRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SyncRun) predicate.SyncRun {
	return predicate.SyncRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SyncRun) predicate.SyncRun {
	return predicate.SyncRun(sql.NotPredicates(p))
}
