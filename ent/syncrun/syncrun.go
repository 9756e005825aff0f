// Code generated by ent, DO NOT EDIT.

package syncrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the syncrun type in the database.
	Label = "sync_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRequestedStart holds the string denoting the requested_start field in the database.
	FieldRequestedStart = "requested_start"
	// FieldRequestedEnd holds the string denoting the requested_end field in the database.
	FieldRequestedEnd = "requested_end"
	// FieldEffectiveStart holds the string denoting the effective_start field in the database.
	FieldEffectiveStart = "effective_start"
	// FieldEffectiveEnd holds the string denoting the effective_end field in the database.
	FieldEffectiveEnd = "effective_end"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldBypassedCutoffAt holds the string denoting the bypassed_cutoff_at field in the database.
	FieldBypassedCutoffAt = "bypassed_cutoff_at"
	// FieldPageTrace holds the string denoting the page_trace field in the database.
	FieldPageTrace = "page_trace"
	// FieldLogLines holds the string denoting the log_lines field in the database.
	FieldLogLines = "log_lines"
	// FieldSkipCounts holds the string denoting the skip_counts field in the database.
	FieldSkipCounts = "skip_counts"
	// FieldSkippedSamples holds the string denoting the skipped_samples field in the database.
	FieldSkippedSamples = "skipped_samples"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldInserted holds the string denoting the inserted field in the database.
	FieldInserted = "inserted"
	// FieldUpdated holds the string denoting the updated field in the database.
	FieldUpdated = "updated"
	// FieldSkipped holds the string denoting the skipped field in the database.
	FieldSkipped = "skipped"
	// FieldAPIMs holds the string denoting the api_ms field in the database.
	FieldAPIMs = "api_ms"
	// FieldTotalMs holds the string denoting the total_ms field in the database.
	FieldTotalMs = "total_ms"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldTriggeredBy holds the string denoting the triggered_by field in the database.
	FieldTriggeredBy = "triggered_by"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgeTenant holds the string denoting the tenant edge name in mutations.
	EdgeTenant = "tenant"
	// Table holds the table name of the syncrun in the database.
	Table = "sync_runs"
	// TenantTable is the table that holds the tenant relation/edge.
	TenantTable = "sync_runs"
	// TenantInverseTable is the table name for the Tenant entity.
	// It exists in this package in order to avoid circular dependency with the "tenant" package.
	TenantInverseTable = "tenants"
	// TenantColumn is the table column denoting the tenant relation/edge.
	TenantColumn = "tenant_id"
)

// Columns holds all SQL columns for syncrun fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldKind,
	FieldStatus,
	FieldRequestedStart,
	FieldRequestedEnd,
	FieldEffectiveStart,
	FieldEffectiveEnd,
	FieldTimezone,
	FieldBypassedCutoffAt,
	FieldPageTrace,
	FieldLogLines,
	FieldSkipCounts,
	FieldSkippedSamples,
	FieldTotal,
	FieldInserted,
	FieldUpdated,
	FieldSkipped,
	FieldAPIMs,
	FieldTotalMs,
	FieldError,
	FieldTriggeredBy,
	FieldStartedAt,
	FieldFinishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultTotal holds the default value on creation for the "total" field.
	DefaultTotal int
	// TotalValidator is a validator for the "total" field. It is called by the builders before save.
	TotalValidator func(int) error
	// DefaultInserted holds the default value on creation for the "inserted" field.
	DefaultInserted int
	// InsertedValidator is a validator for the "inserted" field. It is called by the builders before save.
	InsertedValidator func(int) error
	// DefaultUpdated holds the default value on creation for the "updated" field.
	DefaultUpdated int
	// UpdatedValidator is a validator for the "updated" field. It is called by the builders before save.
	UpdatedValidator func(int) error
	// DefaultSkipped holds the default value on creation for the "skipped" field.
	DefaultSkipped int
	// SkippedValidator is a validator for the "skipped" field. It is called by the builders before save.
	SkippedValidator func(int) error
	// DefaultAPIMs holds the default value on creation for the "api_ms" field.
	DefaultAPIMs int64
	// DefaultTotalMs holds the default value on creation for the "total_ms" field.
	DefaultTotalMs int64
	// TriggeredByValidator is a validator for the "triggered_by" field. It is called by the builders before save.
	TriggeredByValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindManual        Kind = "manual"
	KindAuto          Kind = "auto"
	KindAdminBackfill Kind = "admin_backfill"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindManual, KindAuto, KindAdminBackfill:
		return nil
	default:
		return fmt.Errorf("syncrun: invalid enum value for kind field: %q", k)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusInProgress is the default value of the Status enum.
const DefaultStatus = StatusInProgress

// Status values.
const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInProgress, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("syncrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SyncRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRequestedStart orders the results by the requested_start field.
func ByRequestedStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedStart, opts...).ToFunc()
}

// ByRequestedEnd orders the results by the requested_end field.
func ByRequestedEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedEnd, opts...).ToFunc()
}

// ByEffectiveStart orders the results by the effective_start field.
func ByEffectiveStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectiveStart, opts...).ToFunc()
}

// ByEffectiveEnd orders the results by the effective_end field.
func ByEffectiveEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectiveEnd, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByBypassedCutoffAt orders the results by the bypassed_cutoff_at field.
func ByBypassedCutoffAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBypassedCutoffAt, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByInserted orders the results by the inserted field.
func ByInserted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInserted, opts...).ToFunc()
}

// ByUpdated orders the results by the updated field.
func ByUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdated, opts...).ToFunc()
}

// BySkipped orders the results by the skipped field.
func BySkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipped, opts...).ToFunc()
}

// ByAPIMs orders the results by the api_ms field.
func ByAPIMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIMs, opts...).ToFunc()
}

// ByTotalMs orders the results by the total_ms field.
func ByTotalMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMs, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByTriggeredBy orders the results by the triggered_by field.
func ByTriggeredBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggeredBy, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByTenantField orders the results by tenant field.
func ByTenantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTenantStep(), sql.OrderByField(field, opts...))
	}
}
func newTenantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TenantInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
	)
}
