// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ringledger/ringledger/ent/syncrun"
	"github.com/ringledger/ringledger/ent/tenant"
	"github.com/ringledger/ringledger/pkg/models"
)

// SyncRun is the model entity for the SyncRun schema.
type SyncRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Tenant the run belongs to
	TenantID int `json:"tenant_id,omitempty"`
	// What triggered the run
	Kind syncrun.Kind `json:"kind,omitempty"`
	// Run status; completed and failed are terminal
	Status syncrun.Status `json:"status,omitempty"`
	// Caller-supplied window start
	RequestedStart *time.Time `json:"requested_start,omitempty"`
	// Caller-supplied window end
	RequestedEnd *time.Time `json:"requested_end,omitempty"`
	// Window start after policy adjustments
	EffectiveStart *time.Time `json:"effective_start,omitempty"`
	// Window end after policy adjustments
	EffectiveEnd *time.Time `json:"effective_end,omitempty"`
	// Timezone used for chunking
	Timezone string `json:"timezone,omitempty"`
	// Plan-reset cutoff bypassed by an admin backfill
	BypassedCutoffAt *time.Time `json:"bypassed_cutoff_at,omitempty"`
	// Per-page request/response trace
	PageTrace []models.PageTrace `json:"page_trace,omitempty"`
	// Free-text progress log
	LogLines []string `json:"log_lines,omitempty"`
	// Skip reason histogram
	SkipCounts map[string]int `json:"skip_counts,omitempty"`
	// Bounded sample of skipped raw items (first 50)
	SkippedSamples []map[string]interface{} `json:"skipped_samples,omitempty"`
	// Total records fetched after dedup
	Total int `json:"total,omitempty"`
	// Records inserted
	Inserted int `json:"inserted,omitempty"`
	// Records updated
	Updated int `json:"updated,omitempty"`
	// Records skipped
	Skipped int `json:"skipped,omitempty"`
	// Milliseconds spent in upstream API calls
	APIMs int64 `json:"api_ms,omitempty"`
	// Total run duration in milliseconds
	TotalMs int64 `json:"total_ms,omitempty"`
	// Failure message for failed runs
	Error string `json:"error,omitempty"`
	// Actor identifier (admin backfills)
	TriggeredBy string `json:"triggered_by,omitempty"`
	// When the run was opened
	StartedAt time.Time `json:"started_at,omitempty"`
	// When the run reached a terminal status
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SyncRunQuery when eager-loading is set.
	Edges        SyncRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SyncRunEdges holds the relations/edges for other nodes in the graph.
type SyncRunEdges struct {
	// Owning tenant
	Tenant *Tenant `json:"tenant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SyncRunEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SyncRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case syncrun.FieldPageTrace, syncrun.FieldLogLines, syncrun.FieldSkipCounts, syncrun.FieldSkippedSamples:
			values[i] = new([]byte)
		case syncrun.FieldID, syncrun.FieldTenantID, syncrun.FieldTotal, syncrun.FieldInserted, syncrun.FieldUpdated, syncrun.FieldSkipped, syncrun.FieldAPIMs, syncrun.FieldTotalMs:
			values[i] = new(sql.NullInt64)
		case syncrun.FieldKind, syncrun.FieldStatus, syncrun.FieldTimezone, syncrun.FieldError, syncrun.FieldTriggeredBy:
			values[i] = new(sql.NullString)
		case syncrun.FieldRequestedStart, syncrun.FieldRequestedEnd, syncrun.FieldEffectiveStart, syncrun.FieldEffectiveEnd, syncrun.FieldBypassedCutoffAt, syncrun.FieldStartedAt, syncrun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SyncRun fields.
func (sr *SyncRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case syncrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			sr.ID = int(value.Int64)
		case syncrun.FieldTenantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				sr.TenantID = int(value.Int64)
			}
		case syncrun.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				sr.Kind = syncrun.Kind(value.String)
			}
		case syncrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				sr.Status = syncrun.Status(value.String)
			}
		case syncrun.FieldRequestedStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field requested_start", values[i])
			} else if value.Valid {
				sr.RequestedStart = new(time.Time)
				*sr.RequestedStart = value.Time
			}
		case syncrun.FieldRequestedEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field requested_end", values[i])
			} else if value.Valid {
				sr.RequestedEnd = new(time.Time)
				*sr.RequestedEnd = value.Time
			}
		case syncrun.FieldEffectiveStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field effective_start", values[i])
			} else if value.Valid {
				sr.EffectiveStart = new(time.Time)
				*sr.EffectiveStart = value.Time
			}
		case syncrun.FieldEffectiveEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field effective_end", values[i])
			} else if value.Valid {
				sr.EffectiveEnd = new(time.Time)
				*sr.EffectiveEnd = value.Time
			}
		case syncrun.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				sr.Timezone = value.String
			}
		case syncrun.FieldBypassedCutoffAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field bypassed_cutoff_at", values[i])
			} else if value.Valid {
				sr.BypassedCutoffAt = new(time.Time)
				*sr.BypassedCutoffAt = value.Time
			}
		case syncrun.FieldPageTrace:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field page_trace", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sr.PageTrace); err != nil {
					return fmt.Errorf("unmarshal field page_trace: %w", err)
				}
			}
		case syncrun.FieldLogLines:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field log_lines", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sr.LogLines); err != nil {
					return fmt.Errorf("unmarshal field log_lines: %w", err)
				}
			}
		case syncrun.FieldSkipCounts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skip_counts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sr.SkipCounts); err != nil {
					return fmt.Errorf("unmarshal field skip_counts: %w", err)
				}
			}
		case syncrun.FieldSkippedSamples:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skipped_samples", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sr.SkippedSamples); err != nil {
					return fmt.Errorf("unmarshal field skipped_samples: %w", err)
				}
			}
		case syncrun.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				sr.Total = int(value.Int64)
			}
		case syncrun.FieldInserted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field inserted", values[i])
			} else if value.Valid {
				sr.Inserted = int(value.Int64)
			}
		case syncrun.FieldUpdated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field updated", values[i])
			} else if value.Valid {
				sr.Updated = int(value.Int64)
			}
		case syncrun.FieldSkipped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skipped", values[i])
			} else if value.Valid {
				sr.Skipped = int(value.Int64)
			}
		case syncrun.FieldAPIMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field api_ms", values[i])
			} else if value.Valid {
				sr.APIMs = value.Int64
			}
		case syncrun.FieldTotalMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_ms", values[i])
			} else if value.Valid {
				sr.TotalMs = value.Int64
			}
		case syncrun.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				sr.Error = value.String
			}
		case syncrun.FieldTriggeredBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_by", values[i])
			} else if value.Valid {
				sr.TriggeredBy = value.String
			}
		case syncrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				sr.StartedAt = value.Time
			}
		case syncrun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				sr.FinishedAt = new(time.Time)
				*sr.FinishedAt = value.Time
			}
		default:
			sr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SyncRun.
// This includes values selected through modifiers, order, etc.
func (sr *SyncRun) Value(name string) (ent.Value, error) {
	return sr.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the SyncRun entity.
func (sr *SyncRun) QueryTenant() *TenantQuery {
	return NewSyncRunClient(sr.config).QueryTenant(sr)
}

// Update returns a builder for updating this SyncRun.
// Note that you need to call SyncRun.Unwrap() before calling this method if this SyncRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (sr *SyncRun) Update() *SyncRunUpdateOne {
	return NewSyncRunClient(sr.config).UpdateOne(sr)
}

// Unwrap unwraps the SyncRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sr *SyncRun) Unwrap() *SyncRun {
	_tx, ok := sr.config.driver.(*txDriver)
	if !ok {
		panic("ent: SyncRun is not a transactional entity")
	}
	sr.config.driver = _tx.drv
	return sr
}

// String implements the fmt.Stringer.
func (sr *SyncRun) String() string {
	var builder strings.Builder
	builder.WriteString("SyncRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sr.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", sr.TenantID))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", sr.Kind))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", sr.Status))
	builder.WriteString(", ")
	if v := sr.RequestedStart; v != nil {
		builder.WriteString("requested_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := sr.RequestedEnd; v != nil {
		builder.WriteString("requested_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := sr.EffectiveStart; v != nil {
		builder.WriteString("effective_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := sr.EffectiveEnd; v != nil {
		builder.WriteString("effective_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(sr.Timezone)
	builder.WriteString(", ")
	if v := sr.BypassedCutoffAt; v != nil {
		builder.WriteString("bypassed_cutoff_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("page_trace=")
	builder.WriteString(fmt.Sprintf("%v", sr.PageTrace))
	builder.WriteString(", ")
	builder.WriteString("log_lines=")
	builder.WriteString(fmt.Sprintf("%v", sr.LogLines))
	builder.WriteString(", ")
	builder.WriteString("skip_counts=")
	builder.WriteString(fmt.Sprintf("%v", sr.SkipCounts))
	builder.WriteString(", ")
	builder.WriteString("skipped_samples=")
	builder.WriteString(fmt.Sprintf("%v", sr.SkippedSamples))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", sr.Total))
	builder.WriteString(", ")
	builder.WriteString("inserted=")
	builder.WriteString(fmt.Sprintf("%v", sr.Inserted))
	builder.WriteString(", ")
	builder.WriteString("updated=")
	builder.WriteString(fmt.Sprintf("%v", sr.Updated))
	builder.WriteString(", ")
	builder.WriteString("skipped=")
	builder.WriteString(fmt.Sprintf("%v", sr.Skipped))
	builder.WriteString(", ")
	builder.WriteString("api_ms=")
	builder.WriteString(fmt.Sprintf("%v", sr.APIMs))
	builder.WriteString(", ")
	builder.WriteString("total_ms=")
	builder.WriteString(fmt.Sprintf("%v", sr.TotalMs))
	builder.WriteString(", ")
	builder.WriteString("error=")
	builder.WriteString(sr.Error)
	builder.WriteString(", ")
	builder.WriteString("triggered_by=")
	builder.WriteString(sr.TriggeredBy)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(sr.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := sr.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SyncRuns is a parsable slice of SyncRun.
type SyncRuns []*SyncRun
