// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ringledger/ringledger/ent/callrecord"
	"github.com/ringledger/ringledger/ent/usageledgerentry"
)

// UsageLedgerEntry is the model entity for the UsageLedgerEntry schema.
type UsageLedgerEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Tenant the entry belongs to
	TenantID int `json:"tenant_id,omitempty"`
	// Billable call this entry charges for
	CallRecordID int `json:"call_record_id,omitempty"`
	// Charge amount in currency minor units
	AmountCents int64 `json:"amount_cents,omitempty"`
	// What kind of usage the entry charges for
	EntryType usageledgerentry.EntryType `json:"entry_type,omitempty"`
	// When the underlying call started
	OccurredAt time.Time `json:"occurred_at,omitempty"`
	// When the entry was pushed to the billing provider
	ReportedAt *time.Time `json:"reported_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UsageLedgerEntryQuery when eager-loading is set.
	Edges        UsageLedgerEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UsageLedgerEntryEdges holds the relations/edges for other nodes in the graph.
type UsageLedgerEntryEdges struct {
	// Charged call
	CallRecord *CallRecord `json:"call_record,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CallRecordOrErr returns the CallRecord value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UsageLedgerEntryEdges) CallRecordOrErr() (*CallRecord, error) {
	if e.CallRecord != nil {
		return e.CallRecord, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: callrecord.Label}
	}
	return nil, &NotLoadedError{edge: "call_record"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UsageLedgerEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usageledgerentry.FieldID, usageledgerentry.FieldTenantID, usageledgerentry.FieldCallRecordID, usageledgerentry.FieldAmountCents:
			values[i] = new(sql.NullInt64)
		case usageledgerentry.FieldEntryType:
			values[i] = new(sql.NullString)
		case usageledgerentry.FieldOccurredAt, usageledgerentry.FieldReportedAt, usageledgerentry.FieldCreatedAt, usageledgerentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UsageLedgerEntry fields.
func (ule *UsageLedgerEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usageledgerentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ule.ID = int(value.Int64)
		case usageledgerentry.FieldTenantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				ule.TenantID = int(value.Int64)
			}
		case usageledgerentry.FieldCallRecordID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field call_record_id", values[i])
			} else if value.Valid {
				ule.CallRecordID = int(value.Int64)
			}
		case usageledgerentry.FieldAmountCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_cents", values[i])
			} else if value.Valid {
				ule.AmountCents = value.Int64
			}
		case usageledgerentry.FieldEntryType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entry_type", values[i])
			} else if value.Valid {
				ule.EntryType = usageledgerentry.EntryType(value.String)
			}
		case usageledgerentry.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				ule.OccurredAt = value.Time
			}
		case usageledgerentry.FieldReportedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reported_at", values[i])
			} else if value.Valid {
				ule.ReportedAt = new(time.Time)
				*ule.ReportedAt = value.Time
			}
		case usageledgerentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ule.CreatedAt = value.Time
			}
		case usageledgerentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ule.UpdatedAt = value.Time
			}
		default:
			ule.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UsageLedgerEntry.
// This includes values selected through modifiers, order, etc.
func (ule *UsageLedgerEntry) Value(name string) (ent.Value, error) {
	return ule.selectValues.Get(name)
}

// QueryCallRecord queries the "call_record" edge of the UsageLedgerEntry entity.
func (ule *UsageLedgerEntry) QueryCallRecord() *CallRecordQuery {
	return NewUsageLedgerEntryClient(ule.config).QueryCallRecord(ule)
}

// Update returns a builder for updating this UsageLedgerEntry.
// Note that you need to call UsageLedgerEntry.Unwrap() before calling this method if this UsageLedgerEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (ule *UsageLedgerEntry) Update() *UsageLedgerEntryUpdateOne {
	return NewUsageLedgerEntryClient(ule.config).UpdateOne(ule)
}

// Unwrap unwraps the UsageLedgerEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ule *UsageLedgerEntry) Unwrap() *UsageLedgerEntry {
	_tx, ok := ule.config.driver.(*txDriver)
	if !ok {
		panic("ent: UsageLedgerEntry is not a transactional entity")
	}
	ule.config.driver = _tx.drv
	return ule
}

// String implements the fmt.Stringer.
func (ule *UsageLedgerEntry) String() string {
	var builder strings.Builder
	builder.WriteString("UsageLedgerEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ule.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", ule.TenantID))
	builder.WriteString(", ")
	builder.WriteString("call_record_id=")
	builder.WriteString(fmt.Sprintf("%v", ule.CallRecordID))
	builder.WriteString(", ")
	builder.WriteString("amount_cents=")
	builder.WriteString(fmt.Sprintf("%v", ule.AmountCents))
	builder.WriteString(", ")
	builder.WriteString("entry_type=")
	builder.WriteString(fmt.Sprintf("%v", ule.EntryType))
	builder.WriteString(", ")
	builder.WriteString("occurred_at=")
	builder.WriteString(ule.OccurredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := ule.ReportedAt; v != nil {
		builder.WriteString("reported_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ule.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ule.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UsageLedgerEntries is a parsable slice of UsageLedgerEntry.
type UsageLedgerEntries []*UsageLedgerEntry
