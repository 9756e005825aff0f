// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ringledger/ringledger/ent/agent"
	"github.com/ringledger/ringledger/ent/callrecord"
	"github.com/ringledger/ringledger/ent/phonenumber"
	"github.com/ringledger/ringledger/ent/tenant"
	"github.com/ringledger/ringledger/ent/usageledgerentry"
)

// CallRecord is the model entity for the CallRecord schema.
type CallRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Tenant the call belongs to
	TenantID int `json:"tenant_id,omitempty"`
	// Upstream call identifier (unique per tenant)
	ProviderCallID string `json:"provider_call_id,omitempty"`
	// Call direction
	Direction callrecord.Direction `json:"direction,omitempty"`
	// Caller's phone number
	FromNumber string `json:"from_number,omitempty"`
	// Recipient's phone number
	ToNumber string `json:"to_number,omitempty"`
	// Upstream call status (completed, no-answer, voicemail, ...)
	Status string `json:"status,omitempty"`
	// Call duration in seconds
	Duration int `json:"duration,omitempty"`
	// Computed cost in USD, rounded to 2 decimal places
	Cost float64 `json:"cost,omitempty"`
	// Non-numeric cost label (e.g. INCLUDED) that suppresses billing
	DisplayCost *string `json:"display_cost,omitempty"`
	// Resolved agent
	AgentID *int `json:"agent_id,omitempty"`
	// Resolved tenant phone number
	PhoneNumberID *int `json:"phone_number_id,omitempty"`
	// Display name built from upstream contact fields
	ContactName string `json:"contact_name,omitempty"`
	// URL to call recording
	RecordingURL *string `json:"recording_url,omitempty"`
	// Upstream transcript identifier
	TranscriptID *string `json:"transcript_id,omitempty"`
	// Upstream message identifier (voicemail, SMS thread)
	MessageID *string `json:"message_id,omitempty"`
	// Upstream-flagged test call
	IsTest bool `json:"is_test,omitempty"`
	// When the call started
	StartedAt *time.Time `json:"started_at,omitempty"`
	// When the call ended
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CallRecordQuery when eager-loading is set.
	Edges        CallRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CallRecordEdges holds the relations/edges for other nodes in the graph.
type CallRecordEdges struct {
	// Owning tenant
	Tenant *Tenant `json:"tenant,omitempty"`
	// Agent who handled the call
	Agent *Agent `json:"agent,omitempty"`
	// Tenant number involved in the call
	PhoneNumber *PhoneNumber `json:"phone_number,omitempty"`
	// Usage ledger entry for billable calls
	UsageEntry *UsageLedgerEntry `json:"usage_entry,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CallRecordEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CallRecordEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// PhoneNumberOrErr returns the PhoneNumber value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CallRecordEdges) PhoneNumberOrErr() (*PhoneNumber, error) {
	if e.PhoneNumber != nil {
		return e.PhoneNumber, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: phonenumber.Label}
	}
	return nil, &NotLoadedError{edge: "phone_number"}
}

// UsageEntryOrErr returns the UsageEntry value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CallRecordEdges) UsageEntryOrErr() (*UsageLedgerEntry, error) {
	if e.UsageEntry != nil {
		return e.UsageEntry, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: usageledgerentry.Label}
	}
	return nil, &NotLoadedError{edge: "usage_entry"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CallRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case callrecord.FieldIsTest:
			values[i] = new(sql.NullBool)
		case callrecord.FieldCost:
			values[i] = new(sql.NullFloat64)
		case callrecord.FieldID, callrecord.FieldTenantID, callrecord.FieldDuration, callrecord.FieldAgentID, callrecord.FieldPhoneNumberID:
			values[i] = new(sql.NullInt64)
		case callrecord.FieldProviderCallID, callrecord.FieldDirection, callrecord.FieldFromNumber, callrecord.FieldToNumber, callrecord.FieldStatus, callrecord.FieldDisplayCost, callrecord.FieldContactName, callrecord.FieldRecordingURL, callrecord.FieldTranscriptID, callrecord.FieldMessageID:
			values[i] = new(sql.NullString)
		case callrecord.FieldStartedAt, callrecord.FieldEndedAt, callrecord.FieldCreatedAt, callrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CallRecord fields.
func (cr *CallRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case callrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			cr.ID = int(value.Int64)
		case callrecord.FieldTenantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				cr.TenantID = int(value.Int64)
			}
		case callrecord.FieldProviderCallID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_call_id", values[i])
			} else if value.Valid {
				cr.ProviderCallID = value.String
			}
		case callrecord.FieldDirection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field direction", values[i])
			} else if value.Valid {
				cr.Direction = callrecord.Direction(value.String)
			}
		case callrecord.FieldFromNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_number", values[i])
			} else if value.Valid {
				cr.FromNumber = value.String
			}
		case callrecord.FieldToNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_number", values[i])
			} else if value.Valid {
				cr.ToNumber = value.String
			}
		case callrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				cr.Status = value.String
			}
		case callrecord.FieldDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				cr.Duration = int(value.Int64)
			}
		case callrecord.FieldCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost", values[i])
			} else if value.Valid {
				cr.Cost = value.Float64
			}
		case callrecord.FieldDisplayCost:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_cost", values[i])
			} else if value.Valid {
				cr.DisplayCost = new(string)
				*cr.DisplayCost = value.String
			}
		case callrecord.FieldAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				cr.AgentID = new(int)
				*cr.AgentID = int(value.Int64)
			}
		case callrecord.FieldPhoneNumberID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field phone_number_id", values[i])
			} else if value.Valid {
				cr.PhoneNumberID = new(int)
				*cr.PhoneNumberID = int(value.Int64)
			}
		case callrecord.FieldContactName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_name", values[i])
			} else if value.Valid {
				cr.ContactName = value.String
			}
		case callrecord.FieldRecordingURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recording_url", values[i])
			} else if value.Valid {
				cr.RecordingURL = new(string)
				*cr.RecordingURL = value.String
			}
		case callrecord.FieldTranscriptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcript_id", values[i])
			} else if value.Valid {
				cr.TranscriptID = new(string)
				*cr.TranscriptID = value.String
			}
		case callrecord.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				cr.MessageID = new(string)
				*cr.MessageID = value.String
			}
		case callrecord.FieldIsTest:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_test", values[i])
			} else if value.Valid {
				cr.IsTest = value.Bool
			}
		case callrecord.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				cr.StartedAt = new(time.Time)
				*cr.StartedAt = value.Time
			}
		case callrecord.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				cr.EndedAt = new(time.Time)
				*cr.EndedAt = value.Time
			}
		case callrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cr.CreatedAt = value.Time
			}
		case callrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				cr.UpdatedAt = value.Time
			}
		default:
			cr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CallRecord.
// This includes values selected through modifiers, order, etc.
func (cr *CallRecord) Value(name string) (ent.Value, error) {
	return cr.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the CallRecord entity.
func (cr *CallRecord) QueryTenant() *TenantQuery {
	return NewCallRecordClient(cr.config).QueryTenant(cr)
}

// QueryAgent queries the "agent" edge of the CallRecord entity.
func (cr *CallRecord) QueryAgent() *AgentQuery {
	return NewCallRecordClient(cr.config).QueryAgent(cr)
}

// QueryPhoneNumber queries the "phone_number" edge of the CallRecord entity.
func (cr *CallRecord) QueryPhoneNumber() *PhoneNumberQuery {
	return NewCallRecordClient(cr.config).QueryPhoneNumber(cr)
}

// QueryUsageEntry queries the "usage_entry" edge of the CallRecord entity.
func (cr *CallRecord) QueryUsageEntry() *UsageLedgerEntryQuery {
	return NewCallRecordClient(cr.config).QueryUsageEntry(cr)
}

// Update returns a builder for updating this CallRecord.
// Note that you need to call CallRecord.Unwrap() before calling this method if this CallRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (cr *CallRecord) Update() *CallRecordUpdateOne {
	return NewCallRecordClient(cr.config).UpdateOne(cr)
}

// Unwrap unwraps the CallRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cr *CallRecord) Unwrap() *CallRecord {
	_tx, ok := cr.config.driver.(*txDriver)
	if !ok {
		panic("ent: CallRecord is not a transactional entity")
	}
	cr.config.driver = _tx.drv
	return cr
}

// String implements the fmt.Stringer.
func (cr *CallRecord) String() string {
	var builder strings.Builder
	builder.WriteString("CallRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cr.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", cr.TenantID))
	builder.WriteString(", ")
	builder.WriteString("provider_call_id=")
	builder.WriteString(cr.ProviderCallID)
	builder.WriteString(", ")
	builder.WriteString("direction=")
	builder.WriteString(fmt.Sprintf("%v", cr.Direction))
	builder.WriteString(", ")
	builder.WriteString("from_number=")
	builder.WriteString(cr.FromNumber)
	builder.WriteString(", ")
	builder.WriteString("to_number=")
	builder.WriteString(cr.ToNumber)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(cr.Status)
	builder.WriteString(", ")
	builder.WriteString("duration=")
	builder.WriteString(fmt.Sprintf("%v", cr.Duration))
	builder.WriteString(", ")
	builder.WriteString("cost=")
	builder.WriteString(fmt.Sprintf("%v", cr.Cost))
	builder.WriteString(", ")
	if v := cr.DisplayCost; v != nil {
		builder.WriteString("display_cost=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := cr.AgentID; v != nil {
		builder.WriteString("agent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := cr.PhoneNumberID; v != nil {
		builder.WriteString("phone_number_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("contact_name=")
	builder.WriteString(cr.ContactName)
	builder.WriteString(", ")
	if v := cr.RecordingURL; v != nil {
		builder.WriteString("recording_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := cr.TranscriptID; v != nil {
		builder.WriteString("transcript_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := cr.MessageID; v != nil {
		builder.WriteString("message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_test=")
	builder.WriteString(fmt.Sprintf("%v", cr.IsTest))
	builder.WriteString(", ")
	if v := cr.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := cr.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(cr.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(cr.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CallRecords is a parsable slice of CallRecord.
type CallRecords []*CallRecord
