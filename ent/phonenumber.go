// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ringledger/ringledger/ent/agent"
	"github.com/ringledger/ringledger/ent/phonenumber"
	"github.com/ringledger/ringledger/ent/tenant"
)

// PhoneNumber is the model entity for the PhoneNumber schema.
type PhoneNumber struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Tenant that owns the number
	TenantID int `json:"tenant_id,omitempty"`
	// Agent the number is assigned to
	AgentID *int `json:"agent_id,omitempty"`
	// Phone number (E.164 format)
	Number string `json:"number,omitempty"`
	// Digits-only national number used for matching
	Normalized string `json:"normalized,omitempty"`
	// Friendly label (e.g. Sales line)
	Label string `json:"label,omitempty"`
	// Whether the number is in service
	Active bool `json:"active,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PhoneNumberQuery when eager-loading is set.
	Edges        PhoneNumberEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PhoneNumberEdges holds the relations/edges for other nodes in the graph.
type PhoneNumberEdges struct {
	// Owning tenant
	Tenant *Tenant `json:"tenant,omitempty"`
	// Assigned agent
	Agent *Agent `json:"agent,omitempty"`
	// CallRecords holds the value of the call_records edge.
	CallRecords []*CallRecord `json:"call_records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PhoneNumberEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PhoneNumberEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// CallRecordsOrErr returns the CallRecords value or an error if the edge
// was not loaded in eager-loading.
func (e PhoneNumberEdges) CallRecordsOrErr() ([]*CallRecord, error) {
	if e.loadedTypes[2] {
		return e.CallRecords, nil
	}
	return nil, &NotLoadedError{edge: "call_records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PhoneNumber) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case phonenumber.FieldActive:
			values[i] = new(sql.NullBool)
		case phonenumber.FieldID, phonenumber.FieldTenantID, phonenumber.FieldAgentID:
			values[i] = new(sql.NullInt64)
		case phonenumber.FieldNumber, phonenumber.FieldNormalized, phonenumber.FieldLabel:
			values[i] = new(sql.NullString)
		case phonenumber.FieldCreatedAt, phonenumber.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PhoneNumber fields.
func (pn *PhoneNumber) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case phonenumber.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			pn.ID = int(value.Int64)
		case phonenumber.FieldTenantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				pn.TenantID = int(value.Int64)
			}
		case phonenumber.FieldAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				pn.AgentID = new(int)
				*pn.AgentID = int(value.Int64)
			}
		case phonenumber.FieldNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field number", values[i])
			} else if value.Valid {
				pn.Number = value.String
			}
		case phonenumber.FieldNormalized:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized", values[i])
			} else if value.Valid {
				pn.Normalized = value.String
			}
		case phonenumber.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				pn.Label = value.String
			}
		case phonenumber.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				pn.Active = value.Bool
			}
		case phonenumber.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				pn.CreatedAt = value.Time
			}
		case phonenumber.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				pn.UpdatedAt = value.Time
			}
		default:
			pn.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PhoneNumber.
// This includes values selected through modifiers, order, etc.
func (pn *PhoneNumber) Value(name string) (ent.Value, error) {
	return pn.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the PhoneNumber entity.
func (pn *PhoneNumber) QueryTenant() *TenantQuery {
	return NewPhoneNumberClient(pn.config).QueryTenant(pn)
}

// QueryAgent queries the "agent" edge of the PhoneNumber entity.
func (pn *PhoneNumber) QueryAgent() *AgentQuery {
	return NewPhoneNumberClient(pn.config).QueryAgent(pn)
}

// QueryCallRecords queries the "call_records" edge of the PhoneNumber entity.
func (pn *PhoneNumber) QueryCallRecords() *CallRecordQuery {
	return NewPhoneNumberClient(pn.config).QueryCallRecords(pn)
}

// Update returns a builder for updating this PhoneNumber.
// Note that you need to call PhoneNumber.Unwrap() before calling this method if this PhoneNumber
// was returned from a transaction, and the transaction was committed or rolled back.
func (pn *PhoneNumber) Update() *PhoneNumberUpdateOne {
	return NewPhoneNumberClient(pn.config).UpdateOne(pn)
}

// Unwrap unwraps the PhoneNumber entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pn *PhoneNumber) Unwrap() *PhoneNumber {
	_tx, ok := pn.config.driver.(*txDriver)
	if !ok {
		panic("ent: PhoneNumber is not a transactional entity")
	}
	pn.config.driver = _tx.drv
	return pn
}

// String implements the fmt.Stringer.
func (pn *PhoneNumber) String() string {
	var builder strings.Builder
	builder.WriteString("PhoneNumber(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pn.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", pn.TenantID))
	builder.WriteString(", ")
	if v := pn.AgentID; v != nil {
		builder.WriteString("agent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("number=")
	builder.WriteString(pn.Number)
	builder.WriteString(", ")
	builder.WriteString("normalized=")
	builder.WriteString(pn.Normalized)
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(pn.Label)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", pn.Active))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(pn.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(pn.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PhoneNumbers is a parsable slice of PhoneNumber.
type PhoneNumbers []*PhoneNumber
