// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ringledger/ringledger/ent/agent"
	"github.com/ringledger/ringledger/ent/tenant"
)

// Agent is the model entity for the Agent schema.
type Agent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Tenant the agent belongs to
	TenantID int `json:"tenant_id,omitempty"`
	// Agent's user ID in the upstream CRM
	ProviderUserID string `json:"provider_user_id,omitempty"`
	// Agent display name
	Name string `json:"name,omitempty"`
	// Agent email
	Email string `json:"email,omitempty"`
	// Whether the agent is active
	Active bool `json:"active,omitempty"`
	// Set once call activity has been observed for the agent
	Verified bool `json:"verified,omitempty"`
	// Most recent call activity observed during sync
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentQuery when eager-loading is set.
	Edges        AgentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentEdges holds the relations/edges for other nodes in the graph.
type AgentEdges struct {
	// Owning tenant
	Tenant *Tenant `json:"tenant,omitempty"`
	// PhoneNumbers holds the value of the phone_numbers edge.
	PhoneNumbers []*PhoneNumber `json:"phone_numbers,omitempty"`
	// CallRecords holds the value of the call_records edge.
	CallRecords []*CallRecord `json:"call_records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// PhoneNumbersOrErr returns the PhoneNumbers value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) PhoneNumbersOrErr() ([]*PhoneNumber, error) {
	if e.loadedTypes[1] {
		return e.PhoneNumbers, nil
	}
	return nil, &NotLoadedError{edge: "phone_numbers"}
}

// CallRecordsOrErr returns the CallRecords value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) CallRecordsOrErr() ([]*CallRecord, error) {
	if e.loadedTypes[2] {
		return e.CallRecords, nil
	}
	return nil, &NotLoadedError{edge: "call_records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Agent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agent.FieldActive, agent.FieldVerified:
			values[i] = new(sql.NullBool)
		case agent.FieldID, agent.FieldTenantID:
			values[i] = new(sql.NullInt64)
		case agent.FieldProviderUserID, agent.FieldName, agent.FieldEmail:
			values[i] = new(sql.NullString)
		case agent.FieldLastActivityAt, agent.FieldCreatedAt, agent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Agent fields.
func (a *Agent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			a.ID = int(value.Int64)
		case agent.FieldTenantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				a.TenantID = int(value.Int64)
			}
		case agent.FieldProviderUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_user_id", values[i])
			} else if value.Valid {
				a.ProviderUserID = value.String
			}
		case agent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				a.Name = value.String
			}
		case agent.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				a.Email = value.String
			}
		case agent.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				a.Active = value.Bool
			}
		case agent.FieldVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field verified", values[i])
			} else if value.Valid {
				a.Verified = value.Bool
			}
		case agent.FieldLastActivityAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_at", values[i])
			} else if value.Valid {
				a.LastActivityAt = new(time.Time)
				*a.LastActivityAt = value.Time
			}
		case agent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				a.CreatedAt = value.Time
			}
		case agent.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				a.UpdatedAt = value.Time
			}
		default:
			a.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Agent.
// This includes values selected through modifiers, order, etc.
func (a *Agent) Value(name string) (ent.Value, error) {
	return a.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the Agent entity.
func (a *Agent) QueryTenant() *TenantQuery {
	return NewAgentClient(a.config).QueryTenant(a)
}

// QueryPhoneNumbers queries the "phone_numbers" edge of the Agent entity.
func (a *Agent) QueryPhoneNumbers() *PhoneNumberQuery {
	return NewAgentClient(a.config).QueryPhoneNumbers(a)
}

// QueryCallRecords queries the "call_records" edge of the Agent entity.
func (a *Agent) QueryCallRecords() *CallRecordQuery {
	return NewAgentClient(a.config).QueryCallRecords(a)
}

// Update returns a builder for updating this Agent.
// Note that you need to call Agent.Unwrap() before calling this method if this Agent
// was returned from a transaction, and the transaction was committed or rolled back.
func (a *Agent) Update() *AgentUpdateOne {
	return NewAgentClient(a.config).UpdateOne(a)
}

// Unwrap unwraps the Agent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (a *Agent) Unwrap() *Agent {
	_tx, ok := a.config.driver.(*txDriver)
	if !ok {
		panic("ent: Agent is not a transactional entity")
	}
	a.config.driver = _tx.drv
	return a
}

// String implements the fmt.Stringer.
func (a *Agent) String() string {
	var builder strings.Builder
	builder.WriteString("Agent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", a.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", a.TenantID))
	builder.WriteString(", ")
	builder.WriteString("provider_user_id=")
	builder.WriteString(a.ProviderUserID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(a.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(a.Email)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", a.Active))
	builder.WriteString(", ")
	builder.WriteString("verified=")
	builder.WriteString(fmt.Sprintf("%v", a.Verified))
	builder.WriteString(", ")
	if v := a.LastActivityAt; v != nil {
		builder.WriteString("last_activity_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(a.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(a.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Agents is a parsable slice of Agent.
type Agents []*Agent
