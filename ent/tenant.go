// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ringledger/ringledger/ent/billingaccount"
	"github.com/ringledger/ringledger/ent/crmconnection"
	"github.com/ringledger/ringledger/ent/tenant"
)

// Tenant is the model entity for the Tenant schema.
type Tenant struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Display name of the customer account
	Name string `json:"name,omitempty"`
	// IANA timezone used for date-window math
	Timezone string `json:"timezone,omitempty"`
	// Whether the tenant is active
	Active bool `json:"active,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TenantQuery when eager-loading is set.
	Edges        TenantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TenantEdges holds the relations/edges for other nodes in the graph.
type TenantEdges struct {
	// Upstream CRM credentials for this tenant
	CrmConnection *CRMConnection `json:"crm_connection,omitempty"`
	// Plan and rate configuration
	BillingAccount *BillingAccount `json:"billing_account,omitempty"`
	// Agents holds the value of the agents edge.
	Agents []*Agent `json:"agents,omitempty"`
	// PhoneNumbers holds the value of the phone_numbers edge.
	PhoneNumbers []*PhoneNumber `json:"phone_numbers,omitempty"`
	// CallRecords holds the value of the call_records edge.
	CallRecords []*CallRecord `json:"call_records,omitempty"`
	// SyncRuns holds the value of the sync_runs edge.
	SyncRuns []*SyncRun `json:"sync_runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// CrmConnectionOrErr returns the CrmConnection value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TenantEdges) CrmConnectionOrErr() (*CRMConnection, error) {
	if e.CrmConnection != nil {
		return e.CrmConnection, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: crmconnection.Label}
	}
	return nil, &NotLoadedError{edge: "crm_connection"}
}

// BillingAccountOrErr returns the BillingAccount value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TenantEdges) BillingAccountOrErr() (*BillingAccount, error) {
	if e.BillingAccount != nil {
		return e.BillingAccount, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: billingaccount.Label}
	}
	return nil, &NotLoadedError{edge: "billing_account"}
}

// AgentsOrErr returns the Agents value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) AgentsOrErr() ([]*Agent, error) {
	if e.loadedTypes[2] {
		return e.Agents, nil
	}
	return nil, &NotLoadedError{edge: "agents"}
}

// PhoneNumbersOrErr returns the PhoneNumbers value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) PhoneNumbersOrErr() ([]*PhoneNumber, error) {
	if e.loadedTypes[3] {
		return e.PhoneNumbers, nil
	}
	return nil, &NotLoadedError{edge: "phone_numbers"}
}

// CallRecordsOrErr returns the CallRecords value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) CallRecordsOrErr() ([]*CallRecord, error) {
	if e.loadedTypes[4] {
		return e.CallRecords, nil
	}
	return nil, &NotLoadedError{edge: "call_records"}
}

// SyncRunsOrErr returns the SyncRuns value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) SyncRunsOrErr() ([]*SyncRun, error) {
	if e.loadedTypes[5] {
		return e.SyncRuns, nil
	}
	return nil, &NotLoadedError{edge: "sync_runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Tenant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tenant.FieldActive:
			values[i] = new(sql.NullBool)
		case tenant.FieldID:
			values[i] = new(sql.NullInt64)
		case tenant.FieldName, tenant.FieldTimezone:
			values[i] = new(sql.NullString)
		case tenant.FieldCreatedAt, tenant.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Tenant fields.
func (t *Tenant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tenant.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			t.ID = int(value.Int64)
		case tenant.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				t.Name = value.String
			}
		case tenant.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				t.Timezone = value.String
			}
		case tenant.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				t.Active = value.Bool
			}
		case tenant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				t.CreatedAt = value.Time
			}
		case tenant.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				t.UpdatedAt = value.Time
			}
		default:
			t.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Tenant.
// This includes values selected through modifiers, order, etc.
func (t *Tenant) Value(name string) (ent.Value, error) {
	return t.selectValues.Get(name)
}

// QueryCrmConnection queries the "crm_connection" edge of the Tenant entity.
func (t *Tenant) QueryCrmConnection() *CRMConnectionQuery {
	return NewTenantClient(t.config).QueryCrmConnection(t)
}

// QueryBillingAccount queries the "billing_account" edge of the Tenant entity.
func (t *Tenant) QueryBillingAccount() *BillingAccountQuery {
	return NewTenantClient(t.config).QueryBillingAccount(t)
}

// QueryAgents queries the "agents" edge of the Tenant entity.
func (t *Tenant) QueryAgents() *AgentQuery {
	return NewTenantClient(t.config).QueryAgents(t)
}

// QueryPhoneNumbers queries the "phone_numbers" edge of the Tenant entity.
func (t *Tenant) QueryPhoneNumbers() *PhoneNumberQuery {
	return NewTenantClient(t.config).QueryPhoneNumbers(t)
}

// QueryCallRecords queries the "call_records" edge of the Tenant entity.
func (t *Tenant) QueryCallRecords() *CallRecordQuery {
	return NewTenantClient(t.config).QueryCallRecords(t)
}

// QuerySyncRuns queries the "sync_runs" edge of the Tenant entity.
func (t *Tenant) QuerySyncRuns() *SyncRunQuery {
	return NewTenantClient(t.config).QuerySyncRuns(t)
}

// Update returns a builder for updating this Tenant.
// Note that you need to call Tenant.Unwrap() before calling this method if this Tenant
// was returned from a transaction, and the transaction was committed or rolled back.
func (t *Tenant) Update() *TenantUpdateOne {
	return NewTenantClient(t.config).UpdateOne(t)
}

// Unwrap unwraps the Tenant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (t *Tenant) Unwrap() *Tenant {
	_tx, ok := t.config.driver.(*txDriver)
	if !ok {
		panic("ent: Tenant is not a transactional entity")
	}
	t.config.driver = _tx.drv
	return t
}

// String implements the fmt.Stringer.
func (t *Tenant) String() string {
	var builder strings.Builder
	builder.WriteString("Tenant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", t.ID))
	builder.WriteString("name=")
	builder.WriteString(t.Name)
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(t.Timezone)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", t.Active))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(t.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(t.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tenants is a parsable slice of Tenant.
type Tenants []*Tenant
