// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ringledger/ringledger/ent/crmconnection"
	"github.com/ringledger/ringledger/ent/tenant"
)

// CRMConnection is the model entity for the CRMConnection schema.
type CRMConnection struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Tenant that owns this connection
	TenantID int `json:"tenant_id,omitempty"`
	// Upstream location identifier
	LocationID string `json:"location_id,omitempty"`
	// OAuth access token
	AccessToken string `json:"-"`
	// OAuth refresh token
	RefreshToken string `json:"-"`
	// When the access token expires
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	// Automatically sync call records on a schedule
	AutoSync bool `json:"auto_sync,omitempty"`
	// Auto-sync interval in minutes
	SyncIntervalMinutes int `json:"sync_interval_minutes,omitempty"`
	// Last successful sync timestamp
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
	// Last sync error message
	LastSyncError string `json:"last_sync_error,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CRMConnectionQuery when eager-loading is set.
	Edges        CRMConnectionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CRMConnectionEdges holds the relations/edges for other nodes in the graph.
type CRMConnectionEdges struct {
	// Connection owner
	Tenant *Tenant `json:"tenant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CRMConnectionEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CRMConnection) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case crmconnection.FieldAutoSync:
			values[i] = new(sql.NullBool)
		case crmconnection.FieldID, crmconnection.FieldTenantID, crmconnection.FieldSyncIntervalMinutes:
			values[i] = new(sql.NullInt64)
		case crmconnection.FieldLocationID, crmconnection.FieldAccessToken, crmconnection.FieldRefreshToken, crmconnection.FieldLastSyncError:
			values[i] = new(sql.NullString)
		case crmconnection.FieldTokenExpiresAt, crmconnection.FieldLastSyncAt, crmconnection.FieldCreatedAt, crmconnection.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CRMConnection fields.
func (cc *CRMConnection) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case crmconnection.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			cc.ID = int(value.Int64)
		case crmconnection.FieldTenantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				cc.TenantID = int(value.Int64)
			}
		case crmconnection.FieldLocationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location_id", values[i])
			} else if value.Valid {
				cc.LocationID = value.String
			}
		case crmconnection.FieldAccessToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field access_token", values[i])
			} else if value.Valid {
				cc.AccessToken = value.String
			}
		case crmconnection.FieldRefreshToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field refresh_token", values[i])
			} else if value.Valid {
				cc.RefreshToken = value.String
			}
		case crmconnection.FieldTokenExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field token_expires_at", values[i])
			} else if value.Valid {
				cc.TokenExpiresAt = new(time.Time)
				*cc.TokenExpiresAt = value.Time
			}
		case crmconnection.FieldAutoSync:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_sync", values[i])
			} else if value.Valid {
				cc.AutoSync = value.Bool
			}
		case crmconnection.FieldSyncIntervalMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sync_interval_minutes", values[i])
			} else if value.Valid {
				cc.SyncIntervalMinutes = int(value.Int64)
			}
		case crmconnection.FieldLastSyncAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_sync_at", values[i])
			} else if value.Valid {
				cc.LastSyncAt = new(time.Time)
				*cc.LastSyncAt = value.Time
			}
		case crmconnection.FieldLastSyncError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_sync_error", values[i])
			} else if value.Valid {
				cc.LastSyncError = value.String
			}
		case crmconnection.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cc.CreatedAt = value.Time
			}
		case crmconnection.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				cc.UpdatedAt = value.Time
			}
		default:
			cc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CRMConnection.
// This includes values selected through modifiers, order, etc.
func (cc *CRMConnection) Value(name string) (ent.Value, error) {
	return cc.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the CRMConnection entity.
func (cc *CRMConnection) QueryTenant() *TenantQuery {
	return NewCRMConnectionClient(cc.config).QueryTenant(cc)
}

// Update returns a builder for updating this CRMConnection.
// Note that you need to call CRMConnection.Unwrap() before calling this method if this CRMConnection
// was returned from a transaction, and the transaction was committed or rolled back.
func (cc *CRMConnection) Update() *CRMConnectionUpdateOne {
	return NewCRMConnectionClient(cc.config).UpdateOne(cc)
}

// Unwrap unwraps the CRMConnection entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cc *CRMConnection) Unwrap() *CRMConnection {
	_tx, ok := cc.config.driver.(*txDriver)
	if !ok {
		panic("ent: CRMConnection is not a transactional entity")
	}
	cc.config.driver = _tx.drv
	return cc
}

// String implements the fmt.Stringer.
func (cc *CRMConnection) String() string {
	var builder strings.Builder
	builder.WriteString("CRMConnection(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cc.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", cc.TenantID))
	builder.WriteString(", ")
	builder.WriteString("location_id=")
	builder.WriteString(cc.LocationID)
	builder.WriteString(", ")
	builder.WriteString("access_token=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("refresh_token=<sensitive>")
	builder.WriteString(", ")
	if v := cc.TokenExpiresAt; v != nil {
		builder.WriteString("token_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("auto_sync=")
	builder.WriteString(fmt.Sprintf("%v", cc.AutoSync))
	builder.WriteString(", ")
	builder.WriteString("sync_interval_minutes=")
	builder.WriteString(fmt.Sprintf("%v", cc.SyncIntervalMinutes))
	builder.WriteString(", ")
	if v := cc.LastSyncAt; v != nil {
		builder.WriteString("last_sync_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_sync_error=")
	builder.WriteString(cc.LastSyncError)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(cc.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(cc.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CRMConnections is a parsable slice of CRMConnection.
type CRMConnections []*CRMConnection
