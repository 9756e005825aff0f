// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ringledger/ringledger/ent/deletedcall"
)

// DeletedCall is the model entity for the DeletedCall schema.
type DeletedCall struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Tenant the deletion belongs to
	TenantID int `json:"tenant_id,omitempty"`
	// Upstream identifier of the deleted call
	ProviderCallID string `json:"provider_call_id,omitempty"`
	// User who deleted the call
	DeletedBy *int `json:"deleted_by,omitempty"`
	// When the call was deleted
	DeletedAt    time.Time `json:"deleted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeletedCall) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deletedcall.FieldID, deletedcall.FieldTenantID, deletedcall.FieldDeletedBy:
			values[i] = new(sql.NullInt64)
		case deletedcall.FieldProviderCallID:
			values[i] = new(sql.NullString)
		case deletedcall.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeletedCall fields.
func (dc *DeletedCall) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deletedcall.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			dc.ID = int(value.Int64)
		case deletedcall.FieldTenantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				dc.TenantID = int(value.Int64)
			}
		case deletedcall.FieldProviderCallID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_call_id", values[i])
			} else if value.Valid {
				dc.ProviderCallID = value.String
			}
		case deletedcall.FieldDeletedBy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_by", values[i])
			} else if value.Valid {
				dc.DeletedBy = new(int)
				*dc.DeletedBy = int(value.Int64)
			}
		case deletedcall.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				dc.DeletedAt = value.Time
			}
		default:
			dc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeletedCall.
// This includes values selected through modifiers, order, etc.
func (dc *DeletedCall) Value(name string) (ent.Value, error) {
	return dc.selectValues.Get(name)
}

// Update returns a builder for updating this DeletedCall.
// Note that you need to call DeletedCall.Unwrap() before calling this method if this DeletedCall
// was returned from a transaction, and the transaction was committed or rolled back.
func (dc *DeletedCall) Update() *DeletedCallUpdateOne {
	return NewDeletedCallClient(dc.config).UpdateOne(dc)
}

// Unwrap unwraps the DeletedCall entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (dc *DeletedCall) Unwrap() *DeletedCall {
	_tx, ok := dc.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeletedCall is not a transactional entity")
	}
	dc.config.driver = _tx.drv
	return dc
}

// String implements the fmt.Stringer.
func (dc *DeletedCall) String() string {
	var builder strings.Builder
	builder.WriteString("DeletedCall(")
	builder.WriteString(fmt.Sprintf("id=%v, ", dc.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", dc.TenantID))
	builder.WriteString(", ")
	builder.WriteString("provider_call_id=")
	builder.WriteString(dc.ProviderCallID)
	builder.WriteString(", ")
	if v := dc.DeletedBy; v != nil {
		builder.WriteString("deleted_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("deleted_at=")
	builder.WriteString(dc.DeletedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DeletedCalls is a parsable slice of DeletedCall.
type DeletedCalls []*DeletedCall
