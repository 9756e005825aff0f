// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ringledger/ringledger/ent/billingaccount"
	"github.com/ringledger/ringledger/ent/tenant"
)

// BillingAccount is the model entity for the BillingAccount schema.
type BillingAccount struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Tenant the account belongs to
	TenantID int `json:"tenant_id,omitempty"`
	// Inbound rate in cents per minute
	InboundRateCents int `json:"inbound_rate_cents,omitempty"`
	// Outbound rate in cents per minute
	OutboundRateCents int `json:"outbound_rate_cents,omitempty"`
	// Inbound billing plan type
	InboundPlan billingaccount.InboundPlan `json:"inbound_plan,omitempty"`
	// Cutoff bounding how far back non-admin syncs may look
	CallsResetAt *time.Time `json:"calls_reset_at,omitempty"`
	// Aggregated spend for the current month, maintained by the reconciliation job
	MonthlySpendCents int64 `json:"monthly_spend_cents,omitempty"`
	// Stripe customer for metered usage reporting
	StripeCustomerID *string `json:"stripe_customer_id,omitempty"`
	// Stripe subscription item receiving usage records
	StripeSubscriptionItemID string `json:"stripe_subscription_item_id,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BillingAccountQuery when eager-loading is set.
	Edges        BillingAccountEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BillingAccountEdges holds the relations/edges for other nodes in the graph.
type BillingAccountEdges struct {
	// Account owner
	Tenant *Tenant `json:"tenant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BillingAccountEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BillingAccount) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case billingaccount.FieldID, billingaccount.FieldTenantID, billingaccount.FieldInboundRateCents, billingaccount.FieldOutboundRateCents, billingaccount.FieldMonthlySpendCents:
			values[i] = new(sql.NullInt64)
		case billingaccount.FieldInboundPlan, billingaccount.FieldStripeCustomerID, billingaccount.FieldStripeSubscriptionItemID:
			values[i] = new(sql.NullString)
		case billingaccount.FieldCallsResetAt, billingaccount.FieldCreatedAt, billingaccount.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BillingAccount fields.
func (ba *BillingAccount) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case billingaccount.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ba.ID = int(value.Int64)
		case billingaccount.FieldTenantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				ba.TenantID = int(value.Int64)
			}
		case billingaccount.FieldInboundRateCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field inbound_rate_cents", values[i])
			} else if value.Valid {
				ba.InboundRateCents = int(value.Int64)
			}
		case billingaccount.FieldOutboundRateCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field outbound_rate_cents", values[i])
			} else if value.Valid {
				ba.OutboundRateCents = int(value.Int64)
			}
		case billingaccount.FieldInboundPlan:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field inbound_plan", values[i])
			} else if value.Valid {
				ba.InboundPlan = billingaccount.InboundPlan(value.String)
			}
		case billingaccount.FieldCallsResetAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field calls_reset_at", values[i])
			} else if value.Valid {
				ba.CallsResetAt = new(time.Time)
				*ba.CallsResetAt = value.Time
			}
		case billingaccount.FieldMonthlySpendCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_spend_cents", values[i])
			} else if value.Valid {
				ba.MonthlySpendCents = value.Int64
			}
		case billingaccount.FieldStripeCustomerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_customer_id", values[i])
			} else if value.Valid {
				ba.StripeCustomerID = new(string)
				*ba.StripeCustomerID = value.String
			}
		case billingaccount.FieldStripeSubscriptionItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_subscription_item_id", values[i])
			} else if value.Valid {
				ba.StripeSubscriptionItemID = value.String
			}
		case billingaccount.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ba.CreatedAt = value.Time
			}
		case billingaccount.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ba.UpdatedAt = value.Time
			}
		default:
			ba.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BillingAccount.
// This includes values selected through modifiers, order, etc.
func (ba *BillingAccount) Value(name string) (ent.Value, error) {
	return ba.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the BillingAccount entity.
func (ba *BillingAccount) QueryTenant() *TenantQuery {
	return NewBillingAccountClient(ba.config).QueryTenant(ba)
}

// Update returns a builder for updating this BillingAccount.
// Note that you need to call BillingAccount.Unwrap() before calling this method if this BillingAccount
// was returned from a transaction, and the transaction was committed or rolled back.
func (ba *BillingAccount) Update() *BillingAccountUpdateOne {
	return NewBillingAccountClient(ba.config).UpdateOne(ba)
}

// Unwrap unwraps the BillingAccount entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ba *BillingAccount) Unwrap() *BillingAccount {
	_tx, ok := ba.config.driver.(*txDriver)
	if !ok {
		panic("ent: BillingAccount is not a transactional entity")
	}
	ba.config.driver = _tx.drv
	return ba
}

// String implements the fmt.Stringer.
func (ba *BillingAccount) String() string {
	var builder strings.Builder
	builder.WriteString("BillingAccount(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ba.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", ba.TenantID))
	builder.WriteString(", ")
	builder.WriteString("inbound_rate_cents=")
	builder.WriteString(fmt.Sprintf("%v", ba.InboundRateCents))
	builder.WriteString(", ")
	builder.WriteString("outbound_rate_cents=")
	builder.WriteString(fmt.Sprintf("%v", ba.OutboundRateCents))
	builder.WriteString(", ")
	builder.WriteString("inbound_plan=")
	builder.WriteString(fmt.Sprintf("%v", ba.InboundPlan))
	builder.WriteString(", ")
	if v := ba.CallsResetAt; v != nil {
		builder.WriteString("calls_reset_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("monthly_spend_cents=")
	builder.WriteString(fmt.Sprintf("%v", ba.MonthlySpendCents))
	builder.WriteString(", ")
	if v := ba.StripeCustomerID; v != nil {
		builder.WriteString("stripe_customer_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("stripe_subscription_item_id=")
	builder.WriteString(ba.StripeSubscriptionItemID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ba.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ba.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BillingAccounts is a parsable slice of BillingAccount.
type BillingAccounts []*BillingAccount
