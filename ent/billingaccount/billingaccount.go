// Code generated by ent, DO NOT EDIT.

package billingaccount

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the billingaccount type in the database.
	Label = "billing_account"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldInboundRateCents holds the string denoting the inbound_rate_cents field in the database.
	FieldInboundRateCents = "inbound_rate_cents"
	// FieldOutboundRateCents holds the string denoting the outbound_rate_cents field in the database.
	FieldOutboundRateCents = "outbound_rate_cents"
	// FieldInboundPlan holds the string denoting the inbound_plan field in the database.
	FieldInboundPlan = "inbound_plan"
	// FieldCallsResetAt holds the string denoting the calls_reset_at field in the database.
	FieldCallsResetAt = "calls_reset_at"
	// FieldMonthlySpendCents holds the string denoting the monthly_spend_cents field in the database.
	FieldMonthlySpendCents = "monthly_spend_cents"
	// FieldStripeCustomerID holds the string denoting the stripe_customer_id field in the database.
	FieldStripeCustomerID = "stripe_customer_id"
	// FieldStripeSubscriptionItemID holds the string denoting the stripe_subscription_item_id field in the database.
	FieldStripeSubscriptionItemID = "stripe_subscription_item_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTenant holds the string denoting the tenant edge name in mutations.
	EdgeTenant = "tenant"
	// Table holds the table name of the billingaccount in the database.
	Table = "billing_accounts"
	// TenantTable is the table that holds the tenant relation/edge.
	TenantTable = "billing_accounts"
	// TenantInverseTable is the table name for the Tenant entity.
	// It exists in this package in order to avoid circular dependency with the "tenant" package.
	TenantInverseTable = "tenants"
	// TenantColumn is the table column denoting the tenant relation/edge.
	TenantColumn = "tenant_id"
)

// Columns holds all SQL columns for billingaccount fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldInboundRateCents,
	FieldOutboundRateCents,
	FieldInboundPlan,
	FieldCallsResetAt,
	FieldMonthlySpendCents,
	FieldStripeCustomerID,
	FieldStripeSubscriptionItemID,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultInboundRateCents holds the default value on creation for the "inbound_rate_cents" field.
	DefaultInboundRateCents int
	// InboundRateCentsValidator is a validator for the "inbound_rate_cents" field. It is called by the builders before save.
	InboundRateCentsValidator func(int) error
	// DefaultOutboundRateCents holds the default value on creation for the "outbound_rate_cents" field.
	DefaultOutboundRateCents int
	// OutboundRateCentsValidator is a validator for the "outbound_rate_cents" field. It is called by the builders before save.
	OutboundRateCentsValidator func(int) error
	// DefaultMonthlySpendCents holds the default value on creation for the "monthly_spend_cents" field.
	DefaultMonthlySpendCents int64
	// StripeCustomerIDValidator is a validator for the "stripe_customer_id" field. It is called by the builders before save.
	StripeCustomerIDValidator func(string) error
	// StripeSubscriptionItemIDValidator is a validator for the "stripe_subscription_item_id" field. It is called by the builders before save.
	StripeSubscriptionItemIDValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// InboundPlan defines the type for the "inbound_plan" enum field.
type InboundPlan string

// InboundPlanMetered is the default value of the InboundPlan enum.
const DefaultInboundPlan = InboundPlanMetered

// InboundPlan values.
const (
	InboundPlanMetered   InboundPlan = "metered"
	InboundPlanUnlimited InboundPlan = "unlimited"
	InboundPlanNone      InboundPlan = "none"
)

func (ip InboundPlan) String() string {
	return string(ip)
}

// InboundPlanValidator is a validator for the "inbound_plan" field enum values. It is called by the builders before save.
func InboundPlanValidator(ip InboundPlan) error {
	switch ip {
	case InboundPlanMetered, InboundPlanUnlimited, InboundPlanNone:
		return nil
	default:
		return fmt.Errorf("billingaccount: invalid enum value for inbound_plan field: %q", ip)
	}
}

// OrderOption defines the ordering options for the BillingAccount queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByInboundRateCents orders the results by the inbound_rate_cents field.
func ByInboundRateCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInboundRateCents, opts...).ToFunc()
}

// ByOutboundRateCents orders the results by the outbound_rate_cents field.
func ByOutboundRateCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutboundRateCents, opts...).ToFunc()
}

// ByInboundPlan orders the results by the inbound_plan field.
func ByInboundPlan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInboundPlan, opts...).ToFunc()
}

// ByCallsResetAt orders the results by the calls_reset_at field.
func ByCallsResetAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallsResetAt, opts...).ToFunc()
}

// ByMonthlySpendCents orders the results by the monthly_spend_cents field.
func ByMonthlySpendCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlySpendCents, opts...).ToFunc()
}

// ByStripeCustomerID orders the results by the stripe_customer_id field.
func ByStripeCustomerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStripeCustomerID, opts...).ToFunc()
}

// ByStripeSubscriptionItemID orders the results by the stripe_subscription_item_id field.
func ByStripeSubscriptionItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStripeSubscriptionItemID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, TenantTable, TenantColumn),
	)
}
