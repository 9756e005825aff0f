// Code generated by ent, DO NOT EDIT.

package billingaccount

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ringledger/ringledger/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldTenantID, v))
}

// InboundRateCents applies equality check predicate on the "inbound_rate_cents" field. It's identical to InboundRateCentsEQ.
func InboundRateCents(v int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldInboundRateCents, v))
}

// OutboundRateCents applies equality check predicate on the "outbound_rate_cents" field. It's identical to OutboundRateCentsEQ.
func OutboundRateCents(v int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldOutboundRateCents, v))
}

// CallsResetAt applies equality check predicate on the "calls_reset_at" field. It's identical to CallsResetAtEQ.
func CallsResetAt(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldCallsResetAt, v))
}

// MonthlySpendCents applies equality check predicate on the "monthly_spend_cents" field. It's identical to MonthlySpendCentsEQ.
func MonthlySpendCents(v int64) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldMonthlySpendCents, v))
}

// StripeCustomerID applies equality check predicate on the "stripe_customer_id" field. It's identical to StripeCustomerIDEQ.
func StripeCustomerID(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldStripeCustomerID, v))
}

// StripeSubscriptionItemID applies equality check predicate on the "stripe_subscription_item_id" field. It's identical to StripeSubscriptionItemIDEQ.
func StripeSubscriptionItemID(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldStripeSubscriptionItemID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNotIn(FieldTenantID, vs...))
}

// InboundRateCentsEQ applies the EQ predicate on the "inbound_rate_cents" field.
func InboundRateCentsEQ(v int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldInboundRateCents, v))
}

// InboundRateCentsNEQ applies the NEQ predicate on the "inbound_rate_cents" field.
func InboundRateCentsNEQ(v int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNEQ(FieldInboundRateCents, v))
}

// InboundRateCentsIn applies the In predicate on the "inbound_rate_cents" field.
func InboundRateCentsIn(vs ...int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldIn(FieldInboundRateCents, vs...))
}

// InboundRateCentsNotIn applies the NotIn predicate on the "inbound_rate_cents" field.
func InboundRateCentsNotIn(vs ...int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNotIn(FieldInboundRateCents, vs...))
}

// InboundRateCentsGT applies the GT predicate on the "inbound_rate_cents" field.
func InboundRateCentsGT(v int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGT(FieldInboundRateCents, v))
}

// InboundRateCentsGTE applies the GTE predicate on the "inbound_rate_cents" field.
func InboundRateCentsGTE(v int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGTE(FieldInboundRateCents, v))
}

// InboundRateCentsLT applies the LT predicate on the "inbound_rate_cents" field.
func InboundRateCentsLT(v int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLT(FieldInboundRateCents, v))
}

// InboundRateCentsLTE applies the LTE predicate on the "inbound_rate_cents" field.
func InboundRateCentsLTE(v int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLTE(FieldInboundRateCents, v))
}

// OutboundRateCentsEQ applies the EQ predicate on the "outbound_rate_cents" field.
func OutboundRateCentsEQ(v int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldOutboundRateCents, v))
}

// OutboundRateCentsNEQ applies the NEQ predicate on the "outbound_rate_cents" field.
func OutboundRateCentsNEQ(v int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNEQ(FieldOutboundRateCents, v))
}

// OutboundRateCentsIn applies the In predicate on the "outbound_rate_cents" field.
func OutboundRateCentsIn(vs ...int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldIn(FieldOutboundRateCents, vs...))
}

// OutboundRateCentsNotIn applies the NotIn predicate on the "outbound_rate_cents" field.
func OutboundRateCentsNotIn(vs ...int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNotIn(FieldOutboundRateCents, vs...))
}

// OutboundRateCentsGT applies the GT predicate on the "outbound_rate_cents" field.
func OutboundRateCentsGT(v int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGT(FieldOutboundRateCents, v))
}

// OutboundRateCentsGTE applies the GTE predicate on the "outbound_rate_cents" field.
func OutboundRateCentsGTE(v int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGTE(FieldOutboundRateCents, v))
}

// OutboundRateCentsLT applies the LT predicate on the "outbound_rate_cents" field.
func OutboundRateCentsLT(v int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLT(FieldOutboundRateCents, v))
}

// OutboundRateCentsLTE applies the LTE predicate on the "outbound_rate_cents" field.
func OutboundRateCentsLTE(v int) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLTE(FieldOutboundRateCents, v))
}

// InboundPlanEQ applies the EQ predicate on the "inbound_plan" field.
func InboundPlanEQ(v InboundPlan) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldInboundPlan, v))
}

// InboundPlanNEQ applies the NEQ predicate on the "inbound_plan" field.
func InboundPlanNEQ(v InboundPlan) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNEQ(FieldInboundPlan, v))
}

// InboundPlanIn applies the In predicate on the "inbound_plan" field.
func InboundPlanIn(vs ...InboundPlan) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldIn(FieldInboundPlan, vs...))
}

// InboundPlanNotIn applies the NotIn predicate on the "inbound_plan" field.
func InboundPlanNotIn(vs ...InboundPlan) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNotIn(FieldInboundPlan, vs...))
}

// CallsResetAtEQ applies the EQ predicate on the "calls_reset_at" field.
func CallsResetAtEQ(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldCallsResetAt, v))
}

// CallsResetAtNEQ applies the NEQ predicate on the "calls_reset_at" field.
func CallsResetAtNEQ(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNEQ(FieldCallsResetAt, v))
}

// CallsResetAtIn applies the In predicate on the "calls_reset_at" field.
func CallsResetAtIn(vs ...time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldIn(FieldCallsResetAt, vs...))
}

// CallsResetAtNotIn applies the NotIn predicate on the "calls_reset_at" field.
func CallsResetAtNotIn(vs ...time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNotIn(FieldCallsResetAt, vs...))
}

// CallsResetAtGT applies the GT predicate on the "calls_reset_at" field.
func CallsResetAtGT(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGT(FieldCallsResetAt, v))
}

// CallsResetAtGTE applies the GTE predicate on the "calls_reset_at" field.
func CallsResetAtGTE(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGTE(FieldCallsResetAt, v))
}

// CallsResetAtLT applies the LT predicate on the "calls_reset_at" field.
func CallsResetAtLT(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLT(FieldCallsResetAt, v))
}

// CallsResetAtLTE applies the LTE predicate on the "calls_reset_at" field.
func CallsResetAtLTE(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLTE(FieldCallsResetAt, v))
}

// CallsResetAtIsNil applies the IsNil predicate on the "calls_reset_at" field.
func CallsResetAtIsNil() predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldIsNull(FieldCallsResetAt))
}

// CallsResetAtNotNil applies the NotNil predicate on the "calls_reset_at" field.
func CallsResetAtNotNil() predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNotNull(FieldCallsResetAt))
}

// MonthlySpendCentsEQ applies the EQ predicate on the "monthly_spend_cents" field.
func MonthlySpendCentsEQ(v int64) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldMonthlySpendCents, v))
}

// MonthlySpendCentsNEQ applies the NEQ predicate on the "monthly_spend_cents" field.
func MonthlySpendCentsNEQ(v int64) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNEQ(FieldMonthlySpendCents, v))
}

// MonthlySpendCentsIn applies the In predicate on the "monthly_spend_cents" field.
func MonthlySpendCentsIn(vs ...int64) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldIn(FieldMonthlySpendCents, vs...))
}

// MonthlySpendCentsNotIn applies the NotIn predicate on the "monthly_spend_cents" field.
func MonthlySpendCentsNotIn(vs ...int64) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNotIn(FieldMonthlySpendCents, vs...))
}

// MonthlySpendCentsGT applies the GT predicate on the "monthly_spend_cents" field.
func MonthlySpendCentsGT(v int64) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGT(FieldMonthlySpendCents, v))
}

// MonthlySpendCentsGTE applies the GTE predicate on the "monthly_spend_cents" field.
func MonthlySpendCentsGTE(v int64) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGTE(FieldMonthlySpendCents, v))
}

// MonthlySpendCentsLT applies the LT predicate on the "monthly_spend_cents" field.
func MonthlySpendCentsLT(v int64) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLT(FieldMonthlySpendCents, v))
}

// MonthlySpendCentsLTE applies the LTE predicate on the "monthly_spend_cents" field.
func MonthlySpendCentsLTE(v int64) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLTE(FieldMonthlySpendCents, v))
}

// StripeCustomerIDEQ applies the EQ predicate on the "stripe_customer_id" field.
func StripeCustomerIDEQ(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldStripeCustomerID, v))
}

// StripeCustomerIDNEQ applies the NEQ predicate on the "stripe_customer_id" field.
func StripeCustomerIDNEQ(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNEQ(FieldStripeCustomerID, v))
}

// StripeCustomerIDIn applies the In predicate on the "stripe_customer_id" field.
func StripeCustomerIDIn(vs ...string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldIn(FieldStripeCustomerID, vs...))
}

// StripeCustomerIDNotIn applies the NotIn predicate on the "stripe_customer_id" field.
func StripeCustomerIDNotIn(vs ...string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNotIn(FieldStripeCustomerID, vs...))
}

// StripeCustomerIDGT applies the GT predicate on the "stripe_customer_id" field.
func StripeCustomerIDGT(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGT(FieldStripeCustomerID, v))
}

// StripeCustomerIDGTE applies the GTE predicate on the "stripe_customer_id" field.
func StripeCustomerIDGTE(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGTE(FieldStripeCustomerID, v))
}

// StripeCustomerIDLT applies the LT predicate on the "stripe_customer_id" field.
func StripeCustomerIDLT(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLT(FieldStripeCustomerID, v))
}

// StripeCustomerIDLTE applies the LTE predicate on the "stripe_customer_id" field.
func StripeCustomerIDLTE(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLTE(FieldStripeCustomerID, v))
}

// StripeCustomerIDContains applies the Contains predicate on the "stripe_customer_id" field.
func StripeCustomerIDContains(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldContains(FieldStripeCustomerID, v))
}

// StripeCustomerIDHasPrefix applies the HasPrefix predicate on the "stripe_customer_id" field.
func StripeCustomerIDHasPrefix(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldHasPrefix(FieldStripeCustomerID, v))
}

// StripeCustomerIDHasSuffix applies the HasSuffix predicate on the "stripe_customer_id" field.
func StripeCustomerIDHasSuffix(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldHasSuffix(FieldStripeCustomerID, v))
}

// StripeCustomerIDIsNil applies the IsNil predicate on the "stripe_customer_id" field.
func StripeCustomerIDIsNil() predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldIsNull(FieldStripeCustomerID))
}

// StripeCustomerIDNotNil applies the NotNil predicate on the "stripe_customer_id" field.
func StripeCustomerIDNotNil() predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNotNull(FieldStripeCustomerID))
}

// StripeCustomerIDEqualFold applies the EqualFold predicate on the "stripe_customer_id" field.
func StripeCustomerIDEqualFold(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEqualFold(FieldStripeCustomerID, v))
}

// StripeCustomerIDContainsFold applies the ContainsFold predicate on the "stripe_customer_id" field.
func StripeCustomerIDContainsFold(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldContainsFold(FieldStripeCustomerID, v))
}

// StripeSubscriptionItemIDEQ applies the EQ predicate on the "stripe_subscription_item_id" field.
func StripeSubscriptionItemIDEQ(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldStripeSubscriptionItemID, v))
}

// StripeSubscriptionItemIDNEQ applies the NEQ predicate on the "stripe_subscription_item_id" field.
func StripeSubscriptionItemIDNEQ(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNEQ(FieldStripeSubscriptionItemID, v))
}

// StripeSubscriptionItemIDIn applies the In predicate on the "stripe_subscription_item_id" field.
func StripeSubscriptionItemIDIn(vs ...string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldIn(FieldStripeSubscriptionItemID, vs...))
}

// StripeSubscriptionItemIDNotIn applies the NotIn predicate on the "stripe_subscription_item_id" field.
func StripeSubscriptionItemIDNotIn(vs ...string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNotIn(FieldStripeSubscriptionItemID, vs...))
}

// StripeSubscriptionItemIDGT applies the GT predicate on the "stripe_subscription_item_id" field.
func StripeSubscriptionItemIDGT(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGT(FieldStripeSubscriptionItemID, v))
}

// StripeSubscriptionItemIDGTE applies the GTE predicate on the "stripe_subscription_item_id" field.
func StripeSubscriptionItemIDGTE(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGTE(FieldStripeSubscriptionItemID, v))
}

// StripeSubscriptionItemIDLT applies the LT predicate on the "stripe_subscription_item_id" field.
func StripeSubscriptionItemIDLT(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLT(FieldStripeSubscriptionItemID, v))
}

// StripeSubscriptionItemIDLTE applies the LTE predicate on the "stripe_subscription_item_id" field.
func StripeSubscriptionItemIDLTE(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLTE(FieldStripeSubscriptionItemID, v))
}

// StripeSubscriptionItemIDContains applies the Contains predicate on the "stripe_subscription_item_id" field.
func StripeSubscriptionItemIDContains(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldContains(FieldStripeSubscriptionItemID, v))
}

// StripeSubscriptionItemIDHasPrefix applies the HasPrefix predicate on the "stripe_subscription_item_id" field.
func StripeSubscriptionItemIDHasPrefix(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldHasPrefix(FieldStripeSubscriptionItemID, v))
}

// StripeSubscriptionItemIDHasSuffix applies the HasSuffix predicate on the "stripe_subscription_item_id" field.
func StripeSubscriptionItemIDHasSuffix(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldHasSuffix(FieldStripeSubscriptionItemID, v))
}

// StripeSubscriptionItemIDIsNil applies the IsNil predicate on the "stripe_subscription_item_id" field.
func StripeSubscriptionItemIDIsNil() predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldIsNull(FieldStripeSubscriptionItemID))
}

// StripeSubscriptionItemIDNotNil applies the NotNil predicate on the "stripe_subscription_item_id" field.
func StripeSubscriptionItemIDNotNil() predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNotNull(FieldStripeSubscriptionItemID))
}

// StripeSubscriptionItemIDEqualFold applies the EqualFold predicate on the "stripe_subscription_item_id" field.
func StripeSubscriptionItemIDEqualFold(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEqualFold(FieldStripeSubscriptionItemID, v))
}

// StripeSubscriptionItemIDContainsFold applies the ContainsFold predicate on the "stripe_subscription_item_id" field.
func StripeSubscriptionItemIDContainsFold(v string) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldContainsFold(FieldStripeSubscriptionItemID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BillingAccount {
	return predicate.BillingAccount(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.BillingAccount {
	return predicate.BillingAccount(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.BillingAccount {
	return predicate.BillingAccount(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BillingAccount) predicate.BillingAccount {
	return predicate.BillingAccount(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BillingAccount) predicate.BillingAccount {
	return predicate.BillingAccount(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BillingAccount) predicate.BillingAccount {
	return predicate.BillingAccount(sql.NotPredicates(p))
}
