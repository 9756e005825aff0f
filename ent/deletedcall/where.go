// Code generated by ent, DO NOT EDIT.

package deletedcall

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ringledger/ringledger/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldEQ(FieldTenantID, v))
}

// ProviderCallID applies equality check predicate on the "provider_call_id" field. It's identical to ProviderCallIDEQ.
func ProviderCallID(v string) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldEQ(FieldProviderCallID, v))
}

// DeletedBy applies equality check predicate on the "deleted_by" field. It's identical to DeletedByEQ.
func DeletedBy(v int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldEQ(FieldDeletedBy, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldEQ(FieldDeletedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldLTE(FieldTenantID, v))
}

// ProviderCallIDEQ applies the EQ predicate on the "provider_call_id" field.
func ProviderCallIDEQ(v string) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldEQ(FieldProviderCallID, v))
}

// ProviderCallIDNEQ applies the NEQ predicate on the "provider_call_id" field.
func ProviderCallIDNEQ(v string) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldNEQ(FieldProviderCallID, v))
}

// ProviderCallIDIn applies the In predicate on the "provider_call_id" field.
func ProviderCallIDIn(vs ...string) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldIn(FieldProviderCallID, vs...))
}

// ProviderCallIDNotIn applies the NotIn predicate on the "provider_call_id" field.
func ProviderCallIDNotIn(vs ...string) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldNotIn(FieldProviderCallID, vs...))
}

// ProviderCallIDGT applies the GT predicate on the "provider_call_id" field.
func ProviderCallIDGT(v string) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldGT(FieldProviderCallID, v))
}

// ProviderCallIDGTE applies the GTE predicate on the "provider_call_id" field.
func ProviderCallIDGTE(v string) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldGTE(FieldProviderCallID, v))
}

// ProviderCallIDLT applies the LT predicate on the "provider_call_id" field.
func ProviderCallIDLT(v string) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldLT(FieldProviderCallID, v))
}

// ProviderCallIDLTE applies the LTE predicate on the "provider_call_id" field.
func ProviderCallIDLTE(v string) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldLTE(FieldProviderCallID, v))
}

// ProviderCallIDContains applies the Contains predicate on the "provider_call_id" field.
func ProviderCallIDContains(v string) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldContains(FieldProviderCallID, v))
}

// ProviderCallIDHasPrefix applies the HasPrefix predicate on the "provider_call_id" field.
func ProviderCallIDHasPrefix(v string) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldHasPrefix(FieldProviderCallID, v))
}

// ProviderCallIDHasSuffix applies the HasSuffix predicate on the "provider_call_id" field.
func ProviderCallIDHasSuffix(v string) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldHasSuffix(FieldProviderCallID, v))
}

// ProviderCallIDEqualFold applies the EqualFold predicate on the "provider_call_id" field.
func ProviderCallIDEqualFold(v string) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldEqualFold(FieldProviderCallID, v))
}

// ProviderCallIDContainsFold applies the ContainsFold predicate on the "provider_call_id" field.
func ProviderCallIDContainsFold(v string) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldContainsFold(FieldProviderCallID, v))
}

// DeletedByEQ applies the EQ predicate on the "deleted_by" field.
func DeletedByEQ(v int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldEQ(FieldDeletedBy, v))
}

// DeletedByNEQ applies the NEQ predicate on the "deleted_by" field.
func DeletedByNEQ(v int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldNEQ(FieldDeletedBy, v))
}

// DeletedByIn applies the In predicate on the "deleted_by" field.
func DeletedByIn(vs ...int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldIn(FieldDeletedBy, vs...))
}

// DeletedByNotIn applies the NotIn predicate on the "deleted_by" field.
func DeletedByNotIn(vs ...int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldNotIn(FieldDeletedBy, vs...))
}

// DeletedByGT applies the GT predicate on the "deleted_by" field.
func DeletedByGT(v int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldGT(FieldDeletedBy, v))
}

// DeletedByGTE applies the GTE predicate on the "deleted_by" field.
func DeletedByGTE(v int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldGTE(FieldDeletedBy, v))
}

// DeletedByLT applies the LT predicate on the "deleted_by" field.
func DeletedByLT(v int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldLT(FieldDeletedBy, v))
}

// DeletedByLTE applies the LTE predicate on the "deleted_by" field.
func DeletedByLTE(v int) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldLTE(FieldDeletedBy, v))
}

// DeletedByIsNil applies the IsNil predicate on the "deleted_by" field.
func DeletedByIsNil() predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldIsNull(FieldDeletedBy))
}

// DeletedByNotNil applies the NotNil predicate on the "deleted_by" field.
func DeletedByNotNil() predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldNotNull(FieldDeletedBy))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.DeletedCall {
	return predicate.DeletedCall(sql.FieldLTE(FieldDeletedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeletedCall) predicate.DeletedCall {
	return predicate.DeletedCall(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeletedCall) predicate.DeletedCall {
	return predicate.DeletedCall(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeletedCall) predicate.DeletedCall {
	return predicate.DeletedCall(sql.NotPredicates(p))
}
