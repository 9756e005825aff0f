// Code generated by ent, DO NOT EDIT.

package phonenumber

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ringledger/ringledger/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEQ(FieldTenantID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEQ(FieldAgentID, v))
}

// Number applies equality check predicate on the "number" field. It's identical to NumberEQ.
func Number(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEQ(FieldNumber, v))
}

// Normalized applies equality check predicate on the "normalized" field. It's identical to NormalizedEQ.
func Normalized(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEQ(FieldNormalized, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEQ(FieldActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNotIn(FieldTenantID, vs...))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...int) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNotNull(FieldAgentID))
}

// NumberEQ applies the EQ predicate on the "number" field.
func NumberEQ(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEQ(FieldNumber, v))
}

// NumberNEQ applies the NEQ predicate on the "number" field.
func NumberNEQ(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNEQ(FieldNumber, v))
}

// NumberIn applies the In predicate on the "number" field.
func NumberIn(vs ...string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldIn(FieldNumber, vs...))
}

// NumberNotIn applies the NotIn predicate on the "number" field.
func NumberNotIn(vs ...string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNotIn(FieldNumber, vs...))
}

// NumberGT applies the GT predicate on the "number" field.
func NumberGT(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldGT(FieldNumber, v))
}

// NumberGTE applies the GTE predicate on the "number" field.
func NumberGTE(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldGTE(FieldNumber, v))
}

// NumberLT applies the LT predicate on the "number" field.
func NumberLT(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldLT(FieldNumber, v))
}

// NumberLTE applies the LTE predicate on the "number" field.
func NumberLTE(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldLTE(FieldNumber, v))
}

// NumberContains applies the Contains predicate on the "number" field.
func NumberContains(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldContains(FieldNumber, v))
}

// NumberHasPrefix applies the HasPrefix predicate on the "number" field.
func NumberHasPrefix(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldHasPrefix(FieldNumber, v))
}

// NumberHasSuffix applies the HasSuffix predicate on the "number" field.
func NumberHasSuffix(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldHasSuffix(FieldNumber, v))
}

// NumberEqualFold applies the EqualFold predicate on the "number" field.
func NumberEqualFold(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEqualFold(FieldNumber, v))
}

// NumberContainsFold applies the ContainsFold predicate on the "number" field.
func NumberContainsFold(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldContainsFold(FieldNumber, v))
}

// NormalizedEQ applies the EQ predicate on the "normalized" field.
func NormalizedEQ(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEQ(FieldNormalized, v))
}

// NormalizedNEQ applies the NEQ predicate on the "normalized" field.
func NormalizedNEQ(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNEQ(FieldNormalized, v))
}

// NormalizedIn applies the In predicate on the "normalized" field.
func NormalizedIn(vs ...string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldIn(FieldNormalized, vs...))
}

// NormalizedNotIn applies the NotIn predicate on the "normalized" field.
func NormalizedNotIn(vs ...string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNotIn(FieldNormalized, vs...))
}

// NormalizedGT applies the GT predicate on the "normalized" field.
func NormalizedGT(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldGT(FieldNormalized, v))
}

// NormalizedGTE applies the GTE predicate on the "normalized" field.
func NormalizedGTE(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldGTE(FieldNormalized, v))
}

// NormalizedLT applies the LT predicate on the "normalized" field.
func NormalizedLT(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldLT(FieldNormalized, v))
}

// NormalizedLTE applies the LTE predicate on the "normalized" field.
func NormalizedLTE(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldLTE(FieldNormalized, v))
}

// NormalizedContains applies the Contains predicate on the "normalized" field.
func NormalizedContains(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldContains(FieldNormalized, v))
}

// NormalizedHasPrefix applies the HasPrefix predicate on the "normalized" field.
func NormalizedHasPrefix(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldHasPrefix(FieldNormalized, v))
}

// NormalizedHasSuffix applies the HasSuffix predicate on the "normalized" field.
func NormalizedHasSuffix(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldHasSuffix(FieldNormalized, v))
}

// NormalizedEqualFold applies the EqualFold predicate on the "normalized" field.
func NormalizedEqualFold(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEqualFold(FieldNormalized, v))
}

// NormalizedContainsFold applies the ContainsFold predicate on the "normalized" field.
func NormalizedContainsFold(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldContainsFold(FieldNormalized, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelIsNil applies the IsNil predicate on the "label" field.
func LabelIsNil() predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldIsNull(FieldLabel))
}

// LabelNotNil applies the NotNil predicate on the "label" field.
func LabelNotNil() predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNotNull(FieldLabel))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldContainsFold(FieldLabel, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.PhoneNumber {
	return predicate.PhoneNumber(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.PhoneNumber {
	return predicate.PhoneNumber(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.PhoneNumber {
	return predicate.PhoneNumber(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.PhoneNumber {
	return predicate.PhoneNumber(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCallRecords applies the HasEdge predicate on the "call_records" edge.
func HasCallRecords() predicate.PhoneNumber {
	return predicate.PhoneNumber(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CallRecordsTable, CallRecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCallRecordsWith applies the HasEdge predicate on the "call_records" edge with a given conditions (other predicates).
func HasCallRecordsWith(preds ...predicate.CallRecord) predicate.PhoneNumber {
	return predicate.PhoneNumber(func(s *sql.Selector) {
		step := newCallRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PhoneNumber) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PhoneNumber) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PhoneNumber) predicate.PhoneNumber {
	return predicate.PhoneNumber(sql.NotPredicates(p))
}
