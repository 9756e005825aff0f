// Code generated by ent, DO NOT EDIT.

package usageledgerentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ringledger/ringledger/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldEQ(FieldTenantID, v))
}

// CallRecordID applies equality check predicate on the "call_record_id" field. It's identical to CallRecordIDEQ.
func CallRecordID(v int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldEQ(FieldCallRecordID, v))
}

// AmountCents applies equality check predicate on the "amount_cents" field. It's identical to AmountCentsEQ.
func AmountCents(v int64) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldEQ(FieldAmountCents, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldEQ(FieldOccurredAt, v))
}

// ReportedAt applies equality check predicate on the "reported_at" field. It's identical to ReportedAtEQ.
func ReportedAt(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldEQ(FieldReportedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldLTE(FieldTenantID, v))
}

// CallRecordIDEQ applies the EQ predicate on the "call_record_id" field.
func CallRecordIDEQ(v int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldEQ(FieldCallRecordID, v))
}

// CallRecordIDNEQ applies the NEQ predicate on the "call_record_id" field.
func CallRecordIDNEQ(v int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNEQ(FieldCallRecordID, v))
}

// CallRecordIDIn applies the In predicate on the "call_record_id" field.
func CallRecordIDIn(vs ...int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldIn(FieldCallRecordID, vs...))
}

// CallRecordIDNotIn applies the NotIn predicate on the "call_record_id" field.
func CallRecordIDNotIn(vs ...int) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNotIn(FieldCallRecordID, vs...))
}

// AmountCentsEQ applies the EQ predicate on the "amount_cents" field.
func AmountCentsEQ(v int64) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldEQ(FieldAmountCents, v))
}

// AmountCentsNEQ applies the NEQ predicate on the "amount_cents" field.
func AmountCentsNEQ(v int64) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNEQ(FieldAmountCents, v))
}

// AmountCentsIn applies the In predicate on the "amount_cents" field.
func AmountCentsIn(vs ...int64) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldIn(FieldAmountCents, vs...))
}

// AmountCentsNotIn applies the NotIn predicate on the "amount_cents" field.
func AmountCentsNotIn(vs ...int64) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNotIn(FieldAmountCents, vs...))
}

// AmountCentsGT applies the GT predicate on the "amount_cents" field.
func AmountCentsGT(v int64) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldGT(FieldAmountCents, v))
}

// AmountCentsGTE applies the GTE predicate on the "amount_cents" field.
func AmountCentsGTE(v int64) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldGTE(FieldAmountCents, v))
}

// AmountCentsLT applies the LT predicate on the "amount_cents" field.
func AmountCentsLT(v int64) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldLT(FieldAmountCents, v))
}

// AmountCentsLTE applies the LTE predicate on the "amount_cents" field.
func AmountCentsLTE(v int64) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldLTE(FieldAmountCents, v))
}

// EntryTypeEQ applies the EQ predicate on the "entry_type" field.
func EntryTypeEQ(v EntryType) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldEQ(FieldEntryType, v))
}

// EntryTypeNEQ applies the NEQ predicate on the "entry_type" field.
func EntryTypeNEQ(v EntryType) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNEQ(FieldEntryType, v))
}

// EntryTypeIn applies the In predicate on the "entry_type" field.
func EntryTypeIn(vs ...EntryType) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldIn(FieldEntryType, vs...))
}

// EntryTypeNotIn applies the NotIn predicate on the "entry_type" field.
func EntryTypeNotIn(vs ...EntryType) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNotIn(FieldEntryType, vs...))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldLTE(FieldOccurredAt, v))
}

// ReportedAtEQ applies the EQ predicate on the "reported_at" field.
func ReportedAtEQ(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldEQ(FieldReportedAt, v))
}

// ReportedAtNEQ applies the NEQ predicate on the "reported_at" field.
func ReportedAtNEQ(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNEQ(FieldReportedAt, v))
}

// ReportedAtIn applies the In predicate on the "reported_at" field.
func ReportedAtIn(vs ...time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldIn(FieldReportedAt, vs...))
}

// ReportedAtNotIn applies the NotIn predicate on the "reported_at" field.
func ReportedAtNotIn(vs ...time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNotIn(FieldReportedAt, vs...))
}

// ReportedAtGT applies the GT predicate on the "reported_at" field.
func ReportedAtGT(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldGT(FieldReportedAt, v))
}

// ReportedAtGTE applies the GTE predicate on the "reported_at" field.
func ReportedAtGTE(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldGTE(FieldReportedAt, v))
}

// ReportedAtLT applies the LT predicate on the "reported_at" field.
func ReportedAtLT(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldLT(FieldReportedAt, v))
}

// ReportedAtLTE applies the LTE predicate on the "reported_at" field.
func ReportedAtLTE(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldLTE(FieldReportedAt, v))
}

// ReportedAtIsNil applies the IsNil predicate on the "reported_at" field.
func ReportedAtIsNil() predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldIsNull(FieldReportedAt))
}

// ReportedAtNotNil applies the NotNil predicate on the "reported_at" field.
func ReportedAtNotNil() predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNotNull(FieldReportedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCallRecord applies the HasEdge predicate on the "call_record" edge.
func HasCallRecord() predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, CallRecordTable, CallRecordColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCallRecordWith applies the HasEdge predicate on the "call_record" edge with a given conditions (other predicates).
func HasCallRecordWith(preds ...predicate.CallRecord) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(func(s *sql.Selector) {
		step := newCallRecordStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UsageLedgerEntry) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UsageLedgerEntry) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UsageLedgerEntry) predicate.UsageLedgerEntry {
	return predicate.UsageLedgerEntry(sql.NotPredicates(p))
}
