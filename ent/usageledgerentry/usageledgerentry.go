// Code generated by ent, DO NOT EDIT.

package usageledgerentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the usageledgerentry type in the database.
	Label = "usage_ledger_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldCallRecordID holds the string denoting the call_record_id field in the database.
	FieldCallRecordID = "call_record_id"
	// FieldAmountCents holds the string denoting the amount_cents field in the database.
	FieldAmountCents = "amount_cents"
	// FieldEntryType holds the string denoting the entry_type field in the database.
	FieldEntryType = "entry_type"
	// FieldOccurredAt holds the string denoting the occurred_at field in the database.
	FieldOccurredAt = "occurred_at"
	// FieldReportedAt holds the string denoting the reported_at field in the database.
	FieldReportedAt = "reported_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCallRecord holds the string denoting the call_record edge name in mutations.
	EdgeCallRecord = "call_record"
	// Table holds the table name of the usageledgerentry in the database.
	Table = "usage_ledger_entries"
	// CallRecordTable is the table that holds the call_record relation/edge.
	CallRecordTable = "usage_ledger_entries"
	// CallRecordInverseTable is the table name for the CallRecord entity.
	// It exists in this package in order to avoid circular dependency with the "callrecord" package.
	CallRecordInverseTable = "call_records"
	// CallRecordColumn is the table column denoting the call_record relation/edge.
	CallRecordColumn = "call_record_id"
)

// Columns holds all SQL columns for usageledgerentry fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldCallRecordID,
	FieldAmountCents,
	FieldEntryType,
	FieldOccurredAt,
	FieldReportedAt,
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
	// AmountCentsValidator is a validator for the "amount_cents" field. It is called by the builders before save.
	AmountCentsValidator func(int64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// EntryType defines the type for the "entry_type" enum field.
type EntryType string

// EntryType values.
const (
	EntryTypeInboundCall  EntryType = "inbound_call"
	EntryTypeOutboundCall EntryType = "outbound_call"
)

func (et EntryType) String() string {
	return string(et)
}

// EntryTypeValidator is a validator for the "entry_type" field enum values. It is called by the builders before save.
func EntryTypeValidator(et EntryType) error {
	switch et {
	case EntryTypeInboundCall, EntryTypeOutboundCall:
		return nil
	default:
		return fmt.Errorf("usageledgerentry: invalid enum value for entry_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the UsageLedgerEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByCallRecordID orders the results by the call_record_id field.
func ByCallRecordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallRecordID, opts...).ToFunc()
}

// ByAmountCents orders the results by the amount_cents field.
func ByAmountCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmountCents, opts...).ToFunc()
}

// ByEntryType orders the results by the entry_type field.
func ByEntryType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntryType, opts...).ToFunc()
}

// ByOccurredAt orders the results by the occurred_at field.
func ByOccurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurredAt, opts...).ToFunc()
}

// ByReportedAt orders the results by the reported_at field.
func ByReportedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCallRecordField orders the results by call_record field.
func ByCallRecordField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCallRecordStep(), sql.OrderByField(field, opts...))
	}
}
func newCallRecordStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CallRecordInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, CallRecordTable, CallRecordColumn),
	)
}
