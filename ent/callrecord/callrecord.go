// Code generated by ent, DO NOT EDIT.

package callrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the callrecord type in the database.
	Label = "call_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldProviderCallID holds the string denoting the provider_call_id field in the database.
	FieldProviderCallID = "provider_call_id"
	// FieldDirection holds the string denoting the direction field in the database.
	FieldDirection = "direction"
	// FieldFromNumber holds the string denoting the from_number field in the database.
	FieldFromNumber = "from_number"
	// FieldToNumber holds the string denoting the to_number field in the database.
	FieldToNumber = "to_number"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDuration holds the string denoting the duration field in the database.
	FieldDuration = "duration"
	// FieldCost holds the string denoting the cost field in the database.
	FieldCost = "cost"
	// FieldDisplayCost holds the string denoting the display_cost field in the database.
	FieldDisplayCost = "display_cost"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldPhoneNumberID holds the string denoting the phone_number_id field in the database.
	FieldPhoneNumberID = "phone_number_id"
	// FieldContactName holds the string denoting the contact_name field in the database.
	FieldContactName = "contact_name"
	// FieldRecordingURL holds the string denoting the recording_url field in the database.
	FieldRecordingURL = "recording_url"
	// FieldTranscriptID holds the string denoting the transcript_id field in the database.
	FieldTranscriptID = "transcript_id"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldIsTest holds the string denoting the is_test field in the database.
	FieldIsTest = "is_test"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTenant holds the string denoting the tenant edge name in mutations.
	EdgeTenant = "tenant"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// EdgePhoneNumber holds the string denoting the phone_number edge name in mutations.
	EdgePhoneNumber = "phone_number"
	// EdgeUsageEntry holds the string denoting the usage_entry edge name in mutations.
	EdgeUsageEntry = "usage_entry"
	// Table holds the table name of the callrecord in the database.
	Table = "call_records"
	// TenantTable is the table that holds the tenant relation/edge.
	TenantTable = "call_records"
	// TenantInverseTable is the table name for the Tenant entity.
	// It exists in this package in order to avoid circular dependency with the "tenant" package.
	TenantInverseTable = "tenants"
	// TenantColumn is the table column denoting the tenant relation/edge.
	TenantColumn = "tenant_id"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "call_records"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
	// PhoneNumberTable is the table that holds the phone_number relation/edge.
	PhoneNumberTable = "call_records"
	// PhoneNumberInverseTable is the table name for the PhoneNumber entity.
	// It exists in this package in order to avoid circular dependency with the "phonenumber" package.
	PhoneNumberInverseTable = "phone_numbers"
	// PhoneNumberColumn is the table column denoting the phone_number relation/edge.
	PhoneNumberColumn = "phone_number_id"
	// UsageEntryTable is the table that holds the usage_entry relation/edge.
	UsageEntryTable = "usage_ledger_entries"
	// UsageEntryInverseTable is the table name for the UsageLedgerEntry entity.
	// It exists in this package in order to avoid circular dependency with the "usageledgerentry" package.
	UsageEntryInverseTable = "usage_ledger_entries"
	// UsageEntryColumn is the table column denoting the usage_entry relation/edge.
	UsageEntryColumn = "call_record_id"
)

// Columns holds all SQL columns for callrecord fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldProviderCallID,
	FieldDirection,
	FieldFromNumber,
	FieldToNumber,
	FieldStatus,
	FieldDuration,
	FieldCost,
	FieldDisplayCost,
	FieldAgentID,
	FieldPhoneNumberID,
	FieldContactName,
	FieldRecordingURL,
	FieldTranscriptID,
	FieldMessageID,
	FieldIsTest,
	FieldStartedAt,
	FieldEndedAt,
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
	// ProviderCallIDValidator is a validator for the "provider_call_id" field. It is called by the builders before save.
	ProviderCallIDValidator func(string) error
	// FromNumberValidator is a validator for the "from_number" field. It is called by the builders before save.
	FromNumberValidator func(string) error
	// ToNumberValidator is a validator for the "to_number" field. It is called by the builders before save.
	ToNumberValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultDuration holds the default value on creation for the "duration" field.
	DefaultDuration int
	// DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	DurationValidator func(int) error
	// DefaultCost holds the default value on creation for the "cost" field.
	DefaultCost float64
	// CostValidator is a validator for the "cost" field. It is called by the builders before save.
	CostValidator func(float64) error
	// DisplayCostValidator is a validator for the "display_cost" field. It is called by the builders before save.
	DisplayCostValidator func(string) error
	// DefaultContactName holds the default value on creation for the "contact_name" field.
	DefaultContactName string
	// ContactNameValidator is a validator for the "contact_name" field. It is called by the builders before save.
	ContactNameValidator func(string) error
	// TranscriptIDValidator is a validator for the "transcript_id" field. It is called by the builders before save.
	TranscriptIDValidator func(string) error
	// MessageIDValidator is a validator for the "message_id" field. It is called by the builders before save.
	MessageIDValidator func(string) error
	// DefaultIsTest holds the default value on creation for the "is_test" field.
	DefaultIsTest bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Direction defines the type for the "direction" enum field.
type Direction string

// Direction values.
const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

func (d Direction) String() string {
	return string(d)
}

// DirectionValidator is a validator for the "direction" field enum values. It is called by the builders before save.
func DirectionValidator(d Direction) error {
	switch d {
	case DirectionInbound, DirectionOutbound:
		return nil
	default:
		return fmt.Errorf("callrecord: invalid enum value for direction field: %q", d)
	}
}

// OrderOption defines the ordering options for the CallRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByProviderCallID orders the results by the provider_call_id field.
func ByProviderCallID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderCallID, opts...).ToFunc()
}

// ByDirection orders the results by the direction field.
func ByDirection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirection, opts...).ToFunc()
}

// ByFromNumber orders the results by the from_number field.
func ByFromNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromNumber, opts...).ToFunc()
}

// ByToNumber orders the results by the to_number field.
func ByToNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToNumber, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDuration orders the results by the duration field.
func ByDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuration, opts...).ToFunc()
}

// ByCost orders the results by the cost field.
func ByCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCost, opts...).ToFunc()
}

// ByDisplayCost orders the results by the display_cost field.
func ByDisplayCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayCost, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByPhoneNumberID orders the results by the phone_number_id field.
func ByPhoneNumberID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhoneNumberID, opts...).ToFunc()
}

// ByContactName orders the results by the contact_name field.
func ByContactName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactName, opts...).ToFunc()
}

// ByRecordingURL orders the results by the recording_url field.
func ByRecordingURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordingURL, opts...).ToFunc()
}

// ByTranscriptID orders the results by the transcript_id field.
func ByTranscriptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptID, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByIsTest orders the results by the is_test field.
func ByIsTest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsTest, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
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

// ByAgentField orders the results by agent field.
func ByAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentStep(), sql.OrderByField(field, opts...))
	}
}

// ByPhoneNumberField orders the results by phone_number field.
func ByPhoneNumberField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPhoneNumberStep(), sql.OrderByField(field, opts...))
	}
}

// ByUsageEntryField orders the results by usage_entry field.
func ByUsageEntryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUsageEntryStep(), sql.OrderByField(field, opts...))
	}
}
func newTenantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TenantInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
	)
}
func newAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
	)
}
func newPhoneNumberStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PhoneNumberInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PhoneNumberTable, PhoneNumberColumn),
	)
}
func newUsageEntryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UsageEntryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, UsageEntryTable, UsageEntryColumn),
	)
}
