// Code generated by ent, DO NOT EDIT.

package tenant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tenant type in the database.
	Label = "tenant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCrmConnection holds the string denoting the crm_connection edge name in mutations.
	EdgeCrmConnection = "crm_connection"
	// EdgeBillingAccount holds the string denoting the billing_account edge name in mutations.
	EdgeBillingAccount = "billing_account"
	// EdgeAgents holds the string denoting the agents edge name in mutations.
	EdgeAgents = "agents"
	// EdgePhoneNumbers holds the string denoting the phone_numbers edge name in mutations.
	EdgePhoneNumbers = "phone_numbers"
	// EdgeCallRecords holds the string denoting the call_records edge name in mutations.
	EdgeCallRecords = "call_records"
	// EdgeSyncRuns holds the string denoting the sync_runs edge name in mutations.
	EdgeSyncRuns = "sync_runs"
	// Table holds the table name of the tenant in the database.
	Table = "tenants"
	// CrmConnectionTable is the table that holds the crm_connection relation/edge.
	CrmConnectionTable = "crm_connections"
	// CrmConnectionInverseTable is the table name for the CRMConnection entity.
	// It exists in this package in order to avoid circular dependency with the "crmconnection" package.
	CrmConnectionInverseTable = "crm_connections"
	// CrmConnectionColumn is the table column denoting the crm_connection relation/edge.
	CrmConnectionColumn = "tenant_id"
	// BillingAccountTable is the table that holds the billing_account relation/edge.
	BillingAccountTable = "billing_accounts"
	// BillingAccountInverseTable is the table name for the BillingAccount entity.
	// It exists in this package in order to avoid circular dependency with the "billingaccount" package.
	BillingAccountInverseTable = "billing_accounts"
	// BillingAccountColumn is the table column denoting the billing_account relation/edge.
	BillingAccountColumn = "tenant_id"
	// AgentsTable is the table that holds the agents relation/edge.
	AgentsTable = "agents"
	// AgentsInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentsInverseTable = "agents"
	// AgentsColumn is the table column denoting the agents relation/edge.
	AgentsColumn = "tenant_id"
	// PhoneNumbersTable is the table that holds the phone_numbers relation/edge.
	PhoneNumbersTable = "phone_numbers"
	// PhoneNumbersInverseTable is the table name for the PhoneNumber entity.
	// It exists in this package in order to avoid circular dependency with the "phonenumber" package.
	PhoneNumbersInverseTable = "phone_numbers"
	// PhoneNumbersColumn is the table column denoting the phone_numbers relation/edge.
	PhoneNumbersColumn = "tenant_id"
	// CallRecordsTable is the table that holds the call_records relation/edge.
	CallRecordsTable = "call_records"
	// CallRecordsInverseTable is the table name for the CallRecord entity.
	// It exists in this package in order to avoid circular dependency with the "callrecord" package.
	CallRecordsInverseTable = "call_records"
	// CallRecordsColumn is the table column denoting the call_records relation/edge.
	CallRecordsColumn = "tenant_id"
	// SyncRunsTable is the table that holds the sync_runs relation/edge.
	SyncRunsTable = "sync_runs"
	// SyncRunsInverseTable is the table name for the SyncRun entity.
	// It exists in this package in order to avoid circular dependency with the "syncrun" package.
	SyncRunsInverseTable = "sync_runs"
	// SyncRunsColumn is the table column denoting the sync_runs relation/edge.
	SyncRunsColumn = "tenant_id"
)

// Columns holds all SQL columns for tenant fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldTimezone,
	FieldActive,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Tenant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCrmConnectionField orders the results by crm_connection field.
func ByCrmConnectionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCrmConnectionStep(), sql.OrderByField(field, opts...))
	}
}

// ByBillingAccountField orders the results by billing_account field.
func ByBillingAccountField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBillingAccountStep(), sql.OrderByField(field, opts...))
	}
}

// ByAgentsCount orders the results by agents count.
func ByAgentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentsStep(), opts...)
	}
}

// ByAgents orders the results by agents terms.
func ByAgents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPhoneNumbersCount orders the results by phone_numbers count.
func ByPhoneNumbersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPhoneNumbersStep(), opts...)
	}
}

// ByPhoneNumbers orders the results by phone_numbers terms.
func ByPhoneNumbers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPhoneNumbersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCallRecordsCount orders the results by call_records count.
func ByCallRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCallRecordsStep(), opts...)
	}
}

// ByCallRecords orders the results by call_records terms.
func ByCallRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCallRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySyncRunsCount orders the results by sync_runs count.
func BySyncRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSyncRunsStep(), opts...)
	}
}

// BySyncRuns orders the results by sync_runs terms.
func BySyncRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSyncRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCrmConnectionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CrmConnectionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, CrmConnectionTable, CrmConnectionColumn),
	)
}
func newBillingAccountStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BillingAccountInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, BillingAccountTable, BillingAccountColumn),
	)
}
func newAgentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentsTable, AgentsColumn),
	)
}
func newPhoneNumbersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PhoneNumbersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PhoneNumbersTable, PhoneNumbersColumn),
	)
}
func newCallRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CallRecordsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CallRecordsTable, CallRecordsColumn),
	)
}
func newSyncRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SyncRunsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SyncRunsTable, SyncRunsColumn),
	)
}
