// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider_user_id", Type: field.TypeString, Size: 100},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "verified", Type: field.TypeBool, Default: false},
		{Name: "last_activity_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeInt},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agents_tenants_agents",
				Columns:    []*schema.Column{AgentsColumns[9]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agent_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[9]},
			},
			{
				Name:    "agent_active",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[4]},
			},
			{
				Name:    "agent_tenant_id_provider_user_id",
				Unique:  true,
				Columns: []*schema.Column{AgentsColumns[9], AgentsColumns[1]},
			},
		},
	}
	// BillingAccountsColumns holds the columns for the "billing_accounts" table.
	BillingAccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "inbound_rate_cents", Type: field.TypeInt, Default: 0},
		{Name: "outbound_rate_cents", Type: field.TypeInt, Default: 0},
		{Name: "inbound_plan", Type: field.TypeEnum, Enums: []string{"metered", "unlimited", "none"}, Default: "metered"},
		{Name: "calls_reset_at", Type: field.TypeTime, Nullable: true},
		{Name: "monthly_spend_cents", Type: field.TypeInt64, Default: 0},
		{Name: "stripe_customer_id", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "stripe_subscription_item_id", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeInt, Unique: true},
	}
	// BillingAccountsTable holds the schema information for the "billing_accounts" table.
	BillingAccountsTable = &schema.Table{
		Name:       "billing_accounts",
		Columns:    BillingAccountsColumns,
		PrimaryKey: []*schema.Column{BillingAccountsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "billing_accounts_tenants_billing_account",
				Columns:    []*schema.Column{BillingAccountsColumns[10]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "billingaccount_tenant_id",
				Unique:  true,
				Columns: []*schema.Column{BillingAccountsColumns[10]},
			},
		},
	}
	// CrmConnectionsColumns holds the columns for the "crm_connections" table.
	CrmConnectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "location_id", Type: field.TypeString, Size: 100},
		{Name: "access_token", Type: field.TypeString},
		{Name: "refresh_token", Type: field.TypeString},
		{Name: "token_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "auto_sync", Type: field.TypeBool, Default: false},
		{Name: "sync_interval_minutes", Type: field.TypeInt, Default: 15},
		{Name: "last_sync_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_sync_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeInt, Unique: true},
	}
	// CrmConnectionsTable holds the schema information for the "crm_connections" table.
	CrmConnectionsTable = &schema.Table{
		Name:       "crm_connections",
		Columns:    CrmConnectionsColumns,
		PrimaryKey: []*schema.Column{CrmConnectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "crm_connections_tenants_crm_connection",
				Columns:    []*schema.Column{CrmConnectionsColumns[11]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "crmconnection_location_id",
				Unique:  false,
				Columns: []*schema.Column{CrmConnectionsColumns[1]},
			},
			{
				Name:    "crmconnection_auto_sync",
				Unique:  false,
				Columns: []*schema.Column{CrmConnectionsColumns[5]},
			},
			{
				Name:    "crmconnection_last_sync_at",
				Unique:  false,
				Columns: []*schema.Column{CrmConnectionsColumns[7]},
			},
			{
				Name:    "crmconnection_tenant_id",
				Unique:  true,
				Columns: []*schema.Column{CrmConnectionsColumns[11]},
			},
		},
	}
	// CallRecordsColumns holds the columns for the "call_records" table.
	CallRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider_call_id", Type: field.TypeString, Size: 100},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"inbound", "outbound"}},
		{Name: "from_number", Type: field.TypeString, Size: 20},
		{Name: "to_number", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "status", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "duration", Type: field.TypeInt, Default: 0},
		{Name: "cost", Type: field.TypeFloat64, Default: 0},
		{Name: "display_cost", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "contact_name", Type: field.TypeString, Size: 255, Default: "Unknown"},
		{Name: "recording_url", Type: field.TypeString, Nullable: true},
		{Name: "transcript_id", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "message_id", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "is_test", Type: field.TypeBool, Default: false},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt, Nullable: true},
		{Name: "phone_number_id", Type: field.TypeInt, Nullable: true},
		{Name: "tenant_id", Type: field.TypeInt},
	}
	// CallRecordsTable holds the schema information for the "call_records" table.
	CallRecordsTable = &schema.Table{
		Name:       "call_records",
		Columns:    CallRecordsColumns,
		PrimaryKey: []*schema.Column{CallRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "call_records_agents_call_records",
				Columns:    []*schema.Column{CallRecordsColumns[18]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "call_records_phone_numbers_call_records",
				Columns:    []*schema.Column{CallRecordsColumns[19]},
				RefColumns: []*schema.Column{PhoneNumbersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "call_records_tenants_call_records",
				Columns:    []*schema.Column{CallRecordsColumns[20]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "callrecord_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{CallRecordsColumns[20]},
			},
			{
				Name:    "callrecord_agent_id",
				Unique:  false,
				Columns: []*schema.Column{CallRecordsColumns[18]},
			},
			{
				Name:    "callrecord_direction",
				Unique:  false,
				Columns: []*schema.Column{CallRecordsColumns[2]},
			},
			{
				Name:    "callrecord_status",
				Unique:  false,
				Columns: []*schema.Column{CallRecordsColumns[5]},
			},
			{
				Name:    "callrecord_started_at",
				Unique:  false,
				Columns: []*schema.Column{CallRecordsColumns[14]},
			},
			{
				Name:    "callrecord_tenant_id_provider_call_id",
				Unique:  true,
				Columns: []*schema.Column{CallRecordsColumns[20], CallRecordsColumns[1]},
			},
		},
	}
	// DeletedCallsColumns holds the columns for the "deleted_calls" table.
	DeletedCallsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeInt},
		{Name: "provider_call_id", Type: field.TypeString, Size: 100},
		{Name: "deleted_by", Type: field.TypeInt, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime},
	}
	// DeletedCallsTable holds the schema information for the "deleted_calls" table.
	DeletedCallsTable = &schema.Table{
		Name:       "deleted_calls",
		Columns:    DeletedCallsColumns,
		PrimaryKey: []*schema.Column{DeletedCallsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deletedcall_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{DeletedCallsColumns[1]},
			},
			{
				Name:    "deletedcall_tenant_id_provider_call_id",
				Unique:  true,
				Columns: []*schema.Column{DeletedCallsColumns[1], DeletedCallsColumns[2]},
			},
		},
	}
	// PhoneNumbersColumns holds the columns for the "phone_numbers" table.
	PhoneNumbersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "number", Type: field.TypeString, Size: 20},
		{Name: "normalized", Type: field.TypeString, Size: 20},
		{Name: "label", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt, Nullable: true},
		{Name: "tenant_id", Type: field.TypeInt},
	}
	// PhoneNumbersTable holds the schema information for the "phone_numbers" table.
	PhoneNumbersTable = &schema.Table{
		Name:       "phone_numbers",
		Columns:    PhoneNumbersColumns,
		PrimaryKey: []*schema.Column{PhoneNumbersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "phone_numbers_agents_phone_numbers",
				Columns:    []*schema.Column{PhoneNumbersColumns[7]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "phone_numbers_tenants_phone_numbers",
				Columns:    []*schema.Column{PhoneNumbersColumns[8]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "phonenumber_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{PhoneNumbersColumns[8]},
			},
			{
				Name:    "phonenumber_agent_id",
				Unique:  false,
				Columns: []*schema.Column{PhoneNumbersColumns[7]},
			},
			{
				Name:    "phonenumber_normalized",
				Unique:  false,
				Columns: []*schema.Column{PhoneNumbersColumns[2]},
			},
			{
				Name:    "phonenumber_tenant_id_number",
				Unique:  true,
				Columns: []*schema.Column{PhoneNumbersColumns[8], PhoneNumbersColumns[1]},
			},
		},
	}
	// SyncRunsColumns holds the columns for the "sync_runs" table.
	SyncRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"manual", "auto", "admin_backfill"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "completed", "failed"}, Default: "in_progress"},
		{Name: "requested_start", Type: field.TypeTime, Nullable: true},
		{Name: "requested_end", Type: field.TypeTime, Nullable: true},
		{Name: "effective_start", Type: field.TypeTime, Nullable: true},
		{Name: "effective_end", Type: field.TypeTime, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Default: "America/New_York"},
		{Name: "bypassed_cutoff_at", Type: field.TypeTime, Nullable: true},
		{Name: "page_trace", Type: field.TypeJSON, Nullable: true},
		{Name: "log_lines", Type: field.TypeJSON, Nullable: true},
		{Name: "skip_counts", Type: field.TypeJSON, Nullable: true},
		{Name: "skipped_samples", Type: field.TypeJSON, Nullable: true},
		{Name: "total", Type: field.TypeInt, Default: 0},
		{Name: "inserted", Type: field.TypeInt, Default: 0},
		{Name: "updated", Type: field.TypeInt, Default: 0},
		{Name: "skipped", Type: field.TypeInt, Default: 0},
		{Name: "api_ms", Type: field.TypeInt64, Default: 0},
		{Name: "total_ms", Type: field.TypeInt64, Default: 0},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "triggered_by", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "tenant_id", Type: field.TypeInt},
	}
	// SyncRunsTable holds the schema information for the "sync_runs" table.
	SyncRunsTable = &schema.Table{
		Name:       "sync_runs",
		Columns:    SyncRunsColumns,
		PrimaryKey: []*schema.Column{SyncRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sync_runs_tenants_sync_runs",
				Columns:    []*schema.Column{SyncRunsColumns[23]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "syncrun_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{SyncRunsColumns[23]},
			},
			{
				Name:    "syncrun_status",
				Unique:  false,
				Columns: []*schema.Column{SyncRunsColumns[2]},
			},
			{
				Name:    "syncrun_kind",
				Unique:  false,
				Columns: []*schema.Column{SyncRunsColumns[1]},
			},
			{
				Name:    "syncrun_started_at",
				Unique:  false,
				Columns: []*schema.Column{SyncRunsColumns[21]},
			},
		},
	}
	// TenantsColumns holds the columns for the "tenants" table.
	TenantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "timezone", Type: field.TypeString, Default: "America/New_York"},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TenantsTable holds the schema information for the "tenants" table.
	TenantsTable = &schema.Table{
		Name:       "tenants",
		Columns:    TenantsColumns,
		PrimaryKey: []*schema.Column{TenantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tenant_active",
				Unique:  false,
				Columns: []*schema.Column{TenantsColumns[3]},
			},
		},
	}
	// UsageLedgerEntriesColumns holds the columns for the "usage_ledger_entries" table.
	UsageLedgerEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeInt},
		{Name: "amount_cents", Type: field.TypeInt64},
		{Name: "entry_type", Type: field.TypeEnum, Enums: []string{"inbound_call", "outbound_call"}},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "reported_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "call_record_id", Type: field.TypeInt, Unique: true},
	}
	// UsageLedgerEntriesTable holds the schema information for the "usage_ledger_entries" table.
	UsageLedgerEntriesTable = &schema.Table{
		Name:       "usage_ledger_entries",
		Columns:    UsageLedgerEntriesColumns,
		PrimaryKey: []*schema.Column{UsageLedgerEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "usage_ledger_entries_call_records_usage_entry",
				Columns:    []*schema.Column{UsageLedgerEntriesColumns[8]},
				RefColumns: []*schema.Column{CallRecordsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usageledgerentry_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{UsageLedgerEntriesColumns[1]},
			},
			{
				Name:    "usageledgerentry_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{UsageLedgerEntriesColumns[4]},
			},
			{
				Name:    "usageledgerentry_reported_at",
				Unique:  false,
				Columns: []*schema.Column{UsageLedgerEntriesColumns[5]},
			},
			{
				Name:    "usageledgerentry_call_record_id",
				Unique:  true,
				Columns: []*schema.Column{UsageLedgerEntriesColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		BillingAccountsTable,
		CrmConnectionsTable,
		CallRecordsTable,
		DeletedCallsTable,
		PhoneNumbersTable,
		SyncRunsTable,
		TenantsTable,
		UsageLedgerEntriesTable,
	}
)

func init() {
	AgentsTable.ForeignKeys[0].RefTable = TenantsTable
	BillingAccountsTable.ForeignKeys[0].RefTable = TenantsTable
	CrmConnectionsTable.ForeignKeys[0].RefTable = TenantsTable
	CallRecordsTable.ForeignKeys[0].RefTable = AgentsTable
	CallRecordsTable.ForeignKeys[1].RefTable = PhoneNumbersTable
	CallRecordsTable.ForeignKeys[2].RefTable = TenantsTable
	PhoneNumbersTable.ForeignKeys[0].RefTable = AgentsTable
	PhoneNumbersTable.ForeignKeys[1].RefTable = TenantsTable
	SyncRunsTable.ForeignKeys[0].RefTable = TenantsTable
	UsageLedgerEntriesTable.ForeignKeys[0].RefTable = CallRecordsTable
}
