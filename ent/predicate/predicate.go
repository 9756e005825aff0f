// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// BillingAccount is the predicate function for billingaccount builders.
type BillingAccount func(*sql.Selector)

// CRMConnection is the predicate function for crmconnection builders.
type CRMConnection func(*sql.Selector)

// CallRecord is the predicate function for callrecord builders.
type CallRecord func(*sql.Selector)

// DeletedCall is the predicate function for deletedcall builders.
type DeletedCall func(*sql.Selector)

// PhoneNumber is the predicate function for phonenumber builders.
type PhoneNumber func(*sql.Selector)

// SyncRun is the predicate function for syncrun builders.
type SyncRun func(*sql.Selector)

// Tenant is the predicate function for tenant builders.
type Tenant func(*sql.Selector)

// UsageLedgerEntry is the predicate function for usageledgerentry builders.
type UsageLedgerEntry func(*sql.Selector)
