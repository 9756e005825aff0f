package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Tenant holds the schema definition for the Tenant entity.
type Tenant struct {
	ent.Schema
}

// Fields of the Tenant.
func (Tenant) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(255).
			Comment("Display name of the customer account"),
		field.String("timezone").
			Default("America/New_York").
			Comment("IANA timezone used for date-window math"),
		field.Bool("active").
			Default(true).
			Comment("Whether the tenant is active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Tenant.
func (Tenant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("crm_connection", CRMConnection.Type).
			Unique().
			Comment("Upstream CRM credentials for this tenant"),
		edge.To("billing_account", BillingAccount.Type).
			Unique().
			Comment("Plan and rate configuration"),
		edge.To("agents", Agent.Type),
		edge.To("phone_numbers", PhoneNumber.Type),
		edge.To("call_records", CallRecord.Type),
		edge.To("sync_runs", SyncRun.Type),
	}
}

// Indexes of the Tenant.
func (Tenant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active"),
	}
}
