package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BillingAccount holds the schema definition for the BillingAccount entity.
// Per-tenant plan and per-minute rate configuration.
type BillingAccount struct {
	ent.Schema
}

// Fields of the BillingAccount.
func (BillingAccount) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Comment("Tenant the account belongs to"),
		field.Int("inbound_rate_cents").
			Default(0).
			NonNegative().
			Comment("Inbound rate in cents per minute"),
		field.Int("outbound_rate_cents").
			Default(0).
			NonNegative().
			Comment("Outbound rate in cents per minute"),
		field.Enum("inbound_plan").
			Values("metered", "unlimited", "none").
			Default("metered").
			Comment("Inbound billing plan type"),
		field.Time("calls_reset_at").
			Optional().
			Nillable().
			Comment("Cutoff bounding how far back non-admin syncs may look"),
		field.Int64("monthly_spend_cents").
			Default(0).
			Comment("Aggregated spend for the current month, maintained by the reconciliation job"),
		field.String("stripe_customer_id").
			Optional().
			Nillable().
			MaxLen(100).
			Comment("Stripe customer for metered usage reporting"),
		field.String("stripe_subscription_item_id").
			Optional().
			MaxLen(100).
			Comment("Stripe subscription item receiving usage records"),
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

// Edges of the BillingAccount.
func (BillingAccount) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("billing_account").
			Field("tenant_id").
			Unique().
			Required().
			Comment("Account owner"),
	}
}

// Indexes of the BillingAccount.
func (BillingAccount) Indexes() []ent.Index {
	return []ent.Index{
		// Unique: one billing account per tenant
		index.Fields("tenant_id").Unique(),
	}
}
