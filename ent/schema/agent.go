package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Comment("Tenant the agent belongs to"),
		field.String("provider_user_id").
			NotEmpty().
			MaxLen(100).
			Comment("Agent's user ID in the upstream CRM"),
		field.String("name").
			NotEmpty().
			MaxLen(255).
			Comment("Agent display name"),
		field.String("email").
			Optional().
			MaxLen(255).
			Comment("Agent email"),
		field.Bool("active").
			Default(true).
			Comment("Whether the agent is active"),
		field.Bool("verified").
			Default(false).
			Comment("Set once call activity has been observed for the agent"),
		field.Time("last_activity_at").
			Optional().
			Nillable().
			Comment("Most recent call activity observed during sync"),
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

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("agents").
			Field("tenant_id").
			Unique().
			Required().
			Comment("Owning tenant"),
		edge.To("phone_numbers", PhoneNumber.Type),
		edge.To("call_records", CallRecord.Type),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("active"),
		// Unique: one agent per upstream user per tenant
		index.Fields("tenant_id", "provider_user_id").Unique(),
	}
}
