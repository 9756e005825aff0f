package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PhoneNumber holds the schema definition for the PhoneNumber entity.
type PhoneNumber struct {
	ent.Schema
}

// Fields of the PhoneNumber.
func (PhoneNumber) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Comment("Tenant that owns the number"),
		field.Int("agent_id").
			Optional().
			Nillable().
			Comment("Agent the number is assigned to"),
		field.String("number").
			NotEmpty().
			MaxLen(20).
			Comment("Phone number (E.164 format)"),
		field.String("normalized").
			NotEmpty().
			MaxLen(20).
			Comment("Digits-only national number used for matching"),
		field.String("label").
			Optional().
			MaxLen(100).
			Comment("Friendly label (e.g. Sales line)"),
		field.Bool("active").
			Default(true).
			Comment("Whether the number is in service"),
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

// Edges of the PhoneNumber.
func (PhoneNumber) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("phone_numbers").
			Field("tenant_id").
			Unique().
			Required().
			Comment("Owning tenant"),
		edge.From("agent", Agent.Type).
			Ref("phone_numbers").
			Field("agent_id").
			Unique().
			Comment("Assigned agent"),
		edge.To("call_records", CallRecord.Type),
	}
}

// Indexes of the PhoneNumber.
func (PhoneNumber) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("agent_id"),
		index.Fields("normalized"),
		// Unique: one row per number per tenant
		index.Fields("tenant_id", "number").Unique(),
	}
}
