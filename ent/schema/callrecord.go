package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CallRecord holds the schema definition for the CallRecord entity.
// One durable, tenant-scoped row per upstream call; the provider call ID is
// the idempotency anchor for sync upserts.
type CallRecord struct {
	ent.Schema
}

// Fields of the CallRecord.
func (CallRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Comment("Tenant the call belongs to"),
		field.String("provider_call_id").
			NotEmpty().
			MaxLen(100).
			Comment("Upstream call identifier (unique per tenant)"),
		field.Enum("direction").
			Values("inbound", "outbound").
			Comment("Call direction"),
		field.String("from_number").
			NotEmpty().
			MaxLen(20).
			Comment("Caller's phone number"),
		field.String("to_number").
			Optional().
			MaxLen(20).
			Comment("Recipient's phone number"),
		field.String("status").
			Optional().
			MaxLen(50).
			Comment("Upstream call status (completed, no-answer, voicemail, ...)"),
		field.Int("duration").
			Default(0).
			NonNegative().
			Comment("Call duration in seconds"),
		field.Float("cost").
			Default(0.0).
			Min(0).
			Comment("Computed cost in USD, rounded to 2 decimal places"),
		field.String("display_cost").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("Non-numeric cost label (e.g. INCLUDED) that suppresses billing"),
		field.Int("agent_id").
			Optional().
			Nillable().
			Comment("Resolved agent"),
		field.Int("phone_number_id").
			Optional().
			Nillable().
			Comment("Resolved tenant phone number"),
		field.String("contact_name").
			Default("Unknown").
			MaxLen(255).
			Comment("Display name built from upstream contact fields"),
		field.String("recording_url").
			Optional().
			Nillable().
			Comment("URL to call recording"),
		field.String("transcript_id").
			Optional().
			Nillable().
			MaxLen(100).
			Comment("Upstream transcript identifier"),
		field.String("message_id").
			Optional().
			Nillable().
			MaxLen(100).
			Comment("Upstream message identifier (voicemail, SMS thread)"),
		field.Bool("is_test").
			Default(false).
			Comment("Upstream-flagged test call"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When the call started"),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("When the call ended"),
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

// Edges of the CallRecord.
func (CallRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("call_records").
			Field("tenant_id").
			Unique().
			Required().
			Comment("Owning tenant"),
		edge.From("agent", Agent.Type).
			Ref("call_records").
			Field("agent_id").
			Unique().
			Comment("Agent who handled the call"),
		edge.From("phone_number", PhoneNumber.Type).
			Ref("call_records").
			Field("phone_number_id").
			Unique().
			Comment("Tenant number involved in the call"),
		edge.To("usage_entry", UsageLedgerEntry.Type).
			Unique().
			Comment("Usage ledger entry for billable calls"),
	}
}

// Indexes of the CallRecord.
func (CallRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("agent_id"),
		index.Fields("direction"),
		index.Fields("status"),
		index.Fields("started_at"),
		// Unique: the idempotency anchor for sync upserts
		index.Fields("tenant_id", "provider_call_id").Unique(),
	}
}
