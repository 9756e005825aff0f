package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageLedgerEntry holds the schema definition for the UsageLedgerEntry entity.
// Exactly one row per billable call record, enforced by a unique constraint on
// call_record_id plus a conflict-resolving upsert in the ledger writer.
type UsageLedgerEntry struct {
	ent.Schema
}

// Fields of the UsageLedgerEntry.
func (UsageLedgerEntry) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Comment("Tenant the entry belongs to"),
		field.Int("call_record_id").
			Comment("Billable call this entry charges for"),
		field.Int64("amount_cents").
			NonNegative().
			Comment("Charge amount in currency minor units"),
		field.Enum("entry_type").
			Values("inbound_call", "outbound_call").
			Comment("What kind of usage the entry charges for"),
		field.Time("occurred_at").
			Comment("When the underlying call started"),
		field.Time("reported_at").
			Optional().
			Nillable().
			Comment("When the entry was pushed to the billing provider"),
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

// Edges of the UsageLedgerEntry.
func (UsageLedgerEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("call_record", CallRecord.Type).
			Ref("usage_entry").
			Field("call_record_id").
			Unique().
			Required().
			Comment("Charged call"),
	}
}

// Indexes of the UsageLedgerEntry.
func (UsageLedgerEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("occurred_at"),
		index.Fields("reported_at"),
		// Unique: at most one ledger entry per call
		index.Fields("call_record_id").Unique(),
	}
}
