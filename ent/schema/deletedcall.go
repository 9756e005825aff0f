package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeletedCall holds the schema definition for the DeletedCall entity.
// Tenant-scoped exclusion set: calls removed by the surrounding application
// that the sync pipeline must not re-admit outside admin backfills.
type DeletedCall struct {
	ent.Schema
}

// Fields of the DeletedCall.
func (DeletedCall) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Comment("Tenant the deletion belongs to"),
		field.String("provider_call_id").
			NotEmpty().
			MaxLen(100).
			Comment("Upstream identifier of the deleted call"),
		field.Int("deleted_by").
			Optional().
			Nillable().
			Comment("User who deleted the call"),
		field.Time("deleted_at").
			Default(time.Now).
			Immutable().
			Comment("When the call was deleted"),
	}
}

// Indexes of the DeletedCall.
func (DeletedCall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		// Unique: one tombstone per call per tenant
		index.Fields("tenant_id", "provider_call_id").Unique(),
	}
}
