package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CRMConnection holds the schema definition for the CRMConnection entity.
// One per tenant: the stored OAuth token pair and upstream location identifier.
type CRMConnection struct {
	ent.Schema
}

// Fields of the CRMConnection.
func (CRMConnection) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Comment("Tenant that owns this connection"),
		field.String("location_id").
			NotEmpty().
			MaxLen(100).
			Comment("Upstream location identifier"),
		field.String("access_token").
			Sensitive().
			Comment("OAuth access token"),
		field.String("refresh_token").
			Sensitive().
			Comment("OAuth refresh token"),
		field.Time("token_expires_at").
			Optional().
			Nillable().
			Comment("When the access token expires"),
		field.Bool("auto_sync").
			Default(false).
			Comment("Automatically sync call records on a schedule"),
		field.Int("sync_interval_minutes").
			Default(15).
			Positive().
			Comment("Auto-sync interval in minutes"),
		field.Time("last_sync_at").
			Optional().
			Nillable().
			Comment("Last successful sync timestamp"),
		field.String("last_sync_error").
			Optional().
			Comment("Last sync error message"),
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

// Edges of the CRMConnection.
func (CRMConnection) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("crm_connection").
			Field("tenant_id").
			Unique().
			Required().
			Comment("Connection owner"),
	}
}

// Indexes of the CRMConnection.
func (CRMConnection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("location_id"),
		index.Fields("auto_sync"),
		index.Fields("last_sync_at"),
		// Unique: one connection per tenant
		index.Fields("tenant_id").Unique(),
	}
}
