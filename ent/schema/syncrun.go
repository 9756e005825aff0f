package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ringledger/ringledger/pkg/models"
)

// SyncRun holds the schema definition for the SyncRun entity.
// One row per sync invocation; the durable ledger of what happened.
type SyncRun struct {
	ent.Schema
}

// Fields of the SyncRun.
func (SyncRun) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Comment("Tenant the run belongs to"),
		field.Enum("kind").
			Values("manual", "auto", "admin_backfill").
			Comment("What triggered the run"),
		field.Enum("status").
			Values("in_progress", "completed", "failed").
			Default("in_progress").
			Comment("Run status; completed and failed are terminal"),
		field.Time("requested_start").
			Optional().
			Nillable().
			Comment("Caller-supplied window start"),
		field.Time("requested_end").
			Optional().
			Nillable().
			Comment("Caller-supplied window end"),
		field.Time("effective_start").
			Optional().
			Nillable().
			Comment("Window start after policy adjustments"),
		field.Time("effective_end").
			Optional().
			Nillable().
			Comment("Window end after policy adjustments"),
		field.String("timezone").
			Default("America/New_York").
			Comment("Timezone used for chunking"),
		field.Time("bypassed_cutoff_at").
			Optional().
			Nillable().
			Comment("Plan-reset cutoff bypassed by an admin backfill"),
		field.JSON("page_trace", []models.PageTrace{}).
			Optional().
			Comment("Per-page request/response trace"),
		field.JSON("log_lines", []string{}).
			Optional().
			Comment("Free-text progress log"),
		field.JSON("skip_counts", map[string]int{}).
			Optional().
			Comment("Skip reason histogram"),
		field.JSON("skipped_samples", []map[string]interface{}{}).
			Optional().
			Comment("Bounded sample of skipped raw items (first 50)"),
		field.Int("total").
			Default(0).
			NonNegative().
			Comment("Total records fetched after dedup"),
		field.Int("inserted").
			Default(0).
			NonNegative().
			Comment("Records inserted"),
		field.Int("updated").
			Default(0).
			NonNegative().
			Comment("Records updated"),
		field.Int("skipped").
			Default(0).
			NonNegative().
			Comment("Records skipped"),
		field.Int64("api_ms").
			Default(0).
			Comment("Milliseconds spent in upstream API calls"),
		field.Int64("total_ms").
			Default(0).
			Comment("Total run duration in milliseconds"),
		field.String("error").
			Optional().
			Comment("Failure message for failed runs"),
		field.String("triggered_by").
			Optional().
			MaxLen(100).
			Comment("Actor identifier (admin backfills)"),
		field.Time("started_at").
			Default(time.Now).
			Immutable().
			Comment("When the run was opened"),
		field.Time("finished_at").
			Optional().
			Nillable().
			Comment("When the run reached a terminal status"),
	}
}

// Edges of the SyncRun.
func (SyncRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("sync_runs").
			Field("tenant_id").
			Unique().
			Required().
			Comment("Owning tenant"),
	}
}

// Indexes of the SyncRun.
func (SyncRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("status"),
		index.Fields("kind"),
		index.Fields("started_at"),
	}
}
