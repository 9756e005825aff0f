package callsync

import (
	"context"
	"math"
	"time"

	"github.com/ringledger/ringledger/ent"
	"github.com/ringledger/ringledger/ent/callrecord"
	"github.com/ringledger/ringledger/ent/usageledgerentry"
)

// persistOutcome classifies what the ledger writer did with one record.
type persistOutcome int

const (
	outcomeInserted persistOutcome = iota
	outcomeUpdated
	outcomeSkipped
)

// ledgerWriter idempotently persists normalized calls keyed by upstream ID
// and keeps the usage ledger in step for billable records.
type ledgerWriter struct {
	db       *ent.Client
	tenantID int
}

// persist inserts or updates the call record. Persistence errors are
// absorbed as skips so one bad record cannot block the rest of the run.
func (w *ledgerWriter) persist(ctx context.Context, nc *NormalizedCall) (persistOutcome, SkipReason, error) {
	existing, err := w.db.CallRecord.
		Query().
		Where(
			callrecord.TenantIDEQ(w.tenantID),
			callrecord.ProviderCallIDEQ(nc.ProviderCallID),
		).
		Only(ctx)

	if err != nil && !ent.IsNotFound(err) {
		return outcomeSkipped, SkipUpdateError, err
	}

	if existing != nil {
		updated, err := w.applyUpdate(ctx, existing, nc)
		if err != nil {
			return outcomeSkipped, SkipUpdateError, err
		}
		if err := w.writeUsage(ctx, updated, nc); err != nil {
			return outcomeSkipped, SkipUpdateError, err
		}
		return outcomeUpdated, "", nil
	}

	created, err := w.create(ctx, nc)
	if ent.IsConstraintError(err) {
		// lost an insert race with a concurrent run; converge by updating
		existing, qerr := w.db.CallRecord.
			Query().
			Where(
				callrecord.TenantIDEQ(w.tenantID),
				callrecord.ProviderCallIDEQ(nc.ProviderCallID),
			).
			Only(ctx)
		if qerr != nil {
			return outcomeSkipped, SkipInsertError, qerr
		}
		updated, uerr := w.applyUpdate(ctx, existing, nc)
		if uerr != nil {
			return outcomeSkipped, SkipUpdateError, uerr
		}
		if uerr := w.writeUsage(ctx, updated, nc); uerr != nil {
			return outcomeSkipped, SkipUpdateError, uerr
		}
		return outcomeUpdated, "", nil
	}
	if err != nil {
		return outcomeSkipped, SkipInsertError, err
	}

	if err := w.writeUsage(ctx, created, nc); err != nil {
		return outcomeSkipped, SkipInsertError, err
	}

	return outcomeInserted, "", nil
}

func (w *ledgerWriter) create(ctx context.Context, nc *NormalizedCall) (*ent.CallRecord, error) {
	builder := w.db.CallRecord.
		Create().
		SetTenantID(w.tenantID).
		SetProviderCallID(nc.ProviderCallID).
		SetDirection(callrecord.Direction(nc.Direction)).
		SetFromNumber(nc.FromNumber).
		SetToNumber(nc.ToNumber).
		SetStatus(nc.Status).
		SetDuration(nc.Duration).
		SetCost(nc.Cost).
		SetContactName(nc.ContactName).
		SetIsTest(nc.IsTest)

	if nc.DisplayCost != "" {
		builder = builder.SetDisplayCost(nc.DisplayCost)
	}
	if nc.AgentID != nil {
		builder = builder.SetAgentID(*nc.AgentID)
	}
	if nc.PhoneNumberID != nil {
		builder = builder.SetPhoneNumberID(*nc.PhoneNumberID)
	}
	if nc.RecordingURL != "" {
		builder = builder.SetRecordingURL(nc.RecordingURL)
	}
	if nc.MessageID != "" {
		builder = builder.SetMessageID(nc.MessageID)
	}
	if nc.TranscriptID != "" {
		builder = builder.SetTranscriptID(nc.TranscriptID)
	}
	if nc.StartedAt != nil {
		builder = builder.SetStartedAt(*nc.StartedAt)
	}
	if nc.EndedAt != nil {
		builder = builder.SetEndedAt(*nc.EndedAt)
	}

	return builder.Save(ctx)
}

// applyUpdate overwrites all mutable fields in place; a sync is a full-record
// upsert, not a delta, so concurrent runs converge to the same final state.
func (w *ledgerWriter) applyUpdate(ctx context.Context, existing *ent.CallRecord, nc *NormalizedCall) (*ent.CallRecord, error) {
	update := existing.Update().
		SetDirection(callrecord.Direction(nc.Direction)).
		SetFromNumber(nc.FromNumber).
		SetToNumber(nc.ToNumber).
		SetStatus(nc.Status).
		SetDuration(nc.Duration).
		SetCost(nc.Cost).
		SetContactName(nc.ContactName).
		SetIsTest(nc.IsTest)

	if nc.DisplayCost != "" {
		update = update.SetDisplayCost(nc.DisplayCost)
	} else {
		update = update.ClearDisplayCost()
	}
	if nc.AgentID != nil {
		update = update.SetAgentID(*nc.AgentID)
	}
	if nc.PhoneNumberID != nil {
		update = update.SetPhoneNumberID(*nc.PhoneNumberID)
	}
	if nc.RecordingURL != "" {
		update = update.SetRecordingURL(nc.RecordingURL)
	}
	if nc.MessageID != "" {
		update = update.SetMessageID(nc.MessageID)
	}
	if nc.TranscriptID != "" {
		update = update.SetTranscriptID(nc.TranscriptID)
	}
	if nc.StartedAt != nil {
		update = update.SetStartedAt(*nc.StartedAt)
	}
	if nc.EndedAt != nil {
		update = update.SetEndedAt(*nc.EndedAt)
	}

	return update.Save(ctx)
}

// writeUsage keeps the usage ledger invariant: an entry exists if and only if
// the call is billable. The unique constraint on call_record_id plus the
// conflict-resolving upsert makes concurrent runs race-safe, and cost
// recomputation on a later pass updates the amount in place.
func (w *ledgerWriter) writeUsage(ctx context.Context, rec *ent.CallRecord, nc *NormalizedCall) error {
	if !nc.Billable() {
		return nil
	}

	entryType := usageledgerentry.EntryTypeOutboundCall
	if nc.Direction == "inbound" {
		entryType = usageledgerentry.EntryTypeInboundCall
	}

	occurredAt := time.Now()
	if nc.StartedAt != nil {
		occurredAt = *nc.StartedAt
	}

	return w.db.UsageLedgerEntry.
		Create().
		SetTenantID(w.tenantID).
		SetCallRecordID(rec.ID).
		SetAmountCents(int64(math.Round(nc.Cost * 100))).
		SetEntryType(entryType).
		SetOccurredAt(occurredAt).
		OnConflictColumns(usageledgerentry.FieldCallRecordID).
		UpdateNewValues().
		Exec(ctx)
}
