package callsync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringledger/ringledger/ent/usageledgerentry"
)

func TestLedgerWriterPersist(t *testing.T) {
	ctx := context.Background()
	started := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)

	billableCall := func() *NormalizedCall {
		return &NormalizedCall{
			ProviderCallID: "call-1",
			Direction:      "inbound",
			FromNumber:     "+12125551234",
			ToNumber:       "+13105550000",
			Status:         "completed",
			Duration:       350,
			Cost:           5.83,
			ContactName:    "Jane Caller",
			StartedAt:      &started,
		}
	}

	t.Run("Success - insert then update converges on one row", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		w := &ledgerWriter{db: db, tenantID: tenant.ID}

		outcome, skip, err := w.persist(ctx, billableCall())
		require.NoError(t, err)
		assert.Equal(t, outcomeInserted, outcome)
		assert.Empty(t, skip)

		// a re-sync with fresher data overwrites in place
		nc := billableCall()
		nc.Status = "voicemail"
		nc.Duration = 400
		nc.Cost = 6.67

		outcome, skip, err = w.persist(ctx, nc)
		require.NoError(t, err)
		assert.Equal(t, outcomeUpdated, outcome)
		assert.Empty(t, skip)

		count, err := db.CallRecord.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		rec, err := db.CallRecord.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "voicemail", rec.Status)
		assert.Equal(t, 400, rec.Duration)
		assert.Equal(t, 6.67, rec.Cost)
	})

	t.Run("Success - usage entry tracks the latest cost without duplicating", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		w := &ledgerWriter{db: db, tenantID: tenant.ID}

		_, _, err := w.persist(ctx, billableCall())
		require.NoError(t, err)

		entry, err := db.UsageLedgerEntry.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(583), entry.AmountCents)
		assert.Equal(t, usageledgerentry.EntryTypeInboundCall, entry.EntryType)

		nc := billableCall()
		nc.Cost = 6.67
		_, _, err = w.persist(ctx, nc)
		require.NoError(t, err)

		entries, err := db.UsageLedgerEntry.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(667), entries[0].AmountCents)
	})

	t.Run("Success - non-billable call writes no usage entry", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		w := &ledgerWriter{db: db, tenantID: tenant.ID}

		nc := billableCall()
		nc.Cost = 0
		nc.DisplayCost = DisplayCostIncluded

		outcome, _, err := w.persist(ctx, nc)
		require.NoError(t, err)
		assert.Equal(t, outcomeInserted, outcome)

		rec, err := db.CallRecord.Query().Only(ctx)
		require.NoError(t, err)
		require.NotNil(t, rec.DisplayCost)
		assert.Equal(t, DisplayCostIncluded, *rec.DisplayCost)

		count, err := db.UsageLedgerEntry.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("Success - display cost clears when a call becomes metered", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		w := &ledgerWriter{db: db, tenantID: tenant.ID}

		nc := billableCall()
		nc.Cost = 0
		nc.DisplayCost = DisplayCostIncluded
		_, _, err := w.persist(ctx, nc)
		require.NoError(t, err)

		_, _, err = w.persist(ctx, billableCall())
		require.NoError(t, err)

		rec, err := db.CallRecord.Query().Only(ctx)
		require.NoError(t, err)
		assert.Nil(t, rec.DisplayCost)
		assert.Equal(t, 5.83, rec.Cost)

		entry, err := db.UsageLedgerEntry.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(583), entry.AmountCents)
	})

	t.Run("Success - outbound calls ledger as outbound entries", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		w := &ledgerWriter{db: db, tenantID: tenant.ID}

		nc := billableCall()
		nc.Direction = "outbound"
		nc.Cost = 1.00

		_, _, err := w.persist(ctx, nc)
		require.NoError(t, err)

		entry, err := db.UsageLedgerEntry.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, usageledgerentry.EntryTypeOutboundCall, entry.EntryType)
		assert.Equal(t, int64(100), entry.AmountCents)
	})

	t.Run("Failure - tenants are isolated by provider call ID", func(t *testing.T) {
		db := setupTestDB(t)
		tenantA := createTestTenant(t, db)
		tenantB, err := db.Tenant.Create().SetName("Other Tenant").Save(ctx)
		require.NoError(t, err)

		wa := &ledgerWriter{db: db, tenantID: tenantA.ID}
		wb := &ledgerWriter{db: db, tenantID: tenantB.ID}

		outcome, _, err := wa.persist(ctx, billableCall())
		require.NoError(t, err)
		assert.Equal(t, outcomeInserted, outcome)

		// same upstream ID under another tenant is a separate record
		outcome, _, err = wb.persist(ctx, billableCall())
		require.NoError(t, err)
		assert.Equal(t, outcomeInserted, outcome)

		count, err := db.CallRecord.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
