package callsync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkWindows(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	t.Run("Success - single same-day window stays whole", func(t *testing.T) {
		start := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)
		end := time.Date(2026, 3, 10, 17, 0, 0, 0, loc)

		windows := chunkWindows(start, end, loc)
		require.Len(t, windows, 1)
		assert.True(t, windows[0].start.Equal(start))
		assert.True(t, windows[0].end.Equal(end))
	})

	t.Run("Success - multi-day range splits at local midnight", func(t *testing.T) {
		start := time.Date(2026, 3, 10, 22, 0, 0, 0, loc)
		end := time.Date(2026, 3, 12, 6, 0, 0, 0, loc)

		windows := chunkWindows(start, end, loc)
		require.Len(t, windows, 3)

		assert.True(t, windows[0].start.Equal(start))
		assert.True(t, windows[0].end.Equal(time.Date(2026, 3, 11, 0, 0, 0, 0, loc)))
		assert.True(t, windows[1].end.Equal(time.Date(2026, 3, 12, 0, 0, 0, 0, loc)))
		assert.True(t, windows[2].end.Equal(end))
	})

	t.Run("Success - consecutive windows share boundaries with no gaps", func(t *testing.T) {
		start := time.Date(2026, 3, 1, 3, 30, 0, 0, loc)
		end := time.Date(2026, 3, 8, 11, 45, 0, 0, loc)

		windows := chunkWindows(start, end, loc)
		require.NotEmpty(t, windows)
		assert.True(t, windows[0].start.Equal(start))
		assert.True(t, windows[len(windows)-1].end.Equal(end))
		for i := 1; i < len(windows); i++ {
			assert.True(t, windows[i].start.Equal(windows[i-1].end))
		}
		for _, w := range windows {
			assert.LessOrEqual(t, w.end.Sub(w.start), 25*time.Hour) // DST days can run long
		}
	})

	t.Run("Success - degenerate range yields one window", func(t *testing.T) {
		at := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)
		windows := chunkWindows(at, at, loc)
		require.Len(t, windows, 1)
	})
}

func TestResolveWindow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	cutoff := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success - admin backfill uses caller start verbatim", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		acct := createTestBillingAccount(t, db, tenant.ID, "metered")
		acct, err := acct.Update().SetCallsResetAt(cutoff).Save(ctx)
		require.NoError(t, err)

		start := cutoff.AddDate(0, -2, 0)
		ew, err := resolveWindow(ctx, db, &SyncRequest{
			TenantID: tenant.ID,
			Start:    &start,
			Kind:     KindAdminBackfill,
		}, acct, now)
		require.NoError(t, err)

		assert.True(t, ew.start.Equal(start))
		require.NotNil(t, ew.bypassedCutoff)
		assert.True(t, ew.bypassedCutoff.Equal(cutoff))
	})

	t.Run("Success - cutoff floors a manual sync", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		acct := createTestBillingAccount(t, db, tenant.ID, "metered")
		acct, err := acct.Update().SetCallsResetAt(cutoff).Save(ctx)
		require.NoError(t, err)

		start := cutoff.AddDate(0, -1, 0)
		ew, err := resolveWindow(ctx, db, &SyncRequest{
			TenantID: tenant.ID,
			Start:    &start,
			Kind:     KindManual,
		}, acct, now)
		require.NoError(t, err)

		assert.True(t, ew.start.Equal(cutoff))
		assert.Nil(t, ew.bypassedCutoff)
	})

	t.Run("Success - incremental sync resumes after last stored call", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)

		lastCall := now.Add(-48 * time.Hour)
		_, err := db.CallRecord.
			Create().
			SetTenantID(tenant.ID).
			SetProviderCallID("existing").
			SetDirection("inbound").
			SetFromNumber("+12125551234").
			SetStartedAt(lastCall).
			Save(ctx)
		require.NoError(t, err)

		ew, err := resolveWindow(ctx, db, &SyncRequest{TenantID: tenant.ID, Kind: KindManual}, nil, now)
		require.NoError(t, err)
		assert.True(t, ew.start.Equal(lastCall.Add(time.Second)))
		assert.True(t, ew.end.Equal(now))
	})

	t.Run("Success - first sync falls back to default lookback", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)

		ew, err := resolveWindow(ctx, db, &SyncRequest{TenantID: tenant.ID, Kind: KindManual}, nil, now)
		require.NoError(t, err)
		assert.True(t, ew.start.Equal(now.Add(-defaultLookback)))
		assert.True(t, ew.end.Equal(now))
	})

	t.Run("Success - caller end bounds the window", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)

		start := now.Add(-72 * time.Hour)
		end := now.Add(-24 * time.Hour)
		ew, err := resolveWindow(ctx, db, &SyncRequest{
			TenantID: tenant.ID,
			Start:    &start,
			End:      &end,
			Kind:     KindManual,
		}, nil, now)
		require.NoError(t, err)
		assert.True(t, ew.start.Equal(start))
		assert.True(t, ew.end.Equal(end))
	})
}
