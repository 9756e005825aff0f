package jobs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringledger/ringledger/ent"
	"github.com/ringledger/ringledger/ent/enttest"
	"github.com/ringledger/ringledger/ent/syncrun"
	"github.com/ringledger/ringledger/pkg/billing"
	"github.com/ringledger/ringledger/pkg/cache"
	"github.com/ringledger/ringledger/pkg/callsync"
)

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func setupTestCache(t *testing.T) *cache.Client {
	mr := miniredis.RunT(t)
	c, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func emptyUpstream(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"calls": []map[string]interface{}{}})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func createAutoSyncConnection(t *testing.T, db *ent.Client, autoSync bool, lastSync *time.Time) *ent.CRMConnection {
	ctx := context.Background()

	tenant, err := db.Tenant.Create().SetName("Test Tenant").Save(ctx)
	require.NoError(t, err)

	builder := db.CRMConnection.
		Create().
		SetTenantID(tenant.ID).
		SetLocationID("loc-123").
		SetAccessToken("valid-token").
		SetRefreshToken("refresh-token").
		SetTokenExpiresAt(time.Now().Add(time.Hour)).
		SetAutoSync(autoSync).
		SetSyncIntervalMinutes(15)
	if lastSync != nil {
		builder = builder.SetLastSyncAt(*lastSync)
	}

	conn, err := builder.Save(ctx)
	require.NoError(t, err)
	return conn
}

func newTestManager(t *testing.T, db *ent.Client, baseURL string) *CronManager {
	sync := callsync.NewService(db, callsync.Config{BaseURL: baseURL}, nil, nil)
	return NewCronManager(db, sync, billing.NewService(db, nil, nil, nil), setupTestCache(t), nil, Config{CooldownMinutes: 5})
}

func TestRunDueSyncs(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - never-synced connection is due", func(t *testing.T) {
		db := setupTestDB(t)
		conn := createAutoSyncConnection(t, db, true, nil)

		cm := newTestManager(t, db, emptyUpstream(t).URL)
		require.NoError(t, cm.RunDueSyncs(ctx))

		runs, err := db.SyncRun.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, syncrun.KindAuto, runs[0].Kind)
		assert.Equal(t, syncrun.StatusCompleted, runs[0].Status)

		fresh, err := db.CRMConnection.Get(ctx, conn.ID)
		require.NoError(t, err)
		assert.NotNil(t, fresh.LastSyncAt)
	})

	t.Run("Success - recent sync is not due", func(t *testing.T) {
		db := setupTestDB(t)
		now := time.Now()
		createAutoSyncConnection(t, db, true, &now)

		cm := newTestManager(t, db, emptyUpstream(t).URL)
		require.NoError(t, cm.RunDueSyncs(ctx))

		runs, err := db.SyncRun.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, runs)
	})

	t.Run("Success - stale sync becomes due again", func(t *testing.T) {
		db := setupTestDB(t)
		stale := time.Now().Add(-time.Hour)
		createAutoSyncConnection(t, db, true, &stale)

		cm := newTestManager(t, db, emptyUpstream(t).URL)
		require.NoError(t, cm.RunDueSyncs(ctx))

		runs, err := db.SyncRun.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, runs)
	})

	t.Run("Success - disabled connections are ignored", func(t *testing.T) {
		db := setupTestDB(t)
		createAutoSyncConnection(t, db, false, nil)

		cm := newTestManager(t, db, emptyUpstream(t).URL)
		require.NoError(t, cm.RunDueSyncs(ctx))

		runs, err := db.SyncRun.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, runs)
	})

	t.Run("Success - cooldown blocks an overlapping sweep", func(t *testing.T) {
		db := setupTestDB(t)
		conn := createAutoSyncConnection(t, db, true, nil)

		cm := newTestManager(t, db, emptyUpstream(t).URL)
		require.NoError(t, cm.RunDueSyncs(ctx))

		// force the due check to pass again; the redis marker must still block
		stale := time.Now().Add(-time.Hour)
		_, err := conn.Update().SetLastSyncAt(stale).Save(ctx)
		require.NoError(t, err)

		require.NoError(t, cm.RunDueSyncs(ctx))

		runs, err := db.SyncRun.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, runs)
	})

	t.Run("Success - failed sync does not abort the sweep", func(t *testing.T) {
		db := setupTestDB(t)
		createAutoSyncConnection(t, db, true, nil)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		cm := newTestManager(t, db, srv.URL)
		require.NoError(t, cm.RunDueSyncs(ctx))

		runs, err := db.SyncRun.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, syncrun.StatusFailed, runs[0].Status)
	})
}

func TestSetupJobs(t *testing.T) {
	t.Run("Success - schedules register", func(t *testing.T) {
		db := setupTestDB(t)
		cm := newTestManager(t, db, "http://unused")
		cm.reconciliationEnabled = true

		require.NoError(t, cm.SetupJobs())
	})
}
