package callsync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringledger/ringledger/ent"
	"github.com/ringledger/ringledger/ent/billingaccount"
	"github.com/ringledger/ringledger/ent/callrecord"
	"github.com/ringledger/ringledger/ent/enttest"
	"github.com/ringledger/ringledger/ent/syncrun"
	"github.com/ringledger/ringledger/ent/usageledgerentry"
)

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func createTestTenant(t *testing.T, db *ent.Client) *ent.Tenant {
	tenant, err := db.Tenant.
		Create().
		SetName("Test Tenant").
		SetTimezone("America/New_York").
		Save(context.Background())
	require.NoError(t, err)
	return tenant
}

func createTestConnection(t *testing.T, db *ent.Client, tenantID int) *ent.CRMConnection {
	conn, err := db.CRMConnection.
		Create().
		SetTenantID(tenantID).
		SetLocationID("loc-123").
		SetAccessToken("valid-token").
		SetRefreshToken("refresh-token").
		SetTokenExpiresAt(time.Now().Add(time.Hour)).
		Save(context.Background())
	require.NoError(t, err)
	return conn
}

func createTestBillingAccount(t *testing.T, db *ent.Client, tenantID int, plan billingaccount.InboundPlan) *ent.BillingAccount {
	acct, err := db.BillingAccount.
		Create().
		SetTenantID(tenantID).
		SetInboundRateCents(100).
		SetOutboundRateCents(100).
		SetInboundPlan(plan).
		Save(context.Background())
	require.NoError(t, err)
	return acct
}

func createTestAgent(t *testing.T, db *ent.Client, tenantID int, providerUserID string) *ent.Agent {
	agent, err := db.Agent.
		Create().
		SetTenantID(tenantID).
		SetProviderUserID(providerUserID).
		SetName("Test Agent").
		SetEmail("agent@example.com").
		Save(context.Background())
	require.NoError(t, err)
	return agent
}

func createTestNumber(t *testing.T, db *ent.Client, tenantID, agentID int, number string) *ent.PhoneNumber {
	pn, err := db.PhoneNumber.
		Create().
		SetTenantID(tenantID).
		SetAgentID(agentID).
		SetNumber(number).
		SetNormalized(number).
		Save(context.Background())
	require.NoError(t, err)
	return pn
}

// upstreamServer serves the list and detail endpoints of the call API with a
// fixed payload, so runs against it are deterministic.
func upstreamServer(t *testing.T, calls []map[string]interface{}) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/calls/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"call": map[string]interface{}{
				"recordingUrl": "https://recordings.example.com/detail.mp3",
			},
		})
	})
	mux.HandleFunc("/calls", func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		payload := calls
		if page != "1" {
			payload = nil
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"calls": payload, "total": len(payload)})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:           baseURL,
		PageSize:          50,
		MaxPagesPerWindow: 200,
		DefaultRateCents:  100,
	}
}

func TestServiceRun(t *testing.T) {
	ctx := context.Background()
	started := time.Now().Add(-2 * time.Hour).UTC().Truncate(time.Second)
	windowStart := started.Add(-time.Hour)
	windowEnd := time.Now()

	calls := []map[string]interface{}{
		{
			"id":           "call-inbound",
			"direction":    "inbound",
			"fromNumber":   "+12125551234",
			"toNumber":     "+13105550000",
			"status":       "completed",
			"duration":     float64(350),
			"userId":       "user-1",
			"contactName":  "Jane Caller",
			"recordingUrl": "https://recordings.example.com/a.mp3",
			"messageId":    "msg-1",
			"startedAt":    started.Format(time.RFC3339),
		},
		{
			"id":         "call-outbound",
			"direction":  "outbound",
			"fromNumber": "+13105550000",
			"toNumber":   "+12125551234",
			"status":     "completed",
			"duration":   float64(60),
			"userId":     "user-1",
			"startedAt":  started.Add(time.Minute).Format(time.RFC3339),
		},
		{
			"id":         "call-test",
			"direction":  "inbound",
			"fromNumber": "+12125559999",
			"duration":   float64(30),
			"test":       true,
			"startedAt":  started.Add(2 * time.Minute).Format(time.RFC3339),
		},
	}

	t.Run("Success - inserts records and writes usage ledger", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		createTestConnection(t, db, tenant.ID)
		createTestBillingAccount(t, db, tenant.ID, billingaccount.InboundPlanMetered)
		agent := createTestAgent(t, db, tenant.ID, "user-1")
		createTestNumber(t, db, tenant.ID, agent.ID, "+13105550000")

		srv := upstreamServer(t, calls)
		svc := NewService(db, testConfig(srv.URL), nil, nil)

		result, err := svc.Run(ctx, &SyncRequest{
			TenantID: tenant.ID,
			Start:    &windowStart,
			End:      &windowEnd,
		})
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Equal(t, 3, result.Total)
		assert.Equal(t, 2, result.Inserted)
		assert.Equal(t, 0, result.Updated)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, result.Total, result.Inserted+result.Updated+result.Skipped)
		assert.Equal(t, 1, result.SkipCounts[string(SkipTestCall)])

		// 350s inbound at 100c/min rounds to 583 cents
		rec, err := db.CallRecord.Query().
			Where(
				callrecord.TenantIDEQ(tenant.ID),
				callrecord.ProviderCallIDEQ("call-inbound"),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5.83, rec.Cost)
		assert.Equal(t, "Jane Caller", rec.ContactName)
		require.NotNil(t, rec.AgentID)
		assert.Equal(t, agent.ID, *rec.AgentID)
		require.NotNil(t, rec.PhoneNumberID)

		entries, err := db.UsageLedgerEntry.Query().
			Where(usageledgerentry.TenantIDEQ(tenant.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		amounts := map[int64]bool{}
		for _, e := range entries {
			amounts[e.AmountCents] = true
			assert.Nil(t, e.ReportedAt)
		}
		assert.True(t, amounts[583])
		assert.True(t, amounts[100])

		// observing activity verifies the agent
		freshAgent, err := db.Agent.Get(ctx, agent.ID)
		require.NoError(t, err)
		assert.True(t, freshAgent.Verified)
		require.NotNil(t, freshAgent.LastActivityAt)

		run, err := db.SyncRun.Get(ctx, result.RunID)
		require.NoError(t, err)
		assert.Equal(t, syncrun.StatusCompleted, run.Status)
		assert.Equal(t, 3, run.Total)
		assert.Equal(t, 2, run.Inserted)
		assert.Equal(t, 1, run.Skipped)
		assert.NotNil(t, run.FinishedAt)
		assert.NotEmpty(t, run.LogLines)
		assert.NotEmpty(t, run.PageTrace)
		assert.Len(t, run.SkippedSamples, 1)
		assert.Equal(t, string(SkipTestCall), run.SkippedSamples[0]["skip_reason"])
	})

	t.Run("Success - second run updates instead of inserting", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		createTestConnection(t, db, tenant.ID)
		createTestBillingAccount(t, db, tenant.ID, billingaccount.InboundPlanMetered)

		srv := upstreamServer(t, calls)
		svc := NewService(db, testConfig(srv.URL), nil, nil)

		req := &SyncRequest{TenantID: tenant.ID, Start: &windowStart, End: &windowEnd}

		first, err := svc.Run(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 2, first.Inserted)

		second, err := svc.Run(ctx, &SyncRequest{TenantID: tenant.ID, Start: &windowStart, End: &windowEnd})
		require.NoError(t, err)
		assert.Equal(t, 0, second.Inserted)
		assert.Equal(t, 2, second.Updated)

		count, err := db.CallRecord.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		// usage entries are upserted, never duplicated
		entries, err := db.UsageLedgerEntry.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, entries)
	})

	t.Run("Success - unlimited inbound plan suppresses cost", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		createTestConnection(t, db, tenant.ID)
		createTestBillingAccount(t, db, tenant.ID, billingaccount.InboundPlanUnlimited)

		srv := upstreamServer(t, calls[:1])
		svc := NewService(db, testConfig(srv.URL), nil, nil)

		result, err := svc.Run(ctx, &SyncRequest{TenantID: tenant.ID, Start: &windowStart, End: &windowEnd})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Inserted)

		rec, err := db.CallRecord.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0.0, rec.Cost)
		require.NotNil(t, rec.DisplayCost)
		assert.Equal(t, DisplayCostIncluded, *rec.DisplayCost)

		entries, err := db.UsageLedgerEntry.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, entries)
	})

	t.Run("Failure - missing tenant rejected before opening a run", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewService(db, testConfig("http://unused"), nil, nil)

		_, err := svc.Run(ctx, &SyncRequest{})
		require.ErrorIs(t, err, ErrMissingTenant)

		runs, err := db.SyncRun.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, runs)
	})

	t.Run("Failure - inverted range rejected before opening a run", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewService(db, testConfig("http://unused"), nil, nil)

		start := time.Now()
		end := start.Add(-time.Hour)
		_, err := svc.Run(ctx, &SyncRequest{TenantID: 1, Start: &start, End: &end})
		require.ErrorIs(t, err, ErrInvalidRange)

		runs, err := db.SyncRun.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, runs)
	})

	t.Run("Failure - no connection closes the run as failed", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		svc := NewService(db, testConfig("http://unused"), nil, nil)

		result, err := svc.Run(ctx, &SyncRequest{TenantID: tenant.ID})
		require.ErrorIs(t, err, ErrNoConnection)
		require.NotNil(t, result)

		run, err := db.SyncRun.Get(ctx, result.RunID)
		require.NoError(t, err)
		assert.Equal(t, syncrun.StatusFailed, run.Status)
		assert.Contains(t, run.Error, "no CRM connection")
	})

	t.Run("Failure - upstream 500 aborts and records the error", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		conn := createTestConnection(t, db, tenant.ID)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		svc := NewService(db, testConfig(srv.URL), nil, nil)
		result, err := svc.Run(ctx, &SyncRequest{TenantID: tenant.ID, Start: &windowStart, End: &windowEnd})
		require.Error(t, err)

		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, http.StatusInternalServerError, upstream.StatusCode)

		run, err := db.SyncRun.Get(ctx, result.RunID)
		require.NoError(t, err)
		assert.Equal(t, syncrun.StatusFailed, run.Status)

		freshConn, err := db.CRMConnection.Get(ctx, conn.ID)
		require.NoError(t, err)
		assert.Contains(t, freshConn.LastSyncError, "500")
	})

	t.Run("Success - previously deleted call stays out", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		createTestConnection(t, db, tenant.ID)
		_, err := db.DeletedCall.
			Create().
			SetTenantID(tenant.ID).
			SetProviderCallID("call-inbound").
			Save(ctx)
		require.NoError(t, err)

		srv := upstreamServer(t, calls[:1])
		svc := NewService(db, testConfig(srv.URL), nil, nil)

		result, err := svc.Run(ctx, &SyncRequest{TenantID: tenant.ID, Start: &windowStart, End: &windowEnd})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Inserted)
		assert.Equal(t, 1, result.SkipCounts[string(SkipPreviouslyDeleted)])
	})

	t.Run("Success - admin backfill readmits a deleted call", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		createTestConnection(t, db, tenant.ID)
		_, err := db.DeletedCall.
			Create().
			SetTenantID(tenant.ID).
			SetProviderCallID("call-inbound").
			Save(ctx)
		require.NoError(t, err)

		srv := upstreamServer(t, calls[:1])
		svc := NewService(db, testConfig(srv.URL), nil, nil)

		result, err := svc.Run(ctx, &SyncRequest{
			TenantID: tenant.ID,
			Start:    &windowStart,
			End:      &windowEnd,
			Kind:     KindAdminBackfill,
			ActorID:  "admin@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Inserted)
	})
}
