package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringledger/ringledger/ent"
	"github.com/ringledger/ringledger/ent/enttest"
	"github.com/ringledger/ringledger/ent/syncrun"
	"github.com/ringledger/ringledger/pkg/callsync"
	"github.com/ringledger/ringledger/pkg/models"
)

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func newContext(t *testing.T, method, path, body string, tenantID int) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if tenantID != 0 {
		c.Set("tenant_id", tenantID)
	}
	return c, rec
}

func createTenantWithConnection(t *testing.T, db *ent.Client) *ent.Tenant {
	ctx := context.Background()
	tenant, err := db.Tenant.Create().SetName("Test Tenant").Save(ctx)
	require.NoError(t, err)
	_, err = db.CRMConnection.
		Create().
		SetTenantID(tenant.ID).
		SetLocationID("loc-123").
		SetAccessToken("valid-token").
		SetRefreshToken("refresh-token").
		SetTokenExpiresAt(time.Now().Add(time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	return tenant
}

func emptyUpstream(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"calls": []map[string]interface{}{}})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTriggerSync(t *testing.T) {
	t.Run("Success - runs a sync for the authenticated tenant", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTenantWithConnection(t, db)

		svc := callsync.NewService(db, callsync.Config{BaseURL: emptyUpstream(t).URL}, nil, nil)
		h := NewSyncHandler(db, svc)

		c, rec := newContext(t, http.MethodPost, "/api/v1/sync", `{}`, tenant.ID)
		require.NoError(t, h.TriggerSync(c))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.SyncResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotZero(t, resp.RunID)
	})

	t.Run("Failure - no connection maps to 401", func(t *testing.T) {
		db := setupTestDB(t)
		tenant, err := db.Tenant.Create().SetName("No Connection").Save(context.Background())
		require.NoError(t, err)

		svc := callsync.NewService(db, callsync.Config{BaseURL: "http://unused"}, nil, nil)
		h := NewSyncHandler(db, svc)

		c, rec := newContext(t, http.MethodPost, "/api/v1/sync", `{}`, tenant.ID)
		require.NoError(t, h.TriggerSync(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Failure - upstream error maps to 502", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTenantWithConnection(t, db)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		svc := callsync.NewService(db, callsync.Config{BaseURL: srv.URL}, nil, nil)
		h := NewSyncHandler(db, svc)

		c, rec := newContext(t, http.MethodPost, "/api/v1/sync", `{}`, tenant.ID)
		require.NoError(t, h.TriggerSync(c))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("Failure - missing tenant maps to 400", func(t *testing.T) {
		db := setupTestDB(t)
		svc := callsync.NewService(db, callsync.Config{BaseURL: "http://unused"}, nil, nil)
		h := NewSyncHandler(db, svc)

		c, rec := newContext(t, http.MethodPost, "/api/v1/sync", `{}`, 0)
		require.NoError(t, h.TriggerSync(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTriggerBackfill(t *testing.T) {
	t.Run("Failure - start date and actor are required", func(t *testing.T) {
		db := setupTestDB(t)
		svc := callsync.NewService(db, callsync.Config{BaseURL: "http://unused"}, nil, nil)
		h := NewSyncHandler(db, svc)

		c, rec := newContext(t, http.MethodPost, "/api/v1/admin/sync/backfill", `{"tenant_id":1}`, 0)
		require.NoError(t, h.TriggerBackfill(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Success - backfill records the actor", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTenantWithConnection(t, db)

		svc := callsync.NewService(db, callsync.Config{BaseURL: emptyUpstream(t).URL}, nil, nil)
		h := NewSyncHandler(db, svc)

		body, err := json.Marshal(models.BackfillRequest{
			TenantID:  tenant.ID,
			StartDate: timePtr(time.Now().Add(-48 * time.Hour)),
			ActorID:   "admin@example.com",
		})
		require.NoError(t, err)

		c, rec := newContext(t, http.MethodPost, "/api/v1/admin/sync/backfill", string(body), 0)
		require.NoError(t, h.TriggerBackfill(c))

		assert.Equal(t, http.StatusOK, rec.Code)

		run, err := db.SyncRun.Query().Only(context.Background())
		require.NoError(t, err)
		assert.Equal(t, syncrun.KindAdminBackfill, run.Kind)
		assert.Equal(t, "admin@example.com", run.TriggeredBy)
	})
}

func TestListRuns(t *testing.T) {
	t.Run("Success - returns only the tenant's runs", func(t *testing.T) {
		db := setupTestDB(t)
		ctx := context.Background()

		tenantA, err := db.Tenant.Create().SetName("A").Save(ctx)
		require.NoError(t, err)
		tenantB, err := db.Tenant.Create().SetName("B").Save(ctx)
		require.NoError(t, err)

		for _, tid := range []int{tenantA.ID, tenantA.ID, tenantB.ID} {
			_, err := db.SyncRun.
				Create().
				SetTenantID(tid).
				SetKind(syncrun.KindManual).
				SetStatus(syncrun.StatusCompleted).
				SetTimezone("UTC").
				Save(ctx)
			require.NoError(t, err)
		}

		h := NewSyncHandler(db, nil)
		c, rec := newContext(t, http.MethodGet, "/api/v1/sync/runs", "", tenantA.ID)
		require.NoError(t, h.ListRuns(c))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Count)
	})

	t.Run("Failure - unauthenticated request", func(t *testing.T) {
		db := setupTestDB(t)
		h := NewSyncHandler(db, nil)

		c, rec := newContext(t, http.MethodGet, "/api/v1/sync/runs", "", 0)
		require.NoError(t, h.ListRuns(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetRun(t *testing.T) {
	t.Run("Success - returns the run", func(t *testing.T) {
		db := setupTestDB(t)
		ctx := context.Background()

		tenant, err := db.Tenant.Create().SetName("A").Save(ctx)
		require.NoError(t, err)
		run, err := db.SyncRun.
			Create().
			SetTenantID(tenant.ID).
			SetKind(syncrun.KindManual).
			SetStatus(syncrun.StatusCompleted).
			SetTimezone("UTC").
			Save(ctx)
		require.NoError(t, err)

		h := NewSyncHandler(db, nil)
		c, rec := newContext(t, http.MethodGet, "/api/v1/sync/runs/"+strconv.Itoa(run.ID), "", tenant.ID)
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(run.ID))
		require.NoError(t, h.GetRun(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Failure - another tenant's run is not found", func(t *testing.T) {
		db := setupTestDB(t)
		ctx := context.Background()

		tenantA, err := db.Tenant.Create().SetName("A").Save(ctx)
		require.NoError(t, err)
		tenantB, err := db.Tenant.Create().SetName("B").Save(ctx)
		require.NoError(t, err)
		run, err := db.SyncRun.
			Create().
			SetTenantID(tenantA.ID).
			SetKind(syncrun.KindManual).
			SetStatus(syncrun.StatusCompleted).
			SetTimezone("UTC").
			Save(ctx)
		require.NoError(t, err)

		h := NewSyncHandler(db, nil)
		c, rec := newContext(t, http.MethodGet, "/api/v1/sync/runs/"+strconv.Itoa(run.ID), "", tenantB.ID)
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(run.ID))
		require.NoError(t, h.GetRun(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func timePtr(t time.Time) *time.Time {
	return &t
}
