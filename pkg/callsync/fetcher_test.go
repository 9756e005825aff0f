package callsync

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenServer(t *testing.T, accessToken string, refreshes *int) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		if refreshes != nil {
			*refreshes++
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":  accessToken,
			"refresh_token": "rotated-refresh",
			"expires_in":    3600,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchWindow(t *testing.T) {
	ctx := context.Background()
	w := window{
		start: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		end:   time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Success - pages until a short page", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			var calls []map[string]interface{}
			switch page {
			case 1:
				calls = []map[string]interface{}{{"id": "a"}, {"id": "b"}}
			case 2:
				calls = []map[string]interface{}{{"id": "c"}}
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"calls": calls})
		}))
		t.Cleanup(srv.Close)

		f := &fetcher{
			client:     NewClient(srv.URL),
			token:      "tok",
			locationID: "loc-123",
			timezone:   "UTC",
			pageSize:   2,
			maxPages:   10,
		}

		merged := make(map[string]RawCall)
		require.NoError(t, f.fetchWindow(ctx, w, merged))

		assert.Len(t, merged, 3)
		require.Len(t, f.trace, 2)
		assert.Equal(t, 1, f.trace[0].Page)
		assert.Equal(t, 2, f.trace[0].Records)
		assert.Equal(t, 2, f.trace[1].Page)
		assert.Equal(t, 1, f.trace[1].Records)
	})

	t.Run("Success - duplicate IDs across pages merge to one", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			var calls []map[string]interface{}
			switch page {
			case 1:
				calls = []map[string]interface{}{{"id": "a", "status": "ringing"}, {"id": "b"}}
			case 2:
				calls = []map[string]interface{}{{"id": "a", "status": "completed"}}
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"calls": calls})
		}))
		t.Cleanup(srv.Close)

		f := &fetcher{
			client:     NewClient(srv.URL),
			token:      "tok",
			locationID: "loc-123",
			timezone:   "UTC",
			pageSize:   2,
			maxPages:   10,
		}

		merged := make(map[string]RawCall)
		require.NoError(t, f.fetchWindow(ctx, w, merged))

		assert.Len(t, merged, 2)
		// the later page wins
		assert.Equal(t, "completed", merged["a"].Status())
	})

	t.Run("Failure - page ceiling aborts a runaway window", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			page := r.URL.Query().Get("page")
			calls := []map[string]interface{}{
				{"id": "x-" + page}, {"id": "y-" + page},
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"calls": calls})
		}))
		t.Cleanup(srv.Close)

		f := &fetcher{
			client:     NewClient(srv.URL),
			token:      "tok",
			locationID: "loc-123",
			timezone:   "UTC",
			pageSize:   2,
			maxPages:   3,
		}

		err := f.fetchWindow(ctx, w, make(map[string]RawCall))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "page ceiling")
	})

	t.Run("Success - one reactive refresh recovers a rejected token", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		conn := createTestConnection(t, db, tenant.ID)

		refreshes := 0
		tokenSrv := tokenServer(t, "fresh-token", &refreshes)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer fresh-token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"calls": []map[string]interface{}{{"id": "a"}},
			})
		}))
		t.Cleanup(srv.Close)

		tm := NewTokenManager(db, OAuthConfig{TokenURL: tokenSrv.URL}, conn)
		f := &fetcher{
			client:     NewClient(srv.URL),
			tokens:     tm,
			token:      "stale-token",
			locationID: "loc-123",
			timezone:   "UTC",
			pageSize:   50,
			maxPages:   10,
		}

		merged := make(map[string]RawCall)
		require.NoError(t, f.fetchWindow(ctx, w, merged))

		assert.Len(t, merged, 1)
		assert.Equal(t, 1, refreshes)
		assert.Equal(t, "fresh-token", f.token)

		// the rotated pair was persisted
		fresh, err := db.CRMConnection.Get(ctx, conn.ID)
		require.NoError(t, err)
		assert.Equal(t, "fresh-token", fresh.AccessToken)
		assert.Equal(t, "rotated-refresh", fresh.RefreshToken)
	})

	t.Run("Failure - second rejection is fatal", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		conn := createTestConnection(t, db, tenant.ID)

		tokenSrv := tokenServer(t, "still-bad", nil)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		t.Cleanup(srv.Close)

		tm := NewTokenManager(db, OAuthConfig{TokenURL: tokenSrv.URL}, conn)
		f := &fetcher{
			client:     NewClient(srv.URL),
			tokens:     tm,
			token:      "stale-token",
			locationID: "loc-123",
			timezone:   "UTC",
			pageSize:   50,
			maxPages:   10,
		}

		err := f.fetchWindow(ctx, w, make(map[string]RawCall))
		require.ErrorIs(t, err, ErrReauthRequired)
	})
}

func TestTokenManager(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - valid token returned without refresh", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		conn := createTestConnection(t, db, tenant.ID)

		refreshes := 0
		tokenSrv := tokenServer(t, "unused", &refreshes)

		tm := NewTokenManager(db, OAuthConfig{TokenURL: tokenSrv.URL}, conn)
		token, err := tm.EnsureValidToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "valid-token", token)
		assert.Equal(t, 0, refreshes)
	})

	t.Run("Success - expired token refreshed proactively", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		conn := createTestConnection(t, db, tenant.ID)
		conn, err := conn.Update().SetTokenExpiresAt(time.Now().Add(-time.Minute)).Save(ctx)
		require.NoError(t, err)

		refreshes := 0
		tokenSrv := tokenServer(t, "proactive-token", &refreshes)

		tm := NewTokenManager(db, OAuthConfig{TokenURL: tokenSrv.URL}, conn)
		token, err := tm.EnsureValidToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "proactive-token", token)
		assert.Equal(t, 1, refreshes)
	})

	t.Run("Failure - second reactive refresh refused", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		conn := createTestConnection(t, db, tenant.ID)

		tokenSrv := tokenServer(t, "one-shot", nil)

		tm := NewTokenManager(db, OAuthConfig{TokenURL: tokenSrv.URL}, conn)
		_, err := tm.RefreshOnAuthFailure(ctx)
		require.NoError(t, err)

		_, err = tm.RefreshOnAuthFailure(ctx)
		require.ErrorIs(t, err, ErrReauthRequired)
	})

	t.Run("Failure - token endpoint error wraps ErrReauthRequired", func(t *testing.T) {
		db := setupTestDB(t)
		tenant := createTestTenant(t, db)
		conn := createTestConnection(t, db, tenant.ID)

		tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid_grant", http.StatusBadRequest)
		}))
		t.Cleanup(tokenSrv.Close)

		tm := NewTokenManager(db, OAuthConfig{TokenURL: tokenSrv.URL}, conn)
		_, err := tm.RefreshOnAuthFailure(ctx)
		require.ErrorIs(t, err, ErrReauthRequired)
		assert.Contains(t, fmt.Sprint(err), "400")
	})
}
