package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringledger/ringledger/ent"
	"github.com/ringledger/ringledger/ent/callrecord"
	"github.com/ringledger/ringledger/pkg/models"
)

func createCall(t *testing.T, db *ent.Client, tenantID int, providerID string, direction callrecord.Direction, status string, duration int, cost float64, recorded bool) *ent.CallRecord {
	builder := db.CallRecord.
		Create().
		SetTenantID(tenantID).
		SetProviderCallID(providerID).
		SetDirection(direction).
		SetFromNumber("+12125551234").
		SetStatus(status).
		SetDuration(duration).
		SetCost(cost).
		SetStartedAt(time.Now().Add(-time.Hour))
	if recorded {
		builder = builder.SetRecordingURL("https://recordings.example.com/" + providerID + ".mp3")
	}
	rec, err := builder.Save(context.Background())
	require.NoError(t, err)
	return rec
}

func TestListCalls(t *testing.T) {
	t.Run("Success - lists tenant calls with filters", func(t *testing.T) {
		db := setupTestDB(t)
		ctx := context.Background()

		tenant, err := db.Tenant.Create().SetName("A").Save(ctx)
		require.NoError(t, err)
		other, err := db.Tenant.Create().SetName("B").Save(ctx)
		require.NoError(t, err)

		createCall(t, db, tenant.ID, "c1", callrecord.DirectionInbound, "completed", 120, 2.0, true)
		createCall(t, db, tenant.ID, "c2", callrecord.DirectionOutbound, "no-answer", 0, 0, false)
		createCall(t, db, other.ID, "c3", callrecord.DirectionInbound, "completed", 60, 1.0, false)

		h := NewCallHandler(db)

		c, rec := newContext(t, http.MethodGet, "/api/v1/calls", "", tenant.ID)
		require.NoError(t, h.ListCalls(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Total)

		c, rec = newContext(t, http.MethodGet, "/api/v1/calls?direction=inbound", "", tenant.ID)
		require.NoError(t, h.ListCalls(c))
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("Failure - unauthenticated request", func(t *testing.T) {
		db := setupTestDB(t)
		h := NewCallHandler(db)

		c, rec := newContext(t, http.MethodGet, "/api/v1/calls", "", 0)
		require.NoError(t, h.ListCalls(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetCall(t *testing.T) {
	t.Run("Failure - another tenant's call is not found", func(t *testing.T) {
		db := setupTestDB(t)
		ctx := context.Background()

		tenantA, err := db.Tenant.Create().SetName("A").Save(ctx)
		require.NoError(t, err)
		tenantB, err := db.Tenant.Create().SetName("B").Save(ctx)
		require.NoError(t, err)

		call := createCall(t, db, tenantA.ID, "c1", callrecord.DirectionInbound, "completed", 60, 1.0, false)

		h := NewCallHandler(db)
		c, rec := newContext(t, http.MethodGet, "/api/v1/calls/"+strconv.Itoa(call.ID), "", tenantB.ID)
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(call.ID))
		require.NoError(t, h.GetCall(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetCallStats(t *testing.T) {
	t.Run("Success - aggregates across the tenant's calls", func(t *testing.T) {
		db := setupTestDB(t)
		ctx := context.Background()

		tenant, err := db.Tenant.Create().SetName("A").Save(ctx)
		require.NoError(t, err)

		createCall(t, db, tenant.ID, "c1", callrecord.DirectionInbound, "completed", 350, 5.83, true)
		createCall(t, db, tenant.ID, "c2", callrecord.DirectionOutbound, "completed", 60, 1.0, false)
		createCall(t, db, tenant.ID, "c3", callrecord.DirectionInbound, "no-answer", 0, 0, false)
		createCall(t, db, tenant.ID, "c4", callrecord.DirectionOutbound, "voicemail", 30, 0.5, false)

		h := NewCallHandler(db)
		c, rec := newContext(t, http.MethodGet, "/api/v1/calls/stats", "", tenant.ID)
		require.NoError(t, h.GetCallStats(c))

		assert.Equal(t, http.StatusOK, rec.Code)

		var stats models.CallStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))

		assert.Equal(t, 4, stats.TotalCalls)
		assert.Equal(t, 2, stats.CompletedCalls)
		assert.Equal(t, 2, stats.InboundCalls)
		assert.Equal(t, 2, stats.OutboundCalls)
		assert.Equal(t, 440, stats.TotalDuration)
		assert.Equal(t, 110.0, stats.AverageDuration)
		assert.InDelta(t, 7.33, stats.TotalCost, 0.001)
		assert.Equal(t, 1, stats.RecordedCalls)
		assert.Equal(t, 50.0, stats.SuccessRate)
	})

	t.Run("Success - empty tenant yields zero stats", func(t *testing.T) {
		db := setupTestDB(t)
		tenant, err := db.Tenant.Create().SetName("A").Save(context.Background())
		require.NoError(t, err)

		h := NewCallHandler(db)
		c, rec := newContext(t, http.MethodGet, "/api/v1/calls/stats", "", tenant.ID)
		require.NoError(t, h.GetCallStats(c))

		var stats models.CallStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Equal(t, 0, stats.TotalCalls)
		assert.Equal(t, 0.0, stats.SuccessRate)
	})
}
