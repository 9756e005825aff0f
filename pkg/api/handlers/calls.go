package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ringledger/ringledger/ent"
	"github.com/ringledger/ringledger/ent/callrecord"
	apierrors "github.com/ringledger/ringledger/pkg/api/errors"
	"github.com/ringledger/ringledger/pkg/api/middleware"
	"github.com/ringledger/ringledger/pkg/models"
)

// CallHandler exposes call-record read endpoints
type CallHandler struct {
	db *ent.Client
}

func NewCallHandler(db *ent.Client) *CallHandler {
	return &CallHandler{db: db}
}

// ListCalls returns call records for the authenticated tenant, newest first
func (h *CallHandler) ListCalls(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return apierrors.UnauthorizedError(c, "")
	}

	query := h.db.CallRecord.Query().
		Where(callrecord.TenantIDEQ(tenantID))

	if direction := c.QueryParam("direction"); direction != "" {
		query = query.Where(callrecord.DirectionEQ(callrecord.Direction(direction)))
	}
	if status := c.QueryParam("status"); status != "" {
		query = query.Where(callrecord.StatusEQ(status))
	}
	if agentID := c.QueryParam("agent_id"); agentID != "" {
		if id, err := strconv.Atoi(agentID); err == nil {
			query = query.Where(callrecord.AgentIDEQ(id))
		}
	}
	if from := c.QueryParam("start_date"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			query = query.Where(callrecord.StartedAtGTE(t))
		}
	}
	if to := c.QueryParam("end_date"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			query = query.Where(callrecord.StartedAtLTE(t))
		}
	}

	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	offset := 0
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	total, err := query.Clone().Count(c.Request().Context())
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	calls, err := query.
		Order(ent.Desc(callrecord.FieldStartedAt)).
		Limit(limit).
		Offset(offset).
		All(c.Request().Context())
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"calls":  calls,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// GetCall returns a single call record
func (h *CallHandler) GetCall(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return apierrors.UnauthorizedError(c, "")
	}

	callID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	call, err := h.db.CallRecord.Query().
		Where(callrecord.IDEQ(callID), callrecord.TenantIDEQ(tenantID)).
		Only(c.Request().Context())
	if err != nil {
		if ent.IsNotFound(err) {
			return apierrors.NotFoundError(c, "call record")
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, call)
}

// GetCallStats returns aggregate call statistics for the authenticated tenant
func (h *CallHandler) GetCallStats(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return apierrors.UnauthorizedError(c, "")
	}

	query := h.db.CallRecord.Query().
		Where(callrecord.TenantIDEQ(tenantID))

	if from := c.QueryParam("start_date"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			query = query.Where(callrecord.StartedAtGTE(t))
		}
	}
	if to := c.QueryParam("end_date"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			query = query.Where(callrecord.StartedAtLTE(t))
		}
	}

	calls, err := query.All(c.Request().Context())
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	stats := models.CallStats{TotalCalls: len(calls)}
	for _, call := range calls {
		if call.Status == "completed" {
			stats.CompletedCalls++
		}
		if call.Direction == callrecord.DirectionInbound {
			stats.InboundCalls++
		} else {
			stats.OutboundCalls++
		}
		stats.TotalDuration += call.Duration
		stats.TotalCost += call.Cost
		if call.RecordingURL != nil && *call.RecordingURL != "" {
			stats.RecordedCalls++
		}
	}

	if stats.TotalCalls > 0 {
		stats.AverageDuration = float64(stats.TotalDuration) / float64(stats.TotalCalls)
		stats.SuccessRate = float64(stats.CompletedCalls) / float64(stats.TotalCalls) * 100
	}

	return c.JSON(http.StatusOK, stats)
}
