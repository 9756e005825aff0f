package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/ringledger/ringledger/ent"
	"github.com/ringledger/ringledger/ent/syncrun"
	apierrors "github.com/ringledger/ringledger/pkg/api/errors"
	"github.com/ringledger/ringledger/pkg/api/middleware"
	"github.com/ringledger/ringledger/pkg/callsync"
	"github.com/ringledger/ringledger/pkg/models"
)

// SyncHandler exposes sync trigger and run-inspection endpoints
type SyncHandler struct {
	db       *ent.Client
	sync     *callsync.Service
	validate *validator.Validate
}

func NewSyncHandler(db *ent.Client, sync *callsync.Service) *SyncHandler {
	return &SyncHandler{
		db:       db,
		sync:     sync,
		validate: validator.New(),
	}
}

// TriggerSync starts a manual sync for the authenticated tenant
func (h *SyncHandler) TriggerSync(c echo.Context) error {
	var req models.SyncTriggerRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	// Non-admin callers can only sync their own tenant
	if tenantID, ok := middleware.TenantID(c); ok && req.TenantID == 0 {
		req.TenantID = tenantID
	}

	if err := h.validate.Struct(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.sync.Run(c.Request().Context(), &callsync.SyncRequest{
		TenantID: req.TenantID,
		Start:    req.StartDate,
		End:      req.EndDate,
		Kind:     callsync.KindManual,
		Timezone: req.Timezone,
		ActorID:  actor(c),
	})
	if err != nil {
		return h.syncError(c, result, err)
	}

	return c.JSON(http.StatusOK, syncResponse(result))
}

// TriggerBackfill starts an administrative backfill that ingests records
// before the plan-reset cutoff
func (h *SyncHandler) TriggerBackfill(c echo.Context) error {
	var req models.BackfillRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	if err := h.validate.Struct(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.sync.Run(c.Request().Context(), &callsync.SyncRequest{
		TenantID: req.TenantID,
		Start:    req.StartDate,
		End:      req.EndDate,
		Kind:     callsync.KindAdminBackfill,
		Timezone: req.Timezone,
		ActorID:  req.ActorID,
	})
	if err != nil {
		return h.syncError(c, result, err)
	}

	return c.JSON(http.StatusOK, syncResponse(result))
}

// ListRuns returns recent sync runs for the authenticated tenant
func (h *SyncHandler) ListRuns(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return apierrors.UnauthorizedError(c, "")
	}

	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	runs, err := h.db.SyncRun.Query().
		Where(syncrun.TenantIDEQ(tenantID)).
		Order(ent.Desc(syncrun.FieldStartedAt)).
		Limit(limit).
		All(c.Request().Context())
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"runs":  runs,
		"count": len(runs),
	})
}

// GetRun returns a single sync run with its full journal
func (h *SyncHandler) GetRun(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return apierrors.UnauthorizedError(c, "")
	}

	runID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	run, err := h.db.SyncRun.Query().
		Where(syncrun.IDEQ(runID), syncrun.TenantIDEQ(tenantID)).
		Only(c.Request().Context())
	if err != nil {
		if ent.IsNotFound(err) {
			return apierrors.NotFoundError(c, "sync run")
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, run)
}

// syncError maps pipeline errors to HTTP statuses: bad input is 400,
// credential failures are 401, upstream failures pass through as 502.
func (h *SyncHandler) syncError(c echo.Context, result *callsync.SyncResult, err error) error {
	var upstream *callsync.UpstreamError

	switch {
	case errors.Is(err, callsync.ErrMissingTenant), errors.Is(err, callsync.ErrInvalidRange):
		return apierrors.ValidationError(c, err)
	case errors.Is(err, callsync.ErrNoConnection):
		return apierrors.UnauthorizedError(c, "No CRM connection configured for this tenant.")
	case errors.Is(err, callsync.ErrReauthRequired):
		return apierrors.UnauthorizedError(c, "CRM credentials expired. Please reconnect the integration.")
	case errors.As(err, &upstream):
		return apierrors.UpstreamError(c, "The call provider returned an error. Please try again later.")
	default:
		resp := models.SyncResponse{Success: false, Error: "sync failed"}
		if result != nil {
			resp.RunID = result.RunID
		}
		c.Logger().Errorf("sync failed: %v", err)
		return c.JSON(http.StatusInternalServerError, resp)
	}
}

func syncResponse(r *callsync.SyncResult) models.SyncResponse {
	return models.SyncResponse{
		Success:    r.Success,
		RunID:      r.RunID,
		Total:      r.Total,
		Inserted:   r.Inserted,
		Updated:    r.Updated,
		Skipped:    r.Skipped,
		SkipCounts: r.SkipCounts,
	}
}

func actor(c echo.Context) string {
	if email, ok := c.Get("email").(string); ok {
		return email
	}
	return "api"
}
