package callsync

import (
	"context"
	"errors"
	"time"

	"github.com/ringledger/ringledger/ent"
	"github.com/ringledger/ringledger/ent/callrecord"
)

var (
	// ErrMissingTenant is returned when no tenant ID was supplied
	ErrMissingTenant = errors.New("tenant ID is required")
	// ErrInvalidRange is returned when the requested start is after the end
	ErrInvalidRange = errors.New("start date must not be after end date")
)

// defaultLookback bounds a first sync when no other start can be derived.
const defaultLookback = 7 * 24 * time.Hour

// window is one day-aligned chunk of the requested date range.
type window struct {
	start time.Time
	end   time.Time
}

// chunkWindows splits [start, end] into windows no longer than one calendar
// day in the given location. Consecutive windows share their boundary
// instant; upstream-ID dedup makes the overlap harmless. The upstream date
// filter and pagination behave reliably only within bounded windows.
func chunkWindows(start, end time.Time, loc *time.Location) []window {
	if !start.Before(end) {
		return []window{{start: start, end: end}}
	}

	var windows []window
	cur := start.In(loc)
	endLoc := end.In(loc)

	for cur.Before(endLoc) {
		next := startOfNextDay(cur, loc)
		if next.After(endLoc) {
			next = endLoc
		}
		windows = append(windows, window{start: cur, end: next})
		cur = next
	}

	return windows
}

func startOfNextDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
}

// effectiveWindow is the outcome of the window-selection policy.
type effectiveWindow struct {
	start time.Time
	end   time.Time
	// bypassedCutoff carries the plan-reset cutoff an admin backfill ignored,
	// recorded in the run for audit
	bypassedCutoff *time.Time
	// note is a human-readable explanation appended to the run log
	note string
}

// resolveWindow applies the window-selection policy, in order: admin
// backfills use the caller start verbatim; the tenant's plan-reset cutoff
// floors everything else; an incremental sync resumes one second after the
// most recently stored call; otherwise fall back to the default lookback.
func resolveWindow(ctx context.Context, db *ent.Client, req *SyncRequest, acct *ent.BillingAccount, now time.Time) (*effectiveWindow, error) {
	end := now
	if req.End != nil {
		end = *req.End
	}

	var cutoff *time.Time
	if acct != nil {
		cutoff = acct.CallsResetAt
	}

	if req.Kind == KindAdminBackfill && req.Start != nil {
		ew := &effectiveWindow{start: *req.Start, end: end, note: "admin backfill: using caller-supplied start"}
		if cutoff != nil && cutoff.After(*req.Start) {
			ew.bypassedCutoff = cutoff
			ew.note = "admin backfill: bypassing plan-reset cutoff"
		}
		return ew, nil
	}

	if cutoff != nil && (req.Start == nil || cutoff.After(*req.Start)) {
		return &effectiveWindow{start: *cutoff, end: end, note: "window floored at plan-reset cutoff"}, nil
	}

	if req.Start != nil {
		return &effectiveWindow{start: *req.Start, end: end, note: "using caller-supplied start"}, nil
	}

	latest, err := db.CallRecord.
		Query().
		Where(
			callrecord.TenantIDEQ(req.TenantID),
			callrecord.StartedAtNotNil(),
		).
		Order(ent.Desc(callrecord.FieldStartedAt)).
		First(ctx)

	if err == nil && latest.StartedAt != nil {
		return &effectiveWindow{
			start: latest.StartedAt.Add(time.Second),
			end:   end,
			note:  "incremental sync from last stored call",
		}, nil
	}

	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}

	return &effectiveWindow{start: now.Add(-defaultLookback), end: end, note: "first sync: using default lookback"}, nil
}
