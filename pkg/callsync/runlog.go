package callsync

import (
	"context"
	"fmt"
	"time"

	"github.com/ringledger/ringledger/ent"
	"github.com/ringledger/ringledger/ent/syncrun"
	"github.com/ringledger/ringledger/pkg/models"
)

// maxSkippedSamples bounds how many skipped raw items a run retains for
// debugging, so runs never persist unbounded raw payloads.
const maxSkippedSamples = 50

// RunLogger opens a run record before any work begins and closes it exactly
// once with the final counts, making the closed run the single source of
// truth for what happened.
type RunLogger struct {
	db *ent.Client
}

// NewRunLogger creates a run logger.
func NewRunLogger(db *ent.Client) *RunLogger {
	return &RunLogger{db: db}
}

// Open creates the in-progress run row.
func (l *RunLogger) Open(ctx context.Context, req *SyncRequest, timezone string) (*ent.SyncRun, error) {
	builder := l.db.SyncRun.
		Create().
		SetTenantID(req.TenantID).
		SetKind(syncrun.Kind(req.Kind)).
		SetStatus(syncrun.StatusInProgress).
		SetTimezone(timezone)

	if req.Start != nil {
		builder = builder.SetRequestedStart(*req.Start)
	}
	if req.End != nil {
		builder = builder.SetRequestedEnd(*req.End)
	}
	if req.ActorID != "" {
		builder = builder.SetTriggeredBy(req.ActorID)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open sync run: %w", err)
	}

	return run, nil
}

// Close finalizes the run. It uses a cancellation-free context so a caller
// timeout cannot leave the run permanently in-progress.
func (l *RunLogger) Close(ctx context.Context, runID int, status syncrun.Status, j *runJournal, errMsg string) error {
	closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	update := l.db.SyncRun.
		UpdateOneID(runID).
		SetStatus(status).
		SetFinishedAt(time.Now()).
		SetTotal(j.total).
		SetInserted(j.inserted).
		SetUpdated(j.updated).
		SetSkipped(j.skipped).
		SetAPIMs(j.apiMS).
		SetTotalMs(time.Since(j.startedAt).Milliseconds()).
		SetLogLines(j.logLines).
		SetSkipCounts(j.skipCounts).
		SetSkippedSamples(j.samples).
		SetPageTrace(j.trace)

	if errMsg != "" {
		update = update.SetError(errMsg)
	}
	if j.effective != nil {
		update = update.
			SetEffectiveStart(j.effective.start).
			SetEffectiveEnd(j.effective.end)
		if j.effective.bypassedCutoff != nil {
			update = update.SetBypassedCutoffAt(*j.effective.bypassedCutoff)
		}
	}

	if _, err := update.Save(closeCtx); err != nil {
		return fmt.Errorf("failed to close sync run %d: %w", runID, err)
	}

	return nil
}

// runJournal accumulates everything one run will be closed with. It is owned
// by a single run value, never shared, so concurrent runs stay isolated.
type runJournal struct {
	startedAt  time.Time
	effective  *effectiveWindow
	logLines   []string
	skipCounts map[string]int
	samples    []map[string]interface{}
	trace      []models.PageTrace

	total    int
	inserted int
	updated  int
	skipped  int
	apiMS    int64
}

func newRunJournal() *runJournal {
	return &runJournal{
		startedAt:  time.Now(),
		skipCounts: make(map[string]int),
	}
}

// logf appends a timestamped free-text line to the run log.
func (j *runJournal) logf(format string, args ...interface{}) {
	line := fmt.Sprintf("[%s] %s", time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...))
	j.logLines = append(j.logLines, line)
}

// skip counts one skipped record and keeps a bounded sample of the raw item.
func (j *runJournal) skip(reason SkipReason, raw RawCall) {
	j.skipped++
	j.skipCounts[string(reason)]++

	if len(j.samples) < maxSkippedSamples && raw != nil {
		sample := make(map[string]interface{}, len(raw)+1)
		for k, v := range raw {
			sample[k] = v
		}
		sample["skip_reason"] = string(reason)
		j.samples = append(j.samples, sample)
	}
}
