package callsync

import (
	"context"
	"fmt"
	"runtime/debug"
	"sort"
	"time"

	"github.com/ringledger/ringledger/ent"
	"github.com/ringledger/ringledger/ent/agent"
	"github.com/ringledger/ringledger/ent/billingaccount"
	"github.com/ringledger/ringledger/ent/crmconnection"
	"github.com/ringledger/ringledger/ent/deletedcall"
	"github.com/ringledger/ringledger/ent/phonenumber"
	"github.com/ringledger/ringledger/ent/syncrun"
	"github.com/ringledger/ringledger/pkg/logger"
	"github.com/ringledger/ringledger/pkg/metrics"
)

// Kind is what triggered a sync run.
type Kind string

const (
	// KindManual is a user-triggered sync
	KindManual Kind = "manual"
	// KindAuto is a scheduler-triggered sync
	KindAuto Kind = "auto"
	// KindAdminBackfill is an administrative backfill that bypasses the
	// plan-reset cutoff
	KindAdminBackfill Kind = "admin_backfill"
)

// DefaultTimezone is used when neither the request nor the tenant supplies one.
const DefaultTimezone = "America/New_York"

// SyncRequest describes one sync invocation.
type SyncRequest struct {
	TenantID int
	Start    *time.Time
	End      *time.Time
	Kind     Kind
	Timezone string
	ActorID  string
}

// SyncResult is the outcome surfaced to the caller. On failure the run ID is
// still populated when a run was opened, for later inspection.
type SyncResult struct {
	Success    bool
	RunID      int
	Total      int
	Inserted   int
	Updated    int
	Skipped    int
	SkipCounts map[string]int
}

// Config holds the sync pipeline configuration.
type Config struct {
	BaseURL           string
	OAuth             OAuthConfig
	PageSize          int
	MaxPagesPerWindow int
	DefaultRateCents  int
}

// Service runs the call-record synchronization pipeline.
type Service struct {
	db      *ent.Client
	client  *Client
	cfg     Config
	runs    *RunLogger
	log     logger.Logger
	metrics *metrics.Metrics
}

// NewService creates a new sync service. The metrics argument may be nil.
func NewService(db *ent.Client, cfg Config, log logger.Logger, m *metrics.Metrics) *Service {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 50
	}
	if cfg.MaxPagesPerWindow <= 0 {
		cfg.MaxPagesPerWindow = 200
	}
	if cfg.DefaultRateCents <= 0 {
		cfg.DefaultRateCents = 100
	}
	if log == nil {
		log = logger.Default()
	}

	return &Service{
		db:      db,
		client:  NewClient(cfg.BaseURL),
		cfg:     cfg,
		runs:    NewRunLogger(db),
		log:     log,
		metrics: m,
	}
}

// Run executes one synchronization end to end. Input errors are rejected
// before a run is opened; once a run exists it always reaches a terminal
// status, including on panics.
func (s *Service) Run(ctx context.Context, req *SyncRequest) (result *SyncResult, err error) {
	if req.TenantID == 0 {
		return nil, ErrMissingTenant
	}
	if req.Start != nil && req.End != nil && req.Start.After(*req.End) {
		return nil, ErrInvalidRange
	}
	if req.Kind == "" {
		req.Kind = KindManual
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, locErr := time.LoadLocation(timezone)
	if locErr != nil {
		s.log.Warn("unknown timezone, falling back to default", "timezone", timezone)
		timezone = DefaultTimezone
		loc, _ = time.LoadLocation(DefaultTimezone)
	}

	run, err := s.runs.Open(ctx, req, timezone)
	if err != nil {
		return nil, err
	}

	journal := newRunJournal()
	result = &SyncResult{RunID: run.ID, SkipCounts: journal.skipCounts}

	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("panic: %v\n%s", r, debug.Stack())
			s.log.Error("sync run panicked", "run_id", run.ID, "panic", fmt.Sprint(r))
			s.closeRun(ctx, run.ID, req, syncrun.StatusFailed, journal, msg)
			err = fmt.Errorf("internal error during sync run %d", run.ID)
		}
	}()

	if err := s.execute(ctx, req, run.ID, loc, timezone, journal, result); err != nil {
		s.closeRun(ctx, run.ID, req, syncrun.StatusFailed, journal, err.Error())
		return result, err
	}

	s.closeRun(ctx, run.ID, req, syncrun.StatusCompleted, journal, "")
	result.Success = true
	return result, nil
}

// execute is the fallible body of a run; the caller owns run closure.
func (s *Service) execute(ctx context.Context, req *SyncRequest, runID int, loc *time.Location, timezone string, journal *runJournal, result *SyncResult) error {
	conn, err := s.db.CRMConnection.
		Query().
		Where(crmconnection.TenantIDEQ(req.TenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNoConnection
		}
		return fmt.Errorf("failed to load CRM connection: %w", err)
	}

	tokens := NewTokenManager(s.db, s.cfg.OAuth, conn)
	token, err := tokens.EnsureValidToken(ctx)
	if err != nil {
		s.recordSyncError(ctx, conn.ID, err)
		return fmt.Errorf("%w: %v", ErrReauthRequired, err)
	}

	acct, err := s.db.BillingAccount.
		Query().
		Where(billingaccount.TenantIDEQ(req.TenantID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to load billing account: %w", err)
	}
	if acct == nil {
		journal.logf("no billing account configured; using system default rates")
	}

	effective, err := resolveWindow(ctx, s.db, req, acct, time.Now())
	if err != nil {
		return fmt.Errorf("failed to resolve sync window: %w", err)
	}
	journal.effective = effective
	journal.logf("window resolved: %s .. %s (%s)",
		effective.start.Format(time.RFC3339), effective.end.Format(time.RFC3339), effective.note)
	if effective.bypassedCutoff != nil {
		journal.logf("plan-reset cutoff %s bypassed by %s",
			effective.bypassedCutoff.Format(time.RFC3339), req.ActorID)
	}

	windows := chunkWindows(effective.start, effective.end, loc)
	journal.logf("chunked into %d day window(s)", len(windows))

	f := &fetcher{
		client:     s.client,
		tokens:     tokens,
		token:      token,
		locationID: conn.LocationID,
		timezone:   timezone,
		pageSize:   s.cfg.PageSize,
		maxPages:   s.cfg.MaxPagesPerWindow,
	}

	merged := make(map[string]RawCall)
	for _, w := range windows {
		if err := f.fetchWindow(ctx, w, merged); err != nil {
			journal.trace = f.trace
			journal.apiMS = f.apiMS
			s.recordSyncError(ctx, conn.ID, err)
			return err
		}
	}
	journal.trace = f.trace
	journal.total = len(merged)
	journal.logf("fetched %d unique record(s) across %d window(s)", len(merged), len(windows))

	norm, err := s.buildNormalizer(ctx, req, acct)
	if err != nil {
		return err
	}

	writer := &ledgerWriter{db: s.db, tenantID: req.TenantID}
	agentActivity := make(map[int]time.Time)

	for _, raw := range sortedCalls(merged) {
		nc, skip := norm.normalize(raw)
		if skip != "" {
			journal.skip(skip, raw)
			s.countRecord(string(skip))
			continue
		}

		s.enrich(ctx, f, nc, journal)

		outcome, skipReason, perr := writer.persist(ctx, nc)
		switch outcome {
		case outcomeInserted:
			journal.inserted++
			s.countRecord("inserted")
		case outcomeUpdated:
			journal.updated++
			s.countRecord("updated")
		case outcomeSkipped:
			journal.skip(skipReason, raw)
			journal.logf("persist failed for %s: %v", nc.ProviderCallID, perr)
			s.countRecord(string(skipReason))
			continue
		}

		if nc.AgentID != nil && nc.StartedAt != nil {
			if last, ok := agentActivity[*nc.AgentID]; !ok || nc.StartedAt.After(last) {
				agentActivity[*nc.AgentID] = *nc.StartedAt
			}
		}
	}

	journal.apiMS = f.apiMS
	s.markAgentActivity(ctx, agentActivity, journal)

	if _, err := s.db.CRMConnection.
		UpdateOneID(conn.ID).
		SetLastSyncAt(time.Now()).
		SetLastSyncError("").
		Save(ctx); err != nil {
		s.log.Warn("failed to record last sync time", "tenant_id", req.TenantID, "error", err)
	}

	result.Total = journal.total
	result.Inserted = journal.inserted
	result.Updated = journal.updated
	result.Skipped = journal.skipped
	return nil
}

func (s *Service) buildNormalizer(ctx context.Context, req *SyncRequest, acct *ent.BillingAccount) (*normalizer, error) {
	agents, err := s.db.Agent.
		Query().
		Where(agent.TenantIDEQ(req.TenantID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load agents: %w", err)
	}

	agentIndex := make(map[string]*ent.Agent, len(agents))
	for _, a := range agents {
		agentIndex[a.ProviderUserID] = a
	}

	numbers, err := s.db.PhoneNumber.
		Query().
		Where(
			phonenumber.TenantIDEQ(req.TenantID),
			phonenumber.AgentIDNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load phone numbers: %w", err)
	}

	numberIndex := make(map[int][]*ent.PhoneNumber)
	for _, pn := range numbers {
		numberIndex[*pn.AgentID] = append(numberIndex[*pn.AgentID], pn)
	}

	tombstones, err := s.db.DeletedCall.
		Query().
		Where(deletedcall.TenantIDEQ(req.TenantID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load deleted calls: %w", err)
	}

	deleted := make(map[string]bool, len(tombstones))
	for _, d := range tombstones {
		deleted[d.ProviderCallID] = true
	}

	return &normalizer{
		account:       acct,
		agents:        agentIndex,
		agentNumbers:  numberIndex,
		deleted:       deleted,
		adminBackfill: req.Kind == KindAdminBackfill,
		defaultRate:   s.cfg.DefaultRateCents,
	}, nil
}

// enrich backfills recording and message identifiers with one best-effort
// detail fetch. Failures are logged to the run, never fatal.
func (s *Service) enrich(ctx context.Context, f *fetcher, nc *NormalizedCall, journal *runJournal) {
	if nc.RecordingURL != "" && nc.MessageID != "" {
		return
	}

	detail, err := f.fetchDetail(ctx, nc.ProviderCallID)
	if err != nil {
		journal.logf("detail fetch failed for %s: %v", nc.ProviderCallID, err)
		return
	}

	if nc.RecordingURL == "" {
		nc.RecordingURL = detail.RecordingURL()
	}
	if nc.MessageID == "" {
		nc.MessageID = detail.MessageID()
	}
	if nc.TranscriptID == "" {
		nc.TranscriptID = detail.TranscriptID()
	}
}

// markAgentActivity updates the small derived subset of agent fields as a
// side effect of observing call activity during the run.
func (s *Service) markAgentActivity(ctx context.Context, activity map[int]time.Time, journal *runJournal) {
	for agentID, lastSeen := range activity {
		_, err := s.db.Agent.
			UpdateOneID(agentID).
			SetVerified(true).
			SetActive(true).
			SetLastActivityAt(lastSeen).
			Save(ctx)
		if err != nil {
			journal.logf("failed to mark activity for agent %d: %v", agentID, err)
		}
	}
}

func (s *Service) closeRun(ctx context.Context, runID int, req *SyncRequest, status syncrun.Status, journal *runJournal, errMsg string) {
	if err := s.runs.Close(ctx, runID, status, journal, errMsg); err != nil {
		s.log.Error("failed to close sync run", "run_id", runID, "error", err)
	}
	if s.metrics != nil {
		s.metrics.SyncRunsTotal.WithLabelValues(string(status), string(req.Kind)).Inc()
		s.metrics.SyncRunDuration.Observe(time.Since(journal.startedAt).Seconds())
	}
}

func (s *Service) countRecord(result string) {
	if s.metrics != nil {
		s.metrics.SyncRecordsTotal.WithLabelValues(result).Inc()
	}
}

// recordSyncError stores the last error on the connection for the dashboard.
func (s *Service) recordSyncError(ctx context.Context, connID int, cause error) {
	msg := cause.Error()
	if len(msg) > 500 {
		msg = msg[:500]
	}
	if _, err := s.db.CRMConnection.
		UpdateOneID(connID).
		SetLastSyncError(msg).
		Save(ctx); err != nil {
		s.log.Warn("failed to record sync error", "connection_id", connID, "error", err)
	}
}

// sortedCalls orders the merged set by start time then upstream ID so record
// processing is deterministic regardless of map iteration order.
func sortedCalls(merged map[string]RawCall) []RawCall {
	calls := make([]RawCall, 0, len(merged))
	for _, c := range merged {
		calls = append(calls, c)
	}

	sort.Slice(calls, func(i, j int) bool {
		ti, tj := calls[i].StartedAt(), calls[j].StartedAt()
		switch {
		case ti == nil && tj == nil:
			return calls[i].ProviderCallID() < calls[j].ProviderCallID()
		case ti == nil:
			return true
		case tj == nil:
			return false
		case ti.Equal(*tj):
			return calls[i].ProviderCallID() < calls[j].ProviderCallID()
		default:
			return ti.Before(*tj)
		}
	})

	return calls
}
