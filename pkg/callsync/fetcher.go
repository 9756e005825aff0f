package callsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ringledger/ringledger/pkg/models"
)

// fetcher walks the pages of each window and merges results into a
// run-scoped map keyed by upstream ID, so a record straddling a window
// boundary is counted once.
type fetcher struct {
	client     *Client
	tokens     *TokenManager
	token      string
	locationID string
	timezone   string
	pageSize   int
	maxPages   int

	trace []models.PageTrace
	apiMS int64
}

// fetchWindow pages through one window until a short page signals
// end-of-data or the page ceiling trips. On an unauthorized response it
// spends the run's one-shot token refresh and retries the same request once.
func (f *fetcher) fetchWindow(ctx context.Context, w window, merged map[string]RawCall) error {
	for page := 1; ; page++ {
		if page > f.maxPages {
			return fmt.Errorf("window %s exceeded page ceiling of %d pages",
				w.start.Format("2006-01-02"), f.maxPages)
		}

		calls, latency, err := f.fetchPage(ctx, w, page)
		if err != nil {
			return err
		}

		f.trace = append(f.trace, models.PageTrace{
			WindowStart: w.start,
			WindowEnd:   w.end,
			Page:        page,
			Records:     len(calls),
			LatencyMs:   latency.Milliseconds(),
		})

		for _, call := range calls {
			id := call.ProviderCallID()
			if id == "" {
				continue
			}
			merged[id] = call
		}

		if len(calls) < f.pageSize {
			return nil
		}
	}
}

func (f *fetcher) fetchPage(ctx context.Context, w window, page int) ([]RawCall, time.Duration, error) {
	params := ListCallsParams{
		Token:      f.token,
		LocationID: f.locationID,
		Start:      w.start,
		End:        w.end,
		Timezone:   f.timezone,
		Page:       page,
		PageSize:   f.pageSize,
	}

	start := time.Now()
	calls, err := f.client.ListCalls(ctx, params)
	latency := time.Since(start)
	f.apiMS += latency.Milliseconds()

	if errors.Is(err, ErrUnauthorized) {
		token, refreshErr := f.tokens.RefreshOnAuthFailure(ctx)
		if refreshErr != nil {
			return nil, latency, refreshErr
		}
		f.token = token
		params.Token = token

		retryStart := time.Now()
		calls, err = f.client.ListCalls(ctx, params)
		retryLatency := time.Since(retryStart)
		f.apiMS += retryLatency.Milliseconds()
		latency += retryLatency

		if errors.Is(err, ErrUnauthorized) {
			return nil, latency, ErrReauthRequired
		}
	}

	if err != nil {
		return nil, latency, err
	}

	return calls, latency, nil
}

// fetchDetail is the best-effort per-record enrichment request; failures are
// reported to the caller for logging but never abort the run.
func (f *fetcher) fetchDetail(ctx context.Context, callID string) (RawCall, error) {
	start := time.Now()
	detail, err := f.client.GetCallDetail(ctx, f.token, f.locationID, callID)
	f.apiMS += time.Since(start).Milliseconds()
	return detail, err
}
