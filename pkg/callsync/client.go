package callsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

var (
	// ErrUnauthorized is returned when the upstream rejects the bearer token
	ErrUnauthorized = errors.New("upstream returned unauthorized")
)

// UpstreamError is a non-2xx, non-401 upstream response; it aborts the run
// with the status and body surfaced to the caller.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream API error: status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the upstream call-log API.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a new upstream API client.
func NewClient(baseURL string) *Client {
	return &Client{
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
	}
}

// ListCallsParams are the query parameters for one page request.
type ListCallsParams struct {
	Token      string
	LocationID string
	Start      time.Time
	End        time.Time
	Timezone   string
	Page       int
	PageSize   int
}

type listCallsResponse struct {
	Calls []RawCall `json:"calls"`
	Total int       `json:"total"`
}

// ListCalls fetches one page of call records for a location and date window.
func (c *Client) ListCalls(ctx context.Context, p ListCallsParams) ([]RawCall, error) {
	q := url.Values{}
	q.Set("locationId", p.LocationID)
	q.Set("startDate", p.Start.Format(time.RFC3339))
	q.Set("endDate", p.End.Format(time.RFC3339))
	q.Set("timezone", p.Timezone)
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("pageSize", strconv.Itoa(p.PageSize))

	var resp listCallsResponse
	if err := c.getJSON(ctx, "/calls?"+q.Encode(), p.Token, &resp); err != nil {
		return nil, err
	}

	return resp.Calls, nil
}

// GetCallDetail fetches the per-call detail payload used to backfill
// recording and message identifiers absent from the list response.
func (c *Client) GetCallDetail(ctx context.Context, token, locationID, callID string) (RawCall, error) {
	q := url.Values{}
	q.Set("locationId", locationID)

	var resp struct {
		Call RawCall `json:"call"`
	}
	if err := c.getJSON(ctx, "/calls/"+url.PathEscape(callID)+"?"+q.Encode(), token, &resp); err != nil {
		return nil, err
	}

	return resp.Call, nil
}

func (c *Client) getJSON(ctx context.Context, path, token string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}

	return nil
}
