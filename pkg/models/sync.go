package models

import "time"

// SyncTriggerRequest represents a request to trigger a call-record sync
type SyncTriggerRequest struct {
	TenantID  int        `json:"tenant_id" validate:"required"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Timezone  string     `json:"timezone,omitempty"`
}

// BackfillRequest represents an administrative backfill request
type BackfillRequest struct {
	TenantID  int        `json:"tenant_id" validate:"required"`
	StartDate *time.Time `json:"start_date" validate:"required"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Timezone  string     `json:"timezone,omitempty"`
	ActorID   string     `json:"actor_id" validate:"required"`
}

// SyncResponse represents the outcome of a sync invocation
type SyncResponse struct {
	Success    bool           `json:"success"`
	RunID      int            `json:"run_id"`
	Total      int            `json:"total"`
	Inserted   int            `json:"inserted"`
	Updated    int            `json:"updated"`
	Skipped    int            `json:"skipped"`
	SkipCounts map[string]int `json:"skip_counts,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// PageTrace records one upstream page request for run observability
type PageTrace struct {
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	Page        int       `json:"page"`
	Records     int       `json:"records"`
	LatencyMs   int64     `json:"latency_ms"`
}

// CallStats holds aggregate statistics for a tenant's call records
type CallStats struct {
	TotalCalls      int     `json:"total_calls"`
	CompletedCalls  int     `json:"completed_calls"`
	InboundCalls    int     `json:"inbound_calls"`
	OutboundCalls   int     `json:"outbound_calls"`
	TotalDuration   int     `json:"total_duration"`
	AverageDuration float64 `json:"average_duration"`
	TotalCost       float64 `json:"total_cost"`
	RecordedCalls   int     `json:"recorded_calls"`
	SuccessRate     float64 `json:"success_rate"`
}

// ErrorResponse represents a standard API error payload
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
