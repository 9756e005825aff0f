package callsync

import (
	"strconv"
	"strings"
	"time"
)

// SkipReason classifies why a fetched record was not persisted.
type SkipReason string

const (
	// SkipNoFromNumber means the origin number was missing or a placeholder
	SkipNoFromNumber SkipReason = "no_from_number"
	// SkipTestCall means the upstream flagged the call as a test
	SkipTestCall SkipReason = "is_test_call"
	// SkipPreviouslyDeleted means the call was deleted locally and must not be re-admitted
	SkipPreviouslyDeleted SkipReason = "previously_deleted"
	// SkipInsertError means persistence failed on the insert path
	SkipInsertError SkipReason = "insert_error"
	// SkipUpdateError means persistence failed on the update path
	SkipUpdateError SkipReason = "update_error"
)

// DisplayCostIncluded suppresses the numeric cost for unlimited-plan inbound calls.
const DisplayCostIncluded = "INCLUDED"

// RawCall is one upstream call object, kept as decoded JSON. The upstream API
// has shipped several field-name generations for the same concepts
// (fromNumber/from_number/from); accessor methods fold the aliases in exactly
// one place so nothing downstream ever sees them.
type RawCall map[string]interface{}

// ProviderCallID returns the upstream call identifier.
func (r RawCall) ProviderCallID() string {
	return r.str("id", "callId", "call_id")
}

// Direction returns the raw call direction.
func (r RawCall) Direction() string {
	return r.str("direction", "callDirection", "call_direction")
}

// FromNumber returns the raw origin number.
func (r RawCall) FromNumber() string {
	return r.str("fromNumber", "from_number", "from")
}

// ToNumber returns the raw destination number.
func (r RawCall) ToNumber() string {
	return r.str("toNumber", "to_number", "to")
}

// Status returns the upstream call status.
func (r RawCall) Status() string {
	return r.str("status", "callStatus", "call_status")
}

// DurationSeconds returns the call duration in seconds.
func (r RawCall) DurationSeconds() int {
	return int(r.num("duration", "callDuration", "duration_seconds"))
}

// ProviderUserID returns the upstream identifier of the agent on the call.
func (r RawCall) ProviderUserID() string {
	return r.str("userId", "assignedUserId", "user_id", "assigned_to")
}

// ContactName returns the best available contact name, possibly empty.
func (r RawCall) ContactName() string {
	if name := r.str("contactName", "contact_name"); name != "" {
		return name
	}
	first := r.str("firstName", "first_name")
	last := r.str("lastName", "last_name")
	return strings.TrimSpace(first + " " + last)
}

// RecordingURL returns the recording URL when present in the list payload.
func (r RawCall) RecordingURL() string {
	return r.str("recordingUrl", "recording_url")
}

// MessageID returns the upstream message identifier when present.
func (r RawCall) MessageID() string {
	return r.str("messageId", "message_id")
}

// TranscriptID returns the upstream transcript identifier when present.
func (r RawCall) TranscriptID() string {
	return r.str("transcriptId", "transcript_id")
}

// IsTest reports whether the upstream flagged the call as a test.
func (r RawCall) IsTest() bool {
	return r.boolVal("test", "isTest", "is_test")
}

// StartedAt returns the call start time, nil when absent or unparseable.
func (r RawCall) StartedAt() *time.Time {
	return r.timeVal("startedAt", "started_at", "dateAdded", "date_added")
}

// EndedAt returns the call end time, nil when absent or unparseable.
func (r RawCall) EndedAt() *time.Time {
	return r.timeVal("endedAt", "ended_at")
}

func (r RawCall) str(keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func (r RawCall) num(keys ...string) float64 {
	for _, k := range keys {
		v, ok := r[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

func (r RawCall) boolVal(keys ...string) bool {
	for _, k := range keys {
		v, ok := r[k]
		if !ok {
			continue
		}
		switch b := v.(type) {
		case bool:
			return b
		case string:
			if parsed, err := strconv.ParseBool(b); err == nil {
				return parsed
			}
		}
	}
	return false
}

func (r RawCall) timeVal(keys ...string) *time.Time {
	for _, k := range keys {
		v, ok := r[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case string:
			if parsed, err := time.Parse(time.RFC3339, t); err == nil {
				return &parsed
			}
		case float64:
			// epoch milliseconds
			parsed := time.UnixMilli(int64(t)).UTC()
			return &parsed
		}
	}
	return nil
}

// NormalizedCall is the canonical internal shape of one upstream call after
// alias folding, association resolution and cost computation.
type NormalizedCall struct {
	ProviderCallID string
	Direction      string // "inbound" or "outbound"
	FromNumber     string
	ToNumber       string
	Status         string
	Duration       int
	Cost           float64
	DisplayCost    string // "" or DisplayCostIncluded
	AgentID        *int
	PhoneNumberID  *int
	ContactName    string
	RecordingURL   string
	MessageID      string
	TranscriptID   string
	IsTest         bool
	StartedAt      *time.Time
	EndedAt        *time.Time
}

// Billable reports whether the call should produce a usage ledger entry.
func (n *NormalizedCall) Billable() bool {
	return n.Cost > 0 && n.DisplayCost == ""
}
