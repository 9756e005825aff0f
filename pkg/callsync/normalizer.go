package callsync

import (
	"math"
	"regexp"
	"strings"

	"github.com/ringledger/ringledger/ent"
	"github.com/ringledger/ringledger/ent/billingaccount"
	"github.com/ringledger/ringledger/pkg/phone"
)

// identifierPattern matches contact-name fields that clearly hold a raw
// upstream identifier rather than a person's name.
var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{18,}$`)

// normalizer maps raw upstream calls into the canonical internal shape,
// resolves agent and phone-number associations and computes billing cost.
type normalizer struct {
	account       *ent.BillingAccount
	agents        map[string]*ent.Agent         // by upstream user ID
	agentNumbers  map[int][]*ent.PhoneNumber    // by agent ID
	deleted       map[string]bool               // provider call IDs deleted locally
	adminBackfill bool
	defaultRate   int // cents per minute when no rate is configured
}

// normalize converts one raw record, returning a skip reason instead when the
// record must not be persisted. Skip conditions are checked in priority
// order; the first match wins.
func (n *normalizer) normalize(raw RawCall) (*NormalizedCall, SkipReason) {
	from := raw.FromNumber()
	if phone.IsPlaceholder(from) {
		return nil, SkipNoFromNumber
	}

	if raw.IsTest() {
		return nil, SkipTestCall
	}

	id := raw.ProviderCallID()
	if n.deleted[id] && !n.adminBackfill {
		return nil, SkipPreviouslyDeleted
	}

	direction := normalizeDirection(raw.Direction())
	duration := raw.DurationSeconds()
	cost, displayCost := n.computeCost(direction, duration)

	nc := &NormalizedCall{
		ProviderCallID: id,
		Direction:      direction,
		FromNumber:     from,
		ToNumber:       raw.ToNumber(),
		Status:         raw.Status(),
		Duration:       duration,
		Cost:           cost,
		DisplayCost:    displayCost,
		ContactName:    displayName(raw.ContactName()),
		RecordingURL:   raw.RecordingURL(),
		MessageID:      raw.MessageID(),
		TranscriptID:   raw.TranscriptID(),
		IsTest:         false,
		StartedAt:      raw.StartedAt(),
		EndedAt:        raw.EndedAt(),
	}

	if agent, ok := n.agents[raw.ProviderUserID()]; ok {
		nc.AgentID = &agent.ID
		nc.PhoneNumberID = n.matchNumber(agent.ID, from, nc.ToNumber)
	}

	return nc, ""
}

// matchNumber matches the call's endpoints against the agent's numbers on
// normalized digits, falling back to the agent's sole number when exactly
// one is assigned.
func (n *normalizer) matchNumber(agentID int, from, to string) *int {
	numbers := n.agentNumbers[agentID]
	if len(numbers) == 0 {
		return nil
	}

	for _, pn := range numbers {
		if phone.SameNumber(pn.Number, from) || phone.SameNumber(pn.Number, to) {
			return &pn.ID
		}
	}

	if len(numbers) == 1 {
		return &numbers[0].ID
	}

	return nil
}

// computeCost applies the tenant's plan: unlimited-plan inbound calls cost
// nothing and show "INCLUDED"; everything else is metered per minute. A
// direction with no configured rate bills at the system default rather than
// producing a zero-cost billable call.
func (n *normalizer) computeCost(direction string, durationSecs int) (float64, string) {
	if direction == "inbound" && n.account != nil &&
		n.account.InboundPlan == billingaccount.InboundPlanUnlimited {
		return 0, DisplayCostIncluded
	}

	rate := n.rateFor(direction)
	if rate <= 0 {
		rate = n.defaultRate
	}

	cents := math.Round(float64(durationSecs) / 60.0 * float64(rate))
	return cents / 100, ""
}

func (n *normalizer) rateFor(direction string) int {
	if n.account == nil {
		return 0
	}
	if direction == "inbound" {
		return n.account.InboundRateCents
	}
	return n.account.OutboundRateCents
}

// normalizeDirection folds upstream direction synonyms onto the two internal
// values; anything unrecognized is treated as outbound.
func normalizeDirection(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "inbound", "incoming", "in":
		return "inbound"
	default:
		return "outbound"
	}
}

// displayName falls back to "Unknown" when the source fields are empty or
// clearly contain a raw identifier instead of a name.
func displayName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || identifierPattern.MatchString(name) {
		return "Unknown"
	}
	return name
}
