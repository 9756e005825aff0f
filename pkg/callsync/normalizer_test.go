package callsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringledger/ringledger/ent"
	"github.com/ringledger/ringledger/ent/billingaccount"
)

func meteredNormalizer() *normalizer {
	return &normalizer{
		account: &ent.BillingAccount{
			InboundRateCents:  100,
			OutboundRateCents: 150,
			InboundPlan:       billingaccount.InboundPlanMetered,
		},
		agents:       map[string]*ent.Agent{},
		agentNumbers: map[int][]*ent.PhoneNumber{},
		deleted:      map[string]bool{},
		defaultRate:  100,
	}
}

func TestNormalize(t *testing.T) {
	t.Run("Success - full record normalizes", func(t *testing.T) {
		n := meteredNormalizer()
		agent := &ent.Agent{ID: 7, ProviderUserID: "user-1"}
		n.agents["user-1"] = agent
		n.agentNumbers[7] = []*ent.PhoneNumber{{ID: 3, Number: "+13105550000"}}

		nc, skip := n.normalize(RawCall{
			"id":          "abc",
			"direction":   "Incoming",
			"fromNumber":  "+12125551234",
			"toNumber":    "+13105550000",
			"status":      "completed",
			"duration":    float64(350),
			"userId":      "user-1",
			"contactName": "Jane Caller",
		})
		require.Empty(t, skip)

		assert.Equal(t, "inbound", nc.Direction)
		assert.Equal(t, 5.83, nc.Cost)
		assert.Empty(t, nc.DisplayCost)
		assert.Equal(t, "Jane Caller", nc.ContactName)
		require.NotNil(t, nc.AgentID)
		assert.Equal(t, 7, *nc.AgentID)
		require.NotNil(t, nc.PhoneNumberID)
		assert.Equal(t, 3, *nc.PhoneNumberID)
		assert.True(t, nc.Billable())
	})

	t.Run("Success - placeholder origin is skipped first", func(t *testing.T) {
		n := meteredNormalizer()
		n.deleted["abc"] = true

		// placeholder wins over the deletion tombstone
		_, skip := n.normalize(RawCall{"id": "abc", "fromNumber": "anonymous", "test": true})
		assert.Equal(t, SkipNoFromNumber, skip)
	})

	t.Run("Success - test call skipped before tombstone check", func(t *testing.T) {
		n := meteredNormalizer()
		n.deleted["abc"] = true

		_, skip := n.normalize(RawCall{"id": "abc", "fromNumber": "+12125551234", "test": true})
		assert.Equal(t, SkipTestCall, skip)
	})

	t.Run("Success - deleted call skipped outside admin backfill", func(t *testing.T) {
		n := meteredNormalizer()
		n.deleted["abc"] = true

		_, skip := n.normalize(RawCall{"id": "abc", "fromNumber": "+12125551234"})
		assert.Equal(t, SkipPreviouslyDeleted, skip)

		n.adminBackfill = true
		_, skip = n.normalize(RawCall{"id": "abc", "fromNumber": "+12125551234"})
		assert.Empty(t, skip)
	})

	t.Run("Success - identifier contact name becomes Unknown", func(t *testing.T) {
		n := meteredNormalizer()

		nc, skip := n.normalize(RawCall{
			"id":          "abc",
			"fromNumber":  "+12125551234",
			"contactName": "aK9f3LmQ7xTzR2wYb4Nc",
		})
		require.Empty(t, skip)
		assert.Equal(t, "Unknown", nc.ContactName)

		nc, _ = n.normalize(RawCall{"id": "abc", "fromNumber": "+12125551234"})
		assert.Equal(t, "Unknown", nc.ContactName)
	})

	t.Run("Success - unknown direction treated as outbound", func(t *testing.T) {
		n := meteredNormalizer()

		nc, skip := n.normalize(RawCall{
			"id":         "abc",
			"direction":  "sideways",
			"fromNumber": "+12125551234",
			"duration":   float64(60),
		})
		require.Empty(t, skip)
		assert.Equal(t, "outbound", nc.Direction)
		assert.Equal(t, 1.50, nc.Cost)
	})
}

func TestComputeCost(t *testing.T) {
	t.Run("Success - per-minute metering rounds to cents", func(t *testing.T) {
		n := meteredNormalizer()

		cost, display := n.computeCost("inbound", 350)
		assert.Equal(t, 5.83, cost)
		assert.Empty(t, display)

		cost, _ = n.computeCost("inbound", 60)
		assert.Equal(t, 1.00, cost)

		cost, _ = n.computeCost("inbound", 0)
		assert.Equal(t, 0.0, cost)
	})

	t.Run("Success - unlimited plan shows INCLUDED for inbound only", func(t *testing.T) {
		n := meteredNormalizer()
		n.account.InboundPlan = billingaccount.InboundPlanUnlimited

		cost, display := n.computeCost("inbound", 350)
		assert.Equal(t, 0.0, cost)
		assert.Equal(t, DisplayCostIncluded, display)

		cost, display = n.computeCost("outbound", 60)
		assert.Equal(t, 1.50, cost)
		assert.Empty(t, display)
	})

	t.Run("Success - missing account bills at the default rate", func(t *testing.T) {
		n := meteredNormalizer()
		n.account = nil

		cost, display := n.computeCost("outbound", 120)
		assert.Equal(t, 2.00, cost)
		assert.Empty(t, display)
	})
}

func TestMatchNumber(t *testing.T) {
	t.Run("Success - digit match across formats", func(t *testing.T) {
		n := meteredNormalizer()
		n.agentNumbers[1] = []*ent.PhoneNumber{
			{ID: 10, Number: "+13105550000"},
			{ID: 11, Number: "+14155551111"},
		}

		got := n.matchNumber(1, "(310) 555-0000", "+12125551234")
		require.NotNil(t, got)
		assert.Equal(t, 10, *got)
	})

	t.Run("Success - sole assigned number is the fallback", func(t *testing.T) {
		n := meteredNormalizer()
		n.agentNumbers[1] = []*ent.PhoneNumber{{ID: 10, Number: "+13105550000"}}

		got := n.matchNumber(1, "+19995550000", "+18885550000")
		require.NotNil(t, got)
		assert.Equal(t, 10, *got)
	})

	t.Run("Failure - ambiguous and unmatched stays nil", func(t *testing.T) {
		n := meteredNormalizer()
		n.agentNumbers[1] = []*ent.PhoneNumber{
			{ID: 10, Number: "+13105550000"},
			{ID: 11, Number: "+14155551111"},
		}

		assert.Nil(t, n.matchNumber(1, "+19995550000", "+18885550000"))
		assert.Nil(t, n.matchNumber(2, "+13105550000", ""))
	})
}
