package callsync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawCallAliases(t *testing.T) {
	t.Run("Success - field generations fold to one accessor", func(t *testing.T) {
		modern := RawCall{"id": "a", "fromNumber": "+1", "userId": "u1"}
		legacy := RawCall{"call_id": "a", "from_number": "+1", "assigned_to": "u1"}

		assert.Equal(t, modern.ProviderCallID(), legacy.ProviderCallID())
		assert.Equal(t, modern.FromNumber(), legacy.FromNumber())
		assert.Equal(t, modern.ProviderUserID(), legacy.ProviderUserID())
	})

	t.Run("Success - contact name assembles from name parts", func(t *testing.T) {
		assert.Equal(t, "Jane Caller", RawCall{"contactName": "Jane Caller"}.ContactName())
		assert.Equal(t, "Jane Caller", RawCall{"firstName": "Jane", "lastName": "Caller"}.ContactName())
		assert.Equal(t, "Jane", RawCall{"firstName": "Jane"}.ContactName())
		assert.Empty(t, RawCall{}.ContactName())
	})

	t.Run("Success - timestamps accept RFC3339 and epoch millis", func(t *testing.T) {
		at := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

		fromString := RawCall{"startedAt": at.Format(time.RFC3339)}.StartedAt()
		require.NotNil(t, fromString)
		assert.True(t, fromString.Equal(at))

		fromMillis := RawCall{"startedAt": float64(at.UnixMilli())}.StartedAt()
		require.NotNil(t, fromMillis)
		assert.True(t, fromMillis.Equal(at))

		assert.Nil(t, RawCall{"startedAt": "not-a-time"}.StartedAt())
		assert.Nil(t, RawCall{}.StartedAt())
	})

	t.Run("Success - numbers and bools tolerate string encodings", func(t *testing.T) {
		assert.Equal(t, 350, RawCall{"duration": "350"}.DurationSeconds())
		assert.Equal(t, 350, RawCall{"duration": float64(350)}.DurationSeconds())
		assert.True(t, RawCall{"test": "true"}.IsTest())
		assert.False(t, RawCall{}.IsTest())
	})
}

func TestNormalizedCallBillable(t *testing.T) {
	assert.True(t, (&NormalizedCall{Cost: 5.83}).Billable())
	assert.False(t, (&NormalizedCall{Cost: 0}).Billable())
	assert.False(t, (&NormalizedCall{Cost: 0, DisplayCost: DisplayCostIncluded}).Billable())
}
