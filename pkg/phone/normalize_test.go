package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPlaceholder(t *testing.T) {
	t.Run("Success - real numbers are not placeholders", func(t *testing.T) {
		assert.False(t, IsPlaceholder("+12125551234"))
		assert.False(t, IsPlaceholder("(212) 555-1234"))
	})

	t.Run("Success - known placeholders detected", func(t *testing.T) {
		assert.True(t, IsPlaceholder(""))
		assert.True(t, IsPlaceholder("  "))
		assert.True(t, IsPlaceholder("Unknown"))
		assert.True(t, IsPlaceholder("ANONYMOUS"))
		assert.True(t, IsPlaceholder("restricted"))
		assert.True(t, IsPlaceholder("+266696687"))
	})
}

func TestNormalize(t *testing.T) {
	t.Run("Success - strips country code and formatting", func(t *testing.T) {
		assert.Equal(t, "2125551234", Normalize("+1 (212) 555-1234"))
		assert.Equal(t, "2125551234", Normalize("12125551234"))
		assert.Equal(t, "2125551234", Normalize("212-555-1234"))
	})

	t.Run("Success - empty input stays empty", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
		assert.Equal(t, "", Normalize("   "))
	})

	t.Run("Success - unparseable input falls back to digit stripping", func(t *testing.T) {
		assert.Equal(t, "12", Normalize("ext. 12"))
	})
}

func TestSameNumber(t *testing.T) {
	t.Run("Success - matches across formats", func(t *testing.T) {
		assert.True(t, SameNumber("+12125551234", "(212) 555-1234"))
		assert.True(t, SameNumber("12125551234", "212.555.1234"))
	})

	t.Run("Failure - different numbers do not match", func(t *testing.T) {
		assert.False(t, SameNumber("+12125551234", "+13105559999"))
	})

	t.Run("Failure - empty never matches empty", func(t *testing.T) {
		assert.False(t, SameNumber("", ""))
	})
}

func TestToE164(t *testing.T) {
	t.Run("Success - formats US number", func(t *testing.T) {
		got, err := ToE164("(212) 555-1234", "")
		require.NoError(t, err)
		assert.Equal(t, "+12125551234", got)
	})

	t.Run("Failure - empty input", func(t *testing.T) {
		_, err := ToE164("", "US")
		require.Error(t, err)
	})
}
