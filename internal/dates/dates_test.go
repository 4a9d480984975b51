package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)

func TestParseAt(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        string
		expectError bool
	}{
		{name: "ISO date YYYY-MM-DD", input: "2025-01-15", want: "2025-01-15"},
		{name: "ISO date YYYY/MM/DD", input: "2025/01/15", want: "2025-01-15"},
		{name: "day first", input: "15-01-2025", want: "2025-01-15"},
		{name: "today keyword", input: "today", want: "2026-10-18"},
		{name: "keyword is case insensitive", input: "Tomorrow", want: "2026-10-19"},
		{name: "yesterday keyword", input: "yesterday", want: "2026-10-17"},
		{name: "positive day offset", input: "+3d", want: "2026-10-21"},
		{name: "unsigned offset", input: "2w", want: "2026-11-01"},
		{name: "negative month offset", input: "-1M", want: "2026-09-18"},
		{name: "year offset", input: "+1y", want: "2027-10-18"},
		{name: "surrounding whitespace", input: "  2025-01-15 ", want: "2025-01-15"},
		{name: "empty", input: "", expectError: true},
		{name: "garbage", input: "someday", expectError: true},
		{name: "unknown unit", input: "+3q", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAt(tt.input, fixedNow)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}
}

func TestRelativeDatesAreMidnightUTC(t *testing.T) {
	got, err := ParseAt("today", fixedNow)
	require.NoError(t, err)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 0, got.Hour())
}

func TestNormalizeDue(t *testing.T) {
	got, err := NormalizeDue("tomorrow", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", got)

	got, err = NormalizeDue("  ", fixedNow)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = NormalizeDue("soonish", fixedNow)
	assert.Error(t, err)
}

func TestParseRange(t *testing.T) {
	t.Run("inclusive bounds", func(t *testing.T) {
		from, to, err := ParseRange("2026-01-01", "2026-01-31", fixedNow)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, 31, to.Day())
		assert.Equal(t, 23, to.Hour())
	})

	t.Run("same day", func(t *testing.T) {
		from, to, err := ParseRange("today", "today", fixedNow)
		require.NoError(t, err)
		assert.True(t, to.After(from))
	})

	t.Run("bad start", func(t *testing.T) {
		_, _, err := ParseRange("nope", "2026-01-31", fixedNow)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid range start")
	})

	t.Run("bad end", func(t *testing.T) {
		_, _, err := ParseRange("2026-01-01", "", fixedNow)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid range end")
	})

	t.Run("end before start", func(t *testing.T) {
		from, to, err := ParseRange("2026-02-01", "2026-01-01", fixedNow)
		require.NoError(t, err)
		assert.True(t, to.Before(from))
	})
}
