package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWhen(t *testing.T) {
	t.Run("empty means now", func(t *testing.T) {
		before := time.Now()
		got, err := ParseWhen("")
		require.NoError(t, err)
		assert.WithinDuration(t, before, got, time.Second)
	})

	t.Run("now keyword", func(t *testing.T) {
		got, err := ParseWhen("Now")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), got, time.Second)
	})

	t.Run("relative expression", func(t *testing.T) {
		got, err := ParseWhen("2 hours ago")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(-2*time.Hour), got, time.Minute)
	})

	t.Run("yesterday", func(t *testing.T) {
		got, err := ParseWhen("yesterday")
		require.NoError(t, err)
		assert.Equal(t, time.Now().AddDate(0, 0, -1).Day(), got.Day())
	})

	t.Run("absolute date", func(t *testing.T) {
		got, err := ParseWhen("2026-08-01")
		require.NoError(t, err)
		assert.Equal(t, 2026, got.Year())
		assert.Equal(t, time.August, got.Month())
		assert.Equal(t, 1, got.Day())
	})

	t.Run("gibberish", func(t *testing.T) {
		_, err := ParseWhen("florb glorp")
		assert.Error(t, err)
	})
}

func TestParseAmount(t *testing.T) {
	t.Run("decimal point", func(t *testing.T) {
		got, err := ParseAmount("12.50")
		require.NoError(t, err)
		assert.Equal(t, 12.5, got)
	})

	t.Run("decimal comma", func(t *testing.T) {
		got, err := ParseAmount("3,20")
		require.NoError(t, err)
		assert.Equal(t, 3.2, got)
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		got, err := ParseAmount("  7 ")
		require.NoError(t, err)
		assert.Equal(t, 7.0, got)
	})

	t.Run("rejects", func(t *testing.T) {
		for _, input := range []string{"", "abc", "1,2,3", "NaN", "Inf", "-Inf"} {
			_, err := ParseAmount(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestParseCalories(t *testing.T) {
	got, err := ParseCalories("450")
	require.NoError(t, err)
	assert.Equal(t, 450, got)

	_, err = ParseCalories("-1")
	assert.Error(t, err)

	_, err = ParseCalories("4.5")
	assert.Error(t, err)
}
