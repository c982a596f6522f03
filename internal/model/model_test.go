package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.NotEqual(t, a, b)

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0198c2a1", ShortID("0198c2a1-7b3e-7000-8000-000000000000"))
	assert.Equal(t, "abc", ShortID("abc"))
	assert.Equal(t, "", ShortID(""))
}

func TestJournalEntry(t *testing.T) {
	at := time.Now()

	t.Run("text entry", func(t *testing.T) {
		e := NewJournalEntry("slept well", at)
		assert.NotEmpty(t, e.EntityID())
		assert.Equal(t, at, e.EntityTime())
		assert.False(t, e.HasAudio())
	})

	t.Run("audio entry", func(t *testing.T) {
		e := NewAudioJournalEntry("note.m4a", at)
		assert.True(t, e.HasAudio())
		assert.Empty(t, e.Text)
	})

	t.Run("preview truncates to the first line", func(t *testing.T) {
		e := NewJournalEntry("first line\nsecond line", at)
		assert.Equal(t, "first line", e.Preview(60))
	})

	t.Run("preview truncates long lines with an ellipsis", func(t *testing.T) {
		e := NewJournalEntry("abcdefghij", at)
		assert.Equal(t, "abcd…", e.Preview(5))
	})
}

func TestMoneyEntry(t *testing.T) {
	at := time.Now()
	e := NewMoneyEntry(12.5, "card", "lunch", at)
	assert.NotEmpty(t, e.EntityID())
	assert.Equal(t, at, e.EntityTime())
	assert.Equal(t, 12.5, e.Amount)
	assert.Equal(t, "card", e.Method)
	assert.Equal(t, "lunch", e.Note)

	assert.Contains(t, PaymentMethods(), "cash")
}

func TestFoodEntry(t *testing.T) {
	at := time.Now()
	e := NewFoodEntry("Ramen", 450, at)
	assert.NotEmpty(t, e.EntityID())
	assert.Equal(t, at, e.EntityTime())
	assert.Equal(t, "Ramen", e.Food)
	assert.Equal(t, 450, e.Calories)
}

func TestSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := DefaultSettings()
		assert.Equal(t, "", s.Nickname)
		assert.Equal(t, DefaultBackground, s.Background)
		assert.Equal(t, DefaultAPIURL, s.APIURL)
		assert.Equal(t, "", s.APIToken)
		assert.Equal(t, "", s.UserKey)
	})

	t.Run("get and set cover every key", func(t *testing.T) {
		s := DefaultSettings()
		for _, key := range SettingsKeys() {
			require.NoError(t, s.Set(key, "value-"+key))
			got, err := s.Get(key)
			require.NoError(t, err)
			assert.Equal(t, "value-"+key, got)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		s := DefaultSettings()
		_, err := s.Get("nope")
		assert.Error(t, err)
		assert.Error(t, s.Set("nope", "x"))
	})
}
