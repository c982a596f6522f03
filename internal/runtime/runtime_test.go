package runtime

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-cli/daybook/internal/model"
	"github.com/daybook-cli/daybook/internal/output"
	"github.com/daybook-cli/daybook/internal/recognize"
	"github.com/daybook-cli/daybook/internal/store"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()
	opts := DefaultOptions()
	opts.DataDir = dir
	opts.SettingsPath = filepath.Join(dir, "config.json")
	return opts
}

func TestNew(t *testing.T) {
	t.Run("opens all stores", func(t *testing.T) {
		ctx, err := New(testOptions(t))
		require.NoError(t, err)
		assert.Equal(t, 0, ctx.Journal.Len())
		assert.Equal(t, 0, ctx.Money.Len())
		assert.Equal(t, 0, ctx.Food.Len())
	})

	t.Run("loads defaults without a config file", func(t *testing.T) {
		ctx, err := New(testOptions(t))
		require.NoError(t, err)
		assert.Equal(t, model.DefaultSettings(), ctx.Settings)
		assert.False(t, ctx.Recognizer.Configured())
	})

	t.Run("DAYBOOK_DATA overrides the data dir", func(t *testing.T) {
		override := t.TempDir()
		t.Setenv("DAYBOOK_DATA", override)

		ctx, err := New(testOptions(t))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(override, store.JournalFile), ctx.Journal.Path())
	})

	t.Run("env credentials configure the recognizer", func(t *testing.T) {
		t.Setenv("DAYBOOK_API_TOKEN", "tok")
		t.Setenv("DAYBOOK_USER_KEY", "key")

		ctx, err := New(testOptions(t))
		require.NoError(t, err)
		assert.True(t, ctx.Recognizer.Configured())
		assert.Equal(t, "tok", ctx.Settings.APIToken)
	})
}

func TestContext_SaveSettings(t *testing.T) {
	opts := testOptions(t)
	ctx, err := New(opts)
	require.NoError(t, err)

	ctx.Settings.Nickname = "sam"
	require.NoError(t, ctx.SaveSettings())

	reloaded := store.LoadSettings(opts.SettingsPath)
	assert.Equal(t, "sam", reloaded.Nickname)
}

func TestContext_IsJSON(t *testing.T) {
	opts := testOptions(t)
	opts.Format = output.FormatJSON
	ctx, err := New(opts)
	require.NoError(t, err)
	assert.True(t, ctx.IsJSON())
}

func TestResolveID(t *testing.T) {
	s := store.Open[model.FoodEntry](filepath.Join(t.TempDir(), "food.json"))
	a := model.FoodEntry{ID: "aaaa1111", CreatedAt: time.Now(), Food: "toast"}
	b := model.FoodEntry{ID: "aaab2222", CreatedAt: time.Now(), Food: "ramen"}
	s.Add(a)
	s.Add(b)

	t.Run("exact match", func(t *testing.T) {
		got, err := ResolveID(s, "aaaa1111")
		require.NoError(t, err)
		assert.Equal(t, "toast", got.Food)
	})

	t.Run("unique prefix", func(t *testing.T) {
		got, err := ResolveID(s, "aaab")
		require.NoError(t, err)
		assert.Equal(t, "ramen", got.Food)
	})

	t.Run("ambiguous prefix", func(t *testing.T) {
		_, err := ResolveID(s, "aaa")
		assert.ErrorIs(t, err, ErrAmbiguousID)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := ResolveID(s, "zzzz")
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})

	t.Run("empty ref", func(t *testing.T) {
		_, err := ResolveID(s, "")
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})

	t.Run("exact match wins over prefix ambiguity", func(t *testing.T) {
		exact := model.FoodEntry{ID: "aaa", CreatedAt: time.Now(), Food: "soup"}
		s.Add(exact)
		got, err := ResolveID(s, "aaa")
		require.NoError(t, err)
		assert.Equal(t, "soup", got.Food)
	})
}

func TestGetSuggestion(t *testing.T) {
	t.Run("known sentinel", func(t *testing.T) {
		assert.NotEmpty(t, GetSuggestion(ErrEntryNotFound))
	})

	t.Run("wrapped sentinel", func(t *testing.T) {
		err := fmt.Errorf("context: %w", ErrUnknownDish)
		assert.NotEmpty(t, GetSuggestion(err))
	})

	t.Run("transport error", func(t *testing.T) {
		err := &recognize.TransportError{Err: fmt.Errorf("boom")}
		assert.Contains(t, GetSuggestion(err), "network")
	})

	t.Run("parse error", func(t *testing.T) {
		err := &recognize.ParseError{Reason: "no candidates"}
		assert.Contains(t, GetSuggestion(err), "manually")
	})

	t.Run("unknown error", func(t *testing.T) {
		assert.Empty(t, GetSuggestion(fmt.Errorf("boom")))
	})
}

func TestFormatError(t *testing.T) {
	msg := FormatError(ErrNotConfigured)
	assert.Contains(t, msg, ErrNotConfigured.Error())
	assert.Contains(t, msg, "DAYBOOK_API_TOKEN")

	plain := FormatError(fmt.Errorf("boom"))
	assert.Equal(t, "boom", plain)
}
