// Tests for the settings persistence layer, using an in-memory SQLite
// database so tests are fast and isolated.

package store_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelftag/shelftag/internal/renamescript"
	"github.com/shelftag/shelftag/internal/store"
	"github.com/shelftag/shelftag/internal/testutil"
	"github.com/shelftag/shelftag/internal/titleclean"
)

func TestLoadCleanerSettingsDefaults(t *testing.T) {
	s := store.New(testutil.SetupTestDB(t))

	settings, err := s.LoadCleanerSettings()
	require.NoError(t, err)

	assert.Equal(t, []string{titleclean.DefaultPattern}, settings.Patterns)
	assert.Equal(t, "", settings.Whitelist)
	assert.True(t, settings.OnlySoundtrack)
}

func TestSaveAndLoadCleanerSettings(t *testing.T) {
	s := store.New(testutil.SetupTestDB(t))

	saved := &store.CleanerSettings{
		Patterns:       []string{titleclean.DefaultPattern, `\s*\(Deluxe Edition\)$`},
		Whitelist:      "The Hobbit: An Unexpected Journey Original Motion Picture Soundtrack\nKeep This One",
		OnlySoundtrack: false,
	}
	require.NoError(t, s.SaveCleanerSettings(saved))

	loaded, err := s.LoadCleanerSettings()
	require.NoError(t, err)
	assert.Equal(t, saved.Patterns, loaded.Patterns)
	assert.Equal(t, saved.Whitelist, loaded.Whitelist)
	assert.False(t, loaded.OnlySoundtrack)

	rules, err := loaded.RuleSet()
	require.NoError(t, err)
	assert.True(t, rules.Whitelisted("keep this one"))
}

func TestSaveCleanerSettingsRejectsInvalidPattern(t *testing.T) {
	s := store.New(testutil.SetupTestDB(t))

	err := s.SaveCleanerSettings(&store.CleanerSettings{
		Patterns: []string{titleclean.DefaultPattern, "(unclosed"},
	})
	require.Error(t, err)

	var patternErr *titleclean.PatternError
	assert.True(t, errors.As(err, &patternErr), "expected a *titleclean.PatternError, got %T", err)

	// Nothing was written; loading still yields the defaults.
	loaded, err := s.LoadCleanerSettings()
	require.NoError(t, err)
	assert.Equal(t, []string{titleclean.DefaultPattern}, loaded.Patterns)
}

func TestWorkflowRoundTrip(t *testing.T) {
	s := store.New(testutil.SetupTestDB(t))

	// Unset yields the default Incoming -> Standard transition.
	w, err := s.LoadWorkflow()
	require.NoError(t, err)
	assert.Equal(t, renamescript.DefaultWorkflow(), w)

	w.Enabled = false
	w.Stage1 = "Staging"
	w.Stage2 = "Archive"
	require.NoError(t, s.SaveWorkflow(w))

	loaded, err := s.LoadWorkflow()
	require.NoError(t, err)
	assert.Equal(t, w, loaded)
}

func TestGetSettingUnsetKey(t *testing.T) {
	s := store.New(testutil.SetupTestDB(t))

	_, ok, err := s.GetSetting("does_not_exist")
	require.NoError(t, err)
	assert.False(t, ok)
}
