// This file persists the plugin-style settings: cleaner patterns,
// whitelist, the soundtrack restriction flag and the rename workflow.
// Pattern lists are validated before they are written, so the settings
// table never contains a regex that does not compile.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shelftag/shelftag/internal/renamescript"
	"github.com/shelftag/shelftag/internal/titleclean"
)

// Settings keys.
const (
	settingCleanerPatterns       = "cleaner_patterns"
	settingCleanerWhitelist      = "cleaner_whitelist"
	settingCleanerOnlySoundtrack = "cleaner_only_soundtrack"
	settingWorkflow              = "rename_workflow"
)

// CleanerSettings mirrors the title cleaner options page: an ordered
// pattern list, the whitelist as newline-separated text, and the
// soundtrack restriction flag.
type CleanerSettings struct {
	Patterns       []string `json:"patterns"`
	Whitelist      string   `json:"whitelist"`
	OnlySoundtrack bool     `json:"only_soundtrack"`
}

// WhitelistEntries splits the whitelist text into its lines.
func (cs *CleanerSettings) WhitelistEntries() []string {
	return strings.Split(cs.Whitelist, "\n")
}

// RuleSet compiles the settings into a rule set. Returns a
// *titleclean.PatternError if any pattern is invalid.
func (cs *CleanerSettings) RuleSet() (*titleclean.RuleSet, error) {
	return titleclean.NewRuleSet(cs.Patterns, cs.WhitelistEntries())
}

// DefaultCleanerSettings returns the out-of-the-box configuration.
func DefaultCleanerSettings() *CleanerSettings {
	return &CleanerSettings{
		Patterns:       []string{titleclean.DefaultPattern},
		Whitelist:      "",
		OnlySoundtrack: true,
	}
}

// GetSetting returns the raw value for a settings key. The second return
// value is false when the key is unset.
func (s *Store) GetSetting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// SetSetting stores the raw value for a settings key.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

// LoadCleanerSettings reads the cleaner configuration, falling back to
// defaults for unset keys.
func (s *Store) LoadCleanerSettings() (*CleanerSettings, error) {
	cs := DefaultCleanerSettings()

	if raw, ok, err := s.GetSetting(settingCleanerPatterns); err != nil {
		return nil, err
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &cs.Patterns); err != nil {
			return nil, fmt.Errorf("corrupt pattern list in settings: %w", err)
		}
	}

	if raw, ok, err := s.GetSetting(settingCleanerWhitelist); err != nil {
		return nil, err
	} else if ok {
		cs.Whitelist = raw
	}

	if raw, ok, err := s.GetSetting(settingCleanerOnlySoundtrack); err != nil {
		return nil, err
	} else if ok {
		cs.OnlySoundtrack = raw == "true"
	}

	return cs, nil
}

// SaveCleanerSettings validates and persists the cleaner configuration.
// An invalid pattern aborts the save with a *titleclean.PatternError and
// nothing is written.
func (s *Store) SaveCleanerSettings(cs *CleanerSettings) error {
	if _, err := cs.RuleSet(); err != nil {
		return err
	}

	encoded, err := json.Marshal(cs.Patterns)
	if err != nil {
		return err
	}
	if err := s.SetSetting(settingCleanerPatterns, string(encoded)); err != nil {
		return err
	}
	if err := s.SetSetting(settingCleanerWhitelist, cs.Whitelist); err != nil {
		return err
	}
	flag := "false"
	if cs.OnlySoundtrack {
		flag = "true"
	}
	return s.SetSetting(settingCleanerOnlySoundtrack, flag)
}

// LoadWorkflow reads the rename workflow settings, falling back to the
// default Incoming -> Standard transition.
func (s *Store) LoadWorkflow() (renamescript.Workflow, error) {
	w := renamescript.DefaultWorkflow()
	raw, ok, err := s.GetSetting(settingWorkflow)
	if err != nil {
		return w, err
	}
	if !ok {
		return w, nil
	}
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return renamescript.DefaultWorkflow(), fmt.Errorf("corrupt workflow in settings: %w", err)
	}
	return w, nil
}

// SaveWorkflow persists the rename workflow settings.
func (s *Store) SaveWorkflow(w renamescript.Workflow) error {
	encoded, err := json.Marshal(w)
	if err != nil {
		return err
	}
	return s.SetSetting(settingWorkflow, string(encoded))
}
