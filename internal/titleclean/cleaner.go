// This file applies a rule set to a single album title. Cleaning is a
// pure function of its inputs and idempotent for the default pattern.

package titleclean

import "strings"

// trailing separator characters left dangling after a suffix is removed.
const trailingSeparators = " \t:-–—"

// Clean removes soundtrack markers from a title.
//
// If restrictToSoundtrack is set and the release is not a soundtrack, or
// the title is whitelisted, the title is returned unchanged. Otherwise
// each pattern is applied in declared order, replacing matches with the
// empty string, and leftover whitespace and separator punctuation is
// trimmed from the result.
func (rs *RuleSet) Clean(title string, restrictToSoundtrack, isSoundtrack bool) string {
	if restrictToSoundtrack && !isSoundtrack {
		return title
	}
	if rs.Whitelisted(title) {
		return title
	}

	cleaned := strings.TrimSpace(title)
	for _, re := range rs.patterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	// Collapse runs of whitespace, then drop trailing separators that the
	// removed suffix left behind ("Snapshot:" -> "Snapshot").
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	cleaned = strings.TrimRight(cleaned, trailingSeparators)
	return cleaned
}
