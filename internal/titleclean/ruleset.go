// This file holds the pattern store: the ordered list of cleanup regexes
// and the whitelist of titles that must never be touched. Patterns are
// validated when the rule set is built, so a malformed regex can never
// reach the cleaning stage.

package titleclean

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultPattern strips trailing soundtrack markers such as
// ": Original Motion Picture Soundtrack" or "- OST" from album titles.
// Patterns are always applied case-insensitively.
const DefaultPattern = `(\s*(?:(?::|-|–|—|\(|\[)\s*)?(\b(?:Original|Album|Movie|Motion|Picture|Soundtrack|Score|OST|Music|Edition|Inspired|by|from|the|TV|Series|Video|Game|Film|Show)\b)+(?:\)|\])?\s*)+$`

// PatternError reports a regex that failed to compile. Index is the
// zero-based position of the pattern in the submitted list.
type PatternError struct {
	Pattern string
	Index   int
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %d: %v", e.Index+1, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// RuleSet is an immutable, pre-validated set of cleanup rules.
type RuleSet struct {
	sources   []string
	patterns  []*regexp.Regexp
	whitelist map[string]struct{}
}

// NewRuleSet compiles the given pattern sources in order and normalizes
// the whitelist entries. Blank patterns and blank whitelist lines are
// skipped. The first pattern that fails to compile is returned as a
// *PatternError and no rule set is produced.
func NewRuleSet(patterns []string, whitelist []string) (*RuleSet, error) {
	rs := &RuleSet{
		whitelist: make(map[string]struct{}),
	}
	for i, src := range patterns {
		if strings.TrimSpace(src) == "" {
			continue
		}
		re, err := compile(src)
		if err != nil {
			return nil, &PatternError{Pattern: src, Index: i, Err: err}
		}
		rs.sources = append(rs.sources, src)
		rs.patterns = append(rs.patterns, re)
	}
	for _, entry := range whitelist {
		if t := NormalizeTitle(entry); t != "" {
			rs.whitelist[t] = struct{}{}
		}
	}
	return rs, nil
}

// Default returns a rule set with the default pattern and an empty
// whitelist. The default pattern is known to compile.
func Default() *RuleSet {
	rs, err := NewRuleSet([]string{DefaultPattern}, nil)
	if err != nil {
		panic(fmt.Sprintf("titleclean: default pattern does not compile: %v", err))
	}
	return rs
}

// Validate checks a single pattern source without building a rule set.
func Validate(pattern string) error {
	if _, err := compile(pattern); err != nil {
		return &PatternError{Pattern: pattern, Err: err}
	}
	return nil
}

// Patterns returns the pattern sources in application order.
func (rs *RuleSet) Patterns() []string {
	out := make([]string, len(rs.sources))
	copy(out, rs.sources)
	return out
}

// Whitelisted reports whether a title is exempt from cleanup. The match
// is exact after NFC normalization, trimming and lowercasing.
func (rs *RuleSet) Whitelisted(title string) bool {
	_, ok := rs.whitelist[NormalizeTitle(title)]
	return ok
}

// NormalizeTitle produces the canonical form used for whitelist matching:
// NFC-normalized, trimmed and lowercased.
func NormalizeTitle(title string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(title)))
}

func compile(src string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + src)
}
