package titleclean

import (
	"errors"
	"testing"
)

func TestCleanDefaultPattern(t *testing.T) {
	rs := Default()

	testCases := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "trailing soundtrack suffix",
			title: "The Hobbit: An Unexpected Journey Original Motion Picture Soundtrack",
			want:  "The Hobbit: An Unexpected Journey",
		},
		{
			name:  "dangling separator is trimmed",
			title: "Snapshot: OST",
			want:  "Snapshot",
		},
		{
			name:  "parenthesized suffix",
			title: "Interstellar (Original Motion Picture Soundtrack)",
			want:  "Interstellar",
		},
		{
			name:  "dash separator",
			title: "Tron Legacy - Original Soundtrack",
			want:  "Tron Legacy",
		},
		{
			name:  "no suffix means no change",
			title: "Abbey Road",
			want:  "Abbey Road",
		},
		{
			name:  "keyword not at the end stays",
			title: "Original Sin",
			want:  "Original Sin",
		},
		{
			name:  "surrounding whitespace is trimmed",
			title: "  Up (Soundtrack)  ",
			want:  "Up",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := rs.Clean(tc.title, false, false)
			if got != tc.want {
				t.Errorf("Clean(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}

func TestCleanSoundtrackRestriction(t *testing.T) {
	rs := Default()
	title := "Snapshot: OST"

	// With the restriction on and a non-soundtrack release the title
	// must come back untouched.
	if got := rs.Clean(title, true, false); got != title {
		t.Errorf("restricted Clean(%q) = %q, want unchanged", title, got)
	}

	// A soundtrack release is cleaned even with the restriction on.
	if got := rs.Clean(title, true, true); got != "Snapshot" {
		t.Errorf("Clean(%q) = %q, want %q", title, got, "Snapshot")
	}
}

func TestCleanWhitelist(t *testing.T) {
	title := "The Hobbit: An Unexpected Journey Original Motion Picture Soundtrack"
	rs, err := NewRuleSet([]string{DefaultPattern}, []string{title})
	if err != nil {
		t.Fatalf("NewRuleSet failed: %v", err)
	}

	if got := rs.Clean(title, false, true); got != title {
		t.Errorf("whitelisted Clean(%q) = %q, want unchanged", title, got)
	}

	// Whitelist matching ignores case and surrounding whitespace.
	upper := "  THE HOBBIT: AN UNEXPECTED JOURNEY ORIGINAL MOTION PICTURE SOUNDTRACK "
	if !rs.Whitelisted(upper) {
		t.Errorf("Whitelisted(%q) = false, want true", upper)
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	rs := Default()
	titles := []string{
		"The Hobbit: An Unexpected Journey Original Motion Picture Soundtrack",
		"Snapshot: OST",
		"Abbey Road",
	}
	for _, title := range titles {
		once := rs.Clean(title, false, true)
		twice := rs.Clean(once, false, true)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: %q then %q", title, once, twice)
		}
	}
}

func TestNewRuleSetInvalidPattern(t *testing.T) {
	_, err := NewRuleSet([]string{DefaultPattern, "(unclosed"}, nil)
	if err == nil {
		t.Fatal("expected an error for an invalid pattern")
	}

	var patternErr *PatternError
	if !errors.As(err, &patternErr) {
		t.Fatalf("expected a *PatternError, got %T", err)
	}
	if patternErr.Index != 1 {
		t.Errorf("PatternError.Index = %d, want 1", patternErr.Index)
	}
}

func TestNewRuleSetSkipsBlankEntries(t *testing.T) {
	rs, err := NewRuleSet([]string{"", "  ", DefaultPattern}, []string{"", "keep me"})
	if err != nil {
		t.Fatalf("NewRuleSet failed: %v", err)
	}
	if got := len(rs.Patterns()); got != 1 {
		t.Errorf("len(Patterns()) = %d, want 1", got)
	}
	if !rs.Whitelisted("Keep Me") {
		t.Error("whitelist entry was not normalized and kept")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(DefaultPattern); err != nil {
		t.Errorf("Validate(DefaultPattern) = %v, want nil", err)
	}
	if err := Validate("["); err == nil {
		t.Error("Validate(\"[\") = nil, want error")
	}
}
