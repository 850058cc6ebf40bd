// This file contains the path classifier. It extracts the top-level
// segment of a file path below the library root and decides whether that
// segment is a genuine shelf or a misplaced artist/album folder.

package shelf

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Heuristic limits for telling shelves apart from album folders.
const (
	MaxNameLength = 30
	MaxWordCount  = 3
)

// albumIndicators are substrings that suggest a folder name belongs to a
// release rather than a shelf. Matched case-insensitively.
var albumIndicators = []string{"Vol.", "Volume", "Disc", "CD", "Part"}

// PathError reports a path that is not located under the library root.
type PathError struct {
	Path string
	Root string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path %q is not under library root %q", e.Path, e.Root)
}

// Classify determines the shelf for a file path.
//
// The segment directly below libraryRoot is the shelf candidate. Known
// shelf names are accepted as-is. Unknown names are checked against the
// suspicion heuristics: a suspicious segment falls back to defaultShelf
// with the suspicious flag set, anything else is treated as a new,
// legitimate shelf (the caller is responsible for registering it).
// Files sitting directly in the library root go to the default shelf.
func Classify(path, libraryRoot string, known *Set, defaultShelf string) (name string, suspicious bool, err error) {
	segment, segErr := Segment(path, libraryRoot)
	if segErr != nil {
		return "", false, segErr
	}
	if segment == "" {
		// The file sits directly in the library root; there is no shelf folder.
		return defaultShelf, false, nil
	}

	if known != nil && known.Has(segment) {
		return segment, false, nil
	}

	if reasons := SuspicionReasons(segment); len(reasons) > 0 {
		return defaultShelf, true, nil
	}

	return segment, false, nil
}

// Segment returns the path segment directly below the library root, or
// an empty string for files sitting in the root itself.
func Segment(path, libraryRoot string) (string, error) {
	rel, err := filepath.Rel(filepath.Clean(libraryRoot), filepath.Clean(path))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &PathError{Path: path, Root: libraryRoot}
	}
	parts := strings.Split(rel, string(filepath.Separator))
	if len(parts) < 2 {
		return "", nil
	}
	return parts[0], nil
}

// SuspicionReasons lists why a folder name looks like an artist or album
// directory instead of a shelf. An empty result means the name is
// plausible as a shelf.
func SuspicionReasons(name string) []string {
	var reasons []string

	if strings.Contains(name, " - ") {
		reasons = append(reasons, "contains ' - ' (typical for 'Artist - Album' format)")
	}

	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		reasons = append(reasons, fmt.Sprintf("too long (%d chars)", n))
	}

	if words := len(strings.Fields(name)); words > MaxWordCount {
		reasons = append(reasons, fmt.Sprintf("too many words (%d)", words))
	}

	lower := strings.ToLower(name)
	for _, indicator := range albumIndicators {
		if strings.Contains(lower, strings.ToLower(indicator)) {
			reasons = append(reasons, "contains album indicator (Vol., Disc, etc.)")
			break
		}
	}

	return reasons
}
