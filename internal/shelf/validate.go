// This file validates shelf names for use as directory names.

package shelf

import (
	"fmt"
	"strings"
)

// Characters that cannot appear in a directory name on common filesystems.
const invalidPathChars = `<>:"|?*`

// ValidateName checks whether a name can be used as a shelf directory.
// It returns whether the name is usable and an optional message: for an
// invalid name the message is the rejection reason, for a valid name it
// may carry a warning.
func ValidateName(name string) (bool, string) {
	if strings.TrimSpace(name) == "" {
		return false, "shelf name cannot be empty"
	}

	var found []string
	for _, c := range invalidPathChars {
		if strings.ContainsRune(name, c) {
			found = append(found, string(c))
		}
	}
	if len(found) > 0 {
		return false, fmt.Sprintf("contains invalid characters: %s", strings.Join(found, ", "))
	}

	if name == "." || name == ".." {
		return false, "cannot use '.' or '..' as shelf name"
	}

	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return true, "names starting or ending with '.' may cause issues on some systems"
	}

	return true, ""
}
