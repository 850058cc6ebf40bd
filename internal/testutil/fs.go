package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateAudioFile creates an empty file at root/parts... so tests can
// lay out a library tree without real audio data. The scanner only
// looks at paths and extensions.
func CreateAudioFile(t *testing.T, root string, parts ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte{}, 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}
