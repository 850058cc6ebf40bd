package shelf

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestClassify(t *testing.T) {
	root := filepath.Join("/", "music")
	known := NewSet("Standard", "Incoming", "Vinyl Rips")

	testCases := []struct {
		name           string
		path           string
		wantShelf      string
		wantSuspicious bool
	}{
		{
			name:      "known shelf",
			path:      filepath.Join(root, "Standard", "Artist", "Album", "01.flac"),
			wantShelf: "Standard",
		},
		{
			name:      "known shelf with album-like name",
			path:      filepath.Join(root, "Vinyl Rips", "Artist", "Album", "01.flac"),
			wantShelf: "Vinyl Rips",
		},
		{
			name:      "unknown plausible name becomes a new shelf",
			path:      filepath.Join(root, "Jazz", "Artist", "Album", "01.flac"),
			wantShelf: "Jazz",
		},
		{
			name:           "artist-album folder falls back to default",
			path:           filepath.Join(root, "Some Artist - Some Album", "01.flac"),
			wantShelf:      "Standard",
			wantSuspicious: true,
		},
		{
			name:           "album volume folder falls back to default",
			path:           filepath.Join(root, "Greatest Hits Vol. 2", "01.flac"),
			wantShelf:      "Standard",
			wantSuspicious: true,
		},
		{
			name:      "file directly in the library root",
			path:      filepath.Join(root, "loose.mp3"),
			wantShelf: "Standard",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, suspicious, err := Classify(tc.path, root, known, "Standard")
			if err != nil {
				t.Fatalf("Classify(%q) returned error: %v", tc.path, err)
			}
			if got != tc.wantShelf || suspicious != tc.wantSuspicious {
				t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)",
					tc.path, got, suspicious, tc.wantShelf, tc.wantSuspicious)
			}
		})
	}
}

func TestClassifyOutsideRoot(t *testing.T) {
	root := filepath.Join("/", "music")
	outside := filepath.Join("/", "downloads", "Album", "01.flac")

	_, _, err := Classify(outside, root, NewSet(), "Standard")
	if err == nil {
		t.Fatal("expected an error for a path outside the library root")
	}
	var pathErr *PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("expected a *PathError, got %T", err)
	}
}

func TestSuspicionReasons(t *testing.T) {
	testCases := []struct {
		name       string
		folder     string
		suspicious bool
	}{
		{"plain shelf name", "Standard", false},
		{"two words", "Vinyl Rips", false},
		{"artist dash album", "Pink Floyd - The Wall", true},
		{"too many words", "A Very Long And Winding Name", true},
		{"over thirty characters", "Supercalifragilisticexpialidocious", true},
		{"volume indicator", "Anthology Vol. 3", true},
		{"disc indicator lowercase", "best of disc 1", true},
		{"cd indicator", "Live CD", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reasons := SuspicionReasons(tc.folder)
			if got := len(reasons) > 0; got != tc.suspicious {
				t.Errorf("SuspicionReasons(%q) = %v, want suspicious=%v", tc.folder, reasons, tc.suspicious)
			}
		})
	}
}

func TestSegment(t *testing.T) {
	root := filepath.Join("/", "music")

	seg, err := Segment(filepath.Join(root, "Jazz", "a.flac"), root)
	if err != nil || seg != "Jazz" {
		t.Errorf("Segment() = (%q, %v), want (\"Jazz\", nil)", seg, err)
	}

	seg, err = Segment(filepath.Join(root, "loose.mp3"), root)
	if err != nil || seg != "" {
		t.Errorf("Segment() for root file = (%q, %v), want (\"\", nil)", seg, err)
	}

	if _, err := Segment("/elsewhere/a.flac", root); err == nil {
		t.Error("Segment() outside root did not fail")
	}
}

func TestValidateName(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		valid       bool
		wantMessage bool
	}{
		{"simple name", "Standard", true, false},
		{"empty", "", false, true},
		{"whitespace only", "   ", false, true},
		{"invalid characters", `What?*`, false, true},
		{"colon", "A:B", false, true},
		{"dot", ".", false, true},
		{"dot dot", "..", false, true},
		{"leading dot warns but passes", ".hidden", true, true},
		{"trailing dot warns but passes", "ends.", true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			valid, msg := ValidateName(tc.input)
			if valid != tc.valid {
				t.Errorf("ValidateName(%q) valid = %v, want %v", tc.input, valid, tc.valid)
			}
			if (msg != "") != tc.wantMessage {
				t.Errorf("ValidateName(%q) message = %q, want message=%v", tc.input, msg, tc.wantMessage)
			}
		})
	}
}
