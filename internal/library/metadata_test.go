package library

import (
	"path/filepath"
	"testing"

	"github.com/shelftag/shelftag/internal/models"
)

func TestPathMetadata(t *testing.T) {
	root := filepath.Join("/", "music")
	path := filepath.Join(root, "Standard", "Pink Floyd", "The Wall", "01 In the Flesh.flac")

	meta := PathMetadata(path, root)

	if got := meta.Get(models.TagTitle); got != "01 In the Flesh" {
		t.Errorf("title = %q", got)
	}
	if got := meta.Get(models.TagAlbum); got != "The Wall" {
		t.Errorf("album = %q", got)
	}
	if got := meta.Get(models.TagArtist); got != "Pink Floyd" {
		t.Errorf("artist = %q", got)
	}
	if got := meta.Get(models.TagAlbumID); got != filepath.Dir(path) {
		t.Errorf("albumid = %q, want the album directory", got)
	}
	if meta.Has(models.TagReleaseType) {
		t.Error("releasetype set for a regular album")
	}
}

func TestPathMetadataSoundtrackHint(t *testing.T) {
	root := filepath.Join("/", "music")
	testCases := []struct {
		album string
		want  bool
	}{
		{"Interstellar Original Motion Picture Soundtrack", true},
		{"Snapshot OST", true},
		{"The Wall", false},
		{"Lost Horizons", false}, // "ost" inside a word does not count
	}

	for _, tc := range testCases {
		path := filepath.Join(root, "Standard", "Artist", tc.album, "01.flac")
		meta := PathMetadata(path, root)
		if got := meta.Has(models.TagReleaseType); got != tc.want {
			t.Errorf("album %q: soundtrack hint = %v, want %v", tc.album, got, tc.want)
		}
	}
}

func TestPathMetadataFileInRoot(t *testing.T) {
	root := filepath.Join("/", "music")
	meta := PathMetadata(filepath.Join(root, "loose.mp3"), root)

	if meta.Has(models.TagAlbum) || meta.Has(models.TagArtist) {
		t.Error("album/artist set for a file in the library root")
	}
	if got := meta.Get(models.TagTitle); got != "loose" {
		t.Errorf("title = %q", got)
	}
}

func TestIsSupportedAudio(t *testing.T) {
	supported := []string{"a.mp3", "b.FLAC", "c.ogg", "d.m4a", "e.opus"}
	for _, name := range supported {
		if !IsSupportedAudio(name) {
			t.Errorf("IsSupportedAudio(%q) = false", name)
		}
	}
	unsupported := []string{"cover.jpg", "notes.txt", "album.cue", "archive.zip", "noext"}
	for _, name := range unsupported {
		if IsSupportedAudio(name) {
			t.Errorf("IsSupportedAudio(%q) = true", name)
		}
	}
}
