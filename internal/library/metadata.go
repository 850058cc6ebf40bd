// This file handles the logic for extracting metadata from file paths.
// The current implementation is simple and uses directory and file names:
// /library/Shelf/Artist/Album/01 Track.flac yields artist "Artist" and
// album "Album". Tag parsing from the audio files themselves is out of
// scope; the folder layout is the source of truth.

package library

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shelftag/shelftag/internal/models"
)

var soundtrackHint = regexp.MustCompile(`(?i)\b(ost|soundtrack|original (motion picture )?score)\b`)

// PathMetadata derives the initial tag map for a file from its location
// in the library. The album directory doubles as the release grouping
// key so all files of one album share their shelf votes.
func PathMetadata(filePath, libraryPath string) models.Metadata {
	meta := models.Metadata{}

	base := filepath.Base(filePath)
	meta.Set(models.TagTitle, strings.TrimSuffix(base, filepath.Ext(base)))

	root := filepath.Clean(libraryPath)
	albumDir := filepath.Dir(filePath)
	if albumDir != root {
		meta.Set(models.TagAlbum, filepath.Base(albumDir))
		if artistDir := filepath.Dir(albumDir); artistDir != root {
			meta.Set(models.TagArtist, filepath.Base(artistDir))
		}
	}
	meta.Set(models.TagAlbumID, albumDir)

	if soundtrackHint.MatchString(meta.Get(models.TagAlbum)) {
		meta.Set(models.TagReleaseType, "soundtrack")
	}

	return meta
}
