// This file contains the concrete processors: album title cleanup and
// shelf assignment from file paths.

package processor

import (
	"errors"
	"log"
	"strings"

	"github.com/shelftag/shelftag/internal/models"
	"github.com/shelftag/shelftag/internal/shelf"
	"github.com/shelftag/shelftag/internal/titleclean"
)

// CleanAlbumTitle returns an album processor that rewrites the album tag
// through the rule set. With restrictToSoundtrack set, releases whose
// releasetype does not mention "soundtrack" are left alone.
func CleanAlbumTitle(rs *titleclean.RuleSet, restrictToSoundtrack bool) AlbumFunc {
	return func(meta models.Metadata) {
		title := strings.TrimSpace(meta.Get(models.TagAlbum))
		if title == "" {
			return
		}

		isSoundtrack := strings.Contains(strings.ToLower(meta.Get(models.TagReleaseType)), "soundtrack")
		cleaned := rs.Clean(title, restrictToSoundtrack, isSoundtrack)
		if cleaned == "" || cleaned == title {
			return
		}

		log.Printf("Changed album title from %q to %q", title, cleaned)
		meta.Set(models.TagAlbum, cleaned)
	}
}

// AssignShelfFromPath returns a file processor that classifies the file's
// path, records the shelf on the metadata and votes for the album's
// shelf. Newly discovered legitimate shelves are added to the known set.
// A path outside the library root is logged and the shelf tag is left
// unset.
func AssignShelfFromPath(libraryRoot string, known *shelf.Set, defaultShelf string, mgr *shelf.Manager) FileFunc {
	return func(path string, meta models.Metadata) {
		name, suspicious, err := shelf.Classify(path, libraryRoot, known, defaultShelf)
		if err != nil {
			var pathErr *shelf.PathError
			if errors.As(err, &pathErr) {
				log.Printf("Skipping shelf assignment: %v", pathErr)
				return
			}
			log.Printf("Error classifying %q: %v", path, err)
			return
		}

		if suspicious {
			meta.Set(models.TagShelfSuspicious, "1")
		} else if !known.Has(name) {
			log.Printf("Discovered new shelf %q", name)
			known.Add(name)
		}

		setShelfWithBackup(meta, name)
		if mgr != nil {
			mgr.Vote(meta.Get(models.TagAlbumID), name)
		}
	}
}

// StampAlbumShelf returns a track processor that writes the album's
// winning shelf into the track metadata.
func StampAlbumShelf(mgr *shelf.Manager) TrackFunc {
	return func(meta models.Metadata) {
		albumID := meta.Get(models.TagAlbumID)
		if albumID == "" {
			return
		}
		name, ok := mgr.AlbumShelf(albumID)
		if !ok {
			return
		}
		setShelfWithBackup(meta, name)
	}
}

// setShelfWithBackup writes the shelf tag, stashing a differing previous
// value under the backup tag so it can be restored later.
func setShelfWithBackup(meta models.Metadata, name string) {
	if prev := meta.Get(models.TagShelf); prev != "" && prev != name {
		meta.Set(models.TagShelfBackup, prev)
	}
	meta.Set(models.TagShelf, name)
}
