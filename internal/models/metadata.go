// This file defines the metadata map that processors read and write.
// It mirrors the tag-oriented view a tagger presents for a single item.

package models

// Well-known tag names used by the processors.
const (
	TagAlbum       = "album"
	TagArtist      = "artist"
	TagTitle       = "title"
	TagAlbumID     = "albumid"
	TagReleaseType = "releasetype"
	TagShelf       = "shelf"
	TagShelfBackup = "shelf_backup"

	// Internal tags (tilde prefix) are never written to files.
	TagShelfSuspicious = "~shelf_suspicious"
)

// Metadata is a flat string-keyed tag map for a single file, track or album.
type Metadata map[string]string

// Get returns the value for a tag, or "" if the tag is unset.
func (m Metadata) Get(key string) string {
	return m[key]
}

// Set stores a tag value. Setting "" removes the tag.
func (m Metadata) Set(key, value string) {
	if value == "" {
		delete(m, key)
		return
	}
	m[key] = value
}

// Has reports whether the tag is present.
func (m Metadata) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Clone returns an independent copy of the metadata.
func (m Metadata) Clone() Metadata {
	c := make(Metadata, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
