package processor

import (
	"testing"

	"github.com/shelftag/shelftag/internal/models"
)

func TestPipelineRunsInOrder(t *testing.T) {
	p := NewPipeline()
	var order []string
	p.OnAlbum("first", func(meta models.Metadata) { order = append(order, "first") })
	p.OnAlbum("second", func(meta models.Metadata) { order = append(order, "second") })

	p.RunAlbum(models.Metadata{})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("processors ran in order %v, want [first second]", order)
	}
}

func TestPipelineIsolatesPanics(t *testing.T) {
	p := NewPipeline()
	p.OnAlbum("broken", func(meta models.Metadata) {
		meta.Set(models.TagAlbum, "partial write")
		panic("boom")
	})
	p.OnAlbum("working", func(meta models.Metadata) {
		meta.Set(models.TagArtist, "set by working")
	})

	meta := models.Metadata{models.TagAlbum: "original"}
	p.RunAlbum(meta)

	// The panicking processor's write was rolled back, the next one ran.
	if got := meta.Get(models.TagAlbum); got != "original" {
		t.Errorf("album = %q, want the panicking processor's change discarded", got)
	}
	if got := meta.Get(models.TagArtist); got != "set by working" {
		t.Errorf("artist = %q, want %q", got, "set by working")
	}
}

func TestPipelineCommitsDeletes(t *testing.T) {
	p := NewPipeline()
	p.OnTrack("dropper", func(meta models.Metadata) {
		meta.Set(models.TagShelfBackup, "")
	})

	meta := models.Metadata{models.TagShelfBackup: "old"}
	p.RunTrack(meta)

	if meta.Has(models.TagShelfBackup) {
		t.Error("deleted tag survived the commit")
	}
}
