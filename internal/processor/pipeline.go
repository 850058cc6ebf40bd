// Package processor wires the cleanup and classification logic into the
// metadata pipeline. Processors run in registration order; a failing
// processor is logged and its changes are discarded, so one bad item
// never stops the batch and never ends up half-written.
package processor

import (
	"log"

	"github.com/shelftag/shelftag/internal/models"
)

// AlbumFunc rewrites album-level metadata in place.
type AlbumFunc func(meta models.Metadata)

// TrackFunc rewrites track-level metadata in place.
type TrackFunc func(meta models.Metadata)

// FileFunc inspects a freshly loaded file and its metadata.
type FileFunc func(path string, meta models.Metadata)

type namedProc[F any] struct {
	name string
	fn   F
}

// Pipeline holds the registered processors for one scan run.
type Pipeline struct {
	album []namedProc[AlbumFunc]
	track []namedProc[TrackFunc]
	file  []namedProc[FileFunc]
}

// NewPipeline returns an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// OnAlbum registers an album metadata processor.
func (p *Pipeline) OnAlbum(name string, fn AlbumFunc) {
	p.album = append(p.album, namedProc[AlbumFunc]{name, fn})
}

// OnTrack registers a track metadata processor.
func (p *Pipeline) OnTrack(name string, fn TrackFunc) {
	p.track = append(p.track, namedProc[TrackFunc]{name, fn})
}

// OnFile registers a file post-load processor.
func (p *Pipeline) OnFile(name string, fn FileFunc) {
	p.file = append(p.file, namedProc[FileFunc]{name, fn})
}

// RunAlbum invokes all album processors on the metadata.
func (p *Pipeline) RunAlbum(meta models.Metadata) {
	for _, proc := range p.album {
		name, fn := proc.name, proc.fn
		applyIsolated(name, meta, func(m models.Metadata) { fn(m) })
	}
}

// RunTrack invokes all track processors on the metadata.
func (p *Pipeline) RunTrack(meta models.Metadata) {
	for _, proc := range p.track {
		name, fn := proc.name, proc.fn
		applyIsolated(name, meta, func(m models.Metadata) { fn(m) })
	}
}

// RunFile invokes all file processors for a loaded file.
func (p *Pipeline) RunFile(path string, meta models.Metadata) {
	for _, proc := range p.file {
		name, fn := proc.name, proc.fn
		applyIsolated(name, meta, func(m models.Metadata) { fn(path, m) })
	}
}

// applyIsolated runs a processor against a scratch copy of the metadata
// and commits the result only when the processor finishes. A panicking
// processor is logged and the original metadata stays untouched.
func applyIsolated(name string, meta models.Metadata, fn func(models.Metadata)) {
	scratch := meta.Clone()
	if !runRecovered(name, func() { fn(scratch) }) {
		return
	}
	for k := range meta {
		delete(meta, k)
	}
	for k, v := range scratch {
		meta[k] = v
	}
}

func runRecovered(name string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Processor %q failed: %v", name, r)
			ok = false
		}
	}()
	fn()
	return true
}
