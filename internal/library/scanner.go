// This file contains the main logic for scanning the music library.
// It walks the directory tree, derives metadata from file paths, runs
// the tag processing pipeline, and reconciles the results with the
// database.

package library

import (
	"fmt"
	"io/fs"
	"log"
	"math"
	"path/filepath"
	"sort"

	"github.com/shelftag/shelftag/internal/jobs"
	"github.com/shelftag/shelftag/internal/models"
	"github.com/shelftag/shelftag/internal/processor"
	"github.com/shelftag/shelftag/internal/shelf"
	"github.com/shelftag/shelftag/internal/store"
	"github.com/shelftag/shelftag/internal/titleclean"
)

// LibrarySync performs a full synchronization between the filesystem and the database.
func LibrarySync(ctx jobs.JobContext) {
	jobId := "library-sync"
	st := store.New(ctx.DB())

	sendProgress(ctx, jobId, "Starting library sync...", 0, false)

	// 1. Preparation: load settings and current shelf list
	sendProgress(ctx, jobId, "Loading settings...", 5, false)
	known, err := st.ShelfSet()
	if err != nil {
		log.Printf("Error loading shelves: %v", err)
		sendProgress(ctx, jobId, "Failed to load shelves.", 100, true)
		return
	}

	settings, err := st.LoadCleanerSettings()
	if err != nil {
		log.Printf("Error loading cleaner settings: %v", err)
		settings = store.DefaultCleanerSettings()
	}
	rules, err := settings.RuleSet()
	if err != nil {
		// Stored patterns should always be valid since saves are
		// validated, but fall back rather than abort the sync.
		log.Printf("Stored cleaner patterns are invalid, using defaults: %v", err)
		rules = titleclean.Default()
	}

	pipeline := buildPipeline(ctx, rules, settings.OnlySoundtrack, known)

	// 2. File System Discovery
	sendProgress(ctx, jobId, "Discovering files on disk...", 10, false)
	rootPath := ctx.Config().Library.Path
	var files []string
	filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsSupportedAudio(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)

	// 3. First pass: derive metadata and collect shelf votes per album.
	// All files of an album must be seen before the album's shelf can
	// be decided, so the pipeline splits the work into two passes.
	sendProgress(ctx, jobId, "Classifying files...", 20, false)
	metas := make([]models.Metadata, len(files))
	for i, path := range files {
		meta := PathMetadata(path, rootPath)
		pipeline.RunFile(path, meta)
		metas[i] = meta
	}

	// Persist shelves discovered during classification.
	for _, name := range known.Names() {
		if _, err := st.AddShelf(name); err != nil {
			log.Printf("Error registering shelf %q: %v", name, err)
		}
	}

	// 4. Second pass: clean titles, stamp the voted shelf, upsert tracks.
	seen := make(map[string]bool, len(files))
	for i, path := range files {
		meta := metas[i]
		pipeline.RunAlbum(meta)
		pipeline.RunTrack(meta)

		track := trackFromMetadata(path, meta)
		if _, err := st.UpsertTrack(track); err != nil {
			log.Printf("Error upserting track %s: %v", path, err)
			continue
		}
		seen[path] = true

		if (i+1)%25 == 0 || i == len(files)-1 {
			progress := 20 + math.Min(float64(i+1)/float64(len(files)), 1)*65
			sendProgress(ctx, jobId, fmt.Sprintf("Processing file %d/%d: %s", i+1, len(files), filepath.Base(path)), progress, false)
		}
	}

	// 5. Pruning: remove DB entries for files no longer on disk
	sendProgress(ctx, jobId, "Pruning deleted tracks...", 90, false)
	stored, err := st.AllTrackPaths()
	if err != nil {
		log.Printf("Error listing stored tracks for pruning: %v", err)
	} else {
		for path, id := range stored {
			if !seen[path] {
				log.Printf("Pruning deleted track: %s", path)
				if err := st.DeleteTrack(id); err != nil {
					log.Printf("Error pruning track %s: %v", path, err)
				}
			}
		}
	}

	sendProgress(ctx, jobId, "Library sync completed.", 100, true)
	log.Println("Job finished:", jobId)
}

// buildPipeline assembles the processing pipeline used by the sync job.
func buildPipeline(ctx jobs.JobContext, rules *titleclean.RuleSet, onlySoundtrack bool, known *shelf.Set) *processor.Pipeline {
	cfg := ctx.Config()
	mgr := shelf.NewManager()

	p := processor.NewPipeline()
	p.OnFile("shelf-from-path", processor.AssignShelfFromPath(cfg.Library.Path, known, cfg.Library.DefaultShelf, mgr))
	p.OnAlbum("album-title-cleanup", processor.CleanAlbumTitle(rules, onlySoundtrack))
	p.OnTrack("album-shelf", processor.StampAlbumShelf(mgr))
	return p
}

// trackFromMetadata converts a processed tag map into a track record.
func trackFromMetadata(path string, meta models.Metadata) *models.Track {
	return &models.Track{
		Path:        path,
		Artist:      meta.Get(models.TagArtist),
		Album:       meta.Get(models.TagAlbum),
		Title:       meta.Get(models.TagTitle),
		AlbumID:     meta.Get(models.TagAlbumID),
		ReleaseType: meta.Get(models.TagReleaseType),
		Shelf:       meta.Get(models.TagShelf),
		ShelfBackup: meta.Get(models.TagShelfBackup),
		Suspicious:  meta.Has(models.TagShelfSuspicious),
	}
}
