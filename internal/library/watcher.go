// This file implements a file system watcher for the library directory.
// It uses OS-level file system events to detect changes and trigger a
// library sync after a short debounce window.

package library

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/shelftag/shelftag/internal/jobs"
)

// WatcherService watches the library directory for file system changes
// and triggers a sync when audio files are added, modified, or deleted.
type WatcherService struct {
	ctx           jobs.JobContext
	watcher       *fsnotify.Watcher
	mu            sync.Mutex
	debounceTimer *time.Timer
	debounceDelay time.Duration
	stopChan      chan struct{}
}

// NewWatcherService creates a new file system watcher service.
func NewWatcherService(ctx jobs.JobContext) *WatcherService {
	return &WatcherService{
		ctx:           ctx,
		debounceDelay: 2 * time.Second, // Wait 2 seconds after last change before syncing
		stopChan:      make(chan struct{}),
	}
}

// Start begins watching the library directory for changes.
func (w *WatcherService) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = watcher

	libraryPath := w.ctx.Config().Library.Path

	// Watch the library root directory recursively
	err = filepath.WalkDir(libraryPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		// Only watch directories (files are watched via their parent directory)
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return err
	}

	log.Printf("File watcher started for library: %s", libraryPath)

	go w.processEvents()

	return nil
}

// Stop stops the file watcher service.
func (w *WatcherService) Stop() error {
	close(w.stopChan)
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}

// processEvents processes file system events and schedules syncs.
func (w *WatcherService) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)

		case <-w.stopChan:
			return
		}
	}
}

// handleEvent processes a single file system event.
func (w *WatcherService) handleEvent(event fsnotify.Event) {
	// Ignore Chmod events (these are often triggered by opening folders,
	// reading files, etc.) to prevent false triggers while browsing.
	if event.Op == fsnotify.Chmod {
		return
	}

	hasRelevantOp := (event.Op&fsnotify.Create == fsnotify.Create) ||
		(event.Op&fsnotify.Write == fsnotify.Write) ||
		(event.Op&fsnotify.Remove == fsnotify.Remove) ||
		(event.Op&fsnotify.Rename == fsnotify.Rename)

	if !hasRelevantOp {
		return
	}

	info, err := os.Stat(event.Name)
	isDir := err == nil && info.IsDir()

	// New directories need to be added to the watch list. A new folder
	// may become a new shelf, so it also schedules a sync.
	if event.Op&fsnotify.Create == fsnotify.Create && isDir {
		w.watcher.Add(event.Name)
		w.scheduleSync()
		return
	}

	// For file events, only trigger on supported audio files. Removes
	// can't be stat'd, so fall back to the extension check alone.
	if !isDir && IsSupportedAudio(filepath.Base(event.Name)) {
		w.scheduleSync()
	}
}

// scheduleSync resets the debounce timer so a burst of events results
// in a single sync run.
func (w *WatcherService) scheduleSync() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceDelay, w.triggerSync)
}

// triggerSync submits the sync job to the job manager. The manager
// rejects the submission if a sync is already running.
func (w *WatcherService) triggerSync() {
	log.Println("File watcher detected changes, triggering library sync")
	if err := w.ctx.JobManager().RunJob("library-sync", w.ctx); err != nil {
		log.Printf("File watcher could not start library sync: %v", err)
	}
}
