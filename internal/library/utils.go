// This file contains utility functions shared across the library package.

package library

import (
	"path/filepath"
	"strings"

	"github.com/shelftag/shelftag/internal/jobs"
	"github.com/shelftag/shelftag/internal/models"
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".oga":  true,
	".opus": true,
	".m4a":  true,
	".aac":  true,
	".wav":  true,
	".wma":  true,
	".aiff": true,
}

// IsSupportedAudio reports whether the file name has a recognized audio
// extension.
func IsSupportedAudio(name string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(name))]
}

// sendProgress sends a progress update via WebSocket to connected clients.
func sendProgress(ctx jobs.JobContext, jobId string, message string, progress float64, done bool) {
	update := models.ProgressUpdate{
		JobID:    jobId,
		Message:  message,
		Progress: progress,
		Done:     done,
	}
	ctx.WsHub().BroadcastJSON(update)
}
