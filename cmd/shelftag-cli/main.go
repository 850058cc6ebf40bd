// A small command line companion to the server. With no flags it runs a
// one-off library sync. The -clean and -classify flags run a single
// title or path through the processing logic without touching the
// database, which is handy for testing patterns.

package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/shelftag/shelftag/internal/core"
	"github.com/shelftag/shelftag/internal/library"
	"github.com/shelftag/shelftag/internal/shelf"
	"github.com/shelftag/shelftag/internal/store"
)

func main() {
	cleanTitle := flag.String("clean", "", "Clean a single album title and print the result")
	releaseType := flag.String("release-type", "soundtrack", "Release type used with -clean")
	classifyPath := flag.String("classify", "", "Classify a file path and print the shelf")
	flag.Parse()

	app, err := core.New()
	if err != nil {
		log.Fatalf("Fatal error during application setup: %v", err)
	}
	defer app.Close()

	st := store.New(app.DB())

	switch {
	case *cleanTitle != "":
		runClean(st, *cleanTitle, *releaseType)
	case *classifyPath != "":
		runClassify(app, st, *classifyPath)
	default:
		log.Printf("Starting scan of library at: %s", app.Config().Library.Path)
		library.LibrarySync(app)
		fmt.Println("Library scan finished successfully.")
	}
}

func runClean(st *store.Store, title, releaseType string) {
	settings, err := st.LoadCleanerSettings()
	if err != nil {
		log.Fatalf("Failed to load cleaner settings: %v", err)
	}
	rules, err := settings.RuleSet()
	if err != nil {
		log.Fatalf("Stored cleaner patterns are invalid: %v", err)
	}

	isSoundtrack := strings.Contains(strings.ToLower(releaseType), "soundtrack")
	cleaned := rules.Clean(title, settings.OnlySoundtrack, isSoundtrack)
	fmt.Println(cleaned)
}

func runClassify(app *core.App, st *store.Store, path string) {
	known, err := st.ShelfSet()
	if err != nil {
		log.Fatalf("Failed to load shelves: %v", err)
	}

	cfg := app.Config()
	name, suspicious, err := shelf.Classify(path, cfg.Library.Path, known, cfg.Library.DefaultShelf)
	if err != nil {
		log.Fatalf("Could not classify path: %v", err)
	}

	fmt.Printf("shelf: %s\n", name)
	if suspicious {
		fmt.Println("suspicious: the folder name looks like an artist or album directory")
	}
}
