// Package renamescript builds the file-naming script fragment that
// consumes the shelf tag, and applies the optional workflow transition
// between shelves. The fragment is documentation for the user's tagger;
// it is never executed here.
package renamescript

import (
	"log"

	"github.com/shelftag/shelftag/internal/shelf"
)

// fragment routes files into their shelf folder before the usual
// artist/album/title layout. $shelf() resolves the shelf tag with the
// workflow transition applied.
const fragment = `$set(_shelffolder,$shelf())
$set(_shelffolder,$if($not($eq(%_shelffolder%,)),%_shelffolder%/))

%_shelffolder%
$if2(%albumartist%,%artist%)/%album%/%title%`

// Snippet returns the naming script fragment.
func Snippet() string {
	return fragment
}

// Workflow moves files from a staging shelf to a final shelf at rename
// time: a file tagged with Stage1 is written out under Stage2.
type Workflow struct {
	Enabled bool   `json:"enabled"`
	Stage1  string `json:"stage_1"`
	Stage2  string `json:"stage_2"`
}

// DefaultWorkflow returns the Incoming -> Standard transition, enabled.
func DefaultWorkflow() Workflow {
	return Workflow{
		Enabled: true,
		Stage1:  shelf.DefaultIncomingShelf,
		Stage2:  shelf.DefaultShelf,
	}
}

// Apply resolves the shelf a file should be filed under. With the
// workflow disabled, or for any shelf other than Stage1, the input is
// returned unchanged.
func (w Workflow) Apply(shelfName string) string {
	if !w.Enabled || w.Stage1 == "" || w.Stage2 == "" {
		return shelfName
	}
	if shelfName == w.Stage1 {
		log.Printf("Applying workflow transition: %q -> %q", w.Stage1, w.Stage2)
		return w.Stage2
	}
	return shelfName
}
