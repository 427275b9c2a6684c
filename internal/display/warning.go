package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/dupfinder/internal/finder"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related paths (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning to out, in yellow when colored is set.
func (w Warning) Display(out io.Writer, colored bool) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected path:\n")
		} else {
			b.WriteString("Affected paths:\n")
		}

		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if colored {
		yellow := color.New(color.FgYellow)
		yellow.EnableColor()
		fmt.Fprint(out, yellow.Sprint(b.String()))
		return
	}
	fmt.Fprint(out, b.String())
}

// WarnSkipped builds the warning shown after a report whose scan left paths out.
// The report itself carries no partial-results marker, so this is the only
// place a user learns that some subtrees are missing.
func WarnSkipped(skipped []*finder.SkipError) Warning {
	files := make([]string, 0, len(skipped))
	for _, s := range skipped {
		files = append(files, fmt.Sprintf("%s (%v)", s.Path, s.Err))
	}

	noun := "paths"
	if len(skipped) == 1 {
		noun = "path"
	}

	return Warning{
		Title:      fmt.Sprintf("%d %s could not be scanned", len(skipped), noun),
		Message:    "Files under these paths are not included in the report",
		Files:      files,
		Suggestion: "Check permissions and rerun, or scan from a different root",
	}
}
