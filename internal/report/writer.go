package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/dupfinder/internal/filelock"
	"github.com/harrison/dupfinder/internal/finder"
)

// ErrInvalidMode is returned by ParseMode for unrecognised output modes.
var ErrInvalidMode = errors.New("invalid output mode")

// Mode selects where a report is written.
type Mode int

const (
	// ModeConsole writes the report to the console only.
	ModeConsole Mode = iota + 1
	// ModeFile writes the report to a file only.
	ModeFile
	// ModeBoth writes the report to the console and a file.
	ModeBoth
)

// ParseMode accepts the prompt answers c, f and b (or console, file, both), case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "console":
		return ModeConsole, nil
	case "f", "file":
		return ModeFile, nil
	case "b", "both":
		return ModeBoth, nil
	default:
		return 0, fmt.Errorf("%w %q, must be one of: c, f, b", ErrInvalidMode, s)
	}
}

// String returns the single-letter prompt answer for m.
func (m Mode) String() string {
	switch m {
	case ModeConsole:
		return "c"
	case ModeFile:
		return "f"
	case ModeBoth:
		return "b"
	default:
		return "unknown"
	}
}

// ToConsole reports whether m includes console output.
func (m Mode) ToConsole() bool {
	return m == ModeConsole || m == ModeBoth
}

// ToFile reports whether m includes file output.
func (m Mode) ToFile() bool {
	return m == ModeFile || m == ModeBoth
}

// writeLines streams seq to w, one line per element.
func writeLines(w io.Writer, seq iter.Seq[string]) error {
	bw := bufio.NewWriter(w)
	for line := range seq {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteConsole writes the report to w. When colored is set, group numbers and
// filename headings are highlighted.
func WriteConsole(w io.Writer, root string, dups finder.FileMap, colored bool) error {
	st := style{}
	if colored {
		index := color.New(color.Bold)
		heading := color.New(color.FgCyan)
		index.EnableColor()
		heading.EnableColor()
		st = style{
			index:   func(s string) string { return index.Sprint(s) },
			heading: func(s string) string { return heading.Sprint(s) },
		}
	}

	if err := writeLines(w, lines(root, dups, st)); err != nil {
		return fmt.Errorf("failed to write report to console: %w", err)
	}
	return nil
}

// WriteFile writes the plain report to path. The file is replaced atomically
// under a lock, so a reader never sees a partial report.
func WriteFile(path string, root string, dups finder.FileMap) error {
	if path == "" {
		return fmt.Errorf("report path cannot be empty")
	}

	err := filelock.LockAndWriteFunc(path, func(w io.Writer) error {
		return writeLines(w, Lines(root, dups))
	})
	if err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}

// Target describes where Emit sends a report.
type Target struct {
	Mode    Mode
	Path    string    // Report file for ModeFile and ModeBoth
	Console io.Writer // Destination for ModeConsole and ModeBoth
	Color   bool      // Highlight console output
}

// Emit writes the duplicate report for result to every destination in t.
func Emit(result *finder.Result, t Target) error {
	if result == nil {
		return fmt.Errorf("no scan result to report")
	}
	if t.Mode != ModeConsole && t.Mode != ModeFile && t.Mode != ModeBoth {
		return fmt.Errorf("%w %d", ErrInvalidMode, int(t.Mode))
	}

	if t.Mode.ToConsole() {
		if t.Console == nil {
			return fmt.Errorf("console output requested without a writer")
		}
		if err := WriteConsole(t.Console, result.Root, result.Duplicates, t.Color); err != nil {
			return err
		}
	}

	if t.Mode.ToFile() {
		if err := WriteFile(t.Path, result.Root, result.Duplicates); err != nil {
			return err
		}
	}

	return nil
}
