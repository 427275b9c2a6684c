package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/dupfinder/internal/finder"
)

// colorScheme defines consistent colors for summary metrics.
// Green: nothing to report
// Yellow: duplicates found
// Red: skipped paths
// Cyan: labels
type colorScheme struct {
	ok    *color.Color
	warn  *color.Color
	fail  *color.Color
	label *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		ok:    color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
		fail:  color.New(color.FgRed),
		label: color.New(color.FgCyan),
	}
}

// colorizeLevel colors a level tag the way the console logger prints it.
func colorizeLevel(level string) string {
	switch strings.ToUpper(level) {
	case "TRACE":
		return color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgBlue).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		return color.New(color.FgRed).Sprint(level)
	default:
		return level
	}
}

// formatColorizedSummary is formatSummary with the counts color coded.
// A zero duplicate count is green, otherwise yellow; any skipped path is red.
func formatColorizedSummary(result *finder.Result) string {
	scheme := newColorScheme()

	dupColor := scheme.ok
	if result.Duplicates.Len() > 0 {
		dupColor = scheme.warn
	}
	skipColor := scheme.ok
	if len(result.Skipped) > 0 {
		skipColor = scheme.fail
	}

	return fmt.Sprintf("%s %s: %d files, %d names, %s duplicated, %s skipped (%s)",
		scheme.label.Sprint("Scanned"),
		result.Root,
		result.Occurrences.FileCount(),
		result.Occurrences.Len(),
		dupColor.Sprintf("%d", result.Duplicates.Len()),
		skipColor.Sprintf("%d", len(result.Skipped)),
		formatDuration(result.Duration),
	)
}
