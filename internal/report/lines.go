// Package report renders a scan's duplicate map as text and writes it to the
// console, a file, or both.
//
// The report is produced as a lazy sequence of lines so writers can stream it
// without building the whole document in memory:
//
//	List of duplicate filenames within the directory:
//	<root>
//
//	*************************************************************
//	1
//	=============================================================
//	"<filename>" can be found in the following locations:
//	1. <path>
//	2. <path>
//	=============================================================
//	2
//	...
//
// Groups are numbered in sorted filename order and paths in sorted path order,
// so the same tree always renders the same report.
package report

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/harrison/dupfinder/internal/finder"
)

// Header is the first line of every report.
const Header = "List of duplicate filenames within the directory:"

var (
	starRule   = strings.Repeat("*", 61)
	equalsRule = strings.Repeat("=", 61)
)

// style decorates the structural lines of a report. The zero value is plain text.
type style struct {
	index   func(string) string
	heading func(string) string
}

func (s style) apply(f func(string) string, line string) string {
	if f == nil {
		return line
	}
	return f(line)
}

// Lines returns the report for dups, scanned under root, one line at a time.
// An empty map yields only the header block.
func Lines(root string, dups finder.FileMap) iter.Seq[string] {
	return lines(root, dups, style{})
}

func lines(root string, dups finder.FileMap, st style) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range []string{Header, root, "", starRule} {
			if !yield(line) {
				return
			}
		}

		for i, name := range dups.Names() {
			heading := fmt.Sprintf("\"%s\" can be found in the following locations:", name)
			if !yield(st.apply(st.index, strconv.Itoa(i+1))) ||
				!yield(equalsRule) ||
				!yield(st.apply(st.heading, heading)) {
				return
			}
			for j, path := range dups[name] {
				if !yield(fmt.Sprintf("%d. %s", j+1, path)) {
					return
				}
			}
			if !yield(equalsRule) {
				return
			}
		}
	}
}

// Render returns the whole report as a single newline-terminated string.
func Render(root string, dups finder.FileMap) string {
	var b strings.Builder
	for line := range Lines(root, dups) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
