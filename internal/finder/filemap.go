package finder

import (
	"maps"
	"path/filepath"
	"slices"
)

// FileMap maps a base filename to the paths where it was found.
// Each path slice is sorted byte-wise and holds no repeated entries.
// Callers must treat a FileMap returned from a scan as read-only.
type FileMap map[string][]string

// add registers path under its base filename, keeping the slice sorted and unique.
func (m FileMap) add(path string) {
	name := filepath.Base(path)
	paths := m[name]

	i, found := slices.BinarySearch(paths, path)
	if found {
		return
	}
	m[name] = slices.Insert(paths, i, path)
}

// Names returns the filenames in the map in sorted order.
func (m FileMap) Names() []string {
	names := slices.Collect(maps.Keys(m))
	slices.Sort(names)
	return names
}

// Paths returns a copy of the paths recorded for name, or nil if name is absent.
func (m FileMap) Paths(name string) []string {
	return slices.Clone(m[name])
}

// Len returns the number of distinct filenames.
func (m FileMap) Len() int {
	return len(m)
}

// FileCount returns the total number of paths across all filenames.
func (m FileMap) FileCount() int {
	total := 0
	for _, paths := range m {
		total += len(paths)
	}
	return total
}

// Duplicates returns the entries whose filename was found in more than one location.
// The returned map shares nothing with m.
func (m FileMap) Duplicates() FileMap {
	dups := make(FileMap)
	for name, paths := range m {
		if len(paths) > 1 {
			dups[name] = slices.Clone(paths)
		}
	}
	return dups
}
