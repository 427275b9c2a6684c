// Package finder walks a directory tree and groups the files it finds by base name.
//
// A scan produces two views of the tree:
//
//   - Occurrences: every base filename mapped to the sorted set of paths where it was found
//   - Duplicates: the subset of Occurrences whose names were found in more than one place
//
// Both maps are rebuilt from scratch on every scan. Nothing is carried over between scans
// other than the root path, which Rescan reuses.
//
// # Traversal
//
// The scanner keeps an explicit stack of pending directories instead of recursing, so the
// depth of the tree is bounded only by memory. Directories are popped in LIFO order; group
// membership does not depend on that order because every path set is kept sorted.
//
// # Error Tolerance
//
// Only the root is validated up front. A root that does not exist, or is not a directory,
// fails the scan with an error wrapping ErrInvalidArgument and no result is returned.
//
// Everything after that is recovered locally:
//   - a directory that cannot be listed (permission denied, removed mid-scan) is skipped
//     together with its whole subtree
//   - a file that disappears between listing and registration is skipped on its own
//
// Each skip is reported to the Logger at WARN level and recorded in Result.Skipped.
//
// # Symbolic Links
//
// Links to directories are never followed, which keeps the walk free of cycles without
// tracking visited inodes. Links to files (and dangling links) are registered under the
// link's own path, so a file reachable through a link and through its real path counts as
// two occurrences.
//
// # Usage
//
//	scanner := finder.New(log)
//	result, err := scanner.Scan("/path/to/tree")
//	if errors.Is(err, finder.ErrInvalidArgument) {
//	    // root is missing or not a directory
//	}
//	for _, name := range result.Duplicates.Names() {
//	    fmt.Println(name, result.Duplicates[name])
//	}
package finder
