package finder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidArgument is wrapped by the error Scan returns when the root
// does not exist or is not a directory.
var ErrInvalidArgument = errors.New("invalid argument")

// Logger receives diagnostics emitted while scanning.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

// State is the lifecycle state of a Scanner.
type State int

const (
	// StateIdle means no scan has been started yet.
	StateIdle State = iota
	// StateScanning means a scan is in progress.
	StateScanning
	// StateReady means the last scan completed.
	StateReady
	// StateFailed means the last scan was rejected because of its root.
	StateFailed
)

// String returns the string representation of State.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScanning:
		return "scanning"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SkipError describes a path the scanner had to leave out.
type SkipError struct {
	Path string // Directory or file that was skipped
	Op   string // "readdir" for a skipped directory, "register" for a skipped file
	Err  error  // Underlying filesystem error
}

// Error implements the error interface for SkipError.
func (e *SkipError) Error() string {
	return fmt.Sprintf("skipped %s (%s): %v", e.Path, e.Op, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *SkipError) Unwrap() error {
	return e.Err
}

// Result holds the outcome of a single scan.
type Result struct {
	ScanID      string       // Random identifier used to correlate log lines
	Root        string       // Root directory as given to Scan
	Occurrences FileMap      // Every filename found, with all of its paths
	Duplicates  FileMap      // Filenames found in more than one location
	Skipped     []*SkipError // Directories and files left out of the maps
	StartedAt   time.Time
	Duration    time.Duration
}

// Scanner builds occurrence and duplicate maps for a directory tree.
// A Scanner is not safe for concurrent use.
type Scanner struct {
	log   Logger
	root  string
	state State

	readDir func(name string) ([]os.DirEntry, error)
	lstat   func(name string) (os.FileInfo, error)
	stat    func(name string) (os.FileInfo, error)
}

// New creates a Scanner that reports diagnostics to log.
// If log is nil, diagnostics are discarded.
func New(log Logger) *Scanner {
	if log == nil {
		log = nopLogger{}
	}
	return &Scanner{
		log:     log,
		state:   StateIdle,
		readDir: os.ReadDir,
		lstat:   os.Lstat,
		stat:    os.Stat,
	}
}

// State returns the scanner's lifecycle state.
func (s *Scanner) State() State {
	return s.state
}

// Root returns the root of the most recent scan, or "" before the first one.
func (s *Scanner) Root() string {
	return s.root
}

// Scan walks root and returns freshly built maps.
// Any previous result is discarded; the scanner only remembers root for Rescan.
func (s *Scanner) Scan(root string) (*Result, error) {
	s.root = root
	s.state = StateScanning

	result, err := s.scan(root)
	if err != nil {
		s.state = StateFailed
		return nil, err
	}

	s.state = StateReady
	return result, nil
}

// Rescan repeats the scan of the most recently used root.
func (s *Scanner) Rescan() (*Result, error) {
	if s.root == "" {
		return nil, fmt.Errorf("%w: no root to rescan", ErrInvalidArgument)
	}
	return s.Scan(s.root)
}

func (s *Scanner) scan(root string) (*Result, error) {
	info, err := s.stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: root %q: %v", ErrInvalidArgument, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: root %q is not a directory", ErrInvalidArgument, root)
	}

	result := &Result{
		ScanID:      uuid.NewString(),
		Root:        root,
		Occurrences: make(FileMap),
		StartedAt:   time.Now(),
	}
	s.log.LogDebug(fmt.Sprintf("Scan %s started at %s", result.ScanID, root))

	dirs := []string{root}
	for len(dirs) > 0 {
		dir := dirs[len(dirs)-1]
		dirs = dirs[:len(dirs)-1]

		entries, err := s.readDir(dir)
		if err != nil {
			// Partial listings are dropped along with the subtree.
			s.skip(result, dir, "readdir", err)
			continue
		}

		var subdirs []string
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			if entry.IsDir() {
				subdirs = append(subdirs, path)
				continue
			}

			if entry.Type()&fs.ModeSymlink != 0 {
				if target, err := s.stat(path); err == nil && target.IsDir() {
					s.log.LogDebug(fmt.Sprintf("Not following directory link %s", path))
					continue
				}
			}

			if _, err := s.lstat(path); err != nil {
				s.skip(result, path, "register", err)
				continue
			}
			result.Occurrences.add(path)
		}

		dirs = append(dirs, subdirs...)
	}

	result.Duplicates = result.Occurrences.Duplicates()
	result.Duration = time.Since(result.StartedAt)

	s.log.LogDebug(fmt.Sprintf("Scan %s finished: %d files, %d names, %d duplicated, %d skipped",
		result.ScanID,
		result.Occurrences.FileCount(),
		result.Occurrences.Len(),
		result.Duplicates.Len(),
		len(result.Skipped),
	))

	return result, nil
}

func (s *Scanner) skip(result *Result, path, op string, err error) {
	skipErr := &SkipError{Path: path, Op: op, Err: err}
	result.Skipped = append(result.Skipped, skipErr)
	s.log.LogWarn(skipErr.Error())
}

type nopLogger struct{}

func (nopLogger) LogDebug(string) {}
func (nopLogger) LogWarn(string)  {}
