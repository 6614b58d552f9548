package fs

// Common data structures for directories. The local provider and the in-memory test doubles share this abstraction.
import (
	"errors"
	"time"
)

var (
	// ErrUnsupported is returned by a Filesystem if a timestamp kind cannot be queried on the current platform
	ErrUnsupported = errors.New("timestamp not supported on this platform")
	// ErrTimestampUnresolvable is returned if neither birth time nor status-change time could be determined
	ErrTimestampUnresolvable = errors.New("timestamp unresolvable")
)

// Filesystem provides everything needed to discover and remove stale directories
type Filesystem interface {
	// ListDirectories returns the names of all immediate child directories of root, in listing order.
	// Symbolic links pointing to directories are reported as directories.
	ListDirectories(root string) ([]string, error)
	// BirthTime returns the creation time of path in seconds since epoch
	BirthTime(path string) (int64, error)
	// ChangeTime returns the status-change time (ctime) of path in seconds since epoch
	ChangeTime(path string) (int64, error)
	RemoveAll(path string) error
	// Size returns the accumulated size of all regular files below path
	Size(path string) (uint64, error)
}

// TimestampSource tells which file-status field a timestamp has been taken from
type TimestampSource int

const (
	SourceNone TimestampSource = iota
	SourceBirth
	SourceChangeTime
)

func (s TimestampSource) String() string {
	switch s {
	case SourceBirth:
		return "birth"
	case SourceChangeTime:
		return "ctime"
	}

	return "none"
}

// DirectoryCandidate is an immediate child directory of the root with its resolved creation timestamp
type DirectoryCandidate struct {
	// Name relative to the root directory
	Name string
	// Seconds since epoch
	Timestamp int64
	Source    TimestampSource
	// Size in bytes; only set if size measuring is enabled and succeeded
	Size *uint64
}

// Time returns the candidate's timestamp in the given location
func (c *DirectoryCandidate) Time(location *time.Location) time.Time {
	return time.Unix(c.Timestamp, 0).In(location)
}
