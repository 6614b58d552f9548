package fs

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Resolution is the outcome of resolving a directory's creation timestamp.
// An unresolved Resolution has Source == SourceNone and Err set.
type Resolution struct {
	Timestamp int64
	Source    TimestampSource
	Err       error
}

func (r Resolution) Resolved() bool {
	return r.Source != SourceNone
}

// ResolveTimestamp determines the creation timestamp of path. The birth time is used if it is available and positive,
// otherwise the status-change time is used.
func ResolveTimestamp(filesystem Filesystem, path string) Resolution {
	birth, err := filesystem.BirthTime(path)

	if err == nil && birth > 0 {
		return Resolution{Timestamp: birth, Source: SourceBirth}
	}

	if err != nil {
		log.Debugf("%s: birth time not available, falling back to ctime: %s", path, err)
	} else {
		log.Debugf("%s: birth time reported as %d, falling back to ctime", path, birth)
	}

	ctime, ctimeErr := filesystem.ChangeTime(path)

	if ctimeErr != nil {
		return Resolution{Err: fmt.Errorf("%w: %s: %v", ErrTimestampUnresolvable, path, ctimeErr)}
	}

	return Resolution{Timestamp: ctime, Source: SourceChangeTime}
}
