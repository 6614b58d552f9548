package storage

import (
	"fmt"
	"path/filepath"

	fs "github.com/dreitier/staledirs/storage/fs"
	log "github.com/sirupsen/logrus"
)

// DirectoryFilter decides whether a directory takes part in the cleanup at all
type DirectoryFilter interface {
	IsDirectoryIncluded(name string) bool
}

// Discovery is the outcome of scanning the root directory
type Discovery struct {
	// Names of all immediate child directories, in listing order
	Directories []string
	// Directories skipped by the DirectoryFilter
	Excluded []string
	// Directories whose timestamp could not be resolved
	Unresolvable []string
	// Every directory with a resolved timestamp, in listing order
	Resolved []*fs.DirectoryCandidate
}

// IsEmpty returns true if the root directory does not contain any directories
func (d *Discovery) IsEmpty() bool {
	return len(d.Directories) == 0
}

// Discover lists the immediate child directories of root and resolves their creation timestamps.
// All timestamps are resolved before anything gets deleted.
func Discover(filesystem fs.Filesystem, root string, filter DirectoryFilter) (*Discovery, error) {
	names, err := filesystem.ListDirectories(root)

	if err != nil {
		return nil, fmt.Errorf("unable to list directories: %w", err)
	}

	discovery := &Discovery{Directories: names}

	for _, name := range names {
		if filter != nil && !filter.IsDirectoryIncluded(name) {
			discovery.Excluded = append(discovery.Excluded, name)
			continue
		}

		resolution := fs.ResolveTimestamp(filesystem, filepath.Join(root, name))

		if !resolution.Resolved() {
			log.Debugf("Skipping %s: %s", name, resolution.Err)
			discovery.Unresolvable = append(discovery.Unresolvable, name)
			continue
		}

		log.Debugf("%s: resolved timestamp %d from %s", name, resolution.Timestamp, resolution.Source)

		discovery.Resolved = append(discovery.Resolved, &fs.DirectoryCandidate{
			Name:      name,
			Timestamp: resolution.Timestamp,
			Source:    resolution.Source,
		})
	}

	return discovery, nil
}
