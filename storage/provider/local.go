package provider

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	fs "github.com/dreitier/staledirs/storage/fs"
	log "github.com/sirupsen/logrus"
)

// Local is the fs.Filesystem of the operating system. Timestamp retrieval is implemented per platform in the
// build-tagged files next to this one.
type Local struct{}

func NewLocal() *Local {
	return &Local{}
}

func (c *Local) ListDirectories(root string) ([]string, error) {
	dirEntries, err := os.ReadDir(root)

	if err != nil {
		return nil, fmt.Errorf("failed to scan directory %s: %w", root, err)
	}

	var directories []string

	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			directories = append(directories, dirEntry.Name())
			continue
		}

		if dirEntry.Type()&iofs.ModeSymlink == 0 {
			continue
		}

		// symbolic links count as directories if their target is one
		target, err := os.Stat(filepath.Join(root, dirEntry.Name()))

		if err != nil {
			log.Debugf("Ignoring dangling symbolic link %s: %s", dirEntry.Name(), err)
			continue
		}

		if target.IsDir() {
			directories = append(directories, dirEntry.Name())
		}
	}

	return directories, nil
}

func (c *Local) BirthTime(path string) (int64, error) {
	return birthTime(path)
}

func (c *Local) ChangeTime(path string) (int64, error) {
	return changeTime(path)
}

func (c *Local) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (c *Local) Size(path string) (uint64, error) {
	var total uint64

	err := filepath.WalkDir(path, func(current string, dirEntry iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !dirEntry.Type().IsRegular() {
			return nil
		}

		info, err := dirEntry.Info()

		if err != nil {
			return err
		}

		total += uint64(info.Size())
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to measure %s: %w", path, err)
	}

	return total, nil
}

var _ fs.Filesystem = (*Local)(nil)
