// Package memfs provides an in-memory fs.Filesystem which records every call. It is used to test the cleanup
// pipeline without touching the disk.
package memfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	fs "github.com/dreitier/staledirs/storage/fs"
)

// Directory describes a single child directory of the in-memory root
type Directory struct {
	Name string
	// Birth time in seconds since epoch; 0 emulates a filesystem which reports no birth time
	Birth int64
	// Status-change time in seconds since epoch
	ChangeTime int64
	Size       uint64
	// If set, BirthTime returns this error
	BirthErr error
	// If set, ChangeTime returns this error
	ChangeTimeErr error
	// If set, RemoveAll returns this error and keeps the directory
	RemoveErr error
}

// Filesystem is an in-memory fs.Filesystem
type Filesystem struct {
	mu          sync.Mutex
	root        string
	directories []*Directory
	calls       []string
	// If set, ListDirectories returns this error
	ListErr error
}

func New(root string, directories ...*Directory) *Filesystem {
	return &Filesystem{root: root, directories: directories}
}

// Calls returns every recorded call in the form "Method path"
func (f *Filesystem) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.calls...)
}

// Names returns the names of all directories which still exist
func (f *Filesystem) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, 0, len(f.directories))
	for _, d := range f.directories {
		names = append(names, d.Name)
	}

	return names
}

func (f *Filesystem) record(method string, path string) {
	f.calls = append(f.calls, fmt.Sprintf("%s %s", method, path))
}

func (f *Filesystem) ListDirectories(root string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListDirectories", root)

	if f.ListErr != nil {
		return nil, f.ListErr
	}

	if root != f.root {
		return nil, &os.PathError{Op: "open", Path: root, Err: os.ErrNotExist}
	}

	names := make([]string, 0, len(f.directories))
	for _, d := range f.directories {
		names = append(names, d.Name)
	}

	return names, nil
}

func (f *Filesystem) BirthTime(path string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("BirthTime", path)

	d, err := f.lookup("statx", path)
	if err != nil {
		return 0, err
	}

	if d.BirthErr != nil {
		return 0, d.BirthErr
	}

	return d.Birth, nil
}

func (f *Filesystem) ChangeTime(path string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ChangeTime", path)

	d, err := f.lookup("stat", path)
	if err != nil {
		return 0, err
	}

	if d.ChangeTimeErr != nil {
		return 0, d.ChangeTimeErr
	}

	return d.ChangeTime, nil
}

func (f *Filesystem) RemoveAll(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("RemoveAll", path)

	for i, d := range f.directories {
		if filepath.Join(f.root, d.Name) != path {
			continue
		}

		if d.RemoveErr != nil {
			return &os.PathError{Op: "unlinkat", Path: path, Err: d.RemoveErr}
		}

		f.directories = append(f.directories[:i], f.directories[i+1:]...)
		return nil
	}

	// like os.RemoveAll, a missing path is not an error
	return nil
}

func (f *Filesystem) Size(path string) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Size", path)

	d, err := f.lookup("lstat", path)
	if err != nil {
		return 0, err
	}

	return d.Size, nil
}

func (f *Filesystem) lookup(op string, path string) (*Directory, error) {
	for _, d := range f.directories {
		if filepath.Join(f.root, d.Name) == path {
			return d, nil
		}
	}

	return nil, &os.PathError{Op: op, Path: path, Err: os.ErrNotExist}
}

var _ fs.Filesystem = (*Filesystem)(nil)

// ErrPermission is a convenience error to emulate a directory which cannot be removed
var ErrPermission = errors.New("permission denied")
