//go:build windows

package provider

import (
	"fmt"
	"os"
	"syscall"

	fs "github.com/dreitier/staledirs/storage/fs"
)

func birthTime(path string) (int64, error) {
	info, err := os.Stat(path)

	if err != nil {
		return 0, err
	}

	attributes, ok := info.Sys().(*syscall.Win32FileAttributeData)

	if !ok {
		return 0, fmt.Errorf("%s: unexpected file attribute type %T", path, info.Sys())
	}

	return attributes.CreationTime.Nanoseconds() / 1e9, nil
}

// Windows has no status-change time
func changeTime(path string) (int64, error) {
	return 0, fs.ErrUnsupported
}
