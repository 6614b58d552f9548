//go:build !linux && !darwin && !freebsd && !windows

package provider

import (
	fs "github.com/dreitier/staledirs/storage/fs"
)

func birthTime(path string) (int64, error) {
	return 0, fs.ErrUnsupported
}

func changeTime(path string) (int64, error) {
	return 0, fs.ErrUnsupported
}
