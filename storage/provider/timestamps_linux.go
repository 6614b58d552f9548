//go:build linux

package provider

import (
	"os"

	fs "github.com/dreitier/staledirs/storage/fs"
	"golang.org/x/sys/unix"
)

// birthTime uses statx(2), as stat(2) does not expose the birth time on Linux.
// Filesystems without birth time support (e.g. tmpfs on older kernels) clear STATX_BTIME in the returned mask.
func birthTime(path string) (int64, error) {
	var stx unix.Statx_t

	if err := unix.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT, unix.STATX_BTIME, &stx); err != nil {
		return 0, &os.PathError{Op: "statx", Path: path, Err: err}
	}

	if stx.Mask&unix.STATX_BTIME == 0 {
		return 0, fs.ErrUnsupported
	}

	return stx.Btime.Sec, nil
}

func changeTime(path string) (int64, error) {
	var st unix.Stat_t

	if err := unix.Stat(path, &st); err != nil {
		return 0, &os.PathError{Op: "stat", Path: path, Err: err}
	}

	sec, _ := st.Ctim.Unix()
	return sec, nil
}
