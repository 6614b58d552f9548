//go:build darwin || freebsd

package provider

import (
	"os"

	"golang.org/x/sys/unix"
)

func birthTime(path string) (int64, error) {
	var st unix.Stat_t

	if err := unix.Stat(path, &st); err != nil {
		return 0, &os.PathError{Op: "stat", Path: path, Err: err}
	}

	sec, _ := st.Btim.Unix()
	return sec, nil
}

func changeTime(path string) (int64, error) {
	var st unix.Stat_t

	if err := unix.Stat(path, &st); err != nil {
		return 0, &os.PathError{Op: "stat", Path: path, Err: err}
	}

	sec, _ := st.Ctim.Unix()
	return sec, nil
}
