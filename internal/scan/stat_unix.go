//go:build !windows

package scan

import (
	"io/fs"
	"syscall"
)

func statIdentity(info fs.FileInfo) (inode, dev uint64) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0
	}
	return uint64(stat.Ino), uint64(stat.Dev)
}
