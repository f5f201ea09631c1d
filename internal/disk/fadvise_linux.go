//go:build linux

package disk

import (
	"os"

	"golang.org/x/sys/unix"
)

// dropCache asks the kernel to evict the cached pages of f.
func dropCache(f *os.File) error {
	return unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_DONTNEED)
}
