//go:build !linux

package disk

import "os"

// dropCache is a no-op where posix_fadvise is unavailable.
func dropCache(*os.File) error {
	return nil
}
