//go:build windows

package preflight

import "os"

func checkReadable(path string) error {
	dir, err := os.Open(path)
	if err != nil {
		return err
	}
	return dir.Close()
}
