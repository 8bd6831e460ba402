package platform

import (
	"fmt"
	"os"
	"runtime"
)

// Chmod sets file permissions. Windows has no Unix permission bits, so it
// is a no-op there.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// MakeExecutable adds the execute bit for every class that can already read
// path, the way `chmod +x` does for a downloaded driver binary.
func MakeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", path, err)
	}
	perm := info.Mode().Perm()
	perm |= (perm & 0444) >> 2
	if err := Chmod(path, perm); err != nil {
		return fmt.Errorf("marking %s executable: %w", path, err)
	}
	return nil
}
