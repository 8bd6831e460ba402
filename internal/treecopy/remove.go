package treecopy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// RemoveTree deletes path and everything below it. A missing path is not an
// error. Symlinks are unlinked, never followed. A failure part way through
// leaves whatever was not yet removed in place.
func (c *Copier) RemoveTree(path string) error {
	exists, err := afero.Exists(c.fs, path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if !exists {
		return nil
	}
	return c.removeDir(path)
}

func (c *Copier) removeDir(dir string) error {
	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		p := filepath.Join(dir, entry.Name())

		info, err := c.lstat(p)
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", p, err)
		}

		if info.IsDir() {
			if err := c.removeDir(p); err != nil {
				return err
			}
			continue
		}
		if err := c.fs.Remove(p); err != nil {
			return fmt.Errorf("removing %s: %w", p, err)
		}
	}

	if err := c.fs.Remove(dir); err != nil {
		return fmt.Errorf("removing %s: %w", dir, err)
	}
	return nil
}

func (c *Copier) lstat(p string) (os.FileInfo, error) {
	if l, ok := c.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(p)
		return info, err
	}
	return c.fs.Stat(p)
}
