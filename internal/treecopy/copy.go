package treecopy

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Copier copies files and directory trees on a file system.
type Copier struct {
	fs afero.Fs
}

// New returns a Copier working on fs. A nil fs means the OS file system.
func New(fs afero.Fs) *Copier {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Copier{fs: fs}
}

// Copy copies src to dst. A directory source is copied recursively; any
// directory (src itself included) whose path ends with one of the exclude
// suffixes is skipped together with its subtree. Exclusions never apply to
// files. An existing destination file is kept as is unless overwrite is set.
//
// src must exist. File-system errors are returned as they occur and abort the
// remaining traversal; nothing already written is rolled back.
func (c *Copier) Copy(src, dst string, exclude []string, overwrite bool) error {
	info, err := c.fs.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return c.copyDir(src, dst, exclude, overwrite)
	}
	return c.copyFile(src, dst, info.Mode().Perm(), overwrite)
}

func (c *Copier) copyDir(src, dst string, exclude []string, overwrite bool) error {
	if excluded(src, exclude) {
		return nil
	}

	if err := c.fs.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dst, err)
	}

	entries, err := afero.ReadDir(c.fs, src)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", src, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if err := c.Copy(srcPath, dstPath, exclude, overwrite); err != nil {
			return err
		}
	}

	return nil
}

func (c *Copier) copyFile(src, dst string, perm os.FileMode, overwrite bool) error {
	if !overwrite {
		exists, err := afero.Exists(c.fs, dst)
		if err != nil {
			return fmt.Errorf("checking %s: %w", dst, err)
		}
		if exists {
			return nil
		}
	}

	in, err := c.fs.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := c.fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}

	// OpenFile only applies perm when it creates the file.
	if err := c.fs.Chmod(dst, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", dst, err)
	}
	return nil
}

// excluded reports whether dir ends with one of the suffixes. The match is on
// the raw path string, so "modules" also excludes "node_modules".
func excluded(dir string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(dir, s) {
			return true
		}
	}
	return false
}
