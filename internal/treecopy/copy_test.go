package treecopy

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
)

// writeTree creates files (path -> content) on fsys.
func writeTree(t *testing.T, fsys afero.Fs, files map[string]string) {
	t.Helper()
	for p, content := range files {
		if err := fsys.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := afero.WriteFile(fsys, p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func assertContent(t *testing.T, fsys afero.Fs, p, want string) {
	t.Helper()
	data, err := afero.ReadFile(fsys, p)
	if err != nil {
		t.Fatalf("reading %s: %v", p, err)
	}
	if string(data) != want {
		t.Errorf("%s = %q, want %q", p, data, want)
	}
}

func assertMissing(t *testing.T, fsys afero.Fs, p string) {
	t.Helper()
	exists, err := afero.Exists(fsys, p)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Errorf("%s should not exist", p)
	}
}

func TestCopyExcludesNodeModules(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeTree(t, fsys, map[string]string{
		"/src/a.txt":                 "a",
		"/src/sub/b.txt":             "b",
		"/src/node_modules/pkg.json": "{}",
	})

	if err := New(fsys).Copy("/src", "/dst", []string{"node_modules"}, false); err != nil {
		t.Fatalf("Copy: %v", err)
	}

	assertContent(t, fsys, "/dst/a.txt", "a")
	assertContent(t, fsys, "/dst/sub/b.txt", "b")
	assertMissing(t, fsys, "/dst/node_modules")
}

func TestCopyPrunesEveryMatchingDirectory(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		exclude []string
		kept    []string
		pruned  []string
	}{
		{
			name: "nested occurrences",
			files: map[string]string{
				"/src/node_modules/x.js":       "x",
				"/src/sub/node_modules/y.js":   "y",
				"/src/sub/deep/node_modules/z": "z",
				"/src/sub/deep/keep.txt":       "k",
				"/src/.git/HEAD":               "ref",
			},
			exclude: []string{"node_modules", ".git"},
			kept:    []string{"/dst/sub/deep/keep.txt"},
			pruned: []string{
				"/dst/node_modules",
				"/dst/sub/node_modules",
				"/dst/sub/deep/node_modules",
				"/dst/.git",
			},
		},
		{
			name: "suffix also matches longer names",
			files: map[string]string{
				"/src/my_node_modules/a": "a",
				"/src/modules2/b":        "b",
			},
			exclude: []string{"node_modules"},
			kept:    []string{"/dst/modules2/b"},
			pruned:  []string{"/dst/my_node_modules"},
		},
		{
			name: "path suffix with separator",
			files: map[string]string{
				"/src/tests/fixtures/big.bin": "big",
				"/src/fixtures/small.bin":     "small",
			},
			exclude: []string{filepath.Join("tests", "fixtures")},
			kept:    []string{"/dst/fixtures/small.bin"},
			pruned:  []string{"/dst/tests/fixtures"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			writeTree(t, fsys, tt.files)

			if err := New(fsys).Copy("/src", "/dst", tt.exclude, false); err != nil {
				t.Fatalf("Copy: %v", err)
			}
			for _, p := range tt.kept {
				if ok, _ := afero.Exists(fsys, p); !ok {
					t.Errorf("%s should be copied", p)
				}
			}
			for _, p := range tt.pruned {
				assertMissing(t, fsys, p)
			}
		})
	}
}

func TestCopyExcludedRootCreatesNothing(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeTree(t, fsys, map[string]string{"/src/node_modules/a.js": "a"})

	if err := New(fsys).Copy("/src/node_modules", "/dst", []string{"node_modules"}, false); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	assertMissing(t, fsys, "/dst")
}

func TestCopyExclusionIgnoresFiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeTree(t, fsys, map[string]string{
		"/src/node_modules":  "a file, not a directory",
		"/src/sub/.git/HEAD": "ref",
	})

	if err := New(fsys).Copy("/src", "/dst", []string{"node_modules", ".git"}, false); err != nil {
		t.Fatalf("Copy: %v", err)
	}

	assertContent(t, fsys, "/dst/node_modules", "a file, not a directory")
	// The parent of an excluded directory is still created.
	if ok, _ := afero.DirExists(fsys, "/dst/sub"); !ok {
		t.Error("/dst/sub should be created")
	}
	assertMissing(t, fsys, "/dst/sub/.git")
}

func TestCopyFileIdempotentWithoutOverwrite(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeTree(t, fsys, map[string]string{"/src/f.txt": "first"})
	c := New(fsys)

	if err := c.Copy("/src/f.txt", "/dst.txt", nil, false); err != nil {
		t.Fatalf("first copy: %v", err)
	}
	writeTree(t, fsys, map[string]string{"/src/f.txt": "second"})
	if err := c.Copy("/src/f.txt", "/dst.txt", nil, false); err != nil {
		t.Fatalf("second copy: %v", err)
	}

	assertContent(t, fsys, "/dst.txt", "first")
}

func TestCopyFileOverwriteTakesLatest(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeTree(t, fsys, map[string]string{"/src/f.txt": "a much longer first version"})
	c := New(fsys)

	if err := c.Copy("/src/f.txt", "/dst.txt", nil, true); err != nil {
		t.Fatalf("first copy: %v", err)
	}
	writeTree(t, fsys, map[string]string{"/src/f.txt": "second"})
	if err := c.Copy("/src/f.txt", "/dst.txt", nil, true); err != nil {
		t.Fatalf("second copy: %v", err)
	}

	assertContent(t, fsys, "/dst.txt", "second")
}

func TestCopyLeavesExistingFileUntouched(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeTree(t, fsys, map[string]string{
		"/src/out.bin": "new bytes",
		"/dst/out.bin": "old bytes",
	})

	if err := New(fsys).Copy("/src", "/dst", nil, false); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	assertContent(t, fsys, "/dst/out.bin", "old bytes")
}

func TestCopyOverwriteAppliesToNestedFiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeTree(t, fsys, map[string]string{
		"/src/sub/conf.js": "new",
		"/dst/sub/conf.js": "old",
	})

	if err := New(fsys).Copy("/src", "/dst", nil, true); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	assertContent(t, fsys, "/dst/sub/conf.js", "new")
}

func TestCopyTreeTwiceIsStable(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeTree(t, fsys, map[string]string{
		"/src/a.txt":     "a",
		"/src/sub/b.txt": "b",
	})
	c := New(fsys)

	for i := 0; i < 2; i++ {
		if err := c.Copy("/src", "/dst", nil, false); err != nil {
			t.Fatalf("copy %d: %v", i, err)
		}
	}
	assertContent(t, fsys, "/dst/a.txt", "a")
	assertContent(t, fsys, "/dst/sub/b.txt", "b")
}

func TestCopyMissingSource(t *testing.T) {
	fsys := afero.NewMemMapFs()
	err := New(fsys).Copy("/nope", "/dst", nil, false)
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
	assertMissing(t, fsys, "/dst")
}

func TestCopyOnDiskPreservesMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	if err := os.MkdirAll(src, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "run.sh"), []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(tmp, "dst")
	if err := New(nil).Copy(src, dst, nil, false); err != nil {
		t.Fatalf("Copy: %v", err)
	}

	info, err := os.Stat(filepath.Join(dst, "run.sh"))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0755 {
		t.Errorf("permissions = %o, want %o", perm, 0755)
	}
}
