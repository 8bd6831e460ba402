package project

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeRunner records invocations and writes package.json like npm would.
type fakeRunner struct {
	calls [][]string
	dirs  []string
	err   error
	write bool
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	f.dirs = append(f.dirs, dir)
	if f.err != nil {
		return f.err
	}
	if f.write {
		return os.WriteFile(filepath.Join(dir, ManifestName), []byte(`{"name":"demo"}`), 0644)
	}
	return nil
}

func TestEnsureManifestExisting(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ManifestName), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	runner := &fakeRunner{}
	var out bytes.Buffer
	created, err := EnsureManifest(context.Background(), root, runner, &out)
	if err != nil {
		t.Fatalf("EnsureManifest: %v", err)
	}
	if created {
		t.Error("created should be false for an existing project")
	}
	if len(runner.calls) != 0 {
		t.Errorf("npm should not run, got %v", runner.calls)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestEnsureManifestInitializesNewProject(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "app")

	runner := &fakeRunner{write: true}
	var out bytes.Buffer
	created, err := EnsureManifest(context.Background(), root, runner, &out)
	if err != nil {
		t.Fatalf("EnsureManifest: %v", err)
	}
	if !created {
		t.Error("created should be true")
	}

	if len(runner.calls) != 1 || strings.Join(runner.calls[0], " ") != "npm init -y" {
		t.Errorf("calls = %v, want [npm init -y]", runner.calls)
	}
	if runner.dirs[0] != root {
		t.Errorf("npm ran in %s, want %s", runner.dirs[0], root)
	}
	if !strings.Contains(out.String(), "Initializing a new NPM project") {
		t.Errorf("output = %q", out.String())
	}
	if !IsNodeProject(root) {
		t.Error("root should now be a node project")
	}
}

func TestEnsureManifestRunnerFailure(t *testing.T) {
	root := t.TempDir()
	runner := &fakeRunner{err: errors.New("npm exploded")}

	_, err := EnsureManifest(context.Background(), root, runner, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "npm exploded") {
		t.Fatalf("err = %v, want npm failure", err)
	}
}

func TestEnsureManifestStillMissing(t *testing.T) {
	root := t.TempDir()
	_, err := EnsureManifest(context.Background(), root, &fakeRunner{}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error when npm does not create package.json")
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	r := &ExecRunner{}
	err := r.Run(context.Background(), t.TempDir(), "definitely-not-a-real-binary-xyz")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}
