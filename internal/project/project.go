package project

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/nightwatch-labs/create-nightwatch/internal/console"
)

// ManifestName is the file whose presence marks a Node.js project.
const ManifestName = "package.json"

// Runner executes an external command inside dir.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands with os/exec, streaming their output.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run looks name up on PATH and executes it in dir.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s not found on PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s in %s: %w", name, dir, err)
	}
	return nil
}

// IsNodeProject reports whether root contains a package.json.
func IsNodeProject(root string) bool {
	_, err := os.Stat(filepath.Join(root, ManifestName))
	return err == nil
}

// EnsureManifest initialises a new npm project in root when it has no
// package.json yet, creating root first if needed. Progress notes go to w.
// It reports whether a new project was created.
func EnsureManifest(ctx context.Context, root string, runner Runner, w io.Writer) (bool, error) {
	if IsNodeProject(root) {
		return false, nil
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return false, fmt.Errorf("creating project root %s: %w", root, err)
	}

	fmt.Fprintf(w, "%s not found in the root directory. Initializing a new NPM project..\n\n",
		console.Highlight(ManifestName))

	if err := runner.Run(ctx, root, "npm", "init", "-y"); err != nil {
		return false, fmt.Errorf("initializing npm project: %w", err)
	}

	if !IsNodeProject(root) {
		return false, fmt.Errorf("npm init finished but %s is still missing in %s", ManifestName, root)
	}
	return true, nil
}
