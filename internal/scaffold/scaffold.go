package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/nightwatch-labs/create-nightwatch/internal/console"
	"github.com/nightwatch-labs/create-nightwatch/internal/download"
	"github.com/nightwatch-labs/create-nightwatch/internal/plan"
	"github.com/nightwatch-labs/create-nightwatch/internal/platform"
	"github.com/nightwatch-labs/create-nightwatch/internal/treecopy"
)

// OptionNewProject is added to the request options when package.json had
// to be created for the run.
const OptionNewProject = "new-project"

// Request describes one scaffolding run.
type Request struct {
	Root    string
	Plan    *plan.Plan
	Version string
	// Mirror, when set, replaces the host and path of every download URL:
	// assets are fetched from <Mirror>/<file name>.
	Mirror  string
	Options []string
}

// HasOption reports whether name was passed as a workflow option.
func (r *Request) HasOption(name string) bool {
	for _, o := range r.Options {
		if o == name {
			return true
		}
	}
	return false
}

// Report holds the outcome of a scaffolding run.
type Report struct {
	Root      string
	Removed   []string
	Copied    []string
	Downloads []download.Result
}

// Runner executes scaffold plans.
type Runner struct {
	copier     *treecopy.Copier
	downloader *download.Downloader
	out        io.Writer
}

// New creates a Runner. Step summaries are written to out.
func New(copier *treecopy.Copier, downloader *download.Downloader, out io.Writer) *Runner {
	return &Runner{copier: copier, downloader: downloader, out: out}
}

// Run executes req.Plan against req.Root. Clean and copy failures abort the
// run. Download failures do not: every asset is attempted and the failures
// are returned together once all downloads have finished.
func (r *Runner) Run(ctx context.Context, req *Request) (*Report, error) {
	if err := plan.CheckVersion(req.Plan.Requires, req.Version); err != nil {
		return nil, err
	}
	if err := req.Plan.CheckPaths(); err != nil {
		return nil, err
	}

	report := &Report{Root: req.Root}
	sym := console.StatusSymbols()

	for _, p := range req.Plan.Clean {
		target := resolve(req.Root, p)
		if err := r.copier.RemoveTree(target); err != nil {
			return report, fmt.Errorf("cleaning %s: %w", p, err)
		}
		report.Removed = append(report.Removed, target)
		fmt.Fprintf(r.out, " %s Removed %s\n", sym.OK, r.rel(req.Root, target))
	}

	for _, step := range req.Plan.Copy {
		dst, isDir, err := copyDestination(req.Root, step)
		if err != nil {
			return report, err
		}
		// The copier creates directories but not a file's parent.
		if !isDir {
			if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
				return report, fmt.Errorf("copying %s: %w", step.From, err)
			}
		}
		if err := r.copier.Copy(step.From, dst, step.Exclude, step.Overwrite); err != nil {
			return report, fmt.Errorf("copying %s: %w", step.From, err)
		}
		report.Copied = append(report.Copied, dst)
		fmt.Fprintf(r.out, " %s Copied %s\n", sym.OK, r.rel(req.Root, dst))
	}

	var failures []error
	for _, asset := range req.Plan.Download {
		src, err := mirrored(req.Mirror, asset.URL)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		dest := resolve(req.Root, asset.To)

		res := r.downloader.Download(ctx, src, dest)
		report.Downloads = append(report.Downloads, res)

		switch {
		case res.Failed():
			fmt.Fprintf(r.out, " %s Download failed: %s\n", sym.Fail, console.StripControlChars(src))
			failures = append(failures, fmt.Errorf("downloading %s: %w", src, res.Err))
		case res.Completed() && asset.Executable:
			if err := platform.MakeExecutable(dest); err != nil {
				failures = append(failures, err)
			}
		}
	}

	return report, errors.Join(failures...)
}

// copyDestination works out where a copy step lands and whether its source
// is a directory. Without an explicit target a directory is merged into the
// root and a file keeps its name.
func copyDestination(root string, step plan.CopyStep) (string, bool, error) {
	info, err := os.Stat(step.From)
	if err != nil {
		return "", false, fmt.Errorf("copying %s: %w", step.From, err)
	}
	switch {
	case step.To != "":
		return resolve(root, step.To), info.IsDir(), nil
	case info.IsDir():
		return root, true, nil
	default:
		return filepath.Join(root, filepath.Base(step.From)), false, nil
	}
}

// resolve joins a target already accepted by plan.CheckPaths onto root.
func resolve(root, p string) string {
	return filepath.Join(root, p)
}

func (r *Runner) rel(root, p string) string {
	if rel, err := filepath.Rel(root, p); err == nil {
		p = rel
	}
	return console.StripControlChars(p)
}

// mirrored rewrites rawURL to point at mirror when one is configured.
func mirrored(mirror, rawURL string) (string, error) {
	if mirror == "" {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing download URL %q: %w", rawURL, err)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return "", fmt.Errorf("download URL %q has no file name to mirror", rawURL)
	}
	return strings.TrimRight(mirror, "/") + "/" + name, nil
}
