package plan

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrOutsideRoot is returned for a target that is absolute or climbs out
	// of the project root with "..".
	ErrOutsideRoot = errors.New("path leaves the project root")
	// ErrRootTarget is returned when a clean or download target names the
	// project root itself.
	ErrRootTarget = errors.New("path names the project root")
)

// CheckPaths verifies that every clean, copy and download target is a
// relative path inside the project root. Only a copy step may target the
// root itself. Copy sources are not checked.
func (p *Plan) CheckPaths() error {
	var errs []error
	for i, c := range p.Clean {
		if err := checkTarget(c, false); err != nil {
			errs = append(errs, fmt.Errorf("clean[%d]: %w", i, err))
		}
	}
	for i, c := range p.Copy {
		if c.To == "" {
			continue
		}
		if err := checkTarget(c.To, true); err != nil {
			errs = append(errs, fmt.Errorf("copy[%d].to: %w", i, err))
		}
	}
	for i, d := range p.Download {
		if err := checkTarget(d.To, false); err != nil {
			errs = append(errs, fmt.Errorf("download[%d].to: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func checkTarget(p string, allowRoot bool) error {
	clean := filepath.Clean(p)
	sep := string(filepath.Separator)

	if filepath.IsAbs(p) || filepath.VolumeName(p) != "" || strings.HasPrefix(clean, sep) {
		return fmt.Errorf("%q: %w", p, ErrOutsideRoot)
	}
	if clean == ".." || strings.HasPrefix(clean, ".."+sep) {
		return fmt.Errorf("%q: %w", p, ErrOutsideRoot)
	}
	if clean == "." && !allowRoot {
		return fmt.Errorf("%q: %w", p, ErrRootTarget)
	}
	return nil
}
