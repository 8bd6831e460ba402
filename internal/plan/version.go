package plan

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DevVersion is the version reported by builds without ldflags.
const DevVersion = "dev"

// CheckVersion returns an error when version does not satisfy constraint.
// An empty constraint or a dev build always passes.
func CheckVersion(constraint, version string) error {
	if constraint == "" || version == DevVersion {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing version constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing version %q: %w", version, err)
	}

	if ok, errs := c.Validate(v); !ok {
		reasons := make([]string, 0, len(errs))
		for _, e := range errs {
			reasons = append(reasons, e.Error())
		}
		return fmt.Errorf("plan requires %s: %s", constraint, strings.Join(reasons, ", "))
	}
	return nil
}
