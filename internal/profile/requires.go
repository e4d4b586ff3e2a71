package profile

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DevVersion is the version string of an unreleased build. Profiles'
// Requires constraints are not enforced against it.
const DevVersion = "dev"

// CheckRequires reports an error when version does not satisfy the profile's
// Requires constraint.
func (p *Profile) CheckRequires(version string) error {
	if p.Requires == "" || version == DevVersion || version == "" {
		return nil
	}

	c, err := semver.NewConstraint(p.Requires)
	if err != nil {
		return fmt.Errorf("profile %s: parsing requires %q: %w", p.Name, p.Requires, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing tool version %q: %w", version, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("profile %s requires version %s, running %s", p.Name, p.Requires, version)
	}
	return nil
}
