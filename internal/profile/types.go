package profile

// Op names the emitter operation a step performs.
type Op string

const (
	OpFlags      Op = "flags"
	OpRelPath    Op = "relpath"
	OpPath       Op = "path"
	OpComponent  Op = "component"
	OpDependency Op = "dependency"
)

// Table is the decoded form of a profile file.
type Table struct {
	Version  int                 `yaml:"version"`
	Profiles map[string]*Profile `yaml:"profiles"`
}

// Profile is the link configuration for one package.
type Profile struct {
	Name        string `yaml:"-"`
	Description string `yaml:"description,omitempty"`
	// Requires is an optional semver constraint on the tool version.
	Requires string `yaml:"requires,omitempty"`
	Steps    []Step `yaml:"steps"`
	// Source is the file the profile came from, or "builtin".
	Source string `yaml:"-"`
}

// Step is a single operation applied to every one of its arguments in order.
// Exactly one field is set in a valid table.
type Step struct {
	Flags      []string `yaml:"flags,omitempty"`
	RelPath    []string `yaml:"relpath,omitempty"`
	Path       []string `yaml:"path,omitempty"`
	Component  []string `yaml:"component,omitempty"`
	Dependency []string `yaml:"dependency,omitempty"`
}

// Op returns the step's operation and its arguments. A zero Step yields "".
func (s Step) Op() (Op, []string) {
	switch {
	case len(s.Flags) > 0:
		return OpFlags, s.Flags
	case len(s.RelPath) > 0:
		return OpRelPath, s.RelPath
	case len(s.Path) > 0:
		return OpPath, s.Path
	case len(s.Component) > 0:
		return OpComponent, s.Component
	case len(s.Dependency) > 0:
		return OpDependency, s.Dependency
	default:
		return "", nil
	}
}

// Count returns the number of arguments per operation across all steps.
func (p *Profile) Count() map[Op]int {
	counts := make(map[Op]int)
	for _, s := range p.Steps {
		op, args := s.Op()
		counts[op] += len(args)
	}
	return counts
}
