package profile

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/spf13/afero"
)

//go:embed profiles.yaml
var builtinTable []byte

// BuiltinSource is the Source of profiles from the embedded table.
const BuiltinSource = "builtin"

// Registry maps package names to profiles.
type Registry struct {
	profiles map[string]*Profile
}

// NewRegistry returns a registry holding the built-in profiles.
func NewRegistry() (*Registry, error) {
	table, err := ParseTable(builtinTable, BuiltinSource)
	if err != nil {
		return nil, err
	}
	r := &Registry{profiles: make(map[string]*Profile)}
	r.Merge(table)
	return r, nil
}

// Merge adds the table's profiles, replacing any with the same name.
func (r *Registry) Merge(t *Table) {
	for name, p := range t.Profiles {
		r.profiles[name] = p
	}
}

// MergeFile parses the table at path and merges it.
func (r *Registry) MergeFile(fs afero.Fs, path string) error {
	table, err := ParseTableFile(fs, path)
	if err != nil {
		return err
	}
	r.Merge(table)
	return nil
}

// Lookup returns the profile for name or an *UnknownPackageError.
func (r *Registry) Lookup(name string) (*Profile, error) {
	p, ok := r.profiles[name]
	if !ok {
		return nil, &UnknownPackageError{Name: name, Known: r.Names()}
	}
	return p, nil
}

// Resolve looks up name and checks its version constraint.
func (r *Registry) Resolve(name, version string) (*Profile, error) {
	p, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	if err := p.CheckRequires(version); err != nil {
		return nil, fmt.Errorf("resolving package %s: %w", name, err)
	}
	return p, nil
}

// Names returns all profile names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profiles returns all profiles sorted by name.
func (r *Registry) Profiles() []*Profile {
	out := make([]*Profile, 0, len(r.profiles))
	for _, name := range r.Names() {
		out = append(out, r.profiles[name])
	}
	return out
}
