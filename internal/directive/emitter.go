package directive

import "fmt"

// BuildDirKey is the settings key holding the build root used by LinkRelPath.
const BuildDirKey = "BUILDDIR"

// Lookup is the read side of the settings an Emitter draws values from.
type Lookup interface {
	Get(key string) (string, error)
}

// Emitter records directives in call order.
type Emitter struct {
	lookup     Lookup
	directives []Directive
}

// NewEmitter returns an Emitter that resolves settings keys through lookup.
func NewEmitter(lookup Lookup) *Emitter {
	return &Emitter{lookup: lookup}
}

// Component records a static library that is part of the same build.
func (e *Emitter) Component(name string) {
	e.add(Directive{Kind: KindComponent, Value: name, Origin: "component"})
}

// Dependency records an external library.
func (e *Emitter) Dependency(name string) {
	e.add(Directive{Kind: KindDependency, Value: name, Origin: "dependency"})
}

// LinkRelPath records BUILDDIR + "/" + rel as a search path. The path is
// joined with a single separator and not otherwise normalized.
func (e *Emitter) LinkRelPath(rel string) error {
	builddir, err := e.lookup.Get(BuildDirKey)
	if err != nil {
		return fmt.Errorf("resolving relative link path %q: %w", rel, err)
	}
	e.add(Directive{Kind: KindRelSearchPath, Value: builddir + "/" + rel, Origin: "relpath"})
	return nil
}

// LinkPath records an absolute search path verbatim.
func (e *Emitter) LinkPath(path string) {
	e.add(Directive{Kind: KindSearchPath, Value: path, Origin: "path"})
}

// FromFlags expands the flag string stored under key; see ExpandFlags.
func (e *Emitter) FromFlags(key string) error {
	value, err := e.lookup.Get(key)
	if err != nil {
		return fmt.Errorf("expanding flags: %w", err)
	}
	for _, d := range ExpandFlags(value, key) {
		e.add(d)
	}
	return nil
}

// Directives returns a copy of everything recorded so far.
func (e *Emitter) Directives() []Directive {
	out := make([]Directive, len(e.directives))
	copy(out, e.directives)
	return out
}

// Len returns the number of recorded directives.
func (e *Emitter) Len() int { return len(e.directives) }

func (e *Emitter) add(d Directive) {
	e.directives = append(e.directives, d)
}
