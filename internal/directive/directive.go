package directive

import "fmt"

// Kind identifies what a directive asks the linker to do.
type Kind int

const (
	// KindComponent links a static library built earlier in the same build.
	KindComponent Kind = iota
	// KindDependency links an external or system library.
	KindDependency
	// KindRelSearchPath adds a search path under the build directory.
	KindRelSearchPath
	// KindSearchPath adds an absolute search path.
	KindSearchPath
)

var kindNames = map[Kind]string{
	KindComponent:     "component",
	KindDependency:    "dependency",
	KindRelSearchPath: "relpath",
	KindSearchPath:    "path",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Directive is a single linker instruction. For KindRelSearchPath, Value is
// the already-composed path (BUILDDIR + "/" + suffix).
type Directive struct {
	Kind   Kind
	Value  string
	Origin string // call or settings key that produced the directive
}

func (d Directive) String() string {
	return d.Kind.String() + " " + d.Value
}
