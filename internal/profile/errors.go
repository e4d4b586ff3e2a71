package profile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPackage is returned when no profile matches a package name.
var ErrUnknownPackage = errors.New("unknown package")

// UnknownPackageError names the package that has no profile.
type UnknownPackageError struct {
	Name  string
	Known []string
}

func (e *UnknownPackageError) Error() string {
	msg := fmt.Sprintf("no link configuration for package %q", e.Name)
	if len(e.Known) > 0 {
		msg += " (known: " + strings.Join(e.Known, ", ") + ")"
	}
	return msg
}

// Is reports whether target is ErrUnknownPackage.
func (e *UnknownPackageError) Is(target error) bool { return target == ErrUnknownPackage }
