package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no settings file exists at or above the
	// start directory.
	ErrNotFound = errors.New("settings file not found")

	// ErrInvalidData is returned for a non-blank, non-comment line with no '='.
	ErrInvalidData = errors.New("invalid settings data")

	// ErrMissingKey is returned when a required key is absent.
	ErrMissingKey = errors.New("missing settings key")
)

// LineError describes a malformed settings line.
type LineError struct {
	Path string
	Line int
	Text string
}

func (e *LineError) Error() string {
	where := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		where = e.Path + ":" + fmt.Sprint(e.Line)
	}
	return fmt.Sprintf("%s: missing '=' in %q", where, e.Text)
}

// Is reports whether target is ErrInvalidData.
func (e *LineError) Is(target error) bool { return target == ErrInvalidData }

// MissingKeyError names the key that a caller required but the settings lack.
type MissingKeyError struct {
	Key  string
	Path string
}

func (e *MissingKeyError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("missing settings key %q", e.Key)
	}
	return fmt.Sprintf("missing settings key %q in %s", e.Key, e.Path)
}

// Is reports whether target is ErrMissingKey.
func (e *MissingKeyError) Is(target error) bool { return target == ErrMissingKey }
