package settings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// maxLineSize bounds a single settings line. LIBS-style values produced by
// configure can be long, well past bufio's 64KiB default.
const maxLineSize = 1 << 20

// Settings is an immutable key/value mapping read from a settings file.
type Settings struct {
	path   string
	values map[string]string
}

// New returns Settings backed by a copy of values. It is mainly useful for
// callers that build settings in memory rather than from a file.
func New(values map[string]string) *Settings {
	m := make(map[string]string, len(values))
	for k, v := range values {
		m[k] = v
	}
	return &Settings{values: m}
}

// Load finds the settings file at or above start and parses it.
func Load(fs afero.Fs, start string) (*Settings, error) {
	path, err := Find(fs, start)
	if err != nil {
		return nil, err
	}
	return LoadFile(fs, path)
}

// LoadFile parses the settings file at path.
func LoadFile(fs afero.Fs, path string) (*Settings, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening settings file %s: %w", path, err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		var le *LineError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}
	s.path = path
	return s, nil
}

// Parse reads KEY=VALUE lines from r. The key is everything before the first
// '=' and the value everything after it, both verbatim. A line that is empty
// after trimming, or whose trimmed form starts with '#', is skipped. When a
// key repeats, the last occurrence wins.
func Parse(r io.Reader) (*Settings, error) {
	values := make(map[string]string)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, &LineError{Line: lineNo, Text: line}
		}
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Settings{values: values}, nil
}

// Path returns the file the settings were loaded from, or "" for settings
// built in memory.
func (s *Settings) Path() string { return s.path }

// Len returns the number of keys.
func (s *Settings) Len() int { return len(s.values) }

// Get returns the value for key, or a *MissingKeyError.
func (s *Settings) Get(key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", &MissingKeyError{Key: key, Path: s.path}
	}
	return v, nil
}

// MustGet is like Get but panics when key is absent.
func (s *Settings) MustGet(key string) string {
	v, err := s.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Keys returns all keys in sorted order.
func (s *Settings) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether s and other hold the same keys and values.
func (s *Settings) Equal(other *Settings) bool {
	if other == nil || len(s.values) != len(other.values) {
		return false
	}
	for k, v := range s.values {
		if ov, ok := other.values[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
