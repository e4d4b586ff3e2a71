package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// InvalidTableError reports schema violations in a profile file.
type InvalidTableError struct {
	Source string
	Issues []ValidationIssue
}

func (e *InvalidTableError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Sprintf("invalid profile table %s: %s", e.Source, strings.Join(msgs, "; "))
}

// ParseTable validates and decodes a profile table. source labels the
// table in errors and in each Profile's Source field.
func ParseTable(data []byte, source string) (*Table, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating profile table %s: %w", source, err)
	}
	if !result.Valid {
		return nil, &InvalidTableError{Source: source, Issues: result.Issues}
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decoding profile table %s: %w", source, err)
	}

	for name, p := range table.Profiles {
		p.Name = name
		p.Source = source
	}
	return &table, nil
}

// ParseTableFile reads and parses the profile table at path.
func ParseTableFile(fs afero.Fs, path string) (*Table, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading profile table %s: %w", path, err)
	}
	return ParseTable(data, path)
}

// Names returns the profile names in the table, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.Profiles))
	for name := range t.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
