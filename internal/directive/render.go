package directive

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format selects how Render serializes directives.
type Format string

const (
	// FormatCargo writes one cargo build-script instruction per line.
	FormatCargo Format = "cargo"
	// FormatLDFlags writes a single line of linker flags, suitable for
	// cgo LDFLAGS or a Makefile.
	FormatLDFlags Format = "ldflags"
	// FormatJSON writes a JSON array of directive objects.
	FormatJSON Format = "json"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatCargo, FormatLDFlags, FormatJSON}

// ParseFormat validates a format name. The empty string selects FormatCargo.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatCargo, nil
	}
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of %s)", s, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Cargo returns the cargo instruction for d.
func Cargo(d Directive) string {
	switch d.Kind {
	case KindComponent:
		return "cargo:rustc-link-lib=static=" + d.Value
	case KindDependency:
		return "cargo:rustc-link-lib=" + d.Value
	default:
		return "cargo:rustc-link-search=native=" + d.Value
	}
}

// LDFlag returns the linker flag for d.
func LDFlag(d Directive) string {
	switch d.Kind {
	case KindComponent:
		return "-l:lib" + d.Value + ".a"
	case KindDependency:
		return "-l" + d.Value
	default:
		return "-L" + d.Value
	}
}

type jsonDirective struct {
	Kind   string `json:"kind"`
	Value  string `json:"value"`
	Origin string `json:"origin,omitempty"`
}

// Render writes directives to w in the given format.
func Render(w io.Writer, directives []Directive, format Format) error {
	switch format {
	case FormatCargo, "":
		for _, d := range directives {
			if _, err := fmt.Fprintln(w, Cargo(d)); err != nil {
				return fmt.Errorf("writing directive: %w", err)
			}
		}
		return nil

	case FormatLDFlags:
		if len(directives) == 0 {
			return nil
		}
		flags := make([]string, len(directives))
		for i, d := range directives {
			flags[i] = LDFlag(d)
		}
		if _, err := fmt.Fprintln(w, strings.Join(flags, " ")); err != nil {
			return fmt.Errorf("writing flags: %w", err)
		}
		return nil

	case FormatJSON:
		out := make([]jsonDirective, len(directives))
		for i, d := range directives {
			out[i] = jsonDirective{Kind: d.Kind.String(), Value: d.Value, Origin: d.Origin}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding directives: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
