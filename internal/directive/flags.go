package directive

import "strings"

type flagState int

const (
	stateIdle flagState = iota
	stateExpectLib
	stateExpectPath
)

// ExpandFlags scans a linker flag string for -l and -L entries. The value is
// split on runs of whitespace. "-lfoo" and "-l foo" both yield dependency
// foo; "-L/p" and "-L /p" both yield search path /p. Other tokens are
// ignored, and a trailing bare "-l" or "-L" yields nothing.
func ExpandFlags(value, origin string) []Directive {
	var out []Directive
	state := stateIdle
	for _, tok := range strings.Fields(value) {
		switch state {
		case stateExpectLib:
			out = append(out, Directive{Kind: KindDependency, Value: tok, Origin: origin})
			state = stateIdle
			continue
		case stateExpectPath:
			out = append(out, Directive{Kind: KindSearchPath, Value: tok, Origin: origin})
			state = stateIdle
			continue
		}

		switch {
		case tok == "-l":
			state = stateExpectLib
		case tok == "-L":
			state = stateExpectPath
		case strings.HasPrefix(tok, "-L"):
			out = append(out, Directive{Kind: KindSearchPath, Value: tok[2:], Origin: origin})
		case strings.HasPrefix(tok, "-l"):
			out = append(out, Directive{Kind: KindDependency, Value: tok[2:], Origin: origin})
		}
	}
	return out
}
