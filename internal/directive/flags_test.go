package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func dep(v string) Directive  { return Directive{Kind: KindDependency, Value: v, Origin: "K"} }
func path(v string) Directive { return Directive{Kind: KindSearchPath, Value: v, Origin: "K"} }

func TestExpandFlags(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []Directive
	}{
		{
			name:  "mixed forms",
			value: "-lfoo -L/usr/lib -lbar baz -L /opt/lib",
			want:  []Directive{dep("foo"), path("/usr/lib"), dep("bar"), path("/opt/lib")},
		},
		{
			name:  "trailing -L",
			value: "-lfoo -L",
			want:  []Directive{dep("foo")},
		},
		{
			name:  "trailing -l",
			value: "-L/a -l",
			want:  []Directive{path("/a")},
		},
		{
			name:  "standalone -l then path-looking token",
			value: "-l -L/x",
			want:  []Directive{dep("-L/x")},
		},
		{
			name:  "whitespace runs",
			value: "  -lm\t\t-lz \n -L\t/p  ",
			want:  []Directive{dep("m"), dep("z"), path("/p")},
		},
		{
			name:  "ignored tokens",
			value: "-pthread -Wl,--as-needed -DFOO -I/usr/include",
			want:  nil,
		},
		{
			name:  "empty",
			value: "",
			want:  nil,
		},
		{
			name:  "only whitespace",
			value: " \t ",
			want:  nil,
		},
		{
			name:  "long prefixes",
			value: "-linkme -Lib",
			want:  []Directive{dep("inkme"), path("ib")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandFlags(tt.value, "K"))
		})
	}
}
