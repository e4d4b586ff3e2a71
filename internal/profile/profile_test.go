package profile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/neelchauhan/torlink/internal/directive"
	"github.com/neelchauhan/torlink/internal/settings"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func loadTestSettings(t *testing.T) *settings.Settings {
	t.Helper()
	s, err := settings.LoadFile(afero.NewOsFs(), testPath("config.rust"))
	require.NoError(t, err)
	return s
}

func TestBuiltin_Crypto(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	assert.Equal(t, []string{"crypto"}, r.Names())

	p, err := r.Lookup("crypto")
	require.NoError(t, err)
	assert.Equal(t, BuiltinSource, p.Source)

	counts := p.Count()
	assert.Equal(t, 14, counts[OpFlags])
	assert.Equal(t, 6, counts[OpRelPath])
	assert.Equal(t, 19, counts[OpComponent])
	assert.Zero(t, counts[OpPath])
	assert.Zero(t, counts[OpDependency])
}

func TestApply_CryptoGolden(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	p, err := r.Lookup("crypto")
	require.NoError(t, err)

	em := directive.NewEmitter(loadTestSettings(t))
	require.NoError(t, p.Apply(em))

	var buf bytes.Buffer
	require.NoError(t, directive.Render(&buf, em.Directives(), directive.FormatCargo))

	golden, err := os.ReadFile(testPath("crypto.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(golden), buf.String())
}

func TestApply_StopsAtMissingKey(t *testing.T) {
	p := &Profile{
		Name: "partial",
		Steps: []Step{
			{Component: []string{"a"}},
			{Flags: []string{"ABSENT"}},
			{Component: []string{"never"}},
		},
	}

	em := directive.NewEmitter(settings.New(nil))
	err := p.Apply(em)
	require.Error(t, err)
	assert.True(t, errors.Is(err, settings.ErrMissingKey))
	assert.Contains(t, err.Error(), "ABSENT")
	assert.Equal(t, 1, em.Len())
}

func TestApply_MissingBuildDir(t *testing.T) {
	p := &Profile{Name: "rel", Steps: []Step{{RelPath: []string{"src/lib"}}}}
	err := p.Apply(directive.NewEmitter(settings.New(nil)))
	var mk *settings.MissingKeyError
	require.ErrorAs(t, err, &mk)
	assert.Equal(t, directive.BuildDirKey, mk.Key)
}

func TestApply_AllOps(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	require.NoError(t, r.MergeFile(afero.NewOsFs(), testPath("extra.yaml")))

	p, err := r.Lookup("smartlist")
	require.NoError(t, err)

	em := directive.NewEmitter(settings.New(map[string]string{
		"BUILDDIR": "/b",
		"LIBS":     "-ldl",
	}))
	require.NoError(t, p.Apply(em))

	var kinds []directive.Kind
	var values []string
	for _, d := range em.Directives() {
		kinds = append(kinds, d.Kind)
		values = append(values, d.Value)
	}
	assert.Equal(t, []directive.Kind{
		directive.KindRelSearchPath,
		directive.KindComponent,
		directive.KindDependency,
		directive.KindSearchPath,
		directive.KindDependency,
	}, kinds)
	assert.Equal(t, []string{"/b/src/lib", "tor-smartlist-core", "m", "/usr/local/lib", "dl"}, values)
}

func TestRegistry_UnknownPackage(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	_, err = r.Lookup("relay")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPackage))

	var up *UnknownPackageError
	require.ErrorAs(t, err, &up)
	assert.Equal(t, "relay", up.Name)
	assert.Equal(t, []string{"crypto"}, up.Known)
	assert.Contains(t, err.Error(), `no link configuration for package "relay"`)
}

func TestRegistry_MergeOverrides(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	require.NoError(t, r.MergeFile(afero.NewOsFs(), testPath("extra.yaml")))

	assert.Equal(t, []string{"crypto", "smartlist"}, r.Names())
	p, err := r.Lookup("crypto")
	require.NoError(t, err)
	assert.Equal(t, testPath("extra.yaml"), p.Source)
	assert.Equal(t, []Step{{Component: []string{"tor-crypt-ops"}}}, p.Steps)
}

func TestRegistry_ProfilesSorted(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	require.NoError(t, r.MergeFile(afero.NewOsFs(), testPath("extra.yaml")))

	var names []string
	for _, p := range r.Profiles() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"crypto", "smartlist"}, names)
}

func TestRegistry_MergeFileMissing(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	assert.Error(t, r.MergeFile(afero.NewMemMapFs(), "/nope.yaml"))
}

func TestRegistry_MergeFileInvalid(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	err = r.MergeFile(afero.NewOsFs(), testPath("invalid-two-ops.yaml"))
	var inv *InvalidTableError
	require.ErrorAs(t, err, &inv)
	assert.NotEmpty(t, inv.Issues)
	assert.Equal(t, []string{"crypto"}, r.Names())
}

func TestResolve_Requires(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	require.NoError(t, r.MergeFile(afero.NewOsFs(), testPath("extra.yaml")))

	tests := []struct {
		version string
		wantErr bool
	}{
		{"dev", false},
		{"", false},
		{"0.4.0", false},
		{"v1.2.3", false},
		{"0.3.9", true},
		{"not-a-version", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			_, err := r.Resolve("smartlist", tt.version)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckRequires_BadConstraint(t *testing.T) {
	p := &Profile{Name: "x", Requires: ">>> nonsense"}
	assert.Error(t, p.CheckRequires("1.0.0"))
}

func TestStep_Op(t *testing.T) {
	op, args := Step{Path: []string{"/p"}}.Op()
	assert.Equal(t, OpPath, op)
	assert.Equal(t, []string{"/p"}, args)

	op, args = Step{}.Op()
	assert.Equal(t, Op(""), op)
	assert.Nil(t, args)
}
