//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// buildTree is an on-disk imitation of a configured tor build directory.
type buildTree struct {
	BuildDir string // holds config.rust
	OutDir   string // cargo's per-crate OUT_DIR, several levels below
}

// setupBuildTree writes config.rust at the top of a temp tree and creates a
// nested cargo output directory. OUT_DIR and CARGO_PKG_NAME are set for the
// duration of the test.
func setupBuildTree(t *testing.T, pkg, config string) *buildTree {
	t.Helper()

	tree := &buildTree{BuildDir: t.TempDir()}
	tree.OutDir = filepath.Join(tree.BuildDir, "src", "rust", "target", "debug", "build", pkg+"-5f2c", "out")
	if err := os.MkdirAll(tree.OutDir, 0755); err != nil {
		t.Fatalf("creating out dir: %v", err)
	}

	config = strings.ReplaceAll(config, "@BUILDDIR@", tree.BuildDir)
	writeFile(t, filepath.Join(tree.BuildDir, "config.rust"), config)

	t.Setenv("OUT_DIR", tree.OutDir)
	t.Setenv("CARGO_PKG_NAME", pkg)
	return tree
}

// writeFile creates a file with the given content, creating parent dirs.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// cryptoConfig is a config.rust as configure writes it on a typical Linux host.
const cryptoConfig = `# Generated by configure
BUILDDIR=@BUILDDIR@
TOR_LDFLAGS_zlib=
TOR_LDFLAGS_openssl=-L/usr/local/opt/openssl/lib
TOR_LDFLAGS_libevent=
TOR_ZLIB_LIBS=-lz
TOR_LIB_MATH=-lm
TOR_OPENSSL_LIBS=-lssl -lcrypto
TOR_LIBEVENT_LIBS=-levent
TOR_LIB_WS32=
TOR_LIB_GDI=
TOR_LIB_USERENV=
CURVE25519_LIBS=
TOR_LZMA_LIBS=-llzma
TOR_ZSTD_LIBS=-lzstd
LIBS=-lpthread -ldl  -lseccomp -lcap
`
