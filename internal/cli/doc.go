// Package cli defines the Cobra command tree for the torlink CLI. Run with no
// subcommand, torlink behaves as a cargo build script: it reads OUT_DIR and
// CARGO_PKG_NAME from the environment and prints link directives. Command
// implementations delegate to internal packages and only handle flags and
// output.
package cli
