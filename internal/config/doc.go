// Package config resolves CLI settings from flags, environment variables and
// an optional ~/.torlink/config.yaml. The cargo-provided OUT_DIR and
// CARGO_PKG_NAME variables feed the out_dir and package keys, so the binary
// works unmodified as a build script.
package config
