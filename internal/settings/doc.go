// Package settings loads the config.rust file written by the configure step.
// The file is a flat list of KEY=VALUE lines; blank lines and lines starting
// with # are ignored. The loader searches upward from a start directory
// because configure places the file at the build root while cargo runs each
// build script several levels below it.
package settings
