// Package profile holds the per-package link configuration table. Each
// profile is an ordered list of steps (flag keys to expand, relative and
// absolute search paths, components, dependencies) applied to a
// directive.Emitter. The built-in table is embedded from profiles.yaml;
// further tables can be merged from YAML files and are validated against
// an embedded JSON schema before use.
package profile
