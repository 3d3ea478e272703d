// Package settings loads a settings file into an ordered, loosely typed Tree.
//
// The loader is the only place that can fail fatally: an unreadable file, an
// empty file, invalid syntax or a root that is not an object all return an
// error and no tree. Everything inside a successfully loaded tree is left for
// the mapping package to validate and report on.
//
// Supported formats:
//
//	settings.json   JSON, with // and /* */ comments and trailing commas
//	settings.yaml   YAML (also .yml)
package settings
