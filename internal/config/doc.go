// Package config loads the camera-settings tool configuration.
//
// Configuration is TOML, read from ~/.config/camera-settings/config.toml and
// then ./camera-settings.toml, with later files overriding earlier ones. A
// path given on the command line is applied last. It controls which settings
// file is validated and how the report looks; it never changes how mappings
// are parsed.
package config
