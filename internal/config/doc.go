// Package config loads, normalizes, and validates salmon's TOML
// configuration.
//
// Configuration lives at ~/.config/salmon/config.toml by default; every key
// has a usable default so a missing file is not an error. Path fields are
// expanded (~ resolution, absolute) during Load so downstream code never
// deals with relative or tilde paths.
package config
