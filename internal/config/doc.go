// Package config loads, normalizes, and validates folderize configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), and
// reads an optional TOML file. A missing file is not an error: every knob has
// a default, so the tool runs unconfigured. Command-line flags layer on top
// of the loaded values in the cmd package.
package config
