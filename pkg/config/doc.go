// Package config handles configuration management for vardump.
// It layers the embedded defaults, the user and project TOML files, an
// explicit file and VARDUMP_ environment variables, in that order.
package config
