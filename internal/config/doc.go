// Package config assembles server configuration from environment variables,
// command-line flags and an optional JSON file, in that order of precedence.
// Later sources never overwrite values already set by earlier ones.
package config
