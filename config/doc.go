// Package config loads and validates the engine's tunable settings from
// defaults, an optional config file and MNEMO_-prefixed environment
// variables.
package config
