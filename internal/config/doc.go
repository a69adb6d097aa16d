// Package config loads, normalizes, and validates relink configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: log destination and format, scan thresholds, the episode
// exception patterns for the filename heuristics, and the hash escalation
// mode. Obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
