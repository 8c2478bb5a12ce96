// Package config loads, normalizes, and validates asreval configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Configuration covers default evaluation
// options, output preferences, the run-history store, and logging. CLI flags
// override anything loaded here.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical option values, and clear validation errors.
package config
