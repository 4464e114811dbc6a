// Package config loads, normalizes, and validates forestsim configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// FORESTSIM_DATA_DIR. The Config type centralizes where forests are read from
// and saved to, how logs are emitted, and the ranges used when the simulator
// plants random trees.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
