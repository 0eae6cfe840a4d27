// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Endpoint paths for the demo API server live in a yaml table as well, so
// deployments can remap the REST surface without code changes; paths not
// overridden fall back to the built-in defaults. A .env file, when present,
// supplies environment overrides for the port and data directory.
package config
