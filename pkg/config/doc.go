// Package config loads the execution report settings from an optional YAML
// file, a .env file and SES_* environment variables.
package config
