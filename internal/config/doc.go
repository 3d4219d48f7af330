// Package config loads the grader configuration from an optional YAML file
// and environment variables.
package config
