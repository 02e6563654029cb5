// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file, overridden by DNT_ prefixed environment
// variables and validated before use. Each settings section validates itself so
// that commands needing only a part of the configuration can check just that part.
package config
