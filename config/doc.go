// Package config loads the client configuration file: registry
// address, TLS credentials, timeouts, and the namespace set selection.
// Both TOML and YAML are accepted, chosen by file extension.
package config
