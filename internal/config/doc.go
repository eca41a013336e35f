// Package config loads roster's configuration.
//
// Settings come from three layers, later layers winning: built-in defaults,
// the TOML file at ~/.config/roster/config.toml, and ROSTER_* environment
// variables (a .env file in the working directory is honored). The api_base
// value must be a URL; everything else degrades to defaults when absent.
package config
