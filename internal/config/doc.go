// Package config holds the process-wide option snapshot built from the
// command invocation. Options are constructed once in the cli layer and
// passed read-only into every module-building and rendering call. The
// package also wires MODDOC_* environment variables into Viper as defaults
// for flags the user did not set; no configuration file is ever read.
package config
