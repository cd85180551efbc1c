// Package cli defines the Cobra command tree for the moddoc CLI. The root
// command carries the generation and validation flags and delegates the work
// to the scaffold package; this package only handles flag parsing, option
// resolution, and logger setup.
package cli
