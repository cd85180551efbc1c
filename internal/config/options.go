package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/modular-docs/moddoc/internal/branding"
)

// Verbosity selects how much diagnostic output a run emits.
type Verbosity int

const (
	// VerbosityDefault prints one informational line per file written.
	VerbosityDefault Verbosity = iota
	// VerbosityVerbose additionally prints debug-level diagnostics.
	VerbosityVerbose
	// VerbosityQuiet suppresses everything below error level.
	VerbosityQuiet
)

func (v Verbosity) String() string {
	switch v {
	case VerbosityVerbose:
		return "verbose"
	case VerbosityQuiet:
		return "quiet"
	default:
		return "default"
	}
}

// MarshalYAML renders the verbosity as its name in the options debug dump.
func (v Verbosity) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// Options is the process-wide configuration snapshot. It is built once from
// the parsed command invocation and never mutated afterwards.
type Options struct {
	// Comments enables the explanatory scaffolding comments in generated
	// files.
	Comments bool `yaml:"comments"`
	// Prefixes enables the module-type prefix on generated file names.
	Prefixes bool `yaml:"prefixes"`
	// Examples enables the trailing example block in generated files.
	Examples bool `yaml:"examples"`
	// TargetDir is the directory generated files are written into.
	TargetDir string `yaml:"target_dir"`
	// Verbosity gates the diagnostic output of the run.
	Verbosity Verbosity `yaml:"verbosity"`
}

// LoadEnv wires MODDOC_* environment variables into Viper so they can serve
// as defaults for flags that were not set explicitly.
func LoadEnv() {
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// DefaultTargetDir returns the target directory to use when --target-dir is
// absent: the MODDOC_TARGET_DIR environment variable if set, otherwise the
// current directory.
func DefaultTargetDir() string {
	if dir := viper.GetString("target-dir"); dir != "" {
		return dir
	}
	return "."
}
