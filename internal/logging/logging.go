// Package logging configures the process-wide leveled logger. The core
// packages only emit log calls; verbosity is decided once here, from the
// resolved options.
package logging

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/modular-docs/moddoc/internal/config"
)

// Init applies the requested verbosity to the default logger. Verbose shows
// debug-level diagnostics, quiet keeps errors only.
func Init(v config.Verbosity) {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)

	switch v {
	case config.VerbosityVerbose:
		log.SetLevel(log.DebugLevel)
	case config.VerbosityQuiet:
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}
