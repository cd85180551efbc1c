package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/modular-docs/moddoc/internal/branding"
	"github.com/modular-docs/moddoc/internal/config"
	"github.com/modular-docs/moddoc/internal/logging"
	"github.com/modular-docs/moddoc/internal/module"
	"github.com/modular-docs/moddoc/internal/scaffold"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Flag destinations for the root command.
var (
	assemblyTitles  []string
	conceptTitles   []string
	procedureTitles []string
	referenceTitles []string
	snippetTitles   []string
	includeIn       string
	validateFiles   []string
	noComments      bool
	noPrefixes      bool
	noExamples      bool
	verbose         bool
	quiet           bool
	targetDir       string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates templated modular-documentation source files
(assemblies, concepts, procedures, references, snippets), optionally wires
the generated modules into an assembly, and validates file names against the
naming convention.`,
	Example: `  moddoc --concept "My First Concept"
  moddoc --concept "Alpha" --procedure "Beta" --include-in "My Assembly"
  moddoc --validate modules/con_existing-module.adoc`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	f := rootCmd.Flags()
	f.StringArrayVarP(&assemblyTitles, "assembly", "a", nil, "Create an assembly with this title (repeatable)")
	f.StringArrayVarP(&conceptTitles, "concept", "c", nil, "Create a concept module with this title (repeatable)")
	f.StringArrayVarP(&procedureTitles, "procedure", "p", nil, "Create a procedure module with this title (repeatable)")
	f.StringArrayVarP(&referenceTitles, "reference", "r", nil, "Create a reference module with this title (repeatable)")
	f.StringArrayVarP(&snippetTitles, "snippet", "s", nil, "Create a snippet with this title (repeatable)")
	f.StringVarP(&includeIn, "include-in", "i", "", "Create an assembly with this title that includes every generated module")
	f.StringArrayVar(&validateFiles, "validate", nil, "Validate this file name against the naming convention (repeatable)")
	f.BoolVar(&noComments, "no-comments", false, "Generate files without explanatory comments")
	f.BoolVar(&noPrefixes, "no-prefixes", false, "Generate file names without the module-type prefix")
	f.BoolVar(&noExamples, "no-examples", false, "Generate files without the trailing example block")
	f.BoolVarP(&verbose, "verbose", "v", false, "Print debug-level messages")
	f.BoolVarP(&quiet, "quiet", "q", false, "Print error-level messages only")
	f.StringVarP(&targetDir, "target-dir", "T", "",
		"Write generated files into this directory (default: current directory, env: "+branding.EnvVar("TARGET_DIR")+")")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

func runRoot(cmd *cobra.Command, args []string) error {
	titlesByFlag := map[string][]string{
		"assembly":  assemblyTitles,
		"concept":   conceptTitles,
		"procedure": procedureTitles,
		"reference": referenceTitles,
		"snippet":   snippetTitles,
	}

	// Map each module flag to its type; an unknown token here is a
	// programming error in this layer, not bad user input.
	titles := make(map[module.Type][]string)
	moduleCount := 0
	for _, token := range []string{"assembly", "concept", "procedure", "reference", "snippet"} {
		flagTitles := titlesByFlag[token]
		if len(flagTitles) == 0 {
			continue
		}
		t, err := module.ParseType(token)
		if err != nil {
			return err
		}
		titles[t] = append(titles[t], flagTitles...)
		moduleCount += len(flagTitles)
	}

	if moduleCount == 0 && includeIn == "" && len(validateFiles) == 0 {
		return cmd.Help()
	}
	if includeIn != "" && moduleCount == 0 {
		return fmt.Errorf("--include-in requires at least one of --assembly, --concept, --procedure, --reference, or --snippet")
	}

	opts := resolveOptions(cmd)
	logging.Init(opts.Verbosity)
	if dump, err := yaml.Marshal(opts); err == nil {
		log.Debug("active options:\n" + string(dump))
	}

	return scaffold.Run(opts, &scaffold.Request{
		Titles:        titles,
		IncludeIn:     includeIn,
		ValidateFiles: validateFiles,
	})
}

// resolveOptions builds the read-only option snapshot from the parsed flags,
// falling back to environment defaults for flags the user did not set.
func resolveOptions(cmd *cobra.Command) *config.Options {
	// Cobra guarantees verbose and quiet are mutually exclusive.
	verbosity := config.VerbosityDefault
	switch {
	case verbose:
		verbosity = config.VerbosityVerbose
	case quiet:
		verbosity = config.VerbosityQuiet
	}

	dir := targetDir
	if !cmd.Flags().Changed("target-dir") {
		dir = config.DefaultTargetDir()
	}

	return &config.Options{
		Comments:  !noComments,
		Prefixes:  !noPrefixes,
		Examples:  !noExamples,
		TargetDir: dir,
		Verbosity: verbosity,
	}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	config.LoadEnv()
	return rootCmd.Execute()
}
