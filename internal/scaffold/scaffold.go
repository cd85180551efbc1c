package scaffold

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/modular-docs/moddoc/internal/config"
	"github.com/modular-docs/moddoc/internal/module"
	"github.com/modular-docs/moddoc/internal/validation"
)

// ErrValidationFailed marks a run in which at least one validated file name
// broke an error-severity naming rule. The whole batch is always reported
// before this is returned; warning-only reports do not fail the run.
var ErrValidationFailed = errors.New("file name validation failed")

// Request captures one parsed command invocation.
type Request struct {
	// Titles holds the requested titles per module type, each list in
	// command-line order.
	Titles map[module.Type][]string
	// IncludeIn, when non-empty, is the title of the populated assembly
	// that gathers every generated module. At most one per run.
	IncludeIn string
	// ValidateFiles lists file names to check against the naming rules.
	ValidateFiles []string
}

// Run executes a generation run. Generated modules land in
// opts.TargetDir/<id>.adoc; the populated assembly is built last so it can
// gather the include statements of everything generated before it.
func Run(opts *config.Options, req *Request) error {
	modules, err := collect(opts, req)
	if err != nil {
		return err
	}

	if len(modules) > 0 {
		if err := writeAll(opts, modules); err != nil {
			return err
		}
	}

	if req.IncludeIn != "" {
		if err := writePopulatedAssembly(opts, req.IncludeIn, modules); err != nil {
			return err
		}
	}

	return validateAll(req.ValidateFiles)
}

// collect builds every requested module, iterating the module types in their
// fixed order and the titles of each type in command-line order.
func collect(opts *config.Options, req *Request) ([]*module.Module, error) {
	var modules []*module.Module
	for _, t := range module.AllTypes() {
		for _, title := range req.Titles[t] {
			m, err := module.New(t, title, opts)
			if err != nil {
				return nil, err
			}
			log.Debug("collected module", "type", t.String(), "id", m.ID)
			modules = append(modules, m)
		}
	}
	return modules, nil
}

// writePopulatedAssembly gathers the include statements of every generated
// module and writes the single assembly that embeds them.
func writePopulatedAssembly(opts *config.Options, title string, generated []*module.Module) error {
	statements := make([]string, 0, len(generated))
	for _, m := range generated {
		statements = append(statements, m.IncludeStatement)
	}
	// The command-line layer requires at least one module flag alongside
	// --include-in, so an empty list is a programming error.
	if len(statements) == 0 {
		return fmt.Errorf("populated assembly %q has no modules to include", title)
	}

	asm, err := module.NewInput(module.TypeAssembly, title, opts).Include(statements).Build()
	if err != nil {
		return err
	}
	return writeModule(opts, asm)
}

// validateAll checks every requested file name and prints a per-file report.
// The batch never aborts early; the error only signals the final exit status.
func validateAll(files []string) error {
	failed := false
	for _, f := range files {
		report := validation.Check(f)
		printReport(report)
		if !report.Valid() {
			failed = true
		}
	}
	if failed {
		return ErrValidationFailed
	}
	return nil
}

func printReport(r *validation.Report) {
	if len(r.Issues) == 0 {
		fmt.Printf("%s: ok\n", r.FileName)
		return
	}
	fmt.Printf("%s:\n", r.FileName)
	for _, issue := range r.Issues {
		fmt.Printf("  %s: %s\n", issue.Severity, issue.Message)
	}
}
