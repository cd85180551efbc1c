package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/modular-docs/moddoc/internal/config"
	"github.com/modular-docs/moddoc/internal/module"
)

// writeAll ensures the target directory exists and writes every module to
// it. The first write failure aborts; files written before it stay on disk.
func writeAll(opts *config.Options, modules []*module.Module) error {
	if err := os.MkdirAll(opts.TargetDir, 0755); err != nil {
		return fmt.Errorf("creating target directory %s: %w", opts.TargetDir, err)
	}
	for _, m := range modules {
		if err := writeModule(opts, m); err != nil {
			return err
		}
	}
	return nil
}

// writeModule writes one rendered module to <target_dir>/<id>.adoc.
func writeModule(opts *config.Options, m *module.Module) error {
	path := filepath.Join(opts.TargetDir, m.FileName())
	if err := os.WriteFile(path, []byte(m.Content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.Info("wrote " + path)
	return nil
}
