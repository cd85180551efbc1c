package module

import (
	"errors"
	"fmt"

	"github.com/modular-docs/moddoc/internal/config"
)

// ErrEmptyTitle reports a title that normalized to an empty id. The
// command-line layer guarantees non-empty titles, so hitting this is a
// caller contract violation.
var ErrEmptyTitle = errors.New("title normalizes to an empty id")

// Module is one generated documentation source file, fully rendered and
// ready to be written to disk. Modules are immutable after construction.
type Module struct {
	Type  Type
	Title string
	// ID is the normalized, filesystem-safe file-name stem, carrying the
	// module-type prefix when the prefixes option is on.
	ID string
	// Content is the complete rendered file body.
	Content string
	// IncludeStatement is the literal directive another module uses to
	// embed this one.
	IncludeStatement string
}

// FileName returns the base name of the file this module is written to.
func (m *Module) FileName() string {
	return m.ID + Extension
}

// Input carries everything needed to build a Module. The include list is
// only meaningful for assemblies and stays empty everywhere else.
type Input struct {
	moduleType Type
	title      string
	opts       *config.Options
	includes   []string
}

// NewInput starts building a module of the given type and title.
func NewInput(t Type, title string, opts *config.Options) *Input {
	return &Input{moduleType: t, title: title, opts: opts}
}

// Include attaches the include statements a populated assembly embeds, in
// the order they should appear.
func (in *Input) Include(statements []string) *Input {
	in.includes = statements
	return in
}

// Build derives the id, renders the content, and computes the include
// statement. It fails only when the title normalizes to an empty id or the
// module type is outside the known set.
func (in *Input) Build() (*Module, error) {
	id := NormalizeTitle(in.title)
	if id == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptyTitle, in.title)
	}
	if in.opts.Prefixes {
		id = in.moduleType.Prefix() + id
	}
	fileName := id + Extension

	content, err := render(in.moduleType, templateData{
		ID:       id,
		Title:    in.title,
		FileName: fileName,
		Comments: in.opts.Comments,
		Examples: in.opts.Examples,
		Includes: in.includes,
	})
	if err != nil {
		return nil, err
	}

	return &Module{
		Type:             in.moduleType,
		Title:            in.title,
		ID:               id,
		Content:          content,
		IncludeStatement: IncludeStatementFor(fileName),
	}, nil
}

// New builds a module without include statements.
func New(t Type, title string, opts *config.Options) (*Module, error) {
	return NewInput(t, title, opts).Build()
}

// IncludeStatementFor returns the literal include directive that embeds the
// named file.
func IncludeStatementFor(fileName string) string {
	return fmt.Sprintf("include::%s[leveloffset=+1]", fileName)
}
