package module

import (
	"errors"
	"strings"
	"testing"

	"github.com/modular-docs/moddoc/internal/config"
)

func testOptions() *config.Options {
	return &config.Options{
		Comments:  true,
		Prefixes:  true,
		Examples:  true,
		TargetDir: ".",
	}
}

func TestNewDerivesPrefixedID(t *testing.T) {
	for _, typ := range AllTypes() {
		m, err := New(typ, "My First Module", testOptions())
		if err != nil {
			t.Fatalf("New(%v) error: %v", typ, err)
		}
		want := typ.Prefix() + "my-first-module"
		if m.ID != want {
			t.Errorf("%v ID = %q, want %q", typ, m.ID, want)
		}
		if m.FileName() != want+Extension {
			t.Errorf("%v FileName() = %q, want %q", typ, m.FileName(), want+Extension)
		}
	}
}

func TestNewWithoutPrefixes(t *testing.T) {
	opts := testOptions()
	opts.Prefixes = false

	for _, typ := range AllTypes() {
		m, err := New(typ, "My First Module", opts)
		if err != nil {
			t.Fatalf("New(%v) error: %v", typ, err)
		}
		if m.ID != "my-first-module" {
			t.Errorf("%v ID = %q, want %q", typ, m.ID, "my-first-module")
		}
	}
}

func TestNewEmptyTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "!!!"} {
		_, err := New(TypeConcept, title, testOptions())
		if !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("New with title %q: error = %v, want ErrEmptyTitle", title, err)
		}
	}
}

func TestIncludeStatement(t *testing.T) {
	m, err := New(TypeConcept, "Alpha", testOptions())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	want := "include::con_alpha.adoc[leveloffset=+1]"
	if m.IncludeStatement != want {
		t.Errorf("IncludeStatement = %q, want %q", m.IncludeStatement, want)
	}
}

func TestContentSkeleton(t *testing.T) {
	markers := map[Type]string{
		TypeAssembly:  ":_mod-docs-content-type: ASSEMBLY",
		TypeConcept:   ":_mod-docs-content-type: CONCEPT",
		TypeProcedure: ":_mod-docs-content-type: PROCEDURE",
		TypeReference: ":_mod-docs-content-type: REFERENCE",
		TypeSnippet:   ":_mod-docs-content-type: SNIPPET",
	}

	for typ, marker := range markers {
		m, err := New(typ, "My First Module", testOptions())
		if err != nil {
			t.Fatalf("New(%v) error: %v", typ, err)
		}
		assertContains(t, m.Content, marker)
		assertContains(t, m.Content, "My First Module")
	}

	t.Run("anchor and title heading", func(t *testing.T) {
		m, err := New(TypeConcept, "My First Concept", testOptions())
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		assertContains(t, m.Content, `[id="con_my-first-concept"]`)
		assertContains(t, m.Content, "= My First Concept")
	})

	t.Run("no template syntax leaks", func(t *testing.T) {
		for _, typ := range AllTypes() {
			m, err := New(typ, "Leak Check", testOptions())
			if err != nil {
				t.Fatalf("New(%v) error: %v", typ, err)
			}
			if strings.Contains(m.Content, "{{") || strings.Contains(m.Content, "}}") {
				t.Errorf("%v content leaks template syntax:\n%s", typ, m.Content)
			}
		}
	})
}

func TestCommentsToggle(t *testing.T) {
	withOpts := testOptions()
	withoutOpts := testOptions()
	withoutOpts.Comments = false

	for _, typ := range AllTypes() {
		with, err := New(typ, "Toggle Check", withOpts)
		if err != nil {
			t.Fatalf("New(%v) error: %v", typ, err)
		}
		without, err := New(typ, "Toggle Check", withoutOpts)
		if err != nil {
			t.Fatalf("New(%v) error: %v", typ, err)
		}

		if !hasCommentLine(with.Content) {
			t.Errorf("%v content with comments has no comment lines", typ)
		}
		if hasCommentLine(without.Content) {
			t.Errorf("%v content without comments still has comment lines:\n%s", typ, without.Content)
		}
	}
}

func TestExamplesToggle(t *testing.T) {
	withOpts := testOptions()
	withoutOpts := testOptions()
	withoutOpts.Examples = false

	// For non-assembly types the example block is strictly trailing: the
	// content without it is a prefix of the content with it, and the
	// appended part starts with the example marker.
	for _, typ := range []Type{TypeConcept, TypeProcedure, TypeReference, TypeSnippet} {
		with, err := New(typ, "Toggle Check", withOpts)
		if err != nil {
			t.Fatalf("New(%v) error: %v", typ, err)
		}
		without, err := New(typ, "Toggle Check", withoutOpts)
		if err != nil {
			t.Fatalf("New(%v) error: %v", typ, err)
		}

		if strings.Contains(without.Content, ExampleMarker) {
			t.Errorf("%v content without examples still has the example block", typ)
		}
		if !strings.HasPrefix(with.Content, without.Content) {
			t.Errorf("%v content without examples is not a prefix of the content with them", typ)
			continue
		}
		appended := strings.TrimPrefix(with.Content, without.Content)
		firstLine := strings.SplitN(strings.TrimPrefix(appended, "\n"), "\n", 2)[0]
		if firstLine != ExampleMarker {
			t.Errorf("%v appended block starts with %q, want %q", typ, firstLine, ExampleMarker)
		}
	}

	t.Run("assembly", func(t *testing.T) {
		with, err := New(TypeAssembly, "Toggle Check", withOpts)
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		without, err := New(TypeAssembly, "Toggle Check", withoutOpts)
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		assertContains(t, with.Content, ExampleMarker)
		if strings.Contains(without.Content, ExampleMarker) {
			t.Error("assembly content without examples still has the example block")
		}
	})
}

func TestPopulatedAssembly(t *testing.T) {
	opts := testOptions()

	alpha, err := New(TypeConcept, "Alpha", opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	beta, err := New(TypeProcedure, "Beta", opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	asm, err := NewInput(TypeAssembly, "My Assembly", opts).
		Include([]string{alpha.IncludeStatement, beta.IncludeStatement}).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	// Round-trip: include statements appear verbatim and in order.
	assertContains(t, asm.Content, alpha.IncludeStatement)
	assertContains(t, asm.Content, beta.IncludeStatement)
	if strings.Index(asm.Content, alpha.IncludeStatement) > strings.Index(asm.Content, beta.IncludeStatement) {
		t.Error("include statements are out of order in the assembly content")
	}

	// A populated assembly has no authoring hint where the includes went.
	if strings.Contains(asm.Content, "// Add the modules") {
		t.Error("populated assembly still carries the empty-assembly hint comment")
	}
}

func TestEmptyAssemblyHint(t *testing.T) {
	asm, err := New(TypeAssembly, "My Assembly", testOptions())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	assertContains(t, asm.Content, "// Add the modules")
}

// ─── Test Helpers ──────────────────────────────────────────────────

func hasCommentLine(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "//") {
			return true
		}
	}
	return false
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}
