package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/modular-docs/moddoc/internal/module"
)

// Severity ranks a naming issue.
type Severity int

const (
	// SeverityWarning flags an advisory finding that does not fail the name.
	SeverityWarning Severity = iota
	// SeverityError flags a broken naming rule.
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Issue is a single violated naming rule.
type Issue struct {
	Severity Severity
	Message  string
}

// Report collects every issue found for one file name.
type Report struct {
	FileName string
	Issues   []Issue
}

// Valid reports whether the name passed without any error-severity issue.
// Warnings alone do not fail a report.
func (r *Report) Valid() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return false
		}
	}
	return true
}

func (r *Report) add(s Severity, message string) {
	r.Issues = append(r.Issues, Issue{Severity: s, Message: message})
}

// Check applies every naming rule to a file name and returns all violations.
// Only the base name is examined; leading directories are ignored.
func Check(fileName string) *Report {
	r := &Report{FileName: fileName}
	base := filepath.Base(fileName)

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext != module.Extension {
		r.add(SeverityError, fmt.Sprintf("extension must be %q, found %q", module.Extension, ext))
	}

	// Strip at most one recognized module-type prefix; the underscore in
	// the prefix is the only place an underscore may appear.
	rest := stem
	prefixed := false
	for _, t := range module.AllTypes() {
		if strings.HasPrefix(stem, t.Prefix()) {
			rest = strings.TrimPrefix(stem, t.Prefix())
			prefixed = true
			break
		}
	}
	if !prefixed {
		r.add(SeverityWarning,
			"name carries no module-type prefix (assembly_, con_, proc_, ref_, snip_)")
	}

	seen := make(map[rune]bool)
	for _, c := range rest {
		if seen[c] {
			continue
		}
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-':
			// allowed
		case c >= 'A' && c <= 'Z':
			seen[c] = true
			r.add(SeverityError, fmt.Sprintf("uppercase letter %q: names are lowercase only", c))
		default:
			seen[c] = true
			r.add(SeverityError, fmt.Sprintf("character %q is outside the allowed set [a-z0-9-]", c))
		}
	}

	if strings.Contains(rest, "--") {
		r.add(SeverityError, "consecutive separators (--) are not allowed")
	}
	if strings.HasPrefix(rest, "-") || strings.HasSuffix(rest, "-") {
		r.add(SeverityError, "leading or trailing separator is not allowed")
	}

	return r
}
