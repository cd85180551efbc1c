// Package validation checks existing file names against the modular-docs
// naming convention. Every applicable violation for a name is surfaced, not
// just the first; violations carry a severity so that advisory findings (a
// missing module-type prefix) can be told apart from hard rule breaks.
package validation
