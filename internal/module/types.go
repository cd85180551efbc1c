package module

import (
	"errors"
	"fmt"
)

// Extension is the file extension of every documentation module source.
const Extension = ".adoc"

// Type identifies one of the five modular-docs module types.
type Type int

const (
	TypeAssembly Type = iota
	TypeConcept
	TypeProcedure
	TypeReference
	TypeSnippet
)

// AllTypes returns the module types in their fixed processing order:
// assembly, concept, procedure, reference, snippet.
func AllTypes() []Type {
	return []Type{TypeAssembly, TypeConcept, TypeProcedure, TypeReference, TypeSnippet}
}

// ErrUnknownType reports a module-type token the program does not recognize.
// It indicates a defect in the command-line layer, not bad user input.
var ErrUnknownType = errors.New("unknown module type")

// ParseType maps a command-line token to its module type.
func ParseType(token string) (Type, error) {
	switch token {
	case "assembly", "include-in":
		return TypeAssembly, nil
	case "concept":
		return TypeConcept, nil
	case "procedure":
		return TypeProcedure, nil
	case "reference":
		return TypeReference, nil
	case "snippet":
		return TypeSnippet, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, token)
}

func (t Type) String() string {
	switch t {
	case TypeAssembly:
		return "assembly"
	case TypeConcept:
		return "concept"
	case TypeProcedure:
		return "procedure"
	case TypeReference:
		return "reference"
	case TypeSnippet:
		return "snippet"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Prefix returns the file-name prefix the naming convention assigns to t.
func (t Type) Prefix() string {
	switch t {
	case TypeAssembly:
		return "assembly_"
	case TypeConcept:
		return "con_"
	case TypeProcedure:
		return "proc_"
	case TypeReference:
		return "ref_"
	case TypeSnippet:
		return "snip_"
	}
	return ""
}
