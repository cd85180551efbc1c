// Package module models one generated documentation source file: the closed
// set of module types, the title-to-id conversion, and the Input/Module
// entities that render the embedded AsciiDoc templates into file content.
// Everything in this package is pure computation; writing to disk belongs to
// the scaffold package.
package module
