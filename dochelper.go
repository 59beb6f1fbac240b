// Package dochelper keeps the documentation of recurring variables in one
// place and reassembles it into docstrings wherever those variables appear.
//
// Entries live in a Registry; templates reference them with << and >>
// placeholders:
//
//	docs := dochelper.MustNewRegistryWith([]dochelper.Doc{
//	    dochelper.Describe("arg1", "Docstring for arg1"),
//	    dochelper.Typed("arg3", "type for arg3", "Docstring for arg3"),
//	})
//
//	docs.Get([]string{"arg1", "arg3"})
//	// arg1: Docstring for arg1
//	//     arg3 (type for arg3): Docstring for arg3
//
// # Template Syntax
//
// A placeholder lists names separated by whitespace, commas, semicolons or pipes:
//
//	<<arg1, arg2; arg3>>
//
// An integer token sets the indentation width for rendering from that point
// on (use WithScopedIndent to limit it to its own placeholder):
//
//	<<arg2, arg3, 8>>
//
// An empty placeholder stands for the parameters of the function the
// composition is applied to:
//
//	Args:
//	    << >>
//
// Names that were never registered render as "name: " rather than failing,
// and an open marker without a close marker is kept as plain text.
//
// # Attaching Documentation
//
// Go keeps no parameter names at runtime. Describe the target with NewFunc
// or NewMethod, or read it from source with SignatureFromSource, then apply
// the composition:
//
//	add := docs.Compose(`Adds two numbers.
//	    Args:
//	        << >>
//	`).Apply(dochelper.MustFunc("Add", Add, "a", "b"))
//	fmt.Println(add.Doc)
//
// AnnotateSource does the same for every function of a Go file whose doc
// comment carries placeholders.
//
// # Registry Files
//
// LoadFile reads entries from YAML or HCL:
//
//	arg1: Docstring for arg1
//	arg3: [type for arg3, Docstring for arg3]
//
//	variable "arg3" {
//	  type        = string
//	  description = "Docstring for arg3"
//	}
package dochelper

import (
	"github.com/itsatony/go-dochelper/internal"
)

// Segment is a literal span or a parsed placeholder of a template.
type Segment = internal.Segment

// SegmentKind identifies what a Segment holds.
type SegmentKind = internal.SegmentKind

// Segment kinds
const (
	SegmentLiteral     = internal.SegmentLiteral
	SegmentPlaceholder = internal.SegmentPlaceholder
)

// SplitString scans template with the default markers into literal and
// placeholder segments. Concatenating the Raw field of every segment gives
// back the template.
func SplitString(template string) []Segment {
	return internal.NewScanner(nil).Scan(template)
}

// SplitString scans template with the registry's markers.
func (r *Registry) SplitString(template string) []Segment {
	return r.scanner.Scan(template)
}
