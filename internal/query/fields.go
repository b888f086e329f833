// Package query interprets the textual filter and sort expressions accepted by
// list endpoints and renders them into parameterized SQL fragments.
//
// Which fields may be filtered or sorted is declared per entity in a Fields
// registry. Clauses that reference unknown or disallowed fields, use an
// operator the field kind does not support, or carry an unparsable value are
// dropped; the rest of the expression still applies.
package query

import "strings"

// Kind selects the comparison semantics for a field.
type Kind int

const (
	String Kind = iota
	Int
	Decimal
	Date
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Decimal:
		return "decimal"
	case Date:
		return "date"
	default:
		return "unknown"
	}
}

// Field is the filter/sort metadata for one property of an entity.
type Field struct {
	Name       string // name used in expressions, e.g. FirstName
	Column     string // qualified column expression, e.g. c.first_name
	Kind       Kind
	Filterable bool
	Sortable   bool
	Nullable   bool
}

// Fields is an entity's registry of addressable properties.
type Fields []Field

// Lookup finds a field by expression name, ignoring case.
func (fs Fields) Lookup(name string) (Field, bool) {
	name = strings.TrimSpace(name)
	for _, f := range fs {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Field{}, false
}

func (fs Fields) filterable(name string) (Field, bool) {
	f, ok := fs.Lookup(name)
	if !ok || !f.Filterable {
		return Field{}, false
	}
	return f, true
}

func (fs Fields) sortable(name string) (Field, bool) {
	f, ok := fs.Lookup(name)
	if !ok || !f.Sortable {
		return Field{}, false
	}
	return f, true
}
