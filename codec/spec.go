package codec

import (
	"encoding/xml"

	"github.com/pkg/errors"
)

// Unbounded marks a repeated field with no cardinality limit.
const Unbounded = -1

// Field declares one child element position within a Spec: its
// qualified name, how many occurrences the schema allows, and an
// optional nested Spec ordering its own children.
//
// The zero Max means exactly one occurrence is the ceiling. Min 0
// declares the field optional.
type Field struct {
	Name xml.Name
	Min  int
	Max  int
	Spec *Spec
}

// Required declares a mandatory single-occurrence field.
func Required(name xml.Name) Field { return Field{Name: name, Min: 1, Max: 1} }

// Optional declares an optional single-occurrence field.
func Optional(name xml.Name) Field { return Field{Name: name, Min: 0, Max: 1} }

// Repeated declares a field occurring between min and max times; pass
// Unbounded for no upper limit.
func Repeated(name xml.Name, min, max int) Field { return Field{Name: name, Min: min, Max: max} }

// Nested returns a copy of the field whose children are ordered by the
// given Spec.
func (f Field) Nested(s *Spec) Field {
	f.Spec = s
	return f
}

// Spec is the ordered child-element declaration of one element, the
// XSD sequence the encoder must reproduce. Child elements are emitted
// in declaration order regardless of the order the command assembled
// them.
type Spec struct {
	Name   xml.Name
	Fields []Field
}

// NewSpec returns a Spec for the named element.
func NewSpec(name xml.Name, fields ...Field) *Spec {
	return &Spec{Name: name, Fields: fields}
}

// Apply orders children per the declaration and checks cardinality.
// Too many occurrences of a bounded field, a missing required field,
// or a child the declaration does not know are all encoding errors on
// the caller's side; nothing is silently truncated or dropped.
func (s *Spec) Apply(children []Node) ([]Node, error) {
	matched := make([]bool, len(children))
	out := make([]Node, 0, len(children))

	for _, f := range s.Fields {
		count := 0
		for i, c := range children {
			if matched[i] || c.Name != f.Name {
				continue
			}
			matched[i] = true
			count++
			if f.Spec != nil {
				ordered, err := f.Spec.Apply(c.Children)
				if err != nil {
					return nil, err
				}
				c.Children = ordered
			}
			out = append(out, c)
		}
		max := f.Max
		if max == 0 {
			max = 1
		}
		if count < f.Min {
			return nil, errors.Errorf("encode <%s>: missing required element <%s>", s.Name.Local, f.Name.Local)
		}
		if max != Unbounded && count > max {
			return nil, errors.Errorf("encode <%s>: element <%s> occurs %d times, schema allows %d",
				s.Name.Local, f.Name.Local, count, max)
		}
	}

	for i, c := range children {
		if !matched[i] {
			return nil, errors.Errorf("encode <%s>: element <%s> not declared in schema sequence",
				s.Name.Local, c.Name.Local)
		}
	}
	return out, nil
}
