// Package schema is the in-memory model of a tree family: the node shapes of
// one AST and the typed fields of each shape.
//
// A family is produced by a Builder, is immutable once built, and is
// consumed by the renderer. Type references and default values are opaque
// strings; the model never interprets them.
package schema

import (
	"github.com/teranos/astgen/ident"
)

// Field describes one data member of a node shape.
type Field struct {
	// Name is PascalCase by convention and unique within its shape
	Name string

	// Type names the field's type in the target type system
	Type string

	// Default is the default-value expression, meaningful only when HasDefault is set
	Default string

	// HasDefault marks the field as defaulted; an empty Default is still a default
	HasDefault bool
}

// Required returns a field without a default
func Required(name, typeRef string) Field {
	return Field{Name: name, Type: typeRef}
}

// Defaulted returns a field whose constructor parameter defaults to def
func Defaulted(name, typeRef, def string) Field {
	return Field{Name: name, Type: typeRef, Default: def, HasDefault: true}
}

// Param returns the collision-safe parameter name of the field under rules.
// Any name is accepted; keeping names well formed is the builder's job.
func (f Field) Param(rules ident.Rules) string {
	return rules.Param(f.Name)
}

// Shape is one variant of a tree family. Two shapes are the same entity
// iff their names match.
type Shape struct {
	Name   string
	Fields []Field
}

// Required returns the fields without a default, in declared order
func (s Shape) Required() []Field {
	out := make([]Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		if !f.HasDefault {
			out = append(out, f)
		}
	}
	return out
}

// Defaulted returns the fields with a default, in declared order
func (s Shape) Defaulted() []Field {
	out := make([]Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.HasDefault {
			out = append(out, f)
		}
	}
	return out
}

// ConstructorOrder returns the constructor parameter order: required fields
// first, then defaulted fields, each group in declared order. A defaulted
// parameter never precedes a required one.
func (s Shape) ConstructorOrder() []Field {
	return append(s.Required(), s.Defaulted()...)
}

// Param returns the collision-safe parameter name for a value of this shape
// (the visitor argument: VisitBinary(binary)).
func (s Shape) Param(rules ident.Rules) string {
	return rules.Param(s.Name)
}

func (s Shape) clone() Shape {
	fields := make([]Field, len(s.Fields))
	copy(fields, s.Fields)
	return Shape{Name: s.Name, Fields: fields}
}
