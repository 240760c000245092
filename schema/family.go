package schema

import (
	"sort"
	"strings"

	"github.com/teranos/astgen/errors"
)

// Family is a built tree family: a namespace, a shared root type, the
// external references the output needs, and a set of shapes unique by name.
// All accessors return copies; a Family never changes after Build.
type Family struct {
	namespace string
	root      string
	imports   []string
	shapes    []Shape // sorted by name
}

// Namespace returns the logical grouping label of the emitted declarations
func (f *Family) Namespace() string { return f.namespace }

// Root returns the name of the shared base type
func (f *Family) Root() string { return f.root }

// Imports returns the external references, sorted and deduplicated
func (f *Family) Imports() []string {
	out := make([]string, len(f.imports))
	copy(out, f.imports)
	return out
}

// Shapes returns every shape sorted by name
func (f *Family) Shapes() []Shape {
	out := make([]Shape, len(f.shapes))
	for i, s := range f.shapes {
		out[i] = s.clone()
	}
	return out
}

// Shape looks up a shape by name
func (f *Family) Shape(name string) (Shape, bool) {
	i := sort.Search(len(f.shapes), func(i int) bool { return f.shapes[i].Name >= name })
	if i < len(f.shapes) && f.shapes[i].Name == name {
		return f.shapes[i].clone(), true
	}
	return Shape{}, false
}

// Len returns the number of shapes
func (f *Family) Len() int { return len(f.shapes) }

// Builder assembles a Family. Registration order of shapes and imports does
// not affect the result.
//
//	b := schema.NewBuilder("parsing", "Expr")
//	b.Import("github.com/teranos/lox/lexing")
//	b.Node("Binary",
//	    schema.Required("Left", "Expr"),
//	    schema.Required("Operator", "lexing.Token"),
//	    schema.Required("Right", "Expr"),
//	)
//	family, err := b.Build()
type Builder struct {
	namespace string
	root      string
	imports   map[string]struct{}
	shapes    map[string]Shape
	dupShapes []string
	dupFields []string
}

// NewBuilder starts an empty family
func NewBuilder(namespace, root string) *Builder {
	return &Builder{
		namespace: namespace,
		root:      root,
		imports:   make(map[string]struct{}),
		shapes:    make(map[string]Shape),
	}
}

// Import records external references the emitted output depends on
func (b *Builder) Import(refs ...string) *Builder {
	for _, ref := range refs {
		b.imports[ref] = struct{}{}
	}
	return b
}

// Node registers a shape. A second shape with the same name is not
// overwritten: Build reports it.
func (b *Builder) Node(name string, fields ...Field) *Builder {
	if _, exists := b.shapes[name]; exists {
		b.dupShapes = append(b.dupShapes, name)
		return b
	}

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Name]; dup {
			b.dupFields = append(b.dupFields, name+"."+f.Name)
		}
		seen[f.Name] = struct{}{}
	}

	copied := make([]Field, len(fields))
	copy(copied, fields)
	b.shapes[name] = Shape{Name: name, Fields: copied}
	return b
}

// Build returns the finished family, or ErrDuplicateShape / ErrDuplicateField
// naming every collision.
func (b *Builder) Build() (*Family, error) {
	if len(b.dupShapes) > 0 {
		return nil, errors.Mark(
			errors.Newf("family %s declares shapes more than once: %s", b.root, strings.Join(b.dupShapes, ", ")),
			errors.ErrDuplicateShape,
		)
	}
	if len(b.dupFields) > 0 {
		return nil, errors.Mark(
			errors.Newf("family %s declares fields more than once: %s", b.root, strings.Join(b.dupFields, ", ")),
			errors.ErrDuplicateField,
		)
	}

	imports := make([]string, 0, len(b.imports))
	for ref := range b.imports {
		imports = append(imports, ref)
	}
	sort.Strings(imports)

	shapes := make([]Shape, 0, len(b.shapes))
	for _, s := range b.shapes {
		shapes = append(shapes, s.clone())
	}
	sort.Slice(shapes, func(i, j int) bool { return shapes[i].Name < shapes[j].Name })

	return &Family{
		namespace: b.namespace,
		root:      b.root,
		imports:   imports,
		shapes:    shapes,
	}, nil
}
