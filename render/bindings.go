package render

import (
	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/ident"
	"github.com/teranos/astgen/schema"
	"github.com/teranos/astgen/target"
)

// Header is the first comment line of every generated file
const Header = "Code generated by astgen; DO NOT EDIT."

// Bindings is the data a target template renders: one family, already
// sorted and translated into the target's spelling.
type Bindings struct {
	Header    string
	Target    string
	Namespace string
	Root      string
	RootParam string
	Imports   []Import
	Nodes     []Node
}

// Import is one external reference
type Import struct {
	// Path is the reference as declared by the family
	Path string
	// Name is the target spelling
	Name string
}

// Node is one shape with its fields in both orders
type Node struct {
	Name string
	// Param is the escaped parameter name for a value of this node
	Param string
	// Snake is the escaped snake_case spelling
	Snake string

	// Fields in declared order
	Fields []Field
	// Params in constructor order
	Params    []Field
	Required  []Field
	Defaulted []Field
}

// Field is one field with its type and default in target syntax
type Field struct {
	Name       string
	Param      string
	Snake      string
	Type       string
	Default    string
	HasDefault bool
	Nullable   bool
}

// Bind translates family into template bindings for tgt. Shapes come out
// sorted by name and imports sorted, so the result does not depend on the
// order the builder registered them.
func Bind(family *schema.Family, tgt *target.Target) (*Bindings, error) {
	if family == nil {
		return nil, errors.Mark(errors.New("no family to bind"), errors.ErrRender)
	}
	if tgt == nil {
		return nil, errors.Mark(errors.New("no target to bind"), errors.ErrRender)
	}

	rules := tgt.Idents
	b := &Bindings{
		Header:    Header,
		Target:    tgt.Name,
		Namespace: family.Namespace(),
		Root:      family.Root(),
		RootParam: rules.Param(family.Root()),
	}
	if tgt.Namespace != nil {
		b.Namespace = tgt.Namespace(family.Namespace())
	}

	for _, ref := range family.Imports() {
		name := ref
		if tgt.ImportName != nil {
			name = tgt.ImportName(ref)
		}
		b.Imports = append(b.Imports, Import{Path: ref, Name: name})
	}

	for _, shape := range family.Shapes() {
		node, err := bindNode(shape, tgt)
		if err != nil {
			return nil, errors.Wrapf(err, "shape %s", shape.Name)
		}
		b.Nodes = append(b.Nodes, node)
	}
	return b, nil
}

func bindNode(shape schema.Shape, tgt *target.Target) (Node, error) {
	rules := tgt.Idents
	node := Node{
		Name:  shape.Name,
		Param: shape.Param(rules),
		Snake: rules.Safe(ident.ToSnakeCase(shape.Name)),
	}

	var err error
	if node.Fields, err = bindFields(shape.Fields, tgt); err != nil {
		return Node{}, err
	}
	if node.Params, err = bindFields(shape.ConstructorOrder(), tgt); err != nil {
		return Node{}, err
	}
	if node.Required, err = bindFields(shape.Required(), tgt); err != nil {
		return Node{}, err
	}
	if node.Defaulted, err = bindFields(shape.Defaulted(), tgt); err != nil {
		return Node{}, err
	}
	return node, nil
}

func bindFields(fields []schema.Field, tgt *target.Target) ([]Field, error) {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		nullable := f.HasDefault && f.Default == "nil"
		typ, err := tgt.TypeOf(f.Type, nullable)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", f.Name)
		}
		bf := Field{
			Name:       f.Name,
			Param:      f.Param(tgt.Idents),
			Snake:      tgt.Idents.Safe(ident.ToSnakeCase(f.Name)),
			Type:       typ,
			HasDefault: f.HasDefault,
			Nullable:   nullable,
		}
		if f.HasDefault {
			bf.Default = tgt.Literal(f.Default)
		}
		out = append(out, bf)
	}
	return out, nil
}
