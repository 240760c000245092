// Package render turns a built tree family into source text.
//
// Rendering is pure: Bind translates the family into target-spelled
// bindings, an Engine executes the target's template, and the target's
// formatter (if any) normalises the result. Nothing is written to disk here.
package render

import (
	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/schema"
	"github.com/teranos/astgen/target"
)

// Renderer renders families through an Engine
type Renderer struct {
	engine Engine
}

// NewRenderer returns a Renderer using engine, or the text/template engine when nil
func NewRenderer(engine Engine) *Renderer {
	if engine == nil {
		engine = NewTextEngine()
	}
	return &Renderer{engine: engine}
}

// Render returns the complete source text for family in tgt's language.
// On failure no output is returned; errors match ErrTemplate or ErrRender.
func (r *Renderer) Render(family *schema.Family, tgt *target.Target) ([]byte, error) {
	bindings, err := Bind(family, tgt)
	if err != nil {
		return nil, err
	}

	name := tgt.Name + ".tmpl"
	out, err := r.engine.Execute(name, tgt.Template, bindings)
	if err != nil {
		return nil, err
	}

	if tgt.Format != nil {
		formatted, err := tgt.Format(bindings.Namespace+tgt.Ext, out)
		if err != nil {
			return nil, errors.WrapRender(err, "failed to format "+tgt.Name+" output")
		}
		out = formatted
	}
	return out, nil
}
