package render

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/ident"
)

// Engine substitutes bindings into a template source. Implementations must be
// deterministic: identical inputs give byte-identical output.
type Engine interface {
	Execute(name, source string, bindings any) ([]byte, error)
}

// TextEngine is the text/template Engine. Missing map keys are errors and
// templates get the casing helpers snake, pascal and lower.
type TextEngine struct {
	funcs template.FuncMap
}

// NewTextEngine returns a TextEngine with the default helper functions
func NewTextEngine() *TextEngine {
	return &TextEngine{
		funcs: template.FuncMap{
			"snake":  ident.ToSnakeCase,
			"pascal": ident.ToPascalCase,
			"lower":  ident.LowerFirst,
		},
	}
}

// Execute parses source and executes it against bindings. Parse failures are
// ErrRender; references to bindings that do not exist are ErrTemplate.
func (e *TextEngine) Execute(name, source string, bindings any) ([]byte, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(e.funcs).
		Parse(source)
	if err != nil {
		return nil, errors.WrapRender(err, "failed to parse template "+name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, bindings); err != nil {
		if isMissingBinding(err) {
			return nil, errors.WrapTemplate(err, "template "+name+" references a missing binding")
		}
		return nil, errors.WrapRender(err, "failed to execute template "+name)
	}
	return buf.Bytes(), nil
}

// isMissingBinding recognises text/template's errors for unknown struct
// fields and absent map keys.
func isMissingBinding(err error) bool {
	var execErr template.ExecError
	if !errors.As(err, &execErr) {
		return false
	}
	msg := execErr.Error()
	return strings.Contains(msg, "can't evaluate field") ||
		strings.Contains(msg, "map has no entry for key")
}
