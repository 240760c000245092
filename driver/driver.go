// Package driver runs generation: resolve a family in the registry, build it,
// render it for the target its destination names, and write it atomically.
package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/logger"
	"github.com/teranos/astgen/registry"
	"github.com/teranos/astgen/render"
	"github.com/teranos/astgen/target"
)

// Driver generates the families of one registry
type Driver struct {
	registry  *registry.Registry
	renderer  *render.Renderer
	root      string
	log       *zap.SugaredLogger
	verbosity int
}

// Option configures a Driver
type Option func(*Driver)

// WithRoot sets the directory registry destinations are relative to
func WithRoot(root string) Option {
	return func(d *Driver) { d.root = root }
}

// WithRenderer replaces the default text/template renderer
func WithRenderer(r *render.Renderer) Option {
	return func(d *Driver) { d.renderer = r }
}

// WithLogger sets the logger; the default discards everything
func WithLogger(l *zap.SugaredLogger) Option {
	return func(d *Driver) { d.log = l }
}

// WithVerbosity sets the -v count that gates family, step and shape logging
func WithVerbosity(verbosity int) Option {
	return func(d *Driver) { d.verbosity = verbosity }
}

// New returns a driver over reg
func New(reg *registry.Registry, opts ...Option) *Driver {
	d := &Driver{
		registry: reg,
		renderer: render.NewRenderer(nil),
		root:     ".",
		log:      zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Registry returns the registry the driver resolves families in
func (d *Driver) Registry() *registry.Registry { return d.registry }

// Output is one rendered family that has not been written
type Output struct {
	ID      string
	Path    string
	Target  string
	Shapes  int
	Content []byte
}

// Result reports one generated family
type Result struct {
	ID     string
	Path   string
	Target string
	Shapes int
	Bytes  int

	// Unchanged is set when the destination already held identical content
	Unchanged bool
}

// Path returns the resolved destination of a registered family
func (d *Driver) Path(id string) (string, error) {
	entry, err := d.registry.Lookup(id)
	if err != nil {
		return "", err
	}
	return d.resolve(entry.Destination), nil
}

func (d *Driver) resolve(dest string) string {
	if filepath.IsAbs(dest) {
		return filepath.Clean(dest)
	}
	return filepath.Join(d.root, filepath.FromSlash(dest))
}

// Render builds and renders the family id for its registered destination
func (d *Driver) Render(id string) (*Output, error) {
	return d.RenderTo(id, "")
}

// RenderTo renders the family id for dest, whose extension picks the target.
// An empty dest means the registered destination. Nothing touches the disk.
func (d *Driver) RenderTo(id, dest string) (*Output, error) {
	entry, err := d.registry.Lookup(id)
	if err != nil {
		return nil, err
	}

	path := d.resolve(entry.Destination)
	if dest != "" {
		path = filepath.Clean(dest)
	}

	tgt, err := target.ForPath(path)
	if err != nil {
		return nil, errors.Wrapf(err, "family %s", id)
	}

	family, err := entry.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build family %s", id)
	}
	if logger.ShouldOutput(d.verbosity, logger.OutputSteps) {
		d.log.Debugw("Built family",
			logger.FieldFamily, id,
			logger.FieldNamespace, family.Namespace(),
			logger.FieldRoot, family.Root(),
			logger.FieldShapes, family.Len(),
		)
	}
	if logger.ShouldOutput(d.verbosity, logger.OutputShapes) {
		for _, shape := range family.Shapes() {
			params := make([]string, 0, len(shape.Fields))
			for _, f := range shape.ConstructorOrder() {
				params = append(params, f.Param(tgt.Idents))
			}
			d.log.Debugw("Shape",
				logger.FieldShape, shape.Name,
				logger.FieldParams, strings.Join(params, ", "),
			)
		}
	}

	content, err := d.renderer.Render(family, tgt)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render family %s", id)
	}
	if logger.ShouldOutput(d.verbosity, logger.OutputSteps) {
		d.log.Debugw("Rendered family",
			logger.FieldFamily, id,
			logger.FieldTarget, tgt.Name,
			logger.FieldBytes, len(content),
		)
	}

	return &Output{
		ID:      id,
		Path:    path,
		Target:  tgt.Name,
		Shapes:  family.Len(),
		Content: content,
	}, nil
}

// Generate renders the family id and writes it to its registered destination
func (d *Driver) Generate(id string) (*Result, error) {
	return d.GenerateTo(id, "")
}

// GenerateTo renders the family id and writes it to dest (empty: the
// registered destination). A destination that already holds the rendered
// content is left untouched.
func (d *Driver) GenerateTo(id, dest string) (*Result, error) {
	out, err := d.RenderTo(id, dest)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ID:     out.ID,
		Path:   out.Path,
		Target: out.Target,
		Shapes: out.Shapes,
		Bytes:  len(out.Content),
	}

	if existing, err := os.ReadFile(out.Path); err == nil && bytes.Equal(existing, out.Content) {
		result.Unchanged = true
		if logger.ShouldOutput(d.verbosity, logger.OutputFamilies) {
			d.log.Infow("Family up to date",
				logger.FieldFamily, id,
				logger.FieldPath, out.Path,
				logger.FieldStatus, "unchanged",
			)
		}
		return result, nil
	}

	if err := WriteFile(out.Path, out.Content); err != nil {
		return nil, errors.Wrapf(err, "failed to generate family %s", id)
	}
	if logger.ShouldOutput(d.verbosity, logger.OutputFamilies) {
		d.log.Infow("Generated family",
			logger.FieldFamily, id,
			logger.FieldPath, out.Path,
			logger.FieldTarget, out.Target,
			logger.FieldShapes, out.Shapes,
		)
	}
	return result, nil
}

// GenerateAll generates every registered family in id order and stops at the
// first failure.
func (d *Driver) GenerateAll() ([]*Result, error) {
	var results []*Result
	for _, id := range d.registry.IDs() {
		result, err := d.Generate(id)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}
