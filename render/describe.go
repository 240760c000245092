package render

import (
	"bytes"
	"strings"

	json "github.com/goccy/go-json"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/schema"
	"github.com/teranos/astgen/target"
)

// Snapshot is a serialisable view of a family as one target sees it
type Snapshot struct {
	Target    string          `json:"target" yaml:"target" toml:"target"`
	Namespace string          `json:"namespace" yaml:"namespace" toml:"namespace"`
	Root      string          `json:"root" yaml:"root" toml:"root"`
	Imports   []string        `json:"imports" yaml:"imports" toml:"imports"`
	Shapes    []ShapeSnapshot `json:"shapes" yaml:"shapes" toml:"shapes"`
}

// ShapeSnapshot describes one shape
type ShapeSnapshot struct {
	Name        string          `json:"name" yaml:"name" toml:"name"`
	Param       string          `json:"param" yaml:"param" toml:"param"`
	Constructor []string        `json:"constructor" yaml:"constructor" toml:"constructor"`
	Fields      []FieldSnapshot `json:"fields" yaml:"fields" toml:"fields"`
}

// FieldSnapshot describes one field in declared order
type FieldSnapshot struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Param   string `json:"param" yaml:"param" toml:"param"`
	Type    string `json:"type" yaml:"type" toml:"type"`
	Default string `json:"default,omitempty" yaml:"default,omitempty" toml:"default,omitempty"`
}

// Supported Encode formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Formats lists the formats Encode accepts
var Formats = []string{FormatJSON, FormatTOML, FormatYAML}

// Describe builds a Snapshot of family using tgt's spelling of names and types
func Describe(family *schema.Family, tgt *target.Target) (*Snapshot, error) {
	b, err := Bind(family, tgt)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Target:    b.Target,
		Namespace: b.Namespace,
		Root:      b.Root,
		Imports:   make([]string, 0, len(b.Imports)),
		Shapes:    make([]ShapeSnapshot, 0, len(b.Nodes)),
	}
	for _, imp := range b.Imports {
		snap.Imports = append(snap.Imports, imp.Name)
	}
	for _, n := range b.Nodes {
		s := ShapeSnapshot{
			Name:        n.Name,
			Param:       n.Param,
			Constructor: make([]string, 0, len(n.Params)),
			Fields:      make([]FieldSnapshot, 0, len(n.Fields)),
		}
		for _, p := range n.Params {
			s.Constructor = append(s.Constructor, p.Param)
		}
		for _, f := range n.Fields {
			s.Fields = append(s.Fields, FieldSnapshot{
				Name:    f.Name,
				Param:   f.Param,
				Type:    f.Type,
				Default: f.Default,
			})
		}
		snap.Shapes = append(snap.Shapes, s)
	}
	return snap, nil
}

// Encode serialises a snapshot as yaml, json or toml
func Encode(snap *Snapshot, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return nil, errors.Wrap(err, "failed to encode yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "failed to encode yaml")
		}
		return buf.Bytes(), nil

	case FormatJSON:
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode json")
		}
		return append(data, '\n'), nil

	case FormatTOML:
		data, err := toml.Marshal(snap)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode toml")
		}
		return data, nil

	default:
		return nil, errors.WithHintf(
			errors.Newf("unknown format %q", format),
			"valid formats: %s", strings.Join(Formats, ", "),
		)
	}
}
