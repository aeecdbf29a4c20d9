package manifest

import (
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/wippyai/marshalgen/errors"
	"github.com/wippyai/marshalgen/shape"
	"github.com/wippyai/marshalgen/strategy"
	"github.com/wippyai/marshalgen/syntax"
	"github.com/wippyai/marshalgen/witshape"
)

// Manifest is a set of boundary-crossing function signatures.
type Manifest struct {
	Functions []Function `toml:"function"`
}

// Function is one declared call boundary.
type Function struct {
	Name   string  `toml:"name"`
	Params []Param `toml:"param"`
}

// Param is one declared value position.
type Param struct {
	Name      string `toml:"name"`
	Type      string `toml:"type"`
	ByRef     string `toml:"byref"`
	Intent    string `toml:"intent"`
	CountFrom string `toml:"count-from"`
}

// Value is a resolved parameter: its classified layout and position.
type Value struct {
	Name     string
	Layout   witshape.Layout
	Position *strategy.ValuePosition
	Count    syntax.Expr
}

// Decode reads a manifest from r and validates its declarations.
func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(errors.PhaseManifest, errors.KindInvalidData, err, "decode manifest")
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile reads a manifest from path.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseManifest, errors.KindNotFound, err, "open manifest")
	}
	defer f.Close()
	return Decode(f)
}

// Function returns the declared function with the given name.
func (m *Manifest) Function(name string) (*Function, error) {
	for i := range m.Functions {
		if m.Functions[i].Name == name {
			return &m.Functions[i], nil
		}
	}
	return nil, errors.NotFound(errors.PhaseManifest, "function", name)
}

func (m *Manifest) validate() error {
	if len(m.Functions) == 0 {
		return errors.InvalidData(errors.PhaseManifest, nil, "manifest declares no functions")
	}
	for _, fn := range m.Functions {
		if fn.Name == "" {
			return errors.FieldMissing(errors.PhaseManifest, []string{"function"}, "name")
		}
		for _, p := range fn.Params {
			path := []string{fn.Name, p.Name}
			if p.Name == "" {
				return errors.FieldMissing(errors.PhaseManifest, []string{fn.Name}, "name")
			}
			if p.Type == "" {
				return errors.FieldMissing(errors.PhaseManifest, path, "type")
			}
			if _, err := parseByRef(p.ByRef); err != nil {
				return err
			}
			if _, err := parseIntent(p.Intent); err != nil {
				return err
			}
		}
	}
	return nil
}

// Values resolves the function's parameters into classified positions.
func (f *Function) Values() ([]Value, error) {
	out := make([]Value, 0, len(f.Params))
	for i, p := range f.Params {
		path := []string{f.Name, p.Name}

		typ, err := witshape.Parse(p.Type)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseManifest, errors.KindInvalidData, err, p.Type)
		}
		layout, err := witshape.Classify(typ)
		if err != nil {
			return nil, err
		}
		byRef, err := parseByRef(p.ByRef)
		if err != nil {
			return nil, err
		}
		intent, err := parseIntent(p.Intent)
		if err != nil {
			return nil, err
		}

		var count syntax.Expr
		if p.CountFrom != "" {
			count = syntax.Raw(p.CountFrom)
		}
		if layout.Collection && count == nil && layout.Native.Shape.Has(shape.ToManaged) {
			return nil, errors.New(errors.PhaseManifest, errors.KindFieldMissing).
				Path(path...).
				Detail("collection parameter requires count-from").
				Build()
		}

		out = append(out, Value{
			Name:   p.Name,
			Layout: layout,
			Position: &strategy.ValuePosition{
				Index:  i,
				ByRef:  byRef,
				Intent: intent,
				Native: layout.Native,
			},
			Count: count,
		})
	}
	return out, nil
}

func parseByRef(s string) (shape.ByRefKind, error) {
	switch s {
	case "", "none":
		return shape.ByRefNone, nil
	case "in":
		return shape.ByRefIn, nil
	case "out":
		return shape.ByRefOut, nil
	case "inout":
		return shape.ByRefInOut, nil
	default:
		return 0, errors.InvalidInput(errors.PhaseManifest,
			"byref must be one of none|in|out|inout, got "+s)
	}
}

func parseIntent(s string) (shape.ByValueIntent, error) {
	switch s {
	case "", "in":
		return shape.IntentIn, nil
	case "out":
		return shape.IntentOut, nil
	case "inout":
		return shape.IntentInOut, nil
	default:
		return 0, errors.InvalidInput(errors.PhaseManifest,
			"intent must be one of in|out|inout, got "+s)
	}
}
