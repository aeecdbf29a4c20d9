package witshape

import (
	"strings"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/marshalgen/errors"
)

// Parse turns a WIT-ish type string into a wit.Type. Supported forms:
// the primitive names, "string", "list<T>" with arbitrary nesting, and
// "own<name>" / "borrow<name>" resource handles.
func Parse(s string) (wit.Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.InvalidInput(errors.PhaseParse, "empty type string")
	}

	switch s {
	case "bool":
		return wit.Bool{}, nil
	case "u8":
		return wit.U8{}, nil
	case "s8":
		return wit.S8{}, nil
	case "u16":
		return wit.U16{}, nil
	case "s16":
		return wit.S16{}, nil
	case "u32":
		return wit.U32{}, nil
	case "s32":
		return wit.S32{}, nil
	case "u64":
		return wit.U64{}, nil
	case "s64":
		return wit.S64{}, nil
	case "f32":
		return wit.F32{}, nil
	case "f64":
		return wit.F64{}, nil
	case "char":
		return wit.Char{}, nil
	case "string":
		return wit.String{}, nil
	}

	head, arg, ok := splitGeneric(s)
	if !ok {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Detail("unknown type %q", s).
			Build()
	}

	switch head {
	case "list":
		elem, err := Parse(arg)
		if err != nil {
			return nil, err
		}
		return &wit.TypeDef{Kind: &wit.List{Type: elem}}, nil
	case "own":
		name := arg
		return &wit.TypeDef{Name: &name, Kind: &wit.Own{}}, nil
	case "borrow":
		name := arg
		return &wit.TypeDef{Name: &name, Kind: &wit.Borrow{}}, nil
	default:
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Detail("unknown type constructor %q", head).
			Build()
	}
}

// splitGeneric splits "head<arg>" with balanced angle brackets.
func splitGeneric(s string) (head, arg string, ok bool) {
	open := strings.IndexByte(s, '<')
	if open <= 0 || !strings.HasSuffix(s, ">") {
		return "", "", false
	}
	depth := 0
	for _, r := range s[open:] {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		}
	}
	if depth != 0 {
		return "", "", false
	}
	return s[:open], strings.TrimSpace(s[open+1 : len(s)-1]), true
}
