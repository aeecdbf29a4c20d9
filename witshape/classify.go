package witshape

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/marshalgen/errors"
	"github.com/wippyai/marshalgen/shape"
	"github.com/wippyai/marshalgen/strategy"
	"github.com/wippyai/marshalgen/syntax"
)

// Layout is a classified WIT type: the native type of the value itself and,
// for collections, the classification of the element type.
type Layout struct {
	Native     strategy.NativeType
	Collection bool
	Element    *Layout
}

// Classify maps a WIT type to its marshalling layout.
func Classify(t wit.Type) (Layout, error) {
	switch v := t.(type) {
	case wit.Bool:
		return blittable("BoolMarshaller"), nil
	case wit.U8:
		return blittable("U8Marshaller"), nil
	case wit.S8:
		return blittable("S8Marshaller"), nil
	case wit.U16:
		return blittable("U16Marshaller"), nil
	case wit.S16:
		return blittable("S16Marshaller"), nil
	case wit.U32:
		return blittable("U32Marshaller"), nil
	case wit.S32:
		return blittable("S32Marshaller"), nil
	case wit.U64:
		return blittable("U64Marshaller"), nil
	case wit.S64:
		return blittable("S64Marshaller"), nil
	case wit.F32:
		return blittable("F32Marshaller"), nil
	case wit.F64:
		return blittable("F64Marshaller"), nil
	case wit.Char:
		return blittable("CharMarshaller"), nil
	case wit.String:
		return Layout{Native: strategy.NativeType{
			TypeName: "Utf8Marshaller",
			Shape: shape.ToNative | shape.ToManaged | shape.Free |
				shape.CallerAllocatedBuffer,
			StackOnly:  true,
			BufferSize: syntax.Raw("Utf8Marshaller.BufferSize"),
		}}, nil
	case *wit.TypeDef:
		return classifyTypeDef(v)
	default:
		return Layout{}, errors.Unsupported(errors.PhaseClassify, typeLabel(t))
	}
}

func classifyTypeDef(td *wit.TypeDef) (Layout, error) {
	switch k := td.Kind.(type) {
	case *wit.List:
		elem, err := Classify(k.Type)
		if err != nil {
			return Layout{}, err
		}
		return Layout{
			Native: strategy.NativeType{
				TypeName: "SliceMarshaller",
				Shape: shape.ToNative | shape.ToManaged | shape.Free |
					shape.PinnableReference,
			},
			Collection: true,
			Element:    &elem,
		}, nil
	case *wit.Own:
		return Layout{Native: strategy.NativeType{
			TypeName: pascal(typeDefName(td, "resource")) + "OwnMarshaller",
			Shape:    shape.ToNative | shape.ToManaged | shape.GuaranteedUnmarshal,
		}}, nil
	case *wit.Borrow:
		return Layout{Native: strategy.NativeType{
			TypeName: pascal(typeDefName(td, "resource")) + "BorrowMarshaller",
			Shape:    shape.ToNative | shape.OnInvoked,
		}}, nil
	case *wit.Enum, *wit.Flags:
		l := blittable(pascal(typeDefName(td, kindLabel(td.Kind))) + "Marshaller")
		return l, nil
	case *wit.Record, *wit.Variant, *wit.Option, *wit.Result, *wit.Tuple:
		return Layout{Native: strategy.NativeType{
			TypeName: pascal(typeDefName(td, kindLabel(td.Kind))) + "Marshaller",
			Shape:    shape.ToNative | shape.ToManaged | shape.Free,
		}}, nil
	case wit.Type:
		// Type alias: classify the underlying type.
		return Classify(k)
	default:
		return Layout{}, errors.Unsupported(errors.PhaseClassify, typeLabel(td))
	}
}

func blittable(typeName string) Layout {
	return Layout{Native: strategy.NativeType{
		TypeName:  typeName,
		Shape:     shape.ToNative | shape.ToManaged,
		StackOnly: true,
	}}
}

func typeDefName(td *wit.TypeDef, fallback string) string {
	if td.Name != nil && *td.Name != "" {
		return *td.Name
	}
	return fallback
}

func kindLabel(k wit.TypeDefKind) string {
	switch k.(type) {
	case *wit.Record:
		return "record"
	case *wit.Variant:
		return "variant"
	case *wit.Option:
		return "option"
	case *wit.Result:
		return "result"
	case *wit.Tuple:
		return "tuple"
	case *wit.Enum:
		return "enum"
	case *wit.Flags:
		return "flags"
	default:
		return "type"
	}
}

func typeLabel(t wit.Type) string {
	if td, ok := t.(*wit.TypeDef); ok && td.Name != nil {
		return *td.Name
	}
	return strings.TrimPrefix(strings.TrimPrefix(fmt.Sprintf("%T", t), "*wit."), "wit.")
}

// pascal converts a kebab-case WIT identifier to PascalCase.
func pascal(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if r == '-' || r == '_' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(toUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
