package witshape

import (
	"github.com/wippyai/marshalgen"
	"github.com/wippyai/marshalgen/shape"
	"github.com/wippyai/marshalgen/syntax"
)

// Elements produces the per-element statements for a classified collection.
// Statements call the emitter's element-pass helpers; the element buffers
// come exclusively from the source adapter's accessors.
type Elements struct {
	Element Layout
}

func (e Elements) ElementMarshal(src marshalgen.ElementSource) syntax.Stmt {
	return &syntax.Emit{X: &syntax.Call{
		Method: "marshalElements",
		Args:   []syntax.Expr{src.OriginValuesSource(), src.TargetValuesDestination()},
	}}
}

func (e Elements) ElementUnmarshal(src marshalgen.ElementSource, count syntax.Expr) syntax.Stmt {
	return &syntax.Emit{X: &syntax.Call{
		Method: "unmarshalElements",
		Args:   []syntax.Expr{src.TargetValuesSource(count), src.OriginValuesDestination(count)},
	}}
}

// ByValueOutMarshal sizes the target buffer without copying origin
// contents: an out-only by-value collection carries no data into the call.
func (e Elements) ByValueOutMarshal(src marshalgen.ElementSource) syntax.Stmt {
	return &syntax.Emit{X: &syntax.Call{
		Method: "prepareTargetElements",
		Args:   []syntax.Expr{src.TargetValuesDestination()},
	}}
}

func (e Elements) ByValueOutUnmarshal(src marshalgen.ElementSource) syntax.Stmt {
	return &syntax.Emit{X: &syntax.Call{
		Method: "unmarshalElementsByValueOut",
		Args:   []syntax.Expr{src.OriginValuesSource()},
	}}
}

// ElementCleanup is non-trivial only when the element type owns native
// resources.
func (e Elements) ElementCleanup(src marshalgen.ElementSource) syntax.Stmt {
	if !e.Element.Native.Shape.Has(shape.Free) {
		return nil
	}
	return &syntax.Emit{X: &syntax.Call{
		Method: "freeElements",
		Args:   []syntax.Expr{src.TargetValuesDestination()},
	}}
}
