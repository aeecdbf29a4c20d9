package strategy

import (
	"github.com/wippyai/marshalgen/shape"
	"github.com/wippyai/marshalgen/syntax"
)

// StatefulValue is the base strategy for a single scalar or struct value
// marshalled through a stateful per-value marshaller instance. The instance
// is declared in Setup, exclusively owned by the chain, and consumed by
// Cleanup.
type StatefulValue struct{}

// NewStatefulValue creates the base value-marshalling strategy.
func NewStatefulValue() *StatefulValue {
	return &StatefulValue{}
}

func (*StatefulValue) Setup(ctx *Context, pos *ValuePosition) []syntax.Stmt {
	return []syntax.Stmt{&syntax.Decl{
		Name:      ctx.Marshaller(pos),
		Type:      pos.Native.TypeName,
		StackOnly: pos.Native.StackOnly,
	}}
}

func (*StatefulValue) Marshal(ctx *Context, pos *ValuePosition) []syntax.Stmt {
	if !pos.Native.Shape.Has(shape.ToNative) {
		return nil
	}
	origin, _ := ctx.Identifiers(pos)
	return []syntax.Stmt{&syntax.Emit{X: &syntax.Call{
		Recv:   ctx.Marshaller(pos),
		Method: "FromOrigin",
		Args:   []syntax.Expr{origin},
	}}}
}

// Pin scopes the instance itself, not the origin value: any reference the
// instance holds stays stable for the duration of the native call.
func (*StatefulValue) Pin(ctx *Context, pos *ValuePosition) []syntax.Stmt {
	if !pos.Native.Shape.Has(shape.PinnableReference) {
		return nil
	}
	return []syntax.Stmt{&syntax.Pin{Value: &syntax.Call{
		Recv:   ctx.Marshaller(pos),
		Method: "PinnableReference",
	}}}
}

func (*StatefulValue) PinnedMarshal(ctx *Context, pos *ValuePosition) []syntax.Stmt {
	if !pos.Native.Shape.Any(shape.ToNative | shape.CallerAllocatedBuffer) {
		return nil
	}
	_, target := ctx.Identifiers(pos)
	return []syntax.Stmt{&syntax.Assign{
		Target: target,
		Value:  &syntax.Call{Recv: ctx.Marshaller(pos), Method: "ToTarget"},
	}}
}

func (*StatefulValue) NotifyForSuccessfulInvoke(ctx *Context, pos *ValuePosition) []syntax.Stmt {
	if !pos.Native.Shape.Has(shape.OnInvoked) {
		return nil
	}
	return []syntax.Stmt{&syntax.Emit{X: &syntax.Call{
		Recv:   ctx.Marshaller(pos),
		Method: "OnInvoked",
	}}}
}

// UnmarshalCapture runs for guaranteed_unmarshal even when to_managed is
// absent: the raw target value must be captured before any transform.
func (*StatefulValue) UnmarshalCapture(ctx *Context, pos *ValuePosition) []syntax.Stmt {
	if !pos.Native.Shape.Any(shape.ToManaged | shape.GuaranteedUnmarshal) {
		return nil
	}
	_, target := ctx.Identifiers(pos)
	return []syntax.Stmt{&syntax.Emit{X: &syntax.Call{
		Recv:   ctx.Marshaller(pos),
		Method: "FromTarget",
		Args:   []syntax.Expr{target},
	}}}
}

func (*StatefulValue) GuaranteedUnmarshal(ctx *Context, pos *ValuePosition) []syntax.Stmt {
	if !pos.Native.Shape.Has(shape.GuaranteedUnmarshal) {
		return nil
	}
	origin, _ := ctx.Identifiers(pos)
	return []syntax.Stmt{&syntax.Assign{
		Target: origin,
		Value:  &syntax.Call{Recv: ctx.Marshaller(pos), Method: "ToOriginGuaranteed"},
	}}
}

func (*StatefulValue) Unmarshal(ctx *Context, pos *ValuePosition) []syntax.Stmt {
	if !pos.Native.Shape.Has(shape.ToManaged) {
		return nil
	}
	origin, _ := ctx.Identifiers(pos)
	return []syntax.Stmt{&syntax.Assign{
		Target: origin,
		Value:  &syntax.Call{Recv: ctx.Marshaller(pos), Method: "ToOrigin"},
	}}
}

func (*StatefulValue) Cleanup(ctx *Context, pos *ValuePosition) []syntax.Stmt {
	if !pos.Native.Shape.Has(shape.Free) {
		return nil
	}
	return []syntax.Stmt{&syntax.Emit{X: &syntax.Call{
		Recv:   ctx.Marshaller(pos),
		Method: "Free",
	}}}
}

// UsesOriginIdentifier always reports true: the stateful strategy requires a
// distinct origin-side storage slot.
func (*StatefulValue) UsesOriginIdentifier() bool { return true }
