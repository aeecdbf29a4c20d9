package strategy

import (
	"github.com/wippyai/marshalgen/shape"
	"github.com/wippyai/marshalgen/syntax"
)

// NativeType describes the native representation type of one value: the
// marshaller type that performs the conversions and the capabilities it
// declares. Immutable for the lifetime of a generation pass.
type NativeType struct {
	// TypeName is the marshaller type declared in Setup.
	TypeName string

	// Shape is the declared capability set.
	Shape shape.CapabilitySet

	// StackOnly marks non-escaping marshaller types. Their Setup
	// declaration is annotated so the emitter keeps the instance on the
	// current call frame; later phases may hand out interior pointers.
	StackOnly bool

	// BufferSize is the declared fixed scratch-buffer size constant.
	// Required when Shape has CallerAllocatedBuffer, ignored otherwise.
	BufferSize syntax.Expr
}

// ValuePosition identifies one value being marshalled at one call site.
// It lives exactly across the phase sequence of one generation pass.
type ValuePosition struct {
	// Index is the value's position at the call boundary.
	Index int

	// ByRef is how the value is passed.
	ByRef shape.ByRefKind

	// Intent is the by-value contents data-flow intent. Meaningful when
	// ByRef is ByRefNone.
	Intent shape.ByValueIntent

	// Native describes the value's native representation type.
	Native NativeType
}

// Strategy is the phase contract every marshalling strategy implements.
// Each phase returns a finite, possibly empty, ordered statement sequence.
type Strategy interface {
	// Setup declares and default-constructs the marshaller instance.
	Setup(ctx *Context, pos *ValuePosition) []syntax.Stmt

	// Marshal converts the origin value into the instance, before pinning.
	Marshal(ctx *Context, pos *ValuePosition) []syntax.Stmt

	// Pin establishes a pinning scope over the instance itself.
	Pin(ctx *Context, pos *ValuePosition) []syntax.Stmt

	// PinnedMarshal produces the target representation once addresses are
	// stable, assigning it to the target identifier.
	PinnedMarshal(ctx *Context, pos *ValuePosition) []syntax.Stmt

	// NotifyForSuccessfulInvoke tells the instance the native call
	// completed without error.
	NotifyForSuccessfulInvoke(ctx *Context, pos *ValuePosition) []syntax.Stmt

	// UnmarshalCapture hands the raw target value back to the instance
	// before any transform.
	UnmarshalCapture(ctx *Context, pos *ValuePosition) []syntax.Stmt

	// GuaranteedUnmarshal recovers the origin value on every exit path.
	GuaranteedUnmarshal(ctx *Context, pos *ValuePosition) []syntax.Stmt

	// Unmarshal converts the target value back into the origin identifier.
	Unmarshal(ctx *Context, pos *ValuePosition) []syntax.Stmt

	// Cleanup releases the instance's native resources.
	Cleanup(ctx *Context, pos *ValuePosition) []syntax.Stmt

	// UsesOriginIdentifier reports whether the strategy requires a distinct
	// origin-side storage slot.
	UsesOriginIdentifier() bool
}
