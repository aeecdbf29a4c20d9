package strategy

import (
	"github.com/wippyai/marshalgen"
	"github.com/wippyai/marshalgen/shape"
	"github.com/wippyai/marshalgen/syntax"
)

// LinearCollection wraps a strategy for an indexable container and adds
// per-element marshalling through an ElementsMarshaller. Structural phases
// (setup, pin, container cleanup) stay with the inner strategy.
//
// The element count for the target-to-origin direction is always the
// externally supplied count expression; only the call site knows the
// authoritative count for the native buffer.
type LinearCollection struct {
	Strategy
	elements marshalgen.ElementsMarshaller
	count    syntax.Expr
}

// NewLinearCollection wraps inner with per-element marshalling. count may be
// nil when the wrapped shape never unmarshals to the origin domain.
func NewLinearCollection(inner Strategy, elements marshalgen.ElementsMarshaller, count syntax.Expr) *LinearCollection {
	return &LinearCollection{Strategy: inner, elements: elements, count: count}
}

func (lc *LinearCollection) byValueOut(pos *ValuePosition) bool {
	return pos.ByRef == shape.ByRefNone && pos.Intent == shape.IntentOut
}

func (lc *LinearCollection) byValueOutContents(pos *ValuePosition) bool {
	return pos.ByRef == shape.ByRefNone &&
		(pos.Intent == shape.IntentOut || pos.Intent == shape.IntentInOut)
}

// Marshal emits the container-level setup first, then the element pass.
// By-value out-only contents skip copying the origin elements: none are
// semantically needed before the call.
func (lc *LinearCollection) Marshal(ctx *Context, pos *ValuePosition) []syntax.Stmt {
	if !pos.Native.Shape.Any(shape.ToNative | shape.CallerAllocatedBuffer) {
		return nil
	}
	stmts := lc.Strategy.Marshal(ctx, pos)
	src := NewSourceAdapter(ctx, pos)
	var elem syntax.Stmt
	if lc.byValueOut(pos) {
		elem = lc.elements.ByValueOutMarshal(src)
	} else {
		elem = lc.elements.ElementMarshal(src)
	}
	if elem != nil {
		stmts = append(stmts, elem)
	}
	return stmts
}

// Unmarshal runs the by-value-out element recovery whenever its condition
// holds, then the counted element unmarshal gated on to_managed, then the
// container-level teardown of the inner strategy.
func (lc *LinearCollection) Unmarshal(ctx *Context, pos *ValuePosition) []syntax.Stmt {
	var stmts []syntax.Stmt
	src := NewSourceAdapter(ctx, pos)

	if lc.byValueOutContents(pos) {
		if s := lc.elements.ByValueOutUnmarshal(src); s != nil {
			stmts = append(stmts, s)
		}
	}

	if pos.Native.Shape.Has(shape.ToManaged) {
		count := ctx.Additional(pos, marshalgen.RoleCount)
		stmts = append(stmts, &syntax.DeclInit{Name: count, Value: lc.count})
		if s := lc.elements.ElementUnmarshal(src, count); s != nil {
			stmts = append(stmts, s)
		}
	}

	return append(stmts, lc.Strategy.Unmarshal(ctx, pos)...)
}

// Cleanup releases the element contents before the container itself.
func (lc *LinearCollection) Cleanup(ctx *Context, pos *ValuePosition) []syntax.Stmt {
	var stmts []syntax.Stmt
	if s := lc.elements.ElementCleanup(NewSourceAdapter(ctx, pos)); s != nil {
		stmts = append(stmts, s)
	}
	return append(stmts, lc.Strategy.Cleanup(ctx, pos)...)
}

// UsesOriginIdentifier always reports true: element access requires
// indexable origin-side storage regardless of the inner strategy.
func (*LinearCollection) UsesOriginIdentifier() bool { return true }
