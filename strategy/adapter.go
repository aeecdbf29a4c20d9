package strategy

import (
	"github.com/wippyai/marshalgen/syntax"
)

// SourceAdapter exposes the wrapped marshaller instance's element-buffer
// accessors to an ElementsMarshaller. The elements collaborator never sees
// the marshaller identifier directly, only these four views.
type SourceAdapter struct {
	ctx *Context
	pos *ValuePosition
}

// NewSourceAdapter creates the element-buffer view over pos's marshaller.
func NewSourceAdapter(ctx *Context, pos *ValuePosition) *SourceAdapter {
	return &SourceAdapter{ctx: ctx, pos: pos}
}

func (a *SourceAdapter) call(method string, args ...syntax.Expr) syntax.Expr {
	return &syntax.Call{Recv: a.ctx.Marshaller(a.pos), Method: method, Args: args}
}

// TargetValuesDestination is the writable native-side element buffer.
func (a *SourceAdapter) TargetValuesDestination() syntax.Expr {
	return a.call("TargetValuesDestination")
}

// OriginValuesSource is the readable origin-side element sequence.
func (a *SourceAdapter) OriginValuesSource() syntax.Expr {
	return a.call("OriginValuesSource")
}

// TargetValuesSource is the readable native-side sequence of count elements.
func (a *SourceAdapter) TargetValuesSource(count syntax.Expr) syntax.Expr {
	return a.call("TargetValuesSource", count)
}

// OriginValuesDestination is the writable origin-side buffer of count
// elements.
func (a *SourceAdapter) OriginValuesDestination(count syntax.Expr) syntax.Expr {
	return a.call("OriginValuesDestination", count)
}
