package strategy

import (
	"github.com/wippyai/marshalgen"
	"github.com/wippyai/marshalgen/syntax"
)

// CallerBuffer substitutes the Marshal phase with a caller-allocated scratch
// buffer path when the call site is eligible. Every other phase passes
// through to the inner strategy untouched, so the optimization stays
// invisible to the driver and to other decorators.
//
// Precondition, enforced by the chain builder: the wrapped value's native
// type declares caller_allocated_buffer and a buffer-size constant.
type CallerBuffer struct {
	Strategy
}

// NewCallerBuffer wraps inner with the caller-allocated-buffer substitution.
func NewCallerBuffer(inner Strategy) *CallerBuffer {
	return &CallerBuffer{Strategy: inner}
}

// Marshal emits the buffered path when eligible and otherwise delegates to
// the inner strategy unchanged. Ineligibility is a silent fallback, never a
// failure.
func (cb *CallerBuffer) Marshal(ctx *Context, pos *ValuePosition) []syntax.Stmt {
	if !ctx.CallerBufferEligible(pos) || pos.Native.BufferSize == nil {
		return cb.Strategy.Marshal(ctx, pos)
	}
	origin, _ := ctx.Identifiers(pos)
	buf := ctx.Additional(pos, marshalgen.RoleBuffer)
	return []syntax.Stmt{
		&syntax.DeclBuf{Name: buf, Size: pos.Native.BufferSize},
		&syntax.Emit{X: &syntax.Call{
			Recv:   ctx.Marshaller(pos),
			Method: "FromOriginWithBuffer",
			Args:   []syntax.Expr{origin, &syntax.SliceAll{X: buf}},
		}},
	}
}
