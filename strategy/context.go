package strategy

import (
	"github.com/wippyai/marshalgen"
	"github.com/wippyai/marshalgen/shape"
	"github.com/wippyai/marshalgen/syntax"
)

// Context carries the per-pass collaborators every phase reads: the naming
// service and the call-site constraints that decide buffer eligibility.
type Context struct {
	names marshalgen.NamingService

	// allowTransient reports whether the enclosing scope tolerates a
	// transient caller-owned allocation (no loops, no escaping frames).
	allowTransient bool
}

// NewContext creates a generation context for one pass.
func NewContext(names marshalgen.NamingService, allowTransientBuffers bool) *Context {
	return &Context{names: names, allowTransient: allowTransientBuffers}
}

// Identifiers returns the stable (origin, target) pair for pos.
func (c *Context) Identifiers(pos *ValuePosition) (origin, target syntax.Ident) {
	return c.names.Pair(pos.Index)
}

// Additional returns the stable identifier for an auxiliary role of pos.
func (c *Context) Additional(pos *ValuePosition, role marshalgen.Role) syntax.Ident {
	return c.names.Additional(pos.Index, role)
}

// Marshaller returns pos's marshaller-instance identifier.
func (c *Context) Marshaller(pos *ValuePosition) syntax.Ident {
	return c.Additional(pos, marshalgen.RoleMarshaller)
}

// CallerBufferEligible reports whether a caller-supplied scratch buffer may
// be used for pos at this call site. By-ref out and in-out values receive
// their native representation from the callee, so a transient buffer on the
// caller's frame cannot back them.
func (c *Context) CallerBufferEligible(pos *ValuePosition) bool {
	if !c.allowTransient {
		return false
	}
	return pos.ByRef == shape.ByRefNone || pos.ByRef == shape.ByRefIn
}
