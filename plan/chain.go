package plan

import (
	"github.com/wippyai/marshalgen"
	"github.com/wippyai/marshalgen/errors"
	"github.com/wippyai/marshalgen/shape"
	"github.com/wippyai/marshalgen/strategy"
	"github.com/wippyai/marshalgen/syntax"
)

// Chain assembles a strategy composition for one value, outermost-last:
// base, optionally caller-buffer, optionally collection. Preconditions the
// phase functions never check are rejected here.
type Chain struct {
	native       strategy.NativeType
	path         []string
	callerBuffer bool
	collection   bool
	elements     marshalgen.ElementsMarshaller
	count        syntax.Expr
}

// NewChain starts a chain over the value's native type.
func NewChain(native strategy.NativeType) *Chain {
	return &Chain{native: native}
}

// Path attaches a declaration path used in error reports.
func (c *Chain) Path(path ...string) *Chain {
	c.path = path
	return c
}

// WithCallerBuffer layers the caller-allocated-buffer substitution.
func (c *Chain) WithCallerBuffer() *Chain {
	c.callerBuffer = true
	return c
}

// WithCollection layers per-element marshalling. count is the externally
// supplied element-count expression for the target-to-origin direction.
func (c *Chain) WithCollection(elements marshalgen.ElementsMarshaller, count syntax.Expr) *Chain {
	c.collection = true
	c.elements = elements
	c.count = count
	return c
}

// Build validates the composition and returns the outermost strategy.
func (c *Chain) Build() (strategy.Strategy, error) {
	if c.callerBuffer {
		if !c.native.Shape.Has(shape.CallerAllocatedBuffer) {
			return nil, errors.MissingCapability(errors.PhaseChain, c.path,
				"CallerBuffer", "caller_allocated_buffer")
		}
		if c.native.BufferSize == nil {
			return nil, errors.InvalidChain(errors.PhaseChain, c.path,
				"CallerBuffer", "native type declares no buffer-size constant")
		}
	}
	if c.collection {
		if c.elements == nil {
			return nil, errors.InvalidChain(errors.PhaseChain, c.path,
				"LinearCollection", "nil elements marshaller")
		}
		if c.count == nil && c.native.Shape.Has(shape.ToManaged) {
			return nil, errors.InvalidChain(errors.PhaseChain, c.path,
				"LinearCollection", "to_managed collection requires a count expression")
		}
	}

	var s strategy.Strategy = strategy.NewStatefulValue()
	if c.callerBuffer {
		s = strategy.NewCallerBuffer(s)
	}
	if c.collection {
		s = strategy.NewLinearCollection(s, c.elements, c.count)
	}
	return s, nil
}
