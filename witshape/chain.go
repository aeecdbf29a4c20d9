package witshape

import (
	"github.com/wippyai/marshalgen/plan"
	"github.com/wippyai/marshalgen/shape"
	"github.com/wippyai/marshalgen/strategy"
	"github.com/wippyai/marshalgen/syntax"
)

// BuildChain assembles the validated strategy chain for a classified
// layout. count is the externally supplied element-count expression,
// required when a collection unmarshals to the origin domain.
func BuildChain(l Layout, count syntax.Expr, path ...string) (strategy.Strategy, error) {
	c := plan.NewChain(l.Native).Path(path...)
	if l.Native.Shape.Has(shape.CallerAllocatedBuffer) {
		c = c.WithCallerBuffer()
	}
	if l.Collection {
		c = c.WithCollection(Elements{Element: *l.Element}, count)
	}
	return c.Build()
}
