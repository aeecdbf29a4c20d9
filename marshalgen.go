package marshalgen

import (
	"github.com/wippyai/marshalgen/syntax"
)

// Role identifies an auxiliary identifier slot owned by one value position.
// The naming service hands out one stable identifier per (position, role).
type Role string

const (
	// RoleMarshaller names the per-value marshaller instance.
	RoleMarshaller Role = "marshaller"
	// RoleBuffer names the caller-allocated scratch buffer.
	RoleBuffer Role = "buffer"
	// RoleCount names the element-count binding of a collection.
	RoleCount Role = "count"
)

// NamingService supplies stable identifiers for one generation pass.
// Pair and Additional must return the same handle for the same inputs
// every time they are called within a pass.
type NamingService interface {
	// Pair returns the origin-domain and target-domain identifiers for the
	// value at index.
	Pair(index int) (origin, target syntax.Ident)

	// Additional returns the identifier for an auxiliary role of the value
	// at index.
	Additional(index int, role Role) syntax.Ident
}

// ElementSource exposes the wrapped marshaller instance's element-buffer
// accessors to an ElementsMarshaller. Counts for the target-to-origin
// direction are always supplied by the caller, never derived here.
type ElementSource interface {
	// TargetValuesDestination is the writable native-side element buffer.
	TargetValuesDestination() syntax.Expr

	// OriginValuesSource is the readable origin-side element sequence.
	OriginValuesSource() syntax.Expr

	// TargetValuesSource is the readable native-side element sequence of
	// count elements.
	TargetValuesSource(count syntax.Expr) syntax.Expr

	// OriginValuesDestination is the writable origin-side element buffer of
	// count elements.
	OriginValuesDestination(count syntax.Expr) syntax.Expr
}

// ElementsMarshaller produces the per-element statements of a linear
// collection. Each method returns zero or one statement; nil means the
// operation is trivial for the element type.
type ElementsMarshaller interface {
	ElementMarshal(src ElementSource) syntax.Stmt
	ElementUnmarshal(src ElementSource, count syntax.Expr) syntax.Stmt
	ByValueOutMarshal(src ElementSource) syntax.Stmt
	ByValueOutUnmarshal(src ElementSource) syntax.Stmt
	ElementCleanup(src ElementSource) syntax.Stmt
}
