package marshalgen

import (
	"strconv"

	"github.com/wippyai/marshalgen/syntax"
)

type pairKey struct {
	index int
}

type roleKey struct {
	index int
	role  Role
}

// Names is the default NamingService: a per-pass registry populated on first
// use so every phase reads the same handle for a given slot.
type Names struct {
	pairs map[pairKey][2]syntax.Ident
	roles map[roleKey]syntax.Ident
}

// NewNames creates an empty naming registry for one generation pass.
func NewNames() *Names {
	return &Names{
		pairs: make(map[pairKey][2]syntax.Ident),
		roles: make(map[roleKey]syntax.Ident),
	}
}

// Pair returns arg{index} / native{index}, allocated once.
func (n *Names) Pair(index int) (origin, target syntax.Ident) {
	k := pairKey{index: index}
	if p, ok := n.pairs[k]; ok {
		return p[0], p[1]
	}
	p := [2]syntax.Ident{
		syntax.Ident("arg" + strconv.Itoa(index)),
		syntax.Ident("native" + strconv.Itoa(index)),
	}
	n.pairs[k] = p
	return p[0], p[1]
}

// Additional returns {role}{index}, allocated once per (index, role).
func (n *Names) Additional(index int, role Role) syntax.Ident {
	k := roleKey{index: index, role: role}
	if id, ok := n.roles[k]; ok {
		return id
	}
	id := syntax.Ident(string(role) + strconv.Itoa(index))
	n.roles[k] = id
	return id
}
