package syntax

import "strings"

// Node is anything with a deterministic rendering.
type Node interface {
	String() string
}

// Expr is a value-producing node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement-producing node.
type Stmt interface {
	Node
	stmtNode()
}

// Ident is a stable identifier handle. Handles are allocated once per
// (position, role) by the naming service and reused across phases.
type Ident string

func (i Ident) String() string { return string(i) }
func (Ident) exprNode()        {}

// Raw is a verbatim expression supplied by the caller, such as an
// element-count expression or a buffer-size constant.
type Raw string

func (r Raw) String() string { return string(r) }
func (Raw) exprNode()        {}

// Call invokes Method on Recv with Args. A nil Recv renders as a plain
// function call.
type Call struct {
	Recv   Expr
	Method string
	Args   []Expr
}

func (c *Call) String() string {
	var b strings.Builder
	if c.Recv != nil {
		b.WriteString(c.Recv.String())
		b.WriteByte('.')
	}
	b.WriteString(c.Method)
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}
func (*Call) exprNode() {}

// SliceAll renders a full-range slice of X.
type SliceAll struct {
	X Expr
}

func (s *SliceAll) String() string { return s.X.String() + "[:]" }
func (*SliceAll) exprNode()        {}

// Decl declares Name with native marshaller type Type, default-constructed.
// StackOnly annotates the declaration so the surrounding emitter knows the
// instance must not outlive the current call frame.
type Decl struct {
	Name      Ident
	Type      string
	StackOnly bool
}

func (d *Decl) String() string {
	s := "var " + string(d.Name) + " " + d.Type
	if d.StackOnly {
		s += " // must-not-escape"
	}
	return s
}
func (*Decl) stmtNode() {}

// DeclBuf declares a caller-owned scratch buffer of Size bytes.
type DeclBuf struct {
	Name Ident
	Size Expr
}

func (d *DeclBuf) String() string {
	return "var " + string(d.Name) + " [" + d.Size.String() + "]byte"
}
func (*DeclBuf) stmtNode() {}

// DeclInit declares Name initialized from Value.
type DeclInit struct {
	Name  Ident
	Value Expr
}

func (d *DeclInit) String() string {
	return string(d.Name) + " := " + d.Value.String()
}
func (*DeclInit) stmtNode() {}

// Assign assigns Value into Target.
type Assign struct {
	Target Ident
	Value  Expr
}

func (a *Assign) String() string {
	return string(a.Target) + " = " + a.Value.String()
}
func (*Assign) stmtNode() {}

// Pin establishes a pinning scope over Value. The binding is a discard: the
// pin result is never read, only its scope matters. The emitter is
// responsible for releasing the scope on every exit path of the call.
type Pin struct {
	Value Expr
}

func (p *Pin) String() string { return "pin _ := " + p.Value.String() }
func (*Pin) stmtNode()        {}

// Emit evaluates X for its effect.
type Emit struct {
	X Expr
}

func (e *Emit) String() string { return e.X.String() }
func (*Emit) stmtNode()        {}

// Equal reports whether two statement sequences are structurally equal.
func Equal(a, b []Stmt) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].String() != b[i].String() {
			return false
		}
	}
	return true
}

// Render joins a statement sequence one per line.
func Render(stmts []Stmt) string {
	var b strings.Builder
	for i, s := range stmts {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.String())
	}
	return b.String()
}
