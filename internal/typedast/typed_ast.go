package typedast

import (
	"fmt"

	"github.com/sunholo/mel/internal/core"
	"github.com/sunholo/mel/internal/types"
)

// Typed AST - mirrors the core IR node-for-node with each node carrying
// the monomorphic type assigned during constraint generation. The tree is
// provisional until the solver's final substitution is applied.

// Node is the base interface for typed expressions.
type Node interface {
	// Type returns the node's monomorphic type. BinOp and Seq derive
	// theirs from the left and right child respectively.
	Type() types.Type
	String() string
	typedNode()
}

// Nop is the typed empty expression.
type Nop struct {
	Typ types.Type
}

func (n *Nop) typedNode()       {}
func (n *Nop) Type() types.Type { return n.Typ }
func (n *Nop) String() string   { return "nop" }

// Lit is a typed literal.
type Lit struct {
	Kind  core.LitKind
	Value any
	Typ   types.Type
}

func (l *Lit) typedNode()       {}
func (l *Lit) Type() types.Type { return l.Typ }
func (l *Lit) String() string {
	if l.Kind == core.StringLit {
		return fmt.Sprintf("%q", l.Value)
	}
	return fmt.Sprintf("%v", l.Value)
}

// Var is a typed identifier occurrence.
type Var struct {
	Name string
	Typ  types.Type
}

func (v *Var) typedNode()       {}
func (v *Var) Type() types.Type { return v.Typ }
func (v *Var) String() string   { return v.Name }

// App is a typed application; Typ is the result type.
type App struct {
	Func Node
	Arg  Node
	Typ  types.Type
}

func (a *App) typedNode()       {}
func (a *App) Type() types.Type { return a.Typ }
func (a *App) String() string   { return fmt.Sprintf("%s(%s)", a.Func, a.Arg) }

// Lambda is a typed function value; Typ is the full function type.
type Lambda struct {
	Param string
	Body  Node
	Typ   types.Type
}

func (l *Lambda) typedNode()       {}
func (l *Lambda) Type() types.Type { return l.Typ }
func (l *Lambda) String() string   { return fmt.Sprintf("λ%s. %s", l.Param, l.Body) }

// Let is a typed let binding; Typ is the body's type.
type Let struct {
	Name  string
	Value Node
	Body  Node
	Typ   types.Type
}

func (l *Let) typedNode()       {}
func (l *Let) Type() types.Type { return l.Typ }
func (l *Let) String() string {
	return fmt.Sprintf("let %s = %s in %s", l.Name, l.Value, l.Body)
}

// BinOp is a typed operator application. It carries no type of its own:
// the left operand is constrained to the operator's operand type, so its
// type is the operator's result type.
type BinOp struct {
	Op    string
	Left  Node
	Right Node
}

func (b *BinOp) typedNode()       {}
func (b *BinOp) Type() types.Type { return b.Left.Type() }
func (b *BinOp) String() string   { return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right) }

// Seq is a typed statement sequence; its type is the second expression's.
type Seq struct {
	First  Node
	Second Node
}

func (s *Seq) typedNode()       {}
func (s *Seq) Type() types.Type { return s.Second.Type() }
func (s *Seq) String() string   { return fmt.Sprintf("%s; %s", s.First, s.Second) }
