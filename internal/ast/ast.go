package ast

import (
	"fmt"
	"strings"
)

// Node is the base interface for all surface AST nodes.
type Node interface {
	String() string
	Position() Pos
}

// Pos represents a position in the source code.
type Pos struct {
	Line   int
	Column int
	File   string
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Expr is the interface for surface expressions and statements. The
// surface language is statement-oriented at the top of a block: `let` and
// `fn` bind the rest of their block, everything else is an expression.
type Expr interface {
	Node
	exprNode()
}

// Identifier represents a variable or function name.
type Identifier struct {
	Name string
	Pos  Pos
}

func (i *Identifier) String() string { return i.Name }
func (i *Identifier) Position() Pos  { return i.Pos }
func (i *Identifier) exprNode()      {}

// IntLit represents an integer literal.
type IntLit struct {
	Value int64
	Pos   Pos
}

func (l *IntLit) String() string { return fmt.Sprintf("%d", l.Value) }
func (l *IntLit) Position() Pos  { return l.Pos }
func (l *IntLit) exprNode()      {}

// StringLit represents a string literal.
type StringLit struct {
	Value string
	Pos   Pos
}

func (l *StringLit) String() string { return fmt.Sprintf("%q", l.Value) }
func (l *StringLit) Position() Pos  { return l.Pos }
func (l *StringLit) exprNode()      {}

// App represents function application f(x).
type App struct {
	Func Expr
	Arg  Expr
	Pos  Pos
}

func (a *App) String() string { return fmt.Sprintf("%s(%s)", a.Func, a.Arg) }
func (a *App) Position() Pos  { return a.Pos }
func (a *App) exprNode()      {}

// Lambda represents \x. body.
type Lambda struct {
	Param string
	Body  Expr
	Pos   Pos
}

func (l *Lambda) String() string { return fmt.Sprintf("\\%s. %s", l.Param, l.Body) }
func (l *Lambda) Position() Pos  { return l.Pos }
func (l *Lambda) exprNode()      {}

// Let represents the statement `let x = e`. It has no body of its own:
// the binding scopes over the remainder of the enclosing block.
type Let struct {
	Name  string
	Value Expr
	Pos   Pos
}

func (l *Let) String() string { return fmt.Sprintf("let %s = %s", l.Name, l.Value) }
func (l *Let) Position() Pos  { return l.Pos }
func (l *Let) exprNode()      {}

// FuncDecl represents the statement `fn f x = body`, sugar for
// `let f = \x. body`.
type FuncDecl struct {
	Name  string
	Param string
	Body  Expr
	Pos   Pos
}

func (f *FuncDecl) String() string {
	return fmt.Sprintf("fn %s %s = %s", f.Name, f.Param, f.Body)
}
func (f *FuncDecl) Position() Pos { return f.Pos }
func (f *FuncDecl) exprNode()     {}

// BinOp represents a binary operator expression.
type BinOp struct {
	Op    string
	Left  Expr
	Right Expr
	Pos   Pos
}

func (b *BinOp) String() string { return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right) }
func (b *BinOp) Position() Pos  { return b.Pos }
func (b *BinOp) exprNode()      {}

// Block represents a sequence of statements.
type Block struct {
	Exprs []Expr
	Pos   Pos
}

func (b *Block) String() string {
	parts := make([]string, len(b.Exprs))
	for i, e := range b.Exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, "\n")
}
func (b *Block) Position() Pos { return b.Pos }
func (b *Block) exprNode()     {}
