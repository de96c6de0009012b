// Package elaborate lowers the surface AST to the core IR. The surface
// language's statement forms are sugar: `fn f x = e` is `let f = \x. e`,
// and a block right-folds into nested let/seq expressions.
package elaborate

import (
	"fmt"

	"github.com/sunholo/mel/internal/ast"
	"github.com/sunholo/mel/internal/core"
)

// Desugar transforms a surface expression into the core IR.
func Desugar(expr ast.Expr) core.Expr {
	switch e := expr.(type) {
	case *ast.IntLit:
		return &core.Lit{Kind: core.IntLit, Value: e.Value}
	case *ast.StringLit:
		return &core.Lit{Kind: core.StringLit, Value: e.Value}
	case *ast.Identifier:
		return &core.Var{Name: e.Name}
	case *ast.App:
		return &core.App{Func: Desugar(e.Func), Arg: Desugar(e.Arg)}
	case *ast.Lambda:
		return &core.Lambda{Param: e.Param, Body: Desugar(e.Body)}
	case *ast.BinOp:
		return &core.BinOp{Op: e.Op, Left: Desugar(e.Left), Right: Desugar(e.Right)}
	case *ast.Let:
		// A bare let binds nothing downstream; it still typechecks its
		// bound expression.
		return &core.Let{Name: e.Name, Value: Desugar(e.Value), Body: &core.Nop{}}
	case *ast.FuncDecl:
		return &core.Let{
			Name:  e.Name,
			Value: &core.Lambda{Param: e.Param, Body: Desugar(e.Body)},
			Body:  &core.Nop{},
		}
	case *ast.Block:
		return desugarBlock(e.Exprs)
	}
	panic(fmt.Sprintf("elaborate: unknown surface expression %T", expr))
}

// desugarBlock right-folds a statement sequence: bindings scope over the
// statements after them, expression statements chain with Seq, and a Nop
// tail appears only when the block ends in a binding.
func desugarBlock(stmts []ast.Expr) core.Expr {
	result := core.Expr(&core.Nop{})
	for i := len(stmts) - 1; i >= 0; i-- {
		switch s := stmts[i].(type) {
		case *ast.Let:
			result = &core.Let{Name: s.Name, Value: Desugar(s.Value), Body: result}
		case *ast.FuncDecl:
			result = &core.Let{
				Name:  s.Name,
				Value: &core.Lambda{Param: s.Param, Body: Desugar(s.Body)},
				Body:  result,
			}
		default:
			ir := Desugar(stmts[i])
			if _, isNop := result.(*core.Nop); isNop {
				result = ir
			} else {
				result = &core.Seq{First: ir, Second: result}
			}
		}
	}
	return result
}
