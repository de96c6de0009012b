package typedast

import "github.com/sunholo/mel/internal/types"

// ApplySubst rewrites every embedded type of the tree under sub and
// returns the node. Binders are untouched. Nodes are updated in place;
// the inferencer owns the tree exclusively.
func ApplySubst(sub types.Substitution, node Node) Node {
	switch n := node.(type) {
	case *Nop:
		n.Typ = types.ApplySubstitution(sub, n.Typ)
		return n
	case *Lit:
		n.Typ = types.ApplySubstitution(sub, n.Typ)
		return n
	case *Var:
		n.Typ = types.ApplySubstitution(sub, n.Typ)
		return n
	case *App:
		n.Func = ApplySubst(sub, n.Func)
		n.Arg = ApplySubst(sub, n.Arg)
		n.Typ = types.ApplySubstitution(sub, n.Typ)
		return n
	case *Lambda:
		n.Body = ApplySubst(sub, n.Body)
		n.Typ = types.ApplySubstitution(sub, n.Typ)
		return n
	case *Let:
		n.Value = ApplySubst(sub, n.Value)
		n.Body = ApplySubst(sub, n.Body)
		n.Typ = types.ApplySubstitution(sub, n.Typ)
		return n
	case *BinOp:
		n.Left = ApplySubst(sub, n.Left)
		n.Right = ApplySubst(sub, n.Right)
		return n
	case *Seq:
		n.First = ApplySubst(sub, n.First)
		n.Second = ApplySubst(sub, n.Second)
		return n
	}
	return node
}
