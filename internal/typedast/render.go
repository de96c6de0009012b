package typedast

import (
	"fmt"
	"strings"
)

// Render produces a deterministic ASCII tree dump of a typed expression,
// one node per branch with its inferred type. Used by the CLI's run
// command, the REPL's :dump-typed output, and golden tests.
func Render(node Node) string {
	var b strings.Builder
	render(&b, node, "")
	return b.String()
}

func render(b *strings.Builder, node Node, prefix string) {
	switch n := node.(type) {
	case *Nop:
		fmt.Fprintf(b, "%s+-nop : %s\n", prefix, n.Typ)
	case *Lit:
		fmt.Fprintf(b, "%s+-%s : %s\n", prefix, n, n.Typ)
	case *Var:
		fmt.Fprintf(b, "%s+-id `%s` : %s\n", prefix, n.Name, n.Typ)
	case *App:
		fmt.Fprintf(b, "%s+-app : %s\n", prefix, n.Typ)
		fmt.Fprintf(b, "%s  |  |\n", prefix)
		render(b, n.Func, prefix+"  |  ")
		fmt.Fprintf(b, "%s  |\n", prefix)
		render(b, n.Arg, prefix+"  ")
	case *Lambda:
		fmt.Fprintf(b, "%s+-lambda %s : %s\n", prefix, n.Param, n.Typ)
		fmt.Fprintf(b, "%s  |\n", prefix)
		render(b, n.Body, prefix+"  ")
	case *Let:
		fmt.Fprintf(b, "%s+-let %s : %s\n", prefix, n.Name, n.Typ)
		fmt.Fprintf(b, "%s  |  |\n", prefix)
		render(b, n.Value, prefix+"  |  ")
		fmt.Fprintf(b, "%s  |\n", prefix)
		render(b, n.Body, prefix+"  ")
	case *BinOp:
		fmt.Fprintf(b, "%s+-%s : %s\n", prefix, n.Op, n.Type())
		fmt.Fprintf(b, "%s  |  |\n", prefix)
		render(b, n.Left, prefix+"  |  ")
		fmt.Fprintf(b, "%s  |\n", prefix)
		render(b, n.Right, prefix+"  ")
	case *Seq:
		fmt.Fprintf(b, "%s+-seq : %s\n", prefix, n.Type())
		fmt.Fprintf(b, "%s  |  |\n", prefix)
		render(b, n.First, prefix+"  |  ")
		fmt.Fprintf(b, "%s  |\n", prefix)
		render(b, n.Second, prefix+"  ")
	}
}
