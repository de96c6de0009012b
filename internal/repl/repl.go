// Package repl implements the interactive read-infer-print loop.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/sunholo/mel/internal/ast"
	"github.com/sunholo/mel/internal/elaborate"
	"github.com/sunholo/mel/internal/env"
	"github.com/sunholo/mel/internal/infer"
	"github.com/sunholo/mel/internal/lexer"
	"github.com/sunholo/mel/internal/parser"
	"github.com/sunholo/mel/internal/typedast"
	"github.com/sunholo/mel/internal/types"
)

// Color functions for pretty output
var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// Config holds REPL configuration.
type Config struct {
	ShowCore  bool
	ShowTyped bool
}

// REPL holds the session state: the environment grows as the user binds
// names, and the supply is shared with it so ids never collide.
type REPL struct {
	config  *Config
	env     types.Environment
	supply  *types.VarSupply
	version string
}

// New creates a new REPL with the prelude environment.
func New(version string) *REPL {
	supply := types.DefaultSupply()
	return &REPL{
		config:  &Config{},
		env:     env.Prelude(supply),
		supply:  supply,
		version: version,
	}
}

// SetEnvironment replaces the session environment.
func (r *REPL) SetEnvironment(environment types.Environment) {
	r.env = environment
}

// Start begins the REPL session.
func (r *REPL) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()

	historyFile := filepath.Join(os.TempDir(), ".mel_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintf(out, "%s %s\n", bold("mel"), bold(r.version))
	fmt.Fprintln(out, dim("Type :help for help, :quit to exit"))
	fmt.Fprintln(out)

	line.SetCompleter(func(input string) (c []string) {
		if strings.HasPrefix(input, ":") {
			commands := []string{":help", ":quit", ":env", ":dump-core", ":dump-typed", ":reset"}
			for _, cmd := range commands {
				if strings.HasPrefix(cmd, input) {
					c = append(c, cmd)
				}
			}
		}
		return
	})

	for {
		input, err := line.Prompt("λ> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, ":") {
			if r.runCommand(input, out) {
				break
			}
			continue
		}

		r.eval(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

// runCommand handles a :-command; it returns true when the session ends.
func (r *REPL) runCommand(input string, out io.Writer) bool {
	switch input {
	case ":quit", ":q":
		fmt.Fprintln(out, green("Goodbye!"))
		return true
	case ":help", ":h":
		fmt.Fprintln(out, bold("Commands:"))
		fmt.Fprintln(out, "  :help        Show this help")
		fmt.Fprintln(out, "  :quit        Exit the REPL")
		fmt.Fprintln(out, "  :env         Show the current environment")
		fmt.Fprintln(out, "  :dump-core   Toggle core IR output")
		fmt.Fprintln(out, "  :dump-typed  Toggle typed tree output")
		fmt.Fprintln(out, "  :reset       Reset the environment to the prelude")
	case ":env":
		for _, name := range r.env.Names() {
			fmt.Fprintf(out, "  %s : %s\n", cyan(name), r.env[name])
		}
	case ":dump-core":
		r.config.ShowCore = !r.config.ShowCore
		fmt.Fprintf(out, "core IR output %s\n", onOff(r.config.ShowCore))
	case ":dump-typed":
		r.config.ShowTyped = !r.config.ShowTyped
		fmt.Fprintf(out, "typed tree output %s\n", onOff(r.config.ShowTyped))
	case ":reset":
		r.env = env.Prelude(r.supply)
		fmt.Fprintln(out, "environment reset")
	default:
		fmt.Fprintf(out, "%s: unknown command %s\n", red("Error"), input)
	}
	return false
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// eval runs one input line through the whole pipeline and prints
// `expr : type`. A line consisting of a single `let` or `fn` statement
// extends the session environment with the binding's generalized scheme.
func (r *REPL) eval(input string, out io.Writer) {
	p := parser.New(lexer.New(input, "<repl>"))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintf(out, "%s: %v\n", red("Parse error"), err)
		}
		return
	}
	if len(program.Exprs) == 0 {
		return
	}

	expr := elaborate.Desugar(program)
	if r.config.ShowCore {
		fmt.Fprintf(out, "%s %s\n", dim("core:"), expr)
	}

	inferencer := infer.New(r.env, infer.WithSupply(r.supply))
	_, typed, err := inferencer.Infer(expr)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("Type error"), err)
		return
	}

	if r.config.ShowTyped {
		fmt.Fprint(out, dim(typedast.Render(typed)))
	}

	// A single binding extends the session: generalize its value type in
	// the empty monomorphic context and remember the scheme.
	if len(program.Exprs) == 1 {
		if bound, scheme := bindingScheme(program.Exprs[0], typed); bound != "" {
			r.env[bound] = scheme
			fmt.Fprintf(out, "%s : %s\n", cyan(bound), yellow(scheme))
			return
		}
	}

	fmt.Fprintf(out, "%s : %s\n", program, yellow(typed.Type()))
}

// bindingScheme extracts the generalized scheme of a `let` or `fn`
// statement from the elaborated typed tree.
func bindingScheme(stmt ast.Expr, typed typedast.Node) (string, *types.Scheme) {
	var name string
	switch s := stmt.(type) {
	case *ast.Let:
		name = s.Name
	case *ast.FuncDecl:
		name = s.Name
	default:
		return "", nil
	}
	let, ok := typed.(*typedast.Let)
	if !ok {
		return "", nil
	}
	return name, types.Generalize(nil, let.Value.Type())
}
