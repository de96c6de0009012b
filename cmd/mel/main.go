package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/sunholo/mel/internal/elaborate"
	"github.com/sunholo/mel/internal/env"
	melerrors "github.com/sunholo/mel/internal/errors"
	"github.com/sunholo/mel/internal/infer"
	"github.com/sunholo/mel/internal/lexer"
	"github.com/sunholo/mel/internal/parser"
	"github.com/sunholo/mel/internal/repl"
	"github.com/sunholo/mel/internal/typedast"
	"github.com/sunholo/mel/internal/types"
)

var (
	// Version info - set by ldflags during build
	Version = "dev"

	// Color output
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "Print version information")
		helpFlag    = flag.Bool("help", false, "Show help")
		envFlag     = flag.String("env", "", "YAML environment file (defaults to the prelude)")
		jsonFlag    = flag.Bool("json", false, "Report errors as JSON")
	)

	flag.Parse()

	if *versionFlag {
		printVersion()
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	command := flag.Arg(0)

	switch command {
	case "check":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("Error"))
			fmt.Println("Usage: mel check <file.mel>")
			os.Exit(1)
		}
		checkFile(flag.Arg(1), *envFlag, *jsonFlag, false)

	case "run":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("Error"))
			fmt.Println("Usage: mel run <file.mel>")
			os.Exit(1)
		}
		checkFile(flag.Arg(1), *envFlag, *jsonFlag, true)

	case "repl":
		r := repl.New(Version)
		if *envFlag != "" {
			environment, err := env.Load(*envFlag, types.DefaultSupply())
			if err != nil {
				fail(melerrors.New(melerrors.CodeEnv, "env", err.Error()), *jsonFlag)
			}
			r.SetEnvironment(environment)
		}
		r.Start(os.Stdout)

	case "version":
		printVersion()

	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command '%s'\n", red("Error"), command)
		printHelp()
		os.Exit(1)
	}
}

// checkFile parses and type checks a file; with dumpTree it also prints
// the elaborated typed tree.
func checkFile(path, envPath string, asJSON, dumpTree bool) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}

	supply := types.DefaultSupply()
	environment := env.Prelude(supply)
	if envPath != "" {
		environment, err = env.Load(envPath, supply)
		if err != nil {
			fail(melerrors.New(melerrors.CodeEnv, "env", err.Error()), asJSON)
		}
	}

	p := parser.New(lexer.New(string(src), path))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		rep := melerrors.New(melerrors.CodeParse, "parser", errs[0].Error())
		if pe, ok := errs[0].(*parser.ParserError); ok {
			rep.Pos = &pe.Pos
		}
		fail(rep, asJSON)
	}

	expr := elaborate.Desugar(program)
	_, typed, err := infer.New(environment, infer.WithSupply(supply)).Infer(expr)
	if err != nil {
		fail(typecheckReport(err), asJSON)
	}

	fmt.Printf("%s %s : %s\n", green("✓"), path, cyan(typed.Type()))
	if dumpTree {
		fmt.Print(typedast.Render(typed))
	}
}

// typecheckReport maps a typed inference error to a structured report.
func typecheckReport(err error) *melerrors.Report {
	code := melerrors.CodeInternal
	switch err.(type) {
	case *types.UnificationError:
		code = melerrors.CodeUnification
	case *types.OccursCheckError:
		code = melerrors.CodeOccurs
	case *infer.UnboundError:
		code = melerrors.CodeUnbound
	}
	return melerrors.New(code, "typecheck", err.Error())
}

func fail(rep *melerrors.Report, asJSON bool) {
	if asJSON {
		out, err := rep.ToJSON(false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, out)
	} else {
		fmt.Fprintf(os.Stderr, "%s: %s\n", red(rep.Phase+" error"), rep.Message)
	}
	os.Exit(1)
}

func printVersion() {
	fmt.Printf("mel %s\n", bold(Version))
	fmt.Println("A tiny expression language with let-polymorphic type inference")
}

func printHelp() {
	fmt.Println(bold("mel - typed expression language"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  mel <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  check <file.mel>   Parse and type check a file")
	fmt.Println("  run <file.mel>     Check a file and print the typed tree")
	fmt.Println("  repl               Start the interactive REPL")
	fmt.Println("  version            Print version information")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
