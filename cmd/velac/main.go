// Command velac drives the semantic analysis pass (components C6-C9) over
// the canned programs in internal/fixtures, since this repository has no
// lexer or parser of its own (spec §1 treats both as external
// collaborators feeding the pass an *ast.Program).
//
// Grounded on cmd/funxy/main.go's own shape: flag-free os.Args dispatch,
// a panic-recovery wrapper around main, os.Exit(1) on failure, and
// isatty-gated color on stdout (funxy's internal/evaluator/builtins_term.go
// checks the same pair of isatty predicates before deciding to colorize).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/vela-lang/vela/internal/builtins"
	"github.com/vela-lang/vela/internal/checker"
	"github.com/vela-lang/vela/internal/diagnostics"
	"github.com/vela-lang/vela/internal/fixtures"
	"github.com/vela-lang/vela/internal/pipeline"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "velac: internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "check":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: velac check <program>")
			os.Exit(1)
		}
		if !runCheck(os.Args[2], os.Stdout) {
			os.Exit(1)
		}
	case "list":
		listPrograms(os.Stdout)
	case "serve":
		serve(os.Stdin, os.Stdout)
	case "-help", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "velac: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: velac <command> [args]")
	fmt.Fprintln(os.Stderr, "  check <program>   run the checker over a named fixture program")
	fmt.Fprintln(os.Stderr, "  list              list every registered fixture program")
	fmt.Fprintln(os.Stderr, "  serve             read newline-delimited YAML check requests from stdin")
}

func colorize() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func listPrograms(w io.Writer) {
	names := make([]string, 0, len(fixtures.Registry))
	for name := range fixtures.Registry {
		names = append(names, name)
	}
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}

// checkResult is one stage's outcome, reused by both `check` and `serve`.
type checkResult struct {
	Program string
	Diag    *diagnostics.Error
}

func runPipeline(programName string) *checkResult {
	ctx := &pipeline.Context{
		RunID:       uuid.NewString(),
		ProgramName: programName,
	}

	p := pipeline.New(
		pipeline.Func{StageName: "load-program", Fn: stageLoadProgram},
		pipeline.Func{StageName: "check", Fn: stageCheck},
	)
	ctx = p.Run(ctx)

	res := &checkResult{Program: programName}
	if ctx.Err != nil {
		res.Diag = &diagnostics.Error{Message: ctx.Err.Error()}
		return res
	}
	return res
}

func stageLoadProgram(ctx *pipeline.Context) *pipeline.Context {
	build, ok := fixtures.Registry[ctx.ProgramName]
	if !ok {
		ctx.Err = fmt.Errorf("no such program %q", ctx.ProgramName)
		return ctx
	}
	ctx.Program = build()
	return ctx
}

func stageCheck(ctx *pipeline.Context) *pipeline.Context {
	if ctx.Program == nil {
		return ctx
	}
	catalog, err := builtins.Default()
	if err != nil {
		ctx.Err = fmt.Errorf("loading catalog: %w", err)
		return ctx
	}
	checked, diag := checker.Run(ctx.Program, catalog)
	if diag != nil {
		ctx.Err = diag
		return ctx
	}
	ctx.Checked = checked
	return ctx
}

// runCheck runs one named program through the checker and prints a
// pass/fail line, colorized when stdout is a terminal.
func runCheck(name string, w io.Writer) bool {
	res := runPipeline(name)

	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()
	if !colorize() {
		color.NoColor = true
	}

	if res.Diag != nil {
		fmt.Fprintf(w, "%s %s: %s\n", bad("FAIL"), name, res.Diag.Error())
		return false
	}
	fmt.Fprintf(w, "%s %s\n", ok("PASS"), name)
	return true
}

// serveRequest/serveResponse are one newline-delimited YAML document each,
// read from and written to serve's stdin/stdout — the same envelope shape
// a language-server-style long-running process would use, without this
// repository's lsp subsystem (which depends on the parser/evaluator this
// pass never grew).
type serveRequest struct {
	Program string `yaml:"program"`
}

type serveResponse struct {
	RunID   string `yaml:"run_id"`
	Program string `yaml:"program"`
	OK      bool   `yaml:"ok"`
	Error   string `yaml:"error,omitempty"`
}

func serve(r io.Reader, w io.Writer) {
	dec := yaml.NewDecoder(bufio.NewReader(r))
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	for {
		var req serveRequest
		if err := dec.Decode(&req); err != nil {
			return
		}
		res := runPipeline(req.Program)
		resp := serveResponse{
			RunID:   uuid.NewString(),
			Program: res.Program,
			OK:      res.Diag == nil,
		}
		if res.Diag != nil {
			resp.Error = res.Diag.Error()
		}
		if err := enc.Encode(resp); err != nil {
			return
		}
	}
}
