// Package pipeline runs cmd/velac's subcommands as a small sequence of
// named stages, grounded on funxy's own internal/pipeline package — which
// sketched the same Pipeline/Processor shape for its LSP driver ("continue
// on errors to collect diagnostics from all stages") but never filled in
// Processor or PipelineContext. This rebuilds both concretely around
// component C9's Run (spec §4.8): cmd/velac runs two stages, loading a
// program and then checking it (the check stage loads the catalog itself).
package pipeline

import "github.com/vela-lang/vela/internal/ast"

// Context threads state between stages. A stage that aborts sets Err and
// leaves later stages to decide whether to still run (Run does not by
// itself short-circuit, matching the teacher's "continue on errors" note).
type Context struct {
	// RunID identifies one pipeline invocation across log lines (cmd/velac
	// stamps this from a generated UUID).
	RunID string

	CatalogPath string
	ProgramName string

	Program  *ast.Program
	Checked  *ast.Program
	Err      error
	ErrStage string
}

// Processor is one named pipeline stage.
type Processor interface {
	Name() string
	Process(ctx *Context) *Context
}

// Pipeline is an ordered list of stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order. A stage is still invoked even after an
// earlier one records an Err, since ErrStage lets cmd/velac report exactly
// which stage first failed while later stages can still contribute (e.g. a
// failed check still has a ProgramName worth logging).
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
		if ctx.Err != nil && ctx.ErrStage == "" {
			ctx.ErrStage = proc.Name()
		}
	}
	return ctx
}

// Func adapts a plain function into a Processor, the way a one-off stage
// is usually written in cmd/velac rather than as its own named type.
type Func struct {
	StageName string
	Fn        func(ctx *Context) *Context
}

func (f Func) Name() string                  { return f.StageName }
func (f Func) Process(ctx *Context) *Context { return f.Fn(ctx) }
