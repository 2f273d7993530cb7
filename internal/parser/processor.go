package parser

import "github.com/funvibe/faber/internal/pipeline"

// Processor is the parse stage of the compile pipeline (SPEC_FULL.md 1.1):
// tokenize-then-parse ctx.Source into ctx.Program, mirroring the teacher's
// own ParserProcessor (internal/parser in the pack's pipeline-style repos)
// as one Processor per internal/pipeline.Pipeline stage.
type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	prog, diags := ParseProgram(ctx.FilePath, ctx.Source)
	ctx.Program = prog
	ctx.AddDiagnostics(diags...)
	return ctx
}
