package codegen

import (
	"github.com/funvibe/faber/internal/diagnostics"
	"github.com/funvibe/faber/internal/pipeline"
	"github.com/funvibe/faber/internal/token"
)

// Processor is the code-generation stage of the compile pipeline. It reads
// ctx.Target (a string, so the CLI driver can set it without importing this
// package's Target enum into pkg/cli) and, when it names a registered
// backend, fills ctx.Output and ctx.Headers.
//
// Unlike the parse/analyze stages it does not run unconditionally: emitting
// source for a program the analyzer already flagged as broken produces
// noise no target can use, so a prior error diagnostic short-circuits
// generation while leaving every diagnostic collected so far intact.
type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.Program == nil || ctx.Target == "" || ctx.HasErrors() {
		return ctx
	}
	target, ok := ParseTarget(ctx.Target)
	if !ok {
		ctx.AddDiagnostics(diagnostics.New(diagnostics.ErrUnsupportedConstruct, token.Position{}, ctx.Target, "unknown target"))
		return ctx
	}
	source, headers, diags, err := Default().Generate(target, ctx.Program)
	if err != nil {
		ctx.AddDiagnostics(diagnostics.New(diagnostics.ErrUnsupportedConstruct, token.Position{}, ctx.Target, err.Error()))
		return ctx
	}
	ctx.Output = source
	ctx.Headers = headers
	ctx.AddDiagnostics(diags...)
	return ctx
}
