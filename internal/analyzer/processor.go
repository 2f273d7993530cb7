package analyzer

import (
	"github.com/funvibe/faber/internal/modules"
	"github.com/funvibe/faber/internal/pipeline"
)

// Processor is the semantic-analysis stage of the compile pipeline. It
// needs a *modules.Context for import resolution (section 4.4); the CLI
// driver builds one per batch compile and shares it across every file's
// Processor so cross-file module caching actually caches something.
type Processor struct {
	ModuleCtx *modules.Context
}

func (p Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.Program == nil {
		return ctx
	}
	moduleCtx := p.ModuleCtx
	if moduleCtx == nil {
		moduleCtx = ctx.ModuleCtx
	}
	prog, scope, diags := Analyze(ctx.Program, moduleCtx)
	ctx.Program = prog
	ctx.SymbolTable = scope
	ctx.ModuleCtx = moduleCtx
	ctx.AddDiagnostics(diags...)
	return ctx
}
