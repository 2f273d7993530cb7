// Package pipeline threads a single compilation through its four phases —
// tokenize, parse, analyze, generate — as a sequence of Processor stages
// sharing one Context, mirroring the teacher's
// internal/pipeline/pipeline.go.
package pipeline

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline is an ordered sequence of Processors.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from the given stages, run in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, always continuing even after a stage
// reports diagnostics — batch compilation wants every diagnostic a run can
// produce, not just the first.
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
	}
	return ctx
}
