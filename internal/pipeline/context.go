package pipeline

import (
	"github.com/google/uuid"

	"github.com/funvibe/faber/internal/ast"
	"github.com/funvibe/faber/internal/diagnostics"
	"github.com/funvibe/faber/internal/modules"
	"github.com/funvibe/faber/internal/symbols"
)

// Context carries one translation unit's state through the pipeline. RunID
// is a uuid so the CLI driver can correlate diagnostics from a batch compile
// spanning several Contexts (section 1.2's domain-stack wiring for
// github.com/google/uuid).
type Context struct {
	RunID    uuid.UUID
	FilePath string
	Source   string

	Program     *ast.Program
	SymbolTable *symbols.Scope
	TypeMap     map[ast.Expression]interface{} // populated when a consumer wants a node->type side table

	ModuleCtx *modules.Context

	Target       string // selected codegen target, e.g. "cpp"
	Output       string
	Headers      []string

	Diagnostics []*diagnostics.Diagnostic
}

// NewContext creates a fresh Context for compiling the given file.
func NewContext(filePath, source string) *Context {
	return &Context{
		RunID:    uuid.New(),
		FilePath: filePath,
		Source:   source,
	}
}

// AddDiagnostics appends diagnostics without deduplication; stages are
// expected to already have deduplicated within their own scope (section
// 4.2.6).
func (c *Context) AddDiagnostics(ds ...*diagnostics.Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, ds...)
}

// HasErrors reports whether any accumulated diagnostic is an error (as
// opposed to a warning).
func (c *Context) HasErrors() bool {
	for _, d := range c.Diagnostics {
		if d.Severity == diagnostics.SeverityError {
			return true
		}
	}
	return false
}
