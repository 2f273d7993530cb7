package testutil

import (
	"github.com/funvibe/faber/internal/analyzer"
	"github.com/funvibe/faber/internal/ast"
	"github.com/funvibe/faber/internal/diagnostics"
	"github.com/funvibe/faber/internal/parser"
)

// Analyze parses and semantically analyzes source as a single, import-free
// translation unit, the shape every per-target codegen golden fixture
// needs: an annotated *ast.Program ready for a Generator.Generate call.
func Analyze(source string) (*ast.Program, []*diagnostics.Diagnostic) {
	prog, diags := parser.ParseProgram("fixture.fab", source)
	prog, _, semDiags := analyzer.Analyze(prog, nil)
	return prog, append(diags, semDiags...)
}
