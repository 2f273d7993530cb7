package analyzer

import (
	"testing"

	"github.com/funvibe/faber/internal/ast"
	"github.com/funvibe/faber/internal/diagnostics"
	"github.com/funvibe/faber/internal/parser"
	"github.com/funvibe/faber/internal/semtype"
	"github.com/stretchr/testify/require"
)

func analyzeSource(t *testing.T, src string) (*ast.Program, []*diagnostics.Diagnostic) {
	t.Helper()
	prog, parseDiags := parser.ParseProgram("test.fab", src)
	require.Empty(t, parseDiags, "unexpected parse diagnostics: %v", parseDiags)
	_, _, diags := Analyze(prog, nil)
	return prog, diags
}

func codes(diags []*diagnostics.Diagnostic) []diagnostics.Code {
	out := make([]diagnostics.Code, len(diags))
	for i, d := range diags {
		out[i] = d.Code
	}
	return out
}

func TestAnalyzeSimpleArithmeticHasNoDiagnostics(t *testing.T) {
	_, diags := analyzeSource(t, `fixum x: Numerus = 1 + 2 * 3`)
	require.Empty(t, diags)
}

func TestAnalyzeUndefinedVariable(t *testing.T) {
	_, diags := analyzeSource(t, `fixum x = y + 1`)
	require.Contains(t, codes(diags), diagnostics.ErrUndefinedVariable)
}

func TestAnalyzeImmutableAssignment(t *testing.T) {
	_, diags := analyzeSource(t, `
		fixum x: Numerus = 1
		principium { x = 2 }
	`)
	require.Contains(t, codes(diags), diagnostics.ErrImmutableAssignment)
}

func TestAnalyzeMutableAssignmentOK(t *testing.T) {
	_, diags := analyzeSource(t, `
		varia x: Numerus = 1
		principium { x = 2 }
	`)
	require.Empty(t, diags)
}

func TestAnalyzeReturnOutsideFunction(t *testing.T) {
	_, diags := analyzeSource(t, `redde 1`)
	require.Contains(t, codes(diags), diagnostics.ErrReturnOutsideFunction)
}

func TestAnalyzeMutualRecursionForwardReference(t *testing.T) {
	_, diags := analyzeSource(t, `
		functio par(n: Numerus) -> Bivalens {
			si n == 0 { redde verum }
			redde impar(n - 1)
		}
		functio impar(n: Numerus) -> Bivalens {
			si n == 0 { redde falsum }
			redde par(n - 1)
		}
	`)
	require.Empty(t, diags)
}

func TestAnalyzeDuplicateDeclaration(t *testing.T) {
	_, diags := analyzeSource(t, `
		fixum x: Numerus = 1
		fixum x: Numerus = 2
	`)
	require.Contains(t, codes(diags), diagnostics.ErrAlreadyDefined)
}

func TestAnalyzeEmptyDiscretioRejected(t *testing.T) {
	_, diags := analyzeSource(t, `discretio Vacuum { }`)
	require.Contains(t, codes(diags), diagnostics.ErrEmptyDiscretio)
}

func TestAnalyzeBorrowedParamWithDefaultRejected(t *testing.T) {
	_, diags := analyzeSource(t, `functio f(de x: Numerus = 1) -> Numerus { redde x }`)
	require.Contains(t, codes(diags), diagnostics.ErrBorrowedWithDefault)
}

func TestAnalyzeRequiredAfterOptionalRejected(t *testing.T) {
	_, diags := analyzeSource(t, `functio f(a: Numerus = 1, b: Numerus) -> Numerus { redde a + b }`)
	require.Contains(t, codes(diags), diagnostics.ErrRequiredAfterOptional)
}

func TestAnalyzeCircularTypeAlias(t *testing.T) {
	_, diags := analyzeSource(t, `
		typus A = B
		typus B = A
	`)
	require.Contains(t, codes(diags), diagnostics.ErrCircularAlias)
}

func TestAnalyzeForwardTypeAliasChainResolves(t *testing.T) {
	_, diags := analyzeSource(t, `
		typus A = B
		typus B = Numerus
		fixum x: A = 1
	`)
	require.Empty(t, diags)
}

func TestAnalyzeAwaitOutsideAsync(t *testing.T) {
	_, diags := analyzeSource(t, `
		functio g() -> Numerus { redde 1 }
		principium { fixum v = expecta g() }
	`)
	require.Contains(t, codes(diags), diagnostics.ErrAwaitOutsideAsync)
}

func TestAnalyzeAwaitInsideAsyncOK(t *testing.T) {
	_, diags := analyzeSource(t, `
		functio g() -> Numerus { redde 1 }
		async principium { fixum v = expecta g() }
	`)
	require.Empty(t, diags)
}

func TestAnalyzeGenusFieldAndMethodAccess(t *testing.T) {
	prog, diags := analyzeSource(t, `
		genus Punctum {
			x: Numerus,
			functio magnitudo() -> Numerus { redde x }
		}
		fixum p = novum Punctum()
		fixum m = p.magnitudo()
	`)
	require.Empty(t, diags)
	v := prog.Statements[2].(*ast.VariableStatement)
	require.Equal(t, "numerus", v.Value.GetResolvedType().String())
}

func TestAnalyzeVariantSwitchBindsFields(t *testing.T) {
	_, diags := analyzeSource(t, `
		discretio Eventus {
			Successus(valor: Numerus),
			Casus(nuntius: Litterae)
		}
		functio gere(e: Eventus) -> Nihil {
			discerne e {
				casu Successus(valor): { scribe valor }
				casu Casus(nuntius): { mone nuntius }
			}
		}
	`)
	require.Empty(t, diags)
}

func TestAnalyzeTypeMismatchOnVariableInitializer(t *testing.T) {
	_, diags := analyzeSource(t, `fixum x: Litterae = 1`)
	require.Contains(t, codes(diags), diagnostics.ErrTypeMismatch)
}

func TestAnalyzeIdempotentOnAlreadyAnnotatedProgram(t *testing.T) {
	prog, diags := analyzeSource(t, `fixum x: Numerus = 1 + 2`)
	require.Empty(t, diags)
	_, _, diags2 := Analyze(prog, nil)
	require.Empty(t, diags2)
}

func TestAssignableNumericWidening(t *testing.T) {
	require.True(t, assignable(semtype.Numerus(32), semtype.Numerus(64)))
	require.False(t, assignable(semtype.Numerus(64), semtype.Numerus(32)))
}

func TestAssignableNihilToNullable(t *testing.T) {
	nullable := semtype.Primitive{Name: "textus", Nullable: true}
	require.True(t, assignable(semtype.Nihil(), nullable))
	require.False(t, assignable(semtype.Nihil(), semtype.Textus()))
}
