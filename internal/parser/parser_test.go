package parser

import (
	"testing"

	"github.com/funvibe/faber/internal/ast"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, diags := ParseProgram("test.fab", src)
	require.Empty(t, diags, "unexpected diagnostics: %v", diags)
	return prog
}

func TestParseVariableStatement(t *testing.T) {
	prog := parseOK(t, `fixum x: Numerus = 1`)
	require.Len(t, prog.Statements, 1)
	v, ok := prog.Statements[0].(*ast.VariableStatement)
	require.True(t, ok)
	require.Equal(t, "x", v.Name)
	require.Equal(t, ast.BindingImmutable, v.Kind)
	require.NotNil(t, v.TypeAnnotation)
	require.Equal(t, "Numerus", v.TypeAnnotation.Name)
	num, ok := v.Value.(*ast.NumberLiteral)
	require.True(t, ok)
	require.Equal(t, int64(1), num.IntValue)
}

func TestParseFunctionStatement(t *testing.T) {
	prog := parseOK(t, `functio adde(a: Numerus, b: Numerus) -> Numerus { redde a + b }`)
	require.Len(t, prog.Statements, 1)
	f, ok := prog.Statements[0].(*ast.FunctionStatement)
	require.True(t, ok)
	require.Equal(t, "adde", f.Name)
	require.Len(t, f.Parameters, 2)
	require.Equal(t, "Numerus", f.ReturnType.Name)
	require.Len(t, f.Body.Statements, 1)
	ret, ok := f.Body.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)
	bin, ok := ret.Value.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "+", bin.Operator)
}

func TestParseBinaryPrecedence(t *testing.T) {
	prog := parseOK(t, `fixum x = 1 + 2 * 3`)
	v := prog.Statements[0].(*ast.VariableStatement)
	bin, ok := v.Value.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "+", bin.Operator)
	right, ok := bin.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "*", right.Operator)
}

func TestParseCastBindsTighterThanAdditive(t *testing.T) {
	prog := parseOK(t, `fixum x = a qua Numerus + 1`)
	v := prog.Statements[0].(*ast.VariableStatement)
	bin, ok := v.Value.(*ast.BinaryExpression)
	require.True(t, ok, "expected top-level binary +")
	require.Equal(t, "+", bin.Operator)
	_, ok = bin.Left.(*ast.TypeCastExpression)
	require.True(t, ok, "expected cast to bind tighter than +")
}

func TestParseIfStatementWithElseIfAndElse(t *testing.T) {
	prog := parseOK(t, `si a { scribe 1 } sin b { scribe 2 } secus { scribe 3 }`)
	stmt, ok := prog.Statements[0].(*ast.IfStatement)
	require.True(t, ok)
	require.Len(t, stmt.ElseIf, 1)
	require.NotNil(t, stmt.Else)
}

func TestParseWhileStatement(t *testing.T) {
	prog := parseOK(t, `dum a < 10 { perge }`)
	stmt, ok := prog.Statements[0].(*ast.WhileStatement)
	require.True(t, ok)
	require.NotNil(t, stmt.Condition)
	require.Len(t, stmt.Body.Statements, 1)
	_, ok = stmt.Body.Statements[0].(*ast.ContinueStatement)
	require.True(t, ok)
}

func TestParseIterationStatement(t *testing.T) {
	prog := parseOK(t, `ex item in collectio { scribe item }`)
	it, ok := prog.Statements[0].(*ast.IterationStatement)
	require.True(t, ok)
	require.Equal(t, ast.IterationEx, it.Kind)
	require.Equal(t, "item", it.Binding)
}

func TestParseIndexedIterationStatement(t *testing.T) {
	prog := parseOK(t, `ex idx, item in collectio { scribe item }`)
	it, ok := prog.Statements[0].(*ast.IterationStatement)
	require.True(t, ok)
	require.Equal(t, ast.IterationIn, it.Kind)
	require.Equal(t, "idx", it.IndexBinding)
	require.Equal(t, "item", it.Binding)
}

func TestParseStructStatement(t *testing.T) {
	prog := parseOK(t, `genus Punctum: Pingendum {
		x: Numerus,
		y: Numerus,
		functio magnitudo() -> Numerus {
			redde x
		}
	}`)
	s, ok := prog.Statements[0].(*ast.StructStatement)
	require.True(t, ok)
	require.Equal(t, "Punctum", s.Name)
	require.Equal(t, []string{"Pingendum"}, s.Implements)
	require.Len(t, s.Fields, 2)
	require.Len(t, s.Methods, 1)
}

func TestParseUnionStatement(t *testing.T) {
	prog := parseOK(t, `discretio Eventus {
		Successus(valor: Numerus),
		Casus(nuntius: Litterae)
	}`)
	u, ok := prog.Statements[0].(*ast.UnionStatement)
	require.True(t, ok)
	require.Len(t, u.Variants, 2)
	require.Equal(t, "Successus", u.Variants[0].Name)
	require.Len(t, u.Variants[0].Fields, 1)
}

func TestParseVariantSwitchStatement(t *testing.T) {
	prog := parseOK(t, `discerne e {
		casu Successus(valor): { scribe valor }
		casu Casus(nuntius): { mone nuntius }
	}`)
	s, ok := prog.Statements[0].(*ast.VariantSwitchStatement)
	require.True(t, ok)
	require.Len(t, s.Cases, 2)
	require.Equal(t, []string{"Successus"}, s.Cases[0].Pattern.VariantNames)
	require.Equal(t, []string{"valor"}, s.Cases[0].Pattern.Bindings)
}

func TestParseValueSwitchStatement(t *testing.T) {
	prog := parseOK(t, `elige x {
		casu 1: { scribe "uno" }
		ceterum: { scribe "alia" }
	}`)
	s, ok := prog.Statements[0].(*ast.ValueSwitchStatement)
	require.True(t, ok)
	require.Len(t, s.Cases, 2)
	require.True(t, s.Cases[1].Default)
}

func TestParseLambdaExpression(t *testing.T) {
	prog := parseOK(t, `fixum f = (a: Numerus, b: Numerus) -> Numerus => a + b`)
	v := prog.Statements[0].(*ast.VariableStatement)
	l, ok := v.Value.(*ast.LambdaExpression)
	require.True(t, ok)
	require.Len(t, l.Params, 2)
	require.NotNil(t, l.ExprBody)
	require.Nil(t, l.Body)
}

func TestParseGroupedExpressionIsNotLambda(t *testing.T) {
	prog := parseOK(t, `fixum x = (1 + 2) * 3`)
	v := prog.Statements[0].(*ast.VariableStatement)
	bin, ok := v.Value.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "*", bin.Operator)
}

func TestParseMemberAndCallExpression(t *testing.T) {
	prog := parseOK(t, `fixum x = a.b.c(1, 2)`)
	v := prog.Statements[0].(*ast.VariableStatement)
	call, ok := v.Value.(*ast.CallExpression)
	require.True(t, ok)
	require.Len(t, call.Arguments, 2)
	member, ok := call.Callee.(*ast.MemberExpression)
	require.True(t, ok)
	require.Equal(t, "c", member.Property)
}

func TestParseTernaryExpression(t *testing.T) {
	prog := parseOK(t, `fixum x = a ? 1 : 2`)
	v := prog.Statements[0].(*ast.VariableStatement)
	tern, ok := v.Value.(*ast.TernaryExpression)
	require.True(t, ok)
	require.NotNil(t, tern.Condition)
	require.NotNil(t, tern.Then)
	require.NotNil(t, tern.Else)
}

func TestParseRangeExpression(t *testing.T) {
	prog := parseOK(t, `fixum x = 1..=10`)
	v := prog.Statements[0].(*ast.VariableStatement)
	r, ok := v.Value.(*ast.RangeExpression)
	require.True(t, ok)
	require.True(t, r.Inclusive)
}

func TestParseImportWithSymbols(t *testing.T) {
	prog := parseOK(t, `import (alpha, beta) "./util"`)
	imp, ok := prog.Statements[0].(*ast.ImportStatement)
	require.True(t, ok)
	require.Equal(t, "./util", imp.Path)
	require.Equal(t, []string{"alpha", "beta"}, imp.Symbols)
}

func TestParseAdStatement(t *testing.T) {
	prog := parseOK(t, `ad laborator(1, 2) => rursus`)
	a, ok := prog.Statements[0].(*ast.AdStatement)
	require.True(t, ok)
	require.Equal(t, "laborator", a.Target)
	require.Equal(t, "rursus", a.Binding)
	require.Len(t, a.Arguments, 2)
}

func TestParseProgramEntryStatement(t *testing.T) {
	prog := parseOK(t, `principium { scribe "hello" }`)
	pe, ok := prog.Statements[0].(*ast.ProgramEntryStatement)
	require.True(t, ok)
	require.False(t, pe.IsAsync)
	require.Len(t, pe.Body.Statements, 1)
}

func TestParseSyntaxErrorRecovers(t *testing.T) {
	_, diags := ParseProgram("test.fab", `fixum x = `)
	require.NotEmpty(t, diags)
}
