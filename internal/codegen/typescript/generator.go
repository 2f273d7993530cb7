// Package typescript implements the TypeScript backend of section 4.3's
// code generator dispatch.
package typescript

import (
	"strconv"
	"strings"

	"github.com/funvibe/faber/internal/ast"
	"github.com/funvibe/faber/internal/codegen"
	"github.com/funvibe/faber/internal/codegen/shared"
	"github.com/funvibe/faber/internal/diagnostics"
	"github.com/funvibe/faber/internal/semtype"
)

func init() {
	codegen.Register(codegen.TypeScript, func() codegen.Generator { return New() })
}

// Generator emits TypeScript source text from an annotated Faber program.
type Generator struct {
	w       *shared.Writer
	headers *shared.HeaderSet
	diags   []*diagnostics.Diagnostic
}

func New() *Generator {
	return &Generator{w: shared.NewWriter("  "), headers: shared.NewHeaderSet()}
}

func (g *Generator) Name() string { return "typescript" }

// stdlibCalls maps a faber/std-bound identifier to its runtime helper import
// (section 4.3.3).
var stdlibCalls = map[string]struct{ module, call string }{
	"radix":     {"", "Math.sqrt"},
	"potentia":  {"", "Math.pow"},
	"absolutum": {"", "Math.abs"},
	"iunge":     {"faber-std/text", "joinText"},
	"divide":    {"faber-std/text", "splitText"},
	"maiuscula": {"faber-std/text", "toUpper"},
	"nunc":      {"faber-std/time", "now"},
	"dormi":     {"faber-std/time", "sleep"},
	"lege":      {"faber-std/io", "readLine"},
	"legeOmnia": {"faber-std/io", "readAll"},
}

func (g *Generator) Generate(p *ast.Program) (string, []string, []*diagnostics.Diagnostic) {
	body := New()
	for _, stmt := range p.Statements {
		body.emitTopLevel(stmt)
	}
	imports := body.headers.SortedAlpha()
	out := shared.NewWriter("  ")
	for _, mod := range imports {
		out.Line("import * as " + sanitizeModule(mod) + " from '" + mod + "';")
	}
	if len(imports) > 0 {
		out.Blank()
	}
	out.Raw(body.w.String())
	return out.String(), imports, body.diags
}

func sanitizeModule(mod string) string {
	return strings.NewReplacer("/", "_", "-", "_").Replace(mod)
}

func (g *Generator) unsupported(construct string, node ast.Node) {
	shared.Unsupported(g.w, &g.diags, "//", g.Name(), construct, node.GetPosition())
}

func (g *Generator) emitTopLevel(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ImportStatement, *ast.DestructureImportStatement, *ast.DirectiveStatement:
	case *ast.FunctionStatement:
		g.emitFunction(s)
	case *ast.VariableStatement:
		g.emitVariable(s)
	case *ast.StructStatement:
		g.emitClass(s)
	case *ast.InterfaceStatement:
		g.emitInterface(s)
	case *ast.UnionStatement:
		g.emitUnion(s)
	case *ast.EnumStatement:
		g.emitEnum(s)
	case *ast.TypeAliasStatement:
		g.w.Line("type " + s.Name + " = " + tsType(s.Target) + ";")
	case *ast.ProgramEntryStatement:
		g.emitMain(s)
	case *ast.SuiteStatement:
		g.emitSuite(s)
	default:
		g.emitStmt(stmt)
	}
}

func (g *Generator) emitMain(s *ast.ProgramEntryStatement) {
	prefix := "function main()"
	if s.IsAsync {
		prefix = "async function main()"
	}
	g.w.Line(prefix + " {")
	g.w.In()
	g.emitBlockStatements(s.Body)
	g.w.Out()
	g.w.Line("}")
	g.w.Line("main();")
}

func (g *Generator) emitVariable(v *ast.VariableStatement) {
	kw := "const"
	if v.Kind.IsMutable() {
		kw = "let"
	}
	typ := ""
	if v.TypeAnnotation != nil {
		typ = ": " + tsType(v.TypeAnnotation)
	}
	line := kw + " " + v.Name + typ
	if v.Value != nil {
		line += " = " + g.emitExpr(v.Value)
	}
	g.w.Line(line + ";")
}

func (g *Generator) emitFunction(f *ast.FunctionStatement) {
	ret := ""
	if f.ReturnType != nil {
		ret = ": " + tsType(f.ReturnType)
		if f.IsAsync {
			ret = ": Promise<" + tsType(f.ReturnType) + ">"
		}
	}
	prefix := "function"
	if f.IsAsync {
		prefix = "async function"
	}
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = g.tsParam(p)
	}
	g.w.Line("export " + prefix + " " + f.Name + "(" + strings.Join(params, ", ") + ")" + ret + " {")
	g.w.In()
	if f.Body != nil {
		g.emitBlockStatements(f.Body)
	}
	g.w.Out()
	g.w.Line("}")
}

func (g *Generator) tsParam(p ast.Parameter) string {
	typ := "any"
	if p.Type != nil {
		typ = tsType(p.Type)
	}
	opt := ""
	if p.Default != nil {
		opt = "?"
	}
	variadic := ""
	if p.IsVariadic {
		variadic = "..."
		typ += "[]"
	}
	return variadic + p.Name + opt + ": " + typ
}

func (g *Generator) emitClass(s *ast.StructStatement) {
	impl := ""
	if len(s.Implements) > 0 {
		impl = " implements " + strings.Join(s.Implements, ", ")
	}
	g.w.Line("export class " + s.Name + impl + " {")
	g.w.In()
	for _, f := range s.Fields {
		g.w.Line(f.Name + ": " + tsType(f.Type) + ";")
	}
	for _, f := range s.StaticFields {
		g.w.Line("static " + f.Name + ": " + tsType(f.Type) + ";")
	}
	for _, m := range s.Methods {
		g.emitMethod(m, false)
	}
	for _, m := range s.StaticMethods {
		g.emitMethod(m, true)
	}
	g.w.Out()
	g.w.Line("}")
}

func (g *Generator) emitMethod(m *ast.FunctionStatement, static bool) {
	ret := ""
	if m.ReturnType != nil {
		ret = ": " + tsType(m.ReturnType)
	}
	prefix := ""
	if static {
		prefix = "static "
	}
	if m.IsAsync {
		prefix += "async "
	}
	params := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		params[i] = g.tsParam(p)
	}
	g.w.Line(prefix + m.Name + "(" + strings.Join(params, ", ") + ")" + ret + " {")
	g.w.In()
	if m.Body != nil {
		g.emitBlockStatements(m.Body)
	}
	g.w.Out()
	g.w.Line("}")
}

func (g *Generator) emitInterface(s *ast.InterfaceStatement) {
	g.w.Line("export interface " + s.Name + " {")
	g.w.In()
	for _, m := range s.Methods {
		ret := "void"
		if m.ReturnType != nil {
			ret = tsType(m.ReturnType)
		}
		params := make([]string, len(m.Parameters))
		for i, p := range m.Parameters {
			params[i] = g.tsParam(p)
		}
		g.w.Line(m.Name + "(" + strings.Join(params, ", ") + "): " + ret + ";")
	}
	g.w.Out()
	g.w.Line("}")
}

func (g *Generator) emitUnion(u *ast.UnionStatement) {
	names := make([]string, len(u.Variants))
	for i, v := range u.Variants {
		tag := u.Name + "_" + v.Name
		names[i] = tag
		fields := []string{"tag: '" + v.Name + "'"}
		for _, f := range v.Fields {
			fields = append(fields, f.Name+": "+tsType(f.Type))
		}
		g.w.Line("export interface " + tag + " { " + strings.Join(fields, "; ") + " }")
	}
	g.w.Line("export type " + u.Name + " = " + strings.Join(names, " | ") + ";")
}

func (g *Generator) emitEnum(e *ast.EnumStatement) {
	g.w.Line("export enum " + e.Name + " {")
	g.w.In()
	for _, m := range e.Members {
		if m.Value != nil {
			g.w.Line(m.Name + " = " + g.emitExpr(m.Value) + ",")
		} else {
			g.w.Line(m.Name + ",")
		}
	}
	g.w.Out()
	g.w.Line("}")
}

func (g *Generator) emitSuite(s *ast.SuiteStatement) {
	g.headers.Add("faber-std/testing")
	g.w.Line("describe('" + s.Name + "', () => {")
	g.w.In()
	for _, stmt := range s.Body {
		switch b := stmt.(type) {
		case *ast.CaseStatement:
			g.w.Line("it('" + b.Name + "', () => {")
			g.w.In()
			g.emitBlockStatements(b.Body)
			g.w.Out()
			g.w.Line("});")
		case *ast.SetupTeardownStatement:
			hook := "beforeEach"
			if b.Timing == ast.TimingAfter {
				hook = "afterEach"
			}
			if b.AllCases {
				hook = "beforeAll"
				if b.Timing == ast.TimingAfter {
					hook = "afterAll"
				}
			}
			g.w.Line(hook + "(() => {")
			g.w.In()
			g.emitBlockStatements(b.Body)
			g.w.Out()
			g.w.Line("});")
		}
	}
	g.w.Out()
	g.w.Line("});")
}

func (g *Generator) emitBlockStatements(b *ast.BlockStatement) {
	if b == nil {
		return
	}
	for _, stmt := range b.Statements {
		g.emitStmt(stmt)
	}
}

func (g *Generator) emitStmt(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VariableStatement:
		g.emitVariable(s)
	case *ast.ExpressionStatement:
		g.w.Line(g.emitExpr(s.Expression) + ";")
	case *ast.BlockStatement:
		g.w.Line("{")
		g.w.In()
		g.emitBlockStatements(s)
		g.w.Out()
		g.w.Line("}")
	case *ast.IfStatement:
		g.emitIf(s)
	case *ast.WhileStatement:
		g.w.Line("while (" + g.emitExpr(s.Condition) + ") {")
		g.w.In()
		g.emitBlockStatements(s.Body)
		g.w.Out()
		g.w.Line("}")
	case *ast.IterationStatement:
		g.emitIteration(s)
	case *ast.MutationBlockStatement:
		g.emitBlockStatements(s.Body)
	case *ast.ValueSwitchStatement:
		g.emitValueSwitch(s)
	case *ast.VariantSwitchStatement:
		g.emitVariantSwitch(s)
	case *ast.GuardStatement:
		g.w.Line("if (!(" + g.emitExpr(s.Condition) + ")) {")
		g.w.In()
		g.emitBlockStatements(s.ElseBody)
		g.w.Out()
		g.w.Line("}")
	case *ast.AssertStatement:
		msg := "''"
		if s.Message != nil {
			msg = g.emitExpr(s.Message)
		}
		g.w.Line("console.assert(" + g.emitExpr(s.Condition) + ", " + msg + ");")
	case *ast.ReturnStatement:
		if s.Value != nil {
			g.w.Line("return " + g.emitExpr(s.Value) + ";")
		} else {
			g.w.Line("return;")
		}
	case *ast.BreakStatement:
		g.w.Line("break;")
	case *ast.ContinueStatement:
		g.w.Line("continue;")
	case *ast.ThrowStatement:
		g.w.Line("throw new Error(" + g.emitExpr(s.Value) + ");")
	case *ast.PrintStatement:
		g.emitPrint(s)
	case *ast.TryStatement:
		g.emitTry(s)
	case *ast.DoBlockStatement:
		g.w.Line("{")
		g.w.In()
		g.emitBlockStatements(s.Body)
		g.w.Out()
		g.w.Line("}")
	case *ast.CuraStatement:
		g.emitCura(s)
	case *ast.AdStatement:
		g.emitAd(s)
	case *ast.DirectiveStatement:
	default:
		g.unsupported("statement", stmt)
	}
}

func (g *Generator) emitIf(s *ast.IfStatement) {
	g.w.Line("if (" + g.emitExpr(s.Condition) + ") {")
	g.w.In()
	g.emitBlockStatements(s.Then)
	g.w.Out()
	for _, ei := range s.ElseIf {
		g.w.Line("} else if (" + g.emitExpr(ei.Condition) + ") {")
		g.w.In()
		g.emitBlockStatements(ei.Then)
		g.w.Out()
	}
	if s.Else != nil {
		g.w.Line("} else {")
		g.w.In()
		g.emitBlockStatements(s.Else)
		g.w.Out()
	}
	g.w.Line("}")
}

func (g *Generator) emitIteration(s *ast.IterationStatement) {
	if s.Kind == ast.IterationIn {
		g.w.Line("for (const [" + s.IndexBinding + ", " + s.Binding + "] of " + g.emitExpr(s.Collection) + ".entries()) {")
	} else {
		g.w.Line("for (const " + s.Binding + " of " + g.emitExpr(s.Collection) + ") {")
	}
	g.w.In()
	g.emitBlockStatements(s.Body)
	g.w.Out()
	g.w.Line("}")
}

func (g *Generator) emitValueSwitch(s *ast.ValueSwitchStatement) {
	g.w.Line("switch (" + g.emitExpr(s.Subject) + ") {")
	g.w.In()
	for _, c := range s.Cases {
		if c.Default {
			g.w.Line("default: {")
		} else {
			for _, v := range c.Values {
				g.w.Line("case " + g.emitExpr(v) + ":")
			}
			g.w.Line("{")
		}
		g.w.In()
		g.emitBlockStatements(c.Body)
		g.w.Line("break;")
		g.w.Out()
		g.w.Line("}")
	}
	g.w.Out()
	g.w.Line("}")
}

func (g *Generator) emitVariantSwitch(s *ast.VariantSwitchStatement) {
	subj := g.emitExpr(s.Subject)
	first := true
	for _, c := range s.Cases {
		kw := "if"
		if !first {
			kw = "} else if"
		}
		first = false
		if c.Pattern.Wildcard {
			g.w.Line("} else {")
		} else {
			conds := make([]string, len(c.Pattern.VariantNames))
			for i, n := range c.Pattern.VariantNames {
				conds[i] = subj + ".tag === '" + n + "'"
			}
			g.w.Line(kw + " (" + strings.Join(conds, " || ") + ") {")
		}
		g.w.In()
		for i, b := range c.Pattern.Bindings {
			if i < len(c.Pattern.VariantNames) {
				g.w.Line("const " + b + " = " + subj + "." + b + ";")
			}
		}
		g.emitBlockStatements(c.Body)
		g.w.Out()
	}
	g.w.Line("}")
}

func (g *Generator) emitPrint(s *ast.PrintStatement) {
	fn := "console.log"
	switch s.Channel {
	case ast.ChannelDebug:
		fn = "console.debug"
	case ast.ChannelWarn:
		fn = "console.warn"
	}
	g.w.Line(fn + "(" + g.emitArgs(s.Arguments) + ");")
}

func (g *Generator) emitTry(s *ast.TryStatement) {
	g.w.Line("try {")
	g.w.In()
	g.emitBlockStatements(s.Body)
	g.w.Out()
	if s.Catch != nil {
		binding := s.Catch.Binding
		if binding == "" {
			binding = "e"
		}
		g.w.Line("} catch (" + binding + ") {")
		g.w.In()
		g.emitBlockStatements(s.Catch.Body)
		g.w.Out()
	}
	if s.Finally != nil {
		g.w.Line("} finally {")
		g.w.In()
		g.emitBlockStatements(s.Finally)
		g.w.Out()
	}
	g.w.Line("}")
}

func (g *Generator) emitCura(s *ast.CuraStatement) {
	g.w.Line("{")
	g.w.In()
	g.w.Line("const " + s.Binding + " = " + g.emitExpr(s.Source) + ";")
	g.w.Line("try {")
	g.w.In()
	g.emitBlockStatements(s.Body)
	g.w.Out()
	g.w.Line("} finally {")
	g.w.In()
	g.w.Line(s.Binding + ".dispose?.();")
	g.w.Out()
	g.w.Line("}")
	g.w.Out()
	g.w.Line("}")
}

func (g *Generator) emitAd(s *ast.AdStatement) {
	call := s.Target + "(" + g.emitArgs(s.Arguments) + ")"
	switch s.Verb {
	case ast.DispatchAsync, ast.DispatchAsyncPlural:
		call = "await " + call
	}
	if s.Binding != "" {
		g.w.Line("const " + s.Binding + " = " + call + ";")
	} else {
		g.w.Line(call + ";")
	}
}

func (g *Generator) emitExpr(expr ast.Expression) string {
	if expr == nil {
		return ""
	}
	switch e := expr.(type) {
	case *ast.Identifier:
		return e.Name
	case *ast.SelfExpression:
		return "this"
	case *ast.StringLiteral:
		return strconv.Quote(e.Value)
	case *ast.NumberLiteral:
		return e.Token.Lexeme
	case *ast.BigIntLiteral:
		return e.Token.Lexeme + "n"
	case *ast.BooleanLiteral:
		if e.Value {
			return "true"
		}
		return "false"
	case *ast.NilLiteral:
		return "null"
	case *ast.TemplateStringExpression:
		var b strings.Builder
		b.WriteString("`")
		for _, p := range e.Parts {
			if lit, ok := p.(*ast.StringLiteral); ok {
				b.WriteString(lit.Value)
				continue
			}
			b.WriteString("${" + g.emitExpr(p) + "}")
		}
		b.WriteString("`")
		return b.String()
	case *ast.FormatStringExpression:
		return g.emitExpr(e.Value)
	case *ast.RegexExpression:
		return "/" + e.Pattern + "/" + e.Flags
	case *ast.ReadInputExpression:
		g.headers.Add("faber-std/io")
		return "readLine(" + g.emitExpr(e.Prompt) + ")"
	case *ast.ArrayLiteral:
		return "[" + g.emitArgs(e.Elements) + "]"
	case *ast.ObjectLiteral:
		var b strings.Builder
		b.WriteString("{ ")
		for i, f := range e.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Key + ": " + g.emitExpr(f.Value))
		}
		b.WriteString(" }")
		return b.String()
	case *ast.RangeExpression:
		hi := g.emitExpr(e.High)
		if e.Inclusive {
			hi = "(" + hi + " + 1)"
		}
		return "range(" + g.emitExpr(e.Low) + ", " + hi + ")"
	case *ast.BinaryExpression:
		return g.emitBinary(e)
	case *ast.UnaryExpression:
		op := e.Operator
		if op == "non" {
			op = "!"
		}
		return "(" + op + g.emitExpr(e.Operand) + ")"
	case *ast.ShiftExpression:
		return "(" + g.emitExpr(e.Left) + " " + e.Operator + " " + g.emitExpr(e.Right) + ")"
	case *ast.TypeCheckExpression:
		return "(" + g.emitExpr(e.Value) + " instanceof " + e.Type.Name + ")"
	case *ast.TypeCastExpression:
		return "(" + g.emitExpr(e.Value) + " as " + tsType(e.Type) + ")"
	case *ast.ConversionExpression:
		return g.emitConversion(e)
	case *ast.NativeConstructionExpression:
		return "new " + tsType(e.Type) + "(" + g.emitArgs(e.Arguments) + ")"
	case *ast.CallExpression:
		return g.emitCall(e)
	case *ast.MemberExpression:
		op := "."
		if e.OptionalChain {
			op = "?."
		}
		return g.emitExpr(e.Object) + op + e.Property
	case *ast.IndexExpression:
		return g.emitExpr(e.Object) + "[" + g.emitExpr(e.Index) + "]"
	case *ast.AssignmentExpression:
		return g.emitExpr(e.Target) + " " + e.Operator + " " + g.emitExpr(e.Value)
	case *ast.TernaryExpression:
		return "(" + g.emitExpr(e.Condition) + " ? " + g.emitExpr(e.Then) + " : " + g.emitExpr(e.Else) + ")"
	case *ast.AwaitExpression:
		return "(await " + g.emitExpr(e.Value) + ")"
	case *ast.NewExpression:
		return "new " + tsType(e.Type) + "(" + g.emitArgs(e.Arguments) + ")"
	case *ast.VariantConstructionExpression:
		var b strings.Builder
		b.WriteString("{ tag: '" + e.VariantName + "'")
		for _, f := range e.Fields {
			b.WriteString(", " + f.Key + ": " + g.emitExpr(f.Value))
		}
		b.WriteString(" }")
		return b.String()
	case *ast.LambdaExpression:
		return g.emitLambda(e)
	case *ast.CompileTimeExpression:
		return g.emitExpr(e.Body)
	case *ast.PipelineExpression:
		return g.emitPipeline(e)
	case *ast.FilterExpression:
		return g.emitExpr(e.Source) + ".filter(it => " + g.emitExpr(e.Predicate) + ")"
	case *ast.IntraExpression:
		lo := g.emitExpr(e.Range.Low)
		hi := g.emitExpr(e.Range.High)
		v := g.emitExpr(e.Value)
		op := "<"
		if e.Range.Inclusive {
			op = "<="
		}
		return "(" + v + " >= " + lo + " && " + v + " " + op + " " + hi + ")"
	case *ast.InterExpression:
		return g.emitExpr(e.Collection) + ".includes(" + g.emitExpr(e.Value) + ")"
	default:
		g.unsupported("expression", expr)
		return "undefined"
	}
}

func (g *Generator) emitArgs(args []ast.Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = g.emitExpr(a)
	}
	return strings.Join(parts, ", ")
}

func (g *Generator) emitConversion(e *ast.ConversionExpression) string {
	v := g.emitExpr(e.Value)
	switch e.Kind {
	case ast.ConvertToNumber, ast.ConvertToFloat:
		return "Number(" + v + ")"
	case ast.ConvertToString:
		return "String(" + v + ")"
	case ast.ConvertToBool:
		return "Boolean(" + v + ")"
	default:
		return v
	}
}

func (g *Generator) emitLambda(l *ast.LambdaExpression) string {
	params := make([]string, len(l.Params))
	for i, p := range l.Params {
		typ := ""
		if p.Type != nil {
			typ = ": " + tsType(p.Type)
		}
		params[i] = p.Name + typ
	}
	prefix := ""
	if l.IsAsync {
		prefix = "async "
	}
	if l.ExprBody != nil {
		return prefix + "(" + strings.Join(params, ", ") + ") => " + g.emitExpr(l.ExprBody)
	}
	var b strings.Builder
	b.WriteString(prefix + "(" + strings.Join(params, ", ") + ") => {\n")
	inner := New()
	inner.w.In()
	inner.headers = g.headers
	inner.emitBlockStatements(l.Body)
	b.WriteString(inner.w.String())
	b.WriteString("}")
	return b.String()
}

func (g *Generator) emitPipeline(e *ast.PipelineExpression) string {
	cur := g.emitExpr(e.Source)
	for _, stage := range e.Stages {
		args := g.emitArgs(stage.Arguments)
		switch stage.Operation {
		case "prima":
			cur = cur + ".slice(0, " + args + ")"
		case "ultima":
			cur = cur + ".slice(-(" + args + "))"
		case "summa":
			cur = cur + ".reduce((a, b) => a + b, 0)"
		default:
			cur = cur + "." + stage.Operation + "(" + args + ")"
		}
	}
	return cur
}

func (g *Generator) emitBinary(e *ast.BinaryExpression) string {
	l := g.emitExpr(e.Left)
	r := g.emitExpr(e.Right)
	op := e.Operator
	switch op {
	case "est":
		op = "==="
	case "??":
		return "(" + l + " ?? " + r + ")"
	}
	return "(" + l + " " + op + " " + r + ")"
}

func (g *Generator) emitCall(e *ast.CallExpression) string {
	if id, ok := e.Callee.(*ast.Identifier); ok {
		switch id.Name {
		case "longitudo":
			return g.emitExpr(e.Arguments[0]) + ".length"
		case "genusDe":
			return "typeof " + g.emitExpr(e.Arguments[0])
		case "praedefinitum":
			return "undefined"
		}
		if entry, ok := stdlibCalls[id.Name]; ok {
			if entry.module != "" {
				g.headers.Add(entry.module)
			}
			return entry.call + "(" + g.emitArgs(e.Arguments) + ")"
		}
	}
	call := g.emitExpr(e.Callee) + "(" + g.emitArgs(e.Arguments) + ")"
	if t, ok := e.Callee.GetResolvedType().(semtype.Function); ok && t.HasCurator {
		return call + " /* curator-injected */"
	}
	return call
}

func tsType(t *ast.TypeAnnotation) string {
	if t == nil {
		return "void"
	}
	if t.IsFunctionType() {
		params := make([]string, len(t.FunctionParams))
		for i, p := range t.FunctionParams {
			params[i] = "a" + strconv.Itoa(i) + ": " + tsType(p)
		}
		return "(" + strings.Join(params, ", ") + ") => " + tsType(t.FunctionReturn)
	}
	if len(t.Union) > 0 {
		parts := make([]string, len(t.Union))
		for i, u := range t.Union {
			parts[i] = tsType(u)
		}
		return strings.Join(parts, " | ")
	}
	base := tsTypeName(t)
	if t.ArrayShorthand {
		base += "[]"
	}
	if t.Nullable {
		base += " | null"
	}
	return base
}

func tsTypeName(t *ast.TypeAnnotation) string {
	switch t.Name {
	case "Numerus", "numerus", "Fractus", "fractus":
		return "number"
	case "Textus", "textus":
		return "string"
	case "Bivalens", "bivalens":
		return "boolean"
	case "Nihil", "nihil":
		return "void"
	case "List":
		return tsTypeParam(t, 0) + "[]"
	case "Map":
		return "Map<" + tsTypeParam(t, 0) + ", " + tsTypeParam(t, 1) + ">"
	case "Set":
		return "Set<" + tsTypeParam(t, 0) + ">"
	case "Promise":
		return "Promise<" + tsTypeParam(t, 0) + ">"
	case "Iterator", "Stream":
		return "Iterable<" + tsTypeParam(t, 0) + ">"
	default:
		return t.Name
	}
}

func tsTypeParam(t *ast.TypeAnnotation, idx int) string {
	if idx < len(t.TypeParameters) && t.TypeParameters[idx].Type != nil {
		return tsType(t.TypeParameters[idx].Type)
	}
	return "any"
}
