// Package python implements the Python backend of section 4.3's code
// generator dispatch.
package python

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
	codegen.Register(codegen.Python, func() codegen.Generator { return New() })
}

// Generator emits Python source text from an annotated Faber program.
type Generator struct {
	w       *shared.Writer
	headers *shared.HeaderSet
	diags   []*diagnostics.Diagnostic
}

func New() *Generator {
	return &Generator{w: shared.NewWriter("    "), headers: shared.NewHeaderSet()}
}

func (g *Generator) Name() string { return "python" }

var stdlibCalls = map[string]struct{ module, call string }{
	"radix":     {"math", "math.sqrt"},
	"potentia":  {"", "pow"},
	"absolutum": {"", "abs"},
	"iunge":     {"faber_std.text", "faber_std.text.join"},
	"divide":    {"faber_std.text", "faber_std.text.split"},
	"maiuscula": {"", "str.upper"},
	"nunc":      {"time", "time.time"},
	"dormi":     {"time", "time.sleep"},
	"lege":      {"", "input"},
	"legeOmnia": {"sys", "sys.stdin.read"},
}

func (g *Generator) Generate(p *ast.Program) (string, []string, []*diagnostics.Diagnostic) {
	body := New()
	for _, stmt := range p.Statements {
		body.emitTopLevel(stmt)
	}
	imports := body.headers.SortedAlpha()
	out := shared.NewWriter("    ")
	for _, mod := range imports {
		out.Line("import " + mod)
	}
	if len(imports) > 0 {
		out.Blank()
	}
	out.Raw(body.w.String())
	return out.String(), imports, body.diags
}

func (g *Generator) unsupported(construct string, node ast.Node) {
	shared.Unsupported(g.w, &g.diags, "#", g.Name(), construct, node.GetPosition())
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
		g.emitProtocol(s)
	case *ast.UnionStatement:
		g.emitUnion(s)
	case *ast.EnumStatement:
		g.emitEnum(s)
	case *ast.TypeAliasStatement:
		g.w.Line(s.Name + " = " + pyType(s.Target))
	case *ast.ProgramEntryStatement:
		g.emitMain(s)
	case *ast.SuiteStatement:
		g.emitSuite(s)
	default:
		g.emitStmt(stmt)
	}
}

func (g *Generator) emitMain(s *ast.ProgramEntryStatement) {
	prefix := "def main():"
	if s.IsAsync {
		g.headers.Add("asyncio")
		prefix = "async def main():"
	}
	g.w.Line(prefix)
	g.w.In()
	g.emitBlockStatements(s.Body)
	g.w.Out()
	g.w.Blank()
	if s.IsAsync {
		g.w.Line("if __name__ == '__main__':")
		g.w.In()
		g.w.Line("asyncio.run(main())")
		g.w.Out()
	} else {
		g.w.Line("if __name__ == '__main__':")
		g.w.In()
		g.w.Line("main()")
		g.w.Out()
	}
}

func (g *Generator) emitVariable(v *ast.VariableStatement) {
	line := v.Name
	if v.TypeAnnotation != nil {
		line += ": " + pyType(v.TypeAnnotation)
	}
	if v.Value != nil {
		line += " = " + g.emitExpr(v.Value)
	} else {
		line += " = None"
	}
	g.w.Line(line)
}

func (g *Generator) emitFunction(f *ast.FunctionStatement) {
	prefix := "def"
	if f.IsAsync {
		prefix = "async def"
		g.headers.Add("asyncio")
	}
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = g.pyParam(p)
	}
	ret := ""
	if f.ReturnType != nil {
		ret = " -> " + pyType(f.ReturnType)
	}
	g.w.Line(prefix + " " + f.Name + "(" + strings.Join(params, ", ") + ")" + ret + ":")
	g.w.In()
	if f.Body != nil && len(f.Body.Statements) > 0 {
		g.emitBlockStatements(f.Body)
	} else {
		g.w.Line("pass")
	}
	g.w.Out()
	g.w.Blank()
}

func (g *Generator) pyParam(p ast.Parameter) string {
	typ := ""
	if p.Type != nil {
		typ = ": " + pyType(p.Type)
	}
	def := ""
	if p.Default != nil {
		def = " = " + g.emitExpr(p.Default)
	}
	prefix := ""
	if p.IsVariadic {
		prefix = "*"
	}
	return prefix + p.Name + typ + def
}

func (g *Generator) emitClass(s *ast.StructStatement) {
	bases := "object"
	if len(s.Implements) > 0 {
		bases = strings.Join(s.Implements, ", ")
	}
	g.w.Line("class " + s.Name + "(" + bases + "):")
	g.w.In()
	initParams := []string{"self"}
	for _, f := range s.Fields {
		initParams = append(initParams, f.Name+": "+pyType(f.Type))
	}
	g.w.Line("def __init__(" + strings.Join(initParams, ", ") + "):")
	g.w.In()
	if len(s.Fields) == 0 {
		g.w.Line("pass")
	}
	for _, f := range s.Fields {
		g.w.Line("self." + f.Name + " = " + f.Name)
	}
	g.w.Out()
	g.w.Blank()
	for _, f := range s.StaticFields {
		g.w.Line(f.Name + " = None  # " + pyType(f.Type))
	}
	for _, m := range s.Methods {
		g.emitMethod(m, false)
	}
	for _, m := range s.StaticMethods {
		g.emitMethod(m, true)
	}
	g.w.Out()
	g.w.Blank()
}

func (g *Generator) emitMethod(m *ast.FunctionStatement, static bool) {
	if static {
		g.w.Line("@staticmethod")
	}
	params := []string{}
	if !static {
		params = append(params, "self")
	}
	for _, p := range m.Parameters {
		params = append(params, g.pyParam(p))
	}
	prefix := "def"
	if m.IsAsync {
		prefix = "async def"
	}
	ret := ""
	if m.ReturnType != nil {
		ret = " -> " + pyType(m.ReturnType)
	}
	g.w.Line(prefix + " " + m.Name + "(" + strings.Join(params, ", ") + ")" + ret + ":")
	g.w.In()
	if m.Body != nil && len(m.Body.Statements) > 0 {
		g.emitBlockStatements(m.Body)
	} else {
		g.w.Line("pass")
	}
	g.w.Out()
	g.w.Blank()
}

func (g *Generator) emitProtocol(s *ast.InterfaceStatement) {
	g.headers.Add("typing")
	g.w.Line("class " + s.Name + "(typing.Protocol):")
	g.w.In()
	if len(s.Methods) == 0 {
		g.w.Line("pass")
	}
	for _, m := range s.Methods {
		params := []string{"self"}
		for _, p := range m.Parameters {
			params = append(params, g.pyParam(p))
		}
		ret := ""
		if m.ReturnType != nil {
			ret = " -> " + pyType(m.ReturnType)
		}
		g.w.Line("def " + m.Name + "(" + strings.Join(params, ", ") + ")" + ret + ": ...")
	}
	g.w.Out()
	g.w.Blank()
}

func (g *Generator) emitUnion(u *ast.UnionStatement) {
	g.headers.Add("dataclasses")
	names := make([]string, len(u.Variants))
	for i, v := range u.Variants {
		tag := u.Name + "_" + v.Name
		names[i] = tag
		g.w.Line("@dataclasses.dataclass")
		g.w.Line("class " + tag + ":")
		g.w.In()
		if len(v.Fields) == 0 {
			g.w.Line("pass")
		}
		for _, f := range v.Fields {
			g.w.Line(f.Name + ": " + pyType(f.Type))
		}
		g.w.Out()
		g.w.Blank()
	}
	g.headers.Add("typing")
	g.w.Line(u.Name + " = typing.Union[" + strings.Join(names, ", ") + "]")
	g.w.Blank()
}

func (g *Generator) emitEnum(e *ast.EnumStatement) {
	g.headers.Add("enum")
	g.w.Line("class " + e.Name + "(enum.Enum):")
	g.w.In()
	for i, m := range e.Members {
		if m.Value != nil {
			g.w.Line(m.Name + " = " + g.emitExpr(m.Value))
		} else {
			g.w.Line(m.Name + " = " + strconv.Itoa(i))
		}
	}
	g.w.Out()
	g.w.Blank()
}

func (g *Generator) emitSuite(s *ast.SuiteStatement) {
	g.headers.Add("unittest")
	g.w.Line("class " + s.Name + "(unittest.TestCase):")
	g.w.In()
	for _, stmt := range s.Body {
		switch b := stmt.(type) {
		case *ast.CaseStatement:
			g.w.Line("def test_" + b.Name + "(self):")
			g.w.In()
			g.emitBlockStatements(b.Body)
			g.w.Out()
			g.w.Blank()
		case *ast.SetupTeardownStatement:
			name := "setUp"
			if b.Timing == ast.TimingAfter {
				name = "tearDown"
			}
			if b.AllCases {
				name = "setUpClass"
				if b.Timing == ast.TimingAfter {
					name = "tearDownClass"
				}
			}
			g.w.Line("def " + name + "(self):")
			g.w.In()
			g.emitBlockStatements(b.Body)
			g.w.Out()
			g.w.Blank()
		}
	}
	g.w.Out()
}

func (g *Generator) emitBlockStatements(b *ast.BlockStatement) {
	if b == nil || len(b.Statements) == 0 {
		g.w.Line("pass")
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
		g.w.Line(g.emitExpr(s.Expression))
	case *ast.BlockStatement:
		g.emitBlockStatements(s)
	case *ast.IfStatement:
		g.emitIf(s)
	case *ast.WhileStatement:
		g.w.Line("while " + g.emitExpr(s.Condition) + ":")
		g.w.In()
		g.emitBlockStatements(s.Body)
		g.w.Out()
	case *ast.IterationStatement:
		g.emitIteration(s)
	case *ast.MutationBlockStatement:
		g.emitBlockStatements(s.Body)
	case *ast.ValueSwitchStatement:
		g.emitValueSwitch(s)
	case *ast.VariantSwitchStatement:
		g.emitVariantSwitch(s)
	case *ast.GuardStatement:
		g.w.Line("if not (" + g.emitExpr(s.Condition) + "):")
		g.w.In()
		g.emitBlockStatements(s.ElseBody)
		g.w.Out()
	case *ast.AssertStatement:
		msg := ""
		if s.Message != nil {
			msg = ", " + g.emitExpr(s.Message)
		}
		g.w.Line("assert " + g.emitExpr(s.Condition) + msg)
	case *ast.ReturnStatement:
		if s.Value != nil {
			g.w.Line("return " + g.emitExpr(s.Value))
		} else {
			g.w.Line("return")
		}
	case *ast.BreakStatement:
		g.w.Line("break")
	case *ast.ContinueStatement:
		g.w.Line("continue")
	case *ast.ThrowStatement:
		g.w.Line("raise Exception(" + g.emitExpr(s.Value) + ")")
	case *ast.PrintStatement:
		g.emitPrint(s)
	case *ast.TryStatement:
		g.emitTry(s)
	case *ast.DoBlockStatement:
		g.emitBlockStatements(s.Body)
	case *ast.CuraStatement:
		g.emitCura(s)
	case *ast.AdStatement:
		g.emitAd(s)
	case *ast.DirectiveStatement:
		g.w.Line("pass")
	default:
		g.unsupported("statement", stmt)
	}
}

func (g *Generator) emitIf(s *ast.IfStatement) {
	g.w.Line("if " + g.emitExpr(s.Condition) + ":")
	g.w.In()
	g.emitBlockStatements(s.Then)
	g.w.Out()
	for _, ei := range s.ElseIf {
		g.w.Line("elif " + g.emitExpr(ei.Condition) + ":")
		g.w.In()
		g.emitBlockStatements(ei.Then)
		g.w.Out()
	}
	if s.Else != nil {
		g.w.Line("else:")
		g.w.In()
		g.emitBlockStatements(s.Else)
		g.w.Out()
	}
}

func (g *Generator) emitIteration(s *ast.IterationStatement) {
	if s.Kind == ast.IterationIn {
		g.w.Line("for " + s.IndexBinding + ", " + s.Binding + " in enumerate(" + g.emitExpr(s.Collection) + "):")
	} else {
		g.w.Line("for " + s.Binding + " in " + g.emitExpr(s.Collection) + ":")
	}
	g.w.In()
	g.emitBlockStatements(s.Body)
	g.w.Out()
}

func (g *Generator) emitValueSwitch(s *ast.ValueSwitchStatement) {
	subj := g.emitExpr(s.Subject)
	first := true
	for _, c := range s.Cases {
		kw := "if"
		if !first {
			kw = "elif"
		}
		first = false
		if c.Default {
			g.w.Line("else:")
		} else {
			vals := make([]string, len(c.Values))
			for i, v := range c.Values {
				vals[i] = subj + " == " + g.emitExpr(v)
			}
			g.w.Line(kw + " " + strings.Join(vals, " or ") + ":")
		}
		g.w.In()
		g.emitBlockStatements(c.Body)
		g.w.Out()
	}
}

func (g *Generator) emitVariantSwitch(s *ast.VariantSwitchStatement) {
	subj := g.emitExpr(s.Subject)
	first := true
	for _, c := range s.Cases {
		kw := "if"
		if !first {
			kw = "elif"
		}
		first = false
		if c.Pattern.Wildcard {
			g.w.Line("else:")
		} else {
			conds := make([]string, len(c.Pattern.VariantNames))
			for i, n := range c.Pattern.VariantNames {
				conds[i] = "isinstance(" + subj + ", " + n + ")"
			}
			g.w.Line(kw + " " + strings.Join(conds, " or ") + ":")
		}
		g.w.In()
		for _, b := range c.Pattern.Bindings {
			g.w.Line(b + " = " + subj + "." + b)
		}
		g.emitBlockStatements(c.Body)
		g.w.Out()
	}
}

func (g *Generator) emitPrint(s *ast.PrintStatement) {
	args := g.emitArgs(s.Arguments)
	switch s.Channel {
	case ast.ChannelWarn:
		g.headers.Add("sys")
		g.w.Line("print(" + args + ", file=sys.stderr)")
	case ast.ChannelDebug:
		g.w.Line("print(" + args + ")")
	default:
		g.w.Line("print(" + args + ")")
	}
}

func (g *Generator) emitTry(s *ast.TryStatement) {
	g.w.Line("try:")
	g.w.In()
	g.emitBlockStatements(s.Body)
	g.w.Out()
	if s.Catch != nil {
		binding := s.Catch.Binding
		if binding == "" {
			binding = "e"
		}
		g.w.Line("except Exception as " + binding + ":")
		g.w.In()
		g.emitBlockStatements(s.Catch.Body)
		g.w.Out()
	}
	if s.Finally != nil {
		g.w.Line("finally:")
		g.w.In()
		g.emitBlockStatements(s.Finally)
		g.w.Out()
	}
}

func (g *Generator) emitCura(s *ast.CuraStatement) {
	g.w.Line("with " + g.emitExpr(s.Source) + " as " + s.Binding + ":")
	g.w.In()
	g.emitBlockStatements(s.Body)
	g.w.Out()
}

func (g *Generator) emitAd(s *ast.AdStatement) {
	call := s.Target + "(" + g.emitArgs(s.Arguments) + ")"
	switch s.Verb {
	case ast.DispatchAsync, ast.DispatchAsyncPlural:
		call = "await " + call
	}
	if s.Binding != "" {
		g.w.Line(s.Binding + " = " + call)
	} else {
		g.w.Line(call)
	}
}

func (g *Generator) emitExpr(expr ast.Expression) string {
	if expr == nil {
		return "None"
	}
	switch e := expr.(type) {
	case *ast.Identifier:
		return e.Name
	case *ast.SelfExpression:
		return "self"
	case *ast.StringLiteral:
		return strconv.Quote(e.Value)
	case *ast.NumberLiteral:
		return e.Token.Lexeme
	case *ast.BigIntLiteral:
		return e.Token.Lexeme
	case *ast.BooleanLiteral:
		if e.Value {
			return "True"
		}
		return "False"
	case *ast.NilLiteral:
		return "None"
	case *ast.TemplateStringExpression:
		var b strings.Builder
		b.WriteString("f'")
		for _, p := range e.Parts {
			if lit, ok := p.(*ast.StringLiteral); ok {
				b.WriteString(lit.Value)
				continue
			}
			b.WriteString("{" + g.emitExpr(p) + "}")
		}
		b.WriteString("'")
		return b.String()
	case *ast.FormatStringExpression:
		return g.emitExpr(e.Value)
	case *ast.RegexExpression:
		g.headers.Add("re")
		return "re.compile(" + strconv.Quote(e.Pattern) + ")"
	case *ast.ReadInputExpression:
		return "input(" + g.emitExpr(e.Prompt) + ")"
	case *ast.ArrayLiteral:
		return "[" + g.emitArgs(e.Elements) + "]"
	case *ast.ObjectLiteral:
		var b strings.Builder
		b.WriteString("{")
		for i, f := range e.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(f.Key) + ": " + g.emitExpr(f.Value))
		}
		b.WriteString("}")
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
			return "(not " + g.emitExpr(e.Operand) + ")"
		}
		return "(" + op + g.emitExpr(e.Operand) + ")"
	case *ast.ShiftExpression:
		return "(" + g.emitExpr(e.Left) + " " + e.Operator + " " + g.emitExpr(e.Right) + ")"
	case *ast.TypeCheckExpression:
		return "isinstance(" + g.emitExpr(e.Value) + ", " + e.Type.Name + ")"
	case *ast.TypeCastExpression:
		return g.emitExpr(e.Value)
	case *ast.ConversionExpression:
		return g.emitConversion(e)
	case *ast.NativeConstructionExpression:
		return pyType(e.Type) + "(" + g.emitArgs(e.Arguments) + ")"
	case *ast.CallExpression:
		return g.emitCall(e)
	case *ast.MemberExpression:
		return g.emitExpr(e.Object) + "." + e.Property
	case *ast.IndexExpression:
		return g.emitExpr(e.Object) + "[" + g.emitExpr(e.Index) + "]"
	case *ast.AssignmentExpression:
		op := e.Operator
		if op == "" {
			op = "="
		}
		return g.emitExpr(e.Target) + " " + op + " " + g.emitExpr(e.Value)
	case *ast.TernaryExpression:
		return "(" + g.emitExpr(e.Then) + " if " + g.emitExpr(e.Condition) + " else " + g.emitExpr(e.Else) + ")"
	case *ast.AwaitExpression:
		return "(await " + g.emitExpr(e.Value) + ")"
	case *ast.NewExpression:
		return pyType(e.Type) + "(" + g.emitArgs(e.Arguments) + ")"
	case *ast.VariantConstructionExpression:
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			parts[i] = f.Key + "=" + g.emitExpr(f.Value)
		}
		name := e.VariantName
		if e.DiscretioName != "" {
			name = e.DiscretioName + "_" + e.VariantName
		}
		return name + "(" + strings.Join(parts, ", ") + ")"
	case *ast.LambdaExpression:
		return g.emitLambda(e)
	case *ast.CompileTimeExpression:
		return g.emitExpr(e.Body)
	case *ast.PipelineExpression:
		return g.emitPipeline(e)
	case *ast.FilterExpression:
		return "[it for it in " + g.emitExpr(e.Source) + " if " + g.emitExpr(e.Predicate) + "]"
	case *ast.IntraExpression:
		lo := g.emitExpr(e.Range.Low)
		hi := g.emitExpr(e.Range.High)
		op := "<"
		if e.Range.Inclusive {
			op = "<="
		}
		return "(" + lo + " <= " + g.emitExpr(e.Value) + " " + op + " " + hi + ")"
	case *ast.InterExpression:
		return "(" + g.emitExpr(e.Value) + " in " + g.emitExpr(e.Collection) + ")"
	default:
		g.unsupported("expression", expr)
		return "None"
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
	case ast.ConvertToNumber:
		return "int(" + v + ")"
	case ast.ConvertToFloat:
		return "float(" + v + ")"
	case ast.ConvertToString:
		return "str(" + v + ")"
	case ast.ConvertToBool:
		return "bool(" + v + ")"
	default:
		return v
	}
}

func (g *Generator) emitLambda(l *ast.LambdaExpression) string {
	params := make([]string, len(l.Params))
	for i, p := range l.Params {
		params[i] = p.Name
	}
	if l.ExprBody != nil {
		return "(lambda " + strings.Join(params, ", ") + ": " + g.emitExpr(l.ExprBody) + ")"
	}
	g.unsupported("block-bodied lambda (Python lambdas are expression-only)", l)
	return "(lambda " + strings.Join(params, ", ") + ": None)"
}

func (g *Generator) emitPipeline(e *ast.PipelineExpression) string {
	cur := g.emitExpr(e.Source)
	for _, stage := range e.Stages {
		args := g.emitArgs(stage.Arguments)
		switch stage.Operation {
		case "prima":
			cur = cur + "[:" + args + "]"
		case "ultima":
			cur = cur + "[-(" + args + "):]"
		case "summa":
			cur = "sum(" + cur + ")"
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
		op = "=="
	case "&&":
		op = "and"
	case "||":
		op = "or"
	case "??":
		return "(" + l + " if " + l + " is not None else " + r + ")"
	}
	return "(" + l + " " + op + " " + r + ")"
}

func (g *Generator) emitCall(e *ast.CallExpression) string {
	if id, ok := e.Callee.(*ast.Identifier); ok {
		switch id.Name {
		case "longitudo":
			return "len(" + g.emitExpr(e.Arguments[0]) + ")"
		case "genusDe":
			return "type(" + g.emitExpr(e.Arguments[0]) + ").__name__"
		case "praedefinitum":
			return "None"
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
		return call + "  # curator-injected"
	}
	return call
}

func pyType(t *ast.TypeAnnotation) string {
	if t == nil {
		return "None"
	}
	if t.IsFunctionType() {
		return "typing.Callable"
	}
	if len(t.Union) > 0 {
		parts := make([]string, len(t.Union))
		for i, u := range t.Union {
			parts[i] = pyType(u)
		}
		return "typing.Union[" + strings.Join(parts, ", ") + "]"
	}
	base := pyTypeName(t)
	if t.ArrayShorthand {
		base = "typing.List[" + base + "]"
	}
	if t.Nullable {
		base = "typing.Optional[" + base + "]"
	}
	return base
}

func pyTypeName(t *ast.TypeAnnotation) string {
	switch t.Name {
	case "Numerus", "numerus":
		return "int"
	case "Fractus", "fractus":
		return "float"
	case "Textus", "textus":
		return "str"
	case "Bivalens", "bivalens":
		return "bool"
	case "Nihil", "nihil":
		return "None"
	case "List":
		return "typing.List[" + pyTypeParam(t, 0) + "]"
	case "Map":
		return "typing.Dict[" + pyTypeParam(t, 0) + ", " + pyTypeParam(t, 1) + "]"
	case "Set":
		return "typing.Set[" + pyTypeParam(t, 0) + "]"
	case "Promise":
		return "typing.Awaitable[" + pyTypeParam(t, 0) + "]"
	case "Iterator", "Stream":
		return "typing.Iterator[" + pyTypeParam(t, 0) + "]"
	default:
		return t.Name
	}
}

func pyTypeParam(t *ast.TypeAnnotation, idx int) string {
	if idx < len(t.TypeParameters) && t.TypeParameters[idx].Type != nil {
		return pyType(t.TypeParameters[idx].Type)
	}
	return "typing.Any"
}
