// Package rust implements the Rust backend of section 4.3's code generator
// dispatch, sharing the dispatch skeleton internal/codegen/cpp establishes
// but emitting ownership-aware, `match`-based Rust source text instead.
package rust

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
	codegen.Register(codegen.Rust, func() codegen.Generator { return New() })
}

// Generator emits Rust source text from an annotated Faber program.
type Generator struct {
	w       *shared.Writer
	headers *shared.HeaderSet
	diags   []*diagnostics.Diagnostic
}

// New constructs a Generator.
func New() *Generator {
	return &Generator{w: shared.NewWriter("    "), headers: shared.NewHeaderSet()}
}

func (g *Generator) Name() string { return "rust" }

// stdlibCalls maps a faber/std-bound identifier to its Rust crate path
// (section 4.3.3). faber_std is the assumed runtime support crate.
var stdlibCalls = map[string]string{
	"radix":     "f64::sqrt",
	"potentia":  "f64::powf",
	"absolutum": "i64::abs",
	"iunge":     "faber_std::text::join",
	"divide":    "faber_std::text::split",
	"maiuscula": "faber_std::text::to_upper",
	"nunc":      "faber_std::time::now",
	"dormi":     "faber_std::time::sleep",
	"lege":      "faber_std::io::read_line",
	"legeOmnia": "faber_std::io::read_all",
}

func (g *Generator) Generate(p *ast.Program) (string, []string, []*diagnostics.Diagnostic) {
	body := New()
	for _, stmt := range p.Statements {
		body.emitTopLevel(stmt)
	}
	uses := body.headers.SortedAlpha()
	out := shared.NewWriter("    ")
	for _, u := range uses {
		out.Line("use " + u + ";")
	}
	if len(uses) > 0 {
		out.Blank()
	}
	out.Raw(body.w.String())
	return out.String(), uses, body.diags
}

func (g *Generator) unsupported(construct string, pos ast.Node) {
	shared.Unsupported(g.w, &g.diags, "//", g.Name(), construct, pos.GetPosition())
}

// --- top level ---

func (g *Generator) emitTopLevel(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ImportStatement, *ast.DestructureImportStatement, *ast.DirectiveStatement:
	case *ast.FunctionStatement:
		g.emitFunction(s)
	case *ast.VariableStatement:
		g.emitVariable(s)
	case *ast.StructStatement:
		g.emitStruct(s)
	case *ast.InterfaceStatement:
		g.emitInterface(s)
	case *ast.UnionStatement:
		g.emitUnion(s)
	case *ast.EnumStatement:
		g.emitEnum(s)
	case *ast.TypeAliasStatement:
		g.w.Line("type " + s.Name + " = " + rustType(s.Target) + ";")
	case *ast.ProgramEntryStatement:
		g.emitMain(s)
	case *ast.SuiteStatement:
		g.emitSuite(s)
	default:
		g.emitStmt(stmt)
	}
}

func (g *Generator) emitMain(s *ast.ProgramEntryStatement) {
	g.w.Line("fn main() {")
	g.w.In()
	g.emitBlockStatements(s.Body)
	g.w.Out()
	g.w.Line("}")
}

func (g *Generator) emitVariable(v *ast.VariableStatement) {
	kw := "let"
	if v.Kind.IsMutable() {
		kw = "let mut"
	}
	typ := ""
	if v.TypeAnnotation != nil {
		typ = ": " + rustType(v.TypeAnnotation)
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
		ret = " -> " + rustType(f.ReturnType)
	}
	prefix := "fn"
	if f.IsAsync {
		prefix = "async fn"
	}
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = g.rustParam(p)
	}
	g.w.Line("pub " + prefix + " " + f.Name + "(" + strings.Join(params, ", ") + ")" + ret + " {")
	g.w.In()
	if f.Body != nil {
		g.emitBlockStatements(f.Body)
	}
	g.w.Out()
	g.w.Line("}")
}

func (g *Generator) rustParam(p ast.Parameter) string {
	typ := "_"
	if p.Type != nil {
		typ = rustType(p.Type)
	}
	switch p.Ownership {
	case ast.OwnershipBorrowed:
		typ = "&" + typ
	case ast.OwnershipMutableBorrow:
		typ = "&mut " + typ
	}
	return p.Name + ": " + typ
}

func (g *Generator) emitStruct(s *ast.StructStatement) {
	g.w.Line("pub struct " + s.Name + " {")
	g.w.In()
	for _, f := range s.Fields {
		g.w.Line("pub " + f.Name + ": " + rustType(f.Type) + ",")
	}
	g.w.Out()
	g.w.Line("}")
	g.w.Line("impl " + s.Name + " {")
	g.w.In()
	for _, f := range s.StaticFields {
		g.w.Line("pub const " + strings.ToUpper(f.Name) + ": " + rustType(f.Type) + " = Default::default();")
	}
	for _, m := range s.Methods {
		g.emitMethod(m)
	}
	for _, m := range s.StaticMethods {
		g.emitMethod(m)
	}
	g.w.Out()
	g.w.Line("}")
	for _, ifc := range s.Implements {
		g.w.Line("impl " + ifc + " for " + s.Name + " {}")
	}
}

func (g *Generator) emitMethod(m *ast.FunctionStatement) {
	ret := ""
	if m.ReturnType != nil {
		ret = " -> " + rustType(m.ReturnType)
	}
	params := []string{"&self"}
	for _, p := range m.Parameters {
		params = append(params, g.rustParam(p))
	}
	g.w.Line("pub fn " + m.Name + "(" + strings.Join(params, ", ") + ")" + ret + " {")
	g.w.In()
	if m.Body != nil {
		g.emitBlockStatements(m.Body)
	}
	g.w.Out()
	g.w.Line("}")
}

func (g *Generator) emitInterface(s *ast.InterfaceStatement) {
	g.w.Line("pub trait " + s.Name + " {")
	g.w.In()
	for _, m := range s.Methods {
		ret := ""
		if m.ReturnType != nil {
			ret = " -> " + rustType(m.ReturnType)
		}
		params := []string{"&self"}
		for _, p := range m.Parameters {
			params = append(params, g.rustParam(p))
		}
		g.w.Line("fn " + m.Name + "(" + strings.Join(params, ", ") + ")" + ret + ";")
	}
	g.w.Out()
	g.w.Line("}")
}

func (g *Generator) emitUnion(u *ast.UnionStatement) {
	g.w.Line("pub enum " + u.Name + " {")
	g.w.In()
	for _, v := range u.Variants {
		if len(v.Fields) == 0 {
			g.w.Line(v.Name + ",")
			continue
		}
		fields := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = f.Name + ": " + rustType(f.Type)
		}
		g.w.Line(v.Name + " { " + strings.Join(fields, ", ") + " },")
	}
	g.w.Out()
	g.w.Line("}")
}

func (g *Generator) emitEnum(e *ast.EnumStatement) {
	g.w.Line("#[derive(Debug, Clone, Copy, PartialEq, Eq)]")
	g.w.Line("pub enum " + e.Name + " {")
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
	g.w.Line("#[cfg(test)]")
	g.w.Line("mod " + s.Name + " {")
	g.w.In()
	g.w.Line("use super::*;")
	for _, stmt := range s.Body {
		switch b := stmt.(type) {
		case *ast.CaseStatement:
			g.w.Line("#[test]")
			g.w.Line("fn " + b.Name + "() {")
			g.w.In()
			g.emitBlockStatements(b.Body)
			g.w.Out()
			g.w.Line("}")
		case *ast.SetupTeardownStatement:
			tag := "setup"
			if b.Timing == ast.TimingAfter {
				tag = "teardown"
			}
			g.w.Line("fn " + tag + "() {")
			g.w.In()
			g.emitBlockStatements(b.Body)
			g.w.Out()
			g.w.Line("}")
		}
	}
	g.w.Out()
	g.w.Line("}")
}

// --- statements ---

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
		g.w.Line("while " + g.emitExpr(s.Condition) + " {")
		g.w.In()
		g.emitBlockStatements(s.Body)
		g.w.Out()
		g.w.Line("}")
	case *ast.IterationStatement:
		g.emitIteration(s)
	case *ast.MutationBlockStatement:
		g.w.Line("{ // in")
		g.w.In()
		g.emitBlockStatements(s.Body)
		g.w.Out()
		g.w.Line("}")
	case *ast.ValueSwitchStatement:
		g.emitValueSwitch(s)
	case *ast.VariantSwitchStatement:
		g.emitVariantSwitch(s)
	case *ast.GuardStatement:
		g.w.Line("if !(" + g.emitExpr(s.Condition) + ") {")
		g.w.In()
		g.emitBlockStatements(s.ElseBody)
		g.w.Out()
		g.w.Line("}")
	case *ast.AssertStatement:
		msg := ""
		if s.Message != nil {
			msg = ", " + g.emitExpr(s.Message)
		}
		g.w.Line("assert!(" + g.emitExpr(s.Condition) + msg + ");")
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
		if s.Fatal {
			g.w.Line("panic!(\"{}\", " + g.emitExpr(s.Value) + ");")
		} else {
			g.w.Line("return Err(" + g.emitExpr(s.Value) + ");")
		}
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
	g.w.Line("if " + g.emitExpr(s.Condition) + " {")
	g.w.In()
	g.emitBlockStatements(s.Then)
	g.w.Out()
	for _, ei := range s.ElseIf {
		g.w.Line("} else if " + g.emitExpr(ei.Condition) + " {")
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
		g.w.Line("for (" + s.IndexBinding + ", " + s.Binding + ") in " + g.emitExpr(s.Collection) + ".iter().enumerate() {")
		g.w.In()
		g.emitBlockStatements(s.Body)
		g.w.Out()
		g.w.Line("}")
		return
	}
	g.w.Line("for " + s.Binding + " in " + g.emitExpr(s.Collection) + ".iter() {")
	g.w.In()
	g.emitBlockStatements(s.Body)
	g.w.Out()
	g.w.Line("}")
}

func (g *Generator) emitValueSwitch(s *ast.ValueSwitchStatement) {
	g.w.Line("match " + g.emitExpr(s.Subject) + " {")
	g.w.In()
	for _, c := range s.Cases {
		if c.Default {
			g.w.Line("_ => {")
		} else {
			vals := make([]string, len(c.Values))
			for i, v := range c.Values {
				vals[i] = g.emitExpr(v)
			}
			g.w.Line(strings.Join(vals, " | ") + " => {")
		}
		g.w.In()
		g.emitBlockStatements(c.Body)
		g.w.Out()
		g.w.Line("}")
	}
	g.w.Out()
	g.w.Line("}")
}

func (g *Generator) emitVariantSwitch(s *ast.VariantSwitchStatement) {
	g.w.Line("match " + g.emitExpr(s.Subject) + " {")
	g.w.In()
	for _, c := range s.Cases {
		if c.Pattern.Wildcard {
			g.w.Line("_ => {")
		} else {
			arms := make([]string, len(c.Pattern.VariantNames))
			for i, n := range c.Pattern.VariantNames {
				arm := n
				if len(c.Pattern.Bindings) > 0 {
					arm += " { " + strings.Join(c.Pattern.Bindings, ", ") + " }"
				} else if c.Pattern.Alias != "" {
					arm = c.Pattern.Alias + " @ " + n + " { .. }"
				}
				arms[i] = arm
			}
			g.w.Line(strings.Join(arms, " | ") + " => {")
		}
		g.w.In()
		g.emitBlockStatements(c.Body)
		g.w.Out()
		g.w.Line("}")
	}
	g.w.Out()
	g.w.Line("}")
}

func (g *Generator) emitPrint(s *ast.PrintStatement) {
	macro := "println!"
	if s.Channel != ast.ChannelStdout {
		macro = "eprintln!"
	}
	fmtParts := make([]string, len(s.Arguments))
	args := make([]string, len(s.Arguments))
	for i, a := range s.Arguments {
		fmtParts[i] = "{}"
		args[i] = g.emitExpr(a)
	}
	g.w.Line(macro + "(\"" + strings.Join(fmtParts, " ") + "\", " + strings.Join(args, ", ") + ");")
}

func (g *Generator) emitTry(s *ast.TryStatement) {
	binding := "e"
	if s.Catch != nil && s.Catch.Binding != "" {
		binding = s.Catch.Binding
	}
	g.w.Line("match (|| -> Result<(), Box<dyn std::error::Error>> {")
	g.w.In()
	g.emitBlockStatements(s.Body)
	g.w.Line("Ok(())")
	g.w.Out()
	g.w.Line("})() {")
	g.w.In()
	g.w.Line("Ok(_) => {}")
	g.w.Line("Err(" + binding + ") => {")
	g.w.In()
	if s.Catch != nil {
		g.emitBlockStatements(s.Catch.Body)
	}
	g.w.Out()
	g.w.Line("}")
	g.w.Out()
	g.w.Line("}")
	if s.Finally != nil {
		g.emitBlockStatements(s.Finally)
	}
}

func (g *Generator) emitCura(s *ast.CuraStatement) {
	g.w.Line("{")
	g.w.In()
	g.w.Line("let " + s.Binding + " = " + g.emitExpr(s.Source) + "; // cura, dropped at scope exit")
	g.emitBlockStatements(s.Body)
	g.w.Out()
	g.w.Line("}")
}

func (g *Generator) emitAd(s *ast.AdStatement) {
	args := make([]string, len(s.Arguments))
	for i, a := range s.Arguments {
		args[i] = g.emitExpr(a)
	}
	call := s.Target + "(" + strings.Join(args, ", ") + ")"
	switch s.Verb {
	case ast.DispatchAsync, ast.DispatchAsyncPlural:
		call = "tokio::spawn(async move { " + call + " })"
	}
	if s.Binding != "" {
		g.w.Line("let " + s.Binding + " = " + call + ";")
	} else {
		g.w.Line(call + ";")
	}
}

// --- expressions ---

func (g *Generator) emitExpr(expr ast.Expression) string {
	if expr == nil {
		return ""
	}
	switch e := expr.(type) {
	case *ast.Identifier:
		return e.Name
	case *ast.SelfExpression:
		return "self"
	case *ast.StringLiteral:
		return strconv.Quote(e.Value) + ".to_string()"
	case *ast.NumberLiteral:
		return e.Token.Lexeme
	case *ast.BigIntLiteral:
		return e.Token.Lexeme
	case *ast.BooleanLiteral:
		if e.Value {
			return "true"
		}
		return "false"
	case *ast.NilLiteral:
		return "None"
	case *ast.TemplateStringExpression:
		var fmtStr, args strings.Builder
		for i, p := range e.Parts {
			if lit, ok := p.(*ast.StringLiteral); ok {
				fmtStr.WriteString(lit.Value)
				continue
			}
			fmtStr.WriteString("{}")
			if i > 0 {
				args.WriteString(", ")
			}
			args.WriteString(g.emitExpr(p))
		}
		return "format!(\"" + fmtStr.String() + "\", " + args.String() + ")"
	case *ast.FormatStringExpression:
		return "format!(\"" + e.Format + "\", " + g.emitExpr(e.Value) + ")"
	case *ast.RegexExpression:
		g.headers.Add("regex::Regex")
		return "Regex::new(" + strconv.Quote(e.Pattern) + ").unwrap()"
	case *ast.ReadInputExpression:
		return "faber_std::io::read_line(" + g.emitExpr(e.Prompt) + ")"
	case *ast.ArrayLiteral:
		parts := make([]string, len(e.Elements))
		for i, el := range e.Elements {
			parts[i] = g.emitExpr(el)
		}
		return "vec![" + strings.Join(parts, ", ") + "]"
	case *ast.ObjectLiteral:
		g.headers.Add("std::collections::HashMap")
		var b strings.Builder
		b.WriteString("HashMap::from([")
		for i, f := range e.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString("(" + strconv.Quote(f.Key) + ".to_string(), " + g.emitExpr(f.Value) + ")")
		}
		b.WriteString("])")
		return b.String()
	case *ast.RangeExpression:
		op := ".."
		if e.Inclusive {
			op = "..="
		}
		return g.emitExpr(e.Low) + op + g.emitExpr(e.High)
	case *ast.BinaryExpression:
		return g.emitBinary(e)
	case *ast.UnaryExpression:
		op := e.Operator
		if op == "non" || op == "!" {
			return "!(" + g.emitExpr(e.Operand) + ")"
		}
		return op + "(" + g.emitExpr(e.Operand) + ")"
	case *ast.ShiftExpression:
		return "(" + g.emitExpr(e.Left) + " " + e.Operator + " " + g.emitExpr(e.Right) + ")"
	case *ast.TypeCheckExpression:
		return "matches!(" + g.emitExpr(e.Value) + ", " + e.Type.Name + "(..))"
	case *ast.TypeCastExpression:
		return "(" + g.emitExpr(e.Value) + " as " + rustType(e.Type) + ")"
	case *ast.ConversionExpression:
		return g.emitConversion(e)
	case *ast.NativeConstructionExpression:
		return rustType(e.Type) + "::new(" + g.emitArgs(e.Arguments) + ")"
	case *ast.CallExpression:
		return g.emitCall(e)
	case *ast.MemberExpression:
		return g.emitExpr(e.Object) + "." + e.Property
	case *ast.IndexExpression:
		return g.emitExpr(e.Object) + "[" + g.emitExpr(e.Index) + "]"
	case *ast.AssignmentExpression:
		return g.emitExpr(e.Target) + " " + e.Operator + " " + g.emitExpr(e.Value)
	case *ast.TernaryExpression:
		return "(if " + g.emitExpr(e.Condition) + " { " + g.emitExpr(e.Then) + " } else { " + g.emitExpr(e.Else) + " })"
	case *ast.AwaitExpression:
		return g.emitExpr(e.Value) + ".await"
	case *ast.NewExpression:
		return rustType(e.Type) + "::new(" + g.emitArgs(e.Arguments) + ")"
	case *ast.VariantConstructionExpression:
		name := e.VariantName
		prefix := ""
		if e.DiscretioName != "" {
			prefix = e.DiscretioName + "::"
		}
		if len(e.Fields) == 0 {
			return prefix + name
		}
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			parts[i] = f.Key + ": " + g.emitExpr(f.Value)
		}
		return prefix + name + " { " + strings.Join(parts, ", ") + " }"
	case *ast.LambdaExpression:
		return g.emitLambda(e)
	case *ast.CompileTimeExpression:
		return g.emitExpr(e.Body)
	case *ast.PipelineExpression:
		return g.emitPipeline(e)
	case *ast.FilterExpression:
		return g.emitExpr(e.Source) + ".iter().filter(|it| " + g.emitExpr(e.Predicate) + ").collect::<Vec<_>>()"
	case *ast.IntraExpression:
		lo := g.emitExpr(e.Range.Low)
		hi := g.emitExpr(e.Range.High)
		op := ".."
		if e.Range.Inclusive {
			op = "..="
		}
		return "(" + lo + op + hi + ").contains(&" + g.emitExpr(e.Value) + ")"
	case *ast.InterExpression:
		return g.emitExpr(e.Collection) + ".contains(&" + g.emitExpr(e.Value) + ")"
	default:
		g.unsupported("expression", expr)
		return "todo!()"
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
		return "(" + v + " as i64)"
	case ast.ConvertToFloat:
		return "(" + v + " as f64)"
	case ast.ConvertToString:
		return v + ".to_string()"
	case ast.ConvertToBool:
		return "(" + v + " != 0)"
	default:
		return v
	}
}

func (g *Generator) emitLambda(l *ast.LambdaExpression) string {
	params := make([]string, len(l.Params))
	for i, p := range l.Params {
		if p.Type != nil {
			params[i] = p.Name + ": " + rustType(p.Type)
		} else {
			params[i] = p.Name
		}
	}
	prefix := "|"
	if l.IsAsync {
		prefix = "async |"
	}
	if l.ExprBody != nil {
		return prefix + strings.Join(params, ", ") + "| " + g.emitExpr(l.ExprBody)
	}
	var b strings.Builder
	b.WriteString(prefix + strings.Join(params, ", ") + "| {\n")
	inner := New()
	inner.w.In()
	inner.headers = g.headers
	inner.emitBlockStatements(l.Body)
	b.WriteString(inner.w.String())
	b.WriteString("}")
	return b.String()
}

func (g *Generator) emitPipeline(e *ast.PipelineExpression) string {
	cur := g.emitExpr(e.Source) + ".iter()"
	for _, stage := range e.Stages {
		args := g.emitArgs(stage.Arguments)
		switch stage.Operation {
		case "prima":
			cur = cur + ".take(" + args + ")"
		case "ultima":
			cur = cur + ".rev().take(" + args + ")"
		case "summa":
			cur = cur + ".sum::<i64>().to_string()"
		default:
			if args != "" {
				cur = cur + "." + stage.Operation + "(" + args + ")"
			} else {
				cur = cur + "." + stage.Operation + "()"
			}
		}
	}
	return cur + ".collect::<Vec<_>>()"
}

func (g *Generator) emitBinary(e *ast.BinaryExpression) string {
	l := g.emitExpr(e.Left)
	r := g.emitExpr(e.Right)
	op := e.Operator
	switch op {
	case "est":
		op = "=="
	case "??":
		return l + ".unwrap_or(" + r + ")"
	}
	return "(" + l + " " + op + " " + r + ")"
}

func (g *Generator) emitCall(e *ast.CallExpression) string {
	if id, ok := e.Callee.(*ast.Identifier); ok {
		switch id.Name {
		case "longitudo":
			return g.emitExpr(e.Arguments[0]) + ".len()"
		case "genusDe":
			return "std::any::type_name_of_val(&" + g.emitExpr(e.Arguments[0]) + ")"
		case "praedefinitum":
			return "Default::default()"
		}
		if path, ok := stdlibCalls[id.Name]; ok {
			if strings.HasPrefix(path, "faber_std::") {
				g.headers.Add(path[:strings.LastIndex(path, "::")])
			}
			return path + "(" + g.emitArgs(e.Arguments) + ")"
		}
	}
	call := g.emitExpr(e.Callee) + "(" + g.emitArgs(e.Arguments) + ")"
	if t, ok := e.Callee.GetResolvedType().(semtype.Function); ok && t.HasCurator {
		return call + " /* curator-injected */"
	}
	return call
}

// --- type rendering ---

func rustType(t *ast.TypeAnnotation) string {
	if t == nil {
		return "()"
	}
	if t.IsFunctionType() {
		params := make([]string, len(t.FunctionParams))
		for i, p := range t.FunctionParams {
			params[i] = rustType(p)
		}
		return "Box<dyn Fn(" + strings.Join(params, ", ") + ") -> " + rustType(t.FunctionReturn) + ">"
	}
	if len(t.Union) > 0 {
		return rustTypeName(t) // Rust unions are expressed as discretio/enum, not ad hoc
	}
	base := rustTypeName(t)
	if t.ArrayShorthand {
		base = "Vec<" + base + ">"
	}
	if t.Nullable {
		base = "Option<" + base + ">"
	}
	return base
}

func rustTypeName(t *ast.TypeAnnotation) string {
	switch t.Name {
	case "Numerus", "numerus":
		return rustNumeric(t)
	case "Fractus", "fractus":
		return "f64"
	case "Textus", "textus":
		return "String"
	case "Bivalens", "bivalens":
		return "bool"
	case "Nihil", "nihil":
		return "()"
	case "List":
		return "Vec<" + rustTypeParam(t, 0) + ">"
	case "Map":
		return "std::collections::HashMap<" + rustTypeParam(t, 0) + ", " + rustTypeParam(t, 1) + ">"
	case "Set":
		return "std::collections::HashSet<" + rustTypeParam(t, 0) + ">"
	case "Promise":
		return "std::pin::Pin<Box<dyn std::future::Future<Output = " + rustTypeParam(t, 0) + ">>>"
	case "Iterator", "Stream":
		return "Box<dyn Iterator<Item = " + rustTypeParam(t, 0) + ">>"
	default:
		return t.Name
	}
}

func rustNumeric(t *ast.TypeAnnotation) string {
	for _, p := range t.TypeParameters {
		if p.IsNumeric {
			switch p.NumericValue {
			case 8:
				return "i8"
			case 16:
				return "i16"
			case 32:
				return "i32"
			case 64:
				return "i64"
			}
		}
	}
	return "i64"
}

func rustTypeParam(t *ast.TypeAnnotation, idx int) string {
	if idx < len(t.TypeParameters) && t.TypeParameters[idx].Type != nil {
		return rustType(t.TypeParameters[idx].Type)
	}
	return "()"
}
