package analyzer

import (
	"github.com/funvibe/faber/internal/ast"
	"github.com/funvibe/faber/internal/diagnostics"
	"github.com/funvibe/faber/internal/semtype"
	"github.com/funvibe/faber/internal/symbols"
)

// analyzeExpr is Phase 2's expression-typing entry point (section 4.2.3):
// a bottom-up Go type switch over every concrete ast.Expression, matching
// the dispatch style internal/ast/visitor.go's doc comment calls for
// (switch on concrete type, not Visitor/Accept). Every case sets the
// node's ResolvedType via SetResolvedType before returning it, so codegen
// can later read it straight off the node.
func (a *analyzer) analyzeExpr(expr ast.Expression, scope *symbols.Scope) semtype.Type {
	if expr == nil {
		return semtype.Unknown{}
	}
	t := a.typeOf(expr, scope)
	expr.SetResolvedType(t)
	return t
}

func (a *analyzer) typeOf(expr ast.Expression, scope *symbols.Scope) semtype.Type {
	switch e := expr.(type) {
	case *ast.Identifier:
		if sym, ok := scope.Lookup(e.Name); ok {
			return sym.Type
		}
		a.addDiag(diagnostics.New(diagnostics.ErrUndefinedVariable, e.GetPosition(), e.Name))
		return semtype.Unknown{}

	case *ast.SelfExpression:
		return a.currentSelf()

	case *ast.StringLiteral:
		return semtype.Textus()
	case *ast.NumberLiteral:
		if e.IsFloat {
			return semtype.Fractus()
		}
		return semtype.Numerus(0)
	case *ast.BigIntLiteral:
		return semtype.Numerus(0)
	case *ast.BooleanLiteral:
		return semtype.Bivalens()
	case *ast.NilLiteral:
		return semtype.Nihil()

	case *ast.TemplateStringExpression:
		for _, p := range e.Parts {
			a.analyzeExpr(p, scope)
		}
		return semtype.Textus()
	case *ast.FormatStringExpression:
		a.analyzeExpr(e.Value, scope)
		return semtype.Textus()
	case *ast.RegexExpression:
		return semtype.Textus()
	case *ast.ReadInputExpression:
		if e.Prompt != nil {
			a.analyzeExpr(e.Prompt, scope)
		}
		return semtype.Textus()

	case *ast.ArrayLiteral:
		var elem semtype.Type = semtype.Unknown{}
		for i, el := range e.Elements {
			t := a.analyzeExpr(el, scope)
			if i == 0 {
				elem = t
			}
		}
		return semtype.Generic{Name: "List", Params: []semtype.Type{elem}}

	case *ast.ObjectLiteral:
		for _, f := range e.Fields {
			a.analyzeExpr(f.Value, scope)
		}
		return semtype.Unknown{}

	case *ast.RangeExpression:
		lt := a.analyzeExpr(e.Low, scope)
		a.analyzeExpr(e.High, scope)
		return lt

	case *ast.BinaryExpression:
		return a.typeBinary(e, scope)

	case *ast.UnaryExpression:
		ot := a.analyzeExpr(e.Operand, scope)
		if e.Operator == "!" || e.Operator == "non" {
			return semtype.Bivalens()
		}
		return ot

	case *ast.ShiftExpression:
		lt := a.analyzeExpr(e.Left, scope)
		a.analyzeExpr(e.Right, scope)
		return lt

	case *ast.TypeCheckExpression:
		a.analyzeExpr(e.Value, scope)
		return semtype.Bivalens()

	case *ast.TypeCastExpression:
		a.analyzeExpr(e.Value, scope)
		return a.resolveType(e.Type, scope)

	case *ast.ConversionExpression:
		a.analyzeExpr(e.Value, scope)
		switch e.Kind {
		case ast.ConvertToNumber:
			return semtype.Numerus(0)
		case ast.ConvertToFloat:
			return semtype.Fractus()
		case ast.ConvertToString:
			return semtype.Textus()
		case ast.ConvertToBool:
			return semtype.Bivalens()
		default:
			return semtype.Unknown{}
		}

	case *ast.NativeConstructionExpression:
		for _, arg := range e.Arguments {
			a.analyzeExpr(arg, scope)
		}
		return a.resolveType(e.Type, scope)

	case *ast.CallExpression:
		return a.typeCall(e, scope)

	case *ast.MemberExpression:
		return a.typeMember(e, scope)

	case *ast.IndexExpression:
		ot := a.analyzeExpr(e.Object, scope)
		a.analyzeExpr(e.Index, scope)
		if g, ok := ot.(semtype.Generic); ok && len(g.Params) > 0 {
			return g.Params[len(g.Params)-1]
		}
		return semtype.Unknown{}

	case *ast.AssignmentExpression:
		return a.typeAssignment(e, scope)

	case *ast.TernaryExpression:
		a.analyzeExpr(e.Condition, scope)
		tt := a.analyzeExpr(e.Then, scope)
		et := a.analyzeExpr(e.Else, scope)
		if tt.String() == et.String() {
			return tt
		}
		return semtype.Union{Alternatives: []semtype.Type{tt, et}}

	case *ast.AwaitExpression:
		if !a.inAsync() {
			a.addDiag(diagnostics.New(diagnostics.ErrAwaitOutsideAsync, e.GetPosition()))
		}
		vt := a.analyzeExpr(e.Value, scope)
		if g, ok := vt.(semtype.Generic); ok && g.Name == "Promise" && len(g.Params) == 1 {
			return g.Params[0]
		}
		return vt

	case *ast.NewExpression:
		for _, arg := range e.Arguments {
			a.analyzeExpr(arg, scope)
		}
		return a.resolveType(e.Type, scope)

	case *ast.VariantConstructionExpression:
		for _, f := range e.Fields {
			a.analyzeExpr(f.Value, scope)
		}
		if sym, ok := scope.Lookup(e.DiscretioName); ok {
			return sym.Type
		}
		return semtype.User{Name: e.DiscretioName}

	case *ast.LambdaExpression:
		return a.typeLambda(e, scope)

	case *ast.CompileTimeExpression:
		return a.analyzeExpr(e.Body, scope)

	case *ast.PipelineExpression:
		t := a.analyzeExpr(e.Source, scope)
		for _, stage := range e.Stages {
			for _, arg := range stage.Arguments {
				a.analyzeExpr(arg, scope)
			}
		}
		return t

	case *ast.FilterExpression:
		t := a.analyzeExpr(e.Source, scope)
		a.analyzeExpr(e.Predicate, scope)
		return t

	case *ast.IntraExpression:
		a.analyzeExpr(e.Value, scope)
		a.analyzeExpr(e.Range, scope)
		return semtype.Bivalens()

	case *ast.InterExpression:
		a.analyzeExpr(e.Value, scope)
		a.analyzeExpr(e.Collection, scope)
		return semtype.Bivalens()

	default:
		return semtype.Unknown{}
	}
}

// typeBinary implements the arithmetic/comparison/logical rules of section
// 4.2.3: `+` on any operand pair involving textus concatenates to textus,
// comparisons with mismatched primitive operands report
// ErrIncompatibleComparison (section 4.2.3), and numeric binary operators
// yield whichever operand resolved to a concrete (non-Unknown) numeric
// type, preferring the left as the teacher's own evaluator does for mixed
// numeric kinds.
func (a *analyzer) typeBinary(b *ast.BinaryExpression, scope *symbols.Scope) semtype.Type {
	lt := a.analyzeExpr(b.Left, scope)
	rt := a.analyzeExpr(b.Right, scope)

	switch b.Operator {
	case "&&", "||", "==", "!=", "est":
		return semtype.Bivalens()
	case "<", ">", "<=", ">=":
		lp, lok := lt.(semtype.Primitive)
		rp, rok := rt.(semtype.Primitive)
		if lok && rok && lp.Name != rp.Name {
			a.addDiag(diagnostics.New(diagnostics.ErrIncompatibleComparison, b.GetPosition(), lp.Name, rp.Name))
		}
		return semtype.Bivalens()
	case "+":
		if isTextus(lt) || isTextus(rt) {
			return semtype.Textus()
		}
		return numericResult(lt, rt)
	case "-", "*", "/", "%":
		return numericResult(lt, rt)
	case "??":
		if un, ok := lt.(semtype.Union); ok {
			for _, alt := range un.Alternatives {
				if !isNihil(alt) {
					return alt
				}
			}
		}
		return lt
	default:
		return semtype.Unknown{}
	}
}

func numericResult(lt, rt semtype.Type) semtype.Type {
	if _, ok := lt.(semtype.Unknown); !ok {
		return lt
	}
	return rt
}

func (a *analyzer) typeCall(c *ast.CallExpression, scope *symbols.Scope) semtype.Type {
	ct := a.analyzeExpr(c.Callee, scope)
	for _, arg := range c.Arguments {
		a.analyzeExpr(arg, scope)
	}
	fn, ok := ct.(semtype.Function)
	if !ok {
		return semtype.Unknown{}
	}
	c.RequiresCurator = fn.HasCurator
	for i, arg := range c.Arguments {
		if i >= len(fn.Params) {
			break
		}
		at := arg.GetResolvedType()
		if at == nil {
			at = semtype.Unknown{}
		}
		if !assignable(at, fn.Params[i]) {
			a.addDiag(diagnostics.New(diagnostics.ErrTypeMismatch, arg.GetPosition(), at.String(), fn.Params[i].String()))
		}
	}
	if fn.Return == nil {
		return semtype.Nihil()
	}
	return fn.Return
}

func (a *analyzer) typeMember(m *ast.MemberExpression, scope *symbols.Scope) semtype.Type {
	ot := a.analyzeExpr(m.Object, scope)
	switch v := ot.(type) {
	case semtype.Genus:
		if t, ok := v.Fields[m.Property]; ok {
			return t
		}
		if fn, ok := v.Methods[m.Property]; ok {
			return *fn
		}
		if t, ok := v.StaticFields[m.Property]; ok {
			return t
		}
		if fn, ok := v.StaticMethods[m.Property]; ok {
			return *fn
		}
	case semtype.Pactum:
		if fn, ok := v.Methods[m.Property]; ok {
			return *fn
		}
	case semtype.Enum:
		if t, ok := v.Members[m.Property]; ok {
			return t
		}
	}
	return semtype.Unknown{}
}

func (a *analyzer) typeAssignment(asn *ast.AssignmentExpression, scope *symbols.Scope) semtype.Type {
	if id, ok := asn.Target.(*ast.Identifier); ok {
		if sym, found := scope.Lookup(id.Name); found && !sym.Mutable {
			a.addDiag(diagnostics.New(diagnostics.ErrImmutableAssignment, asn.GetPosition(), id.Name))
		}
	}
	tt := a.analyzeExpr(asn.Target, scope)
	vt := a.analyzeExpr(asn.Value, scope)
	if asn.Operator == "=" && !assignable(vt, tt) {
		a.addDiag(diagnostics.New(diagnostics.ErrTypeMismatch, asn.GetPosition(), vt.String(), tt.String()))
	}
	return tt
}

func (a *analyzer) typeLambda(l *ast.LambdaExpression, scope *symbols.Scope) semtype.Type {
	fnScope := scope.NewChild(symbols.ScopeFunction)
	params := make([]semtype.Type, len(l.Params))
	for i, p := range l.Params {
		pt := a.resolveType(p.Type, scope)
		params[i] = pt
		mutable := p.Ownership == ast.OwnershipOwned || p.Ownership == ast.OwnershipMutableBorrow
		a.define(fnScope, p.Name, symbols.SymbolParameter, pt, mutable, l.GetPosition(), l)
	}
	var ret semtype.Type = semtype.Unknown{}
	if l.ReturnType != nil {
		ret = a.resolveType(l.ReturnType, scope)
	}
	a.pushFunc(ret, l.IsAsync)
	if l.ExprBody != nil {
		bt := a.analyzeExpr(l.ExprBody, fnScope)
		if l.ReturnType == nil {
			ret = bt
		}
	} else if l.Body != nil {
		a.analyzeBlock(l.Body, fnScope)
	}
	a.popFunc()
	return semtype.Function{Params: params, Return: ret, Async: l.IsAsync}
}
