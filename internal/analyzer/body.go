package analyzer

import (
	"github.com/funvibe/faber/internal/ast"
	"github.com/funvibe/faber/internal/diagnostics"
	"github.com/funvibe/faber/internal/semtype"
	"github.com/funvibe/faber/internal/symbols"
)

// analyzeBodies is Phase 2 (section 4.2.1): now that every top-level name
// has a complete signature, walk every function/method/program-entry body
// bottom-up, typing expressions and checking the statement-level
// invariants (return-outside-function, await-outside-async, assignability
// on variable initializers and assignment targets). Variant-switch cases
// bind their pattern names; exhaustiveness is not checked.
func (a *analyzer) analyzeBodies(prog *ast.Program, scope *symbols.Scope) {
	for _, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case *ast.FunctionStatement:
			a.analyzeFunction(s, scope)
		case *ast.StructStatement:
			a.analyzeStruct(s, scope)
		case *ast.VariableStatement:
			a.analyzeVariable(s, scope)
		case *ast.ProgramEntryStatement:
			fnScope := scope.NewChild(symbols.ScopeFunction)
			a.pushFunc(semtype.Nihil(), s.IsAsync)
			a.analyzeBlock(s.Body, fnScope)
			a.popFunc()
		case *ast.SuiteStatement:
			suiteScope := scope.NewChild(symbols.ScopeBlock)
			a.analyzeStatements(s.Body, suiteScope)
		default:
			a.analyzeStatement(stmt, scope)
		}
	}
}

func (a *analyzer) analyzeFunction(f *ast.FunctionStatement, scope *symbols.Scope) {
	sym, ok := scope.Lookup(f.Name)
	var fn semtype.Function
	if ok {
		fn, _ = sym.Type.(semtype.Function)
	}
	fnScope := scope.NewChild(symbols.ScopeFunction)
	a.defineParams(fnScope, f.Parameters, scope)
	a.pushFunc(fn.Return, f.IsAsync)
	a.analyzeBlock(f.Body, fnScope)
	a.popFunc()
}

func (a *analyzer) analyzeStruct(s *ast.StructStatement, scope *symbols.Scope) {
	sym, ok := scope.Lookup(s.Name)
	var genus semtype.Genus
	if ok {
		genus, _ = sym.Type.(semtype.Genus)
	}
	for _, m := range s.Methods {
		a.analyzeMethod(m, genus, scope)
	}
	for _, m := range s.StaticMethods {
		a.analyzeMethod(m, semtype.Genus{}, scope)
	}
}

func (a *analyzer) analyzeMethod(m *ast.FunctionStatement, self semtype.Type, scope *symbols.Scope) {
	methodScope := scope.NewChild(symbols.ScopeFunction)
	// Fields of the receiver genus are visible as bare identifiers inside
	// its methods (section 4.3.2); MutationBlockStatement is what turns a
	// bare-identifier assignment to one of these names into a field store.
	if genus, ok := self.(semtype.Genus); ok {
		for name, t := range genus.Fields {
			a.define(methodScope, name, symbols.SymbolVariable, t, true, m.GetPosition(), m)
		}
	}
	a.defineParams(methodScope, m.Parameters, scope)
	var ret semtype.Type = semtype.Nihil()
	if m.ReturnType != nil {
		ret = a.resolveType(m.ReturnType, scope)
	}
	a.pushSelf(self)
	a.pushFunc(ret, m.IsAsync)
	a.analyzeBlock(m.Body, methodScope)
	a.popFunc()
	a.popSelf()
}

func (a *analyzer) defineParams(fnScope *symbols.Scope, params []ast.Parameter, outer *symbols.Scope) {
	for _, p := range params {
		pt := a.resolveType(p.Type, outer)
		if p.Default != nil {
			a.analyzeExpr(p.Default, outer)
		}
		mutable := p.Ownership != ast.OwnershipBorrowed
		a.define(fnScope, p.Name, symbols.SymbolParameter, pt, mutable, paramPos(p), nil)
	}
}

func (a *analyzer) analyzeVariable(v *ast.VariableStatement, scope *symbols.Scope) {
	vt := a.analyzeExpr(v.Value, scope)
	declared := vt
	if v.TypeAnnotation != nil {
		declared = a.resolveType(v.TypeAnnotation, scope)
		if !assignable(vt, declared) {
			a.addDiag(diagnostics.New(diagnostics.ErrTypeMismatch, v.GetPosition(), vt.String(), declared.String()))
		}
	}
	scope.UpdateType(v.Name, declared)
	if s, ok := scope.LookupLocal(v.Name); ok {
		s.Mutable = v.Kind.IsMutable()
	}
}

func (a *analyzer) analyzeBlock(b *ast.BlockStatement, scope *symbols.Scope) {
	if b == nil {
		return
	}
	a.analyzeStatements(b.Statements, scope)
}

func (a *analyzer) analyzeStatements(stmts []ast.Statement, scope *symbols.Scope) {
	for _, s := range stmts {
		a.analyzeStatement(s, scope)
	}
}

// analyzeStatement is Phase 2's statement-level type switch, covering every
// control-flow and declaration form in internal/ast/statements.go.
func (a *analyzer) analyzeStatement(stmt ast.Statement, scope *symbols.Scope) {
	switch s := stmt.(type) {
	case *ast.VariableStatement:
		a.analyzeVariable(s, scope)

	case *ast.FunctionStatement:
		a.define(scope, s.Name, symbols.SymbolFunction,
			a.buildFunctionType(s.Parameters, s.ReturnType, s.IsAsync, containsCura(s.Body), scope),
			false, s.GetPosition(), s)
		a.analyzeFunction(s, scope)

	case *ast.IfStatement:
		a.analyzeExpr(s.Condition, scope)
		a.analyzeBlock(s.Then, scope.NewChild(symbols.ScopeBlock))
		for _, ei := range s.ElseIf {
			a.analyzeStatement(ei, scope)
		}
		a.analyzeBlock(s.Else, scope.NewChild(symbols.ScopeBlock))
		a.analyzeCatch(s.Catch, scope)

	case *ast.WhileStatement:
		a.analyzeExpr(s.Condition, scope)
		a.analyzeBlock(s.Body, scope.NewChild(symbols.ScopeBlock))

	case *ast.IterationStatement:
		ct := a.analyzeExpr(s.Collection, scope)
		loopScope := scope.NewChild(symbols.ScopeBlock)
		elem := elementType(ct)
		a.define(loopScope, s.Binding, symbols.SymbolVariable, elem, false, s.GetPosition(), s)
		if s.Kind == ast.IterationIn && s.IndexBinding != "" {
			a.define(loopScope, s.IndexBinding, symbols.SymbolVariable, semtype.Numerus(0), false, s.GetPosition(), s)
		}
		a.analyzeBlock(s.Body, loopScope)

	case *ast.MutationBlockStatement:
		a.analyzeBlock(s.Body, scope)

	case *ast.ValueSwitchStatement:
		a.analyzeExpr(s.Subject, scope)
		for _, c := range s.Cases {
			for _, v := range c.Values {
				a.analyzeExpr(v, scope)
			}
			a.analyzeBlock(c.Body, scope.NewChild(symbols.ScopeBlock))
		}

	case *ast.VariantSwitchStatement:
		a.analyzeVariantSwitch(s, scope)

	case *ast.GuardStatement:
		a.analyzeExpr(s.Condition, scope)
		a.analyzeBlock(s.ElseBody, scope.NewChild(symbols.ScopeBlock))

	case *ast.AssertStatement:
		a.analyzeExpr(s.Condition, scope)
		if s.Message != nil {
			a.analyzeExpr(s.Message, scope)
		}

	case *ast.ReturnStatement:
		ret, inFunc := a.currentReturn()
		if !inFunc {
			a.addDiag(diagnostics.New(diagnostics.ErrReturnOutsideFunction, s.GetPosition()))
		}
		if s.Value != nil {
			vt := a.analyzeExpr(s.Value, scope)
			if inFunc && ret != nil && !assignable(vt, ret) {
				a.addDiag(diagnostics.New(diagnostics.ErrTypeMismatch, s.GetPosition(), vt.String(), ret.String()))
			}
		}

	case *ast.ThrowStatement:
		if s.Value != nil {
			a.analyzeExpr(s.Value, scope)
		}

	case *ast.PrintStatement:
		for _, arg := range s.Arguments {
			a.analyzeExpr(arg, scope)
		}

	case *ast.TryStatement:
		a.analyzeBlock(s.Body, scope.NewChild(symbols.ScopeBlock))
		a.analyzeCatch(s.Catch, scope)
		a.analyzeBlock(s.Finally, scope.NewChild(symbols.ScopeBlock))

	case *ast.DoBlockStatement:
		a.analyzeBlock(s.Body, scope.NewChild(symbols.ScopeBlock))

	case *ast.CaseStatement:
		a.analyzeBlock(s.Body, scope.NewChild(symbols.ScopeBlock))

	case *ast.SetupTeardownStatement:
		a.analyzeBlock(s.Body, scope.NewChild(symbols.ScopeBlock))

	case *ast.CuraStatement:
		a.analyzeCura(s, scope)

	case *ast.AdStatement:
		a.analyzeAd(s, scope)

	case *ast.ExpressionStatement:
		a.analyzeExpr(s.Expression, scope)

	case *ast.BlockStatement:
		a.analyzeBlock(s, scope.NewChild(symbols.ScopeBlock))

	case *ast.BreakStatement, *ast.ContinueStatement, *ast.DirectiveStatement,
		*ast.TypeAliasStatement, *ast.EnumStatement, *ast.InterfaceStatement,
		*ast.UnionStatement, *ast.ImportStatement, *ast.DestructureImportStatement:
		// nothing to type: pure control transfer or already fully resolved
		// in Phase 1.
	}
}

func (a *analyzer) analyzeCatch(c *ast.CatchClause, scope *symbols.Scope) {
	if c == nil {
		return
	}
	catchScope := scope.NewChild(symbols.ScopeBlock)
	if c.Binding != "" {
		a.define(catchScope, c.Binding, symbols.SymbolVariable, semtype.Textus(), false, c.Body.GetPosition(), c.Body)
	}
	a.analyzeBlock(c.Body, catchScope)
}

func (a *analyzer) analyzeVariantSwitch(s *ast.VariantSwitchStatement, scope *symbols.Scope) {
	subjType := a.analyzeExpr(s.Subject, scope)
	disc, _ := subjType.(semtype.Discretio)
	for _, c := range s.Cases {
		caseScope := scope.NewChild(symbols.ScopeBlock)
		if c.Pattern != nil {
			if c.Pattern.Alias != "" {
				a.define(caseScope, c.Pattern.Alias, symbols.SymbolVariable, subjType, false, s.GetPosition(), s)
			}
			if !c.Pattern.Wildcard && len(c.Pattern.VariantNames) == 1 {
				fields := disc.Variants[c.Pattern.VariantNames[0]]
				for i, bind := range c.Pattern.Bindings {
					var ft semtype.Type = semtype.Unknown{}
					if i < len(fields) {
						ft = fields[i]
					}
					a.define(caseScope, bind, symbols.SymbolVariable, ft, false, s.GetPosition(), s)
				}
			}
		}
		a.analyzeBlock(c.Body, caseScope)
	}
}

func (a *analyzer) analyzeCura(s *ast.CuraStatement, scope *symbols.Scope) {
	srcType := a.analyzeExpr(s.Source, scope)
	curaScope := scope.NewChild(symbols.ScopeBlock)
	if s.Binding != "" {
		a.define(curaScope, s.Binding, symbols.SymbolVariable, srcType, true, s.GetPosition(), s)
	}
	a.pushFunc(semtype.Unknown{}, s.IsAsync || a.inAsync())
	a.analyzeBlock(s.Body, curaScope)
	a.popFunc()
	a.analyzeCatch(s.Catch, scope)
}

func (a *analyzer) analyzeAd(s *ast.AdStatement, scope *symbols.Scope) {
	for _, arg := range s.Arguments {
		a.analyzeExpr(arg, scope)
	}
	adScope := scope.NewChild(symbols.ScopeBlock)
	if s.Binding != "" {
		async := s.Verb == ast.DispatchAsync || s.Verb == ast.DispatchAsyncPlural
		a.define(adScope, s.Binding, symbols.SymbolVariable, semtype.Unknown{}, false, s.GetPosition(), s)
		_ = async
	}
	a.analyzeBlock(s.Body, adScope)
	a.analyzeCatch(s.Catch, scope)
}

// elementType returns the element type of a List/Set/Map/Iterator/Stream
// generic, or Unknown for anything else (section 4.2.3 iteration typing).
func elementType(t semtype.Type) semtype.Type {
	g, ok := t.(semtype.Generic)
	if !ok || len(g.Params) == 0 {
		return semtype.Unknown{}
	}
	return g.Params[len(g.Params)-1]
}
