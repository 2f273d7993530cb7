package analyzer

import (
	"github.com/funvibe/faber/internal/ast"
	"github.com/funvibe/faber/internal/diagnostics"
	"github.com/funvibe/faber/internal/semtype"
	"github.com/funvibe/faber/internal/symbols"
	"github.com/funvibe/faber/internal/token"
)

// resolveSignatures is Phase 1b (section 4.2.1): now that every top-level
// name has a placeholder, resolve each declaration's full signature -
// function parameter/return types, genus field/method types, pactum method
// types, and a type alias's immediate target - and replace the placeholder
// in place via Scope.UpdateType.
func (a *analyzer) resolveSignatures(prog *ast.Program, scope *symbols.Scope) {
	for _, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case *ast.FunctionStatement:
			ft := a.buildFunctionType(s.Parameters, s.ReturnType, s.IsAsync, containsCura(s.Body), scope)
			scope.UpdateType(s.Name, ft)
			a.checkParamOrdering(s.Parameters)
		case *ast.StructStatement:
			scope.UpdateType(s.Name, a.buildGenusType(s, scope))
		case *ast.InterfaceStatement:
			scope.UpdateType(s.Name, a.buildPactumType(s, scope))
		case *ast.TypeAliasStatement:
			scope.UpdateType(s.Name, a.resolveType(s.Target, scope))
		}
	}
}

func (a *analyzer) buildFunctionType(params []ast.Parameter, ret *ast.TypeAnnotation, async, hasCurator bool, scope *symbols.Scope) semtype.Function {
	pts := make([]semtype.Type, len(params))
	for i, p := range params {
		pts[i] = a.resolveType(p.Type, scope)
	}
	var rt semtype.Type = semtype.Nihil()
	if ret != nil {
		rt = a.resolveType(ret, scope)
	}
	return semtype.Function{Params: pts, Return: rt, Async: async, HasCurator: hasCurator}
}

func (a *analyzer) buildGenusType(s *ast.StructStatement, scope *symbols.Scope) semtype.Genus {
	fields := make(map[string]semtype.Type, len(s.Fields))
	for _, f := range s.Fields {
		fields[f.Name] = a.resolveType(f.Type, scope)
	}
	methods := make(map[string]*semtype.Function, len(s.Methods))
	for _, m := range s.Methods {
		ft := a.buildFunctionType(m.Parameters, m.ReturnType, m.IsAsync, containsCura(m.Body), scope)
		methods[m.Name] = &ft
		a.checkParamOrdering(m.Parameters)
	}
	staticFields := make(map[string]semtype.Type, len(s.StaticFields))
	for _, f := range s.StaticFields {
		staticFields[f.Name] = a.resolveType(f.Type, scope)
	}
	staticMethods := make(map[string]*semtype.Function, len(s.StaticMethods))
	for _, m := range s.StaticMethods {
		ft := a.buildFunctionType(m.Parameters, m.ReturnType, m.IsAsync, containsCura(m.Body), scope)
		staticMethods[m.Name] = &ft
		a.checkParamOrdering(m.Parameters)
	}
	return semtype.Genus{
		Name: s.Name, Fields: fields, Methods: methods,
		StaticFields: staticFields, StaticMethods: staticMethods,
	}
}

func (a *analyzer) buildPactumType(s *ast.InterfaceStatement, scope *symbols.Scope) semtype.Pactum {
	methods := make(map[string]*semtype.Function, len(s.Methods))
	for _, m := range s.Methods {
		ft := a.buildFunctionType(m.Parameters, m.ReturnType, false, false, scope)
		methods[m.Name] = &ft
	}
	return semtype.Pactum{Name: s.Name, Methods: methods}
}

// checkParamOrdering reports S010 (a borrowed/mutably-borrowed parameter
// cannot carry a default - defaults are values, not references) and S011
// (a required parameter cannot follow an optional or variadic one).
func (a *analyzer) checkParamOrdering(params []ast.Parameter) {
	seenOptional := false
	for _, p := range params {
		pos := paramPos(p)
		if p.Ownership != ast.OwnershipOwned && p.Default != nil {
			a.addDiag(diagnostics.New(diagnostics.ErrBorrowedWithDefault, pos, p.Name))
		}
		if p.Default != nil || p.IsVariadic {
			seenOptional = true
		} else if seenOptional {
			a.addDiag(diagnostics.New(diagnostics.ErrRequiredAfterOptional, pos, p.Name))
		}
	}
}

func paramPos(p ast.Parameter) token.Position {
	if p.Type != nil {
		return p.Type.GetPosition()
	}
	return token.Position{}
}

// resolveAliasFixedPoint is Phase 1c: a type alias whose target refers to a
// later-declared alias resolves to Unknown on Phase 1b's single pass
// (forward references aren't registered as concrete types yet); keep
// re-resolving every alias still Unknown until a full pass makes no further
// progress.
func (a *analyzer) resolveAliasFixedPoint(aliasStmts []*ast.TypeAliasStatement, scope *symbols.Scope) {
	for {
		progress := false
		for _, al := range aliasStmts {
			sym, ok := scope.LookupLocal(al.Name)
			if !ok {
				continue
			}
			if _, unknown := sym.Type.(semtype.Unknown); !unknown {
				continue
			}
			t := a.resolveType(al.Target, scope)
			if _, stillUnknown := t.(semtype.Unknown); !stillUnknown {
				scope.UpdateType(al.Name, t)
				progress = true
			}
		}
		if !progress {
			return
		}
	}
}

// detectAliasCycles is Phase 1d: anything still Unknown after the fixed
// point can only be a circular alias chain (section 4.2.1, S004).
func (a *analyzer) detectAliasCycles(aliasStmts []*ast.TypeAliasStatement, scope *symbols.Scope) {
	for _, al := range aliasStmts {
		sym, ok := scope.LookupLocal(al.Name)
		if !ok {
			continue
		}
		if _, unknown := sym.Type.(semtype.Unknown); unknown {
			a.addDiag(diagnostics.New(diagnostics.ErrCircularAlias, al.GetPosition(), al.Name))
		}
	}
}

// containsCura reports whether body transitively contains a cura statement,
// which marks the enclosing function as requiring a curator/allocator
// injected at its call sites (section 4.2.3).
func containsCura(body *ast.BlockStatement) bool {
	if body == nil {
		return false
	}
	for _, stmt := range body.Statements {
		if stmtContainsCura(stmt) {
			return true
		}
	}
	return false
}

func stmtContainsCura(stmt ast.Statement) bool {
	switch s := stmt.(type) {
	case *ast.CuraStatement:
		return true
	case *ast.BlockStatement:
		return containsCura(s)
	case *ast.IfStatement:
		if containsCura(s.Then) || containsCura(s.Else) {
			return true
		}
		for _, ei := range s.ElseIf {
			if stmtContainsCura(ei) {
				return true
			}
		}
		return false
	case *ast.WhileStatement:
		return containsCura(s.Body)
	case *ast.IterationStatement:
		return containsCura(s.Body)
	case *ast.MutationBlockStatement:
		return containsCura(s.Body)
	case *ast.TryStatement:
		return containsCura(s.Body) || containsCura(s.Finally)
	case *ast.DoBlockStatement:
		return containsCura(s.Body)
	case *ast.GuardStatement:
		return containsCura(s.ElseBody)
	case *ast.ValueSwitchStatement:
		for _, c := range s.Cases {
			if containsCura(c.Body) {
				return true
			}
		}
		return false
	case *ast.VariantSwitchStatement:
		for _, c := range s.Cases {
			if containsCura(c.Body) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
