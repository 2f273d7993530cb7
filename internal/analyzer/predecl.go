package analyzer

import (
	"github.com/funvibe/faber/internal/ast"
	"github.com/funvibe/faber/internal/diagnostics"
	"github.com/funvibe/faber/internal/semtype"
	"github.com/funvibe/faber/internal/symbols"
)

// predeclareNames is Phase 1a's first sub-pass (section 4.2.1): register
// every top-level name with a placeholder shell type before any signature
// is resolved, so forward references and mutual recursion between
// functions, genus/pactum methods, and type aliases all see every name in
// scope regardless of declaration order. Returns the TypeAliasStatements
// found, for Phase 1c/1d.
func (a *analyzer) predeclareNames(prog *ast.Program, scope *symbols.Scope) []*ast.TypeAliasStatement {
	var aliases []*ast.TypeAliasStatement
	for _, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case *ast.FunctionStatement:
			a.define(scope, s.Name, symbols.SymbolFunction, semtype.Function{}, false, s.GetPosition(), s)
		case *ast.VariableStatement:
			a.define(scope, s.Name, symbols.SymbolVariable, semtype.Unknown{}, s.Kind.IsMutable(), s.GetPosition(), s)
		case *ast.TypeAliasStatement:
			a.define(scope, s.Name, symbols.SymbolType, semtype.Unknown{}, false, s.GetPosition(), s)
			aliases = append(aliases, s)
		case *ast.EnumStatement:
			a.define(scope, s.Name, symbols.SymbolEnum,
				semtype.Enum{Name: s.Name, Members: map[string]semtype.Type{}}, false, s.GetPosition(), s)
		case *ast.StructStatement:
			a.define(scope, s.Name, symbols.SymbolGenus, semtype.Genus{
				Name: s.Name, Fields: map[string]semtype.Type{}, Methods: map[string]*semtype.Function{},
				StaticFields: map[string]semtype.Type{}, StaticMethods: map[string]*semtype.Function{},
			}, false, s.GetPosition(), s)
		case *ast.InterfaceStatement:
			a.define(scope, s.Name, symbols.SymbolPactum,
				semtype.Pactum{Name: s.Name, Methods: map[string]*semtype.Function{}}, false, s.GetPosition(), s)
		case *ast.UnionStatement:
			a.define(scope, s.Name, symbols.SymbolType,
				semtype.Discretio{Name: s.Name, Variants: map[string][]semtype.Type{}}, false, s.GetPosition(), s)
		}
	}
	return aliases
}

// fillEnumsAndDiscretios is Phase 1a's second sub-pass: enums and discretio
// declarations are fully self-contained (their members/variants reference
// only already-registered names), so they get their complete type built
// here rather than waiting for Phase 1b.
func (a *analyzer) fillEnumsAndDiscretios(prog *ast.Program, scope *symbols.Scope) {
	for _, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case *ast.EnumStatement:
			members := make(map[string]semtype.Type, len(s.Members))
			for _, m := range s.Members {
				if m.Value != nil {
					members[m.Name] = a.inferConstType(m.Value)
				} else {
					members[m.Name] = semtype.Numerus(0)
				}
			}
			scope.UpdateType(s.Name, semtype.Enum{Name: s.Name, Members: members})
		case *ast.UnionStatement:
			if len(s.Variants) == 0 {
				a.addDiag(diagnostics.New(diagnostics.ErrEmptyDiscretio, s.GetPosition(), s.Name))
			}
			variants := make(map[string][]semtype.Type, len(s.Variants))
			for _, v := range s.Variants {
				fields := make([]semtype.Type, len(v.Fields))
				for i, f := range v.Fields {
					fields[i] = a.resolveType(f.Type, scope)
				}
				variants[v.Name] = fields
			}
			scope.UpdateType(s.Name, semtype.Discretio{Name: s.Name, Variants: variants})
		}
	}
}

func (a *analyzer) inferConstType(expr ast.Expression) semtype.Type {
	switch e := expr.(type) {
	case *ast.StringLiteral:
		return semtype.Textus()
	case *ast.NumberLiteral:
		if e.IsFloat {
			return semtype.Fractus()
		}
		return semtype.Numerus(0)
	default:
		return semtype.Numerus(0)
	}
}
