// Package symbols implements lexical name resolution (section 4.1): a scope
// tree of symbol maps, searched from the innermost scope outward.
package symbols

import (
	"fmt"
	"sort"

	"github.com/funvibe/faber/internal/ast"
	"github.com/funvibe/faber/internal/semtype"
	"github.com/funvibe/faber/internal/token"
)

// SymbolKind classifies what a Symbol names.
type SymbolKind int

const (
	SymbolVariable SymbolKind = iota
	SymbolParameter
	SymbolFunction
	SymbolType
	SymbolEnum
	SymbolGenus
	SymbolPactum
)

// Symbol is one entry in a Scope's map.
type Symbol struct {
	Name           string
	Type           semtype.Type
	Kind           SymbolKind
	Mutable        bool
	DefinitionPos  token.Position
	DefinitionNode ast.Node // for richer diagnostics/navigation
}

// ScopeKind distinguishes the global scope from function and block scopes;
// only the kind/parent shape affects lookup (all scopes look the same to
// Lookup), but callers use it to decide when entering/exiting creates a
// fresh function-body context (e.g. for return-type checking).
type ScopeKind int

const (
	ScopeGlobal ScopeKind = iota
	ScopeFunction
	ScopeBlock
)

// Scope is one node of the lexical scope tree (section 4.1).
type Scope struct {
	Parent  *Scope
	Kind    ScopeKind
	symbols map[string]*Symbol
}

// NewGlobalScope creates the root scope of a translation unit.
func NewGlobalScope() *Scope {
	return &Scope{Kind: ScopeGlobal, symbols: make(map[string]*Symbol)}
}

// NewChild creates a scope nested under s, matching a lexical block boundary
// (function body, loop body, conditional body, catch clause).
func (s *Scope) NewChild(kind ScopeKind) *Scope {
	return &Scope{Parent: s, Kind: kind, symbols: make(map[string]*Symbol)}
}

// Define inserts sym into this scope's own map. It fails if a symbol of the
// same name already exists in *this* scope (shadowing a parent's symbol is
// allowed and is not an error).
func (s *Scope) Define(sym *Symbol) error {
	if existing, ok := s.symbols[sym.Name]; ok {
		return fmt.Errorf("%q already defined at line %d", sym.Name, existing.DefinitionPos.Line)
	}
	s.symbols[sym.Name] = sym
	return nil
}

// Redefine overwrites (or inserts) a symbol unconditionally. Used by Phase
// 1b to replace a Phase-1a placeholder's type in place (section 4.2.1).
func (s *Scope) Redefine(sym *Symbol) {
	s.symbols[sym.Name] = sym
}

// Lookup searches this scope, then its parent chain, returning the first
// match.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	for sc := s; sc != nil; sc = sc.Parent {
		if sym, ok := sc.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// LookupLocal checks only this scope's own map.
func (s *Scope) LookupLocal(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// UpdateType replaces a symbol's type in place (Phase 1b signature
// resolution refining a Phase 1a placeholder). It operates on whichever
// scope in the chain actually owns the symbol.
func (s *Scope) UpdateType(name string, t semtype.Type) bool {
	for sc := s; sc != nil; sc = sc.Parent {
		if sym, ok := sc.symbols[name]; ok {
			sym.Type = t
			return true
		}
	}
	return false
}

// Names returns this scope's own symbol names, for deterministic iteration
// (export-table construction, section 4.4).
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.symbols))
	for n := range s.symbols {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
