package analyzer

import (
	"strings"

	"github.com/funvibe/faber/internal/ast"
	"github.com/funvibe/faber/internal/config"
	"github.com/funvibe/faber/internal/semtype"
	"github.com/funvibe/faber/internal/symbols"
)

// resolveType implements section 4.2.2's type-resolution rules: primitives,
// known generics, function-type shapes, union alternatives, the `[]` array
// shorthand, and `?` nullability, plus a name lookup against scope for
// everything else (type aliases, genus/pactum/discretio names, and forward
// references that are still Unknown mid-fixed-point).
func (a *analyzer) resolveType(ann *ast.TypeAnnotation, scope *symbols.Scope) semtype.Type {
	if ann == nil {
		return semtype.Unknown{}
	}
	if ann.IsFunctionType() {
		params := make([]semtype.Type, len(ann.FunctionParams))
		for i, p := range ann.FunctionParams {
			params[i] = a.resolveType(p, scope)
		}
		ret := a.resolveType(ann.FunctionReturn, scope)
		return semtype.Function{Params: params, Return: ret}
	}
	if len(ann.Union) > 0 {
		alts := make([]semtype.Type, 0, len(ann.Union)+1)
		alts = append(alts, a.resolvePrimary(ann, scope))
		for _, u := range ann.Union {
			alts = append(alts, a.resolveType(u, scope))
		}
		return semtype.Union{Alternatives: alts}
	}
	return a.resolvePrimary(ann, scope)
}

func (a *analyzer) resolvePrimary(ann *ast.TypeAnnotation, scope *symbols.Scope) semtype.Type {
	base := a.resolveNamed(ann, scope)
	if ann.ArrayShorthand {
		return semtype.Generic{Name: config.ListTypeName, Params: []semtype.Type{base}, Nullable: ann.Nullable}
	}
	if ann.Nullable {
		return withNullable(base)
	}
	return base
}

func (a *analyzer) resolveNamed(ann *ast.TypeAnnotation, scope *symbols.Scope) semtype.Type {
	name := ann.Name
	// Primitive type names are capitalized Latin nouns at the use site
	// (Numerus, Textus, Bivalens, Fractus, Nihil) but canonicalize to their
	// lowercase semtype.Primitive.Name form (matching semtype.Numerus() et
	// al and the per-target emit tables keyed on that canonical name).
	lower := strings.ToLower(name)
	if config.KnownPrimitives[lower] {
		size := 0
		for _, tp := range ann.TypeParameters {
			if tp.IsNumeric {
				size = tp.NumericValue
			}
		}
		return semtype.Primitive{Name: lower, Size: size, Nullable: ann.Nullable}
	}

	if config.KnownGenerics[name] {
		params := make([]semtype.Type, 0, len(ann.TypeParameters))
		for _, tp := range ann.TypeParameters {
			if tp.Type != nil {
				params = append(params, a.resolveType(tp.Type, scope))
			}
		}
		return semtype.Generic{Name: name, Params: params, Nullable: ann.Nullable}
	}

	if sym, ok := scope.Lookup(name); ok {
		if ann.Nullable {
			return withNullable(sym.Type)
		}
		return sym.Type
	}

	return semtype.User{Name: name}
}

// withNullable produces t's nullable form. Primitive/Generic carry a
// Nullable flag directly; every other shape (Genus, Pactum, Discretio,
// Function, User) is made nullable by unioning with nihil, matching
// section 4.2.4's rule that nihil is assignable to any nullable target.
func withNullable(t semtype.Type) semtype.Type {
	switch v := t.(type) {
	case semtype.Primitive:
		v.Nullable = true
		return v
	case semtype.Generic:
		v.Nullable = true
		return v
	case semtype.Unknown:
		return v
	default:
		return semtype.Union{Alternatives: []semtype.Type{t, semtype.Nihil()}}
	}
}

func isNullable(t semtype.Type) bool {
	switch v := t.(type) {
	case semtype.Primitive:
		return v.Nullable
	case semtype.Generic:
		return v.Nullable
	case semtype.Union:
		for _, alt := range v.Alternatives {
			if isNihil(alt) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func isNihil(t semtype.Type) bool {
	p, ok := t.(semtype.Primitive)
	return ok && p.Name == config.NihilTypeName
}

func isTextus(t semtype.Type) bool {
	p, ok := t.(semtype.Primitive)
	return ok && p.Name == config.TextusTypeName
}

func isNumericName(name string) bool {
	return name == config.NumerusTypeName || name == config.FractusTypeName
}
