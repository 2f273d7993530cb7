package analyzer

import (
	"github.com/funvibe/faber/internal/ast"
	"github.com/funvibe/faber/internal/config"
	"github.com/funvibe/faber/internal/diagnostics"
	"github.com/funvibe/faber/internal/modules"
	"github.com/funvibe/faber/internal/semtype"
	"github.com/funvibe/faber/internal/symbols"
)

// stdlibExports is a small precomputed export table for each recognized
// standard-library submodule (section 4.2.5): the real Faber standard
// library is out of scope here, but a compiler's import resolution must
// still bind *something* concrete for each name a program imports from it,
// so a handful of representative intrinsics per module are wired up.
var stdlibExports = map[string]map[string]semtype.Type{
	"io": {
		"lege":    semtype.Function{Params: []semtype.Type{semtype.Textus()}, Return: semtype.Textus()},
		"scribe":  semtype.Function{Params: []semtype.Type{semtype.Textus()}, Return: semtype.Nihil()},
		"legeOmnia": semtype.Function{Params: []semtype.Type{semtype.Textus()}, Return: semtype.Textus(), HasCurator: true},
	},
	"collections": {
		"List": semtype.Generic{Name: config.ListTypeName},
		"Map":  semtype.Generic{Name: config.MapTypeName},
		"Set":  semtype.Generic{Name: config.SetTypeName},
	},
	"text": {
		"iunge":    semtype.Function{Params: []semtype.Type{semtype.Generic{Name: config.ListTypeName, Params: []semtype.Type{semtype.Textus()}}, semtype.Textus()}, Return: semtype.Textus()},
		"divide":   semtype.Function{Params: []semtype.Type{semtype.Textus(), semtype.Textus()}, Return: semtype.Generic{Name: config.ListTypeName, Params: []semtype.Type{semtype.Textus()}}},
		"maiuscula": semtype.Function{Params: []semtype.Type{semtype.Textus()}, Return: semtype.Textus()},
	},
	"math": {
		"radix":  semtype.Function{Params: []semtype.Type{semtype.Fractus()}, Return: semtype.Fractus()},
		"potentia": semtype.Function{Params: []semtype.Type{semtype.Fractus(), semtype.Fractus()}, Return: semtype.Fractus()},
		"absolutum": semtype.Function{Params: []semtype.Type{semtype.Numerus(0)}, Return: semtype.Numerus(0)},
	},
	"time": {
		"nunc":   semtype.Function{Return: semtype.Numerus(64)},
		"dormi":  semtype.Function{Params: []semtype.Type{semtype.Numerus(0)}, Return: semtype.Generic{Name: config.PromiseTypeName, Params: []semtype.Type{semtype.Nihil()}}, Async: true},
	},
}

// processImports is section 4.2.5: for each import statement, bind the
// requested names in global scope before Phase 1a even runs, so every
// later phase simply sees them as already-resolved symbols. Standard
// library imports consult the fixed table above, local (`./`, `../`)
// imports delegate to the shared modules.Context (which parses+analyzes the
// target file and caches its export table), and anything else is treated
// as opaque host/ecosystem interop: the requested names are bound as
// Unknown so downstream checks don't cascade false positives.
func (a *analyzer) processImports(prog *ast.Program, scope *symbols.Scope) {
	for _, stmt := range prog.Statements {
		switch imp := stmt.(type) {
		case *ast.ImportStatement:
			a.resolveImport(imp.Path, imp.Symbols, imp.Alias, imp.Wildcard, scope, imp)
		case *ast.DestructureImportStatement:
			a.resolveImport(imp.Path, imp.Bindings, "", false, scope, imp)
		}
	}
}

func (a *analyzer) resolveImport(path string, names []string, alias string, wildcard bool, scope *symbols.Scope, node ast.Node) {
	switch {
	case isStdlibPath(path):
		mod := stdlibModuleName(path)
		table := stdlibExports[mod]
		if wildcard {
			for name, t := range table {
				a.define(scope, name, symbols.SymbolVariable, t, false, node.GetPosition(), node)
			}
			return
		}
		for _, name := range names {
			t, ok := table[name]
			if !ok {
				t = semtype.Unknown{}
			}
			a.define(scope, name, symbols.SymbolVariable, t, false, node.GetPosition(), node)
		}
		if alias != "" {
			a.define(scope, alias, symbols.SymbolVariable, semtype.Unknown{}, false, node.GetPosition(), node)
		}

	case modules.IsLocalImport(path):
		if a.moduleCtx == nil {
			a.addDiag(diagnostics.New(diagnostics.ErrModuleNotFound, node.GetPosition(), path))
			return
		}
		exp, diag := a.moduleCtx.Resolve(a.file, path)
		if diag != nil {
			a.addDiag(diag)
			return
		}
		if wildcard {
			for name, sym := range exp.Table {
				t := sym.Type
				a.define(scope, name, sym.Kind, t, false, node.GetPosition(), node)
			}
			return
		}
		for _, name := range names {
			sym, ok := exp.Table[name]
			t := semtype.Type(semtype.Unknown{})
			kind := symbols.SymbolVariable
			if ok {
				t = sym.Type
				kind = sym.Kind
			}
			a.define(scope, name, kind, t, false, node.GetPosition(), node)
		}
		if alias != "" {
			a.define(scope, alias, symbols.SymbolVariable, semtype.Unknown{}, false, node.GetPosition(), node)
		}

	default:
		// External/host module the analyzer has no export table for:
		// bind every requested name as Unknown rather than diagnosing, so
		// ecosystem interop isn't blocked by the lack of a real package
		// registry (out of scope here).
		for _, name := range names {
			a.define(scope, name, symbols.SymbolVariable, semtype.Unknown{}, false, node.GetPosition(), node)
		}
		if alias != "" {
			a.define(scope, alias, symbols.SymbolVariable, semtype.Unknown{}, false, node.GetPosition(), node)
		}
	}
}

func isStdlibPath(path string) bool {
	return modules.IsStandardLibraryImport(path)
}

func stdlibModuleName(path string) string {
	if path == config.StandardLibraryRoot {
		return ""
	}
	prefix := config.StandardLibraryRoot + "/"
	if len(path) > len(prefix) {
		return path[len(prefix):]
	}
	return ""
}
