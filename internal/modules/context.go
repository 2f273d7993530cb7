// Package modules implements the module context for local imports (section
// 4.4): resolving file-path imports, caching parsed-and-analyzed exports,
// and detecting import cycles.
package modules

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/faber/internal/ast"
	"github.com/funvibe/faber/internal/config"
	"github.com/funvibe/faber/internal/diagnostics"
	"github.com/funvibe/faber/internal/symbols"
	"github.com/funvibe/faber/internal/token"
	"github.com/funvibe/faber/internal/utils"
)

// Exports is the table built by walking an analyzed module's top-level
// declarations (section 4.4): one entry per function, variable, type, enum,
// genus, pactum, or discretio it exposes.
type Exports struct {
	Module string
	Table  map[string]symbols.Symbol
}

// Cache is the pluggable backing store for resolved Exports, keyed by
// absolute path. MemoryCache is the default (section 4.4); SQLiteCache is
// the optional batch/CI-mode persistent alternative (SPEC_FULL.md 4.4.1).
type Cache interface {
	Get(absPath string) (*Exports, bool)
	Put(absPath string, exp *Exports)
}

// ParseFunc is the subset of the external parser/lexer pipeline the module
// context needs to load a referenced file: source text in, AST + parse
// diagnostics out. The concrete implementation lives in internal/lexer +
// internal/parser; Context depends only on this function type to keep the
// core's dependency on the external tokenizer/parser minimal and explicit.
type ParseFunc func(filePath, source string) (*ast.Program, []*diagnostics.Diagnostic)

// AnalyzeFunc runs semantic analysis on a freshly parsed module, returning
// the annotated program, its top-level scope (for export extraction), and
// diagnostics. Supplied by internal/analyzer; kept as a function value here
// (rather than an import) so internal/analyzer never has to import
// internal/modules back — the same cycle-breaking trick the teacher uses
// for its ModuleLoader interface (internal/analyzer/analyzer.go).
type AnalyzeFunc func(prog *ast.Program, ctx *Context) (*ast.Program, *symbols.Scope, []*diagnostics.Diagnostic)

// Context is the module-resolution state shared across one batch compile
// (section 4.4): base path of the file currently being analyzed, the
// export cache, and the in-progress set used for cycle detection.
type Context struct {
	BaseDir    string
	Cache      Cache
	InProgress map[string]bool
	Chain      []string // import chain for cycle-diagnostic reporting

	Parse   ParseFunc
	Analyze AnalyzeFunc
}

// NewContext creates a module context rooted at baseDir, using cache as the
// export cache (use NewMemoryCache() for a fresh in-process cache, or share
// one across parallel compiles behind its own lock).
func NewContext(baseDir string, cache Cache, parse ParseFunc, analyze AnalyzeFunc) *Context {
	return &Context{
		BaseDir:    baseDir,
		Cache:      cache,
		InProgress: make(map[string]bool),
		Parse:      parse,
		Analyze:    analyze,
	}
}

// IsLocalImport reports whether path is a relative local-file import
// (section 4.2.5): it starts with "./" or "../".
func IsLocalImport(path string) bool {
	return strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../")
}

// IsStandardLibraryImport reports whether path names the standard-library
// root or one of its recognized submodules (section 4.2.5).
func IsStandardLibraryImport(path string) bool {
	if path == config.StandardLibraryRoot {
		return true
	}
	for _, m := range config.StandardLibraryModules {
		if path == config.StandardLibraryRoot+"/"+m {
			return true
		}
	}
	return false
}

// Resolve resolves a local import path relative to the importer, returning
// its export table. Implements the §4.4 Resolve operation: cache hit short
// circuits; an in-progress hit reports the full cycle chain; otherwise the
// file is read, tokenized, parsed, analyzed (recursively creating child
// contexts sharing this Cache), and its exports are cached.
func (c *Context) Resolve(importerFile, importPath string) (*Exports, *diagnostics.Diagnostic) {
	absPath := c.normalize(importerFile, importPath)

	if cached, ok := c.Cache.Get(absPath); ok {
		return cached, nil
	}
	if c.InProgress[absPath] {
		chain := append(append([]string{}, c.Chain...), absPath)
		return nil, diagnostics.New(diagnostics.ErrCircularImport, token.Position{}, strings.Join(chain, " -> "))
	}

	c.InProgress[absPath] = true
	c.Chain = append(c.Chain, absPath)
	defer func() {
		delete(c.InProgress, absPath)
		c.Chain = c.Chain[:len(c.Chain)-1]
	}()

	source, err := os.ReadFile(absPath)
	if err != nil {
		return nil, diagnostics.New(diagnostics.ErrModuleNotFound, token.Position{}, importPath)
	}

	prog, parseDiags := c.Parse(absPath, string(source))
	if prog == nil {
		return nil, diagnostics.New(diagnostics.ErrModuleParseFail, token.Position{}, importPath)
	}
	if hasErrorDiag(parseDiags) {
		return nil, diagnostics.New(diagnostics.ErrModuleParseFail, token.Position{}, importPath)
	}

	child := &Context{
		BaseDir:    utils.GetModuleDir(absPath),
		Cache:      c.Cache,
		InProgress: c.InProgress,
		Chain:      c.Chain,
		Parse:      c.Parse,
		Analyze:    c.Analyze,
	}
	annotated, scope, _ := c.Analyze(prog, child)

	exp := &Exports{Module: utils.ExtractModuleName(absPath), Table: extractExports(annotated, scope)}
	c.Cache.Put(absPath, exp)
	return exp, nil
}

func (c *Context) normalize(importerFile, importPath string) string {
	dir := c.BaseDir
	if importerFile != "" {
		dir = filepath.Dir(importerFile)
	}
	joined := filepath.Join(dir, importPath)
	if !config.HasSourceExt(joined) {
		joined += config.SourceFileExt
	}
	abs, err := filepath.Abs(joined)
	if err != nil {
		return joined
	}
	return abs
}

func hasErrorDiag(ds []*diagnostics.Diagnostic) bool {
	for _, d := range ds {
		if d.Severity == diagnostics.SeverityError {
			return true
		}
	}
	return false
}

// extractExports walks the analyzed module's top-level statements, adding
// one entry per declaration the spec names as export-bearing (section 4.4).
func extractExports(prog *ast.Program, scope *symbols.Scope) map[string]symbols.Symbol {
	out := make(map[string]symbols.Symbol)
	if prog == nil || scope == nil {
		return out
	}
	for _, stmt := range prog.Statements {
		name := declName(stmt)
		if name == "" {
			continue
		}
		if sym, ok := scope.LookupLocal(name); ok {
			out[name] = *sym
		}
	}
	return out
}

func declName(stmt ast.Statement) string {
	switch s := stmt.(type) {
	case *ast.FunctionStatement:
		return s.Name
	case *ast.VariableStatement:
		return s.Name
	case *ast.TypeAliasStatement:
		return s.Name
	case *ast.EnumStatement:
		return s.Name
	case *ast.StructStatement:
		return s.Name
	case *ast.InterfaceStatement:
		return s.Name
	case *ast.UnionStatement:
		return s.Name
	default:
		return ""
	}
}
