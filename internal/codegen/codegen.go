// Package codegen implements section 4.3's code generator dispatch: a
// registry of per-target backends, generalizing the teacher's single-method
// backend.Backend interface (internal/backend/backend.go) from "interpreter
// backend" to "target language backend" - the natural extension for one
// shared annotated AST feeding five independent emitters.
package codegen

import (
	"fmt"

	"github.com/funvibe/faber/internal/ast"
	"github.com/funvibe/faber/internal/diagnostics"
)

// Target names one of the supported output languages (section 4.3.6).
type Target int

const (
	CPP Target = iota
	Rust
	TypeScript
	Python
	Zig
)

func (t Target) String() string {
	switch t {
	case CPP:
		return "cpp"
	case Rust:
		return "rust"
	case TypeScript:
		return "typescript"
	case Python:
		return "python"
	case Zig:
		return "zig"
	default:
		return "unknown"
	}
}

// AllTargets lists every registered target in a stable order, for `faberc
// targets` and for compiling one program against every backend in one pass.
var AllTargets = []Target{CPP, Rust, TypeScript, Python, Zig}

// ParseTarget resolves a CLI-facing target name (and its common aliases) to
// a Target, reporting false if name isn't recognized.
func ParseTarget(name string) (Target, bool) {
	switch name {
	case "cpp", "c++", "cxx":
		return CPP, true
	case "rust", "rs":
		return Rust, true
	case "typescript", "ts":
		return TypeScript, true
	case "python", "py":
		return Python, true
	case "zig":
		return Zig, true
	default:
		return 0, false
	}
}

// Generator is the per-target backend contract (section 4.3): walk the
// annotated AST and emit target source text plus a header/import manifest.
type Generator interface {
	Name() string
	Generate(p *ast.Program) (source string, headers []string, diags []*diagnostics.Diagnostic)
}

// Registry maps a Target to its Generator constructor (section 4.3.6).
type Registry struct {
	factories map[Target]func() Generator
}

// NewRegistry returns an empty registry. Per-target packages add themselves
// to the package-level default registry by calling Register from their own
// init(), matching the teacher's registration-by-import pattern for parser
// prefix/infix handlers - importing internal/codegen/{cpp,rust,...} for
// side effect is what populates Default().
func NewRegistry() *Registry {
	return &Registry{factories: make(map[Target]func() Generator)}
}

// defaultRegistry is populated by each target package's init(), mirroring
// the parser's side-effect-registration style.
var defaultRegistry = NewRegistry()

// Register records factory under target in the shared default registry.
// Called from each internal/codegen/<target> package's init().
func Register(target Target, factory func() Generator) {
	defaultRegistry.factories[target] = factory
}

// Default returns the package-level registry populated by every imported
// target package's init().
func Default() *Registry { return defaultRegistry }

// Get constructs a fresh Generator for target, or reports false if no
// factory is registered for it.
func (r *Registry) Get(target Target) (Generator, bool) {
	factory, ok := r.factories[target]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Targets lists every target this registry has a factory for.
func (r *Registry) Targets() []Target {
	out := make([]Target, 0, len(r.factories))
	for _, t := range AllTargets {
		if _, ok := r.factories[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Generate is a convenience wrapper: look up target's generator and run it,
// reporting an error if the target isn't registered (distinct from a
// generation-time diagnostic, which is returned alongside source/headers).
func (r *Registry) Generate(target Target, p *ast.Program) (string, []string, []*diagnostics.Diagnostic, error) {
	gen, ok := r.Get(target)
	if !ok {
		return "", nil, nil, fmt.Errorf("codegen: no generator registered for target %s", target)
	}
	source, headers, diags := gen.Generate(p)
	return source, headers, diags, nil
}
