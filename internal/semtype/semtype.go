// Package semtype defines the resolved semantic type system the analyzer
// annotates onto the AST (section 3.4). Unlike the teacher's Hindley-Milner
// TVar/TApp/Subst machinery, Faber's types are never unified or generalized:
// every annotation is either already concrete or an explicit type parameter
// supplied at the use site, so a plain nominal/structural type tree with an
// Equals/assignability check (internal/analyzer/assignability.go) is enough.
package semtype

import (
	"sort"
	"strings"
)

// Type is the interface every resolved semantic type satisfies.
type Type interface {
	String() string
	// Kind is a short tag used by codegen's per-generic-name method dispatch
	// (section 4.3.3/4.3.4) and by diagnostics.
	Kind() string
}

// Primitive is a named scalar type, optionally sized (e.g. numerus<32>) and
// optionally nullable.
type Primitive struct {
	Name     string
	Size     int // 0 if unspecified
	Nullable bool
}

func (p Primitive) Kind() string { return "primitive" }
func (p Primitive) String() string {
	s := p.Name
	if p.Size > 0 {
		s += "<" + itoa(p.Size) + ">"
	}
	if p.Nullable {
		s += "?"
	}
	return s
}

// Generic is a parametric named type such as List<T>, Map<K, V>,
// Promise<T>, Iterator<T>, Stream<T>.
type Generic struct {
	Name     string
	Params   []Type
	Nullable bool
}

func (g Generic) Kind() string { return "generic" }
func (g Generic) String() string {
	parts := make([]string, len(g.Params))
	for i, p := range g.Params {
		parts[i] = p.String()
	}
	s := g.Name
	if len(parts) > 0 {
		s += "<" + strings.Join(parts, ", ") + ">"
	}
	if g.Nullable {
		s += "?"
	}
	return s
}

// Function is a callable signature. HasCurator marks a function that
// requires an allocator/resource injection at call sites (section 4.2.3).
type Function struct {
	Params     []Type
	Return     Type
	Async      bool
	HasCurator bool
}

func (f Function) Kind() string { return "function" }
func (f Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	ret := "nihil"
	if f.Return != nil {
		ret = f.Return.String()
	}
	prefix := ""
	if f.Async {
		prefix = "async "
	}
	return prefix + "(" + strings.Join(parts, ", ") + ") -> " + ret
}

// Union is a set of alternative types (T | U | ...).
type Union struct {
	Alternatives []Type
}

func (u Union) Kind() string { return "union" }
func (u Union) String() string {
	parts := make([]string, len(u.Alternatives))
	for i, a := range u.Alternatives {
		parts[i] = a.String()
	}
	return strings.Join(parts, " | ")
}

// User is an opaque named type: a forward reference or an interop type from
// an unrecognized module (section 4.2.5).
type User struct {
	Name string
}

func (u User) Kind() string   { return "user" }
func (u User) String() string { return u.Name }

// Enum is an ordo declaration: name plus member -> underlying-value type.
type Enum struct {
	Name    string
	Members map[string]Type
}

func (e Enum) Kind() string   { return "enum" }
func (e Enum) String() string { return e.Name }

// MemberNames returns the enum's member names sorted for deterministic
// iteration (codegen and diagnostics must not depend on map order).
func (e Enum) MemberNames() []string {
	names := make([]string, 0, len(e.Members))
	for n := range e.Members {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Genus is a struct-like record: fields, methods, and their static
// counterparts.
type Genus struct {
	Name          string
	Fields        map[string]Type
	Methods       map[string]*Function
	StaticFields  map[string]Type
	StaticMethods map[string]*Function
}

func (g Genus) Kind() string   { return "genus" }
func (g Genus) String() string { return g.Name }

func (g Genus) FieldNames() []string {
	names := make([]string, 0, len(g.Fields))
	for n := range g.Fields {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Pactum is an interface-like contract: a method-name -> signature map.
type Pactum struct {
	Name    string
	Methods map[string]*Function
}

func (p Pactum) Kind() string   { return "pactum" }
func (p Pactum) String() string { return p.Name }

// Discretio is a tagged union: variant-name -> ordered field-type list.
type Discretio struct {
	Name     string
	Variants map[string][]Type
}

func (d Discretio) Kind() string   { return "discretio" }
func (d Discretio) String() string { return d.Name }

func (d Discretio) VariantNames() []string {
	names := make([]string, 0, len(d.Variants))
	for n := range d.Variants {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Unknown is the sentinel type assigned when resolution fails; it never
// produces a diagnostic on its own but disables further type checking on
// the node it's attached to (section 4.2.4: assignable to/from anything).
type Unknown struct{}

func (Unknown) Kind() string   { return "unknown" }
func (Unknown) String() string { return "unknown" }

// Well-known primitive constructors, used throughout the analyzer and
// codegen so the literal strings live in one place.
func Numerus(size int) Primitive   { return Primitive{Name: "numerus", Size: size} }
func Textus() Primitive            { return Primitive{Name: "textus"} }
func Bivalens() Primitive          { return Primitive{Name: "bivalens"} }
func Fractus() Primitive           { return Primitive{Name: "fractus"} }
func Nihil() Primitive             { return Primitive{Name: "nihil", Nullable: true} }

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
