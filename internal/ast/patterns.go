package ast

import "github.com/funvibe/faber/internal/token"

// VariantPattern is one `casu` arm of a `discerne` variant-switch
// statement. It may match a single variant name or several (multi-discriminant
// matching per section 6.5), bind its fields positionally or as a whole
// alias, or be the wildcard `_`.
type VariantPattern struct {
	Token        token.Token
	Wildcard     bool
	VariantNames []string // one or more variant names this arm matches
	Bindings     []string // positional field bindings, by declaration order
	Alias        string   // whole-value alias binding (mutually exclusive with Bindings)
}

// VariantCase is one arm of a VariantSwitchStatement.
type VariantCase struct {
	Pattern *VariantPattern
	Body    *BlockStatement
}

// ValueCase is one arm of a ValueSwitchStatement (`elige`/`casu`/`ceterum`).
type ValueCase struct {
	Values  []Expression // nil/empty for the `ceterum` default arm
	Default bool
	Body    *BlockStatement
}
