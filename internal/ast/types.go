package ast

import "github.com/funvibe/faber/internal/token"

// Ownership is the preposition preceding a parameter type (section 3.3).
type Ownership int

const (
	OwnershipOwned Ownership = iota // absent preposition
	OwnershipBorrowed               // de
	OwnershipMutableBorrow          // in
)

func (o Ownership) String() string {
	switch o {
	case OwnershipBorrowed:
		return "de"
	case OwnershipMutableBorrow:
		return "in"
	default:
		return ""
	}
}

// TypeParam is one entry of a type annotation's parameter list: either a
// nested type or a numeric literal denoting a bit-width (section 3.3).
type TypeParam struct {
	Type         *TypeAnnotation // non-nil for a type parameter
	NumericValue int             // used when Type is nil (bit-width literal)
	IsNumeric    bool
}

// TypeAnnotation is the single flat node describing a type as written in
// source. Section 3.3 deliberately specifies one shape rather than a
// taxonomy of type-expression nodes: a name, optional type parameters,
// nullability, union alternatives, array shorthand, an ownership
// preposition, and an optional function-type shape.
type TypeAnnotation struct {
	Token          token.Token
	Name           string
	TypeParameters []TypeParam
	Nullable       bool
	Union          []*TypeAnnotation // non-nil when this is a T | U | ... annotation
	ArrayShorthand bool              // T[] sugar for List<T>
	Ownership      Ownership

	// Function-type shape: present when Name == "" and this annotation
	// describes (P1, P2) -> R.
	FunctionParams []*TypeAnnotation
	FunctionReturn *TypeAnnotation
}

func (t *TypeAnnotation) GetPosition() token.Position { return t.Token.Position }

// IsFunctionType reports whether this annotation describes a function type.
func (t *TypeAnnotation) IsFunctionType() bool {
	return t.FunctionReturn != nil
}
