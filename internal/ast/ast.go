// Package ast defines the Faber abstract syntax tree: the typed node
// taxonomy produced by the parser and annotated in place by the semantic
// analyzer (section 3 of the specification).
package ast

import (
	"github.com/funvibe/faber/internal/semtype"
	"github.com/funvibe/faber/internal/token"
)

// Comment is a single leading or trailing comment attached to a node.
type Comment struct {
	Text     string
	Position token.Position
}

// base is embedded by every concrete node. It carries the node's position,
// its resolved semantic type (filled in by the analyzer, nil until then),
// and any comments the parser attached to it. This is the only AST mutation
// permitted after parsing (section 3.6 / 9): a node gains a ResolvedType.
type base struct {
	Position        token.Position
	ResolvedType    semtype.Type
	LeadingComments  []Comment
	TrailingComments []Comment
}

func (b *base) GetPosition() token.Position { return b.Position }

// SetPosition is called by the parser right after constructing a node,
// since base's own fields cannot be set from a composite literal outside
// this package.
func (b *base) SetPosition(pos token.Position) { b.Position = pos }

func (b *base) SetResolvedType(t semtype.Type) { b.ResolvedType = t }
func (b *base) GetResolvedType() semtype.Type  { return b.ResolvedType }

// Node is the base interface every AST node satisfies.
type Node interface {
	GetPosition() token.Position
	SetPosition(token.Position)
	Accept(v Visitor)
}

// Statement is a Node that appears in a statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that appears in an expression position and carries a
// resolved type once semantic analysis completes.
type Expression interface {
	Node
	expressionNode()
	SetResolvedType(semtype.Type)
	GetResolvedType() semtype.Type
}

// Program is the root of every parsed translation unit.
type Program struct {
	File       string
	Statements []Statement
}

func (p *Program) GetPosition() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].GetPosition()
	}
	return token.Position{Line: 1, Column: 1}
}
func (p *Program) SetPosition(token.Position) {}
func (p *Program) Accept(v Visitor)           { v.VisitProgram(p) }
