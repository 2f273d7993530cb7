package ast

import "github.com/funvibe/faber/internal/token"

type stmtBase struct{ base }

func (s *stmtBase) statementNode() {}

// --- Imports ---

type ImportStatement struct {
	stmtBase
	Token   token.Token
	Path    string
	Alias   string   // optional
	Symbols []string // specific symbols imported: import (a, b) from "path"
	Wildcard bool    // import (*) from "path"
}

func (i *ImportStatement) Accept(v Visitor) { v.VisitImportStatement(i) }

// DestructureImportStatement binds a destructured subset of an imported
// module's exports directly into identifiers, e.g. import { a, b } "path".
type DestructureImportStatement struct {
	stmtBase
	Token   token.Token
	Path    string
	Bindings []string
}

func (d *DestructureImportStatement) Accept(v Visitor) { v.VisitDestructureImportStatement(d) }

// --- Variable declaration ---

// BindingKind is one of the four binding kinds section 3.2 names.
type BindingKind int

const (
	BindingMutable        BindingKind = iota // varia
	BindingImmutable                         // fixum
	BindingAsyncImmutable                    // figendum
	BindingAsyncMutable                      // variandum
)

func (k BindingKind) IsMutable() bool {
	return k == BindingMutable || k == BindingAsyncMutable
}
func (k BindingKind) IsAsync() bool {
	return k == BindingAsyncImmutable || k == BindingAsyncMutable
}

type VariableStatement struct {
	stmtBase
	Token          token.Token
	Kind           BindingKind
	Name           string
	TypeAnnotation *TypeAnnotation // optional
	Value          Expression
}

func (v *VariableStatement) Accept(vi Visitor) { vi.VisitVariableStatement(v) }

// --- Function declaration ---

type Parameter struct {
	Name       string
	Type       *TypeAnnotation
	Ownership  Ownership
	Default    Expression // optional; invariant: nil when Ownership != Owned (section 3.5)
	IsVariadic bool
}

type FunctionStatement struct {
	stmtBase
	Token      token.Token
	Name       string
	Parameters []Parameter
	ReturnType *TypeAnnotation // optional, inferred void if absent
	Body       *BlockStatement
	IsAsync    bool
}

func (f *FunctionStatement) Accept(v Visitor) { v.VisitFunctionStatement(f) }

// --- Type declarations ---

type TypeAliasStatement struct {
	stmtBase
	Token  token.Token
	Name   string
	Target *TypeAnnotation
}

func (t *TypeAliasStatement) Accept(v Visitor) { v.VisitTypeAliasStatement(t) }

type EnumMember struct {
	Name  string
	Value Expression // optional explicit numeric/string value
}

type EnumStatement struct {
	stmtBase
	Token   token.Token
	Name    string
	Members []EnumMember
}

func (e *EnumStatement) Accept(v Visitor) { v.VisitEnumStatement(e) }

type FieldDeclaration struct {
	Name string
	Type *TypeAnnotation
}

// StructStatement is a `genus` struct-like declaration.
type StructStatement struct {
	stmtBase
	Token         token.Token
	Name          string
	Fields        []FieldDeclaration
	Methods       []*FunctionStatement
	StaticFields  []FieldDeclaration
	StaticMethods []*FunctionStatement
	Implements    []string // pactum names this genus claims to implement
}

func (s *StructStatement) Accept(v Visitor) { v.VisitStructStatement(s) }

// MethodSignature is a pactum method requirement: name + shape, no body.
type MethodSignature struct {
	Name       string
	Parameters []Parameter
	ReturnType *TypeAnnotation
}

// InterfaceStatement is a `pactum` interface-like declaration.
type InterfaceStatement struct {
	stmtBase
	Token   token.Token
	Name    string
	Methods []MethodSignature
}

func (i *InterfaceStatement) Accept(v Visitor) { v.VisitInterfaceStatement(i) }

// UnionVariant is one arm of a `discretio` tagged union.
type UnionVariant struct {
	Name   string
	Fields []FieldDeclaration
}

// UnionStatement is a `discretio` tagged-union declaration.
type UnionStatement struct {
	stmtBase
	Token    token.Token
	Name     string
	Variants []UnionVariant
}

func (u *UnionStatement) Accept(v Visitor) { v.VisitUnionStatement(u) }

// --- Control flow ---

type BlockStatement struct {
	stmtBase
	Token      token.Token
	Statements []Statement
}

func (b *BlockStatement) Accept(v Visitor) { v.VisitBlockStatement(b) }

// CatchClause is the optional `cape (e) { ... }` attached to if/cura/ad/try.
type CatchClause struct {
	Binding string // optional bound error identifier
	Body    *BlockStatement
}

type IfStatement struct {
	stmtBase
	Token       token.Token
	Condition   Expression
	Then        *BlockStatement
	ElseIf      []*IfStatement // `sin` chain
	Else        *BlockStatement
	Catch       *CatchClause
}

func (i *IfStatement) Accept(v Visitor) { v.VisitIfStatement(i) }

type WhileStatement struct {
	stmtBase
	Token     token.Token
	Condition Expression
	Body      *BlockStatement
}

func (w *WhileStatement) Accept(v Visitor) { v.VisitWhileStatement(w) }

// IterationKind distinguishes `ex` (value iteration) from indexed iteration.
type IterationKind int

const (
	IterationEx IterationKind = iota // ex item in collection
	IterationIn                      // in index, item in collection (indexed)
)

type IterationStatement struct {
	stmtBase
	Token      token.Token
	Kind       IterationKind
	Binding    string
	IndexBinding string // only set for IterationIn
	Collection Expression
	Body       *BlockStatement
	IsAsync    bool
}

func (i *IterationStatement) Accept(v Visitor) { v.VisitIterationStatement(i) }

// MutationBlockStatement is the `in { ... }` context block that rewrites
// bare-identifier assignments inside it to member stores on the enclosing
// receiver (section 4.3.2).
type MutationBlockStatement struct {
	stmtBase
	Token token.Token
	Body  *BlockStatement
}

func (m *MutationBlockStatement) Accept(v Visitor) { v.VisitMutationBlockStatement(m) }

type ValueSwitchStatement struct {
	stmtBase
	Token   token.Token
	Subject Expression
	Cases   []ValueCase
}

func (s *ValueSwitchStatement) Accept(v Visitor) { v.VisitValueSwitchStatement(s) }

type VariantSwitchStatement struct {
	stmtBase
	Token   token.Token
	Subject Expression
	Cases   []VariantCase
}

func (s *VariantSwitchStatement) Accept(v Visitor) { v.VisitVariantSwitchStatement(s) }

type GuardStatement struct {
	stmtBase
	Token     token.Token
	Condition Expression
	ElseBody  *BlockStatement // executed (and must diverge) when condition is false
}

func (g *GuardStatement) Accept(v Visitor) { v.VisitGuardStatement(g) }

type AssertStatement struct {
	stmtBase
	Token     token.Token
	Condition Expression
	Message   Expression // optional
}

func (a *AssertStatement) Accept(v Visitor) { v.VisitAssertStatement(a) }

type ReturnStatement struct {
	stmtBase
	Token token.Token
	Value Expression // optional
}

func (r *ReturnStatement) Accept(v Visitor) { v.VisitReturnStatement(r) }

type BreakStatement struct {
	stmtBase
	Token token.Token
}

func (b *BreakStatement) Accept(v Visitor) { v.VisitBreakStatement(b) }

type ContinueStatement struct {
	stmtBase
	Token token.Token
}

func (c *ContinueStatement) Accept(v Visitor) { v.VisitContinueStatement(c) }

// ThrowStatement is `iace` (recoverable) or `mori` (fatal), distinguished
// by Fatal (section 3.2, 4.3.2).
type ThrowStatement struct {
	stmtBase
	Token token.Token
	Value Expression
	Fatal bool
}

func (t *ThrowStatement) Accept(v Visitor) { v.VisitThrowStatement(t) }

// PrintStatement is `scribe`, `vide` (debug), or `mone` (warn), distinguished
// by Channel.
type PrintChannel int

const (
	ChannelStdout PrintChannel = iota // scribe
	ChannelDebug                      // vide
	ChannelWarn                       // mone
)

type PrintStatement struct {
	stmtBase
	Token     token.Token
	Channel   PrintChannel
	Arguments []Expression
}

func (p *PrintStatement) Accept(v Visitor) { v.VisitPrintStatement(p) }

type TryStatement struct {
	stmtBase
	Token   token.Token
	Body    *BlockStatement
	Catch   *CatchClause
	Finally *BlockStatement // optional `demum`
}

func (t *TryStatement) Accept(v Visitor) { v.VisitTryStatement(t) }

// DoBlockStatement is a bare scoping block used for local shadowing
// without an enclosing control construct.
type DoBlockStatement struct {
	stmtBase
	Token token.Token
	Body  *BlockStatement
}

func (d *DoBlockStatement) Accept(v Visitor) { v.VisitDoBlockStatement(d) }

// ProgramEntryStatement is the program's single entry-point block.
type ProgramEntryStatement struct {
	stmtBase
	Token   token.Token
	IsAsync bool
	Body    *BlockStatement
}

func (p *ProgramEntryStatement) Accept(v Visitor) { v.VisitProgramEntryStatement(p) }

// --- Test constructs ---

type SuiteStatement struct {
	stmtBase
	Token token.Token
	Name  string
	Body  []Statement // CaseStatement and SetupTeardownStatement entries
}

func (s *SuiteStatement) Accept(v Visitor) { v.VisitSuiteStatement(s) }

type CaseStatement struct {
	stmtBase
	Token token.Token
	Name  string
	Body  *BlockStatement
}

func (c *CaseStatement) Accept(v Visitor) { v.VisitCaseStatement(c) }

// SetupTeardownTiming distinguishes `ante` (before) from `post` (after).
type SetupTeardownTiming int

const (
	TimingBefore SetupTeardownTiming = iota
	TimingAfter
)

type SetupTeardownStatement struct {
	stmtBase
	Token  token.Token
	Timing SetupTeardownTiming
	AllCases bool // true = runs once for the whole suite, false = runs for each case
	Body   *BlockStatement
}

func (s *SetupTeardownStatement) Accept(v Visitor) { v.VisitSetupTeardownStatement(s) }

// --- Resource management ---

// CuratorKind names the resource manager kind a `cura` statement requests.
type CuratorKind int

const (
	CuratorArena CuratorKind = iota
	CuratorPage
	CuratorGeneric
)

type CuraStatement struct {
	stmtBase
	Token       token.Token
	Kind        CuratorKind
	Binding     string
	Source      Expression // the resource/arena-producing expression
	Body        *BlockStatement
	IsAsync     bool
	Catch       *CatchClause
}

func (c *CuraStatement) Accept(v Visitor) { v.VisitCuraStatement(c) }

// --- Dispatch statement ---

// DispatchVerb names the `ad` binding's concurrency/cardinality shape.
type DispatchVerb int

const (
	DispatchSync DispatchVerb = iota
	DispatchAsync
	DispatchSyncPlural
	DispatchAsyncPlural
)

type AdStatement struct {
	stmtBase
	Token     token.Token
	Target    string
	Arguments []Expression
	Binding   string // optional result binding name
	Verb      DispatchVerb
	Body      *BlockStatement // optional
	Catch     *CatchClause
}

func (a *AdStatement) Accept(v Visitor) { v.VisitAdStatement(a) }

// --- Expression statement wrapper ---

type ExpressionStatement struct {
	stmtBase
	Token      token.Token
	Expression Expression
}

func (e *ExpressionStatement) Accept(v Visitor) { v.VisitExpressionStatement(e) }

// --- Directive ---

// DirectiveStatement carries a compiler directive, e.g. `directive "strict_types"`.
type DirectiveStatement struct {
	stmtBase
	Token token.Token
	Name  string
}

func (d *DirectiveStatement) Accept(v Visitor) { v.VisitDirectiveStatement(d) }
