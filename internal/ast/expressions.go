package ast

import (
	"math/big"

	"github.com/funvibe/faber/internal/token"
)

// exprBase is embedded by every Expression; it satisfies Expression's
// resolved-type accessors via base.
type exprBase struct{ base }

func (e *exprBase) expressionNode() {}

// --- Identifiers & self ---

type Identifier struct {
	exprBase
	Token token.Token
	Name  string
}

func (i *Identifier) Accept(v Visitor) { v.VisitIdentifier(i) }

type SelfExpression struct {
	exprBase
	Token token.Token
}

func (s *SelfExpression) Accept(v Visitor) { v.VisitSelfExpression(s) }

// --- Literals ---

type StringLiteral struct {
	exprBase
	Token token.Token
	Value string
}

func (l *StringLiteral) Accept(v Visitor) { v.VisitStringLiteral(l) }

type NumberLiteral struct {
	exprBase
	Token    token.Token
	IsFloat  bool
	IntValue int64
	FloatVal float64
}

func (l *NumberLiteral) Accept(v Visitor) { v.VisitNumberLiteral(l) }

type BigIntLiteral struct {
	exprBase
	Token token.Token
	Value *big.Int
}

func (l *BigIntLiteral) Accept(v Visitor) { v.VisitBigIntLiteral(l) }

type BooleanLiteral struct {
	exprBase
	Token token.Token
	Value bool
}

func (l *BooleanLiteral) Accept(v Visitor) { v.VisitBooleanLiteral(l) }

type NilLiteral struct {
	exprBase
	Token token.Token
}

func (l *NilLiteral) Accept(v Visitor) { v.VisitNilLiteral(l) }

// TemplateStringExpression is a backtick/interpolated template string with
// literal text parts interleaved with embedded expressions.
type TemplateStringExpression struct {
	exprBase
	Token token.Token
	Parts []Expression // StringLiteral for text runs, any Expression for ${...}
}

func (t *TemplateStringExpression) Accept(v Visitor) { v.VisitTemplateStringExpression(t) }

// FormatStringExpression is a standalone format-string literal (e.g. %".2f")
// applied to a value, e.g. value %".2f".
type FormatStringExpression struct {
	exprBase
	Token  token.Token
	Format string
	Value  Expression
}

func (f *FormatStringExpression) Accept(v Visitor) { v.VisitFormatStringExpression(f) }

// RegexExpression is a regular-expression literal.
type RegexExpression struct {
	exprBase
	Token   token.Token
	Pattern string
	Flags   string
}

func (r *RegexExpression) Accept(v Visitor) { v.VisitRegexExpression(r) }

// ReadInputExpression represents `lege` reading a line/value from stdin.
type ReadInputExpression struct {
	exprBase
	Token  token.Token
	Prompt Expression // optional prompt expression, nil if absent
}

func (r *ReadInputExpression) Accept(v Visitor) { v.VisitReadInputExpression(r) }

// --- Collections ---

type ArrayLiteral struct {
	exprBase
	Token    token.Token
	Elements []Expression
}

func (a *ArrayLiteral) Accept(v Visitor) { v.VisitArrayLiteral(a) }

type ObjectField struct {
	Key   string
	Value Expression
}

type ObjectLiteral struct {
	exprBase
	Token  token.Token
	Fields []ObjectField
}

func (o *ObjectLiteral) Accept(v Visitor) { v.VisitObjectLiteral(o) }

// RangeExpression is lo..hi (exclusive) or lo..=hi (inclusive).
type RangeExpression struct {
	exprBase
	Token     token.Token
	Low       Expression
	High      Expression
	Inclusive bool
}

func (r *RangeExpression) Accept(v Visitor) { v.VisitRangeExpression(r) }

// --- Operators ---

type BinaryExpression struct {
	exprBase
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (b *BinaryExpression) Accept(v Visitor) { v.VisitBinaryExpression(b) }

type UnaryExpression struct {
	exprBase
	Token    token.Token
	Operator string
	Operand  Expression
}

func (u *UnaryExpression) Accept(v Visitor) { v.VisitUnaryExpression(u) }

// ShiftExpression is a bit-shift operation, kept distinct from
// BinaryExpression per section 3.2 because targets emit it with different
// intrinsic plumbing (wrapping vs. checked shifts).
type ShiftExpression struct {
	exprBase
	Token    token.Token
	Operator string // "<<" or ">>"
	Left     Expression
	Right    Expression
}

func (s *ShiftExpression) Accept(v Visitor) { v.VisitShiftExpression(s) }

// --- Type operators ---

// TypeCheckExpression is `value est Type` (runtime-ish type test, "is").
type TypeCheckExpression struct {
	exprBase
	Token token.Token
	Value Expression
	Type  *TypeAnnotation
}

func (t *TypeCheckExpression) Accept(v Visitor) { v.VisitTypeCheckExpression(t) }

// TypeCastExpression is `value qua Type` ("as"). Binds tighter than binary
// `+` per the documented precedence choice (section 9): `a + b qua T`
// parses as `a + (b qua T)`.
type TypeCastExpression struct {
	exprBase
	Token token.Token
	Value Expression
	Type  *TypeAnnotation
}

func (t *TypeCastExpression) Accept(v Visitor) { v.VisitTypeCastExpression(t) }

// ConversionKind enumerates the four conversion intrinsics.
type ConversionKind int

const (
	ConvertToNumber ConversionKind = iota // numeratum
	ConvertToString                       // textatum
	ConvertToFloat                        // fractatum
	ConvertToBool                         // bivalentum
)

type ConversionExpression struct {
	exprBase
	Token token.Token
	Kind  ConversionKind
	Value Expression
}

func (c *ConversionExpression) Accept(v Visitor) { v.VisitConversionExpression(c) }

// NativeConstructionExpression is `innatum Type(args...)`.
type NativeConstructionExpression struct {
	exprBase
	Token     token.Token
	Type      *TypeAnnotation
	Arguments []Expression
}

func (n *NativeConstructionExpression) Accept(v Visitor) { v.VisitNativeConstructionExpression(n) }

// --- Calls & access ---

type CallExpression struct {
	exprBase
	Token              token.Token
	Callee             Expression
	Arguments          []Expression
	OptionalChain      bool // callee?.(args)
	NonNullAssert      bool // callee!(args)
	RequiresCurator    bool // set by the analyzer when callee's type HasCurator
}

func (c *CallExpression) Accept(v Visitor) { v.VisitCallExpression(c) }

type MemberExpression struct {
	exprBase
	Token         token.Token
	Object        Expression
	Property      string
	OptionalChain bool // object?.property
	NonNullAssert bool // object!.property
}

func (m *MemberExpression) Accept(v Visitor) { v.VisitMemberExpression(m) }

type IndexExpression struct {
	exprBase
	Token token.Token
	Object Expression
	Index  Expression
}

func (i *IndexExpression) Accept(v Visitor) { v.VisitIndexExpression(i) }

type AssignmentExpression struct {
	exprBase
	Token    token.Token
	Operator string // "=", "+=", "-=", ...
	Target   Expression
	Value    Expression
}

func (a *AssignmentExpression) Accept(v Visitor) { v.VisitAssignmentExpression(a) }

type TernaryExpression struct {
	exprBase
	Token     token.Token
	Condition Expression
	Then      Expression
	Else      Expression
}

func (t *TernaryExpression) Accept(v Visitor) { v.VisitTernaryExpression(t) }

type AwaitExpression struct {
	exprBase
	Token token.Token
	Value Expression
}

func (a *AwaitExpression) Accept(v Visitor) { v.VisitAwaitExpression(a) }

type NewExpression struct {
	exprBase
	Token     token.Token
	Type      *TypeAnnotation
	Arguments []Expression
}

func (n *NewExpression) Accept(v Visitor) { v.VisitNewExpression(n) }

// VariantConstructionExpression is `finge Variant(args...)` / `finge
// Discretio.Variant{field: val, ...}`.
type VariantConstructionExpression struct {
	exprBase
	Token       token.Token
	DiscretioName string // optional explicit qualifier
	VariantName string
	Fields      []ObjectField
}

func (v *VariantConstructionExpression) Accept(vi Visitor) { vi.VisitVariantConstructionExpression(v) }

// --- Lambdas ---

type LambdaParam struct {
	Name       string
	Type       *TypeAnnotation // optional
	Ownership  Ownership
	Default    Expression // optional
	IsVariadic bool
}

type LambdaExpression struct {
	exprBase
	Token      token.Token
	Params     []LambdaParam
	ReturnType *TypeAnnotation // optional
	Body       *BlockStatement // non-nil for block-bodied lambdas
	ExprBody   Expression      // non-nil for expression-bodied lambdas
	IsAsync    bool
}

func (l *LambdaExpression) Accept(v Visitor) { v.VisitLambdaExpression(l) }

// CompileTimeExpression is `praefixum { ... }`, evaluated at compile time by
// the host toolchain; codegen either inlines its constant result or emits a
// diagnostic + placeholder when it cannot (section 9, open question area).
type CompileTimeExpression struct {
	exprBase
	Token token.Token
	Body  Expression
}

func (c *CompileTimeExpression) Accept(v Visitor) { v.VisitCompileTimeExpression(c) }

// --- Collection DSLs ---

// PipelineStage is one stage of a collection-pipeline DSL chain, e.g.
// `prima 3`, `ultima 1`, `summa`.
type PipelineStage struct {
	Token     token.Token
	Operation string // "prima", "ultima", "summa", or a named method
	Arguments []Expression
}

type PipelineExpression struct {
	exprBase
	Token  token.Token
	Source Expression
	Stages []PipelineStage
}

func (p *PipelineExpression) Accept(v Visitor) { v.VisitPipelineExpression(p) }

// FilterExpression is the `ab collection ubi predicate` DSL clause.
type FilterExpression struct {
	exprBase
	Token     token.Token
	Source    Expression
	Predicate Expression
}

func (f *FilterExpression) Accept(v Visitor) { v.VisitFilterExpression(f) }

// IntraExpression tests range membership: `x intra lo..hi`.
type IntraExpression struct {
	exprBase
	Token token.Token
	Value Expression
	Range *RangeExpression
}

func (i *IntraExpression) Accept(v Visitor) { v.VisitIntraExpression(i) }

// InterExpression tests collection membership: `x inter seq`.
type InterExpression struct {
	exprBase
	Token      token.Token
	Value      Expression
	Collection Expression
}

func (i *InterExpression) Accept(v Visitor) { v.VisitInterExpression(i) }
