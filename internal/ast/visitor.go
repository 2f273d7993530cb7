package ast

// Visitor is implemented by any consumer that walks the full AST taxonomy
// via Node.Accept. The semantic analyzer and code generators do NOT use
// this interface for their main dispatch — both switch on concrete Go type
// instead (section 9's "central switch on node tag must be exhaustive" is
// most naturally a Go type switch, and the teacher's own evaluator dispatches
// that way despite Accept existing on every node). Visitor exists for
// secondary whole-tree walks: formatting, linting, and tests that need to
// visit every node kind without hand-rolling a type switch.
type Visitor interface {
	VisitProgram(*Program)

	// Declarations
	VisitImportStatement(*ImportStatement)
	VisitDestructureImportStatement(*DestructureImportStatement)
	VisitVariableStatement(*VariableStatement)
	VisitFunctionStatement(*FunctionStatement)
	VisitTypeAliasStatement(*TypeAliasStatement)
	VisitEnumStatement(*EnumStatement)
	VisitStructStatement(*StructStatement)
	VisitInterfaceStatement(*InterfaceStatement)
	VisitUnionStatement(*UnionStatement)
	VisitDirectiveStatement(*DirectiveStatement)

	// Control flow
	VisitIfStatement(*IfStatement)
	VisitWhileStatement(*WhileStatement)
	VisitIterationStatement(*IterationStatement)
	VisitMutationBlockStatement(*MutationBlockStatement)
	VisitValueSwitchStatement(*ValueSwitchStatement)
	VisitVariantSwitchStatement(*VariantSwitchStatement)
	VisitGuardStatement(*GuardStatement)
	VisitAssertStatement(*AssertStatement)
	VisitReturnStatement(*ReturnStatement)
	VisitBreakStatement(*BreakStatement)
	VisitContinueStatement(*ContinueStatement)
	VisitBlockStatement(*BlockStatement)
	VisitThrowStatement(*ThrowStatement)
	VisitPrintStatement(*PrintStatement)
	VisitTryStatement(*TryStatement)
	VisitDoBlockStatement(*DoBlockStatement)
	VisitProgramEntryStatement(*ProgramEntryStatement)
	VisitExpressionStatement(*ExpressionStatement)

	// Test constructs
	VisitSuiteStatement(*SuiteStatement)
	VisitCaseStatement(*CaseStatement)
	VisitSetupTeardownStatement(*SetupTeardownStatement)

	// Resource management & dispatch
	VisitCuraStatement(*CuraStatement)
	VisitAdStatement(*AdStatement)

	// Expressions
	VisitIdentifier(*Identifier)
	VisitSelfExpression(*SelfExpression)
	VisitStringLiteral(*StringLiteral)
	VisitNumberLiteral(*NumberLiteral)
	VisitBigIntLiteral(*BigIntLiteral)
	VisitBooleanLiteral(*BooleanLiteral)
	VisitNilLiteral(*NilLiteral)
	VisitTemplateStringExpression(*TemplateStringExpression)
	VisitFormatStringExpression(*FormatStringExpression)
	VisitRegexExpression(*RegexExpression)
	VisitReadInputExpression(*ReadInputExpression)
	VisitArrayLiteral(*ArrayLiteral)
	VisitObjectLiteral(*ObjectLiteral)
	VisitRangeExpression(*RangeExpression)
	VisitBinaryExpression(*BinaryExpression)
	VisitUnaryExpression(*UnaryExpression)
	VisitShiftExpression(*ShiftExpression)
	VisitTypeCheckExpression(*TypeCheckExpression)
	VisitTypeCastExpression(*TypeCastExpression)
	VisitConversionExpression(*ConversionExpression)
	VisitNativeConstructionExpression(*NativeConstructionExpression)
	VisitCallExpression(*CallExpression)
	VisitMemberExpression(*MemberExpression)
	VisitIndexExpression(*IndexExpression)
	VisitAssignmentExpression(*AssignmentExpression)
	VisitTernaryExpression(*TernaryExpression)
	VisitAwaitExpression(*AwaitExpression)
	VisitNewExpression(*NewExpression)
	VisitVariantConstructionExpression(*VariantConstructionExpression)
	VisitLambdaExpression(*LambdaExpression)
	VisitCompileTimeExpression(*CompileTimeExpression)
	VisitPipelineExpression(*PipelineExpression)
	VisitFilterExpression(*FilterExpression)
	VisitIntraExpression(*IntraExpression)
	VisitInterExpression(*InterExpression)
}

// BaseVisitor is an embeddable no-op implementation of Visitor. Consumers
// that only care about a handful of node kinds embed this and override the
// methods they need, matching the teacher's habit of small handler structs
// (e.g. cmd/lsp's ast_utils.go walkers) rather than hand-writing 70 empty
// stubs per consumer.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(*Program)                                           {}
func (BaseVisitor) VisitImportStatement(*ImportStatement)                           {}
func (BaseVisitor) VisitDestructureImportStatement(*DestructureImportStatement)     {}
func (BaseVisitor) VisitVariableStatement(*VariableStatement)                       {}
func (BaseVisitor) VisitFunctionStatement(*FunctionStatement)                       {}
func (BaseVisitor) VisitTypeAliasStatement(*TypeAliasStatement)                     {}
func (BaseVisitor) VisitEnumStatement(*EnumStatement)                               {}
func (BaseVisitor) VisitStructStatement(*StructStatement)                           {}
func (BaseVisitor) VisitInterfaceStatement(*InterfaceStatement)                     {}
func (BaseVisitor) VisitUnionStatement(*UnionStatement)                             {}
func (BaseVisitor) VisitDirectiveStatement(*DirectiveStatement)                     {}
func (BaseVisitor) VisitIfStatement(*IfStatement)                                   {}
func (BaseVisitor) VisitWhileStatement(*WhileStatement)                             {}
func (BaseVisitor) VisitIterationStatement(*IterationStatement)                     {}
func (BaseVisitor) VisitMutationBlockStatement(*MutationBlockStatement)             {}
func (BaseVisitor) VisitValueSwitchStatement(*ValueSwitchStatement)                 {}
func (BaseVisitor) VisitVariantSwitchStatement(*VariantSwitchStatement)             {}
func (BaseVisitor) VisitGuardStatement(*GuardStatement)                             {}
func (BaseVisitor) VisitAssertStatement(*AssertStatement)                           {}
func (BaseVisitor) VisitReturnStatement(*ReturnStatement)                           {}
func (BaseVisitor) VisitBreakStatement(*BreakStatement)                             {}
func (BaseVisitor) VisitContinueStatement(*ContinueStatement)                       {}
func (BaseVisitor) VisitBlockStatement(*BlockStatement)                             {}
func (BaseVisitor) VisitThrowStatement(*ThrowStatement)                             {}
func (BaseVisitor) VisitPrintStatement(*PrintStatement)                             {}
func (BaseVisitor) VisitTryStatement(*TryStatement)                                 {}
func (BaseVisitor) VisitDoBlockStatement(*DoBlockStatement)                         {}
func (BaseVisitor) VisitProgramEntryStatement(*ProgramEntryStatement)               {}
func (BaseVisitor) VisitExpressionStatement(*ExpressionStatement)                   {}
func (BaseVisitor) VisitSuiteStatement(*SuiteStatement)                             {}
func (BaseVisitor) VisitCaseStatement(*CaseStatement)                               {}
func (BaseVisitor) VisitSetupTeardownStatement(*SetupTeardownStatement)             {}
func (BaseVisitor) VisitCuraStatement(*CuraStatement)                               {}
func (BaseVisitor) VisitAdStatement(*AdStatement)                                   {}
func (BaseVisitor) VisitIdentifier(*Identifier)                                     {}
func (BaseVisitor) VisitSelfExpression(*SelfExpression)                             {}
func (BaseVisitor) VisitStringLiteral(*StringLiteral)                               {}
func (BaseVisitor) VisitNumberLiteral(*NumberLiteral)                               {}
func (BaseVisitor) VisitBigIntLiteral(*BigIntLiteral)                               {}
func (BaseVisitor) VisitBooleanLiteral(*BooleanLiteral)                             {}
func (BaseVisitor) VisitNilLiteral(*NilLiteral)                                     {}
func (BaseVisitor) VisitTemplateStringExpression(*TemplateStringExpression)         {}
func (BaseVisitor) VisitFormatStringExpression(*FormatStringExpression)             {}
func (BaseVisitor) VisitRegexExpression(*RegexExpression)                           {}
func (BaseVisitor) VisitReadInputExpression(*ReadInputExpression)                   {}
func (BaseVisitor) VisitArrayLiteral(*ArrayLiteral)                                 {}
func (BaseVisitor) VisitObjectLiteral(*ObjectLiteral)                               {}
func (BaseVisitor) VisitRangeExpression(*RangeExpression)                           {}
func (BaseVisitor) VisitBinaryExpression(*BinaryExpression)                         {}
func (BaseVisitor) VisitUnaryExpression(*UnaryExpression)                           {}
func (BaseVisitor) VisitShiftExpression(*ShiftExpression)                           {}
func (BaseVisitor) VisitTypeCheckExpression(*TypeCheckExpression)                   {}
func (BaseVisitor) VisitTypeCastExpression(*TypeCastExpression)                     {}
func (BaseVisitor) VisitConversionExpression(*ConversionExpression)                 {}
func (BaseVisitor) VisitNativeConstructionExpression(*NativeConstructionExpression) {}
func (BaseVisitor) VisitCallExpression(*CallExpression)                             {}
func (BaseVisitor) VisitMemberExpression(*MemberExpression)                         {}
func (BaseVisitor) VisitIndexExpression(*IndexExpression)                           {}
func (BaseVisitor) VisitAssignmentExpression(*AssignmentExpression)                 {}
func (BaseVisitor) VisitTernaryExpression(*TernaryExpression)                       {}
func (BaseVisitor) VisitAwaitExpression(*AwaitExpression)                           {}
func (BaseVisitor) VisitNewExpression(*NewExpression)                               {}
func (BaseVisitor) VisitVariantConstructionExpression(*VariantConstructionExpression) {}
func (BaseVisitor) VisitLambdaExpression(*LambdaExpression)                         {}
func (BaseVisitor) VisitCompileTimeExpression(*CompileTimeExpression)               {}
func (BaseVisitor) VisitPipelineExpression(*PipelineExpression)                     {}
func (BaseVisitor) VisitFilterExpression(*FilterExpression)                         {}
func (BaseVisitor) VisitIntraExpression(*IntraExpression)                           {}
func (BaseVisitor) VisitInterExpression(*InterExpression)                           {}
