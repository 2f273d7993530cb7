// Package parser implements a Pratt (precedence-climbing) recursive-descent
// parser over the token stream from internal/lexer, producing an
// internal/ast.Program. Structured the way the teacher's internal/parser
// package is (one file per expression/statement family, sharing a Parser
// core with prefix/infix parse-function tables), though the core Parser
// type itself — curToken/peekToken, the precedence table, expectPeek — is
// authored fresh here: the retrieval pack never surfaced the teacher's own
// equivalent file, only the family files that consume it.
package parser

import (
	"fmt"

	"github.com/funvibe/faber/internal/ast"
	"github.com/funvibe/faber/internal/diagnostics"
	"github.com/funvibe/faber/internal/lexer"
	"github.com/funvibe/faber/internal/token"
)

// Precedence levels, lowest to highest. `qua` binds tighter than additive
// operators per the resolved cast-precedence question (SPEC_FULL.md 9).
const (
	LOWEST int = iota
	ASSIGNMENT
	TERNARY
	COALESCE_PREC
	LOGIC_OR
	LOGIC_AND
	EQUALITY
	COMPARISON
	RANGE_PREC
	ADDITIVE
	MULTIPLICATIVE
	CAST // qua, est
	UNARY
	CALL_PREC
	MEMBER_PREC
)

var precedences = map[token.Kind]int{
	token.ASSIGN:         ASSIGNMENT,
	token.PLUS_ASSIGN:    ASSIGNMENT,
	token.MINUS_ASSIGN:   ASSIGNMENT,
	token.STAR_ASSIGN:    ASSIGNMENT,
	token.SLASH_ASSIGN:   ASSIGNMENT,
	token.PERCENT_ASSIGN: ASSIGNMENT,
	token.QUESTION: TERNARY,
	token.COALESCE: COALESCE_PREC,
	token.OR:       LOGIC_OR,
	token.AND:      LOGIC_AND,
	token.EQ:       EQUALITY,
	token.NOT_EQ:   EQUALITY,
	token.LT:       COMPARISON,
	token.GT:       COMPARISON,
	token.LT_EQ:    COMPARISON,
	token.GT_EQ:    COMPARISON,
	token.DOTDOT:   RANGE_PREC,
	token.DOTDOTEQ: RANGE_PREC,
	token.PLUS:     ADDITIVE,
	token.MINUS:    ADDITIVE,
	token.STAR:     MULTIPLICATIVE,
	token.SLASH:    MULTIPLICATIVE,
	token.PERCENT:  MULTIPLICATIVE,
	token.QUA:      CAST,
	token.EST:      CAST,
	token.LPAREN:   CALL_PREC,
	token.LBRACKET: MEMBER_PREC,
	token.DOT:      MEMBER_PREC,
	token.OPTDOT:   MEMBER_PREC,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser holds the two-token lookahead window and accumulates diagnostics
// as it goes, never aborting on the first syntax error (matching the
// diagnostics-never-throw discipline carried through the whole pipeline).
type Parser struct {
	tokens []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token

	file        string
	diagnostics []*diagnostics.Diagnostic

	prefixParseFns map[token.Kind]prefixParseFn
	infixParseFns  map[token.Kind]infixParseFn
}

// New creates a Parser over source, tokenizing it with internal/lexer.
func New(file, source string) *Parser {
	toks := lexer.New(source).Tokenize()
	p := &Parser{tokens: toks, file: file}
	p.prefixParseFns = make(map[token.Kind]prefixParseFn)
	p.infixParseFns = make(map[token.Kind]infixParseFn)
	p.registerPrefix()
	p.registerInfix()
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.tokens) {
		p.peekToken = p.tokens[p.pos]
		p.pos++
	} else {
		p.peekToken = token.Token{Kind: token.EOF}
	}
}

func (p *Parser) curTokenIs(k token.Kind) bool  { return p.curToken.Kind == k }
func (p *Parser) peekTokenIs(k token.Kind) bool { return p.peekToken.Kind == k }

func (p *Parser) expectPeek(k token.Kind) bool {
	if p.peekTokenIs(k) {
		p.nextToken()
		return true
	}
	p.peekError(k)
	return false
}

func (p *Parser) peekError(k token.Kind) {
	p.addErrorf("expected next token to be %v, got %v instead", k, p.peekToken.Kind)
}

func (p *Parser) addErrorf(format string, args ...interface{}) {
	d := &diagnostics.Diagnostic{
		Code:     diagnostics.ErrUnsupportedConstruct,
		Severity: diagnostics.SeverityError,
		Message:  fmt.Sprintf(format, args...),
		Position: p.curToken.Position,
		File:     p.file,
	}
	p.diagnostics = append(p.diagnostics, d)
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Kind]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Kind]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) registerPrefixFn(k token.Kind, fn prefixParseFn) { p.prefixParseFns[k] = fn }
func (p *Parser) registerInfixFn(k token.Kind, fn infixParseFn)   { p.infixParseFns[k] = fn }

// ParseProgram consumes the whole token stream and returns the Program node
// plus any diagnostics gathered along the way (syntax errors never abort
// parsing; after a failed statement the parser advances one token and
// tries again).
func ParseProgram(file, source string) (*ast.Program, []*diagnostics.Diagnostic) {
	p := New(file, source)
	prog := &ast.Program{File: file}
	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.nextToken()
	}
	return prog, p.diagnostics
}

// ParseExpressionFragment parses a standalone expression, used to parse the
// ${...} interpolation slots found inside template strings.
func ParseExpressionFragment(file, source string) (ast.Expression, []*diagnostics.Diagnostic) {
	p := New(file, source)
	expr := p.parseExpression(LOWEST)
	return expr, p.diagnostics
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Kind]
	if prefix == nil {
		p.addErrorf("no prefix parse function for %v found", p.curToken.Kind)
		return nil
	}
	leftExp := prefix()

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Kind]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}
	return leftExp
}
