package parser

import "github.com/funvibe/faber/internal/token"

func (p *Parser) registerPrefix() {
	p.registerPrefixFn(token.IDENT, p.parseIdentifier)
	p.registerPrefixFn(token.SELF, p.parseSelfExpression)
	p.registerPrefixFn(token.STRING, p.parseStringLiteral)
	p.registerPrefixFn(token.TEMPLATE_STRING, p.parseTemplateStringExpression)
	p.registerPrefixFn(token.FORMAT_STRING, p.parseFormatStringExpression)
	p.registerPrefixFn(token.REGEX, p.parseRegexExpression)
	p.registerPrefixFn(token.INT, p.parseNumberLiteral)
	p.registerPrefixFn(token.FLOAT, p.parseNumberLiteral)
	p.registerPrefixFn(token.BIGINT, p.parseBigIntLiteral)
	p.registerPrefixFn(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefixFn(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefixFn(token.NULLKW, p.parseNilLiteral)
	p.registerPrefixFn(token.LEGE, p.parseReadInputExpression)
	p.registerPrefixFn(token.LBRACKET, p.parseArrayLiteral)
	p.registerPrefixFn(token.LBRACE, p.parseObjectLiteral)
	p.registerPrefixFn(token.LPAREN, p.parseGroupedOrLambda)
	p.registerPrefixFn(token.MINUS, p.parseUnaryExpression)
	p.registerPrefixFn(token.NOT, p.parseUnaryExpression)
	p.registerPrefixFn(token.BANG, p.parseUnaryExpression)
	p.registerPrefixFn(token.AWAIT, p.parseAwaitExpression)
	p.registerPrefixFn(token.NEW, p.parseNewExpression)
	p.registerPrefixFn(token.INNATUM, p.parseNativeConstructionExpression)
	p.registerPrefixFn(token.NUMERATUM, p.parseConversionExpression)
	p.registerPrefixFn(token.TEXTATUM, p.parseConversionExpression)
	p.registerPrefixFn(token.FRACTATUM, p.parseConversionExpression)
	p.registerPrefixFn(token.BIVALENTUM, p.parseConversionExpression)
	p.registerPrefixFn(token.FINGE, p.parseVariantConstructionExpression)
	p.registerPrefixFn(token.PRAEFIXUM, p.parseCompileTimeExpression)
	p.registerPrefixFn(token.AB, p.parseFilterExpression)
	p.registerPrefixFn(token.ASYNC, p.parseLambdaExpression)
}

func (p *Parser) registerInfix() {
	p.registerInfixFn(token.PLUS, p.parseBinaryExpression)
	p.registerInfixFn(token.MINUS, p.parseBinaryExpression)
	p.registerInfixFn(token.STAR, p.parseBinaryExpression)
	p.registerInfixFn(token.SLASH, p.parseBinaryExpression)
	p.registerInfixFn(token.PERCENT, p.parseBinaryExpression)
	p.registerInfixFn(token.EQ, p.parseBinaryExpression)
	p.registerInfixFn(token.NOT_EQ, p.parseBinaryExpression)
	p.registerInfixFn(token.LT, p.parseBinaryExpression)
	p.registerInfixFn(token.GT, p.parseBinaryExpression)
	p.registerInfixFn(token.LT_EQ, p.parseBinaryExpression)
	p.registerInfixFn(token.GT_EQ, p.parseBinaryExpression)
	p.registerInfixFn(token.AND, p.parseBinaryExpression)
	p.registerInfixFn(token.OR, p.parseBinaryExpression)
	p.registerInfixFn(token.COALESCE, p.parseBinaryExpression)
	p.registerInfixFn(token.DOTDOT, p.parseRangeExpression)
	p.registerInfixFn(token.DOTDOTEQ, p.parseRangeExpression)
	p.registerInfixFn(token.QUESTION, p.parseTernaryExpression)
	p.registerInfixFn(token.ASSIGN, p.parseAssignmentExpression)
	p.registerInfixFn(token.PLUS_ASSIGN, p.parseAssignmentExpression)
	p.registerInfixFn(token.MINUS_ASSIGN, p.parseAssignmentExpression)
	p.registerInfixFn(token.STAR_ASSIGN, p.parseAssignmentExpression)
	p.registerInfixFn(token.SLASH_ASSIGN, p.parseAssignmentExpression)
	p.registerInfixFn(token.PERCENT_ASSIGN, p.parseAssignmentExpression)
	p.registerInfixFn(token.LPAREN, p.parseCallExpression)
	p.registerInfixFn(token.DOT, p.parseMemberExpression)
	p.registerInfixFn(token.OPTDOT, p.parseMemberExpression)
	p.registerInfixFn(token.LBRACKET, p.parseIndexExpression)
	p.registerInfixFn(token.QUA, p.parseTypeCastExpression)
	p.registerInfixFn(token.EST, p.parseTypeCheckExpression)
	p.registerInfixFn(token.INTRA, p.parseIntraExpression)
	p.registerInfixFn(token.INTER, p.parseInterExpression)
}
