package parser

import (
	"math/big"
	"strconv"

	"github.com/funvibe/faber/internal/ast"
	"github.com/funvibe/faber/internal/token"
)

func (p *Parser) parseIdentifier() ast.Expression {
	id := &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	id.SetPosition(p.curToken.Position)
	return id
}

func (p *Parser) parseSelfExpression() ast.Expression {
	s := &ast.SelfExpression{Token: p.curToken}
	s.SetPosition(p.curToken.Position)
	return s
}

func (p *Parser) parseStringLiteral() ast.Expression {
	l := &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Lexeme}
	l.SetPosition(p.curToken.Position)
	return l
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	tok := p.curToken
	n := &ast.NumberLiteral{Token: tok}
	n.SetPosition(tok.Position)
	if tok.Kind == token.FLOAT {
		n.IsFloat = true
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			p.addErrorf("invalid float literal %q", tok.Lexeme)
			return nil
		}
		n.FloatVal = v
		return n
	}
	v, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		p.addErrorf("invalid integer literal %q", tok.Lexeme)
		return nil
	}
	n.IntValue = v
	return n
}

func (p *Parser) parseBigIntLiteral() ast.Expression {
	tok := p.curToken
	digits := tok.Lexeme
	if len(digits) > 0 && (digits[len(digits)-1] == 'n' || digits[len(digits)-1] == 'N') {
		digits = digits[:len(digits)-1]
	}
	val, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		p.addErrorf("invalid big integer literal %q", tok.Lexeme)
		return nil
	}
	l := &ast.BigIntLiteral{Token: tok, Value: val}
	l.SetPosition(tok.Position)
	return l
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	l := &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
	l.SetPosition(p.curToken.Position)
	return l
}

func (p *Parser) parseNilLiteral() ast.Expression {
	l := &ast.NilLiteral{Token: p.curToken}
	l.SetPosition(p.curToken.Position)
	return l
}

// parseTemplateStringExpression splits a TEMPLATE_STRING token's raw lexeme
// on ${...} runs into literal StringLiteral parts and nested parsed
// expressions (section 3.2).
func (p *Parser) parseTemplateStringExpression() ast.Expression {
	tok := p.curToken
	t := &ast.TemplateStringExpression{Token: tok}
	t.SetPosition(tok.Position)

	src := tok.Lexeme
	i := 0
	for i < len(src) {
		start := i
		for i < len(src) && !(src[i] == '$' && i+1 < len(src) && src[i+1] == '{') {
			i++
		}
		if i > start {
			lit := &ast.StringLiteral{Value: src[start:i]}
			lit.SetPosition(tok.Position)
			t.Parts = append(t.Parts, lit)
		}
		if i >= len(src) {
			break
		}
		i += 2 // skip ${
		depth := 1
		exprStart := i
		for i < len(src) && depth > 0 {
			if src[i] == '{' {
				depth++
			} else if src[i] == '}' {
				depth--
				if depth == 0 {
					break
				}
			}
			i++
		}
		inner := src[exprStart:i]
		i++ // skip }

		sub, diags := ParseExpressionFragment(p.file, inner)
		p.diagnostics = append(p.diagnostics, diags...)
		if sub != nil {
			t.Parts = append(t.Parts, sub)
		}
	}
	return t
}

func (p *Parser) parseFormatStringExpression() ast.Expression {
	tok := p.curToken
	f := &ast.FormatStringExpression{Token: tok, Format: tok.Lexeme}
	f.SetPosition(tok.Position)
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		p.nextToken()
		f.Value = p.parseExpression(LOWEST)
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
	}
	return f
}

func (p *Parser) parseRegexExpression() ast.Expression {
	tok := p.curToken
	pattern, flags := splitTrailingFlags(tok.Lexeme)
	r := &ast.RegexExpression{Token: tok, Pattern: pattern, Flags: flags}
	r.SetPosition(tok.Position)
	return r
}

func splitTrailingFlags(s string) (pattern, flags string) {
	i := len(s)
	for i > 0 && isFlagLetter(s[i-1]) {
		i--
	}
	return s[:i], s[i:]
}

func isFlagLetter(c byte) bool {
	return c == 'i' || c == 'g' || c == 'm' || c == 's'
}

func (p *Parser) parseReadInputExpression() ast.Expression {
	tok := p.curToken
	r := &ast.ReadInputExpression{Token: tok}
	r.SetPosition(tok.Position)
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		p.nextToken()
		if !p.curTokenIs(token.RPAREN) {
			r.Prompt = p.parseExpression(LOWEST)
			if !p.expectPeek(token.RPAREN) {
				return nil
			}
		}
	}
	return r
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.curToken
	a := &ast.ArrayLiteral{Token: tok}
	a.SetPosition(tok.Position)
	a.Elements = p.parseExpressionList(token.RBRACKET)
	return a
}

func (p *Parser) parseExpressionList(end token.Kind) []ast.Expression {
	var list []ast.Expression
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	tok := p.curToken
	o := &ast.ObjectLiteral{Token: tok}
	o.SetPosition(tok.Position)
	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		if !p.curTokenIs(token.IDENT) && !p.curTokenIs(token.STRING) {
			p.addErrorf("expected field name, got %v", p.curToken.Kind)
			return nil
		}
		key := p.curToken.Lexeme
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		val := p.parseExpression(LOWEST)
		o.Fields = append(o.Fields, ast.ObjectField{Key: key, Value: val})
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return o
}

// parseGroupedOrLambda disambiguates `(expr)` from a lambda parameter list
// `(a, b) => expr` by scanning ahead for a matching `)` followed by `=>`.
func (p *Parser) parseGroupedOrLambda() ast.Expression {
	if p.looksLikeLambdaParams() {
		return p.parseLambdaExpression()
	}
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

// looksLikeLambdaParams scans ahead from curToken (which must be LPAREN) to
// find its matching RPAREN and reports whether FAT_ARROW follows it.
func (p *Parser) looksLikeLambdaParams() bool {
	depth := 0
	for i := p.pos - 2; i < len(p.tokens); i++ {
		k := p.tokens[i].Kind
		if k == token.LPAREN {
			depth++
		} else if k == token.RPAREN {
			depth--
			if depth == 0 {
				if i+1 >= len(p.tokens) {
					return false
				}
				next := p.tokens[i+1].Kind
				// Either a direct `=> body` or a `-> ReturnType => body`
				// annotation; a grouped expression is never followed by
				// either token.
				return next == token.FAT_ARROW || next == token.ARROW
			}
		}
		if k == token.EOF {
			return false
		}
	}
	return false
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.curToken
	u := &ast.UnaryExpression{Token: tok, Operator: tok.Lexeme}
	u.SetPosition(tok.Position)
	p.nextToken()
	u.Operand = p.parseExpression(UNARY)
	return u
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	b := &ast.BinaryExpression{Token: tok, Operator: tok.Lexeme, Left: left}
	b.SetPosition(tok.Position)
	prec := p.curPrecedence()
	p.nextToken()
	b.Right = p.parseExpression(prec)
	return b
}

func (p *Parser) parseRangeExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	r := &ast.RangeExpression{Token: tok, Low: left, Inclusive: tok.Kind == token.DOTDOTEQ}
	r.SetPosition(tok.Position)
	prec := p.curPrecedence()
	p.nextToken()
	r.High = p.parseExpression(prec)
	return r
}

func (p *Parser) parseTernaryExpression(cond ast.Expression) ast.Expression {
	tok := p.curToken
	t := &ast.TernaryExpression{Token: tok, Condition: cond}
	t.SetPosition(tok.Position)
	p.nextToken()
	t.Then = p.parseExpression(LOWEST)
	if !p.expectPeek(token.COLON) {
		return nil
	}
	p.nextToken()
	t.Else = p.parseExpression(TERNARY)
	return t
}

func (p *Parser) parseAssignmentExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	a := &ast.AssignmentExpression{Token: tok, Operator: tok.Lexeme, Target: left}
	a.SetPosition(tok.Position)
	p.nextToken()
	a.Value = p.parseExpression(LOWEST)
	return a
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	tok := p.curToken
	c := &ast.CallExpression{Token: tok, Callee: callee}
	c.SetPosition(tok.Position)
	c.Arguments = p.parseExpressionList(token.RPAREN)
	return c
}

func (p *Parser) parseMemberExpression(obj ast.Expression) ast.Expression {
	tok := p.curToken
	m := &ast.MemberExpression{Token: tok, Object: obj, OptionalChain: tok.Kind == token.OPTDOT}
	m.SetPosition(tok.Position)
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	m.Property = p.curToken.Lexeme
	if p.peekTokenIs(token.BANG) {
		p.nextToken()
		m.NonNullAssert = true
	}
	return m
}

func (p *Parser) parseIndexExpression(obj ast.Expression) ast.Expression {
	tok := p.curToken
	i := &ast.IndexExpression{Token: tok, Object: obj}
	i.SetPosition(tok.Position)
	p.nextToken()
	i.Index = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return i
}

func (p *Parser) parseTypeCastExpression(value ast.Expression) ast.Expression {
	tok := p.curToken
	t := &ast.TypeCastExpression{Token: tok, Value: value}
	t.SetPosition(tok.Position)
	p.nextToken()
	t.Type = p.parseTypeAnnotation()
	return t
}

func (p *Parser) parseTypeCheckExpression(value ast.Expression) ast.Expression {
	tok := p.curToken
	t := &ast.TypeCheckExpression{Token: tok, Value: value}
	t.SetPosition(tok.Position)
	p.nextToken()
	t.Type = p.parseTypeAnnotation()
	return t
}

func (p *Parser) parseIntraExpression(value ast.Expression) ast.Expression {
	tok := p.curToken
	i := &ast.IntraExpression{Token: tok, Value: value}
	i.SetPosition(tok.Position)
	p.nextToken()
	rng := p.parseExpression(RANGE_PREC)
	if r, ok := rng.(*ast.RangeExpression); ok {
		i.Range = r
	} else {
		p.addErrorf("intra expects a range expression")
	}
	return i
}

func (p *Parser) parseInterExpression(value ast.Expression) ast.Expression {
	tok := p.curToken
	i := &ast.InterExpression{Token: tok, Value: value}
	i.SetPosition(tok.Position)
	p.nextToken()
	i.Collection = p.parseExpression(COMPARISON)
	return i
}

func (p *Parser) parseAwaitExpression() ast.Expression {
	tok := p.curToken
	a := &ast.AwaitExpression{Token: tok}
	a.SetPosition(tok.Position)
	p.nextToken()
	a.Value = p.parseExpression(UNARY)
	return a
}

func (p *Parser) parseNewExpression() ast.Expression {
	tok := p.curToken
	n := &ast.NewExpression{Token: tok}
	n.SetPosition(tok.Position)
	p.nextToken()
	n.Type = p.parseTypeAnnotation()
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		n.Arguments = p.parseExpressionList(token.RPAREN)
	}
	return n
}

func (p *Parser) parseNativeConstructionExpression() ast.Expression {
	tok := p.curToken
	n := &ast.NativeConstructionExpression{Token: tok}
	n.SetPosition(tok.Position)
	p.nextToken()
	n.Type = p.parseTypeAnnotation()
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		n.Arguments = p.parseExpressionList(token.RPAREN)
	}
	return n
}

func (p *Parser) parseConversionExpression() ast.Expression {
	tok := p.curToken
	var kind ast.ConversionKind
	switch tok.Kind {
	case token.NUMERATUM:
		kind = ast.ConvertToNumber
	case token.TEXTATUM:
		kind = ast.ConvertToString
	case token.FRACTATUM:
		kind = ast.ConvertToFloat
	case token.BIVALENTUM:
		kind = ast.ConvertToBool
	}
	c := &ast.ConversionExpression{Token: tok, Kind: kind}
	c.SetPosition(tok.Position)
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	c.Value = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return c
}

func (p *Parser) parseVariantConstructionExpression() ast.Expression {
	tok := p.curToken
	v := &ast.VariantConstructionExpression{Token: tok}
	v.SetPosition(tok.Position)
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme
	if p.peekTokenIs(token.DOT) {
		p.nextToken()
		v.DiscretioName = name
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		v.VariantName = p.curToken.Lexeme
	} else {
		v.VariantName = name
	}
	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		for !p.peekTokenIs(token.RBRACE) {
			p.nextToken()
			key := p.curToken.Lexeme
			if !p.expectPeek(token.COLON) {
				return nil
			}
			p.nextToken()
			val := p.parseExpression(LOWEST)
			v.Fields = append(v.Fields, ast.ObjectField{Key: key, Value: val})
			if p.peekTokenIs(token.COMMA) {
				p.nextToken()
			}
		}
		if !p.expectPeek(token.RBRACE) {
			return nil
		}
	}
	return v
}

func (p *Parser) parseCompileTimeExpression() ast.Expression {
	tok := p.curToken
	c := &ast.CompileTimeExpression{Token: tok}
	c.SetPosition(tok.Position)
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()
	c.Body = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return c
}

// parseFilterExpression parses `ab collection ubi predicate`.
func (p *Parser) parseFilterExpression() ast.Expression {
	tok := p.curToken
	f := &ast.FilterExpression{Token: tok}
	f.SetPosition(tok.Position)
	p.nextToken()
	f.Source = p.parseExpression(CALL_PREC)
	if !p.expectPeek(token.UBI) {
		return nil
	}
	p.nextToken()
	f.Predicate = p.parseExpression(LOWEST)
	return f
}

// parseLambdaExpression parses `(params) => body`, `async (params) => body`,
// and the bare `(params) => body` form dispatched through
// parseGroupedOrLambda.
func (p *Parser) parseLambdaExpression() ast.Expression {
	tok := p.curToken
	l := &ast.LambdaExpression{Token: tok}
	l.SetPosition(tok.Position)
	if p.curTokenIs(token.ASYNC) {
		l.IsAsync = true
		if !p.expectPeek(token.LPAREN) {
			return nil
		}
	}
	if !p.curTokenIs(token.LPAREN) {
		if !p.expectPeek(token.LPAREN) {
			return nil
		}
	}
	l.Params = p.parseLambdaParams()
	if p.peekTokenIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		l.ReturnType = p.parseTypeAnnotation()
	}
	if !p.expectPeek(token.FAT_ARROW) {
		return nil
	}
	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		l.Body = p.parseBlockStatement()
	} else {
		p.nextToken()
		l.ExprBody = p.parseExpression(LOWEST)
	}
	return l
}

func (p *Parser) parseLambdaParams() []ast.LambdaParam {
	var params []ast.LambdaParam
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, p.parseLambdaParam())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseLambdaParam())
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

func (p *Parser) parseLambdaParam() ast.LambdaParam {
	lp := ast.LambdaParam{Name: p.curToken.Lexeme}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		lp.Type = p.parseTypeAnnotation()
	}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		lp.Default = p.parseExpression(LOWEST)
	}
	return lp
}
