package parser

import (
	"github.com/funvibe/faber/internal/ast"
	"github.com/funvibe/faber/internal/token"
)

// parseStatement dispatches on the current token's kind to the matching
// statement parser. Unknown leading tokens fall back to an expression
// statement. A statement-level syntax error is recorded as a diagnostic and
// parsing goes on from the following token; no tokens are skipped to reach
// a statement boundary (diagnostics never abort parsing).
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Kind {
	case token.IMPORT:
		return p.parseImportStatement()
	case token.VARIA, token.FIXUM, token.FIGENDUM, token.VARIANDUM:
		return p.parseVariableStatement()
	case token.FUNCTIO:
		return p.parseFunctionStatement()
	case token.TYPUS:
		return p.parseTypeAliasStatement()
	case token.ORDO:
		return p.parseEnumStatement()
	case token.GENUS:
		return p.parseStructStatement()
	case token.PACTUM:
		return p.parseInterfaceStatement()
	case token.DISCRETIO:
		return p.parseUnionStatement()
	case token.SI:
		return p.parseIfStatement()
	case token.DUM:
		return p.parseWhileStatement()
	case token.EX, token.FIT, token.FIET:
		return p.parseIterationStatement()
	case token.IN:
		return p.parseMutationBlockStatement()
	case token.ELIGE:
		return p.parseValueSwitchStatement()
	case token.DISCERNE:
		return p.parseVariantSwitchStatement()
	case token.CUSTODI:
		return p.parseGuardStatement()
	case token.ADFIRMA:
		return p.parseAssertStatement()
	case token.REDDE:
		return p.parseReturnStatement()
	case token.RUMPE:
		return p.parseBreakStatement()
	case token.PERGE:
		return p.parseContinueStatement()
	case token.IACE:
		return p.parseThrowStatement(false)
	case token.MORI:
		return p.parseThrowStatement(true)
	case token.SCRIBE:
		return p.parsePrintStatement(ast.ChannelStdout)
	case token.VIDE:
		return p.parsePrintStatement(ast.ChannelDebug)
	case token.MONE:
		return p.parsePrintStatement(ast.ChannelWarn)
	case token.TEMPTA:
		return p.parseTryStatement()
	case token.LBRACE:
		return p.parseDoBlockStatement()
	case token.ASYNC:
		if p.peekTokenIs(token.PRINCIPIUM) {
			p.nextToken()
			return p.parseProgramEntryStatement(true)
		}
		return p.parseExpressionStatement()
	case token.PRINCIPIUM:
		return p.parseProgramEntryStatement(false)
	case token.SUITE:
		return p.parseSuiteStatement()
	case token.CASE:
		return p.parseCaseStatement()
	case token.ANTE:
		return p.parseSetupTeardownStatement(ast.TimingBefore)
	case token.POST:
		return p.parseSetupTeardownStatement(ast.TimingAfter)
	case token.CURA:
		return p.parseCuraStatement()
	case token.AD:
		return p.parseAdStatement()
	case token.DIRECTIVE:
		return p.parseDirectiveStatement()
	case token.SEMICOLON:
		return nil
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseImportStatement() ast.Statement {
	tok := p.curToken
	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		d := &ast.DestructureImportStatement{Token: tok}
		for !p.peekTokenIs(token.RBRACE) {
			p.nextToken()
			d.Bindings = append(d.Bindings, p.curToken.Lexeme)
			if p.peekTokenIs(token.COMMA) {
				p.nextToken()
			}
		}
		if !p.expectPeek(token.RBRACE) {
			return nil
		}
		if !p.expectPeek(token.STRING) {
			return nil
		}
		d.Path = p.curToken.Lexeme
		d.SetPosition(tok.Position)
		return d
	}

	imp := &ast.ImportStatement{Token: tok}
	imp.SetPosition(tok.Position)
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		p.nextToken()
		if p.curTokenIs(token.STAR) {
			imp.Wildcard = true
			p.nextToken()
		} else {
			for !p.curTokenIs(token.RPAREN) {
				imp.Symbols = append(imp.Symbols, p.curToken.Lexeme)
				if p.peekTokenIs(token.COMMA) {
					p.nextToken()
				}
				p.nextToken()
			}
		}
		if !p.curTokenIs(token.RPAREN) {
			if !p.expectPeek(token.RPAREN) {
				return nil
			}
		}
		if !p.expectPeek(token.STRING) {
			return nil
		}
		imp.Path = p.curToken.Lexeme
		return imp
	}

	if !p.expectPeek(token.STRING) {
		return nil
	}
	imp.Path = p.curToken.Lexeme
	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		imp.Alias = p.curToken.Lexeme
	}
	return imp
}

func (p *Parser) parseVariableStatement() ast.Statement {
	tok := p.curToken
	var kind ast.BindingKind
	switch tok.Kind {
	case token.VARIA:
		kind = ast.BindingMutable
	case token.FIXUM:
		kind = ast.BindingImmutable
	case token.FIGENDUM:
		kind = ast.BindingAsyncImmutable
	case token.VARIANDUM:
		kind = ast.BindingAsyncMutable
	}
	v := &ast.VariableStatement{Token: tok, Kind: kind}
	v.SetPosition(tok.Position)
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	v.Name = p.curToken.Lexeme
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		v.TypeAnnotation = p.parseTypeAnnotation()
	}
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	v.Value = p.parseExpression(LOWEST)
	return v
}

func (p *Parser) parseParameterList() []ast.Parameter {
	var params []ast.Parameter
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, p.parseParameter())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseParameter())
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

func (p *Parser) parseParameter() ast.Parameter {
	var ownership ast.Ownership
	if p.curTokenIs(token.DE) {
		ownership = ast.OwnershipBorrowed
		p.nextToken()
	} else if p.curTokenIs(token.IN) {
		ownership = ast.OwnershipMutableBorrow
		p.nextToken()
	}
	param := ast.Parameter{Ownership: ownership, Name: p.curToken.Lexeme}
	if p.peekTokenIs(token.DOTDOT) {
		param.IsVariadic = true
		p.nextToken()
	}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		param.Type = p.parseTypeAnnotation()
	}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		param.Default = p.parseExpression(LOWEST)
	}
	return param
}

func (p *Parser) parseFunctionStatement() ast.Statement {
	tok := p.curToken
	f := &ast.FunctionStatement{Token: tok}
	f.SetPosition(tok.Position)
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	f.Name = p.curToken.Lexeme
	f.Parameters = p.parseParameterList()
	if p.peekTokenIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		f.ReturnType = p.parseTypeAnnotation()
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	f.Body = p.parseBlockStatement()
	return f
}

func (p *Parser) parseTypeAliasStatement() ast.Statement {
	tok := p.curToken
	t := &ast.TypeAliasStatement{Token: tok}
	t.SetPosition(tok.Position)
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	t.Name = p.curToken.Lexeme
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	t.Target = p.parseTypeAnnotation()
	return t
}

func (p *Parser) parseEnumStatement() ast.Statement {
	tok := p.curToken
	e := &ast.EnumStatement{Token: tok}
	e.SetPosition(tok.Position)
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	e.Name = p.curToken.Lexeme
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		m := ast.EnumMember{Name: p.curToken.Lexeme}
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			m.Value = p.parseExpression(LOWEST)
		}
		e.Members = append(e.Members, m)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return e
}

func (p *Parser) parseFieldDeclaration() ast.FieldDeclaration {
	fd := ast.FieldDeclaration{Name: p.curToken.Lexeme}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		fd.Type = p.parseTypeAnnotation()
	}
	return fd
}

func (p *Parser) parseStructStatement() ast.Statement {
	tok := p.curToken
	s := &ast.StructStatement{Token: tok}
	s.SetPosition(tok.Position)
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	s.Name = p.curToken.Lexeme
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		s.Implements = append(s.Implements, p.curToken.Lexeme)
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			s.Implements = append(s.Implements, p.curToken.Lexeme)
		}
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		static := false
		if p.curTokenIs(token.AT) {
			static = true
			p.nextToken()
		}
		if p.curTokenIs(token.FUNCTIO) {
			fn := p.parseFunctionStatement().(*ast.FunctionStatement)
			if static {
				s.StaticMethods = append(s.StaticMethods, fn)
			} else {
				s.Methods = append(s.Methods, fn)
			}
			continue
		}
		fd := p.parseFieldDeclaration()
		if static {
			s.StaticFields = append(s.StaticFields, fd)
		} else {
			s.Fields = append(s.Fields, fd)
		}
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return s
}

func (p *Parser) parseInterfaceStatement() ast.Statement {
	tok := p.curToken
	i := &ast.InterfaceStatement{Token: tok}
	i.SetPosition(tok.Position)
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	i.Name = p.curToken.Lexeme
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		sig := ast.MethodSignature{Name: p.curToken.Lexeme}
		sig.Parameters = p.parseParameterList()
		if p.peekTokenIs(token.ARROW) {
			p.nextToken()
			p.nextToken()
			sig.ReturnType = p.parseTypeAnnotation()
		}
		i.Methods = append(i.Methods, sig)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return i
}

func (p *Parser) parseUnionStatement() ast.Statement {
	tok := p.curToken
	u := &ast.UnionStatement{Token: tok}
	u.SetPosition(tok.Position)
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	u.Name = p.curToken.Lexeme
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		variant := ast.UnionVariant{Name: p.curToken.Lexeme}
		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			for !p.peekTokenIs(token.RPAREN) {
				p.nextToken()
				variant.Fields = append(variant.Fields, p.parseFieldDeclaration())
				if p.peekTokenIs(token.COMMA) {
					p.nextToken()
				}
			}
			if !p.expectPeek(token.RPAREN) {
				return nil
			}
		}
		u.Variants = append(u.Variants, variant)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return u
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	tok := p.curToken
	b := &ast.BlockStatement{Token: tok}
	b.SetPosition(tok.Position)
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			b.Statements = append(b.Statements, stmt)
		}
		p.nextToken()
	}
	return b
}

// parseCatchClause parses the optional `cape (e) { ... }` attached to
// if/cura/ad/try statements. Assumes p.peekToken is CAPE; advances through it
// when present, otherwise leaves the token stream untouched.
func (p *Parser) parseCatchClause() *ast.CatchClause {
	if !p.peekTokenIs(token.CAPE) {
		return nil
	}
	p.nextToken()
	c := &ast.CatchClause{}
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return c
		}
		c.Binding = p.curToken.Lexeme
		if !p.expectPeek(token.RPAREN) {
			return c
		}
	}
	if !p.expectPeek(token.LBRACE) {
		return c
	}
	c.Body = p.parseBlockStatement()
	return c
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.curToken
	stmt := &ast.IfStatement{Token: tok}
	stmt.SetPosition(tok.Position)
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Then = p.parseBlockStatement()
	for p.peekTokenIs(token.SIN) {
		p.nextToken()
		elif := &ast.IfStatement{Token: p.curToken}
		elif.SetPosition(p.curToken.Position)
		p.nextToken()
		elif.Condition = p.parseExpression(LOWEST)
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		elif.Then = p.parseBlockStatement()
		stmt.ElseIf = append(stmt.ElseIf, elif)
	}
	if p.peekTokenIs(token.SECUS) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		stmt.Else = p.parseBlockStatement()
	}
	stmt.Catch = p.parseCatchClause()
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.curToken
	w := &ast.WhileStatement{Token: tok}
	w.SetPosition(tok.Position)
	p.nextToken()
	w.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	w.Body = p.parseBlockStatement()
	return w
}

func (p *Parser) parseIterationStatement() ast.Statement {
	tok := p.curToken
	it := &ast.IterationStatement{Token: tok}
	it.SetPosition(tok.Position)
	if tok.Kind == token.FIET {
		it.IsAsync = true
	}

	kind := ast.IterationEx
	// `ex item in collection` (value) vs `ex index, item in collection`
	// (indexed); both lead with `ex`/`fit`/`fiet`.
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	first := p.curToken.Lexeme
	if p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		it.IndexBinding = first
		it.Binding = p.curToken.Lexeme
		kind = ast.IterationIn
	} else {
		it.Binding = first
	}
	it.Kind = kind
	if !p.expectPeek(token.IN) {
		return nil
	}
	p.nextToken()
	it.Collection = p.parseExpression(LOWEST)
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	it.Body = p.parseBlockStatement()
	return it
}

func (p *Parser) parseMutationBlockStatement() ast.Statement {
	tok := p.curToken
	m := &ast.MutationBlockStatement{Token: tok}
	m.SetPosition(tok.Position)
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	m.Body = p.parseBlockStatement()
	return m
}

func (p *Parser) parseValueSwitchStatement() ast.Statement {
	tok := p.curToken
	s := &ast.ValueSwitchStatement{Token: tok}
	s.SetPosition(tok.Position)
	p.nextToken()
	s.Subject = p.parseExpression(LOWEST)
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		var c ast.ValueCase
		if p.curTokenIs(token.CETERUM) {
			c.Default = true
		} else if p.curTokenIs(token.CASU) {
			p.nextToken()
			c.Values = append(c.Values, p.parseExpression(LOWEST))
			for p.peekTokenIs(token.COMMA) {
				p.nextToken()
				p.nextToken()
				c.Values = append(c.Values, p.parseExpression(LOWEST))
			}
		} else {
			p.addErrorf("expected casu or ceterum in elige block, got %v", p.curToken.Kind)
			return nil
		}
		if !p.expectPeek(token.COLON) {
			return nil
		}
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		c.Body = p.parseBlockStatement()
		s.Cases = append(s.Cases, c)
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return s
}

func (p *Parser) parseVariantPattern() *ast.VariantPattern {
	pat := &ast.VariantPattern{Token: p.curToken}
	if p.curTokenIs(token.IDENT) && p.curToken.Lexeme == "_" {
		pat.Wildcard = true
		return pat
	}
	pat.VariantNames = append(pat.VariantNames, p.curToken.Lexeme)
	for p.peekTokenIs(token.PIPE) {
		p.nextToken()
		p.nextToken()
		pat.VariantNames = append(pat.VariantNames, p.curToken.Lexeme)
	}
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		for !p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			pat.Bindings = append(pat.Bindings, p.curToken.Lexeme)
			if p.peekTokenIs(token.COMMA) {
				p.nextToken()
			}
		}
		p.nextToken()
	}
	return pat
}

func (p *Parser) parseVariantSwitchStatement() ast.Statement {
	tok := p.curToken
	s := &ast.VariantSwitchStatement{Token: tok}
	s.SetPosition(tok.Position)
	p.nextToken()
	s.Subject = p.parseExpression(LOWEST)
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	for !p.peekTokenIs(token.RBRACE) {
		if !p.expectPeek(token.CASU) {
			return nil
		}
		p.nextToken()
		pat := p.parseVariantPattern()
		if !p.expectPeek(token.COLON) {
			return nil
		}
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		body := p.parseBlockStatement()
		s.Cases = append(s.Cases, ast.VariantCase{Pattern: pat, Body: body})
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return s
}

func (p *Parser) parseGuardStatement() ast.Statement {
	tok := p.curToken
	g := &ast.GuardStatement{Token: tok}
	g.SetPosition(tok.Position)
	p.nextToken()
	g.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.SECUS) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	g.ElseBody = p.parseBlockStatement()
	return g
}

func (p *Parser) parseAssertStatement() ast.Statement {
	tok := p.curToken
	a := &ast.AssertStatement{Token: tok}
	a.SetPosition(tok.Position)
	p.nextToken()
	a.Condition = p.parseExpression(LOWEST)
	if p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		a.Message = p.parseExpression(LOWEST)
	}
	return a
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.curToken
	r := &ast.ReturnStatement{Token: tok}
	r.SetPosition(tok.Position)
	if p.peekTokenIs(token.SEMICOLON) || p.peekTokenIs(token.RBRACE) {
		return r
	}
	p.nextToken()
	r.Value = p.parseExpression(LOWEST)
	return r
}

func (p *Parser) parseBreakStatement() ast.Statement {
	b := &ast.BreakStatement{Token: p.curToken}
	b.SetPosition(p.curToken.Position)
	return b
}

func (p *Parser) parseContinueStatement() ast.Statement {
	c := &ast.ContinueStatement{Token: p.curToken}
	c.SetPosition(p.curToken.Position)
	return c
}

func (p *Parser) parseThrowStatement(fatal bool) ast.Statement {
	tok := p.curToken
	t := &ast.ThrowStatement{Token: tok, Fatal: fatal}
	t.SetPosition(tok.Position)
	p.nextToken()
	t.Value = p.parseExpression(LOWEST)
	return t
}

func (p *Parser) parsePrintStatement(channel ast.PrintChannel) ast.Statement {
	tok := p.curToken
	pr := &ast.PrintStatement{Token: tok, Channel: channel}
	pr.SetPosition(tok.Position)
	p.nextToken()
	pr.Arguments = append(pr.Arguments, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		pr.Arguments = append(pr.Arguments, p.parseExpression(LOWEST))
	}
	return pr
}

func (p *Parser) parseTryStatement() ast.Statement {
	tok := p.curToken
	t := &ast.TryStatement{Token: tok}
	t.SetPosition(tok.Position)
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	t.Body = p.parseBlockStatement()
	t.Catch = p.parseCatchClause()
	if p.peekTokenIs(token.DEMUM) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		t.Finally = p.parseBlockStatement()
	}
	return t
}

func (p *Parser) parseDoBlockStatement() ast.Statement {
	tok := p.curToken
	d := &ast.DoBlockStatement{Token: tok}
	d.SetPosition(tok.Position)
	d.Body = p.parseBlockStatement()
	return d
}

func (p *Parser) parseProgramEntryStatement(isAsync bool) ast.Statement {
	tok := p.curToken
	pe := &ast.ProgramEntryStatement{Token: tok, IsAsync: isAsync}
	pe.SetPosition(tok.Position)
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	pe.Body = p.parseBlockStatement()
	return pe
}

func (p *Parser) parseSuiteStatement() ast.Statement {
	tok := p.curToken
	s := &ast.SuiteStatement{Token: tok}
	s.SetPosition(tok.Position)
	if !p.expectPeek(token.STRING) {
		return nil
	}
	s.Name = p.curToken.Lexeme
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			s.Body = append(s.Body, stmt)
		}
		p.nextToken()
	}
	return s
}

func (p *Parser) parseCaseStatement() ast.Statement {
	tok := p.curToken
	c := &ast.CaseStatement{Token: tok}
	c.SetPosition(tok.Position)
	if !p.expectPeek(token.STRING) {
		return nil
	}
	c.Name = p.curToken.Lexeme
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	c.Body = p.parseBlockStatement()
	return c
}

func (p *Parser) parseSetupTeardownStatement(timing ast.SetupTeardownTiming) ast.Statement {
	tok := p.curToken
	s := &ast.SetupTeardownStatement{Token: tok, Timing: timing, AllCases: true}
	s.SetPosition(tok.Position)
	if p.peekTokenIs(token.CASE) {
		p.nextToken()
		s.AllCases = false
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	s.Body = p.parseBlockStatement()
	return s
}

func (p *Parser) parseCuraStatement() ast.Statement {
	tok := p.curToken
	c := &ast.CuraStatement{Token: tok}
	c.SetPosition(tok.Position)
	p.nextToken()
	switch p.curToken.Lexeme {
	case "arena":
		c.Kind = ast.CuratorArena
	case "page":
		c.Kind = ast.CuratorPage
	default:
		c.Kind = ast.CuratorGeneric
	}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	c.Binding = p.curToken.Lexeme
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	c.Source = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	c.Body = p.parseBlockStatement()
	c.Catch = p.parseCatchClause()
	return c
}

func (p *Parser) parseAdStatement() ast.Statement {
	tok := p.curToken
	a := &ast.AdStatement{Token: tok}
	a.SetPosition(tok.Position)
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	a.Target = p.curToken.Lexeme
	a.Verb = ast.DispatchSync
	if p.peekTokenIs(token.ASYNC) {
		p.nextToken()
		a.Verb = ast.DispatchAsync
	}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	a.Arguments = p.parseExpressionList(token.RPAREN)
	if p.peekTokenIs(token.FAT_ARROW) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		a.Binding = p.curToken.Lexeme
	}
	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		a.Body = p.parseBlockStatement()
	}
	a.Catch = p.parseCatchClause()
	return a
}

func (p *Parser) parseDirectiveStatement() ast.Statement {
	tok := p.curToken
	d := &ast.DirectiveStatement{Token: tok}
	d.SetPosition(tok.Position)
	if !p.expectPeek(token.STRING) {
		return nil
	}
	d.Name = p.curToken.Lexeme
	return d
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.curToken
	e := &ast.ExpressionStatement{Token: tok}
	e.SetPosition(tok.Position)
	e.Expression = p.parseExpression(LOWEST)
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return e
}
