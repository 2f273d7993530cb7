package parser

import (
	"github.com/funvibe/faber/internal/ast"
	"github.com/funvibe/faber/internal/token"
)

// parseTypeAnnotation parses the single flat type-annotation shape section
// 3.3 specifies: an ownership preposition, a name (or function-type shape),
// optional type parameters, a `[]` array shorthand suffix, `?` nullability,
// and `|` union alternatives. Assumes p.curToken is the first token of the
// annotation.
func (p *Parser) parseTypeAnnotation() *ast.TypeAnnotation {
	t := p.parseTypeAnnotationPrimary()
	if t == nil {
		return nil
	}
	for p.peekTokenIs(token.PIPE) {
		p.nextToken()
		p.nextToken()
		alt := p.parseTypeAnnotationPrimary()
		t.Union = append(t.Union, alt)
	}
	return t
}

func (p *Parser) parseTypeAnnotationPrimary() *ast.TypeAnnotation {
	t := &ast.TypeAnnotation{Token: p.curToken}

	var ownership ast.Ownership
	if p.curTokenIs(token.DE) {
		ownership = ast.OwnershipBorrowed
		p.nextToken()
	} else if p.curTokenIs(token.IN) {
		ownership = ast.OwnershipMutableBorrow
		p.nextToken()
	}
	t.Ownership = ownership

	if p.curTokenIs(token.LPAREN) {
		p.nextToken()
		for !p.curTokenIs(token.RPAREN) {
			param := p.parseTypeAnnotation()
			t.FunctionParams = append(t.FunctionParams, param)
			if p.peekTokenIs(token.COMMA) {
				p.nextToken()
			}
			p.nextToken()
		}
		if !p.expectPeek(token.ARROW) {
			return t
		}
		p.nextToken()
		t.FunctionReturn = p.parseTypeAnnotation()
		return p.parseTypeSuffixes(t)
	}

	if !p.curTokenIs(token.IDENT) {
		p.addErrorf("expected type name, got %v", p.curToken.Kind)
		return t
	}
	t.Name = p.curToken.Lexeme

	if p.peekTokenIs(token.LT) {
		p.nextToken()
		p.nextToken()
		for !p.curTokenIs(token.GT) {
			if p.curTokenIs(token.INT) {
				n, _ := parseIntLiteral(p.curToken.Lexeme)
				t.TypeParameters = append(t.TypeParameters, ast.TypeParam{IsNumeric: true, NumericValue: n})
			} else {
				tp := p.parseTypeAnnotation()
				t.TypeParameters = append(t.TypeParameters, ast.TypeParam{Type: tp})
			}
			if p.peekTokenIs(token.COMMA) {
				p.nextToken()
			}
			p.nextToken()
		}
	}

	return p.parseTypeSuffixes(t)
}

func (p *Parser) parseTypeSuffixes(t *ast.TypeAnnotation) *ast.TypeAnnotation {
	for p.peekTokenIs(token.LBRACKET) {
		p.nextToken()
		if !p.expectPeek(token.RBRACKET) {
			return t
		}
		t.ArrayShorthand = true
	}
	if p.peekTokenIs(token.QUESTION) {
		p.nextToken()
		t.Nullable = true
	}
	return t
}

func parseIntLiteral(s string) (int, error) {
	n := 0
	neg := false
	for i, c := range s {
		if i == 0 && c == '-' {
			neg = true
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}
