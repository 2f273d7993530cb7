package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/faber/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenize_Keywords(t *testing.T) {
	toks := New(`fixum x numerus = 1`).Tokenize()
	require.Equal(t, []token.Kind{
		token.FIXUM, token.IDENT, token.IDENT, token.ASSIGN, token.INT, token.EOF,
	}, kinds(toks))
}

func TestTokenize_Operators(t *testing.T) {
	cases := []struct {
		src  string
		want []token.Kind
	}{
		{":-", []token.Kind{token.BIND, token.EOF}},
		{"== != <= >=", []token.Kind{token.EQ, token.NOT_EQ, token.LT_EQ, token.GT_EQ, token.EOF}},
		{"&& ||", []token.Kind{token.AND, token.OR, token.EOF}},
		{"?.  ?? ?", []token.Kind{token.OPTDOT, token.COALESCE, token.QUESTION, token.EOF}},
		{"..  ..=", []token.Kind{token.DOTDOT, token.DOTDOTEQ, token.EOF}},
		{"->  =>", []token.Kind{token.ARROW, token.FAT_ARROW, token.EOF}},
	}
	for _, c := range cases {
		toks := New(c.src).Tokenize()
		require.Equal(t, c.want, kinds(toks), "source: %q", c.src)
	}
}

func TestTokenize_Numbers(t *testing.T) {
	toks := New("42 3.14 9000000000000000000n").Tokenize()
	require.Equal(t, token.INT, toks[0].Kind)
	require.Equal(t, "42", toks[0].Lexeme)
	require.Equal(t, token.FLOAT, toks[1].Kind)
	require.Equal(t, "3.14", toks[1].Lexeme)
	require.Equal(t, token.BIGINT, toks[2].Kind)
	require.Equal(t, "9000000000000000000", toks[2].Lexeme)
}

func TestTokenize_BooleanAndNilLiterals(t *testing.T) {
	toks := New("verum falsum nihil").Tokenize()
	require.Equal(t, []token.Kind{token.TRUE, token.FALSE, token.NULLKW, token.EOF}, kinds(toks))
}

func TestTokenize_StringLiteral(t *testing.T) {
	toks := New(`"hello world"`).Tokenize()
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, "hello world", toks[0].Lexeme)
}

func TestTokenize_InterpolatedStringBecomesTemplate(t *testing.T) {
	toks := New(`"hi ${name}"`).Tokenize()
	require.Equal(t, token.TEMPLATE_STRING, toks[0].Kind)
}

func TestTokenize_FormatString(t *testing.T) {
	toks := New(`'pi = {pi}'`).Tokenize()
	require.Equal(t, token.FORMAT_STRING, toks[0].Kind)
	require.Equal(t, "pi = {pi}", toks[0].Lexeme)
}

func TestTokenize_LineAndBlockComments(t *testing.T) {
	toks := New("fixum x = 1 // trailing\n/* block */ fixum y = 2").Tokenize()
	require.Equal(t, []token.Kind{
		token.FIXUM, token.IDENT, token.ASSIGN, token.INT,
		token.FIXUM, token.IDENT, token.ASSIGN, token.INT, token.EOF,
	}, kinds(toks))
}

func TestTokenize_LatinKeywordSurface(t *testing.T) {
	toks := New("si sin secus dum ex in de fit fiet elige casu ceterum discerne").Tokenize()
	require.Equal(t, []token.Kind{
		token.SI, token.SIN, token.SECUS, token.DUM, token.EX, token.IN, token.DE,
		token.FIT, token.FIET, token.ELIGE, token.CASU, token.CETERUM, token.DISCERNE,
		token.EOF,
	}, kinds(toks))
}

func TestTokenize_PositionsTrackLineAndColumn(t *testing.T) {
	toks := New("fixum x\n= 1").Tokenize()
	require.Equal(t, 1, toks[0].Position.Line)
	assign := toks[2]
	require.Equal(t, token.ASSIGN, assign.Kind)
	require.Equal(t, 2, assign.Position.Line)
}

func TestTokenize_IllegalCharacter(t *testing.T) {
	toks := New("fixum x = #").Tokenize()
	require.Equal(t, token.ILLEGAL, toks[len(toks)-2].Kind)
}
