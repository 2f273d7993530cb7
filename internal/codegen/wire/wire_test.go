package wire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/faber/internal/ast"
)

func textusField(name string) ast.FieldDeclaration {
	return ast.FieldDeclaration{Name: name, Type: &ast.TypeAnnotation{Name: "textus"}}
}

func TestIsInterchange(t *testing.T) {
	s := &ast.StructStatement{Name: "Nuntius", Implements: []string{"Interchange"}}
	require.True(t, IsInterchange(s))

	plain := &ast.StructStatement{Name: "Nuntius"}
	require.False(t, IsInterchange(plain))
}

func TestCollectOnlyInterchangeGenera(t *testing.T) {
	wanted := &ast.StructStatement{Name: "Nuntius", Implements: []string{"Interchange"}}
	skipped := &ast.StructStatement{Name: "Interna"}
	prog := &ast.Program{Statements: []ast.Statement{wanted, skipped}}

	got := Collect(prog)
	require.Len(t, got, 1)
	require.Equal(t, "Nuntius", got[0].Name)
}

func TestGenerateSchemaEmptyWhenNoneMarked(t *testing.T) {
	text, err := GenerateSchema("empty.proto", nil)
	require.NoError(t, err)
	require.Empty(t, text)
}

func TestGenerateSchemaRendersMessageAndService(t *testing.T) {
	s := &ast.StructStatement{
		Name:       "Nuntius",
		Implements: []string{"Interchange"},
		Fields: []ast.FieldDeclaration{
			textusField("Corpus"),
			{Name: "Numerus", Type: &ast.TypeAnnotation{Name: "numerus"}},
		},
	}

	text, err := GenerateSchema("nuntius.proto", []*ast.StructStatement{s})
	require.NoError(t, err)
	require.Contains(t, text, "message Nuntius")
	require.Contains(t, text, "service NuntiusService")
	require.True(t, strings.Contains(text, "string corpus") || strings.Contains(text, "string Corpus"))
}

func TestServiceDescNamesTheGeneratedService(t *testing.T) {
	s := &ast.StructStatement{Name: "Nuntius"}
	desc := ServiceDesc(s)
	require.Equal(t, "faber.wire.NuntiusService", desc.ServiceName)
}
