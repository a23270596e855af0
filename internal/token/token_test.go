package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsKeyword(t *testing.T) {
	for key := range keywords {
		require.True(t, IsKeyword(key), key)
		// Keywords are case sensitive.
		require.False(t, IsKeyword(strings.ToUpper(key)), key)
	}
	require.False(t, IsKeyword("println"))
}

func TestPosition(t *testing.T) {
	tok := Token{
		Type:    IDENT,
		Literal: "foo",
		StartPosition: Position{
			Line:   2,
			Column: 0,
		},
	}
	// Switches to 1-indexed
	require.Equal(t, 3, tok.StartPosition.LineNumber())
	require.Equal(t, 1, tok.StartPosition.ColumnNumber())
	require.Equal(t, "3:1", tok.StartPosition.String())

	tok.StartPosition.File = "main.imp"
	require.Equal(t, "main.imp:3:1", tok.StartPosition.String())
}

func TestCloser(t *testing.T) {
	tests := []struct {
		open  Type
		close Type
	}{
		{LBRACE, RBRACE},
		{LBRACKET, RBRACKET},
		{LPAREN, RPAREN},
	}
	for _, tt := range tests {
		got, ok := Closer(tt.open)
		require.True(t, ok)
		require.Equal(t, tt.close, got)
		require.True(t, IsCloser(tt.close))
	}
	_, ok := Closer(RBRACE)
	require.False(t, ok)
}

func TestSource(t *testing.T) {
	require.Equal(t, `"a b"`, Token{Type: STRING, Literal: "a b"}.Source())
	require.Equal(t, "-1.5", Token{Type: NUMBER, Literal: "-1.5"}.Source())
	require.Equal(t, "@", Token{Type: FUNCTION, Literal: "@"}.Source())
	require.True(t, Token{Type: IDENT, Literal: "x"}.Same(Token{Type: IDENT, Literal: "x", StartPosition: Position{Line: 4}}))
}
