package lexer

import (
	"testing"

	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/internal/token"
	"github.com/stretchr/testify/require"
)

type expectedToken struct {
	expectedType    token.Type
	expectedLiteral string
}

func checkTokens(t *testing.T, input string, tests []expectedToken) {
	t.Helper()
	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - Literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestHelloWorld(t *testing.T) {
	checkTokens(t, `@main(){ println("hi"); }`, []expectedToken{
		{token.FUNCTION, "@"},
		{token.IDENT, "main"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENT, "println"},
		{token.LPAREN, "("},
		{token.STRING, "hi"},
		{token.RPAREN, ")"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	})
}

func TestPunctuation(t *testing.T) {
	checkTokens(t, "@{}()[];, -> =>", []expectedToken{
		{token.FUNCTION, "@"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.LBRACKET, "["},
		{token.RBRACKET, "]"},
		{token.SEMICOLON, ";"},
		{token.COMMA, ","},
		{token.ARROW, "->"},
		{token.FOR_ASSIGN, "=>"},
		{token.EOF, ""},
	})
}

func TestNumbers(t *testing.T) {
	checkTokens(t, "1 23.5 -4 -0.25 1.2.3 7.", []expectedToken{
		{token.NUMBER, "1"},
		{token.NUMBER, "23.5"},
		{token.NUMBER, "-4"},
		{token.NUMBER, "-0.25"},
		{token.NUMBER, "1.2"},
	})
	// The second '.' ends the first literal and is not a valid token on its own.
	l := New("1.2.3")
	_, err := l.Next()
	require.Nil(t, err)
	_, err = l.Next()
	require.True(t, errors.HasCode(err, errors.UnexpectedChar))
}

func TestIdentifiers(t *testing.T) {
	checkTokens(t, "foo bar_baz x1 ünï decl", []expectedToken{
		{token.IDENT, "foo"},
		{token.IDENT, "bar_baz"},
		{token.IDENT, "x1"},
		{token.IDENT, "ünï"},
		{token.IDENT, "decl"},
		{token.EOF, ""},
	})
}

func TestComments(t *testing.T) {
	checkTokens(t, "# a comment\n spanning lines # foo # another # bar", []expectedToken{
		{token.IDENT, "foo"},
		{token.IDENT, "bar"},
		{token.EOF, ""},
	})
	_, err := Tokenize("foo # never closed", "")
	require.True(t, errors.HasCode(err, errors.UnexpectedEOF))
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello world"`, "hello world"},
		{`"line\nbreak"`, "line\nbreak"},
		{`"nul\u"`, "nul\x00"},
		{"\"cont\\\ninued\"", "continued"},
		{`"say \"hi\""`, `say "hi"`},
		{`"back\\slash"`, `back\slash`},
		{"\"multi\nline\"", "multi\nline"},
	}
	for _, tt := range tests {
		tokens, err := Tokenize(tt.input, "")
		require.Nil(t, err, tt.input)
		require.Len(t, tokens, 1)
		require.Equal(t, token.STRING, tokens[0].Type)
		require.Equal(t, tt.expected, tokens[0].Literal)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := Tokenize("@main() {\n  println(\"abc", "main.imp")
	require.Error(t, err)
	e, ok := errors.As(err)
	require.True(t, ok)
	require.Equal(t, errors.UnexpectedEOF, e.Code)
	require.Equal(t, errors.KindLexical, e.Kind())
	require.Equal(t, 2, e.Location.Line)
	require.Equal(t, 15, e.Location.Column)
	require.Equal(t, "main.imp", e.Location.Filename)
	require.Equal(t, `  println("abc`, e.Location.Source)
}

func TestUnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("@main() {\n\tx $ y\n}", "")
	e, ok := errors.As(err)
	require.True(t, ok)
	require.Equal(t, errors.UnexpectedChar, e.Code)
	require.Equal(t, 2, e.Location.Line)
	require.Equal(t, 4, e.Location.Column)
	require.Contains(t, e.Message, `'$'`)
}

func TestBadDashAndEquals(t *testing.T) {
	tests := []struct {
		input string
		code  errors.ErrorCode
	}{
		{"-x", errors.UnexpectedChar},
		{"-", errors.UnexpectedEOF},
		{"=x", errors.UnexpectedChar},
		{"=", errors.UnexpectedEOF},
		{"= >", errors.UnexpectedChar},
	}
	for _, tt := range tests {
		_, err := Tokenize(tt.input, "")
		require.True(t, errors.HasCode(err, tt.code), tt.input)
	}
}

func TestTokenPositions(t *testing.T) {
	tokens, err := Tokenize("@f(a) {\n  b;\n}", "")
	require.Nil(t, err)
	b := tokens[6]
	require.Equal(t, "b", b.Literal)
	require.Equal(t, 2, b.StartPosition.LineNumber())
	require.Equal(t, 3, b.StartPosition.ColumnNumber())
	require.Equal(t, 4, b.EndPosition.ColumnNumber())
}

func TestLineText(t *testing.T) {
	_, err := Tokenize("first\n  second $line\nthird", "x.imp")
	ierr, ok := errors.As(err)
	require.True(t, ok)
	require.Equal(t, "  second $line", ierr.Location.Source)
	require.Equal(t, 2, ierr.Location.Line)

	require.Equal(t, "third", LineText("first\nsecond line\nthird", 3))
	require.Equal(t, "", LineText("x", 4))
}
