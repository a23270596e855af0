// Package token defines the tokens produced when lexing imp source code.
package token

import "fmt"

// Type describes the type of a token as a string.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Char      int    // rune offset within the input
	LineStart int    // rune offset of the start of the current line
	Line      int    // 0-indexed line number
	Column    int    // 0-indexed column number
	File      string // filename
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Advance returns a new Position advanced by n runes.
// Note: This assumes the advance does not cross line boundaries.
func (p Position) Advance(n int) Position {
	return Position{
		Char:      p.Char + n,
		LineStart: p.LineStart,
		Line:      p.Line,
		Column:    p.Column + n,
		File:      p.File,
	}
}

// IsValid returns true if this position has been set.
func (p Position) IsValid() bool {
	return p.File != "" || p.Line > 0 || p.Column > 0 || p.Char > 0
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.LineNumber(), p.ColumnNumber())
	}
	return fmt.Sprintf("%d:%d", p.LineNumber(), p.ColumnNumber())
}

// NoPos is the zero value Position, representing an invalid/unset position.
var NoPos = Position{}

// Token represents one token lexed from the input source code.
type Token struct {
	Type          Type
	Literal       string
	StartPosition Position
	EndPosition   Position
}

// Is returns true if the token has the given type.
func (t Token) Is(typ Type) bool {
	return t.Type == typ
}

// Same reports whether two tokens have the same type and literal. Positions
// are ignored.
func (t Token) Same(other Token) bool {
	return t.Type == other.Type && t.Literal == other.Literal
}

// Source renders the token the way it would be written in source code.
func (t Token) Source() string {
	switch t.Type {
	case STRING:
		return fmt.Sprintf("%q", t.Literal)
	case EOF:
		return ""
	default:
		return t.Literal
	}
}

func (t Token) String() string {
	switch t.Type {
	case STRING, NUMBER, IDENT:
		return fmt.Sprintf("%s(%s)", t.Type, t.Literal)
	default:
		return string(t.Type)
	}
}

// Token types
const (
	ARROW      Type = "->"
	COMMA      Type = ","
	EOF        Type = "EOF"
	FOR_ASSIGN Type = "=>"
	FUNCTION   Type = "@"
	IDENT      Type = "IDENT"
	LBRACE     Type = "{"
	LBRACKET   Type = "["
	LPAREN     Type = "("
	NUMBER     Type = "NUMBER"
	RBRACE     Type = "}"
	RBRACKET   Type = "]"
	RPAREN     Type = ")"
	SEMICOLON  Type = ";"
	STRING     Type = "STRING"
)

// Statement keywords. These are lexed as identifiers and only gain meaning
// at the start of a statement.
const (
	DECL   = "decl"
	DEL    = "del"
	RETURN = "return"
	USE    = "use"
	IF     = "if"
	FOR    = "for"
	WHILE  = "while"
)

var keywords = map[string]bool{
	DECL:   true,
	DEL:    true,
	RETURN: true,
	USE:    true,
	IF:     true,
	FOR:    true,
	WHILE:  true,
}

// IsKeyword reports whether the identifier is a statement keyword.
func IsKeyword(identifier string) bool {
	return keywords[identifier]
}

// Closer returns the closing delimiter type matching the given opening
// delimiter, or false if typ is not an opening delimiter.
func Closer(typ Type) (Type, bool) {
	switch typ {
	case LBRACE:
		return RBRACE, true
	case LBRACKET:
		return RBRACKET, true
	case LPAREN:
		return RPAREN, true
	}
	return "", false
}

// IsCloser reports whether typ is a closing delimiter.
func IsCloser(typ Type) bool {
	return typ == RBRACE || typ == RBRACKET || typ == RPAREN
}
