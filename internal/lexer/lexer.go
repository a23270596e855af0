// Package lexer converts imp source code into a stream of tokens.
package lexer

import (
	"strings"
	"unicode"

	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/internal/token"
)

// Lexer holds our object-state.
type Lexer struct {
	// The source being lexed
	input []rune

	// The current position (index of the next rune to be read)
	pos int

	// 0-indexed line and column of the next rune
	line   int
	column int

	// rune offset where the current line begins
	lineStart int

	// Optional file name for error messages
	file string
}

// New returns a Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

// SetFilename sets the file name used in token positions and errors.
func (l *Lexer) SetFilename(file string) {
	l.file = file
}

// Tokenize lexes the whole input. The trailing EOF token is not included.
func Tokenize(input string, filename string) ([]token.Token, error) {
	l := New(input)
	l.SetFilename(filename)
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token from the input. At the end of the input an
// EOF token is returned, repeatedly.
func (l *Lexer) Next() (token.Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return token.Token{}, err
	}
	start := l.position()
	ch, ok := l.peek(0)
	if !ok {
		return token.Token{Type: token.EOF, StartPosition: start, EndPosition: start}, nil
	}
	switch {
	case isLetter(ch):
		return l.readIdentifier(start), nil
	case isDigit(ch):
		return l.readNumber(start, false), nil
	}
	switch ch {
	case '"':
		return l.readString(start)
	case '-':
		next, ok := l.peek(1)
		switch {
		case !ok:
			l.advance()
			return token.Token{}, l.errorf(errors.UnexpectedEOF, l.position(), "unexpected end of input after '-'")
		case isDigit(next):
			return l.readNumber(start, true), nil
		case next == '>':
			l.advance()
			l.advance()
			return l.newToken(token.ARROW, "->", start), nil
		default:
			l.advance()
			return token.Token{}, l.errorf(errors.UnexpectedChar, l.position(),
				"unexpected character %q after '-' (expected a digit or '>')", next)
		}
	case '=':
		next, ok := l.peek(1)
		l.advance()
		if !ok {
			return token.Token{}, l.errorf(errors.UnexpectedEOF, l.position(), "unexpected end of input after '='")
		}
		if next != '>' {
			return token.Token{}, l.errorf(errors.UnexpectedChar, l.position(),
				"unexpected character %q after '=' (expected '>')", next)
		}
		l.advance()
		return l.newToken(token.FOR_ASSIGN, "=>", start), nil
	}
	if typ, found := punctuation[ch]; found {
		l.advance()
		return l.newToken(typ, string(ch), start), nil
	}
	return token.Token{}, l.errorf(errors.UnexpectedChar, start, "unexpected character %q", ch)
}

var punctuation = map[rune]token.Type{
	'@': token.FUNCTION,
	'{': token.LBRACE,
	'}': token.RBRACE,
	'(': token.LPAREN,
	')': token.RPAREN,
	'[': token.LBRACKET,
	']': token.RBRACKET,
	';': token.SEMICOLON,
	',': token.COMMA,
}

func (l *Lexer) skipWhitespaceAndComments() error {
	for {
		ch, ok := l.peek(0)
		if !ok {
			return nil
		}
		switch {
		case unicode.IsSpace(ch):
			l.advance()
		case ch == '#':
			start := l.position()
			l.advance()
			for {
				c, ok := l.peek(0)
				if !ok {
					return l.errorf(errors.UnexpectedEOF, l.position(),
						"unexpected end of input in comment opened at %s", start)
				}
				l.advance()
				if c == '#' {
					break
				}
			}
		default:
			return nil
		}
	}
}

func (l *Lexer) readIdentifier(start token.Position) token.Token {
	var sb strings.Builder
	for {
		ch, ok := l.peek(0)
		if !ok || !(isLetter(ch) || isDigit(ch) || ch == '_') {
			break
		}
		sb.WriteRune(ch)
		l.advance()
	}
	return l.newToken(token.IDENT, sb.String(), start)
}

// readNumber reads digits with at most one decimal point. A second '.'
// ends the literal.
func (l *Lexer) readNumber(start token.Position, negative bool) token.Token {
	var sb strings.Builder
	if negative {
		sb.WriteRune('-')
		l.advance()
	}
	seenDot := false
	for {
		ch, ok := l.peek(0)
		if !ok {
			break
		}
		if ch == '.' && !seenDot {
			seenDot = true
		} else if !isDigit(ch) {
			break
		}
		sb.WriteRune(ch)
		l.advance()
	}
	return l.newToken(token.NUMBER, sb.String(), start)
}

func (l *Lexer) readString(start token.Position) (token.Token, error) {
	l.advance() // opening quote
	var sb strings.Builder
	for {
		ch, ok := l.peek(0)
		if !ok {
			return token.Token{}, l.errorf(errors.UnexpectedEOF, l.position(),
				"unexpected end of input in string literal opened at %s", start)
		}
		l.advance()
		switch ch {
		case '"':
			return l.newToken(token.STRING, sb.String(), start), nil
		case '\\':
			esc, ok := l.peek(0)
			if !ok {
				return token.Token{}, l.errorf(errors.UnexpectedEOF, l.position(),
					"unexpected end of input in escape sequence")
			}
			l.advance()
			switch esc {
			case '\n':
				// line continuation
			case 'n':
				sb.WriteRune('\n')
			case 'u':
				sb.WriteRune('\x00')
			default:
				sb.WriteRune(esc)
			}
		default:
			sb.WriteRune(ch)
		}
	}
}

func (l *Lexer) newToken(typ token.Type, literal string, start token.Position) token.Token {
	return token.Token{
		Type:          typ,
		Literal:       literal,
		StartPosition: start,
		EndPosition:   l.position(),
	}
}

func (l *Lexer) peek(offset int) (rune, bool) {
	i := l.pos + offset
	if i >= len(l.input) {
		return 0, false
	}
	return l.input[i], true
}

// advance consumes one rune, keeping the line and column counters current.
func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 0
		l.lineStart = l.pos
	} else {
		l.column++
	}
}

func (l *Lexer) position() token.Position {
	return token.Position{
		Char:      l.pos,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.column,
		File:      l.file,
	}
}

func (l *Lexer) lineText(lineStart int) string {
	if lineStart > len(l.input) {
		return ""
	}
	end := lineStart
	for end < len(l.input) && l.input[end] != '\n' {
		end++
	}
	return string(l.input[lineStart:end])
}

func (l *Lexer) errorf(code errors.ErrorCode, pos token.Position, format string, args ...any) *errors.Error {
	return errors.New(code, format, args...).At(pos, l.lineText(pos.LineStart))
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// LineText returns the given 1-indexed line of input, which callers use to
// decorate errors raised after lexing has finished.
func LineText(input string, line int) string {
	lines := strings.Split(input, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[line-1], "\r")
}
