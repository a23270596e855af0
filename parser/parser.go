// Package parser builds the abstract syntax tree (AST) for an imp program.
//
// Parsing runs in three passes over the token stream:
//
//  1. Group matches "{}", "[]" and "()" delimiters, producing Block, Array
//     and Group nodes around the remaining Terms.
//  2. ExtractFunctions reads the top level as a list of "@name(params) {}"
//     declarations and "use name" imports.
//  3. Rewrite folds every identifier followed by a group into a CallExpr,
//     with an optional "-> name" assignment, and drops separators. It is
//     applied to each function body at every nesting depth.
package parser

import (
	"context"

	"github.com/cloudcmds/imp/ast"
	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/internal/lexer"
	"github.com/cloudcmds/imp/internal/token"
)

// DefaultMaxDepth is the default maximum delimiter nesting depth.
const DefaultMaxDepth = 500

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name reported in positions and errors.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithMaxDepth sets the maximum nesting depth for delimiters.
// This prevents unbounded recursion on deeply nested input.
// The default is 500.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// Parser runs the parsing passes for one input.
type Parser struct {
	// The source code, used to attach line text to errors
	input string

	// The filename of the input
	filename string

	// Maximum allowed nesting depth
	maxDepth int

	// The EOF token of the input, used for "unexpected end of input"
	eof token.Token
}

// New returns a Parser for the given source code.
func New(input string, options ...Option) *Parser {
	p := &Parser{input: input, maxDepth: DefaultMaxDepth}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Parse the provided input as imp source code and return the AST.
func Parse(ctx context.Context, input string, options ...Option) (*ast.Program, error) {
	return New(input, options...).Parse(ctx)
}

// Parse lexes and parses the input.
func (p *Parser) Parse(ctx context.Context) (*ast.Program, error) {
	tokens, err := p.Tokens()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	nodes, err := p.Group(tokens)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.ExtractFunctions(nodes)
}

// Tokens lexes the whole input. The EOF token is not included.
func (p *Parser) Tokens() ([]token.Token, error) {
	l := lexer.New(p.input)
	l.SetFilename(p.filename)
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EOF {
			p.eof = tok
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Group runs the structural grouping pass with default options.
func Group(tokens []token.Token, options ...Option) ([]ast.Node, error) {
	return New("", options...).Group(tokens)
}

// ExtractFunctions runs the function extraction pass with default options.
func ExtractFunctions(nodes []ast.Node, options ...Option) (*ast.Program, error) {
	return New("", options...).ExtractFunctions(nodes)
}

// Rewrite runs the call rewriting pass with default options.
func Rewrite(nodes []ast.Node, options ...Option) ([]ast.Node, error) {
	return New("", options...).Rewrite(nodes)
}

func (p *Parser) errorAt(code errors.ErrorCode, pos token.Position, format string, args ...any) *errors.Error {
	return errors.New(code, format, args...).At(pos, lexer.LineText(p.input, pos.LineNumber()))
}

// eofError reports that the input ended while more was expected. If the
// EOF position is unknown, the end of the last node is used.
func (p *Parser) eofError(last ast.Node, format string, args ...any) *errors.Error {
	pos := p.eof.StartPosition
	if !pos.IsValid() && last != nil {
		pos = last.End()
	}
	return p.errorAt(errors.UnexpectedEOF, pos, format, args...)
}
