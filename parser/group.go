package parser

import (
	"github.com/cloudcmds/imp/ast"
	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/internal/token"
)

// frame is one open delimiter on the grouping stack.
type frame struct {
	open  token.Token
	nodes []ast.Node
}

// Group converts a flat token sequence into a tree of Terms and composite
// nodes. Delimiters are matched with an explicit stack, so every kind of
// nesting is supported and a mismatched close is reported, not skipped.
func (p *Parser) Group(tokens []token.Token) ([]ast.Node, error) {
	stack := []*frame{{}}
	for _, tok := range tokens {
		if tok.Type == token.EOF {
			break
		}
		top := stack[len(stack)-1]
		if _, isOpen := token.Closer(tok.Type); isOpen {
			if len(stack) > p.maxDepth {
				return nil, p.errorAt(errors.MaxDepthExceeded, tok.StartPosition,
					"maximum nesting depth of %d exceeded", p.maxDepth)
			}
			stack = append(stack, &frame{open: tok})
			continue
		}
		if !token.IsCloser(tok.Type) {
			top.nodes = append(top.nodes, ast.NewTerm(tok))
			continue
		}
		if len(stack) == 1 {
			return nil, p.errorAt(errors.UnmatchedDelimiter, tok.StartPosition,
				"unmatched closing delimiter '%s'", tok.Literal)
		}
		want, _ := token.Closer(top.open.Type)
		if tok.Type != want {
			return nil, p.errorAt(errors.MismatchedDelimiter, tok.StartPosition,
				"mismatched delimiter: '%s' opened at %s is closed by '%s'",
				top.open.Literal, top.open.StartPosition, tok.Literal).
				WithHint("expected '" + string(want) + "'")
		}
		stack = stack[:len(stack)-1]
		parent := stack[len(stack)-1]
		parent.nodes = append(parent.nodes, ast.NewComposite(top.open, top.nodes, tok))
	}
	if len(stack) > 1 {
		open := stack[len(stack)-1].open
		want, _ := token.Closer(open.Type)
		return nil, p.errorAt(errors.UnclosedDelimiter, open.StartPosition,
			"unclosed delimiter '%s'", open.Literal).
			WithHint("add a matching '" + string(want) + "'")
	}
	return stack[0].nodes, nil
}
