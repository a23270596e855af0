package parser

import (
	"github.com/cloudcmds/imp/ast"
	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/internal/token"
)

// Rewrite folds call sites into CallExpr nodes. An identifier immediately
// followed by a group becomes a call whose arguments are the rewritten group
// contents; a following "-> name" sets the call's assignment target.
// Semicolons and commas are dropped. Statement keywords are never treated
// as callees, so "while (lt(x, 5)) {}" keeps its parenthesised condition.
func (p *Parser) Rewrite(nodes []ast.Node) ([]ast.Node, error) {
	out := make([]ast.Node, 0, len(nodes))
	for i := 0; i < len(nodes); i++ {
		switch node := nodes[i].(type) {
		case *ast.Term:
			switch node.Token.Type {
			case token.SEMICOLON, token.COMMA:
				continue
			case token.ARROW:
				return nil, p.errorAt(errors.UnexpectedToken, node.Pos(),
					"unexpected '->': an assignment must follow a call expression")
			case token.IDENT:
				group, ok := next(nodes, i).(*ast.Group)
				if !ok || token.IsKeyword(node.Literal()) {
					break
				}
				call, consumed, err := p.rewriteCall(node, group, nodes, i+2)
				if err != nil {
					return nil, err
				}
				out = append(out, call)
				i += consumed
				continue
			}
			out = append(out, node)
		case *ast.Array, *ast.Group, *ast.Block:
			children, err := p.Rewrite(ast.Children(node))
			if err != nil {
				return nil, err
			}
			out = append(out, ast.WithChildren(node, children))
		default:
			out = append(out, node)
		}
	}
	return out, nil
}

// rewriteCall builds the call for name(group). rest is the index after the
// group; the returned count is the number of nodes used after the name.
func (p *Parser) rewriteCall(name *ast.Term, group *ast.Group, nodes []ast.Node, rest int) (*ast.CallExpr, int, error) {
	args, err := p.Rewrite(group.Nodes)
	if err != nil {
		return nil, 0, err
	}
	call := &ast.CallExpr{
		Name: name,
		Args: &ast.Group{Open: group.Open, Nodes: args, Close: group.Close},
	}
	arrow, ok := next(nodes, rest-1).(*ast.Term)
	if !ok || !arrow.Is(token.ARROW) {
		return call, 1, nil
	}
	targetNode := next(nodes, rest)
	if targetNode == nil {
		return nil, 0, p.errorAt(errors.UnexpectedToken, arrow.End(),
			"expected a variable name after '->'")
	}
	target, ok := targetNode.(*ast.Term)
	if !ok || !target.Is(token.IDENT) {
		return nil, 0, p.errorAt(errors.UnexpectedToken, targetNode.Pos(),
			"expected a variable name after '->', found %s", ast.Describe(targetNode))
	}
	if token.IsKeyword(target.Literal()) {
		return nil, 0, p.errorAt(errors.UnexpectedToken, target.Pos(),
			"%q is a keyword and cannot be assigned to", target.Literal())
	}
	call.Arrow = arrow.Token
	call.AssignTo = target
	return call, 3, nil
}

// next returns nodes[i+1], or nil past the end.
func next(nodes []ast.Node, i int) ast.Node {
	if i+1 < len(nodes) {
		return nodes[i+1]
	}
	return nil
}
