package parser

import (
	"github.com/hashicorp/go-multierror"

	"github.com/cloudcmds/imp/ast"
	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/internal/token"
)

// ExtractFunctions reads the top-level nodes as a program. The top level may
// only hold function declarations and "use" imports; anything else is an
// error. Errors are collected across declarations, resuming at the next "@".
func (p *Parser) ExtractFunctions(nodes []ast.Node) (*ast.Program, error) {
	program := &ast.Program{}
	var result *multierror.Error
	declared := map[string]*ast.FunctionDecl{}

	fail := func(err error, from int) int {
		result = multierror.Append(result, err)
		return p.resync(nodes, from)
	}

	for i := 0; i < len(nodes); {
		node := nodes[i]
		switch {
		case ast.IsTerm(node, token.FUNCTION):
			decl, next, err := p.extractFunction(nodes, i)
			if err != nil {
				i = fail(err, i+1)
				continue
			}
			name := decl.Name.Literal()
			if prev, found := declared[name]; found {
				i = fail(p.errorAt(errors.MalformedFunction, decl.Name.Pos(),
					"function %q is already declared at %s", name, prev.Pos()), next)
				continue
			}
			declared[name] = decl
			program.Funcs = append(program.Funcs, decl)
			i = next
		case isKeyword(node, token.USE):
			use, next, err := p.extractUse(nodes, i)
			if err != nil {
				i = fail(err, i+1)
				continue
			}
			program.Uses = append(program.Uses, use)
			i = next
		case ast.IsTerm(node, token.SEMICOLON):
			i++
		default:
			i = fail(p.errorAt(errors.InvalidStatement, node.Pos(),
				"unexpected %s at top level", ast.Describe(node)).
				WithHint("only function declarations and use statements may appear at the top level"), i+1)
		}
	}

	if result != nil {
		result.ErrorFormat = errors.ListFormat
		return nil, result.ErrorOrNil()
	}
	return program, nil
}

// extractFunction reads "@ name (params) {body}" starting at nodes[i] and
// returns the declaration and the index following it.
func (p *Parser) extractFunction(nodes []ast.Node, i int) (*ast.FunctionDecl, int, error) {
	at := nodes[i].(*ast.Term)
	part := func(offset int) ast.Node {
		if i+offset < len(nodes) {
			return nodes[i+offset]
		}
		return nil
	}

	nameNode := part(1)
	if nameNode == nil {
		return nil, 0, p.eofError(at, "unexpected end of input: expected a function name after '@'")
	}
	name, ok := nameNode.(*ast.Term)
	if !ok || !name.Is(token.IDENT) {
		return nil, 0, p.errorAt(errors.MalformedFunction, nameNode.Pos(),
			"expected a function name after '@', found %s", ast.Describe(nameNode))
	}
	if token.IsKeyword(name.Literal()) {
		return nil, 0, p.errorAt(errors.MalformedFunction, name.Pos(),
			"%q is a keyword and cannot be used as a function name", name.Literal())
	}

	paramsNode := part(2)
	if paramsNode == nil {
		return nil, 0, p.eofError(name, "unexpected end of input: expected a parameter list for @%s", name.Literal())
	}
	params, ok := paramsNode.(*ast.Group)
	if !ok {
		return nil, 0, p.errorAt(errors.MalformedFunction, paramsNode.Pos(),
			"expected a parameter list for @%s, found %s", name.Literal(), ast.Describe(paramsNode))
	}
	params, err := p.checkParams(params)
	if err != nil {
		return nil, 0, err
	}

	bodyNode := part(3)
	if bodyNode == nil {
		return nil, 0, p.eofError(params, "unexpected end of input: expected a body for @%s", name.Literal())
	}
	body, ok := bodyNode.(*ast.Block)
	if !ok {
		return nil, 0, p.errorAt(errors.MalformedFunction, bodyNode.Pos(),
			"expected a code block for @%s, found %s", name.Literal(), ast.Describe(bodyNode))
	}
	stmts, err := p.Rewrite(body.Nodes)
	if err != nil {
		return nil, 0, err
	}

	return &ast.FunctionDecl{
		At:     at.Token,
		Name:   name,
		Params: params,
		Body:   &ast.Block{Open: body.Open, Nodes: stmts, Close: body.Close},
	}, i + 4, nil
}

// checkParams requires every parameter to be a distinct identifier. Commas
// between parameters are allowed and left out of the returned group.
func (p *Parser) checkParams(params *ast.Group) (*ast.Group, error) {
	seen := map[string]bool{}
	names := make([]ast.Node, 0, len(params.Nodes))
	for _, node := range params.Nodes {
		if ast.IsTerm(node, token.COMMA) {
			continue
		}
		term, ok := node.(*ast.Term)
		if !ok || !term.Is(token.IDENT) {
			return nil, p.errorAt(errors.InvalidParameter, node.Pos(),
				"type mismatch: function parameters must be identifiers, found %s", ast.Describe(node))
		}
		if token.IsKeyword(term.Literal()) {
			return nil, p.errorAt(errors.InvalidParameter, node.Pos(),
				"%q is a keyword and cannot be used as a parameter name", term.Literal())
		}
		if seen[term.Literal()] {
			return nil, p.errorAt(errors.InvalidParameter, node.Pos(),
				"duplicate parameter %q", term.Literal())
		}
		seen[term.Literal()] = true
		names = append(names, term)
	}
	return &ast.Group{Open: params.Open, Nodes: names, Close: params.Close}, nil
}

// extractUse reads "use name" starting at nodes[i].
func (p *Parser) extractUse(nodes []ast.Node, i int) (*ast.Use, int, error) {
	keyword := nodes[i].(*ast.Term)
	if i+1 >= len(nodes) {
		return nil, 0, p.eofError(keyword, "unexpected end of input: expected a capability name after 'use'")
	}
	name, ok := nodes[i+1].(*ast.Term)
	if !ok || !name.Is(token.IDENT) {
		return nil, 0, p.errorAt(errors.UnexpectedToken, nodes[i+1].Pos(),
			"expected a capability name after 'use', found %s", ast.Describe(nodes[i+1]))
	}
	return &ast.Use{Keyword: keyword, Name: name}, i + 2, nil
}

// resync returns the index of the next node that can start a top-level
// declaration, at or after i.
func (p *Parser) resync(nodes []ast.Node, i int) int {
	for ; i < len(nodes); i++ {
		if ast.IsTerm(nodes[i], token.FUNCTION) || isKeyword(nodes[i], token.USE) {
			return i
		}
	}
	return i
}

func isKeyword(node ast.Node, keyword string) bool {
	term, ok := node.(*ast.Term)
	return ok && term.Is(token.IDENT) && term.Literal() == keyword
}
