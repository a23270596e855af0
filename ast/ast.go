// Package ast defines the abstract syntax tree representation of imp code.
//
// Nodes are produced in two stages. The structural grouper turns the flat
// token stream into Terms and the three bracketed composites (Array, Group
// and Block). The function extractor and call rewriter then fold those into
// FunctionDecl and CallExpr nodes. Nodes are never modified after they are
// built, so the evaluator may re-run a loop body from the same node slice.
package ast

import (
	"strings"

	"github.com/cloudcmds/imp/internal/token"
)

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string

	node()
}

// Program is the result of parsing a source file.
type Program struct {
	Uses  []*Use          // top-level capability imports
	Funcs []*FunctionDecl // declared functions, in source order
}

// Func returns the function with the given name, if declared.
func (p *Program) Func(name string) (*FunctionDecl, bool) {
	for _, fn := range p.Funcs {
		if fn.Name.Literal() == name {
			return fn, true
		}
	}
	return nil, false
}

func (p *Program) node() {}

func (p *Program) Pos() token.Position {
	switch {
	case len(p.Uses) > 0:
		return p.Uses[0].Pos()
	case len(p.Funcs) > 0:
		return p.Funcs[0].Pos()
	}
	return token.Position{}
}

func (p *Program) End() token.Position {
	switch {
	case len(p.Funcs) > 0:
		return p.Funcs[len(p.Funcs)-1].End()
	case len(p.Uses) > 0:
		return p.Uses[len(p.Uses)-1].End()
	}
	return token.Position{}
}

func (p *Program) String() string {
	var parts []string
	for _, u := range p.Uses {
		parts = append(parts, u.String())
	}
	for _, fn := range p.Funcs {
		parts = append(parts, fn.String())
	}
	return strings.Join(parts, "\n")
}

// Describe returns a short description of the node, suitable for error
// messages like "unexpected a group".
func Describe(n Node) string {
	switch n := n.(type) {
	case *Term:
		switch n.Token.Type {
		case token.IDENT:
			return "identifier " + n.Token.Literal
		case token.STRING:
			return "string " + n.Token.Source()
		case token.NUMBER:
			return "number " + n.Token.Literal
		default:
			return "'" + n.Token.Literal + "'"
		}
	case *Array:
		return "an array"
	case *Group:
		return "a group"
	case *Block:
		return "a code block"
	case *CallExpr:
		return "a call to " + n.Name.Literal()
	case *FunctionDecl:
		return "a function declaration"
	case *Use:
		return "a use statement"
	case nil:
		return "end of input"
	default:
		return "a node"
	}
}

func joinNodes(nodes []Node, sep string) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, sep)
}
