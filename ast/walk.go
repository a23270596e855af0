package ast

import (
	"iter"

	"github.com/cloudcmds/imp/internal/token"
)

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range childNodes(node) {
		Walk(v, child)
	}
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the AST rooted at node
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			for _, child := range childNodes(n) {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}

func childNodes(node Node) []Node {
	switch n := node.(type) {
	case *Program:
		children := make([]Node, 0, len(n.Uses)+len(n.Funcs))
		for _, u := range n.Uses {
			children = append(children, u)
		}
		for _, fn := range n.Funcs {
			children = append(children, fn)
		}
		return children
	case *Use:
		return []Node{n.Keyword, n.Name}
	case *Array:
		return n.Nodes
	case *Group:
		return n.Nodes
	case *Block:
		return n.Nodes
	case *CallExpr:
		children := []Node{n.Name, n.Args}
		if n.AssignTo != nil {
			children = append(children, n.AssignTo)
		}
		return children
	case *FunctionDecl:
		return []Node{n.Name, n.Params, n.Body}
	}
	return nil
}

// Leaves returns the tokens covered by the given nodes, in source order.
// For the output of the structural grouper this reproduces the lexer's
// token stream exactly.
func Leaves(nodes ...Node) []token.Token {
	var out []token.Token
	var visit func(Node)
	visit = func(node Node) {
		switch n := node.(type) {
		case *Term:
			out = append(out, n.Token)
		case *Array:
			out = append(out, n.Open)
			for _, c := range n.Nodes {
				visit(c)
			}
			out = append(out, n.Close)
		case *Group:
			out = append(out, n.Open)
			for _, c := range n.Nodes {
				visit(c)
			}
			out = append(out, n.Close)
		case *Block:
			out = append(out, n.Open)
			for _, c := range n.Nodes {
				visit(c)
			}
			out = append(out, n.Close)
		case *CallExpr:
			visit(n.Name)
			visit(n.Args)
			if n.AssignTo != nil {
				out = append(out, n.Arrow)
				visit(n.AssignTo)
			}
		case *FunctionDecl:
			out = append(out, n.At)
			visit(n.Name)
			visit(n.Params)
			visit(n.Body)
		case *Use:
			visit(n.Keyword)
			visit(n.Name)
		case *Program:
			for _, c := range childNodes(n) {
				visit(c)
			}
		}
	}
	for _, n := range nodes {
		visit(n)
	}
	return out
}
