package ast

import (
	"bytes"

	"github.com/cloudcmds/imp/internal/token"
)

// Term is a leaf node wrapping a single token.
type Term struct {
	Token token.Token
}

// NewTerm wraps a token in a Term.
func NewTerm(tok token.Token) *Term {
	return &Term{Token: tok}
}

func (x *Term) node() {}

func (x *Term) Pos() token.Position { return x.Token.StartPosition }
func (x *Term) End() token.Position { return x.Token.EndPosition }

func (x *Term) String() string { return x.Token.Source() }

// Is returns true if the wrapped token has the given type.
func (x *Term) Is(typ token.Type) bool { return x.Token.Type == typ }

// Literal returns the literal text of the wrapped token.
func (x *Term) Literal() string { return x.Token.Literal }

// IsIdent reports whether n is an identifier Term.
func IsIdent(n Node) bool {
	t, ok := n.(*Term)
	return ok && t.Is(token.IDENT)
}

// IsTerm reports whether n is a Term wrapping a token of the given type.
func IsTerm(n Node, typ token.Type) bool {
	t, ok := n.(*Term)
	return ok && t.Is(typ)
}

// Array holds the nodes enclosed in square brackets.
type Array struct {
	Open  token.Token // "["
	Nodes []Node
	Close token.Token // "]"
}

func (x *Array) node() {}

func (x *Array) Pos() token.Position { return x.Open.StartPosition }
func (x *Array) End() token.Position { return x.Close.EndPosition }

func (x *Array) String() string { return "[" + joinNodes(x.Nodes, " ") + "]" }

// Group holds the nodes enclosed in parentheses.
type Group struct {
	Open  token.Token // "("
	Nodes []Node
	Close token.Token // ")"
}

func (x *Group) node() {}

func (x *Group) Pos() token.Position { return x.Open.StartPosition }
func (x *Group) End() token.Position { return x.Close.EndPosition }

func (x *Group) String() string { return "(" + joinNodes(x.Nodes, " ") + ")" }

// Block holds the nodes enclosed in curly braces.
type Block struct {
	Open  token.Token // "{"
	Nodes []Node
	Close token.Token // "}"
}

func (x *Block) node() {}

func (x *Block) Pos() token.Position { return x.Open.StartPosition }
func (x *Block) End() token.Position { return x.Close.EndPosition }

func (x *Block) String() string {
	if len(x.Nodes) == 0 {
		return "{}"
	}
	return "{ " + joinNodes(x.Nodes, " ") + " }"
}

// NewComposite builds the Array, Group or Block matching the open token.
// It returns nil if open is not an opening delimiter.
func NewComposite(open token.Token, nodes []Node, close token.Token) Node {
	switch open.Type {
	case token.LBRACKET:
		return &Array{Open: open, Nodes: nodes, Close: close}
	case token.LPAREN:
		return &Group{Open: open, Nodes: nodes, Close: close}
	case token.LBRACE:
		return &Block{Open: open, Nodes: nodes, Close: close}
	}
	return nil
}

// Children returns the nodes contained in a composite node, or nil for any
// other node.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Array:
		return n.Nodes
	case *Group:
		return n.Nodes
	case *Block:
		return n.Nodes
	}
	return nil
}

// WithChildren returns a copy of the composite node n holding the given
// children. Other nodes are returned unchanged.
func WithChildren(n Node, nodes []Node) Node {
	switch n := n.(type) {
	case *Array:
		return &Array{Open: n.Open, Nodes: nodes, Close: n.Close}
	case *Group:
		return &Group{Open: n.Open, Nodes: nodes, Close: n.Close}
	case *Block:
		return &Block{Open: n.Open, Nodes: nodes, Close: n.Close}
	}
	return n
}

// CallExpr is an identifier immediately followed by a group, optionally
// followed by "-> name" to store the result.
type CallExpr struct {
	Name     *Term  // callee identifier
	Args     *Group // rewritten argument list
	Arrow    token.Token
	AssignTo *Term // nil unless "-> name" follows the call
}

func (x *CallExpr) node() {}

func (x *CallExpr) Pos() token.Position { return x.Name.Pos() }
func (x *CallExpr) End() token.Position {
	if x.AssignTo != nil {
		return x.AssignTo.End()
	}
	return x.Args.End()
}

func (x *CallExpr) String() string {
	var out bytes.Buffer
	out.WriteString(x.Name.Literal())
	out.WriteString("(")
	out.WriteString(joinNodes(x.Args.Nodes, ", "))
	out.WriteString(")")
	if x.AssignTo != nil {
		out.WriteString(" -> ")
		out.WriteString(x.AssignTo.Literal())
	}
	return out.String()
}

// Target returns the name the result is assigned to, or "".
func (x *CallExpr) Target() string {
	if x.AssignTo == nil {
		return ""
	}
	return x.AssignTo.Literal()
}

// FunctionDecl is a function declaration: "@name(params) { body }".
type FunctionDecl struct {
	At     token.Token // "@"
	Name   *Term
	Params *Group // identifier Terms only
	Body   *Block // rewritten statements
}

func (x *FunctionDecl) node() {}

func (x *FunctionDecl) Pos() token.Position { return x.At.StartPosition }
func (x *FunctionDecl) End() token.Position { return x.Body.End() }

func (x *FunctionDecl) String() string {
	var out bytes.Buffer
	out.WriteString("@")
	out.WriteString(x.Name.Literal())
	out.WriteString("(")
	for i, p := range x.ParamNames() {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p)
	}
	out.WriteString(") ")
	out.WriteString(x.Body.String())
	return out.String()
}

// ParamNames returns the declared parameter names in order.
func (x *FunctionDecl) ParamNames() []string {
	names := make([]string, 0, len(x.Params.Nodes))
	for _, p := range x.Params.Nodes {
		if t, ok := p.(*Term); ok {
			names = append(names, t.Literal())
		}
	}
	return names
}

// Arity returns the number of declared parameters.
func (x *FunctionDecl) Arity() int {
	return len(x.Params.Nodes)
}

// Use is a top-level "use name" capability import.
type Use struct {
	Keyword *Term
	Name    *Term
}

func (x *Use) node() {}

func (x *Use) Pos() token.Position { return x.Keyword.Pos() }
func (x *Use) End() token.Position { return x.Name.End() }

func (x *Use) String() string { return "use " + x.Name.Literal() }
