package ast

import (
	"testing"

	"github.com/cloudcmds/imp/internal/token"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	var visited []string
	Inspect(sampleCall(), func(n Node) bool {
		visited = append(visited, n.String())
		return true
	})
	require.Equal(t, []string{"print(x) -> y", "print", "(x)", "x", "y"}, visited)
}

func TestInspectSkipChildren(t *testing.T) {
	var count int
	Inspect(sampleCall(), func(n Node) bool {
		count++
		_, isGroup := n.(*Group)
		return !isGroup
	})
	require.Equal(t, 4, count)
}

func TestPreorder(t *testing.T) {
	var terms []string
	for n := range Preorder(sampleCall()) {
		if term, ok := n.(*Term); ok {
			terms = append(terms, term.Literal())
		}
	}
	require.Equal(t, []string{"print", "x", "y"}, terms)

	var first Node
	for n := range Preorder(sampleCall()) {
		first = n
		break
	}
	require.IsType(t, &CallExpr{}, first)
}

func TestLeaves(t *testing.T) {
	leaves := Leaves(sampleCall())
	var types []token.Type
	for _, l := range leaves {
		types = append(types, l.Type)
	}
	require.Equal(t, []token.Type{
		token.IDENT, token.LPAREN, token.IDENT, token.RPAREN, token.ARROW, token.IDENT,
	}, types)
}
