package object

import (
	"bytes"
	"context"
	"math"
	"os"
	"testing"

	"github.com/cloudcmds/imp/ast"
	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/internal/token"
	"github.com/stretchr/testify/require"
)

func TestDisplay(t *testing.T) {
	nested := NewArray([]Object{
		NewNumber(1),
		NewArray([]Object{NewNumber(2), NewNumber(3)}),
		NewNumber(4),
	})
	tests := []struct {
		obj     Object
		str     string
		inspect string
	}{
		{NewString("hi"), "hi", `"hi"`},
		{NewNumber(1), "1", "1"},
		{NewNumber(1.5), "1.5", "1.5"},
		{NewNumber(-3), "-3", "-3"},
		{True, "true", "true"},
		{False, "false", "false"},
		{Void, "()", "()"},
		{nested, "[1 [2 3] 4]", "[1 [2 3] 4]"},
		{NewStringArray([]string{"a", "b"}), "[a b]", `["a" "b"]`},
		{NewArray(nil), "[]", "[]"},
		{NewBuiltin("len", nil), "<native fn len>", "<native fn len>"},
	}
	for _, tc := range tests {
		t.Run(tc.str, func(t *testing.T) {
			require.Equal(t, tc.str, tc.obj.String())
			require.Equal(t, tc.inspect, tc.obj.Inspect())
		})
	}
}

func TestFunctionDisplay(t *testing.T) {
	ident := func(name string) *ast.Term {
		return ast.NewTerm(token.Token{Type: token.IDENT, Literal: name})
	}
	decl := &ast.FunctionDecl{
		At:     token.Token{Type: token.FUNCTION, Literal: "@"},
		Name:   ident("add2"),
		Params: &ast.Group{Nodes: []ast.Node{ident("a"), ident("b")}},
		Body:   &ast.Block{},
	}
	fn := NewFunction(decl)
	require.Equal(t, FUNCTION, fn.Type())
	require.Equal(t, "add2", fn.Name())
	require.Equal(t, []string{"a", "b"}, fn.Params())
	require.Equal(t, "@add2(a b) {…}", fn.String())
	require.True(t, Callable(fn))
	require.False(t, Callable(NewString("x")))

	_, err := Equals(fn, fn)
	require.True(t, errors.HasCode(err, errors.TypeMismatch))
}

func TestEqualsNumbers(t *testing.T) {
	values := []float64{0, 1, -1, 2.5, 1e9, math.Inf(1), math.NaN()}
	for _, a := range values {
		n := NewNumber(a)
		eq, err := Equals(n, n)
		require.NoError(t, err)
		require.True(t, eq, "reflexive for %v", a)
		for _, b := range values {
			ab, err := Equals(NewNumber(a), NewNumber(b))
			require.NoError(t, err)
			ba, err := Equals(NewNumber(b), NewNumber(a))
			require.NoError(t, err)
			require.Equal(t, ab, ba, "symmetric for %v, %v", a, b)
		}
	}
}

func TestEqualsMismatch(t *testing.T) {
	others := []Object{NewString("1"), True, Void, NewArray(nil), NewBuiltin("f", nil), nil}
	for _, other := range others {
		_, err := Equals(NewNumber(1), other)
		require.Error(t, err)
		require.True(t, errors.HasCode(err, errors.TypeMismatch))
		require.Equal(t, errors.KindSemantic, errors.KindOf(err))
	}
}

func TestEqualsArrays(t *testing.T) {
	a := NewArray([]Object{NewNumber(1), NewStringArray([]string{"x"})})
	b := NewArray([]Object{NewNumber(1), NewStringArray([]string{"x"})})
	c := NewArray([]Object{NewNumber(1)})
	eq, err := Equals(a, b)
	require.NoError(t, err)
	require.True(t, eq)

	eq, err = Equals(a, c)
	require.NoError(t, err)
	require.False(t, eq)

	_, err = Equals(a, NewArray([]Object{NewString("1"), NewNumber(2)}))
	require.True(t, errors.HasCode(err, errors.TypeMismatch))

	eq, err = Equals(Void, Void)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestCompare(t *testing.T) {
	cmp, err := Compare(NewNumber(1), NewNumber(2))
	require.NoError(t, err)
	require.Equal(t, -1, cmp)

	cmp, err = Compare(NewNumber(2), NewNumber(2))
	require.NoError(t, err)
	require.Equal(t, 0, cmp)

	cmp, err = Compare(NewNumber(3), NewNumber(2))
	require.NoError(t, err)
	require.Equal(t, 1, cmp)

	_, err = Compare(NewString("a"), NewString("b"))
	require.True(t, errors.HasCode(err, errors.TypeMismatch))
}

func TestArray(t *testing.T) {
	arr := NewStringArray([]string{"a", "b", "c"})
	item, err := arr.Get(-1)
	require.NoError(t, err)
	require.Equal(t, "c", item.String())

	_, err = arr.Get(3)
	require.True(t, errors.HasCode(err, errors.IndexOutOfBounds))

	updated, err := arr.With(0, NewString("z"))
	require.NoError(t, err)
	require.Equal(t, "[z b c]", updated.String())
	require.Equal(t, "[a b c]", arr.String())

	require.Equal(t, "[a b c d]", arr.Append(NewString("d")).String())
	require.Equal(t, []any{"a", "b", "c"}, arr.Interface())
}

func TestTypeConv(t *testing.T) {
	_, err := AsString(NewNumber(1))
	require.True(t, errors.HasCode(err, errors.TypeMismatch))
	require.Contains(t, err.Error(), "expected a string (number given)")

	n, err := AsInt(NewNumber(4))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	_, err = AsInt(NewNumber(4.5))
	require.True(t, errors.HasCode(err, errors.InvalidArgument))

	strs, err := AsStringSlice(NewStringArray([]string{"x", "y"}))
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, strs)

	require.Equal(t, "[1 a true]", FromGoType([]any{1, "a", true}).String())
	require.Equal(t, Void, FromGoType(struct{}{}))
}

func TestScope(t *testing.T) {
	root := NewScope(map[string]Object{"x": NewNumber(1)})
	child := NewChildScope(root)

	obj, ok := child.Get("x")
	require.True(t, ok)
	require.Equal(t, "1", obj.String())

	child.Set("y", NewNumber(2))
	require.False(t, root.Has("y"))
	require.Equal(t, []string{"x", "y"}, child.Names())

	// Deleting in the child leaves the parent binding alone
	require.False(t, child.Delete("x"))
	require.True(t, child.Has("x"))
	require.True(t, root.Delete("x"))
	require.False(t, child.Has("x"))
	require.Same(t, root, child.Parent())
}

func TestScopeImport(t *testing.T) {
	mod := NewBuiltinsModule("demo", map[string]Object{
		"f":  NewNoopBuiltin("f"),
		"pi": NewNumber(3),
	})
	require.Equal(t, []string{"f", "pi"}, mod.Names())

	scope := NewScope(nil)
	scope.Import(mod)
	f, ok := scope.Get("f")
	require.True(t, ok)
	require.Equal(t, "demo.f", f.(*Builtin).Key())
	require.Equal(t, 2, scope.Len())
}

func TestStdout(t *testing.T) {
	require.Equal(t, os.Stdout, GetStdout(context.Background()))
	var buf bytes.Buffer
	ctx := WithStdout(context.Background(), &buf)
	require.Equal(t, &buf, GetStdout(ctx))
}

func TestRequire(t *testing.T) {
	require.NoError(t, Require("len", 1, []Object{Void}))
	err := Require("len", 1, nil)
	require.True(t, errors.HasCode(err, errors.ArityMismatch))
	require.Contains(t, err.Error(), "len() takes exactly 1 argument (0 given)")

	require.NoError(t, RequireRange("add", 0, -1, []Object{Void, Void, Void}))
	err = RequireRange("slice", 2, 3, []Object{Void})
	require.Contains(t, err.Error(), "slice() takes at least 2 arguments (1 given)")
	err = RequireRange("slice", 2, 3, []Object{Void, Void, Void, Void})
	require.Contains(t, err.Error(), "slice() takes at most 3 arguments (4 given)")
}
