package math

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/object"
)

func callMember(t *testing.T, name string, args ...object.Object) (object.Object, error) {
	t.Helper()
	obj, ok := Module().Get(name)
	require.True(t, ok)
	fn, ok := obj.(*object.Builtin)
	require.True(t, ok)
	return fn.Call(context.Background(), object.NewScope(nil), args...)
}

func TestFunctions(t *testing.T) {
	n := object.NewNumber
	tests := []struct {
		name     string
		args     []object.Object
		expected string
	}{
		{"abs", []object.Object{n(-3.5)}, "3.5"},
		{"floor", []object.Object{n(2.7)}, "2"},
		{"ceil", []object.Object{n(2.1)}, "3"},
		{"round", []object.Object{n(2.5)}, "3"},
		{"sqrt", []object.Object{n(16)}, "4"},
		{"min", []object.Object{n(3), n(1), n(2)}, "1"},
		{"max", []object.Object{object.NewArray([]object.Object{n(3), n(7)})}, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := callMember(t, tt.name, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.expected, result.String())
		})
	}
}

func TestErrors(t *testing.T) {
	_, err := callMember(t, "sqrt", object.NewNumber(-1))
	require.True(t, errors.HasCode(err, errors.InvalidArgument))

	_, err = callMember(t, "abs", object.NewString("x"))
	require.True(t, errors.HasCode(err, errors.TypeMismatch))

	_, err = callMember(t, "max", object.NewArray(nil))
	require.True(t, errors.HasCode(err, errors.InvalidArgument))

	_, err = callMember(t, "floor", object.NewNumber(math.NaN()))
	require.True(t, errors.HasCode(err, errors.InvalidArgument))
}

func TestModule(t *testing.T) {
	m := Module()
	require.Equal(t, "math", m.Name())
	pi, ok := m.Get("pi")
	require.True(t, ok)
	require.IsType(t, &object.Number{}, pi)
	require.Len(t, Docs(), len(m.Names()))

	sqrt, _ := m.Get("sqrt")
	require.Equal(t, "math.sqrt", sqrt.(*object.Builtin).Key())
}
