package fs

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/object"
)

func call(t *testing.T, m *object.Module, name string, args ...object.Object) (object.Object, error) {
	t.Helper()
	obj, ok := m.Get(name)
	require.True(t, ok, name)
	return obj.(*object.Builtin).Call(context.Background(), object.NewScope(nil), args...)
}

func str(s string) object.Object { return object.NewString(s) }

func TestReadWrite(t *testing.T) {
	m := Module(afero.NewMemMapFs())

	_, err := call(t, m, "write_file", str("/a.txt"), str("hello"))
	require.NoError(t, err)
	_, err = call(t, m, "append_file", str("/a.txt"), str(" world"))
	require.NoError(t, err)

	result, err := call(t, m, "read_file", str("/a.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello world", result.String())

	exists, err := call(t, m, "exists", str("/a.txt"))
	require.NoError(t, err)
	require.Equal(t, object.True, exists)

	_, err = call(t, m, "remove", str("/a.txt"))
	require.NoError(t, err)
	exists, err = call(t, m, "exists", str("/a.txt"))
	require.NoError(t, err)
	require.Equal(t, object.False, exists)
}

func TestListDir(t *testing.T) {
	memfs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memfs, "/d/b.txt", []byte("b"), 0o644))
	require.NoError(t, afero.WriteFile(memfs, "/d/a.txt", []byte("a"), 0o644))

	result, err := call(t, Module(memfs), "list_dir", str("/d"))
	require.NoError(t, err)
	require.Equal(t, "[a.txt b.txt]", result.String())
}

func TestErrors(t *testing.T) {
	m := Module(afero.NewMemMapFs())

	_, err := call(t, m, "read_file", str("/missing"))
	require.True(t, errors.HasCode(err, errors.NativeFailure))

	_, err = call(t, m, "read_file", str(""))
	require.True(t, errors.HasCode(err, errors.InvalidArgument))

	_, err = call(t, m, "read_file", object.NewNumber(1))
	require.True(t, errors.HasCode(err, errors.TypeMismatch))

	_, err = call(t, m, "write_file", str("/x"))
	require.True(t, errors.HasCode(err, errors.ArityMismatch))
}

func TestReadOnly(t *testing.T) {
	memfs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memfs, "/a.txt", []byte("a"), 0o644))
	m := ReadOnlyModule(memfs)

	result, err := call(t, m, "read_file", str("/a.txt"))
	require.NoError(t, err)
	require.Equal(t, "a", result.String())

	_, err = call(t, m, "write_file", str("/a.txt"), str("b"))
	require.True(t, errors.HasCode(err, errors.NativeFailure))
}

func TestDocsCoverModule(t *testing.T) {
	m := Module(afero.NewMemMapFs())
	for _, doc := range Docs() {
		_, ok := m.Get(doc.Name)
		require.True(t, ok, doc.Name)
	}
	require.Len(t, Docs(), len(m.Names()))
}
