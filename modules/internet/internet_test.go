package internet

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/object"
)

func call(t *testing.T, ctx context.Context, m *object.Module, name string, args ...object.Object) (object.Object, error) {
	t.Helper()
	obj, ok := m.Get(name)
	require.True(t, ok, name)
	return obj.(*object.Builtin).Call(ctx, object.NewScope(nil), args...)
}

func newServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/hello", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello there"))
	})
	mux.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Write([]byte(r.Method + " " + r.Header.Get("Content-Type") + " " + string(body)))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestGet(t *testing.T) {
	server := newServer(t)
	m := Module(WithClient(server.Client()))

	result, err := call(t, context.Background(), m, "http_get", object.NewString(server.URL+"/hello"))
	require.NoError(t, err)
	require.Equal(t, "hello there", result.String())
}

func TestPost(t *testing.T) {
	server := newServer(t)
	m := Module(WithClient(server.Client()))

	result, err := call(t, context.Background(), m, "http_post",
		object.NewString(server.URL+"/echo"), object.NewString("x=1"), object.NewString("application/x-www-form-urlencoded"))
	require.NoError(t, err)
	require.Equal(t, "POST application/x-www-form-urlencoded x=1", result.String())
}

func TestStatusError(t *testing.T) {
	server := newServer(t)
	m := Module(WithClient(server.Client()))

	_, err := call(t, context.Background(), m, "http_get", object.NewString(server.URL+"/missing"))
	require.True(t, errors.HasCode(err, errors.NativeFailure))
	require.Contains(t, err.Error(), "404")
}

func TestTimeout(t *testing.T) {
	server := newServer(t)
	m := Module(WithTimeout(50 * time.Millisecond))

	_, err := call(t, context.Background(), m, "http_get", object.NewString(server.URL+"/slow"))
	require.True(t, errors.HasCode(err, errors.NativeFailure))
}

func TestMaxBodySize(t *testing.T) {
	server := newServer(t)
	m := Module(WithClient(server.Client()), WithMaxBodySize(5))

	result, err := call(t, context.Background(), m, "http_get", object.NewString(server.URL+"/hello"))
	require.NoError(t, err)
	require.Equal(t, "hello", result.String())
}

func TestArguments(t *testing.T) {
	m := Module()
	_, err := call(t, context.Background(), m, "http_get")
	require.True(t, errors.HasCode(err, errors.ArityMismatch))

	_, err = call(t, context.Background(), m, "http_get", object.NewNumber(3))
	require.True(t, errors.HasCode(err, errors.TypeMismatch))

	_, err = call(t, context.Background(), m, "http_get", object.NewString("://bad"))
	require.True(t, errors.HasCode(err, errors.InvalidArgument))
}
