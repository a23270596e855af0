package importer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/object"
)

func TestMapImporter(t *testing.T) {
	loads := 0
	imp := NewMapImporter(
		WithModule(object.NewBuiltinsModule("consts", map[string]object.Object{"answer": object.NewNumber(42)})),
		WithLoader("lazy", func() *object.Module {
			loads++
			return object.NewBuiltinsModule("lazy", nil)
		}),
	)
	require.Equal(t, []string{"consts", "lazy"}, imp.Names())

	ctx := context.Background()
	m, err := imp.Import(ctx, "consts")
	require.NoError(t, err)
	answer, ok := m.Get("answer")
	require.True(t, ok)
	require.Equal(t, "42", answer.String())

	for range 3 {
		m, err = imp.Import(ctx, "lazy")
		require.NoError(t, err)
		require.Equal(t, "lazy", m.Name())
	}
	require.Equal(t, 1, loads)
}

func TestUnknownCapability(t *testing.T) {
	imp := NewMapImporter(WithLoader("internet", func() *object.Module {
		return object.NewBuiltinsModule("internet", nil)
	}))
	_, err := imp.Import(context.Background(), "internt")
	require.True(t, errors.HasCode(err, errors.UnknownCapability))
	e, _ := errors.As(err)
	require.Equal(t, "did you mean internet?", e.Hint)

	_, err = imp.Import(context.Background(), "zzz")
	e, _ = errors.As(err)
	require.Equal(t, "available capabilities: internet", e.Hint)
}
