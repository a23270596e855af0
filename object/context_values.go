package object

import (
	"context"
	"io"
	"os"
)

type contextKey string

const stdoutKey = contextKey("imp:stdout")

// WithStdout adds the writer used by print and println to the context.
func WithStdout(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey, w)
}

// GetStdout returns the writer stored in the context, or os.Stdout.
func GetStdout(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(stdoutKey).(io.Writer); ok && w != nil {
		return w
	}
	return os.Stdout
}
