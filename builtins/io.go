package builtins

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudcmds/imp/object"
)

func HelloWorld(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("hello_world", 0, args); err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(object.GetStdout(ctx), "Hello world!"); err != nil {
		return nil, err
	}
	return object.Void, nil
}

// Print writes the display form of each argument with no separator.
func Print(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := write(object.GetStdout(ctx), args); err != nil {
		return nil, err
	}
	return object.Void, nil
}

func Println(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	w := object.GetStdout(ctx)
	if err := write(w, args); err != nil {
		return nil, err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return nil, err
	}
	return object.Void, nil
}

func write(w io.Writer, args []object.Object) error {
	for _, arg := range args {
		if _, err := io.WriteString(w, arg.String()); err != nil {
			return err
		}
	}
	return nil
}
