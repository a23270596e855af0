// Package uuid provides the "uuid" capability.
package uuid

import (
	"context"

	"github.com/gofrs/uuid"

	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/object"
)

func V4(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("uuid_v4", 0, args); err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(errors.NativeFailure, err, "uuid_v4() failed: %s", err)
	}
	return object.NewString(id.String()), nil
}

func Valid(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("uuid_valid", 1, args); err != nil {
		return nil, err
	}
	s, err := object.AsString(args[0])
	if err != nil {
		return nil, err
	}
	_, err = uuid.FromString(s)
	return object.NewBool(err == nil), nil
}

func Module() *object.Module {
	return object.NewBuiltinsModule("uuid", map[string]object.Object{
		"uuid_v4":    object.NewBuiltin("uuid_v4", V4),
		"uuid_valid": object.NewBuiltin("uuid_valid", Valid),
	})
}

// Docs returns documentation for the uuid module.
func Docs() []object.FuncSpec {
	return []object.FuncSpec{
		{Name: "uuid_v4", Doc: "Generate a random version 4 UUID", Returns: "string", Example: "uuid_v4() -> id"},
		{Name: "uuid_valid", Doc: "Report whether a string is a valid UUID", Args: []string{"s"}, Returns: "bool"},
	}
}
