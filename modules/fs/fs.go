// Package fs provides the "fs" capability: file access over an afero.Fs.
package fs

import (
	"context"
	"os"
	"sort"

	"github.com/spf13/afero"

	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/object"
)

type fileSystem struct {
	fs afero.Fs
}

func (f *fileSystem) path(name string, args []object.Object) (string, error) {
	path, err := object.AsString(args[0])
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", errors.New(errors.InvalidArgument, "%s() requires a non-empty path", name)
	}
	return path, nil
}

func failure(name, path string, err error) error {
	return errors.Wrap(errors.NativeFailure, err, "%s(%q) failed: %s", name, path, err)
}

func (f *fileSystem) ReadFile(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("read_file", 1, args); err != nil {
		return nil, err
	}
	path, err := f.path("read_file", args)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return nil, failure("read_file", path, err)
	}
	return object.NewString(string(data)), nil
}

func (f *fileSystem) WriteFile(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("write_file", 2, args); err != nil {
		return nil, err
	}
	path, err := f.path("write_file", args)
	if err != nil {
		return nil, err
	}
	content, err := object.AsString(args[1])
	if err != nil {
		return nil, err
	}
	if err := afero.WriteFile(f.fs, path, []byte(content), 0o644); err != nil {
		return nil, failure("write_file", path, err)
	}
	return object.Void, nil
}

func (f *fileSystem) AppendFile(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("append_file", 2, args); err != nil {
		return nil, err
	}
	path, err := f.path("append_file", args)
	if err != nil {
		return nil, err
	}
	content, err := object.AsString(args[1])
	if err != nil {
		return nil, err
	}
	file, err := f.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, failure("append_file", path, err)
	}
	defer file.Close()
	if _, err := file.WriteString(content); err != nil {
		return nil, failure("append_file", path, err)
	}
	return object.Void, nil
}

func (f *fileSystem) Exists(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("exists", 1, args); err != nil {
		return nil, err
	}
	path, err := f.path("exists", args)
	if err != nil {
		return nil, err
	}
	ok, err := afero.Exists(f.fs, path)
	if err != nil {
		return nil, failure("exists", path, err)
	}
	return object.NewBool(ok), nil
}

func (f *fileSystem) Remove(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("remove", 1, args); err != nil {
		return nil, err
	}
	path, err := f.path("remove", args)
	if err != nil {
		return nil, err
	}
	if err := f.fs.Remove(path); err != nil {
		return nil, failure("remove", path, err)
	}
	return object.Void, nil
}

func (f *fileSystem) ListDir(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("list_dir", 1, args); err != nil {
		return nil, err
	}
	path, err := f.path("list_dir", args)
	if err != nil {
		return nil, err
	}
	entries, err := afero.ReadDir(f.fs, path)
	if err != nil {
		return nil, failure("list_dir", path, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return object.NewStringArray(names), nil
}

// Module returns the fs module backed by the given filesystem. A nil fs
// uses the host operating system.
func Module(fs afero.Fs) *object.Module {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	f := &fileSystem{fs: fs}
	return object.NewBuiltinsModule("fs", map[string]object.Object{
		"append_file": object.NewBuiltin("append_file", f.AppendFile),
		"exists":      object.NewBuiltin("exists", f.Exists),
		"list_dir":    object.NewBuiltin("list_dir", f.ListDir),
		"read_file":   object.NewBuiltin("read_file", f.ReadFile),
		"remove":      object.NewBuiltin("remove", f.Remove),
		"write_file":  object.NewBuiltin("write_file", f.WriteFile),
	})
}

// ReadOnlyModule is like Module but rejects every write.
func ReadOnlyModule(fs afero.Fs) *object.Module {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return Module(afero.NewReadOnlyFs(fs))
}
