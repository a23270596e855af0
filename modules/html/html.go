// Package html provides the "html" capability: building HTML documents.
package html

import (
	"bytes"
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/object"
)

var tagName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

var voidElements = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "meta": true, "link": true,
}

func Escape(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("escape", 1, args); err != nil {
		return nil, err
	}
	s, err := object.AsString(args[0])
	if err != nil {
		return nil, err
	}
	return object.NewString(html.EscapeString(s)), nil
}

// Tag wraps its content in an element. Content is inserted as-is so that
// tags can nest; use escape for untrusted text.
func Tag(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.RequireRange("tag", 1, -1, args); err != nil {
		return nil, err
	}
	name, err := object.AsString(args[0])
	if err != nil {
		return nil, err
	}
	if !tagName.MatchString(name) {
		return nil, errors.New(errors.InvalidArgument, "tag(): invalid element name %q", name)
	}
	var sb strings.Builder
	sb.WriteString("<" + name + ">")
	if voidElements[strings.ToLower(name)] {
		if len(args) > 1 {
			return nil, errors.New(errors.InvalidArgument, "tag(): <%s> cannot have content", name)
		}
		return object.NewString(sb.String()), nil
	}
	if err := writeContent(&sb, args[1:]); err != nil {
		return nil, err
	}
	sb.WriteString("</" + name + ">")
	return object.NewString(sb.String()), nil
}

func writeContent(sb *strings.Builder, args []object.Object) error {
	for _, arg := range args {
		switch arg := arg.(type) {
		case *object.String:
			sb.WriteString(arg.Value())
		case *object.Array:
			if err := writeContent(sb, arg.Value()); err != nil {
				return err
			}
		case *object.Number, *object.Bool:
			sb.WriteString(arg.String())
		default:
			return errors.New(errors.TypeMismatch, "expected string content (%s given)", object.TypeName(arg))
		}
	}
	return nil
}

func Markdown(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("markdown", 1, args); err != nil {
		return nil, err
	}
	source, err := object.AsString(args[0])
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(source), &buf); err != nil {
		return nil, errors.Wrap(errors.NativeFailure, err, "markdown() failed: %s", err)
	}
	return object.NewString(buf.String()), nil
}

// Page returns a complete HTML document with the given title and body.
func Page(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.RequireRange("page", 1, -1, args); err != nil {
		return nil, err
	}
	title, err := object.AsString(args[0])
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>")
	sb.WriteString(html.EscapeString(title))
	sb.WriteString("</title></head>\n<body>\n")
	if err := writeContent(&sb, args[1:]); err != nil {
		return nil, err
	}
	sb.WriteString("\n</body>\n</html>\n")
	return object.NewString(sb.String()), nil
}

func Module() *object.Module {
	return object.NewBuiltinsModule("html", map[string]object.Object{
		"escape":   object.NewBuiltin("escape", Escape),
		"markdown": object.NewBuiltin("markdown", Markdown),
		"page":     object.NewBuiltin("page", Page),
		"tag":      object.NewBuiltin("tag", Tag),
	})
}
