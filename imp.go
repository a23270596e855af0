// Package imp embeds the imp scripting language.
//
// A program is a set of @-declared functions; running it calls @main:
//
//	result, err := imp.Eval(ctx, `@main() { println("hi"); }`)
package imp

import (
	"context"
	"maps"
	"net/http"

	"github.com/spf13/afero"

	"github.com/cloudcmds/imp/builtins"
	"github.com/cloudcmds/imp/evaluator"
	"github.com/cloudcmds/imp/importer"
	modFs "github.com/cloudcmds/imp/modules/fs"
	modHtml "github.com/cloudcmds/imp/modules/html"
	modInternet "github.com/cloudcmds/imp/modules/internet"
	modMath "github.com/cloudcmds/imp/modules/math"
	modUuid "github.com/cloudcmds/imp/modules/uuid"
	"github.com/cloudcmds/imp/object"
	"github.com/cloudcmds/imp/parser"
)

// Builtins returns the names bound in every program's root scope.
//
// To customize the environment, modify the returned map:
//
//	globals := imp.Builtins()
//	delete(globals, "print")
//	imp.Eval(ctx, source, imp.WithoutDefaultGlobals(), imp.WithGlobals(globals))
func Builtins() map[string]object.Object {
	return builtins.Builtins()
}

// DefaultImporter returns an importer offering the standard capabilities:
// fs, internet, html, uuid and math. Modules are built on first use. A nil
// fs uses the host filesystem.
func DefaultImporter(fs afero.Fs, client *http.Client, opts ...importer.Option) *importer.MapImporter {
	var netOpts []modInternet.Option
	if client != nil {
		netOpts = append(netOpts, modInternet.WithClient(client))
	}
	opts = append([]importer.Option{
		importer.WithLoader("fs", func() *object.Module { return modFs.Module(fs) }),
		importer.WithLoader("html", modHtml.Module),
		importer.WithLoader("internet", func() *object.Module { return modInternet.Module(netOpts...) }),
		importer.WithLoader("math", modMath.Module),
		importer.WithLoader("uuid", modUuid.Module),
	}, opts...)
	return importer.NewMapImporter(opts...)
}

// Parse parses source code into a Program. The returned Program is
// immutable and may be run any number of times.
func Parse(ctx context.Context, source string, opts ...Option) (*Program, error) {
	cfg := newConfig(opts...)
	tree, err := parser.Parse(ctx, source, cfg.ParserOpts()...)
	if err != nil {
		return nil, err
	}
	return &Program{tree: tree, source: source, filename: cfg.filename}, nil
}

// Run executes a parsed program by calling its @main function and returns
// the value main returned. Each call gets a fresh root scope.
func Run(ctx context.Context, program *Program, opts ...Option) (object.Object, error) {
	cfg := newConfig(opts...)
	if cfg.stdout != nil {
		ctx = object.WithStdout(ctx, cfg.stdout)
	}
	scope := object.NewScope(cfg.Globals())
	evalOpts := append(cfg.EvaluatorOpts(), evaluator.WithSource(program.source))
	cfg.logger.Debug().Str("filename", program.filename).Int("functions", len(program.tree.Funcs)).Msg("run")
	return evaluator.New(evalOpts...).Run(ctx, program.tree, scope, cfg.args)
}

// Eval is a convenience function that parses and runs source code. The
// result is converted to a native Go value.
func Eval(ctx context.Context, source string, opts ...Option) (any, error) {
	program, err := Parse(ctx, source, opts...)
	if err != nil {
		return nil, err
	}
	result, err := Run(ctx, program, opts...)
	if err != nil {
		return nil, err
	}
	return result.Interface(), nil
}

func (c *config) Globals() map[string]object.Object {
	globals := map[string]object.Object{}
	if !c.withoutDefaultGlobals {
		maps.Copy(globals, builtins.Builtins())
	}
	for name, value := range c.globals {
		globals[name] = object.FromGoType(value)
	}
	for name := range c.denylist {
		delete(globals, name)
	}
	return globals
}
