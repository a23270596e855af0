// Package importer resolves the capability names used by "use" statements.
package importer

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/object"
)

// Importer is an interface used to import capability modules by name.
type Importer interface {
	// Import returns the module with the given name.
	Import(ctx context.Context, name string) (*object.Module, error)
}

// Loader builds a module on first use.
type Loader func() *object.Module

// MapImporter imports modules from a fixed set of named loaders. Each module
// is built at most once.
type MapImporter struct {
	mutex   sync.Mutex
	loaders map[string]Loader
	modules map[string]*object.Module
	logger  zerolog.Logger
}

// Option is a configuration function for a MapImporter.
type Option func(*MapImporter)

// WithLogger sets the logger used to report module loads.
func WithLogger(logger zerolog.Logger) Option {
	return func(i *MapImporter) {
		i.logger = logger
	}
}

// WithModule registers an already built module.
func WithModule(module *object.Module) Option {
	return func(i *MapImporter) {
		i.modules[module.Name()] = module
	}
}

// WithLoader registers a loader under the given name.
func WithLoader(name string, loader Loader) Option {
	return func(i *MapImporter) {
		i.loaders[name] = loader
	}
}

// NewMapImporter returns an importer for the given modules and loaders.
func NewMapImporter(options ...Option) *MapImporter {
	i := &MapImporter{
		loaders: map[string]Loader{},
		modules: map[string]*object.Module{},
		logger:  zerolog.Nop(),
	}
	for _, opt := range options {
		opt(i)
	}
	return i
}

// Import returns the named module, loading it if needed.
func (i *MapImporter) Import(ctx context.Context, name string) (*object.Module, error) {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	if module, ok := i.modules[name]; ok {
		return module, nil
	}
	loader, ok := i.loaders[name]
	if !ok {
		err := errors.New(errors.UnknownCapability, "unknown capability %q", name)
		if hint := errors.FormatSuggestions(errors.Suggest(name, i.names())); hint != "" {
			err.WithHint(hint)
		} else if names := i.names(); len(names) > 0 {
			err.WithHint("available capabilities: " + strings.Join(names, ", "))
		}
		return nil, err
	}
	module := loader()
	i.modules[name] = module
	i.logger.Debug().Str("module", name).Int("members", len(module.Names())).Msg("loaded capability")
	return module, nil
}

// Names returns the sorted names of every importable module.
func (i *MapImporter) Names() []string {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.names()
}

func (i *MapImporter) names() []string {
	seen := map[string]bool{}
	for name := range i.loaders {
		seen[name] = true
	}
	for name := range i.modules {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
