// Package app provides the application context and dependency
// management for the fwmirror CLI. It centralizes configuration,
// logging, and the manifest store behind one App type.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/fwmirror/fwmirror/internal/appcontext"
	"github.com/fwmirror/fwmirror/internal/index"
	"github.com/fwmirror/fwmirror/internal/manifest"
	"github.com/fwmirror/fwmirror/pkg/firmware"
)

// App represents the fwmirror application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Manifest store (lazy-initialized, singleton)
	mu    sync.Mutex
	store *manifest.Store
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// ReadmePath returns the path of the README holding the index.
func (a *App) ReadmePath() string {
	return a.config.ReadmePath
}

// Regions returns the supported regions in display order.
func (a *App) Regions() firmware.Regions {
	return firmware.DefaultRegions()
}

// Store returns the manifest store, creating it lazily if needed.
func (a *App) Store() *manifest.Store {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.store == nil {
		a.store = manifest.New(a.config.ManifestDir,
			manifest.WithDevice(a.config.Device),
			manifest.WithLogger(a.logger),
		)
	}
	return a.store
}

// Renderer returns an index renderer configured from the app config.
func (a *App) Renderer() *index.Renderer {
	return index.New(
		index.WithRepositoryURL(a.config.RepositoryURL),
		index.WithLogger(a.logger),
	)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
