// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App type, allowing for easier testing with mock
// implementations.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/fwmirror/fwmirror/internal/index"
	"github.com/fwmirror/fwmirror/internal/manifest"
	"github.com/fwmirror/fwmirror/pkg/firmware"
)

// Interface defines the application context that commands need.
type Interface interface {
	// Store returns the manifest store rooted at the configured
	// manifest directory.
	Store() *manifest.Store

	// Renderer returns the index renderer configured with the
	// repository URL.
	Renderer() *index.Renderer

	// Regions returns the supported regions in display order.
	Regions() firmware.Regions

	// ReadmePath returns the path of the README holding the index.
	ReadmePath() string

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml,
	// table).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
