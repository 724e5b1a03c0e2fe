package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/fwmirror/fwmirror/internal/index"
	"github.com/fwmirror/fwmirror/internal/manifest"
	"github.com/fwmirror/fwmirror/pkg/firmware"
	"github.com/fwmirror/fwmirror/pkg/logging"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function
// field. If a function field is nil, the method returns a sensible
// default.
type Mock struct {
	StoreFunc        func() *manifest.Store
	RendererFunc     func() *index.Renderer
	RegionsFunc      func() firmware.Regions
	ReadmePathFunc   func() string
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
}

// Store returns the manifest store using the mock function or nil.
func (m *Mock) Store() *manifest.Store {
	if m.StoreFunc != nil {
		return m.StoreFunc()
	}
	return nil
}

// Renderer returns the index renderer using the mock function or a
// default renderer.
func (m *Mock) Renderer() *index.Renderer {
	if m.RendererFunc != nil {
		return m.RendererFunc()
	}
	return index.New(index.WithLogger(&logging.Nop))
}

// Regions returns the supported regions using the mock function or
// the default set.
func (m *Mock) Regions() firmware.Regions {
	if m.RegionsFunc != nil {
		return m.RegionsFunc()
	}
	return firmware.DefaultRegions()
}

// ReadmePath returns the README path using the mock function or "".
func (m *Mock) ReadmePath() string {
	if m.ReadmePathFunc != nil {
		return m.ReadmePathFunc()
	}
	return ""
}

// Logger returns the logger using the mock function or a nop logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return &logging.Nop
}

// OutputFormat returns the output format using the mock function or "".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return ""
}

// Version returns the version using the mock function or "test".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "test"
}

// Commit returns a fixed test commit hash.
func (m *Mock) Commit() string { return "none" }

// Date returns a fixed test build date.
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns a fixed test builder identifier.
func (m *Mock) BuiltBy() string { return "test" }
