package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkerError(t *testing.T) {
	err := NewMarkerError("<!-- FIRMWARE_INDEX_END -->", "end marker not found")

	assert.True(t, errors.Is(err, ErrMarkerMissing))
	assert.True(t, IsMarkerMissing(err))
	assert.Contains(t, err.Error(), "<!-- FIRMWARE_INDEX_END -->")
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("version", "", "version is required")

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "version")
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("manifest", "eea")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "manifest eea not found")
}

func TestWrappedErrorsUnwrap(t *testing.T) {
	inner := errors.New("disk full")

	ioErr := WrapIO("write", "/tmp/README.md", inner)
	assert.True(t, errors.Is(ioErr, inner))
	assert.Contains(t, ioErr.Error(), "/tmp/README.md")

	parseErr := WrapParse("yaml", "eea.yaml", inner)
	assert.True(t, errors.Is(parseErr, inner))
	assert.Contains(t, parseErr.Error(), "eea.yaml")
}

func TestWrapHelpersReturnNilOnNil(t *testing.T) {
	assert.NoError(t, WrapIO("read", "path", nil))
	assert.NoError(t, WrapParse("yaml", "path", nil))
	assert.NoError(t, WrapValidation("field", nil))
}

func TestErrorsWorkWithFmtWrapping(t *testing.T) {
	err := fmt.Errorf("updating index: %w", NewMarkerError("start", "missing"))
	assert.True(t, errors.Is(err, ErrMarkerMissing))
}
