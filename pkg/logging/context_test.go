package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLoggerRoundTrip(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := WithLogger(context.Background(), tl.Logger)

	Ctx(ctx).Info().Msg("round trip")

	assert.True(t, tl.Contains("round trip"))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))
}

func TestWithRegionAnnotatesEvents(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := WithLogger(context.Background(), tl.Logger)
	ctx = WithRegion(ctx, "eea")
	ctx = WithOperation(ctx, "manifest.add")

	Ctx(ctx).Info().Msg("annotated")

	assert.True(t, tl.Contains(`"region":"eea"`))
	assert.True(t, tl.Contains(`"operation":"manifest.add"`))
}
