package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestConfigureSetsDefault(t *testing.T) {
	prev := *Default()
	oldLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		SetDefault(prev)
		zerolog.SetGlobalLevel(oldLevel)
	})

	Configure(&Config{Level: "debug", Format: "json", Output: "discard"})

	assert.Equal(t, zerolog.DebugLevel, Default().GetLevel())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{input: "trace", want: zerolog.TraceLevel},
		{input: "debug", want: zerolog.DebugLevel},
		{input: "", want: zerolog.InfoLevel},
		{input: "warning", want: zerolog.WarnLevel},
		{input: "off", want: zerolog.Disabled},
		{input: "bogus", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}
