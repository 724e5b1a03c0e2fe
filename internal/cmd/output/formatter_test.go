package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON)

	err := f.Format(&buf, map[string]string{"region": "eea"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"region": "eea"`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatYAML)

	err := f.Format(&buf, map[string]string{"region": "eea"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "region: eea")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTable)

	err := f.Format(&buf, Data{
		Headers: []string{"Region", "Version"},
		Rows: [][]string{
			{"eea", "OS2.0.1.0.VNEMIXM"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "eea")
	assert.Contains(t, buf.String(), "OS2.0.1.0.VNEMIXM")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTable)

	err := f.Format(&buf, map[string]int{"count": 2})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"count": 2`)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "table", want: FormatTable},
		{input: "JSON", want: FormatJSON},
		{input: "yaml", want: FormatYAML},
		{input: "", want: Format("")},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
