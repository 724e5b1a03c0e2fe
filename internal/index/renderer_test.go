package index

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwmirror/fwmirror/pkg/firmware"
	"github.com/fwmirror/fwmirror/pkg/logging"
)

func testRegions() firmware.Regions {
	return firmware.Regions{
		{Code: "eea", Label: "Europe (EEA)"},
		{Code: "global", Label: "Global"},
	}
}

func TestRendererRender(t *testing.T) {
	tests := []struct {
		name        string
		records     []firmware.Release
		regions     firmware.Regions
		expected    []string
		notExpected []string
	}{
		{
			name: "two versions in one region",
			records: []firmware.Release{
				{Version: "OS2.0.1.0.VNEMIXM", Region: "eea", Date: "2025-01-01"},
				{Version: "OS2.0.2.0.VNEMIXM", Region: "eea", Date: "2025-01-02"},
			},
			regions: testRegions(),
			expected: []string{
				"Europe (EEA)",
				"(2 versions available)",
				"OS2.0.1.0.VNEMIXM",
				"OS2.0.2.0.VNEMIXM",
				"releases/tag/vOS2.0.1.0.VNEMIXM-eea",
				"<details>",
			},
			notExpected: []string{
				"Global", // no records, section omitted entirely
			},
		},
		{
			name: "singular count text",
			records: []firmware.Release{
				{Version: "OS2.0.1.0.VNEMIXM", Region: "global", Date: "2025-01-01"},
			},
			regions:  testRegions(),
			expected: []string{"(1 version available)"},
		},
		{
			name:    "no records emits placeholder only",
			records: nil,
			regions: testRegions(),
			expected: []string{
				"index will be populated",
			},
			notExpected: []string{
				"<details>",
				"Europe (EEA)",
			},
		},
		{
			name: "unknown region dropped silently",
			records: []firmware.Release{
				{Version: "OS2.0.1.0.VNEMIXM", Region: "xx", Date: "2025-01-01"},
				{Version: "OS2.0.2.0.VNEMIXM", Region: "eea", Date: "2025-01-02"},
			},
			regions: testRegions(),
			expected: []string{
				"Europe (EEA)",
				"(1 version available)",
			},
			notExpected: []string{
				"OS2.0.1.0.VNEMIXM",
			},
		},
		{
			name: "malformed record skipped without aborting batch",
			records: []firmware.Release{
				{Version: "", Region: "eea", Date: "2025-01-01"},
				{Version: "OS2.0.2.0.VNEMIXM", Region: "eea", Date: "2025-01-02"},
			},
			regions: testRegions(),
			expected: []string{
				"(1 version available)",
				"OS2.0.2.0.VNEMIXM",
			},
		},
		{
			name: "record without a date renders with an empty date cell",
			records: []firmware.Release{
				{Version: "OS2.0.1.0.VNEMIXM", Region: "eea"},
			},
			regions: testRegions(),
			expected: []string{
				"(1 version available)",
				"OS2.0.1.0.VNEMIXM",
				"releases/tag/vOS2.0.1.0.VNEMIXM-eea",
			},
			notExpected: []string{
				"index will be populated",
			},
		},
		{
			name: "duplicate records render as separate rows",
			records: []firmware.Release{
				{Version: "OS2.0.1.0.VNEMIXM", Region: "eea", Date: "2025-01-01"},
				{Version: "OS2.0.1.0.VNEMIXM", Region: "eea", Date: "2025-01-01"},
			},
			regions:  testRegions(),
			expected: []string{"(2 versions available)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := logging.NewTestLogger(t)
			r := New(WithLogger(tl.Logger))

			out, err := r.Render(tt.records, tt.regions)
			require.NoError(t, err)

			for _, expected := range tt.expected {
				assert.Contains(t, out, expected)
			}
			for _, notExpected := range tt.notExpected {
				assert.NotContains(t, out, notExpected)
			}
		})
	}
}

func TestRendererRenderIdempotent(t *testing.T) {
	records := []firmware.Release{
		{Version: "OS2.0.2.0.VNEMIXM", Region: "global", Date: "2025-01-02"},
		{Version: "OS2.0.1.0.VNEMIXM", Region: "eea", Date: "2025-01-01"},
	}

	r := New(WithLogger(&logging.Nop))
	first, err := r.Render(records, testRegions())
	require.NoError(t, err)
	second, err := r.Render(records, testRegions())
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must yield byte-identical output")
}

func TestRendererRegionOrderFollowsDeclaration(t *testing.T) {
	// Records arrive global-first, but eea is declared first.
	records := []firmware.Release{
		{Version: "OS2.0.2.0.VNEMIXM", Region: "global", Date: "2025-01-02"},
		{Version: "OS2.0.1.0.VNEMIXM", Region: "eea", Date: "2025-01-01"},
	}

	r := New(WithLogger(&logging.Nop))
	out, err := r.Render(records, testRegions())
	require.NoError(t, err)

	eea := strings.Index(out, "Europe (EEA)")
	global := strings.Index(out, "Global")
	require.GreaterOrEqual(t, eea, 0)
	require.GreaterOrEqual(t, global, 0)
	assert.Less(t, eea, global, "regions must render in declared order")
}

func TestRendererCustomRepositoryURL(t *testing.T) {
	records := []firmware.Release{
		{Version: "OS2.0.1.0.VNEMIXM", Region: "eea", Date: "2025-01-01"},
	}

	r := New(
		WithRepositoryURL("https://github.com/example/mirror"),
		WithLogger(&logging.Nop),
	)
	out, err := r.Render(records, testRegions())
	require.NoError(t, err)

	assert.Contains(t, out, "https://github.com/example/mirror/releases/tag/vOS2.0.1.0.VNEMIXM-eea")
}
