package index

import (
	"strings"

	"github.com/fwmirror/fwmirror/pkg/errors"
	"github.com/fwmirror/fwmirror/pkg/firmware"
)

// Marker lines delimiting the replaceable index block in the README.
const (
	DefaultStartMarker = "<!-- FIRMWARE_INDEX_START -->"
	DefaultEndMarker   = "<!-- FIRMWARE_INDEX_END -->"
)

// Splice replaces the span between the start and end markers of doc
// with replacement, preserving the marker lines themselves. It is an
// explicit two-index operation: when either marker is absent (or the
// end marker only appears before the start marker), the original doc
// is returned unmodified alongside a MarkerError. No partial output
// is ever produced.
func Splice(doc, start, end, replacement string) (string, error) {
	i := strings.Index(doc, start)
	if i < 0 {
		return doc, errors.NewMarkerError(start, "start marker not found in document")
	}

	afterStart := i + len(start)
	j := strings.Index(doc[afterStart:], end)
	if j < 0 {
		return doc, errors.NewMarkerError(end, "end marker not found after start marker")
	}
	endIdx := afterStart + j

	var b strings.Builder
	b.WriteString(doc[:afterStart])
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(replacement))
	b.WriteString("\n\n")
	b.WriteString(doc[endIdx:])
	return b.String(), nil
}

// UpdateReadme renders the index for the given records and splices it
// into doc between the default markers. On any error the original doc
// is returned unmodified.
func (r *Renderer) UpdateReadme(doc string, records []firmware.Release, regions firmware.Regions) (string, error) {
	rendered, err := r.Render(records, regions)
	if err != nil {
		return doc, err
	}
	return Splice(doc, DefaultStartMarker, DefaultEndMarker, rendered)
}
