// Package index renders the region-grouped firmware version index and
// splices it into the mirror README between literal marker lines.
package index

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fwmirror/fwmirror/pkg/firmware"
	"github.com/fwmirror/fwmirror/pkg/logging"
)

// DefaultRepositoryURL is the hosting repository whose release tags
// carry the mirrored firmware packages.
const DefaultRepositoryURL = "https://github.com/fwmirror/degas-firmware"

// placeholder is emitted when no renderable records exist.
const placeholder = "The firmware index will be populated after the first releases are created."

// Renderer produces the markdown index for a set of firmware release
// records. Rendering is a pure function of its inputs: identical
// records and regions yield byte-identical output.
type Renderer struct {
	repoURL string
	logger  *zerolog.Logger
}

// Option is a functional option for configuring the Renderer.
type Option func(*Renderer)

// WithRepositoryURL sets the repository whose release tags hold the
// mirrored packages. Download links are derived from it.
func WithRepositoryURL(url string) Option {
	return func(r *Renderer) {
		r.repoURL = url
	}
}

// WithLogger sets the logger used to report skipped records.
func WithLogger(logger *zerolog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// New creates a new index renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		repoURL: DefaultRepositoryURL,
		logger:  logging.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render produces the markdown index for the given records. Regions
// render in declaration order; regions with no records are omitted
// entirely. Malformed records are skipped without aborting the batch,
// records for unknown regions are dropped silently, and duplicate
// (version, region) pairs render as separate rows in input order.
func (r *Renderer) Render(records []firmware.Release, regions firmware.Regions) (string, error) {
	groups := make(map[firmware.RegionCode][]firmware.Release, len(regions))
	total := 0

	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			r.logger.Warn().
				Err(err).
				Str("version", rec.Version).
				Str("region", string(rec.Region)).
				Msg("Skipping malformed release record")
			continue
		}
		if !regions.Contains(rec.Region) {
			r.logger.Debug().
				Str("version", rec.Version).
				Str("region", string(rec.Region)).
				Msg("Dropping record for unknown region")
			continue
		}
		groups[rec.Region] = append(groups[rec.Region], rec)
		total++
	}

	m := NewMarkdownBuffer()

	if total == 0 {
		m.Italic(placeholder).LF()
		if err := m.Build(); err != nil {
			return "", err
		}
		return m.String(), nil
	}

	for _, region := range regions {
		group := groups[region.Code]
		if len(group) == 0 {
			continue
		}

		summary := fmt.Sprintf("<b>%s</b> (%s)",
			region.DisplayName(),
			CountText(len(group), "version available", "versions available"))

		table, err := r.versionTable(group)
		if err != nil {
			return "", err
		}
		m.Details(summary, table)
	}

	if err := m.Build(); err != nil {
		return "", err
	}
	return m.String(), nil
}

// versionTable renders the per-region version table: one row per
// record in group order, duplicates included.
func (r *Renderer) versionTable(group []firmware.Release) (string, error) {
	rows := make([][]string, 0, len(group))
	for _, rec := range group {
		rows = append(rows, []string{
			Code(rec.Version),
			rec.Date,
			Link("Download", rec.DownloadURL(r.repoURL)),
		})
	}

	t := NewMarkdownBuffer()
	t.Table([]string{"Version", "Release Date", "Download"}, rows)
	if err := t.Build(); err != nil {
		return "", err
	}
	return strings.TrimRight(t.String(), "\n"), nil
}
