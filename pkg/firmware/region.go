// Package firmware defines the core types for the firmware mirror:
// distribution regions, release records, and the deterministic naming
// rules that tie a release to its hosting tag and vendor package.
package firmware

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RegionCode is the short machine identifier for a firmware
// distribution channel (e.g. "global", "eea", "global_dc").
type RegionCode string

// Region pairs a region code with its human-readable display label.
type Region struct {
	Code  RegionCode `json:"code" yaml:"code"`
	Label string     `json:"label,omitempty" yaml:"label,omitempty"`
}

// DisplayName returns the label for rendering. When no label is
// configured the code is title-cased as a fallback ("global_dc"
// becomes "Global Dc" rather than an empty section title).
func (r Region) DisplayName() string {
	if r.Label != "" {
		return r.Label
	}
	title := cases.Title(language.English)
	return title.String(strings.ReplaceAll(string(r.Code), "_", " "))
}

// Regions is an ordered list of supported regions. Declaration order
// is the rendering order, independent of input record order.
type Regions []Region

// DefaultRegions returns the supported distribution channels in their
// canonical display order.
func DefaultRegions() Regions {
	return Regions{
		{Code: "global", Label: "Global"},
		{Code: "eea", Label: "Europe (EEA)"},
		{Code: "ru", Label: "Russia"},
		{Code: "id", Label: "Indonesia"},
		{Code: "tw", Label: "Taiwan"},
		{Code: "tr", Label: "Turkey"},
		{Code: "global_dc", Label: "Global DC"},
	}
}

// Lookup returns the region with the given code and whether it is
// part of the supported set.
func (rs Regions) Lookup(code RegionCode) (Region, bool) {
	for _, r := range rs {
		if r.Code == code {
			return r, true
		}
	}
	return Region{}, false
}

// Contains reports whether code is in the supported set.
func (rs Regions) Contains(code RegionCode) bool {
	_, ok := rs.Lookup(code)
	return ok
}

// Codes returns the region codes in declaration order.
func (rs Regions) Codes() []RegionCode {
	codes := make([]RegionCode, len(rs))
	for i, r := range rs {
		codes[i] = r.Code
	}
	return codes
}
