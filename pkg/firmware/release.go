package firmware

import (
	"fmt"
	"strings"

	"github.com/fwmirror/fwmirror/pkg/errors"
)

// DefaultDevice is the device codename used in vendor package names
// when none is configured.
const DefaultDevice = "degas"

// md5Placeholder stands in for the package checksum until the mirror
// workflow has downloaded and hashed the vendor archive.
const md5Placeholder = "xxxxxxxxxxxx"

// mirrorHosts are the vendor OTA hosts that serve fastboot packages.
var mirrorHosts = []string{
	"bn.d.miui.com",
	"bigota.d.miui.com",
	"hugeota.d.miui.com",
	"ultimateota.d.miui.com",
}

// Release is one published firmware artifact for one region. Records
// are created once per successful mirror upload and never mutated.
type Release struct {
	Version        string     `json:"version" yaml:"version"`
	Region         RegionCode `json:"region" yaml:"region"`
	Date           string     `json:"date" yaml:"date"`
	HyperOSVersion string     `json:"hyperos_version,omitempty" yaml:"hyperos_version,omitempty"`
	AndroidVersion string     `json:"android_version,omitempty" yaml:"android_version,omitempty"`
	MD5            string     `json:"md5,omitempty" yaml:"md5,omitempty"`

	// URLs are the vendor mirror links for the fastboot package.
	// When empty they can be reconstructed with MirrorURLs.
	URLs []string `json:"urls,omitempty" yaml:"urls,omitempty"`
}

// Validate reports whether the release carries the fields every
// consumer depends on. Version and region identify the release and
// derive its download link; the date is display metadata and may be
// empty.
func (r Release) Validate() error {
	if r.Version == "" {
		return errors.NewValidationError("version", r.Version, "version is required")
	}
	if r.Region == "" {
		return errors.NewValidationError("region", r.Region, "region code is required")
	}
	return nil
}

// TagName returns the hosting release tag for this release. The tag
// is a pure function of version and region; no other identifier is
// needed to reconstruct it.
func (r Release) TagName() string {
	return fmt.Sprintf("v%s-%s", r.Version, r.Region)
}

// DownloadURL returns the hosting release page for this release.
// repoURL is the repository base, e.g.
// "https://github.com/fwmirror/degas-firmware".
func (r Release) DownloadURL(repoURL string) string {
	return strings.TrimSuffix(repoURL, "/") + "/releases/tag/" + r.TagName()
}

// PackageFilename returns the vendor fastboot package name for this
// release on the given device. The vendor encodes the region twice:
// once as a name prefix and once as a plain suffix.
func (r Release) PackageFilename(device string) string {
	if device == "" {
		device = DefaultDevice
	}

	suffix := "global"
	if r.Region != "global" {
		suffix = string(r.Region) + "_global"
	}

	// Vendor dates look like 20250113.0000.00.
	date := strings.ReplaceAll(r.Date, "-", "") + ".0000.00"

	md5 := r.MD5
	if md5 == "" {
		md5 = md5Placeholder
	}

	return fmt.Sprintf("%s_%s_images_%s_%s_%s_%s_%s.tgz",
		device, suffix, r.Version, date, r.AndroidVersion, r.Region, md5)
}

// MirrorURLs returns the vendor OTA mirror links for this release's
// fastboot package, one per known mirror host.
func (r Release) MirrorURLs(device string) []string {
	filename := r.PackageFilename(device)
	urls := make([]string, 0, len(mirrorHosts))
	for _, host := range mirrorHosts {
		urls = append(urls, fmt.Sprintf("https://%s/%s/%s", host, r.Version, filename))
	}
	return urls
}
