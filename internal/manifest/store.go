// Package manifest persists per-region firmware manifests on disk.
// Each supported region gets one YAML file under the manifest
// directory; the flattened set of manifests is the record feed for
// the index renderer.
package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"

	"github.com/fwmirror/fwmirror/pkg/errors"
	"github.com/fwmirror/fwmirror/pkg/firmware"
	"github.com/fwmirror/fwmirror/pkg/logging"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Manifest holds every known release for one region, newest first.
type Manifest struct {
	Region   firmware.RegionCode `json:"region" yaml:"region"`
	Versions []firmware.Release  `json:"versions" yaml:"versions"`
}

// Store is a directory-backed manifest store.
type Store struct {
	dir    string
	device string
	logger *zerolog.Logger
}

// Option is a functional option for configuring the Store.
type Option func(*Store)

// WithDevice sets the device codename used when reconstructing vendor
// mirror URLs for releases that carry none.
func WithDevice(device string) Option {
	return func(s *Store) {
		s.device = device
	}
}

// WithLogger sets the store logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a manifest store rooted at dir.
func New(dir string, opts ...Option) *Store {
	s := &Store{
		dir:    dir,
		device: firmware.DefaultDevice,
		logger: logging.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Dir returns the manifest directory.
func (s *Store) Dir() string {
	return s.dir
}

// path returns the manifest file path for a region.
func (s *Store) path(region firmware.RegionCode) string {
	return filepath.Join(s.dir, string(region)+".yaml")
}

// Load reads the manifest for a region. A region without a manifest
// file yields a NotFoundError.
func (s *Store) Load(region firmware.RegionCode) (*Manifest, error) {
	data, err := os.ReadFile(s.path(region))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("manifest", string(region))
		}
		return nil, errors.WrapIO("read", s.path(region), err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.WrapParse("yaml", s.path(region), err)
	}
	if m.Region == "" {
		m.Region = region
	}

	return &m, nil
}

// LoadOrCreate reads the manifest for a region, creating an empty one
// in memory when no file exists yet.
func (s *Store) LoadOrCreate(region firmware.RegionCode) (*Manifest, error) {
	m, err := s.Load(region)
	if errors.IsNotFound(err) {
		return &Manifest{Region: region}, nil
	}
	return m, err
}

// Save writes a manifest back to disk. The write is atomic: the file
// is replaced only after the new content is fully on disk.
func (s *Store) Save(m *Manifest) error {
	if m.Region == "" {
		return errors.NewValidationError("region", m.Region, "manifest region is required")
	}

	if err := os.MkdirAll(s.dir, dirPermissions); err != nil {
		return errors.WrapIO("create", s.dir, err)
	}

	data, err := yaml.MarshalWithOptions(m,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return errors.WrapParse("yaml", s.path(m.Region), err)
	}

	path := s.path(m.Region)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, filePermissions); err != nil {
		return errors.WrapIO("write", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.WrapIO("write", path, err)
	}

	s.logger.Debug().
		Str("region", string(m.Region)).
		Int("versions", len(m.Versions)).
		Msg("Saved manifest")

	return nil
}

// Add appends a release to a region's manifest and saves it. The
// release is validated first and must carry a release date: the sort
// order and the reconstructed vendor package name both depend on it.
// A version already present in the region is rejected. Releases
// without vendor links get the reconstructed mirror URLs.
func (s *Store) Add(ctx context.Context, region firmware.RegionCode, release firmware.Release) error {
	if release.Region == "" {
		release.Region = region
	}
	if release.Region != region {
		return errors.NewValidationError("region", release.Region,
			fmt.Sprintf("release region %q does not match manifest region %q", release.Region, region))
	}
	if err := release.Validate(); err != nil {
		return err
	}
	if release.Date == "" {
		return errors.NewValidationError("date", release.Date, "release date is required")
	}

	ctx = logging.WithRegion(logging.WithLogger(ctx, s.logger), string(region))

	m, err := s.LoadOrCreate(region)
	if err != nil {
		return err
	}

	for _, v := range m.Versions {
		if v.Version == release.Version {
			return fmt.Errorf("version %s in region %s: %w",
				release.Version, region, errors.ErrAlreadyExists)
		}
	}

	if len(release.URLs) == 0 {
		release.URLs = release.MirrorURLs(s.device)
	}

	m.Versions = append(m.Versions, release)
	sortNewestFirst(m.Versions)

	if err := s.Save(m); err != nil {
		return err
	}

	logging.Ctx(ctx).Info().
		Str("version", release.Version).
		Str("date", release.Date).
		Msg("Recorded release")

	return nil
}

// Regions returns the region codes that have a manifest on disk, in
// filename order.
func (s *Store) Regions() ([]firmware.RegionCode, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapIO("read", s.dir, err)
	}

	var codes []firmware.RegionCode
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ".yaml" {
			continue
		}
		codes = append(codes, firmware.RegionCode(name[:len(name)-len(".yaml")]))
	}

	return codes, nil
}

// Releases flattens all manifests into the record feed for the index
// renderer: regions in declared order, per-manifest order preserved.
// Regions without a manifest are skipped.
func (s *Store) Releases(regions firmware.Regions) ([]firmware.Release, error) {
	var records []firmware.Release
	for _, region := range regions {
		m, err := s.Load(region.Code)
		if errors.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, m.Versions...)
	}
	return records, nil
}

// sortNewestFirst orders releases by date descending. The sort is
// stable so re-releases sharing a date keep their insertion order.
func sortNewestFirst(versions []firmware.Release) {
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].Date > versions[j].Date
	})
}
