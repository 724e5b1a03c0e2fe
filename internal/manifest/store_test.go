package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwmirror/fwmirror/pkg/errors"
	"github.com/fwmirror/fwmirror/pkg/firmware"
	"github.com/fwmirror/fwmirror/pkg/logging"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	tl := logging.NewTestLogger(t)
	return New(t.TempDir(), WithDevice("degas"), WithLogger(tl.Logger))
}

func testRelease(version, date string) firmware.Release {
	return firmware.Release{
		Version:        version,
		Region:         "eea",
		Date:           date,
		AndroidVersion: "15.0",
		HyperOSVersion: "2.0",
	}
}

func TestStoreAddAndLoad(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add(context.Background(), "eea", testRelease("OS2.0.1.0.VNEMIXM", "2025-01-01")))

	m, err := s.Load("eea")
	require.NoError(t, err)
	assert.Equal(t, firmware.RegionCode("eea"), m.Region)
	require.Len(t, m.Versions, 1)
	assert.Equal(t, "OS2.0.1.0.VNEMIXM", m.Versions[0].Version)

	// Vendor links were reconstructed for a release that carried none.
	assert.Len(t, m.Versions[0].URLs, 4)
	assert.Contains(t, m.Versions[0].URLs[0], "bn.d.miui.com")
}

func TestStoreAddSortsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add(context.Background(), "eea", testRelease("OS2.0.1.0.VNEMIXM", "2025-01-01")))
	require.NoError(t, s.Add(context.Background(), "eea", testRelease("OS2.0.3.0.VNEMIXM", "2025-03-01")))
	require.NoError(t, s.Add(context.Background(), "eea", testRelease("OS2.0.2.0.VNEMIXM", "2025-02-01")))

	m, err := s.Load("eea")
	require.NoError(t, err)
	require.Len(t, m.Versions, 3)
	assert.Equal(t, "OS2.0.3.0.VNEMIXM", m.Versions[0].Version)
	assert.Equal(t, "OS2.0.2.0.VNEMIXM", m.Versions[1].Version)
	assert.Equal(t, "OS2.0.1.0.VNEMIXM", m.Versions[2].Version)
}

func TestStoreAddRejectsDuplicateVersion(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add(context.Background(), "eea", testRelease("OS2.0.1.0.VNEMIXM", "2025-01-01")))

	err := s.Add(context.Background(), "eea", testRelease("OS2.0.1.0.VNEMIXM", "2025-01-02"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrAlreadyExists)
}

func TestStoreAddRejectsMalformedRelease(t *testing.T) {
	s := newTestStore(t)

	err := s.Add(context.Background(), "eea", firmware.Release{Region: "eea", Date: "2025-01-01"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestStoreAddRequiresDate(t *testing.T) {
	s := newTestStore(t)

	// A dateless release is renderable but not recordable: the sort
	// order and the vendor package name depend on the date.
	err := s.Add(context.Background(), "eea", firmware.Release{
		Version: "OS2.0.1.0.VNEMIXM",
		Region:  "eea",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestStoreAddLogsRegion(t *testing.T) {
	tl := logging.NewTestLogger(t)
	s := New(t.TempDir(), WithDevice("degas"), WithLogger(tl.Logger))

	require.NoError(t, s.Add(context.Background(), "eea", testRelease("OS2.0.1.0.VNEMIXM", "2025-01-01")))

	assert.True(t, tl.Contains(`"region":"eea"`))
	assert.True(t, tl.Contains("Recorded release"))
}

func TestStoreAddRejectsRegionMismatch(t *testing.T) {
	s := newTestStore(t)

	rel := testRelease("OS2.0.1.0.VNEMIXM", "2025-01-01")
	rel.Region = "global"

	err := s.Add(context.Background(), "eea", rel)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestStoreLoadMissingManifest(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load("tw")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotFound)

	m, err := s.LoadOrCreate("tw")
	require.NoError(t, err)
	assert.Equal(t, firmware.RegionCode("tw"), m.Region)
	assert.Empty(t, m.Versions)
}

func TestStoreRegions(t *testing.T) {
	s := newTestStore(t)

	codes, err := s.Regions()
	require.NoError(t, err)
	assert.Empty(t, codes)

	require.NoError(t, s.Add(context.Background(), "eea", testRelease("OS2.0.1.0.VNEMIXM", "2025-01-01")))

	global := testRelease("OS2.0.2.0.VNEMIXM", "2025-01-02")
	global.Region = "global"
	require.NoError(t, s.Add(context.Background(), "global", global))

	codes, err = s.Regions()
	require.NoError(t, err)
	assert.ElementsMatch(t, []firmware.RegionCode{"eea", "global"}, codes)
}

func TestStoreReleasesFollowsRegionOrder(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add(context.Background(), "eea", testRelease("OS2.0.1.0.VNEMIXM", "2025-01-01")))

	global := testRelease("OS2.0.2.0.VNEMIXM", "2025-01-02")
	global.Region = "global"
	require.NoError(t, s.Add(context.Background(), "global", global))

	records, err := s.Releases(firmware.DefaultRegions())
	require.NoError(t, err)
	require.Len(t, records, 2)

	// DefaultRegions declares global before eea.
	assert.Equal(t, firmware.RegionCode("global"), records[0].Region)
	assert.Equal(t, firmware.RegionCode("eea"), records[1].Region)
}

func TestStoreSaveIsAtomic(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add(context.Background(), "eea", testRelease("OS2.0.1.0.VNEMIXM", "2025-01-01")))

	// No temp file is left behind after a successful save.
	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotEqual(t, ".tmp", filepath.Ext(entry.Name()))
	}
}
