package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"obs-pkgver/internal/app"
	"obs-pkgver/internal/types"
	"obs-pkgver/tests/testutil"
)

// TestLookupWithCustomTrackTable runs a lookup through the real HTTP adapter
// and a track table loaded from YAML.
func TestLookupWithCustomTrackTable(t *testing.T) {
	endpoint := testutil.StartSearchServer(t, testutil.SearchResponse)
	tracksPath := filepath.Join(t.TempDir(), "tracks.yaml")
	require.NoError(t, os.WriteFile(tracksPath, []byte(`tracks:
  - key: leap-15.2
    label: Leap
    official_project: openSUSE:Leap:15.2
    official_update_project: openSUSE:Leap:15.2:Update
    experimental_repository: openSUSE_Leap_15.2
`), 0644))

	service, err := app.NewService(app.ServiceConfig{
		OBSEndpoint:   endpoint,
		OBSTimeoutSec: 5,
		Format:        types.OutputFormatPlain,
		TracksFile:    tracksPath,
	})
	require.NoError(t, err)

	result, err := service.Lookup(context.Background(), app.LookupRequest{RawName: "neofetch"})
	require.NoError(t, err)

	want := types.PkgVersionSummary{
		PackageName: "neofetch",
		Tracks: []types.TrackResult{{
			Key:      types.TrackLeap152,
			Label:    "Leap",
			Official: &types.VersionInfo{Version: "7.1.0", Release: "lp152.2.3.1"},
		}},
	}
	if diff := cmp.Diff(want, result.Summary); diff != "" {
		t.Fatalf("unexpected summary (-want +got):\n%s", diff)
	}
}
