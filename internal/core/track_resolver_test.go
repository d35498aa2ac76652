package core

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obs-pkgver/internal/types"
)

func version(v, r string) *types.VersionInfo {
	return &types.VersionInfo{Version: v, Release: r}
}

func TestResolveTrackOfficialOnly(t *testing.T) {
	result, skipped := ResolveTrack(ruleFor(types.TrackTumbleweed), []types.PublicationRecord{
		officialFactory("7.1.0", "1.1"),
	})
	assert.Empty(t, skipped)
	if diff := cmp.Diff(version("7.1.0", "1.1"), result.Official); diff != "" {
		t.Fatalf("unexpected official (-want +got):\n%s", diff)
	}
	assert.Empty(t, result.Experimental)
	assert.Equal(t, "openSUSE Tumbleweed", result.Label)
}

func TestResolveTrackPatchRevisionTieBreak(t *testing.T) {
	rev3 := leapUpdate("neofetch.3", "7.0.1", "lp152.3.1")
	rev7 := leapUpdate("neofetch.7", "7.1.0", "lp152.7.1")
	tests := []struct {
		name    string
		records []types.PublicationRecord
	}{
		{name: "ascending", records: []types.PublicationRecord{rev3, rev7}},
		{name: "descending", records: []types.PublicationRecord{rev7, rev3}},
		{name: "base first", records: []types.PublicationRecord{leapBase("6.0", "1"), rev3, rev7}},
		{name: "base last", records: []types.PublicationRecord{rev7, rev3, leapBase("6.0", "1")}},
		{name: "base between", records: []types.PublicationRecord{rev3, leapBase("6.0", "1"), rev7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, skipped := ResolveTrack(ruleFor(types.TrackLeap152), tt.records)
			assert.Empty(t, skipped)
			if diff := cmp.Diff(version("7.1.0", "lp152.7.1"), result.Official); diff != "" {
				t.Fatalf("unexpected official (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveTrackBaseProjectWithoutUpdates(t *testing.T) {
	result, _ := ResolveTrack(ruleFor(types.TrackLeap152), []types.PublicationRecord{
		leapBase("7.0.0", "lp152.1.1"),
	})
	assert.Equal(t, version("7.0.0", "lp152.1.1"), result.Official)
}

func TestResolveTrackSkipsMalformedPatchInfo(t *testing.T) {
	records := []types.PublicationRecord{
		leapUpdate("neofetch.abc", "9.9", "bad"),
		leapUpdate("neofetch.5", "7.1.0", "lp152.5.1"),
		leapUpdate("neofetch", "9.9", "bad"),
	}
	result, skipped := ResolveTrack(ruleFor(types.TrackLeap152), records)
	require.Len(t, skipped, 2)
	for _, err := range skipped {
		assert.Equal(t, types.ErrorKindMalformedPatchInfo, KindOf(err))
	}
	assert.Equal(t, version("7.1.0", "lp152.5.1"), result.Official)
}

func TestResolveTrackExperimentalKeepsOrderAndDuplicates(t *testing.T) {
	records := []types.PublicationRecord{
		experimental("utilities", "openSUSE_Tumbleweed", "7.1.0", "3.2"),
		experimental("home:alice", "openSUSE_Tumbleweed", "7.2.0", "1.1"),
		experimental("utilities", "openSUSE_Tumbleweed", "7.1.0", "3.3"),
		experimental("utilities", "openSUSE_Leap_15.2", "7.1.0", "lp152.1"),
	}
	result, _ := ResolveTrack(ruleFor(types.TrackTumbleweed), records)
	want := []types.ExperimentalEntry{
		{Source: "utilities", Version: types.VersionInfo{Version: "7.1.0", Release: "3.2"}},
		{Source: "home:alice", Version: types.VersionInfo{Version: "7.2.0", Release: "1.1"}},
		{Source: "utilities", Version: types.VersionInfo{Version: "7.1.0", Release: "3.3"}},
	}
	if diff := cmp.Diff(want, result.Experimental); diff != "" {
		t.Fatalf("unexpected experimental list (-want +got):\n%s", diff)
	}
	assert.Nil(t, result.Official)
}

func TestResolveTrackOfficialProjectBeatsExperimentalRepository(t *testing.T) {
	record := types.PublicationRecord{
		Project: "openSUSE:Factory", Repository: "openSUSE_Tumbleweed", Package: "pkg", Version: "1", Release: "1",
	}
	result, _ := ResolveTrack(ruleFor(types.TrackTumbleweed), []types.PublicationRecord{record})
	assert.Equal(t, version("1", "1"), result.Official)
	assert.Empty(t, result.Experimental)
}

func TestTrackResolverResolve(t *testing.T) {
	records, err := ParseBinaryCollection(sampleSearchResponse, DefaultTrackRules())
	require.NoError(t, err)

	summary := NewTrackResolver(DefaultTrackRules()).Resolve(context.Background(), "neofetch", records)
	require.Len(t, summary.Tracks, 2)
	assert.Equal(t, "neofetch", summary.PackageName)
	assert.False(t, summary.Empty())

	tw, ok := summary.Track(types.TrackTumbleweed)
	require.True(t, ok)
	assert.Equal(t, version("7.1.0", "1.1"), tw.Official)
	require.Len(t, tw.Experimental, 1)
	assert.Equal(t, "utilities", tw.Experimental[0].Source)

	leap, ok := summary.Track(types.TrackLeap152)
	require.True(t, ok)
	assert.Equal(t, version("7.1.0", "lp152.2.3.1"), leap.Official)
	require.Len(t, leap.Experimental, 1)
	assert.Equal(t, "lp152.3.1", leap.Experimental[0].Version.Release)
}

func TestTrackResolverNoRecords(t *testing.T) {
	summary := NewTrackResolver(DefaultTrackRules()).Resolve(context.Background(), "nothing", nil)
	require.Len(t, summary.Tracks, 2)
	assert.True(t, summary.Empty())
	for _, track := range summary.Tracks {
		assert.Nil(t, track.Official)
		assert.Empty(t, track.Experimental)
	}
}

func TestPatchInfoRevision(t *testing.T) {
	tests := []struct {
		pkg     string
		want    int
		wantErr bool
	}{
		{pkg: "neofetch.13254", want: 13254},
		{pkg: "python3-foo.bar.42", want: 42},
		{pkg: "neofetch", wantErr: true},
		{pkg: "neofetch.", wantErr: true},
		{pkg: "neofetch.x1", wantErr: true},
		{pkg: "neofetch.-4", wantErr: true},
		{pkg: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.pkg, func(t *testing.T) {
			got, err := PatchInfoRevision(tt.pkg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, types.ErrorKindMalformedPatchInfo, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
