package types

// PublicationRecord is one published binary as reported by the build
// service search endpoint.
type PublicationRecord struct {
	Project    string
	Repository string
	Package    string
	Version    string
	Release    string
}

type VersionInfo struct {
	Version string
	Release string
}

// VersionOf copies the version and release of a record.
func VersionOf(record PublicationRecord) VersionInfo {
	return VersionInfo{Version: record.Version, Release: record.Release}
}

// String renders the version as "<version>-<release>".
func (v VersionInfo) String() string {
	return v.Version + "-" + v.Release
}

// ExperimentalEntry is a secondary build labeled by the project that
// published it.
type ExperimentalEntry struct {
	Source  string
	Version VersionInfo
}

type TrackResult struct {
	Key          TrackKey
	Label        string
	Official     *VersionInfo
	Experimental []ExperimentalEntry
}

// Empty reports whether the track resolved neither an official nor an
// experimental version.
func (r TrackResult) Empty() bool {
	return r.Official == nil && len(r.Experimental) == 0
}

// PkgVersionSummary holds one TrackResult per known track, in rule table
// order.
type PkgVersionSummary struct {
	PackageName string
	Tracks      []TrackResult
}

// Empty reports whether every track is empty. This is the "no official
// version found" outcome.
func (s PkgVersionSummary) Empty() bool {
	for _, track := range s.Tracks {
		if !track.Empty() {
			return false
		}
	}
	return true
}

// Track returns the result for key, if the summary has one.
func (s PkgVersionSummary) Track(key TrackKey) (TrackResult, bool) {
	for _, track := range s.Tracks {
		if track.Key == key {
			return track, true
		}
	}
	return TrackResult{}, false
}
