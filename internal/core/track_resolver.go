package core

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"obs-pkgver/internal/types"
)

type TrackResolver struct {
	Rules []types.TrackRule
}

func NewTrackResolver(rules []types.TrackRule) TrackResolver {
	return TrackResolver{Rules: rules}
}

// Resolve folds records into one TrackResult per rule, in table order.
// Update-stream records with an unreadable patch-info revision are skipped.
func (r TrackResolver) Resolve(ctx context.Context, name string, records []types.PublicationRecord) types.PkgVersionSummary {
	summary := types.PkgVersionSummary{
		PackageName: name,
		Tracks:      make([]types.TrackResult, 0, len(r.Rules)),
	}
	for _, rule := range r.Rules {
		result, skipped := ResolveTrack(rule, records)
		for _, err := range skipped {
			log.Ctx(ctx).Debug().
				Str("track", string(rule.Key)).
				Err(err).
				Msg("update record skipped")
		}
		summary.Tracks = append(summary.Tracks, result)
	}
	return summary
}

// ResolveTrack runs the resolution fold for a single track. The returned
// errors describe records that were skipped; they never abort the fold.
func ResolveTrack(rule types.TrackRule, records []types.PublicationRecord) (types.TrackResult, []error) {
	fold := newTrackFold(rule)
	var skipped []error
	for _, record := range records {
		if err := fold.step(record); err != nil {
			skipped = append(skipped, err)
		}
	}
	return fold.result(), skipped
}

// trackFold is the accumulator of ResolveTrack. A bare official-project
// record counts as revision 0, so it only sets the official version until an
// update-stream record with a positive revision has been seen.
type trackFold struct {
	rule         types.TrackRule
	bestRevision int
	official     *types.VersionInfo
	experimental []types.ExperimentalEntry
}

func newTrackFold(rule types.TrackRule) *trackFold {
	return &trackFold{rule: rule}
}

func (f *trackFold) step(record types.PublicationRecord) error {
	switch classify(f.rule, record) {
	case branchOfficial:
		if f.bestRevision == 0 {
			f.setOfficial(record)
		}
	case branchUpdate:
		revision, err := PatchInfoRevision(record.Package)
		if err != nil {
			return err
		}
		if revision > f.bestRevision {
			f.bestRevision = revision
			f.setOfficial(record)
		}
	case branchExperimental:
		f.experimental = append(f.experimental, types.ExperimentalEntry{
			Source:  record.Project,
			Version: types.VersionOf(record),
		})
	}
	return nil
}

func (f *trackFold) setOfficial(record types.PublicationRecord) {
	version := types.VersionOf(record)
	f.official = &version
}

func (f *trackFold) result() types.TrackResult {
	return types.TrackResult{
		Key:          f.rule.Key,
		Label:        f.rule.Label,
		Official:     f.official,
		Experimental: f.experimental,
	}
}

// PatchInfoRevision parses the trailing dot-separated number of an update
// package name, e.g. "neofetch.13254" yields 13254.
func PatchInfoRevision(pkg string) (int, error) {
	idx := strings.LastIndexByte(pkg, '.')
	if idx < 0 || idx == len(pkg)-1 {
		return 0, malformedPatchInfo(pkg, errors.New("no patch-info suffix"))
	}
	revision, err := strconv.Atoi(pkg[idx+1:])
	if err != nil {
		return 0, malformedPatchInfo(pkg, err)
	}
	if revision < 0 {
		return 0, malformedPatchInfo(pkg, errors.New("negative revision"))
	}
	return revision, nil
}
