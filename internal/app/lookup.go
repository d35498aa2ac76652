package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"obs-pkgver/internal/core"
)

// Lookup sanitizes the requested name, fetches the published binaries and
// resolves them per track. Failures are *core.LookupError values.
func (s Service) Lookup(ctx context.Context, req LookupRequest) (LookupResult, error) {
	name := core.SanitizePackageName(req.RawName)
	log.Ctx(ctx).Info().Str("package", name).Msg("package version requested")
	if name == "" {
		return LookupResult{}, core.EmptyInput()
	}

	query, err := core.BuildSearchQuery(name, s.Filter)
	if err != nil {
		return LookupResult{}, err
	}
	raw, err := s.Search.Search(ctx, query)
	if err != nil {
		log.Ctx(ctx).Warn().Str("package", name).Err(err).Msg("published binary search failed")
		return LookupResult{}, core.FetchFailed(err)
	}
	records, err := core.ParseBinaryCollection(raw, s.Tracks)
	if err != nil {
		log.Ctx(ctx).Warn().Str("package", name).Err(err).Msg("search response rejected")
		return LookupResult{}, err
	}

	summary := core.NewTrackResolver(s.Tracks).Resolve(ctx, name, records)
	log.Ctx(ctx).Debug().
		Str("package", name).
		Int("records", len(records)).
		Bool("found", !summary.Empty()).
		Msg("package version resolved")
	return LookupResult{
		PackageName: name,
		Records:     len(records),
		Summary:     summary,
	}, nil
}

// ResolvePackageVersion is the single inbound entry point: it always returns
// text ready for the configured output channel.
func (s Service) ResolvePackageVersion(ctx context.Context, rawName string) string {
	result, err := s.Lookup(ctx, LookupRequest{RawName: rawName})
	return core.NewFormatter(s.Markup).Render(result.Summary, err)
}
