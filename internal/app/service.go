package app

import (
	"obs-pkgver/internal/adapters"
	"obs-pkgver/internal/core"
	"obs-pkgver/internal/ports"
	"obs-pkgver/internal/types"
)

// Service runs package version lookups. It holds no per-request state and
// is safe for concurrent use.
type Service struct {
	Search ports.BinarySearchPort
	Markup ports.MarkupPort
	Tracks []types.TrackRule
	Filter types.QueryFilter
}

func NewService(cfg ServiceConfig) (Service, error) {
	markup, err := adapters.NewMarkupAdapter(cfg.Format)
	if err != nil {
		return Service{}, err
	}
	tracks, err := adapters.NewTrackTableFileAdapter().LoadTracks(cfg.TracksFile)
	if err != nil {
		return Service{}, err
	}
	return Service{
		Search: adapters.NewOBSSearchAdapter(cfg.OBSEndpoint, cfg.OBSUsername, cfg.OBSPassword, cfg.OBSTimeoutSec),
		Markup: markup,
		Tracks: tracks,
		Filter: core.DefaultQueryFilter(),
	}, nil
}
