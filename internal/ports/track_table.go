package ports

import "obs-pkgver/internal/types"

type TrackTablePort interface {
	LoadTracks(path string) ([]types.TrackRule, error)
}
