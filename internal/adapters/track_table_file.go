package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"obs-pkgver/internal/core"
	"obs-pkgver/internal/ports"
	"obs-pkgver/internal/types"
)

// TrackTableFileAdapter loads a track rule table from YAML. An empty path
// selects the built-in table.
type TrackTableFileAdapter struct{}

func NewTrackTableFileAdapter() TrackTableFileAdapter {
	return TrackTableFileAdapter{}
}

func (a TrackTableFileAdapter) LoadTracks(path string) ([]types.TrackRule, error) {
	if strings.TrimSpace(path) == "" {
		return core.DefaultTrackRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("track table file not found").
			WithCause(err)
	}
	var table types.TrackTableFile
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse track table yaml").
			WithCause(err)
	}
	for i := range table.Tracks {
		rule := &table.Tracks[i]
		rule.Key = types.TrackKey(strings.TrimSpace(string(rule.Key)))
		if strings.TrimSpace(rule.Label) == "" {
			rule.Label = string(rule.Key)
		}
	}
	if err := core.ValidateTrackRules(table.Tracks); err != nil {
		return nil, err
	}
	return table.Tracks, nil
}

var _ ports.TrackTablePort = TrackTableFileAdapter{}
