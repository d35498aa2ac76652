package types

type TrackKey string

const (
	TrackTumbleweed TrackKey = "tumbleweed"
	TrackLeap152    TrackKey = "leap-15.2"
)

// TrackRule classifies publication records into a distribution track.
//
// OfficialProject alone designates the authoritative build.
// OfficialUpdateProject, when set, carries incremental official patches that
// compete by patch-info revision. ExperimentalRepository collects secondary
// builds targeting the track.
type TrackRule struct {
	Key                    TrackKey `yaml:"key"`
	Label                  string   `yaml:"label"`
	OfficialProject        string   `yaml:"official_project"`
	OfficialUpdateProject  string   `yaml:"official_update_project,omitempty"`
	ExperimentalRepository string   `yaml:"experimental_repository"`
}

type TrackTableFile struct {
	Tracks []TrackRule `yaml:"tracks"`
}
