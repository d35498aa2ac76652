package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"obs-pkgver/internal/types"
)

// DefaultTrackRules is the built-in rule table: the Tumbleweed rolling
// release and the Leap 15.2 numbered release.
func DefaultTrackRules() []types.TrackRule {
	return []types.TrackRule{
		{
			Key:                    types.TrackTumbleweed,
			Label:                  "openSUSE Tumbleweed",
			OfficialProject:        "openSUSE:Factory",
			ExperimentalRepository: "openSUSE_Tumbleweed",
		},
		{
			Key:                    types.TrackLeap152,
			Label:                  "openSUSE Leap 15.2",
			OfficialProject:        "openSUSE:Leap:15.2",
			OfficialUpdateProject:  "openSUSE:Leap:15.2:Update",
			ExperimentalRepository: "openSUSE_Leap_15.2",
		},
	}
}

// ValidateTrackRules rejects tables with unnamed or duplicate tracks and
// tracks that could never match a record.
func ValidateTrackRules(rules []types.TrackRule) error {
	if len(rules) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("track table is empty")
	}
	seen := map[types.TrackKey]bool{}
	for i, rule := range rules {
		key := types.TrackKey(strings.TrimSpace(string(rule.Key)))
		if key == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("track %d has no key", i))
		}
		if seen[key] {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate track key %q", key))
		}
		seen[key] = true
		if strings.TrimSpace(rule.OfficialProject) == "" && strings.TrimSpace(rule.ExperimentalRepository) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("track %q needs an official project or an experimental repository", key))
		}
	}
	return nil
}

type recordBranch int

const (
	branchNone recordBranch = iota
	branchOfficial
	branchUpdate
	branchExperimental
)

// classify picks the rule branch a record falls into. Checks run in a fixed
// order: official project, update stream, experimental repository.
func classify(rule types.TrackRule, record types.PublicationRecord) recordBranch {
	switch {
	case rule.OfficialProject != "" && record.Project == rule.OfficialProject:
		return branchOfficial
	case rule.OfficialUpdateProject != "" && record.Project == rule.OfficialUpdateProject:
		return branchUpdate
	case rule.ExperimentalRepository != "" && record.Repository == rule.ExperimentalRepository:
		return branchExperimental
	default:
		return branchNone
	}
}

func (b recordBranch) requiredAttributes() []string {
	switch b {
	case branchOfficial:
		return []string{attrVersion, attrRelease}
	case branchUpdate:
		return []string{attrPackage, attrVersion, attrRelease}
	case branchExperimental:
		return []string{attrProject, attrVersion, attrRelease}
	default:
		return nil
	}
}
