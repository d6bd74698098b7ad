// Package search models the staged candidate search shown while a job
// requirement is being processed. The stages only pace the UI; the work
// attached to them is supplied by the caller.
package search

import "time"

type Stage int

const (
	StageIdle Stage = iota
	StageInitializing
	StageSavingRequirements
	StageSearchingLinkedIn
	StageScanningNaukri
	StageAnalyzingMatches
	StageRanking
	StageDone
)

type stageInfo struct {
	name     string
	label    string
	progress int
	dwell    time.Duration
}

var stages = map[Stage]stageInfo{
	StageIdle:               {"idle", "", 0, 0},
	StageInitializing:       {"initializing", "Initializing search...", 0, 0},
	StageSavingRequirements: {"saving_requirements", "Saving job requirements...", 20, 0},
	StageSearchingLinkedIn:  {"searching_linkedin", "Searching LinkedIn profiles...", 40, 1500 * time.Millisecond},
	StageScanningNaukri:     {"scanning_naukri", "Scanning Naukri.com database...", 60, 1500 * time.Millisecond},
	StageAnalyzingMatches:   {"analyzing_matches", "Analyzing candidate matches...", 80, 1000 * time.Millisecond},
	StageRanking:            {"ranking", "Ranking candidates by relevance...", 95, 800 * time.Millisecond},
	StageDone:               {"done", "Search completed!", 100, 0},
}

func (s Stage) String() string {
	if info, ok := stages[s]; ok {
		return info.name
	}
	return "unknown"
}

// Label is the line shown under the progress bar.
func (s Stage) Label() string { return stages[s].label }

func (s Stage) Progress() int { return stages[s].progress }

// Dwell is how long the stage stays on screen before advancing.
func (s Stage) Dwell() time.Duration { return stages[s].dwell }

// Stages lists the visible stages in order, Idle excluded.
func Stages() []Stage {
	return []Stage{
		StageInitializing,
		StageSavingRequirements,
		StageSearchingLinkedIn,
		StageScanningNaukri,
		StageAnalyzingMatches,
		StageRanking,
		StageDone,
	}
}
