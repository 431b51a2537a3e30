package ingest

import "github.com/preston-bernstein/matchfeed-web/internal/contract"

// Summary is a per-side tally of a report's event timeline.
type Summary struct {
	Events   int                                          `json:"events"`
	ByTeam   map[contract.Team]map[contract.EventType]int `json:"by_team"`
	Features int                                          `json:"features"`
}

// Summarize counts events by side and type. It reads the timeline as given
// and does not reorder or reconcile it with the score strings.
func Summarize(report contract.MatchReport) Summary {
	s := Summary{
		Events:   len(report.Events),
		ByTeam:   make(map[contract.Team]map[contract.EventType]int, len(contract.Teams)),
		Features: len(report.FeaturesHT),
	}
	for _, ev := range report.Events {
		counts, ok := s.ByTeam[ev.Team]
		if !ok {
			counts = make(map[contract.EventType]int)
			s.ByTeam[ev.Team] = counts
		}
		counts[ev.EventType]++
	}
	return s
}

// Count returns how many events of type et were attributed to team.
func (s Summary) Count(team contract.Team, et contract.EventType) int {
	return s.ByTeam[team][et]
}
