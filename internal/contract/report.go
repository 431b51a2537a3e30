package contract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// MatchReport is one reported match: metadata, optional aggregate stats and
// the event timeline in the order the source reported it.
type MatchReport struct {
	Country     string       `json:"country"`
	CountryCode string       `json:"country_code,omitempty"`
	League      string       `json:"league"`
	Season      string       `json:"season"`
	Date        string       `json:"date,omitempty"` // YYYY-MM-DD
	HomeTeam    string       `json:"home_team"`
	AwayTeam    string       `json:"away_team"`
	ScoreHT     string       `json:"score_ht,omitempty"` // "X-Y", never parsed
	ScoreFT     string       `json:"score_ft,omitempty"`
	Stats       *Stats       `json:"stats,omitempty"`
	Events      []MatchEvent `json:"events"`
	FeaturesHT  Features     `json:"features_ht,omitempty"`
}

// Stats holds per-side aggregates. Every field is independently optional.
type Stats struct {
	ShotsHome      *Count   `json:"shots_home,omitempty"`
	ShotsAway      *Count   `json:"shots_away,omitempty"`
	CornersHome    *Count   `json:"corners_home,omitempty"`
	CornersAway    *Count   `json:"corners_away,omitempty"`
	PossessionHome *float64 `json:"possession_home,omitempty"`
	PossessionAway *float64 `json:"possession_away,omitempty"`
}

type reportFields MatchReport

// MarshalJSON always writes events as an array and keeps an empty but
// present features_ht, so encoded reports pass validation.
func (r MatchReport) MarshalJSON() ([]byte, error) {
	events := r.Events
	if events == nil {
		events = []MatchEvent{}
	}
	var features *Features
	if r.FeaturesHT != nil {
		features = &r.FeaturesHT
	}
	return json.Marshal(struct {
		reportFields
		Events     []MatchEvent `json:"events"`
		FeaturesHT *Features    `json:"features_ht,omitempty"`
	}{reportFields(r), events, features})
}

// MatchEvent is a single in-match occurrence.
type MatchEvent struct {
	Minute     Minute    `json:"minute"`
	Period     Period    `json:"period,omitempty"`
	Team       Team      `json:"team"`
	EventType  EventType `json:"event_type"`
	PlayerName string    `json:"player_name,omitempty"`
	PlayerIn   string    `json:"player_in,omitempty"`
	PlayerOut  string    `json:"player_out,omitempty"`
	Assist     string    `json:"assist,omitempty"`
	ScoreAfter string    `json:"score_after,omitempty"`
	RawText    string    `json:"raw_text,omitempty"` // commentary line as received
}

// Minute is the match clock. It accepts any integral JSON number, so 45 and
// 45.0 both decode.
type Minute int

func (m *Minute) UnmarshalJSON(data []byte) error {
	v, ok, err := decodeIntegral(data)
	if err != nil {
		return fmt.Errorf("minute: %w", err)
	}
	if ok {
		*m = Minute(v)
	}
	return nil
}

// Int returns the minute as a plain int.
func (m Minute) Int() int { return int(m) }

// Count is a non-fractional aggregate such as shots or corners.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	v, ok, err := decodeIntegral(data)
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	if ok {
		*c = Count(v)
	}
	return nil
}

// decodeIntegral parses an integral JSON number. ok is false for null.
func decodeIntegral(data []byte) (int64, bool, error) {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return 0, false, nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		return 0, false, fmt.Errorf("expected number, got string")
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return 0, false, err
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		if !InIntegralRange(float64(i)) {
			return 0, false, fmt.Errorf("%s is out of range", n)
		}
		return i, true, nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false, fmt.Errorf("%s is not an integer", n)
	}
	if !InIntegralRange(f) {
		return 0, false, fmt.Errorf("%s is out of range", n)
	}
	return int64(f), true, nil
}

// InIntegralRange reports whether f fits the 32-bit range accepted for
// minutes and counts.
func InIntegralRange(f float64) bool {
	return f >= math.MinInt32 && f <= math.MaxInt32
}
