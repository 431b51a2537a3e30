package contract

import (
	"encoding/json"
	"strings"
)

// Period tags the phase of play an event happened in. The zero value means unknown.
type Period string

const (
	PeriodFirstHalf  Period = "1H"
	PeriodSecondHalf Period = "2H"
	PeriodExtraTime  Period = "ET"
	PeriodPenalties  Period = "PEN"
)

// Team attributes an event to one side.
type Team string

const (
	TeamHome Team = "home"
	TeamAway Team = "away"
)

// EventType is the closed set of in-match occurrences.
type EventType string

const (
	EventGoal            EventType = "goal"
	EventPenalty         EventType = "penalty"
	EventOwnGoal         EventType = "own_goal"
	EventYellowCard      EventType = "yellow"
	EventRedCard         EventType = "red"
	EventSubstitutionIn  EventType = "sub_in"
	EventSubstitutionOut EventType = "sub_out"
	EventCorner          EventType = "corner"
	EventOffside         EventType = "offside"
)

// Periods lists every known period in match order.
var Periods = []Period{PeriodFirstHalf, PeriodSecondHalf, PeriodExtraTime, PeriodPenalties}

// Teams lists both sides.
var Teams = []Team{TeamHome, TeamAway}

// EventTypes lists every known event type.
var EventTypes = []EventType{
	EventGoal,
	EventPenalty,
	EventOwnGoal,
	EventYellowCard,
	EventRedCard,
	EventSubstitutionIn,
	EventSubstitutionOut,
	EventCorner,
	EventOffside,
}

var periodAliases = map[string]Period{
	"first_half":  PeriodFirstHalf,
	"second_half": PeriodSecondHalf,
	"extra_time":  PeriodExtraTime,
	"penalties":   PeriodPenalties,
	"shootout":    PeriodPenalties,
}

var eventTypeAliases = map[string]EventType{
	"yellow_card":      EventYellowCard,
	"red_card":         EventRedCard,
	"substitution_in":  EventSubstitutionIn,
	"substitution_out": EventSubstitutionOut,
}

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	for _, known := range Periods {
		if p == known {
			return true
		}
	}
	return false
}

// Label is a human readable period name.
func (p Period) Label() string {
	switch p {
	case PeriodFirstHalf:
		return "first half"
	case PeriodSecondHalf:
		return "second half"
	case PeriodExtraTime:
		return "extra time"
	case PeriodPenalties:
		return "penalty shootout"
	default:
		return "unknown"
	}
}

// Valid reports whether t is home or away.
func (t Team) Valid() bool {
	return t == TeamHome || t == TeamAway
}

// Valid reports whether e is one of the known event types.
func (e EventType) Valid() bool {
	for _, known := range EventTypes {
		if e == known {
			return true
		}
	}
	return false
}

// ParsePeriod normalises raw into a Period. Surrounding whitespace is ignored
// and matching is case-insensitive for both codes and aliases, so " et " and
// "Shootout" are accepted. Unknown values are returned as-is with ok=false.
func ParsePeriod(raw string) (Period, bool) {
	trimmed := strings.TrimSpace(raw)
	p := Period(strings.ToUpper(trimmed))
	if p.Valid() {
		return p, true
	}
	if alias, ok := periodAliases[strings.ToLower(trimmed)]; ok {
		return alias, true
	}
	return Period(raw), false
}

// ParseTeam normalises raw into a Team, ignoring surrounding whitespace and
// case. Unknown values are returned as-is with ok=false.
func ParseTeam(raw string) (Team, bool) {
	t := Team(strings.ToLower(strings.TrimSpace(raw)))
	if t.Valid() {
		return t, true
	}
	return Team(raw), false
}

// ParseEventType normalises raw into an EventType, accepting the spelled-out
// card and substitution names. Like the other parsers it ignores surrounding
// whitespace and case.
func ParseEventType(raw string) (EventType, bool) {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	e := EventType(lowered)
	if e.Valid() {
		return e, true
	}
	if alias, ok := eventTypeAliases[lowered]; ok {
		return alias, true
	}
	return EventType(raw), false
}

func (p *Period) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p, _ = ParsePeriod(raw)
	return nil
}

func (t *Team) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t, _ = ParseTeam(raw)
	return nil
}

func (e *EventType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e, _ = ParseEventType(raw)
	return nil
}

// Enumerations describes the closed sets of the contract.
type Enumerations struct {
	Periods    []Period    `json:"periods"`
	Teams      []Team      `json:"teams"`
	EventTypes []EventType `json:"event_types"`
}

// Describe returns copies of the closed sets.
func Describe() Enumerations {
	return Enumerations{
		Periods:    append([]Period(nil), Periods...),
		Teams:      append([]Team(nil), Teams...),
		EventTypes: append([]EventType(nil), EventTypes...),
	}
}
