package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/preston-bernstein/matchfeed-web/internal/contract"
	"github.com/preston-bernstein/matchfeed-web/internal/timeutil"
)

var (
	requiredReportStrings = []string{"country", "league", "season", "home_team", "away_team"}
	optionalReportStrings = []string{"country_code", "score_ht", "score_ft"}
	optionalEventStrings  = []string{"player_name", "player_in", "player_out", "assist", "score_after", "raw_text"}
	statsIntegers         = []string{"shots_home", "shots_away", "corners_home", "corners_away"}
	statsNumbers          = []string{"possession_home", "possession_away"}
)

// ValidateReader reads a whole payload and validates it.
func ValidateReader(r io.Reader) (contract.MatchReport, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return contract.MatchReport{}, fmt.Errorf("read payload: %w", err)
	}
	return Validate(data)
}

// Validate checks a raw payload against the match-report shape and decodes it.
//
// Only structural rules are enforced: required fields, JSON types, closed enum
// sets, integral minutes and the calendar date format. Scores are not parsed,
// event order is not checked and no field depends on another.
func Validate(data []byte) (contract.MatchReport, error) {
	fields, ok := decodeObject(data)
	if !ok {
		return contract.MatchReport{}, &ValidationError{Violations: []Violation{{
			Kind:   KindMalformedPayload,
			Detail: "payload must be a JSON object",
		}}}
	}

	c := &checker{}
	for _, name := range requiredReportStrings {
		c.requireString(fields, name, name)
	}
	for _, name := range optionalReportStrings {
		c.optionalString(fields, name, name)
	}
	c.date(fields, "date")
	c.stats(fields["stats"])
	c.events(fields)
	c.features(fields["features_ht"])

	if len(c.violations) > 0 {
		return contract.MatchReport{}, &ValidationError{Violations: c.violations}
	}

	var report contract.MatchReport
	if err := json.Unmarshal(data, &report); err != nil {
		return contract.MatchReport{}, &ValidationError{Violations: []Violation{{
			Kind:   KindMalformedPayload,
			Detail: err.Error(),
		}}}
	}
	return report, nil
}

type checker struct {
	violations []Violation
}

func (c *checker) add(path string, kind Kind, detail string) {
	c.violations = append(c.violations, Violation{Path: path, Kind: kind, Detail: detail})
}

func (c *checker) requireString(fields map[string]json.RawMessage, name, path string) (string, bool) {
	raw, ok := fields[name]
	if !ok {
		c.add(path, KindMissingField, "")
		return "", false
	}
	s, ok := asString(raw)
	if !ok {
		c.add(path, KindInvalidType, "expected string")
	}
	return s, ok
}

func (c *checker) optionalString(fields map[string]json.RawMessage, name, path string) (string, bool) {
	raw, ok := fields[name]
	if !ok || isNull(raw) {
		return "", false
	}
	s, ok := asString(raw)
	if !ok {
		c.add(path, KindInvalidType, "expected string")
	}
	return s, ok
}

func (c *checker) date(fields map[string]json.RawMessage, name string) {
	s, ok := c.optionalString(fields, name, name)
	if !ok {
		return
	}
	if !timeutil.IsCalendarDate(s) {
		c.add(name, KindInvalidValue, "expected calendar date YYYY-MM-DD")
	}
}

func (c *checker) stats(raw json.RawMessage) {
	if raw == nil || isNull(raw) {
		return
	}
	fields, ok := decodeObject(raw)
	if !ok {
		c.add("stats", KindInvalidType, "expected object")
		return
	}
	for _, name := range statsIntegers {
		v, ok := fields[name]
		if !ok || isNull(v) {
			continue
		}
		c.integer("stats."+name, v)
	}
	for _, name := range statsNumbers {
		v, ok := fields[name]
		if !ok || isNull(v) {
			continue
		}
		if _, ok := asNumber(v); !ok {
			c.add("stats."+name, KindInvalidType, "expected number")
		}
	}
}

func (c *checker) events(fields map[string]json.RawMessage) {
	raw, ok := fields["events"]
	if !ok {
		c.add("events", KindMissingField, "")
		return
	}
	var items []json.RawMessage
	if isNull(raw) || json.Unmarshal(raw, &items) != nil {
		c.add("events", KindInvalidType, "expected array")
		return
	}
	for i, item := range items {
		c.event(fmt.Sprintf("events[%d]", i), item)
	}
}

func (c *checker) event(prefix string, raw json.RawMessage) {
	fields, ok := decodeObject(raw)
	if !ok {
		c.add(prefix, KindInvalidType, "expected object")
		return
	}

	if m, ok := fields["minute"]; !ok {
		c.add(prefix+".minute", KindMissingField, "")
	} else {
		c.integer(prefix+".minute", m)
	}

	if s, ok := c.requireString(fields, "team", prefix+".team"); ok {
		if _, known := contract.ParseTeam(s); !known {
			c.add(prefix+".team", KindUnrecognizedValue, strconv.Quote(s))
		}
	}
	if s, ok := c.requireString(fields, "event_type", prefix+".event_type"); ok {
		if _, known := contract.ParseEventType(s); !known {
			c.add(prefix+".event_type", KindUnrecognizedValue, strconv.Quote(s))
		}
	}
	if s, ok := c.optionalString(fields, "period", prefix+".period"); ok {
		if _, known := contract.ParsePeriod(s); !known {
			c.add(prefix+".period", KindUnrecognizedValue, strconv.Quote(s))
		}
	}
	for _, name := range optionalEventStrings {
		c.optionalString(fields, name, prefix+"."+name)
	}
}

func (c *checker) features(raw json.RawMessage) {
	if raw == nil || isNull(raw) {
		return
	}
	if _, ok := decodeObject(raw); !ok {
		c.add("features_ht", KindInvalidType, "expected object")
	}
}

func decodeObject(data []byte) (map[string]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func asString(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", false
	}
	return s, true
}

func asNumber(raw json.RawMessage) (float64, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || (trimmed[0] != '-' && (trimmed[0] < '0' || trimmed[0] > '9')) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return 0, false
	}
	return f, true
}

func (c *checker) integer(path string, raw json.RawMessage) {
	f, ok := asNumber(raw)
	switch {
	case !ok || f != math.Trunc(f):
		c.add(path, KindInvalidType, "expected integer")
	case !contract.InIntegralRange(f):
		c.add(path, KindInvalidValue, "out of range")
	}
}
