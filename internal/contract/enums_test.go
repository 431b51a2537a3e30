package contract

import "testing"

func TestEventTypeValues(t *testing.T) {
	expected := map[EventType]string{
		EventGoal:            "goal",
		EventPenalty:         "penalty",
		EventOwnGoal:         "own_goal",
		EventYellowCard:      "yellow",
		EventRedCard:         "red",
		EventSubstitutionIn:  "sub_in",
		EventSubstitutionOut: "sub_out",
		EventCorner:          "corner",
		EventOffside:         "offside",
	}
	if len(EventTypes) != len(expected) {
		t.Fatalf("expected %d event types, got %d", len(expected), len(EventTypes))
	}
	for et, want := range expected {
		if string(et) != want {
			t.Fatalf("expected %q got %q", want, et)
		}
		if !et.Valid() {
			t.Fatalf("expected %q to be valid", et)
		}
	}
}

func TestParseEventTypeAcceptsAliases(t *testing.T) {
	cases := map[string]EventType{
		"yellow_card":      EventYellowCard,
		"RED_CARD":         EventRedCard,
		"substitution_in":  EventSubstitutionIn,
		"substitution_out": EventSubstitutionOut,
		" goal ":           EventGoal,
	}
	for raw, want := range cases {
		got, ok := ParseEventType(raw)
		if !ok || got != want {
			t.Fatalf("ParseEventType(%q) = %q, %v; want %q", raw, got, ok, want)
		}
	}
}

func TestParseEventTypeKeepsUnknownRaw(t *testing.T) {
	got, ok := ParseEventType("var_review")
	if ok {
		t.Fatal("expected var_review to be outside the closed set")
	}
	if got != "var_review" || got.Valid() {
		t.Fatalf("expected raw value preserved and invalid, got %q", got)
	}
}

func TestParsePeriod(t *testing.T) {
	cases := map[string]Period{
		"1h":          PeriodFirstHalf,
		"2H":          PeriodSecondHalf,
		"et":          PeriodExtraTime,
		"PEN":         PeriodPenalties,
		"first_half":  PeriodFirstHalf,
		"second_half": PeriodSecondHalf,
		"shootout":    PeriodPenalties,
	}
	for raw, want := range cases {
		got, ok := ParsePeriod(raw)
		if !ok || got != want {
			t.Fatalf("ParsePeriod(%q) = %q, %v; want %q", raw, got, ok, want)
		}
	}
	if _, ok := ParsePeriod("3H"); ok {
		t.Fatal("expected 3H to be unknown")
	}
	if Period("").Valid() {
		t.Fatal("expected empty period to be invalid (unknown)")
	}
}

func TestPeriodLabel(t *testing.T) {
	if PeriodPenalties.Label() != "penalty shootout" {
		t.Fatalf("unexpected label %q", PeriodPenalties.Label())
	}
	if Period("").Label() != "unknown" {
		t.Fatalf("expected unknown label for zero period")
	}
}

func TestParseTeam(t *testing.T) {
	if got, ok := ParseTeam("HOME"); !ok || got != TeamHome {
		t.Fatalf("expected home, got %q %v", got, ok)
	}
	if got, ok := ParseTeam("neutral"); ok || got != "neutral" {
		t.Fatalf("expected neutral to be unknown and preserved, got %q %v", got, ok)
	}
}

func TestParsersFoldCaseAndSpace(t *testing.T) {
	if got, ok := ParseTeam(" Away\t"); !ok || got != TeamAway {
		t.Fatalf("expected away, got %q %v", got, ok)
	}
	if got, ok := ParsePeriod(" et "); !ok || got != PeriodExtraTime {
		t.Fatalf("expected ET, got %q %v", got, ok)
	}
	if got, ok := ParsePeriod("Shootout"); !ok || got != PeriodPenalties {
		t.Fatalf("expected PEN, got %q %v", got, ok)
	}
	if got, ok := ParseEventType(" Yellow_Card "); !ok || got != EventYellowCard {
		t.Fatalf("expected yellow, got %q %v", got, ok)
	}
	if got, ok := ParseTeam("ho me"); ok || got != "ho me" {
		t.Fatalf("expected inner whitespace to stay significant, got %q %v", got, ok)
	}
}

func TestDescribeReturnsCopies(t *testing.T) {
	desc := Describe()
	if len(desc.EventTypes) != 9 || len(desc.Teams) != 2 || len(desc.Periods) != 4 {
		t.Fatalf("unexpected enumerations %+v", desc)
	}
	desc.EventTypes[0] = "mutated"
	if EventTypes[0] != EventGoal {
		t.Fatal("expected Describe to return a copy")
	}
}
