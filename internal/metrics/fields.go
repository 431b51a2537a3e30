package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod  = "method"
	AttrPath    = "path"
	AttrStatus  = "status"
	AttrOutcome = "outcome"
)

// Validation outcomes.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)
