package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrOutcome  = "outcome"
	AttrAdvisory = "advisory"
)

// Board build outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)
