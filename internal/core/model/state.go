package model

// Phase is the progress marker shown while a disease is being analyzed.
type Phase string

const (
	PhaseAnalyzing Phase = "analyzing"
	PhaseMatching  Phase = "matching"
	PhaseScoring   Phase = "scoring"
)

// Status is the position of the disease -> predictions flow.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusFetching Status = "fetching"
	StatusReady    Status = "ready"
	StatusFailed   Status = "failed"
)
