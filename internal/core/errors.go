package core

import "errors"

var (
	// ErrStale is returned when a fetch resolved after a newer request
	// superseded it; its result was discarded.
	ErrStale = errors.New("result superseded by a newer request")
	// ErrEmptyResult marks a prediction request that succeeded with no candidates.
	ErrEmptyResult = errors.New("no drug candidates")
	// ErrUnknownDrug is returned when selecting a drug that is not among the
	// current predictions.
	ErrUnknownDrug = errors.New("drug not in current predictions")
)

// Messages shown to the user when a flow fails.
const (
	MsgNoCandidates      = "No drug candidates found for this disease."
	MsgPredictionsFailed = "Failed to load predictions. Is the backend running?"
	MsgDiseasesFailed    = "Failed to load diseases."
)
