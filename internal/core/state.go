package core

import "github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"

// State is an immutable snapshot of the store. Slices are never mutated in
// place once published.
type State struct {
	SelectedDisease *model.Disease `json:"selected_disease"`
	SelectedDrug    *model.Drug    `json:"selected_drug"`
	Phase           model.Phase    `json:"phase"`
	Status          model.Status   `json:"status"`
	Predictions     []model.Drug   `json:"predictions"`
	Loading         bool           `json:"loading"`
	Error           string         `json:"error,omitempty"`

	Diseases        []model.Disease `json:"diseases"`
	TotalDiseases   int             `json:"total_diseases"`
	Page            int             `json:"page"`
	Query           string          `json:"query"`
	LoadingDiseases bool            `json:"loading_diseases"`
	DiseaseError    string          `json:"disease_error,omitempty"`
	// DiseasesLoaded is set once any listing fetch has succeeded.
	DiseasesLoaded bool `json:"diseases_loaded"`
}

func initialState() State {
	return State{
		Phase:       model.PhaseAnalyzing,
		Status:      model.StatusIdle,
		Predictions: []model.Drug{},
		Diseases:    []model.Disease{},
	}
}

// HasMoreDiseases reports whether another page can be requested.
func (s State) HasMoreDiseases() bool {
	return len(s.Diseases) < s.TotalDiseases
}

// NeedsInitialLoad reports whether no listing has been fetched yet and nothing
// is in flight. A failed first load still needs one; a search does not.
func (s State) NeedsInitialLoad() bool {
	return !s.DiseasesLoaded && !s.LoadingDiseases && s.Query == ""
}
