package model

// ConfidenceTier is assigned by the prediction backend independently of the
// numeric score. It is passed through as received.
type ConfidenceTier string

const (
	TierHigh   ConfidenceTier = "high"
	TierMedium ConfidenceTier = "medium"
	TierLow    ConfidenceTier = "low"
)

type Drug struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	GenericName      string         `json:"generic_name,omitempty"`
	ConfidenceScore  int            `json:"confidence_score"` // 0-100
	ConfidenceTier   ConfidenceTier `json:"confidence_tier"`
	MechanismSummary string         `json:"mechanism_summary"`
	Targets          []string       `json:"targets"`  // Target IDs
	Pathways         []string       `json:"pathways"` // Pathway IDs
	DiseaseRelevance string         `json:"disease_relevance"`
	KnownLimitations []string       `json:"known_limitations"`
	CurrentUse       string         `json:"current_use,omitempty"`
	OriginalUse      string         `json:"original_use,omitempty"`

	// Extended is only set for predictions from the extended model.
	Extended *ExtendedScores `json:"extended,omitempty"`
}

type ExtendedScores struct {
	GeneticScore     float64 `json:"genetic_score"`
	AnimalModelScore float64 `json:"animal_model_score"`
	KnownDrugScore   float64 `json:"known_drug_score"`
	DrugMaxPhase     int     `json:"drug_max_phase"`
}

// DiseasePrediction is one entry of a drug -> diseases reverse lookup.
type DiseasePrediction struct {
	DiseaseID       string         `json:"disease_id"`
	DiseaseName     string         `json:"disease_name"`
	ConfidenceScore int            `json:"confidence_score"`
	ConfidenceTier  ConfidenceTier `json:"confidence_tier"`
}

type DrugDiseases struct {
	DrugID        string              `json:"drug_id"`
	DrugName      string              `json:"drug_name"`
	Predictions   []DiseasePrediction `json:"predictions"`
	TotalDiseases int                 `json:"total_diseases"`
}

type Health struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	DataLoaded  bool   `json:"data_loaded"`
}
