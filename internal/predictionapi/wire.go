package predictionapi

import (
	"math"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
)

// Response shapes of the prediction service.

type apiDisease struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type apiDiseasePage struct {
	Diseases   []apiDisease `json:"diseases"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int          `json:"total_pages"`
}

type apiPrediction struct {
	DrugID           string               `json:"drug_id"`
	DrugName         string               `json:"drug_name"`
	Score            float64              `json:"score"`
	ConfidenceTier   model.ConfidenceTier `json:"confidenceTier"`
	GeneOverlap      int                  `json:"gene_overlap"`
	AssociationScore float64              `json:"association_score"`
	MechanismSummary string               `json:"mechanismSummary"`
	DiseaseRelevance string               `json:"diseaseRelevance"`
	KnownLimitations []string             `json:"knownLimitations"`
	Targets          []string             `json:"targets"`
	Pathways         []string             `json:"pathways"`

	// extended model only
	GeneticScore     *float64 `json:"genetic_score,omitempty"`
	AnimalModelScore *float64 `json:"animal_model_score,omitempty"`
	KnownDrugScore   *float64 `json:"known_drug_score,omitempty"`
	DrugMaxPhase     *int     `json:"drug_max_phase,omitempty"`
}

type apiPredictionResponse struct {
	Disease struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"disease"`
	Predictions []apiPrediction `json:"predictions"`
}

type apiDiseasePrediction struct {
	DiseaseID      string               `json:"disease_id"`
	DiseaseName    string               `json:"disease_name"`
	Score          float64              `json:"score"`
	ConfidenceTier model.ConfidenceTier `json:"confidenceTier"`
}

type apiDrugDiseasesResponse struct {
	Drug struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"drug"`
	Predictions   []apiDiseasePrediction `json:"predictions"`
	TotalDiseases int                    `json:"total_diseases"`
}

type apiMolecule struct {
	model.Molecule
	Error string `json:"error,omitempty"`
}

func (d apiDisease) toModel() model.Disease {
	return model.Disease{ID: d.ID, Name: d.Name, Category: d.Category, Description: d.Description}
}

// ScoreToPercent rescales a [0,1] score to a rounded 0-100 integer.
func ScoreToPercent(score float64) int {
	return int(math.Round(score * 100))
}

// toDrug copies identifiers and text verbatim and passes the tier through
// without reconciling it against the score.
func (p apiPrediction) toDrug(extended bool) model.Drug {
	d := model.Drug{
		ID:               p.DrugID,
		Name:             p.DrugName,
		ConfidenceScore:  ScoreToPercent(p.Score),
		ConfidenceTier:   p.ConfidenceTier,
		MechanismSummary: p.MechanismSummary,
		Targets:          nonNil(p.Targets),
		Pathways:         nonNil(p.Pathways),
		DiseaseRelevance: p.DiseaseRelevance,
		KnownLimitations: nonNil(p.KnownLimitations),
	}
	if extended {
		ext := &model.ExtendedScores{}
		if p.GeneticScore != nil {
			ext.GeneticScore = *p.GeneticScore
		}
		if p.AnimalModelScore != nil {
			ext.AnimalModelScore = *p.AnimalModelScore
		}
		if p.KnownDrugScore != nil {
			ext.KnownDrugScore = *p.KnownDrugScore
		}
		if p.DrugMaxPhase != nil {
			ext.DrugMaxPhase = *p.DrugMaxPhase
		}
		d.Extended = ext
	}
	return d
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
