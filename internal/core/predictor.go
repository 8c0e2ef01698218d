package core

import (
	"context"
	"fmt"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/predictionapi"
)

// Predictor produces ranked drug candidates for a disease.
type Predictor interface {
	Predict(ctx context.Context, diseaseID string, topK int) ([]model.Drug, error)
}

// DiseaseSource serves the paged, filterable disease listing.
type DiseaseSource interface {
	FetchPagedDiseases(ctx context.Context, query string, page, pageSize int) (model.DiseasePage, error)
}

type PredictorFunc func(ctx context.Context, diseaseID string, topK int) ([]model.Drug, error)

func (f PredictorFunc) Predict(ctx context.Context, diseaseID string, topK int) ([]model.Drug, error) {
	return f(ctx, diseaseID, topK)
}

const (
	ModelLegacy   = "legacy"
	ModelExtended = "extended"
)

// RemotePredictor picks the prediction endpoint for the named model.
func RemotePredictor(c *predictionapi.Client, modelName string) (Predictor, error) {
	switch modelName {
	case "", ModelLegacy:
		return PredictorFunc(c.FetchPredictions), nil
	case ModelExtended:
		return PredictorFunc(c.FetchRepurposing), nil
	default:
		return nil, fmt.Errorf("unknown prediction model %q", modelName)
	}
}
