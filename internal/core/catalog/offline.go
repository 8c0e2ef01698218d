package catalog

import (
	"context"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
)

// Offline answers prediction and disease-listing requests from a catalog
// when the remote prediction service is not in use.
type Offline struct {
	Catalog *Catalog
}

func NewOffline(c *Catalog) *Offline {
	if c == nil {
		c = Default()
	}
	return &Offline{Catalog: c}
}

// Predict returns at most topK fallback candidates for the disease. An unknown
// disease yields an empty list, not an error.
func (o *Offline) Predict(ctx context.Context, diseaseID string, topK int) ([]model.Drug, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	drugs := o.Catalog.Drugs(diseaseID)
	if topK > 0 && len(drugs) > topK {
		drugs = drugs[:topK]
	}
	if drugs == nil {
		drugs = []model.Drug{}
	}
	return drugs, nil
}

// FetchPagedDiseases filters by case-insensitive name or category match and
// pages the result. Out-of-range pages come back empty.
func (o *Offline) FetchPagedDiseases(ctx context.Context, query string, page, pageSize int) (model.DiseasePage, error) {
	if err := ctx.Err(); err != nil {
		return model.DiseasePage{}, err
	}
	matched := o.Catalog.SearchDiseases(query)

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = len(matched)
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = (len(matched) + pageSize - 1) / pageSize
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return model.DiseasePage{
		Diseases:   append([]model.Disease{}, matched[start:end]...),
		Total:      len(matched),
		Page:       page,
		Limit:      pageSize,
		TotalPages: totalPages,
	}, nil
}
