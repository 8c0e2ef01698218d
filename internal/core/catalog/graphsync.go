package catalog

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/driver"
)

// SeedGraph writes the diseases, targets and pathways of c into the graph
// store. Writes are MERGEs, so seeding twice is harmless.
func SeedGraph(ctx context.Context, d driver.GraphDriver, c *Catalog) error {
	if err := d.BuildIndices(ctx); err != nil {
		return fmt.Errorf("failed to build indices: %w", err)
	}

	for _, dis := range c.Diseases() {
		params := map[string]any{
			"id":          dis.ID,
			"name":        dis.Name,
			"category":    dis.Category,
			"description": dis.Description,
		}
		if _, err := d.ExecuteQuery(ctx, driver.SaveDiseaseQuery, params); err != nil {
			return fmt.Errorf("failed to save disease %s: %w", dis.ID, err)
		}
	}

	for _, t := range c.Targets() {
		params := map[string]any{
			"id":          t.ID,
			"name":        t.Name,
			"type":        string(t.Type),
			"description": t.Description,
		}
		if _, err := d.ExecuteQuery(ctx, driver.SaveTargetQuery, params); err != nil {
			return fmt.Errorf("failed to save target %s: %w", t.ID, err)
		}
	}

	for _, p := range c.Pathways() {
		params := map[string]any{
			"id":          p.ID,
			"name":        p.Name,
			"description": p.Description,
		}
		if _, err := d.ExecuteQuery(ctx, driver.SavePathwayQuery, params); err != nil {
			return fmt.Errorf("failed to save pathway %s: %w", p.ID, err)
		}
	}

	return nil
}

// LoadFromGraph builds a catalog from the reference nodes stored in the graph.
// Fallback drug candidates are not kept in the graph and come from fallback.
func LoadFromGraph(ctx context.Context, d driver.GraphDriver, fallback *Catalog) (*Catalog, error) {
	if fallback == nil {
		fallback = Default()
	}

	res, err := d.ExecuteQuery(ctx, driver.GetDiseasesQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load diseases: %w", err)
	}
	var diseases []model.Disease
	for _, rec := range res.Records {
		diseases = append(diseases, model.Disease{
			ID:          stringField(rec, "id"),
			Name:        stringField(rec, "name"),
			Category:    stringField(rec, "category"),
			Description: stringField(rec, "description"),
		})
	}

	res, err = d.ExecuteQuery(ctx, driver.GetTargetsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load targets: %w", err)
	}
	var targets []model.Target
	for _, rec := range res.Records {
		targets = append(targets, model.Target{
			ID:          stringField(rec, "id"),
			Name:        stringField(rec, "name"),
			Type:        model.TargetType(stringField(rec, "type")),
			Description: stringField(rec, "description"),
		})
	}

	res, err = d.ExecuteQuery(ctx, driver.GetPathwaysQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load pathways: %w", err)
	}
	var pathways []model.Pathway
	for _, rec := range res.Records {
		pathways = append(pathways, model.Pathway{
			ID:          stringField(rec, "id"),
			Name:        stringField(rec, "name"),
			Description: stringField(rec, "description"),
		})
	}

	return New(diseases, targets, pathways, fallback.drugs), nil
}

func stringField(rec *neo4j.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
