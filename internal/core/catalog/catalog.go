// Package catalog holds the fixed reference tables used to resolve target and
// pathway ids and to stand in for the prediction service when it is offline.
package catalog

import (
	"slices"
	"strings"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
)

// Catalog is read-only after construction. Accessors return copies.
type Catalog struct {
	diseases []model.Disease
	targets  map[string]model.Target
	pathways map[string]model.Pathway
	drugs    map[string][]model.Drug
}

func New(diseases []model.Disease, targets []model.Target, pathways []model.Pathway, drugs map[string][]model.Drug) *Catalog {
	c := &Catalog{
		diseases: slices.Clone(diseases),
		targets:  make(map[string]model.Target, len(targets)),
		pathways: make(map[string]model.Pathway, len(pathways)),
		drugs:    make(map[string][]model.Drug, len(drugs)),
	}
	for _, t := range targets {
		c.targets[t.ID] = t
	}
	for _, p := range pathways {
		c.pathways[p.ID] = p
	}
	for diseaseID, list := range drugs {
		c.drugs[diseaseID] = cloneDrugs(list)
	}
	return c
}

var defaultCatalog = New(staticDiseases, staticTargets, staticPathways, staticDrugs)

// Default returns the built-in static catalog.
func Default() *Catalog {
	return defaultCatalog
}

func (c *Catalog) Target(id string) (model.Target, bool) {
	t, ok := c.targets[id]
	return t, ok
}

func (c *Catalog) Pathway(id string) (model.Pathway, bool) {
	p, ok := c.pathways[id]
	return p, ok
}

func (c *Catalog) Disease(id string) (model.Disease, bool) {
	for _, d := range c.diseases {
		if d.ID == id {
			return d, true
		}
	}
	return model.Disease{}, false
}

func (c *Catalog) Diseases() []model.Disease {
	return slices.Clone(c.diseases)
}

// SearchDiseases returns the diseases whose name or category contains query,
// ignoring case. An empty query matches everything.
func (c *Catalog) SearchDiseases(query string) []model.Disease {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []model.Disease{}
	for _, d := range c.diseases {
		if q == "" || strings.Contains(strings.ToLower(d.Name), q) || strings.Contains(strings.ToLower(d.Category), q) {
			out = append(out, d)
		}
	}
	return out
}

// Targets returns all targets ordered by id.
func (c *Catalog) Targets() []model.Target {
	out := make([]model.Target, 0, len(c.targets))
	for _, id := range sortedKeys(c.targets) {
		out = append(out, c.targets[id])
	}
	return out
}

// Pathways returns all pathways ordered by id.
func (c *Catalog) Pathways() []model.Pathway {
	out := make([]model.Pathway, 0, len(c.pathways))
	for _, id := range sortedKeys(c.pathways) {
		out = append(out, c.pathways[id])
	}
	return out
}

// Drugs returns the fallback candidates for a disease in rank order.
func (c *Catalog) Drugs(diseaseID string) []model.Drug {
	return cloneDrugs(c.drugs[diseaseID])
}

func (c *Catalog) AllDrugs() []model.Drug {
	var all []model.Drug
	for _, id := range sortedKeys(c.drugs) {
		all = append(all, cloneDrugs(c.drugs[id])...)
	}
	return all
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func cloneDrugs(in []model.Drug) []model.Drug {
	if in == nil {
		return nil
	}
	out := make([]model.Drug, len(in))
	for i, d := range in {
		d.Targets = slices.Clone(d.Targets)
		d.Pathways = slices.Clone(d.Pathways)
		d.KnownLimitations = slices.Clone(d.KnownLimitations)
		if d.Extended != nil {
			ext := *d.Extended
			d.Extended = &ext
		}
		out[i] = d
	}
	return out
}
