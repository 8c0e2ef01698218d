// Package graph turns a drug's target and pathway references into the
// drug–target–pathway network shown next to the candidate list.
package graph

import (
	"fmt"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/catalog"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
)

const (
	DrugTargetStrength    = 0.8
	DrugPathwayStrength   = 0.6
	TargetPathwayStrength = 0.4
)

// Resolver looks up reference entities by id.
type Resolver interface {
	Target(id string) (model.Target, bool)
	Pathway(id string) (model.Pathway, bool)
}

type Builder struct {
	Resolver Resolver
}

func NewBuilder(r Resolver) *Builder {
	if r == nil {
		r = catalog.Default()
	}
	return &Builder{Resolver: r}
}

// Build resolves against the default catalog.
func Build(drug *model.Drug) model.GraphData {
	g, _ := NewBuilder(nil).Build(drug)
	return g
}

// Build emits the drug node, one node and link per resolvable target and
// pathway, and a target→pathway link for each pair of the drug's own ids
// listed in the affinity table. Ids that do not resolve are skipped and
// reported in the diagnostics.
func (b *Builder) Build(drug *model.Drug) (model.GraphData, model.GraphDiagnostics) {
	g := model.GraphData{
		Nodes: []model.GraphNode{},
		Links: []model.GraphLink{},
	}
	var diag model.GraphDiagnostics
	if drug == nil {
		return g, diag
	}

	nodeMap := make(map[string]bool)
	addNode := func(n model.GraphNode) bool {
		if nodeMap[n.ID] {
			return false
		}
		nodeMap[n.ID] = true
		g.Nodes = append(g.Nodes, n)
		return true
	}

	addNode(model.GraphNode{ID: drug.ID, Type: model.NodeDrug, Label: drug.Name})

	for _, id := range drug.Targets {
		target, ok := b.Resolver.Target(id)
		if !ok {
			diag.SkippedTargets = append(diag.SkippedTargets, id)
			continue
		}
		if addNode(model.GraphNode{ID: target.ID, Type: model.NodeTarget, Label: target.Name}) {
			g.Links = append(g.Links, model.GraphLink{Source: drug.ID, Target: target.ID, Strength: DrugTargetStrength})
		}
	}

	for _, id := range drug.Pathways {
		pathway, ok := b.Resolver.Pathway(id)
		if !ok {
			diag.SkippedPathways = append(diag.SkippedPathways, id)
			continue
		}
		if addNode(model.GraphNode{ID: pathway.ID, Type: model.NodePathway, Label: pathway.Name}) {
			g.Links = append(g.Links, model.GraphLink{Source: drug.ID, Target: pathway.ID, Strength: DrugPathwayStrength})
		}
	}

	linked := make(map[Pair]bool)
	for _, targetID := range drug.Targets {
		for _, pathwayID := range drug.Pathways {
			if !nodeMap[targetID] || !nodeMap[pathwayID] {
				continue
			}
			pair := Pair{Target: targetID, Pathway: pathwayID}
			strength, ok := Affinity(pair)
			if !ok || linked[pair] {
				continue
			}
			linked[pair] = true
			g.Links = append(g.Links, model.GraphLink{Source: targetID, Target: pathwayID, Strength: strength})
		}
	}

	return g, diag
}

// Validate checks that every link endpoint is a node of the same graph and
// that node ids are unique.
func Validate(g model.GraphData) error {
	ids := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if ids[n.ID] {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		ids[n.ID] = true
	}
	for i, l := range g.Links {
		if !ids[l.Source] {
			return fmt.Errorf("link %d: unknown source %q", i, l.Source)
		}
		if !ids[l.Target] {
			return fmt.Errorf("link %d: unknown target %q", i, l.Target)
		}
	}
	return nil
}

func Stats(g model.GraphData) model.GraphStats {
	stats := model.GraphStats{
		TotalNodes:  len(g.Nodes),
		TotalLinks:  len(g.Links),
		NodesByType: make(map[model.NodeType]int),
	}
	for _, n := range g.Nodes {
		stats.NodesByType[n.Type]++
	}
	return stats
}
