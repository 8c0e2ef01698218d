package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/catalog"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
)

func countType(g model.GraphData, typ model.NodeType) int {
	n := 0
	for _, node := range g.Nodes {
		if node.Type == typ {
			n++
		}
	}
	return n
}

func findLink(g model.GraphData, source, target string) (model.GraphLink, bool) {
	for _, l := range g.Links {
		if l.Source == source && l.Target == target {
			return l, true
		}
	}
	return model.GraphLink{}, false
}

func TestBuild_NilDrug(t *testing.T) {
	g := Build(nil)

	require.NotNil(t, g.Nodes)
	require.NotNil(t, g.Links)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Links)
}

func TestBuild_CrossLinkInAffinityTable(t *testing.T) {
	drug := &model.Drug{ID: "donepezil", Name: "Donepezil", Targets: []string{"ache"}, Pathways: []string{"cholinergic"}}

	g := Build(drug)

	require.Len(t, g.Nodes, 3)
	assert.Equal(t, model.NodeDrug, g.Nodes[0].Type)
	assert.Equal(t, "Acetylcholinesterase", g.Nodes[1].Label)

	link, ok := findLink(g, "ache", "cholinergic")
	require.True(t, ok)
	assert.Equal(t, 0.4, link.Strength)

	link, ok = findLink(g, "donepezil", "ache")
	require.True(t, ok)
	assert.Equal(t, 0.8, link.Strength)

	link, ok = findLink(g, "donepezil", "cholinergic")
	require.True(t, ok)
	assert.Equal(t, 0.6, link.Strength)
}

func TestBuild_PairOutsideAffinityTable(t *testing.T) {
	drug := &model.Drug{ID: "x", Name: "X", Targets: []string{"ache"}, Pathways: []string{"insulin"}}

	g := Build(drug)

	assert.Len(t, g.Nodes, 3)
	assert.Len(t, g.Links, 2)
	_, ok := findLink(g, "ache", "insulin")
	assert.False(t, ok)
}

func TestBuild_UnknownIdsSkipped(t *testing.T) {
	drug := &model.Drug{
		ID:       "pioglitazone",
		Name:     "Pioglitazone",
		Targets:  []string{"pparg", "ghost_target"},
		Pathways: []string{"inflammation", "ghost_pathway", "insulin"},
	}

	g, diag := NewBuilder(nil).Build(drug)

	assert.Equal(t, 1, countType(g, model.NodeDrug))
	assert.Equal(t, 1, countType(g, model.NodeTarget))
	assert.Equal(t, 2, countType(g, model.NodePathway))
	assert.Equal(t, []string{"ghost_target"}, diag.SkippedTargets)
	assert.Equal(t, []string{"ghost_pathway"}, diag.SkippedPathways)
	assert.Equal(t, 2, diag.Skipped())

	// pparg links to both inflammation and insulin
	_, ok := findLink(g, "pparg", "inflammation")
	assert.True(t, ok)
	_, ok = findLink(g, "pparg", "insulin")
	assert.True(t, ok)
	assert.NoError(t, Validate(g))
}

func TestBuild_EveryCatalogDrugProducesValidGraph(t *testing.T) {
	for _, d := range catalog.Default().AllDrugs() {
		d := d
		t.Run(d.ID, func(t *testing.T) {
			g := Build(&d)

			assert.NoError(t, Validate(g))
			assert.Equal(t, 1, countType(g, model.NodeDrug))
			assert.Equal(t, len(d.Targets), countType(g, model.NodeTarget))
			assert.Equal(t, len(d.Pathways), countType(g, model.NodePathway))
		})
	}
}

func TestBuild_DuplicateIdsProduceOneNode(t *testing.T) {
	drug := &model.Drug{ID: "amantadine", Name: "Amantadine", Targets: []string{"dat", "dat"}, Pathways: []string{"dopaminergic"}}

	g := Build(drug)

	assert.Equal(t, 1, countType(g, model.NodeTarget))
	assert.Len(t, g.Links, 3)
	assert.NoError(t, Validate(g))
}

func TestBuild_CustomResolver(t *testing.T) {
	c := catalog.New(nil, []model.Target{{ID: "sert", Name: "SERT"}}, []model.Pathway{{ID: "serotonergic", Name: "5-HT"}}, nil)
	drug := &model.Drug{ID: "sertraline", Name: "Sertraline", Targets: []string{"sert", "ache"}, Pathways: []string{"serotonergic"}}

	g, diag := NewBuilder(c).Build(drug)

	assert.Len(t, g.Nodes, 3)
	assert.Equal(t, []string{"ache"}, diag.SkippedTargets)
	_, ok := findLink(g, "sert", "serotonergic")
	assert.True(t, ok)
}

func TestValidate(t *testing.T) {
	g := model.GraphData{
		Nodes: []model.GraphNode{{ID: "a"}},
		Links: []model.GraphLink{{Source: "a", Target: "b"}},
	}
	err := Validate(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target")

	g.Nodes = append(g.Nodes, model.GraphNode{ID: "a"})
	assert.Error(t, Validate(g))
}

func TestStats(t *testing.T) {
	drug := catalog.Default().Drugs("alzheimers")[1]

	stats := Stats(Build(&drug))

	assert.Equal(t, 5, stats.TotalNodes)
	assert.Equal(t, 1, stats.NodesByType[model.NodeTarget])
	assert.Equal(t, 3, stats.NodesByType[model.NodePathway])
	// 1 target + 3 pathways + pparg→inflammation + pparg→insulin
	assert.Equal(t, 6, stats.TotalLinks)
}
