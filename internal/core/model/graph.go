package model

type NodeType string

const (
	NodeDrug    NodeType = "drug"
	NodeTarget  NodeType = "target"
	NodePathway NodeType = "pathway"
)

type GraphNode struct {
	ID    string   `json:"id"`
	Type  NodeType `json:"type"`
	Label string   `json:"label"`
}

type GraphLink struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Strength float64 `json:"strength"` // 0-1
}

// GraphData is derived from the selected drug and recomputed on every
// selection change. Node order is not a contract.
type GraphData struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphLink `json:"links"`
}

// GraphDiagnostics lists reference ids the builder could not resolve.
type GraphDiagnostics struct {
	SkippedTargets  []string `json:"skipped_targets,omitempty"`
	SkippedPathways []string `json:"skipped_pathways,omitempty"`
}

func (d GraphDiagnostics) Skipped() int {
	return len(d.SkippedTargets) + len(d.SkippedPathways)
}

type GraphStats struct {
	TotalNodes  int              `json:"total_nodes"`
	TotalLinks  int              `json:"total_links"`
	NodesByType map[NodeType]int `json:"nodes_by_type"`
}
