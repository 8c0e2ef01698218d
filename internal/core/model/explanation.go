package model

const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

type Explanation struct {
	Summary          string `json:"summary"`
	Mechanism        string `json:"mechanism"`
	DiseaseRelevance string `json:"disease_relevance"`
	Confidence       string `json:"confidence"`
	Limitations      string `json:"limitations"`
	Source           string `json:"source"` // llm or fallback
}
