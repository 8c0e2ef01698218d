package explain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
)

var (
	testDisease = model.Disease{ID: "alzheimers", Name: "Alzheimer's Disease"}
	testDrug    = model.Drug{
		ID:               "metformin",
		Name:             "Metformin",
		ConfidenceScore:  72,
		MechanismSummary: "AMPK activation",
		Targets:          []string{"glut4"},
		Pathways:         []string{"insulin", "inflammation"},
		OriginalUse:      "Type 2 Diabetes",
	}
)

const wellFormed = `**SUMMARY**
Metformin may slow cognitive decline.

**MECHANISM**
It activates AMPK.

**DISEASE RELEVANCE**
Insulin resistance is linked to Alzheimer's.

**confidence**
72% reflects moderate evidence.

**LIMITATIONS**
- Observational data only`

func TestExplain_ParsesSections(t *testing.T) {
	m := &MockLLMClient{Response: wellFormed}
	e := NewService(m, nil).Explain(context.Background(), testDisease, testDrug)

	assert.Equal(t, model.SourceLLM, e.Source)
	assert.Equal(t, "Metformin may slow cognitive decline.", e.Summary)
	assert.Equal(t, "It activates AMPK.", e.Mechanism)
	assert.Equal(t, "Insulin resistance is linked to Alzheimer's.", e.DiseaseRelevance)
	assert.Equal(t, "72% reflects moderate evidence.", e.Confidence)
	assert.Equal(t, "- Observational data only", e.Limitations)
}

func TestExplain_PromptContents(t *testing.T) {
	m := &MockLLMClient{Response: wellFormed}
	NewService(m, nil).Explain(context.Background(), testDisease, testDrug)

	require.Len(t, m.Prompts, 1)
	p := m.Prompts[0]
	assert.Contains(t, p, "drug repurposing for Alzheimer's Disease")
	assert.Contains(t, p, "Drug: Metformin")
	assert.Contains(t, p, "Original Use: Type 2 Diabetes")
	assert.Contains(t, p, "Confidence Score: 72%")
	assert.Contains(t, p, "Targets: glut4")
	assert.Contains(t, p, "Pathways: insulin, inflammation")
	for _, marker := range []string{"**SUMMARY**", "**MECHANISM**", "**DISEASE RELEVANCE**", "**CONFIDENCE**", "**LIMITATIONS**"} {
		assert.Contains(t, p, marker)
	}
}

func TestExplain_DefaultOriginalUse(t *testing.T) {
	m := &MockLLMClient{Response: wellFormed}
	drug := testDrug
	drug.OriginalUse = ""
	drug.Targets = nil
	NewService(m, nil).Explain(context.Background(), testDisease, drug)

	assert.Contains(t, m.Prompts[0], "Original Use: Various indications")
	assert.NotContains(t, m.Prompts[0], "Targets:")
}

func TestExplain_NoGenerator(t *testing.T) {
	e := NewService(nil, nil).Explain(context.Background(), testDisease, testDrug)
	assert.Equal(t, Fallback(testDisease, testDrug), e)
	assert.Equal(t, model.SourceFallback, e.Source)
}

func TestExplain_GenerationErrorLogsWarning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	m := &MockLLMClient{Err: errors.New("quota exceeded")}

	e := NewService(m, zap.New(core)).Explain(context.Background(), testDisease, testDrug)

	assert.Equal(t, model.SourceFallback, e.Source)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "metformin", logs.All()[0].ContextMap()["drug_id"])
}

func TestExplain_MissingSummaryFallsBack(t *testing.T) {
	m := &MockLLMClient{Response: "**MECHANISM**\nsomething"}
	e := NewService(m, nil).Explain(context.Background(), testDisease, testDrug)
	assert.Equal(t, model.SourceFallback, e.Source)
}

func TestExplain_JSONResponse(t *testing.T) {
	m := &MockLLMClient{Response: "```json\n{\"summary\":\"JSON summary\",\"mechanism\":\"m\"}\n```"}
	e := NewService(m, nil).Explain(context.Background(), testDisease, testDrug)
	assert.Equal(t, model.SourceLLM, e.Source)
	assert.Equal(t, "JSON summary", e.Summary)
	assert.Equal(t, "m", e.Mechanism)
}

func TestFallback_Text(t *testing.T) {
	e := Fallback(testDisease, testDrug)
	assert.Contains(t, e.Summary, "Metformin shows potential for Alzheimer's Disease")
	assert.Contains(t, e.Summary, "72% confidence")
	assert.Contains(t, e.Mechanism, "through AMPK activation.")
	assert.Contains(t, e.Limitations, "Clinical efficacy in Alzheimer's Disease has not been established")

	noMech := testDrug
	noMech.MechanismSummary = ""
	assert.Contains(t, Fallback(testDisease, noMech).Mechanism, "multi-target engagement")
}
