package explain

import (
	"fmt"
	"strings"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/common"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
)

const defaultOriginalUse = "Various indications"

func buildPrompt(disease model.Disease, drug model.Drug) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a scientific advisor explaining drug repurposing for %s.\n\n", disease.Name)
	fmt.Fprintf(&b, "Drug: %s\n", drug.Name)
	fmt.Fprintf(&b, "Original Use: %s\n", common.OrDefault(drug.OriginalUse, defaultOriginalUse))
	fmt.Fprintf(&b, "Confidence Score: %d%%\n", drug.ConfidenceScore)
	if len(drug.Targets) > 0 {
		fmt.Fprintf(&b, "Targets: %s\n", strings.Join(drug.Targets, ", "))
	}
	if len(drug.Pathways) > 0 {
		fmt.Fprintf(&b, "Pathways: %s\n", strings.Join(drug.Pathways, ", "))
	}

	fmt.Fprintf(&b, `
Provide a structured explanation in the following format:

**SUMMARY**
[2-3 sentences explaining why this drug shows promise for %[1]s]

**MECHANISM**
[Explain the biological mechanism linking the drug to the disease]

**DISEASE RELEVANCE**
[Explain how this addresses %[1]s specifically]

**CONFIDENCE**
[Explain what the %[2]d%% confidence means and what factors contribute to it]

**LIMITATIONS**
[List 2-3 key limitations or caveats about this repurposing candidate]

Keep the tone scientific but accessible. Avoid marketing language. Focus on interpretability.`,
		disease.Name, drug.ConfidenceScore)
	return b.String()
}
