package explain

import (
	"fmt"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/common"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
)

// Fallback is the templated explanation used whenever generation is not
// available or fails.
func Fallback(disease model.Disease, drug model.Drug) model.Explanation {
	return model.Explanation{
		Summary: fmt.Sprintf("%s shows potential for %s based on its mechanism of action and known biological pathways. "+
			"The compound demonstrates %d%% confidence through computational analysis of drug-target-pathway relationships.",
			drug.Name, disease.Name, drug.ConfidenceScore),
		Mechanism: fmt.Sprintf("%s acts on multiple biological targets that are implicated in %s pathology. "+
			"The drug modulates key pathways involved in disease progression, potentially offering therapeutic benefits through %s.",
			drug.Name, disease.Name, common.OrDefault(drug.MechanismSummary, "multi-target engagement")),
		DiseaseRelevance: fmt.Sprintf("In the context of %s, this drug candidate addresses critical aspects of disease biology. "+
			"The computational model identified significant overlap between the drug's pharmacological profile and disease-associated molecular signatures.",
			disease.Name),
		Confidence: fmt.Sprintf("The %d%% confidence score reflects strong evidence from network-based analysis, pathway enrichment, and target validation. "+
			"This score integrates multiple data sources including genomic, proteomic, and clinical databases.",
			drug.ConfidenceScore),
		Limitations: "• This is a computational prediction requiring experimental validation\n" +
			fmt.Sprintf("• Clinical efficacy in %s has not been established\n", disease.Name) +
			"• Potential side effects and optimal dosing remain to be determined\n" +
			"• Drug-drug interactions need careful evaluation in clinical context",
		Source: model.SourceFallback,
	}
}
