package explain

import (
	"regexp"
	"strings"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/common"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
)

// sectionRe captures the body after a bold marker up to the next "**".
func sectionRe(marker string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)\*\*` + regexp.QuoteMeta(marker) + `\*\*\s*(.*?)(?:\*\*|$)`)
}

var (
	summaryRe     = sectionRe("SUMMARY")
	mechanismRe   = sectionRe("MECHANISM")
	relevanceRe   = sectionRe("DISEASE RELEVANCE")
	confidenceRe  = sectionRe("CONFIDENCE")
	limitationsRe = sectionRe("LIMITATIONS")
)

func section(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

type jsonExplanation struct {
	Summary          string `json:"summary"`
	Mechanism        string `json:"mechanism"`
	DiseaseRelevance string `json:"disease_relevance"`
	Confidence       string `json:"confidence"`
	Limitations      string `json:"limitations"`
}

// parse reads the five marked sections. Models that answer in JSON instead
// are accepted as well. An empty summary means the response is unusable.
func parse(text string) (model.Explanation, bool) {
	e := model.Explanation{
		Summary:          section(summaryRe, text),
		Mechanism:        section(mechanismRe, text),
		DiseaseRelevance: section(relevanceRe, text),
		Confidence:       section(confidenceRe, text),
		Limitations:      section(limitationsRe, text),
		Source:           model.SourceLLM,
	}
	if e.Summary != "" {
		return e, true
	}

	j, err := common.ParseJSON[jsonExplanation](text)
	if err != nil || strings.TrimSpace(j.Summary) == "" {
		return model.Explanation{}, false
	}
	return model.Explanation{
		Summary:          strings.TrimSpace(j.Summary),
		Mechanism:        strings.TrimSpace(j.Mechanism),
		DiseaseRelevance: strings.TrimSpace(j.DiseaseRelevance),
		Confidence:       strings.TrimSpace(j.Confidence),
		Limitations:      strings.TrimSpace(j.Limitations),
		Source:           model.SourceLLM,
	}, true
}
