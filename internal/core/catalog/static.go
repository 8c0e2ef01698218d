package catalog

import "github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"

var staticDiseases = []model.Disease{
	{ID: "alzheimers", Name: "Alzheimer's Disease", Category: "Neurodegenerative", Description: "Progressive neurodegenerative disorder characterized by cognitive decline and memory loss"},
	{ID: "parkinsons", Name: "Parkinson's Disease", Category: "Neurodegenerative", Description: "Movement disorder caused by dopaminergic neuron degeneration in the substantia nigra"},
	{ID: "type2diabetes", Name: "Type 2 Diabetes", Category: "Metabolic", Description: "Metabolic disorder characterized by insulin resistance and impaired glucose regulation"},
	{ID: "rheumatoid", Name: "Rheumatoid Arthritis", Category: "Autoimmune", Description: "Chronic inflammatory disorder affecting joints and synovial membranes"},
	{ID: "depression", Name: "Major Depressive Disorder", Category: "Psychiatric", Description: "Mood disorder characterized by persistent sadness and anhedonia"},
	{ID: "hypertension", Name: "Hypertension", Category: "Cardiovascular", Description: "Chronic elevation of blood pressure increasing cardiovascular risk"},
	{ID: "crohns", Name: "Crohn's Disease", Category: "Inflammatory", Description: "Chronic inflammatory bowel disease affecting the gastrointestinal tract"},
}

var staticTargets = []model.Target{
	{ID: "ache", Name: "Acetylcholinesterase", Type: model.TargetEnzyme, Description: "Enzyme that breaks down acetylcholine in synaptic clefts"},
	{ID: "bace1", Name: "BACE1", Type: model.TargetEnzyme, Description: "Beta-secretase involved in amyloid-beta production"},
	{ID: "nmdar", Name: "NMDA Receptor", Type: model.TargetReceptor, Description: "Glutamate receptor involved in synaptic plasticity and memory"},
	{ID: "dat", Name: "Dopamine Transporter", Type: model.TargetProtein, Description: "Membrane protein regulating dopamine reuptake"},
	{ID: "mao_b", Name: "MAO-B", Type: model.TargetEnzyme, Description: "Enzyme that metabolizes dopamine"},
	{ID: "glut4", Name: "GLUT4", Type: model.TargetProtein, Description: "Glucose transporter regulated by insulin"},
	{ID: "pparg", Name: "PPAR-γ", Type: model.TargetReceptor, Description: "Nuclear receptor regulating glucose and lipid metabolism"},
	{ID: "tnf_alpha", Name: "TNF-α", Type: model.TargetProtein, Description: "Pro-inflammatory cytokine involved in systemic inflammation"},
	{ID: "cox2", Name: "COX-2", Type: model.TargetEnzyme, Description: "Cyclooxygenase enzyme producing inflammatory prostaglandins"},
	{ID: "sert", Name: "Serotonin Transporter", Type: model.TargetProtein, Description: "Membrane transporter regulating serotonin reuptake"},
}

var staticPathways = []model.Pathway{
	{ID: "cholinergic", Name: "Cholinergic Signaling", Description: "Neurotransmitter pathway involved in memory and cognition"},
	{ID: "amyloid", Name: "Amyloid Processing", Description: "Pathway regulating amyloid-beta production and clearance"},
	{ID: "dopaminergic", Name: "Dopaminergic Signaling", Description: "Neurotransmitter pathway controlling movement and reward"},
	{ID: "insulin", Name: "Insulin Signaling", Description: "Pathway regulating glucose uptake and metabolism"},
	{ID: "inflammation", Name: "Inflammatory Response", Description: "Immune system pathway mediating tissue inflammation"},
	{ID: "serotonergic", Name: "Serotonergic Signaling", Description: "Neurotransmitter pathway regulating mood and emotion"},
	{ID: "oxidative", Name: "Oxidative Stress Response", Description: "Cellular pathway managing reactive oxygen species"},
}

// Fallback candidates, ranked, keyed by disease id.
var staticDrugs = map[string][]model.Drug{
	"alzheimers": {
		{
			ID:               "memantine",
			Name:             "Memantine",
			GenericName:      "Memantine HCl",
			ConfidenceScore:  87,
			ConfidenceTier:   model.TierHigh,
			MechanismSummary: "NMDA receptor antagonist that modulates glutamatergic neurotransmission, potentially reducing excitotoxicity in neurodegenerative contexts",
			Targets:          []string{"nmdar"},
			Pathways:         []string{"cholinergic", "oxidative"},
			DiseaseRelevance: "Currently approved for moderate-to-severe Alzheimer's. Model suggests broader neuroprotective potential in early-stage disease through excitotoxicity reduction.",
			KnownLimitations: []string{
				"Limited efficacy in mild cognitive impairment",
				"Optimal dosing for repurposing context unclear",
				"May require combination therapy for maximum benefit",
			},
			CurrentUse: "Moderate-to-severe Alzheimer's Disease",
		},
		{
			ID:               "pioglitazone",
			Name:             "Pioglitazone",
			ConfidenceScore:  73,
			ConfidenceTier:   model.TierHigh,
			MechanismSummary: "PPAR-γ agonist with anti-inflammatory and insulin-sensitizing effects. May reduce neuroinflammation and improve mitochondrial function in neuronal tissue.",
			Targets:          []string{"pparg"},
			Pathways:         []string{"inflammation", "insulin", "oxidative"},
			DiseaseRelevance: "Epidemiological data suggests reduced AD risk in diabetic patients taking thiazolidinediones. Potential dual benefit addressing metabolic and inflammatory dysfunction.",
			KnownLimitations: []string{
				"Cardiovascular safety concerns in elderly populations",
				"Blood-brain barrier penetration moderate",
				"Long-term neuroprotective effects not yet proven in clinical trials",
			},
			CurrentUse: "Type 2 Diabetes",
		},
		{
			ID:               "rasagiline",
			Name:             "Rasagiline",
			ConfidenceScore:  68,
			ConfidenceTier:   model.TierMedium,
			MechanismSummary: "Selective MAO-B inhibitor that increases dopamine availability and may have neuroprotective properties through reduced oxidative stress.",
			Targets:          []string{"mao_b"},
			Pathways:         []string{"dopaminergic", "oxidative"},
			DiseaseRelevance: "Preclinical models show potential for reducing oxidative damage. Cognitive benefits observed in Parkinson's patients may translate to AD context.",
			KnownLimitations: []string{
				"Primary evidence from Parkinson's disease, not AD",
				"Cognitive effects in AD populations untested in Phase III",
				"Mechanism overlap with AD pathology moderate",
			},
			CurrentUse: "Parkinson's Disease",
		},
		{
			ID:               "celecoxib",
			Name:             "Celecoxib",
			ConfidenceScore:  62,
			ConfidenceTier:   model.TierMedium,
			MechanismSummary: "Selective COX-2 inhibitor targeting neuroinflammation, a key component of Alzheimer's pathology.",
			Targets:          []string{"cox2"},
			Pathways:         []string{"inflammation"},
			DiseaseRelevance: "Chronic neuroinflammation contributes to AD progression. COX-2 inhibition may slow inflammatory cascade in early disease stages.",
			KnownLimitations: []string{
				"Previous trials showed mixed results",
				"Timing of intervention critical (early vs. late stage)",
				"Cardiovascular risk profile requires monitoring",
			},
			CurrentUse: "Osteoarthritis, Rheumatoid Arthritis",
		},
	},
	"parkinsons": {
		{
			ID:               "rasagiline_pd",
			Name:             "Rasagiline",
			ConfidenceScore:  91,
			ConfidenceTier:   model.TierHigh,
			MechanismSummary: "MAO-B inhibition increases striatal dopamine and provides neuroprotection through antioxidant mechanisms.",
			Targets:          []string{"mao_b"},
			Pathways:         []string{"dopaminergic", "oxidative"},
			DiseaseRelevance: "Approved monotherapy and adjunct treatment. Model confirms strong efficacy profile across disease stages.",
			KnownLimitations: []string{
				"Does not halt disease progression",
				"Symptomatic benefit only",
			},
			CurrentUse: "Parkinson's Disease (approved)",
		},
		{
			ID:               "amantadine",
			Name:             "Amantadine",
			ConfidenceScore:  78,
			ConfidenceTier:   model.TierHigh,
			MechanismSummary: "NMDA antagonist with dopaminergic modulation properties. Reduces dyskinesia and provides mild motor benefit.",
			Targets:          []string{"nmdar", "dat"},
			Pathways:         []string{"dopaminergic"},
			DiseaseRelevance: "Particularly effective for levodopa-induced dyskinesia. Model suggests underutilized potential in early disease.",
			KnownLimitations: []string{
				"Modest motor improvement",
				"Cognitive side effects possible",
			},
			CurrentUse: "Parkinson's Disease, Influenza A",
		},
	},
	"type2diabetes": {
		{
			ID:               "metformin",
			Name:             "Metformin",
			ConfidenceScore:  94,
			ConfidenceTier:   model.TierHigh,
			MechanismSummary: "Biguanide that suppresses hepatic glucose production and improves peripheral insulin sensitivity through AMPK activation.",
			Targets:          []string{"glut4"},
			Pathways:         []string{"insulin"},
			DiseaseRelevance: "First-line therapy for T2D. Model confirms robust glycemic control and cardiovascular protective effects.",
			KnownLimitations: []string{
				"GI side effects common",
				"Contraindicated in renal impairment",
			},
			CurrentUse: "Type 2 Diabetes (first-line)",
		},
		{
			ID:               "pioglitazone_t2d",
			Name:             "Pioglitazone",
			ConfidenceScore:  86,
			ConfidenceTier:   model.TierHigh,
			MechanismSummary: "Thiazolidinedione improving insulin sensitivity through PPAR-γ activation and adipocyte differentiation.",
			Targets:          []string{"pparg"},
			Pathways:         []string{"insulin", "inflammation"},
			DiseaseRelevance: "Effective insulin sensitizer with potential cardiovascular and neuroprotective benefits.",
			KnownLimitations: []string{
				"Weight gain and fluid retention",
				"Bone fracture risk in women",
			},
			CurrentUse: "Type 2 Diabetes",
		},
	},
}
