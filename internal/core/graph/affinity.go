package graph

// Pair is a (target id, pathway id) combination.
type Pair struct {
	Target  string
	Pathway string
}

// affinities is the hand-curated list of target–pathway pairs that get a
// cross-link. Pairs outside it are never linked.
var affinities = map[Pair]float64{
	{Target: "ache", Pathway: "cholinergic"}:       TargetPathwayStrength,
	{Target: "nmdar", Pathway: "cholinergic"}:      TargetPathwayStrength,
	{Target: "dat", Pathway: "dopaminergic"}:       TargetPathwayStrength,
	{Target: "mao_b", Pathway: "dopaminergic"}:     TargetPathwayStrength,
	{Target: "pparg", Pathway: "insulin"}:          TargetPathwayStrength,
	{Target: "pparg", Pathway: "inflammation"}:     TargetPathwayStrength,
	{Target: "glut4", Pathway: "insulin"}:          TargetPathwayStrength,
	{Target: "tnf_alpha", Pathway: "inflammation"}: TargetPathwayStrength,
	{Target: "cox2", Pathway: "inflammation"}:      TargetPathwayStrength,
	{Target: "sert", Pathway: "serotonergic"}:      TargetPathwayStrength,
}

func Affinity(p Pair) (float64, bool) {
	s, ok := affinities[p]
	return s, ok
}
