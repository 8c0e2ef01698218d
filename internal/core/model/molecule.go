package model

import "math"

type Atom struct {
	ID     int     `json:"id"`
	Symbol string  `json:"symbol"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
}

type Bond struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Order int `json:"type"` // 1=single, 2=double, 3=triple
}

type Molecule struct {
	DrugID    string `json:"drug_id"`
	DrugName  string `json:"drug_name"`
	Atoms     []Atom `json:"atoms"`
	Bonds     []Bond `json:"bonds"`
	AtomCount int    `json:"atom_count"`
	BondCount int    `json:"bond_count"`
}

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Center returns the centroid of all atoms, or the origin for an empty molecule.
func (m Molecule) Center() Vec3 {
	if len(m.Atoms) == 0 {
		return Vec3{}
	}
	var c Vec3
	for _, a := range m.Atoms {
		c.X += a.X
		c.Y += a.Y
		c.Z += a.Z
	}
	n := float64(len(m.Atoms))
	return Vec3{X: c.X / n, Y: c.Y / n, Z: c.Z / n}
}

// Scale returns the factor that fits the molecule into a sphere of the given
// radius around its centroid. Empty or single-point molecules scale by 1.
func (m Molecule) Scale(viewport float64) float64 {
	c := m.Center()
	maxDist := 0.0
	for _, a := range m.Atoms {
		d := math.Sqrt((a.X-c.X)*(a.X-c.X) + (a.Y-c.Y)*(a.Y-c.Y) + (a.Z-c.Z)*(a.Z-c.Z))
		maxDist = math.Max(maxDist, d)
	}
	if maxDist == 0 {
		return 1
	}
	return viewport / maxDist
}

// Centered returns a copy translated so the centroid sits at the origin.
func (m Molecule) Centered() Molecule {
	c := m.Center()
	out := m
	out.Atoms = make([]Atom, len(m.Atoms))
	for i, a := range m.Atoms {
		a.X -= c.X
		a.Y -= c.Y
		a.Z -= c.Z
		out.Atoms[i] = a
	}
	out.Bonds = append([]Bond(nil), m.Bonds...)
	return out
}
