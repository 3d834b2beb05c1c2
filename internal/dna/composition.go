package dna

import "math"

// average molecular weights of each nucleotide monophosphate in g/mol.
// approximations for single stranded DNA
const (
	weightA = 313.2
	weightT = 304.2
	weightG = 329.2
	weightC = 289.2
)

// NucleotideCounts is the number of each nucleotide in a sequence
type NucleotideCounts struct {
	A int `json:"a"`
	T int `json:"t"`
	G int `json:"g"`
	C int `json:"c"`
}

// Ratios are derived composition ratios. Each is 0 when its
// denominator would be 0
type Ratios struct {
	// Purines is the count of A and G
	Purines int `json:"purines"`

	// Pyrimidines is the count of T and C
	Pyrimidines int `json:"pyrimidines"`

	// GCRatio is G count over C count
	GCRatio float64 `json:"gcRatio"`

	// ATRatio is A count over T count
	ATRatio float64 `json:"atRatio"`
}

// Counts tallies each nucleotide in a single pass over the cleaned sequence
func Counts(seq string) NucleotideCounts {
	var c NucleotideCounts
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A':
			c.A++
		case 'T':
			c.T++
		case 'G':
			c.G++
		case 'C':
			c.C++
		}
	}
	return c
}

// GCContent is the percentage of the sequence that is G or C,
// rounded to 2 decimals. 0 for an empty sequence
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}

	c := Counts(seq)
	return round2(float64(c.G+c.C) / float64(len(seq)) * 100)
}

// ATContent is the percentage of the sequence that is A or T,
// rounded to 2 decimals. 0 for an empty sequence
func ATContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}

	c := Counts(seq)
	return round2(float64(c.A+c.T) / float64(len(seq)) * 100)
}

// MolecularWeight is the weighted sum of per-nucleotide average
// molecular weights in g/mol, rounded to 2 decimals. An approximation
// for single stranded DNA
func MolecularWeight(seq string) float64 {
	c := Counts(seq)
	weight := float64(c.A)*weightA +
		float64(c.T)*weightT +
		float64(c.G)*weightG +
		float64(c.C)*weightC
	return round2(weight)
}

// CompositionRatios computes purine/pyrimidine counts and the G/C and
// A/T ratios for a cleaned sequence
func CompositionRatios(seq string) Ratios {
	c := Counts(seq)

	r := Ratios{
		Purines:     c.A + c.G,
		Pyrimidines: c.T + c.C,
	}
	if c.C > 0 {
		r.GCRatio = round2(float64(c.G) / float64(c.C))
	}
	if c.T > 0 {
		r.ATRatio = round2(float64(c.A) / float64(c.T))
	}

	return r
}

// round2 rounds to 2 decimal places
func round2(n float64) float64 {
	return math.Round(n*100) / 100
}

// round1 rounds to 1 decimal place
func round1(n float64) float64 {
	return math.Round(n*10) / 10
}
