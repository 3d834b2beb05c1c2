package dna

import "math"

// MeltingTemp estimates the melting temperature of a cleaned sequence
// in degrees C. The formula is picked by length bracket:
//
// 	length < 14:	Wallace rule, 2*(A+T) + 4*(G+C)
// 	14 to 70:	81.5 + 16.6*log10(0.05) + 0.41*GC% - 675/length
// 	length > 70:	same with 600 in place of 675
//
// The model assumes 50 mM Na+, no Mg2+ and pH 7.0. It is deliberately
// approximate; the brackets and constants are part of the contract
func MeltingTemp(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}

	c := Counts(seq)
	if len(seq) < 14 {
		// Wallace rule
		return float64(2*(c.A+c.T) + 4*(c.G+c.C))
	}

	denominator := 675.0
	if len(seq) > 70 {
		denominator = 600.0
	}

	gc := float64(c.G+c.C) / float64(len(seq)) * 100
	tm := 81.5 + 16.6*math.Log10(0.05) + 0.41*gc - denominator/float64(len(seq))
	return round1(tm)
}
