package dna

import "sort"

const startCodon = "ATG"

// stop codons of the standard genetic code
var stopCodons = map[string]bool{
	"TAA": true,
	"TAG": true,
	"TGA": true,
}

// ORF is one detected open reading frame. Positions are 1-based and
// relative to the strand the ORF was found on (the input sequence for
// frames +1..+3, its reverse complement for -1..-3)
type ORF struct {
	// the reading frame, one of +-1, +-2, +-3. The sign is the strand,
	// the magnitude is the frame offset plus one
	Frame int `json:"frame"`

	// 1-based position of the start codon's first nucleotide
	Start int `json:"start"`

	// 1-based position of the ORF's last nucleotide, inclusive. The
	// stop codon, when found, is part of the span
	End int `json:"end"`

	// nucleotide length of the span, End-Start+1, always a multiple of 3
	Length int `json:"length"`

	// the nucleotide span
	Seq string `json:"seq"`

	// the translated amino acids. Excludes the stop codon
	Translation string `json:"translation"`

	// whether the ORF ends on an in-frame stop codon ("complete") or
	// at the strand boundary with no stop found ("partial")
	Completeness string `json:"completeness"`
}

// SixFrames holds the translation of a sequence in all six reading
// frames. Always three forward and three reverse entries, possibly empty
type SixFrames struct {
	Forward [3]string `json:"forward"`
	Reverse [3]string `json:"reverse"`
}

// scanORFs finds every start-codon anchored region in one strand,
// unfiltered. Scanning is codon aligned: each frame offset steps in
// threes and a found ORF advances the scan past its own end, so starts
// nested within an ORF are not reported
func scanORFs(seq string, sign int) (orfs []ORF) {
	for offset := 0; offset < 3; offset++ {
		i := offset
		for i+3 <= len(seq) {
			if seq[i:i+3] != startCodon {
				i += 3
				continue
			}

			// found a start, look for the nearest in-frame stop
			stop := -1
			for j := i + 3; j+3 <= len(seq); j += 3 {
				if stopCodons[seq[j:j+3]] {
					stop = j
					break
				}
			}

			end := 0
			completeness := ""
			if stop >= 0 {
				end = stop + 3 // include the stop codon in the span
				completeness = "complete"
			} else {
				// ran off the strand: trim the tail so the span stays
				// a multiple of 3
				end = i + (len(seq)-i)/3*3
				completeness = "partial"
			}

			orfs = append(orfs, ORF{
				Frame:        sign * (offset + 1),
				Start:        i + 1,
				End:          end,
				Length:       end - i,
				Seq:          seq[i:end],
				Translation:  Translate(seq[i:end]),
				Completeness: completeness,
			})

			i = end
		}
	}

	return orfs
}

// FindORFs scans the cleaned sequence and its reverse complement
// across all three frame offsets and returns the ORFs translating to
// at least minAminoAcids amino acids. The result is sorted by
// descending nucleotide length, forward strand before reverse, then
// ascending start position
func FindORFs(seq string, minAminoAcids int) []ORF {
	orfs := []ORF{}
	for _, o := range scanORFs(seq, 1) {
		if len(o.Translation) >= minAminoAcids {
			orfs = append(orfs, o)
		}
	}
	for _, o := range scanORFs(ReverseComplement(seq), -1) {
		if len(o.Translation) >= minAminoAcids {
			orfs = append(orfs, o)
		}
	}

	sort.SliceStable(orfs, func(i, j int) bool {
		if orfs[i].Length != orfs[j].Length {
			return orfs[i].Length > orfs[j].Length
		}
		if (orfs[i].Frame > 0) != (orfs[j].Frame > 0) {
			return orfs[i].Frame > 0
		}
		return orfs[i].Start < orfs[j].Start
	})

	return orfs
}

// LongestORF returns the longest retained ORF, or nil when none passed
// the filter
func LongestORF(seq string, minAminoAcids int) *ORF {
	orfs := FindORFs(seq, minAminoAcids)
	if len(orfs) == 0 {
		return nil
	}
	return &orfs[0]
}

// TranslateAllFrames translates the cleaned sequence and its reverse
// complement at each of the three frame offsets. Unlike FindORFs this
// ignores start codons entirely; each frame is translated from its
// offset and truncates at the first stop codon
func TranslateAllFrames(seq string) SixFrames {
	revComp := ReverseComplement(seq)

	var frames SixFrames
	for offset := 0; offset < 3; offset++ {
		if offset <= len(seq) {
			frames.Forward[offset] = Translate(seq[offset:])
		}
		if offset <= len(revComp) {
			frames.Reverse[offset] = Translate(revComp[offset:])
		}
	}

	return frames
}
