package dna

import "github.com/fyodor12344/DNA-ANALYZER/config"

// Summary is the aggregate analysis of one sequence. Built fresh per
// request, nothing is cached or persisted
type Summary struct {
	// the cleaned input sequence
	Seq string `json:"seq"`

	// length of the cleaned sequence
	Length int `json:"length"`

	// per nucleotide tallies
	Counts NucleotideCounts `json:"counts"`

	// percentage G+C, 2 decimals
	GCContent float64 `json:"gcContent"`

	// percentage A+T, 2 decimals
	ATContent float64 `json:"atContent"`

	// purine/pyrimidine counts and G/C, A/T ratios
	Ratios Ratios `json:"ratios"`

	// estimated melting temperature in C
	MeltingTemp float64 `json:"meltingTemp"`

	// approximate single stranded molecular weight in g/mol
	MolecularWeight float64 `json:"molecularWeight"`

	// the reverse complement of the cleaned sequence
	ReverseComplement string `json:"reverseComplement"`

	// every retained ORF, longest first
	ORFs []ORF `json:"orfs"`

	// the longest retained ORF, nil when there are none
	LongestORF *ORF `json:"longestOrf"`

	// frame 1 codon usage
	CodonUsage []CodonUsageEntry `json:"codonUsage"`

	// translations of all six reading frames
	Frames SixFrames `json:"frames"`

	// restriction enzyme hits, most cut sites first
	RestrictionSites []RestrictionSite `json:"restrictionSites"`
}

// Summarize cleans the raw input once and runs every analyzer against
// the cleaned sequence. Each call is independent: the same input
// always builds the same Summary
func Summarize(raw string, c *config.Config) *Summary {
	seq := Clean(raw)

	orfs := FindORFs(seq, c.ORF.MinAminoAcids)
	var longest *ORF
	if len(orfs) > 0 {
		longest = &orfs[0]
	}

	return &Summary{
		Seq:               seq,
		Length:            len(seq),
		Counts:            Counts(seq),
		GCContent:         GCContent(seq),
		ATContent:         ATContent(seq),
		Ratios:            CompositionRatios(seq),
		MeltingTemp:       MeltingTemp(seq),
		MolecularWeight:   MolecularWeight(seq),
		ReverseComplement: ReverseComplement(seq),
		ORFs:              orfs,
		LongestORF:        longest,
		CodonUsage:        CodonUsage(seq, c.CodonUsage.OnlyObserved),
		Frames:            TranslateAllFrames(seq),
		RestrictionSites:  ScanRestrictionSites(seq),
	}
}
