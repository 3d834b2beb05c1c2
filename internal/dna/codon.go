package dna

import (
	"sort"
	"strings"
)

// stopSymbol marks the three stop codons in the codon table. It is
// never appended to a translation
const stopSymbol = "*"

// codonTable maps each of the 64 codons over {A,T,G,C} to a single
// letter amino acid code. TAA, TAG and TGA map to the stop symbol.
// Read-only after startup
var codonTable = map[string]string{
	"TTT": "F", "TTC": "F", "TTA": "L", "TTG": "L",
	"CTT": "L", "CTC": "L", "CTA": "L", "CTG": "L",
	"ATT": "I", "ATC": "I", "ATA": "I", "ATG": "M",
	"GTT": "V", "GTC": "V", "GTA": "V", "GTG": "V",
	"TCT": "S", "TCC": "S", "TCA": "S", "TCG": "S",
	"CCT": "P", "CCC": "P", "CCA": "P", "CCG": "P",
	"ACT": "T", "ACC": "T", "ACA": "T", "ACG": "T",
	"GCT": "A", "GCC": "A", "GCA": "A", "GCG": "A",
	"TAT": "Y", "TAC": "Y", "TAA": stopSymbol, "TAG": stopSymbol,
	"CAT": "H", "CAC": "H", "CAA": "Q", "CAG": "Q",
	"AAT": "N", "AAC": "N", "AAA": "K", "AAG": "K",
	"GAT": "D", "GAC": "D", "GAA": "E", "GAG": "E",
	"TGT": "C", "TGC": "C", "TGA": stopSymbol, "TGG": "W",
	"CGT": "R", "CGC": "R", "CGA": "R", "CGG": "R",
	"AGT": "S", "AGC": "S", "AGA": "R", "AGG": "R",
	"GGT": "G", "GGC": "G", "GGA": "G", "GGG": "G",
}

// aminoAcidNames maps each single letter amino acid code to its full name
var aminoAcidNames = map[string]string{
	"A": "Alanine",
	"R": "Arginine",
	"N": "Asparagine",
	"D": "Aspartate",
	"C": "Cysteine",
	"E": "Glutamate",
	"Q": "Glutamine",
	"G": "Glycine",
	"H": "Histidine",
	"I": "Isoleucine",
	"L": "Leucine",
	"K": "Lysine",
	"M": "Methionine",
	"F": "Phenylalanine",
	"P": "Proline",
	"S": "Serine",
	"T": "Threonine",
	"W": "Tryptophan",
	"Y": "Tyrosine",
	"V": "Valine",
	stopSymbol: "Stop",
}

// CodonUsageEntry is one row of the codon usage table
type CodonUsageEntry struct {
	// the codon, ex "ATG"
	Codon string `json:"codon"`

	// the single letter amino acid code the codon translates to
	AminoAcid string `json:"aminoAcid"`

	// the full amino acid name, ex "Methionine"
	AminoAcidName string `json:"aminoAcidName"`

	// number of occurrences in frame 1 of the sequence
	Count int `json:"count"`

	// percentage of all counted codons, rounded to 2 decimals
	Percent float64 `json:"percent"`
}

// Translate converts a cleaned nucleotide sequence into an amino acid
// string, reading non-overlapping codons from position 0. Translation
// truncates at the first stop codon (the stop symbol is not emitted)
// and trailing bases short of a codon are ignored
func Translate(seq string) string {
	var aminoAcids strings.Builder
	for i := 0; i+3 <= len(seq); i += 3 {
		aa := codonTable[seq[i:i+3]]
		if aa == stopSymbol {
			break
		}
		aminoAcids.WriteString(aa)
	}
	return aminoAcids.String()
}

// CodonUsage counts each codon in reading frame 1 of the cleaned
// sequence. If onlyObserved, codons with zero counts are dropped;
// otherwise all 64 rows are returned so consumers always see a
// complete table. Rows are sorted by descending count with the codon
// text breaking ties
func CodonUsage(seq string, onlyObserved bool) []CodonUsageEntry {
	counts := make(map[string]int)
	total := 0
	for i := 0; i+3 <= len(seq); i += 3 {
		counts[seq[i:i+3]]++
		total++
	}

	var entries []CodonUsageEntry
	for codon, aa := range codonTable {
		count := counts[codon]
		if onlyObserved && count == 0 {
			continue
		}

		percent := 0.0
		if total > 0 {
			percent = round2(float64(count) / float64(total) * 100)
		}

		entries = append(entries, CodonUsageEntry{
			Codon:         codon,
			AminoAcid:     aa,
			AminoAcidName: aminoAcidNames[aa],
			Count:         count,
			Percent:       percent,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Codon < entries[j].Codon
	})

	return entries
}
