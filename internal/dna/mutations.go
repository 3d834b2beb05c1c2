package dna

import "strings"

// mutation classes
const (
	classSilent     = "Silent"
	classMissense   = "Missense"
	classNonsense   = "Nonsense"
	classFrameshift = "Frameshift"
	classUnknown    = "Unknown"
)

// Mutation is one difference between a reference and an alternate sequence
type Mutation struct {
	// 1-based position of the difference
	Position int `json:"position"`

	// "SNP", "Insertion" or "Deletion"
	Type string `json:"type"`

	// the reference base, SNPs only
	Reference string `json:"reference,omitempty"`

	// the alternate base, SNPs only
	Alternate string `json:"alternate,omitempty"`

	// the run of inserted bases, insertions only
	InsertedSeq string `json:"insertedSequence,omitempty"`

	// the run of deleted bases, deletions only
	DeletedSeq string `json:"deletedSequence,omitempty"`

	// Silent, Missense, Nonsense, Frameshift or Unknown
	Class string `json:"mutationClass"`
}

// MutationSummary tallies the mutations by type and class
type MutationSummary struct {
	Total      int `json:"totalMutations"`
	SNPs       int `json:"snps"`
	Insertions int `json:"insertions"`
	Deletions  int `json:"deletions"`
	Silent     int `json:"silentMutations"`
	Missense   int `json:"missenseMutations"`
	Nonsense   int `json:"nonsenseMutations"`
}

// MutationResult is the full diff between two sequences
type MutationResult struct {
	Summary   MutationSummary `json:"summary"`
	Mutations []Mutation      `json:"mutations"`
}

// classifyMutation labels a single-base change by its effect on the
// containing codon. The codons may contain '-' padding, in which case
// the class is Unknown
func classifyMutation(refCodon, altCodon string) string {
	if len(refCodon) != 3 || len(altCodon) != 3 {
		return classUnknown
	}

	refAA, refOk := codonTable[refCodon]
	altAA, altOk := codonTable[altCodon]
	if !refOk || !altOk {
		return classUnknown
	}

	switch {
	case refAA == altAA:
		return classSilent
	case altAA == stopSymbol:
		return classNonsense
	default:
		return classMissense
	}
}

// FindMutations walks two sequences position by position, reporting
// SNPs with their codon-context class and runs of extra or missing
// bases as frameshift insertions/deletions. The shorter sequence is
// padded with '-' so trailing extra bases surface as indels
func FindMutations(ref, alt string) MutationResult {
	maxLen := len(ref)
	if len(alt) > maxLen {
		maxLen = len(alt)
	}
	ref += strings.Repeat("-", maxLen-len(ref))
	alt += strings.Repeat("-", maxLen-len(alt))

	result := MutationResult{Mutations: []Mutation{}}

	i := 0
	for i < maxLen {
		if ref[i] == alt[i] {
			i++
			continue
		}

		switch {
		case ref[i] != '-' && alt[i] != '-':
			// SNP, classify against the codon both bases sit in
			class := classUnknown
			codonPos := i / 3 * 3
			if codonPos+2 < maxLen {
				class = classifyMutation(ref[codonPos:codonPos+3], alt[codonPos:codonPos+3])
			}

			switch class {
			case classSilent:
				result.Summary.Silent++
			case classMissense:
				result.Summary.Missense++
			case classNonsense:
				result.Summary.Nonsense++
			}

			result.Mutations = append(result.Mutations, Mutation{
				Position:  i + 1,
				Type:      "SNP",
				Reference: string(ref[i]),
				Alternate: string(alt[i]),
				Class:     class,
			})
			result.Summary.SNPs++
			i++

		case ref[i] == '-':
			end := i
			for end < maxLen && ref[end] == '-' {
				end++
			}
			result.Mutations = append(result.Mutations, Mutation{
				Position:    i + 1,
				Type:        "Insertion",
				InsertedSeq: alt[i:end],
				Class:       classFrameshift,
			})
			result.Summary.Insertions++
			i = end

		default:
			end := i
			for end < maxLen && alt[end] == '-' {
				end++
			}
			result.Mutations = append(result.Mutations, Mutation{
				Position:   i + 1,
				Type:       "Deletion",
				DeletedSeq: ref[i:end],
				Class:      classFrameshift,
			})
			result.Summary.Deletions++
			i = end
		}
	}

	result.Summary.Total = len(result.Mutations)
	return result
}
