package dna

import (
	"regexp"
	"sort"
	"strings"
)

// PAMSite is one protospacer adjacent motif occurrence
type PAMSite struct {
	// 1-based position of the PAM in the input sequence
	Position int `json:"position"`

	// the matched PAM bases
	PAM string `json:"pamSequence"`

	// "forward" or "reverse"
	Strand string `json:"strand"`

	// the guide RNA region upstream of the PAM, empty when the PAM
	// sits too close to the strand start for a full guide
	GuideRNA string `json:"guideRna,omitempty"`

	// length of the guide region
	GuideLength int `json:"guideLength"`

	// "High", "Medium" or "Low"
	Efficiency string `json:"targetEfficiency"`

	// up to 10 bases of flanking sequence either side of the PAM
	Context string `json:"context"`
}

// PAMResult is every PAM site found in a sequence
type PAMResult struct {
	Total   int       `json:"totalSites"`
	Forward int       `json:"forwardStrandSites"`
	Reverse int       `json:"reverseStrandSites"`
	Sites   []PAMSite `json:"sites"`
}

// guideEfficiency grades a guide RNA with a simple heuristic: optimal
// GC is 40-60%, poly-T stretches abort transcription and are avoided
func guideEfficiency(guide string) string {
	if guide == "" {
		return "Low"
	}

	gc := GCContent(guide)
	polyT := strings.Contains(guide, "TTTT")

	switch {
	case gc >= 40 && gc <= 60 && !polyT:
		return "High"
	case gc >= 30 && gc <= 70 && !polyT:
		return "Medium"
	default:
		return "Low"
	}
}

// pamRegex compiles a PAM pattern like "NGG" into a regular
// expression, N matching any nucleotide
func pamRegex(pam string) *regexp.Regexp {
	return regexp.MustCompile(strings.ReplaceAll(pam, "N", "[ATGC]"))
}

// scanPAMStrand records each PAM match in one strand. Positions are
// mapped back to the input sequence for the reverse strand
func scanPAMStrand(seq, strand, pam string, guideLength int) []PAMSite {
	var sites []PAMSite
	for _, match := range pamRegex(pam).FindAllStringIndex(seq, -1) {
		pos, end := match[0], match[1]
		pamSeq := seq[pos:end]

		guide := ""
		if pos >= guideLength {
			guide = seq[pos-guideLength : pos]
		}

		contextStart := maxInt(0, pos-10)
		contextEnd := end + 10
		if contextEnd > len(seq) {
			contextEnd = len(seq)
		}

		position := pos + 1
		if strand == "reverse" {
			position = len(seq) - pos - len(pamSeq) + 1
		}

		sites = append(sites, PAMSite{
			Position:    position,
			PAM:         pamSeq,
			Strand:      strand,
			GuideRNA:    guide,
			GuideLength: len(guide),
			Efficiency:  guideEfficiency(guide),
			Context:     seq[contextStart:contextEnd],
		})
	}
	return sites
}

// FindPAMSites searches both strands of the cleaned sequence for PAM
// sites, extracting the guide region upstream of each. Sites are
// sorted by position in the input sequence
func FindPAMSites(seq, pam string, guideLength int) PAMResult {
	sites := scanPAMStrand(seq, "forward", pam, guideLength)
	sites = append(sites, scanPAMStrand(ReverseComplement(seq), "reverse", pam, guideLength)...)

	sort.SliceStable(sites, func(i, j int) bool {
		return sites[i].Position < sites[j].Position
	})

	result := PAMResult{Total: len(sites), Sites: sites}
	for _, site := range sites {
		if site.Strand == "forward" {
			result.Forward++
		} else {
			result.Reverse++
		}
	}
	if result.Sites == nil {
		result.Sites = []PAMSite{}
	}

	return result
}
