package dna

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
)

// enzymes maps restriction enzyme names to their recognition sequences.
// Read-only after startup
var enzymes = map[string]string{
	"EcoRI":   "GAATTC",
	"BamHI":   "GGATCC",
	"HindIII": "AAGCTT",
	"NotI":    "GCGGCCGC",
	"XhoI":    "CTCGAG",
	"PstI":    "CTGCAG",
	"SmaI":    "CCCGGG",
	"KpnI":    "GGTACC",
	"SacI":    "GAGCTC",
	"SalI":    "GTCGAC",
	"XbaI":    "TCTAGA",
	"SpeI":    "ACTAGT",
	"NcoI":    "CCATGG",
	"NdeI":    "CATATG",
	"BglII":   "AGATCT",
	"EcoRV":   "GATATC",
}

// RestrictionSite is every cut position of one enzyme in a sequence
type RestrictionSite struct {
	// the enzyme's name, ex "EcoRI"
	Enzyme string `json:"enzyme"`

	// the recognition sequence, ex "GAATTC"
	Recognition string `json:"recognition"`

	// 1-based positions of each occurrence
	Positions []int `json:"positions"`

	// number of occurrences
	Count int `json:"count"`
}

// ScanRestrictionSites substring-searches the cleaned sequence for
// every enzyme's recognition site. The search resumes one position
// past each hit, so overlapping occurrences are all found. Enzymes
// with no hits are omitted and the result is sorted by descending hit
// count, enzyme name breaking ties
func ScanRestrictionSites(seq string) []RestrictionSite {
	sites := []RestrictionSite{}
	for name, recog := range enzymes {
		var positions []int
		offset := 0
		for {
			found := strings.Index(seq[offset:], recog)
			if found < 0 {
				break
			}
			positions = append(positions, offset+found+1)
			offset += found + 1
		}

		if len(positions) == 0 {
			continue
		}

		sites = append(sites, RestrictionSite{
			Enzyme:      name,
			Recognition: recog,
			Positions:   positions,
			Count:       len(positions),
		})
	}

	sort.Slice(sites, func(i, j int) bool {
		if sites[i].Count != sites[j].Count {
			return sites[i].Count > sites[j].Count
		}
		return sites[i].Enzyme < sites[j].Enzyme
	})

	return sites
}

// PrintEnzymes writes the enzyme table to stdout:
//
// 	<Name>: <Recognition sequence>
func PrintEnzymes() {
	names := make([]string, 0, len(enzymes))
	for name := range enzymes {
		names = append(names, name)
	}
	sort.Strings(names)

	// from https://golang.org/pkg/text/tabwriter/
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\n", name, enzymes[name])
	}
	w.Flush()
}
