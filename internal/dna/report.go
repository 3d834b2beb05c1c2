package dna

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// banner writes a fixed-width section heading into the report
func banner(b *strings.Builder, title string) {
	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
}

// Report renders a Summary as a plain text report with section
// banners
func Report(s *Summary) string {
	var b strings.Builder

	banner(&b, "SEQUENCE OVERVIEW")
	fmt.Fprintf(&b, "Length: %d bp\n", s.Length)
	fmt.Fprintf(&b, "A: %d  T: %d  G: %d  C: %d\n", s.Counts.A, s.Counts.T, s.Counts.G, s.Counts.C)
	fmt.Fprintf(&b, "GC content: %.2f%%\n", s.GCContent)
	fmt.Fprintf(&b, "AT content: %.2f%%\n", s.ATContent)
	fmt.Fprintf(&b, "Purines: %d  Pyrimidines: %d\n", s.Ratios.Purines, s.Ratios.Pyrimidines)
	fmt.Fprintf(&b, "Melting temperature: %.1f C\n", s.MeltingTemp)
	fmt.Fprintf(&b, "Molecular weight: %.2f g/mol\n", s.MolecularWeight)
	b.WriteString("\n")

	banner(&b, "REVERSE COMPLEMENT")
	fmt.Fprintf(&b, "%s\n\n", s.ReverseComplement)

	banner(&b, "OPEN READING FRAMES")
	if len(s.ORFs) == 0 {
		b.WriteString("none found\n")
	}
	for _, orf := range s.ORFs {
		fmt.Fprintf(&b, "frame %+d  %d..%d  %d bp  %s\n  %s\n",
			orf.Frame, orf.Start, orf.End, orf.Length, orf.Completeness, orf.Translation)
	}
	b.WriteString("\n")

	banner(&b, "SIX FRAME TRANSLATION")
	for i, aa := range s.Frames.Forward {
		fmt.Fprintf(&b, "+%d  %s\n", i+1, aa)
	}
	for i, aa := range s.Frames.Reverse {
		fmt.Fprintf(&b, "-%d  %s\n", i+1, aa)
	}
	b.WriteString("\n")

	banner(&b, "CODON USAGE (FRAME 1)")
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, entry := range s.CodonUsage {
		if entry.Count == 0 {
			continue // zero rows stay in the JSON, not the report
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f%%\n", entry.Codon, entry.AminoAcidName, entry.Count, entry.Percent)
	}
	w.Flush()
	b.WriteString("\n")

	banner(&b, "RESTRICTION SITES")
	if len(s.RestrictionSites) == 0 {
		b.WriteString("none found\n")
	}
	for _, site := range s.RestrictionSites {
		positions := make([]string, len(site.Positions))
		for i, p := range site.Positions {
			positions[i] = fmt.Sprintf("%d", p)
		}
		fmt.Fprintf(&b, "%s (%s): %s\n", site.Enzyme, site.Recognition, strings.Join(positions, ", "))
	}

	return b.String()
}
