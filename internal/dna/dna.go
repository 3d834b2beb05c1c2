// Package dna analyzes DNA sequences: composition and melting
// temperature, codon translation and usage, six-frame ORF detection,
// restriction site scanning, pairwise alignment, mutation diffing,
// CRISPR PAM search and PCR primer design.
//
// Every analysis is a pure function over a cleaned sequence string.
// Callers may run them concurrently without coordination; the codon
// and enzyme tables are read-only constants
package dna

import (
	"log"
	"os"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)
