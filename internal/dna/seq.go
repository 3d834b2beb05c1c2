package dna

import (
	"bytes"
	"strings"
)

// Clean converts raw sequence text into its canonical form: uppercased
// with every character outside {A,T,G,C} removed. Garbage in, empty out;
// it never fails. Every other function in this package expects its
// input to have been through Clean and does not re-validate
func Clean(raw string) string {
	raw = strings.ToUpper(raw)

	var cleaned bytes.Buffer
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case 'A', 'T', 'G', 'C':
			cleaned.WriteByte(raw[i])
		}
	}

	return cleaned.String()
}

// ReverseComplement cleans the sequence then returns its reverse
// complement: reversed symbol order with A<->T and G<->C swapped
func ReverseComplement(seq string) string {
	seq = Clean(seq)

	revCompMap := map[byte]byte{
		'A': 'T',
		'T': 'A',
		'G': 'C',
		'C': 'G',
	}

	revCompBytes := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		revCompBytes[len(seq)-i-1] = revCompMap[seq[i]]
	}

	return string(revCompBytes)
}
