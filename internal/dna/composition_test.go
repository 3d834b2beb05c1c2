package dna

import (
	"math"
	"testing"
)

func Test_Counts(t *testing.T) {
	type args struct {
		seq string
	}
	tests := []struct {
		name string
		args args
		want NucleotideCounts
	}{
		{
			"counts each nucleotide",
			args{"AATGGGC"},
			NucleotideCounts{A: 2, T: 1, G: 3, C: 1},
		},
		{
			"empty sequence",
			args{""},
			NucleotideCounts{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Counts(tt.args.seq); got != tt.want {
				t.Errorf("Counts() = %v, want %v", got, tt.want)
			}
		})
	}
}

// the counts of the four nucleotides always total the cleaned length
func Test_Counts_total(t *testing.T) {
	inputs := []string{"", "ATGC", "aat-ggn\nCCC", "GGGGTTTTAAAA"}
	for _, raw := range inputs {
		seq := Clean(raw)
		c := Counts(seq)
		if c.A+c.T+c.G+c.C != len(seq) {
			t.Errorf("Counts(%q) total = %d, want %d", seq, c.A+c.T+c.G+c.C, len(seq))
		}
	}
}

func Test_GCContent(t *testing.T) {
	type args struct {
		seq string
	}
	tests := []struct {
		name string
		args args
		want float64
	}{
		{"half GC", args{"ATGC"}, 50},
		{"all GC", args{"GGCC"}, 100},
		{"repeating third", args{"ATGATGATG"}, 33.33},
		{"empty is 0, not a division failure", args{""}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GCContent(tt.args.seq); got != tt.want {
				t.Errorf("GCContent() = %v, want %v", got, tt.want)
			}
		})
	}
}

// GC% and AT% total 100 for any non-empty cleaned sequence
func Test_content_sums(t *testing.T) {
	inputs := []string{"A", "ATGC", "ATGATGATG", "GGGGTTTTAAAACCCC"}
	for _, seq := range inputs {
		total := GCContent(seq) + ATContent(seq)
		if math.Abs(total-100) > 0.011 {
			t.Errorf("GCContent(%q) + ATContent(%q) = %v, want 100", seq, seq, total)
		}
	}
}

func Test_MolecularWeight(t *testing.T) {
	type args struct {
		seq string
	}
	tests := []struct {
		name string
		args args
		want float64
	}{
		{
			"one of each nucleotide",
			args{"ATGC"},
			1235.8,
		},
		{
			"empty sequence",
			args{""},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MolecularWeight(tt.args.seq); got != tt.want {
				t.Errorf("MolecularWeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_CompositionRatios(t *testing.T) {
	type args struct {
		seq string
	}
	tests := []struct {
		name string
		args args
		want Ratios
	}{
		{
			"counts and ratios",
			args{"AATGGC"}, // A2 T1 G2 C1
			Ratios{Purines: 4, Pyrimidines: 2, GCRatio: 2, ATRatio: 2},
		},
		{
			"zero denominators guard to 0",
			args{"AAGG"},
			Ratios{Purines: 4, Pyrimidines: 0, GCRatio: 0, ATRatio: 0},
		},
		{
			"empty sequence",
			args{""},
			Ratios{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompositionRatios(tt.args.seq); got != tt.want {
				t.Errorf("CompositionRatios() = %v, want %v", got, tt.want)
			}
		})
	}
}
