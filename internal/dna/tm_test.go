package dna

import (
	"strings"
	"testing"
)

func Test_MeltingTemp(t *testing.T) {
	type args struct {
		seq string
	}
	tests := []struct {
		name string
		args args
		want float64
	}{
		{
			"empty sequence",
			args{""},
			0,
		},
		{
			"Wallace rule, 13 bases with 5 AT and 8 GC",
			args{"AATATGGGGCCCC"},
			42, // 2*5 + 4*8
		},
		{
			"Wallace rule, single base",
			args{"G"},
			4,
		},
		{
			"salt-adjusted at 14 bases",
			args{strings.Repeat("A", 14)},
			// 81.5 + 16.6*log10(0.05) + 0.41*0 - 675/14
			11.7,
		},
		{
			"long-sequence denominator above 70 bases",
			args{strings.Repeat("A", 80)},
			// 81.5 + 16.6*log10(0.05) + 0.41*0 - 600/80
			52.4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeltingTemp(tt.args.seq); got != tt.want {
				t.Errorf("MeltingTemp() = %v, want %v", got, tt.want)
			}
		})
	}
}

// the 13 to 14 base boundary switches formulas: the Wallace result for
// 13 A's is exact while the salt-adjusted result for 14 A's is not a
// multiple of 2
func Test_MeltingTemp_bracket_boundary(t *testing.T) {
	if got := MeltingTemp(strings.Repeat("A", 13)); got != 26 {
		t.Errorf("MeltingTemp(13 A) = %v, want 26", got)
	}
	if got := MeltingTemp(strings.Repeat("A", 14)); got == 28 {
		t.Errorf("MeltingTemp(14 A) = %v, expected the salt-adjusted branch", got)
	}
}
