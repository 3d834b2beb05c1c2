package dna

// Alignment is the result of a pairwise alignment, two gapped
// sequences of equal length plus the alignment score
type Alignment struct {
	Seq1  string `json:"alignedSequence1"`
	Seq2  string `json:"alignedSequence2"`
	Score int    `json:"score"`
}

// AlignmentStats summarizes a pairwise alignment
type AlignmentStats struct {
	Matches    int `json:"matches"`
	Mismatches int `json:"mismatches"`
	Gaps       int `json:"gaps"`
	Length     int `json:"length"`

	// matches over alignment length as a percentage, 2 decimals
	Similarity float64 `json:"similarityPercentage"`
}

// NeedlemanWunsch globally aligns two sequences with match 1,
// mismatch -1 and gap -2. Traceback prefers the diagonal, then a gap
// in the second sequence, then a gap in the first
func NeedlemanWunsch(seq1, seq2 string) Alignment {
	const (
		match    = 1
		mismatch = -1
		gap      = -2
	)

	n, m := len(seq1), len(seq2)
	score := newMatrix(n+1, m+1)
	for i := 0; i <= n; i++ {
		score[i][0] = gap * i
	}
	for j := 0; j <= m; j++ {
		score[0][j] = gap * j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			diag := score[i-1][j-1] + pairScore(seq1[i-1], seq2[j-1], match, mismatch)
			up := score[i-1][j] + gap
			left := score[i][j-1] + gap
			score[i][j] = maxInt(diag, maxInt(up, left))
		}
	}

	var align1, align2 []byte
	i, j := n, m
	for i > 0 || j > 0 {
		current := score[i][j]
		switch {
		case i > 0 && j > 0 && current == score[i-1][j-1]+pairScore(seq1[i-1], seq2[j-1], match, mismatch):
			align1 = append(align1, seq1[i-1])
			align2 = append(align2, seq2[j-1])
			i--
			j--
		case i > 0 && current == score[i-1][j]+gap:
			align1 = append(align1, seq1[i-1])
			align2 = append(align2, '-')
			i--
		default:
			align1 = append(align1, '-')
			align2 = append(align2, seq2[j-1])
			j--
		}
	}

	return Alignment{
		Seq1:  string(reverseBytes(align1)),
		Seq2:  string(reverseBytes(align2)),
		Score: score[n][m],
	}
}

// SmithWaterman locally aligns two sequences with match 2, mismatch -1
// and gap -1. The traceback starts at the best-scoring cell and stops
// at the first zero
func SmithWaterman(seq1, seq2 string) Alignment {
	const (
		match    = 2
		mismatch = -1
		gap      = -1
	)

	n, m := len(seq1), len(seq2)
	score := newMatrix(n+1, m+1)
	maxScore, maxI, maxJ := 0, 0, 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			diag := score[i-1][j-1] + pairScore(seq1[i-1], seq2[j-1], match, mismatch)
			up := score[i-1][j] + gap
			left := score[i][j-1] + gap
			score[i][j] = maxInt(0, maxInt(diag, maxInt(up, left)))

			if score[i][j] > maxScore {
				maxScore = score[i][j]
				maxI, maxJ = i, j
			}
		}
	}

	var align1, align2 []byte
	i, j := maxI, maxJ
	for i > 0 && j > 0 && score[i][j] > 0 {
		current := score[i][j]
		switch {
		case current == score[i-1][j-1]+pairScore(seq1[i-1], seq2[j-1], match, mismatch):
			align1 = append(align1, seq1[i-1])
			align2 = append(align2, seq2[j-1])
			i--
			j--
		case current == score[i-1][j]+gap:
			align1 = append(align1, seq1[i-1])
			align2 = append(align2, '-')
			i--
		default:
			align1 = append(align1, '-')
			align2 = append(align2, seq2[j-1])
			j--
		}
	}

	return Alignment{
		Seq1:  string(reverseBytes(align1)),
		Seq2:  string(reverseBytes(align2)),
		Score: maxScore,
	}
}

// Stats counts matches, mismatches and gap columns in an alignment
func (a Alignment) Stats() AlignmentStats {
	stats := AlignmentStats{Length: len(a.Seq1)}
	for i := 0; i < len(a.Seq1) && i < len(a.Seq2); i++ {
		b1, b2 := a.Seq1[i], a.Seq2[i]
		switch {
		case b1 == '-' || b2 == '-':
			stats.Gaps++
		case b1 == b2:
			stats.Matches++
		default:
			stats.Mismatches++
		}
	}

	if stats.Length > 0 {
		stats.Similarity = round2(float64(stats.Matches) / float64(stats.Length) * 100)
	}

	return stats
}

func pairScore(b1, b2 byte, match, mismatch int) int {
	if b1 == b2 {
		return match
	}
	return mismatch
}

func newMatrix(rows, cols int) [][]int {
	matrix := make([][]int, rows)
	for i := range matrix {
		matrix[i] = make([]int, cols)
	}
	return matrix
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func reverseBytes(b []byte) []byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
