package dna

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// nnParam is one SantaLucia 1998 nearest-neighbor dinucleotide
// parameter: enthalpy in kcal/mol and entropy in cal/mol*K
type nnParam struct {
	dH float64
	dS float64
}

// nnParams are the SantaLucia 1998 unified nearest-neighbor parameters
var nnParams = map[string]nnParam{
	"AA": {-7.9, -22.2},
	"TT": {-7.9, -22.2},
	"AT": {-7.2, -20.4},
	"TA": {-7.2, -21.3},
	"CA": {-8.5, -22.7},
	"TG": {-8.5, -22.7},
	"GT": {-8.4, -22.4},
	"AC": {-8.4, -22.4},
	"CT": {-7.8, -21.0},
	"AG": {-7.8, -21.0},
	"GA": {-8.2, -22.2},
	"TC": {-8.2, -22.2},
	"CG": {-10.6, -27.2},
	"GC": {-9.8, -24.4},
	"GG": {-8.0, -19.9},
	"CC": {-8.0, -19.9},
}

// Hairpin is a primer's self-complementarity analysis
type Hairpin struct {
	HasHairpin bool    `json:"hasHairpin"`
	MaxStem    int     `json:"maxStemLength"`
	DeltaG     float64 `json:"estimatedDg"`
	Risk       string  `json:"riskLevel"`
}

// GCClamp describes the 3' end stability of a primer
type GCClamp struct {
	HasClamp  bool `json:"hasClamp"`
	GCInLast5 int  `json:"gcInLast5"`
	IsOptimal bool `json:"isOptimal"`
}

// Dimer is the pairwise primer-dimer analysis of a primer pair
type Dimer struct {
	HasRisk            bool    `json:"hasDimerRisk"`
	ThreePrimeOverlap  int     `json:"threePrimeComplementarity"`
	MaxComplementarity int     `json:"maxComplementarity"`
	DeltaG             float64 `json:"estimatedDg"`
	Risk               string  `json:"riskLevel"`
}

// Primer is one scored primer candidate
type Primer struct {
	// the primer bases 5' to 3'. For reverse primers this is the
	// reverse complement of the template region
	Seq string `json:"sequence"`

	// 0-based position of the primer's template region
	Position int `json:"position"`

	Length    int     `json:"length"`
	Tm        float64 `json:"tm"`
	GCContent float64 `json:"gcContent"`

	// Excellent, Good, Fair or Poor
	Grade string `json:"qualityGrade"`

	// 0-100
	Score int `json:"qualityScore"`

	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
	Hairpin  Hairpin  `json:"hairpin"`
	GCClamp  GCClamp  `json:"gcClamp"`

	// "Forward" or "Reverse"
	Type string `json:"type"`

	// product size when paired with the chosen forward primer,
	// reverse candidates only
	ExpectedProduct int `json:"expectedProduct,omitempty"`
}

// Protocol is a suggested PCR program for a primer pair
type Protocol struct {
	AnnealingTemp  float64    `json:"annealingTemp"`
	AnnealingRange [2]float64 `json:"annealingRange"`

	// seconds
	ExtensionTime int `json:"extensionTime"`

	Cycles     int    `json:"cycles"`
	Polymerase string `json:"polymerase"`

	DenaturationTemp float64 `json:"denaturationTemp"`
	DenaturationTime int     `json:"denaturationTime"`

	FinalExtensionTemp float64 `json:"finalExtensionTemp"`
	FinalExtensionTime int     `json:"finalExtensionTime"`

	Notes []string `json:"notes"`
}

// PrimerResult is a designed primer pair with its pair-level analysis
type PrimerResult struct {
	Forward         *Primer   `json:"forwardPrimer"`
	Reverse         *Primer   `json:"reversePrimer"`
	ProductSize     int       `json:"expectedProductSize"`
	TmDifference    float64   `json:"tmDifference"`
	Dimer           *Dimer    `json:"dimerAnalysis"`
	Protocol        *Protocol `json:"pcrProtocol"`
	TopCandidates   []Primer  `json:"allCandidates"`
	AdjustedProduct bool      `json:"adjustedProductRange,omitempty"`
}

// TmNearestNeighbor calculates a primer's melting temperature with
// nearest-neighbor thermodynamics. primerConc is in uM, saltConc in
// mM. Sequences under 14 bases fall back to the Wallace rule. This is
// the primer designer's Tm; the sequence-summary estimate stays with
// the bracketed empirical formulas in MeltingTemp
func TmNearestNeighbor(seq string, primerConc, saltConc float64) float64 {
	if len(seq) < 14 {
		c := Counts(seq)
		return float64(2*(c.A+c.T) + 4*(c.G+c.C))
	}

	dH := 0.2 // initiation
	dS := -5.7
	for i := 0; i < len(seq)-1; i++ {
		if p, ok := nnParams[seq[i:i+2]]; ok {
			dH += p.dH
			dS += p.dS
		}
	}

	// salt correction
	dS += 0.368 * float64(len(seq)-1) * math.Log(saltConc/1000)

	const r = 1.987 // gas constant, cal/mol*K
	concM := primerConc * 1e-6
	tm := (1000*dH)/(dS+r*math.Log(concM/4)) - 273.15
	return round1(tm)
}

// checkHairpin searches a primer for complementary internal regions
// that could fold into a hairpin stem
func checkHairpin(seq string) Hairpin {
	revComp := ReverseComplement(seq)

	maxStem := 0
	for i := 0; i < len(seq)-3; i++ {
		for j := 0; j < len(seq)-3; j++ {
			stem := 0
			for i+stem < len(seq) && j+stem < len(revComp) && seq[i+stem] == revComp[j+stem] {
				stem++
			}
			if stem > maxStem {
				maxStem = stem
			}
		}
	}

	dG := 0.0
	if maxStem >= 4 {
		dG = round1(-1.5 * float64(maxStem))
	}

	risk := "low"
	if dG < -5 {
		risk = "high"
	} else if dG < -3 {
		risk = "medium"
	}

	return Hairpin{
		HasHairpin: dG < -3.0,
		MaxStem:    maxStem,
		DeltaG:     dG,
		Risk:       risk,
	}
}

// checkDimers looks for primer-dimer potential between a primer pair:
// complementarity at the 3' ends (the critical case) and the longest
// run of complementarity anywhere
func checkDimers(fwd, rev string) Dimer {
	revCompRev := ReverseComplement(rev)

	endLength := 6
	if len(fwd) < endLength {
		endLength = len(fwd)
	}
	if len(rev) < endLength {
		endLength = len(rev)
	}
	fwdEnd := fwd[len(fwd)-endLength:]
	revEnd := rev[len(rev)-endLength:]

	complement := map[byte]byte{'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G'}
	overlap := 0
	for i := 0; i < endLength; i++ {
		if fwdEnd[i] == complement[revEnd[endLength-1-i]] {
			overlap++
		}
	}

	maxComplement := 0
	for i := 0; i < len(fwd)-3; i++ {
		for j := 0; j < len(revCompRev)-3; j++ {
			count := 0
			for i+count < len(fwd) && j+count < len(revCompRev) && fwd[i+count] == revCompRev[j+count] {
				count++
			}
			if count > maxComplement {
				maxComplement = count
			}
		}
	}

	dG := round1(-1.5 * float64(maxComplement))
	risk := "low"
	if dG < -7 {
		risk = "high"
	} else if dG < -5 {
		risk = "medium"
	}

	return Dimer{
		HasRisk:            dG < -5.0 || overlap >= 4,
		ThreePrimeOverlap:  overlap,
		MaxComplementarity: maxComplement,
		DeltaG:             dG,
		Risk:               risk,
	}
}

// checkGCClamp checks whether a primer ends on G or C with 2-3 G/C in
// its last five bases
func checkGCClamp(seq string) GCClamp {
	if len(seq) < 5 {
		return GCClamp{}
	}

	last5 := seq[len(seq)-5:]
	gc := strings.Count(last5, "G") + strings.Count(last5, "C")
	hasClamp := seq[len(seq)-1] == 'G' || seq[len(seq)-1] == 'C'

	return GCClamp{
		HasClamp:  hasClamp,
		GCInLast5: gc,
		IsOptimal: gc >= 2 && gc <= 3 && hasClamp,
	}
}

// gradePrimer scores a primer 0-100 against length, Tm, GC content,
// GC clamp, nucleotide runs, hairpin risk and 3' self-complementarity
func gradePrimer(seq string, tm float64, hairpin Hairpin, clamp GCClamp) (grade string, score int, issues, warnings []string) {
	issues = []string{}
	warnings = []string{}
	score = 100

	switch length := len(seq); {
	case length < 18:
		issues = append(issues, "Primer too short (< 18 bp) - may lack specificity")
		score -= 20
	case length < 20:
		warnings = append(warnings, "Primer slightly short - consider 20-25 bp")
		score -= 5
	case length > 25:
		issues = append(issues, "Primer too long (> 25 bp) - may reduce efficiency")
		score -= 10
	}

	switch {
	case tm < 52:
		issues = append(issues, fmt.Sprintf("Tm too low (%.1fC) - reduce annealing temperature", tm))
		score -= 20
	case tm < 55:
		warnings = append(warnings, fmt.Sprintf("Tm slightly low (%.1fC) - optimal is 55-65C", tm))
		score -= 10
	case tm > 68:
		issues = append(issues, fmt.Sprintf("Tm too high (%.1fC) - may cause non-specific binding", tm))
		score -= 15
	case tm > 65:
		warnings = append(warnings, fmt.Sprintf("Tm slightly high (%.1fC)", tm))
		score -= 5
	}

	switch gc := GCContent(seq); {
	case gc < 35:
		issues = append(issues, fmt.Sprintf("GC content too low (%.1f%%) - poor stability", gc))
		score -= 20
	case gc < 40:
		warnings = append(warnings, fmt.Sprintf("GC content slightly low (%.1f%%)", gc))
		score -= 10
	case gc > 65:
		issues = append(issues, fmt.Sprintf("GC content too high (%.1f%%) - strong secondary structures", gc))
		score -= 20
	case gc > 60:
		warnings = append(warnings, fmt.Sprintf("GC content slightly high (%.1f%%)", gc))
		score -= 10
	}

	if !clamp.HasClamp {
		warnings = append(warnings, "No GC clamp at 3' end - consider redesigning")
		score -= 10
	}
	if !clamp.IsOptimal {
		if clamp.GCInLast5 < 2 {
			warnings = append(warnings, "Weak 3' end stability")
			score -= 5
		} else if clamp.GCInLast5 > 3 {
			warnings = append(warnings, "Too many G/C at 3' end - may cause mispriming")
			score -= 5
		}
	}

	for _, base := range []string{"A", "T", "G", "C"} {
		if strings.Contains(seq, strings.Repeat(base, 4)) {
			issues = append(issues, fmt.Sprintf("Contains poly-%s run (>=4) - avoid", base))
			score -= 20
			break
		}
		if strings.Contains(seq, strings.Repeat(base, 3)) {
			warnings = append(warnings, fmt.Sprintf("Contains %s - may cause issues", strings.Repeat(base, 3)))
			score -= 5
		}
	}

	if hairpin.Risk == "high" {
		issues = append(issues, fmt.Sprintf("High hairpin risk (stem: %d bp)", hairpin.MaxStem))
		score -= 20
	} else if hairpin.Risk == "medium" {
		warnings = append(warnings, "Moderate hairpin risk")
		score -= 10
	}

	if len(seq) >= 6 && strings.Contains(ReverseComplement(seq), seq[len(seq)-6:]) {
		warnings = append(warnings, "Possible 3' self-complementarity")
		score -= 10
	}

	if score < 0 {
		score = 0
	}

	switch {
	case score >= 85:
		grade = "Excellent"
	case score >= 70:
		grade = "Good"
	case score >= 55:
		grade = "Fair"
	default:
		grade = "Poor"
	}

	return grade, score, issues, warnings
}

// newPrimer builds and scores one primer candidate
func newPrimer(seq string, position int, primerType string, primerConc, saltConc float64) Primer {
	tm := TmNearestNeighbor(seq, primerConc, saltConc)
	hairpin := checkHairpin(seq)
	clamp := checkGCClamp(seq)
	grade, score, issues, warnings := gradePrimer(seq, tm, hairpin, clamp)

	return Primer{
		Seq:       seq,
		Position:  position,
		Length:    len(seq),
		Tm:        tm,
		GCContent: round1(GCContent(seq)),
		Grade:     grade,
		Score:     score,
		Issues:    issues,
		Warnings:  warnings,
		Hairpin:   hairpin,
		GCClamp:   clamp,
		Type:      primerType,
	}
}

// suggestProtocol derives a PCR program from the primer pair's Tm and
// the product size
func suggestProtocol(fwd, rev Primer, productSize int) *Protocol {
	avgTm := (fwd.Tm + rev.Tm) / 2
	annealing := round1(avgTm - 5)

	extension := int(math.Ceil(float64(productSize)/1000)) * 60
	if extension < 30 {
		extension = 30
	}

	cycles := 30
	if productSize >= 1000 {
		cycles = 35
	}

	polymerase := "Standard Taq (or high-fidelity for cloning)"
	if productSize >= 3000 {
		polymerase = "High-fidelity with long-range capability"
	} else if productSize >= 500 {
		polymerase = "High-fidelity polymerase recommended"
	}

	notes := []string{}
	if productSize < 200 {
		notes = append(notes, "Short amplicon - reduce extension time to 15-30s")
	}
	if avgTm < 55 {
		notes = append(notes, "Low Tm - consider touchdown PCR (start at 60C, -0.5C/cycle)")
	}
	if len(fwd.Issues) > 0 || len(rev.Issues) > 0 {
		notes = append(notes, "Primer quality concerns - optimize if poor results")
	}

	return &Protocol{
		AnnealingTemp:      annealing,
		AnnealingRange:     [2]float64{annealing - 2, annealing + 3},
		ExtensionTime:      extension,
		Cycles:             cycles,
		Polymerase:         polymerase,
		DenaturationTemp:   95,
		DenaturationTime:   30,
		FinalExtensionTemp: 72,
		FinalExtensionTime: 300,
		Notes:              notes,
	}
}

// DesignPrimers picks the best forward primer from the 5' region of
// the template and the best compatible reverse primer from the
// product-size window, then analyzes the pair. Short templates have
// the product range auto-adjusted; templates too short for any
// product return an empty result rather than an error
func DesignPrimers(seq string, primerLength, productMin, productMax int, primerConc, saltConc float64) PrimerResult {
	seqLength := len(seq)
	result := PrimerResult{TopCandidates: []Primer{}}

	if seqLength < 150 {
		adjustedMin := primerLength*2 + 10
		adjustedMax := seqLength - primerLength - 5
		if adjustedMax <= adjustedMin {
			return result // too short for reliable primer design
		}
		productMin, productMax = adjustedMin, adjustedMax
		result.AdjustedProduct = true
	}

	// forward candidates come from the start of the template
	searchEndFwd := seqLength - primerLength - 20
	if limit := int(float64(seqLength) * 0.3); limit < searchEndFwd {
		searchEndFwd = limit
	}
	if searchEndFwd > 100 {
		searchEndFwd = 100
	}

	var forward []Primer
	for i := 0; i < searchEndFwd && i+primerLength <= seqLength; i++ {
		forward = append(forward, newPrimer(seq[i:i+primerLength], i, "Forward", primerConc, saltConc))
	}
	if len(forward) == 0 {
		return result
	}

	sort.SliceStable(forward, func(i, j int) bool {
		return forward[i].Score > forward[j].Score
	})
	bestForward := forward[0]

	// reverse candidates bind the far half of the template within the
	// product size window
	searchStartRev := bestForward.Position + productMin
	if half := seqLength / 2; half > searchStartRev {
		searchStartRev = half
	}

	var reverse []Primer
	for i := searchStartRev; i+primerLength <= seqLength; i++ {
		productSize := i - bestForward.Position + primerLength
		if productSize < productMin || productSize > productMax {
			continue
		}

		p := newPrimer(ReverseComplement(seq[i:i+primerLength]), i, "Reverse", primerConc, saltConc)
		p.ExpectedProduct = productSize
		reverse = append(reverse, p)
	}

	topForward := forward
	if len(topForward) > 5 {
		topForward = topForward[:5]
	}

	if len(reverse) == 0 {
		best := bestForward
		result.Forward = &best
		result.TopCandidates = append(result.TopCandidates, topForward...)
		return result
	}

	// prefer quality, then the closest Tm to the forward primer
	sort.SliceStable(reverse, func(i, j int) bool {
		if reverse[i].Score != reverse[j].Score {
			return reverse[i].Score > reverse[j].Score
		}
		di := math.Abs(reverse[i].Tm - bestForward.Tm)
		dj := math.Abs(reverse[j].Tm - bestForward.Tm)
		return di < dj
	})
	bestReverse := reverse[0]

	topReverse := reverse
	if len(topReverse) > 5 {
		topReverse = topReverse[:5]
	}

	productSize := bestReverse.Position - bestForward.Position + primerLength
	dimer := checkDimers(bestForward.Seq, bestReverse.Seq)
	protocol := suggestProtocol(bestForward, bestReverse, productSize)

	result.Forward = &bestForward
	result.Reverse = &bestReverse
	result.ProductSize = productSize
	result.TmDifference = round1(math.Abs(bestForward.Tm - bestReverse.Tm))
	result.Dimer = &dimer
	result.Protocol = protocol
	result.TopCandidates = append(append(result.TopCandidates, topForward...), topReverse...)

	return result
}
