package dna

import "testing"

func Test_ScanRestrictionSites(t *testing.T) {
	// EcoRI at 1 and again at 8, separated by one base
	sites := ScanRestrictionSites("GAATTCAGAATTC")

	if len(sites) != 1 {
		t.Fatalf("ScanRestrictionSites() = %d enzymes, want 1", len(sites))
	}

	ecoRI := sites[0]
	if ecoRI.Enzyme != "EcoRI" || ecoRI.Recognition != "GAATTC" {
		t.Errorf("ScanRestrictionSites() found %s (%s), want EcoRI (GAATTC)", ecoRI.Enzyme, ecoRI.Recognition)
	}
	if ecoRI.Count != 2 || len(ecoRI.Positions) != 2 {
		t.Fatalf("ScanRestrictionSites() EcoRI count = %d, want 2", ecoRI.Count)
	}
	if ecoRI.Positions[0] != 1 || ecoRI.Positions[1] != 8 {
		t.Errorf("ScanRestrictionSites() EcoRI positions = %v, want [1 8]", ecoRI.Positions)
	}
}

// the search resumes one base past each hit, so overlapping-adjacent
// occurrences are all found
func Test_ScanRestrictionSites_overlapping(t *testing.T) {
	// SmaI is CCCGGG; CCCCGGGG holds it at 2 only, CCCGGGCCCGGG at 1 and 7
	sites := ScanRestrictionSites("CCCGGGCCCGGG")

	for _, site := range sites {
		if site.Enzyme != "SmaI" {
			continue
		}
		if len(site.Positions) != 2 || site.Positions[0] != 1 || site.Positions[1] != 7 {
			t.Errorf("ScanRestrictionSites() SmaI positions = %v, want [1 7]", site.Positions)
		}
		return
	}
	t.Error("ScanRestrictionSites() did not find SmaI")
}

func Test_ScanRestrictionSites_ordering(t *testing.T) {
	// two EcoRI sites and one BamHI site
	sites := ScanRestrictionSites("GAATTC" + "GGATCC" + "GAATTC")

	if len(sites) != 2 {
		t.Fatalf("ScanRestrictionSites() = %d enzymes, want 2", len(sites))
	}
	if sites[0].Enzyme != "EcoRI" || sites[0].Count != 2 {
		t.Errorf("ScanRestrictionSites() first = %s (%d), want EcoRI (2)", sites[0].Enzyme, sites[0].Count)
	}
	if sites[1].Enzyme != "BamHI" || sites[1].Count != 1 {
		t.Errorf("ScanRestrictionSites() second = %s (%d), want BamHI (1)", sites[1].Enzyme, sites[1].Count)
	}
}

func Test_ScanRestrictionSites_empty(t *testing.T) {
	if sites := ScanRestrictionSites(""); len(sites) != 0 {
		t.Errorf("ScanRestrictionSites(\"\") = %v, want none", sites)
	}
	if sites := ScanRestrictionSites("ATATATAT"); len(sites) != 0 {
		t.Errorf("ScanRestrictionSites(no sites) = %v, want none", sites)
	}
}
