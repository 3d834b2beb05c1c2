package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestNew_defaults(t *testing.T) {
	viper.Reset()

	c := New()

	if c.ORF.MinAminoAcids != 10 {
		t.Errorf("ORF.MinAminoAcids = %d, want 10", c.ORF.MinAminoAcids)
	}
	if c.CodonUsage.OnlyObserved {
		t.Error("CodonUsage.OnlyObserved = true, want false")
	}
	if c.CRISPR.PAM != "NGG" || c.CRISPR.GuideLength != 20 {
		t.Errorf("CRISPR = %+v, want NGG with a 20 base guide", c.CRISPR)
	}
	if c.Primers.Length != 20 || c.Primers.ProductMin != 200 || c.Primers.ProductMax != 500 {
		t.Errorf("Primers = %+v, want 20bp primers and a 200..500 product", c.Primers)
	}
	if c.Primers.PrimerConc != 0.5 || c.Primers.SaltConc != 50 {
		t.Errorf("Primers concentrations = %v uM / %v mM, want 0.5 / 50", c.Primers.PrimerConc, c.Primers.SaltConc)
	}
	if c.Server.Addr != ":8000" || c.Server.RateLimit != 30 {
		t.Errorf("Server = %+v, want :8000 at 30 requests/minute", c.Server)
	}
}

func TestNew_settings_file(t *testing.T) {
	viper.Reset()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	settings := "orf:\n  min-aa: 25\nserver:\n  rate-limit: 5\n"
	if err := os.WriteFile(path, []byte(settings), 0666); err != nil {
		t.Fatal(err)
	}
	viper.Set("settings", path)

	c := New()

	if c.ORF.MinAminoAcids != 25 {
		t.Errorf("ORF.MinAminoAcids = %d, want the file's 25", c.ORF.MinAminoAcids)
	}
	if c.Server.RateLimit != 5 {
		t.Errorf("Server.RateLimit = %d, want the file's 5", c.Server.RateLimit)
	}

	// unset settings stay at their defaults
	if c.CRISPR.PAM != "NGG" {
		t.Errorf("CRISPR.PAM = %s, want the NGG default", c.CRISPR.PAM)
	}

	viper.Reset()
}
