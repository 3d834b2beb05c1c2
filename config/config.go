// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// ORFConfig is settings for open reading frame calling
type ORFConfig struct {
	// the minimum number of translated amino acids for an ORF to be kept.
	// applies to both complete and partial ORFs
	MinAminoAcids int `mapstructure:"min-aa"`
}

// CodonUsageConfig is settings for the codon usage table
type CodonUsageConfig struct {
	// emit only the codons observed in the sequence rather than
	// the full 64 row table
	OnlyObserved bool `mapstructure:"only-observed"`
}

// CRISPRConfig is settings for PAM site scanning
type CRISPRConfig struct {
	// the PAM pattern to search for, N matching any nucleotide
	PAM string `mapstructure:"pam"`

	// the length of the guide RNA upstream of the PAM
	GuideLength int `mapstructure:"guide-length"`
}

// PrimerConfig is settings for PCR primer design
type PrimerConfig struct {
	// the length of designed primers
	Length int `mapstructure:"length"`

	// the minimum PCR product size
	ProductMin int `mapstructure:"product-min"`

	// the maximum PCR product size
	ProductMax int `mapstructure:"product-max"`

	// primer concentration in uM for nearest-neighbor Tm
	PrimerConc float64 `mapstructure:"primer-conc"`

	// monovalent salt concentration in mM for nearest-neighbor Tm
	SaltConc float64 `mapstructure:"salt-conc"`
}

// ServerConfig is settings for the HTTP API
type ServerConfig struct {
	// the address to listen on, ex: ":8000"
	Addr string `mapstructure:"addr"`

	// the maximum number of requests per IP per minute
	RateLimit int `mapstructure:"rate-limit"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// ORF calling settings
	ORF ORFConfig `mapstructure:"orf"`

	// codon usage table settings
	CodonUsage CodonUsageConfig `mapstructure:"codon-usage"`

	// CRISPR PAM scan settings
	CRISPR CRISPRConfig `mapstructure:"crispr"`

	// primer design settings
	Primers PrimerConfig `mapstructure:"primers"`

	// HTTP API settings
	Server ServerConfig `mapstructure:"server"`
}

// setDefaults registers the default value of every setting with viper.
// Each can be overridden via a settings file or a bound flag
func setDefaults() {
	viper.SetDefault("orf.min-aa", 10)
	viper.SetDefault("codon-usage.only-observed", false)
	viper.SetDefault("crispr.pam", "NGG")
	viper.SetDefault("crispr.guide-length", 20)
	viper.SetDefault("primers.length", 20)
	viper.SetDefault("primers.product-min", 200)
	viper.SetDefault("primers.product-max", 500)
	viper.SetDefault("primers.primer-conc", 0.5)
	viper.SetDefault("primers.salt-conc", 50)
	viper.SetDefault("server.addr", ":8000")
	viper.SetDefault("server.rate-limit", 30)
}

// New returns a new Config struct populated by Viper settings
// (either from a local settings file) and/or command line arguments
func New() *Config {
	setDefaults()

	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("failed to read settings file %s: %v", settings, err)
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}
