package dna

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fyodor12344/DNA-ANALYZER/config"
)

// Flags contains parsed cobra flags like "in", "out", etc that
// are used by multiple commands
type Flags struct {
	// a sequence passed directly as a command line argument
	seq string

	// the name of the file to read the input from
	in string

	// the name of the file to write the output to, stdout when empty
	out string

	// whether to render a plain text report instead of JSON
	report bool
}

// inputParser contains methods for parsing flags from the input &cobra.Command
type inputParser struct{}

// NewFlags makes a new flags object manually. for testing
func NewFlags(seq, in, out string) (*Flags, *config.Config) {
	return &Flags{seq: seq, in: in, out: out}, config.New()
}

// parseCmdFlags gathers the sequence argument, in path, out path, etc
// from a cobra cmd object. Returns Flags and a Config struct
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	var err error
	fs := &Flags{}
	p := inputParser{}

	// a bare argument is a sequence passed directly
	fs.seq = strings.Join(args, "")

	if fs.in, err = cmd.Flags().GetString("in"); err != nil {
		fs.in = ""
	}
	if fs.seq == "" && fs.in == "" {
		if fs.in, err = p.guessInput(); err != nil {
			stderr.Fatal(err)
		}
	}

	if fs.out, err = cmd.Flags().GetString("out"); err != nil {
		fs.out = ""
	}

	fs.report, _ = cmd.Flags().GetBool("report")

	return fs, config.New()
}

// records returns the input sequences: the literal argument if one
// was passed, otherwise the contents of the input file
func (f *Flags) records() ([]Record, error) {
	if f.seq != "" {
		return []Record{{ID: "arg", Seq: f.seq}}, nil
	}
	return read(f.in)
}

// first returns the first input sequence, warning when others are ignored
func (f *Flags) first() (Record, error) {
	records, err := f.records()
	if err != nil {
		return Record{}, err
	}

	if len(records) > 1 {
		stderr.Printf(
			"warning: %d sequences were in %s. Only analyzing the first: %s\n",
			len(records),
			f.in,
			records[0].ID,
		)
	}

	return records[0], nil
}

// guessInput returns the first fasta file in the current directory. Is used
// if the user hasn't specified an input file
func (p *inputParser) guessInput() (in string, err error) {
	dir, _ := filepath.Abs(".")
	files, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(file.Name()))
		if ext == ".fa" || ext == ".fasta" {
			return file.Name(), nil
		}
	}

	return "", fmt.Errorf("failed: no sequence argument set and no fasta file found in %s", dir)
}
