package dna

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Record is one named sequence read from an input file
type Record struct {
	// ID from the FASTA header. In ">example_CDS" its "example_CDS"
	ID string `json:"id"`

	// the raw sequence, not yet cleaned
	Seq string `json:"seq"`
}

// read parses the sequences out of a raw text or (multi-)FASTA file
func read(path string) (records []Record, err error) {
	if !filepath.IsAbs(path) {
		if path, err = filepath.Abs(path); err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %v", err)
		}
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %v", err)
	}
	file := string(dat)

	if strings.HasPrefix(strings.TrimSpace(file), ">") {
		return readFasta(path, file)
	}

	// raw sequence text, use the file's name as the ID
	base := filepath.Base(path)
	return []Record{{
		ID:  strings.TrimSuffix(base, filepath.Ext(base)),
		Seq: file,
	}}, nil
}

// readFasta parses the multifasta file contents to records
func readFasta(path, contents string) (records []Record, err error) {
	lines := strings.Split(contents, "\n")

	var headerIndices []int
	var ids []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
			ids = append(ids, strings.TrimSpace(line[1:]))
		}
	}

	var seqs []string
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}
		seqs = append(seqs, strings.Join(lines[headerIndex+1:nextLine], ""))
	}

	for i, id := range ids {
		records = append(records, Record{ID: id, Seq: seqs[i]})
	}

	// opened and parsed file but found nothing
	if len(records) < 1 {
		return nil, fmt.Errorf("failed to parse sequence(s) from %s", path)
	}

	return records, nil
}

// write marshals a result to indented JSON at the output path, or to
// stdout when the path is empty
func write(filename string, result interface{}) error {
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize output: %v", err)
	}

	if filename == "" {
		fmt.Println(string(output))
		return nil
	}

	if err = os.WriteFile(filename, append(output, '\n'), 0666); err != nil {
		return fmt.Errorf("failed to write the output: %v", err)
	}

	return nil
}
