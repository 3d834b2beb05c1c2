package dna

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_read_fasta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqs.fa")
	contents := ">first_CDS\nATGAAA\nTAA\n>second\nCCCGGG\n"
	if err := os.WriteFile(path, []byte(contents), 0666); err != nil {
		t.Fatal(err)
	}

	records, err := read(path)
	if err != nil {
		t.Fatalf("read() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("read() = %d records, want 2", len(records))
	}

	if records[0].ID != "first_CDS" || records[0].Seq != "ATGAAATAA" {
		t.Errorf("read() first = %+v, want first_CDS with the joined lines", records[0])
	}
	if records[1].ID != "second" || records[1].Seq != "CCCGGG" {
		t.Errorf("read() second = %+v, want second / CCCGGG", records[1])
	}
}

func Test_read_raw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plasmid.txt")
	if err := os.WriteFile(path, []byte("atgaaa"), 0666); err != nil {
		t.Fatal(err)
	}

	records, err := read(path)
	if err != nil {
		t.Fatalf("read() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("read() = %d records, want 1", len(records))
	}

	// the file's base name, extension stripped, becomes the ID
	if records[0].ID != "plasmid" || records[0].Seq != "atgaaa" {
		t.Errorf("read() = %+v, want plasmid / atgaaa", records[0])
	}
}

func Test_read_missing_file(t *testing.T) {
	if _, err := read(filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Error("read(missing file) must error")
	}
}

func Test_readFasta_no_records(t *testing.T) {
	if _, err := readFasta("empty.fa", "no header in sight"); err == nil {
		t.Error("readFasta(headerless contents) must error")
	}
}

func Test_write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := write(path, map[string]int{"length": 9}); err != nil {
		t.Fatalf("write() error = %v", err)
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	out := string(dat)
	if !strings.Contains(out, "\"length\": 9") {
		t.Errorf("write() output = %s, want indented JSON", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("write() output must end with a newline")
	}
}
