package reads

import (
	"strings"
	"testing"
)

const samInput = "@HD\tVN:1.6\tSO:queryname\n" +
	"@SQ\tSN:chr1\tLN:248956422\n" +
	"read1\t99\tchr1\t10000\t60\t4M\t=\t10050\t54\tACGT\tIIII\tNM:i:0\n" +
	"short\tline\n" +
	"read2\t147\tchr1\t10050\t60\t4M\t=\t10000\t-54\tTTTT\t!!!!\n"

func TestSAMReader(t *testing.T) {
	p, err := NewSAMReader(StreamSource(strings.NewReader(samInput)), "sanger")
	if err != nil {
		t.Fatalf("NewSAMReader: %v", err)
	}
	var got []Read
	for p.Next() {
		got = append(got, p.Read())
	}
	if err := p.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d reads, want 2 (headers and short lines skipped): %+v", len(got), got)
	}
	if got[0].Name != "read1" || got[0].ID != "read1" || got[0].Seq != "ACGT" || got[0].Qual != "IIII" {
		t.Fatalf("read1 = %+v", got[0])
	}
	if got[1].Seq != "TTTT" || got[1].Qual != "!!!!" {
		t.Fatalf("read2 = %+v", got[1])
	}
}

// An 11-field line whose first field is a long "@..." token is an
// alignment with an odd name, not a header.
func TestSAMReaderHeaderIsExactlyThreeChars(t *testing.T) {
	line := "@odd\t99\tchr1\t1\t60\t4M\t=\t1\t4\tACGT\tIIII"
	p, err := NewSAMReader(StreamSource(strings.NewReader(line+"\n")), "")
	if err != nil {
		t.Fatalf("NewSAMReader: %v", err)
	}
	if !p.Next() {
		t.Fatalf("expected one read, err=%v", p.Err())
	}
	if p.Read().Name != "@odd" {
		t.Fatalf("read = %+v", p.Read())
	}
}

func TestSAMReaderEmptyInput(t *testing.T) {
	p, err := NewSAMReader(StreamSource(strings.NewReader("")), "")
	if err != nil {
		t.Fatalf("NewSAMReader: %v", err)
	}
	if p.Next() {
		t.Fatal("expected zero reads")
	}
}
