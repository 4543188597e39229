package reads

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func collectFastq(t *testing.T, in string, cfg FastqConfig) []Read {
	t.Helper()
	p, err := NewFastqReader(StreamSource(strings.NewReader(in)), cfg)
	if err != nil {
		t.Fatalf("NewFastqReader: %v", err)
	}
	var got []Read
	for p.Next() {
		got = append(got, p.Read())
	}
	if err := p.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	return got
}

func TestFastqReaderFourLine(t *testing.T) {
	in := "@r1 desc\nACGT\n+\nIIII\n@r2\nTT\n+r2\n!!\n"
	got := collectFastq(t, in, FastqConfig{})
	if len(got) != 2 {
		t.Fatalf("got %d reads, want 2", len(got))
	}
	if got[0].Name != "r1 desc" || got[0].ID != "r1" || got[0].Seq != "ACGT" || got[0].Qual != "IIII" {
		t.Fatalf("read1 = %+v", got[0])
	}
	if got[1].ID != "r2" || got[1].Seq != "TT" || got[1].Qual != "!!" {
		t.Fatalf("read2 = %+v", got[1])
	}
	for _, r := range got {
		if len(r.Qual) != len(r.Seq) {
			t.Fatalf("quality/sequence length mismatch at emission: %+v", r)
		}
	}
}

func TestFastqReaderMultiLineBlocks(t *testing.T) {
	// Sequence and quality both span several physical lines.
	in := "@r1\nACG\nTAC\n+\nIII\nJJJ\n"
	got := collectFastq(t, in, FastqConfig{})
	if len(got) != 1 {
		t.Fatalf("got %d reads, want 1", len(got))
	}
	if got[0].Seq != "ACGTAC" || got[0].Qual != "IIIJJJ" {
		t.Fatalf("read = %+v", got[0])
	}
}

func TestFastqReaderBlankLinesBetweenRecords(t *testing.T) {
	in := "@r1\nAC\n+\nII\n\n\n@r2\nGT\n+\nJJ\n"
	got := collectFastq(t, in, FastqConfig{})
	if len(got) != 2 {
		t.Fatalf("got %d reads, want 2", len(got))
	}
}

func TestFastqReaderHeaderStateViolation(t *testing.T) {
	in := "@r1\nAC\n+\nII\nGARBAGE\n"
	p, err := NewFastqReader(StreamSource(strings.NewReader(in)), FastqConfig{})
	if err != nil {
		t.Fatalf("NewFastqReader: %v", err)
	}
	var got []Read
	for p.Next() {
		got = append(got, p.Read())
	}
	var fe *FormatError
	if !errors.As(p.Err(), &fe) {
		t.Fatalf("Err() = %v, want FormatError", p.Err())
	}
	if fe.Line != "GARBAGE" {
		t.Fatalf("FormatError.Line = %q", fe.Line)
	}
	if len(got) != 0 {
		// r1 was still pending when the violation aborted iteration.
		t.Fatalf("got %d reads before the error, want 0", len(got))
	}
}

func TestFastqReaderOverlongQualityLineTrimmed(t *testing.T) {
	// Six quality characters for a four-base read: the excess is dropped.
	in := "@r1\nACGT\n+\nIIIIII\n@r2\nTT\n+\nJJ\n"
	got := collectFastq(t, in, FastqConfig{})
	if len(got) != 2 {
		t.Fatalf("got %d reads, want 2", len(got))
	}
	if got[0].Qual != "IIII" {
		t.Fatalf("read1 qual = %q, want excess trimmed to IIII", got[0].Qual)
	}
}

func TestFastqReaderShortQualityWarns(t *testing.T) {
	// r1 has 4 bases but only 2 quality characters; the following "@r2"
	// line is consumed as quality (with a warning) exactly as the
	// line-by-line accumulation dictates.
	in := "@r1\nACGT\n+\nII\n@r2\n@r3\nTT\n+\nJJ\n"
	var warnings []string
	cfg := FastqConfig{Warnf: func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}}
	got := collectFastq(t, in, cfg)
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1 for a quality line starting with \"@\"", len(warnings))
	}
	if len(got) != 2 {
		t.Fatalf("got %d reads, want 2 (the short-quality read absorbs the next header)", len(got))
	}
	if got[0].Qual != "II@r" {
		t.Fatalf("read1 qual = %q", got[0].Qual)
	}
	if got[1].ID != "r3" || got[1].Qual != "JJ" {
		t.Fatalf("read2 = %+v", got[1])
	}
}

func TestFastqReaderTrailingRecordEmitted(t *testing.T) {
	in := "@r1\nAC\n+\nI" // quality still one short at EOF
	got := collectFastq(t, in, FastqConfig{})
	if len(got) != 1 {
		t.Fatalf("got %d reads, want 1", len(got))
	}
	if got[0].Seq != "AC" || got[0].Qual != "I" {
		t.Fatalf("read = %+v", got[0])
	}
}

func TestFastqReaderEmptyInput(t *testing.T) {
	got := collectFastq(t, "", FastqConfig{})
	if len(got) != 0 {
		t.Fatalf("got %d reads, want 0", len(got))
	}
}

func TestFastqReaderSolexaOffset(t *testing.T) {
	in := "@r1\nAC\n+\nhh\n"
	got := collectFastq(t, in, FastqConfig{QualFormat: "solexa"})
	if len(got) != 1 {
		t.Fatalf("got %d reads, want 1", len(got))
	}
	s := got[0].Scores()
	if len(s) != 2 || s[0] != 40 || s[1] != 40 {
		t.Fatalf("Scores() = %v, want [40 40]", s)
	}
}
