// core/reads/read.go
package reads

import "strings"

// Quality-encoding profiles and the offsets subtracted from quality
// characters to obtain numeric scores.
const (
	QualSanger = "sanger" // offset 33
	QualSolexa = "solexa" // offset 64
)

// DefaultQualFormat is used when a parser config leaves the profile empty.
const DefaultQualFormat = QualSanger

var qualOffsets = map[string]int{
	QualSanger: 33,
	QualSolexa: 64,
}

// OffsetFor resolves a quality-encoding profile name to its ASCII offset.
func OffsetFor(qualFormat string) (int, error) {
	if qualFormat == "" {
		qualFormat = DefaultQualFormat
	}
	off, ok := qualOffsets[qualFormat]
	if !ok {
		return 0, &UnsupportedFormatError{Format: qualFormat, Kind: "quality format"}
	}
	return off, nil
}

// Read is one parsed sequence/alignment entry.
//
// Name holds the full header line (FASTA/FASTQ) or name column (SAM/TSV);
// ID is the first whitespace-delimited token of Name. Qual is empty for
// formats that carry no quality string. Offset is the quality-encoding
// offset fixed when the read was constructed. A Read is never mutated
// after its parser has yielded it.
type Read struct {
	Name   string
	ID     string
	Seq    string
	Qual   string
	Offset int
}

// Scores decodes the quality string into numeric scores: each quality
// character's code point minus the read's offset. Returns nil when the
// read has no quality string.
func (r Read) Scores() []int {
	if r.Qual == "" {
		return nil
	}
	scores := make([]int, len(r.Qual))
	for i := 0; i < len(r.Qual); i++ {
		scores[i] = int(r.Qual[i]) - r.Offset
	}
	return scores
}

// firstField returns the first whitespace-delimited token of a header.
func firstField(name string) string {
	f := strings.Fields(name)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}
