// core/reads/sam.go
package reads

import "strings"

// samMinFields is the field count of a minimal alignment line.
const samMinFields = 11

// SAMReader parses the tabular SAM alignment format, extracting only the
// read name (column 1), sequence (column 10), and quality (column 11).
// Lines with fewer than 11 fields are skipped, as are header lines —
// identified as a first field of exactly 3 characters starting with "@"
// (e.g. "@HD", "@SQ", "@PG").
type SAMReader struct {
	base
	offset int
}

func NewSAMReader(src Source, qualFormat string) (*SAMReader, error) {
	offset, err := OffsetFor(qualFormat)
	if err != nil {
		return nil, err
	}
	b, err := newBase(src)
	if err != nil {
		return nil, err
	}
	return &SAMReader{base: b, offset: offset}, nil
}

func (p *SAMReader) Next() bool {
	if p.done {
		return false
	}
	for {
		line, ok := p.lines.next()
		if !ok {
			return p.stop(p.lines.err())
		}
		fields := strings.Split(line, "\t")
		if len(fields) < samMinFields {
			continue
		}
		if len(fields[0]) == 3 && strings.HasPrefix(fields[0], "@") {
			continue
		}
		r := Read{Offset: p.offset}
		r.Name = fields[0]
		r.ID = firstField(r.Name)
		r.Seq = fields[9]
		r.Qual = fields[10]
		p.cur = r
		return true
	}
}
