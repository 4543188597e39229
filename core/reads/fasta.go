// core/reads/fasta.go
package reads

import "strings"

// FastaReader parses FASTA. A ">" line starts a new read (emitting the
// previous one, if any); every other line is appended verbatim to the
// current read's sequence, line terminator removed. The final in-progress
// read is emitted on exhaustion. Sequence data before the first header is
// a FormatError.
type FastaReader struct {
	base
	pend Read
	have bool
}

func NewFastaReader(src Source) (*FastaReader, error) {
	b, err := newBase(src)
	if err != nil {
		return nil, err
	}
	return &FastaReader{base: b}, nil
}

func (p *FastaReader) Next() bool {
	if p.done {
		return false
	}
	for {
		line, ok := p.lines.next()
		if !ok {
			err := p.lines.err()
			p.stop(err)
			if err == nil && p.have {
				p.cur = p.pend
				p.have = false
				return true
			}
			return false
		}
		if strings.HasPrefix(line, ">") {
			name := line[1:]
			rec := Read{Name: name, ID: firstField(name)}
			if p.have {
				p.cur = p.pend
				p.pend = rec
				return true
			}
			p.pend = rec
			p.have = true
			continue
		}
		if !p.have {
			return p.stop(&FormatError{Msg: `fasta: sequence data before the first ">" header`, Line: line})
		}
		p.pend.Seq += line
	}
}
