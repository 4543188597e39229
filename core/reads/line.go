// core/reads/line.go
package reads

// LineReader parses the simplest format: one read per physical line, the
// whole line (terminator stripped) being the sequence.
type LineReader struct {
	base
}

func NewLineReader(src Source) (*LineReader, error) {
	b, err := newBase(src)
	if err != nil {
		return nil, err
	}
	return &LineReader{base: b}, nil
}

func (p *LineReader) Next() bool {
	if p.done {
		return false
	}
	line, ok := p.lines.next()
	if !ok {
		return p.stop(p.lines.err())
	}
	p.cur = Read{Seq: line}
	return true
}
