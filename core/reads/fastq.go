// core/reads/fastq.go
package reads

import "strings"

// fqState is the FASTQ automaton: header → sequence → plus → quality →
// header → ...
type fqState int

const (
	fqHeader fqState = iota
	fqSequence
	fqPlus
	fqQuality
)

// FastqConfig configures the FASTQ parser. Warnf, when set, receives
// non-fatal diagnostics (a quality line starting with "@", which usually
// means a read had fewer quality scores than bases).
type FastqConfig struct {
	QualFormat string
	Warnf      func(format string, args ...any)
}

// FastqReader parses FASTQ with an explicit four-state automaton. It
// handles multi-line sequence and quality blocks: quality characters
// accumulate until the quality string is as long as the sequence, which is
// the sole condition that completes a read. Blank lines between records
// are tolerated; any other non-"@" line in header state is a FormatError.
type FastqReader struct {
	base
	offset int
	warnf  func(format string, args ...any)
	state  fqState
	pend   Read
	have   bool
}

func NewFastqReader(src Source, cfg FastqConfig) (*FastqReader, error) {
	offset, err := OffsetFor(cfg.QualFormat)
	if err != nil {
		return nil, err
	}
	b, err := newBase(src)
	if err != nil {
		return nil, err
	}
	warnf := cfg.Warnf
	if warnf == nil {
		warnf = func(string, ...any) {}
	}
	return &FastqReader{base: b, offset: offset, warnf: warnf}, nil
}

func (p *FastqReader) Next() bool {
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
		switch p.state {
		case fqHeader:
			if !strings.HasPrefix(line, "@") {
				if line == "" {
					continue // blank-line padding between records
				}
				return p.stop(&FormatError{Msg: `fastq: in header state but line does not start with "@"`, Line: line})
			}
			name := line[1:]
			rec := Read{Name: name, ID: firstField(name), Offset: p.offset}
			p.state = fqSequence
			if p.have {
				p.cur = p.pend
				p.pend = rec
				return true
			}
			p.pend = rec
			p.have = true
		case fqSequence:
			if strings.HasPrefix(line, "+") {
				p.state = fqPlus
			} else {
				p.pend.Seq += line
			}
		case fqPlus, fqQuality:
			if p.state == fqQuality && strings.HasPrefix(line, "@") {
				p.warnf("looking for more quality scores but the line starts with %q; this may be a header line and the read may have fewer quality scores than bases: %s",
					"@", truncateLine(line, 69))
			}
			p.state = fqQuality
			// Consume only as many characters as the sequence still
			// needs; anything beyond that on this line is dropped.
			// TODO: decide whether over-long quality lines should be a
			// FormatError instead of being silently trimmed.
			togo := len(p.pend.Seq) - len(p.pend.Qual)
			if togo > len(line) {
				togo = len(line)
			}
			if togo > 0 {
				p.pend.Qual += line[:togo]
			}
			if len(p.pend.Qual) >= len(p.pend.Seq) {
				p.state = fqHeader
			}
		}
	}
}

func truncateLine(line string, n int) string {
	if len(line) <= n {
		return line
	}
	return line[:n]
}
