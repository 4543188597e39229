// core/reads/tsv.go
package reads

import (
	"fmt"
	"strings"
)

// TSVConfig configures the tab-separated parser. Columns are 1-based.
// QualCol < 1 means the input carries no quality column.
type TSVConfig struct {
	QualFormat string
	NameCol    int
	SeqCol     int
	QualCol    int
}

// DefaultTSVConfig mirrors the conventional layout: name, sequence,
// quality in columns 1-3.
func DefaultTSVConfig() TSVConfig {
	return TSVConfig{NameCol: 1, SeqCol: 2, QualCol: 3}
}

// TSVReader parses a simple tab-delimited format. Lines too short to hold
// both the name and sequence columns are skipped, which tolerates blank
// and truncated lines. A missing or out-of-range quality column leaves
// Qual empty.
type TSVReader struct {
	base
	cfg    TSVConfig
	offset int
	min    int // minimum field count for a usable line
}

func NewTSVReader(src Source, cfg TSVConfig) (*TSVReader, error) {
	if cfg.NameCol < 1 || cfg.SeqCol < 1 {
		return nil, fmt.Errorf("tsv: name and sequence columns must be >= 1 (got %d, %d)", cfg.NameCol, cfg.SeqCol)
	}
	offset, err := OffsetFor(cfg.QualFormat)
	if err != nil {
		return nil, err
	}
	b, err := newBase(src)
	if err != nil {
		return nil, err
	}
	min := cfg.NameCol
	if cfg.SeqCol > min {
		min = cfg.SeqCol
	}
	return &TSVReader{base: b, cfg: cfg, offset: offset, min: min}, nil
}

func (p *TSVReader) Next() bool {
	if p.done {
		return false
	}
	for {
		line, ok := p.lines.next()
		if !ok {
			return p.stop(p.lines.err())
		}
		fields := strings.Split(line, "\t")
		if len(fields) < p.min {
			continue
		}
		r := Read{Offset: p.offset}
		r.Name = fields[p.cfg.NameCol-1]
		r.ID = firstField(r.Name)
		r.Seq = fields[p.cfg.SeqCol-1]
		if p.cfg.QualCol >= 1 && len(fields) >= p.cfg.QualCol {
			r.Qual = fields[p.cfg.QualCol-1]
		}
		p.cur = r
		return true
	}
}
